// Package load reads generator documents, in JSON or YAML, into validated
// schema values.
//
// Both formats are decoded into a yaml.Node tree first, which keeps mapping
// order (fields generate in declared order) and source lines for errors.
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema"
)

// File loads and validates the document at path.
func File(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: reading %s: %w", path, err)
	}
	s, err := Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Reader loads and validates a document read from r.
func Reader(r io.Reader) (*schema.Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("load: reading input: %w", err)
	}
	return Bytes(data)
}

// Bytes decodes and validates a JSON or YAML document.
func Bytes(data []byte) (*schema.Schema, error) {
	s, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Decode decodes a document without validating it.
func Decode(data []byte) (*schema.Schema, error) {
	root, err := parse(data)
	if err != nil {
		return nil, err
	}
	return (&decoder{}).schema(root)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parse returns the top-level node of data. Documents starting with '{' are
// read with encoding/json so tab-indented JSON is accepted.
func parse(data []byte) (*yaml.Node, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, jgd.NewSchemaError("", "empty document", nil)
	}
	if trimmed[0] == '{' {
		return parseJSON(data)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, jgd.NewSchemaError("", "malformed YAML", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, jgd.NewSchemaError("", "empty document", nil)
	}
	return doc.Content[0], nil
}

// jsonReader builds a yaml.Node tree from a JSON token stream.
type jsonReader struct {
	dec  *json.Decoder
	data []byte
}

func parseJSON(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	r := &jsonReader{dec: dec, data: data}
	n, err := r.value()
	if err != nil {
		return nil, r.wrap(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, r.wrap(errors.New("trailing data after document"))
	}
	return n, nil
}

func (r *jsonReader) wrap(err error) error {
	e := jgd.NewSchemaError("", "malformed JSON", err)
	e.Line = r.line()
	return e
}

// line returns the 1-based line of the decoder's current offset, which
// is the end of the last token read.
func (r *jsonReader) line() int {
	off := min(int(r.dec.InputOffset()), len(r.data))
	return bytes.Count(r.data[:off], []byte{'\n'}) + 1
}

func (r *jsonReader) value() (*yaml.Node, error) {
	tok, err := r.dec.Token()
	if err != nil {
		return nil, err
	}
	line := r.line()
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return r.object(line)
		case '[':
			return r.array(line)
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t, Style: yaml.DoubleQuotedStyle, Line: line}, nil
	case json.Number:
		tag := "!!int"
		if bytes.ContainsAny([]byte(t), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String(), Line: line}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t), Line: line}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null", Line: line}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func (r *jsonReader) object(line int) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: line}
	for r.dec.More() {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, err
		}
		kline := r.line()
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}
		val, err := r.value()
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key, Line: kline}, val)
	}
	if _, err := r.dec.Token(); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *jsonReader) array(line int) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Line: line}
	for r.dec.More() {
		val, err := r.value()
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, val)
	}
	if _, err := r.dec.Token(); err != nil {
		return nil, err
	}
	return n, nil
}
