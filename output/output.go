// Package output encodes generated documents.
//
// Objects keep their declared field order in every format.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format names an encoding.
type Format string

// Supported formats.
const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{JSON, YAML, MsgPack}
}

// ParseFormat returns the format named s. "yml" and "mp" are accepted as
// aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mp":
		return MsgPack, nil
	default:
		return "", fmt.Errorf("output: unknown format %q", s)
	}
}

// Ext returns the file extension of f, with the leading dot.
func (f Format) Ext() string {
	switch f {
	case YAML:
		return ".yaml"
	case MsgPack:
		return ".msgpack"
	default:
		return ".json"
	}
}

type options struct {
	pretty bool
	indent int
}

// Option configures an encoder.
type Option func(*options)

// Pretty indents JSON output. YAML is always indented.
func Pretty() Option {
	return func(o *options) { o.pretty = true }
}

// Indent sets the indentation width used by pretty JSON and YAML. Defaults to 2.
func Indent(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.indent = n
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{indent: 2}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Encode writes v to w in format f.
func Encode(w io.Writer, f Format, v any, opts ...Option) error {
	switch f {
	case JSON:
		return WriteJSON(w, v, opts...)
	case YAML:
		return WriteYAML(w, v, opts...)
	case MsgPack:
		return WriteMsgPack(w, v)
	default:
		return fmt.Errorf("output: unknown format %q", f)
	}
}

// WriteJSON writes v as JSON followed by a newline. HTML characters are not
// escaped.
func WriteJSON(w io.Writer, v any, opts ...Option) error {
	o := newOptions(opts)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if o.pretty {
		enc.SetIndent("", strings.Repeat(" ", o.indent))
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: encoding json: %w", err)
	}
	return nil
}

// WriteYAML writes v as a YAML document.
func WriteYAML(w io.Writer, v any, opts ...Option) error {
	o := newOptions(opts)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(o.indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: encoding yaml: %w", err)
	}
	return enc.Close()
}

// WriteMsgPack writes v as MessagePack.
func WriteMsgPack(w io.Writer, v any) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: encoding msgpack: %w", err)
	}
	return nil
}

// Marshal returns v encoded in format f.
func Marshal(f Format, v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f, v, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
