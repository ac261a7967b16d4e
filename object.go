package jgd

import (
	"bytes"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Object is a generated JSON object that remembers the order in which its
// fields were set, so encoders emit fields in schema declaration order.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object with room for n fields.
func NewObject(n int) *Object {
	return &Object{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// Set assigns v to key, appending key if it is new.
func (o *Object) Set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the field names in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// MarshalJSON implements json.Marshaler, preserving field order. Keys and
// values are written without HTML escaping.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	encode := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends '\n'.
		return nil
	}
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encode(o.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, preserving field order.
func (o *Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if o == nil {
		return node, nil
	}
	for _, k := range o.keys {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		val := &yaml.Node{}
		if err := val.Encode(o.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

var _ msgpack.CustomEncoder = (*Object)(nil)

// EncodeMsgpack implements msgpack.CustomEncoder, preserving field order.
func (o *Object) EncodeMsgpack(enc *msgpack.Encoder) error {
	if o == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeMapLen(len(o.keys)); err != nil {
		return err
	}
	for _, k := range o.keys {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := enc.Encode(o.values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Plain converts a generated value into plain Go values: objects become
// map[string]any and arrays are converted element-wise.
func Plain(v any) any {
	switch v := v.(type) {
	case *Object:
		if v == nil {
			return nil
		}
		m := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			m[k] = Plain(v.values[k])
		}
		return m
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = Plain(e)
		}
		return out
	default:
		return v
	}
}
