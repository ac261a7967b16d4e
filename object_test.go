package jgd_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/jgd"
)

func sampleObject() *jgd.Object {
	inner := jgd.NewObject(1)
	inner.Set("city", "Lyon")
	o := jgd.NewObject(4)
	o.Set("zeta", int64(1))
	o.Set("alpha", "a")
	o.Set("tags", []any{"x", nil, true})
	o.Set("address", inner)
	return o
}

func TestObject_Order(t *testing.T) {
	t.Parallel()
	o := sampleObject()
	assert.Equal(t, []string{"zeta", "alpha", "tags", "address"}, o.Keys())
	o.Set("zeta", int64(2))
	assert.Equal(t, 4, o.Len())
	v, ok := o.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, int64(2), v)

	var nilObj *jgd.Object
	assert.Equal(t, 0, nilObj.Len())
	_, ok = nilObj.Get("x")
	assert.False(t, ok)
}

func TestObject_MarshalJSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(sampleObject())
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"a","tags":["x",null,true],"address":{"city":"Lyon"}}`, string(b))
}

func TestObject_MarshalJSONNoHTMLEscape(t *testing.T) {
	t.Parallel()
	inner := jgd.NewObject(1)
	inner.Set("<b>", "Tom & Jerry")
	o := jgd.NewObject(2)
	o.Set("html", "<b>bold</b>")
	o.Set("nested", []any{inner})

	b, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"html":"<b>bold</b>","nested":[{"<b>":"Tom & Jerry"}]}`, string(b))

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(o))
	assert.Equal(t, string(b)+"\n", buf.String())
}

func TestObject_MarshalYAML(t *testing.T) {
	t.Parallel()
	b, err := yaml.Marshal(sampleObject())
	require.NoError(t, err)
	assert.Equal(t, "zeta: 1\nalpha: a\ntags:\n    - x\n    - null\n    - true\naddress:\n    city: Lyon\n", string(b))
}

func TestObject_EncodeMsgpack(t *testing.T) {
	t.Parallel()
	b, err := msgpack.Marshal(sampleObject())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, msgpack.Unmarshal(b, &m))
	assert.Equal(t, "a", m["alpha"])
	assert.Equal(t, map[string]any{"city": "Lyon"}, m["address"])

	dec := msgpack.NewDecoder(bytes.NewReader(b))
	n, err := dec.DecodeMapLen()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	first, err := dec.DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "zeta", first)
}

func TestPlain(t *testing.T) {
	t.Parallel()
	got := jgd.Plain([]any{sampleObject(), int64(3)})
	assert.Equal(t, []any{
		map[string]any{
			"zeta":    int64(1),
			"alpha":   "a",
			"tags":    []any{"x", nil, true},
			"address": map[string]any{"city": "Lyon"},
		},
		int64(3),
	}, got)
}
