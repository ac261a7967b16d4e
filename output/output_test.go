package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/jgd"
)

func sample() *jgd.Object {
	o := jgd.NewObject(3)
	o.Set("name", "<b>Ada</b>")
	o.Set("age", int64(36))
	o.Set("score", 4.5)
	return o
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: JSON},
		{in: "JSON", want: JSON},
		{in: "yml", want: YAML},
		{in: " yaml ", want: YAML},
		{in: "mp", want: MsgPack},
		{in: "msgpack", want: MsgPack},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ".json", JSON.Ext())
	assert.Equal(t, ".yaml", YAML.Ext())
	assert.Equal(t, ".msgpack", MsgPack.Ext())
	assert.Len(t, Formats(), 3)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	t.Run("Compact", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, sample()))
		assert.Equal(t, "{\"name\":\"<b>Ada</b>\",\"age\":36,\"score\":4.5}\n", buf.String())
	})
	t.Run("Pretty", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, []any{int64(1)}, Pretty()))
		assert.Equal(t, "[\n  1\n]\n", buf.String())
	})
	t.Run("Indent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, []any{int64(1)}, Pretty(), Indent(4)))
		assert.Equal(t, "[\n    1\n]\n", buf.String())
	})
	t.Run("Unsupported", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := WriteJSON(&buf, make(chan int))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output: encoding json")
	})
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sample()))
	assert.Equal(t, "name: <b>Ada</b>\nage: 36\nscore: 4.5\n", buf.String())

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, 36, back["age"])
}

func TestWriteMsgPack(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteMsgPack(&buf, sample()))
	dec := msgpack.NewDecoder(bytes.NewReader(buf.Bytes()))
	n, err := dec.DecodeMapLen()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	key, err := dec.DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "name", key)
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()
			b, err := Marshal(f, sample())
			require.NoError(t, err)
			assert.NotEmpty(t, b)
		})
	}
	_, err := Marshal(Format("xml"), sample())
	require.Error(t, err)
}
