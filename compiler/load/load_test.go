package load_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/compiler/load"
	"github.com/syssam/jgd/schema"
)

func TestFile(t *testing.T) {
	t.Parallel()
	for _, path := range []string{"testdata/valid/shop.json", "testdata/valid/shop.yaml"} {
		t.Run(path, func(t *testing.T) {
			s, err := load.File(path)
			require.NoError(t, err)
			assert.Equal(t, "jgd/v1", s.Format)
			assert.Equal(t, "1.0", s.Version)
			require.NotNil(t, s.Seed)
			assert.Equal(t, uint64(42), *s.Seed)
			assert.Equal(t, "FR_FR", s.DefaultLocale)
			assert.Nil(t, s.Root)
			assert.Equal(t, []string{"users", "orders"}, s.Entities.Names())

			users, _ := s.Entities.Get("users")
			assert.Equal(t, schema.RangeCount(2, 4), *users.Count)
			assert.Equal(t, []string{"email"}, users.UniqueBy)
			assert.Equal(t, []string{"id", "email", "age", "score", "active", "nickname", "tags", "phone", "address"}, users.FieldNames())

			kinds := make([]schema.SpecKind, len(users.Fields))
			for i, f := range users.Fields {
				kinds[i] = f.Spec.Kind()
			}
			assert.Equal(t, []schema.SpecKind{
				schema.KindTemplate, schema.KindTemplate, schema.KindNumber, schema.KindNumber,
				schema.KindLiteral, schema.KindLiteral, schema.KindArray, schema.KindOptional, schema.KindEntity,
			}, kinds)

			age, _ := users.Field("age")
			assert.Equal(t, schema.NumberRange{Min: 18, Max: 65, Integer: true}, age)
			score, _ := users.Field("score")
			assert.Equal(t, schema.NumberRange{Min: 0, Max: 5}, score)
			active, _ := users.Field("active")
			assert.Equal(t, schema.Literal{Value: true}, active)
			nick, _ := users.Field("nickname")
			assert.Equal(t, schema.Literal{Value: nil}, nick)
			tags, _ := users.Field("tags")
			assert.Equal(t, schema.RangeCount(0, 3), tags.(schema.ArraySpec).Count)
			phone, _ := users.Field("phone")
			assert.Equal(t, 0.3, phone.(schema.OptionalSpec).Prob)
			addr, _ := users.Field("address")
			nested := addr.(schema.NestedEntity).Entity
			assert.Equal(t, "address", nested.Name)
			zip, _ := nested.Field("zip")
			assert.Equal(t, schema.Literal{Value: int64(75001)}, zip)

			orders, _ := s.Entities.Get("orders")
			assert.Equal(t, schema.FixedCount(3), *orders.Count)
			require.NotNil(t, orders.Seed)
			assert.Equal(t, uint64(7), *orders.Seed)
			city, _ := orders.Field("city")
			assert.Equal(t, schema.Reference{Entity: "users", Path: []string{"address", "city"}}, city)
			lines, _ := orders.Field("lines")
			assert.Equal(t, schema.FixedCount(2), lines.(schema.ArraySpec).Count)
		})
	}
}

func TestJSONAndYAMLAgree(t *testing.T) {
	t.Parallel()
	js, err := load.File("testdata/valid/shop.json")
	require.NoError(t, err)
	ys, err := load.File("testdata/valid/shop.yaml")
	require.NoError(t, err)
	jb, err := json.Marshal(load.Document(js))
	require.NoError(t, err)
	yb, err := json.Marshal(load.Document(ys))
	require.NoError(t, err)
	assert.JSONEq(t, string(jb), string(yb))
}

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()
	s, err := load.File("testdata/valid/shop.yaml")
	require.NoError(t, err)

	for _, encode := range []func(any) ([]byte, error){json.Marshal, yaml.Marshal} {
		b, err := encode(load.Document(s))
		require.NoError(t, err)
		again, err := load.Bytes(b)
		require.NoError(t, err, string(b))
		want, _ := json.Marshal(load.Document(s))
		got, _ := json.Marshal(load.Document(again))
		assert.JSONEq(t, string(want), string(got))
	}
}

func TestLiteralScalars(t *testing.T) {
	t.Parallel()
	s, err := load.Bytes([]byte(`{"$format":"x","version":"1","root":{"fields":{
		"i": 42, "f": 2.5, "e": 1e3, "s": "text", "b": false, "n": null, "big": 99999999999999999999
	}}}`))
	require.NoError(t, err)
	want := map[string]any{
		"i": int64(42), "f": 2.5, "e": 1000.0, "s": "text", "b": false, "n": nil, "big": 1e20,
	}
	for name, v := range want {
		spec, ok := s.Root.Field(name)
		require.True(t, ok, name)
		assert.Equal(t, schema.Literal{Value: v}, spec, name)
	}
	assert.Equal(t, "root", s.Root.Name)
}

func TestCountShapes(t *testing.T) {
	t.Parallel()
	tests := map[string]schema.Count{
		`3`:                 schema.FixedCount(3),
		`[1, 5]`:            schema.RangeCount(1, 5),
		`{"fixed": 2}`:      schema.FixedCount(2),
		`{"range": [0, 4]}`: schema.RangeCount(0, 4),
	}
	for count, want := range tests {
		t.Run(count, func(t *testing.T) {
			s, err := load.Bytes([]byte(`{"$format":"x","version":"1","root":{"count":` + count + `,"fields":{}}}`))
			require.NoError(t, err)
			assert.Equal(t, want, *s.Root.Count)
		})
	}
}

func TestVersionNumber(t *testing.T) {
	t.Parallel()
	s, err := load.Bytes([]byte("$format: x\nversion: 2\nroot: {fields: {}}\n"))
	require.NoError(t, err)
	assert.Equal(t, "2", s.Version)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		doc   string
		check func(error) bool
	}{
		{"empty", ``, jgd.IsSchemaError},
		{"malformed json", `{"$format": }`, jgd.IsSchemaError},
		{"trailing json", `{"$format":"x","version":"1","root":{"fields":{}}} {}`, jgd.IsSchemaError},
		{"malformed yaml", "root: [\n", jgd.IsSchemaError},
		{"not an object", `- 1`, jgd.IsSchemaError},
		{"missing format", `{"version":"1","root":{"fields":{}}}`, jgd.IsSchemaError},
		{"missing version", `{"$format":"x","root":{"fields":{}}}`, jgd.IsSchemaError},
		{"both", `{"$format":"x","version":"1","root":{"fields":{}},"entities":{}}`, jgd.IsSchemaError},
		{"neither", `{"$format":"x","version":"1"}`, jgd.IsSchemaError},
		{"negative seed", `{"$format":"x","version":"1","seed":-1,"root":{"fields":{}}}`, jgd.IsSchemaError},
		{"missing fields", `{"$format":"x","version":"1","root":{"count":1}}`, jgd.IsSchemaError},
		{"unknown entity key", `{"$format":"x","version":"1","root":{"fields":{},"colour":1}}`, jgd.IsSchemaError},
		{"duplicate key", "$format: x\nversion: '1'\nroot:\n  fields:\n    a: 1\n    a: 2\n", jgd.IsSchemaError},
		{"bad count", `{"$format":"x","version":"1","root":{"count":"many","fields":{}}}`, jgd.IsSchemaError},
		{"fractional count", `{"$format":"x","version":"1","root":{"count":1.5,"fields":{}}}`, jgd.IsSchemaError},
		{"negative count", `{"$format":"x","version":"1","root":{"count":-2,"fields":{}}}`, func(err error) bool {
			return errors.Is(err, jgd.ErrInvalidRange)
		}},
		{"unknown shape", `{"$format":"x","version":"1","root":{"fields":{"a":{"colour":"red"}}}}`, func(err error) bool {
			return errors.Is(err, jgd.ErrUnknownShape)
		}},
		{"list field", `{"$format":"x","version":"1","root":{"fields":{"a":[1,2]}}}`, func(err error) bool {
			return errors.Is(err, jgd.ErrUnknownShape)
		}},
		{"bad ref", `{"$format":"x","version":"1","entities":{"a":{"fields":{"r":{"ref":"nodot"}}}}}`, func(err error) bool {
			return errors.Is(err, jgd.ErrUnknownShape)
		}},
		{"inverted range", `{"$format":"x","version":"1","root":{"fields":{"a":{"number":{"min":10,"max":5}}}}}`, func(err error) bool {
			return jgd.IsSpecError(err) && errors.Is(err, jgd.ErrInvalidRange)
		}},
		{"bad probability", `{"$format":"x","version":"1","root":{"fields":{"a":{"optional":{"of":1,"prob":2}}}}}`, func(err error) bool {
			return errors.Is(err, jgd.ErrInvalidProbability)
		}},
		{"nested array", `{"$format":"x","version":"1","root":{"fields":{"a":{"array":{"count":1,"of":{"count":1,"of":1}}}}}}`, func(err error) bool {
			return errors.Is(err, jgd.ErrNotPrimitive)
		}},
		{"bad placeholder", `{"$format":"x","version":"1","root":{"fields":{"a":"${name."}}}`, jgd.IsPatternError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load.Bytes([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}
}

func TestErrorLines(t *testing.T) {
	t.Parallel()
	doc := "$format: x\nversion: '1'\nroot:\n  count: many\n  fields: {}\n"
	_, err := load.Bytes([]byte(doc))
	var se *jgd.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 4, se.Line)
	assert.Equal(t, "root.count", se.Path)

	_, err = load.Bytes([]byte("{\n  \"$format\": \"x\",\n  \"version\": \"1\",\n  \"root\": {\"count\": \"many\", \"fields\": {}}\n}"))
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 4, se.Line)
}

func TestForwardReferenceFile(t *testing.T) {
	t.Parallel()
	_, err := load.File("testdata/failure/forward.yaml")
	require.Error(t, err)
	assert.True(t, jgd.IsSchemaError(err))
	assert.True(t, errors.Is(err, jgd.ErrForwardReference))
	assert.Contains(t, err.Error(), "testdata/failure/forward.yaml")
}

func TestMutualExclusionFile(t *testing.T) {
	t.Parallel()
	_, err := load.File("testdata/failure/both.json")
	assert.True(t, jgd.IsSchemaError(err))
}

func TestReaderAndDecode(t *testing.T) {
	t.Parallel()
	s, err := load.Reader(strings.NewReader("$format: x\nversion: '1'\nroot: {fields: {a: 1}}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, s.Root.FieldNames())

	// Decode skips validation.
	s, err = load.Decode([]byte(`{"$format":"x","version":"1","entities":{"a":{"fields":{"r":{"ref":"b.id"}}}}}`))
	require.NoError(t, err)
	assert.Error(t, s.Validate())

	_, err = load.File("testdata/does-not-exist.json")
	assert.Error(t, err)
}
