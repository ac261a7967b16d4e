package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/compiler/load"
	"github.com/syssam/jgd/schema"
	"github.com/syssam/jgd/schema/field"
)

func mustLoad(t *testing.T, doc string) *schema.Schema {
	t.Helper()
	s, err := load.Bytes([]byte(doc))
	require.NoError(t, err)
	return s
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func get(t *testing.T, v any, key string) any {
	t.Helper()
	obj, ok := v.(*jgd.Object)
	require.True(t, ok, "expected *jgd.Object, got %T", v)
	val, ok := obj.Get(key)
	require.True(t, ok, "missing key %q", key)
	return val
}

func TestGenerate_IndexAndCount(t *testing.T) {
	t.Parallel()
	s := mustLoad(t, `{
		"$format": "jgd/v1",
		"version": "1",
		"seed": 7,
		"root": {
			"count": 3,
			"fields": {"id": "${index}", "label": "item ${index} of ${count}"}
		}
	}`)
	v, err := Generate(context.Background(), s, WithRegistry(jgd.NewRegistry()))
	require.NoError(t, err)
	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 3)
	for i, item := range arr {
		assert.Equal(t, int64(i+1), get(t, item, "id"))
		assert.Equal(t, fmt.Sprintf("item %d of 3", i+1), get(t, item, "label"))
	}
	assert.Equal(t, int64(2), get(t, arr[1], "id"))
	assert.Equal(t, "item 2 of 3", get(t, arr[1], "label"))
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	s := mustLoad(t, `
$format: jgd/v1
version: "1"
entities:
  users:
    count: [2, 6]
    fields:
      id: "${uuid.v4}"
      name: "${name.name}"
      email: "${internet.freeEmail}"
      age: {number: {min: 18, max: 90, integer: true}}
      score: {min: 0, max: 1}
      nickname: {optional: {of: "${internet.username}", prob: 0.5}}
      tags: {array: {count: [0, 3], of: "${lorem.word}"}}
  orders:
    count: [1, 4]
    fields:
      user: {ref: users.id}
      total: {number: {min: 1, max: 500}}
`)
	a, err := Run(context.Background(), s, WithSeed(42))
	require.NoError(t, err)
	b, err := Run(context.Background(), s, WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, mustJSON(t, a.Value), mustJSON(t, b.Value))
	assert.Equal(t, uint64(42), a.Seed)
	assert.Equal(t, a.Nodes, b.Nodes)
	assert.Positive(t, a.Nodes)

	c, err := Run(context.Background(), s, WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, mustJSON(t, a.Value), mustJSON(t, c.Value))
}

func TestRun_SeedSelection(t *testing.T) {
	t.Parallel()
	e := schema.NewEntity("").Fields(field.Int("n", 0, 1<<40)).MustBuild()

	res, err := Run(context.Background(), schema.Root(e).WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), res.Seed)

	res, err = Run(context.Background(), schema.Root(e).WithSeed(9), WithSeed(10))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), res.Seed, "option overrides document seed")

	res, err = Run(context.Background(), schema.Root(e))
	require.NoError(t, err)
	again, err := Run(context.Background(), schema.Root(e), WithSeed(res.Seed))
	require.NoError(t, err)
	assert.Equal(t, mustJSON(t, res.Value), mustJSON(t, again.Value), "reported seed reproduces the run")
}

func TestGenerate_CountBounds(t *testing.T) {
	t.Parallel()
	e := schema.NewEntity("").Count(schema.RangeCount(2, 4)).Fields(field.Literal("x", 1)).MustBuild()
	s := schema.Root(e)
	seen := make(map[int]bool)
	for seed := range uint64(100) {
		v, err := Generate(context.Background(), s, WithSeed(seed))
		require.NoError(t, err)
		n := len(v.([]any))
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 4)
		seen[n] = true
	}
	assert.Len(t, seen, 3)
}

func TestGenerate_Literals(t *testing.T) {
	t.Parallel()
	e := schema.NewEntity("").Fields(
		field.Literal("s", "plain"),
		field.Literal("i", 42),
		field.Literal("f", 3.5),
		field.Literal("b", true),
		field.Literal("z", nil),
	).MustBuild()
	v, err := Generate(context.Background(), schema.Root(e), WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, "plain", get(t, v, "s"))
	assert.Equal(t, int64(42), get(t, v, "i"))
	assert.Equal(t, 3.5, get(t, v, "f"))
	assert.Equal(t, true, get(t, v, "b"))
	assert.Nil(t, get(t, v, "z"))
	assert.Equal(t, []string{"s", "i", "f", "b", "z"}, v.(*jgd.Object).Keys())
}

func TestGenerate_IndexDepth(t *testing.T) {
	t.Parallel()
	s := mustLoad(t, `
$format: jgd/v1
version: "1"
root:
  count: 2
  fields:
    lines:
      count: 2
      fields:
        outer: "${index(2)}"
        inner: "${index}"
        tags:
          array:
            count: 2
            of: "${index(3)}.${index(2)}.${index}"
`)
	v, err := Generate(context.Background(), s, WithSeed(1))
	require.NoError(t, err)
	roots := v.([]any)
	require.Len(t, roots, 2)
	for i, r := range roots {
		lines := get(t, r, "lines").([]any)
		require.Len(t, lines, 2)
		for j, l := range lines {
			assert.Equal(t, int64(i+1), get(t, l, "outer"))
			assert.Equal(t, int64(j+1), get(t, l, "inner"))
			assert.Equal(t, []any{
				fmt.Sprintf("%d.%d.1", i+1, j+1),
				fmt.Sprintf("%d.%d.2", i+1, j+1),
			}, get(t, l, "tags"))
		}
	}
}

func TestGenerate_IndexOutOfRange(t *testing.T) {
	t.Parallel()
	for _, pattern := range []string{"${index(2)}", "${index(0)}"} {
		e := schema.NewEntity("").Count(schema.FixedCount(1)).Fields(field.Template("x", pattern)).MustBuild()
		_, err := Generate(context.Background(), schema.Root(e), WithSeed(1))
		require.Error(t, err, pattern)
		assert.True(t, jgd.IsPatternError(err))
		assert.ErrorIs(t, err, jgd.ErrIndexOutOfRange)
		var pe *jgd.PatternError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, pattern, pe.Pattern)
		assert.Equal(t, "root[1].x", pe.Path)
	}

	// No enclosing repetition at all.
	e := schema.NewEntity("").Fields(field.Template("x", "${index}")).MustBuild()
	_, err := Generate(context.Background(), schema.Root(e), WithSeed(1))
	assert.ErrorIs(t, err, jgd.ErrIndexOutOfRange)
}

func TestGenerate_ContextNames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "RootWithoutCount",
			doc: `{"root": {"fields": {
				"entity": "${entity.name}",
				"field": "${field.name}",
				"count": "${count}",
				"address": {"fields": {"owner": "${entity.name}/${field.name}"}}
			}}}`,
			want: `{"entity": "", "field": "field", "count": 1, "address": {"owner": "/owner"}}`,
		},
		{
			name: "CountedRoot",
			doc:  `{"root": {"count": 2, "fields": {"e": "${entity.name}"}}}`,
			want: `[{"e": ""}, {"e": ""}]`,
		},
		{
			name: "NestedInherits",
			doc: `{"entities": {"users": {"count": 2, "fields": {
				"name": "${entity.name}",
				"address": {"fields": {"owner": "${entity.name}"}},
				"pets": {"count": 1, "fields": {"kind": "${entity.name}"}},
				"tags": {"array": {"count": 2, "of": "${entity.name}"}}
			}}}}`,
			want: `{"users": [
				{"name": "users", "address": {"owner": "users"}, "pets": [{"kind": "users"}], "tags": ["users", "users"]},
				{"name": "users", "address": {"owner": "users"}, "pets": [{"kind": "users"}], "tags": ["users", "users"]}
			]}`,
		},
		{
			name: "TopLevelWithoutCount",
			doc:  `{"entities": {"settings": {"fields": {"e": "${entity.name}"}}}}`,
			want: `{"settings": {"e": ""}}`,
		},
		{
			name: "Siblings",
			doc: `{"entities": {
				"users": {"count": 1, "fields": {"e": "${entity.name}"}},
				"orders": {"count": 1, "fields": {"e": "${entity.name}", "f": "${field.name}"}}
			}}`,
			want: `{"users": [{"e": "users"}], "orders": [{"e": "orders", "f": "f"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := `{"$format": "jgd/v1", "version": "1", ` + strings.TrimPrefix(tt.doc, "{")
			v, err := Generate(context.Background(), mustLoad(t, doc), WithSeed(1))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, mustJSON(t, v))
		})
	}
}

func TestGenerate_Optional(t *testing.T) {
	t.Parallel()
	build := func(prob float64) *schema.Schema {
		return schema.Root(schema.NewEntity("").
			Count(schema.FixedCount(2000)).
			Fields(field.Literal("v", "x").Optional(prob)).
			MustBuild())
	}
	present := func(v any) int {
		n := 0
		for _, item := range v.([]any) {
			if x, _ := item.(*jgd.Object).Get("v"); x != nil {
				n++
			}
		}
		return n
	}

	v, err := Generate(context.Background(), build(1), WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 2000, present(v))

	v, err = Generate(context.Background(), build(0), WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 0, present(v))

	v, err = Generate(context.Background(), build(0.5), WithSeed(3))
	require.NoError(t, err)
	n := present(v)
	assert.Greater(t, n, 850)
	assert.Less(t, n, 1150)

	// An absent optional keeps its key with a null value.
	v, err = Generate(context.Background(), build(0), WithSeed(3))
	require.NoError(t, err)
	_, ok := v.([]any)[0].(*jgd.Object).Get("v")
	assert.True(t, ok)
}

func TestGenerate_InvalidSpecs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		spec schema.FieldSpec
		want error
	}{
		{"inverted number", schema.NumberRange{Min: 10, Max: 5, Integer: true}, jgd.ErrInvalidRange},
		{"inverted array count", schema.Array(schema.RangeCount(3, 1), schema.Lit(1)), jgd.ErrInvalidRange},
		{"probability", schema.Optional(1.5, schema.Lit(1)), jgd.ErrInvalidProbability},
		{"nested array element", schema.Array(schema.FixedCount(1), schema.Nested(&schema.Entity{Name: "x"})), jgd.ErrNotPrimitive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := schema.NewEntity("").Fields(field.Spec("f", tt.spec)).MustBuild()
			_, err := Generate(context.Background(), schema.Root(e), WithSeed(1))
			require.Error(t, err)
			assert.True(t, jgd.IsSpecError(err))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerate_Array(t *testing.T) {
	t.Parallel()
	e := schema.NewEntity("").Fields(
		field.Array("ids", schema.FixedCount(4), field.Elem("id-${index}")),
		field.Spec("nums", schema.Array(schema.FixedCount(3), schema.IntRange(5, 5))),
		field.Spec("empty", schema.Array(schema.FixedCount(0), schema.Lit("x"))),
	).MustBuild()
	v, err := Generate(context.Background(), schema.Root(e), WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []any{"id-1", "id-2", "id-3", "id-4"}, get(t, v, "ids"))
	assert.Equal(t, []any{int64(5), int64(5), int64(5)}, get(t, v, "nums"))
	assert.Equal(t, []any{}, get(t, v, "empty"))
}

func TestGenerate_UniqueBy(t *testing.T) {
	t.Parallel()

	t.Run("satisfiable", func(t *testing.T) {
		t.Parallel()
		e := schema.NewEntity("").Count(schema.FixedCount(5)).UniqueBy("n").
			Fields(field.Int("n", 1, 5)).MustBuild()
		v, err := Generate(context.Background(), schema.Root(e), WithSeed(8))
		require.NoError(t, err)
		var got []int64
		for _, item := range v.([]any) {
			got = append(got, get(t, item, "n").(int64))
		}
		assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5}, got)
	})

	t.Run("exhausted", func(t *testing.T) {
		t.Parallel()
		e := schema.NewEntity("").Count(schema.FixedCount(3)).UniqueBy("flag").
			Fields(field.Int("flag", 0, 1)).MustBuild()
		_, err := Generate(context.Background(), schema.Root(e), WithSeed(8), WithMaxUniqueAttempts(20))
		require.Error(t, err)
		assert.True(t, jgd.IsResourceError(err))
		assert.ErrorIs(t, err, jgd.ErrUniquenessExhausted)
		var re *jgd.ResourceError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, 20, re.Limit)
		assert.Equal(t, "root[3]", re.Path)
	})
}

func TestGenerate_Budgets(t *testing.T) {
	t.Parallel()

	t.Run("count beyond node budget fails before iterating", func(t *testing.T) {
		t.Parallel()
		e := schema.NewEntity("").Count(schema.FixedCount(100)).Fields(field.Literal("x", 1)).MustBuild()
		_, err := Generate(context.Background(), schema.Root(e), WithSeed(1), WithMaxNodes(50))
		require.Error(t, err)
		assert.ErrorIs(t, err, jgd.ErrBudgetExceeded)
		assert.Contains(t, err.Error(), "count 100")
	})

	t.Run("node budget", func(t *testing.T) {
		t.Parallel()
		e := schema.NewEntity("").Count(schema.FixedCount(10)).
			Fields(field.Literal("x", 1), field.Literal("y", 2)).MustBuild()
		_, err := Generate(context.Background(), schema.Root(e), WithSeed(1), WithMaxNodes(20))
		assert.ErrorIs(t, err, jgd.ErrBudgetExceeded)

		res, err := Run(context.Background(), schema.Root(e), WithSeed(1), WithMaxNodes(30))
		require.NoError(t, err)
		assert.Equal(t, 30, res.Nodes)
	})

	t.Run("depth", func(t *testing.T) {
		t.Parallel()
		inner := schema.NewEntity("").Fields(field.Literal("x", 1))
		mid := schema.NewEntity("").Fields(field.Nested("c", inner))
		e := schema.NewEntity("").Fields(field.Nested("b", mid)).MustBuild()
		_, err := Generate(context.Background(), schema.Root(e), WithSeed(1), WithMaxDepth(2))
		require.Error(t, err)
		assert.ErrorIs(t, err, jgd.ErrBudgetExceeded)
		var re *jgd.ResourceError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "root.b.c", re.Path)

		_, err = Generate(context.Background(), schema.Root(e), WithSeed(1), WithMaxDepth(3))
		assert.NoError(t, err)
	})
}

func usersAndOrders(usersCount int) *schema.Schema {
	users := schema.NewEntity("users").Count(schema.FixedCount(usersCount)).Fields(
		field.Template("id", "${index}"),
		field.Nested("address", schema.NewEntity("").Fields(
			field.Template("city", "city-${index}"),
		)),
	).MustBuild()
	orders := schema.NewEntity("orders").Count(schema.FixedCount(20)).Fields(
		field.Ref("user", "users.id"),
		field.Ref("city", "users.address.city"),
	).MustBuild()
	return schema.Multi(users, orders)
}

func TestGenerate_References(t *testing.T) {
	t.Parallel()
	v, err := Generate(context.Background(), usersAndOrders(3), WithSeed(5))
	require.NoError(t, err)
	root := v.(*jgd.Object)
	assert.Equal(t, []string{"users", "orders"}, root.Keys())

	orders := get(t, v, "orders").([]any)
	require.Len(t, orders, 20)
	for _, o := range orders {
		assert.Contains(t, []any{int64(1), int64(2), int64(3)}, get(t, o, "user"))
		assert.Contains(t, []any{"city-1", "city-2", "city-3"}, get(t, o, "city"))
	}
}

func TestGenerate_ReferenceEmptyPool(t *testing.T) {
	t.Parallel()
	v, err := Generate(context.Background(), usersAndOrders(0), WithSeed(5))
	require.NoError(t, err)
	for _, o := range get(t, v, "orders").([]any) {
		assert.Nil(t, get(t, o, "user"))
	}
}

func TestGenerate_ReferenceErrors(t *testing.T) {
	t.Parallel()

	t.Run("forward", func(t *testing.T) {
		t.Parallel()
		orders := schema.NewEntity("orders").Fields(field.Ref("user", "users.id")).MustBuild()
		users := schema.NewEntity("users").Fields(field.Literal("id", 1)).MustBuild()
		_, err := Generate(context.Background(), schema.Multi(orders, users), WithSeed(1))
		require.Error(t, err)
		assert.True(t, jgd.IsSchemaError(err))
		assert.True(t, jgd.IsReferenceError(err))
		assert.ErrorIs(t, err, jgd.ErrForwardReference)
	})

	t.Run("undeclared", func(t *testing.T) {
		t.Parallel()
		orders := schema.NewEntity("orders").Fields(field.Ref("user", "users.id")).MustBuild()
		_, err := Generate(context.Background(), schema.Multi(orders), WithSeed(1))
		assert.ErrorIs(t, err, jgd.ErrUndeclaredReference)
	})

	t.Run("missing nested key", func(t *testing.T) {
		t.Parallel()
		users := schema.NewEntity("users").Fields(field.Literal("id", 1)).MustBuild()
		orders := schema.NewEntity("orders").Fields(field.Ref("user", "users.id.deeper")).MustBuild()
		_, err := Generate(context.Background(), schema.Multi(users, orders), WithSeed(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, jgd.ErrUndeclaredReference)
		var re *jgd.ReferenceError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "orders.user", re.Path)
		assert.Equal(t, "users.id.deeper", re.Ref)
	})
}

func TestGenerate_EntitySeed(t *testing.T) {
	t.Parallel()
	fixed := schema.NewEntity("fixed").Seed(99).Count(schema.FixedCount(3)).
		Fields(field.Int("n", 0, 1<<40)).MustBuild()
	free := schema.NewEntity("free").Count(schema.FixedCount(3)).
		Fields(field.Int("n", 0, 1<<40)).MustBuild()
	s := schema.Multi(fixed, free)

	a, err := Generate(context.Background(), s, WithSeed(1))
	require.NoError(t, err)
	b, err := Generate(context.Background(), s, WithSeed(2))
	require.NoError(t, err)
	assert.Equal(t, mustJSON(t, get(t, a, "fixed")), mustJSON(t, get(t, b, "fixed")))
	assert.NotEqual(t, mustJSON(t, get(t, a, "free")), mustJSON(t, get(t, b, "free")))
}

func TestGenerate_CustomKeys(t *testing.T) {
	t.Parallel()
	reg := jgd.NewRegistry()
	require.NoError(t, reg.Register("shop.sku", func(args jgd.Arguments) (any, error) {
		return "SKU-" + args.Str("0"), nil
	}))
	require.NoError(t, reg.Register("answer", func(jgd.Arguments) (any, error) {
		return 42, nil
	}))
	require.NoError(t, reg.Register("name.firstName", func(jgd.Arguments) (any, error) {
		return "Override", nil
	}))
	require.NoError(t, reg.Register("broken", func(jgd.Arguments) (any, error) {
		return nil, errors.New("boom")
	}))

	e := schema.NewEntity("").Fields(
		field.Template("sku", "${shop.sku(7)}"),
		field.Template("answer", "${answer}"),
		field.Template("text", "a=${answer}"),
		field.Template("name", "${name.firstName}"),
	).MustBuild()
	v, err := Generate(context.Background(), schema.Root(e), WithSeed(1), WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, "SKU-7", get(t, v, "sku"))
	assert.Equal(t, int64(42), get(t, v, "answer"))
	assert.Equal(t, "a=42", get(t, v, "text"))
	assert.Equal(t, "Override", get(t, v, "name"))

	e = schema.NewEntity("").Fields(field.Template("x", "${broken}")).MustBuild()
	_, err = Generate(context.Background(), schema.Root(e), WithSeed(1), WithRegistry(reg))
	require.Error(t, err)
	assert.True(t, jgd.IsPatternError(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestGenerate_UnknownPattern(t *testing.T) {
	t.Parallel()
	for _, pattern := range []string{"${nope.nothing}", "${bogus}", "id ${nope.nothing} here"} {
		e := schema.NewEntity("").Fields(field.Template("x", pattern)).MustBuild()
		_, err := Generate(context.Background(), schema.Root(e), WithSeed(1), WithRegistry(jgd.NewRegistry()))
		require.Error(t, err, pattern)
		assert.True(t, jgd.IsPatternError(err))
		assert.ErrorIs(t, err, jgd.ErrUnknownPattern)
		assert.Contains(t, err.Error(), "root.x")
	}
}

func TestGenerate_Provider(t *testing.T) {
	t.Parallel()
	e := schema.NewEntity("").Fields(
		field.Template("country", "${address.countryCode}"),
		field.Template("words", "${lorem.words(3)}"),
	).MustBuild()
	v, err := Generate(context.Background(), schema.Root(e), WithSeed(1), WithLocale("FR_FR"))
	require.NoError(t, err)
	assert.Equal(t, "FR", get(t, v, "country"))
	assert.Len(t, strings.Fields(get(t, v, "words").(string)), 3)
}

func TestGenerate_UnsupportedLocale(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	e := schema.NewEntity("").Fields(field.Template("country", "${address.countryCode}")).MustBuild()
	v, err := Generate(context.Background(), schema.Root(e), WithSeed(1), WithLocale("XX_XX"), WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, "US", get(t, v, "country"))
	assert.Contains(t, buf.String(), "unsupported locale")
	assert.Contains(t, buf.String(), "XX_XX")
}

func TestGenerate_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := schema.NewEntity("").Fields(field.Literal("x", 1)).MustBuild()
	_, err := Generate(ctx, schema.Root(e), WithSeed(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	t.Parallel()
	e := schema.NewEntity("").Fields(field.Literal("x", 1)).MustBuild()
	_, err := Generate(context.Background(), schema.Root(e), WithMaxNodes(0))
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestGenerate_InvalidSchema(t *testing.T) {
	t.Parallel()
	_, err := Generate(context.Background(), &schema.Schema{Format: "x", Version: "1"})
	require.Error(t, err)
	assert.True(t, jgd.IsSchemaError(err))
}
