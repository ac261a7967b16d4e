package gen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema"
	"github.com/syssam/jgd/schema/field"
)

func TestGenerateMany(t *testing.T) {
	t.Parallel()
	e := schema.NewEntity("").Count(schema.RangeCount(1, 5)).Fields(
		field.Template("id", "${uuid.v4}"),
		field.Int("n", 0, 1000),
	).MustBuild()
	s := schema.Root(e)
	seeds := []uint64{1, 2, 3, 4, 5, 6, 7, 8}

	docs, err := GenerateMany(context.Background(), s, seeds)
	require.NoError(t, err)
	require.Len(t, docs, len(seeds))
	for i, seed := range seeds {
		want, err := Generate(context.Background(), s, WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, mustJSON(t, want), mustJSON(t, docs[i]), "seed %d", seed)
	}
}

func TestGenerateMany_Errors(t *testing.T) {
	t.Parallel()
	e := schema.NewEntity("").Fields(field.Template("x", "${nope.nothing}")).MustBuild()
	_, err := GenerateMany(context.Background(), schema.Root(e), []uint64{1, 2}, WithRegistry(jgd.NewRegistry()))
	assert.ErrorIs(t, err, jgd.ErrUnknownPattern)

	_, err = GenerateMany(context.Background(), schema.Root(e), []uint64{1}, WithMaxDepth(0))
	assert.True(t, IsConfigError(err))

	_, err = GenerateMany(context.Background(), &schema.Schema{}, []uint64{1})
	assert.True(t, jgd.IsSchemaError(err))

	docs, err := GenerateMany(context.Background(), schema.Root(e), nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
