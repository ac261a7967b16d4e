package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema/template"
)

func TestParse_Single(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		key  string
		args jgd.Arguments
	}{
		{"${index}", "index", jgd.NoArgs()},
		{"${index(2)}", "index", jgd.FixedArg("2")},
		{"${name.firstName}", "name.firstName", jgd.NoArgs()},
		{"${number.float(1.5..2.5)}", "number.float", jgd.RangeArgs("1.5", "2.5")},
		{"${lorem.words(3, 6)}", "lorem.words", jgd.RangeArgs("3", "6")},
		{"${ chrono.date() }", "chrono.date", jgd.NoArgs()},
		{"${_private.key_2}", "_private.key_2", jgd.NoArgs()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tpl, err := template.Parse(tt.in)
			require.NoError(t, err)
			p := tpl.Single()
			require.NotNil(t, p)
			assert.Equal(t, tt.key, p.Key())
			assert.Equal(t, tt.args, p.Args)
			assert.Equal(t, tt.in, p.Raw)
		})
	}
}

func TestParse_Mixed(t *testing.T) {
	t.Parallel()
	tpl, err := template.Parse("item ${index} of ${count}!")
	require.NoError(t, err)
	assert.Nil(t, tpl.Single())
	require.Len(t, tpl.Segments, 5)
	assert.Equal(t, "item ", tpl.Segments[0].Literal)
	assert.Equal(t, "index", tpl.Segments[1].Placeholder.Key())
	assert.Equal(t, " of ", tpl.Segments[2].Literal)
	assert.Equal(t, "count", tpl.Segments[3].Placeholder.Key())
	assert.Equal(t, "!", tpl.Segments[4].Literal)
	assert.Len(t, tpl.Placeholders(), 2)
	assert.Equal(t, "item ${index} of ${count}!", tpl.String())
}

func TestParse_Adjacent(t *testing.T) {
	t.Parallel()
	tpl, err := template.Parse("${a.b}${c.d}")
	require.NoError(t, err)
	assert.Nil(t, tpl.Single())
	assert.Len(t, tpl.Segments, 2)
}

func TestParse_LiteralOnly(t *testing.T) {
	t.Parallel()
	tpl, err := template.Parse("costs $5 {not a placeholder}")
	require.NoError(t, err)
	require.Len(t, tpl.Segments, 1)
	assert.False(t, tpl.Segments[0].IsPlaceholder())
	assert.Equal(t, "costs $5 {not a placeholder}", tpl.Segments[0].Literal)
	assert.False(t, template.HasPlaceholder("plain"))
	assert.True(t, template.HasPlaceholder("x ${y}"))
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	for _, in := range []string{
		"${index",
		"${}",
		"${  }",
		"${name.}",
		"${.name}",
		"${1abc}",
		"${name-first}",
		"${index(2}",
		"${index(2)x}",
		"${f((1))}",
		"text ${a b}",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := template.Parse(in)
			require.Error(t, err)
			assert.True(t, jgd.IsPatternError(err))
		})
	}
}

func TestMustParse(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { template.MustParse("${index}") })
	assert.Panics(t, func() { template.MustParse("${") })
}
