package mixin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/compiler/gen"
	"github.com/syssam/jgd/schema"
	"github.com/syssam/jgd/schema/field"
	"github.com/syssam/jgd/schema/mixin"
)

func TestSchemaBaseMixin(t *testing.T) {
	assert.Nil(t, mixin.Schema{}.Fields())
	var _ schema.Mixin = mixin.Schema{}
}

func TestBuiltinMixins(t *testing.T) {
	tests := []struct {
		name  string
		mixin schema.Mixin
		want  []string
	}{
		{"ID", mixin.ID{}, []string{"id"}},
		{"UUID", mixin.UUID{}, []string{"id"}},
		{"Time", mixin.Time{}, []string{"created_at", "updated_at"}},
		{"SoftDelete", mixin.SoftDelete{}, []string{"deleted_at"}},
		{"TimeSoftDelete", mixin.TimeSoftDelete{}, []string{"created_at", "updated_at", "deleted_at"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := schema.NewEntity("things").Mixin(tt.mixin).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.FieldNames())
		})
	}
}

func TestMixinOrder(t *testing.T) {
	e := schema.NewEntity("users").
		Mixin(mixin.ID{}).
		Fields(field.Literal("active", true)).
		MustBuild()
	assert.Equal(t, []string{"id", "active"}, e.FieldNames())
}

func TestSoftDeleteIsOptional(t *testing.T) {
	e := schema.NewEntity("x").Mixin(mixin.SoftDelete{}).MustBuild()
	opt, ok := e.Fields[0].Spec.(schema.OptionalSpec)
	require.True(t, ok)
	assert.Equal(t, 0.1, opt.Prob)
	assert.Equal(t, schema.KindTemplate, opt.Of.Kind())
}

func TestOptional(t *testing.T) {
	e := schema.NewEntity("x").Mixin(mixin.Optional(mixin.Time{}, 0.5)).MustBuild()
	require.Len(t, e.Fields, 2)
	for _, f := range e.Fields {
		opt, ok := f.Spec.(schema.OptionalSpec)
		require.True(t, ok, f.Name)
		assert.Equal(t, 0.5, opt.Prob)
	}
}

func TestMixin_Generate(t *testing.T) {
	t.Parallel()
	events := schema.NewEntity("events").
		Count(schema.FixedCount(20)).
		Mixin(mixin.UUID{}, mixin.TimeSoftDelete{}).
		Fields(field.Template("kind", "${lorem.word}")).
		MustBuild()
	v, err := gen.Generate(context.Background(), schema.Multi(events), gen.WithSeed(3))
	require.NoError(t, err)
	list, ok := v.(*jgd.Object).Get("events")
	require.True(t, ok)
	require.Len(t, list, 20)
	for _, item := range list.([]any) {
		obj := item.(*jgd.Object)
		assert.Equal(t, []string{"id", "created_at", "updated_at", "deleted_at", "kind"}, obj.Keys())
		id, _ := obj.Get("id")
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, id)
	}
}
