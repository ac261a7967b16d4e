package field

import (
	"fmt"

	"github.com/syssam/jgd/schema"
)

// Builder builds one named field.
type Builder struct {
	name string
	spec schema.FieldSpec
	prob *float64
	err  error
}

var _ schema.FieldBuilder = (*Builder)(nil)

// Spec returns a builder for an already constructed spec.
func Spec(name string, spec schema.FieldSpec) *Builder {
	return &Builder{name: name, spec: spec}
}

// Literal returns a builder for a fixed scalar value.
func Literal(name string, v any) *Builder {
	return Spec(name, schema.Lit(v))
}

// Template returns a builder for a placeholder string. A string without
// placeholders becomes a literal.
func Template(name, pattern string) *Builder {
	spec, err := schema.Str(pattern)
	return &Builder{name: name, spec: spec, err: err}
}

// Int returns a builder for a uniform integer in [lo, hi].
func Int(name string, lo, hi int64) *Builder {
	return Spec(name, schema.IntRange(lo, hi))
}

// Float returns a builder for a uniform float in [lo, hi].
func Float(name string, lo, hi float64) *Builder {
	return Spec(name, schema.FloatRange(lo, hi))
}

// Array returns a builder for a counted list of primitive elements.
func Array(name string, c schema.Count, elem *Builder) *Builder {
	b := &Builder{name: name}
	of, err := elem.buildSpec()
	if err != nil {
		b.err = err
		return b
	}
	b.spec = schema.Array(c, of)
	return b
}

// Elem returns an unnamed builder for array elements. The value follows the
// same rules as Template.
func Elem(pattern string) *Builder {
	return Template("", pattern)
}

// Ref returns a builder sampling from an earlier entity, e.g. "users.id".
func Ref(name, ref string) *Builder {
	r, err := schema.ParseRef(ref)
	if err != nil {
		return &Builder{name: name, err: err}
	}
	return Spec(name, r)
}

// Nested returns a builder for an embedded entity. The entity takes the
// field name.
func Nested(name string, eb *schema.EntityBuilder) *Builder {
	e, err := eb.Build()
	if err != nil {
		return &Builder{name: name, err: err}
	}
	e.Name = name
	return Spec(name, schema.Nested(e))
}

// Optional makes the field null with probability 1-prob.
func (b *Builder) Optional(prob float64) *Builder {
	b.prob = &prob
	return b
}

// Name returns the field name.
func (b *Builder) Name() string { return b.name }

// Build implements schema.FieldBuilder.
func (b *Builder) Build() (schema.Field, error) {
	spec, err := b.buildSpec()
	if err != nil {
		return schema.Field{}, err
	}
	return schema.Field{Name: b.name, Spec: spec}, nil
}

func (b *Builder) buildSpec() (schema.FieldSpec, error) {
	if b.err != nil {
		return nil, fmt.Errorf("field %q: %w", b.name, b.err)
	}
	if b.spec == nil {
		return nil, fmt.Errorf("field %q: missing spec", b.name)
	}
	if b.prob != nil {
		return schema.Optional(*b.prob, b.spec), nil
	}
	return b.spec, nil
}
