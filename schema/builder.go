package schema

import "github.com/syssam/jgd"

// FieldBuilder is implemented by the builders of package schema/field.
type FieldBuilder interface {
	Build() (Field, error)
}

// Mixin is a reusable set of fields prepended to an entity.
type Mixin interface {
	Fields() []FieldBuilder
}

// EntityBuilder assembles an Entity. Errors from field builders are
// collected and reported by Build.
type EntityBuilder struct {
	entity *Entity
	mixins []Mixin
	fields []FieldBuilder
}

// NewEntity starts an entity named name.
func NewEntity(name string) *EntityBuilder {
	return &EntityBuilder{entity: &Entity{Name: name}}
}

// Count makes the entity generate an array.
func (b *EntityBuilder) Count(c Count) *EntityBuilder {
	b.entity.Count = &c
	return b
}

// Seed gives the entity its own random stream.
func (b *EntityBuilder) Seed(seed uint64) *EntityBuilder {
	b.entity.Seed = &seed
	return b
}

// UniqueBy requires instances to differ in the named fields.
func (b *EntityBuilder) UniqueBy(fields ...string) *EntityBuilder {
	b.entity.UniqueBy = append(b.entity.UniqueBy, fields...)
	return b
}

// Mixin adds the fields of each mixin ahead of the entity's own fields.
func (b *EntityBuilder) Mixin(ms ...Mixin) *EntityBuilder {
	b.mixins = append(b.mixins, ms...)
	return b
}

// Fields appends fields in order.
func (b *EntityBuilder) Fields(fs ...FieldBuilder) *EntityBuilder {
	b.fields = append(b.fields, fs...)
	return b
}

// Build returns the entity.
func (b *EntityBuilder) Build() (*Entity, error) {
	var (
		all  []FieldBuilder
		errs []error
	)
	for _, m := range b.mixins {
		all = append(all, m.Fields()...)
	}
	all = append(all, b.fields...)
	e := *b.entity
	e.Fields = make([]Field, 0, len(all))
	for _, fb := range all {
		f, err := fb.Build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		e.Fields = append(e.Fields, f)
	}
	if err := jgd.NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return &e, nil
}

// MustBuild is like Build but panics on error.
func (b *EntityBuilder) MustBuild() *Entity {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}
