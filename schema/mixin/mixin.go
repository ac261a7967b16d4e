package mixin

import (
	"github.com/syssam/jgd/schema"
	"github.com/syssam/jgd/schema/field"
)

// Schema is the default implementation of schema.Mixin.
// It should be embedded in custom mixins.
type Schema struct{}

// Fields returns the fields of the mixin.
func (Schema) Fields() []schema.FieldBuilder { return nil }

var _ schema.Mixin = (*Schema)(nil)

// ID adds an "id" field equal to the instance index.
type ID struct {
	Schema
}

// Fields returns the id field.
func (ID) Fields() []schema.FieldBuilder {
	return []schema.FieldBuilder{
		field.Template("id", "${index}"),
	}
}

// UUID adds an "id" field holding a random version 4 UUID.
type UUID struct {
	Schema
}

// Fields returns the id field.
func (UUID) Fields() []schema.FieldBuilder {
	return []schema.FieldBuilder{
		field.Template("id", "${uuid.v4}"),
	}
}

// Time adds created_at and updated_at timestamps.
type Time struct {
	Schema
}

// Fields returns the timestamp fields.
func (Time) Fields() []schema.FieldBuilder {
	return []schema.FieldBuilder{
		field.Template("created_at", "${chrono.dateTime}"),
		field.Template("updated_at", "${chrono.dateTime}"),
	}
}

// SoftDelete adds a deleted_at timestamp that is null nine times out of ten.
type SoftDelete struct {
	Schema
}

// Fields returns the deleted_at field.
func (SoftDelete) Fields() []schema.FieldBuilder {
	return []schema.FieldBuilder{
		field.Template("deleted_at", "${chrono.dateTime}").Optional(0.1),
	}
}

// TimeSoftDelete combines Time and SoftDelete.
type TimeSoftDelete struct {
	Schema
}

// Fields returns all timestamp fields.
func (TimeSoftDelete) Fields() []schema.FieldBuilder {
	return append(Time{}.Fields(), SoftDelete{}.Fields()...)
}

// Optional wraps a mixin so each of its fields is present with probability prob.
func Optional(m schema.Mixin, prob float64) schema.Mixin {
	return optional{Mixin: m, prob: prob}
}

type optional struct {
	schema.Mixin
	prob float64
}

func (o optional) Fields() []schema.FieldBuilder {
	fields := o.Mixin.Fields()
	out := make([]schema.FieldBuilder, len(fields))
	for i, f := range fields {
		out[i] = optionalField{FieldBuilder: f, prob: o.prob}
	}
	return out
}

type optionalField struct {
	schema.FieldBuilder
	prob float64
}

func (o optionalField) Build() (schema.Field, error) {
	f, err := o.FieldBuilder.Build()
	if err != nil {
		return f, err
	}
	f.Spec = schema.Optional(o.prob, f.Spec)
	return f, nil
}
