// Package schema is the in-memory model of a generator document.
//
// A Schema holds either a single root Entity or an ordered set of named
// entities. An Entity is an ordered list of fields, each bound to one
// FieldSpec variant:
//
//	Literal       a fixed JSON scalar
//	Template      a string with ${...} placeholders
//	NumberRange   a uniform integer or float draw
//	ArraySpec     a counted list of primitive values
//	OptionalSpec  a value present with some probability, otherwise null
//	Reference     a value sampled from an earlier entity
//	NestedEntity  an object, or array of objects when counted
//
// Schemas are usually produced by compiler/load, but can be assembled in Go
// with the builders of this package and of schema/field:
//
//	users := schema.NewEntity("users").
//	    Count(schema.FixedCount(10)).
//	    Mixin(mixin.ID{}).
//	    Fields(
//	        field.Template("email", "${internet.email}"),
//	        field.Int("age", 18, 65).Optional(0.8),
//	    )
//	s := schema.Multi(users.MustBuild())
//
// The model is immutable once validated; Validate performs every structural
// check up front so generation never re-inspects document shape.
package schema
