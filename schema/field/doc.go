// Package field provides fluent builders for entity fields.
//
//	field.Literal("active", true)
//	field.Template("email", "${internet.email}")
//	field.Int("age", 18, 65)
//	field.Float("score", 0, 5).Optional(0.9)
//	field.Array("tags", schema.RangeCount(1, 3), field.Elem("${lorem.word}"))
//	field.Ref("author", "users.id")
//	field.Nested("address", schema.NewEntity("").Fields(
//	    field.Template("city", "${address.cityName}"),
//	))
//
// Every builder implements schema.FieldBuilder. Construction errors, such as
// a malformed placeholder, are kept on the builder and reported by Build.
package field
