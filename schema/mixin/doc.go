// Package mixin provides reusable field sets for entities.
//
// A mixin is any value with a Fields method. Its fields are placed ahead of
// the entity's own fields:
//
//	schema.NewEntity("users").
//	    Mixin(mixin.ID{}, mixin.Time{}).
//	    Fields(field.Template("email", "${internet.email}"))
//
// Custom mixins embed Schema and override Fields:
//
//	type Audit struct{ mixin.Schema }
//
//	func (Audit) Fields() []schema.FieldBuilder {
//	    return []schema.FieldBuilder{
//	        field.Template("created_by", "${name.firstName}"),
//	    }
//	}
package mixin
