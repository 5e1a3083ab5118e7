package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Learner is a registered learner generated data belongs to.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Catalog learner id"),
		field.String("display_name").
			NotEmpty(),
		field.Int("grade").
			Min(1).
			Comment("Grade level used for catalog lookups"),
	}
}
