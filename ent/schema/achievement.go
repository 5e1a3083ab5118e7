package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement is one earned award derived from aggregate progress.
type Achievement struct {
	ent.Schema
}

func (Achievement) Mixin() []ent.Mixin {
	return []ent.Mixin{GeneratedMixin{}}
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("type").
			NotEmpty().
			Comment("first_completion, subject_explorer or excellence_achiever"),
		field.String("title").
			NotEmpty(),
		field.String("description").
			NotEmpty(),
		field.Int("points").
			Min(0),
		field.Time("earned_at").
			Immutable().
			Comment("Taken from the triggering progress record"),
		field.JSON("metadata", map[string]string{}).
			Optional(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
	}
}
