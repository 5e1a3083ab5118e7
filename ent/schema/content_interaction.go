package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentInteraction is one touch of content within a study session.
type ContentInteraction struct {
	ent.Schema
}

func (ContentInteraction) Mixin() []ent.Mixin {
	return []ent.Mixin{GeneratedMixin{}}
}

func (ContentInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("content_id").
			NotEmpty().
			Comment("Derived from the owning progress record"),
		field.String("kind").
			NotEmpty(),
		field.Int("duration_seconds").
			Min(1),
		field.Bool("completed").
			Default(false),
		field.Time("occurred_at").
			Immutable(),
	}
}

func (ContentInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_id"),
	}
}
