package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity is one unit of work inside a study plan.
type Activity struct {
	ent.Schema
}

func (Activity) Mixin() []ent.Mixin {
	return []ent.Mixin{GeneratedMixin{}}
}

func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Immutable(),
		field.String("topic_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("lesson, practice, quiz, project or review"),
		field.String("difficulty").
			NotEmpty().
			Comment("Copied from the source topic"),
		field.Int("estimated_minutes").
			Min(1),
		field.Int("ordinal").
			Min(0).
			Comment("Position within the plan"),
		field.Bool("required").
			Default(true),
	}
}

func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
		index.Fields("plan_id", "ordinal"),
	}
}
