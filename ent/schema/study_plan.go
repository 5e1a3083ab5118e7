package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyPlan is one generated plan for a single subject.
type StudyPlan struct {
	ent.Schema
}

func (StudyPlan) Mixin() []ent.Mixin {
	return []ent.Mixin{GeneratedMixin{}}
}

func (StudyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty().
			Comment("beginner, intermediate or advanced"),
		field.Int("estimated_hours").
			Default(0),
		field.String("status").
			NotEmpty().
			Comment("completed or in_progress"),
		field.Bool("active").
			Default(false).
			Comment("Only the most recent plan is active"),
		field.Time("created_at").
			Immutable(),
	}
}

func (StudyPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("created_at"),
	}
}
