package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord is one scored attempt at an activity.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{GeneratedMixin{}}
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("activity_id").
			NotEmpty().
			Immutable(),
		field.String("topic_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.String("status").
			NotEmpty().
			Comment("not_started, in_progress or completed"),
		field.Float("score").
			Min(0).
			Max(100),
		field.Int("time_spent_minutes").
			Min(1),
		field.Int("attempt").
			Min(1).
			Comment("1-based attempt index"),
		field.Time("started_at").
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity_id"),
		index.Fields("subject_id"),
		index.Fields("started_at"),
	}
}
