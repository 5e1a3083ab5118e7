package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResourceUsage is one use of a supplementary resource.
type ResourceUsage struct {
	ent.Schema
}

func (ResourceUsage) Mixin() []ent.Mixin {
	return []ent.Mixin{GeneratedMixin{}}
}

func (ResourceUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("resource_id").
			NotEmpty().
			Comment("Derived from topic + resource type"),
		field.String("resource_type").
			NotEmpty(),
		field.Int("duration_seconds").
			Min(1),
		field.Bool("completed").
			Default(false),
		field.Int("rating").
			Optional().
			Nillable().
			Min(1).
			Max(5),
		field.Time("used_at").
			Immutable(),
	}
}

func (ResourceUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resource_id"),
	}
}
