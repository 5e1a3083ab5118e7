package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HelpRequest is one templated question tied to a progress record.
type HelpRequest struct {
	ent.Schema
}

func (HelpRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{GeneratedMixin{}}
}

func (HelpRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			NotEmpty().
			Immutable().
			Comment("Owning progress record"),
		field.String("question").
			NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("concept, technical, navigation or content"),
		field.String("priority").
			NotEmpty().
			Comment("medium or high"),
		field.Bool("resolved").
			Default(false),
		field.Time("requested_at").
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

func (HelpRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("record_id"),
	}
}
