package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// GeneratedMixin provides the base fields shared by all generated
// entities: a UUID primary key and the owning learner.
type GeneratedMixin struct {
	mixin.Schema
}

func (GeneratedMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned by the generator"),
		field.String("learner_id").
			NotEmpty().
			Immutable().
			Comment("Owning learner"),
	}
}

func (GeneratedMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
