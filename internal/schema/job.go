package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type JobIndexPage struct {
	ent.Schema
}

func (JobIndexPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (JobIndexPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),

		field.Text("intro").
			Optional(),
	}
}

func (JobIndexPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
	}
}

type JobPage struct {
	ent.Schema
}

func (JobPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (JobPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),

		field.Text("body").
			NotEmpty(),
	}
}

func (JobPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
	}
}
