package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type PersonIndexPage struct {
	ent.Schema
}

func (PersonIndexPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PersonIndexPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),

		field.Text("intro").
			Optional(),
	}
}

func (PersonIndexPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
	}
}

type PersonPage struct {
	ent.Schema
}

func (PersonPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		ContactFieldsMixin{},
	}
}

func (PersonPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),

		field.String("first_name").
			NotEmpty().
			MaxLen(255),

		field.String("last_name").
			NotEmpty().
			MaxLen(255),

		field.String("role").
			Optional().
			MaxLen(255),

		field.Text("intro").
			Optional(),

		field.Text("biography").
			Optional(),

		field.UUID("image_id", uuid.UUID{}).
			Optional(),

		field.UUID("feed_image_id", uuid.UUID{}).
			Optional(),
	}
}

func (PersonPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
		edge.To("image", Image.Type).
			Unique().
			Field("image_id"),
		edge.To("feed_image", Image.Type).
			Unique().
			Field("feed_image_id"),
		edge.To("related_links", RelatedLink.Type),
	}
}
