package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type StandardPage struct {
	ent.Schema
}

func (StandardPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (StandardPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),

		field.Text("intro").
			Optional(),

		field.Text("body").
			Optional(),

		field.UUID("feed_image_id", uuid.UUID{}).
			Optional(),
	}
}

func (StandardPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
		edge.To("feed_image", Image.Type).
			Unique().
			Field("feed_image_id"),
		edge.To("related_links", RelatedLink.Type),
	}
}
