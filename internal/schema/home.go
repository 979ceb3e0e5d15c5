package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type HomePage struct {
	ent.Schema
}

func (HomePage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (HomePage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),
	}
}

func (HomePage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
		edge.To("carousel_items", CarouselItem.Type),
	}
}

// CarouselItem is an orderable child of the home page.
type CarouselItem struct {
	ent.Schema
}

func (CarouselItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		LinkFieldsMixin{},
	}
}

func (CarouselItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("sort_order").
			Default(0),

		field.UUID("image_id", uuid.UUID{}).
			Optional(),

		field.String("embed_url").
			Optional().
			MaxLen(2048),

		field.String("caption").
			Optional().
			MaxLen(255),

		field.UUID("home_page_id", uuid.UUID{}),
	}
}

func (CarouselItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("home_page_id", "sort_order"),
	}
}

func (CarouselItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("image", Image.Type).
			Unique().
			Field("image_id"),
		edge.From("home_page", HomePage.Type).
			Ref("carousel_items").
			Unique().
			Required().
			Field("home_page_id"),
	}
}
