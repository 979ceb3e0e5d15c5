package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Advert is a snippet: a standalone record outside the page tree,
// independently listable and optionally tied to an owning page.
type Advert struct {
	ent.Schema
}

func (Advert) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Advert) Fields() []ent.Field {
	return []ent.Field{
		field.String("text").
			NotEmpty().
			MaxLen(255),

		field.String("url").
			Optional().
			MaxLen(2048),

		field.UUID("node_id", uuid.UUID{}).
			Optional().
			Comment("Owning page, if any"),
	}
}

func (Advert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Field("node_id"),
		edge.To("placements", AdvertPlacement.Type),
	}
}

// AdvertPlacement places an advert on a page.
type AdvertPlacement struct {
	ent.Schema
}

func (AdvertPlacement) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (AdvertPlacement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}),
		field.UUID("advert_id", uuid.UUID{}),
	}
}

func (AdvertPlacement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_id", "advert_id").Unique(),
	}
}

func (AdvertPlacement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
		edge.From("advert", Advert.Type).
			Ref("placements").
			Unique().
			Required().
			Field("advert_id"),
	}
}
