package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// RelatedLink is an orderable child shared by several page types; exactly
// one of the parent FKs is set, matching whichever page owns the link.
type RelatedLink struct {
	ent.Schema
}

func (RelatedLink) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		LinkFieldsMixin{},
	}
}

func (RelatedLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(255).
			Comment("Link title"),

		field.Int("sort_order").
			Default(0),

		field.UUID("standard_page_id", uuid.UUID{}).
			Optional(),

		field.UUID("blog_index_page_id", uuid.UUID{}).
			Optional(),

		field.UUID("blog_page_id", uuid.UUID{}).
			Optional(),

		field.UUID("person_page_id", uuid.UUID{}).
			Optional(),
	}
}

func (RelatedLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("standard_page", StandardPage.Type).
			Ref("related_links").
			Unique().
			Field("standard_page_id"),
		edge.From("blog_index_page", BlogIndexPage.Type).
			Ref("related_links").
			Unique().
			Field("blog_index_page_id"),
		edge.From("blog_page", BlogPage.Type).
			Ref("related_links").
			Unique().
			Field("blog_page_id"),
		edge.From("person_page", PersonPage.Type).
			Ref("related_links").
			Unique().
			Field("person_page_id"),
	}
}
