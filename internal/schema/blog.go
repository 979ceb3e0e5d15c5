package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type BlogIndexPage struct {
	ent.Schema
}

func (BlogIndexPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BlogIndexPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),

		field.Text("intro").
			Optional(),
	}
}

func (BlogIndexPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
		edge.To("related_links", RelatedLink.Type),
	}
}

type BlogPage struct {
	ent.Schema
}

func (BlogPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BlogPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),

		field.Text("intro").
			Optional(),

		field.Text("body").
			NotEmpty(),

		field.Time("date").
			Comment("Post date"),

		field.UUID("feed_image_id", uuid.UUID{}).
			Optional(),
	}
}

func (BlogPage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}

func (BlogPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
		edge.To("feed_image", Image.Type).
			Unique().
			Field("feed_image_id"),
		edge.To("tags", Tag.Type),
		edge.To("related_links", RelatedLink.Type),
		edge.To("authorships", BlogAuthorship.Type),
	}
}

type Tag struct {
	ent.Schema
}

func (Tag) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (Tag) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			MaxLen(100),
	}
}

func (Tag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("blog_pages", BlogPage.Type).
			Ref("tags"),
	}
}

// BlogAuthorship is an orderable join crediting a person page as an
// author of a blog entry.
type BlogAuthorship struct {
	ent.Schema
}

func (BlogAuthorship) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (BlogAuthorship) Fields() []ent.Field {
	return []ent.Field{
		field.Int("sort_order").
			Default(0),

		field.UUID("blog_page_id", uuid.UUID{}),

		field.UUID("person_page_id", uuid.UUID{}).
			Optional(),
	}
}

func (BlogAuthorship) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blog_page_id", "sort_order"),
	}
}

func (BlogAuthorship) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("blog_page", BlogPage.Type).
			Ref("authorships").
			Unique().
			Required().
			Field("blog_page_id"),
		edge.To("author", PersonPage.Type).
			Unique().
			Field("person_page_id"),
	}
}
