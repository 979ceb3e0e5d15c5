package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Node is a position in the page tree. Every page type hangs off exactly
// one node; the node carries the tree position (materialized path), the
// promote fields shared by all page types, and the content-type
// discriminator used to reach the type-specific record.
type Node struct {
	ent.Schema
}

func (Node) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Node) Fields() []ent.Field {
	return []ent.Field{
		field.String("path").
			NotEmpty().
			Unique().
			Comment("Materialized path, fixed 4-char base-36 steps"),

		field.Int("depth").
			Positive(),

		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.String("slug").
			NotEmpty().
			MaxLen(255),

		field.String("url_path").
			NotEmpty().
			Unique().
			Comment(`Public URL of the page, e.g. "/blog/my-post/"`),

		field.Bool("live").
			Default(true).
			Comment("Visible-to-public flag"),

		field.Bool("show_in_menus").
			Default(false),

		field.String("seo_title").
			Optional().
			MaxLen(255),

		field.String("search_description").
			Optional(),

		field.String("content_type").
			NotEmpty().
			Comment("Page-type discriminator, see pagetree type constants"),
	}
}

func (Node) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("depth"),
		index.Fields("live", "show_in_menus"),
		index.Fields("content_type"),
	}
}
