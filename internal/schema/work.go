package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type WorkIndexPage struct {
	ent.Schema
}

func (WorkIndexPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (WorkIndexPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),

		field.Text("intro").
			Optional(),
	}
}

func (WorkIndexPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
	}
}

type WorkPage struct {
	ent.Schema
}

func (WorkPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (WorkPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Unique(),

		field.String("summary").
			NotEmpty().
			MaxLen(255),

		field.Text("intro").
			Optional(),

		field.Text("body").
			Optional(),
	}
}

func (WorkPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("node", Node.Type).
			Unique().
			Required().
			Field("node_id"),
		edge.To("screenshots", WorkScreenshot.Type),
	}
}

// WorkScreenshot is an orderable child of a work page.
type WorkScreenshot struct {
	ent.Schema
}

func (WorkScreenshot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (WorkScreenshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int("sort_order").
			Default(0),

		field.UUID("image_id", uuid.UUID{}).
			Optional(),

		field.UUID("work_page_id", uuid.UUID{}),
	}
}

func (WorkScreenshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("work_page_id", "sort_order"),
	}
}

func (WorkScreenshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("image", Image.Type).
			Unique().
			Field("image_id"),
		edge.From("work_page", WorkPage.Type).
			Ref("screenshots").
			Unique().
			Required().
			Field("work_page_id"),
	}
}
