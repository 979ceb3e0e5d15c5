package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Image is an asset-store record referenced by pages and orderable
// children. The file key resolves to a public URL through pkg/assets.
type Image struct {
	ent.Schema
}

func (Image) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Image) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.String("file").
			NotEmpty().
			MaxLen(500).
			Comment("Object-store key, e.g. images/{uuid}.jpg"),

		field.Int("width").
			Optional(),

		field.Int("height").
			Optional(),
	}
}

// Document is a downloadable asset-store record targeted by link fields.
type Document struct {
	ent.Schema
}

func (Document) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.String("file").
			NotEmpty().
			MaxLen(500).
			Comment("Object-store key, e.g. documents/{uuid}.pdf"),
	}
}
