package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"

	"github.com/google/uuid"
)

type UUIDV7Mixin struct {
	mixin.Schema
}

func (UUIDV7Mixin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(func() uuid.UUID {
				id, err := uuid.NewV7()
				if err != nil {
					panic(err)
				}
				return id
			}).
			Immutable(),
	}
}

type TimeStampedMixin struct {
	mixin.Schema
}

func (TimeStampedMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// LinkFieldsMixin carries the shared link target fields composed into
// carousel items and related links. At most one target is meaningful;
// resolution priority is page, then document, then the external URL.
type LinkFieldsMixin struct {
	mixin.Schema
}

func (LinkFieldsMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("link_external").
			Optional().
			MaxLen(2048).
			Comment("Raw external URL, lowest-priority link target"),

		field.UUID("link_node_id", uuid.UUID{}).
			Optional(),

		field.UUID("link_document_id", uuid.UUID{}).
			Optional(),
	}
}

func (LinkFieldsMixin) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("link_node", Node.Type).
			Unique().
			Field("link_node_id"),
		edge.To("link_document", Document.Type).
			Unique().
			Field("link_document_id"),
	}
}

// ContactFieldsMixin carries the shared contact detail fields composed
// into person pages. All fields are optional.
type ContactFieldsMixin struct {
	mixin.Schema
}

func (ContactFieldsMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("telephone").
			Optional().
			MaxLen(20),

		field.String("email").
			Optional().
			MaxLen(255),

		field.String("address_1").
			Optional().
			MaxLen(255),

		field.String("address_2").
			Optional().
			MaxLen(255),

		field.String("city").
			Optional().
			MaxLen(255),

		field.String("country").
			Optional().
			MaxLen(255),

		field.String("post_code").
			Optional().
			MaxLen(10),
	}
}
