// Code generated by ent, DO NOT EDIT.

package blogpage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldUpdatedAt, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldNodeID, v))
}

// Intro applies equality check predicate on the "intro" field. It's identical to IntroEQ.
func Intro(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldIntro, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldBody, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldDate, v))
}

// FeedImageID applies equality check predicate on the "feed_image_id" field. It's identical to FeedImageIDEQ.
func FeedImageID(v uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldFeedImageID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLTE(FieldUpdatedAt, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotIn(FieldNodeID, vs...))
}

// IntroEQ applies the EQ predicate on the "intro" field.
func IntroEQ(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldIntro, v))
}

// IntroNEQ applies the NEQ predicate on the "intro" field.
func IntroNEQ(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNEQ(FieldIntro, v))
}

// IntroIn applies the In predicate on the "intro" field.
func IntroIn(vs ...string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIn(FieldIntro, vs...))
}

// IntroNotIn applies the NotIn predicate on the "intro" field.
func IntroNotIn(vs ...string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotIn(FieldIntro, vs...))
}

// IntroGT applies the GT predicate on the "intro" field.
func IntroGT(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGT(FieldIntro, v))
}

// IntroGTE applies the GTE predicate on the "intro" field.
func IntroGTE(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGTE(FieldIntro, v))
}

// IntroLT applies the LT predicate on the "intro" field.
func IntroLT(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLT(FieldIntro, v))
}

// IntroLTE applies the LTE predicate on the "intro" field.
func IntroLTE(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLTE(FieldIntro, v))
}

// IntroContains applies the Contains predicate on the "intro" field.
func IntroContains(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldContains(FieldIntro, v))
}

// IntroHasPrefix applies the HasPrefix predicate on the "intro" field.
func IntroHasPrefix(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldHasPrefix(FieldIntro, v))
}

// IntroHasSuffix applies the HasSuffix predicate on the "intro" field.
func IntroHasSuffix(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldHasSuffix(FieldIntro, v))
}

// IntroIsNil applies the IsNil predicate on the "intro" field.
func IntroIsNil() predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIsNull(FieldIntro))
}

// IntroNotNil applies the NotNil predicate on the "intro" field.
func IntroNotNil() predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotNull(FieldIntro))
}

// IntroEqualFold applies the EqualFold predicate on the "intro" field.
func IntroEqualFold(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEqualFold(FieldIntro, v))
}

// IntroContainsFold applies the ContainsFold predicate on the "intro" field.
func IntroContainsFold(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldContainsFold(FieldIntro, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldContainsFold(FieldBody, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldLTE(FieldDate, v))
}

// FeedImageIDEQ applies the EQ predicate on the "feed_image_id" field.
func FeedImageIDEQ(v uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldEQ(FieldFeedImageID, v))
}

// FeedImageIDNEQ applies the NEQ predicate on the "feed_image_id" field.
func FeedImageIDNEQ(v uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNEQ(FieldFeedImageID, v))
}

// FeedImageIDIn applies the In predicate on the "feed_image_id" field.
func FeedImageIDIn(vs ...uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIn(FieldFeedImageID, vs...))
}

// FeedImageIDNotIn applies the NotIn predicate on the "feed_image_id" field.
func FeedImageIDNotIn(vs ...uuid.UUID) predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotIn(FieldFeedImageID, vs...))
}

// FeedImageIDIsNil applies the IsNil predicate on the "feed_image_id" field.
func FeedImageIDIsNil() predicate.BlogPage {
	return predicate.BlogPage(sql.FieldIsNull(FieldFeedImageID))
}

// FeedImageIDNotNil applies the NotNil predicate on the "feed_image_id" field.
func FeedImageIDNotNil() predicate.BlogPage {
	return predicate.BlogPage(sql.FieldNotNull(FieldFeedImageID))
}

// HasNode applies the HasEdge predicate on the "node" edge.
func HasNode() predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, NodeTable, NodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodeWith applies the HasEdge predicate on the "node" edge with a given conditions (other predicates).
func HasNodeWith(preds ...predicate.Node) predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := newNodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeedImage applies the HasEdge predicate on the "feed_image" edge.
func HasFeedImage() predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, FeedImageTable, FeedImageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedImageWith applies the HasEdge predicate on the "feed_image" edge with a given conditions (other predicates).
func HasFeedImageWith(preds ...predicate.Image) predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := newFeedImageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTags applies the HasEdge predicate on the "tags" edge.
func HasTags() predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, TagsTable, TagsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTagsWith applies the HasEdge predicate on the "tags" edge with a given conditions (other predicates).
func HasTagsWith(preds ...predicate.Tag) predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := newTagsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRelatedLinks applies the HasEdge predicate on the "related_links" edge.
func HasRelatedLinks() predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RelatedLinksTable, RelatedLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRelatedLinksWith applies the HasEdge predicate on the "related_links" edge with a given conditions (other predicates).
func HasRelatedLinksWith(preds ...predicate.RelatedLink) predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := newRelatedLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthorships applies the HasEdge predicate on the "authorships" edge.
func HasAuthorships() predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuthorshipsTable, AuthorshipsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorshipsWith applies the HasEdge predicate on the "authorships" edge with a given conditions (other predicates).
func HasAuthorshipsWith(preds ...predicate.BlogAuthorship) predicate.BlogPage {
	return predicate.BlogPage(func(s *sql.Selector) {
		step := newAuthorshipsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlogPage) predicate.BlogPage {
	return predicate.BlogPage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlogPage) predicate.BlogPage {
	return predicate.BlogPage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlogPage) predicate.BlogPage {
	return predicate.BlogPage(sql.NotPredicates(p))
}
