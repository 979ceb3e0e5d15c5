// Code generated by ent, DO NOT EDIT.

package carouselitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLTE(FieldID, id))
}

// LinkExternal applies equality check predicate on the "link_external" field. It's identical to LinkExternalEQ.
func LinkExternal(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldLinkExternal, v))
}

// LinkNodeID applies equality check predicate on the "link_node_id" field. It's identical to LinkNodeIDEQ.
func LinkNodeID(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldLinkNodeID, v))
}

// LinkDocumentID applies equality check predicate on the "link_document_id" field. It's identical to LinkDocumentIDEQ.
func LinkDocumentID(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldLinkDocumentID, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldSortOrder, v))
}

// ImageID applies equality check predicate on the "image_id" field. It's identical to ImageIDEQ.
func ImageID(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldImageID, v))
}

// EmbedURL applies equality check predicate on the "embed_url" field. It's identical to EmbedURLEQ.
func EmbedURL(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldEmbedURL, v))
}

// Caption applies equality check predicate on the "caption" field. It's identical to CaptionEQ.
func Caption(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldCaption, v))
}

// HomePageID applies equality check predicate on the "home_page_id" field. It's identical to HomePageIDEQ.
func HomePageID(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldHomePageID, v))
}

// LinkExternalEQ applies the EQ predicate on the "link_external" field.
func LinkExternalEQ(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldLinkExternal, v))
}

// LinkExternalNEQ applies the NEQ predicate on the "link_external" field.
func LinkExternalNEQ(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNEQ(FieldLinkExternal, v))
}

// LinkExternalIn applies the In predicate on the "link_external" field.
func LinkExternalIn(vs ...string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIn(FieldLinkExternal, vs...))
}

// LinkExternalNotIn applies the NotIn predicate on the "link_external" field.
func LinkExternalNotIn(vs ...string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotIn(FieldLinkExternal, vs...))
}

// LinkExternalGT applies the GT predicate on the "link_external" field.
func LinkExternalGT(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGT(FieldLinkExternal, v))
}

// LinkExternalGTE applies the GTE predicate on the "link_external" field.
func LinkExternalGTE(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGTE(FieldLinkExternal, v))
}

// LinkExternalLT applies the LT predicate on the "link_external" field.
func LinkExternalLT(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLT(FieldLinkExternal, v))
}

// LinkExternalLTE applies the LTE predicate on the "link_external" field.
func LinkExternalLTE(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLTE(FieldLinkExternal, v))
}

// LinkExternalContains applies the Contains predicate on the "link_external" field.
func LinkExternalContains(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldContains(FieldLinkExternal, v))
}

// LinkExternalHasPrefix applies the HasPrefix predicate on the "link_external" field.
func LinkExternalHasPrefix(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldHasPrefix(FieldLinkExternal, v))
}

// LinkExternalHasSuffix applies the HasSuffix predicate on the "link_external" field.
func LinkExternalHasSuffix(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldHasSuffix(FieldLinkExternal, v))
}

// LinkExternalIsNil applies the IsNil predicate on the "link_external" field.
func LinkExternalIsNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIsNull(FieldLinkExternal))
}

// LinkExternalNotNil applies the NotNil predicate on the "link_external" field.
func LinkExternalNotNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotNull(FieldLinkExternal))
}

// LinkExternalEqualFold applies the EqualFold predicate on the "link_external" field.
func LinkExternalEqualFold(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEqualFold(FieldLinkExternal, v))
}

// LinkExternalContainsFold applies the ContainsFold predicate on the "link_external" field.
func LinkExternalContainsFold(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldContainsFold(FieldLinkExternal, v))
}

// LinkNodeIDEQ applies the EQ predicate on the "link_node_id" field.
func LinkNodeIDEQ(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldLinkNodeID, v))
}

// LinkNodeIDNEQ applies the NEQ predicate on the "link_node_id" field.
func LinkNodeIDNEQ(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNEQ(FieldLinkNodeID, v))
}

// LinkNodeIDIn applies the In predicate on the "link_node_id" field.
func LinkNodeIDIn(vs ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIn(FieldLinkNodeID, vs...))
}

// LinkNodeIDNotIn applies the NotIn predicate on the "link_node_id" field.
func LinkNodeIDNotIn(vs ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotIn(FieldLinkNodeID, vs...))
}

// LinkNodeIDIsNil applies the IsNil predicate on the "link_node_id" field.
func LinkNodeIDIsNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIsNull(FieldLinkNodeID))
}

// LinkNodeIDNotNil applies the NotNil predicate on the "link_node_id" field.
func LinkNodeIDNotNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotNull(FieldLinkNodeID))
}

// LinkDocumentIDEQ applies the EQ predicate on the "link_document_id" field.
func LinkDocumentIDEQ(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldLinkDocumentID, v))
}

// LinkDocumentIDNEQ applies the NEQ predicate on the "link_document_id" field.
func LinkDocumentIDNEQ(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNEQ(FieldLinkDocumentID, v))
}

// LinkDocumentIDIn applies the In predicate on the "link_document_id" field.
func LinkDocumentIDIn(vs ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIn(FieldLinkDocumentID, vs...))
}

// LinkDocumentIDNotIn applies the NotIn predicate on the "link_document_id" field.
func LinkDocumentIDNotIn(vs ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotIn(FieldLinkDocumentID, vs...))
}

// LinkDocumentIDIsNil applies the IsNil predicate on the "link_document_id" field.
func LinkDocumentIDIsNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIsNull(FieldLinkDocumentID))
}

// LinkDocumentIDNotNil applies the NotNil predicate on the "link_document_id" field.
func LinkDocumentIDNotNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotNull(FieldLinkDocumentID))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLTE(FieldSortOrder, v))
}

// ImageIDEQ applies the EQ predicate on the "image_id" field.
func ImageIDEQ(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldImageID, v))
}

// ImageIDNEQ applies the NEQ predicate on the "image_id" field.
func ImageIDNEQ(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNEQ(FieldImageID, v))
}

// ImageIDIn applies the In predicate on the "image_id" field.
func ImageIDIn(vs ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIn(FieldImageID, vs...))
}

// ImageIDNotIn applies the NotIn predicate on the "image_id" field.
func ImageIDNotIn(vs ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotIn(FieldImageID, vs...))
}

// ImageIDIsNil applies the IsNil predicate on the "image_id" field.
func ImageIDIsNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIsNull(FieldImageID))
}

// ImageIDNotNil applies the NotNil predicate on the "image_id" field.
func ImageIDNotNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotNull(FieldImageID))
}

// EmbedURLEQ applies the EQ predicate on the "embed_url" field.
func EmbedURLEQ(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldEmbedURL, v))
}

// EmbedURLNEQ applies the NEQ predicate on the "embed_url" field.
func EmbedURLNEQ(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNEQ(FieldEmbedURL, v))
}

// EmbedURLIn applies the In predicate on the "embed_url" field.
func EmbedURLIn(vs ...string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIn(FieldEmbedURL, vs...))
}

// EmbedURLNotIn applies the NotIn predicate on the "embed_url" field.
func EmbedURLNotIn(vs ...string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotIn(FieldEmbedURL, vs...))
}

// EmbedURLGT applies the GT predicate on the "embed_url" field.
func EmbedURLGT(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGT(FieldEmbedURL, v))
}

// EmbedURLGTE applies the GTE predicate on the "embed_url" field.
func EmbedURLGTE(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGTE(FieldEmbedURL, v))
}

// EmbedURLLT applies the LT predicate on the "embed_url" field.
func EmbedURLLT(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLT(FieldEmbedURL, v))
}

// EmbedURLLTE applies the LTE predicate on the "embed_url" field.
func EmbedURLLTE(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLTE(FieldEmbedURL, v))
}

// EmbedURLContains applies the Contains predicate on the "embed_url" field.
func EmbedURLContains(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldContains(FieldEmbedURL, v))
}

// EmbedURLHasPrefix applies the HasPrefix predicate on the "embed_url" field.
func EmbedURLHasPrefix(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldHasPrefix(FieldEmbedURL, v))
}

// EmbedURLHasSuffix applies the HasSuffix predicate on the "embed_url" field.
func EmbedURLHasSuffix(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldHasSuffix(FieldEmbedURL, v))
}

// EmbedURLIsNil applies the IsNil predicate on the "embed_url" field.
func EmbedURLIsNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIsNull(FieldEmbedURL))
}

// EmbedURLNotNil applies the NotNil predicate on the "embed_url" field.
func EmbedURLNotNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotNull(FieldEmbedURL))
}

// EmbedURLEqualFold applies the EqualFold predicate on the "embed_url" field.
func EmbedURLEqualFold(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEqualFold(FieldEmbedURL, v))
}

// EmbedURLContainsFold applies the ContainsFold predicate on the "embed_url" field.
func EmbedURLContainsFold(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldContainsFold(FieldEmbedURL, v))
}

// CaptionEQ applies the EQ predicate on the "caption" field.
func CaptionEQ(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldCaption, v))
}

// CaptionNEQ applies the NEQ predicate on the "caption" field.
func CaptionNEQ(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNEQ(FieldCaption, v))
}

// CaptionIn applies the In predicate on the "caption" field.
func CaptionIn(vs ...string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIn(FieldCaption, vs...))
}

// CaptionNotIn applies the NotIn predicate on the "caption" field.
func CaptionNotIn(vs ...string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotIn(FieldCaption, vs...))
}

// CaptionGT applies the GT predicate on the "caption" field.
func CaptionGT(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGT(FieldCaption, v))
}

// CaptionGTE applies the GTE predicate on the "caption" field.
func CaptionGTE(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldGTE(FieldCaption, v))
}

// CaptionLT applies the LT predicate on the "caption" field.
func CaptionLT(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLT(FieldCaption, v))
}

// CaptionLTE applies the LTE predicate on the "caption" field.
func CaptionLTE(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldLTE(FieldCaption, v))
}

// CaptionContains applies the Contains predicate on the "caption" field.
func CaptionContains(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldContains(FieldCaption, v))
}

// CaptionHasPrefix applies the HasPrefix predicate on the "caption" field.
func CaptionHasPrefix(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldHasPrefix(FieldCaption, v))
}

// CaptionHasSuffix applies the HasSuffix predicate on the "caption" field.
func CaptionHasSuffix(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldHasSuffix(FieldCaption, v))
}

// CaptionIsNil applies the IsNil predicate on the "caption" field.
func CaptionIsNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIsNull(FieldCaption))
}

// CaptionNotNil applies the NotNil predicate on the "caption" field.
func CaptionNotNil() predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotNull(FieldCaption))
}

// CaptionEqualFold applies the EqualFold predicate on the "caption" field.
func CaptionEqualFold(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEqualFold(FieldCaption, v))
}

// CaptionContainsFold applies the ContainsFold predicate on the "caption" field.
func CaptionContainsFold(v string) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldContainsFold(FieldCaption, v))
}

// HomePageIDEQ applies the EQ predicate on the "home_page_id" field.
func HomePageIDEQ(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldEQ(FieldHomePageID, v))
}

// HomePageIDNEQ applies the NEQ predicate on the "home_page_id" field.
func HomePageIDNEQ(v uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNEQ(FieldHomePageID, v))
}

// HomePageIDIn applies the In predicate on the "home_page_id" field.
func HomePageIDIn(vs ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldIn(FieldHomePageID, vs...))
}

// HomePageIDNotIn applies the NotIn predicate on the "home_page_id" field.
func HomePageIDNotIn(vs ...uuid.UUID) predicate.CarouselItem {
	return predicate.CarouselItem(sql.FieldNotIn(FieldHomePageID, vs...))
}

// HasLinkNode applies the HasEdge predicate on the "link_node" edge.
func HasLinkNode() predicate.CarouselItem {
	return predicate.CarouselItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, LinkNodeTable, LinkNodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinkNodeWith applies the HasEdge predicate on the "link_node" edge with a given conditions (other predicates).
func HasLinkNodeWith(preds ...predicate.Node) predicate.CarouselItem {
	return predicate.CarouselItem(func(s *sql.Selector) {
		step := newLinkNodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLinkDocument applies the HasEdge predicate on the "link_document" edge.
func HasLinkDocument() predicate.CarouselItem {
	return predicate.CarouselItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, LinkDocumentTable, LinkDocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinkDocumentWith applies the HasEdge predicate on the "link_document" edge with a given conditions (other predicates).
func HasLinkDocumentWith(preds ...predicate.Document) predicate.CarouselItem {
	return predicate.CarouselItem(func(s *sql.Selector) {
		step := newLinkDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImage applies the HasEdge predicate on the "image" edge.
func HasImage() predicate.CarouselItem {
	return predicate.CarouselItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ImageTable, ImageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImageWith applies the HasEdge predicate on the "image" edge with a given conditions (other predicates).
func HasImageWith(preds ...predicate.Image) predicate.CarouselItem {
	return predicate.CarouselItem(func(s *sql.Selector) {
		step := newImageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHomePage applies the HasEdge predicate on the "home_page" edge.
func HasHomePage() predicate.CarouselItem {
	return predicate.CarouselItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HomePageTable, HomePageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHomePageWith applies the HasEdge predicate on the "home_page" edge with a given conditions (other predicates).
func HasHomePageWith(preds ...predicate.HomePage) predicate.CarouselItem {
	return predicate.CarouselItem(func(s *sql.Selector) {
		step := newHomePageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CarouselItem) predicate.CarouselItem {
	return predicate.CarouselItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CarouselItem) predicate.CarouselItem {
	return predicate.CarouselItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CarouselItem) predicate.CarouselItem {
	return predicate.CarouselItem(sql.NotPredicates(p))
}
