// Code generated by ent, DO NOT EDIT.

package relatedlink

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldLTE(FieldID, id))
}

// LinkExternal applies equality check predicate on the "link_external" field. It's identical to LinkExternalEQ.
func LinkExternal(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldLinkExternal, v))
}

// LinkNodeID applies equality check predicate on the "link_node_id" field. It's identical to LinkNodeIDEQ.
func LinkNodeID(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldLinkNodeID, v))
}

// LinkDocumentID applies equality check predicate on the "link_document_id" field. It's identical to LinkDocumentIDEQ.
func LinkDocumentID(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldLinkDocumentID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldTitle, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldSortOrder, v))
}

// StandardPageID applies equality check predicate on the "standard_page_id" field. It's identical to StandardPageIDEQ.
func StandardPageID(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldStandardPageID, v))
}

// BlogIndexPageID applies equality check predicate on the "blog_index_page_id" field. It's identical to BlogIndexPageIDEQ.
func BlogIndexPageID(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldBlogIndexPageID, v))
}

// BlogPageID applies equality check predicate on the "blog_page_id" field. It's identical to BlogPageIDEQ.
func BlogPageID(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldBlogPageID, v))
}

// PersonPageID applies equality check predicate on the "person_page_id" field. It's identical to PersonPageIDEQ.
func PersonPageID(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldPersonPageID, v))
}

// LinkExternalEQ applies the EQ predicate on the "link_external" field.
func LinkExternalEQ(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldLinkExternal, v))
}

// LinkExternalNEQ applies the NEQ predicate on the "link_external" field.
func LinkExternalNEQ(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldLinkExternal, v))
}

// LinkExternalIn applies the In predicate on the "link_external" field.
func LinkExternalIn(vs ...string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldLinkExternal, vs...))
}

// LinkExternalNotIn applies the NotIn predicate on the "link_external" field.
func LinkExternalNotIn(vs ...string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldLinkExternal, vs...))
}

// LinkExternalGT applies the GT predicate on the "link_external" field.
func LinkExternalGT(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldGT(FieldLinkExternal, v))
}

// LinkExternalGTE applies the GTE predicate on the "link_external" field.
func LinkExternalGTE(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldGTE(FieldLinkExternal, v))
}

// LinkExternalLT applies the LT predicate on the "link_external" field.
func LinkExternalLT(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldLT(FieldLinkExternal, v))
}

// LinkExternalLTE applies the LTE predicate on the "link_external" field.
func LinkExternalLTE(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldLTE(FieldLinkExternal, v))
}

// LinkExternalContains applies the Contains predicate on the "link_external" field.
func LinkExternalContains(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldContains(FieldLinkExternal, v))
}

// LinkExternalHasPrefix applies the HasPrefix predicate on the "link_external" field.
func LinkExternalHasPrefix(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldHasPrefix(FieldLinkExternal, v))
}

// LinkExternalHasSuffix applies the HasSuffix predicate on the "link_external" field.
func LinkExternalHasSuffix(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldHasSuffix(FieldLinkExternal, v))
}

// LinkExternalIsNil applies the IsNil predicate on the "link_external" field.
func LinkExternalIsNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIsNull(FieldLinkExternal))
}

// LinkExternalNotNil applies the NotNil predicate on the "link_external" field.
func LinkExternalNotNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotNull(FieldLinkExternal))
}

// LinkExternalEqualFold applies the EqualFold predicate on the "link_external" field.
func LinkExternalEqualFold(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEqualFold(FieldLinkExternal, v))
}

// LinkExternalContainsFold applies the ContainsFold predicate on the "link_external" field.
func LinkExternalContainsFold(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldContainsFold(FieldLinkExternal, v))
}

// LinkNodeIDEQ applies the EQ predicate on the "link_node_id" field.
func LinkNodeIDEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldLinkNodeID, v))
}

// LinkNodeIDNEQ applies the NEQ predicate on the "link_node_id" field.
func LinkNodeIDNEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldLinkNodeID, v))
}

// LinkNodeIDIn applies the In predicate on the "link_node_id" field.
func LinkNodeIDIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldLinkNodeID, vs...))
}

// LinkNodeIDNotIn applies the NotIn predicate on the "link_node_id" field.
func LinkNodeIDNotIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldLinkNodeID, vs...))
}

// LinkNodeIDIsNil applies the IsNil predicate on the "link_node_id" field.
func LinkNodeIDIsNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIsNull(FieldLinkNodeID))
}

// LinkNodeIDNotNil applies the NotNil predicate on the "link_node_id" field.
func LinkNodeIDNotNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotNull(FieldLinkNodeID))
}

// LinkDocumentIDEQ applies the EQ predicate on the "link_document_id" field.
func LinkDocumentIDEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldLinkDocumentID, v))
}

// LinkDocumentIDNEQ applies the NEQ predicate on the "link_document_id" field.
func LinkDocumentIDNEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldLinkDocumentID, v))
}

// LinkDocumentIDIn applies the In predicate on the "link_document_id" field.
func LinkDocumentIDIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldLinkDocumentID, vs...))
}

// LinkDocumentIDNotIn applies the NotIn predicate on the "link_document_id" field.
func LinkDocumentIDNotIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldLinkDocumentID, vs...))
}

// LinkDocumentIDIsNil applies the IsNil predicate on the "link_document_id" field.
func LinkDocumentIDIsNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIsNull(FieldLinkDocumentID))
}

// LinkDocumentIDNotNil applies the NotNil predicate on the "link_document_id" field.
func LinkDocumentIDNotNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotNull(FieldLinkDocumentID))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldContainsFold(FieldTitle, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldLTE(FieldSortOrder, v))
}

// StandardPageIDEQ applies the EQ predicate on the "standard_page_id" field.
func StandardPageIDEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldStandardPageID, v))
}

// StandardPageIDNEQ applies the NEQ predicate on the "standard_page_id" field.
func StandardPageIDNEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldStandardPageID, v))
}

// StandardPageIDIn applies the In predicate on the "standard_page_id" field.
func StandardPageIDIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldStandardPageID, vs...))
}

// StandardPageIDNotIn applies the NotIn predicate on the "standard_page_id" field.
func StandardPageIDNotIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldStandardPageID, vs...))
}

// StandardPageIDIsNil applies the IsNil predicate on the "standard_page_id" field.
func StandardPageIDIsNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIsNull(FieldStandardPageID))
}

// StandardPageIDNotNil applies the NotNil predicate on the "standard_page_id" field.
func StandardPageIDNotNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotNull(FieldStandardPageID))
}

// BlogIndexPageIDEQ applies the EQ predicate on the "blog_index_page_id" field.
func BlogIndexPageIDEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldBlogIndexPageID, v))
}

// BlogIndexPageIDNEQ applies the NEQ predicate on the "blog_index_page_id" field.
func BlogIndexPageIDNEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldBlogIndexPageID, v))
}

// BlogIndexPageIDIn applies the In predicate on the "blog_index_page_id" field.
func BlogIndexPageIDIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldBlogIndexPageID, vs...))
}

// BlogIndexPageIDNotIn applies the NotIn predicate on the "blog_index_page_id" field.
func BlogIndexPageIDNotIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldBlogIndexPageID, vs...))
}

// BlogIndexPageIDIsNil applies the IsNil predicate on the "blog_index_page_id" field.
func BlogIndexPageIDIsNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIsNull(FieldBlogIndexPageID))
}

// BlogIndexPageIDNotNil applies the NotNil predicate on the "blog_index_page_id" field.
func BlogIndexPageIDNotNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotNull(FieldBlogIndexPageID))
}

// BlogPageIDEQ applies the EQ predicate on the "blog_page_id" field.
func BlogPageIDEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldBlogPageID, v))
}

// BlogPageIDNEQ applies the NEQ predicate on the "blog_page_id" field.
func BlogPageIDNEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldBlogPageID, v))
}

// BlogPageIDIn applies the In predicate on the "blog_page_id" field.
func BlogPageIDIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldBlogPageID, vs...))
}

// BlogPageIDNotIn applies the NotIn predicate on the "blog_page_id" field.
func BlogPageIDNotIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldBlogPageID, vs...))
}

// BlogPageIDIsNil applies the IsNil predicate on the "blog_page_id" field.
func BlogPageIDIsNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIsNull(FieldBlogPageID))
}

// BlogPageIDNotNil applies the NotNil predicate on the "blog_page_id" field.
func BlogPageIDNotNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotNull(FieldBlogPageID))
}

// PersonPageIDEQ applies the EQ predicate on the "person_page_id" field.
func PersonPageIDEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldEQ(FieldPersonPageID, v))
}

// PersonPageIDNEQ applies the NEQ predicate on the "person_page_id" field.
func PersonPageIDNEQ(v uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNEQ(FieldPersonPageID, v))
}

// PersonPageIDIn applies the In predicate on the "person_page_id" field.
func PersonPageIDIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIn(FieldPersonPageID, vs...))
}

// PersonPageIDNotIn applies the NotIn predicate on the "person_page_id" field.
func PersonPageIDNotIn(vs ...uuid.UUID) predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotIn(FieldPersonPageID, vs...))
}

// PersonPageIDIsNil applies the IsNil predicate on the "person_page_id" field.
func PersonPageIDIsNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldIsNull(FieldPersonPageID))
}

// PersonPageIDNotNil applies the NotNil predicate on the "person_page_id" field.
func PersonPageIDNotNil() predicate.RelatedLink {
	return predicate.RelatedLink(sql.FieldNotNull(FieldPersonPageID))
}

// HasLinkNode applies the HasEdge predicate on the "link_node" edge.
func HasLinkNode() predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, LinkNodeTable, LinkNodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinkNodeWith applies the HasEdge predicate on the "link_node" edge with a given conditions (other predicates).
func HasLinkNodeWith(preds ...predicate.Node) predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := newLinkNodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLinkDocument applies the HasEdge predicate on the "link_document" edge.
func HasLinkDocument() predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, LinkDocumentTable, LinkDocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinkDocumentWith applies the HasEdge predicate on the "link_document" edge with a given conditions (other predicates).
func HasLinkDocumentWith(preds ...predicate.Document) predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := newLinkDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStandardPage applies the HasEdge predicate on the "standard_page" edge.
func HasStandardPage() predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StandardPageTable, StandardPageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStandardPageWith applies the HasEdge predicate on the "standard_page" edge with a given conditions (other predicates).
func HasStandardPageWith(preds ...predicate.StandardPage) predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := newStandardPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBlogIndexPage applies the HasEdge predicate on the "blog_index_page" edge.
func HasBlogIndexPage() predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BlogIndexPageTable, BlogIndexPageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlogIndexPageWith applies the HasEdge predicate on the "blog_index_page" edge with a given conditions (other predicates).
func HasBlogIndexPageWith(preds ...predicate.BlogIndexPage) predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := newBlogIndexPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBlogPage applies the HasEdge predicate on the "blog_page" edge.
func HasBlogPage() predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BlogPageTable, BlogPageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlogPageWith applies the HasEdge predicate on the "blog_page" edge with a given conditions (other predicates).
func HasBlogPageWith(preds ...predicate.BlogPage) predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := newBlogPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPersonPage applies the HasEdge predicate on the "person_page" edge.
func HasPersonPage() predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PersonPageTable, PersonPageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPersonPageWith applies the HasEdge predicate on the "person_page" edge with a given conditions (other predicates).
func HasPersonPageWith(preds ...predicate.PersonPage) predicate.RelatedLink {
	return predicate.RelatedLink(func(s *sql.Selector) {
		step := newPersonPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RelatedLink) predicate.RelatedLink {
	return predicate.RelatedLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RelatedLink) predicate.RelatedLink {
	return predicate.RelatedLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RelatedLink) predicate.RelatedLink {
	return predicate.RelatedLink(sql.NotPredicates(p))
}
