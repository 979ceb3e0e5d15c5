// Code generated by ent, DO NOT EDIT.

package blogauthorship

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldLTE(FieldID, id))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldEQ(FieldSortOrder, v))
}

// BlogPageID applies equality check predicate on the "blog_page_id" field. It's identical to BlogPageIDEQ.
func BlogPageID(v uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldEQ(FieldBlogPageID, v))
}

// PersonPageID applies equality check predicate on the "person_page_id" field. It's identical to PersonPageIDEQ.
func PersonPageID(v uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldEQ(FieldPersonPageID, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldLTE(FieldSortOrder, v))
}

// BlogPageIDEQ applies the EQ predicate on the "blog_page_id" field.
func BlogPageIDEQ(v uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldEQ(FieldBlogPageID, v))
}

// BlogPageIDNEQ applies the NEQ predicate on the "blog_page_id" field.
func BlogPageIDNEQ(v uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldNEQ(FieldBlogPageID, v))
}

// BlogPageIDIn applies the In predicate on the "blog_page_id" field.
func BlogPageIDIn(vs ...uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldIn(FieldBlogPageID, vs...))
}

// BlogPageIDNotIn applies the NotIn predicate on the "blog_page_id" field.
func BlogPageIDNotIn(vs ...uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldNotIn(FieldBlogPageID, vs...))
}

// PersonPageIDEQ applies the EQ predicate on the "person_page_id" field.
func PersonPageIDEQ(v uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldEQ(FieldPersonPageID, v))
}

// PersonPageIDNEQ applies the NEQ predicate on the "person_page_id" field.
func PersonPageIDNEQ(v uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldNEQ(FieldPersonPageID, v))
}

// PersonPageIDIn applies the In predicate on the "person_page_id" field.
func PersonPageIDIn(vs ...uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldIn(FieldPersonPageID, vs...))
}

// PersonPageIDNotIn applies the NotIn predicate on the "person_page_id" field.
func PersonPageIDNotIn(vs ...uuid.UUID) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldNotIn(FieldPersonPageID, vs...))
}

// PersonPageIDIsNil applies the IsNil predicate on the "person_page_id" field.
func PersonPageIDIsNil() predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldIsNull(FieldPersonPageID))
}

// PersonPageIDNotNil applies the NotNil predicate on the "person_page_id" field.
func PersonPageIDNotNil() predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.FieldNotNull(FieldPersonPageID))
}

// HasBlogPage applies the HasEdge predicate on the "blog_page" edge.
func HasBlogPage() predicate.BlogAuthorship {
	return predicate.BlogAuthorship(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BlogPageTable, BlogPageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlogPageWith applies the HasEdge predicate on the "blog_page" edge with a given conditions (other predicates).
func HasBlogPageWith(preds ...predicate.BlogPage) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(func(s *sql.Selector) {
		step := newBlogPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.BlogAuthorship {
	return predicate.BlogAuthorship(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.PersonPage) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlogAuthorship) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlogAuthorship) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlogAuthorship) predicate.BlogAuthorship {
	return predicate.BlogAuthorship(sql.NotPredicates(p))
}
