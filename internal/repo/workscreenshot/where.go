// Code generated by ent, DO NOT EDIT.

package workscreenshot

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldLTE(FieldID, id))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldEQ(FieldSortOrder, v))
}

// ImageID applies equality check predicate on the "image_id" field. It's identical to ImageIDEQ.
func ImageID(v uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldEQ(FieldImageID, v))
}

// WorkPageID applies equality check predicate on the "work_page_id" field. It's identical to WorkPageIDEQ.
func WorkPageID(v uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldEQ(FieldWorkPageID, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldLTE(FieldSortOrder, v))
}

// ImageIDEQ applies the EQ predicate on the "image_id" field.
func ImageIDEQ(v uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldEQ(FieldImageID, v))
}

// ImageIDNEQ applies the NEQ predicate on the "image_id" field.
func ImageIDNEQ(v uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldNEQ(FieldImageID, v))
}

// ImageIDIn applies the In predicate on the "image_id" field.
func ImageIDIn(vs ...uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldIn(FieldImageID, vs...))
}

// ImageIDNotIn applies the NotIn predicate on the "image_id" field.
func ImageIDNotIn(vs ...uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldNotIn(FieldImageID, vs...))
}

// ImageIDIsNil applies the IsNil predicate on the "image_id" field.
func ImageIDIsNil() predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldIsNull(FieldImageID))
}

// ImageIDNotNil applies the NotNil predicate on the "image_id" field.
func ImageIDNotNil() predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldNotNull(FieldImageID))
}

// WorkPageIDEQ applies the EQ predicate on the "work_page_id" field.
func WorkPageIDEQ(v uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldEQ(FieldWorkPageID, v))
}

// WorkPageIDNEQ applies the NEQ predicate on the "work_page_id" field.
func WorkPageIDNEQ(v uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldNEQ(FieldWorkPageID, v))
}

// WorkPageIDIn applies the In predicate on the "work_page_id" field.
func WorkPageIDIn(vs ...uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldIn(FieldWorkPageID, vs...))
}

// WorkPageIDNotIn applies the NotIn predicate on the "work_page_id" field.
func WorkPageIDNotIn(vs ...uuid.UUID) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.FieldNotIn(FieldWorkPageID, vs...))
}

// HasImage applies the HasEdge predicate on the "image" edge.
func HasImage() predicate.WorkScreenshot {
	return predicate.WorkScreenshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ImageTable, ImageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImageWith applies the HasEdge predicate on the "image" edge with a given conditions (other predicates).
func HasImageWith(preds ...predicate.Image) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(func(s *sql.Selector) {
		step := newImageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWorkPage applies the HasEdge predicate on the "work_page" edge.
func HasWorkPage() predicate.WorkScreenshot {
	return predicate.WorkScreenshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkPageTable, WorkPageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkPageWith applies the HasEdge predicate on the "work_page" edge with a given conditions (other predicates).
func HasWorkPageWith(preds ...predicate.WorkPage) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(func(s *sql.Selector) {
		step := newWorkPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkScreenshot) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkScreenshot) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkScreenshot) predicate.WorkScreenshot {
	return predicate.WorkScreenshot(sql.NotPredicates(p))
}
