// Code generated by ent, DO NOT EDIT.

package advertplacement

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldLTE(FieldID, id))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldEQ(FieldNodeID, v))
}

// AdvertID applies equality check predicate on the "advert_id" field. It's identical to AdvertIDEQ.
func AdvertID(v uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldEQ(FieldAdvertID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldNotIn(FieldNodeID, vs...))
}

// AdvertIDEQ applies the EQ predicate on the "advert_id" field.
func AdvertIDEQ(v uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldEQ(FieldAdvertID, v))
}

// AdvertIDNEQ applies the NEQ predicate on the "advert_id" field.
func AdvertIDNEQ(v uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldNEQ(FieldAdvertID, v))
}

// AdvertIDIn applies the In predicate on the "advert_id" field.
func AdvertIDIn(vs ...uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldIn(FieldAdvertID, vs...))
}

// AdvertIDNotIn applies the NotIn predicate on the "advert_id" field.
func AdvertIDNotIn(vs ...uuid.UUID) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.FieldNotIn(FieldAdvertID, vs...))
}

// HasNode applies the HasEdge predicate on the "node" edge.
func HasNode() predicate.AdvertPlacement {
	return predicate.AdvertPlacement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, NodeTable, NodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodeWith applies the HasEdge predicate on the "node" edge with a given conditions (other predicates).
func HasNodeWith(preds ...predicate.Node) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(func(s *sql.Selector) {
		step := newNodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAdvert applies the HasEdge predicate on the "advert" edge.
func HasAdvert() predicate.AdvertPlacement {
	return predicate.AdvertPlacement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AdvertTable, AdvertColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAdvertWith applies the HasEdge predicate on the "advert" edge with a given conditions (other predicates).
func HasAdvertWith(preds ...predicate.Advert) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(func(s *sql.Selector) {
		step := newAdvertStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdvertPlacement) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdvertPlacement) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdvertPlacement) predicate.AdvertPlacement {
	return predicate.AdvertPlacement(sql.NotPredicates(p))
}
