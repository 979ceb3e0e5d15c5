// Code generated by ent, DO NOT EDIT.

package advertplacement

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the advertplacement type in the database.
	Label = "advert_placement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNodeID holds the string denoting the node_id field in the database.
	FieldNodeID = "node_id"
	// FieldAdvertID holds the string denoting the advert_id field in the database.
	FieldAdvertID = "advert_id"
	// EdgeNode holds the string denoting the node edge name in mutations.
	EdgeNode = "node"
	// EdgeAdvert holds the string denoting the advert edge name in mutations.
	EdgeAdvert = "advert"
	// Table holds the table name of the advertplacement in the database.
	Table = "advert_placements"
	// NodeTable is the table that holds the node relation/edge.
	NodeTable = "advert_placements"
	// NodeInverseTable is the table name for the Node entity.
	// It exists in this package in order to avoid circular dependency with the "node" package.
	NodeInverseTable = "nodes"
	// NodeColumn is the table column denoting the node relation/edge.
	NodeColumn = "node_id"
	// AdvertTable is the table that holds the advert relation/edge.
	AdvertTable = "advert_placements"
	// AdvertInverseTable is the table name for the Advert entity.
	// It exists in this package in order to avoid circular dependency with the "advert" package.
	AdvertInverseTable = "adverts"
	// AdvertColumn is the table column denoting the advert relation/edge.
	AdvertColumn = "advert_id"
)

// Columns holds all SQL columns for advertplacement fields.
var Columns = []string{
	FieldID,
	FieldNodeID,
	FieldAdvertID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AdvertPlacement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNodeID orders the results by the node_id field.
func ByNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeID, opts...).ToFunc()
}

// ByAdvertID orders the results by the advert_id field.
func ByAdvertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdvertID, opts...).ToFunc()
}

// ByNodeField orders the results by node field.
func ByNodeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodeStep(), sql.OrderByField(field, opts...))
	}
}

// ByAdvertField orders the results by advert field.
func ByAdvertField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAdvertStep(), sql.OrderByField(field, opts...))
	}
}
func newNodeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, NodeTable, NodeColumn),
	)
}
func newAdvertStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AdvertInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AdvertTable, AdvertColumn),
	)
}
