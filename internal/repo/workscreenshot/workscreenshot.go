// Code generated by ent, DO NOT EDIT.

package workscreenshot

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the workscreenshot type in the database.
	Label = "work_screenshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldImageID holds the string denoting the image_id field in the database.
	FieldImageID = "image_id"
	// FieldWorkPageID holds the string denoting the work_page_id field in the database.
	FieldWorkPageID = "work_page_id"
	// EdgeImage holds the string denoting the image edge name in mutations.
	EdgeImage = "image"
	// EdgeWorkPage holds the string denoting the work_page edge name in mutations.
	EdgeWorkPage = "work_page"
	// Table holds the table name of the workscreenshot in the database.
	Table = "work_screenshots"
	// ImageTable is the table that holds the image relation/edge.
	ImageTable = "work_screenshots"
	// ImageInverseTable is the table name for the Image entity.
	// It exists in this package in order to avoid circular dependency with the "image" package.
	ImageInverseTable = "images"
	// ImageColumn is the table column denoting the image relation/edge.
	ImageColumn = "image_id"
	// WorkPageTable is the table that holds the work_page relation/edge.
	WorkPageTable = "work_screenshots"
	// WorkPageInverseTable is the table name for the WorkPage entity.
	// It exists in this package in order to avoid circular dependency with the "workpage" package.
	WorkPageInverseTable = "work_pages"
	// WorkPageColumn is the table column denoting the work_page relation/edge.
	WorkPageColumn = "work_page_id"
)

// Columns holds all SQL columns for workscreenshot fields.
var Columns = []string{
	FieldID,
	FieldSortOrder,
	FieldImageID,
	FieldWorkPageID,
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
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WorkScreenshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByImageID orders the results by the image_id field.
func ByImageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageID, opts...).ToFunc()
}

// ByWorkPageID orders the results by the work_page_id field.
func ByWorkPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkPageID, opts...).ToFunc()
}

// ByImageField orders the results by image field.
func ByImageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImageStep(), sql.OrderByField(field, opts...))
	}
}

// ByWorkPageField orders the results by work_page field.
func ByWorkPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkPageStep(), sql.OrderByField(field, opts...))
	}
}
func newImageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ImageTable, ImageColumn),
	)
}
func newWorkPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkPageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkPageTable, WorkPageColumn),
	)
}
