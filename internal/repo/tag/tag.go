// Code generated by ent, DO NOT EDIT.

package tag

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tag type in the database.
	Label = "tag"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// EdgeBlogPages holds the string denoting the blog_pages edge name in mutations.
	EdgeBlogPages = "blog_pages"
	// Table holds the table name of the tag in the database.
	Table = "tags"
	// BlogPagesTable is the table that holds the blog_pages relation/edge. The primary key declared below.
	BlogPagesTable = "blog_page_tags"
	// BlogPagesInverseTable is the table name for the BlogPage entity.
	// It exists in this package in order to avoid circular dependency with the "blogpage" package.
	BlogPagesInverseTable = "blog_pages"
)

// Columns holds all SQL columns for tag fields.
var Columns = []string{
	FieldID,
	FieldName,
}

var (
	// BlogPagesPrimaryKey and BlogPagesColumn2 are the table columns denoting the
	// primary key for the blog_pages relation (M2M).
	BlogPagesPrimaryKey = []string{"blog_page_id", "tag_id"}
)

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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Tag queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByBlogPagesCount orders the results by blog_pages count.
func ByBlogPagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBlogPagesStep(), opts...)
	}
}

// ByBlogPages orders the results by blog_pages terms.
func ByBlogPages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlogPagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBlogPagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlogPagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, BlogPagesTable, BlogPagesPrimaryKey...),
	)
}
