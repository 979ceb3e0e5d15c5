// Code generated by ent, DO NOT EDIT.

package blogauthorship

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the blogauthorship type in the database.
	Label = "blog_authorship"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldBlogPageID holds the string denoting the blog_page_id field in the database.
	FieldBlogPageID = "blog_page_id"
	// FieldPersonPageID holds the string denoting the person_page_id field in the database.
	FieldPersonPageID = "person_page_id"
	// EdgeBlogPage holds the string denoting the blog_page edge name in mutations.
	EdgeBlogPage = "blog_page"
	// EdgeAuthor holds the string denoting the author edge name in mutations.
	EdgeAuthor = "author"
	// Table holds the table name of the blogauthorship in the database.
	Table = "blog_authorships"
	// BlogPageTable is the table that holds the blog_page relation/edge.
	BlogPageTable = "blog_authorships"
	// BlogPageInverseTable is the table name for the BlogPage entity.
	// It exists in this package in order to avoid circular dependency with the "blogpage" package.
	BlogPageInverseTable = "blog_pages"
	// BlogPageColumn is the table column denoting the blog_page relation/edge.
	BlogPageColumn = "blog_page_id"
	// AuthorTable is the table that holds the author relation/edge.
	AuthorTable = "blog_authorships"
	// AuthorInverseTable is the table name for the PersonPage entity.
	// It exists in this package in order to avoid circular dependency with the "personpage" package.
	AuthorInverseTable = "person_pages"
	// AuthorColumn is the table column denoting the author relation/edge.
	AuthorColumn = "person_page_id"
)

// Columns holds all SQL columns for blogauthorship fields.
var Columns = []string{
	FieldID,
	FieldSortOrder,
	FieldBlogPageID,
	FieldPersonPageID,
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

// OrderOption defines the ordering options for the BlogAuthorship queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByBlogPageID orders the results by the blog_page_id field.
func ByBlogPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlogPageID, opts...).ToFunc()
}

// ByPersonPageID orders the results by the person_page_id field.
func ByPersonPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonPageID, opts...).ToFunc()
}

// ByBlogPageField orders the results by blog_page field.
func ByBlogPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlogPageStep(), sql.OrderByField(field, opts...))
	}
}

// ByAuthorField orders the results by author field.
func ByAuthorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorStep(), sql.OrderByField(field, opts...))
	}
}
func newBlogPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlogPageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BlogPageTable, BlogPageColumn),
	)
}
func newAuthorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AuthorTable, AuthorColumn),
	)
}
