// Code generated by ent, DO NOT EDIT.

package relatedlink

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the relatedlink type in the database.
	Label = "related_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLinkExternal holds the string denoting the link_external field in the database.
	FieldLinkExternal = "link_external"
	// FieldLinkNodeID holds the string denoting the link_node_id field in the database.
	FieldLinkNodeID = "link_node_id"
	// FieldLinkDocumentID holds the string denoting the link_document_id field in the database.
	FieldLinkDocumentID = "link_document_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldStandardPageID holds the string denoting the standard_page_id field in the database.
	FieldStandardPageID = "standard_page_id"
	// FieldBlogIndexPageID holds the string denoting the blog_index_page_id field in the database.
	FieldBlogIndexPageID = "blog_index_page_id"
	// FieldBlogPageID holds the string denoting the blog_page_id field in the database.
	FieldBlogPageID = "blog_page_id"
	// FieldPersonPageID holds the string denoting the person_page_id field in the database.
	FieldPersonPageID = "person_page_id"
	// EdgeLinkNode holds the string denoting the link_node edge name in mutations.
	EdgeLinkNode = "link_node"
	// EdgeLinkDocument holds the string denoting the link_document edge name in mutations.
	EdgeLinkDocument = "link_document"
	// EdgeStandardPage holds the string denoting the standard_page edge name in mutations.
	EdgeStandardPage = "standard_page"
	// EdgeBlogIndexPage holds the string denoting the blog_index_page edge name in mutations.
	EdgeBlogIndexPage = "blog_index_page"
	// EdgeBlogPage holds the string denoting the blog_page edge name in mutations.
	EdgeBlogPage = "blog_page"
	// EdgePersonPage holds the string denoting the person_page edge name in mutations.
	EdgePersonPage = "person_page"
	// Table holds the table name of the relatedlink in the database.
	Table = "related_links"
	// LinkNodeTable is the table that holds the link_node relation/edge.
	LinkNodeTable = "related_links"
	// LinkNodeInverseTable is the table name for the Node entity.
	// It exists in this package in order to avoid circular dependency with the "node" package.
	LinkNodeInverseTable = "nodes"
	// LinkNodeColumn is the table column denoting the link_node relation/edge.
	LinkNodeColumn = "link_node_id"
	// LinkDocumentTable is the table that holds the link_document relation/edge.
	LinkDocumentTable = "related_links"
	// LinkDocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	LinkDocumentInverseTable = "documents"
	// LinkDocumentColumn is the table column denoting the link_document relation/edge.
	LinkDocumentColumn = "link_document_id"
	// StandardPageTable is the table that holds the standard_page relation/edge.
	StandardPageTable = "related_links"
	// StandardPageInverseTable is the table name for the StandardPage entity.
	// It exists in this package in order to avoid circular dependency with the "standardpage" package.
	StandardPageInverseTable = "standard_pages"
	// StandardPageColumn is the table column denoting the standard_page relation/edge.
	StandardPageColumn = "standard_page_id"
	// BlogIndexPageTable is the table that holds the blog_index_page relation/edge.
	BlogIndexPageTable = "related_links"
	// BlogIndexPageInverseTable is the table name for the BlogIndexPage entity.
	// It exists in this package in order to avoid circular dependency with the "blogindexpage" package.
	BlogIndexPageInverseTable = "blog_index_pages"
	// BlogIndexPageColumn is the table column denoting the blog_index_page relation/edge.
	BlogIndexPageColumn = "blog_index_page_id"
	// BlogPageTable is the table that holds the blog_page relation/edge.
	BlogPageTable = "related_links"
	// BlogPageInverseTable is the table name for the BlogPage entity.
	// It exists in this package in order to avoid circular dependency with the "blogpage" package.
	BlogPageInverseTable = "blog_pages"
	// BlogPageColumn is the table column denoting the blog_page relation/edge.
	BlogPageColumn = "blog_page_id"
	// PersonPageTable is the table that holds the person_page relation/edge.
	PersonPageTable = "related_links"
	// PersonPageInverseTable is the table name for the PersonPage entity.
	// It exists in this package in order to avoid circular dependency with the "personpage" package.
	PersonPageInverseTable = "person_pages"
	// PersonPageColumn is the table column denoting the person_page relation/edge.
	PersonPageColumn = "person_page_id"
)

// Columns holds all SQL columns for relatedlink fields.
var Columns = []string{
	FieldID,
	FieldLinkExternal,
	FieldLinkNodeID,
	FieldLinkDocumentID,
	FieldTitle,
	FieldSortOrder,
	FieldStandardPageID,
	FieldBlogIndexPageID,
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
	// LinkExternalValidator is a validator for the "link_external" field. It is called by the builders before save.
	LinkExternalValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RelatedLink queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLinkExternal orders the results by the link_external field.
func ByLinkExternal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkExternal, opts...).ToFunc()
}

// ByLinkNodeID orders the results by the link_node_id field.
func ByLinkNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkNodeID, opts...).ToFunc()
}

// ByLinkDocumentID orders the results by the link_document_id field.
func ByLinkDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkDocumentID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByStandardPageID orders the results by the standard_page_id field.
func ByStandardPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStandardPageID, opts...).ToFunc()
}

// ByBlogIndexPageID orders the results by the blog_index_page_id field.
func ByBlogIndexPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlogIndexPageID, opts...).ToFunc()
}

// ByBlogPageID orders the results by the blog_page_id field.
func ByBlogPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlogPageID, opts...).ToFunc()
}

// ByPersonPageID orders the results by the person_page_id field.
func ByPersonPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonPageID, opts...).ToFunc()
}

// ByLinkNodeField orders the results by link_node field.
func ByLinkNodeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLinkNodeStep(), sql.OrderByField(field, opts...))
	}
}

// ByLinkDocumentField orders the results by link_document field.
func ByLinkDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLinkDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByStandardPageField orders the results by standard_page field.
func ByStandardPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStandardPageStep(), sql.OrderByField(field, opts...))
	}
}

// ByBlogIndexPageField orders the results by blog_index_page field.
func ByBlogIndexPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlogIndexPageStep(), sql.OrderByField(field, opts...))
	}
}

// ByBlogPageField orders the results by blog_page field.
func ByBlogPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlogPageStep(), sql.OrderByField(field, opts...))
	}
}

// ByPersonPageField orders the results by person_page field.
func ByPersonPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPersonPageStep(), sql.OrderByField(field, opts...))
	}
}
func newLinkNodeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LinkNodeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, LinkNodeTable, LinkNodeColumn),
	)
}
func newLinkDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LinkDocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, LinkDocumentTable, LinkDocumentColumn),
	)
}
func newStandardPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StandardPageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StandardPageTable, StandardPageColumn),
	)
}
func newBlogIndexPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlogIndexPageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BlogIndexPageTable, BlogIndexPageColumn),
	)
}
func newBlogPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlogPageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BlogPageTable, BlogPageColumn),
	)
}
func newPersonPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PersonPageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PersonPageTable, PersonPageColumn),
	)
}
