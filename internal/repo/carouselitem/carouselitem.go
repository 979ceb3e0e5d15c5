// Code generated by ent, DO NOT EDIT.

package carouselitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the carouselitem type in the database.
	Label = "carousel_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLinkExternal holds the string denoting the link_external field in the database.
	FieldLinkExternal = "link_external"
	// FieldLinkNodeID holds the string denoting the link_node_id field in the database.
	FieldLinkNodeID = "link_node_id"
	// FieldLinkDocumentID holds the string denoting the link_document_id field in the database.
	FieldLinkDocumentID = "link_document_id"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldImageID holds the string denoting the image_id field in the database.
	FieldImageID = "image_id"
	// FieldEmbedURL holds the string denoting the embed_url field in the database.
	FieldEmbedURL = "embed_url"
	// FieldCaption holds the string denoting the caption field in the database.
	FieldCaption = "caption"
	// FieldHomePageID holds the string denoting the home_page_id field in the database.
	FieldHomePageID = "home_page_id"
	// EdgeLinkNode holds the string denoting the link_node edge name in mutations.
	EdgeLinkNode = "link_node"
	// EdgeLinkDocument holds the string denoting the link_document edge name in mutations.
	EdgeLinkDocument = "link_document"
	// EdgeImage holds the string denoting the image edge name in mutations.
	EdgeImage = "image"
	// EdgeHomePage holds the string denoting the home_page edge name in mutations.
	EdgeHomePage = "home_page"
	// Table holds the table name of the carouselitem in the database.
	Table = "carousel_items"
	// LinkNodeTable is the table that holds the link_node relation/edge.
	LinkNodeTable = "carousel_items"
	// LinkNodeInverseTable is the table name for the Node entity.
	// It exists in this package in order to avoid circular dependency with the "node" package.
	LinkNodeInverseTable = "nodes"
	// LinkNodeColumn is the table column denoting the link_node relation/edge.
	LinkNodeColumn = "link_node_id"
	// LinkDocumentTable is the table that holds the link_document relation/edge.
	LinkDocumentTable = "carousel_items"
	// LinkDocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	LinkDocumentInverseTable = "documents"
	// LinkDocumentColumn is the table column denoting the link_document relation/edge.
	LinkDocumentColumn = "link_document_id"
	// ImageTable is the table that holds the image relation/edge.
	ImageTable = "carousel_items"
	// ImageInverseTable is the table name for the Image entity.
	// It exists in this package in order to avoid circular dependency with the "image" package.
	ImageInverseTable = "images"
	// ImageColumn is the table column denoting the image relation/edge.
	ImageColumn = "image_id"
	// HomePageTable is the table that holds the home_page relation/edge.
	HomePageTable = "carousel_items"
	// HomePageInverseTable is the table name for the HomePage entity.
	// It exists in this package in order to avoid circular dependency with the "homepage" package.
	HomePageInverseTable = "home_pages"
	// HomePageColumn is the table column denoting the home_page relation/edge.
	HomePageColumn = "home_page_id"
)

// Columns holds all SQL columns for carouselitem fields.
var Columns = []string{
	FieldID,
	FieldLinkExternal,
	FieldLinkNodeID,
	FieldLinkDocumentID,
	FieldSortOrder,
	FieldImageID,
	FieldEmbedURL,
	FieldCaption,
	FieldHomePageID,
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
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// EmbedURLValidator is a validator for the "embed_url" field. It is called by the builders before save.
	EmbedURLValidator func(string) error
	// CaptionValidator is a validator for the "caption" field. It is called by the builders before save.
	CaptionValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CarouselItem queries.
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

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByImageID orders the results by the image_id field.
func ByImageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageID, opts...).ToFunc()
}

// ByEmbedURL orders the results by the embed_url field.
func ByEmbedURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbedURL, opts...).ToFunc()
}

// ByCaption orders the results by the caption field.
func ByCaption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaption, opts...).ToFunc()
}

// ByHomePageID orders the results by the home_page_id field.
func ByHomePageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHomePageID, opts...).ToFunc()
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

// ByImageField orders the results by image field.
func ByImageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImageStep(), sql.OrderByField(field, opts...))
	}
}

// ByHomePageField orders the results by home_page field.
func ByHomePageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHomePageStep(), sql.OrderByField(field, opts...))
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
func newImageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ImageTable, ImageColumn),
	)
}
func newHomePageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HomePageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HomePageTable, HomePageColumn),
	)
}
