// Code generated by ent, DO NOT EDIT.

package blogpage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the blogpage type in the database.
	Label = "blog_page"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNodeID holds the string denoting the node_id field in the database.
	FieldNodeID = "node_id"
	// FieldIntro holds the string denoting the intro field in the database.
	FieldIntro = "intro"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldFeedImageID holds the string denoting the feed_image_id field in the database.
	FieldFeedImageID = "feed_image_id"
	// EdgeNode holds the string denoting the node edge name in mutations.
	EdgeNode = "node"
	// EdgeFeedImage holds the string denoting the feed_image edge name in mutations.
	EdgeFeedImage = "feed_image"
	// EdgeTags holds the string denoting the tags edge name in mutations.
	EdgeTags = "tags"
	// EdgeRelatedLinks holds the string denoting the related_links edge name in mutations.
	EdgeRelatedLinks = "related_links"
	// EdgeAuthorships holds the string denoting the authorships edge name in mutations.
	EdgeAuthorships = "authorships"
	// Table holds the table name of the blogpage in the database.
	Table = "blog_pages"
	// NodeTable is the table that holds the node relation/edge.
	NodeTable = "blog_pages"
	// NodeInverseTable is the table name for the Node entity.
	// It exists in this package in order to avoid circular dependency with the "node" package.
	NodeInverseTable = "nodes"
	// NodeColumn is the table column denoting the node relation/edge.
	NodeColumn = "node_id"
	// FeedImageTable is the table that holds the feed_image relation/edge.
	FeedImageTable = "blog_pages"
	// FeedImageInverseTable is the table name for the Image entity.
	// It exists in this package in order to avoid circular dependency with the "image" package.
	FeedImageInverseTable = "images"
	// FeedImageColumn is the table column denoting the feed_image relation/edge.
	FeedImageColumn = "feed_image_id"
	// TagsTable is the table that holds the tags relation/edge. The primary key declared below.
	TagsTable = "blog_page_tags"
	// TagsInverseTable is the table name for the Tag entity.
	// It exists in this package in order to avoid circular dependency with the "tag" package.
	TagsInverseTable = "tags"
	// RelatedLinksTable is the table that holds the related_links relation/edge.
	RelatedLinksTable = "related_links"
	// RelatedLinksInverseTable is the table name for the RelatedLink entity.
	// It exists in this package in order to avoid circular dependency with the "relatedlink" package.
	RelatedLinksInverseTable = "related_links"
	// RelatedLinksColumn is the table column denoting the related_links relation/edge.
	RelatedLinksColumn = "blog_page_id"
	// AuthorshipsTable is the table that holds the authorships relation/edge.
	AuthorshipsTable = "blog_authorships"
	// AuthorshipsInverseTable is the table name for the BlogAuthorship entity.
	// It exists in this package in order to avoid circular dependency with the "blogauthorship" package.
	AuthorshipsInverseTable = "blog_authorships"
	// AuthorshipsColumn is the table column denoting the authorships relation/edge.
	AuthorshipsColumn = "blog_page_id"
)

// Columns holds all SQL columns for blogpage fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNodeID,
	FieldIntro,
	FieldBody,
	FieldDate,
	FieldFeedImageID,
}

var (
	// TagsPrimaryKey and TagsColumn2 are the table columns denoting the
	// primary key for the tags relation (M2M).
	TagsPrimaryKey = []string{"blog_page_id", "tag_id"}
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// BodyValidator is a validator for the "body" field. It is called by the builders before save.
	BodyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BlogPage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByNodeID orders the results by the node_id field.
func ByNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeID, opts...).ToFunc()
}

// ByIntro orders the results by the intro field.
func ByIntro(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntro, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByFeedImageID orders the results by the feed_image_id field.
func ByFeedImageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedImageID, opts...).ToFunc()
}

// ByNodeField orders the results by node field.
func ByNodeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodeStep(), sql.OrderByField(field, opts...))
	}
}

// ByFeedImageField orders the results by feed_image field.
func ByFeedImageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeedImageStep(), sql.OrderByField(field, opts...))
	}
}

// ByTagsCount orders the results by tags count.
func ByTagsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTagsStep(), opts...)
	}
}

// ByTags orders the results by tags terms.
func ByTags(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTagsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRelatedLinksCount orders the results by related_links count.
func ByRelatedLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRelatedLinksStep(), opts...)
	}
}

// ByRelatedLinks orders the results by related_links terms.
func ByRelatedLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRelatedLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuthorshipsCount orders the results by authorships count.
func ByAuthorshipsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuthorshipsStep(), opts...)
	}
}

// ByAuthorships orders the results by authorships terms.
func ByAuthorships(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorshipsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNodeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, NodeTable, NodeColumn),
	)
}
func newFeedImageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeedImageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, FeedImageTable, FeedImageColumn),
	)
}
func newTagsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TagsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, TagsTable, TagsPrimaryKey...),
	)
}
func newRelatedLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RelatedLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RelatedLinksTable, RelatedLinksColumn),
	)
}
func newAuthorshipsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorshipsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuthorshipsTable, AuthorshipsColumn),
	)
}
