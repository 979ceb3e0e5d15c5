// Code generated by ent, DO NOT EDIT.

package node

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the node type in the database.
	Label = "node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldURLPath holds the string denoting the url_path field in the database.
	FieldURLPath = "url_path"
	// FieldLive holds the string denoting the live field in the database.
	FieldLive = "live"
	// FieldShowInMenus holds the string denoting the show_in_menus field in the database.
	FieldShowInMenus = "show_in_menus"
	// FieldSeoTitle holds the string denoting the seo_title field in the database.
	FieldSeoTitle = "seo_title"
	// FieldSearchDescription holds the string denoting the search_description field in the database.
	FieldSearchDescription = "search_description"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// Table holds the table name of the node in the database.
	Table = "nodes"
)

// Columns holds all SQL columns for node fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPath,
	FieldDepth,
	FieldTitle,
	FieldSlug,
	FieldURLPath,
	FieldLive,
	FieldShowInMenus,
	FieldSeoTitle,
	FieldSearchDescription,
	FieldContentType,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// PathValidator is a validator for the "path" field. It is called by the builders before save.
	PathValidator func(string) error
	// DepthValidator is a validator for the "depth" field. It is called by the builders before save.
	DepthValidator func(int) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// URLPathValidator is a validator for the "url_path" field. It is called by the builders before save.
	URLPathValidator func(string) error
	// DefaultLive holds the default value on creation for the "live" field.
	DefaultLive bool
	// DefaultShowInMenus holds the default value on creation for the "show_in_menus" field.
	DefaultShowInMenus bool
	// SeoTitleValidator is a validator for the "seo_title" field. It is called by the builders before save.
	SeoTitleValidator func(string) error
	// ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	ContentTypeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Node queries.
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

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByURLPath orders the results by the url_path field.
func ByURLPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURLPath, opts...).ToFunc()
}

// ByLive orders the results by the live field.
func ByLive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLive, opts...).ToFunc()
}

// ByShowInMenus orders the results by the show_in_menus field.
func ByShowInMenus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShowInMenus, opts...).ToFunc()
}

// BySeoTitle orders the results by the seo_title field.
func BySeoTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeoTitle, opts...).ToFunc()
}

// BySearchDescription orders the results by the search_description field.
func BySearchDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchDescription, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}
