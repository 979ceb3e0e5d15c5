// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// BlogPage is the model entity for the BlogPage schema.
type BlogPage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID uuid.UUID `json:"node_id,omitempty"`
	// Intro holds the value of the "intro" field.
	Intro string `json:"intro,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Post date
	Date time.Time `json:"date,omitempty"`
	// FeedImageID holds the value of the "feed_image_id" field.
	FeedImageID uuid.UUID `json:"feed_image_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlogPageQuery when eager-loading is set.
	Edges        BlogPageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlogPageEdges holds the relations/edges for other nodes in the graph.
type BlogPageEdges struct {
	// Node holds the value of the node edge.
	Node *Node `json:"node,omitempty"`
	// FeedImage holds the value of the feed_image edge.
	FeedImage *Image `json:"feed_image,omitempty"`
	// Tags holds the value of the tags edge.
	Tags []*Tag `json:"tags,omitempty"`
	// RelatedLinks holds the value of the related_links edge.
	RelatedLinks []*RelatedLink `json:"related_links,omitempty"`
	// Authorships holds the value of the authorships edge.
	Authorships []*BlogAuthorship `json:"authorships,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// NodeOrErr returns the Node value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlogPageEdges) NodeOrErr() (*Node, error) {
	if e.Node != nil {
		return e.Node, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "node"}
}

// FeedImageOrErr returns the FeedImage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlogPageEdges) FeedImageOrErr() (*Image, error) {
	if e.FeedImage != nil {
		return e.FeedImage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: image.Label}
	}
	return nil, &NotLoadedError{edge: "feed_image"}
}

// TagsOrErr returns the Tags value or an error if the edge
// was not loaded in eager-loading.
func (e BlogPageEdges) TagsOrErr() ([]*Tag, error) {
	if e.loadedTypes[2] {
		return e.Tags, nil
	}
	return nil, &NotLoadedError{edge: "tags"}
}

// RelatedLinksOrErr returns the RelatedLinks value or an error if the edge
// was not loaded in eager-loading.
func (e BlogPageEdges) RelatedLinksOrErr() ([]*RelatedLink, error) {
	if e.loadedTypes[3] {
		return e.RelatedLinks, nil
	}
	return nil, &NotLoadedError{edge: "related_links"}
}

// AuthorshipsOrErr returns the Authorships value or an error if the edge
// was not loaded in eager-loading.
func (e BlogPageEdges) AuthorshipsOrErr() ([]*BlogAuthorship, error) {
	if e.loadedTypes[4] {
		return e.Authorships, nil
	}
	return nil, &NotLoadedError{edge: "authorships"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlogPage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blogpage.FieldIntro, blogpage.FieldBody:
			values[i] = new(sql.NullString)
		case blogpage.FieldCreatedAt, blogpage.FieldUpdatedAt, blogpage.FieldDate:
			values[i] = new(sql.NullTime)
		case blogpage.FieldID, blogpage.FieldNodeID, blogpage.FieldFeedImageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlogPage fields.
func (_m *BlogPage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blogpage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case blogpage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case blogpage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case blogpage.FieldNodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value != nil {
				_m.NodeID = *value
			}
		case blogpage.FieldIntro:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intro", values[i])
			} else if value.Valid {
				_m.Intro = value.String
			}
		case blogpage.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case blogpage.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case blogpage.FieldFeedImageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field feed_image_id", values[i])
			} else if value != nil {
				_m.FeedImageID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlogPage.
// This includes values selected through modifiers, order, etc.
func (_m *BlogPage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNode queries the "node" edge of the BlogPage entity.
func (_m *BlogPage) QueryNode() *NodeQuery {
	return NewBlogPageClient(_m.config).QueryNode(_m)
}

// QueryFeedImage queries the "feed_image" edge of the BlogPage entity.
func (_m *BlogPage) QueryFeedImage() *ImageQuery {
	return NewBlogPageClient(_m.config).QueryFeedImage(_m)
}

// QueryTags queries the "tags" edge of the BlogPage entity.
func (_m *BlogPage) QueryTags() *TagQuery {
	return NewBlogPageClient(_m.config).QueryTags(_m)
}

// QueryRelatedLinks queries the "related_links" edge of the BlogPage entity.
func (_m *BlogPage) QueryRelatedLinks() *RelatedLinkQuery {
	return NewBlogPageClient(_m.config).QueryRelatedLinks(_m)
}

// QueryAuthorships queries the "authorships" edge of the BlogPage entity.
func (_m *BlogPage) QueryAuthorships() *BlogAuthorshipQuery {
	return NewBlogPageClient(_m.config).QueryAuthorships(_m)
}

// Update returns a builder for updating this BlogPage.
// Note that you need to call BlogPage.Unwrap() before calling this method if this BlogPage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlogPage) Update() *BlogPageUpdateOne {
	return NewBlogPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlogPage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlogPage) Unwrap() *BlogPage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BlogPage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlogPage) String() string {
	var builder strings.Builder
	builder.WriteString("BlogPage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeID))
	builder.WriteString(", ")
	builder.WriteString("intro=")
	builder.WriteString(_m.Intro)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("feed_image_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedImageID))
	builder.WriteByte(')')
	return builder.String()
}

// BlogPages is a parsable slice of BlogPage.
type BlogPages []*BlogPage
