// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
)

// StandardPage is the model entity for the StandardPage schema.
type StandardPage struct {
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
	// FeedImageID holds the value of the "feed_image_id" field.
	FeedImageID uuid.UUID `json:"feed_image_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StandardPageQuery when eager-loading is set.
	Edges        StandardPageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StandardPageEdges holds the relations/edges for other nodes in the graph.
type StandardPageEdges struct {
	// Node holds the value of the node edge.
	Node *Node `json:"node,omitempty"`
	// FeedImage holds the value of the feed_image edge.
	FeedImage *Image `json:"feed_image,omitempty"`
	// RelatedLinks holds the value of the related_links edge.
	RelatedLinks []*RelatedLink `json:"related_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// NodeOrErr returns the Node value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StandardPageEdges) NodeOrErr() (*Node, error) {
	if e.Node != nil {
		return e.Node, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "node"}
}

// FeedImageOrErr returns the FeedImage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StandardPageEdges) FeedImageOrErr() (*Image, error) {
	if e.FeedImage != nil {
		return e.FeedImage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: image.Label}
	}
	return nil, &NotLoadedError{edge: "feed_image"}
}

// RelatedLinksOrErr returns the RelatedLinks value or an error if the edge
// was not loaded in eager-loading.
func (e StandardPageEdges) RelatedLinksOrErr() ([]*RelatedLink, error) {
	if e.loadedTypes[2] {
		return e.RelatedLinks, nil
	}
	return nil, &NotLoadedError{edge: "related_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StandardPage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case standardpage.FieldIntro, standardpage.FieldBody:
			values[i] = new(sql.NullString)
		case standardpage.FieldCreatedAt, standardpage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case standardpage.FieldID, standardpage.FieldNodeID, standardpage.FieldFeedImageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StandardPage fields.
func (_m *StandardPage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case standardpage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case standardpage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case standardpage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case standardpage.FieldNodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value != nil {
				_m.NodeID = *value
			}
		case standardpage.FieldIntro:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intro", values[i])
			} else if value.Valid {
				_m.Intro = value.String
			}
		case standardpage.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case standardpage.FieldFeedImageID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StandardPage.
// This includes values selected through modifiers, order, etc.
func (_m *StandardPage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNode queries the "node" edge of the StandardPage entity.
func (_m *StandardPage) QueryNode() *NodeQuery {
	return NewStandardPageClient(_m.config).QueryNode(_m)
}

// QueryFeedImage queries the "feed_image" edge of the StandardPage entity.
func (_m *StandardPage) QueryFeedImage() *ImageQuery {
	return NewStandardPageClient(_m.config).QueryFeedImage(_m)
}

// QueryRelatedLinks queries the "related_links" edge of the StandardPage entity.
func (_m *StandardPage) QueryRelatedLinks() *RelatedLinkQuery {
	return NewStandardPageClient(_m.config).QueryRelatedLinks(_m)
}

// Update returns a builder for updating this StandardPage.
// Note that you need to call StandardPage.Unwrap() before calling this method if this StandardPage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StandardPage) Update() *StandardPageUpdateOne {
	return NewStandardPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StandardPage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StandardPage) Unwrap() *StandardPage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: StandardPage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StandardPage) String() string {
	var builder strings.Builder
	builder.WriteString("StandardPage(")
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
	builder.WriteString("feed_image_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedImageID))
	builder.WriteByte(')')
	return builder.String()
}

// StandardPages is a parsable slice of StandardPage.
type StandardPages []*StandardPage
