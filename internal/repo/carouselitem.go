// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/carouselitem"
	"github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/internal/repo/homepage"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// CarouselItem is the model entity for the CarouselItem schema.
type CarouselItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Raw external URL, lowest-priority link target
	LinkExternal string `json:"link_external,omitempty"`
	// LinkNodeID holds the value of the "link_node_id" field.
	LinkNodeID uuid.UUID `json:"link_node_id,omitempty"`
	// LinkDocumentID holds the value of the "link_document_id" field.
	LinkDocumentID uuid.UUID `json:"link_document_id,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// ImageID holds the value of the "image_id" field.
	ImageID uuid.UUID `json:"image_id,omitempty"`
	// EmbedURL holds the value of the "embed_url" field.
	EmbedURL string `json:"embed_url,omitempty"`
	// Caption holds the value of the "caption" field.
	Caption string `json:"caption,omitempty"`
	// HomePageID holds the value of the "home_page_id" field.
	HomePageID uuid.UUID `json:"home_page_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CarouselItemQuery when eager-loading is set.
	Edges        CarouselItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CarouselItemEdges holds the relations/edges for other nodes in the graph.
type CarouselItemEdges struct {
	// LinkNode holds the value of the link_node edge.
	LinkNode *Node `json:"link_node,omitempty"`
	// LinkDocument holds the value of the link_document edge.
	LinkDocument *Document `json:"link_document,omitempty"`
	// Image holds the value of the image edge.
	Image *Image `json:"image,omitempty"`
	// HomePage holds the value of the home_page edge.
	HomePage *HomePage `json:"home_page,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// LinkNodeOrErr returns the LinkNode value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CarouselItemEdges) LinkNodeOrErr() (*Node, error) {
	if e.LinkNode != nil {
		return e.LinkNode, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "link_node"}
}

// LinkDocumentOrErr returns the LinkDocument value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CarouselItemEdges) LinkDocumentOrErr() (*Document, error) {
	if e.LinkDocument != nil {
		return e.LinkDocument, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "link_document"}
}

// ImageOrErr returns the Image value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CarouselItemEdges) ImageOrErr() (*Image, error) {
	if e.Image != nil {
		return e.Image, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: image.Label}
	}
	return nil, &NotLoadedError{edge: "image"}
}

// HomePageOrErr returns the HomePage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CarouselItemEdges) HomePageOrErr() (*HomePage, error) {
	if e.HomePage != nil {
		return e.HomePage, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: homepage.Label}
	}
	return nil, &NotLoadedError{edge: "home_page"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CarouselItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case carouselitem.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case carouselitem.FieldLinkExternal, carouselitem.FieldEmbedURL, carouselitem.FieldCaption:
			values[i] = new(sql.NullString)
		case carouselitem.FieldID, carouselitem.FieldLinkNodeID, carouselitem.FieldLinkDocumentID, carouselitem.FieldImageID, carouselitem.FieldHomePageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CarouselItem fields.
func (_m *CarouselItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case carouselitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case carouselitem.FieldLinkExternal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field link_external", values[i])
			} else if value.Valid {
				_m.LinkExternal = value.String
			}
		case carouselitem.FieldLinkNodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field link_node_id", values[i])
			} else if value != nil {
				_m.LinkNodeID = *value
			}
		case carouselitem.FieldLinkDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field link_document_id", values[i])
			} else if value != nil {
				_m.LinkDocumentID = *value
			}
		case carouselitem.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case carouselitem.FieldImageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field image_id", values[i])
			} else if value != nil {
				_m.ImageID = *value
			}
		case carouselitem.FieldEmbedURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field embed_url", values[i])
			} else if value.Valid {
				_m.EmbedURL = value.String
			}
		case carouselitem.FieldCaption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field caption", values[i])
			} else if value.Valid {
				_m.Caption = value.String
			}
		case carouselitem.FieldHomePageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field home_page_id", values[i])
			} else if value != nil {
				_m.HomePageID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CarouselItem.
// This includes values selected through modifiers, order, etc.
func (_m *CarouselItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLinkNode queries the "link_node" edge of the CarouselItem entity.
func (_m *CarouselItem) QueryLinkNode() *NodeQuery {
	return NewCarouselItemClient(_m.config).QueryLinkNode(_m)
}

// QueryLinkDocument queries the "link_document" edge of the CarouselItem entity.
func (_m *CarouselItem) QueryLinkDocument() *DocumentQuery {
	return NewCarouselItemClient(_m.config).QueryLinkDocument(_m)
}

// QueryImage queries the "image" edge of the CarouselItem entity.
func (_m *CarouselItem) QueryImage() *ImageQuery {
	return NewCarouselItemClient(_m.config).QueryImage(_m)
}

// QueryHomePage queries the "home_page" edge of the CarouselItem entity.
func (_m *CarouselItem) QueryHomePage() *HomePageQuery {
	return NewCarouselItemClient(_m.config).QueryHomePage(_m)
}

// Update returns a builder for updating this CarouselItem.
// Note that you need to call CarouselItem.Unwrap() before calling this method if this CarouselItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CarouselItem) Update() *CarouselItemUpdateOne {
	return NewCarouselItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CarouselItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CarouselItem) Unwrap() *CarouselItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CarouselItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CarouselItem) String() string {
	var builder strings.Builder
	builder.WriteString("CarouselItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("link_external=")
	builder.WriteString(_m.LinkExternal)
	builder.WriteString(", ")
	builder.WriteString("link_node_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinkNodeID))
	builder.WriteString(", ")
	builder.WriteString("link_document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinkDocumentID))
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("image_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageID))
	builder.WriteString(", ")
	builder.WriteString("embed_url=")
	builder.WriteString(_m.EmbedURL)
	builder.WriteString(", ")
	builder.WriteString("caption=")
	builder.WriteString(_m.Caption)
	builder.WriteString(", ")
	builder.WriteString("home_page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HomePageID))
	builder.WriteByte(')')
	return builder.String()
}

// CarouselItems is a parsable slice of CarouselItem.
type CarouselItems []*CarouselItem
