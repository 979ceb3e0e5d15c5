// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
)

// RelatedLink is the model entity for the RelatedLink schema.
type RelatedLink struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Raw external URL, lowest-priority link target
	LinkExternal string `json:"link_external,omitempty"`
	// LinkNodeID holds the value of the "link_node_id" field.
	LinkNodeID uuid.UUID `json:"link_node_id,omitempty"`
	// LinkDocumentID holds the value of the "link_document_id" field.
	LinkDocumentID uuid.UUID `json:"link_document_id,omitempty"`
	// Link title
	Title string `json:"title,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// StandardPageID holds the value of the "standard_page_id" field.
	StandardPageID uuid.UUID `json:"standard_page_id,omitempty"`
	// BlogIndexPageID holds the value of the "blog_index_page_id" field.
	BlogIndexPageID uuid.UUID `json:"blog_index_page_id,omitempty"`
	// BlogPageID holds the value of the "blog_page_id" field.
	BlogPageID uuid.UUID `json:"blog_page_id,omitempty"`
	// PersonPageID holds the value of the "person_page_id" field.
	PersonPageID uuid.UUID `json:"person_page_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RelatedLinkQuery when eager-loading is set.
	Edges        RelatedLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RelatedLinkEdges holds the relations/edges for other nodes in the graph.
type RelatedLinkEdges struct {
	// LinkNode holds the value of the link_node edge.
	LinkNode *Node `json:"link_node,omitempty"`
	// LinkDocument holds the value of the link_document edge.
	LinkDocument *Document `json:"link_document,omitempty"`
	// StandardPage holds the value of the standard_page edge.
	StandardPage *StandardPage `json:"standard_page,omitempty"`
	// BlogIndexPage holds the value of the blog_index_page edge.
	BlogIndexPage *BlogIndexPage `json:"blog_index_page,omitempty"`
	// BlogPage holds the value of the blog_page edge.
	BlogPage *BlogPage `json:"blog_page,omitempty"`
	// PersonPage holds the value of the person_page edge.
	PersonPage *PersonPage `json:"person_page,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// LinkNodeOrErr returns the LinkNode value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RelatedLinkEdges) LinkNodeOrErr() (*Node, error) {
	if e.LinkNode != nil {
		return e.LinkNode, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "link_node"}
}

// LinkDocumentOrErr returns the LinkDocument value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RelatedLinkEdges) LinkDocumentOrErr() (*Document, error) {
	if e.LinkDocument != nil {
		return e.LinkDocument, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "link_document"}
}

// StandardPageOrErr returns the StandardPage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RelatedLinkEdges) StandardPageOrErr() (*StandardPage, error) {
	if e.StandardPage != nil {
		return e.StandardPage, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: standardpage.Label}
	}
	return nil, &NotLoadedError{edge: "standard_page"}
}

// BlogIndexPageOrErr returns the BlogIndexPage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RelatedLinkEdges) BlogIndexPageOrErr() (*BlogIndexPage, error) {
	if e.BlogIndexPage != nil {
		return e.BlogIndexPage, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: blogindexpage.Label}
	}
	return nil, &NotLoadedError{edge: "blog_index_page"}
}

// BlogPageOrErr returns the BlogPage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RelatedLinkEdges) BlogPageOrErr() (*BlogPage, error) {
	if e.BlogPage != nil {
		return e.BlogPage, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: blogpage.Label}
	}
	return nil, &NotLoadedError{edge: "blog_page"}
}

// PersonPageOrErr returns the PersonPage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RelatedLinkEdges) PersonPageOrErr() (*PersonPage, error) {
	if e.PersonPage != nil {
		return e.PersonPage, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: personpage.Label}
	}
	return nil, &NotLoadedError{edge: "person_page"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RelatedLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case relatedlink.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case relatedlink.FieldLinkExternal, relatedlink.FieldTitle:
			values[i] = new(sql.NullString)
		case relatedlink.FieldID, relatedlink.FieldLinkNodeID, relatedlink.FieldLinkDocumentID, relatedlink.FieldStandardPageID, relatedlink.FieldBlogIndexPageID, relatedlink.FieldBlogPageID, relatedlink.FieldPersonPageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RelatedLink fields.
func (_m *RelatedLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case relatedlink.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case relatedlink.FieldLinkExternal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field link_external", values[i])
			} else if value.Valid {
				_m.LinkExternal = value.String
			}
		case relatedlink.FieldLinkNodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field link_node_id", values[i])
			} else if value != nil {
				_m.LinkNodeID = *value
			}
		case relatedlink.FieldLinkDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field link_document_id", values[i])
			} else if value != nil {
				_m.LinkDocumentID = *value
			}
		case relatedlink.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case relatedlink.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case relatedlink.FieldStandardPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field standard_page_id", values[i])
			} else if value != nil {
				_m.StandardPageID = *value
			}
		case relatedlink.FieldBlogIndexPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field blog_index_page_id", values[i])
			} else if value != nil {
				_m.BlogIndexPageID = *value
			}
		case relatedlink.FieldBlogPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field blog_page_id", values[i])
			} else if value != nil {
				_m.BlogPageID = *value
			}
		case relatedlink.FieldPersonPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field person_page_id", values[i])
			} else if value != nil {
				_m.PersonPageID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RelatedLink.
// This includes values selected through modifiers, order, etc.
func (_m *RelatedLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLinkNode queries the "link_node" edge of the RelatedLink entity.
func (_m *RelatedLink) QueryLinkNode() *NodeQuery {
	return NewRelatedLinkClient(_m.config).QueryLinkNode(_m)
}

// QueryLinkDocument queries the "link_document" edge of the RelatedLink entity.
func (_m *RelatedLink) QueryLinkDocument() *DocumentQuery {
	return NewRelatedLinkClient(_m.config).QueryLinkDocument(_m)
}

// QueryStandardPage queries the "standard_page" edge of the RelatedLink entity.
func (_m *RelatedLink) QueryStandardPage() *StandardPageQuery {
	return NewRelatedLinkClient(_m.config).QueryStandardPage(_m)
}

// QueryBlogIndexPage queries the "blog_index_page" edge of the RelatedLink entity.
func (_m *RelatedLink) QueryBlogIndexPage() *BlogIndexPageQuery {
	return NewRelatedLinkClient(_m.config).QueryBlogIndexPage(_m)
}

// QueryBlogPage queries the "blog_page" edge of the RelatedLink entity.
func (_m *RelatedLink) QueryBlogPage() *BlogPageQuery {
	return NewRelatedLinkClient(_m.config).QueryBlogPage(_m)
}

// QueryPersonPage queries the "person_page" edge of the RelatedLink entity.
func (_m *RelatedLink) QueryPersonPage() *PersonPageQuery {
	return NewRelatedLinkClient(_m.config).QueryPersonPage(_m)
}

// Update returns a builder for updating this RelatedLink.
// Note that you need to call RelatedLink.Unwrap() before calling this method if this RelatedLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RelatedLink) Update() *RelatedLinkUpdateOne {
	return NewRelatedLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RelatedLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RelatedLink) Unwrap() *RelatedLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: RelatedLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RelatedLink) String() string {
	var builder strings.Builder
	builder.WriteString("RelatedLink(")
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
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("standard_page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StandardPageID))
	builder.WriteString(", ")
	builder.WriteString("blog_index_page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlogIndexPageID))
	builder.WriteString(", ")
	builder.WriteString("blog_page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlogPageID))
	builder.WriteString(", ")
	builder.WriteString("person_page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonPageID))
	builder.WriteByte(')')
	return builder.String()
}

// RelatedLinks is a parsable slice of RelatedLink.
type RelatedLinks []*RelatedLink
