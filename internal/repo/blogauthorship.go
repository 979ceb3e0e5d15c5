// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
)

// BlogAuthorship is the model entity for the BlogAuthorship schema.
type BlogAuthorship struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// BlogPageID holds the value of the "blog_page_id" field.
	BlogPageID uuid.UUID `json:"blog_page_id,omitempty"`
	// PersonPageID holds the value of the "person_page_id" field.
	PersonPageID uuid.UUID `json:"person_page_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlogAuthorshipQuery when eager-loading is set.
	Edges        BlogAuthorshipEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlogAuthorshipEdges holds the relations/edges for other nodes in the graph.
type BlogAuthorshipEdges struct {
	// BlogPage holds the value of the blog_page edge.
	BlogPage *BlogPage `json:"blog_page,omitempty"`
	// Author holds the value of the author edge.
	Author *PersonPage `json:"author,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BlogPageOrErr returns the BlogPage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlogAuthorshipEdges) BlogPageOrErr() (*BlogPage, error) {
	if e.BlogPage != nil {
		return e.BlogPage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: blogpage.Label}
	}
	return nil, &NotLoadedError{edge: "blog_page"}
}

// AuthorOrErr returns the Author value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlogAuthorshipEdges) AuthorOrErr() (*PersonPage, error) {
	if e.Author != nil {
		return e.Author, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: personpage.Label}
	}
	return nil, &NotLoadedError{edge: "author"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlogAuthorship) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blogauthorship.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case blogauthorship.FieldID, blogauthorship.FieldBlogPageID, blogauthorship.FieldPersonPageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlogAuthorship fields.
func (_m *BlogAuthorship) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blogauthorship.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case blogauthorship.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case blogauthorship.FieldBlogPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field blog_page_id", values[i])
			} else if value != nil {
				_m.BlogPageID = *value
			}
		case blogauthorship.FieldPersonPageID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BlogAuthorship.
// This includes values selected through modifiers, order, etc.
func (_m *BlogAuthorship) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBlogPage queries the "blog_page" edge of the BlogAuthorship entity.
func (_m *BlogAuthorship) QueryBlogPage() *BlogPageQuery {
	return NewBlogAuthorshipClient(_m.config).QueryBlogPage(_m)
}

// QueryAuthor queries the "author" edge of the BlogAuthorship entity.
func (_m *BlogAuthorship) QueryAuthor() *PersonPageQuery {
	return NewBlogAuthorshipClient(_m.config).QueryAuthor(_m)
}

// Update returns a builder for updating this BlogAuthorship.
// Note that you need to call BlogAuthorship.Unwrap() before calling this method if this BlogAuthorship
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlogAuthorship) Update() *BlogAuthorshipUpdateOne {
	return NewBlogAuthorshipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlogAuthorship entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlogAuthorship) Unwrap() *BlogAuthorship {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BlogAuthorship is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlogAuthorship) String() string {
	var builder strings.Builder
	builder.WriteString("BlogAuthorship(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("blog_page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlogPageID))
	builder.WriteString(", ")
	builder.WriteString("person_page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonPageID))
	builder.WriteByte(')')
	return builder.String()
}

// BlogAuthorships is a parsable slice of BlogAuthorship.
type BlogAuthorships []*BlogAuthorship
