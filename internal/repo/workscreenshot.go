// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/workpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workscreenshot"
)

// WorkScreenshot is the model entity for the WorkScreenshot schema.
type WorkScreenshot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// ImageID holds the value of the "image_id" field.
	ImageID uuid.UUID `json:"image_id,omitempty"`
	// WorkPageID holds the value of the "work_page_id" field.
	WorkPageID uuid.UUID `json:"work_page_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkScreenshotQuery when eager-loading is set.
	Edges        WorkScreenshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkScreenshotEdges holds the relations/edges for other nodes in the graph.
type WorkScreenshotEdges struct {
	// Image holds the value of the image edge.
	Image *Image `json:"image,omitempty"`
	// WorkPage holds the value of the work_page edge.
	WorkPage *WorkPage `json:"work_page,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ImageOrErr returns the Image value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkScreenshotEdges) ImageOrErr() (*Image, error) {
	if e.Image != nil {
		return e.Image, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: image.Label}
	}
	return nil, &NotLoadedError{edge: "image"}
}

// WorkPageOrErr returns the WorkPage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkScreenshotEdges) WorkPageOrErr() (*WorkPage, error) {
	if e.WorkPage != nil {
		return e.WorkPage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: workpage.Label}
	}
	return nil, &NotLoadedError{edge: "work_page"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkScreenshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workscreenshot.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case workscreenshot.FieldID, workscreenshot.FieldImageID, workscreenshot.FieldWorkPageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkScreenshot fields.
func (_m *WorkScreenshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workscreenshot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case workscreenshot.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case workscreenshot.FieldImageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field image_id", values[i])
			} else if value != nil {
				_m.ImageID = *value
			}
		case workscreenshot.FieldWorkPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field work_page_id", values[i])
			} else if value != nil {
				_m.WorkPageID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkScreenshot.
// This includes values selected through modifiers, order, etc.
func (_m *WorkScreenshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryImage queries the "image" edge of the WorkScreenshot entity.
func (_m *WorkScreenshot) QueryImage() *ImageQuery {
	return NewWorkScreenshotClient(_m.config).QueryImage(_m)
}

// QueryWorkPage queries the "work_page" edge of the WorkScreenshot entity.
func (_m *WorkScreenshot) QueryWorkPage() *WorkPageQuery {
	return NewWorkScreenshotClient(_m.config).QueryWorkPage(_m)
}

// Update returns a builder for updating this WorkScreenshot.
// Note that you need to call WorkScreenshot.Unwrap() before calling this method if this WorkScreenshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkScreenshot) Update() *WorkScreenshotUpdateOne {
	return NewWorkScreenshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkScreenshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkScreenshot) Unwrap() *WorkScreenshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: WorkScreenshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkScreenshot) String() string {
	var builder strings.Builder
	builder.WriteString("WorkScreenshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("image_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageID))
	builder.WriteString(", ")
	builder.WriteString("work_page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkPageID))
	builder.WriteByte(')')
	return builder.String()
}

// WorkScreenshots is a parsable slice of WorkScreenshot.
type WorkScreenshots []*WorkScreenshot
