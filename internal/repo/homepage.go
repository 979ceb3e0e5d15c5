// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/homepage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// HomePage is the model entity for the HomePage schema.
type HomePage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID uuid.UUID `json:"node_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HomePageQuery when eager-loading is set.
	Edges        HomePageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HomePageEdges holds the relations/edges for other nodes in the graph.
type HomePageEdges struct {
	// Node holds the value of the node edge.
	Node *Node `json:"node,omitempty"`
	// CarouselItems holds the value of the carousel_items edge.
	CarouselItems []*CarouselItem `json:"carousel_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NodeOrErr returns the Node value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HomePageEdges) NodeOrErr() (*Node, error) {
	if e.Node != nil {
		return e.Node, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "node"}
}

// CarouselItemsOrErr returns the CarouselItems value or an error if the edge
// was not loaded in eager-loading.
func (e HomePageEdges) CarouselItemsOrErr() ([]*CarouselItem, error) {
	if e.loadedTypes[1] {
		return e.CarouselItems, nil
	}
	return nil, &NotLoadedError{edge: "carousel_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HomePage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case homepage.FieldCreatedAt, homepage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case homepage.FieldID, homepage.FieldNodeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HomePage fields.
func (_m *HomePage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case homepage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case homepage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case homepage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case homepage.FieldNodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value != nil {
				_m.NodeID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HomePage.
// This includes values selected through modifiers, order, etc.
func (_m *HomePage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNode queries the "node" edge of the HomePage entity.
func (_m *HomePage) QueryNode() *NodeQuery {
	return NewHomePageClient(_m.config).QueryNode(_m)
}

// QueryCarouselItems queries the "carousel_items" edge of the HomePage entity.
func (_m *HomePage) QueryCarouselItems() *CarouselItemQuery {
	return NewHomePageClient(_m.config).QueryCarouselItems(_m)
}

// Update returns a builder for updating this HomePage.
// Note that you need to call HomePage.Unwrap() before calling this method if this HomePage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HomePage) Update() *HomePageUpdateOne {
	return NewHomePageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HomePage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HomePage) Unwrap() *HomePage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: HomePage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HomePage) String() string {
	var builder strings.Builder
	builder.WriteString("HomePage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeID))
	builder.WriteByte(')')
	return builder.String()
}

// HomePages is a parsable slice of HomePage.
type HomePages []*HomePage
