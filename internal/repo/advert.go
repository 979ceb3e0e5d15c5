// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/advert"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// Advert is the model entity for the Advert schema.
type Advert struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Owning page, if any
	NodeID uuid.UUID `json:"node_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AdvertQuery when eager-loading is set.
	Edges        AdvertEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AdvertEdges holds the relations/edges for other nodes in the graph.
type AdvertEdges struct {
	// Node holds the value of the node edge.
	Node *Node `json:"node,omitempty"`
	// Placements holds the value of the placements edge.
	Placements []*AdvertPlacement `json:"placements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NodeOrErr returns the Node value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AdvertEdges) NodeOrErr() (*Node, error) {
	if e.Node != nil {
		return e.Node, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "node"}
}

// PlacementsOrErr returns the Placements value or an error if the edge
// was not loaded in eager-loading.
func (e AdvertEdges) PlacementsOrErr() ([]*AdvertPlacement, error) {
	if e.loadedTypes[1] {
		return e.Placements, nil
	}
	return nil, &NotLoadedError{edge: "placements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Advert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case advert.FieldText, advert.FieldURL:
			values[i] = new(sql.NullString)
		case advert.FieldCreatedAt, advert.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case advert.FieldID, advert.FieldNodeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Advert fields.
func (_m *Advert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case advert.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case advert.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case advert.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case advert.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case advert.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case advert.FieldNodeID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Advert.
// This includes values selected through modifiers, order, etc.
func (_m *Advert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNode queries the "node" edge of the Advert entity.
func (_m *Advert) QueryNode() *NodeQuery {
	return NewAdvertClient(_m.config).QueryNode(_m)
}

// QueryPlacements queries the "placements" edge of the Advert entity.
func (_m *Advert) QueryPlacements() *AdvertPlacementQuery {
	return NewAdvertClient(_m.config).QueryPlacements(_m)
}

// Update returns a builder for updating this Advert.
// Note that you need to call Advert.Unwrap() before calling this method if this Advert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Advert) Update() *AdvertUpdateOne {
	return NewAdvertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Advert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Advert) Unwrap() *Advert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Advert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Advert) String() string {
	var builder strings.Builder
	builder.WriteString("Advert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeID))
	builder.WriteByte(')')
	return builder.String()
}

// Adverts is a parsable slice of Advert.
type Adverts []*Advert
