// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/advert"
	"github.com/helenb/wagtail-torchbox/internal/repo/advertplacement"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// AdvertPlacement is the model entity for the AdvertPlacement schema.
type AdvertPlacement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID uuid.UUID `json:"node_id,omitempty"`
	// AdvertID holds the value of the "advert_id" field.
	AdvertID uuid.UUID `json:"advert_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AdvertPlacementQuery when eager-loading is set.
	Edges        AdvertPlacementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AdvertPlacementEdges holds the relations/edges for other nodes in the graph.
type AdvertPlacementEdges struct {
	// Node holds the value of the node edge.
	Node *Node `json:"node,omitempty"`
	// Advert holds the value of the advert edge.
	Advert *Advert `json:"advert,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NodeOrErr returns the Node value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AdvertPlacementEdges) NodeOrErr() (*Node, error) {
	if e.Node != nil {
		return e.Node, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "node"}
}

// AdvertOrErr returns the Advert value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AdvertPlacementEdges) AdvertOrErr() (*Advert, error) {
	if e.Advert != nil {
		return e.Advert, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: advert.Label}
	}
	return nil, &NotLoadedError{edge: "advert"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdvertPlacement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case advertplacement.FieldID, advertplacement.FieldNodeID, advertplacement.FieldAdvertID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdvertPlacement fields.
func (_m *AdvertPlacement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case advertplacement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case advertplacement.FieldNodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value != nil {
				_m.NodeID = *value
			}
		case advertplacement.FieldAdvertID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field advert_id", values[i])
			} else if value != nil {
				_m.AdvertID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdvertPlacement.
// This includes values selected through modifiers, order, etc.
func (_m *AdvertPlacement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNode queries the "node" edge of the AdvertPlacement entity.
func (_m *AdvertPlacement) QueryNode() *NodeQuery {
	return NewAdvertPlacementClient(_m.config).QueryNode(_m)
}

// QueryAdvert queries the "advert" edge of the AdvertPlacement entity.
func (_m *AdvertPlacement) QueryAdvert() *AdvertQuery {
	return NewAdvertPlacementClient(_m.config).QueryAdvert(_m)
}

// Update returns a builder for updating this AdvertPlacement.
// Note that you need to call AdvertPlacement.Unwrap() before calling this method if this AdvertPlacement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdvertPlacement) Update() *AdvertPlacementUpdateOne {
	return NewAdvertPlacementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdvertPlacement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdvertPlacement) Unwrap() *AdvertPlacement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AdvertPlacement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdvertPlacement) String() string {
	var builder strings.Builder
	builder.WriteString("AdvertPlacement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("node_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeID))
	builder.WriteString(", ")
	builder.WriteString("advert_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdvertID))
	builder.WriteByte(')')
	return builder.String()
}

// AdvertPlacements is a parsable slice of AdvertPlacement.
type AdvertPlacements []*AdvertPlacement
