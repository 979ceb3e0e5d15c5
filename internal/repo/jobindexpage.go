// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/jobindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// JobIndexPage is the model entity for the JobIndexPage schema.
type JobIndexPage struct {
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
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobIndexPageQuery when eager-loading is set.
	Edges        JobIndexPageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobIndexPageEdges holds the relations/edges for other nodes in the graph.
type JobIndexPageEdges struct {
	// Node holds the value of the node edge.
	Node *Node `json:"node,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// NodeOrErr returns the Node value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobIndexPageEdges) NodeOrErr() (*Node, error) {
	if e.Node != nil {
		return e.Node, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "node"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobIndexPage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobindexpage.FieldIntro:
			values[i] = new(sql.NullString)
		case jobindexpage.FieldCreatedAt, jobindexpage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case jobindexpage.FieldID, jobindexpage.FieldNodeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobIndexPage fields.
func (_m *JobIndexPage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobindexpage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobindexpage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case jobindexpage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case jobindexpage.FieldNodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value != nil {
				_m.NodeID = *value
			}
		case jobindexpage.FieldIntro:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intro", values[i])
			} else if value.Valid {
				_m.Intro = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobIndexPage.
// This includes values selected through modifiers, order, etc.
func (_m *JobIndexPage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNode queries the "node" edge of the JobIndexPage entity.
func (_m *JobIndexPage) QueryNode() *NodeQuery {
	return NewJobIndexPageClient(_m.config).QueryNode(_m)
}

// Update returns a builder for updating this JobIndexPage.
// Note that you need to call JobIndexPage.Unwrap() before calling this method if this JobIndexPage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobIndexPage) Update() *JobIndexPageUpdateOne {
	return NewJobIndexPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobIndexPage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobIndexPage) Unwrap() *JobIndexPage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: JobIndexPage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobIndexPage) String() string {
	var builder strings.Builder
	builder.WriteString("JobIndexPage(")
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
	builder.WriteByte(')')
	return builder.String()
}

// JobIndexPages is a parsable slice of JobIndexPage.
type JobIndexPages []*JobIndexPage
