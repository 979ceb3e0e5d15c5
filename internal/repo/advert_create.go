// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/advert"
	"github.com/helenb/wagtail-torchbox/internal/repo/advertplacement"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// AdvertCreate is the builder for creating a Advert entity.
type AdvertCreate struct {
	config
	mutation *AdvertMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdvertCreate) SetCreatedAt(v time.Time) *AdvertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdvertCreate) SetNillableCreatedAt(v *time.Time) *AdvertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AdvertCreate) SetUpdatedAt(v time.Time) *AdvertCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AdvertCreate) SetNillableUpdatedAt(v *time.Time) *AdvertCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *AdvertCreate) SetText(v string) *AdvertCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *AdvertCreate) SetURL(v string) *AdvertCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *AdvertCreate) SetNillableURL(v *string) *AdvertCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *AdvertCreate) SetNodeID(v uuid.UUID) *AdvertCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_c *AdvertCreate) SetNillableNodeID(v *uuid.UUID) *AdvertCreate {
	if v != nil {
		_c.SetNodeID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdvertCreate) SetID(v uuid.UUID) *AdvertCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AdvertCreate) SetNillableID(v *uuid.UUID) *AdvertCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *AdvertCreate) SetNode(v *Node) *AdvertCreate {
	return _c.SetNodeID(v.ID)
}

// AddPlacementIDs adds the "placements" edge to the AdvertPlacement entity by IDs.
func (_c *AdvertCreate) AddPlacementIDs(ids ...uuid.UUID) *AdvertCreate {
	_c.mutation.AddPlacementIDs(ids...)
	return _c
}

// AddPlacements adds the "placements" edges to the AdvertPlacement entity.
func (_c *AdvertCreate) AddPlacements(v ...*AdvertPlacement) *AdvertCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPlacementIDs(ids...)
}

// Mutation returns the AdvertMutation object of the builder.
func (_c *AdvertCreate) Mutation() *AdvertMutation {
	return _c.mutation
}

// Save creates the Advert in the database.
func (_c *AdvertCreate) Save(ctx context.Context) (*Advert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdvertCreate) SaveX(ctx context.Context) *Advert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdvertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdvertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdvertCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := advert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := advert.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := advert.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdvertCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Advert.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Advert.updated_at"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`repo: missing required field "Advert.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := advert.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "Advert.text": %w`, err)}
		}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := advert.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`repo: validator failed for field "Advert.url": %w`, err)}
		}
	}
	return nil
}

func (_c *AdvertCreate) sqlSave(ctx context.Context) (*Advert, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdvertCreate) createSpec() (*Advert, *sqlgraph.CreateSpec) {
	var (
		_node = &Advert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(advert.Table, sqlgraph.NewFieldSpec(advert.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(advert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(advert.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(advert.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(advert.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   advert.NodeTable,
			Columns: []string{advert.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.NodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PlacementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   advert.PlacementsTable,
			Columns: []string{advert.PlacementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AdvertCreateBulk is the builder for creating many Advert entities in bulk.
type AdvertCreateBulk struct {
	config
	err      error
	builders []*AdvertCreate
}

// Save creates the Advert entities in the database.
func (_c *AdvertCreateBulk) Save(ctx context.Context) ([]*Advert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Advert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdvertMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AdvertCreateBulk) SaveX(ctx context.Context) []*Advert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdvertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdvertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
