// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/advert"
	"github.com/helenb/wagtail-torchbox/internal/repo/advertplacement"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// AdvertPlacementCreate is the builder for creating a AdvertPlacement entity.
type AdvertPlacementCreate struct {
	config
	mutation *AdvertPlacementMutation
	hooks    []Hook
}

// SetNodeID sets the "node_id" field.
func (_c *AdvertPlacementCreate) SetNodeID(v uuid.UUID) *AdvertPlacementCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetAdvertID sets the "advert_id" field.
func (_c *AdvertPlacementCreate) SetAdvertID(v uuid.UUID) *AdvertPlacementCreate {
	_c.mutation.SetAdvertID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AdvertPlacementCreate) SetID(v uuid.UUID) *AdvertPlacementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AdvertPlacementCreate) SetNillableID(v *uuid.UUID) *AdvertPlacementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *AdvertPlacementCreate) SetNode(v *Node) *AdvertPlacementCreate {
	return _c.SetNodeID(v.ID)
}

// SetAdvert sets the "advert" edge to the Advert entity.
func (_c *AdvertPlacementCreate) SetAdvert(v *Advert) *AdvertPlacementCreate {
	return _c.SetAdvertID(v.ID)
}

// Mutation returns the AdvertPlacementMutation object of the builder.
func (_c *AdvertPlacementCreate) Mutation() *AdvertPlacementMutation {
	return _c.mutation
}

// Save creates the AdvertPlacement in the database.
func (_c *AdvertPlacementCreate) Save(ctx context.Context) (*AdvertPlacement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdvertPlacementCreate) SaveX(ctx context.Context) *AdvertPlacement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdvertPlacementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdvertPlacementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdvertPlacementCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := advertplacement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdvertPlacementCreate) check() error {
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`repo: missing required field "AdvertPlacement.node_id"`)}
	}
	if _, ok := _c.mutation.AdvertID(); !ok {
		return &ValidationError{Name: "advert_id", err: errors.New(`repo: missing required field "AdvertPlacement.advert_id"`)}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`repo: missing required edge "AdvertPlacement.node"`)}
	}
	if len(_c.mutation.AdvertIDs()) == 0 {
		return &ValidationError{Name: "advert", err: errors.New(`repo: missing required edge "AdvertPlacement.advert"`)}
	}
	return nil
}

func (_c *AdvertPlacementCreate) sqlSave(ctx context.Context) (*AdvertPlacement, error) {
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

func (_c *AdvertPlacementCreate) createSpec() (*AdvertPlacement, *sqlgraph.CreateSpec) {
	var (
		_node = &AdvertPlacement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(advertplacement.Table, sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   advertplacement.NodeTable,
			Columns: []string{advertplacement.NodeColumn},
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
	if nodes := _c.mutation.AdvertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   advertplacement.AdvertTable,
			Columns: []string{advertplacement.AdvertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AdvertID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AdvertPlacementCreateBulk is the builder for creating many AdvertPlacement entities in bulk.
type AdvertPlacementCreateBulk struct {
	config
	err      error
	builders []*AdvertPlacementCreate
}

// Save creates the AdvertPlacement entities in the database.
func (_c *AdvertPlacementCreateBulk) Save(ctx context.Context) ([]*AdvertPlacement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdvertPlacement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdvertPlacementMutation)
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
func (_c *AdvertPlacementCreateBulk) SaveX(ctx context.Context) []*AdvertPlacement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdvertPlacementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdvertPlacementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
