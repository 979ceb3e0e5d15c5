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
	"github.com/helenb/wagtail-torchbox/internal/repo/jobindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// JobIndexPageCreate is the builder for creating a JobIndexPage entity.
type JobIndexPageCreate struct {
	config
	mutation *JobIndexPageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobIndexPageCreate) SetCreatedAt(v time.Time) *JobIndexPageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobIndexPageCreate) SetNillableCreatedAt(v *time.Time) *JobIndexPageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobIndexPageCreate) SetUpdatedAt(v time.Time) *JobIndexPageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobIndexPageCreate) SetNillableUpdatedAt(v *time.Time) *JobIndexPageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *JobIndexPageCreate) SetNodeID(v uuid.UUID) *JobIndexPageCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetIntro sets the "intro" field.
func (_c *JobIndexPageCreate) SetIntro(v string) *JobIndexPageCreate {
	_c.mutation.SetIntro(v)
	return _c
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_c *JobIndexPageCreate) SetNillableIntro(v *string) *JobIndexPageCreate {
	if v != nil {
		_c.SetIntro(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobIndexPageCreate) SetID(v uuid.UUID) *JobIndexPageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobIndexPageCreate) SetNillableID(v *uuid.UUID) *JobIndexPageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *JobIndexPageCreate) SetNode(v *Node) *JobIndexPageCreate {
	return _c.SetNodeID(v.ID)
}

// Mutation returns the JobIndexPageMutation object of the builder.
func (_c *JobIndexPageCreate) Mutation() *JobIndexPageMutation {
	return _c.mutation
}

// Save creates the JobIndexPage in the database.
func (_c *JobIndexPageCreate) Save(ctx context.Context) (*JobIndexPage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobIndexPageCreate) SaveX(ctx context.Context) *JobIndexPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobIndexPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobIndexPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobIndexPageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobindexpage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := jobindexpage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobindexpage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobIndexPageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "JobIndexPage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "JobIndexPage.updated_at"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`repo: missing required field "JobIndexPage.node_id"`)}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`repo: missing required edge "JobIndexPage.node"`)}
	}
	return nil
}

func (_c *JobIndexPageCreate) sqlSave(ctx context.Context) (*JobIndexPage, error) {
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

func (_c *JobIndexPageCreate) createSpec() (*JobIndexPage, *sqlgraph.CreateSpec) {
	var (
		_node = &JobIndexPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobindexpage.Table, sqlgraph.NewFieldSpec(jobindexpage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobindexpage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(jobindexpage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Intro(); ok {
		_spec.SetField(jobindexpage.FieldIntro, field.TypeString, value)
		_node.Intro = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   jobindexpage.NodeTable,
			Columns: []string{jobindexpage.NodeColumn},
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
	return _node, _spec
}

// JobIndexPageCreateBulk is the builder for creating many JobIndexPage entities in bulk.
type JobIndexPageCreateBulk struct {
	config
	err      error
	builders []*JobIndexPageCreate
}

// Save creates the JobIndexPage entities in the database.
func (_c *JobIndexPageCreateBulk) Save(ctx context.Context) ([]*JobIndexPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobIndexPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobIndexPageMutation)
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
func (_c *JobIndexPageCreateBulk) SaveX(ctx context.Context) []*JobIndexPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobIndexPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobIndexPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
