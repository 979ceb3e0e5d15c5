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
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/workpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workscreenshot"
)

// WorkPageCreate is the builder for creating a WorkPage entity.
type WorkPageCreate struct {
	config
	mutation *WorkPageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkPageCreate) SetCreatedAt(v time.Time) *WorkPageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkPageCreate) SetNillableCreatedAt(v *time.Time) *WorkPageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkPageCreate) SetUpdatedAt(v time.Time) *WorkPageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkPageCreate) SetNillableUpdatedAt(v *time.Time) *WorkPageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *WorkPageCreate) SetNodeID(v uuid.UUID) *WorkPageCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *WorkPageCreate) SetSummary(v string) *WorkPageCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetIntro sets the "intro" field.
func (_c *WorkPageCreate) SetIntro(v string) *WorkPageCreate {
	_c.mutation.SetIntro(v)
	return _c
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_c *WorkPageCreate) SetNillableIntro(v *string) *WorkPageCreate {
	if v != nil {
		_c.SetIntro(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *WorkPageCreate) SetBody(v string) *WorkPageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *WorkPageCreate) SetNillableBody(v *string) *WorkPageCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkPageCreate) SetID(v uuid.UUID) *WorkPageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkPageCreate) SetNillableID(v *uuid.UUID) *WorkPageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *WorkPageCreate) SetNode(v *Node) *WorkPageCreate {
	return _c.SetNodeID(v.ID)
}

// AddScreenshotIDs adds the "screenshots" edge to the WorkScreenshot entity by IDs.
func (_c *WorkPageCreate) AddScreenshotIDs(ids ...uuid.UUID) *WorkPageCreate {
	_c.mutation.AddScreenshotIDs(ids...)
	return _c
}

// AddScreenshots adds the "screenshots" edges to the WorkScreenshot entity.
func (_c *WorkPageCreate) AddScreenshots(v ...*WorkScreenshot) *WorkPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScreenshotIDs(ids...)
}

// Mutation returns the WorkPageMutation object of the builder.
func (_c *WorkPageCreate) Mutation() *WorkPageMutation {
	return _c.mutation
}

// Save creates the WorkPage in the database.
func (_c *WorkPageCreate) Save(ctx context.Context) (*WorkPage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkPageCreate) SaveX(ctx context.Context) *WorkPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkPageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workpage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workpage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workpage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkPageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "WorkPage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "WorkPage.updated_at"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`repo: missing required field "WorkPage.node_id"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`repo: missing required field "WorkPage.summary"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := workpage.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`repo: validator failed for field "WorkPage.summary": %w`, err)}
		}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`repo: missing required edge "WorkPage.node"`)}
	}
	return nil
}

func (_c *WorkPageCreate) sqlSave(ctx context.Context) (*WorkPage, error) {
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

func (_c *WorkPageCreate) createSpec() (*WorkPage, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workpage.Table, sqlgraph.NewFieldSpec(workpage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workpage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workpage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(workpage.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Intro(); ok {
		_spec.SetField(workpage.FieldIntro, field.TypeString, value)
		_node.Intro = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(workpage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   workpage.NodeTable,
			Columns: []string{workpage.NodeColumn},
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
	if nodes := _c.mutation.ScreenshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workpage.ScreenshotsTable,
			Columns: []string{workpage.ScreenshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkPageCreateBulk is the builder for creating many WorkPage entities in bulk.
type WorkPageCreateBulk struct {
	config
	err      error
	builders []*WorkPageCreate
}

// Save creates the WorkPage entities in the database.
func (_c *WorkPageCreateBulk) Save(ctx context.Context) ([]*WorkPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkPageMutation)
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
func (_c *WorkPageCreateBulk) SaveX(ctx context.Context) []*WorkPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
