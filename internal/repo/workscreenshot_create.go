// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/workpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workscreenshot"
)

// WorkScreenshotCreate is the builder for creating a WorkScreenshot entity.
type WorkScreenshotCreate struct {
	config
	mutation *WorkScreenshotMutation
	hooks    []Hook
}

// SetSortOrder sets the "sort_order" field.
func (_c *WorkScreenshotCreate) SetSortOrder(v int) *WorkScreenshotCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *WorkScreenshotCreate) SetNillableSortOrder(v *int) *WorkScreenshotCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetImageID sets the "image_id" field.
func (_c *WorkScreenshotCreate) SetImageID(v uuid.UUID) *WorkScreenshotCreate {
	_c.mutation.SetImageID(v)
	return _c
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_c *WorkScreenshotCreate) SetNillableImageID(v *uuid.UUID) *WorkScreenshotCreate {
	if v != nil {
		_c.SetImageID(*v)
	}
	return _c
}

// SetWorkPageID sets the "work_page_id" field.
func (_c *WorkScreenshotCreate) SetWorkPageID(v uuid.UUID) *WorkScreenshotCreate {
	_c.mutation.SetWorkPageID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *WorkScreenshotCreate) SetID(v uuid.UUID) *WorkScreenshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkScreenshotCreate) SetNillableID(v *uuid.UUID) *WorkScreenshotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetImage sets the "image" edge to the Image entity.
func (_c *WorkScreenshotCreate) SetImage(v *Image) *WorkScreenshotCreate {
	return _c.SetImageID(v.ID)
}

// SetWorkPage sets the "work_page" edge to the WorkPage entity.
func (_c *WorkScreenshotCreate) SetWorkPage(v *WorkPage) *WorkScreenshotCreate {
	return _c.SetWorkPageID(v.ID)
}

// Mutation returns the WorkScreenshotMutation object of the builder.
func (_c *WorkScreenshotCreate) Mutation() *WorkScreenshotMutation {
	return _c.mutation
}

// Save creates the WorkScreenshot in the database.
func (_c *WorkScreenshotCreate) Save(ctx context.Context) (*WorkScreenshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkScreenshotCreate) SaveX(ctx context.Context) *WorkScreenshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkScreenshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkScreenshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkScreenshotCreate) defaults() {
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := workscreenshot.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workscreenshot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkScreenshotCreate) check() error {
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`repo: missing required field "WorkScreenshot.sort_order"`)}
	}
	if _, ok := _c.mutation.WorkPageID(); !ok {
		return &ValidationError{Name: "work_page_id", err: errors.New(`repo: missing required field "WorkScreenshot.work_page_id"`)}
	}
	if len(_c.mutation.WorkPageIDs()) == 0 {
		return &ValidationError{Name: "work_page", err: errors.New(`repo: missing required edge "WorkScreenshot.work_page"`)}
	}
	return nil
}

func (_c *WorkScreenshotCreate) sqlSave(ctx context.Context) (*WorkScreenshot, error) {
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

func (_c *WorkScreenshotCreate) createSpec() (*WorkScreenshot, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkScreenshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workscreenshot.Table, sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(workscreenshot.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if nodes := _c.mutation.ImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   workscreenshot.ImageTable,
			Columns: []string{workscreenshot.ImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ImageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workscreenshot.WorkPageTable,
			Columns: []string{workscreenshot.WorkPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkPageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkScreenshotCreateBulk is the builder for creating many WorkScreenshot entities in bulk.
type WorkScreenshotCreateBulk struct {
	config
	err      error
	builders []*WorkScreenshotCreate
}

// Save creates the WorkScreenshot entities in the database.
func (_c *WorkScreenshotCreateBulk) Save(ctx context.Context) ([]*WorkScreenshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkScreenshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkScreenshotMutation)
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
func (_c *WorkScreenshotCreateBulk) SaveX(ctx context.Context) []*WorkScreenshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkScreenshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkScreenshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
