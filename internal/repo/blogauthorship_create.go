// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
)

// BlogAuthorshipCreate is the builder for creating a BlogAuthorship entity.
type BlogAuthorshipCreate struct {
	config
	mutation *BlogAuthorshipMutation
	hooks    []Hook
}

// SetSortOrder sets the "sort_order" field.
func (_c *BlogAuthorshipCreate) SetSortOrder(v int) *BlogAuthorshipCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *BlogAuthorshipCreate) SetNillableSortOrder(v *int) *BlogAuthorshipCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetBlogPageID sets the "blog_page_id" field.
func (_c *BlogAuthorshipCreate) SetBlogPageID(v uuid.UUID) *BlogAuthorshipCreate {
	_c.mutation.SetBlogPageID(v)
	return _c
}

// SetPersonPageID sets the "person_page_id" field.
func (_c *BlogAuthorshipCreate) SetPersonPageID(v uuid.UUID) *BlogAuthorshipCreate {
	_c.mutation.SetPersonPageID(v)
	return _c
}

// SetNillablePersonPageID sets the "person_page_id" field if the given value is not nil.
func (_c *BlogAuthorshipCreate) SetNillablePersonPageID(v *uuid.UUID) *BlogAuthorshipCreate {
	if v != nil {
		_c.SetPersonPageID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlogAuthorshipCreate) SetID(v uuid.UUID) *BlogAuthorshipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlogAuthorshipCreate) SetNillableID(v *uuid.UUID) *BlogAuthorshipCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBlogPage sets the "blog_page" edge to the BlogPage entity.
func (_c *BlogAuthorshipCreate) SetBlogPage(v *BlogPage) *BlogAuthorshipCreate {
	return _c.SetBlogPageID(v.ID)
}

// SetAuthorID sets the "author" edge to the PersonPage entity by ID.
func (_c *BlogAuthorshipCreate) SetAuthorID(id uuid.UUID) *BlogAuthorshipCreate {
	_c.mutation.SetAuthorID(id)
	return _c
}

// SetNillableAuthorID sets the "author" edge to the PersonPage entity by ID if the given value is not nil.
func (_c *BlogAuthorshipCreate) SetNillableAuthorID(id *uuid.UUID) *BlogAuthorshipCreate {
	if id != nil {
		_c = _c.SetAuthorID(*id)
	}
	return _c
}

// SetAuthor sets the "author" edge to the PersonPage entity.
func (_c *BlogAuthorshipCreate) SetAuthor(v *PersonPage) *BlogAuthorshipCreate {
	return _c.SetAuthorID(v.ID)
}

// Mutation returns the BlogAuthorshipMutation object of the builder.
func (_c *BlogAuthorshipCreate) Mutation() *BlogAuthorshipMutation {
	return _c.mutation
}

// Save creates the BlogAuthorship in the database.
func (_c *BlogAuthorshipCreate) Save(ctx context.Context) (*BlogAuthorship, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlogAuthorshipCreate) SaveX(ctx context.Context) *BlogAuthorship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlogAuthorshipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlogAuthorshipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlogAuthorshipCreate) defaults() {
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := blogauthorship.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blogauthorship.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlogAuthorshipCreate) check() error {
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`repo: missing required field "BlogAuthorship.sort_order"`)}
	}
	if _, ok := _c.mutation.BlogPageID(); !ok {
		return &ValidationError{Name: "blog_page_id", err: errors.New(`repo: missing required field "BlogAuthorship.blog_page_id"`)}
	}
	if len(_c.mutation.BlogPageIDs()) == 0 {
		return &ValidationError{Name: "blog_page", err: errors.New(`repo: missing required edge "BlogAuthorship.blog_page"`)}
	}
	return nil
}

func (_c *BlogAuthorshipCreate) sqlSave(ctx context.Context) (*BlogAuthorship, error) {
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

func (_c *BlogAuthorshipCreate) createSpec() (*BlogAuthorship, *sqlgraph.CreateSpec) {
	var (
		_node = &BlogAuthorship{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blogauthorship.Table, sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(blogauthorship.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if nodes := _c.mutation.BlogPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blogauthorship.BlogPageTable,
			Columns: []string{blogauthorship.BlogPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BlogPageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   blogauthorship.AuthorTable,
			Columns: []string{blogauthorship.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PersonPageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlogAuthorshipCreateBulk is the builder for creating many BlogAuthorship entities in bulk.
type BlogAuthorshipCreateBulk struct {
	config
	err      error
	builders []*BlogAuthorshipCreate
}

// Save creates the BlogAuthorship entities in the database.
func (_c *BlogAuthorshipCreateBulk) Save(ctx context.Context) ([]*BlogAuthorship, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlogAuthorship, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlogAuthorshipMutation)
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
func (_c *BlogAuthorshipCreateBulk) SaveX(ctx context.Context) []*BlogAuthorship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlogAuthorshipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlogAuthorshipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
