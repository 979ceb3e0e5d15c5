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
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
)

// BlogIndexPageCreate is the builder for creating a BlogIndexPage entity.
type BlogIndexPageCreate struct {
	config
	mutation *BlogIndexPageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlogIndexPageCreate) SetCreatedAt(v time.Time) *BlogIndexPageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlogIndexPageCreate) SetNillableCreatedAt(v *time.Time) *BlogIndexPageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BlogIndexPageCreate) SetUpdatedAt(v time.Time) *BlogIndexPageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BlogIndexPageCreate) SetNillableUpdatedAt(v *time.Time) *BlogIndexPageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *BlogIndexPageCreate) SetNodeID(v uuid.UUID) *BlogIndexPageCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetIntro sets the "intro" field.
func (_c *BlogIndexPageCreate) SetIntro(v string) *BlogIndexPageCreate {
	_c.mutation.SetIntro(v)
	return _c
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_c *BlogIndexPageCreate) SetNillableIntro(v *string) *BlogIndexPageCreate {
	if v != nil {
		_c.SetIntro(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlogIndexPageCreate) SetID(v uuid.UUID) *BlogIndexPageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlogIndexPageCreate) SetNillableID(v *uuid.UUID) *BlogIndexPageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *BlogIndexPageCreate) SetNode(v *Node) *BlogIndexPageCreate {
	return _c.SetNodeID(v.ID)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_c *BlogIndexPageCreate) AddRelatedLinkIDs(ids ...uuid.UUID) *BlogIndexPageCreate {
	_c.mutation.AddRelatedLinkIDs(ids...)
	return _c
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_c *BlogIndexPageCreate) AddRelatedLinks(v ...*RelatedLink) *BlogIndexPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRelatedLinkIDs(ids...)
}

// Mutation returns the BlogIndexPageMutation object of the builder.
func (_c *BlogIndexPageCreate) Mutation() *BlogIndexPageMutation {
	return _c.mutation
}

// Save creates the BlogIndexPage in the database.
func (_c *BlogIndexPageCreate) Save(ctx context.Context) (*BlogIndexPage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlogIndexPageCreate) SaveX(ctx context.Context) *BlogIndexPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlogIndexPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlogIndexPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlogIndexPageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blogindexpage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := blogindexpage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blogindexpage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlogIndexPageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BlogIndexPage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BlogIndexPage.updated_at"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`repo: missing required field "BlogIndexPage.node_id"`)}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`repo: missing required edge "BlogIndexPage.node"`)}
	}
	return nil
}

func (_c *BlogIndexPageCreate) sqlSave(ctx context.Context) (*BlogIndexPage, error) {
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

func (_c *BlogIndexPageCreate) createSpec() (*BlogIndexPage, *sqlgraph.CreateSpec) {
	var (
		_node = &BlogIndexPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blogindexpage.Table, sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blogindexpage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(blogindexpage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Intro(); ok {
		_spec.SetField(blogindexpage.FieldIntro, field.TypeString, value)
		_node.Intro = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   blogindexpage.NodeTable,
			Columns: []string{blogindexpage.NodeColumn},
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
	if nodes := _c.mutation.RelatedLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogindexpage.RelatedLinksTable,
			Columns: []string{blogindexpage.RelatedLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlogIndexPageCreateBulk is the builder for creating many BlogIndexPage entities in bulk.
type BlogIndexPageCreateBulk struct {
	config
	err      error
	builders []*BlogIndexPageCreate
}

// Save creates the BlogIndexPage entities in the database.
func (_c *BlogIndexPageCreateBulk) Save(ctx context.Context) ([]*BlogIndexPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlogIndexPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlogIndexPageMutation)
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
func (_c *BlogIndexPageCreateBulk) SaveX(ctx context.Context) []*BlogIndexPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlogIndexPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlogIndexPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
