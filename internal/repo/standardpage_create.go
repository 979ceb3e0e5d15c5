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
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
)

// StandardPageCreate is the builder for creating a StandardPage entity.
type StandardPageCreate struct {
	config
	mutation *StandardPageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *StandardPageCreate) SetCreatedAt(v time.Time) *StandardPageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StandardPageCreate) SetNillableCreatedAt(v *time.Time) *StandardPageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StandardPageCreate) SetUpdatedAt(v time.Time) *StandardPageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StandardPageCreate) SetNillableUpdatedAt(v *time.Time) *StandardPageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *StandardPageCreate) SetNodeID(v uuid.UUID) *StandardPageCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetIntro sets the "intro" field.
func (_c *StandardPageCreate) SetIntro(v string) *StandardPageCreate {
	_c.mutation.SetIntro(v)
	return _c
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_c *StandardPageCreate) SetNillableIntro(v *string) *StandardPageCreate {
	if v != nil {
		_c.SetIntro(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *StandardPageCreate) SetBody(v string) *StandardPageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *StandardPageCreate) SetNillableBody(v *string) *StandardPageCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetFeedImageID sets the "feed_image_id" field.
func (_c *StandardPageCreate) SetFeedImageID(v uuid.UUID) *StandardPageCreate {
	_c.mutation.SetFeedImageID(v)
	return _c
}

// SetNillableFeedImageID sets the "feed_image_id" field if the given value is not nil.
func (_c *StandardPageCreate) SetNillableFeedImageID(v *uuid.UUID) *StandardPageCreate {
	if v != nil {
		_c.SetFeedImageID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StandardPageCreate) SetID(v uuid.UUID) *StandardPageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StandardPageCreate) SetNillableID(v *uuid.UUID) *StandardPageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *StandardPageCreate) SetNode(v *Node) *StandardPageCreate {
	return _c.SetNodeID(v.ID)
}

// SetFeedImage sets the "feed_image" edge to the Image entity.
func (_c *StandardPageCreate) SetFeedImage(v *Image) *StandardPageCreate {
	return _c.SetFeedImageID(v.ID)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_c *StandardPageCreate) AddRelatedLinkIDs(ids ...uuid.UUID) *StandardPageCreate {
	_c.mutation.AddRelatedLinkIDs(ids...)
	return _c
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_c *StandardPageCreate) AddRelatedLinks(v ...*RelatedLink) *StandardPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRelatedLinkIDs(ids...)
}

// Mutation returns the StandardPageMutation object of the builder.
func (_c *StandardPageCreate) Mutation() *StandardPageMutation {
	return _c.mutation
}

// Save creates the StandardPage in the database.
func (_c *StandardPageCreate) Save(ctx context.Context) (*StandardPage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StandardPageCreate) SaveX(ctx context.Context) *StandardPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandardPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandardPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StandardPageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := standardpage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := standardpage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := standardpage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StandardPageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "StandardPage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "StandardPage.updated_at"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`repo: missing required field "StandardPage.node_id"`)}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`repo: missing required edge "StandardPage.node"`)}
	}
	return nil
}

func (_c *StandardPageCreate) sqlSave(ctx context.Context) (*StandardPage, error) {
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

func (_c *StandardPageCreate) createSpec() (*StandardPage, *sqlgraph.CreateSpec) {
	var (
		_node = &StandardPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(standardpage.Table, sqlgraph.NewFieldSpec(standardpage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(standardpage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(standardpage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Intro(); ok {
		_spec.SetField(standardpage.FieldIntro, field.TypeString, value)
		_node.Intro = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(standardpage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   standardpage.NodeTable,
			Columns: []string{standardpage.NodeColumn},
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
	if nodes := _c.mutation.FeedImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   standardpage.FeedImageTable,
			Columns: []string{standardpage.FeedImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FeedImageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RelatedLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   standardpage.RelatedLinksTable,
			Columns: []string{standardpage.RelatedLinksColumn},
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

// StandardPageCreateBulk is the builder for creating many StandardPage entities in bulk.
type StandardPageCreateBulk struct {
	config
	err      error
	builders []*StandardPageCreate
}

// Save creates the StandardPage entities in the database.
func (_c *StandardPageCreateBulk) Save(ctx context.Context) ([]*StandardPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StandardPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StandardPageMutation)
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
func (_c *StandardPageCreateBulk) SaveX(ctx context.Context) []*StandardPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandardPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandardPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
