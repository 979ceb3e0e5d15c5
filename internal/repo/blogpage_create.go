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
	"github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/tag"
)

// BlogPageCreate is the builder for creating a BlogPage entity.
type BlogPageCreate struct {
	config
	mutation *BlogPageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlogPageCreate) SetCreatedAt(v time.Time) *BlogPageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlogPageCreate) SetNillableCreatedAt(v *time.Time) *BlogPageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BlogPageCreate) SetUpdatedAt(v time.Time) *BlogPageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BlogPageCreate) SetNillableUpdatedAt(v *time.Time) *BlogPageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *BlogPageCreate) SetNodeID(v uuid.UUID) *BlogPageCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetIntro sets the "intro" field.
func (_c *BlogPageCreate) SetIntro(v string) *BlogPageCreate {
	_c.mutation.SetIntro(v)
	return _c
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_c *BlogPageCreate) SetNillableIntro(v *string) *BlogPageCreate {
	if v != nil {
		_c.SetIntro(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *BlogPageCreate) SetBody(v string) *BlogPageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *BlogPageCreate) SetDate(v time.Time) *BlogPageCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetFeedImageID sets the "feed_image_id" field.
func (_c *BlogPageCreate) SetFeedImageID(v uuid.UUID) *BlogPageCreate {
	_c.mutation.SetFeedImageID(v)
	return _c
}

// SetNillableFeedImageID sets the "feed_image_id" field if the given value is not nil.
func (_c *BlogPageCreate) SetNillableFeedImageID(v *uuid.UUID) *BlogPageCreate {
	if v != nil {
		_c.SetFeedImageID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlogPageCreate) SetID(v uuid.UUID) *BlogPageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlogPageCreate) SetNillableID(v *uuid.UUID) *BlogPageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *BlogPageCreate) SetNode(v *Node) *BlogPageCreate {
	return _c.SetNodeID(v.ID)
}

// SetFeedImage sets the "feed_image" edge to the Image entity.
func (_c *BlogPageCreate) SetFeedImage(v *Image) *BlogPageCreate {
	return _c.SetFeedImageID(v.ID)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_c *BlogPageCreate) AddTagIDs(ids ...uuid.UUID) *BlogPageCreate {
	_c.mutation.AddTagIDs(ids...)
	return _c
}

// AddTags adds the "tags" edges to the Tag entity.
func (_c *BlogPageCreate) AddTags(v ...*Tag) *BlogPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTagIDs(ids...)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_c *BlogPageCreate) AddRelatedLinkIDs(ids ...uuid.UUID) *BlogPageCreate {
	_c.mutation.AddRelatedLinkIDs(ids...)
	return _c
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_c *BlogPageCreate) AddRelatedLinks(v ...*RelatedLink) *BlogPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRelatedLinkIDs(ids...)
}

// AddAuthorshipIDs adds the "authorships" edge to the BlogAuthorship entity by IDs.
func (_c *BlogPageCreate) AddAuthorshipIDs(ids ...uuid.UUID) *BlogPageCreate {
	_c.mutation.AddAuthorshipIDs(ids...)
	return _c
}

// AddAuthorships adds the "authorships" edges to the BlogAuthorship entity.
func (_c *BlogPageCreate) AddAuthorships(v ...*BlogAuthorship) *BlogPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuthorshipIDs(ids...)
}

// Mutation returns the BlogPageMutation object of the builder.
func (_c *BlogPageCreate) Mutation() *BlogPageMutation {
	return _c.mutation
}

// Save creates the BlogPage in the database.
func (_c *BlogPageCreate) Save(ctx context.Context) (*BlogPage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlogPageCreate) SaveX(ctx context.Context) *BlogPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlogPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlogPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlogPageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blogpage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := blogpage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blogpage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlogPageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BlogPage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BlogPage.updated_at"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`repo: missing required field "BlogPage.node_id"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`repo: missing required field "BlogPage.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := blogpage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`repo: validator failed for field "BlogPage.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "BlogPage.date"`)}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`repo: missing required edge "BlogPage.node"`)}
	}
	return nil
}

func (_c *BlogPageCreate) sqlSave(ctx context.Context) (*BlogPage, error) {
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

func (_c *BlogPageCreate) createSpec() (*BlogPage, *sqlgraph.CreateSpec) {
	var (
		_node = &BlogPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blogpage.Table, sqlgraph.NewFieldSpec(blogpage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blogpage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(blogpage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Intro(); ok {
		_spec.SetField(blogpage.FieldIntro, field.TypeString, value)
		_node.Intro = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(blogpage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(blogpage.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   blogpage.NodeTable,
			Columns: []string{blogpage.NodeColumn},
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
			Table:   blogpage.FeedImageTable,
			Columns: []string{blogpage.FeedImageColumn},
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
	if nodes := _c.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   blogpage.TagsTable,
			Columns: blogpage.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RelatedLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogpage.RelatedLinksTable,
			Columns: []string{blogpage.RelatedLinksColumn},
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
	if nodes := _c.mutation.AuthorshipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogpage.AuthorshipsTable,
			Columns: []string{blogpage.AuthorshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlogPageCreateBulk is the builder for creating many BlogPage entities in bulk.
type BlogPageCreateBulk struct {
	config
	err      error
	builders []*BlogPageCreate
}

// Save creates the BlogPage entities in the database.
func (_c *BlogPageCreateBulk) Save(ctx context.Context) ([]*BlogPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlogPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlogPageMutation)
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
func (_c *BlogPageCreateBulk) SaveX(ctx context.Context) []*BlogPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlogPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlogPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
