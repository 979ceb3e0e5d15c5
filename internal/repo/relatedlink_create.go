// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
)

// RelatedLinkCreate is the builder for creating a RelatedLink entity.
type RelatedLinkCreate struct {
	config
	mutation *RelatedLinkMutation
	hooks    []Hook
}

// SetLinkExternal sets the "link_external" field.
func (_c *RelatedLinkCreate) SetLinkExternal(v string) *RelatedLinkCreate {
	_c.mutation.SetLinkExternal(v)
	return _c
}

// SetNillableLinkExternal sets the "link_external" field if the given value is not nil.
func (_c *RelatedLinkCreate) SetNillableLinkExternal(v *string) *RelatedLinkCreate {
	if v != nil {
		_c.SetLinkExternal(*v)
	}
	return _c
}

// SetLinkNodeID sets the "link_node_id" field.
func (_c *RelatedLinkCreate) SetLinkNodeID(v uuid.UUID) *RelatedLinkCreate {
	_c.mutation.SetLinkNodeID(v)
	return _c
}

// SetNillableLinkNodeID sets the "link_node_id" field if the given value is not nil.
func (_c *RelatedLinkCreate) SetNillableLinkNodeID(v *uuid.UUID) *RelatedLinkCreate {
	if v != nil {
		_c.SetLinkNodeID(*v)
	}
	return _c
}

// SetLinkDocumentID sets the "link_document_id" field.
func (_c *RelatedLinkCreate) SetLinkDocumentID(v uuid.UUID) *RelatedLinkCreate {
	_c.mutation.SetLinkDocumentID(v)
	return _c
}

// SetNillableLinkDocumentID sets the "link_document_id" field if the given value is not nil.
func (_c *RelatedLinkCreate) SetNillableLinkDocumentID(v *uuid.UUID) *RelatedLinkCreate {
	if v != nil {
		_c.SetLinkDocumentID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *RelatedLinkCreate) SetTitle(v string) *RelatedLinkCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *RelatedLinkCreate) SetSortOrder(v int) *RelatedLinkCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *RelatedLinkCreate) SetNillableSortOrder(v *int) *RelatedLinkCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetStandardPageID sets the "standard_page_id" field.
func (_c *RelatedLinkCreate) SetStandardPageID(v uuid.UUID) *RelatedLinkCreate {
	_c.mutation.SetStandardPageID(v)
	return _c
}

// SetNillableStandardPageID sets the "standard_page_id" field if the given value is not nil.
func (_c *RelatedLinkCreate) SetNillableStandardPageID(v *uuid.UUID) *RelatedLinkCreate {
	if v != nil {
		_c.SetStandardPageID(*v)
	}
	return _c
}

// SetBlogIndexPageID sets the "blog_index_page_id" field.
func (_c *RelatedLinkCreate) SetBlogIndexPageID(v uuid.UUID) *RelatedLinkCreate {
	_c.mutation.SetBlogIndexPageID(v)
	return _c
}

// SetNillableBlogIndexPageID sets the "blog_index_page_id" field if the given value is not nil.
func (_c *RelatedLinkCreate) SetNillableBlogIndexPageID(v *uuid.UUID) *RelatedLinkCreate {
	if v != nil {
		_c.SetBlogIndexPageID(*v)
	}
	return _c
}

// SetBlogPageID sets the "blog_page_id" field.
func (_c *RelatedLinkCreate) SetBlogPageID(v uuid.UUID) *RelatedLinkCreate {
	_c.mutation.SetBlogPageID(v)
	return _c
}

// SetNillableBlogPageID sets the "blog_page_id" field if the given value is not nil.
func (_c *RelatedLinkCreate) SetNillableBlogPageID(v *uuid.UUID) *RelatedLinkCreate {
	if v != nil {
		_c.SetBlogPageID(*v)
	}
	return _c
}

// SetPersonPageID sets the "person_page_id" field.
func (_c *RelatedLinkCreate) SetPersonPageID(v uuid.UUID) *RelatedLinkCreate {
	_c.mutation.SetPersonPageID(v)
	return _c
}

// SetNillablePersonPageID sets the "person_page_id" field if the given value is not nil.
func (_c *RelatedLinkCreate) SetNillablePersonPageID(v *uuid.UUID) *RelatedLinkCreate {
	if v != nil {
		_c.SetPersonPageID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RelatedLinkCreate) SetID(v uuid.UUID) *RelatedLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RelatedLinkCreate) SetNillableID(v *uuid.UUID) *RelatedLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLinkNode sets the "link_node" edge to the Node entity.
func (_c *RelatedLinkCreate) SetLinkNode(v *Node) *RelatedLinkCreate {
	return _c.SetLinkNodeID(v.ID)
}

// SetLinkDocument sets the "link_document" edge to the Document entity.
func (_c *RelatedLinkCreate) SetLinkDocument(v *Document) *RelatedLinkCreate {
	return _c.SetLinkDocumentID(v.ID)
}

// SetStandardPage sets the "standard_page" edge to the StandardPage entity.
func (_c *RelatedLinkCreate) SetStandardPage(v *StandardPage) *RelatedLinkCreate {
	return _c.SetStandardPageID(v.ID)
}

// SetBlogIndexPage sets the "blog_index_page" edge to the BlogIndexPage entity.
func (_c *RelatedLinkCreate) SetBlogIndexPage(v *BlogIndexPage) *RelatedLinkCreate {
	return _c.SetBlogIndexPageID(v.ID)
}

// SetBlogPage sets the "blog_page" edge to the BlogPage entity.
func (_c *RelatedLinkCreate) SetBlogPage(v *BlogPage) *RelatedLinkCreate {
	return _c.SetBlogPageID(v.ID)
}

// SetPersonPage sets the "person_page" edge to the PersonPage entity.
func (_c *RelatedLinkCreate) SetPersonPage(v *PersonPage) *RelatedLinkCreate {
	return _c.SetPersonPageID(v.ID)
}

// Mutation returns the RelatedLinkMutation object of the builder.
func (_c *RelatedLinkCreate) Mutation() *RelatedLinkMutation {
	return _c.mutation
}

// Save creates the RelatedLink in the database.
func (_c *RelatedLinkCreate) Save(ctx context.Context) (*RelatedLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RelatedLinkCreate) SaveX(ctx context.Context) *RelatedLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RelatedLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RelatedLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RelatedLinkCreate) defaults() {
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := relatedlink.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := relatedlink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RelatedLinkCreate) check() error {
	if v, ok := _c.mutation.LinkExternal(); ok {
		if err := relatedlink.LinkExternalValidator(v); err != nil {
			return &ValidationError{Name: "link_external", err: fmt.Errorf(`repo: validator failed for field "RelatedLink.link_external": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "RelatedLink.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := relatedlink.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "RelatedLink.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`repo: missing required field "RelatedLink.sort_order"`)}
	}
	return nil
}

func (_c *RelatedLinkCreate) sqlSave(ctx context.Context) (*RelatedLink, error) {
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

func (_c *RelatedLinkCreate) createSpec() (*RelatedLink, *sqlgraph.CreateSpec) {
	var (
		_node = &RelatedLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(relatedlink.Table, sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LinkExternal(); ok {
		_spec.SetField(relatedlink.FieldLinkExternal, field.TypeString, value)
		_node.LinkExternal = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(relatedlink.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(relatedlink.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if nodes := _c.mutation.LinkNodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkNodeTable,
			Columns: []string{relatedlink.LinkNodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LinkNodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinkDocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkDocumentTable,
			Columns: []string{relatedlink.LinkDocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LinkDocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StandardPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.StandardPageTable,
			Columns: []string{relatedlink.StandardPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(standardpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StandardPageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BlogIndexPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogIndexPageTable,
			Columns: []string{relatedlink.BlogIndexPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BlogIndexPageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BlogPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogPageTable,
			Columns: []string{relatedlink.BlogPageColumn},
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
	if nodes := _c.mutation.PersonPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.PersonPageTable,
			Columns: []string{relatedlink.PersonPageColumn},
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

// RelatedLinkCreateBulk is the builder for creating many RelatedLink entities in bulk.
type RelatedLinkCreateBulk struct {
	config
	err      error
	builders []*RelatedLinkCreate
}

// Save creates the RelatedLink entities in the database.
func (_c *RelatedLinkCreateBulk) Save(ctx context.Context) ([]*RelatedLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RelatedLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RelatedLinkMutation)
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
func (_c *RelatedLinkCreateBulk) SaveX(ctx context.Context) []*RelatedLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RelatedLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RelatedLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
