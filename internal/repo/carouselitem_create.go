// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/carouselitem"
	"github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/internal/repo/homepage"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
)

// CarouselItemCreate is the builder for creating a CarouselItem entity.
type CarouselItemCreate struct {
	config
	mutation *CarouselItemMutation
	hooks    []Hook
}

// SetLinkExternal sets the "link_external" field.
func (_c *CarouselItemCreate) SetLinkExternal(v string) *CarouselItemCreate {
	_c.mutation.SetLinkExternal(v)
	return _c
}

// SetNillableLinkExternal sets the "link_external" field if the given value is not nil.
func (_c *CarouselItemCreate) SetNillableLinkExternal(v *string) *CarouselItemCreate {
	if v != nil {
		_c.SetLinkExternal(*v)
	}
	return _c
}

// SetLinkNodeID sets the "link_node_id" field.
func (_c *CarouselItemCreate) SetLinkNodeID(v uuid.UUID) *CarouselItemCreate {
	_c.mutation.SetLinkNodeID(v)
	return _c
}

// SetNillableLinkNodeID sets the "link_node_id" field if the given value is not nil.
func (_c *CarouselItemCreate) SetNillableLinkNodeID(v *uuid.UUID) *CarouselItemCreate {
	if v != nil {
		_c.SetLinkNodeID(*v)
	}
	return _c
}

// SetLinkDocumentID sets the "link_document_id" field.
func (_c *CarouselItemCreate) SetLinkDocumentID(v uuid.UUID) *CarouselItemCreate {
	_c.mutation.SetLinkDocumentID(v)
	return _c
}

// SetNillableLinkDocumentID sets the "link_document_id" field if the given value is not nil.
func (_c *CarouselItemCreate) SetNillableLinkDocumentID(v *uuid.UUID) *CarouselItemCreate {
	if v != nil {
		_c.SetLinkDocumentID(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *CarouselItemCreate) SetSortOrder(v int) *CarouselItemCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *CarouselItemCreate) SetNillableSortOrder(v *int) *CarouselItemCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetImageID sets the "image_id" field.
func (_c *CarouselItemCreate) SetImageID(v uuid.UUID) *CarouselItemCreate {
	_c.mutation.SetImageID(v)
	return _c
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_c *CarouselItemCreate) SetNillableImageID(v *uuid.UUID) *CarouselItemCreate {
	if v != nil {
		_c.SetImageID(*v)
	}
	return _c
}

// SetEmbedURL sets the "embed_url" field.
func (_c *CarouselItemCreate) SetEmbedURL(v string) *CarouselItemCreate {
	_c.mutation.SetEmbedURL(v)
	return _c
}

// SetNillableEmbedURL sets the "embed_url" field if the given value is not nil.
func (_c *CarouselItemCreate) SetNillableEmbedURL(v *string) *CarouselItemCreate {
	if v != nil {
		_c.SetEmbedURL(*v)
	}
	return _c
}

// SetCaption sets the "caption" field.
func (_c *CarouselItemCreate) SetCaption(v string) *CarouselItemCreate {
	_c.mutation.SetCaption(v)
	return _c
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_c *CarouselItemCreate) SetNillableCaption(v *string) *CarouselItemCreate {
	if v != nil {
		_c.SetCaption(*v)
	}
	return _c
}

// SetHomePageID sets the "home_page_id" field.
func (_c *CarouselItemCreate) SetHomePageID(v uuid.UUID) *CarouselItemCreate {
	_c.mutation.SetHomePageID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CarouselItemCreate) SetID(v uuid.UUID) *CarouselItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CarouselItemCreate) SetNillableID(v *uuid.UUID) *CarouselItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLinkNode sets the "link_node" edge to the Node entity.
func (_c *CarouselItemCreate) SetLinkNode(v *Node) *CarouselItemCreate {
	return _c.SetLinkNodeID(v.ID)
}

// SetLinkDocument sets the "link_document" edge to the Document entity.
func (_c *CarouselItemCreate) SetLinkDocument(v *Document) *CarouselItemCreate {
	return _c.SetLinkDocumentID(v.ID)
}

// SetImage sets the "image" edge to the Image entity.
func (_c *CarouselItemCreate) SetImage(v *Image) *CarouselItemCreate {
	return _c.SetImageID(v.ID)
}

// SetHomePage sets the "home_page" edge to the HomePage entity.
func (_c *CarouselItemCreate) SetHomePage(v *HomePage) *CarouselItemCreate {
	return _c.SetHomePageID(v.ID)
}

// Mutation returns the CarouselItemMutation object of the builder.
func (_c *CarouselItemCreate) Mutation() *CarouselItemMutation {
	return _c.mutation
}

// Save creates the CarouselItem in the database.
func (_c *CarouselItemCreate) Save(ctx context.Context) (*CarouselItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CarouselItemCreate) SaveX(ctx context.Context) *CarouselItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CarouselItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CarouselItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CarouselItemCreate) defaults() {
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := carouselitem.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := carouselitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CarouselItemCreate) check() error {
	if v, ok := _c.mutation.LinkExternal(); ok {
		if err := carouselitem.LinkExternalValidator(v); err != nil {
			return &ValidationError{Name: "link_external", err: fmt.Errorf(`repo: validator failed for field "CarouselItem.link_external": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`repo: missing required field "CarouselItem.sort_order"`)}
	}
	if v, ok := _c.mutation.EmbedURL(); ok {
		if err := carouselitem.EmbedURLValidator(v); err != nil {
			return &ValidationError{Name: "embed_url", err: fmt.Errorf(`repo: validator failed for field "CarouselItem.embed_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Caption(); ok {
		if err := carouselitem.CaptionValidator(v); err != nil {
			return &ValidationError{Name: "caption", err: fmt.Errorf(`repo: validator failed for field "CarouselItem.caption": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HomePageID(); !ok {
		return &ValidationError{Name: "home_page_id", err: errors.New(`repo: missing required field "CarouselItem.home_page_id"`)}
	}
	if len(_c.mutation.HomePageIDs()) == 0 {
		return &ValidationError{Name: "home_page", err: errors.New(`repo: missing required edge "CarouselItem.home_page"`)}
	}
	return nil
}

func (_c *CarouselItemCreate) sqlSave(ctx context.Context) (*CarouselItem, error) {
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

func (_c *CarouselItemCreate) createSpec() (*CarouselItem, *sqlgraph.CreateSpec) {
	var (
		_node = &CarouselItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(carouselitem.Table, sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LinkExternal(); ok {
		_spec.SetField(carouselitem.FieldLinkExternal, field.TypeString, value)
		_node.LinkExternal = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(carouselitem.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.EmbedURL(); ok {
		_spec.SetField(carouselitem.FieldEmbedURL, field.TypeString, value)
		_node.EmbedURL = value
	}
	if value, ok := _c.mutation.Caption(); ok {
		_spec.SetField(carouselitem.FieldCaption, field.TypeString, value)
		_node.Caption = value
	}
	if nodes := _c.mutation.LinkNodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   carouselitem.LinkNodeTable,
			Columns: []string{carouselitem.LinkNodeColumn},
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
			Table:   carouselitem.LinkDocumentTable,
			Columns: []string{carouselitem.LinkDocumentColumn},
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
	if nodes := _c.mutation.ImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   carouselitem.ImageTable,
			Columns: []string{carouselitem.ImageColumn},
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
	if nodes := _c.mutation.HomePageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carouselitem.HomePageTable,
			Columns: []string{carouselitem.HomePageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(homepage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.HomePageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CarouselItemCreateBulk is the builder for creating many CarouselItem entities in bulk.
type CarouselItemCreateBulk struct {
	config
	err      error
	builders []*CarouselItemCreate
}

// Save creates the CarouselItem entities in the database.
func (_c *CarouselItemCreateBulk) Save(ctx context.Context) ([]*CarouselItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CarouselItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CarouselItemMutation)
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
func (_c *CarouselItemCreateBulk) SaveX(ctx context.Context) []*CarouselItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CarouselItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CarouselItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
