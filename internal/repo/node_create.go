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
)

// NodeCreate is the builder for creating a Node entity.
type NodeCreate struct {
	config
	mutation *NodeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NodeCreate) SetCreatedAt(v time.Time) *NodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NodeCreate) SetNillableCreatedAt(v *time.Time) *NodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NodeCreate) SetUpdatedAt(v time.Time) *NodeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NodeCreate) SetNillableUpdatedAt(v *time.Time) *NodeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPath sets the "path" field.
func (_c *NodeCreate) SetPath(v string) *NodeCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *NodeCreate) SetDepth(v int) *NodeCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *NodeCreate) SetTitle(v string) *NodeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *NodeCreate) SetSlug(v string) *NodeCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetURLPath sets the "url_path" field.
func (_c *NodeCreate) SetURLPath(v string) *NodeCreate {
	_c.mutation.SetURLPath(v)
	return _c
}

// SetLive sets the "live" field.
func (_c *NodeCreate) SetLive(v bool) *NodeCreate {
	_c.mutation.SetLive(v)
	return _c
}

// SetNillableLive sets the "live" field if the given value is not nil.
func (_c *NodeCreate) SetNillableLive(v *bool) *NodeCreate {
	if v != nil {
		_c.SetLive(*v)
	}
	return _c
}

// SetShowInMenus sets the "show_in_menus" field.
func (_c *NodeCreate) SetShowInMenus(v bool) *NodeCreate {
	_c.mutation.SetShowInMenus(v)
	return _c
}

// SetNillableShowInMenus sets the "show_in_menus" field if the given value is not nil.
func (_c *NodeCreate) SetNillableShowInMenus(v *bool) *NodeCreate {
	if v != nil {
		_c.SetShowInMenus(*v)
	}
	return _c
}

// SetSeoTitle sets the "seo_title" field.
func (_c *NodeCreate) SetSeoTitle(v string) *NodeCreate {
	_c.mutation.SetSeoTitle(v)
	return _c
}

// SetNillableSeoTitle sets the "seo_title" field if the given value is not nil.
func (_c *NodeCreate) SetNillableSeoTitle(v *string) *NodeCreate {
	if v != nil {
		_c.SetSeoTitle(*v)
	}
	return _c
}

// SetSearchDescription sets the "search_description" field.
func (_c *NodeCreate) SetSearchDescription(v string) *NodeCreate {
	_c.mutation.SetSearchDescription(v)
	return _c
}

// SetNillableSearchDescription sets the "search_description" field if the given value is not nil.
func (_c *NodeCreate) SetNillableSearchDescription(v *string) *NodeCreate {
	if v != nil {
		_c.SetSearchDescription(*v)
	}
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *NodeCreate) SetContentType(v string) *NodeCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetID sets the "id" field.
func (_c *NodeCreate) SetID(v uuid.UUID) *NodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NodeCreate) SetNillableID(v *uuid.UUID) *NodeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the NodeMutation object of the builder.
func (_c *NodeCreate) Mutation() *NodeMutation {
	return _c.mutation
}

// Save creates the Node in the database.
func (_c *NodeCreate) Save(ctx context.Context) (*Node, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NodeCreate) SaveX(ctx context.Context) *Node {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NodeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := node.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := node.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Live(); !ok {
		v := node.DefaultLive
		_c.mutation.SetLive(v)
	}
	if _, ok := _c.mutation.ShowInMenus(); !ok {
		v := node.DefaultShowInMenus
		_c.mutation.SetShowInMenus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := node.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NodeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Node.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Node.updated_at"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`repo: missing required field "Node.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := node.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`repo: validator failed for field "Node.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`repo: missing required field "Node.depth"`)}
	}
	if v, ok := _c.mutation.Depth(); ok {
		if err := node.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`repo: validator failed for field "Node.depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Node.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := node.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Node.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Node.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := node.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Node.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URLPath(); !ok {
		return &ValidationError{Name: "url_path", err: errors.New(`repo: missing required field "Node.url_path"`)}
	}
	if v, ok := _c.mutation.URLPath(); ok {
		if err := node.URLPathValidator(v); err != nil {
			return &ValidationError{Name: "url_path", err: fmt.Errorf(`repo: validator failed for field "Node.url_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Live(); !ok {
		return &ValidationError{Name: "live", err: errors.New(`repo: missing required field "Node.live"`)}
	}
	if _, ok := _c.mutation.ShowInMenus(); !ok {
		return &ValidationError{Name: "show_in_menus", err: errors.New(`repo: missing required field "Node.show_in_menus"`)}
	}
	if v, ok := _c.mutation.SeoTitle(); ok {
		if err := node.SeoTitleValidator(v); err != nil {
			return &ValidationError{Name: "seo_title", err: fmt.Errorf(`repo: validator failed for field "Node.seo_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`repo: missing required field "Node.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := node.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "Node.content_type": %w`, err)}
		}
	}
	return nil
}

func (_c *NodeCreate) sqlSave(ctx context.Context) (*Node, error) {
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

func (_c *NodeCreate) createSpec() (*Node, *sqlgraph.CreateSpec) {
	var (
		_node = &Node{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(node.Table, sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(node.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(node.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(node.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(node.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(node.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(node.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.URLPath(); ok {
		_spec.SetField(node.FieldURLPath, field.TypeString, value)
		_node.URLPath = value
	}
	if value, ok := _c.mutation.Live(); ok {
		_spec.SetField(node.FieldLive, field.TypeBool, value)
		_node.Live = value
	}
	if value, ok := _c.mutation.ShowInMenus(); ok {
		_spec.SetField(node.FieldShowInMenus, field.TypeBool, value)
		_node.ShowInMenus = value
	}
	if value, ok := _c.mutation.SeoTitle(); ok {
		_spec.SetField(node.FieldSeoTitle, field.TypeString, value)
		_node.SeoTitle = value
	}
	if value, ok := _c.mutation.SearchDescription(); ok {
		_spec.SetField(node.FieldSearchDescription, field.TypeString, value)
		_node.SearchDescription = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(node.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	return _node, _spec
}

// NodeCreateBulk is the builder for creating many Node entities in bulk.
type NodeCreateBulk struct {
	config
	err      error
	builders []*NodeCreate
}

// Save creates the Node entities in the database.
func (_c *NodeCreateBulk) Save(ctx context.Context) ([]*Node, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Node, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NodeMutation)
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
func (_c *NodeCreateBulk) SaveX(ctx context.Context) []*Node {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
