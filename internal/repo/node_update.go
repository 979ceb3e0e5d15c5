// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// NodeUpdate is the builder for updating Node entities.
type NodeUpdate struct {
	config
	hooks    []Hook
	mutation *NodeMutation
}

// Where appends a list predicates to the NodeUpdate builder.
func (_u *NodeUpdate) Where(ps ...predicate.Node) *NodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NodeUpdate) SetUpdatedAt(v time.Time) *NodeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPath sets the "path" field.
func (_u *NodeUpdate) SetPath(v string) *NodeUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *NodeUpdate) SetNillablePath(v *string) *NodeUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *NodeUpdate) SetDepth(v int) *NodeUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableDepth(v *int) *NodeUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *NodeUpdate) AddDepth(v int) *NodeUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *NodeUpdate) SetTitle(v string) *NodeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableTitle(v *string) *NodeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *NodeUpdate) SetSlug(v string) *NodeUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableSlug(v *string) *NodeUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetURLPath sets the "url_path" field.
func (_u *NodeUpdate) SetURLPath(v string) *NodeUpdate {
	_u.mutation.SetURLPath(v)
	return _u
}

// SetNillableURLPath sets the "url_path" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableURLPath(v *string) *NodeUpdate {
	if v != nil {
		_u.SetURLPath(*v)
	}
	return _u
}

// SetLive sets the "live" field.
func (_u *NodeUpdate) SetLive(v bool) *NodeUpdate {
	_u.mutation.SetLive(v)
	return _u
}

// SetNillableLive sets the "live" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableLive(v *bool) *NodeUpdate {
	if v != nil {
		_u.SetLive(*v)
	}
	return _u
}

// SetShowInMenus sets the "show_in_menus" field.
func (_u *NodeUpdate) SetShowInMenus(v bool) *NodeUpdate {
	_u.mutation.SetShowInMenus(v)
	return _u
}

// SetNillableShowInMenus sets the "show_in_menus" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableShowInMenus(v *bool) *NodeUpdate {
	if v != nil {
		_u.SetShowInMenus(*v)
	}
	return _u
}

// SetSeoTitle sets the "seo_title" field.
func (_u *NodeUpdate) SetSeoTitle(v string) *NodeUpdate {
	_u.mutation.SetSeoTitle(v)
	return _u
}

// SetNillableSeoTitle sets the "seo_title" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableSeoTitle(v *string) *NodeUpdate {
	if v != nil {
		_u.SetSeoTitle(*v)
	}
	return _u
}

// ClearSeoTitle clears the value of the "seo_title" field.
func (_u *NodeUpdate) ClearSeoTitle() *NodeUpdate {
	_u.mutation.ClearSeoTitle()
	return _u
}

// SetSearchDescription sets the "search_description" field.
func (_u *NodeUpdate) SetSearchDescription(v string) *NodeUpdate {
	_u.mutation.SetSearchDescription(v)
	return _u
}

// SetNillableSearchDescription sets the "search_description" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableSearchDescription(v *string) *NodeUpdate {
	if v != nil {
		_u.SetSearchDescription(*v)
	}
	return _u
}

// ClearSearchDescription clears the value of the "search_description" field.
func (_u *NodeUpdate) ClearSearchDescription() *NodeUpdate {
	_u.mutation.ClearSearchDescription()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *NodeUpdate) SetContentType(v string) *NodeUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableContentType(v *string) *NodeUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// Mutation returns the NodeMutation object of the builder.
func (_u *NodeUpdate) Mutation() *NodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NodeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := node.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeUpdate) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := node.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`repo: validator failed for field "Node.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := node.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`repo: validator failed for field "Node.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := node.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Node.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := node.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Node.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URLPath(); ok {
		if err := node.URLPathValidator(v); err != nil {
			return &ValidationError{Name: "url_path", err: fmt.Errorf(`repo: validator failed for field "Node.url_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeoTitle(); ok {
		if err := node.SeoTitleValidator(v); err != nil {
			return &ValidationError{Name: "seo_title", err: fmt.Errorf(`repo: validator failed for field "Node.seo_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := node.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "Node.content_type": %w`, err)}
		}
	}
	return nil
}

func (_u *NodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(node.Table, node.Columns, sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(node.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(node.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(node.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(node.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(node.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(node.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.URLPath(); ok {
		_spec.SetField(node.FieldURLPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Live(); ok {
		_spec.SetField(node.FieldLive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShowInMenus(); ok {
		_spec.SetField(node.FieldShowInMenus, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SeoTitle(); ok {
		_spec.SetField(node.FieldSeoTitle, field.TypeString, value)
	}
	if _u.mutation.SeoTitleCleared() {
		_spec.ClearField(node.FieldSeoTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SearchDescription(); ok {
		_spec.SetField(node.FieldSearchDescription, field.TypeString, value)
	}
	if _u.mutation.SearchDescriptionCleared() {
		_spec.ClearField(node.FieldSearchDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(node.FieldContentType, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{node.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeUpdateOne is the builder for updating a single Node entity.
type NodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NodeUpdateOne) SetUpdatedAt(v time.Time) *NodeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPath sets the "path" field.
func (_u *NodeUpdateOne) SetPath(v string) *NodeUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillablePath(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *NodeUpdateOne) SetDepth(v int) *NodeUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableDepth(v *int) *NodeUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *NodeUpdateOne) AddDepth(v int) *NodeUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *NodeUpdateOne) SetTitle(v string) *NodeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableTitle(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *NodeUpdateOne) SetSlug(v string) *NodeUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableSlug(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetURLPath sets the "url_path" field.
func (_u *NodeUpdateOne) SetURLPath(v string) *NodeUpdateOne {
	_u.mutation.SetURLPath(v)
	return _u
}

// SetNillableURLPath sets the "url_path" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableURLPath(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetURLPath(*v)
	}
	return _u
}

// SetLive sets the "live" field.
func (_u *NodeUpdateOne) SetLive(v bool) *NodeUpdateOne {
	_u.mutation.SetLive(v)
	return _u
}

// SetNillableLive sets the "live" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableLive(v *bool) *NodeUpdateOne {
	if v != nil {
		_u.SetLive(*v)
	}
	return _u
}

// SetShowInMenus sets the "show_in_menus" field.
func (_u *NodeUpdateOne) SetShowInMenus(v bool) *NodeUpdateOne {
	_u.mutation.SetShowInMenus(v)
	return _u
}

// SetNillableShowInMenus sets the "show_in_menus" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableShowInMenus(v *bool) *NodeUpdateOne {
	if v != nil {
		_u.SetShowInMenus(*v)
	}
	return _u
}

// SetSeoTitle sets the "seo_title" field.
func (_u *NodeUpdateOne) SetSeoTitle(v string) *NodeUpdateOne {
	_u.mutation.SetSeoTitle(v)
	return _u
}

// SetNillableSeoTitle sets the "seo_title" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableSeoTitle(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetSeoTitle(*v)
	}
	return _u
}

// ClearSeoTitle clears the value of the "seo_title" field.
func (_u *NodeUpdateOne) ClearSeoTitle() *NodeUpdateOne {
	_u.mutation.ClearSeoTitle()
	return _u
}

// SetSearchDescription sets the "search_description" field.
func (_u *NodeUpdateOne) SetSearchDescription(v string) *NodeUpdateOne {
	_u.mutation.SetSearchDescription(v)
	return _u
}

// SetNillableSearchDescription sets the "search_description" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableSearchDescription(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetSearchDescription(*v)
	}
	return _u
}

// ClearSearchDescription clears the value of the "search_description" field.
func (_u *NodeUpdateOne) ClearSearchDescription() *NodeUpdateOne {
	_u.mutation.ClearSearchDescription()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *NodeUpdateOne) SetContentType(v string) *NodeUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableContentType(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// Mutation returns the NodeMutation object of the builder.
func (_u *NodeUpdateOne) Mutation() *NodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the NodeUpdate builder.
func (_u *NodeUpdateOne) Where(ps ...predicate.Node) *NodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeUpdateOne) Select(field string, fields ...string) *NodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Node entity.
func (_u *NodeUpdateOne) Save(ctx context.Context) (*Node, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeUpdateOne) SaveX(ctx context.Context) *Node {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NodeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := node.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeUpdateOne) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := node.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`repo: validator failed for field "Node.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := node.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`repo: validator failed for field "Node.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := node.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Node.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := node.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Node.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URLPath(); ok {
		if err := node.URLPathValidator(v); err != nil {
			return &ValidationError{Name: "url_path", err: fmt.Errorf(`repo: validator failed for field "Node.url_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeoTitle(); ok {
		if err := node.SeoTitleValidator(v); err != nil {
			return &ValidationError{Name: "seo_title", err: fmt.Errorf(`repo: validator failed for field "Node.seo_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := node.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "Node.content_type": %w`, err)}
		}
	}
	return nil
}

func (_u *NodeUpdateOne) sqlSave(ctx context.Context) (_node *Node, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(node.Table, node.Columns, sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Node.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, node.FieldID)
		for _, f := range fields {
			if !node.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != node.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(node.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(node.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(node.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(node.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(node.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(node.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.URLPath(); ok {
		_spec.SetField(node.FieldURLPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Live(); ok {
		_spec.SetField(node.FieldLive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShowInMenus(); ok {
		_spec.SetField(node.FieldShowInMenus, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SeoTitle(); ok {
		_spec.SetField(node.FieldSeoTitle, field.TypeString, value)
	}
	if _u.mutation.SeoTitleCleared() {
		_spec.ClearField(node.FieldSeoTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SearchDescription(); ok {
		_spec.SetField(node.FieldSearchDescription, field.TypeString, value)
	}
	if _u.mutation.SearchDescriptionCleared() {
		_spec.ClearField(node.FieldSearchDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(node.FieldContentType, field.TypeString, value)
	}
	_node = &Node{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{node.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
