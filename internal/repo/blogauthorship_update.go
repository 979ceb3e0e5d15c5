// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// BlogAuthorshipUpdate is the builder for updating BlogAuthorship entities.
type BlogAuthorshipUpdate struct {
	config
	hooks    []Hook
	mutation *BlogAuthorshipMutation
}

// Where appends a list predicates to the BlogAuthorshipUpdate builder.
func (_u *BlogAuthorshipUpdate) Where(ps ...predicate.BlogAuthorship) *BlogAuthorshipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *BlogAuthorshipUpdate) SetSortOrder(v int) *BlogAuthorshipUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *BlogAuthorshipUpdate) SetNillableSortOrder(v *int) *BlogAuthorshipUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *BlogAuthorshipUpdate) AddSortOrder(v int) *BlogAuthorshipUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetBlogPageID sets the "blog_page_id" field.
func (_u *BlogAuthorshipUpdate) SetBlogPageID(v uuid.UUID) *BlogAuthorshipUpdate {
	_u.mutation.SetBlogPageID(v)
	return _u
}

// SetNillableBlogPageID sets the "blog_page_id" field if the given value is not nil.
func (_u *BlogAuthorshipUpdate) SetNillableBlogPageID(v *uuid.UUID) *BlogAuthorshipUpdate {
	if v != nil {
		_u.SetBlogPageID(*v)
	}
	return _u
}

// SetPersonPageID sets the "person_page_id" field.
func (_u *BlogAuthorshipUpdate) SetPersonPageID(v uuid.UUID) *BlogAuthorshipUpdate {
	_u.mutation.SetPersonPageID(v)
	return _u
}

// SetNillablePersonPageID sets the "person_page_id" field if the given value is not nil.
func (_u *BlogAuthorshipUpdate) SetNillablePersonPageID(v *uuid.UUID) *BlogAuthorshipUpdate {
	if v != nil {
		_u.SetPersonPageID(*v)
	}
	return _u
}

// ClearPersonPageID clears the value of the "person_page_id" field.
func (_u *BlogAuthorshipUpdate) ClearPersonPageID() *BlogAuthorshipUpdate {
	_u.mutation.ClearPersonPageID()
	return _u
}

// SetBlogPage sets the "blog_page" edge to the BlogPage entity.
func (_u *BlogAuthorshipUpdate) SetBlogPage(v *BlogPage) *BlogAuthorshipUpdate {
	return _u.SetBlogPageID(v.ID)
}

// SetAuthorID sets the "author" edge to the PersonPage entity by ID.
func (_u *BlogAuthorshipUpdate) SetAuthorID(id uuid.UUID) *BlogAuthorshipUpdate {
	_u.mutation.SetAuthorID(id)
	return _u
}

// SetNillableAuthorID sets the "author" edge to the PersonPage entity by ID if the given value is not nil.
func (_u *BlogAuthorshipUpdate) SetNillableAuthorID(id *uuid.UUID) *BlogAuthorshipUpdate {
	if id != nil {
		_u = _u.SetAuthorID(*id)
	}
	return _u
}

// SetAuthor sets the "author" edge to the PersonPage entity.
func (_u *BlogAuthorshipUpdate) SetAuthor(v *PersonPage) *BlogAuthorshipUpdate {
	return _u.SetAuthorID(v.ID)
}

// Mutation returns the BlogAuthorshipMutation object of the builder.
func (_u *BlogAuthorshipUpdate) Mutation() *BlogAuthorshipMutation {
	return _u.mutation
}

// ClearBlogPage clears the "blog_page" edge to the BlogPage entity.
func (_u *BlogAuthorshipUpdate) ClearBlogPage() *BlogAuthorshipUpdate {
	_u.mutation.ClearBlogPage()
	return _u
}

// ClearAuthor clears the "author" edge to the PersonPage entity.
func (_u *BlogAuthorshipUpdate) ClearAuthor() *BlogAuthorshipUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlogAuthorshipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogAuthorshipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlogAuthorshipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogAuthorshipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogAuthorshipUpdate) check() error {
	if _u.mutation.BlogPageCleared() && len(_u.mutation.BlogPageIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BlogAuthorship.blog_page"`)
	}
	return nil
}

func (_u *BlogAuthorshipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogauthorship.Table, blogauthorship.Columns, sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(blogauthorship.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(blogauthorship.FieldSortOrder, field.TypeInt, value)
	}
	if _u.mutation.BlogPageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlogPageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogauthorship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlogAuthorshipUpdateOne is the builder for updating a single BlogAuthorship entity.
type BlogAuthorshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlogAuthorshipMutation
}

// SetSortOrder sets the "sort_order" field.
func (_u *BlogAuthorshipUpdateOne) SetSortOrder(v int) *BlogAuthorshipUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *BlogAuthorshipUpdateOne) SetNillableSortOrder(v *int) *BlogAuthorshipUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *BlogAuthorshipUpdateOne) AddSortOrder(v int) *BlogAuthorshipUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetBlogPageID sets the "blog_page_id" field.
func (_u *BlogAuthorshipUpdateOne) SetBlogPageID(v uuid.UUID) *BlogAuthorshipUpdateOne {
	_u.mutation.SetBlogPageID(v)
	return _u
}

// SetNillableBlogPageID sets the "blog_page_id" field if the given value is not nil.
func (_u *BlogAuthorshipUpdateOne) SetNillableBlogPageID(v *uuid.UUID) *BlogAuthorshipUpdateOne {
	if v != nil {
		_u.SetBlogPageID(*v)
	}
	return _u
}

// SetPersonPageID sets the "person_page_id" field.
func (_u *BlogAuthorshipUpdateOne) SetPersonPageID(v uuid.UUID) *BlogAuthorshipUpdateOne {
	_u.mutation.SetPersonPageID(v)
	return _u
}

// SetNillablePersonPageID sets the "person_page_id" field if the given value is not nil.
func (_u *BlogAuthorshipUpdateOne) SetNillablePersonPageID(v *uuid.UUID) *BlogAuthorshipUpdateOne {
	if v != nil {
		_u.SetPersonPageID(*v)
	}
	return _u
}

// ClearPersonPageID clears the value of the "person_page_id" field.
func (_u *BlogAuthorshipUpdateOne) ClearPersonPageID() *BlogAuthorshipUpdateOne {
	_u.mutation.ClearPersonPageID()
	return _u
}

// SetBlogPage sets the "blog_page" edge to the BlogPage entity.
func (_u *BlogAuthorshipUpdateOne) SetBlogPage(v *BlogPage) *BlogAuthorshipUpdateOne {
	return _u.SetBlogPageID(v.ID)
}

// SetAuthorID sets the "author" edge to the PersonPage entity by ID.
func (_u *BlogAuthorshipUpdateOne) SetAuthorID(id uuid.UUID) *BlogAuthorshipUpdateOne {
	_u.mutation.SetAuthorID(id)
	return _u
}

// SetNillableAuthorID sets the "author" edge to the PersonPage entity by ID if the given value is not nil.
func (_u *BlogAuthorshipUpdateOne) SetNillableAuthorID(id *uuid.UUID) *BlogAuthorshipUpdateOne {
	if id != nil {
		_u = _u.SetAuthorID(*id)
	}
	return _u
}

// SetAuthor sets the "author" edge to the PersonPage entity.
func (_u *BlogAuthorshipUpdateOne) SetAuthor(v *PersonPage) *BlogAuthorshipUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// Mutation returns the BlogAuthorshipMutation object of the builder.
func (_u *BlogAuthorshipUpdateOne) Mutation() *BlogAuthorshipMutation {
	return _u.mutation
}

// ClearBlogPage clears the "blog_page" edge to the BlogPage entity.
func (_u *BlogAuthorshipUpdateOne) ClearBlogPage() *BlogAuthorshipUpdateOne {
	_u.mutation.ClearBlogPage()
	return _u
}

// ClearAuthor clears the "author" edge to the PersonPage entity.
func (_u *BlogAuthorshipUpdateOne) ClearAuthor() *BlogAuthorshipUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// Where appends a list predicates to the BlogAuthorshipUpdate builder.
func (_u *BlogAuthorshipUpdateOne) Where(ps ...predicate.BlogAuthorship) *BlogAuthorshipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlogAuthorshipUpdateOne) Select(field string, fields ...string) *BlogAuthorshipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlogAuthorship entity.
func (_u *BlogAuthorshipUpdateOne) Save(ctx context.Context) (*BlogAuthorship, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogAuthorshipUpdateOne) SaveX(ctx context.Context) *BlogAuthorship {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlogAuthorshipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogAuthorshipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogAuthorshipUpdateOne) check() error {
	if _u.mutation.BlogPageCleared() && len(_u.mutation.BlogPageIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BlogAuthorship.blog_page"`)
	}
	return nil
}

func (_u *BlogAuthorshipUpdateOne) sqlSave(ctx context.Context) (_node *BlogAuthorship, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogauthorship.Table, blogauthorship.Columns, sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BlogAuthorship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blogauthorship.FieldID)
		for _, f := range fields {
			if !blogauthorship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != blogauthorship.FieldID {
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
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(blogauthorship.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(blogauthorship.FieldSortOrder, field.TypeInt, value)
	}
	if _u.mutation.BlogPageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlogPageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BlogAuthorship{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogauthorship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
