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
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/workpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workscreenshot"
)

// WorkScreenshotUpdate is the builder for updating WorkScreenshot entities.
type WorkScreenshotUpdate struct {
	config
	hooks    []Hook
	mutation *WorkScreenshotMutation
}

// Where appends a list predicates to the WorkScreenshotUpdate builder.
func (_u *WorkScreenshotUpdate) Where(ps ...predicate.WorkScreenshot) *WorkScreenshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *WorkScreenshotUpdate) SetSortOrder(v int) *WorkScreenshotUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *WorkScreenshotUpdate) SetNillableSortOrder(v *int) *WorkScreenshotUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *WorkScreenshotUpdate) AddSortOrder(v int) *WorkScreenshotUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *WorkScreenshotUpdate) SetImageID(v uuid.UUID) *WorkScreenshotUpdate {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *WorkScreenshotUpdate) SetNillableImageID(v *uuid.UUID) *WorkScreenshotUpdate {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// ClearImageID clears the value of the "image_id" field.
func (_u *WorkScreenshotUpdate) ClearImageID() *WorkScreenshotUpdate {
	_u.mutation.ClearImageID()
	return _u
}

// SetWorkPageID sets the "work_page_id" field.
func (_u *WorkScreenshotUpdate) SetWorkPageID(v uuid.UUID) *WorkScreenshotUpdate {
	_u.mutation.SetWorkPageID(v)
	return _u
}

// SetNillableWorkPageID sets the "work_page_id" field if the given value is not nil.
func (_u *WorkScreenshotUpdate) SetNillableWorkPageID(v *uuid.UUID) *WorkScreenshotUpdate {
	if v != nil {
		_u.SetWorkPageID(*v)
	}
	return _u
}

// SetImage sets the "image" edge to the Image entity.
func (_u *WorkScreenshotUpdate) SetImage(v *Image) *WorkScreenshotUpdate {
	return _u.SetImageID(v.ID)
}

// SetWorkPage sets the "work_page" edge to the WorkPage entity.
func (_u *WorkScreenshotUpdate) SetWorkPage(v *WorkPage) *WorkScreenshotUpdate {
	return _u.SetWorkPageID(v.ID)
}

// Mutation returns the WorkScreenshotMutation object of the builder.
func (_u *WorkScreenshotUpdate) Mutation() *WorkScreenshotMutation {
	return _u.mutation
}

// ClearImage clears the "image" edge to the Image entity.
func (_u *WorkScreenshotUpdate) ClearImage() *WorkScreenshotUpdate {
	_u.mutation.ClearImage()
	return _u
}

// ClearWorkPage clears the "work_page" edge to the WorkPage entity.
func (_u *WorkScreenshotUpdate) ClearWorkPage() *WorkScreenshotUpdate {
	_u.mutation.ClearWorkPage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkScreenshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkScreenshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkScreenshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkScreenshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkScreenshotUpdate) check() error {
	if _u.mutation.WorkPageCleared() && len(_u.mutation.WorkPageIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "WorkScreenshot.work_page"`)
	}
	return nil
}

func (_u *WorkScreenshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workscreenshot.Table, workscreenshot.Columns, sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(workscreenshot.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(workscreenshot.FieldSortOrder, field.TypeInt, value)
	}
	if _u.mutation.ImageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkPageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkPageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workscreenshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkScreenshotUpdateOne is the builder for updating a single WorkScreenshot entity.
type WorkScreenshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkScreenshotMutation
}

// SetSortOrder sets the "sort_order" field.
func (_u *WorkScreenshotUpdateOne) SetSortOrder(v int) *WorkScreenshotUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *WorkScreenshotUpdateOne) SetNillableSortOrder(v *int) *WorkScreenshotUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *WorkScreenshotUpdateOne) AddSortOrder(v int) *WorkScreenshotUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *WorkScreenshotUpdateOne) SetImageID(v uuid.UUID) *WorkScreenshotUpdateOne {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *WorkScreenshotUpdateOne) SetNillableImageID(v *uuid.UUID) *WorkScreenshotUpdateOne {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// ClearImageID clears the value of the "image_id" field.
func (_u *WorkScreenshotUpdateOne) ClearImageID() *WorkScreenshotUpdateOne {
	_u.mutation.ClearImageID()
	return _u
}

// SetWorkPageID sets the "work_page_id" field.
func (_u *WorkScreenshotUpdateOne) SetWorkPageID(v uuid.UUID) *WorkScreenshotUpdateOne {
	_u.mutation.SetWorkPageID(v)
	return _u
}

// SetNillableWorkPageID sets the "work_page_id" field if the given value is not nil.
func (_u *WorkScreenshotUpdateOne) SetNillableWorkPageID(v *uuid.UUID) *WorkScreenshotUpdateOne {
	if v != nil {
		_u.SetWorkPageID(*v)
	}
	return _u
}

// SetImage sets the "image" edge to the Image entity.
func (_u *WorkScreenshotUpdateOne) SetImage(v *Image) *WorkScreenshotUpdateOne {
	return _u.SetImageID(v.ID)
}

// SetWorkPage sets the "work_page" edge to the WorkPage entity.
func (_u *WorkScreenshotUpdateOne) SetWorkPage(v *WorkPage) *WorkScreenshotUpdateOne {
	return _u.SetWorkPageID(v.ID)
}

// Mutation returns the WorkScreenshotMutation object of the builder.
func (_u *WorkScreenshotUpdateOne) Mutation() *WorkScreenshotMutation {
	return _u.mutation
}

// ClearImage clears the "image" edge to the Image entity.
func (_u *WorkScreenshotUpdateOne) ClearImage() *WorkScreenshotUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// ClearWorkPage clears the "work_page" edge to the WorkPage entity.
func (_u *WorkScreenshotUpdateOne) ClearWorkPage() *WorkScreenshotUpdateOne {
	_u.mutation.ClearWorkPage()
	return _u
}

// Where appends a list predicates to the WorkScreenshotUpdate builder.
func (_u *WorkScreenshotUpdateOne) Where(ps ...predicate.WorkScreenshot) *WorkScreenshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkScreenshotUpdateOne) Select(field string, fields ...string) *WorkScreenshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkScreenshot entity.
func (_u *WorkScreenshotUpdateOne) Save(ctx context.Context) (*WorkScreenshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkScreenshotUpdateOne) SaveX(ctx context.Context) *WorkScreenshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkScreenshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkScreenshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkScreenshotUpdateOne) check() error {
	if _u.mutation.WorkPageCleared() && len(_u.mutation.WorkPageIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "WorkScreenshot.work_page"`)
	}
	return nil
}

func (_u *WorkScreenshotUpdateOne) sqlSave(ctx context.Context) (_node *WorkScreenshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workscreenshot.Table, workscreenshot.Columns, sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WorkScreenshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workscreenshot.FieldID)
		for _, f := range fields {
			if !workscreenshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != workscreenshot.FieldID {
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
		_spec.SetField(workscreenshot.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(workscreenshot.FieldSortOrder, field.TypeInt, value)
	}
	if _u.mutation.ImageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkPageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkPageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkScreenshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workscreenshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
