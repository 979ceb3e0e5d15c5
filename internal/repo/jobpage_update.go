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
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/jobpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// JobPageUpdate is the builder for updating JobPage entities.
type JobPageUpdate struct {
	config
	hooks    []Hook
	mutation *JobPageMutation
}

// Where appends a list predicates to the JobPageUpdate builder.
func (_u *JobPageUpdate) Where(ps ...predicate.JobPage) *JobPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobPageUpdate) SetUpdatedAt(v time.Time) *JobPageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *JobPageUpdate) SetNodeID(v uuid.UUID) *JobPageUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableNodeID(v *uuid.UUID) *JobPageUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *JobPageUpdate) SetBody(v string) *JobPageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableBody(v *string) *JobPageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *JobPageUpdate) SetNode(v *Node) *JobPageUpdate {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the JobPageMutation object of the builder.
func (_u *JobPageUpdate) Mutation() *JobPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *JobPageUpdate) ClearNode() *JobPageUpdate {
	_u.mutation.ClearNode()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobPageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobPageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPageUpdate) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := jobpage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`repo: validator failed for field "JobPage.body": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "JobPage.node"`)
	}
	return nil
}

func (_u *JobPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobpage.Table, jobpage.Columns, sqlgraph.NewFieldSpec(jobpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(jobpage.FieldBody, field.TypeString, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   jobpage.NodeTable,
			Columns: []string{jobpage.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   jobpage.NodeTable,
			Columns: []string{jobpage.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobPageUpdateOne is the builder for updating a single JobPage entity.
type JobPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobPageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobPageUpdateOne) SetUpdatedAt(v time.Time) *JobPageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *JobPageUpdateOne) SetNodeID(v uuid.UUID) *JobPageUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableNodeID(v *uuid.UUID) *JobPageUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *JobPageUpdateOne) SetBody(v string) *JobPageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableBody(v *string) *JobPageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *JobPageUpdateOne) SetNode(v *Node) *JobPageUpdateOne {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the JobPageMutation object of the builder.
func (_u *JobPageUpdateOne) Mutation() *JobPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *JobPageUpdateOne) ClearNode() *JobPageUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// Where appends a list predicates to the JobPageUpdate builder.
func (_u *JobPageUpdateOne) Where(ps ...predicate.JobPage) *JobPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobPageUpdateOne) Select(field string, fields ...string) *JobPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobPage entity.
func (_u *JobPageUpdateOne) Save(ctx context.Context) (*JobPage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPageUpdateOne) SaveX(ctx context.Context) *JobPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobPageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPageUpdateOne) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := jobpage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`repo: validator failed for field "JobPage.body": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "JobPage.node"`)
	}
	return nil
}

func (_u *JobPageUpdateOne) sqlSave(ctx context.Context) (_node *JobPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobpage.Table, jobpage.Columns, sqlgraph.NewFieldSpec(jobpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "JobPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobpage.FieldID)
		for _, f := range fields {
			if !jobpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != jobpage.FieldID {
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
		_spec.SetField(jobpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(jobpage.FieldBody, field.TypeString, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   jobpage.NodeTable,
			Columns: []string{jobpage.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   jobpage.NodeTable,
			Columns: []string{jobpage.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
