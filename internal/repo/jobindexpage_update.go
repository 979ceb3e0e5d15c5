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
	"github.com/helenb/wagtail-torchbox/internal/repo/jobindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// JobIndexPageUpdate is the builder for updating JobIndexPage entities.
type JobIndexPageUpdate struct {
	config
	hooks    []Hook
	mutation *JobIndexPageMutation
}

// Where appends a list predicates to the JobIndexPageUpdate builder.
func (_u *JobIndexPageUpdate) Where(ps ...predicate.JobIndexPage) *JobIndexPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobIndexPageUpdate) SetUpdatedAt(v time.Time) *JobIndexPageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *JobIndexPageUpdate) SetNodeID(v uuid.UUID) *JobIndexPageUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *JobIndexPageUpdate) SetNillableNodeID(v *uuid.UUID) *JobIndexPageUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *JobIndexPageUpdate) SetIntro(v string) *JobIndexPageUpdate {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *JobIndexPageUpdate) SetNillableIntro(v *string) *JobIndexPageUpdate {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *JobIndexPageUpdate) ClearIntro() *JobIndexPageUpdate {
	_u.mutation.ClearIntro()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *JobIndexPageUpdate) SetNode(v *Node) *JobIndexPageUpdate {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the JobIndexPageMutation object of the builder.
func (_u *JobIndexPageUpdate) Mutation() *JobIndexPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *JobIndexPageUpdate) ClearNode() *JobIndexPageUpdate {
	_u.mutation.ClearNode()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobIndexPageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobIndexPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobIndexPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobIndexPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobIndexPageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobindexpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobIndexPageUpdate) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "JobIndexPage.node"`)
	}
	return nil
}

func (_u *JobIndexPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobindexpage.Table, jobindexpage.Columns, sqlgraph.NewFieldSpec(jobindexpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobindexpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(jobindexpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(jobindexpage.FieldIntro, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   jobindexpage.NodeTable,
			Columns: []string{jobindexpage.NodeColumn},
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
			Table:   jobindexpage.NodeTable,
			Columns: []string{jobindexpage.NodeColumn},
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
			err = &NotFoundError{jobindexpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobIndexPageUpdateOne is the builder for updating a single JobIndexPage entity.
type JobIndexPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobIndexPageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobIndexPageUpdateOne) SetUpdatedAt(v time.Time) *JobIndexPageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *JobIndexPageUpdateOne) SetNodeID(v uuid.UUID) *JobIndexPageUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *JobIndexPageUpdateOne) SetNillableNodeID(v *uuid.UUID) *JobIndexPageUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *JobIndexPageUpdateOne) SetIntro(v string) *JobIndexPageUpdateOne {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *JobIndexPageUpdateOne) SetNillableIntro(v *string) *JobIndexPageUpdateOne {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *JobIndexPageUpdateOne) ClearIntro() *JobIndexPageUpdateOne {
	_u.mutation.ClearIntro()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *JobIndexPageUpdateOne) SetNode(v *Node) *JobIndexPageUpdateOne {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the JobIndexPageMutation object of the builder.
func (_u *JobIndexPageUpdateOne) Mutation() *JobIndexPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *JobIndexPageUpdateOne) ClearNode() *JobIndexPageUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// Where appends a list predicates to the JobIndexPageUpdate builder.
func (_u *JobIndexPageUpdateOne) Where(ps ...predicate.JobIndexPage) *JobIndexPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobIndexPageUpdateOne) Select(field string, fields ...string) *JobIndexPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobIndexPage entity.
func (_u *JobIndexPageUpdateOne) Save(ctx context.Context) (*JobIndexPage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobIndexPageUpdateOne) SaveX(ctx context.Context) *JobIndexPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobIndexPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobIndexPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobIndexPageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobindexpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobIndexPageUpdateOne) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "JobIndexPage.node"`)
	}
	return nil
}

func (_u *JobIndexPageUpdateOne) sqlSave(ctx context.Context) (_node *JobIndexPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobindexpage.Table, jobindexpage.Columns, sqlgraph.NewFieldSpec(jobindexpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "JobIndexPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobindexpage.FieldID)
		for _, f := range fields {
			if !jobindexpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != jobindexpage.FieldID {
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
		_spec.SetField(jobindexpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(jobindexpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(jobindexpage.FieldIntro, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   jobindexpage.NodeTable,
			Columns: []string{jobindexpage.NodeColumn},
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
			Table:   jobindexpage.NodeTable,
			Columns: []string{jobindexpage.NodeColumn},
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
	_node = &JobIndexPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobindexpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
