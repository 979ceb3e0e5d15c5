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
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/personindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// PersonIndexPageUpdate is the builder for updating PersonIndexPage entities.
type PersonIndexPageUpdate struct {
	config
	hooks    []Hook
	mutation *PersonIndexPageMutation
}

// Where appends a list predicates to the PersonIndexPageUpdate builder.
func (_u *PersonIndexPageUpdate) Where(ps ...predicate.PersonIndexPage) *PersonIndexPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonIndexPageUpdate) SetUpdatedAt(v time.Time) *PersonIndexPageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *PersonIndexPageUpdate) SetNodeID(v uuid.UUID) *PersonIndexPageUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *PersonIndexPageUpdate) SetNillableNodeID(v *uuid.UUID) *PersonIndexPageUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *PersonIndexPageUpdate) SetIntro(v string) *PersonIndexPageUpdate {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *PersonIndexPageUpdate) SetNillableIntro(v *string) *PersonIndexPageUpdate {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *PersonIndexPageUpdate) ClearIntro() *PersonIndexPageUpdate {
	_u.mutation.ClearIntro()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *PersonIndexPageUpdate) SetNode(v *Node) *PersonIndexPageUpdate {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the PersonIndexPageMutation object of the builder.
func (_u *PersonIndexPageUpdate) Mutation() *PersonIndexPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *PersonIndexPageUpdate) ClearNode() *PersonIndexPageUpdate {
	_u.mutation.ClearNode()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonIndexPageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonIndexPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonIndexPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonIndexPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonIndexPageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personindexpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonIndexPageUpdate) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PersonIndexPage.node"`)
	}
	return nil
}

func (_u *PersonIndexPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personindexpage.Table, personindexpage.Columns, sqlgraph.NewFieldSpec(personindexpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(personindexpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(personindexpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(personindexpage.FieldIntro, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   personindexpage.NodeTable,
			Columns: []string{personindexpage.NodeColumn},
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
			Table:   personindexpage.NodeTable,
			Columns: []string{personindexpage.NodeColumn},
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
			err = &NotFoundError{personindexpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonIndexPageUpdateOne is the builder for updating a single PersonIndexPage entity.
type PersonIndexPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonIndexPageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonIndexPageUpdateOne) SetUpdatedAt(v time.Time) *PersonIndexPageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *PersonIndexPageUpdateOne) SetNodeID(v uuid.UUID) *PersonIndexPageUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *PersonIndexPageUpdateOne) SetNillableNodeID(v *uuid.UUID) *PersonIndexPageUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *PersonIndexPageUpdateOne) SetIntro(v string) *PersonIndexPageUpdateOne {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *PersonIndexPageUpdateOne) SetNillableIntro(v *string) *PersonIndexPageUpdateOne {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *PersonIndexPageUpdateOne) ClearIntro() *PersonIndexPageUpdateOne {
	_u.mutation.ClearIntro()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *PersonIndexPageUpdateOne) SetNode(v *Node) *PersonIndexPageUpdateOne {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the PersonIndexPageMutation object of the builder.
func (_u *PersonIndexPageUpdateOne) Mutation() *PersonIndexPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *PersonIndexPageUpdateOne) ClearNode() *PersonIndexPageUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// Where appends a list predicates to the PersonIndexPageUpdate builder.
func (_u *PersonIndexPageUpdateOne) Where(ps ...predicate.PersonIndexPage) *PersonIndexPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonIndexPageUpdateOne) Select(field string, fields ...string) *PersonIndexPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PersonIndexPage entity.
func (_u *PersonIndexPageUpdateOne) Save(ctx context.Context) (*PersonIndexPage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonIndexPageUpdateOne) SaveX(ctx context.Context) *PersonIndexPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonIndexPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonIndexPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonIndexPageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personindexpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonIndexPageUpdateOne) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PersonIndexPage.node"`)
	}
	return nil
}

func (_u *PersonIndexPageUpdateOne) sqlSave(ctx context.Context) (_node *PersonIndexPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personindexpage.Table, personindexpage.Columns, sqlgraph.NewFieldSpec(personindexpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PersonIndexPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, personindexpage.FieldID)
		for _, f := range fields {
			if !personindexpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != personindexpage.FieldID {
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
		_spec.SetField(personindexpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(personindexpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(personindexpage.FieldIntro, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   personindexpage.NodeTable,
			Columns: []string{personindexpage.NodeColumn},
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
			Table:   personindexpage.NodeTable,
			Columns: []string{personindexpage.NodeColumn},
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
	_node = &PersonIndexPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personindexpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
