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
	"github.com/helenb/wagtail-torchbox/internal/repo/advert"
	"github.com/helenb/wagtail-torchbox/internal/repo/advertplacement"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// AdvertPlacementUpdate is the builder for updating AdvertPlacement entities.
type AdvertPlacementUpdate struct {
	config
	hooks    []Hook
	mutation *AdvertPlacementMutation
}

// Where appends a list predicates to the AdvertPlacementUpdate builder.
func (_u *AdvertPlacementUpdate) Where(ps ...predicate.AdvertPlacement) *AdvertPlacementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *AdvertPlacementUpdate) SetNodeID(v uuid.UUID) *AdvertPlacementUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *AdvertPlacementUpdate) SetNillableNodeID(v *uuid.UUID) *AdvertPlacementUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetAdvertID sets the "advert_id" field.
func (_u *AdvertPlacementUpdate) SetAdvertID(v uuid.UUID) *AdvertPlacementUpdate {
	_u.mutation.SetAdvertID(v)
	return _u
}

// SetNillableAdvertID sets the "advert_id" field if the given value is not nil.
func (_u *AdvertPlacementUpdate) SetNillableAdvertID(v *uuid.UUID) *AdvertPlacementUpdate {
	if v != nil {
		_u.SetAdvertID(*v)
	}
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *AdvertPlacementUpdate) SetNode(v *Node) *AdvertPlacementUpdate {
	return _u.SetNodeID(v.ID)
}

// SetAdvert sets the "advert" edge to the Advert entity.
func (_u *AdvertPlacementUpdate) SetAdvert(v *Advert) *AdvertPlacementUpdate {
	return _u.SetAdvertID(v.ID)
}

// Mutation returns the AdvertPlacementMutation object of the builder.
func (_u *AdvertPlacementUpdate) Mutation() *AdvertPlacementMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *AdvertPlacementUpdate) ClearNode() *AdvertPlacementUpdate {
	_u.mutation.ClearNode()
	return _u
}

// ClearAdvert clears the "advert" edge to the Advert entity.
func (_u *AdvertPlacementUpdate) ClearAdvert() *AdvertPlacementUpdate {
	_u.mutation.ClearAdvert()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdvertPlacementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdvertPlacementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdvertPlacementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdvertPlacementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdvertPlacementUpdate) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AdvertPlacement.node"`)
	}
	if _u.mutation.AdvertCleared() && len(_u.mutation.AdvertIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AdvertPlacement.advert"`)
	}
	return nil
}

func (_u *AdvertPlacementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(advertplacement.Table, advertplacement.Columns, sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   advertplacement.NodeTable,
			Columns: []string{advertplacement.NodeColumn},
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
			Table:   advertplacement.NodeTable,
			Columns: []string{advertplacement.NodeColumn},
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
	if _u.mutation.AdvertCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   advertplacement.AdvertTable,
			Columns: []string{advertplacement.AdvertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advert.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdvertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   advertplacement.AdvertTable,
			Columns: []string{advertplacement.AdvertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advertplacement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdvertPlacementUpdateOne is the builder for updating a single AdvertPlacement entity.
type AdvertPlacementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdvertPlacementMutation
}

// SetNodeID sets the "node_id" field.
func (_u *AdvertPlacementUpdateOne) SetNodeID(v uuid.UUID) *AdvertPlacementUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *AdvertPlacementUpdateOne) SetNillableNodeID(v *uuid.UUID) *AdvertPlacementUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetAdvertID sets the "advert_id" field.
func (_u *AdvertPlacementUpdateOne) SetAdvertID(v uuid.UUID) *AdvertPlacementUpdateOne {
	_u.mutation.SetAdvertID(v)
	return _u
}

// SetNillableAdvertID sets the "advert_id" field if the given value is not nil.
func (_u *AdvertPlacementUpdateOne) SetNillableAdvertID(v *uuid.UUID) *AdvertPlacementUpdateOne {
	if v != nil {
		_u.SetAdvertID(*v)
	}
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *AdvertPlacementUpdateOne) SetNode(v *Node) *AdvertPlacementUpdateOne {
	return _u.SetNodeID(v.ID)
}

// SetAdvert sets the "advert" edge to the Advert entity.
func (_u *AdvertPlacementUpdateOne) SetAdvert(v *Advert) *AdvertPlacementUpdateOne {
	return _u.SetAdvertID(v.ID)
}

// Mutation returns the AdvertPlacementMutation object of the builder.
func (_u *AdvertPlacementUpdateOne) Mutation() *AdvertPlacementMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *AdvertPlacementUpdateOne) ClearNode() *AdvertPlacementUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// ClearAdvert clears the "advert" edge to the Advert entity.
func (_u *AdvertPlacementUpdateOne) ClearAdvert() *AdvertPlacementUpdateOne {
	_u.mutation.ClearAdvert()
	return _u
}

// Where appends a list predicates to the AdvertPlacementUpdate builder.
func (_u *AdvertPlacementUpdateOne) Where(ps ...predicate.AdvertPlacement) *AdvertPlacementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdvertPlacementUpdateOne) Select(field string, fields ...string) *AdvertPlacementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdvertPlacement entity.
func (_u *AdvertPlacementUpdateOne) Save(ctx context.Context) (*AdvertPlacement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdvertPlacementUpdateOne) SaveX(ctx context.Context) *AdvertPlacement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdvertPlacementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdvertPlacementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdvertPlacementUpdateOne) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AdvertPlacement.node"`)
	}
	if _u.mutation.AdvertCleared() && len(_u.mutation.AdvertIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AdvertPlacement.advert"`)
	}
	return nil
}

func (_u *AdvertPlacementUpdateOne) sqlSave(ctx context.Context) (_node *AdvertPlacement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(advertplacement.Table, advertplacement.Columns, sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AdvertPlacement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, advertplacement.FieldID)
		for _, f := range fields {
			if !advertplacement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != advertplacement.FieldID {
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
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   advertplacement.NodeTable,
			Columns: []string{advertplacement.NodeColumn},
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
			Table:   advertplacement.NodeTable,
			Columns: []string{advertplacement.NodeColumn},
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
	if _u.mutation.AdvertCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   advertplacement.AdvertTable,
			Columns: []string{advertplacement.AdvertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advert.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdvertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   advertplacement.AdvertTable,
			Columns: []string{advertplacement.AdvertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AdvertPlacement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advertplacement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
