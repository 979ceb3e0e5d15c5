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
	"github.com/helenb/wagtail-torchbox/internal/repo/carouselitem"
	"github.com/helenb/wagtail-torchbox/internal/repo/homepage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// HomePageUpdate is the builder for updating HomePage entities.
type HomePageUpdate struct {
	config
	hooks    []Hook
	mutation *HomePageMutation
}

// Where appends a list predicates to the HomePageUpdate builder.
func (_u *HomePageUpdate) Where(ps ...predicate.HomePage) *HomePageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HomePageUpdate) SetUpdatedAt(v time.Time) *HomePageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *HomePageUpdate) SetNodeID(v uuid.UUID) *HomePageUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *HomePageUpdate) SetNillableNodeID(v *uuid.UUID) *HomePageUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *HomePageUpdate) SetNode(v *Node) *HomePageUpdate {
	return _u.SetNodeID(v.ID)
}

// AddCarouselItemIDs adds the "carousel_items" edge to the CarouselItem entity by IDs.
func (_u *HomePageUpdate) AddCarouselItemIDs(ids ...uuid.UUID) *HomePageUpdate {
	_u.mutation.AddCarouselItemIDs(ids...)
	return _u
}

// AddCarouselItems adds the "carousel_items" edges to the CarouselItem entity.
func (_u *HomePageUpdate) AddCarouselItems(v ...*CarouselItem) *HomePageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCarouselItemIDs(ids...)
}

// Mutation returns the HomePageMutation object of the builder.
func (_u *HomePageUpdate) Mutation() *HomePageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *HomePageUpdate) ClearNode() *HomePageUpdate {
	_u.mutation.ClearNode()
	return _u
}

// ClearCarouselItems clears all "carousel_items" edges to the CarouselItem entity.
func (_u *HomePageUpdate) ClearCarouselItems() *HomePageUpdate {
	_u.mutation.ClearCarouselItems()
	return _u
}

// RemoveCarouselItemIDs removes the "carousel_items" edge to CarouselItem entities by IDs.
func (_u *HomePageUpdate) RemoveCarouselItemIDs(ids ...uuid.UUID) *HomePageUpdate {
	_u.mutation.RemoveCarouselItemIDs(ids...)
	return _u
}

// RemoveCarouselItems removes "carousel_items" edges to CarouselItem entities.
func (_u *HomePageUpdate) RemoveCarouselItems(v ...*CarouselItem) *HomePageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCarouselItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HomePageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HomePageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HomePageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HomePageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HomePageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := homepage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HomePageUpdate) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "HomePage.node"`)
	}
	return nil
}

func (_u *HomePageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(homepage.Table, homepage.Columns, sqlgraph.NewFieldSpec(homepage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(homepage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   homepage.NodeTable,
			Columns: []string{homepage.NodeColumn},
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
			Table:   homepage.NodeTable,
			Columns: []string{homepage.NodeColumn},
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
	if _u.mutation.CarouselItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   homepage.CarouselItemsTable,
			Columns: []string{homepage.CarouselItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCarouselItemsIDs(); len(nodes) > 0 && !_u.mutation.CarouselItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   homepage.CarouselItemsTable,
			Columns: []string{homepage.CarouselItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CarouselItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   homepage.CarouselItemsTable,
			Columns: []string{homepage.CarouselItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{homepage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HomePageUpdateOne is the builder for updating a single HomePage entity.
type HomePageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HomePageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HomePageUpdateOne) SetUpdatedAt(v time.Time) *HomePageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *HomePageUpdateOne) SetNodeID(v uuid.UUID) *HomePageUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *HomePageUpdateOne) SetNillableNodeID(v *uuid.UUID) *HomePageUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *HomePageUpdateOne) SetNode(v *Node) *HomePageUpdateOne {
	return _u.SetNodeID(v.ID)
}

// AddCarouselItemIDs adds the "carousel_items" edge to the CarouselItem entity by IDs.
func (_u *HomePageUpdateOne) AddCarouselItemIDs(ids ...uuid.UUID) *HomePageUpdateOne {
	_u.mutation.AddCarouselItemIDs(ids...)
	return _u
}

// AddCarouselItems adds the "carousel_items" edges to the CarouselItem entity.
func (_u *HomePageUpdateOne) AddCarouselItems(v ...*CarouselItem) *HomePageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCarouselItemIDs(ids...)
}

// Mutation returns the HomePageMutation object of the builder.
func (_u *HomePageUpdateOne) Mutation() *HomePageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *HomePageUpdateOne) ClearNode() *HomePageUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// ClearCarouselItems clears all "carousel_items" edges to the CarouselItem entity.
func (_u *HomePageUpdateOne) ClearCarouselItems() *HomePageUpdateOne {
	_u.mutation.ClearCarouselItems()
	return _u
}

// RemoveCarouselItemIDs removes the "carousel_items" edge to CarouselItem entities by IDs.
func (_u *HomePageUpdateOne) RemoveCarouselItemIDs(ids ...uuid.UUID) *HomePageUpdateOne {
	_u.mutation.RemoveCarouselItemIDs(ids...)
	return _u
}

// RemoveCarouselItems removes "carousel_items" edges to CarouselItem entities.
func (_u *HomePageUpdateOne) RemoveCarouselItems(v ...*CarouselItem) *HomePageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCarouselItemIDs(ids...)
}

// Where appends a list predicates to the HomePageUpdate builder.
func (_u *HomePageUpdateOne) Where(ps ...predicate.HomePage) *HomePageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HomePageUpdateOne) Select(field string, fields ...string) *HomePageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HomePage entity.
func (_u *HomePageUpdateOne) Save(ctx context.Context) (*HomePage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HomePageUpdateOne) SaveX(ctx context.Context) *HomePage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HomePageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HomePageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HomePageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := homepage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HomePageUpdateOne) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "HomePage.node"`)
	}
	return nil
}

func (_u *HomePageUpdateOne) sqlSave(ctx context.Context) (_node *HomePage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(homepage.Table, homepage.Columns, sqlgraph.NewFieldSpec(homepage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "HomePage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, homepage.FieldID)
		for _, f := range fields {
			if !homepage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != homepage.FieldID {
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
		_spec.SetField(homepage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   homepage.NodeTable,
			Columns: []string{homepage.NodeColumn},
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
			Table:   homepage.NodeTable,
			Columns: []string{homepage.NodeColumn},
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
	if _u.mutation.CarouselItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   homepage.CarouselItemsTable,
			Columns: []string{homepage.CarouselItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCarouselItemsIDs(); len(nodes) > 0 && !_u.mutation.CarouselItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   homepage.CarouselItemsTable,
			Columns: []string{homepage.CarouselItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CarouselItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   homepage.CarouselItemsTable,
			Columns: []string{homepage.CarouselItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HomePage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{homepage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
