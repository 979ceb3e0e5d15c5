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
	"github.com/helenb/wagtail-torchbox/internal/repo/advert"
	"github.com/helenb/wagtail-torchbox/internal/repo/advertplacement"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// AdvertUpdate is the builder for updating Advert entities.
type AdvertUpdate struct {
	config
	hooks    []Hook
	mutation *AdvertMutation
}

// Where appends a list predicates to the AdvertUpdate builder.
func (_u *AdvertUpdate) Where(ps ...predicate.Advert) *AdvertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdvertUpdate) SetUpdatedAt(v time.Time) *AdvertUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetText sets the "text" field.
func (_u *AdvertUpdate) SetText(v string) *AdvertUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *AdvertUpdate) SetNillableText(v *string) *AdvertUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *AdvertUpdate) SetURL(v string) *AdvertUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *AdvertUpdate) SetNillableURL(v *string) *AdvertUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *AdvertUpdate) ClearURL() *AdvertUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *AdvertUpdate) SetNodeID(v uuid.UUID) *AdvertUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *AdvertUpdate) SetNillableNodeID(v *uuid.UUID) *AdvertUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// ClearNodeID clears the value of the "node_id" field.
func (_u *AdvertUpdate) ClearNodeID() *AdvertUpdate {
	_u.mutation.ClearNodeID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *AdvertUpdate) SetNode(v *Node) *AdvertUpdate {
	return _u.SetNodeID(v.ID)
}

// AddPlacementIDs adds the "placements" edge to the AdvertPlacement entity by IDs.
func (_u *AdvertUpdate) AddPlacementIDs(ids ...uuid.UUID) *AdvertUpdate {
	_u.mutation.AddPlacementIDs(ids...)
	return _u
}

// AddPlacements adds the "placements" edges to the AdvertPlacement entity.
func (_u *AdvertUpdate) AddPlacements(v ...*AdvertPlacement) *AdvertUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlacementIDs(ids...)
}

// Mutation returns the AdvertMutation object of the builder.
func (_u *AdvertUpdate) Mutation() *AdvertMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *AdvertUpdate) ClearNode() *AdvertUpdate {
	_u.mutation.ClearNode()
	return _u
}

// ClearPlacements clears all "placements" edges to the AdvertPlacement entity.
func (_u *AdvertUpdate) ClearPlacements() *AdvertUpdate {
	_u.mutation.ClearPlacements()
	return _u
}

// RemovePlacementIDs removes the "placements" edge to AdvertPlacement entities by IDs.
func (_u *AdvertUpdate) RemovePlacementIDs(ids ...uuid.UUID) *AdvertUpdate {
	_u.mutation.RemovePlacementIDs(ids...)
	return _u
}

// RemovePlacements removes "placements" edges to AdvertPlacement entities.
func (_u *AdvertUpdate) RemovePlacements(v ...*AdvertPlacement) *AdvertUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlacementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdvertUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdvertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdvertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdvertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdvertUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := advert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdvertUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := advert.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "Advert.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := advert.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`repo: validator failed for field "Advert.url": %w`, err)}
		}
	}
	return nil
}

func (_u *AdvertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(advert.Table, advert.Columns, sqlgraph.NewFieldSpec(advert.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(advert.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(advert.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(advert.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(advert.FieldURL, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   advert.NodeTable,
			Columns: []string{advert.NodeColumn},
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
			Table:   advert.NodeTable,
			Columns: []string{advert.NodeColumn},
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
	if _u.mutation.PlacementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   advert.PlacementsTable,
			Columns: []string{advert.PlacementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlacementsIDs(); len(nodes) > 0 && !_u.mutation.PlacementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   advert.PlacementsTable,
			Columns: []string{advert.PlacementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlacementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   advert.PlacementsTable,
			Columns: []string{advert.PlacementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdvertUpdateOne is the builder for updating a single Advert entity.
type AdvertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdvertMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdvertUpdateOne) SetUpdatedAt(v time.Time) *AdvertUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetText sets the "text" field.
func (_u *AdvertUpdateOne) SetText(v string) *AdvertUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *AdvertUpdateOne) SetNillableText(v *string) *AdvertUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *AdvertUpdateOne) SetURL(v string) *AdvertUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *AdvertUpdateOne) SetNillableURL(v *string) *AdvertUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *AdvertUpdateOne) ClearURL() *AdvertUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *AdvertUpdateOne) SetNodeID(v uuid.UUID) *AdvertUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *AdvertUpdateOne) SetNillableNodeID(v *uuid.UUID) *AdvertUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// ClearNodeID clears the value of the "node_id" field.
func (_u *AdvertUpdateOne) ClearNodeID() *AdvertUpdateOne {
	_u.mutation.ClearNodeID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *AdvertUpdateOne) SetNode(v *Node) *AdvertUpdateOne {
	return _u.SetNodeID(v.ID)
}

// AddPlacementIDs adds the "placements" edge to the AdvertPlacement entity by IDs.
func (_u *AdvertUpdateOne) AddPlacementIDs(ids ...uuid.UUID) *AdvertUpdateOne {
	_u.mutation.AddPlacementIDs(ids...)
	return _u
}

// AddPlacements adds the "placements" edges to the AdvertPlacement entity.
func (_u *AdvertUpdateOne) AddPlacements(v ...*AdvertPlacement) *AdvertUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlacementIDs(ids...)
}

// Mutation returns the AdvertMutation object of the builder.
func (_u *AdvertUpdateOne) Mutation() *AdvertMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *AdvertUpdateOne) ClearNode() *AdvertUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// ClearPlacements clears all "placements" edges to the AdvertPlacement entity.
func (_u *AdvertUpdateOne) ClearPlacements() *AdvertUpdateOne {
	_u.mutation.ClearPlacements()
	return _u
}

// RemovePlacementIDs removes the "placements" edge to AdvertPlacement entities by IDs.
func (_u *AdvertUpdateOne) RemovePlacementIDs(ids ...uuid.UUID) *AdvertUpdateOne {
	_u.mutation.RemovePlacementIDs(ids...)
	return _u
}

// RemovePlacements removes "placements" edges to AdvertPlacement entities.
func (_u *AdvertUpdateOne) RemovePlacements(v ...*AdvertPlacement) *AdvertUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlacementIDs(ids...)
}

// Where appends a list predicates to the AdvertUpdate builder.
func (_u *AdvertUpdateOne) Where(ps ...predicate.Advert) *AdvertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdvertUpdateOne) Select(field string, fields ...string) *AdvertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Advert entity.
func (_u *AdvertUpdateOne) Save(ctx context.Context) (*Advert, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdvertUpdateOne) SaveX(ctx context.Context) *Advert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdvertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdvertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdvertUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := advert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdvertUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := advert.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "Advert.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := advert.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`repo: validator failed for field "Advert.url": %w`, err)}
		}
	}
	return nil
}

func (_u *AdvertUpdateOne) sqlSave(ctx context.Context) (_node *Advert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(advert.Table, advert.Columns, sqlgraph.NewFieldSpec(advert.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Advert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, advert.FieldID)
		for _, f := range fields {
			if !advert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != advert.FieldID {
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
		_spec.SetField(advert.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(advert.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(advert.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(advert.FieldURL, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   advert.NodeTable,
			Columns: []string{advert.NodeColumn},
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
			Table:   advert.NodeTable,
			Columns: []string{advert.NodeColumn},
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
	if _u.mutation.PlacementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   advert.PlacementsTable,
			Columns: []string{advert.PlacementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlacementsIDs(); len(nodes) > 0 && !_u.mutation.PlacementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   advert.PlacementsTable,
			Columns: []string{advert.PlacementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlacementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   advert.PlacementsTable,
			Columns: []string{advert.PlacementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Advert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
