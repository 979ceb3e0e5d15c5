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
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/workpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workscreenshot"
)

// WorkPageUpdate is the builder for updating WorkPage entities.
type WorkPageUpdate struct {
	config
	hooks    []Hook
	mutation *WorkPageMutation
}

// Where appends a list predicates to the WorkPageUpdate builder.
func (_u *WorkPageUpdate) Where(ps ...predicate.WorkPage) *WorkPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkPageUpdate) SetUpdatedAt(v time.Time) *WorkPageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *WorkPageUpdate) SetNodeID(v uuid.UUID) *WorkPageUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *WorkPageUpdate) SetNillableNodeID(v *uuid.UUID) *WorkPageUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkPageUpdate) SetSummary(v string) *WorkPageUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkPageUpdate) SetNillableSummary(v *string) *WorkPageUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *WorkPageUpdate) SetIntro(v string) *WorkPageUpdate {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *WorkPageUpdate) SetNillableIntro(v *string) *WorkPageUpdate {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *WorkPageUpdate) ClearIntro() *WorkPageUpdate {
	_u.mutation.ClearIntro()
	return _u
}

// SetBody sets the "body" field.
func (_u *WorkPageUpdate) SetBody(v string) *WorkPageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *WorkPageUpdate) SetNillableBody(v *string) *WorkPageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *WorkPageUpdate) ClearBody() *WorkPageUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *WorkPageUpdate) SetNode(v *Node) *WorkPageUpdate {
	return _u.SetNodeID(v.ID)
}

// AddScreenshotIDs adds the "screenshots" edge to the WorkScreenshot entity by IDs.
func (_u *WorkPageUpdate) AddScreenshotIDs(ids ...uuid.UUID) *WorkPageUpdate {
	_u.mutation.AddScreenshotIDs(ids...)
	return _u
}

// AddScreenshots adds the "screenshots" edges to the WorkScreenshot entity.
func (_u *WorkPageUpdate) AddScreenshots(v ...*WorkScreenshot) *WorkPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScreenshotIDs(ids...)
}

// Mutation returns the WorkPageMutation object of the builder.
func (_u *WorkPageUpdate) Mutation() *WorkPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *WorkPageUpdate) ClearNode() *WorkPageUpdate {
	_u.mutation.ClearNode()
	return _u
}

// ClearScreenshots clears all "screenshots" edges to the WorkScreenshot entity.
func (_u *WorkPageUpdate) ClearScreenshots() *WorkPageUpdate {
	_u.mutation.ClearScreenshots()
	return _u
}

// RemoveScreenshotIDs removes the "screenshots" edge to WorkScreenshot entities by IDs.
func (_u *WorkPageUpdate) RemoveScreenshotIDs(ids ...uuid.UUID) *WorkPageUpdate {
	_u.mutation.RemoveScreenshotIDs(ids...)
	return _u
}

// RemoveScreenshots removes "screenshots" edges to WorkScreenshot entities.
func (_u *WorkPageUpdate) RemoveScreenshots(v ...*WorkScreenshot) *WorkPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScreenshotIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkPageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkPageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkPageUpdate) check() error {
	if v, ok := _u.mutation.Summary(); ok {
		if err := workpage.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`repo: validator failed for field "WorkPage.summary": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "WorkPage.node"`)
	}
	return nil
}

func (_u *WorkPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workpage.Table, workpage.Columns, sqlgraph.NewFieldSpec(workpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workpage.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(workpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(workpage.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(workpage.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(workpage.FieldBody, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   workpage.NodeTable,
			Columns: []string{workpage.NodeColumn},
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
			Table:   workpage.NodeTable,
			Columns: []string{workpage.NodeColumn},
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
	if _u.mutation.ScreenshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workpage.ScreenshotsTable,
			Columns: []string{workpage.ScreenshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScreenshotsIDs(); len(nodes) > 0 && !_u.mutation.ScreenshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workpage.ScreenshotsTable,
			Columns: []string{workpage.ScreenshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScreenshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workpage.ScreenshotsTable,
			Columns: []string{workpage.ScreenshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkPageUpdateOne is the builder for updating a single WorkPage entity.
type WorkPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkPageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkPageUpdateOne) SetUpdatedAt(v time.Time) *WorkPageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *WorkPageUpdateOne) SetNodeID(v uuid.UUID) *WorkPageUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *WorkPageUpdateOne) SetNillableNodeID(v *uuid.UUID) *WorkPageUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkPageUpdateOne) SetSummary(v string) *WorkPageUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkPageUpdateOne) SetNillableSummary(v *string) *WorkPageUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *WorkPageUpdateOne) SetIntro(v string) *WorkPageUpdateOne {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *WorkPageUpdateOne) SetNillableIntro(v *string) *WorkPageUpdateOne {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *WorkPageUpdateOne) ClearIntro() *WorkPageUpdateOne {
	_u.mutation.ClearIntro()
	return _u
}

// SetBody sets the "body" field.
func (_u *WorkPageUpdateOne) SetBody(v string) *WorkPageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *WorkPageUpdateOne) SetNillableBody(v *string) *WorkPageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *WorkPageUpdateOne) ClearBody() *WorkPageUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *WorkPageUpdateOne) SetNode(v *Node) *WorkPageUpdateOne {
	return _u.SetNodeID(v.ID)
}

// AddScreenshotIDs adds the "screenshots" edge to the WorkScreenshot entity by IDs.
func (_u *WorkPageUpdateOne) AddScreenshotIDs(ids ...uuid.UUID) *WorkPageUpdateOne {
	_u.mutation.AddScreenshotIDs(ids...)
	return _u
}

// AddScreenshots adds the "screenshots" edges to the WorkScreenshot entity.
func (_u *WorkPageUpdateOne) AddScreenshots(v ...*WorkScreenshot) *WorkPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScreenshotIDs(ids...)
}

// Mutation returns the WorkPageMutation object of the builder.
func (_u *WorkPageUpdateOne) Mutation() *WorkPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *WorkPageUpdateOne) ClearNode() *WorkPageUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// ClearScreenshots clears all "screenshots" edges to the WorkScreenshot entity.
func (_u *WorkPageUpdateOne) ClearScreenshots() *WorkPageUpdateOne {
	_u.mutation.ClearScreenshots()
	return _u
}

// RemoveScreenshotIDs removes the "screenshots" edge to WorkScreenshot entities by IDs.
func (_u *WorkPageUpdateOne) RemoveScreenshotIDs(ids ...uuid.UUID) *WorkPageUpdateOne {
	_u.mutation.RemoveScreenshotIDs(ids...)
	return _u
}

// RemoveScreenshots removes "screenshots" edges to WorkScreenshot entities.
func (_u *WorkPageUpdateOne) RemoveScreenshots(v ...*WorkScreenshot) *WorkPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScreenshotIDs(ids...)
}

// Where appends a list predicates to the WorkPageUpdate builder.
func (_u *WorkPageUpdateOne) Where(ps ...predicate.WorkPage) *WorkPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkPageUpdateOne) Select(field string, fields ...string) *WorkPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkPage entity.
func (_u *WorkPageUpdateOne) Save(ctx context.Context) (*WorkPage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkPageUpdateOne) SaveX(ctx context.Context) *WorkPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkPageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkPageUpdateOne) check() error {
	if v, ok := _u.mutation.Summary(); ok {
		if err := workpage.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`repo: validator failed for field "WorkPage.summary": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "WorkPage.node"`)
	}
	return nil
}

func (_u *WorkPageUpdateOne) sqlSave(ctx context.Context) (_node *WorkPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workpage.Table, workpage.Columns, sqlgraph.NewFieldSpec(workpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WorkPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workpage.FieldID)
		for _, f := range fields {
			if !workpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != workpage.FieldID {
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
		_spec.SetField(workpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workpage.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(workpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(workpage.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(workpage.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(workpage.FieldBody, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   workpage.NodeTable,
			Columns: []string{workpage.NodeColumn},
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
			Table:   workpage.NodeTable,
			Columns: []string{workpage.NodeColumn},
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
	if _u.mutation.ScreenshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workpage.ScreenshotsTable,
			Columns: []string{workpage.ScreenshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScreenshotsIDs(); len(nodes) > 0 && !_u.mutation.ScreenshotsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workpage.ScreenshotsTable,
			Columns: []string{workpage.ScreenshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScreenshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workpage.ScreenshotsTable,
			Columns: []string{workpage.ScreenshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
