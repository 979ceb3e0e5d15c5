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
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
)

// BlogIndexPageUpdate is the builder for updating BlogIndexPage entities.
type BlogIndexPageUpdate struct {
	config
	hooks    []Hook
	mutation *BlogIndexPageMutation
}

// Where appends a list predicates to the BlogIndexPageUpdate builder.
func (_u *BlogIndexPageUpdate) Where(ps ...predicate.BlogIndexPage) *BlogIndexPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogIndexPageUpdate) SetUpdatedAt(v time.Time) *BlogIndexPageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *BlogIndexPageUpdate) SetNodeID(v uuid.UUID) *BlogIndexPageUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *BlogIndexPageUpdate) SetNillableNodeID(v *uuid.UUID) *BlogIndexPageUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *BlogIndexPageUpdate) SetIntro(v string) *BlogIndexPageUpdate {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *BlogIndexPageUpdate) SetNillableIntro(v *string) *BlogIndexPageUpdate {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *BlogIndexPageUpdate) ClearIntro() *BlogIndexPageUpdate {
	_u.mutation.ClearIntro()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *BlogIndexPageUpdate) SetNode(v *Node) *BlogIndexPageUpdate {
	return _u.SetNodeID(v.ID)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_u *BlogIndexPageUpdate) AddRelatedLinkIDs(ids ...uuid.UUID) *BlogIndexPageUpdate {
	_u.mutation.AddRelatedLinkIDs(ids...)
	return _u
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_u *BlogIndexPageUpdate) AddRelatedLinks(v ...*RelatedLink) *BlogIndexPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelatedLinkIDs(ids...)
}

// Mutation returns the BlogIndexPageMutation object of the builder.
func (_u *BlogIndexPageUpdate) Mutation() *BlogIndexPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *BlogIndexPageUpdate) ClearNode() *BlogIndexPageUpdate {
	_u.mutation.ClearNode()
	return _u
}

// ClearRelatedLinks clears all "related_links" edges to the RelatedLink entity.
func (_u *BlogIndexPageUpdate) ClearRelatedLinks() *BlogIndexPageUpdate {
	_u.mutation.ClearRelatedLinks()
	return _u
}

// RemoveRelatedLinkIDs removes the "related_links" edge to RelatedLink entities by IDs.
func (_u *BlogIndexPageUpdate) RemoveRelatedLinkIDs(ids ...uuid.UUID) *BlogIndexPageUpdate {
	_u.mutation.RemoveRelatedLinkIDs(ids...)
	return _u
}

// RemoveRelatedLinks removes "related_links" edges to RelatedLink entities.
func (_u *BlogIndexPageUpdate) RemoveRelatedLinks(v ...*RelatedLink) *BlogIndexPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelatedLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlogIndexPageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogIndexPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlogIndexPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogIndexPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogIndexPageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogindexpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogIndexPageUpdate) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BlogIndexPage.node"`)
	}
	return nil
}

func (_u *BlogIndexPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogindexpage.Table, blogindexpage.Columns, sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blogindexpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(blogindexpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(blogindexpage.FieldIntro, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   blogindexpage.NodeTable,
			Columns: []string{blogindexpage.NodeColumn},
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
			Table:   blogindexpage.NodeTable,
			Columns: []string{blogindexpage.NodeColumn},
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
	if _u.mutation.RelatedLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogindexpage.RelatedLinksTable,
			Columns: []string{blogindexpage.RelatedLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelatedLinksIDs(); len(nodes) > 0 && !_u.mutation.RelatedLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogindexpage.RelatedLinksTable,
			Columns: []string{blogindexpage.RelatedLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelatedLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogindexpage.RelatedLinksTable,
			Columns: []string{blogindexpage.RelatedLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogindexpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlogIndexPageUpdateOne is the builder for updating a single BlogIndexPage entity.
type BlogIndexPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlogIndexPageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogIndexPageUpdateOne) SetUpdatedAt(v time.Time) *BlogIndexPageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *BlogIndexPageUpdateOne) SetNodeID(v uuid.UUID) *BlogIndexPageUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *BlogIndexPageUpdateOne) SetNillableNodeID(v *uuid.UUID) *BlogIndexPageUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *BlogIndexPageUpdateOne) SetIntro(v string) *BlogIndexPageUpdateOne {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *BlogIndexPageUpdateOne) SetNillableIntro(v *string) *BlogIndexPageUpdateOne {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *BlogIndexPageUpdateOne) ClearIntro() *BlogIndexPageUpdateOne {
	_u.mutation.ClearIntro()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *BlogIndexPageUpdateOne) SetNode(v *Node) *BlogIndexPageUpdateOne {
	return _u.SetNodeID(v.ID)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_u *BlogIndexPageUpdateOne) AddRelatedLinkIDs(ids ...uuid.UUID) *BlogIndexPageUpdateOne {
	_u.mutation.AddRelatedLinkIDs(ids...)
	return _u
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_u *BlogIndexPageUpdateOne) AddRelatedLinks(v ...*RelatedLink) *BlogIndexPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelatedLinkIDs(ids...)
}

// Mutation returns the BlogIndexPageMutation object of the builder.
func (_u *BlogIndexPageUpdateOne) Mutation() *BlogIndexPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *BlogIndexPageUpdateOne) ClearNode() *BlogIndexPageUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// ClearRelatedLinks clears all "related_links" edges to the RelatedLink entity.
func (_u *BlogIndexPageUpdateOne) ClearRelatedLinks() *BlogIndexPageUpdateOne {
	_u.mutation.ClearRelatedLinks()
	return _u
}

// RemoveRelatedLinkIDs removes the "related_links" edge to RelatedLink entities by IDs.
func (_u *BlogIndexPageUpdateOne) RemoveRelatedLinkIDs(ids ...uuid.UUID) *BlogIndexPageUpdateOne {
	_u.mutation.RemoveRelatedLinkIDs(ids...)
	return _u
}

// RemoveRelatedLinks removes "related_links" edges to RelatedLink entities.
func (_u *BlogIndexPageUpdateOne) RemoveRelatedLinks(v ...*RelatedLink) *BlogIndexPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelatedLinkIDs(ids...)
}

// Where appends a list predicates to the BlogIndexPageUpdate builder.
func (_u *BlogIndexPageUpdateOne) Where(ps ...predicate.BlogIndexPage) *BlogIndexPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlogIndexPageUpdateOne) Select(field string, fields ...string) *BlogIndexPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlogIndexPage entity.
func (_u *BlogIndexPageUpdateOne) Save(ctx context.Context) (*BlogIndexPage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogIndexPageUpdateOne) SaveX(ctx context.Context) *BlogIndexPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlogIndexPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogIndexPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogIndexPageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogindexpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogIndexPageUpdateOne) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BlogIndexPage.node"`)
	}
	return nil
}

func (_u *BlogIndexPageUpdateOne) sqlSave(ctx context.Context) (_node *BlogIndexPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogindexpage.Table, blogindexpage.Columns, sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BlogIndexPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blogindexpage.FieldID)
		for _, f := range fields {
			if !blogindexpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != blogindexpage.FieldID {
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
		_spec.SetField(blogindexpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(blogindexpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(blogindexpage.FieldIntro, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   blogindexpage.NodeTable,
			Columns: []string{blogindexpage.NodeColumn},
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
			Table:   blogindexpage.NodeTable,
			Columns: []string{blogindexpage.NodeColumn},
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
	if _u.mutation.RelatedLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogindexpage.RelatedLinksTable,
			Columns: []string{blogindexpage.RelatedLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelatedLinksIDs(); len(nodes) > 0 && !_u.mutation.RelatedLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogindexpage.RelatedLinksTable,
			Columns: []string{blogindexpage.RelatedLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelatedLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogindexpage.RelatedLinksTable,
			Columns: []string{blogindexpage.RelatedLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BlogIndexPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogindexpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
