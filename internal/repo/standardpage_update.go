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
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
)

// StandardPageUpdate is the builder for updating StandardPage entities.
type StandardPageUpdate struct {
	config
	hooks    []Hook
	mutation *StandardPageMutation
}

// Where appends a list predicates to the StandardPageUpdate builder.
func (_u *StandardPageUpdate) Where(ps ...predicate.StandardPage) *StandardPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StandardPageUpdate) SetUpdatedAt(v time.Time) *StandardPageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *StandardPageUpdate) SetNodeID(v uuid.UUID) *StandardPageUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *StandardPageUpdate) SetNillableNodeID(v *uuid.UUID) *StandardPageUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *StandardPageUpdate) SetIntro(v string) *StandardPageUpdate {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *StandardPageUpdate) SetNillableIntro(v *string) *StandardPageUpdate {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *StandardPageUpdate) ClearIntro() *StandardPageUpdate {
	_u.mutation.ClearIntro()
	return _u
}

// SetBody sets the "body" field.
func (_u *StandardPageUpdate) SetBody(v string) *StandardPageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *StandardPageUpdate) SetNillableBody(v *string) *StandardPageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *StandardPageUpdate) ClearBody() *StandardPageUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetFeedImageID sets the "feed_image_id" field.
func (_u *StandardPageUpdate) SetFeedImageID(v uuid.UUID) *StandardPageUpdate {
	_u.mutation.SetFeedImageID(v)
	return _u
}

// SetNillableFeedImageID sets the "feed_image_id" field if the given value is not nil.
func (_u *StandardPageUpdate) SetNillableFeedImageID(v *uuid.UUID) *StandardPageUpdate {
	if v != nil {
		_u.SetFeedImageID(*v)
	}
	return _u
}

// ClearFeedImageID clears the value of the "feed_image_id" field.
func (_u *StandardPageUpdate) ClearFeedImageID() *StandardPageUpdate {
	_u.mutation.ClearFeedImageID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *StandardPageUpdate) SetNode(v *Node) *StandardPageUpdate {
	return _u.SetNodeID(v.ID)
}

// SetFeedImage sets the "feed_image" edge to the Image entity.
func (_u *StandardPageUpdate) SetFeedImage(v *Image) *StandardPageUpdate {
	return _u.SetFeedImageID(v.ID)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_u *StandardPageUpdate) AddRelatedLinkIDs(ids ...uuid.UUID) *StandardPageUpdate {
	_u.mutation.AddRelatedLinkIDs(ids...)
	return _u
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_u *StandardPageUpdate) AddRelatedLinks(v ...*RelatedLink) *StandardPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelatedLinkIDs(ids...)
}

// Mutation returns the StandardPageMutation object of the builder.
func (_u *StandardPageUpdate) Mutation() *StandardPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *StandardPageUpdate) ClearNode() *StandardPageUpdate {
	_u.mutation.ClearNode()
	return _u
}

// ClearFeedImage clears the "feed_image" edge to the Image entity.
func (_u *StandardPageUpdate) ClearFeedImage() *StandardPageUpdate {
	_u.mutation.ClearFeedImage()
	return _u
}

// ClearRelatedLinks clears all "related_links" edges to the RelatedLink entity.
func (_u *StandardPageUpdate) ClearRelatedLinks() *StandardPageUpdate {
	_u.mutation.ClearRelatedLinks()
	return _u
}

// RemoveRelatedLinkIDs removes the "related_links" edge to RelatedLink entities by IDs.
func (_u *StandardPageUpdate) RemoveRelatedLinkIDs(ids ...uuid.UUID) *StandardPageUpdate {
	_u.mutation.RemoveRelatedLinkIDs(ids...)
	return _u
}

// RemoveRelatedLinks removes "related_links" edges to RelatedLink entities.
func (_u *StandardPageUpdate) RemoveRelatedLinks(v ...*RelatedLink) *StandardPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelatedLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StandardPageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandardPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StandardPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandardPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StandardPageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := standardpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandardPageUpdate) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StandardPage.node"`)
	}
	return nil
}

func (_u *StandardPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(standardpage.Table, standardpage.Columns, sqlgraph.NewFieldSpec(standardpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(standardpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(standardpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(standardpage.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(standardpage.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(standardpage.FieldBody, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   standardpage.NodeTable,
			Columns: []string{standardpage.NodeColumn},
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
			Table:   standardpage.NodeTable,
			Columns: []string{standardpage.NodeColumn},
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
	if _u.mutation.FeedImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   standardpage.FeedImageTable,
			Columns: []string{standardpage.FeedImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   standardpage.FeedImageTable,
			Columns: []string{standardpage.FeedImageColumn},
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
	if _u.mutation.RelatedLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   standardpage.RelatedLinksTable,
			Columns: []string{standardpage.RelatedLinksColumn},
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
			Table:   standardpage.RelatedLinksTable,
			Columns: []string{standardpage.RelatedLinksColumn},
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
			Table:   standardpage.RelatedLinksTable,
			Columns: []string{standardpage.RelatedLinksColumn},
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
			err = &NotFoundError{standardpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StandardPageUpdateOne is the builder for updating a single StandardPage entity.
type StandardPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StandardPageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StandardPageUpdateOne) SetUpdatedAt(v time.Time) *StandardPageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *StandardPageUpdateOne) SetNodeID(v uuid.UUID) *StandardPageUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *StandardPageUpdateOne) SetNillableNodeID(v *uuid.UUID) *StandardPageUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *StandardPageUpdateOne) SetIntro(v string) *StandardPageUpdateOne {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *StandardPageUpdateOne) SetNillableIntro(v *string) *StandardPageUpdateOne {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *StandardPageUpdateOne) ClearIntro() *StandardPageUpdateOne {
	_u.mutation.ClearIntro()
	return _u
}

// SetBody sets the "body" field.
func (_u *StandardPageUpdateOne) SetBody(v string) *StandardPageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *StandardPageUpdateOne) SetNillableBody(v *string) *StandardPageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *StandardPageUpdateOne) ClearBody() *StandardPageUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetFeedImageID sets the "feed_image_id" field.
func (_u *StandardPageUpdateOne) SetFeedImageID(v uuid.UUID) *StandardPageUpdateOne {
	_u.mutation.SetFeedImageID(v)
	return _u
}

// SetNillableFeedImageID sets the "feed_image_id" field if the given value is not nil.
func (_u *StandardPageUpdateOne) SetNillableFeedImageID(v *uuid.UUID) *StandardPageUpdateOne {
	if v != nil {
		_u.SetFeedImageID(*v)
	}
	return _u
}

// ClearFeedImageID clears the value of the "feed_image_id" field.
func (_u *StandardPageUpdateOne) ClearFeedImageID() *StandardPageUpdateOne {
	_u.mutation.ClearFeedImageID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *StandardPageUpdateOne) SetNode(v *Node) *StandardPageUpdateOne {
	return _u.SetNodeID(v.ID)
}

// SetFeedImage sets the "feed_image" edge to the Image entity.
func (_u *StandardPageUpdateOne) SetFeedImage(v *Image) *StandardPageUpdateOne {
	return _u.SetFeedImageID(v.ID)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_u *StandardPageUpdateOne) AddRelatedLinkIDs(ids ...uuid.UUID) *StandardPageUpdateOne {
	_u.mutation.AddRelatedLinkIDs(ids...)
	return _u
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_u *StandardPageUpdateOne) AddRelatedLinks(v ...*RelatedLink) *StandardPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelatedLinkIDs(ids...)
}

// Mutation returns the StandardPageMutation object of the builder.
func (_u *StandardPageUpdateOne) Mutation() *StandardPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *StandardPageUpdateOne) ClearNode() *StandardPageUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// ClearFeedImage clears the "feed_image" edge to the Image entity.
func (_u *StandardPageUpdateOne) ClearFeedImage() *StandardPageUpdateOne {
	_u.mutation.ClearFeedImage()
	return _u
}

// ClearRelatedLinks clears all "related_links" edges to the RelatedLink entity.
func (_u *StandardPageUpdateOne) ClearRelatedLinks() *StandardPageUpdateOne {
	_u.mutation.ClearRelatedLinks()
	return _u
}

// RemoveRelatedLinkIDs removes the "related_links" edge to RelatedLink entities by IDs.
func (_u *StandardPageUpdateOne) RemoveRelatedLinkIDs(ids ...uuid.UUID) *StandardPageUpdateOne {
	_u.mutation.RemoveRelatedLinkIDs(ids...)
	return _u
}

// RemoveRelatedLinks removes "related_links" edges to RelatedLink entities.
func (_u *StandardPageUpdateOne) RemoveRelatedLinks(v ...*RelatedLink) *StandardPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelatedLinkIDs(ids...)
}

// Where appends a list predicates to the StandardPageUpdate builder.
func (_u *StandardPageUpdateOne) Where(ps ...predicate.StandardPage) *StandardPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StandardPageUpdateOne) Select(field string, fields ...string) *StandardPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StandardPage entity.
func (_u *StandardPageUpdateOne) Save(ctx context.Context) (*StandardPage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandardPageUpdateOne) SaveX(ctx context.Context) *StandardPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StandardPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandardPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StandardPageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := standardpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandardPageUpdateOne) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StandardPage.node"`)
	}
	return nil
}

func (_u *StandardPageUpdateOne) sqlSave(ctx context.Context) (_node *StandardPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(standardpage.Table, standardpage.Columns, sqlgraph.NewFieldSpec(standardpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "StandardPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, standardpage.FieldID)
		for _, f := range fields {
			if !standardpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != standardpage.FieldID {
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
		_spec.SetField(standardpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(standardpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(standardpage.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(standardpage.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(standardpage.FieldBody, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   standardpage.NodeTable,
			Columns: []string{standardpage.NodeColumn},
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
			Table:   standardpage.NodeTable,
			Columns: []string{standardpage.NodeColumn},
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
	if _u.mutation.FeedImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   standardpage.FeedImageTable,
			Columns: []string{standardpage.FeedImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   standardpage.FeedImageTable,
			Columns: []string{standardpage.FeedImageColumn},
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
	if _u.mutation.RelatedLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   standardpage.RelatedLinksTable,
			Columns: []string{standardpage.RelatedLinksColumn},
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
			Table:   standardpage.RelatedLinksTable,
			Columns: []string{standardpage.RelatedLinksColumn},
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
			Table:   standardpage.RelatedLinksTable,
			Columns: []string{standardpage.RelatedLinksColumn},
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
	_node = &StandardPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{standardpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
