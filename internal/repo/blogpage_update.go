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
	"github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/tag"
)

// BlogPageUpdate is the builder for updating BlogPage entities.
type BlogPageUpdate struct {
	config
	hooks    []Hook
	mutation *BlogPageMutation
}

// Where appends a list predicates to the BlogPageUpdate builder.
func (_u *BlogPageUpdate) Where(ps ...predicate.BlogPage) *BlogPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogPageUpdate) SetUpdatedAt(v time.Time) *BlogPageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *BlogPageUpdate) SetNodeID(v uuid.UUID) *BlogPageUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *BlogPageUpdate) SetNillableNodeID(v *uuid.UUID) *BlogPageUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *BlogPageUpdate) SetIntro(v string) *BlogPageUpdate {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *BlogPageUpdate) SetNillableIntro(v *string) *BlogPageUpdate {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *BlogPageUpdate) ClearIntro() *BlogPageUpdate {
	_u.mutation.ClearIntro()
	return _u
}

// SetBody sets the "body" field.
func (_u *BlogPageUpdate) SetBody(v string) *BlogPageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *BlogPageUpdate) SetNillableBody(v *string) *BlogPageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *BlogPageUpdate) SetDate(v time.Time) *BlogPageUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BlogPageUpdate) SetNillableDate(v *time.Time) *BlogPageUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetFeedImageID sets the "feed_image_id" field.
func (_u *BlogPageUpdate) SetFeedImageID(v uuid.UUID) *BlogPageUpdate {
	_u.mutation.SetFeedImageID(v)
	return _u
}

// SetNillableFeedImageID sets the "feed_image_id" field if the given value is not nil.
func (_u *BlogPageUpdate) SetNillableFeedImageID(v *uuid.UUID) *BlogPageUpdate {
	if v != nil {
		_u.SetFeedImageID(*v)
	}
	return _u
}

// ClearFeedImageID clears the value of the "feed_image_id" field.
func (_u *BlogPageUpdate) ClearFeedImageID() *BlogPageUpdate {
	_u.mutation.ClearFeedImageID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *BlogPageUpdate) SetNode(v *Node) *BlogPageUpdate {
	return _u.SetNodeID(v.ID)
}

// SetFeedImage sets the "feed_image" edge to the Image entity.
func (_u *BlogPageUpdate) SetFeedImage(v *Image) *BlogPageUpdate {
	return _u.SetFeedImageID(v.ID)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *BlogPageUpdate) AddTagIDs(ids ...uuid.UUID) *BlogPageUpdate {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *BlogPageUpdate) AddTags(v ...*Tag) *BlogPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_u *BlogPageUpdate) AddRelatedLinkIDs(ids ...uuid.UUID) *BlogPageUpdate {
	_u.mutation.AddRelatedLinkIDs(ids...)
	return _u
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_u *BlogPageUpdate) AddRelatedLinks(v ...*RelatedLink) *BlogPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelatedLinkIDs(ids...)
}

// AddAuthorshipIDs adds the "authorships" edge to the BlogAuthorship entity by IDs.
func (_u *BlogPageUpdate) AddAuthorshipIDs(ids ...uuid.UUID) *BlogPageUpdate {
	_u.mutation.AddAuthorshipIDs(ids...)
	return _u
}

// AddAuthorships adds the "authorships" edges to the BlogAuthorship entity.
func (_u *BlogPageUpdate) AddAuthorships(v ...*BlogAuthorship) *BlogPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthorshipIDs(ids...)
}

// Mutation returns the BlogPageMutation object of the builder.
func (_u *BlogPageUpdate) Mutation() *BlogPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *BlogPageUpdate) ClearNode() *BlogPageUpdate {
	_u.mutation.ClearNode()
	return _u
}

// ClearFeedImage clears the "feed_image" edge to the Image entity.
func (_u *BlogPageUpdate) ClearFeedImage() *BlogPageUpdate {
	_u.mutation.ClearFeedImage()
	return _u
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *BlogPageUpdate) ClearTags() *BlogPageUpdate {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *BlogPageUpdate) RemoveTagIDs(ids ...uuid.UUID) *BlogPageUpdate {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *BlogPageUpdate) RemoveTags(v ...*Tag) *BlogPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// ClearRelatedLinks clears all "related_links" edges to the RelatedLink entity.
func (_u *BlogPageUpdate) ClearRelatedLinks() *BlogPageUpdate {
	_u.mutation.ClearRelatedLinks()
	return _u
}

// RemoveRelatedLinkIDs removes the "related_links" edge to RelatedLink entities by IDs.
func (_u *BlogPageUpdate) RemoveRelatedLinkIDs(ids ...uuid.UUID) *BlogPageUpdate {
	_u.mutation.RemoveRelatedLinkIDs(ids...)
	return _u
}

// RemoveRelatedLinks removes "related_links" edges to RelatedLink entities.
func (_u *BlogPageUpdate) RemoveRelatedLinks(v ...*RelatedLink) *BlogPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelatedLinkIDs(ids...)
}

// ClearAuthorships clears all "authorships" edges to the BlogAuthorship entity.
func (_u *BlogPageUpdate) ClearAuthorships() *BlogPageUpdate {
	_u.mutation.ClearAuthorships()
	return _u
}

// RemoveAuthorshipIDs removes the "authorships" edge to BlogAuthorship entities by IDs.
func (_u *BlogPageUpdate) RemoveAuthorshipIDs(ids ...uuid.UUID) *BlogPageUpdate {
	_u.mutation.RemoveAuthorshipIDs(ids...)
	return _u
}

// RemoveAuthorships removes "authorships" edges to BlogAuthorship entities.
func (_u *BlogPageUpdate) RemoveAuthorships(v ...*BlogAuthorship) *BlogPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthorshipIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlogPageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlogPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogPageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogPageUpdate) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := blogpage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`repo: validator failed for field "BlogPage.body": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BlogPage.node"`)
	}
	return nil
}

func (_u *BlogPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogpage.Table, blogpage.Columns, sqlgraph.NewFieldSpec(blogpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blogpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(blogpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(blogpage.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(blogpage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(blogpage.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   blogpage.NodeTable,
			Columns: []string{blogpage.NodeColumn},
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
			Table:   blogpage.NodeTable,
			Columns: []string{blogpage.NodeColumn},
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
			Table:   blogpage.FeedImageTable,
			Columns: []string{blogpage.FeedImageColumn},
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
			Table:   blogpage.FeedImageTable,
			Columns: []string{blogpage.FeedImageColumn},
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
	if _u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   blogpage.TagsTable,
			Columns: blogpage.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   blogpage.TagsTable,
			Columns: blogpage.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   blogpage.TagsTable,
			Columns: blogpage.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
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
			Table:   blogpage.RelatedLinksTable,
			Columns: []string{blogpage.RelatedLinksColumn},
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
			Table:   blogpage.RelatedLinksTable,
			Columns: []string{blogpage.RelatedLinksColumn},
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
			Table:   blogpage.RelatedLinksTable,
			Columns: []string{blogpage.RelatedLinksColumn},
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
	if _u.mutation.AuthorshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogpage.AuthorshipsTable,
			Columns: []string{blogpage.AuthorshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthorshipsIDs(); len(nodes) > 0 && !_u.mutation.AuthorshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogpage.AuthorshipsTable,
			Columns: []string{blogpage.AuthorshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorshipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogpage.AuthorshipsTable,
			Columns: []string{blogpage.AuthorshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlogPageUpdateOne is the builder for updating a single BlogPage entity.
type BlogPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlogPageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogPageUpdateOne) SetUpdatedAt(v time.Time) *BlogPageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *BlogPageUpdateOne) SetNodeID(v uuid.UUID) *BlogPageUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *BlogPageUpdateOne) SetNillableNodeID(v *uuid.UUID) *BlogPageUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetIntro sets the "intro" field.
func (_u *BlogPageUpdateOne) SetIntro(v string) *BlogPageUpdateOne {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *BlogPageUpdateOne) SetNillableIntro(v *string) *BlogPageUpdateOne {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *BlogPageUpdateOne) ClearIntro() *BlogPageUpdateOne {
	_u.mutation.ClearIntro()
	return _u
}

// SetBody sets the "body" field.
func (_u *BlogPageUpdateOne) SetBody(v string) *BlogPageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *BlogPageUpdateOne) SetNillableBody(v *string) *BlogPageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *BlogPageUpdateOne) SetDate(v time.Time) *BlogPageUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BlogPageUpdateOne) SetNillableDate(v *time.Time) *BlogPageUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetFeedImageID sets the "feed_image_id" field.
func (_u *BlogPageUpdateOne) SetFeedImageID(v uuid.UUID) *BlogPageUpdateOne {
	_u.mutation.SetFeedImageID(v)
	return _u
}

// SetNillableFeedImageID sets the "feed_image_id" field if the given value is not nil.
func (_u *BlogPageUpdateOne) SetNillableFeedImageID(v *uuid.UUID) *BlogPageUpdateOne {
	if v != nil {
		_u.SetFeedImageID(*v)
	}
	return _u
}

// ClearFeedImageID clears the value of the "feed_image_id" field.
func (_u *BlogPageUpdateOne) ClearFeedImageID() *BlogPageUpdateOne {
	_u.mutation.ClearFeedImageID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *BlogPageUpdateOne) SetNode(v *Node) *BlogPageUpdateOne {
	return _u.SetNodeID(v.ID)
}

// SetFeedImage sets the "feed_image" edge to the Image entity.
func (_u *BlogPageUpdateOne) SetFeedImage(v *Image) *BlogPageUpdateOne {
	return _u.SetFeedImageID(v.ID)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *BlogPageUpdateOne) AddTagIDs(ids ...uuid.UUID) *BlogPageUpdateOne {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *BlogPageUpdateOne) AddTags(v ...*Tag) *BlogPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_u *BlogPageUpdateOne) AddRelatedLinkIDs(ids ...uuid.UUID) *BlogPageUpdateOne {
	_u.mutation.AddRelatedLinkIDs(ids...)
	return _u
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_u *BlogPageUpdateOne) AddRelatedLinks(v ...*RelatedLink) *BlogPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelatedLinkIDs(ids...)
}

// AddAuthorshipIDs adds the "authorships" edge to the BlogAuthorship entity by IDs.
func (_u *BlogPageUpdateOne) AddAuthorshipIDs(ids ...uuid.UUID) *BlogPageUpdateOne {
	_u.mutation.AddAuthorshipIDs(ids...)
	return _u
}

// AddAuthorships adds the "authorships" edges to the BlogAuthorship entity.
func (_u *BlogPageUpdateOne) AddAuthorships(v ...*BlogAuthorship) *BlogPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthorshipIDs(ids...)
}

// Mutation returns the BlogPageMutation object of the builder.
func (_u *BlogPageUpdateOne) Mutation() *BlogPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *BlogPageUpdateOne) ClearNode() *BlogPageUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// ClearFeedImage clears the "feed_image" edge to the Image entity.
func (_u *BlogPageUpdateOne) ClearFeedImage() *BlogPageUpdateOne {
	_u.mutation.ClearFeedImage()
	return _u
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *BlogPageUpdateOne) ClearTags() *BlogPageUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *BlogPageUpdateOne) RemoveTagIDs(ids ...uuid.UUID) *BlogPageUpdateOne {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *BlogPageUpdateOne) RemoveTags(v ...*Tag) *BlogPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// ClearRelatedLinks clears all "related_links" edges to the RelatedLink entity.
func (_u *BlogPageUpdateOne) ClearRelatedLinks() *BlogPageUpdateOne {
	_u.mutation.ClearRelatedLinks()
	return _u
}

// RemoveRelatedLinkIDs removes the "related_links" edge to RelatedLink entities by IDs.
func (_u *BlogPageUpdateOne) RemoveRelatedLinkIDs(ids ...uuid.UUID) *BlogPageUpdateOne {
	_u.mutation.RemoveRelatedLinkIDs(ids...)
	return _u
}

// RemoveRelatedLinks removes "related_links" edges to RelatedLink entities.
func (_u *BlogPageUpdateOne) RemoveRelatedLinks(v ...*RelatedLink) *BlogPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelatedLinkIDs(ids...)
}

// ClearAuthorships clears all "authorships" edges to the BlogAuthorship entity.
func (_u *BlogPageUpdateOne) ClearAuthorships() *BlogPageUpdateOne {
	_u.mutation.ClearAuthorships()
	return _u
}

// RemoveAuthorshipIDs removes the "authorships" edge to BlogAuthorship entities by IDs.
func (_u *BlogPageUpdateOne) RemoveAuthorshipIDs(ids ...uuid.UUID) *BlogPageUpdateOne {
	_u.mutation.RemoveAuthorshipIDs(ids...)
	return _u
}

// RemoveAuthorships removes "authorships" edges to BlogAuthorship entities.
func (_u *BlogPageUpdateOne) RemoveAuthorships(v ...*BlogAuthorship) *BlogPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthorshipIDs(ids...)
}

// Where appends a list predicates to the BlogPageUpdate builder.
func (_u *BlogPageUpdateOne) Where(ps ...predicate.BlogPage) *BlogPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlogPageUpdateOne) Select(field string, fields ...string) *BlogPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlogPage entity.
func (_u *BlogPageUpdateOne) Save(ctx context.Context) (*BlogPage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogPageUpdateOne) SaveX(ctx context.Context) *BlogPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlogPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogPageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogPageUpdateOne) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := blogpage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`repo: validator failed for field "BlogPage.body": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BlogPage.node"`)
	}
	return nil
}

func (_u *BlogPageUpdateOne) sqlSave(ctx context.Context) (_node *BlogPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogpage.Table, blogpage.Columns, sqlgraph.NewFieldSpec(blogpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BlogPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blogpage.FieldID)
		for _, f := range fields {
			if !blogpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != blogpage.FieldID {
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
		_spec.SetField(blogpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(blogpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(blogpage.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(blogpage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(blogpage.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   blogpage.NodeTable,
			Columns: []string{blogpage.NodeColumn},
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
			Table:   blogpage.NodeTable,
			Columns: []string{blogpage.NodeColumn},
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
			Table:   blogpage.FeedImageTable,
			Columns: []string{blogpage.FeedImageColumn},
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
			Table:   blogpage.FeedImageTable,
			Columns: []string{blogpage.FeedImageColumn},
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
	if _u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   blogpage.TagsTable,
			Columns: blogpage.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   blogpage.TagsTable,
			Columns: blogpage.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   blogpage.TagsTable,
			Columns: blogpage.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
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
			Table:   blogpage.RelatedLinksTable,
			Columns: []string{blogpage.RelatedLinksColumn},
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
			Table:   blogpage.RelatedLinksTable,
			Columns: []string{blogpage.RelatedLinksColumn},
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
			Table:   blogpage.RelatedLinksTable,
			Columns: []string{blogpage.RelatedLinksColumn},
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
	if _u.mutation.AuthorshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogpage.AuthorshipsTable,
			Columns: []string{blogpage.AuthorshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthorshipsIDs(); len(nodes) > 0 && !_u.mutation.AuthorshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogpage.AuthorshipsTable,
			Columns: []string{blogpage.AuthorshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorshipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blogpage.AuthorshipsTable,
			Columns: []string{blogpage.AuthorshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BlogPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
