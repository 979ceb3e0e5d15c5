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
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
)

// RelatedLinkUpdate is the builder for updating RelatedLink entities.
type RelatedLinkUpdate struct {
	config
	hooks    []Hook
	mutation *RelatedLinkMutation
}

// Where appends a list predicates to the RelatedLinkUpdate builder.
func (_u *RelatedLinkUpdate) Where(ps ...predicate.RelatedLink) *RelatedLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLinkExternal sets the "link_external" field.
func (_u *RelatedLinkUpdate) SetLinkExternal(v string) *RelatedLinkUpdate {
	_u.mutation.SetLinkExternal(v)
	return _u
}

// SetNillableLinkExternal sets the "link_external" field if the given value is not nil.
func (_u *RelatedLinkUpdate) SetNillableLinkExternal(v *string) *RelatedLinkUpdate {
	if v != nil {
		_u.SetLinkExternal(*v)
	}
	return _u
}

// ClearLinkExternal clears the value of the "link_external" field.
func (_u *RelatedLinkUpdate) ClearLinkExternal() *RelatedLinkUpdate {
	_u.mutation.ClearLinkExternal()
	return _u
}

// SetLinkNodeID sets the "link_node_id" field.
func (_u *RelatedLinkUpdate) SetLinkNodeID(v uuid.UUID) *RelatedLinkUpdate {
	_u.mutation.SetLinkNodeID(v)
	return _u
}

// SetNillableLinkNodeID sets the "link_node_id" field if the given value is not nil.
func (_u *RelatedLinkUpdate) SetNillableLinkNodeID(v *uuid.UUID) *RelatedLinkUpdate {
	if v != nil {
		_u.SetLinkNodeID(*v)
	}
	return _u
}

// ClearLinkNodeID clears the value of the "link_node_id" field.
func (_u *RelatedLinkUpdate) ClearLinkNodeID() *RelatedLinkUpdate {
	_u.mutation.ClearLinkNodeID()
	return _u
}

// SetLinkDocumentID sets the "link_document_id" field.
func (_u *RelatedLinkUpdate) SetLinkDocumentID(v uuid.UUID) *RelatedLinkUpdate {
	_u.mutation.SetLinkDocumentID(v)
	return _u
}

// SetNillableLinkDocumentID sets the "link_document_id" field if the given value is not nil.
func (_u *RelatedLinkUpdate) SetNillableLinkDocumentID(v *uuid.UUID) *RelatedLinkUpdate {
	if v != nil {
		_u.SetLinkDocumentID(*v)
	}
	return _u
}

// ClearLinkDocumentID clears the value of the "link_document_id" field.
func (_u *RelatedLinkUpdate) ClearLinkDocumentID() *RelatedLinkUpdate {
	_u.mutation.ClearLinkDocumentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *RelatedLinkUpdate) SetTitle(v string) *RelatedLinkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RelatedLinkUpdate) SetNillableTitle(v *string) *RelatedLinkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *RelatedLinkUpdate) SetSortOrder(v int) *RelatedLinkUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *RelatedLinkUpdate) SetNillableSortOrder(v *int) *RelatedLinkUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *RelatedLinkUpdate) AddSortOrder(v int) *RelatedLinkUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetStandardPageID sets the "standard_page_id" field.
func (_u *RelatedLinkUpdate) SetStandardPageID(v uuid.UUID) *RelatedLinkUpdate {
	_u.mutation.SetStandardPageID(v)
	return _u
}

// SetNillableStandardPageID sets the "standard_page_id" field if the given value is not nil.
func (_u *RelatedLinkUpdate) SetNillableStandardPageID(v *uuid.UUID) *RelatedLinkUpdate {
	if v != nil {
		_u.SetStandardPageID(*v)
	}
	return _u
}

// ClearStandardPageID clears the value of the "standard_page_id" field.
func (_u *RelatedLinkUpdate) ClearStandardPageID() *RelatedLinkUpdate {
	_u.mutation.ClearStandardPageID()
	return _u
}

// SetBlogIndexPageID sets the "blog_index_page_id" field.
func (_u *RelatedLinkUpdate) SetBlogIndexPageID(v uuid.UUID) *RelatedLinkUpdate {
	_u.mutation.SetBlogIndexPageID(v)
	return _u
}

// SetNillableBlogIndexPageID sets the "blog_index_page_id" field if the given value is not nil.
func (_u *RelatedLinkUpdate) SetNillableBlogIndexPageID(v *uuid.UUID) *RelatedLinkUpdate {
	if v != nil {
		_u.SetBlogIndexPageID(*v)
	}
	return _u
}

// ClearBlogIndexPageID clears the value of the "blog_index_page_id" field.
func (_u *RelatedLinkUpdate) ClearBlogIndexPageID() *RelatedLinkUpdate {
	_u.mutation.ClearBlogIndexPageID()
	return _u
}

// SetBlogPageID sets the "blog_page_id" field.
func (_u *RelatedLinkUpdate) SetBlogPageID(v uuid.UUID) *RelatedLinkUpdate {
	_u.mutation.SetBlogPageID(v)
	return _u
}

// SetNillableBlogPageID sets the "blog_page_id" field if the given value is not nil.
func (_u *RelatedLinkUpdate) SetNillableBlogPageID(v *uuid.UUID) *RelatedLinkUpdate {
	if v != nil {
		_u.SetBlogPageID(*v)
	}
	return _u
}

// ClearBlogPageID clears the value of the "blog_page_id" field.
func (_u *RelatedLinkUpdate) ClearBlogPageID() *RelatedLinkUpdate {
	_u.mutation.ClearBlogPageID()
	return _u
}

// SetPersonPageID sets the "person_page_id" field.
func (_u *RelatedLinkUpdate) SetPersonPageID(v uuid.UUID) *RelatedLinkUpdate {
	_u.mutation.SetPersonPageID(v)
	return _u
}

// SetNillablePersonPageID sets the "person_page_id" field if the given value is not nil.
func (_u *RelatedLinkUpdate) SetNillablePersonPageID(v *uuid.UUID) *RelatedLinkUpdate {
	if v != nil {
		_u.SetPersonPageID(*v)
	}
	return _u
}

// ClearPersonPageID clears the value of the "person_page_id" field.
func (_u *RelatedLinkUpdate) ClearPersonPageID() *RelatedLinkUpdate {
	_u.mutation.ClearPersonPageID()
	return _u
}

// SetLinkNode sets the "link_node" edge to the Node entity.
func (_u *RelatedLinkUpdate) SetLinkNode(v *Node) *RelatedLinkUpdate {
	return _u.SetLinkNodeID(v.ID)
}

// SetLinkDocument sets the "link_document" edge to the Document entity.
func (_u *RelatedLinkUpdate) SetLinkDocument(v *Document) *RelatedLinkUpdate {
	return _u.SetLinkDocumentID(v.ID)
}

// SetStandardPage sets the "standard_page" edge to the StandardPage entity.
func (_u *RelatedLinkUpdate) SetStandardPage(v *StandardPage) *RelatedLinkUpdate {
	return _u.SetStandardPageID(v.ID)
}

// SetBlogIndexPage sets the "blog_index_page" edge to the BlogIndexPage entity.
func (_u *RelatedLinkUpdate) SetBlogIndexPage(v *BlogIndexPage) *RelatedLinkUpdate {
	return _u.SetBlogIndexPageID(v.ID)
}

// SetBlogPage sets the "blog_page" edge to the BlogPage entity.
func (_u *RelatedLinkUpdate) SetBlogPage(v *BlogPage) *RelatedLinkUpdate {
	return _u.SetBlogPageID(v.ID)
}

// SetPersonPage sets the "person_page" edge to the PersonPage entity.
func (_u *RelatedLinkUpdate) SetPersonPage(v *PersonPage) *RelatedLinkUpdate {
	return _u.SetPersonPageID(v.ID)
}

// Mutation returns the RelatedLinkMutation object of the builder.
func (_u *RelatedLinkUpdate) Mutation() *RelatedLinkMutation {
	return _u.mutation
}

// ClearLinkNode clears the "link_node" edge to the Node entity.
func (_u *RelatedLinkUpdate) ClearLinkNode() *RelatedLinkUpdate {
	_u.mutation.ClearLinkNode()
	return _u
}

// ClearLinkDocument clears the "link_document" edge to the Document entity.
func (_u *RelatedLinkUpdate) ClearLinkDocument() *RelatedLinkUpdate {
	_u.mutation.ClearLinkDocument()
	return _u
}

// ClearStandardPage clears the "standard_page" edge to the StandardPage entity.
func (_u *RelatedLinkUpdate) ClearStandardPage() *RelatedLinkUpdate {
	_u.mutation.ClearStandardPage()
	return _u
}

// ClearBlogIndexPage clears the "blog_index_page" edge to the BlogIndexPage entity.
func (_u *RelatedLinkUpdate) ClearBlogIndexPage() *RelatedLinkUpdate {
	_u.mutation.ClearBlogIndexPage()
	return _u
}

// ClearBlogPage clears the "blog_page" edge to the BlogPage entity.
func (_u *RelatedLinkUpdate) ClearBlogPage() *RelatedLinkUpdate {
	_u.mutation.ClearBlogPage()
	return _u
}

// ClearPersonPage clears the "person_page" edge to the PersonPage entity.
func (_u *RelatedLinkUpdate) ClearPersonPage() *RelatedLinkUpdate {
	_u.mutation.ClearPersonPage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RelatedLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RelatedLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RelatedLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RelatedLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RelatedLinkUpdate) check() error {
	if v, ok := _u.mutation.LinkExternal(); ok {
		if err := relatedlink.LinkExternalValidator(v); err != nil {
			return &ValidationError{Name: "link_external", err: fmt.Errorf(`repo: validator failed for field "RelatedLink.link_external": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := relatedlink.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "RelatedLink.title": %w`, err)}
		}
	}
	return nil
}

func (_u *RelatedLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(relatedlink.Table, relatedlink.Columns, sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LinkExternal(); ok {
		_spec.SetField(relatedlink.FieldLinkExternal, field.TypeString, value)
	}
	if _u.mutation.LinkExternalCleared() {
		_spec.ClearField(relatedlink.FieldLinkExternal, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(relatedlink.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(relatedlink.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(relatedlink.FieldSortOrder, field.TypeInt, value)
	}
	if _u.mutation.LinkNodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkNodeTable,
			Columns: []string{relatedlink.LinkNodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkNodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkNodeTable,
			Columns: []string{relatedlink.LinkNodeColumn},
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
	if _u.mutation.LinkDocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkDocumentTable,
			Columns: []string{relatedlink.LinkDocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkDocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkDocumentTable,
			Columns: []string{relatedlink.LinkDocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StandardPageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.StandardPageTable,
			Columns: []string{relatedlink.StandardPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(standardpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StandardPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.StandardPageTable,
			Columns: []string{relatedlink.StandardPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(standardpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlogIndexPageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogIndexPageTable,
			Columns: []string{relatedlink.BlogIndexPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlogIndexPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogIndexPageTable,
			Columns: []string{relatedlink.BlogIndexPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlogPageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogPageTable,
			Columns: []string{relatedlink.BlogPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlogPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogPageTable,
			Columns: []string{relatedlink.BlogPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PersonPageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.PersonPageTable,
			Columns: []string{relatedlink.PersonPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.PersonPageTable,
			Columns: []string{relatedlink.PersonPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relatedlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RelatedLinkUpdateOne is the builder for updating a single RelatedLink entity.
type RelatedLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RelatedLinkMutation
}

// SetLinkExternal sets the "link_external" field.
func (_u *RelatedLinkUpdateOne) SetLinkExternal(v string) *RelatedLinkUpdateOne {
	_u.mutation.SetLinkExternal(v)
	return _u
}

// SetNillableLinkExternal sets the "link_external" field if the given value is not nil.
func (_u *RelatedLinkUpdateOne) SetNillableLinkExternal(v *string) *RelatedLinkUpdateOne {
	if v != nil {
		_u.SetLinkExternal(*v)
	}
	return _u
}

// ClearLinkExternal clears the value of the "link_external" field.
func (_u *RelatedLinkUpdateOne) ClearLinkExternal() *RelatedLinkUpdateOne {
	_u.mutation.ClearLinkExternal()
	return _u
}

// SetLinkNodeID sets the "link_node_id" field.
func (_u *RelatedLinkUpdateOne) SetLinkNodeID(v uuid.UUID) *RelatedLinkUpdateOne {
	_u.mutation.SetLinkNodeID(v)
	return _u
}

// SetNillableLinkNodeID sets the "link_node_id" field if the given value is not nil.
func (_u *RelatedLinkUpdateOne) SetNillableLinkNodeID(v *uuid.UUID) *RelatedLinkUpdateOne {
	if v != nil {
		_u.SetLinkNodeID(*v)
	}
	return _u
}

// ClearLinkNodeID clears the value of the "link_node_id" field.
func (_u *RelatedLinkUpdateOne) ClearLinkNodeID() *RelatedLinkUpdateOne {
	_u.mutation.ClearLinkNodeID()
	return _u
}

// SetLinkDocumentID sets the "link_document_id" field.
func (_u *RelatedLinkUpdateOne) SetLinkDocumentID(v uuid.UUID) *RelatedLinkUpdateOne {
	_u.mutation.SetLinkDocumentID(v)
	return _u
}

// SetNillableLinkDocumentID sets the "link_document_id" field if the given value is not nil.
func (_u *RelatedLinkUpdateOne) SetNillableLinkDocumentID(v *uuid.UUID) *RelatedLinkUpdateOne {
	if v != nil {
		_u.SetLinkDocumentID(*v)
	}
	return _u
}

// ClearLinkDocumentID clears the value of the "link_document_id" field.
func (_u *RelatedLinkUpdateOne) ClearLinkDocumentID() *RelatedLinkUpdateOne {
	_u.mutation.ClearLinkDocumentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *RelatedLinkUpdateOne) SetTitle(v string) *RelatedLinkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RelatedLinkUpdateOne) SetNillableTitle(v *string) *RelatedLinkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *RelatedLinkUpdateOne) SetSortOrder(v int) *RelatedLinkUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *RelatedLinkUpdateOne) SetNillableSortOrder(v *int) *RelatedLinkUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *RelatedLinkUpdateOne) AddSortOrder(v int) *RelatedLinkUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetStandardPageID sets the "standard_page_id" field.
func (_u *RelatedLinkUpdateOne) SetStandardPageID(v uuid.UUID) *RelatedLinkUpdateOne {
	_u.mutation.SetStandardPageID(v)
	return _u
}

// SetNillableStandardPageID sets the "standard_page_id" field if the given value is not nil.
func (_u *RelatedLinkUpdateOne) SetNillableStandardPageID(v *uuid.UUID) *RelatedLinkUpdateOne {
	if v != nil {
		_u.SetStandardPageID(*v)
	}
	return _u
}

// ClearStandardPageID clears the value of the "standard_page_id" field.
func (_u *RelatedLinkUpdateOne) ClearStandardPageID() *RelatedLinkUpdateOne {
	_u.mutation.ClearStandardPageID()
	return _u
}

// SetBlogIndexPageID sets the "blog_index_page_id" field.
func (_u *RelatedLinkUpdateOne) SetBlogIndexPageID(v uuid.UUID) *RelatedLinkUpdateOne {
	_u.mutation.SetBlogIndexPageID(v)
	return _u
}

// SetNillableBlogIndexPageID sets the "blog_index_page_id" field if the given value is not nil.
func (_u *RelatedLinkUpdateOne) SetNillableBlogIndexPageID(v *uuid.UUID) *RelatedLinkUpdateOne {
	if v != nil {
		_u.SetBlogIndexPageID(*v)
	}
	return _u
}

// ClearBlogIndexPageID clears the value of the "blog_index_page_id" field.
func (_u *RelatedLinkUpdateOne) ClearBlogIndexPageID() *RelatedLinkUpdateOne {
	_u.mutation.ClearBlogIndexPageID()
	return _u
}

// SetBlogPageID sets the "blog_page_id" field.
func (_u *RelatedLinkUpdateOne) SetBlogPageID(v uuid.UUID) *RelatedLinkUpdateOne {
	_u.mutation.SetBlogPageID(v)
	return _u
}

// SetNillableBlogPageID sets the "blog_page_id" field if the given value is not nil.
func (_u *RelatedLinkUpdateOne) SetNillableBlogPageID(v *uuid.UUID) *RelatedLinkUpdateOne {
	if v != nil {
		_u.SetBlogPageID(*v)
	}
	return _u
}

// ClearBlogPageID clears the value of the "blog_page_id" field.
func (_u *RelatedLinkUpdateOne) ClearBlogPageID() *RelatedLinkUpdateOne {
	_u.mutation.ClearBlogPageID()
	return _u
}

// SetPersonPageID sets the "person_page_id" field.
func (_u *RelatedLinkUpdateOne) SetPersonPageID(v uuid.UUID) *RelatedLinkUpdateOne {
	_u.mutation.SetPersonPageID(v)
	return _u
}

// SetNillablePersonPageID sets the "person_page_id" field if the given value is not nil.
func (_u *RelatedLinkUpdateOne) SetNillablePersonPageID(v *uuid.UUID) *RelatedLinkUpdateOne {
	if v != nil {
		_u.SetPersonPageID(*v)
	}
	return _u
}

// ClearPersonPageID clears the value of the "person_page_id" field.
func (_u *RelatedLinkUpdateOne) ClearPersonPageID() *RelatedLinkUpdateOne {
	_u.mutation.ClearPersonPageID()
	return _u
}

// SetLinkNode sets the "link_node" edge to the Node entity.
func (_u *RelatedLinkUpdateOne) SetLinkNode(v *Node) *RelatedLinkUpdateOne {
	return _u.SetLinkNodeID(v.ID)
}

// SetLinkDocument sets the "link_document" edge to the Document entity.
func (_u *RelatedLinkUpdateOne) SetLinkDocument(v *Document) *RelatedLinkUpdateOne {
	return _u.SetLinkDocumentID(v.ID)
}

// SetStandardPage sets the "standard_page" edge to the StandardPage entity.
func (_u *RelatedLinkUpdateOne) SetStandardPage(v *StandardPage) *RelatedLinkUpdateOne {
	return _u.SetStandardPageID(v.ID)
}

// SetBlogIndexPage sets the "blog_index_page" edge to the BlogIndexPage entity.
func (_u *RelatedLinkUpdateOne) SetBlogIndexPage(v *BlogIndexPage) *RelatedLinkUpdateOne {
	return _u.SetBlogIndexPageID(v.ID)
}

// SetBlogPage sets the "blog_page" edge to the BlogPage entity.
func (_u *RelatedLinkUpdateOne) SetBlogPage(v *BlogPage) *RelatedLinkUpdateOne {
	return _u.SetBlogPageID(v.ID)
}

// SetPersonPage sets the "person_page" edge to the PersonPage entity.
func (_u *RelatedLinkUpdateOne) SetPersonPage(v *PersonPage) *RelatedLinkUpdateOne {
	return _u.SetPersonPageID(v.ID)
}

// Mutation returns the RelatedLinkMutation object of the builder.
func (_u *RelatedLinkUpdateOne) Mutation() *RelatedLinkMutation {
	return _u.mutation
}

// ClearLinkNode clears the "link_node" edge to the Node entity.
func (_u *RelatedLinkUpdateOne) ClearLinkNode() *RelatedLinkUpdateOne {
	_u.mutation.ClearLinkNode()
	return _u
}

// ClearLinkDocument clears the "link_document" edge to the Document entity.
func (_u *RelatedLinkUpdateOne) ClearLinkDocument() *RelatedLinkUpdateOne {
	_u.mutation.ClearLinkDocument()
	return _u
}

// ClearStandardPage clears the "standard_page" edge to the StandardPage entity.
func (_u *RelatedLinkUpdateOne) ClearStandardPage() *RelatedLinkUpdateOne {
	_u.mutation.ClearStandardPage()
	return _u
}

// ClearBlogIndexPage clears the "blog_index_page" edge to the BlogIndexPage entity.
func (_u *RelatedLinkUpdateOne) ClearBlogIndexPage() *RelatedLinkUpdateOne {
	_u.mutation.ClearBlogIndexPage()
	return _u
}

// ClearBlogPage clears the "blog_page" edge to the BlogPage entity.
func (_u *RelatedLinkUpdateOne) ClearBlogPage() *RelatedLinkUpdateOne {
	_u.mutation.ClearBlogPage()
	return _u
}

// ClearPersonPage clears the "person_page" edge to the PersonPage entity.
func (_u *RelatedLinkUpdateOne) ClearPersonPage() *RelatedLinkUpdateOne {
	_u.mutation.ClearPersonPage()
	return _u
}

// Where appends a list predicates to the RelatedLinkUpdate builder.
func (_u *RelatedLinkUpdateOne) Where(ps ...predicate.RelatedLink) *RelatedLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RelatedLinkUpdateOne) Select(field string, fields ...string) *RelatedLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RelatedLink entity.
func (_u *RelatedLinkUpdateOne) Save(ctx context.Context) (*RelatedLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RelatedLinkUpdateOne) SaveX(ctx context.Context) *RelatedLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RelatedLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RelatedLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RelatedLinkUpdateOne) check() error {
	if v, ok := _u.mutation.LinkExternal(); ok {
		if err := relatedlink.LinkExternalValidator(v); err != nil {
			return &ValidationError{Name: "link_external", err: fmt.Errorf(`repo: validator failed for field "RelatedLink.link_external": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := relatedlink.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "RelatedLink.title": %w`, err)}
		}
	}
	return nil
}

func (_u *RelatedLinkUpdateOne) sqlSave(ctx context.Context) (_node *RelatedLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(relatedlink.Table, relatedlink.Columns, sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RelatedLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, relatedlink.FieldID)
		for _, f := range fields {
			if !relatedlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != relatedlink.FieldID {
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
	if value, ok := _u.mutation.LinkExternal(); ok {
		_spec.SetField(relatedlink.FieldLinkExternal, field.TypeString, value)
	}
	if _u.mutation.LinkExternalCleared() {
		_spec.ClearField(relatedlink.FieldLinkExternal, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(relatedlink.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(relatedlink.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(relatedlink.FieldSortOrder, field.TypeInt, value)
	}
	if _u.mutation.LinkNodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkNodeTable,
			Columns: []string{relatedlink.LinkNodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkNodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkNodeTable,
			Columns: []string{relatedlink.LinkNodeColumn},
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
	if _u.mutation.LinkDocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkDocumentTable,
			Columns: []string{relatedlink.LinkDocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkDocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   relatedlink.LinkDocumentTable,
			Columns: []string{relatedlink.LinkDocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StandardPageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.StandardPageTable,
			Columns: []string{relatedlink.StandardPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(standardpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StandardPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.StandardPageTable,
			Columns: []string{relatedlink.StandardPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(standardpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlogIndexPageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogIndexPageTable,
			Columns: []string{relatedlink.BlogIndexPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlogIndexPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogIndexPageTable,
			Columns: []string{relatedlink.BlogIndexPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlogPageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogPageTable,
			Columns: []string{relatedlink.BlogPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlogPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.BlogPageTable,
			Columns: []string{relatedlink.BlogPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blogpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PersonPageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.PersonPageTable,
			Columns: []string{relatedlink.PersonPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonPageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relatedlink.PersonPageTable,
			Columns: []string{relatedlink.PersonPageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RelatedLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relatedlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
