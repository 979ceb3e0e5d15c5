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
	"github.com/helenb/wagtail-torchbox/internal/repo/carouselitem"
	"github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/internal/repo/homepage"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// CarouselItemUpdate is the builder for updating CarouselItem entities.
type CarouselItemUpdate struct {
	config
	hooks    []Hook
	mutation *CarouselItemMutation
}

// Where appends a list predicates to the CarouselItemUpdate builder.
func (_u *CarouselItemUpdate) Where(ps ...predicate.CarouselItem) *CarouselItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLinkExternal sets the "link_external" field.
func (_u *CarouselItemUpdate) SetLinkExternal(v string) *CarouselItemUpdate {
	_u.mutation.SetLinkExternal(v)
	return _u
}

// SetNillableLinkExternal sets the "link_external" field if the given value is not nil.
func (_u *CarouselItemUpdate) SetNillableLinkExternal(v *string) *CarouselItemUpdate {
	if v != nil {
		_u.SetLinkExternal(*v)
	}
	return _u
}

// ClearLinkExternal clears the value of the "link_external" field.
func (_u *CarouselItemUpdate) ClearLinkExternal() *CarouselItemUpdate {
	_u.mutation.ClearLinkExternal()
	return _u
}

// SetLinkNodeID sets the "link_node_id" field.
func (_u *CarouselItemUpdate) SetLinkNodeID(v uuid.UUID) *CarouselItemUpdate {
	_u.mutation.SetLinkNodeID(v)
	return _u
}

// SetNillableLinkNodeID sets the "link_node_id" field if the given value is not nil.
func (_u *CarouselItemUpdate) SetNillableLinkNodeID(v *uuid.UUID) *CarouselItemUpdate {
	if v != nil {
		_u.SetLinkNodeID(*v)
	}
	return _u
}

// ClearLinkNodeID clears the value of the "link_node_id" field.
func (_u *CarouselItemUpdate) ClearLinkNodeID() *CarouselItemUpdate {
	_u.mutation.ClearLinkNodeID()
	return _u
}

// SetLinkDocumentID sets the "link_document_id" field.
func (_u *CarouselItemUpdate) SetLinkDocumentID(v uuid.UUID) *CarouselItemUpdate {
	_u.mutation.SetLinkDocumentID(v)
	return _u
}

// SetNillableLinkDocumentID sets the "link_document_id" field if the given value is not nil.
func (_u *CarouselItemUpdate) SetNillableLinkDocumentID(v *uuid.UUID) *CarouselItemUpdate {
	if v != nil {
		_u.SetLinkDocumentID(*v)
	}
	return _u
}

// ClearLinkDocumentID clears the value of the "link_document_id" field.
func (_u *CarouselItemUpdate) ClearLinkDocumentID() *CarouselItemUpdate {
	_u.mutation.ClearLinkDocumentID()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *CarouselItemUpdate) SetSortOrder(v int) *CarouselItemUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *CarouselItemUpdate) SetNillableSortOrder(v *int) *CarouselItemUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *CarouselItemUpdate) AddSortOrder(v int) *CarouselItemUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *CarouselItemUpdate) SetImageID(v uuid.UUID) *CarouselItemUpdate {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *CarouselItemUpdate) SetNillableImageID(v *uuid.UUID) *CarouselItemUpdate {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// ClearImageID clears the value of the "image_id" field.
func (_u *CarouselItemUpdate) ClearImageID() *CarouselItemUpdate {
	_u.mutation.ClearImageID()
	return _u
}

// SetEmbedURL sets the "embed_url" field.
func (_u *CarouselItemUpdate) SetEmbedURL(v string) *CarouselItemUpdate {
	_u.mutation.SetEmbedURL(v)
	return _u
}

// SetNillableEmbedURL sets the "embed_url" field if the given value is not nil.
func (_u *CarouselItemUpdate) SetNillableEmbedURL(v *string) *CarouselItemUpdate {
	if v != nil {
		_u.SetEmbedURL(*v)
	}
	return _u
}

// ClearEmbedURL clears the value of the "embed_url" field.
func (_u *CarouselItemUpdate) ClearEmbedURL() *CarouselItemUpdate {
	_u.mutation.ClearEmbedURL()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *CarouselItemUpdate) SetCaption(v string) *CarouselItemUpdate {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *CarouselItemUpdate) SetNillableCaption(v *string) *CarouselItemUpdate {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *CarouselItemUpdate) ClearCaption() *CarouselItemUpdate {
	_u.mutation.ClearCaption()
	return _u
}

// SetHomePageID sets the "home_page_id" field.
func (_u *CarouselItemUpdate) SetHomePageID(v uuid.UUID) *CarouselItemUpdate {
	_u.mutation.SetHomePageID(v)
	return _u
}

// SetNillableHomePageID sets the "home_page_id" field if the given value is not nil.
func (_u *CarouselItemUpdate) SetNillableHomePageID(v *uuid.UUID) *CarouselItemUpdate {
	if v != nil {
		_u.SetHomePageID(*v)
	}
	return _u
}

// SetLinkNode sets the "link_node" edge to the Node entity.
func (_u *CarouselItemUpdate) SetLinkNode(v *Node) *CarouselItemUpdate {
	return _u.SetLinkNodeID(v.ID)
}

// SetLinkDocument sets the "link_document" edge to the Document entity.
func (_u *CarouselItemUpdate) SetLinkDocument(v *Document) *CarouselItemUpdate {
	return _u.SetLinkDocumentID(v.ID)
}

// SetImage sets the "image" edge to the Image entity.
func (_u *CarouselItemUpdate) SetImage(v *Image) *CarouselItemUpdate {
	return _u.SetImageID(v.ID)
}

// SetHomePage sets the "home_page" edge to the HomePage entity.
func (_u *CarouselItemUpdate) SetHomePage(v *HomePage) *CarouselItemUpdate {
	return _u.SetHomePageID(v.ID)
}

// Mutation returns the CarouselItemMutation object of the builder.
func (_u *CarouselItemUpdate) Mutation() *CarouselItemMutation {
	return _u.mutation
}

// ClearLinkNode clears the "link_node" edge to the Node entity.
func (_u *CarouselItemUpdate) ClearLinkNode() *CarouselItemUpdate {
	_u.mutation.ClearLinkNode()
	return _u
}

// ClearLinkDocument clears the "link_document" edge to the Document entity.
func (_u *CarouselItemUpdate) ClearLinkDocument() *CarouselItemUpdate {
	_u.mutation.ClearLinkDocument()
	return _u
}

// ClearImage clears the "image" edge to the Image entity.
func (_u *CarouselItemUpdate) ClearImage() *CarouselItemUpdate {
	_u.mutation.ClearImage()
	return _u
}

// ClearHomePage clears the "home_page" edge to the HomePage entity.
func (_u *CarouselItemUpdate) ClearHomePage() *CarouselItemUpdate {
	_u.mutation.ClearHomePage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CarouselItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CarouselItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CarouselItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CarouselItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CarouselItemUpdate) check() error {
	if v, ok := _u.mutation.LinkExternal(); ok {
		if err := carouselitem.LinkExternalValidator(v); err != nil {
			return &ValidationError{Name: "link_external", err: fmt.Errorf(`repo: validator failed for field "CarouselItem.link_external": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmbedURL(); ok {
		if err := carouselitem.EmbedURLValidator(v); err != nil {
			return &ValidationError{Name: "embed_url", err: fmt.Errorf(`repo: validator failed for field "CarouselItem.embed_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Caption(); ok {
		if err := carouselitem.CaptionValidator(v); err != nil {
			return &ValidationError{Name: "caption", err: fmt.Errorf(`repo: validator failed for field "CarouselItem.caption": %w`, err)}
		}
	}
	if _u.mutation.HomePageCleared() && len(_u.mutation.HomePageIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CarouselItem.home_page"`)
	}
	return nil
}

func (_u *CarouselItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(carouselitem.Table, carouselitem.Columns, sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LinkExternal(); ok {
		_spec.SetField(carouselitem.FieldLinkExternal, field.TypeString, value)
	}
	if _u.mutation.LinkExternalCleared() {
		_spec.ClearField(carouselitem.FieldLinkExternal, field.TypeString)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(carouselitem.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(carouselitem.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmbedURL(); ok {
		_spec.SetField(carouselitem.FieldEmbedURL, field.TypeString, value)
	}
	if _u.mutation.EmbedURLCleared() {
		_spec.ClearField(carouselitem.FieldEmbedURL, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(carouselitem.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(carouselitem.FieldCaption, field.TypeString)
	}
	if _u.mutation.LinkNodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   carouselitem.LinkNodeTable,
			Columns: []string{carouselitem.LinkNodeColumn},
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
			Table:   carouselitem.LinkNodeTable,
			Columns: []string{carouselitem.LinkNodeColumn},
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
			Table:   carouselitem.LinkDocumentTable,
			Columns: []string{carouselitem.LinkDocumentColumn},
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
			Table:   carouselitem.LinkDocumentTable,
			Columns: []string{carouselitem.LinkDocumentColumn},
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
	if _u.mutation.ImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   carouselitem.ImageTable,
			Columns: []string{carouselitem.ImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   carouselitem.ImageTable,
			Columns: []string{carouselitem.ImageColumn},
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
	if _u.mutation.HomePageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carouselitem.HomePageTable,
			Columns: []string{carouselitem.HomePageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(homepage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HomePageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carouselitem.HomePageTable,
			Columns: []string{carouselitem.HomePageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(homepage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{carouselitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CarouselItemUpdateOne is the builder for updating a single CarouselItem entity.
type CarouselItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CarouselItemMutation
}

// SetLinkExternal sets the "link_external" field.
func (_u *CarouselItemUpdateOne) SetLinkExternal(v string) *CarouselItemUpdateOne {
	_u.mutation.SetLinkExternal(v)
	return _u
}

// SetNillableLinkExternal sets the "link_external" field if the given value is not nil.
func (_u *CarouselItemUpdateOne) SetNillableLinkExternal(v *string) *CarouselItemUpdateOne {
	if v != nil {
		_u.SetLinkExternal(*v)
	}
	return _u
}

// ClearLinkExternal clears the value of the "link_external" field.
func (_u *CarouselItemUpdateOne) ClearLinkExternal() *CarouselItemUpdateOne {
	_u.mutation.ClearLinkExternal()
	return _u
}

// SetLinkNodeID sets the "link_node_id" field.
func (_u *CarouselItemUpdateOne) SetLinkNodeID(v uuid.UUID) *CarouselItemUpdateOne {
	_u.mutation.SetLinkNodeID(v)
	return _u
}

// SetNillableLinkNodeID sets the "link_node_id" field if the given value is not nil.
func (_u *CarouselItemUpdateOne) SetNillableLinkNodeID(v *uuid.UUID) *CarouselItemUpdateOne {
	if v != nil {
		_u.SetLinkNodeID(*v)
	}
	return _u
}

// ClearLinkNodeID clears the value of the "link_node_id" field.
func (_u *CarouselItemUpdateOne) ClearLinkNodeID() *CarouselItemUpdateOne {
	_u.mutation.ClearLinkNodeID()
	return _u
}

// SetLinkDocumentID sets the "link_document_id" field.
func (_u *CarouselItemUpdateOne) SetLinkDocumentID(v uuid.UUID) *CarouselItemUpdateOne {
	_u.mutation.SetLinkDocumentID(v)
	return _u
}

// SetNillableLinkDocumentID sets the "link_document_id" field if the given value is not nil.
func (_u *CarouselItemUpdateOne) SetNillableLinkDocumentID(v *uuid.UUID) *CarouselItemUpdateOne {
	if v != nil {
		_u.SetLinkDocumentID(*v)
	}
	return _u
}

// ClearLinkDocumentID clears the value of the "link_document_id" field.
func (_u *CarouselItemUpdateOne) ClearLinkDocumentID() *CarouselItemUpdateOne {
	_u.mutation.ClearLinkDocumentID()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *CarouselItemUpdateOne) SetSortOrder(v int) *CarouselItemUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *CarouselItemUpdateOne) SetNillableSortOrder(v *int) *CarouselItemUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *CarouselItemUpdateOne) AddSortOrder(v int) *CarouselItemUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *CarouselItemUpdateOne) SetImageID(v uuid.UUID) *CarouselItemUpdateOne {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *CarouselItemUpdateOne) SetNillableImageID(v *uuid.UUID) *CarouselItemUpdateOne {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// ClearImageID clears the value of the "image_id" field.
func (_u *CarouselItemUpdateOne) ClearImageID() *CarouselItemUpdateOne {
	_u.mutation.ClearImageID()
	return _u
}

// SetEmbedURL sets the "embed_url" field.
func (_u *CarouselItemUpdateOne) SetEmbedURL(v string) *CarouselItemUpdateOne {
	_u.mutation.SetEmbedURL(v)
	return _u
}

// SetNillableEmbedURL sets the "embed_url" field if the given value is not nil.
func (_u *CarouselItemUpdateOne) SetNillableEmbedURL(v *string) *CarouselItemUpdateOne {
	if v != nil {
		_u.SetEmbedURL(*v)
	}
	return _u
}

// ClearEmbedURL clears the value of the "embed_url" field.
func (_u *CarouselItemUpdateOne) ClearEmbedURL() *CarouselItemUpdateOne {
	_u.mutation.ClearEmbedURL()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *CarouselItemUpdateOne) SetCaption(v string) *CarouselItemUpdateOne {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *CarouselItemUpdateOne) SetNillableCaption(v *string) *CarouselItemUpdateOne {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *CarouselItemUpdateOne) ClearCaption() *CarouselItemUpdateOne {
	_u.mutation.ClearCaption()
	return _u
}

// SetHomePageID sets the "home_page_id" field.
func (_u *CarouselItemUpdateOne) SetHomePageID(v uuid.UUID) *CarouselItemUpdateOne {
	_u.mutation.SetHomePageID(v)
	return _u
}

// SetNillableHomePageID sets the "home_page_id" field if the given value is not nil.
func (_u *CarouselItemUpdateOne) SetNillableHomePageID(v *uuid.UUID) *CarouselItemUpdateOne {
	if v != nil {
		_u.SetHomePageID(*v)
	}
	return _u
}

// SetLinkNode sets the "link_node" edge to the Node entity.
func (_u *CarouselItemUpdateOne) SetLinkNode(v *Node) *CarouselItemUpdateOne {
	return _u.SetLinkNodeID(v.ID)
}

// SetLinkDocument sets the "link_document" edge to the Document entity.
func (_u *CarouselItemUpdateOne) SetLinkDocument(v *Document) *CarouselItemUpdateOne {
	return _u.SetLinkDocumentID(v.ID)
}

// SetImage sets the "image" edge to the Image entity.
func (_u *CarouselItemUpdateOne) SetImage(v *Image) *CarouselItemUpdateOne {
	return _u.SetImageID(v.ID)
}

// SetHomePage sets the "home_page" edge to the HomePage entity.
func (_u *CarouselItemUpdateOne) SetHomePage(v *HomePage) *CarouselItemUpdateOne {
	return _u.SetHomePageID(v.ID)
}

// Mutation returns the CarouselItemMutation object of the builder.
func (_u *CarouselItemUpdateOne) Mutation() *CarouselItemMutation {
	return _u.mutation
}

// ClearLinkNode clears the "link_node" edge to the Node entity.
func (_u *CarouselItemUpdateOne) ClearLinkNode() *CarouselItemUpdateOne {
	_u.mutation.ClearLinkNode()
	return _u
}

// ClearLinkDocument clears the "link_document" edge to the Document entity.
func (_u *CarouselItemUpdateOne) ClearLinkDocument() *CarouselItemUpdateOne {
	_u.mutation.ClearLinkDocument()
	return _u
}

// ClearImage clears the "image" edge to the Image entity.
func (_u *CarouselItemUpdateOne) ClearImage() *CarouselItemUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// ClearHomePage clears the "home_page" edge to the HomePage entity.
func (_u *CarouselItemUpdateOne) ClearHomePage() *CarouselItemUpdateOne {
	_u.mutation.ClearHomePage()
	return _u
}

// Where appends a list predicates to the CarouselItemUpdate builder.
func (_u *CarouselItemUpdateOne) Where(ps ...predicate.CarouselItem) *CarouselItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CarouselItemUpdateOne) Select(field string, fields ...string) *CarouselItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CarouselItem entity.
func (_u *CarouselItemUpdateOne) Save(ctx context.Context) (*CarouselItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CarouselItemUpdateOne) SaveX(ctx context.Context) *CarouselItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CarouselItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CarouselItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CarouselItemUpdateOne) check() error {
	if v, ok := _u.mutation.LinkExternal(); ok {
		if err := carouselitem.LinkExternalValidator(v); err != nil {
			return &ValidationError{Name: "link_external", err: fmt.Errorf(`repo: validator failed for field "CarouselItem.link_external": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmbedURL(); ok {
		if err := carouselitem.EmbedURLValidator(v); err != nil {
			return &ValidationError{Name: "embed_url", err: fmt.Errorf(`repo: validator failed for field "CarouselItem.embed_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Caption(); ok {
		if err := carouselitem.CaptionValidator(v); err != nil {
			return &ValidationError{Name: "caption", err: fmt.Errorf(`repo: validator failed for field "CarouselItem.caption": %w`, err)}
		}
	}
	if _u.mutation.HomePageCleared() && len(_u.mutation.HomePageIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CarouselItem.home_page"`)
	}
	return nil
}

func (_u *CarouselItemUpdateOne) sqlSave(ctx context.Context) (_node *CarouselItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(carouselitem.Table, carouselitem.Columns, sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CarouselItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, carouselitem.FieldID)
		for _, f := range fields {
			if !carouselitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != carouselitem.FieldID {
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
		_spec.SetField(carouselitem.FieldLinkExternal, field.TypeString, value)
	}
	if _u.mutation.LinkExternalCleared() {
		_spec.ClearField(carouselitem.FieldLinkExternal, field.TypeString)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(carouselitem.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(carouselitem.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmbedURL(); ok {
		_spec.SetField(carouselitem.FieldEmbedURL, field.TypeString, value)
	}
	if _u.mutation.EmbedURLCleared() {
		_spec.ClearField(carouselitem.FieldEmbedURL, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(carouselitem.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(carouselitem.FieldCaption, field.TypeString)
	}
	if _u.mutation.LinkNodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   carouselitem.LinkNodeTable,
			Columns: []string{carouselitem.LinkNodeColumn},
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
			Table:   carouselitem.LinkNodeTable,
			Columns: []string{carouselitem.LinkNodeColumn},
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
			Table:   carouselitem.LinkDocumentTable,
			Columns: []string{carouselitem.LinkDocumentColumn},
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
			Table:   carouselitem.LinkDocumentTable,
			Columns: []string{carouselitem.LinkDocumentColumn},
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
	if _u.mutation.ImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   carouselitem.ImageTable,
			Columns: []string{carouselitem.ImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   carouselitem.ImageTable,
			Columns: []string{carouselitem.ImageColumn},
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
	if _u.mutation.HomePageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carouselitem.HomePageTable,
			Columns: []string{carouselitem.HomePageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(homepage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HomePageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   carouselitem.HomePageTable,
			Columns: []string{carouselitem.HomePageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(homepage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CarouselItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{carouselitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
