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
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
)

// PersonPageUpdate is the builder for updating PersonPage entities.
type PersonPageUpdate struct {
	config
	hooks    []Hook
	mutation *PersonPageMutation
}

// Where appends a list predicates to the PersonPageUpdate builder.
func (_u *PersonPageUpdate) Where(ps ...predicate.PersonPage) *PersonPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonPageUpdate) SetUpdatedAt(v time.Time) *PersonPageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTelephone sets the "telephone" field.
func (_u *PersonPageUpdate) SetTelephone(v string) *PersonPageUpdate {
	_u.mutation.SetTelephone(v)
	return _u
}

// SetNillableTelephone sets the "telephone" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableTelephone(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetTelephone(*v)
	}
	return _u
}

// ClearTelephone clears the value of the "telephone" field.
func (_u *PersonPageUpdate) ClearTelephone() *PersonPageUpdate {
	_u.mutation.ClearTelephone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PersonPageUpdate) SetEmail(v string) *PersonPageUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableEmail(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PersonPageUpdate) ClearEmail() *PersonPageUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetAddress1 sets the "address_1" field.
func (_u *PersonPageUpdate) SetAddress1(v string) *PersonPageUpdate {
	_u.mutation.SetAddress1(v)
	return _u
}

// SetNillableAddress1 sets the "address_1" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableAddress1(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetAddress1(*v)
	}
	return _u
}

// ClearAddress1 clears the value of the "address_1" field.
func (_u *PersonPageUpdate) ClearAddress1() *PersonPageUpdate {
	_u.mutation.ClearAddress1()
	return _u
}

// SetAddress2 sets the "address_2" field.
func (_u *PersonPageUpdate) SetAddress2(v string) *PersonPageUpdate {
	_u.mutation.SetAddress2(v)
	return _u
}

// SetNillableAddress2 sets the "address_2" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableAddress2(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetAddress2(*v)
	}
	return _u
}

// ClearAddress2 clears the value of the "address_2" field.
func (_u *PersonPageUpdate) ClearAddress2() *PersonPageUpdate {
	_u.mutation.ClearAddress2()
	return _u
}

// SetCity sets the "city" field.
func (_u *PersonPageUpdate) SetCity(v string) *PersonPageUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableCity(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *PersonPageUpdate) ClearCity() *PersonPageUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetCountry sets the "country" field.
func (_u *PersonPageUpdate) SetCountry(v string) *PersonPageUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableCountry(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *PersonPageUpdate) ClearCountry() *PersonPageUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetPostCode sets the "post_code" field.
func (_u *PersonPageUpdate) SetPostCode(v string) *PersonPageUpdate {
	_u.mutation.SetPostCode(v)
	return _u
}

// SetNillablePostCode sets the "post_code" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillablePostCode(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetPostCode(*v)
	}
	return _u
}

// ClearPostCode clears the value of the "post_code" field.
func (_u *PersonPageUpdate) ClearPostCode() *PersonPageUpdate {
	_u.mutation.ClearPostCode()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *PersonPageUpdate) SetNodeID(v uuid.UUID) *PersonPageUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableNodeID(v *uuid.UUID) *PersonPageUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PersonPageUpdate) SetFirstName(v string) *PersonPageUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableFirstName(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PersonPageUpdate) SetLastName(v string) *PersonPageUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableLastName(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *PersonPageUpdate) SetRole(v string) *PersonPageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableRole(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *PersonPageUpdate) ClearRole() *PersonPageUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetIntro sets the "intro" field.
func (_u *PersonPageUpdate) SetIntro(v string) *PersonPageUpdate {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableIntro(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *PersonPageUpdate) ClearIntro() *PersonPageUpdate {
	_u.mutation.ClearIntro()
	return _u
}

// SetBiography sets the "biography" field.
func (_u *PersonPageUpdate) SetBiography(v string) *PersonPageUpdate {
	_u.mutation.SetBiography(v)
	return _u
}

// SetNillableBiography sets the "biography" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableBiography(v *string) *PersonPageUpdate {
	if v != nil {
		_u.SetBiography(*v)
	}
	return _u
}

// ClearBiography clears the value of the "biography" field.
func (_u *PersonPageUpdate) ClearBiography() *PersonPageUpdate {
	_u.mutation.ClearBiography()
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *PersonPageUpdate) SetImageID(v uuid.UUID) *PersonPageUpdate {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableImageID(v *uuid.UUID) *PersonPageUpdate {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// ClearImageID clears the value of the "image_id" field.
func (_u *PersonPageUpdate) ClearImageID() *PersonPageUpdate {
	_u.mutation.ClearImageID()
	return _u
}

// SetFeedImageID sets the "feed_image_id" field.
func (_u *PersonPageUpdate) SetFeedImageID(v uuid.UUID) *PersonPageUpdate {
	_u.mutation.SetFeedImageID(v)
	return _u
}

// SetNillableFeedImageID sets the "feed_image_id" field if the given value is not nil.
func (_u *PersonPageUpdate) SetNillableFeedImageID(v *uuid.UUID) *PersonPageUpdate {
	if v != nil {
		_u.SetFeedImageID(*v)
	}
	return _u
}

// ClearFeedImageID clears the value of the "feed_image_id" field.
func (_u *PersonPageUpdate) ClearFeedImageID() *PersonPageUpdate {
	_u.mutation.ClearFeedImageID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *PersonPageUpdate) SetNode(v *Node) *PersonPageUpdate {
	return _u.SetNodeID(v.ID)
}

// SetImage sets the "image" edge to the Image entity.
func (_u *PersonPageUpdate) SetImage(v *Image) *PersonPageUpdate {
	return _u.SetImageID(v.ID)
}

// SetFeedImage sets the "feed_image" edge to the Image entity.
func (_u *PersonPageUpdate) SetFeedImage(v *Image) *PersonPageUpdate {
	return _u.SetFeedImageID(v.ID)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_u *PersonPageUpdate) AddRelatedLinkIDs(ids ...uuid.UUID) *PersonPageUpdate {
	_u.mutation.AddRelatedLinkIDs(ids...)
	return _u
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_u *PersonPageUpdate) AddRelatedLinks(v ...*RelatedLink) *PersonPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelatedLinkIDs(ids...)
}

// Mutation returns the PersonPageMutation object of the builder.
func (_u *PersonPageUpdate) Mutation() *PersonPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *PersonPageUpdate) ClearNode() *PersonPageUpdate {
	_u.mutation.ClearNode()
	return _u
}

// ClearImage clears the "image" edge to the Image entity.
func (_u *PersonPageUpdate) ClearImage() *PersonPageUpdate {
	_u.mutation.ClearImage()
	return _u
}

// ClearFeedImage clears the "feed_image" edge to the Image entity.
func (_u *PersonPageUpdate) ClearFeedImage() *PersonPageUpdate {
	_u.mutation.ClearFeedImage()
	return _u
}

// ClearRelatedLinks clears all "related_links" edges to the RelatedLink entity.
func (_u *PersonPageUpdate) ClearRelatedLinks() *PersonPageUpdate {
	_u.mutation.ClearRelatedLinks()
	return _u
}

// RemoveRelatedLinkIDs removes the "related_links" edge to RelatedLink entities by IDs.
func (_u *PersonPageUpdate) RemoveRelatedLinkIDs(ids ...uuid.UUID) *PersonPageUpdate {
	_u.mutation.RemoveRelatedLinkIDs(ids...)
	return _u
}

// RemoveRelatedLinks removes "related_links" edges to RelatedLink entities.
func (_u *PersonPageUpdate) RemoveRelatedLinks(v ...*RelatedLink) *PersonPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelatedLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonPageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonPageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonPageUpdate) check() error {
	if v, ok := _u.mutation.Telephone(); ok {
		if err := personpage.TelephoneValidator(v); err != nil {
			return &ValidationError{Name: "telephone", err: fmt.Errorf(`repo: validator failed for field "PersonPage.telephone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := personpage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "PersonPage.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address1(); ok {
		if err := personpage.Address1Validator(v); err != nil {
			return &ValidationError{Name: "address_1", err: fmt.Errorf(`repo: validator failed for field "PersonPage.address_1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address2(); ok {
		if err := personpage.Address2Validator(v); err != nil {
			return &ValidationError{Name: "address_2", err: fmt.Errorf(`repo: validator failed for field "PersonPage.address_2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := personpage.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "PersonPage.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := personpage.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`repo: validator failed for field "PersonPage.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PostCode(); ok {
		if err := personpage.PostCodeValidator(v); err != nil {
			return &ValidationError{Name: "post_code", err: fmt.Errorf(`repo: validator failed for field "PersonPage.post_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := personpage.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "PersonPage.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := personpage.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "PersonPage.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := personpage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "PersonPage.role": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PersonPage.node"`)
	}
	return nil
}

func (_u *PersonPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personpage.Table, personpage.Columns, sqlgraph.NewFieldSpec(personpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(personpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Telephone(); ok {
		_spec.SetField(personpage.FieldTelephone, field.TypeString, value)
	}
	if _u.mutation.TelephoneCleared() {
		_spec.ClearField(personpage.FieldTelephone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(personpage.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(personpage.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Address1(); ok {
		_spec.SetField(personpage.FieldAddress1, field.TypeString, value)
	}
	if _u.mutation.Address1Cleared() {
		_spec.ClearField(personpage.FieldAddress1, field.TypeString)
	}
	if value, ok := _u.mutation.Address2(); ok {
		_spec.SetField(personpage.FieldAddress2, field.TypeString, value)
	}
	if _u.mutation.Address2Cleared() {
		_spec.ClearField(personpage.FieldAddress2, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(personpage.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(personpage.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(personpage.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(personpage.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.PostCode(); ok {
		_spec.SetField(personpage.FieldPostCode, field.TypeString, value)
	}
	if _u.mutation.PostCodeCleared() {
		_spec.ClearField(personpage.FieldPostCode, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(personpage.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(personpage.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(personpage.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(personpage.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(personpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(personpage.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Biography(); ok {
		_spec.SetField(personpage.FieldBiography, field.TypeString, value)
	}
	if _u.mutation.BiographyCleared() {
		_spec.ClearField(personpage.FieldBiography, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   personpage.NodeTable,
			Columns: []string{personpage.NodeColumn},
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
			Table:   personpage.NodeTable,
			Columns: []string{personpage.NodeColumn},
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
	if _u.mutation.ImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   personpage.ImageTable,
			Columns: []string{personpage.ImageColumn},
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
			Table:   personpage.ImageTable,
			Columns: []string{personpage.ImageColumn},
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
	if _u.mutation.FeedImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   personpage.FeedImageTable,
			Columns: []string{personpage.FeedImageColumn},
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
			Table:   personpage.FeedImageTable,
			Columns: []string{personpage.FeedImageColumn},
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
			Table:   personpage.RelatedLinksTable,
			Columns: []string{personpage.RelatedLinksColumn},
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
			Table:   personpage.RelatedLinksTable,
			Columns: []string{personpage.RelatedLinksColumn},
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
			Table:   personpage.RelatedLinksTable,
			Columns: []string{personpage.RelatedLinksColumn},
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
			err = &NotFoundError{personpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonPageUpdateOne is the builder for updating a single PersonPage entity.
type PersonPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonPageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonPageUpdateOne) SetUpdatedAt(v time.Time) *PersonPageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTelephone sets the "telephone" field.
func (_u *PersonPageUpdateOne) SetTelephone(v string) *PersonPageUpdateOne {
	_u.mutation.SetTelephone(v)
	return _u
}

// SetNillableTelephone sets the "telephone" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableTelephone(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetTelephone(*v)
	}
	return _u
}

// ClearTelephone clears the value of the "telephone" field.
func (_u *PersonPageUpdateOne) ClearTelephone() *PersonPageUpdateOne {
	_u.mutation.ClearTelephone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PersonPageUpdateOne) SetEmail(v string) *PersonPageUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableEmail(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PersonPageUpdateOne) ClearEmail() *PersonPageUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetAddress1 sets the "address_1" field.
func (_u *PersonPageUpdateOne) SetAddress1(v string) *PersonPageUpdateOne {
	_u.mutation.SetAddress1(v)
	return _u
}

// SetNillableAddress1 sets the "address_1" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableAddress1(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetAddress1(*v)
	}
	return _u
}

// ClearAddress1 clears the value of the "address_1" field.
func (_u *PersonPageUpdateOne) ClearAddress1() *PersonPageUpdateOne {
	_u.mutation.ClearAddress1()
	return _u
}

// SetAddress2 sets the "address_2" field.
func (_u *PersonPageUpdateOne) SetAddress2(v string) *PersonPageUpdateOne {
	_u.mutation.SetAddress2(v)
	return _u
}

// SetNillableAddress2 sets the "address_2" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableAddress2(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetAddress2(*v)
	}
	return _u
}

// ClearAddress2 clears the value of the "address_2" field.
func (_u *PersonPageUpdateOne) ClearAddress2() *PersonPageUpdateOne {
	_u.mutation.ClearAddress2()
	return _u
}

// SetCity sets the "city" field.
func (_u *PersonPageUpdateOne) SetCity(v string) *PersonPageUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableCity(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *PersonPageUpdateOne) ClearCity() *PersonPageUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetCountry sets the "country" field.
func (_u *PersonPageUpdateOne) SetCountry(v string) *PersonPageUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableCountry(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *PersonPageUpdateOne) ClearCountry() *PersonPageUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetPostCode sets the "post_code" field.
func (_u *PersonPageUpdateOne) SetPostCode(v string) *PersonPageUpdateOne {
	_u.mutation.SetPostCode(v)
	return _u
}

// SetNillablePostCode sets the "post_code" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillablePostCode(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetPostCode(*v)
	}
	return _u
}

// ClearPostCode clears the value of the "post_code" field.
func (_u *PersonPageUpdateOne) ClearPostCode() *PersonPageUpdateOne {
	_u.mutation.ClearPostCode()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *PersonPageUpdateOne) SetNodeID(v uuid.UUID) *PersonPageUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableNodeID(v *uuid.UUID) *PersonPageUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PersonPageUpdateOne) SetFirstName(v string) *PersonPageUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableFirstName(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PersonPageUpdateOne) SetLastName(v string) *PersonPageUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableLastName(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *PersonPageUpdateOne) SetRole(v string) *PersonPageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableRole(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *PersonPageUpdateOne) ClearRole() *PersonPageUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetIntro sets the "intro" field.
func (_u *PersonPageUpdateOne) SetIntro(v string) *PersonPageUpdateOne {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableIntro(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *PersonPageUpdateOne) ClearIntro() *PersonPageUpdateOne {
	_u.mutation.ClearIntro()
	return _u
}

// SetBiography sets the "biography" field.
func (_u *PersonPageUpdateOne) SetBiography(v string) *PersonPageUpdateOne {
	_u.mutation.SetBiography(v)
	return _u
}

// SetNillableBiography sets the "biography" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableBiography(v *string) *PersonPageUpdateOne {
	if v != nil {
		_u.SetBiography(*v)
	}
	return _u
}

// ClearBiography clears the value of the "biography" field.
func (_u *PersonPageUpdateOne) ClearBiography() *PersonPageUpdateOne {
	_u.mutation.ClearBiography()
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *PersonPageUpdateOne) SetImageID(v uuid.UUID) *PersonPageUpdateOne {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableImageID(v *uuid.UUID) *PersonPageUpdateOne {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// ClearImageID clears the value of the "image_id" field.
func (_u *PersonPageUpdateOne) ClearImageID() *PersonPageUpdateOne {
	_u.mutation.ClearImageID()
	return _u
}

// SetFeedImageID sets the "feed_image_id" field.
func (_u *PersonPageUpdateOne) SetFeedImageID(v uuid.UUID) *PersonPageUpdateOne {
	_u.mutation.SetFeedImageID(v)
	return _u
}

// SetNillableFeedImageID sets the "feed_image_id" field if the given value is not nil.
func (_u *PersonPageUpdateOne) SetNillableFeedImageID(v *uuid.UUID) *PersonPageUpdateOne {
	if v != nil {
		_u.SetFeedImageID(*v)
	}
	return _u
}

// ClearFeedImageID clears the value of the "feed_image_id" field.
func (_u *PersonPageUpdateOne) ClearFeedImageID() *PersonPageUpdateOne {
	_u.mutation.ClearFeedImageID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *PersonPageUpdateOne) SetNode(v *Node) *PersonPageUpdateOne {
	return _u.SetNodeID(v.ID)
}

// SetImage sets the "image" edge to the Image entity.
func (_u *PersonPageUpdateOne) SetImage(v *Image) *PersonPageUpdateOne {
	return _u.SetImageID(v.ID)
}

// SetFeedImage sets the "feed_image" edge to the Image entity.
func (_u *PersonPageUpdateOne) SetFeedImage(v *Image) *PersonPageUpdateOne {
	return _u.SetFeedImageID(v.ID)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_u *PersonPageUpdateOne) AddRelatedLinkIDs(ids ...uuid.UUID) *PersonPageUpdateOne {
	_u.mutation.AddRelatedLinkIDs(ids...)
	return _u
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_u *PersonPageUpdateOne) AddRelatedLinks(v ...*RelatedLink) *PersonPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelatedLinkIDs(ids...)
}

// Mutation returns the PersonPageMutation object of the builder.
func (_u *PersonPageUpdateOne) Mutation() *PersonPageMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *PersonPageUpdateOne) ClearNode() *PersonPageUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// ClearImage clears the "image" edge to the Image entity.
func (_u *PersonPageUpdateOne) ClearImage() *PersonPageUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// ClearFeedImage clears the "feed_image" edge to the Image entity.
func (_u *PersonPageUpdateOne) ClearFeedImage() *PersonPageUpdateOne {
	_u.mutation.ClearFeedImage()
	return _u
}

// ClearRelatedLinks clears all "related_links" edges to the RelatedLink entity.
func (_u *PersonPageUpdateOne) ClearRelatedLinks() *PersonPageUpdateOne {
	_u.mutation.ClearRelatedLinks()
	return _u
}

// RemoveRelatedLinkIDs removes the "related_links" edge to RelatedLink entities by IDs.
func (_u *PersonPageUpdateOne) RemoveRelatedLinkIDs(ids ...uuid.UUID) *PersonPageUpdateOne {
	_u.mutation.RemoveRelatedLinkIDs(ids...)
	return _u
}

// RemoveRelatedLinks removes "related_links" edges to RelatedLink entities.
func (_u *PersonPageUpdateOne) RemoveRelatedLinks(v ...*RelatedLink) *PersonPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelatedLinkIDs(ids...)
}

// Where appends a list predicates to the PersonPageUpdate builder.
func (_u *PersonPageUpdateOne) Where(ps ...predicate.PersonPage) *PersonPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonPageUpdateOne) Select(field string, fields ...string) *PersonPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PersonPage entity.
func (_u *PersonPageUpdateOne) Save(ctx context.Context) (*PersonPage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonPageUpdateOne) SaveX(ctx context.Context) *PersonPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonPageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personpage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonPageUpdateOne) check() error {
	if v, ok := _u.mutation.Telephone(); ok {
		if err := personpage.TelephoneValidator(v); err != nil {
			return &ValidationError{Name: "telephone", err: fmt.Errorf(`repo: validator failed for field "PersonPage.telephone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := personpage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "PersonPage.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address1(); ok {
		if err := personpage.Address1Validator(v); err != nil {
			return &ValidationError{Name: "address_1", err: fmt.Errorf(`repo: validator failed for field "PersonPage.address_1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address2(); ok {
		if err := personpage.Address2Validator(v); err != nil {
			return &ValidationError{Name: "address_2", err: fmt.Errorf(`repo: validator failed for field "PersonPage.address_2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := personpage.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "PersonPage.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := personpage.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`repo: validator failed for field "PersonPage.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PostCode(); ok {
		if err := personpage.PostCodeValidator(v); err != nil {
			return &ValidationError{Name: "post_code", err: fmt.Errorf(`repo: validator failed for field "PersonPage.post_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := personpage.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "PersonPage.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := personpage.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "PersonPage.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := personpage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "PersonPage.role": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PersonPage.node"`)
	}
	return nil
}

func (_u *PersonPageUpdateOne) sqlSave(ctx context.Context) (_node *PersonPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personpage.Table, personpage.Columns, sqlgraph.NewFieldSpec(personpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PersonPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, personpage.FieldID)
		for _, f := range fields {
			if !personpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != personpage.FieldID {
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
		_spec.SetField(personpage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Telephone(); ok {
		_spec.SetField(personpage.FieldTelephone, field.TypeString, value)
	}
	if _u.mutation.TelephoneCleared() {
		_spec.ClearField(personpage.FieldTelephone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(personpage.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(personpage.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Address1(); ok {
		_spec.SetField(personpage.FieldAddress1, field.TypeString, value)
	}
	if _u.mutation.Address1Cleared() {
		_spec.ClearField(personpage.FieldAddress1, field.TypeString)
	}
	if value, ok := _u.mutation.Address2(); ok {
		_spec.SetField(personpage.FieldAddress2, field.TypeString, value)
	}
	if _u.mutation.Address2Cleared() {
		_spec.ClearField(personpage.FieldAddress2, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(personpage.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(personpage.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(personpage.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(personpage.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.PostCode(); ok {
		_spec.SetField(personpage.FieldPostCode, field.TypeString, value)
	}
	if _u.mutation.PostCodeCleared() {
		_spec.ClearField(personpage.FieldPostCode, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(personpage.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(personpage.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(personpage.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(personpage.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(personpage.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(personpage.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Biography(); ok {
		_spec.SetField(personpage.FieldBiography, field.TypeString, value)
	}
	if _u.mutation.BiographyCleared() {
		_spec.ClearField(personpage.FieldBiography, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   personpage.NodeTable,
			Columns: []string{personpage.NodeColumn},
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
			Table:   personpage.NodeTable,
			Columns: []string{personpage.NodeColumn},
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
	if _u.mutation.ImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   personpage.ImageTable,
			Columns: []string{personpage.ImageColumn},
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
			Table:   personpage.ImageTable,
			Columns: []string{personpage.ImageColumn},
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
	if _u.mutation.FeedImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   personpage.FeedImageTable,
			Columns: []string{personpage.FeedImageColumn},
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
			Table:   personpage.FeedImageTable,
			Columns: []string{personpage.FeedImageColumn},
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
			Table:   personpage.RelatedLinksTable,
			Columns: []string{personpage.RelatedLinksColumn},
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
			Table:   personpage.RelatedLinksTable,
			Columns: []string{personpage.RelatedLinksColumn},
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
			Table:   personpage.RelatedLinksTable,
			Columns: []string{personpage.RelatedLinksColumn},
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
	_node = &PersonPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
