// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
)

// PersonPageCreate is the builder for creating a PersonPage entity.
type PersonPageCreate struct {
	config
	mutation *PersonPageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonPageCreate) SetCreatedAt(v time.Time) *PersonPageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableCreatedAt(v *time.Time) *PersonPageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PersonPageCreate) SetUpdatedAt(v time.Time) *PersonPageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableUpdatedAt(v *time.Time) *PersonPageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTelephone sets the "telephone" field.
func (_c *PersonPageCreate) SetTelephone(v string) *PersonPageCreate {
	_c.mutation.SetTelephone(v)
	return _c
}

// SetNillableTelephone sets the "telephone" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableTelephone(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetTelephone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *PersonPageCreate) SetEmail(v string) *PersonPageCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableEmail(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetAddress1 sets the "address_1" field.
func (_c *PersonPageCreate) SetAddress1(v string) *PersonPageCreate {
	_c.mutation.SetAddress1(v)
	return _c
}

// SetNillableAddress1 sets the "address_1" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableAddress1(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetAddress1(*v)
	}
	return _c
}

// SetAddress2 sets the "address_2" field.
func (_c *PersonPageCreate) SetAddress2(v string) *PersonPageCreate {
	_c.mutation.SetAddress2(v)
	return _c
}

// SetNillableAddress2 sets the "address_2" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableAddress2(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetAddress2(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *PersonPageCreate) SetCity(v string) *PersonPageCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableCity(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *PersonPageCreate) SetCountry(v string) *PersonPageCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableCountry(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetPostCode sets the "post_code" field.
func (_c *PersonPageCreate) SetPostCode(v string) *PersonPageCreate {
	_c.mutation.SetPostCode(v)
	return _c
}

// SetNillablePostCode sets the "post_code" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillablePostCode(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetPostCode(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *PersonPageCreate) SetNodeID(v uuid.UUID) *PersonPageCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PersonPageCreate) SetFirstName(v string) *PersonPageCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PersonPageCreate) SetLastName(v string) *PersonPageCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *PersonPageCreate) SetRole(v string) *PersonPageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableRole(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetIntro sets the "intro" field.
func (_c *PersonPageCreate) SetIntro(v string) *PersonPageCreate {
	_c.mutation.SetIntro(v)
	return _c
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableIntro(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetIntro(*v)
	}
	return _c
}

// SetBiography sets the "biography" field.
func (_c *PersonPageCreate) SetBiography(v string) *PersonPageCreate {
	_c.mutation.SetBiography(v)
	return _c
}

// SetNillableBiography sets the "biography" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableBiography(v *string) *PersonPageCreate {
	if v != nil {
		_c.SetBiography(*v)
	}
	return _c
}

// SetImageID sets the "image_id" field.
func (_c *PersonPageCreate) SetImageID(v uuid.UUID) *PersonPageCreate {
	_c.mutation.SetImageID(v)
	return _c
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableImageID(v *uuid.UUID) *PersonPageCreate {
	if v != nil {
		_c.SetImageID(*v)
	}
	return _c
}

// SetFeedImageID sets the "feed_image_id" field.
func (_c *PersonPageCreate) SetFeedImageID(v uuid.UUID) *PersonPageCreate {
	_c.mutation.SetFeedImageID(v)
	return _c
}

// SetNillableFeedImageID sets the "feed_image_id" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableFeedImageID(v *uuid.UUID) *PersonPageCreate {
	if v != nil {
		_c.SetFeedImageID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonPageCreate) SetID(v uuid.UUID) *PersonPageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PersonPageCreate) SetNillableID(v *uuid.UUID) *PersonPageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *PersonPageCreate) SetNode(v *Node) *PersonPageCreate {
	return _c.SetNodeID(v.ID)
}

// SetImage sets the "image" edge to the Image entity.
func (_c *PersonPageCreate) SetImage(v *Image) *PersonPageCreate {
	return _c.SetImageID(v.ID)
}

// SetFeedImage sets the "feed_image" edge to the Image entity.
func (_c *PersonPageCreate) SetFeedImage(v *Image) *PersonPageCreate {
	return _c.SetFeedImageID(v.ID)
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by IDs.
func (_c *PersonPageCreate) AddRelatedLinkIDs(ids ...uuid.UUID) *PersonPageCreate {
	_c.mutation.AddRelatedLinkIDs(ids...)
	return _c
}

// AddRelatedLinks adds the "related_links" edges to the RelatedLink entity.
func (_c *PersonPageCreate) AddRelatedLinks(v ...*RelatedLink) *PersonPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRelatedLinkIDs(ids...)
}

// Mutation returns the PersonPageMutation object of the builder.
func (_c *PersonPageCreate) Mutation() *PersonPageMutation {
	return _c.mutation
}

// Save creates the PersonPage in the database.
func (_c *PersonPageCreate) Save(ctx context.Context) (*PersonPage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonPageCreate) SaveX(ctx context.Context) *PersonPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonPageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := personpage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := personpage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := personpage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonPageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PersonPage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PersonPage.updated_at"`)}
	}
	if v, ok := _c.mutation.Telephone(); ok {
		if err := personpage.TelephoneValidator(v); err != nil {
			return &ValidationError{Name: "telephone", err: fmt.Errorf(`repo: validator failed for field "PersonPage.telephone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := personpage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "PersonPage.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Address1(); ok {
		if err := personpage.Address1Validator(v); err != nil {
			return &ValidationError{Name: "address_1", err: fmt.Errorf(`repo: validator failed for field "PersonPage.address_1": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Address2(); ok {
		if err := personpage.Address2Validator(v); err != nil {
			return &ValidationError{Name: "address_2", err: fmt.Errorf(`repo: validator failed for field "PersonPage.address_2": %w`, err)}
		}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := personpage.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "PersonPage.city": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Country(); ok {
		if err := personpage.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`repo: validator failed for field "PersonPage.country": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PostCode(); ok {
		if err := personpage.PostCodeValidator(v); err != nil {
			return &ValidationError{Name: "post_code", err: fmt.Errorf(`repo: validator failed for field "PersonPage.post_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`repo: missing required field "PersonPage.node_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "PersonPage.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := personpage.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "PersonPage.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "PersonPage.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := personpage.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "PersonPage.last_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := personpage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "PersonPage.role": %w`, err)}
		}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`repo: missing required edge "PersonPage.node"`)}
	}
	return nil
}

func (_c *PersonPageCreate) sqlSave(ctx context.Context) (*PersonPage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PersonPageCreate) createSpec() (*PersonPage, *sqlgraph.CreateSpec) {
	var (
		_node = &PersonPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(personpage.Table, sqlgraph.NewFieldSpec(personpage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(personpage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(personpage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Telephone(); ok {
		_spec.SetField(personpage.FieldTelephone, field.TypeString, value)
		_node.Telephone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(personpage.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Address1(); ok {
		_spec.SetField(personpage.FieldAddress1, field.TypeString, value)
		_node.Address1 = value
	}
	if value, ok := _c.mutation.Address2(); ok {
		_spec.SetField(personpage.FieldAddress2, field.TypeString, value)
		_node.Address2 = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(personpage.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(personpage.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.PostCode(); ok {
		_spec.SetField(personpage.FieldPostCode, field.TypeString, value)
		_node.PostCode = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(personpage.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(personpage.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(personpage.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Intro(); ok {
		_spec.SetField(personpage.FieldIntro, field.TypeString, value)
		_node.Intro = value
	}
	if value, ok := _c.mutation.Biography(); ok {
		_spec.SetField(personpage.FieldBiography, field.TypeString, value)
		_node.Biography = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
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
		_node.NodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ImageIDs(); len(nodes) > 0 {
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
		_node.ImageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeedImageIDs(); len(nodes) > 0 {
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
		_node.FeedImageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RelatedLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PersonPageCreateBulk is the builder for creating many PersonPage entities in bulk.
type PersonPageCreateBulk struct {
	config
	err      error
	builders []*PersonPageCreate
}

// Save creates the PersonPage entities in the database.
func (_c *PersonPageCreateBulk) Save(ctx context.Context) ([]*PersonPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PersonPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonPageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PersonPageCreateBulk) SaveX(ctx context.Context) []*PersonPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
