// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/advert"
	"github.com/helenb/wagtail-torchbox/internal/repo/advertplacement"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/carouselitem"
	"github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/internal/repo/homepage"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/jobindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/jobpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/personindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/tag"
	"github.com/helenb/wagtail-torchbox/internal/repo/workindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workscreenshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdvert          = "Advert"
	TypeAdvertPlacement = "AdvertPlacement"
	TypeBlogAuthorship  = "BlogAuthorship"
	TypeBlogIndexPage   = "BlogIndexPage"
	TypeBlogPage        = "BlogPage"
	TypeCarouselItem    = "CarouselItem"
	TypeDocument        = "Document"
	TypeHomePage        = "HomePage"
	TypeImage           = "Image"
	TypeJobIndexPage    = "JobIndexPage"
	TypeJobPage         = "JobPage"
	TypeNode            = "Node"
	TypePersonIndexPage = "PersonIndexPage"
	TypePersonPage      = "PersonPage"
	TypeRelatedLink     = "RelatedLink"
	TypeStandardPage    = "StandardPage"
	TypeTag             = "Tag"
	TypeWorkIndexPage   = "WorkIndexPage"
	TypeWorkPage        = "WorkPage"
	TypeWorkScreenshot  = "WorkScreenshot"
)

// AdvertMutation represents an operation that mutates the Advert nodes in the graph.
type AdvertMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	text              *string
	url               *string
	clearedFields     map[string]struct{}
	node              *uuid.UUID
	clearednode       bool
	placements        map[uuid.UUID]struct{}
	removedplacements map[uuid.UUID]struct{}
	clearedplacements bool
	done              bool
	oldValue          func(context.Context) (*Advert, error)
	predicates        []predicate.Advert
}

var _ ent.Mutation = (*AdvertMutation)(nil)

// advertOption allows management of the mutation configuration using functional options.
type advertOption func(*AdvertMutation)

// newAdvertMutation creates new mutation for the Advert entity.
func newAdvertMutation(c config, op Op, opts ...advertOption) *AdvertMutation {
	m := &AdvertMutation{
		config:        c,
		op:            op,
		typ:           TypeAdvert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdvertID sets the ID field of the mutation.
func withAdvertID(id uuid.UUID) advertOption {
	return func(m *AdvertMutation) {
		var (
			err   error
			once  sync.Once
			value *Advert
		)
		m.oldValue = func(ctx context.Context) (*Advert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Advert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdvert sets the old Advert of the mutation.
func withAdvert(node *Advert) advertOption {
	return func(m *AdvertMutation) {
		m.oldValue = func(context.Context) (*Advert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdvertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdvertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Advert entities.
func (m *AdvertMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdvertMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdvertMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Advert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AdvertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdvertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Advert entity.
// If the Advert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdvertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdvertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AdvertMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AdvertMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Advert entity.
// If the Advert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdvertMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AdvertMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetText sets the "text" field.
func (m *AdvertMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *AdvertMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Advert entity.
// If the Advert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdvertMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *AdvertMutation) ResetText() {
	m.text = nil
}

// SetURL sets the "url" field.
func (m *AdvertMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *AdvertMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Advert entity.
// If the Advert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdvertMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *AdvertMutation) ClearURL() {
	m.url = nil
	m.clearedFields[advert.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *AdvertMutation) URLCleared() bool {
	_, ok := m.clearedFields[advert.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *AdvertMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, advert.FieldURL)
}

// SetNodeID sets the "node_id" field.
func (m *AdvertMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *AdvertMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the Advert entity.
// If the Advert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdvertMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ClearNodeID clears the value of the "node_id" field.
func (m *AdvertMutation) ClearNodeID() {
	m.node = nil
	m.clearedFields[advert.FieldNodeID] = struct{}{}
}

// NodeIDCleared returns if the "node_id" field was cleared in this mutation.
func (m *AdvertMutation) NodeIDCleared() bool {
	_, ok := m.clearedFields[advert.FieldNodeID]
	return ok
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *AdvertMutation) ResetNodeID() {
	m.node = nil
	delete(m.clearedFields, advert.FieldNodeID)
}

// ClearNode clears the "node" edge to the Node entity.
func (m *AdvertMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[advert.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *AdvertMutation) NodeCleared() bool {
	return m.NodeIDCleared() || m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *AdvertMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *AdvertMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// AddPlacementIDs adds the "placements" edge to the AdvertPlacement entity by ids.
func (m *AdvertMutation) AddPlacementIDs(ids ...uuid.UUID) {
	if m.placements == nil {
		m.placements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.placements[ids[i]] = struct{}{}
	}
}

// ClearPlacements clears the "placements" edge to the AdvertPlacement entity.
func (m *AdvertMutation) ClearPlacements() {
	m.clearedplacements = true
}

// PlacementsCleared reports if the "placements" edge to the AdvertPlacement entity was cleared.
func (m *AdvertMutation) PlacementsCleared() bool {
	return m.clearedplacements
}

// RemovePlacementIDs removes the "placements" edge to the AdvertPlacement entity by IDs.
func (m *AdvertMutation) RemovePlacementIDs(ids ...uuid.UUID) {
	if m.removedplacements == nil {
		m.removedplacements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.placements, ids[i])
		m.removedplacements[ids[i]] = struct{}{}
	}
}

// RemovedPlacements returns the removed IDs of the "placements" edge to the AdvertPlacement entity.
func (m *AdvertMutation) RemovedPlacementsIDs() (ids []uuid.UUID) {
	for id := range m.removedplacements {
		ids = append(ids, id)
	}
	return
}

// PlacementsIDs returns the "placements" edge IDs in the mutation.
func (m *AdvertMutation) PlacementsIDs() (ids []uuid.UUID) {
	for id := range m.placements {
		ids = append(ids, id)
	}
	return
}

// ResetPlacements resets all changes to the "placements" edge.
func (m *AdvertMutation) ResetPlacements() {
	m.placements = nil
	m.clearedplacements = false
	m.removedplacements = nil
}

// Where appends a list predicates to the AdvertMutation builder.
func (m *AdvertMutation) Where(ps ...predicate.Advert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdvertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdvertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Advert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdvertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdvertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Advert).
func (m *AdvertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdvertMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, advert.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, advert.FieldUpdatedAt)
	}
	if m.text != nil {
		fields = append(fields, advert.FieldText)
	}
	if m.url != nil {
		fields = append(fields, advert.FieldURL)
	}
	if m.node != nil {
		fields = append(fields, advert.FieldNodeID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdvertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case advert.FieldCreatedAt:
		return m.CreatedAt()
	case advert.FieldUpdatedAt:
		return m.UpdatedAt()
	case advert.FieldText:
		return m.Text()
	case advert.FieldURL:
		return m.URL()
	case advert.FieldNodeID:
		return m.NodeID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdvertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case advert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case advert.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case advert.FieldText:
		return m.OldText(ctx)
	case advert.FieldURL:
		return m.OldURL(ctx)
	case advert.FieldNodeID:
		return m.OldNodeID(ctx)
	}
	return nil, fmt.Errorf("unknown Advert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdvertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case advert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case advert.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case advert.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case advert.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case advert.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	}
	return fmt.Errorf("unknown Advert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdvertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdvertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdvertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Advert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdvertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(advert.FieldURL) {
		fields = append(fields, advert.FieldURL)
	}
	if m.FieldCleared(advert.FieldNodeID) {
		fields = append(fields, advert.FieldNodeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdvertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdvertMutation) ClearField(name string) error {
	switch name {
	case advert.FieldURL:
		m.ClearURL()
		return nil
	case advert.FieldNodeID:
		m.ClearNodeID()
		return nil
	}
	return fmt.Errorf("unknown Advert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdvertMutation) ResetField(name string) error {
	switch name {
	case advert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case advert.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case advert.FieldText:
		m.ResetText()
		return nil
	case advert.FieldURL:
		m.ResetURL()
		return nil
	case advert.FieldNodeID:
		m.ResetNodeID()
		return nil
	}
	return fmt.Errorf("unknown Advert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdvertMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.node != nil {
		edges = append(edges, advert.EdgeNode)
	}
	if m.placements != nil {
		edges = append(edges, advert.EdgePlacements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdvertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case advert.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	case advert.EdgePlacements:
		ids := make([]ent.Value, 0, len(m.placements))
		for id := range m.placements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdvertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedplacements != nil {
		edges = append(edges, advert.EdgePlacements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdvertMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case advert.EdgePlacements:
		ids := make([]ent.Value, 0, len(m.removedplacements))
		for id := range m.removedplacements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdvertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednode {
		edges = append(edges, advert.EdgeNode)
	}
	if m.clearedplacements {
		edges = append(edges, advert.EdgePlacements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdvertMutation) EdgeCleared(name string) bool {
	switch name {
	case advert.EdgeNode:
		return m.clearednode
	case advert.EdgePlacements:
		return m.clearedplacements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdvertMutation) ClearEdge(name string) error {
	switch name {
	case advert.EdgeNode:
		m.ClearNode()
		return nil
	}
	return fmt.Errorf("unknown Advert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdvertMutation) ResetEdge(name string) error {
	switch name {
	case advert.EdgeNode:
		m.ResetNode()
		return nil
	case advert.EdgePlacements:
		m.ResetPlacements()
		return nil
	}
	return fmt.Errorf("unknown Advert edge %s", name)
}

// AdvertPlacementMutation represents an operation that mutates the AdvertPlacement nodes in the graph.
type AdvertPlacementMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	clearedFields map[string]struct{}
	node          *uuid.UUID
	clearednode   bool
	advert        *uuid.UUID
	clearedadvert bool
	done          bool
	oldValue      func(context.Context) (*AdvertPlacement, error)
	predicates    []predicate.AdvertPlacement
}

var _ ent.Mutation = (*AdvertPlacementMutation)(nil)

// advertplacementOption allows management of the mutation configuration using functional options.
type advertplacementOption func(*AdvertPlacementMutation)

// newAdvertPlacementMutation creates new mutation for the AdvertPlacement entity.
func newAdvertPlacementMutation(c config, op Op, opts ...advertplacementOption) *AdvertPlacementMutation {
	m := &AdvertPlacementMutation{
		config:        c,
		op:            op,
		typ:           TypeAdvertPlacement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdvertPlacementID sets the ID field of the mutation.
func withAdvertPlacementID(id uuid.UUID) advertplacementOption {
	return func(m *AdvertPlacementMutation) {
		var (
			err   error
			once  sync.Once
			value *AdvertPlacement
		)
		m.oldValue = func(ctx context.Context) (*AdvertPlacement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdvertPlacement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdvertPlacement sets the old AdvertPlacement of the mutation.
func withAdvertPlacement(node *AdvertPlacement) advertplacementOption {
	return func(m *AdvertPlacementMutation) {
		m.oldValue = func(context.Context) (*AdvertPlacement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdvertPlacementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdvertPlacementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdvertPlacement entities.
func (m *AdvertPlacementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdvertPlacementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdvertPlacementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdvertPlacement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNodeID sets the "node_id" field.
func (m *AdvertPlacementMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *AdvertPlacementMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the AdvertPlacement entity.
// If the AdvertPlacement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdvertPlacementMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *AdvertPlacementMutation) ResetNodeID() {
	m.node = nil
}

// SetAdvertID sets the "advert_id" field.
func (m *AdvertPlacementMutation) SetAdvertID(u uuid.UUID) {
	m.advert = &u
}

// AdvertID returns the value of the "advert_id" field in the mutation.
func (m *AdvertPlacementMutation) AdvertID() (r uuid.UUID, exists bool) {
	v := m.advert
	if v == nil {
		return
	}
	return *v, true
}

// OldAdvertID returns the old "advert_id" field's value of the AdvertPlacement entity.
// If the AdvertPlacement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdvertPlacementMutation) OldAdvertID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdvertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdvertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdvertID: %w", err)
	}
	return oldValue.AdvertID, nil
}

// ResetAdvertID resets all changes to the "advert_id" field.
func (m *AdvertPlacementMutation) ResetAdvertID() {
	m.advert = nil
}

// ClearNode clears the "node" edge to the Node entity.
func (m *AdvertPlacementMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[advertplacement.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *AdvertPlacementMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *AdvertPlacementMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *AdvertPlacementMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// ClearAdvert clears the "advert" edge to the Advert entity.
func (m *AdvertPlacementMutation) ClearAdvert() {
	m.clearedadvert = true
	m.clearedFields[advertplacement.FieldAdvertID] = struct{}{}
}

// AdvertCleared reports if the "advert" edge to the Advert entity was cleared.
func (m *AdvertPlacementMutation) AdvertCleared() bool {
	return m.clearedadvert
}

// AdvertIDs returns the "advert" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AdvertID instead. It exists only for internal usage by the builders.
func (m *AdvertPlacementMutation) AdvertIDs() (ids []uuid.UUID) {
	if id := m.advert; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAdvert resets all changes to the "advert" edge.
func (m *AdvertPlacementMutation) ResetAdvert() {
	m.advert = nil
	m.clearedadvert = false
}

// Where appends a list predicates to the AdvertPlacementMutation builder.
func (m *AdvertPlacementMutation) Where(ps ...predicate.AdvertPlacement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdvertPlacementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdvertPlacementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdvertPlacement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdvertPlacementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdvertPlacementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdvertPlacement).
func (m *AdvertPlacementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdvertPlacementMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.node != nil {
		fields = append(fields, advertplacement.FieldNodeID)
	}
	if m.advert != nil {
		fields = append(fields, advertplacement.FieldAdvertID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdvertPlacementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case advertplacement.FieldNodeID:
		return m.NodeID()
	case advertplacement.FieldAdvertID:
		return m.AdvertID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdvertPlacementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case advertplacement.FieldNodeID:
		return m.OldNodeID(ctx)
	case advertplacement.FieldAdvertID:
		return m.OldAdvertID(ctx)
	}
	return nil, fmt.Errorf("unknown AdvertPlacement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdvertPlacementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case advertplacement.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case advertplacement.FieldAdvertID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdvertID(v)
		return nil
	}
	return fmt.Errorf("unknown AdvertPlacement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdvertPlacementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdvertPlacementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdvertPlacementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdvertPlacement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdvertPlacementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdvertPlacementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdvertPlacementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdvertPlacement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdvertPlacementMutation) ResetField(name string) error {
	switch name {
	case advertplacement.FieldNodeID:
		m.ResetNodeID()
		return nil
	case advertplacement.FieldAdvertID:
		m.ResetAdvertID()
		return nil
	}
	return fmt.Errorf("unknown AdvertPlacement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdvertPlacementMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.node != nil {
		edges = append(edges, advertplacement.EdgeNode)
	}
	if m.advert != nil {
		edges = append(edges, advertplacement.EdgeAdvert)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdvertPlacementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case advertplacement.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	case advertplacement.EdgeAdvert:
		if id := m.advert; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdvertPlacementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdvertPlacementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdvertPlacementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednode {
		edges = append(edges, advertplacement.EdgeNode)
	}
	if m.clearedadvert {
		edges = append(edges, advertplacement.EdgeAdvert)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdvertPlacementMutation) EdgeCleared(name string) bool {
	switch name {
	case advertplacement.EdgeNode:
		return m.clearednode
	case advertplacement.EdgeAdvert:
		return m.clearedadvert
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdvertPlacementMutation) ClearEdge(name string) error {
	switch name {
	case advertplacement.EdgeNode:
		m.ClearNode()
		return nil
	case advertplacement.EdgeAdvert:
		m.ClearAdvert()
		return nil
	}
	return fmt.Errorf("unknown AdvertPlacement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdvertPlacementMutation) ResetEdge(name string) error {
	switch name {
	case advertplacement.EdgeNode:
		m.ResetNode()
		return nil
	case advertplacement.EdgeAdvert:
		m.ResetAdvert()
		return nil
	}
	return fmt.Errorf("unknown AdvertPlacement edge %s", name)
}

// BlogAuthorshipMutation represents an operation that mutates the BlogAuthorship nodes in the graph.
type BlogAuthorshipMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	sort_order       *int
	addsort_order    *int
	clearedFields    map[string]struct{}
	blog_page        *uuid.UUID
	clearedblog_page bool
	author           *uuid.UUID
	clearedauthor    bool
	done             bool
	oldValue         func(context.Context) (*BlogAuthorship, error)
	predicates       []predicate.BlogAuthorship
}

var _ ent.Mutation = (*BlogAuthorshipMutation)(nil)

// blogauthorshipOption allows management of the mutation configuration using functional options.
type blogauthorshipOption func(*BlogAuthorshipMutation)

// newBlogAuthorshipMutation creates new mutation for the BlogAuthorship entity.
func newBlogAuthorshipMutation(c config, op Op, opts ...blogauthorshipOption) *BlogAuthorshipMutation {
	m := &BlogAuthorshipMutation{
		config:        c,
		op:            op,
		typ:           TypeBlogAuthorship,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlogAuthorshipID sets the ID field of the mutation.
func withBlogAuthorshipID(id uuid.UUID) blogauthorshipOption {
	return func(m *BlogAuthorshipMutation) {
		var (
			err   error
			once  sync.Once
			value *BlogAuthorship
		)
		m.oldValue = func(ctx context.Context) (*BlogAuthorship, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlogAuthorship.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlogAuthorship sets the old BlogAuthorship of the mutation.
func withBlogAuthorship(node *BlogAuthorship) blogauthorshipOption {
	return func(m *BlogAuthorshipMutation) {
		m.oldValue = func(context.Context) (*BlogAuthorship, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlogAuthorshipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlogAuthorshipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlogAuthorship entities.
func (m *BlogAuthorshipMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlogAuthorshipMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlogAuthorshipMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlogAuthorship.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSortOrder sets the "sort_order" field.
func (m *BlogAuthorshipMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *BlogAuthorshipMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the BlogAuthorship entity.
// If the BlogAuthorship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogAuthorshipMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *BlogAuthorshipMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *BlogAuthorshipMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *BlogAuthorshipMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetBlogPageID sets the "blog_page_id" field.
func (m *BlogAuthorshipMutation) SetBlogPageID(u uuid.UUID) {
	m.blog_page = &u
}

// BlogPageID returns the value of the "blog_page_id" field in the mutation.
func (m *BlogAuthorshipMutation) BlogPageID() (r uuid.UUID, exists bool) {
	v := m.blog_page
	if v == nil {
		return
	}
	return *v, true
}

// OldBlogPageID returns the old "blog_page_id" field's value of the BlogAuthorship entity.
// If the BlogAuthorship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogAuthorshipMutation) OldBlogPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlogPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlogPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlogPageID: %w", err)
	}
	return oldValue.BlogPageID, nil
}

// ResetBlogPageID resets all changes to the "blog_page_id" field.
func (m *BlogAuthorshipMutation) ResetBlogPageID() {
	m.blog_page = nil
}

// SetPersonPageID sets the "person_page_id" field.
func (m *BlogAuthorshipMutation) SetPersonPageID(u uuid.UUID) {
	m.author = &u
}

// PersonPageID returns the value of the "person_page_id" field in the mutation.
func (m *BlogAuthorshipMutation) PersonPageID() (r uuid.UUID, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonPageID returns the old "person_page_id" field's value of the BlogAuthorship entity.
// If the BlogAuthorship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogAuthorshipMutation) OldPersonPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonPageID: %w", err)
	}
	return oldValue.PersonPageID, nil
}

// ClearPersonPageID clears the value of the "person_page_id" field.
func (m *BlogAuthorshipMutation) ClearPersonPageID() {
	m.author = nil
	m.clearedFields[blogauthorship.FieldPersonPageID] = struct{}{}
}

// PersonPageIDCleared returns if the "person_page_id" field was cleared in this mutation.
func (m *BlogAuthorshipMutation) PersonPageIDCleared() bool {
	_, ok := m.clearedFields[blogauthorship.FieldPersonPageID]
	return ok
}

// ResetPersonPageID resets all changes to the "person_page_id" field.
func (m *BlogAuthorshipMutation) ResetPersonPageID() {
	m.author = nil
	delete(m.clearedFields, blogauthorship.FieldPersonPageID)
}

// ClearBlogPage clears the "blog_page" edge to the BlogPage entity.
func (m *BlogAuthorshipMutation) ClearBlogPage() {
	m.clearedblog_page = true
	m.clearedFields[blogauthorship.FieldBlogPageID] = struct{}{}
}

// BlogPageCleared reports if the "blog_page" edge to the BlogPage entity was cleared.
func (m *BlogAuthorshipMutation) BlogPageCleared() bool {
	return m.clearedblog_page
}

// BlogPageIDs returns the "blog_page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlogPageID instead. It exists only for internal usage by the builders.
func (m *BlogAuthorshipMutation) BlogPageIDs() (ids []uuid.UUID) {
	if id := m.blog_page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlogPage resets all changes to the "blog_page" edge.
func (m *BlogAuthorshipMutation) ResetBlogPage() {
	m.blog_page = nil
	m.clearedblog_page = false
}

// SetAuthorID sets the "author" edge to the PersonPage entity by id.
func (m *BlogAuthorshipMutation) SetAuthorID(id uuid.UUID) {
	m.author = &id
}

// ClearAuthor clears the "author" edge to the PersonPage entity.
func (m *BlogAuthorshipMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[blogauthorship.FieldPersonPageID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the PersonPage entity was cleared.
func (m *BlogAuthorshipMutation) AuthorCleared() bool {
	return m.PersonPageIDCleared() || m.clearedauthor
}

// AuthorID returns the "author" edge ID in the mutation.
func (m *BlogAuthorshipMutation) AuthorID() (id uuid.UUID, exists bool) {
	if m.author != nil {
		return *m.author, true
	}
	return
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *BlogAuthorshipMutation) AuthorIDs() (ids []uuid.UUID) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *BlogAuthorshipMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// Where appends a list predicates to the BlogAuthorshipMutation builder.
func (m *BlogAuthorshipMutation) Where(ps ...predicate.BlogAuthorship) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlogAuthorshipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlogAuthorshipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlogAuthorship, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlogAuthorshipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlogAuthorshipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlogAuthorship).
func (m *BlogAuthorshipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlogAuthorshipMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sort_order != nil {
		fields = append(fields, blogauthorship.FieldSortOrder)
	}
	if m.blog_page != nil {
		fields = append(fields, blogauthorship.FieldBlogPageID)
	}
	if m.author != nil {
		fields = append(fields, blogauthorship.FieldPersonPageID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlogAuthorshipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blogauthorship.FieldSortOrder:
		return m.SortOrder()
	case blogauthorship.FieldBlogPageID:
		return m.BlogPageID()
	case blogauthorship.FieldPersonPageID:
		return m.PersonPageID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlogAuthorshipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blogauthorship.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case blogauthorship.FieldBlogPageID:
		return m.OldBlogPageID(ctx)
	case blogauthorship.FieldPersonPageID:
		return m.OldPersonPageID(ctx)
	}
	return nil, fmt.Errorf("unknown BlogAuthorship field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlogAuthorshipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blogauthorship.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case blogauthorship.FieldBlogPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlogPageID(v)
		return nil
	case blogauthorship.FieldPersonPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonPageID(v)
		return nil
	}
	return fmt.Errorf("unknown BlogAuthorship field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlogAuthorshipMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, blogauthorship.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlogAuthorshipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blogauthorship.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlogAuthorshipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blogauthorship.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown BlogAuthorship numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlogAuthorshipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blogauthorship.FieldPersonPageID) {
		fields = append(fields, blogauthorship.FieldPersonPageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlogAuthorshipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlogAuthorshipMutation) ClearField(name string) error {
	switch name {
	case blogauthorship.FieldPersonPageID:
		m.ClearPersonPageID()
		return nil
	}
	return fmt.Errorf("unknown BlogAuthorship nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlogAuthorshipMutation) ResetField(name string) error {
	switch name {
	case blogauthorship.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case blogauthorship.FieldBlogPageID:
		m.ResetBlogPageID()
		return nil
	case blogauthorship.FieldPersonPageID:
		m.ResetPersonPageID()
		return nil
	}
	return fmt.Errorf("unknown BlogAuthorship field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlogAuthorshipMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.blog_page != nil {
		edges = append(edges, blogauthorship.EdgeBlogPage)
	}
	if m.author != nil {
		edges = append(edges, blogauthorship.EdgeAuthor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlogAuthorshipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blogauthorship.EdgeBlogPage:
		if id := m.blog_page; id != nil {
			return []ent.Value{*id}
		}
	case blogauthorship.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlogAuthorshipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlogAuthorshipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlogAuthorshipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedblog_page {
		edges = append(edges, blogauthorship.EdgeBlogPage)
	}
	if m.clearedauthor {
		edges = append(edges, blogauthorship.EdgeAuthor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlogAuthorshipMutation) EdgeCleared(name string) bool {
	switch name {
	case blogauthorship.EdgeBlogPage:
		return m.clearedblog_page
	case blogauthorship.EdgeAuthor:
		return m.clearedauthor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlogAuthorshipMutation) ClearEdge(name string) error {
	switch name {
	case blogauthorship.EdgeBlogPage:
		m.ClearBlogPage()
		return nil
	case blogauthorship.EdgeAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown BlogAuthorship unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlogAuthorshipMutation) ResetEdge(name string) error {
	switch name {
	case blogauthorship.EdgeBlogPage:
		m.ResetBlogPage()
		return nil
	case blogauthorship.EdgeAuthor:
		m.ResetAuthor()
		return nil
	}
	return fmt.Errorf("unknown BlogAuthorship edge %s", name)
}

// BlogIndexPageMutation represents an operation that mutates the BlogIndexPage nodes in the graph.
type BlogIndexPageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	intro                *string
	clearedFields        map[string]struct{}
	node                 *uuid.UUID
	clearednode          bool
	related_links        map[uuid.UUID]struct{}
	removedrelated_links map[uuid.UUID]struct{}
	clearedrelated_links bool
	done                 bool
	oldValue             func(context.Context) (*BlogIndexPage, error)
	predicates           []predicate.BlogIndexPage
}

var _ ent.Mutation = (*BlogIndexPageMutation)(nil)

// blogindexpageOption allows management of the mutation configuration using functional options.
type blogindexpageOption func(*BlogIndexPageMutation)

// newBlogIndexPageMutation creates new mutation for the BlogIndexPage entity.
func newBlogIndexPageMutation(c config, op Op, opts ...blogindexpageOption) *BlogIndexPageMutation {
	m := &BlogIndexPageMutation{
		config:        c,
		op:            op,
		typ:           TypeBlogIndexPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlogIndexPageID sets the ID field of the mutation.
func withBlogIndexPageID(id uuid.UUID) blogindexpageOption {
	return func(m *BlogIndexPageMutation) {
		var (
			err   error
			once  sync.Once
			value *BlogIndexPage
		)
		m.oldValue = func(ctx context.Context) (*BlogIndexPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlogIndexPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlogIndexPage sets the old BlogIndexPage of the mutation.
func withBlogIndexPage(node *BlogIndexPage) blogindexpageOption {
	return func(m *BlogIndexPageMutation) {
		m.oldValue = func(context.Context) (*BlogIndexPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlogIndexPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlogIndexPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlogIndexPage entities.
func (m *BlogIndexPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlogIndexPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlogIndexPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlogIndexPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BlogIndexPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlogIndexPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlogIndexPage entity.
// If the BlogIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogIndexPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlogIndexPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BlogIndexPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BlogIndexPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BlogIndexPage entity.
// If the BlogIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogIndexPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BlogIndexPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNodeID sets the "node_id" field.
func (m *BlogIndexPageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *BlogIndexPageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the BlogIndexPage entity.
// If the BlogIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogIndexPageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *BlogIndexPageMutation) ResetNodeID() {
	m.node = nil
}

// SetIntro sets the "intro" field.
func (m *BlogIndexPageMutation) SetIntro(s string) {
	m.intro = &s
}

// Intro returns the value of the "intro" field in the mutation.
func (m *BlogIndexPageMutation) Intro() (r string, exists bool) {
	v := m.intro
	if v == nil {
		return
	}
	return *v, true
}

// OldIntro returns the old "intro" field's value of the BlogIndexPage entity.
// If the BlogIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogIndexPageMutation) OldIntro(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntro: %w", err)
	}
	return oldValue.Intro, nil
}

// ClearIntro clears the value of the "intro" field.
func (m *BlogIndexPageMutation) ClearIntro() {
	m.intro = nil
	m.clearedFields[blogindexpage.FieldIntro] = struct{}{}
}

// IntroCleared returns if the "intro" field was cleared in this mutation.
func (m *BlogIndexPageMutation) IntroCleared() bool {
	_, ok := m.clearedFields[blogindexpage.FieldIntro]
	return ok
}

// ResetIntro resets all changes to the "intro" field.
func (m *BlogIndexPageMutation) ResetIntro() {
	m.intro = nil
	delete(m.clearedFields, blogindexpage.FieldIntro)
}

// ClearNode clears the "node" edge to the Node entity.
func (m *BlogIndexPageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[blogindexpage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *BlogIndexPageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *BlogIndexPageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *BlogIndexPageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by ids.
func (m *BlogIndexPageMutation) AddRelatedLinkIDs(ids ...uuid.UUID) {
	if m.related_links == nil {
		m.related_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.related_links[ids[i]] = struct{}{}
	}
}

// ClearRelatedLinks clears the "related_links" edge to the RelatedLink entity.
func (m *BlogIndexPageMutation) ClearRelatedLinks() {
	m.clearedrelated_links = true
}

// RelatedLinksCleared reports if the "related_links" edge to the RelatedLink entity was cleared.
func (m *BlogIndexPageMutation) RelatedLinksCleared() bool {
	return m.clearedrelated_links
}

// RemoveRelatedLinkIDs removes the "related_links" edge to the RelatedLink entity by IDs.
func (m *BlogIndexPageMutation) RemoveRelatedLinkIDs(ids ...uuid.UUID) {
	if m.removedrelated_links == nil {
		m.removedrelated_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.related_links, ids[i])
		m.removedrelated_links[ids[i]] = struct{}{}
	}
}

// RemovedRelatedLinks returns the removed IDs of the "related_links" edge to the RelatedLink entity.
func (m *BlogIndexPageMutation) RemovedRelatedLinksIDs() (ids []uuid.UUID) {
	for id := range m.removedrelated_links {
		ids = append(ids, id)
	}
	return
}

// RelatedLinksIDs returns the "related_links" edge IDs in the mutation.
func (m *BlogIndexPageMutation) RelatedLinksIDs() (ids []uuid.UUID) {
	for id := range m.related_links {
		ids = append(ids, id)
	}
	return
}

// ResetRelatedLinks resets all changes to the "related_links" edge.
func (m *BlogIndexPageMutation) ResetRelatedLinks() {
	m.related_links = nil
	m.clearedrelated_links = false
	m.removedrelated_links = nil
}

// Where appends a list predicates to the BlogIndexPageMutation builder.
func (m *BlogIndexPageMutation) Where(ps ...predicate.BlogIndexPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlogIndexPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlogIndexPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlogIndexPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlogIndexPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlogIndexPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlogIndexPage).
func (m *BlogIndexPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlogIndexPageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, blogindexpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, blogindexpage.FieldUpdatedAt)
	}
	if m.node != nil {
		fields = append(fields, blogindexpage.FieldNodeID)
	}
	if m.intro != nil {
		fields = append(fields, blogindexpage.FieldIntro)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlogIndexPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blogindexpage.FieldCreatedAt:
		return m.CreatedAt()
	case blogindexpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case blogindexpage.FieldNodeID:
		return m.NodeID()
	case blogindexpage.FieldIntro:
		return m.Intro()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlogIndexPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blogindexpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case blogindexpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case blogindexpage.FieldNodeID:
		return m.OldNodeID(ctx)
	case blogindexpage.FieldIntro:
		return m.OldIntro(ctx)
	}
	return nil, fmt.Errorf("unknown BlogIndexPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlogIndexPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blogindexpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case blogindexpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case blogindexpage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case blogindexpage.FieldIntro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntro(v)
		return nil
	}
	return fmt.Errorf("unknown BlogIndexPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlogIndexPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlogIndexPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlogIndexPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BlogIndexPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlogIndexPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blogindexpage.FieldIntro) {
		fields = append(fields, blogindexpage.FieldIntro)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlogIndexPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlogIndexPageMutation) ClearField(name string) error {
	switch name {
	case blogindexpage.FieldIntro:
		m.ClearIntro()
		return nil
	}
	return fmt.Errorf("unknown BlogIndexPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlogIndexPageMutation) ResetField(name string) error {
	switch name {
	case blogindexpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case blogindexpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case blogindexpage.FieldNodeID:
		m.ResetNodeID()
		return nil
	case blogindexpage.FieldIntro:
		m.ResetIntro()
		return nil
	}
	return fmt.Errorf("unknown BlogIndexPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlogIndexPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.node != nil {
		edges = append(edges, blogindexpage.EdgeNode)
	}
	if m.related_links != nil {
		edges = append(edges, blogindexpage.EdgeRelatedLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlogIndexPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blogindexpage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	case blogindexpage.EdgeRelatedLinks:
		ids := make([]ent.Value, 0, len(m.related_links))
		for id := range m.related_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlogIndexPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrelated_links != nil {
		edges = append(edges, blogindexpage.EdgeRelatedLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlogIndexPageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case blogindexpage.EdgeRelatedLinks:
		ids := make([]ent.Value, 0, len(m.removedrelated_links))
		for id := range m.removedrelated_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlogIndexPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednode {
		edges = append(edges, blogindexpage.EdgeNode)
	}
	if m.clearedrelated_links {
		edges = append(edges, blogindexpage.EdgeRelatedLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlogIndexPageMutation) EdgeCleared(name string) bool {
	switch name {
	case blogindexpage.EdgeNode:
		return m.clearednode
	case blogindexpage.EdgeRelatedLinks:
		return m.clearedrelated_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlogIndexPageMutation) ClearEdge(name string) error {
	switch name {
	case blogindexpage.EdgeNode:
		m.ClearNode()
		return nil
	}
	return fmt.Errorf("unknown BlogIndexPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlogIndexPageMutation) ResetEdge(name string) error {
	switch name {
	case blogindexpage.EdgeNode:
		m.ResetNode()
		return nil
	case blogindexpage.EdgeRelatedLinks:
		m.ResetRelatedLinks()
		return nil
	}
	return fmt.Errorf("unknown BlogIndexPage edge %s", name)
}

// BlogPageMutation represents an operation that mutates the BlogPage nodes in the graph.
type BlogPageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	intro                *string
	body                 *string
	date                 *time.Time
	clearedFields        map[string]struct{}
	node                 *uuid.UUID
	clearednode          bool
	feed_image           *uuid.UUID
	clearedfeed_image    bool
	tags                 map[uuid.UUID]struct{}
	removedtags          map[uuid.UUID]struct{}
	clearedtags          bool
	related_links        map[uuid.UUID]struct{}
	removedrelated_links map[uuid.UUID]struct{}
	clearedrelated_links bool
	authorships          map[uuid.UUID]struct{}
	removedauthorships   map[uuid.UUID]struct{}
	clearedauthorships   bool
	done                 bool
	oldValue             func(context.Context) (*BlogPage, error)
	predicates           []predicate.BlogPage
}

var _ ent.Mutation = (*BlogPageMutation)(nil)

// blogpageOption allows management of the mutation configuration using functional options.
type blogpageOption func(*BlogPageMutation)

// newBlogPageMutation creates new mutation for the BlogPage entity.
func newBlogPageMutation(c config, op Op, opts ...blogpageOption) *BlogPageMutation {
	m := &BlogPageMutation{
		config:        c,
		op:            op,
		typ:           TypeBlogPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlogPageID sets the ID field of the mutation.
func withBlogPageID(id uuid.UUID) blogpageOption {
	return func(m *BlogPageMutation) {
		var (
			err   error
			once  sync.Once
			value *BlogPage
		)
		m.oldValue = func(ctx context.Context) (*BlogPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlogPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlogPage sets the old BlogPage of the mutation.
func withBlogPage(node *BlogPage) blogpageOption {
	return func(m *BlogPageMutation) {
		m.oldValue = func(context.Context) (*BlogPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlogPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlogPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlogPage entities.
func (m *BlogPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlogPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlogPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlogPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BlogPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlogPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlogPage entity.
// If the BlogPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlogPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BlogPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BlogPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BlogPage entity.
// If the BlogPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BlogPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNodeID sets the "node_id" field.
func (m *BlogPageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *BlogPageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the BlogPage entity.
// If the BlogPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogPageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *BlogPageMutation) ResetNodeID() {
	m.node = nil
}

// SetIntro sets the "intro" field.
func (m *BlogPageMutation) SetIntro(s string) {
	m.intro = &s
}

// Intro returns the value of the "intro" field in the mutation.
func (m *BlogPageMutation) Intro() (r string, exists bool) {
	v := m.intro
	if v == nil {
		return
	}
	return *v, true
}

// OldIntro returns the old "intro" field's value of the BlogPage entity.
// If the BlogPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogPageMutation) OldIntro(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntro: %w", err)
	}
	return oldValue.Intro, nil
}

// ClearIntro clears the value of the "intro" field.
func (m *BlogPageMutation) ClearIntro() {
	m.intro = nil
	m.clearedFields[blogpage.FieldIntro] = struct{}{}
}

// IntroCleared returns if the "intro" field was cleared in this mutation.
func (m *BlogPageMutation) IntroCleared() bool {
	_, ok := m.clearedFields[blogpage.FieldIntro]
	return ok
}

// ResetIntro resets all changes to the "intro" field.
func (m *BlogPageMutation) ResetIntro() {
	m.intro = nil
	delete(m.clearedFields, blogpage.FieldIntro)
}

// SetBody sets the "body" field.
func (m *BlogPageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *BlogPageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the BlogPage entity.
// If the BlogPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogPageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *BlogPageMutation) ResetBody() {
	m.body = nil
}

// SetDate sets the "date" field.
func (m *BlogPageMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *BlogPageMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the BlogPage entity.
// If the BlogPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogPageMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *BlogPageMutation) ResetDate() {
	m.date = nil
}

// SetFeedImageID sets the "feed_image_id" field.
func (m *BlogPageMutation) SetFeedImageID(u uuid.UUID) {
	m.feed_image = &u
}

// FeedImageID returns the value of the "feed_image_id" field in the mutation.
func (m *BlogPageMutation) FeedImageID() (r uuid.UUID, exists bool) {
	v := m.feed_image
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedImageID returns the old "feed_image_id" field's value of the BlogPage entity.
// If the BlogPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlogPageMutation) OldFeedImageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedImageID: %w", err)
	}
	return oldValue.FeedImageID, nil
}

// ClearFeedImageID clears the value of the "feed_image_id" field.
func (m *BlogPageMutation) ClearFeedImageID() {
	m.feed_image = nil
	m.clearedFields[blogpage.FieldFeedImageID] = struct{}{}
}

// FeedImageIDCleared returns if the "feed_image_id" field was cleared in this mutation.
func (m *BlogPageMutation) FeedImageIDCleared() bool {
	_, ok := m.clearedFields[blogpage.FieldFeedImageID]
	return ok
}

// ResetFeedImageID resets all changes to the "feed_image_id" field.
func (m *BlogPageMutation) ResetFeedImageID() {
	m.feed_image = nil
	delete(m.clearedFields, blogpage.FieldFeedImageID)
}

// ClearNode clears the "node" edge to the Node entity.
func (m *BlogPageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[blogpage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *BlogPageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *BlogPageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *BlogPageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// ClearFeedImage clears the "feed_image" edge to the Image entity.
func (m *BlogPageMutation) ClearFeedImage() {
	m.clearedfeed_image = true
	m.clearedFields[blogpage.FieldFeedImageID] = struct{}{}
}

// FeedImageCleared reports if the "feed_image" edge to the Image entity was cleared.
func (m *BlogPageMutation) FeedImageCleared() bool {
	return m.FeedImageIDCleared() || m.clearedfeed_image
}

// FeedImageIDs returns the "feed_image" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeedImageID instead. It exists only for internal usage by the builders.
func (m *BlogPageMutation) FeedImageIDs() (ids []uuid.UUID) {
	if id := m.feed_image; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeedImage resets all changes to the "feed_image" edge.
func (m *BlogPageMutation) ResetFeedImage() {
	m.feed_image = nil
	m.clearedfeed_image = false
}

// AddTagIDs adds the "tags" edge to the Tag entity by ids.
func (m *BlogPageMutation) AddTagIDs(ids ...uuid.UUID) {
	if m.tags == nil {
		m.tags = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tags[ids[i]] = struct{}{}
	}
}

// ClearTags clears the "tags" edge to the Tag entity.
func (m *BlogPageMutation) ClearTags() {
	m.clearedtags = true
}

// TagsCleared reports if the "tags" edge to the Tag entity was cleared.
func (m *BlogPageMutation) TagsCleared() bool {
	return m.clearedtags
}

// RemoveTagIDs removes the "tags" edge to the Tag entity by IDs.
func (m *BlogPageMutation) RemoveTagIDs(ids ...uuid.UUID) {
	if m.removedtags == nil {
		m.removedtags = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tags, ids[i])
		m.removedtags[ids[i]] = struct{}{}
	}
}

// RemovedTags returns the removed IDs of the "tags" edge to the Tag entity.
func (m *BlogPageMutation) RemovedTagsIDs() (ids []uuid.UUID) {
	for id := range m.removedtags {
		ids = append(ids, id)
	}
	return
}

// TagsIDs returns the "tags" edge IDs in the mutation.
func (m *BlogPageMutation) TagsIDs() (ids []uuid.UUID) {
	for id := range m.tags {
		ids = append(ids, id)
	}
	return
}

// ResetTags resets all changes to the "tags" edge.
func (m *BlogPageMutation) ResetTags() {
	m.tags = nil
	m.clearedtags = false
	m.removedtags = nil
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by ids.
func (m *BlogPageMutation) AddRelatedLinkIDs(ids ...uuid.UUID) {
	if m.related_links == nil {
		m.related_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.related_links[ids[i]] = struct{}{}
	}
}

// ClearRelatedLinks clears the "related_links" edge to the RelatedLink entity.
func (m *BlogPageMutation) ClearRelatedLinks() {
	m.clearedrelated_links = true
}

// RelatedLinksCleared reports if the "related_links" edge to the RelatedLink entity was cleared.
func (m *BlogPageMutation) RelatedLinksCleared() bool {
	return m.clearedrelated_links
}

// RemoveRelatedLinkIDs removes the "related_links" edge to the RelatedLink entity by IDs.
func (m *BlogPageMutation) RemoveRelatedLinkIDs(ids ...uuid.UUID) {
	if m.removedrelated_links == nil {
		m.removedrelated_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.related_links, ids[i])
		m.removedrelated_links[ids[i]] = struct{}{}
	}
}

// RemovedRelatedLinks returns the removed IDs of the "related_links" edge to the RelatedLink entity.
func (m *BlogPageMutation) RemovedRelatedLinksIDs() (ids []uuid.UUID) {
	for id := range m.removedrelated_links {
		ids = append(ids, id)
	}
	return
}

// RelatedLinksIDs returns the "related_links" edge IDs in the mutation.
func (m *BlogPageMutation) RelatedLinksIDs() (ids []uuid.UUID) {
	for id := range m.related_links {
		ids = append(ids, id)
	}
	return
}

// ResetRelatedLinks resets all changes to the "related_links" edge.
func (m *BlogPageMutation) ResetRelatedLinks() {
	m.related_links = nil
	m.clearedrelated_links = false
	m.removedrelated_links = nil
}

// AddAuthorshipIDs adds the "authorships" edge to the BlogAuthorship entity by ids.
func (m *BlogPageMutation) AddAuthorshipIDs(ids ...uuid.UUID) {
	if m.authorships == nil {
		m.authorships = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.authorships[ids[i]] = struct{}{}
	}
}

// ClearAuthorships clears the "authorships" edge to the BlogAuthorship entity.
func (m *BlogPageMutation) ClearAuthorships() {
	m.clearedauthorships = true
}

// AuthorshipsCleared reports if the "authorships" edge to the BlogAuthorship entity was cleared.
func (m *BlogPageMutation) AuthorshipsCleared() bool {
	return m.clearedauthorships
}

// RemoveAuthorshipIDs removes the "authorships" edge to the BlogAuthorship entity by IDs.
func (m *BlogPageMutation) RemoveAuthorshipIDs(ids ...uuid.UUID) {
	if m.removedauthorships == nil {
		m.removedauthorships = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.authorships, ids[i])
		m.removedauthorships[ids[i]] = struct{}{}
	}
}

// RemovedAuthorships returns the removed IDs of the "authorships" edge to the BlogAuthorship entity.
func (m *BlogPageMutation) RemovedAuthorshipsIDs() (ids []uuid.UUID) {
	for id := range m.removedauthorships {
		ids = append(ids, id)
	}
	return
}

// AuthorshipsIDs returns the "authorships" edge IDs in the mutation.
func (m *BlogPageMutation) AuthorshipsIDs() (ids []uuid.UUID) {
	for id := range m.authorships {
		ids = append(ids, id)
	}
	return
}

// ResetAuthorships resets all changes to the "authorships" edge.
func (m *BlogPageMutation) ResetAuthorships() {
	m.authorships = nil
	m.clearedauthorships = false
	m.removedauthorships = nil
}

// Where appends a list predicates to the BlogPageMutation builder.
func (m *BlogPageMutation) Where(ps ...predicate.BlogPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlogPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlogPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlogPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlogPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlogPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlogPage).
func (m *BlogPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlogPageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, blogpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, blogpage.FieldUpdatedAt)
	}
	if m.node != nil {
		fields = append(fields, blogpage.FieldNodeID)
	}
	if m.intro != nil {
		fields = append(fields, blogpage.FieldIntro)
	}
	if m.body != nil {
		fields = append(fields, blogpage.FieldBody)
	}
	if m.date != nil {
		fields = append(fields, blogpage.FieldDate)
	}
	if m.feed_image != nil {
		fields = append(fields, blogpage.FieldFeedImageID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlogPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blogpage.FieldCreatedAt:
		return m.CreatedAt()
	case blogpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case blogpage.FieldNodeID:
		return m.NodeID()
	case blogpage.FieldIntro:
		return m.Intro()
	case blogpage.FieldBody:
		return m.Body()
	case blogpage.FieldDate:
		return m.Date()
	case blogpage.FieldFeedImageID:
		return m.FeedImageID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlogPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blogpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case blogpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case blogpage.FieldNodeID:
		return m.OldNodeID(ctx)
	case blogpage.FieldIntro:
		return m.OldIntro(ctx)
	case blogpage.FieldBody:
		return m.OldBody(ctx)
	case blogpage.FieldDate:
		return m.OldDate(ctx)
	case blogpage.FieldFeedImageID:
		return m.OldFeedImageID(ctx)
	}
	return nil, fmt.Errorf("unknown BlogPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlogPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blogpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case blogpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case blogpage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case blogpage.FieldIntro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntro(v)
		return nil
	case blogpage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case blogpage.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case blogpage.FieldFeedImageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedImageID(v)
		return nil
	}
	return fmt.Errorf("unknown BlogPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlogPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlogPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlogPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BlogPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlogPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blogpage.FieldIntro) {
		fields = append(fields, blogpage.FieldIntro)
	}
	if m.FieldCleared(blogpage.FieldFeedImageID) {
		fields = append(fields, blogpage.FieldFeedImageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlogPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlogPageMutation) ClearField(name string) error {
	switch name {
	case blogpage.FieldIntro:
		m.ClearIntro()
		return nil
	case blogpage.FieldFeedImageID:
		m.ClearFeedImageID()
		return nil
	}
	return fmt.Errorf("unknown BlogPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlogPageMutation) ResetField(name string) error {
	switch name {
	case blogpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case blogpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case blogpage.FieldNodeID:
		m.ResetNodeID()
		return nil
	case blogpage.FieldIntro:
		m.ResetIntro()
		return nil
	case blogpage.FieldBody:
		m.ResetBody()
		return nil
	case blogpage.FieldDate:
		m.ResetDate()
		return nil
	case blogpage.FieldFeedImageID:
		m.ResetFeedImageID()
		return nil
	}
	return fmt.Errorf("unknown BlogPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlogPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.node != nil {
		edges = append(edges, blogpage.EdgeNode)
	}
	if m.feed_image != nil {
		edges = append(edges, blogpage.EdgeFeedImage)
	}
	if m.tags != nil {
		edges = append(edges, blogpage.EdgeTags)
	}
	if m.related_links != nil {
		edges = append(edges, blogpage.EdgeRelatedLinks)
	}
	if m.authorships != nil {
		edges = append(edges, blogpage.EdgeAuthorships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlogPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blogpage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	case blogpage.EdgeFeedImage:
		if id := m.feed_image; id != nil {
			return []ent.Value{*id}
		}
	case blogpage.EdgeTags:
		ids := make([]ent.Value, 0, len(m.tags))
		for id := range m.tags {
			ids = append(ids, id)
		}
		return ids
	case blogpage.EdgeRelatedLinks:
		ids := make([]ent.Value, 0, len(m.related_links))
		for id := range m.related_links {
			ids = append(ids, id)
		}
		return ids
	case blogpage.EdgeAuthorships:
		ids := make([]ent.Value, 0, len(m.authorships))
		for id := range m.authorships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlogPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedtags != nil {
		edges = append(edges, blogpage.EdgeTags)
	}
	if m.removedrelated_links != nil {
		edges = append(edges, blogpage.EdgeRelatedLinks)
	}
	if m.removedauthorships != nil {
		edges = append(edges, blogpage.EdgeAuthorships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlogPageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case blogpage.EdgeTags:
		ids := make([]ent.Value, 0, len(m.removedtags))
		for id := range m.removedtags {
			ids = append(ids, id)
		}
		return ids
	case blogpage.EdgeRelatedLinks:
		ids := make([]ent.Value, 0, len(m.removedrelated_links))
		for id := range m.removedrelated_links {
			ids = append(ids, id)
		}
		return ids
	case blogpage.EdgeAuthorships:
		ids := make([]ent.Value, 0, len(m.removedauthorships))
		for id := range m.removedauthorships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlogPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearednode {
		edges = append(edges, blogpage.EdgeNode)
	}
	if m.clearedfeed_image {
		edges = append(edges, blogpage.EdgeFeedImage)
	}
	if m.clearedtags {
		edges = append(edges, blogpage.EdgeTags)
	}
	if m.clearedrelated_links {
		edges = append(edges, blogpage.EdgeRelatedLinks)
	}
	if m.clearedauthorships {
		edges = append(edges, blogpage.EdgeAuthorships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlogPageMutation) EdgeCleared(name string) bool {
	switch name {
	case blogpage.EdgeNode:
		return m.clearednode
	case blogpage.EdgeFeedImage:
		return m.clearedfeed_image
	case blogpage.EdgeTags:
		return m.clearedtags
	case blogpage.EdgeRelatedLinks:
		return m.clearedrelated_links
	case blogpage.EdgeAuthorships:
		return m.clearedauthorships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlogPageMutation) ClearEdge(name string) error {
	switch name {
	case blogpage.EdgeNode:
		m.ClearNode()
		return nil
	case blogpage.EdgeFeedImage:
		m.ClearFeedImage()
		return nil
	}
	return fmt.Errorf("unknown BlogPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlogPageMutation) ResetEdge(name string) error {
	switch name {
	case blogpage.EdgeNode:
		m.ResetNode()
		return nil
	case blogpage.EdgeFeedImage:
		m.ResetFeedImage()
		return nil
	case blogpage.EdgeTags:
		m.ResetTags()
		return nil
	case blogpage.EdgeRelatedLinks:
		m.ResetRelatedLinks()
		return nil
	case blogpage.EdgeAuthorships:
		m.ResetAuthorships()
		return nil
	}
	return fmt.Errorf("unknown BlogPage edge %s", name)
}

// CarouselItemMutation represents an operation that mutates the CarouselItem nodes in the graph.
type CarouselItemMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	link_external        *string
	sort_order           *int
	addsort_order        *int
	embed_url            *string
	caption              *string
	clearedFields        map[string]struct{}
	link_node            *uuid.UUID
	clearedlink_node     bool
	link_document        *uuid.UUID
	clearedlink_document bool
	image                *uuid.UUID
	clearedimage         bool
	home_page            *uuid.UUID
	clearedhome_page     bool
	done                 bool
	oldValue             func(context.Context) (*CarouselItem, error)
	predicates           []predicate.CarouselItem
}

var _ ent.Mutation = (*CarouselItemMutation)(nil)

// carouselitemOption allows management of the mutation configuration using functional options.
type carouselitemOption func(*CarouselItemMutation)

// newCarouselItemMutation creates new mutation for the CarouselItem entity.
func newCarouselItemMutation(c config, op Op, opts ...carouselitemOption) *CarouselItemMutation {
	m := &CarouselItemMutation{
		config:        c,
		op:            op,
		typ:           TypeCarouselItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCarouselItemID sets the ID field of the mutation.
func withCarouselItemID(id uuid.UUID) carouselitemOption {
	return func(m *CarouselItemMutation) {
		var (
			err   error
			once  sync.Once
			value *CarouselItem
		)
		m.oldValue = func(ctx context.Context) (*CarouselItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CarouselItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCarouselItem sets the old CarouselItem of the mutation.
func withCarouselItem(node *CarouselItem) carouselitemOption {
	return func(m *CarouselItemMutation) {
		m.oldValue = func(context.Context) (*CarouselItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CarouselItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CarouselItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CarouselItem entities.
func (m *CarouselItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CarouselItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CarouselItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CarouselItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLinkExternal sets the "link_external" field.
func (m *CarouselItemMutation) SetLinkExternal(s string) {
	m.link_external = &s
}

// LinkExternal returns the value of the "link_external" field in the mutation.
func (m *CarouselItemMutation) LinkExternal() (r string, exists bool) {
	v := m.link_external
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkExternal returns the old "link_external" field's value of the CarouselItem entity.
// If the CarouselItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarouselItemMutation) OldLinkExternal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkExternal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkExternal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkExternal: %w", err)
	}
	return oldValue.LinkExternal, nil
}

// ClearLinkExternal clears the value of the "link_external" field.
func (m *CarouselItemMutation) ClearLinkExternal() {
	m.link_external = nil
	m.clearedFields[carouselitem.FieldLinkExternal] = struct{}{}
}

// LinkExternalCleared returns if the "link_external" field was cleared in this mutation.
func (m *CarouselItemMutation) LinkExternalCleared() bool {
	_, ok := m.clearedFields[carouselitem.FieldLinkExternal]
	return ok
}

// ResetLinkExternal resets all changes to the "link_external" field.
func (m *CarouselItemMutation) ResetLinkExternal() {
	m.link_external = nil
	delete(m.clearedFields, carouselitem.FieldLinkExternal)
}

// SetLinkNodeID sets the "link_node_id" field.
func (m *CarouselItemMutation) SetLinkNodeID(u uuid.UUID) {
	m.link_node = &u
}

// LinkNodeID returns the value of the "link_node_id" field in the mutation.
func (m *CarouselItemMutation) LinkNodeID() (r uuid.UUID, exists bool) {
	v := m.link_node
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkNodeID returns the old "link_node_id" field's value of the CarouselItem entity.
// If the CarouselItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarouselItemMutation) OldLinkNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkNodeID: %w", err)
	}
	return oldValue.LinkNodeID, nil
}

// ClearLinkNodeID clears the value of the "link_node_id" field.
func (m *CarouselItemMutation) ClearLinkNodeID() {
	m.link_node = nil
	m.clearedFields[carouselitem.FieldLinkNodeID] = struct{}{}
}

// LinkNodeIDCleared returns if the "link_node_id" field was cleared in this mutation.
func (m *CarouselItemMutation) LinkNodeIDCleared() bool {
	_, ok := m.clearedFields[carouselitem.FieldLinkNodeID]
	return ok
}

// ResetLinkNodeID resets all changes to the "link_node_id" field.
func (m *CarouselItemMutation) ResetLinkNodeID() {
	m.link_node = nil
	delete(m.clearedFields, carouselitem.FieldLinkNodeID)
}

// SetLinkDocumentID sets the "link_document_id" field.
func (m *CarouselItemMutation) SetLinkDocumentID(u uuid.UUID) {
	m.link_document = &u
}

// LinkDocumentID returns the value of the "link_document_id" field in the mutation.
func (m *CarouselItemMutation) LinkDocumentID() (r uuid.UUID, exists bool) {
	v := m.link_document
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkDocumentID returns the old "link_document_id" field's value of the CarouselItem entity.
// If the CarouselItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarouselItemMutation) OldLinkDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkDocumentID: %w", err)
	}
	return oldValue.LinkDocumentID, nil
}

// ClearLinkDocumentID clears the value of the "link_document_id" field.
func (m *CarouselItemMutation) ClearLinkDocumentID() {
	m.link_document = nil
	m.clearedFields[carouselitem.FieldLinkDocumentID] = struct{}{}
}

// LinkDocumentIDCleared returns if the "link_document_id" field was cleared in this mutation.
func (m *CarouselItemMutation) LinkDocumentIDCleared() bool {
	_, ok := m.clearedFields[carouselitem.FieldLinkDocumentID]
	return ok
}

// ResetLinkDocumentID resets all changes to the "link_document_id" field.
func (m *CarouselItemMutation) ResetLinkDocumentID() {
	m.link_document = nil
	delete(m.clearedFields, carouselitem.FieldLinkDocumentID)
}

// SetSortOrder sets the "sort_order" field.
func (m *CarouselItemMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *CarouselItemMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the CarouselItem entity.
// If the CarouselItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarouselItemMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *CarouselItemMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *CarouselItemMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *CarouselItemMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetImageID sets the "image_id" field.
func (m *CarouselItemMutation) SetImageID(u uuid.UUID) {
	m.image = &u
}

// ImageID returns the value of the "image_id" field in the mutation.
func (m *CarouselItemMutation) ImageID() (r uuid.UUID, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImageID returns the old "image_id" field's value of the CarouselItem entity.
// If the CarouselItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarouselItemMutation) OldImageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageID: %w", err)
	}
	return oldValue.ImageID, nil
}

// ClearImageID clears the value of the "image_id" field.
func (m *CarouselItemMutation) ClearImageID() {
	m.image = nil
	m.clearedFields[carouselitem.FieldImageID] = struct{}{}
}

// ImageIDCleared returns if the "image_id" field was cleared in this mutation.
func (m *CarouselItemMutation) ImageIDCleared() bool {
	_, ok := m.clearedFields[carouselitem.FieldImageID]
	return ok
}

// ResetImageID resets all changes to the "image_id" field.
func (m *CarouselItemMutation) ResetImageID() {
	m.image = nil
	delete(m.clearedFields, carouselitem.FieldImageID)
}

// SetEmbedURL sets the "embed_url" field.
func (m *CarouselItemMutation) SetEmbedURL(s string) {
	m.embed_url = &s
}

// EmbedURL returns the value of the "embed_url" field in the mutation.
func (m *CarouselItemMutation) EmbedURL() (r string, exists bool) {
	v := m.embed_url
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedURL returns the old "embed_url" field's value of the CarouselItem entity.
// If the CarouselItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarouselItemMutation) OldEmbedURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedURL: %w", err)
	}
	return oldValue.EmbedURL, nil
}

// ClearEmbedURL clears the value of the "embed_url" field.
func (m *CarouselItemMutation) ClearEmbedURL() {
	m.embed_url = nil
	m.clearedFields[carouselitem.FieldEmbedURL] = struct{}{}
}

// EmbedURLCleared returns if the "embed_url" field was cleared in this mutation.
func (m *CarouselItemMutation) EmbedURLCleared() bool {
	_, ok := m.clearedFields[carouselitem.FieldEmbedURL]
	return ok
}

// ResetEmbedURL resets all changes to the "embed_url" field.
func (m *CarouselItemMutation) ResetEmbedURL() {
	m.embed_url = nil
	delete(m.clearedFields, carouselitem.FieldEmbedURL)
}

// SetCaption sets the "caption" field.
func (m *CarouselItemMutation) SetCaption(s string) {
	m.caption = &s
}

// Caption returns the value of the "caption" field in the mutation.
func (m *CarouselItemMutation) Caption() (r string, exists bool) {
	v := m.caption
	if v == nil {
		return
	}
	return *v, true
}

// OldCaption returns the old "caption" field's value of the CarouselItem entity.
// If the CarouselItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarouselItemMutation) OldCaption(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaption: %w", err)
	}
	return oldValue.Caption, nil
}

// ClearCaption clears the value of the "caption" field.
func (m *CarouselItemMutation) ClearCaption() {
	m.caption = nil
	m.clearedFields[carouselitem.FieldCaption] = struct{}{}
}

// CaptionCleared returns if the "caption" field was cleared in this mutation.
func (m *CarouselItemMutation) CaptionCleared() bool {
	_, ok := m.clearedFields[carouselitem.FieldCaption]
	return ok
}

// ResetCaption resets all changes to the "caption" field.
func (m *CarouselItemMutation) ResetCaption() {
	m.caption = nil
	delete(m.clearedFields, carouselitem.FieldCaption)
}

// SetHomePageID sets the "home_page_id" field.
func (m *CarouselItemMutation) SetHomePageID(u uuid.UUID) {
	m.home_page = &u
}

// HomePageID returns the value of the "home_page_id" field in the mutation.
func (m *CarouselItemMutation) HomePageID() (r uuid.UUID, exists bool) {
	v := m.home_page
	if v == nil {
		return
	}
	return *v, true
}

// OldHomePageID returns the old "home_page_id" field's value of the CarouselItem entity.
// If the CarouselItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarouselItemMutation) OldHomePageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHomePageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHomePageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHomePageID: %w", err)
	}
	return oldValue.HomePageID, nil
}

// ResetHomePageID resets all changes to the "home_page_id" field.
func (m *CarouselItemMutation) ResetHomePageID() {
	m.home_page = nil
}

// ClearLinkNode clears the "link_node" edge to the Node entity.
func (m *CarouselItemMutation) ClearLinkNode() {
	m.clearedlink_node = true
	m.clearedFields[carouselitem.FieldLinkNodeID] = struct{}{}
}

// LinkNodeCleared reports if the "link_node" edge to the Node entity was cleared.
func (m *CarouselItemMutation) LinkNodeCleared() bool {
	return m.LinkNodeIDCleared() || m.clearedlink_node
}

// LinkNodeIDs returns the "link_node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LinkNodeID instead. It exists only for internal usage by the builders.
func (m *CarouselItemMutation) LinkNodeIDs() (ids []uuid.UUID) {
	if id := m.link_node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLinkNode resets all changes to the "link_node" edge.
func (m *CarouselItemMutation) ResetLinkNode() {
	m.link_node = nil
	m.clearedlink_node = false
}

// ClearLinkDocument clears the "link_document" edge to the Document entity.
func (m *CarouselItemMutation) ClearLinkDocument() {
	m.clearedlink_document = true
	m.clearedFields[carouselitem.FieldLinkDocumentID] = struct{}{}
}

// LinkDocumentCleared reports if the "link_document" edge to the Document entity was cleared.
func (m *CarouselItemMutation) LinkDocumentCleared() bool {
	return m.LinkDocumentIDCleared() || m.clearedlink_document
}

// LinkDocumentIDs returns the "link_document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LinkDocumentID instead. It exists only for internal usage by the builders.
func (m *CarouselItemMutation) LinkDocumentIDs() (ids []uuid.UUID) {
	if id := m.link_document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLinkDocument resets all changes to the "link_document" edge.
func (m *CarouselItemMutation) ResetLinkDocument() {
	m.link_document = nil
	m.clearedlink_document = false
}

// ClearImage clears the "image" edge to the Image entity.
func (m *CarouselItemMutation) ClearImage() {
	m.clearedimage = true
	m.clearedFields[carouselitem.FieldImageID] = struct{}{}
}

// ImageCleared reports if the "image" edge to the Image entity was cleared.
func (m *CarouselItemMutation) ImageCleared() bool {
	return m.ImageIDCleared() || m.clearedimage
}

// ImageIDs returns the "image" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImageID instead. It exists only for internal usage by the builders.
func (m *CarouselItemMutation) ImageIDs() (ids []uuid.UUID) {
	if id := m.image; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImage resets all changes to the "image" edge.
func (m *CarouselItemMutation) ResetImage() {
	m.image = nil
	m.clearedimage = false
}

// ClearHomePage clears the "home_page" edge to the HomePage entity.
func (m *CarouselItemMutation) ClearHomePage() {
	m.clearedhome_page = true
	m.clearedFields[carouselitem.FieldHomePageID] = struct{}{}
}

// HomePageCleared reports if the "home_page" edge to the HomePage entity was cleared.
func (m *CarouselItemMutation) HomePageCleared() bool {
	return m.clearedhome_page
}

// HomePageIDs returns the "home_page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HomePageID instead. It exists only for internal usage by the builders.
func (m *CarouselItemMutation) HomePageIDs() (ids []uuid.UUID) {
	if id := m.home_page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHomePage resets all changes to the "home_page" edge.
func (m *CarouselItemMutation) ResetHomePage() {
	m.home_page = nil
	m.clearedhome_page = false
}

// Where appends a list predicates to the CarouselItemMutation builder.
func (m *CarouselItemMutation) Where(ps ...predicate.CarouselItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CarouselItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CarouselItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CarouselItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CarouselItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CarouselItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CarouselItem).
func (m *CarouselItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CarouselItemMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.link_external != nil {
		fields = append(fields, carouselitem.FieldLinkExternal)
	}
	if m.link_node != nil {
		fields = append(fields, carouselitem.FieldLinkNodeID)
	}
	if m.link_document != nil {
		fields = append(fields, carouselitem.FieldLinkDocumentID)
	}
	if m.sort_order != nil {
		fields = append(fields, carouselitem.FieldSortOrder)
	}
	if m.image != nil {
		fields = append(fields, carouselitem.FieldImageID)
	}
	if m.embed_url != nil {
		fields = append(fields, carouselitem.FieldEmbedURL)
	}
	if m.caption != nil {
		fields = append(fields, carouselitem.FieldCaption)
	}
	if m.home_page != nil {
		fields = append(fields, carouselitem.FieldHomePageID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CarouselItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case carouselitem.FieldLinkExternal:
		return m.LinkExternal()
	case carouselitem.FieldLinkNodeID:
		return m.LinkNodeID()
	case carouselitem.FieldLinkDocumentID:
		return m.LinkDocumentID()
	case carouselitem.FieldSortOrder:
		return m.SortOrder()
	case carouselitem.FieldImageID:
		return m.ImageID()
	case carouselitem.FieldEmbedURL:
		return m.EmbedURL()
	case carouselitem.FieldCaption:
		return m.Caption()
	case carouselitem.FieldHomePageID:
		return m.HomePageID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CarouselItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case carouselitem.FieldLinkExternal:
		return m.OldLinkExternal(ctx)
	case carouselitem.FieldLinkNodeID:
		return m.OldLinkNodeID(ctx)
	case carouselitem.FieldLinkDocumentID:
		return m.OldLinkDocumentID(ctx)
	case carouselitem.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case carouselitem.FieldImageID:
		return m.OldImageID(ctx)
	case carouselitem.FieldEmbedURL:
		return m.OldEmbedURL(ctx)
	case carouselitem.FieldCaption:
		return m.OldCaption(ctx)
	case carouselitem.FieldHomePageID:
		return m.OldHomePageID(ctx)
	}
	return nil, fmt.Errorf("unknown CarouselItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CarouselItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case carouselitem.FieldLinkExternal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkExternal(v)
		return nil
	case carouselitem.FieldLinkNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkNodeID(v)
		return nil
	case carouselitem.FieldLinkDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkDocumentID(v)
		return nil
	case carouselitem.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case carouselitem.FieldImageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageID(v)
		return nil
	case carouselitem.FieldEmbedURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedURL(v)
		return nil
	case carouselitem.FieldCaption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaption(v)
		return nil
	case carouselitem.FieldHomePageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHomePageID(v)
		return nil
	}
	return fmt.Errorf("unknown CarouselItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CarouselItemMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, carouselitem.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CarouselItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case carouselitem.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CarouselItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case carouselitem.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown CarouselItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CarouselItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(carouselitem.FieldLinkExternal) {
		fields = append(fields, carouselitem.FieldLinkExternal)
	}
	if m.FieldCleared(carouselitem.FieldLinkNodeID) {
		fields = append(fields, carouselitem.FieldLinkNodeID)
	}
	if m.FieldCleared(carouselitem.FieldLinkDocumentID) {
		fields = append(fields, carouselitem.FieldLinkDocumentID)
	}
	if m.FieldCleared(carouselitem.FieldImageID) {
		fields = append(fields, carouselitem.FieldImageID)
	}
	if m.FieldCleared(carouselitem.FieldEmbedURL) {
		fields = append(fields, carouselitem.FieldEmbedURL)
	}
	if m.FieldCleared(carouselitem.FieldCaption) {
		fields = append(fields, carouselitem.FieldCaption)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CarouselItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CarouselItemMutation) ClearField(name string) error {
	switch name {
	case carouselitem.FieldLinkExternal:
		m.ClearLinkExternal()
		return nil
	case carouselitem.FieldLinkNodeID:
		m.ClearLinkNodeID()
		return nil
	case carouselitem.FieldLinkDocumentID:
		m.ClearLinkDocumentID()
		return nil
	case carouselitem.FieldImageID:
		m.ClearImageID()
		return nil
	case carouselitem.FieldEmbedURL:
		m.ClearEmbedURL()
		return nil
	case carouselitem.FieldCaption:
		m.ClearCaption()
		return nil
	}
	return fmt.Errorf("unknown CarouselItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CarouselItemMutation) ResetField(name string) error {
	switch name {
	case carouselitem.FieldLinkExternal:
		m.ResetLinkExternal()
		return nil
	case carouselitem.FieldLinkNodeID:
		m.ResetLinkNodeID()
		return nil
	case carouselitem.FieldLinkDocumentID:
		m.ResetLinkDocumentID()
		return nil
	case carouselitem.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case carouselitem.FieldImageID:
		m.ResetImageID()
		return nil
	case carouselitem.FieldEmbedURL:
		m.ResetEmbedURL()
		return nil
	case carouselitem.FieldCaption:
		m.ResetCaption()
		return nil
	case carouselitem.FieldHomePageID:
		m.ResetHomePageID()
		return nil
	}
	return fmt.Errorf("unknown CarouselItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CarouselItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.link_node != nil {
		edges = append(edges, carouselitem.EdgeLinkNode)
	}
	if m.link_document != nil {
		edges = append(edges, carouselitem.EdgeLinkDocument)
	}
	if m.image != nil {
		edges = append(edges, carouselitem.EdgeImage)
	}
	if m.home_page != nil {
		edges = append(edges, carouselitem.EdgeHomePage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CarouselItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case carouselitem.EdgeLinkNode:
		if id := m.link_node; id != nil {
			return []ent.Value{*id}
		}
	case carouselitem.EdgeLinkDocument:
		if id := m.link_document; id != nil {
			return []ent.Value{*id}
		}
	case carouselitem.EdgeImage:
		if id := m.image; id != nil {
			return []ent.Value{*id}
		}
	case carouselitem.EdgeHomePage:
		if id := m.home_page; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CarouselItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CarouselItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CarouselItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedlink_node {
		edges = append(edges, carouselitem.EdgeLinkNode)
	}
	if m.clearedlink_document {
		edges = append(edges, carouselitem.EdgeLinkDocument)
	}
	if m.clearedimage {
		edges = append(edges, carouselitem.EdgeImage)
	}
	if m.clearedhome_page {
		edges = append(edges, carouselitem.EdgeHomePage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CarouselItemMutation) EdgeCleared(name string) bool {
	switch name {
	case carouselitem.EdgeLinkNode:
		return m.clearedlink_node
	case carouselitem.EdgeLinkDocument:
		return m.clearedlink_document
	case carouselitem.EdgeImage:
		return m.clearedimage
	case carouselitem.EdgeHomePage:
		return m.clearedhome_page
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CarouselItemMutation) ClearEdge(name string) error {
	switch name {
	case carouselitem.EdgeLinkNode:
		m.ClearLinkNode()
		return nil
	case carouselitem.EdgeLinkDocument:
		m.ClearLinkDocument()
		return nil
	case carouselitem.EdgeImage:
		m.ClearImage()
		return nil
	case carouselitem.EdgeHomePage:
		m.ClearHomePage()
		return nil
	}
	return fmt.Errorf("unknown CarouselItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CarouselItemMutation) ResetEdge(name string) error {
	switch name {
	case carouselitem.EdgeLinkNode:
		m.ResetLinkNode()
		return nil
	case carouselitem.EdgeLinkDocument:
		m.ResetLinkDocument()
		return nil
	case carouselitem.EdgeImage:
		m.ResetImage()
		return nil
	case carouselitem.EdgeHomePage:
		m.ResetHomePage()
		return nil
	}
	return fmt.Errorf("unknown CarouselItem edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	title         *string
	file          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Document, error)
	predicates    []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
}

// SetFile sets the "file" field.
func (m *DocumentMutation) SetFile(s string) {
	m.file = &s
}

// File returns the value of the "file" field in the mutation.
func (m *DocumentMutation) File() (r string, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFile returns the old "file" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFile: %w", err)
	}
	return oldValue.File, nil
}

// ResetFile resets all changes to the "file" field.
func (m *DocumentMutation) ResetFile() {
	m.file = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.file != nil {
		fields = append(fields, document.FieldFile)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	case document.FieldTitle:
		return m.Title()
	case document.FieldFile:
		return m.File()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldFile:
		return m.OldFile(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFile(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Document edge %s", name)
}

// HomePageMutation represents an operation that mutates the HomePage nodes in the graph.
type HomePageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	node                  *uuid.UUID
	clearednode           bool
	carousel_items        map[uuid.UUID]struct{}
	removedcarousel_items map[uuid.UUID]struct{}
	clearedcarousel_items bool
	done                  bool
	oldValue              func(context.Context) (*HomePage, error)
	predicates            []predicate.HomePage
}

var _ ent.Mutation = (*HomePageMutation)(nil)

// homepageOption allows management of the mutation configuration using functional options.
type homepageOption func(*HomePageMutation)

// newHomePageMutation creates new mutation for the HomePage entity.
func newHomePageMutation(c config, op Op, opts ...homepageOption) *HomePageMutation {
	m := &HomePageMutation{
		config:        c,
		op:            op,
		typ:           TypeHomePage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHomePageID sets the ID field of the mutation.
func withHomePageID(id uuid.UUID) homepageOption {
	return func(m *HomePageMutation) {
		var (
			err   error
			once  sync.Once
			value *HomePage
		)
		m.oldValue = func(ctx context.Context) (*HomePage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HomePage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHomePage sets the old HomePage of the mutation.
func withHomePage(node *HomePage) homepageOption {
	return func(m *HomePageMutation) {
		m.oldValue = func(context.Context) (*HomePage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HomePageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HomePageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HomePage entities.
func (m *HomePageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HomePageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HomePageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HomePage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HomePageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HomePageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HomePage entity.
// If the HomePage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HomePageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HomePageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HomePageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HomePageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the HomePage entity.
// If the HomePage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HomePageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HomePageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNodeID sets the "node_id" field.
func (m *HomePageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *HomePageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the HomePage entity.
// If the HomePage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HomePageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *HomePageMutation) ResetNodeID() {
	m.node = nil
}

// ClearNode clears the "node" edge to the Node entity.
func (m *HomePageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[homepage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *HomePageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *HomePageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *HomePageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// AddCarouselItemIDs adds the "carousel_items" edge to the CarouselItem entity by ids.
func (m *HomePageMutation) AddCarouselItemIDs(ids ...uuid.UUID) {
	if m.carousel_items == nil {
		m.carousel_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.carousel_items[ids[i]] = struct{}{}
	}
}

// ClearCarouselItems clears the "carousel_items" edge to the CarouselItem entity.
func (m *HomePageMutation) ClearCarouselItems() {
	m.clearedcarousel_items = true
}

// CarouselItemsCleared reports if the "carousel_items" edge to the CarouselItem entity was cleared.
func (m *HomePageMutation) CarouselItemsCleared() bool {
	return m.clearedcarousel_items
}

// RemoveCarouselItemIDs removes the "carousel_items" edge to the CarouselItem entity by IDs.
func (m *HomePageMutation) RemoveCarouselItemIDs(ids ...uuid.UUID) {
	if m.removedcarousel_items == nil {
		m.removedcarousel_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.carousel_items, ids[i])
		m.removedcarousel_items[ids[i]] = struct{}{}
	}
}

// RemovedCarouselItems returns the removed IDs of the "carousel_items" edge to the CarouselItem entity.
func (m *HomePageMutation) RemovedCarouselItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedcarousel_items {
		ids = append(ids, id)
	}
	return
}

// CarouselItemsIDs returns the "carousel_items" edge IDs in the mutation.
func (m *HomePageMutation) CarouselItemsIDs() (ids []uuid.UUID) {
	for id := range m.carousel_items {
		ids = append(ids, id)
	}
	return
}

// ResetCarouselItems resets all changes to the "carousel_items" edge.
func (m *HomePageMutation) ResetCarouselItems() {
	m.carousel_items = nil
	m.clearedcarousel_items = false
	m.removedcarousel_items = nil
}

// Where appends a list predicates to the HomePageMutation builder.
func (m *HomePageMutation) Where(ps ...predicate.HomePage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HomePageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HomePageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HomePage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HomePageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HomePageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HomePage).
func (m *HomePageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HomePageMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, homepage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, homepage.FieldUpdatedAt)
	}
	if m.node != nil {
		fields = append(fields, homepage.FieldNodeID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HomePageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case homepage.FieldCreatedAt:
		return m.CreatedAt()
	case homepage.FieldUpdatedAt:
		return m.UpdatedAt()
	case homepage.FieldNodeID:
		return m.NodeID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HomePageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case homepage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case homepage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case homepage.FieldNodeID:
		return m.OldNodeID(ctx)
	}
	return nil, fmt.Errorf("unknown HomePage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HomePageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case homepage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case homepage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case homepage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	}
	return fmt.Errorf("unknown HomePage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HomePageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HomePageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HomePageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown HomePage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HomePageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HomePageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HomePageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HomePage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HomePageMutation) ResetField(name string) error {
	switch name {
	case homepage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case homepage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case homepage.FieldNodeID:
		m.ResetNodeID()
		return nil
	}
	return fmt.Errorf("unknown HomePage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HomePageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.node != nil {
		edges = append(edges, homepage.EdgeNode)
	}
	if m.carousel_items != nil {
		edges = append(edges, homepage.EdgeCarouselItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HomePageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case homepage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	case homepage.EdgeCarouselItems:
		ids := make([]ent.Value, 0, len(m.carousel_items))
		for id := range m.carousel_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HomePageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcarousel_items != nil {
		edges = append(edges, homepage.EdgeCarouselItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HomePageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case homepage.EdgeCarouselItems:
		ids := make([]ent.Value, 0, len(m.removedcarousel_items))
		for id := range m.removedcarousel_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HomePageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednode {
		edges = append(edges, homepage.EdgeNode)
	}
	if m.clearedcarousel_items {
		edges = append(edges, homepage.EdgeCarouselItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HomePageMutation) EdgeCleared(name string) bool {
	switch name {
	case homepage.EdgeNode:
		return m.clearednode
	case homepage.EdgeCarouselItems:
		return m.clearedcarousel_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HomePageMutation) ClearEdge(name string) error {
	switch name {
	case homepage.EdgeNode:
		m.ClearNode()
		return nil
	}
	return fmt.Errorf("unknown HomePage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HomePageMutation) ResetEdge(name string) error {
	switch name {
	case homepage.EdgeNode:
		m.ResetNode()
		return nil
	case homepage.EdgeCarouselItems:
		m.ResetCarouselItems()
		return nil
	}
	return fmt.Errorf("unknown HomePage edge %s", name)
}

// ImageMutation represents an operation that mutates the Image nodes in the graph.
type ImageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	title         *string
	file          *string
	width         *int
	addwidth      *int
	height        *int
	addheight     *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Image, error)
	predicates    []predicate.Image
}

var _ ent.Mutation = (*ImageMutation)(nil)

// imageOption allows management of the mutation configuration using functional options.
type imageOption func(*ImageMutation)

// newImageMutation creates new mutation for the Image entity.
func newImageMutation(c config, op Op, opts ...imageOption) *ImageMutation {
	m := &ImageMutation{
		config:        c,
		op:            op,
		typ:           TypeImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImageID sets the ID field of the mutation.
func withImageID(id uuid.UUID) imageOption {
	return func(m *ImageMutation) {
		var (
			err   error
			once  sync.Once
			value *Image
		)
		m.oldValue = func(ctx context.Context) (*Image, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Image.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImage sets the old Image of the mutation.
func withImage(node *Image) imageOption {
	return func(m *ImageMutation) {
		m.oldValue = func(context.Context) (*Image, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Image entities.
func (m *ImageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Image.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ImageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ImageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ImageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ImageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *ImageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ImageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ImageMutation) ResetTitle() {
	m.title = nil
}

// SetFile sets the "file" field.
func (m *ImageMutation) SetFile(s string) {
	m.file = &s
}

// File returns the value of the "file" field in the mutation.
func (m *ImageMutation) File() (r string, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFile returns the old "file" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFile: %w", err)
	}
	return oldValue.File, nil
}

// ResetFile resets all changes to the "file" field.
func (m *ImageMutation) ResetFile() {
	m.file = nil
}

// SetWidth sets the "width" field.
func (m *ImageMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *ImageMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *ImageMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *ImageMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ClearWidth clears the value of the "width" field.
func (m *ImageMutation) ClearWidth() {
	m.width = nil
	m.addwidth = nil
	m.clearedFields[image.FieldWidth] = struct{}{}
}

// WidthCleared returns if the "width" field was cleared in this mutation.
func (m *ImageMutation) WidthCleared() bool {
	_, ok := m.clearedFields[image.FieldWidth]
	return ok
}

// ResetWidth resets all changes to the "width" field.
func (m *ImageMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
	delete(m.clearedFields, image.FieldWidth)
}

// SetHeight sets the "height" field.
func (m *ImageMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *ImageMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *ImageMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *ImageMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeight clears the value of the "height" field.
func (m *ImageMutation) ClearHeight() {
	m.height = nil
	m.addheight = nil
	m.clearedFields[image.FieldHeight] = struct{}{}
}

// HeightCleared returns if the "height" field was cleared in this mutation.
func (m *ImageMutation) HeightCleared() bool {
	_, ok := m.clearedFields[image.FieldHeight]
	return ok
}

// ResetHeight resets all changes to the "height" field.
func (m *ImageMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
	delete(m.clearedFields, image.FieldHeight)
}

// Where appends a list predicates to the ImageMutation builder.
func (m *ImageMutation) Where(ps ...predicate.Image) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Image, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Image).
func (m *ImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, image.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, image.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, image.FieldTitle)
	}
	if m.file != nil {
		fields = append(fields, image.FieldFile)
	}
	if m.width != nil {
		fields = append(fields, image.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, image.FieldHeight)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case image.FieldCreatedAt:
		return m.CreatedAt()
	case image.FieldUpdatedAt:
		return m.UpdatedAt()
	case image.FieldTitle:
		return m.Title()
	case image.FieldFile:
		return m.File()
	case image.FieldWidth:
		return m.Width()
	case image.FieldHeight:
		return m.Height()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case image.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case image.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case image.FieldTitle:
		return m.OldTitle(ctx)
	case image.FieldFile:
		return m.OldFile(ctx)
	case image.FieldWidth:
		return m.OldWidth(ctx)
	case image.FieldHeight:
		return m.OldHeight(ctx)
	}
	return nil, fmt.Errorf("unknown Image field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case image.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case image.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case image.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case image.FieldFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFile(v)
		return nil
	case image.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case image.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	}
	return fmt.Errorf("unknown Image field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImageMutation) AddedFields() []string {
	var fields []string
	if m.addwidth != nil {
		fields = append(fields, image.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, image.FieldHeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case image.FieldWidth:
		return m.AddedWidth()
	case image.FieldHeight:
		return m.AddedHeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case image.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case image.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	}
	return fmt.Errorf("unknown Image numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(image.FieldWidth) {
		fields = append(fields, image.FieldWidth)
	}
	if m.FieldCleared(image.FieldHeight) {
		fields = append(fields, image.FieldHeight)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImageMutation) ClearField(name string) error {
	switch name {
	case image.FieldWidth:
		m.ClearWidth()
		return nil
	case image.FieldHeight:
		m.ClearHeight()
		return nil
	}
	return fmt.Errorf("unknown Image nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImageMutation) ResetField(name string) error {
	switch name {
	case image.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case image.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case image.FieldTitle:
		m.ResetTitle()
		return nil
	case image.FieldFile:
		m.ResetFile()
		return nil
	case image.FieldWidth:
		m.ResetWidth()
		return nil
	case image.FieldHeight:
		m.ResetHeight()
		return nil
	}
	return fmt.Errorf("unknown Image field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Image unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Image edge %s", name)
}

// JobIndexPageMutation represents an operation that mutates the JobIndexPage nodes in the graph.
type JobIndexPageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	intro         *string
	clearedFields map[string]struct{}
	node          *uuid.UUID
	clearednode   bool
	done          bool
	oldValue      func(context.Context) (*JobIndexPage, error)
	predicates    []predicate.JobIndexPage
}

var _ ent.Mutation = (*JobIndexPageMutation)(nil)

// jobindexpageOption allows management of the mutation configuration using functional options.
type jobindexpageOption func(*JobIndexPageMutation)

// newJobIndexPageMutation creates new mutation for the JobIndexPage entity.
func newJobIndexPageMutation(c config, op Op, opts ...jobindexpageOption) *JobIndexPageMutation {
	m := &JobIndexPageMutation{
		config:        c,
		op:            op,
		typ:           TypeJobIndexPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobIndexPageID sets the ID field of the mutation.
func withJobIndexPageID(id uuid.UUID) jobindexpageOption {
	return func(m *JobIndexPageMutation) {
		var (
			err   error
			once  sync.Once
			value *JobIndexPage
		)
		m.oldValue = func(ctx context.Context) (*JobIndexPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobIndexPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobIndexPage sets the old JobIndexPage of the mutation.
func withJobIndexPage(node *JobIndexPage) jobindexpageOption {
	return func(m *JobIndexPageMutation) {
		m.oldValue = func(context.Context) (*JobIndexPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobIndexPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobIndexPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobIndexPage entities.
func (m *JobIndexPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobIndexPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobIndexPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobIndexPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *JobIndexPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobIndexPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobIndexPage entity.
// If the JobIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobIndexPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobIndexPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobIndexPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobIndexPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the JobIndexPage entity.
// If the JobIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobIndexPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobIndexPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNodeID sets the "node_id" field.
func (m *JobIndexPageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *JobIndexPageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the JobIndexPage entity.
// If the JobIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobIndexPageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *JobIndexPageMutation) ResetNodeID() {
	m.node = nil
}

// SetIntro sets the "intro" field.
func (m *JobIndexPageMutation) SetIntro(s string) {
	m.intro = &s
}

// Intro returns the value of the "intro" field in the mutation.
func (m *JobIndexPageMutation) Intro() (r string, exists bool) {
	v := m.intro
	if v == nil {
		return
	}
	return *v, true
}

// OldIntro returns the old "intro" field's value of the JobIndexPage entity.
// If the JobIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobIndexPageMutation) OldIntro(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntro: %w", err)
	}
	return oldValue.Intro, nil
}

// ClearIntro clears the value of the "intro" field.
func (m *JobIndexPageMutation) ClearIntro() {
	m.intro = nil
	m.clearedFields[jobindexpage.FieldIntro] = struct{}{}
}

// IntroCleared returns if the "intro" field was cleared in this mutation.
func (m *JobIndexPageMutation) IntroCleared() bool {
	_, ok := m.clearedFields[jobindexpage.FieldIntro]
	return ok
}

// ResetIntro resets all changes to the "intro" field.
func (m *JobIndexPageMutation) ResetIntro() {
	m.intro = nil
	delete(m.clearedFields, jobindexpage.FieldIntro)
}

// ClearNode clears the "node" edge to the Node entity.
func (m *JobIndexPageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[jobindexpage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *JobIndexPageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *JobIndexPageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *JobIndexPageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// Where appends a list predicates to the JobIndexPageMutation builder.
func (m *JobIndexPageMutation) Where(ps ...predicate.JobIndexPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobIndexPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobIndexPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobIndexPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobIndexPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobIndexPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobIndexPage).
func (m *JobIndexPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobIndexPageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, jobindexpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, jobindexpage.FieldUpdatedAt)
	}
	if m.node != nil {
		fields = append(fields, jobindexpage.FieldNodeID)
	}
	if m.intro != nil {
		fields = append(fields, jobindexpage.FieldIntro)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobIndexPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobindexpage.FieldCreatedAt:
		return m.CreatedAt()
	case jobindexpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case jobindexpage.FieldNodeID:
		return m.NodeID()
	case jobindexpage.FieldIntro:
		return m.Intro()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobIndexPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobindexpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobindexpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case jobindexpage.FieldNodeID:
		return m.OldNodeID(ctx)
	case jobindexpage.FieldIntro:
		return m.OldIntro(ctx)
	}
	return nil, fmt.Errorf("unknown JobIndexPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobIndexPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobindexpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobindexpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case jobindexpage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case jobindexpage.FieldIntro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntro(v)
		return nil
	}
	return fmt.Errorf("unknown JobIndexPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobIndexPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobIndexPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobIndexPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobIndexPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobIndexPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobindexpage.FieldIntro) {
		fields = append(fields, jobindexpage.FieldIntro)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobIndexPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobIndexPageMutation) ClearField(name string) error {
	switch name {
	case jobindexpage.FieldIntro:
		m.ClearIntro()
		return nil
	}
	return fmt.Errorf("unknown JobIndexPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobIndexPageMutation) ResetField(name string) error {
	switch name {
	case jobindexpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobindexpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case jobindexpage.FieldNodeID:
		m.ResetNodeID()
		return nil
	case jobindexpage.FieldIntro:
		m.ResetIntro()
		return nil
	}
	return fmt.Errorf("unknown JobIndexPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobIndexPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.node != nil {
		edges = append(edges, jobindexpage.EdgeNode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobIndexPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobindexpage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobIndexPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobIndexPageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobIndexPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednode {
		edges = append(edges, jobindexpage.EdgeNode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobIndexPageMutation) EdgeCleared(name string) bool {
	switch name {
	case jobindexpage.EdgeNode:
		return m.clearednode
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobIndexPageMutation) ClearEdge(name string) error {
	switch name {
	case jobindexpage.EdgeNode:
		m.ClearNode()
		return nil
	}
	return fmt.Errorf("unknown JobIndexPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobIndexPageMutation) ResetEdge(name string) error {
	switch name {
	case jobindexpage.EdgeNode:
		m.ResetNode()
		return nil
	}
	return fmt.Errorf("unknown JobIndexPage edge %s", name)
}

// JobPageMutation represents an operation that mutates the JobPage nodes in the graph.
type JobPageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	body          *string
	clearedFields map[string]struct{}
	node          *uuid.UUID
	clearednode   bool
	done          bool
	oldValue      func(context.Context) (*JobPage, error)
	predicates    []predicate.JobPage
}

var _ ent.Mutation = (*JobPageMutation)(nil)

// jobpageOption allows management of the mutation configuration using functional options.
type jobpageOption func(*JobPageMutation)

// newJobPageMutation creates new mutation for the JobPage entity.
func newJobPageMutation(c config, op Op, opts ...jobpageOption) *JobPageMutation {
	m := &JobPageMutation{
		config:        c,
		op:            op,
		typ:           TypeJobPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobPageID sets the ID field of the mutation.
func withJobPageID(id uuid.UUID) jobpageOption {
	return func(m *JobPageMutation) {
		var (
			err   error
			once  sync.Once
			value *JobPage
		)
		m.oldValue = func(ctx context.Context) (*JobPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobPage sets the old JobPage of the mutation.
func withJobPage(node *JobPage) jobpageOption {
	return func(m *JobPageMutation) {
		m.oldValue = func(context.Context) (*JobPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobPage entities.
func (m *JobPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *JobPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNodeID sets the "node_id" field.
func (m *JobPageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *JobPageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *JobPageMutation) ResetNodeID() {
	m.node = nil
}

// SetBody sets the "body" field.
func (m *JobPageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *JobPageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *JobPageMutation) ResetBody() {
	m.body = nil
}

// ClearNode clears the "node" edge to the Node entity.
func (m *JobPageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[jobpage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *JobPageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *JobPageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *JobPageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// Where appends a list predicates to the JobPageMutation builder.
func (m *JobPageMutation) Where(ps ...predicate.JobPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobPage).
func (m *JobPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobPageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, jobpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, jobpage.FieldUpdatedAt)
	}
	if m.node != nil {
		fields = append(fields, jobpage.FieldNodeID)
	}
	if m.body != nil {
		fields = append(fields, jobpage.FieldBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobpage.FieldCreatedAt:
		return m.CreatedAt()
	case jobpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case jobpage.FieldNodeID:
		return m.NodeID()
	case jobpage.FieldBody:
		return m.Body()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case jobpage.FieldNodeID:
		return m.OldNodeID(ctx)
	case jobpage.FieldBody:
		return m.OldBody(ctx)
	}
	return nil, fmt.Errorf("unknown JobPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case jobpage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case jobpage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	}
	return fmt.Errorf("unknown JobPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobPageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobPageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobPageMutation) ResetField(name string) error {
	switch name {
	case jobpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case jobpage.FieldNodeID:
		m.ResetNodeID()
		return nil
	case jobpage.FieldBody:
		m.ResetBody()
		return nil
	}
	return fmt.Errorf("unknown JobPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.node != nil {
		edges = append(edges, jobpage.EdgeNode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobpage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobPageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednode {
		edges = append(edges, jobpage.EdgeNode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobPageMutation) EdgeCleared(name string) bool {
	switch name {
	case jobpage.EdgeNode:
		return m.clearednode
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobPageMutation) ClearEdge(name string) error {
	switch name {
	case jobpage.EdgeNode:
		m.ClearNode()
		return nil
	}
	return fmt.Errorf("unknown JobPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobPageMutation) ResetEdge(name string) error {
	switch name {
	case jobpage.EdgeNode:
		m.ResetNode()
		return nil
	}
	return fmt.Errorf("unknown JobPage edge %s", name)
}

// NodeMutation represents an operation that mutates the Node nodes in the graph.
type NodeMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	_path              *string
	depth              *int
	adddepth           *int
	title              *string
	slug               *string
	url_path           *string
	live               *bool
	show_in_menus      *bool
	seo_title          *string
	search_description *string
	content_type       *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Node, error)
	predicates         []predicate.Node
}

var _ ent.Mutation = (*NodeMutation)(nil)

// nodeOption allows management of the mutation configuration using functional options.
type nodeOption func(*NodeMutation)

// newNodeMutation creates new mutation for the Node entity.
func newNodeMutation(c config, op Op, opts ...nodeOption) *NodeMutation {
	m := &NodeMutation{
		config:        c,
		op:            op,
		typ:           TypeNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNodeID sets the ID field of the mutation.
func withNodeID(id uuid.UUID) nodeOption {
	return func(m *NodeMutation) {
		var (
			err   error
			once  sync.Once
			value *Node
		)
		m.oldValue = func(ctx context.Context) (*Node, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Node.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNode sets the old Node of the mutation.
func withNode(node *Node) nodeOption {
	return func(m *NodeMutation) {
		m.oldValue = func(context.Context) (*Node, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Node entities.
func (m *NodeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NodeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NodeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Node.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NodeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NodeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NodeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPath sets the "path" field.
func (m *NodeMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *NodeMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *NodeMutation) ResetPath() {
	m._path = nil
}

// SetDepth sets the "depth" field.
func (m *NodeMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *NodeMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *NodeMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *NodeMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *NodeMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetTitle sets the "title" field.
func (m *NodeMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NodeMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NodeMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *NodeMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *NodeMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *NodeMutation) ResetSlug() {
	m.slug = nil
}

// SetURLPath sets the "url_path" field.
func (m *NodeMutation) SetURLPath(s string) {
	m.url_path = &s
}

// URLPath returns the value of the "url_path" field in the mutation.
func (m *NodeMutation) URLPath() (r string, exists bool) {
	v := m.url_path
	if v == nil {
		return
	}
	return *v, true
}

// OldURLPath returns the old "url_path" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldURLPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURLPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURLPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURLPath: %w", err)
	}
	return oldValue.URLPath, nil
}

// ResetURLPath resets all changes to the "url_path" field.
func (m *NodeMutation) ResetURLPath() {
	m.url_path = nil
}

// SetLive sets the "live" field.
func (m *NodeMutation) SetLive(b bool) {
	m.live = &b
}

// Live returns the value of the "live" field in the mutation.
func (m *NodeMutation) Live() (r bool, exists bool) {
	v := m.live
	if v == nil {
		return
	}
	return *v, true
}

// OldLive returns the old "live" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldLive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLive: %w", err)
	}
	return oldValue.Live, nil
}

// ResetLive resets all changes to the "live" field.
func (m *NodeMutation) ResetLive() {
	m.live = nil
}

// SetShowInMenus sets the "show_in_menus" field.
func (m *NodeMutation) SetShowInMenus(b bool) {
	m.show_in_menus = &b
}

// ShowInMenus returns the value of the "show_in_menus" field in the mutation.
func (m *NodeMutation) ShowInMenus() (r bool, exists bool) {
	v := m.show_in_menus
	if v == nil {
		return
	}
	return *v, true
}

// OldShowInMenus returns the old "show_in_menus" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldShowInMenus(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShowInMenus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShowInMenus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShowInMenus: %w", err)
	}
	return oldValue.ShowInMenus, nil
}

// ResetShowInMenus resets all changes to the "show_in_menus" field.
func (m *NodeMutation) ResetShowInMenus() {
	m.show_in_menus = nil
}

// SetSeoTitle sets the "seo_title" field.
func (m *NodeMutation) SetSeoTitle(s string) {
	m.seo_title = &s
}

// SeoTitle returns the value of the "seo_title" field in the mutation.
func (m *NodeMutation) SeoTitle() (r string, exists bool) {
	v := m.seo_title
	if v == nil {
		return
	}
	return *v, true
}

// OldSeoTitle returns the old "seo_title" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldSeoTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeoTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeoTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeoTitle: %w", err)
	}
	return oldValue.SeoTitle, nil
}

// ClearSeoTitle clears the value of the "seo_title" field.
func (m *NodeMutation) ClearSeoTitle() {
	m.seo_title = nil
	m.clearedFields[node.FieldSeoTitle] = struct{}{}
}

// SeoTitleCleared returns if the "seo_title" field was cleared in this mutation.
func (m *NodeMutation) SeoTitleCleared() bool {
	_, ok := m.clearedFields[node.FieldSeoTitle]
	return ok
}

// ResetSeoTitle resets all changes to the "seo_title" field.
func (m *NodeMutation) ResetSeoTitle() {
	m.seo_title = nil
	delete(m.clearedFields, node.FieldSeoTitle)
}

// SetSearchDescription sets the "search_description" field.
func (m *NodeMutation) SetSearchDescription(s string) {
	m.search_description = &s
}

// SearchDescription returns the value of the "search_description" field in the mutation.
func (m *NodeMutation) SearchDescription() (r string, exists bool) {
	v := m.search_description
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchDescription returns the old "search_description" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldSearchDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchDescription: %w", err)
	}
	return oldValue.SearchDescription, nil
}

// ClearSearchDescription clears the value of the "search_description" field.
func (m *NodeMutation) ClearSearchDescription() {
	m.search_description = nil
	m.clearedFields[node.FieldSearchDescription] = struct{}{}
}

// SearchDescriptionCleared returns if the "search_description" field was cleared in this mutation.
func (m *NodeMutation) SearchDescriptionCleared() bool {
	_, ok := m.clearedFields[node.FieldSearchDescription]
	return ok
}

// ResetSearchDescription resets all changes to the "search_description" field.
func (m *NodeMutation) ResetSearchDescription() {
	m.search_description = nil
	delete(m.clearedFields, node.FieldSearchDescription)
}

// SetContentType sets the "content_type" field.
func (m *NodeMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *NodeMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *NodeMutation) ResetContentType() {
	m.content_type = nil
}

// Where appends a list predicates to the NodeMutation builder.
func (m *NodeMutation) Where(ps ...predicate.Node) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Node, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Node).
func (m *NodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NodeMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, node.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, node.FieldUpdatedAt)
	}
	if m._path != nil {
		fields = append(fields, node.FieldPath)
	}
	if m.depth != nil {
		fields = append(fields, node.FieldDepth)
	}
	if m.title != nil {
		fields = append(fields, node.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, node.FieldSlug)
	}
	if m.url_path != nil {
		fields = append(fields, node.FieldURLPath)
	}
	if m.live != nil {
		fields = append(fields, node.FieldLive)
	}
	if m.show_in_menus != nil {
		fields = append(fields, node.FieldShowInMenus)
	}
	if m.seo_title != nil {
		fields = append(fields, node.FieldSeoTitle)
	}
	if m.search_description != nil {
		fields = append(fields, node.FieldSearchDescription)
	}
	if m.content_type != nil {
		fields = append(fields, node.FieldContentType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case node.FieldCreatedAt:
		return m.CreatedAt()
	case node.FieldUpdatedAt:
		return m.UpdatedAt()
	case node.FieldPath:
		return m.Path()
	case node.FieldDepth:
		return m.Depth()
	case node.FieldTitle:
		return m.Title()
	case node.FieldSlug:
		return m.Slug()
	case node.FieldURLPath:
		return m.URLPath()
	case node.FieldLive:
		return m.Live()
	case node.FieldShowInMenus:
		return m.ShowInMenus()
	case node.FieldSeoTitle:
		return m.SeoTitle()
	case node.FieldSearchDescription:
		return m.SearchDescription()
	case node.FieldContentType:
		return m.ContentType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case node.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case node.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case node.FieldPath:
		return m.OldPath(ctx)
	case node.FieldDepth:
		return m.OldDepth(ctx)
	case node.FieldTitle:
		return m.OldTitle(ctx)
	case node.FieldSlug:
		return m.OldSlug(ctx)
	case node.FieldURLPath:
		return m.OldURLPath(ctx)
	case node.FieldLive:
		return m.OldLive(ctx)
	case node.FieldShowInMenus:
		return m.OldShowInMenus(ctx)
	case node.FieldSeoTitle:
		return m.OldSeoTitle(ctx)
	case node.FieldSearchDescription:
		return m.OldSearchDescription(ctx)
	case node.FieldContentType:
		return m.OldContentType(ctx)
	}
	return nil, fmt.Errorf("unknown Node field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case node.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case node.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case node.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case node.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case node.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case node.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case node.FieldURLPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURLPath(v)
		return nil
	case node.FieldLive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLive(v)
		return nil
	case node.FieldShowInMenus:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShowInMenus(v)
		return nil
	case node.FieldSeoTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeoTitle(v)
		return nil
	case node.FieldSearchDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchDescription(v)
		return nil
	case node.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	}
	return fmt.Errorf("unknown Node field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NodeMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, node.FieldDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case node.FieldDepth:
		return m.AddedDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case node.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	}
	return fmt.Errorf("unknown Node numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(node.FieldSeoTitle) {
		fields = append(fields, node.FieldSeoTitle)
	}
	if m.FieldCleared(node.FieldSearchDescription) {
		fields = append(fields, node.FieldSearchDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NodeMutation) ClearField(name string) error {
	switch name {
	case node.FieldSeoTitle:
		m.ClearSeoTitle()
		return nil
	case node.FieldSearchDescription:
		m.ClearSearchDescription()
		return nil
	}
	return fmt.Errorf("unknown Node nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NodeMutation) ResetField(name string) error {
	switch name {
	case node.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case node.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case node.FieldPath:
		m.ResetPath()
		return nil
	case node.FieldDepth:
		m.ResetDepth()
		return nil
	case node.FieldTitle:
		m.ResetTitle()
		return nil
	case node.FieldSlug:
		m.ResetSlug()
		return nil
	case node.FieldURLPath:
		m.ResetURLPath()
		return nil
	case node.FieldLive:
		m.ResetLive()
		return nil
	case node.FieldShowInMenus:
		m.ResetShowInMenus()
		return nil
	case node.FieldSeoTitle:
		m.ResetSeoTitle()
		return nil
	case node.FieldSearchDescription:
		m.ResetSearchDescription()
		return nil
	case node.FieldContentType:
		m.ResetContentType()
		return nil
	}
	return fmt.Errorf("unknown Node field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NodeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NodeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NodeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Node unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NodeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Node edge %s", name)
}

// PersonIndexPageMutation represents an operation that mutates the PersonIndexPage nodes in the graph.
type PersonIndexPageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	intro         *string
	clearedFields map[string]struct{}
	node          *uuid.UUID
	clearednode   bool
	done          bool
	oldValue      func(context.Context) (*PersonIndexPage, error)
	predicates    []predicate.PersonIndexPage
}

var _ ent.Mutation = (*PersonIndexPageMutation)(nil)

// personindexpageOption allows management of the mutation configuration using functional options.
type personindexpageOption func(*PersonIndexPageMutation)

// newPersonIndexPageMutation creates new mutation for the PersonIndexPage entity.
func newPersonIndexPageMutation(c config, op Op, opts ...personindexpageOption) *PersonIndexPageMutation {
	m := &PersonIndexPageMutation{
		config:        c,
		op:            op,
		typ:           TypePersonIndexPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonIndexPageID sets the ID field of the mutation.
func withPersonIndexPageID(id uuid.UUID) personindexpageOption {
	return func(m *PersonIndexPageMutation) {
		var (
			err   error
			once  sync.Once
			value *PersonIndexPage
		)
		m.oldValue = func(ctx context.Context) (*PersonIndexPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PersonIndexPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersonIndexPage sets the old PersonIndexPage of the mutation.
func withPersonIndexPage(node *PersonIndexPage) personindexpageOption {
	return func(m *PersonIndexPageMutation) {
		m.oldValue = func(context.Context) (*PersonIndexPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonIndexPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonIndexPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PersonIndexPage entities.
func (m *PersonIndexPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonIndexPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonIndexPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PersonIndexPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonIndexPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonIndexPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PersonIndexPage entity.
// If the PersonIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonIndexPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonIndexPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PersonIndexPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PersonIndexPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PersonIndexPage entity.
// If the PersonIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonIndexPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PersonIndexPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNodeID sets the "node_id" field.
func (m *PersonIndexPageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *PersonIndexPageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the PersonIndexPage entity.
// If the PersonIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonIndexPageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *PersonIndexPageMutation) ResetNodeID() {
	m.node = nil
}

// SetIntro sets the "intro" field.
func (m *PersonIndexPageMutation) SetIntro(s string) {
	m.intro = &s
}

// Intro returns the value of the "intro" field in the mutation.
func (m *PersonIndexPageMutation) Intro() (r string, exists bool) {
	v := m.intro
	if v == nil {
		return
	}
	return *v, true
}

// OldIntro returns the old "intro" field's value of the PersonIndexPage entity.
// If the PersonIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonIndexPageMutation) OldIntro(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntro: %w", err)
	}
	return oldValue.Intro, nil
}

// ClearIntro clears the value of the "intro" field.
func (m *PersonIndexPageMutation) ClearIntro() {
	m.intro = nil
	m.clearedFields[personindexpage.FieldIntro] = struct{}{}
}

// IntroCleared returns if the "intro" field was cleared in this mutation.
func (m *PersonIndexPageMutation) IntroCleared() bool {
	_, ok := m.clearedFields[personindexpage.FieldIntro]
	return ok
}

// ResetIntro resets all changes to the "intro" field.
func (m *PersonIndexPageMutation) ResetIntro() {
	m.intro = nil
	delete(m.clearedFields, personindexpage.FieldIntro)
}

// ClearNode clears the "node" edge to the Node entity.
func (m *PersonIndexPageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[personindexpage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *PersonIndexPageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *PersonIndexPageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *PersonIndexPageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// Where appends a list predicates to the PersonIndexPageMutation builder.
func (m *PersonIndexPageMutation) Where(ps ...predicate.PersonIndexPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonIndexPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonIndexPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PersonIndexPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonIndexPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonIndexPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PersonIndexPage).
func (m *PersonIndexPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonIndexPageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, personindexpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, personindexpage.FieldUpdatedAt)
	}
	if m.node != nil {
		fields = append(fields, personindexpage.FieldNodeID)
	}
	if m.intro != nil {
		fields = append(fields, personindexpage.FieldIntro)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonIndexPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case personindexpage.FieldCreatedAt:
		return m.CreatedAt()
	case personindexpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case personindexpage.FieldNodeID:
		return m.NodeID()
	case personindexpage.FieldIntro:
		return m.Intro()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonIndexPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case personindexpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case personindexpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case personindexpage.FieldNodeID:
		return m.OldNodeID(ctx)
	case personindexpage.FieldIntro:
		return m.OldIntro(ctx)
	}
	return nil, fmt.Errorf("unknown PersonIndexPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonIndexPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case personindexpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case personindexpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case personindexpage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case personindexpage.FieldIntro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntro(v)
		return nil
	}
	return fmt.Errorf("unknown PersonIndexPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonIndexPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonIndexPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonIndexPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PersonIndexPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonIndexPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(personindexpage.FieldIntro) {
		fields = append(fields, personindexpage.FieldIntro)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonIndexPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonIndexPageMutation) ClearField(name string) error {
	switch name {
	case personindexpage.FieldIntro:
		m.ClearIntro()
		return nil
	}
	return fmt.Errorf("unknown PersonIndexPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonIndexPageMutation) ResetField(name string) error {
	switch name {
	case personindexpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case personindexpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case personindexpage.FieldNodeID:
		m.ResetNodeID()
		return nil
	case personindexpage.FieldIntro:
		m.ResetIntro()
		return nil
	}
	return fmt.Errorf("unknown PersonIndexPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonIndexPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.node != nil {
		edges = append(edges, personindexpage.EdgeNode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonIndexPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case personindexpage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonIndexPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonIndexPageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonIndexPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednode {
		edges = append(edges, personindexpage.EdgeNode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonIndexPageMutation) EdgeCleared(name string) bool {
	switch name {
	case personindexpage.EdgeNode:
		return m.clearednode
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonIndexPageMutation) ClearEdge(name string) error {
	switch name {
	case personindexpage.EdgeNode:
		m.ClearNode()
		return nil
	}
	return fmt.Errorf("unknown PersonIndexPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonIndexPageMutation) ResetEdge(name string) error {
	switch name {
	case personindexpage.EdgeNode:
		m.ResetNode()
		return nil
	}
	return fmt.Errorf("unknown PersonIndexPage edge %s", name)
}

// PersonPageMutation represents an operation that mutates the PersonPage nodes in the graph.
type PersonPageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	telephone            *string
	email                *string
	address_1            *string
	address_2            *string
	city                 *string
	country              *string
	post_code            *string
	first_name           *string
	last_name            *string
	role                 *string
	intro                *string
	biography            *string
	clearedFields        map[string]struct{}
	node                 *uuid.UUID
	clearednode          bool
	image                *uuid.UUID
	clearedimage         bool
	feed_image           *uuid.UUID
	clearedfeed_image    bool
	related_links        map[uuid.UUID]struct{}
	removedrelated_links map[uuid.UUID]struct{}
	clearedrelated_links bool
	done                 bool
	oldValue             func(context.Context) (*PersonPage, error)
	predicates           []predicate.PersonPage
}

var _ ent.Mutation = (*PersonPageMutation)(nil)

// personpageOption allows management of the mutation configuration using functional options.
type personpageOption func(*PersonPageMutation)

// newPersonPageMutation creates new mutation for the PersonPage entity.
func newPersonPageMutation(c config, op Op, opts ...personpageOption) *PersonPageMutation {
	m := &PersonPageMutation{
		config:        c,
		op:            op,
		typ:           TypePersonPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonPageID sets the ID field of the mutation.
func withPersonPageID(id uuid.UUID) personpageOption {
	return func(m *PersonPageMutation) {
		var (
			err   error
			once  sync.Once
			value *PersonPage
		)
		m.oldValue = func(ctx context.Context) (*PersonPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PersonPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersonPage sets the old PersonPage of the mutation.
func withPersonPage(node *PersonPage) personpageOption {
	return func(m *PersonPageMutation) {
		m.oldValue = func(context.Context) (*PersonPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PersonPage entities.
func (m *PersonPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PersonPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PersonPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PersonPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PersonPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTelephone sets the "telephone" field.
func (m *PersonPageMutation) SetTelephone(s string) {
	m.telephone = &s
}

// Telephone returns the value of the "telephone" field in the mutation.
func (m *PersonPageMutation) Telephone() (r string, exists bool) {
	v := m.telephone
	if v == nil {
		return
	}
	return *v, true
}

// OldTelephone returns the old "telephone" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldTelephone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelephone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelephone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelephone: %w", err)
	}
	return oldValue.Telephone, nil
}

// ClearTelephone clears the value of the "telephone" field.
func (m *PersonPageMutation) ClearTelephone() {
	m.telephone = nil
	m.clearedFields[personpage.FieldTelephone] = struct{}{}
}

// TelephoneCleared returns if the "telephone" field was cleared in this mutation.
func (m *PersonPageMutation) TelephoneCleared() bool {
	_, ok := m.clearedFields[personpage.FieldTelephone]
	return ok
}

// ResetTelephone resets all changes to the "telephone" field.
func (m *PersonPageMutation) ResetTelephone() {
	m.telephone = nil
	delete(m.clearedFields, personpage.FieldTelephone)
}

// SetEmail sets the "email" field.
func (m *PersonPageMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *PersonPageMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *PersonPageMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[personpage.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *PersonPageMutation) EmailCleared() bool {
	_, ok := m.clearedFields[personpage.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *PersonPageMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, personpage.FieldEmail)
}

// SetAddress1 sets the "address_1" field.
func (m *PersonPageMutation) SetAddress1(s string) {
	m.address_1 = &s
}

// Address1 returns the value of the "address_1" field in the mutation.
func (m *PersonPageMutation) Address1() (r string, exists bool) {
	v := m.address_1
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress1 returns the old "address_1" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldAddress1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress1: %w", err)
	}
	return oldValue.Address1, nil
}

// ClearAddress1 clears the value of the "address_1" field.
func (m *PersonPageMutation) ClearAddress1() {
	m.address_1 = nil
	m.clearedFields[personpage.FieldAddress1] = struct{}{}
}

// Address1Cleared returns if the "address_1" field was cleared in this mutation.
func (m *PersonPageMutation) Address1Cleared() bool {
	_, ok := m.clearedFields[personpage.FieldAddress1]
	return ok
}

// ResetAddress1 resets all changes to the "address_1" field.
func (m *PersonPageMutation) ResetAddress1() {
	m.address_1 = nil
	delete(m.clearedFields, personpage.FieldAddress1)
}

// SetAddress2 sets the "address_2" field.
func (m *PersonPageMutation) SetAddress2(s string) {
	m.address_2 = &s
}

// Address2 returns the value of the "address_2" field in the mutation.
func (m *PersonPageMutation) Address2() (r string, exists bool) {
	v := m.address_2
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress2 returns the old "address_2" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldAddress2(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress2: %w", err)
	}
	return oldValue.Address2, nil
}

// ClearAddress2 clears the value of the "address_2" field.
func (m *PersonPageMutation) ClearAddress2() {
	m.address_2 = nil
	m.clearedFields[personpage.FieldAddress2] = struct{}{}
}

// Address2Cleared returns if the "address_2" field was cleared in this mutation.
func (m *PersonPageMutation) Address2Cleared() bool {
	_, ok := m.clearedFields[personpage.FieldAddress2]
	return ok
}

// ResetAddress2 resets all changes to the "address_2" field.
func (m *PersonPageMutation) ResetAddress2() {
	m.address_2 = nil
	delete(m.clearedFields, personpage.FieldAddress2)
}

// SetCity sets the "city" field.
func (m *PersonPageMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *PersonPageMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *PersonPageMutation) ClearCity() {
	m.city = nil
	m.clearedFields[personpage.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *PersonPageMutation) CityCleared() bool {
	_, ok := m.clearedFields[personpage.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *PersonPageMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, personpage.FieldCity)
}

// SetCountry sets the "country" field.
func (m *PersonPageMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *PersonPageMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *PersonPageMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[personpage.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *PersonPageMutation) CountryCleared() bool {
	_, ok := m.clearedFields[personpage.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *PersonPageMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, personpage.FieldCountry)
}

// SetPostCode sets the "post_code" field.
func (m *PersonPageMutation) SetPostCode(s string) {
	m.post_code = &s
}

// PostCode returns the value of the "post_code" field in the mutation.
func (m *PersonPageMutation) PostCode() (r string, exists bool) {
	v := m.post_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostCode returns the old "post_code" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldPostCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostCode: %w", err)
	}
	return oldValue.PostCode, nil
}

// ClearPostCode clears the value of the "post_code" field.
func (m *PersonPageMutation) ClearPostCode() {
	m.post_code = nil
	m.clearedFields[personpage.FieldPostCode] = struct{}{}
}

// PostCodeCleared returns if the "post_code" field was cleared in this mutation.
func (m *PersonPageMutation) PostCodeCleared() bool {
	_, ok := m.clearedFields[personpage.FieldPostCode]
	return ok
}

// ResetPostCode resets all changes to the "post_code" field.
func (m *PersonPageMutation) ResetPostCode() {
	m.post_code = nil
	delete(m.clearedFields, personpage.FieldPostCode)
}

// SetNodeID sets the "node_id" field.
func (m *PersonPageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *PersonPageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *PersonPageMutation) ResetNodeID() {
	m.node = nil
}

// SetFirstName sets the "first_name" field.
func (m *PersonPageMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PersonPageMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PersonPageMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *PersonPageMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PersonPageMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PersonPageMutation) ResetLastName() {
	m.last_name = nil
}

// SetRole sets the "role" field.
func (m *PersonPageMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *PersonPageMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *PersonPageMutation) ClearRole() {
	m.role = nil
	m.clearedFields[personpage.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *PersonPageMutation) RoleCleared() bool {
	_, ok := m.clearedFields[personpage.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *PersonPageMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, personpage.FieldRole)
}

// SetIntro sets the "intro" field.
func (m *PersonPageMutation) SetIntro(s string) {
	m.intro = &s
}

// Intro returns the value of the "intro" field in the mutation.
func (m *PersonPageMutation) Intro() (r string, exists bool) {
	v := m.intro
	if v == nil {
		return
	}
	return *v, true
}

// OldIntro returns the old "intro" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldIntro(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntro: %w", err)
	}
	return oldValue.Intro, nil
}

// ClearIntro clears the value of the "intro" field.
func (m *PersonPageMutation) ClearIntro() {
	m.intro = nil
	m.clearedFields[personpage.FieldIntro] = struct{}{}
}

// IntroCleared returns if the "intro" field was cleared in this mutation.
func (m *PersonPageMutation) IntroCleared() bool {
	_, ok := m.clearedFields[personpage.FieldIntro]
	return ok
}

// ResetIntro resets all changes to the "intro" field.
func (m *PersonPageMutation) ResetIntro() {
	m.intro = nil
	delete(m.clearedFields, personpage.FieldIntro)
}

// SetBiography sets the "biography" field.
func (m *PersonPageMutation) SetBiography(s string) {
	m.biography = &s
}

// Biography returns the value of the "biography" field in the mutation.
func (m *PersonPageMutation) Biography() (r string, exists bool) {
	v := m.biography
	if v == nil {
		return
	}
	return *v, true
}

// OldBiography returns the old "biography" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldBiography(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBiography is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBiography requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBiography: %w", err)
	}
	return oldValue.Biography, nil
}

// ClearBiography clears the value of the "biography" field.
func (m *PersonPageMutation) ClearBiography() {
	m.biography = nil
	m.clearedFields[personpage.FieldBiography] = struct{}{}
}

// BiographyCleared returns if the "biography" field was cleared in this mutation.
func (m *PersonPageMutation) BiographyCleared() bool {
	_, ok := m.clearedFields[personpage.FieldBiography]
	return ok
}

// ResetBiography resets all changes to the "biography" field.
func (m *PersonPageMutation) ResetBiography() {
	m.biography = nil
	delete(m.clearedFields, personpage.FieldBiography)
}

// SetImageID sets the "image_id" field.
func (m *PersonPageMutation) SetImageID(u uuid.UUID) {
	m.image = &u
}

// ImageID returns the value of the "image_id" field in the mutation.
func (m *PersonPageMutation) ImageID() (r uuid.UUID, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImageID returns the old "image_id" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldImageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageID: %w", err)
	}
	return oldValue.ImageID, nil
}

// ClearImageID clears the value of the "image_id" field.
func (m *PersonPageMutation) ClearImageID() {
	m.image = nil
	m.clearedFields[personpage.FieldImageID] = struct{}{}
}

// ImageIDCleared returns if the "image_id" field was cleared in this mutation.
func (m *PersonPageMutation) ImageIDCleared() bool {
	_, ok := m.clearedFields[personpage.FieldImageID]
	return ok
}

// ResetImageID resets all changes to the "image_id" field.
func (m *PersonPageMutation) ResetImageID() {
	m.image = nil
	delete(m.clearedFields, personpage.FieldImageID)
}

// SetFeedImageID sets the "feed_image_id" field.
func (m *PersonPageMutation) SetFeedImageID(u uuid.UUID) {
	m.feed_image = &u
}

// FeedImageID returns the value of the "feed_image_id" field in the mutation.
func (m *PersonPageMutation) FeedImageID() (r uuid.UUID, exists bool) {
	v := m.feed_image
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedImageID returns the old "feed_image_id" field's value of the PersonPage entity.
// If the PersonPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonPageMutation) OldFeedImageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedImageID: %w", err)
	}
	return oldValue.FeedImageID, nil
}

// ClearFeedImageID clears the value of the "feed_image_id" field.
func (m *PersonPageMutation) ClearFeedImageID() {
	m.feed_image = nil
	m.clearedFields[personpage.FieldFeedImageID] = struct{}{}
}

// FeedImageIDCleared returns if the "feed_image_id" field was cleared in this mutation.
func (m *PersonPageMutation) FeedImageIDCleared() bool {
	_, ok := m.clearedFields[personpage.FieldFeedImageID]
	return ok
}

// ResetFeedImageID resets all changes to the "feed_image_id" field.
func (m *PersonPageMutation) ResetFeedImageID() {
	m.feed_image = nil
	delete(m.clearedFields, personpage.FieldFeedImageID)
}

// ClearNode clears the "node" edge to the Node entity.
func (m *PersonPageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[personpage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *PersonPageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *PersonPageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *PersonPageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// ClearImage clears the "image" edge to the Image entity.
func (m *PersonPageMutation) ClearImage() {
	m.clearedimage = true
	m.clearedFields[personpage.FieldImageID] = struct{}{}
}

// ImageCleared reports if the "image" edge to the Image entity was cleared.
func (m *PersonPageMutation) ImageCleared() bool {
	return m.ImageIDCleared() || m.clearedimage
}

// ImageIDs returns the "image" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImageID instead. It exists only for internal usage by the builders.
func (m *PersonPageMutation) ImageIDs() (ids []uuid.UUID) {
	if id := m.image; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImage resets all changes to the "image" edge.
func (m *PersonPageMutation) ResetImage() {
	m.image = nil
	m.clearedimage = false
}

// ClearFeedImage clears the "feed_image" edge to the Image entity.
func (m *PersonPageMutation) ClearFeedImage() {
	m.clearedfeed_image = true
	m.clearedFields[personpage.FieldFeedImageID] = struct{}{}
}

// FeedImageCleared reports if the "feed_image" edge to the Image entity was cleared.
func (m *PersonPageMutation) FeedImageCleared() bool {
	return m.FeedImageIDCleared() || m.clearedfeed_image
}

// FeedImageIDs returns the "feed_image" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeedImageID instead. It exists only for internal usage by the builders.
func (m *PersonPageMutation) FeedImageIDs() (ids []uuid.UUID) {
	if id := m.feed_image; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeedImage resets all changes to the "feed_image" edge.
func (m *PersonPageMutation) ResetFeedImage() {
	m.feed_image = nil
	m.clearedfeed_image = false
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by ids.
func (m *PersonPageMutation) AddRelatedLinkIDs(ids ...uuid.UUID) {
	if m.related_links == nil {
		m.related_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.related_links[ids[i]] = struct{}{}
	}
}

// ClearRelatedLinks clears the "related_links" edge to the RelatedLink entity.
func (m *PersonPageMutation) ClearRelatedLinks() {
	m.clearedrelated_links = true
}

// RelatedLinksCleared reports if the "related_links" edge to the RelatedLink entity was cleared.
func (m *PersonPageMutation) RelatedLinksCleared() bool {
	return m.clearedrelated_links
}

// RemoveRelatedLinkIDs removes the "related_links" edge to the RelatedLink entity by IDs.
func (m *PersonPageMutation) RemoveRelatedLinkIDs(ids ...uuid.UUID) {
	if m.removedrelated_links == nil {
		m.removedrelated_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.related_links, ids[i])
		m.removedrelated_links[ids[i]] = struct{}{}
	}
}

// RemovedRelatedLinks returns the removed IDs of the "related_links" edge to the RelatedLink entity.
func (m *PersonPageMutation) RemovedRelatedLinksIDs() (ids []uuid.UUID) {
	for id := range m.removedrelated_links {
		ids = append(ids, id)
	}
	return
}

// RelatedLinksIDs returns the "related_links" edge IDs in the mutation.
func (m *PersonPageMutation) RelatedLinksIDs() (ids []uuid.UUID) {
	for id := range m.related_links {
		ids = append(ids, id)
	}
	return
}

// ResetRelatedLinks resets all changes to the "related_links" edge.
func (m *PersonPageMutation) ResetRelatedLinks() {
	m.related_links = nil
	m.clearedrelated_links = false
	m.removedrelated_links = nil
}

// Where appends a list predicates to the PersonPageMutation builder.
func (m *PersonPageMutation) Where(ps ...predicate.PersonPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PersonPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PersonPage).
func (m *PersonPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonPageMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, personpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, personpage.FieldUpdatedAt)
	}
	if m.telephone != nil {
		fields = append(fields, personpage.FieldTelephone)
	}
	if m.email != nil {
		fields = append(fields, personpage.FieldEmail)
	}
	if m.address_1 != nil {
		fields = append(fields, personpage.FieldAddress1)
	}
	if m.address_2 != nil {
		fields = append(fields, personpage.FieldAddress2)
	}
	if m.city != nil {
		fields = append(fields, personpage.FieldCity)
	}
	if m.country != nil {
		fields = append(fields, personpage.FieldCountry)
	}
	if m.post_code != nil {
		fields = append(fields, personpage.FieldPostCode)
	}
	if m.node != nil {
		fields = append(fields, personpage.FieldNodeID)
	}
	if m.first_name != nil {
		fields = append(fields, personpage.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, personpage.FieldLastName)
	}
	if m.role != nil {
		fields = append(fields, personpage.FieldRole)
	}
	if m.intro != nil {
		fields = append(fields, personpage.FieldIntro)
	}
	if m.biography != nil {
		fields = append(fields, personpage.FieldBiography)
	}
	if m.image != nil {
		fields = append(fields, personpage.FieldImageID)
	}
	if m.feed_image != nil {
		fields = append(fields, personpage.FieldFeedImageID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case personpage.FieldCreatedAt:
		return m.CreatedAt()
	case personpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case personpage.FieldTelephone:
		return m.Telephone()
	case personpage.FieldEmail:
		return m.Email()
	case personpage.FieldAddress1:
		return m.Address1()
	case personpage.FieldAddress2:
		return m.Address2()
	case personpage.FieldCity:
		return m.City()
	case personpage.FieldCountry:
		return m.Country()
	case personpage.FieldPostCode:
		return m.PostCode()
	case personpage.FieldNodeID:
		return m.NodeID()
	case personpage.FieldFirstName:
		return m.FirstName()
	case personpage.FieldLastName:
		return m.LastName()
	case personpage.FieldRole:
		return m.Role()
	case personpage.FieldIntro:
		return m.Intro()
	case personpage.FieldBiography:
		return m.Biography()
	case personpage.FieldImageID:
		return m.ImageID()
	case personpage.FieldFeedImageID:
		return m.FeedImageID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case personpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case personpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case personpage.FieldTelephone:
		return m.OldTelephone(ctx)
	case personpage.FieldEmail:
		return m.OldEmail(ctx)
	case personpage.FieldAddress1:
		return m.OldAddress1(ctx)
	case personpage.FieldAddress2:
		return m.OldAddress2(ctx)
	case personpage.FieldCity:
		return m.OldCity(ctx)
	case personpage.FieldCountry:
		return m.OldCountry(ctx)
	case personpage.FieldPostCode:
		return m.OldPostCode(ctx)
	case personpage.FieldNodeID:
		return m.OldNodeID(ctx)
	case personpage.FieldFirstName:
		return m.OldFirstName(ctx)
	case personpage.FieldLastName:
		return m.OldLastName(ctx)
	case personpage.FieldRole:
		return m.OldRole(ctx)
	case personpage.FieldIntro:
		return m.OldIntro(ctx)
	case personpage.FieldBiography:
		return m.OldBiography(ctx)
	case personpage.FieldImageID:
		return m.OldImageID(ctx)
	case personpage.FieldFeedImageID:
		return m.OldFeedImageID(ctx)
	}
	return nil, fmt.Errorf("unknown PersonPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case personpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case personpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case personpage.FieldTelephone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelephone(v)
		return nil
	case personpage.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case personpage.FieldAddress1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress1(v)
		return nil
	case personpage.FieldAddress2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress2(v)
		return nil
	case personpage.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case personpage.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case personpage.FieldPostCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostCode(v)
		return nil
	case personpage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case personpage.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case personpage.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case personpage.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case personpage.FieldIntro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntro(v)
		return nil
	case personpage.FieldBiography:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBiography(v)
		return nil
	case personpage.FieldImageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageID(v)
		return nil
	case personpage.FieldFeedImageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedImageID(v)
		return nil
	}
	return fmt.Errorf("unknown PersonPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PersonPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(personpage.FieldTelephone) {
		fields = append(fields, personpage.FieldTelephone)
	}
	if m.FieldCleared(personpage.FieldEmail) {
		fields = append(fields, personpage.FieldEmail)
	}
	if m.FieldCleared(personpage.FieldAddress1) {
		fields = append(fields, personpage.FieldAddress1)
	}
	if m.FieldCleared(personpage.FieldAddress2) {
		fields = append(fields, personpage.FieldAddress2)
	}
	if m.FieldCleared(personpage.FieldCity) {
		fields = append(fields, personpage.FieldCity)
	}
	if m.FieldCleared(personpage.FieldCountry) {
		fields = append(fields, personpage.FieldCountry)
	}
	if m.FieldCleared(personpage.FieldPostCode) {
		fields = append(fields, personpage.FieldPostCode)
	}
	if m.FieldCleared(personpage.FieldRole) {
		fields = append(fields, personpage.FieldRole)
	}
	if m.FieldCleared(personpage.FieldIntro) {
		fields = append(fields, personpage.FieldIntro)
	}
	if m.FieldCleared(personpage.FieldBiography) {
		fields = append(fields, personpage.FieldBiography)
	}
	if m.FieldCleared(personpage.FieldImageID) {
		fields = append(fields, personpage.FieldImageID)
	}
	if m.FieldCleared(personpage.FieldFeedImageID) {
		fields = append(fields, personpage.FieldFeedImageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonPageMutation) ClearField(name string) error {
	switch name {
	case personpage.FieldTelephone:
		m.ClearTelephone()
		return nil
	case personpage.FieldEmail:
		m.ClearEmail()
		return nil
	case personpage.FieldAddress1:
		m.ClearAddress1()
		return nil
	case personpage.FieldAddress2:
		m.ClearAddress2()
		return nil
	case personpage.FieldCity:
		m.ClearCity()
		return nil
	case personpage.FieldCountry:
		m.ClearCountry()
		return nil
	case personpage.FieldPostCode:
		m.ClearPostCode()
		return nil
	case personpage.FieldRole:
		m.ClearRole()
		return nil
	case personpage.FieldIntro:
		m.ClearIntro()
		return nil
	case personpage.FieldBiography:
		m.ClearBiography()
		return nil
	case personpage.FieldImageID:
		m.ClearImageID()
		return nil
	case personpage.FieldFeedImageID:
		m.ClearFeedImageID()
		return nil
	}
	return fmt.Errorf("unknown PersonPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonPageMutation) ResetField(name string) error {
	switch name {
	case personpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case personpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case personpage.FieldTelephone:
		m.ResetTelephone()
		return nil
	case personpage.FieldEmail:
		m.ResetEmail()
		return nil
	case personpage.FieldAddress1:
		m.ResetAddress1()
		return nil
	case personpage.FieldAddress2:
		m.ResetAddress2()
		return nil
	case personpage.FieldCity:
		m.ResetCity()
		return nil
	case personpage.FieldCountry:
		m.ResetCountry()
		return nil
	case personpage.FieldPostCode:
		m.ResetPostCode()
		return nil
	case personpage.FieldNodeID:
		m.ResetNodeID()
		return nil
	case personpage.FieldFirstName:
		m.ResetFirstName()
		return nil
	case personpage.FieldLastName:
		m.ResetLastName()
		return nil
	case personpage.FieldRole:
		m.ResetRole()
		return nil
	case personpage.FieldIntro:
		m.ResetIntro()
		return nil
	case personpage.FieldBiography:
		m.ResetBiography()
		return nil
	case personpage.FieldImageID:
		m.ResetImageID()
		return nil
	case personpage.FieldFeedImageID:
		m.ResetFeedImageID()
		return nil
	}
	return fmt.Errorf("unknown PersonPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.node != nil {
		edges = append(edges, personpage.EdgeNode)
	}
	if m.image != nil {
		edges = append(edges, personpage.EdgeImage)
	}
	if m.feed_image != nil {
		edges = append(edges, personpage.EdgeFeedImage)
	}
	if m.related_links != nil {
		edges = append(edges, personpage.EdgeRelatedLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case personpage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	case personpage.EdgeImage:
		if id := m.image; id != nil {
			return []ent.Value{*id}
		}
	case personpage.EdgeFeedImage:
		if id := m.feed_image; id != nil {
			return []ent.Value{*id}
		}
	case personpage.EdgeRelatedLinks:
		ids := make([]ent.Value, 0, len(m.related_links))
		for id := range m.related_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedrelated_links != nil {
		edges = append(edges, personpage.EdgeRelatedLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonPageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case personpage.EdgeRelatedLinks:
		ids := make([]ent.Value, 0, len(m.removedrelated_links))
		for id := range m.removedrelated_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearednode {
		edges = append(edges, personpage.EdgeNode)
	}
	if m.clearedimage {
		edges = append(edges, personpage.EdgeImage)
	}
	if m.clearedfeed_image {
		edges = append(edges, personpage.EdgeFeedImage)
	}
	if m.clearedrelated_links {
		edges = append(edges, personpage.EdgeRelatedLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonPageMutation) EdgeCleared(name string) bool {
	switch name {
	case personpage.EdgeNode:
		return m.clearednode
	case personpage.EdgeImage:
		return m.clearedimage
	case personpage.EdgeFeedImage:
		return m.clearedfeed_image
	case personpage.EdgeRelatedLinks:
		return m.clearedrelated_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonPageMutation) ClearEdge(name string) error {
	switch name {
	case personpage.EdgeNode:
		m.ClearNode()
		return nil
	case personpage.EdgeImage:
		m.ClearImage()
		return nil
	case personpage.EdgeFeedImage:
		m.ClearFeedImage()
		return nil
	}
	return fmt.Errorf("unknown PersonPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonPageMutation) ResetEdge(name string) error {
	switch name {
	case personpage.EdgeNode:
		m.ResetNode()
		return nil
	case personpage.EdgeImage:
		m.ResetImage()
		return nil
	case personpage.EdgeFeedImage:
		m.ResetFeedImage()
		return nil
	case personpage.EdgeRelatedLinks:
		m.ResetRelatedLinks()
		return nil
	}
	return fmt.Errorf("unknown PersonPage edge %s", name)
}

// RelatedLinkMutation represents an operation that mutates the RelatedLink nodes in the graph.
type RelatedLinkMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	link_external          *string
	title                  *string
	sort_order             *int
	addsort_order          *int
	clearedFields          map[string]struct{}
	link_node              *uuid.UUID
	clearedlink_node       bool
	link_document          *uuid.UUID
	clearedlink_document   bool
	standard_page          *uuid.UUID
	clearedstandard_page   bool
	blog_index_page        *uuid.UUID
	clearedblog_index_page bool
	blog_page              *uuid.UUID
	clearedblog_page       bool
	person_page            *uuid.UUID
	clearedperson_page     bool
	done                   bool
	oldValue               func(context.Context) (*RelatedLink, error)
	predicates             []predicate.RelatedLink
}

var _ ent.Mutation = (*RelatedLinkMutation)(nil)

// relatedlinkOption allows management of the mutation configuration using functional options.
type relatedlinkOption func(*RelatedLinkMutation)

// newRelatedLinkMutation creates new mutation for the RelatedLink entity.
func newRelatedLinkMutation(c config, op Op, opts ...relatedlinkOption) *RelatedLinkMutation {
	m := &RelatedLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeRelatedLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRelatedLinkID sets the ID field of the mutation.
func withRelatedLinkID(id uuid.UUID) relatedlinkOption {
	return func(m *RelatedLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *RelatedLink
		)
		m.oldValue = func(ctx context.Context) (*RelatedLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RelatedLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRelatedLink sets the old RelatedLink of the mutation.
func withRelatedLink(node *RelatedLink) relatedlinkOption {
	return func(m *RelatedLinkMutation) {
		m.oldValue = func(context.Context) (*RelatedLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RelatedLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RelatedLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RelatedLink entities.
func (m *RelatedLinkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RelatedLinkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RelatedLinkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RelatedLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLinkExternal sets the "link_external" field.
func (m *RelatedLinkMutation) SetLinkExternal(s string) {
	m.link_external = &s
}

// LinkExternal returns the value of the "link_external" field in the mutation.
func (m *RelatedLinkMutation) LinkExternal() (r string, exists bool) {
	v := m.link_external
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkExternal returns the old "link_external" field's value of the RelatedLink entity.
// If the RelatedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelatedLinkMutation) OldLinkExternal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkExternal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkExternal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkExternal: %w", err)
	}
	return oldValue.LinkExternal, nil
}

// ClearLinkExternal clears the value of the "link_external" field.
func (m *RelatedLinkMutation) ClearLinkExternal() {
	m.link_external = nil
	m.clearedFields[relatedlink.FieldLinkExternal] = struct{}{}
}

// LinkExternalCleared returns if the "link_external" field was cleared in this mutation.
func (m *RelatedLinkMutation) LinkExternalCleared() bool {
	_, ok := m.clearedFields[relatedlink.FieldLinkExternal]
	return ok
}

// ResetLinkExternal resets all changes to the "link_external" field.
func (m *RelatedLinkMutation) ResetLinkExternal() {
	m.link_external = nil
	delete(m.clearedFields, relatedlink.FieldLinkExternal)
}

// SetLinkNodeID sets the "link_node_id" field.
func (m *RelatedLinkMutation) SetLinkNodeID(u uuid.UUID) {
	m.link_node = &u
}

// LinkNodeID returns the value of the "link_node_id" field in the mutation.
func (m *RelatedLinkMutation) LinkNodeID() (r uuid.UUID, exists bool) {
	v := m.link_node
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkNodeID returns the old "link_node_id" field's value of the RelatedLink entity.
// If the RelatedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelatedLinkMutation) OldLinkNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkNodeID: %w", err)
	}
	return oldValue.LinkNodeID, nil
}

// ClearLinkNodeID clears the value of the "link_node_id" field.
func (m *RelatedLinkMutation) ClearLinkNodeID() {
	m.link_node = nil
	m.clearedFields[relatedlink.FieldLinkNodeID] = struct{}{}
}

// LinkNodeIDCleared returns if the "link_node_id" field was cleared in this mutation.
func (m *RelatedLinkMutation) LinkNodeIDCleared() bool {
	_, ok := m.clearedFields[relatedlink.FieldLinkNodeID]
	return ok
}

// ResetLinkNodeID resets all changes to the "link_node_id" field.
func (m *RelatedLinkMutation) ResetLinkNodeID() {
	m.link_node = nil
	delete(m.clearedFields, relatedlink.FieldLinkNodeID)
}

// SetLinkDocumentID sets the "link_document_id" field.
func (m *RelatedLinkMutation) SetLinkDocumentID(u uuid.UUID) {
	m.link_document = &u
}

// LinkDocumentID returns the value of the "link_document_id" field in the mutation.
func (m *RelatedLinkMutation) LinkDocumentID() (r uuid.UUID, exists bool) {
	v := m.link_document
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkDocumentID returns the old "link_document_id" field's value of the RelatedLink entity.
// If the RelatedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelatedLinkMutation) OldLinkDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkDocumentID: %w", err)
	}
	return oldValue.LinkDocumentID, nil
}

// ClearLinkDocumentID clears the value of the "link_document_id" field.
func (m *RelatedLinkMutation) ClearLinkDocumentID() {
	m.link_document = nil
	m.clearedFields[relatedlink.FieldLinkDocumentID] = struct{}{}
}

// LinkDocumentIDCleared returns if the "link_document_id" field was cleared in this mutation.
func (m *RelatedLinkMutation) LinkDocumentIDCleared() bool {
	_, ok := m.clearedFields[relatedlink.FieldLinkDocumentID]
	return ok
}

// ResetLinkDocumentID resets all changes to the "link_document_id" field.
func (m *RelatedLinkMutation) ResetLinkDocumentID() {
	m.link_document = nil
	delete(m.clearedFields, relatedlink.FieldLinkDocumentID)
}

// SetTitle sets the "title" field.
func (m *RelatedLinkMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RelatedLinkMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the RelatedLink entity.
// If the RelatedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelatedLinkMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RelatedLinkMutation) ResetTitle() {
	m.title = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *RelatedLinkMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *RelatedLinkMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the RelatedLink entity.
// If the RelatedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelatedLinkMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *RelatedLinkMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *RelatedLinkMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *RelatedLinkMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetStandardPageID sets the "standard_page_id" field.
func (m *RelatedLinkMutation) SetStandardPageID(u uuid.UUID) {
	m.standard_page = &u
}

// StandardPageID returns the value of the "standard_page_id" field in the mutation.
func (m *RelatedLinkMutation) StandardPageID() (r uuid.UUID, exists bool) {
	v := m.standard_page
	if v == nil {
		return
	}
	return *v, true
}

// OldStandardPageID returns the old "standard_page_id" field's value of the RelatedLink entity.
// If the RelatedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelatedLinkMutation) OldStandardPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStandardPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStandardPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStandardPageID: %w", err)
	}
	return oldValue.StandardPageID, nil
}

// ClearStandardPageID clears the value of the "standard_page_id" field.
func (m *RelatedLinkMutation) ClearStandardPageID() {
	m.standard_page = nil
	m.clearedFields[relatedlink.FieldStandardPageID] = struct{}{}
}

// StandardPageIDCleared returns if the "standard_page_id" field was cleared in this mutation.
func (m *RelatedLinkMutation) StandardPageIDCleared() bool {
	_, ok := m.clearedFields[relatedlink.FieldStandardPageID]
	return ok
}

// ResetStandardPageID resets all changes to the "standard_page_id" field.
func (m *RelatedLinkMutation) ResetStandardPageID() {
	m.standard_page = nil
	delete(m.clearedFields, relatedlink.FieldStandardPageID)
}

// SetBlogIndexPageID sets the "blog_index_page_id" field.
func (m *RelatedLinkMutation) SetBlogIndexPageID(u uuid.UUID) {
	m.blog_index_page = &u
}

// BlogIndexPageID returns the value of the "blog_index_page_id" field in the mutation.
func (m *RelatedLinkMutation) BlogIndexPageID() (r uuid.UUID, exists bool) {
	v := m.blog_index_page
	if v == nil {
		return
	}
	return *v, true
}

// OldBlogIndexPageID returns the old "blog_index_page_id" field's value of the RelatedLink entity.
// If the RelatedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelatedLinkMutation) OldBlogIndexPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlogIndexPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlogIndexPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlogIndexPageID: %w", err)
	}
	return oldValue.BlogIndexPageID, nil
}

// ClearBlogIndexPageID clears the value of the "blog_index_page_id" field.
func (m *RelatedLinkMutation) ClearBlogIndexPageID() {
	m.blog_index_page = nil
	m.clearedFields[relatedlink.FieldBlogIndexPageID] = struct{}{}
}

// BlogIndexPageIDCleared returns if the "blog_index_page_id" field was cleared in this mutation.
func (m *RelatedLinkMutation) BlogIndexPageIDCleared() bool {
	_, ok := m.clearedFields[relatedlink.FieldBlogIndexPageID]
	return ok
}

// ResetBlogIndexPageID resets all changes to the "blog_index_page_id" field.
func (m *RelatedLinkMutation) ResetBlogIndexPageID() {
	m.blog_index_page = nil
	delete(m.clearedFields, relatedlink.FieldBlogIndexPageID)
}

// SetBlogPageID sets the "blog_page_id" field.
func (m *RelatedLinkMutation) SetBlogPageID(u uuid.UUID) {
	m.blog_page = &u
}

// BlogPageID returns the value of the "blog_page_id" field in the mutation.
func (m *RelatedLinkMutation) BlogPageID() (r uuid.UUID, exists bool) {
	v := m.blog_page
	if v == nil {
		return
	}
	return *v, true
}

// OldBlogPageID returns the old "blog_page_id" field's value of the RelatedLink entity.
// If the RelatedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelatedLinkMutation) OldBlogPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlogPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlogPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlogPageID: %w", err)
	}
	return oldValue.BlogPageID, nil
}

// ClearBlogPageID clears the value of the "blog_page_id" field.
func (m *RelatedLinkMutation) ClearBlogPageID() {
	m.blog_page = nil
	m.clearedFields[relatedlink.FieldBlogPageID] = struct{}{}
}

// BlogPageIDCleared returns if the "blog_page_id" field was cleared in this mutation.
func (m *RelatedLinkMutation) BlogPageIDCleared() bool {
	_, ok := m.clearedFields[relatedlink.FieldBlogPageID]
	return ok
}

// ResetBlogPageID resets all changes to the "blog_page_id" field.
func (m *RelatedLinkMutation) ResetBlogPageID() {
	m.blog_page = nil
	delete(m.clearedFields, relatedlink.FieldBlogPageID)
}

// SetPersonPageID sets the "person_page_id" field.
func (m *RelatedLinkMutation) SetPersonPageID(u uuid.UUID) {
	m.person_page = &u
}

// PersonPageID returns the value of the "person_page_id" field in the mutation.
func (m *RelatedLinkMutation) PersonPageID() (r uuid.UUID, exists bool) {
	v := m.person_page
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonPageID returns the old "person_page_id" field's value of the RelatedLink entity.
// If the RelatedLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelatedLinkMutation) OldPersonPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonPageID: %w", err)
	}
	return oldValue.PersonPageID, nil
}

// ClearPersonPageID clears the value of the "person_page_id" field.
func (m *RelatedLinkMutation) ClearPersonPageID() {
	m.person_page = nil
	m.clearedFields[relatedlink.FieldPersonPageID] = struct{}{}
}

// PersonPageIDCleared returns if the "person_page_id" field was cleared in this mutation.
func (m *RelatedLinkMutation) PersonPageIDCleared() bool {
	_, ok := m.clearedFields[relatedlink.FieldPersonPageID]
	return ok
}

// ResetPersonPageID resets all changes to the "person_page_id" field.
func (m *RelatedLinkMutation) ResetPersonPageID() {
	m.person_page = nil
	delete(m.clearedFields, relatedlink.FieldPersonPageID)
}

// ClearLinkNode clears the "link_node" edge to the Node entity.
func (m *RelatedLinkMutation) ClearLinkNode() {
	m.clearedlink_node = true
	m.clearedFields[relatedlink.FieldLinkNodeID] = struct{}{}
}

// LinkNodeCleared reports if the "link_node" edge to the Node entity was cleared.
func (m *RelatedLinkMutation) LinkNodeCleared() bool {
	return m.LinkNodeIDCleared() || m.clearedlink_node
}

// LinkNodeIDs returns the "link_node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LinkNodeID instead. It exists only for internal usage by the builders.
func (m *RelatedLinkMutation) LinkNodeIDs() (ids []uuid.UUID) {
	if id := m.link_node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLinkNode resets all changes to the "link_node" edge.
func (m *RelatedLinkMutation) ResetLinkNode() {
	m.link_node = nil
	m.clearedlink_node = false
}

// ClearLinkDocument clears the "link_document" edge to the Document entity.
func (m *RelatedLinkMutation) ClearLinkDocument() {
	m.clearedlink_document = true
	m.clearedFields[relatedlink.FieldLinkDocumentID] = struct{}{}
}

// LinkDocumentCleared reports if the "link_document" edge to the Document entity was cleared.
func (m *RelatedLinkMutation) LinkDocumentCleared() bool {
	return m.LinkDocumentIDCleared() || m.clearedlink_document
}

// LinkDocumentIDs returns the "link_document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LinkDocumentID instead. It exists only for internal usage by the builders.
func (m *RelatedLinkMutation) LinkDocumentIDs() (ids []uuid.UUID) {
	if id := m.link_document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLinkDocument resets all changes to the "link_document" edge.
func (m *RelatedLinkMutation) ResetLinkDocument() {
	m.link_document = nil
	m.clearedlink_document = false
}

// ClearStandardPage clears the "standard_page" edge to the StandardPage entity.
func (m *RelatedLinkMutation) ClearStandardPage() {
	m.clearedstandard_page = true
	m.clearedFields[relatedlink.FieldStandardPageID] = struct{}{}
}

// StandardPageCleared reports if the "standard_page" edge to the StandardPage entity was cleared.
func (m *RelatedLinkMutation) StandardPageCleared() bool {
	return m.StandardPageIDCleared() || m.clearedstandard_page
}

// StandardPageIDs returns the "standard_page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StandardPageID instead. It exists only for internal usage by the builders.
func (m *RelatedLinkMutation) StandardPageIDs() (ids []uuid.UUID) {
	if id := m.standard_page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStandardPage resets all changes to the "standard_page" edge.
func (m *RelatedLinkMutation) ResetStandardPage() {
	m.standard_page = nil
	m.clearedstandard_page = false
}

// ClearBlogIndexPage clears the "blog_index_page" edge to the BlogIndexPage entity.
func (m *RelatedLinkMutation) ClearBlogIndexPage() {
	m.clearedblog_index_page = true
	m.clearedFields[relatedlink.FieldBlogIndexPageID] = struct{}{}
}

// BlogIndexPageCleared reports if the "blog_index_page" edge to the BlogIndexPage entity was cleared.
func (m *RelatedLinkMutation) BlogIndexPageCleared() bool {
	return m.BlogIndexPageIDCleared() || m.clearedblog_index_page
}

// BlogIndexPageIDs returns the "blog_index_page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlogIndexPageID instead. It exists only for internal usage by the builders.
func (m *RelatedLinkMutation) BlogIndexPageIDs() (ids []uuid.UUID) {
	if id := m.blog_index_page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlogIndexPage resets all changes to the "blog_index_page" edge.
func (m *RelatedLinkMutation) ResetBlogIndexPage() {
	m.blog_index_page = nil
	m.clearedblog_index_page = false
}

// ClearBlogPage clears the "blog_page" edge to the BlogPage entity.
func (m *RelatedLinkMutation) ClearBlogPage() {
	m.clearedblog_page = true
	m.clearedFields[relatedlink.FieldBlogPageID] = struct{}{}
}

// BlogPageCleared reports if the "blog_page" edge to the BlogPage entity was cleared.
func (m *RelatedLinkMutation) BlogPageCleared() bool {
	return m.BlogPageIDCleared() || m.clearedblog_page
}

// BlogPageIDs returns the "blog_page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlogPageID instead. It exists only for internal usage by the builders.
func (m *RelatedLinkMutation) BlogPageIDs() (ids []uuid.UUID) {
	if id := m.blog_page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlogPage resets all changes to the "blog_page" edge.
func (m *RelatedLinkMutation) ResetBlogPage() {
	m.blog_page = nil
	m.clearedblog_page = false
}

// ClearPersonPage clears the "person_page" edge to the PersonPage entity.
func (m *RelatedLinkMutation) ClearPersonPage() {
	m.clearedperson_page = true
	m.clearedFields[relatedlink.FieldPersonPageID] = struct{}{}
}

// PersonPageCleared reports if the "person_page" edge to the PersonPage entity was cleared.
func (m *RelatedLinkMutation) PersonPageCleared() bool {
	return m.PersonPageIDCleared() || m.clearedperson_page
}

// PersonPageIDs returns the "person_page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PersonPageID instead. It exists only for internal usage by the builders.
func (m *RelatedLinkMutation) PersonPageIDs() (ids []uuid.UUID) {
	if id := m.person_page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPersonPage resets all changes to the "person_page" edge.
func (m *RelatedLinkMutation) ResetPersonPage() {
	m.person_page = nil
	m.clearedperson_page = false
}

// Where appends a list predicates to the RelatedLinkMutation builder.
func (m *RelatedLinkMutation) Where(ps ...predicate.RelatedLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RelatedLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RelatedLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RelatedLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RelatedLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RelatedLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RelatedLink).
func (m *RelatedLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RelatedLinkMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.link_external != nil {
		fields = append(fields, relatedlink.FieldLinkExternal)
	}
	if m.link_node != nil {
		fields = append(fields, relatedlink.FieldLinkNodeID)
	}
	if m.link_document != nil {
		fields = append(fields, relatedlink.FieldLinkDocumentID)
	}
	if m.title != nil {
		fields = append(fields, relatedlink.FieldTitle)
	}
	if m.sort_order != nil {
		fields = append(fields, relatedlink.FieldSortOrder)
	}
	if m.standard_page != nil {
		fields = append(fields, relatedlink.FieldStandardPageID)
	}
	if m.blog_index_page != nil {
		fields = append(fields, relatedlink.FieldBlogIndexPageID)
	}
	if m.blog_page != nil {
		fields = append(fields, relatedlink.FieldBlogPageID)
	}
	if m.person_page != nil {
		fields = append(fields, relatedlink.FieldPersonPageID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RelatedLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case relatedlink.FieldLinkExternal:
		return m.LinkExternal()
	case relatedlink.FieldLinkNodeID:
		return m.LinkNodeID()
	case relatedlink.FieldLinkDocumentID:
		return m.LinkDocumentID()
	case relatedlink.FieldTitle:
		return m.Title()
	case relatedlink.FieldSortOrder:
		return m.SortOrder()
	case relatedlink.FieldStandardPageID:
		return m.StandardPageID()
	case relatedlink.FieldBlogIndexPageID:
		return m.BlogIndexPageID()
	case relatedlink.FieldBlogPageID:
		return m.BlogPageID()
	case relatedlink.FieldPersonPageID:
		return m.PersonPageID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RelatedLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case relatedlink.FieldLinkExternal:
		return m.OldLinkExternal(ctx)
	case relatedlink.FieldLinkNodeID:
		return m.OldLinkNodeID(ctx)
	case relatedlink.FieldLinkDocumentID:
		return m.OldLinkDocumentID(ctx)
	case relatedlink.FieldTitle:
		return m.OldTitle(ctx)
	case relatedlink.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case relatedlink.FieldStandardPageID:
		return m.OldStandardPageID(ctx)
	case relatedlink.FieldBlogIndexPageID:
		return m.OldBlogIndexPageID(ctx)
	case relatedlink.FieldBlogPageID:
		return m.OldBlogPageID(ctx)
	case relatedlink.FieldPersonPageID:
		return m.OldPersonPageID(ctx)
	}
	return nil, fmt.Errorf("unknown RelatedLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelatedLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case relatedlink.FieldLinkExternal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkExternal(v)
		return nil
	case relatedlink.FieldLinkNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkNodeID(v)
		return nil
	case relatedlink.FieldLinkDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkDocumentID(v)
		return nil
	case relatedlink.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case relatedlink.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case relatedlink.FieldStandardPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStandardPageID(v)
		return nil
	case relatedlink.FieldBlogIndexPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlogIndexPageID(v)
		return nil
	case relatedlink.FieldBlogPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlogPageID(v)
		return nil
	case relatedlink.FieldPersonPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonPageID(v)
		return nil
	}
	return fmt.Errorf("unknown RelatedLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RelatedLinkMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, relatedlink.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RelatedLinkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case relatedlink.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelatedLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case relatedlink.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown RelatedLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RelatedLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(relatedlink.FieldLinkExternal) {
		fields = append(fields, relatedlink.FieldLinkExternal)
	}
	if m.FieldCleared(relatedlink.FieldLinkNodeID) {
		fields = append(fields, relatedlink.FieldLinkNodeID)
	}
	if m.FieldCleared(relatedlink.FieldLinkDocumentID) {
		fields = append(fields, relatedlink.FieldLinkDocumentID)
	}
	if m.FieldCleared(relatedlink.FieldStandardPageID) {
		fields = append(fields, relatedlink.FieldStandardPageID)
	}
	if m.FieldCleared(relatedlink.FieldBlogIndexPageID) {
		fields = append(fields, relatedlink.FieldBlogIndexPageID)
	}
	if m.FieldCleared(relatedlink.FieldBlogPageID) {
		fields = append(fields, relatedlink.FieldBlogPageID)
	}
	if m.FieldCleared(relatedlink.FieldPersonPageID) {
		fields = append(fields, relatedlink.FieldPersonPageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RelatedLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RelatedLinkMutation) ClearField(name string) error {
	switch name {
	case relatedlink.FieldLinkExternal:
		m.ClearLinkExternal()
		return nil
	case relatedlink.FieldLinkNodeID:
		m.ClearLinkNodeID()
		return nil
	case relatedlink.FieldLinkDocumentID:
		m.ClearLinkDocumentID()
		return nil
	case relatedlink.FieldStandardPageID:
		m.ClearStandardPageID()
		return nil
	case relatedlink.FieldBlogIndexPageID:
		m.ClearBlogIndexPageID()
		return nil
	case relatedlink.FieldBlogPageID:
		m.ClearBlogPageID()
		return nil
	case relatedlink.FieldPersonPageID:
		m.ClearPersonPageID()
		return nil
	}
	return fmt.Errorf("unknown RelatedLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RelatedLinkMutation) ResetField(name string) error {
	switch name {
	case relatedlink.FieldLinkExternal:
		m.ResetLinkExternal()
		return nil
	case relatedlink.FieldLinkNodeID:
		m.ResetLinkNodeID()
		return nil
	case relatedlink.FieldLinkDocumentID:
		m.ResetLinkDocumentID()
		return nil
	case relatedlink.FieldTitle:
		m.ResetTitle()
		return nil
	case relatedlink.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case relatedlink.FieldStandardPageID:
		m.ResetStandardPageID()
		return nil
	case relatedlink.FieldBlogIndexPageID:
		m.ResetBlogIndexPageID()
		return nil
	case relatedlink.FieldBlogPageID:
		m.ResetBlogPageID()
		return nil
	case relatedlink.FieldPersonPageID:
		m.ResetPersonPageID()
		return nil
	}
	return fmt.Errorf("unknown RelatedLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RelatedLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.link_node != nil {
		edges = append(edges, relatedlink.EdgeLinkNode)
	}
	if m.link_document != nil {
		edges = append(edges, relatedlink.EdgeLinkDocument)
	}
	if m.standard_page != nil {
		edges = append(edges, relatedlink.EdgeStandardPage)
	}
	if m.blog_index_page != nil {
		edges = append(edges, relatedlink.EdgeBlogIndexPage)
	}
	if m.blog_page != nil {
		edges = append(edges, relatedlink.EdgeBlogPage)
	}
	if m.person_page != nil {
		edges = append(edges, relatedlink.EdgePersonPage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RelatedLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case relatedlink.EdgeLinkNode:
		if id := m.link_node; id != nil {
			return []ent.Value{*id}
		}
	case relatedlink.EdgeLinkDocument:
		if id := m.link_document; id != nil {
			return []ent.Value{*id}
		}
	case relatedlink.EdgeStandardPage:
		if id := m.standard_page; id != nil {
			return []ent.Value{*id}
		}
	case relatedlink.EdgeBlogIndexPage:
		if id := m.blog_index_page; id != nil {
			return []ent.Value{*id}
		}
	case relatedlink.EdgeBlogPage:
		if id := m.blog_page; id != nil {
			return []ent.Value{*id}
		}
	case relatedlink.EdgePersonPage:
		if id := m.person_page; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RelatedLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RelatedLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RelatedLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedlink_node {
		edges = append(edges, relatedlink.EdgeLinkNode)
	}
	if m.clearedlink_document {
		edges = append(edges, relatedlink.EdgeLinkDocument)
	}
	if m.clearedstandard_page {
		edges = append(edges, relatedlink.EdgeStandardPage)
	}
	if m.clearedblog_index_page {
		edges = append(edges, relatedlink.EdgeBlogIndexPage)
	}
	if m.clearedblog_page {
		edges = append(edges, relatedlink.EdgeBlogPage)
	}
	if m.clearedperson_page {
		edges = append(edges, relatedlink.EdgePersonPage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RelatedLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case relatedlink.EdgeLinkNode:
		return m.clearedlink_node
	case relatedlink.EdgeLinkDocument:
		return m.clearedlink_document
	case relatedlink.EdgeStandardPage:
		return m.clearedstandard_page
	case relatedlink.EdgeBlogIndexPage:
		return m.clearedblog_index_page
	case relatedlink.EdgeBlogPage:
		return m.clearedblog_page
	case relatedlink.EdgePersonPage:
		return m.clearedperson_page
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RelatedLinkMutation) ClearEdge(name string) error {
	switch name {
	case relatedlink.EdgeLinkNode:
		m.ClearLinkNode()
		return nil
	case relatedlink.EdgeLinkDocument:
		m.ClearLinkDocument()
		return nil
	case relatedlink.EdgeStandardPage:
		m.ClearStandardPage()
		return nil
	case relatedlink.EdgeBlogIndexPage:
		m.ClearBlogIndexPage()
		return nil
	case relatedlink.EdgeBlogPage:
		m.ClearBlogPage()
		return nil
	case relatedlink.EdgePersonPage:
		m.ClearPersonPage()
		return nil
	}
	return fmt.Errorf("unknown RelatedLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RelatedLinkMutation) ResetEdge(name string) error {
	switch name {
	case relatedlink.EdgeLinkNode:
		m.ResetLinkNode()
		return nil
	case relatedlink.EdgeLinkDocument:
		m.ResetLinkDocument()
		return nil
	case relatedlink.EdgeStandardPage:
		m.ResetStandardPage()
		return nil
	case relatedlink.EdgeBlogIndexPage:
		m.ResetBlogIndexPage()
		return nil
	case relatedlink.EdgeBlogPage:
		m.ResetBlogPage()
		return nil
	case relatedlink.EdgePersonPage:
		m.ResetPersonPage()
		return nil
	}
	return fmt.Errorf("unknown RelatedLink edge %s", name)
}

// StandardPageMutation represents an operation that mutates the StandardPage nodes in the graph.
type StandardPageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	intro                *string
	body                 *string
	clearedFields        map[string]struct{}
	node                 *uuid.UUID
	clearednode          bool
	feed_image           *uuid.UUID
	clearedfeed_image    bool
	related_links        map[uuid.UUID]struct{}
	removedrelated_links map[uuid.UUID]struct{}
	clearedrelated_links bool
	done                 bool
	oldValue             func(context.Context) (*StandardPage, error)
	predicates           []predicate.StandardPage
}

var _ ent.Mutation = (*StandardPageMutation)(nil)

// standardpageOption allows management of the mutation configuration using functional options.
type standardpageOption func(*StandardPageMutation)

// newStandardPageMutation creates new mutation for the StandardPage entity.
func newStandardPageMutation(c config, op Op, opts ...standardpageOption) *StandardPageMutation {
	m := &StandardPageMutation{
		config:        c,
		op:            op,
		typ:           TypeStandardPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStandardPageID sets the ID field of the mutation.
func withStandardPageID(id uuid.UUID) standardpageOption {
	return func(m *StandardPageMutation) {
		var (
			err   error
			once  sync.Once
			value *StandardPage
		)
		m.oldValue = func(ctx context.Context) (*StandardPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StandardPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStandardPage sets the old StandardPage of the mutation.
func withStandardPage(node *StandardPage) standardpageOption {
	return func(m *StandardPageMutation) {
		m.oldValue = func(context.Context) (*StandardPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StandardPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StandardPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StandardPage entities.
func (m *StandardPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StandardPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StandardPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StandardPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StandardPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StandardPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StandardPage entity.
// If the StandardPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StandardPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StandardPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StandardPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StandardPage entity.
// If the StandardPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StandardPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNodeID sets the "node_id" field.
func (m *StandardPageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *StandardPageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the StandardPage entity.
// If the StandardPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardPageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *StandardPageMutation) ResetNodeID() {
	m.node = nil
}

// SetIntro sets the "intro" field.
func (m *StandardPageMutation) SetIntro(s string) {
	m.intro = &s
}

// Intro returns the value of the "intro" field in the mutation.
func (m *StandardPageMutation) Intro() (r string, exists bool) {
	v := m.intro
	if v == nil {
		return
	}
	return *v, true
}

// OldIntro returns the old "intro" field's value of the StandardPage entity.
// If the StandardPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardPageMutation) OldIntro(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntro: %w", err)
	}
	return oldValue.Intro, nil
}

// ClearIntro clears the value of the "intro" field.
func (m *StandardPageMutation) ClearIntro() {
	m.intro = nil
	m.clearedFields[standardpage.FieldIntro] = struct{}{}
}

// IntroCleared returns if the "intro" field was cleared in this mutation.
func (m *StandardPageMutation) IntroCleared() bool {
	_, ok := m.clearedFields[standardpage.FieldIntro]
	return ok
}

// ResetIntro resets all changes to the "intro" field.
func (m *StandardPageMutation) ResetIntro() {
	m.intro = nil
	delete(m.clearedFields, standardpage.FieldIntro)
}

// SetBody sets the "body" field.
func (m *StandardPageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *StandardPageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the StandardPage entity.
// If the StandardPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardPageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *StandardPageMutation) ClearBody() {
	m.body = nil
	m.clearedFields[standardpage.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *StandardPageMutation) BodyCleared() bool {
	_, ok := m.clearedFields[standardpage.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *StandardPageMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, standardpage.FieldBody)
}

// SetFeedImageID sets the "feed_image_id" field.
func (m *StandardPageMutation) SetFeedImageID(u uuid.UUID) {
	m.feed_image = &u
}

// FeedImageID returns the value of the "feed_image_id" field in the mutation.
func (m *StandardPageMutation) FeedImageID() (r uuid.UUID, exists bool) {
	v := m.feed_image
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedImageID returns the old "feed_image_id" field's value of the StandardPage entity.
// If the StandardPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardPageMutation) OldFeedImageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedImageID: %w", err)
	}
	return oldValue.FeedImageID, nil
}

// ClearFeedImageID clears the value of the "feed_image_id" field.
func (m *StandardPageMutation) ClearFeedImageID() {
	m.feed_image = nil
	m.clearedFields[standardpage.FieldFeedImageID] = struct{}{}
}

// FeedImageIDCleared returns if the "feed_image_id" field was cleared in this mutation.
func (m *StandardPageMutation) FeedImageIDCleared() bool {
	_, ok := m.clearedFields[standardpage.FieldFeedImageID]
	return ok
}

// ResetFeedImageID resets all changes to the "feed_image_id" field.
func (m *StandardPageMutation) ResetFeedImageID() {
	m.feed_image = nil
	delete(m.clearedFields, standardpage.FieldFeedImageID)
}

// ClearNode clears the "node" edge to the Node entity.
func (m *StandardPageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[standardpage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *StandardPageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *StandardPageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *StandardPageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// ClearFeedImage clears the "feed_image" edge to the Image entity.
func (m *StandardPageMutation) ClearFeedImage() {
	m.clearedfeed_image = true
	m.clearedFields[standardpage.FieldFeedImageID] = struct{}{}
}

// FeedImageCleared reports if the "feed_image" edge to the Image entity was cleared.
func (m *StandardPageMutation) FeedImageCleared() bool {
	return m.FeedImageIDCleared() || m.clearedfeed_image
}

// FeedImageIDs returns the "feed_image" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeedImageID instead. It exists only for internal usage by the builders.
func (m *StandardPageMutation) FeedImageIDs() (ids []uuid.UUID) {
	if id := m.feed_image; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeedImage resets all changes to the "feed_image" edge.
func (m *StandardPageMutation) ResetFeedImage() {
	m.feed_image = nil
	m.clearedfeed_image = false
}

// AddRelatedLinkIDs adds the "related_links" edge to the RelatedLink entity by ids.
func (m *StandardPageMutation) AddRelatedLinkIDs(ids ...uuid.UUID) {
	if m.related_links == nil {
		m.related_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.related_links[ids[i]] = struct{}{}
	}
}

// ClearRelatedLinks clears the "related_links" edge to the RelatedLink entity.
func (m *StandardPageMutation) ClearRelatedLinks() {
	m.clearedrelated_links = true
}

// RelatedLinksCleared reports if the "related_links" edge to the RelatedLink entity was cleared.
func (m *StandardPageMutation) RelatedLinksCleared() bool {
	return m.clearedrelated_links
}

// RemoveRelatedLinkIDs removes the "related_links" edge to the RelatedLink entity by IDs.
func (m *StandardPageMutation) RemoveRelatedLinkIDs(ids ...uuid.UUID) {
	if m.removedrelated_links == nil {
		m.removedrelated_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.related_links, ids[i])
		m.removedrelated_links[ids[i]] = struct{}{}
	}
}

// RemovedRelatedLinks returns the removed IDs of the "related_links" edge to the RelatedLink entity.
func (m *StandardPageMutation) RemovedRelatedLinksIDs() (ids []uuid.UUID) {
	for id := range m.removedrelated_links {
		ids = append(ids, id)
	}
	return
}

// RelatedLinksIDs returns the "related_links" edge IDs in the mutation.
func (m *StandardPageMutation) RelatedLinksIDs() (ids []uuid.UUID) {
	for id := range m.related_links {
		ids = append(ids, id)
	}
	return
}

// ResetRelatedLinks resets all changes to the "related_links" edge.
func (m *StandardPageMutation) ResetRelatedLinks() {
	m.related_links = nil
	m.clearedrelated_links = false
	m.removedrelated_links = nil
}

// Where appends a list predicates to the StandardPageMutation builder.
func (m *StandardPageMutation) Where(ps ...predicate.StandardPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StandardPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StandardPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StandardPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StandardPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StandardPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StandardPage).
func (m *StandardPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StandardPageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, standardpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, standardpage.FieldUpdatedAt)
	}
	if m.node != nil {
		fields = append(fields, standardpage.FieldNodeID)
	}
	if m.intro != nil {
		fields = append(fields, standardpage.FieldIntro)
	}
	if m.body != nil {
		fields = append(fields, standardpage.FieldBody)
	}
	if m.feed_image != nil {
		fields = append(fields, standardpage.FieldFeedImageID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StandardPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case standardpage.FieldCreatedAt:
		return m.CreatedAt()
	case standardpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case standardpage.FieldNodeID:
		return m.NodeID()
	case standardpage.FieldIntro:
		return m.Intro()
	case standardpage.FieldBody:
		return m.Body()
	case standardpage.FieldFeedImageID:
		return m.FeedImageID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StandardPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case standardpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case standardpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case standardpage.FieldNodeID:
		return m.OldNodeID(ctx)
	case standardpage.FieldIntro:
		return m.OldIntro(ctx)
	case standardpage.FieldBody:
		return m.OldBody(ctx)
	case standardpage.FieldFeedImageID:
		return m.OldFeedImageID(ctx)
	}
	return nil, fmt.Errorf("unknown StandardPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandardPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case standardpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case standardpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case standardpage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case standardpage.FieldIntro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntro(v)
		return nil
	case standardpage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case standardpage.FieldFeedImageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedImageID(v)
		return nil
	}
	return fmt.Errorf("unknown StandardPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StandardPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StandardPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandardPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StandardPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StandardPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(standardpage.FieldIntro) {
		fields = append(fields, standardpage.FieldIntro)
	}
	if m.FieldCleared(standardpage.FieldBody) {
		fields = append(fields, standardpage.FieldBody)
	}
	if m.FieldCleared(standardpage.FieldFeedImageID) {
		fields = append(fields, standardpage.FieldFeedImageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StandardPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StandardPageMutation) ClearField(name string) error {
	switch name {
	case standardpage.FieldIntro:
		m.ClearIntro()
		return nil
	case standardpage.FieldBody:
		m.ClearBody()
		return nil
	case standardpage.FieldFeedImageID:
		m.ClearFeedImageID()
		return nil
	}
	return fmt.Errorf("unknown StandardPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StandardPageMutation) ResetField(name string) error {
	switch name {
	case standardpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case standardpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case standardpage.FieldNodeID:
		m.ResetNodeID()
		return nil
	case standardpage.FieldIntro:
		m.ResetIntro()
		return nil
	case standardpage.FieldBody:
		m.ResetBody()
		return nil
	case standardpage.FieldFeedImageID:
		m.ResetFeedImageID()
		return nil
	}
	return fmt.Errorf("unknown StandardPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StandardPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.node != nil {
		edges = append(edges, standardpage.EdgeNode)
	}
	if m.feed_image != nil {
		edges = append(edges, standardpage.EdgeFeedImage)
	}
	if m.related_links != nil {
		edges = append(edges, standardpage.EdgeRelatedLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StandardPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case standardpage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	case standardpage.EdgeFeedImage:
		if id := m.feed_image; id != nil {
			return []ent.Value{*id}
		}
	case standardpage.EdgeRelatedLinks:
		ids := make([]ent.Value, 0, len(m.related_links))
		for id := range m.related_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StandardPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedrelated_links != nil {
		edges = append(edges, standardpage.EdgeRelatedLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StandardPageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case standardpage.EdgeRelatedLinks:
		ids := make([]ent.Value, 0, len(m.removedrelated_links))
		for id := range m.removedrelated_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StandardPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearednode {
		edges = append(edges, standardpage.EdgeNode)
	}
	if m.clearedfeed_image {
		edges = append(edges, standardpage.EdgeFeedImage)
	}
	if m.clearedrelated_links {
		edges = append(edges, standardpage.EdgeRelatedLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StandardPageMutation) EdgeCleared(name string) bool {
	switch name {
	case standardpage.EdgeNode:
		return m.clearednode
	case standardpage.EdgeFeedImage:
		return m.clearedfeed_image
	case standardpage.EdgeRelatedLinks:
		return m.clearedrelated_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StandardPageMutation) ClearEdge(name string) error {
	switch name {
	case standardpage.EdgeNode:
		m.ClearNode()
		return nil
	case standardpage.EdgeFeedImage:
		m.ClearFeedImage()
		return nil
	}
	return fmt.Errorf("unknown StandardPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StandardPageMutation) ResetEdge(name string) error {
	switch name {
	case standardpage.EdgeNode:
		m.ResetNode()
		return nil
	case standardpage.EdgeFeedImage:
		m.ResetFeedImage()
		return nil
	case standardpage.EdgeRelatedLinks:
		m.ResetRelatedLinks()
		return nil
	}
	return fmt.Errorf("unknown StandardPage edge %s", name)
}

// TagMutation represents an operation that mutates the Tag nodes in the graph.
type TagMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	clearedFields     map[string]struct{}
	blog_pages        map[uuid.UUID]struct{}
	removedblog_pages map[uuid.UUID]struct{}
	clearedblog_pages bool
	done              bool
	oldValue          func(context.Context) (*Tag, error)
	predicates        []predicate.Tag
}

var _ ent.Mutation = (*TagMutation)(nil)

// tagOption allows management of the mutation configuration using functional options.
type tagOption func(*TagMutation)

// newTagMutation creates new mutation for the Tag entity.
func newTagMutation(c config, op Op, opts ...tagOption) *TagMutation {
	m := &TagMutation{
		config:        c,
		op:            op,
		typ:           TypeTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTagID sets the ID field of the mutation.
func withTagID(id uuid.UUID) tagOption {
	return func(m *TagMutation) {
		var (
			err   error
			once  sync.Once
			value *Tag
		)
		m.oldValue = func(ctx context.Context) (*Tag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTag sets the old Tag of the mutation.
func withTag(node *Tag) tagOption {
	return func(m *TagMutation) {
		m.oldValue = func(context.Context) (*Tag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tag entities.
func (m *TagMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TagMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TagMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TagMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TagMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TagMutation) ResetName() {
	m.name = nil
}

// AddBlogPageIDs adds the "blog_pages" edge to the BlogPage entity by ids.
func (m *TagMutation) AddBlogPageIDs(ids ...uuid.UUID) {
	if m.blog_pages == nil {
		m.blog_pages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.blog_pages[ids[i]] = struct{}{}
	}
}

// ClearBlogPages clears the "blog_pages" edge to the BlogPage entity.
func (m *TagMutation) ClearBlogPages() {
	m.clearedblog_pages = true
}

// BlogPagesCleared reports if the "blog_pages" edge to the BlogPage entity was cleared.
func (m *TagMutation) BlogPagesCleared() bool {
	return m.clearedblog_pages
}

// RemoveBlogPageIDs removes the "blog_pages" edge to the BlogPage entity by IDs.
func (m *TagMutation) RemoveBlogPageIDs(ids ...uuid.UUID) {
	if m.removedblog_pages == nil {
		m.removedblog_pages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.blog_pages, ids[i])
		m.removedblog_pages[ids[i]] = struct{}{}
	}
}

// RemovedBlogPages returns the removed IDs of the "blog_pages" edge to the BlogPage entity.
func (m *TagMutation) RemovedBlogPagesIDs() (ids []uuid.UUID) {
	for id := range m.removedblog_pages {
		ids = append(ids, id)
	}
	return
}

// BlogPagesIDs returns the "blog_pages" edge IDs in the mutation.
func (m *TagMutation) BlogPagesIDs() (ids []uuid.UUID) {
	for id := range m.blog_pages {
		ids = append(ids, id)
	}
	return
}

// ResetBlogPages resets all changes to the "blog_pages" edge.
func (m *TagMutation) ResetBlogPages() {
	m.blog_pages = nil
	m.clearedblog_pages = false
	m.removedblog_pages = nil
}

// Where appends a list predicates to the TagMutation builder.
func (m *TagMutation) Where(ps ...predicate.Tag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tag).
func (m *TagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TagMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, tag.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tag.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tag.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Tag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tag.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TagMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TagMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TagMutation) ResetField(name string) error {
	switch name {
	case tag.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TagMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.blog_pages != nil {
		edges = append(edges, tag.EdgeBlogPages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tag.EdgeBlogPages:
		ids := make([]ent.Value, 0, len(m.blog_pages))
		for id := range m.blog_pages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedblog_pages != nil {
		edges = append(edges, tag.EdgeBlogPages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TagMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tag.EdgeBlogPages:
		ids := make([]ent.Value, 0, len(m.removedblog_pages))
		for id := range m.removedblog_pages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedblog_pages {
		edges = append(edges, tag.EdgeBlogPages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TagMutation) EdgeCleared(name string) bool {
	switch name {
	case tag.EdgeBlogPages:
		return m.clearedblog_pages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TagMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TagMutation) ResetEdge(name string) error {
	switch name {
	case tag.EdgeBlogPages:
		m.ResetBlogPages()
		return nil
	}
	return fmt.Errorf("unknown Tag edge %s", name)
}

// WorkIndexPageMutation represents an operation that mutates the WorkIndexPage nodes in the graph.
type WorkIndexPageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	intro         *string
	clearedFields map[string]struct{}
	node          *uuid.UUID
	clearednode   bool
	done          bool
	oldValue      func(context.Context) (*WorkIndexPage, error)
	predicates    []predicate.WorkIndexPage
}

var _ ent.Mutation = (*WorkIndexPageMutation)(nil)

// workindexpageOption allows management of the mutation configuration using functional options.
type workindexpageOption func(*WorkIndexPageMutation)

// newWorkIndexPageMutation creates new mutation for the WorkIndexPage entity.
func newWorkIndexPageMutation(c config, op Op, opts ...workindexpageOption) *WorkIndexPageMutation {
	m := &WorkIndexPageMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkIndexPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkIndexPageID sets the ID field of the mutation.
func withWorkIndexPageID(id uuid.UUID) workindexpageOption {
	return func(m *WorkIndexPageMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkIndexPage
		)
		m.oldValue = func(ctx context.Context) (*WorkIndexPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkIndexPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkIndexPage sets the old WorkIndexPage of the mutation.
func withWorkIndexPage(node *WorkIndexPage) workindexpageOption {
	return func(m *WorkIndexPageMutation) {
		m.oldValue = func(context.Context) (*WorkIndexPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkIndexPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkIndexPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkIndexPage entities.
func (m *WorkIndexPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkIndexPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkIndexPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkIndexPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkIndexPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkIndexPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkIndexPage entity.
// If the WorkIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkIndexPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkIndexPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkIndexPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkIndexPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkIndexPage entity.
// If the WorkIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkIndexPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkIndexPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNodeID sets the "node_id" field.
func (m *WorkIndexPageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *WorkIndexPageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the WorkIndexPage entity.
// If the WorkIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkIndexPageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *WorkIndexPageMutation) ResetNodeID() {
	m.node = nil
}

// SetIntro sets the "intro" field.
func (m *WorkIndexPageMutation) SetIntro(s string) {
	m.intro = &s
}

// Intro returns the value of the "intro" field in the mutation.
func (m *WorkIndexPageMutation) Intro() (r string, exists bool) {
	v := m.intro
	if v == nil {
		return
	}
	return *v, true
}

// OldIntro returns the old "intro" field's value of the WorkIndexPage entity.
// If the WorkIndexPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkIndexPageMutation) OldIntro(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntro: %w", err)
	}
	return oldValue.Intro, nil
}

// ClearIntro clears the value of the "intro" field.
func (m *WorkIndexPageMutation) ClearIntro() {
	m.intro = nil
	m.clearedFields[workindexpage.FieldIntro] = struct{}{}
}

// IntroCleared returns if the "intro" field was cleared in this mutation.
func (m *WorkIndexPageMutation) IntroCleared() bool {
	_, ok := m.clearedFields[workindexpage.FieldIntro]
	return ok
}

// ResetIntro resets all changes to the "intro" field.
func (m *WorkIndexPageMutation) ResetIntro() {
	m.intro = nil
	delete(m.clearedFields, workindexpage.FieldIntro)
}

// ClearNode clears the "node" edge to the Node entity.
func (m *WorkIndexPageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[workindexpage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *WorkIndexPageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *WorkIndexPageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *WorkIndexPageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// Where appends a list predicates to the WorkIndexPageMutation builder.
func (m *WorkIndexPageMutation) Where(ps ...predicate.WorkIndexPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkIndexPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkIndexPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkIndexPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkIndexPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkIndexPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkIndexPage).
func (m *WorkIndexPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkIndexPageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, workindexpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workindexpage.FieldUpdatedAt)
	}
	if m.node != nil {
		fields = append(fields, workindexpage.FieldNodeID)
	}
	if m.intro != nil {
		fields = append(fields, workindexpage.FieldIntro)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkIndexPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workindexpage.FieldCreatedAt:
		return m.CreatedAt()
	case workindexpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case workindexpage.FieldNodeID:
		return m.NodeID()
	case workindexpage.FieldIntro:
		return m.Intro()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkIndexPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workindexpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workindexpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workindexpage.FieldNodeID:
		return m.OldNodeID(ctx)
	case workindexpage.FieldIntro:
		return m.OldIntro(ctx)
	}
	return nil, fmt.Errorf("unknown WorkIndexPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkIndexPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workindexpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workindexpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workindexpage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case workindexpage.FieldIntro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntro(v)
		return nil
	}
	return fmt.Errorf("unknown WorkIndexPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkIndexPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkIndexPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkIndexPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkIndexPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkIndexPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workindexpage.FieldIntro) {
		fields = append(fields, workindexpage.FieldIntro)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkIndexPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkIndexPageMutation) ClearField(name string) error {
	switch name {
	case workindexpage.FieldIntro:
		m.ClearIntro()
		return nil
	}
	return fmt.Errorf("unknown WorkIndexPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkIndexPageMutation) ResetField(name string) error {
	switch name {
	case workindexpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workindexpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workindexpage.FieldNodeID:
		m.ResetNodeID()
		return nil
	case workindexpage.FieldIntro:
		m.ResetIntro()
		return nil
	}
	return fmt.Errorf("unknown WorkIndexPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkIndexPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.node != nil {
		edges = append(edges, workindexpage.EdgeNode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkIndexPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workindexpage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkIndexPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkIndexPageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkIndexPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednode {
		edges = append(edges, workindexpage.EdgeNode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkIndexPageMutation) EdgeCleared(name string) bool {
	switch name {
	case workindexpage.EdgeNode:
		return m.clearednode
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkIndexPageMutation) ClearEdge(name string) error {
	switch name {
	case workindexpage.EdgeNode:
		m.ClearNode()
		return nil
	}
	return fmt.Errorf("unknown WorkIndexPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkIndexPageMutation) ResetEdge(name string) error {
	switch name {
	case workindexpage.EdgeNode:
		m.ResetNode()
		return nil
	}
	return fmt.Errorf("unknown WorkIndexPage edge %s", name)
}

// WorkPageMutation represents an operation that mutates the WorkPage nodes in the graph.
type WorkPageMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	summary            *string
	intro              *string
	body               *string
	clearedFields      map[string]struct{}
	node               *uuid.UUID
	clearednode        bool
	screenshots        map[uuid.UUID]struct{}
	removedscreenshots map[uuid.UUID]struct{}
	clearedscreenshots bool
	done               bool
	oldValue           func(context.Context) (*WorkPage, error)
	predicates         []predicate.WorkPage
}

var _ ent.Mutation = (*WorkPageMutation)(nil)

// workpageOption allows management of the mutation configuration using functional options.
type workpageOption func(*WorkPageMutation)

// newWorkPageMutation creates new mutation for the WorkPage entity.
func newWorkPageMutation(c config, op Op, opts ...workpageOption) *WorkPageMutation {
	m := &WorkPageMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkPageID sets the ID field of the mutation.
func withWorkPageID(id uuid.UUID) workpageOption {
	return func(m *WorkPageMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkPage
		)
		m.oldValue = func(ctx context.Context) (*WorkPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkPage sets the old WorkPage of the mutation.
func withWorkPage(node *WorkPage) workpageOption {
	return func(m *WorkPageMutation) {
		m.oldValue = func(context.Context) (*WorkPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkPage entities.
func (m *WorkPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkPage entity.
// If the WorkPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkPage entity.
// If the WorkPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNodeID sets the "node_id" field.
func (m *WorkPageMutation) SetNodeID(u uuid.UUID) {
	m.node = &u
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *WorkPageMutation) NodeID() (r uuid.UUID, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the WorkPage entity.
// If the WorkPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkPageMutation) OldNodeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *WorkPageMutation) ResetNodeID() {
	m.node = nil
}

// SetSummary sets the "summary" field.
func (m *WorkPageMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *WorkPageMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the WorkPage entity.
// If the WorkPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkPageMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *WorkPageMutation) ResetSummary() {
	m.summary = nil
}

// SetIntro sets the "intro" field.
func (m *WorkPageMutation) SetIntro(s string) {
	m.intro = &s
}

// Intro returns the value of the "intro" field in the mutation.
func (m *WorkPageMutation) Intro() (r string, exists bool) {
	v := m.intro
	if v == nil {
		return
	}
	return *v, true
}

// OldIntro returns the old "intro" field's value of the WorkPage entity.
// If the WorkPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkPageMutation) OldIntro(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntro: %w", err)
	}
	return oldValue.Intro, nil
}

// ClearIntro clears the value of the "intro" field.
func (m *WorkPageMutation) ClearIntro() {
	m.intro = nil
	m.clearedFields[workpage.FieldIntro] = struct{}{}
}

// IntroCleared returns if the "intro" field was cleared in this mutation.
func (m *WorkPageMutation) IntroCleared() bool {
	_, ok := m.clearedFields[workpage.FieldIntro]
	return ok
}

// ResetIntro resets all changes to the "intro" field.
func (m *WorkPageMutation) ResetIntro() {
	m.intro = nil
	delete(m.clearedFields, workpage.FieldIntro)
}

// SetBody sets the "body" field.
func (m *WorkPageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *WorkPageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the WorkPage entity.
// If the WorkPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkPageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *WorkPageMutation) ClearBody() {
	m.body = nil
	m.clearedFields[workpage.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *WorkPageMutation) BodyCleared() bool {
	_, ok := m.clearedFields[workpage.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *WorkPageMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, workpage.FieldBody)
}

// ClearNode clears the "node" edge to the Node entity.
func (m *WorkPageMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[workpage.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the Node entity was cleared.
func (m *WorkPageMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *WorkPageMutation) NodeIDs() (ids []uuid.UUID) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *WorkPageMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// AddScreenshotIDs adds the "screenshots" edge to the WorkScreenshot entity by ids.
func (m *WorkPageMutation) AddScreenshotIDs(ids ...uuid.UUID) {
	if m.screenshots == nil {
		m.screenshots = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.screenshots[ids[i]] = struct{}{}
	}
}

// ClearScreenshots clears the "screenshots" edge to the WorkScreenshot entity.
func (m *WorkPageMutation) ClearScreenshots() {
	m.clearedscreenshots = true
}

// ScreenshotsCleared reports if the "screenshots" edge to the WorkScreenshot entity was cleared.
func (m *WorkPageMutation) ScreenshotsCleared() bool {
	return m.clearedscreenshots
}

// RemoveScreenshotIDs removes the "screenshots" edge to the WorkScreenshot entity by IDs.
func (m *WorkPageMutation) RemoveScreenshotIDs(ids ...uuid.UUID) {
	if m.removedscreenshots == nil {
		m.removedscreenshots = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.screenshots, ids[i])
		m.removedscreenshots[ids[i]] = struct{}{}
	}
}

// RemovedScreenshots returns the removed IDs of the "screenshots" edge to the WorkScreenshot entity.
func (m *WorkPageMutation) RemovedScreenshotsIDs() (ids []uuid.UUID) {
	for id := range m.removedscreenshots {
		ids = append(ids, id)
	}
	return
}

// ScreenshotsIDs returns the "screenshots" edge IDs in the mutation.
func (m *WorkPageMutation) ScreenshotsIDs() (ids []uuid.UUID) {
	for id := range m.screenshots {
		ids = append(ids, id)
	}
	return
}

// ResetScreenshots resets all changes to the "screenshots" edge.
func (m *WorkPageMutation) ResetScreenshots() {
	m.screenshots = nil
	m.clearedscreenshots = false
	m.removedscreenshots = nil
}

// Where appends a list predicates to the WorkPageMutation builder.
func (m *WorkPageMutation) Where(ps ...predicate.WorkPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkPage).
func (m *WorkPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkPageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, workpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workpage.FieldUpdatedAt)
	}
	if m.node != nil {
		fields = append(fields, workpage.FieldNodeID)
	}
	if m.summary != nil {
		fields = append(fields, workpage.FieldSummary)
	}
	if m.intro != nil {
		fields = append(fields, workpage.FieldIntro)
	}
	if m.body != nil {
		fields = append(fields, workpage.FieldBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workpage.FieldCreatedAt:
		return m.CreatedAt()
	case workpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case workpage.FieldNodeID:
		return m.NodeID()
	case workpage.FieldSummary:
		return m.Summary()
	case workpage.FieldIntro:
		return m.Intro()
	case workpage.FieldBody:
		return m.Body()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workpage.FieldNodeID:
		return m.OldNodeID(ctx)
	case workpage.FieldSummary:
		return m.OldSummary(ctx)
	case workpage.FieldIntro:
		return m.OldIntro(ctx)
	case workpage.FieldBody:
		return m.OldBody(ctx)
	}
	return nil, fmt.Errorf("unknown WorkPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workpage.FieldNodeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case workpage.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case workpage.FieldIntro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntro(v)
		return nil
	case workpage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	}
	return fmt.Errorf("unknown WorkPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workpage.FieldIntro) {
		fields = append(fields, workpage.FieldIntro)
	}
	if m.FieldCleared(workpage.FieldBody) {
		fields = append(fields, workpage.FieldBody)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkPageMutation) ClearField(name string) error {
	switch name {
	case workpage.FieldIntro:
		m.ClearIntro()
		return nil
	case workpage.FieldBody:
		m.ClearBody()
		return nil
	}
	return fmt.Errorf("unknown WorkPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkPageMutation) ResetField(name string) error {
	switch name {
	case workpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workpage.FieldNodeID:
		m.ResetNodeID()
		return nil
	case workpage.FieldSummary:
		m.ResetSummary()
		return nil
	case workpage.FieldIntro:
		m.ResetIntro()
		return nil
	case workpage.FieldBody:
		m.ResetBody()
		return nil
	}
	return fmt.Errorf("unknown WorkPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.node != nil {
		edges = append(edges, workpage.EdgeNode)
	}
	if m.screenshots != nil {
		edges = append(edges, workpage.EdgeScreenshots)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workpage.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	case workpage.EdgeScreenshots:
		ids := make([]ent.Value, 0, len(m.screenshots))
		for id := range m.screenshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedscreenshots != nil {
		edges = append(edges, workpage.EdgeScreenshots)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkPageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workpage.EdgeScreenshots:
		ids := make([]ent.Value, 0, len(m.removedscreenshots))
		for id := range m.removedscreenshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednode {
		edges = append(edges, workpage.EdgeNode)
	}
	if m.clearedscreenshots {
		edges = append(edges, workpage.EdgeScreenshots)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkPageMutation) EdgeCleared(name string) bool {
	switch name {
	case workpage.EdgeNode:
		return m.clearednode
	case workpage.EdgeScreenshots:
		return m.clearedscreenshots
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkPageMutation) ClearEdge(name string) error {
	switch name {
	case workpage.EdgeNode:
		m.ClearNode()
		return nil
	}
	return fmt.Errorf("unknown WorkPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkPageMutation) ResetEdge(name string) error {
	switch name {
	case workpage.EdgeNode:
		m.ResetNode()
		return nil
	case workpage.EdgeScreenshots:
		m.ResetScreenshots()
		return nil
	}
	return fmt.Errorf("unknown WorkPage edge %s", name)
}

// WorkScreenshotMutation represents an operation that mutates the WorkScreenshot nodes in the graph.
type WorkScreenshotMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	sort_order       *int
	addsort_order    *int
	clearedFields    map[string]struct{}
	image            *uuid.UUID
	clearedimage     bool
	work_page        *uuid.UUID
	clearedwork_page bool
	done             bool
	oldValue         func(context.Context) (*WorkScreenshot, error)
	predicates       []predicate.WorkScreenshot
}

var _ ent.Mutation = (*WorkScreenshotMutation)(nil)

// workscreenshotOption allows management of the mutation configuration using functional options.
type workscreenshotOption func(*WorkScreenshotMutation)

// newWorkScreenshotMutation creates new mutation for the WorkScreenshot entity.
func newWorkScreenshotMutation(c config, op Op, opts ...workscreenshotOption) *WorkScreenshotMutation {
	m := &WorkScreenshotMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkScreenshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkScreenshotID sets the ID field of the mutation.
func withWorkScreenshotID(id uuid.UUID) workscreenshotOption {
	return func(m *WorkScreenshotMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkScreenshot
		)
		m.oldValue = func(ctx context.Context) (*WorkScreenshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkScreenshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkScreenshot sets the old WorkScreenshot of the mutation.
func withWorkScreenshot(node *WorkScreenshot) workscreenshotOption {
	return func(m *WorkScreenshotMutation) {
		m.oldValue = func(context.Context) (*WorkScreenshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkScreenshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkScreenshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkScreenshot entities.
func (m *WorkScreenshotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkScreenshotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkScreenshotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkScreenshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSortOrder sets the "sort_order" field.
func (m *WorkScreenshotMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *WorkScreenshotMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the WorkScreenshot entity.
// If the WorkScreenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkScreenshotMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *WorkScreenshotMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *WorkScreenshotMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *WorkScreenshotMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetImageID sets the "image_id" field.
func (m *WorkScreenshotMutation) SetImageID(u uuid.UUID) {
	m.image = &u
}

// ImageID returns the value of the "image_id" field in the mutation.
func (m *WorkScreenshotMutation) ImageID() (r uuid.UUID, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImageID returns the old "image_id" field's value of the WorkScreenshot entity.
// If the WorkScreenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkScreenshotMutation) OldImageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageID: %w", err)
	}
	return oldValue.ImageID, nil
}

// ClearImageID clears the value of the "image_id" field.
func (m *WorkScreenshotMutation) ClearImageID() {
	m.image = nil
	m.clearedFields[workscreenshot.FieldImageID] = struct{}{}
}

// ImageIDCleared returns if the "image_id" field was cleared in this mutation.
func (m *WorkScreenshotMutation) ImageIDCleared() bool {
	_, ok := m.clearedFields[workscreenshot.FieldImageID]
	return ok
}

// ResetImageID resets all changes to the "image_id" field.
func (m *WorkScreenshotMutation) ResetImageID() {
	m.image = nil
	delete(m.clearedFields, workscreenshot.FieldImageID)
}

// SetWorkPageID sets the "work_page_id" field.
func (m *WorkScreenshotMutation) SetWorkPageID(u uuid.UUID) {
	m.work_page = &u
}

// WorkPageID returns the value of the "work_page_id" field in the mutation.
func (m *WorkScreenshotMutation) WorkPageID() (r uuid.UUID, exists bool) {
	v := m.work_page
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkPageID returns the old "work_page_id" field's value of the WorkScreenshot entity.
// If the WorkScreenshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkScreenshotMutation) OldWorkPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkPageID: %w", err)
	}
	return oldValue.WorkPageID, nil
}

// ResetWorkPageID resets all changes to the "work_page_id" field.
func (m *WorkScreenshotMutation) ResetWorkPageID() {
	m.work_page = nil
}

// ClearImage clears the "image" edge to the Image entity.
func (m *WorkScreenshotMutation) ClearImage() {
	m.clearedimage = true
	m.clearedFields[workscreenshot.FieldImageID] = struct{}{}
}

// ImageCleared reports if the "image" edge to the Image entity was cleared.
func (m *WorkScreenshotMutation) ImageCleared() bool {
	return m.ImageIDCleared() || m.clearedimage
}

// ImageIDs returns the "image" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImageID instead. It exists only for internal usage by the builders.
func (m *WorkScreenshotMutation) ImageIDs() (ids []uuid.UUID) {
	if id := m.image; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImage resets all changes to the "image" edge.
func (m *WorkScreenshotMutation) ResetImage() {
	m.image = nil
	m.clearedimage = false
}

// ClearWorkPage clears the "work_page" edge to the WorkPage entity.
func (m *WorkScreenshotMutation) ClearWorkPage() {
	m.clearedwork_page = true
	m.clearedFields[workscreenshot.FieldWorkPageID] = struct{}{}
}

// WorkPageCleared reports if the "work_page" edge to the WorkPage entity was cleared.
func (m *WorkScreenshotMutation) WorkPageCleared() bool {
	return m.clearedwork_page
}

// WorkPageIDs returns the "work_page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkPageID instead. It exists only for internal usage by the builders.
func (m *WorkScreenshotMutation) WorkPageIDs() (ids []uuid.UUID) {
	if id := m.work_page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkPage resets all changes to the "work_page" edge.
func (m *WorkScreenshotMutation) ResetWorkPage() {
	m.work_page = nil
	m.clearedwork_page = false
}

// Where appends a list predicates to the WorkScreenshotMutation builder.
func (m *WorkScreenshotMutation) Where(ps ...predicate.WorkScreenshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkScreenshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkScreenshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkScreenshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkScreenshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkScreenshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkScreenshot).
func (m *WorkScreenshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkScreenshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sort_order != nil {
		fields = append(fields, workscreenshot.FieldSortOrder)
	}
	if m.image != nil {
		fields = append(fields, workscreenshot.FieldImageID)
	}
	if m.work_page != nil {
		fields = append(fields, workscreenshot.FieldWorkPageID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkScreenshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workscreenshot.FieldSortOrder:
		return m.SortOrder()
	case workscreenshot.FieldImageID:
		return m.ImageID()
	case workscreenshot.FieldWorkPageID:
		return m.WorkPageID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkScreenshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workscreenshot.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case workscreenshot.FieldImageID:
		return m.OldImageID(ctx)
	case workscreenshot.FieldWorkPageID:
		return m.OldWorkPageID(ctx)
	}
	return nil, fmt.Errorf("unknown WorkScreenshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkScreenshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workscreenshot.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case workscreenshot.FieldImageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageID(v)
		return nil
	case workscreenshot.FieldWorkPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkPageID(v)
		return nil
	}
	return fmt.Errorf("unknown WorkScreenshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkScreenshotMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, workscreenshot.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkScreenshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workscreenshot.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkScreenshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workscreenshot.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown WorkScreenshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkScreenshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workscreenshot.FieldImageID) {
		fields = append(fields, workscreenshot.FieldImageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkScreenshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkScreenshotMutation) ClearField(name string) error {
	switch name {
	case workscreenshot.FieldImageID:
		m.ClearImageID()
		return nil
	}
	return fmt.Errorf("unknown WorkScreenshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkScreenshotMutation) ResetField(name string) error {
	switch name {
	case workscreenshot.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case workscreenshot.FieldImageID:
		m.ResetImageID()
		return nil
	case workscreenshot.FieldWorkPageID:
		m.ResetWorkPageID()
		return nil
	}
	return fmt.Errorf("unknown WorkScreenshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkScreenshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.image != nil {
		edges = append(edges, workscreenshot.EdgeImage)
	}
	if m.work_page != nil {
		edges = append(edges, workscreenshot.EdgeWorkPage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkScreenshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workscreenshot.EdgeImage:
		if id := m.image; id != nil {
			return []ent.Value{*id}
		}
	case workscreenshot.EdgeWorkPage:
		if id := m.work_page; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkScreenshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkScreenshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkScreenshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedimage {
		edges = append(edges, workscreenshot.EdgeImage)
	}
	if m.clearedwork_page {
		edges = append(edges, workscreenshot.EdgeWorkPage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkScreenshotMutation) EdgeCleared(name string) bool {
	switch name {
	case workscreenshot.EdgeImage:
		return m.clearedimage
	case workscreenshot.EdgeWorkPage:
		return m.clearedwork_page
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkScreenshotMutation) ClearEdge(name string) error {
	switch name {
	case workscreenshot.EdgeImage:
		m.ClearImage()
		return nil
	case workscreenshot.EdgeWorkPage:
		m.ClearWorkPage()
		return nil
	}
	return fmt.Errorf("unknown WorkScreenshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkScreenshotMutation) ResetEdge(name string) error {
	switch name {
	case workscreenshot.EdgeImage:
		m.ResetImage()
		return nil
	case workscreenshot.EdgeWorkPage:
		m.ResetWorkPage()
		return nil
	}
	return fmt.Errorf("unknown WorkScreenshot edge %s", name)
}
