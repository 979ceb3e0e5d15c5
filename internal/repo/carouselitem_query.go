// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
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

// CarouselItemQuery is the builder for querying CarouselItem entities.
type CarouselItemQuery struct {
	config
	ctx              *QueryContext
	order            []carouselitem.OrderOption
	inters           []Interceptor
	predicates       []predicate.CarouselItem
	withLinkNode     *NodeQuery
	withLinkDocument *DocumentQuery
	withImage        *ImageQuery
	withHomePage     *HomePageQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CarouselItemQuery builder.
func (_q *CarouselItemQuery) Where(ps ...predicate.CarouselItem) *CarouselItemQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CarouselItemQuery) Limit(limit int) *CarouselItemQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CarouselItemQuery) Offset(offset int) *CarouselItemQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CarouselItemQuery) Unique(unique bool) *CarouselItemQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CarouselItemQuery) Order(o ...carouselitem.OrderOption) *CarouselItemQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLinkNode chains the current query on the "link_node" edge.
func (_q *CarouselItemQuery) QueryLinkNode() *NodeQuery {
	query := (&NodeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(carouselitem.Table, carouselitem.FieldID, selector),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, carouselitem.LinkNodeTable, carouselitem.LinkNodeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLinkDocument chains the current query on the "link_document" edge.
func (_q *CarouselItemQuery) QueryLinkDocument() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(carouselitem.Table, carouselitem.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, carouselitem.LinkDocumentTable, carouselitem.LinkDocumentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryImage chains the current query on the "image" edge.
func (_q *CarouselItemQuery) QueryImage() *ImageQuery {
	query := (&ImageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(carouselitem.Table, carouselitem.FieldID, selector),
			sqlgraph.To(image.Table, image.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, carouselitem.ImageTable, carouselitem.ImageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHomePage chains the current query on the "home_page" edge.
func (_q *CarouselItemQuery) QueryHomePage() *HomePageQuery {
	query := (&HomePageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(carouselitem.Table, carouselitem.FieldID, selector),
			sqlgraph.To(homepage.Table, homepage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, carouselitem.HomePageTable, carouselitem.HomePageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CarouselItem entity from the query.
// Returns a *NotFoundError when no CarouselItem was found.
func (_q *CarouselItemQuery) First(ctx context.Context) (*CarouselItem, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{carouselitem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CarouselItemQuery) FirstX(ctx context.Context) *CarouselItem {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CarouselItem ID from the query.
// Returns a *NotFoundError when no CarouselItem ID was found.
func (_q *CarouselItemQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{carouselitem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CarouselItemQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CarouselItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CarouselItem entity is found.
// Returns a *NotFoundError when no CarouselItem entities are found.
func (_q *CarouselItemQuery) Only(ctx context.Context) (*CarouselItem, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{carouselitem.Label}
	default:
		return nil, &NotSingularError{carouselitem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CarouselItemQuery) OnlyX(ctx context.Context) *CarouselItem {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CarouselItem ID in the query.
// Returns a *NotSingularError when more than one CarouselItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CarouselItemQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{carouselitem.Label}
	default:
		err = &NotSingularError{carouselitem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CarouselItemQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CarouselItems.
func (_q *CarouselItemQuery) All(ctx context.Context) ([]*CarouselItem, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CarouselItem, *CarouselItemQuery]()
	return withInterceptors[[]*CarouselItem](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CarouselItemQuery) AllX(ctx context.Context) []*CarouselItem {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CarouselItem IDs.
func (_q *CarouselItemQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(carouselitem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CarouselItemQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CarouselItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CarouselItemQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CarouselItemQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CarouselItemQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CarouselItemQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CarouselItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CarouselItemQuery) Clone() *CarouselItemQuery {
	if _q == nil {
		return nil
	}
	return &CarouselItemQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]carouselitem.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.CarouselItem{}, _q.predicates...),
		withLinkNode:     _q.withLinkNode.Clone(),
		withLinkDocument: _q.withLinkDocument.Clone(),
		withImage:        _q.withImage.Clone(),
		withHomePage:     _q.withHomePage.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLinkNode tells the query-builder to eager-load the nodes that are connected to
// the "link_node" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CarouselItemQuery) WithLinkNode(opts ...func(*NodeQuery)) *CarouselItemQuery {
	query := (&NodeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLinkNode = query
	return _q
}

// WithLinkDocument tells the query-builder to eager-load the nodes that are connected to
// the "link_document" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CarouselItemQuery) WithLinkDocument(opts ...func(*DocumentQuery)) *CarouselItemQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLinkDocument = query
	return _q
}

// WithImage tells the query-builder to eager-load the nodes that are connected to
// the "image" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CarouselItemQuery) WithImage(opts ...func(*ImageQuery)) *CarouselItemQuery {
	query := (&ImageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withImage = query
	return _q
}

// WithHomePage tells the query-builder to eager-load the nodes that are connected to
// the "home_page" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CarouselItemQuery) WithHomePage(opts ...func(*HomePageQuery)) *CarouselItemQuery {
	query := (&HomePageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHomePage = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		LinkExternal string `json:"link_external,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CarouselItem.Query().
//		GroupBy(carouselitem.FieldLinkExternal).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *CarouselItemQuery) GroupBy(field string, fields ...string) *CarouselItemGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CarouselItemGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = carouselitem.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		LinkExternal string `json:"link_external,omitempty"`
//	}
//
//	client.CarouselItem.Query().
//		Select(carouselitem.FieldLinkExternal).
//		Scan(ctx, &v)
func (_q *CarouselItemQuery) Select(fields ...string) *CarouselItemSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CarouselItemSelect{CarouselItemQuery: _q}
	sbuild.label = carouselitem.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CarouselItemSelect configured with the given aggregations.
func (_q *CarouselItemQuery) Aggregate(fns ...AggregateFunc) *CarouselItemSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CarouselItemQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !carouselitem.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *CarouselItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CarouselItem, error) {
	var (
		nodes       = []*CarouselItem{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withLinkNode != nil,
			_q.withLinkDocument != nil,
			_q.withImage != nil,
			_q.withHomePage != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CarouselItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CarouselItem{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withLinkNode; query != nil {
		if err := _q.loadLinkNode(ctx, query, nodes, nil,
			func(n *CarouselItem, e *Node) { n.Edges.LinkNode = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLinkDocument; query != nil {
		if err := _q.loadLinkDocument(ctx, query, nodes, nil,
			func(n *CarouselItem, e *Document) { n.Edges.LinkDocument = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withImage; query != nil {
		if err := _q.loadImage(ctx, query, nodes, nil,
			func(n *CarouselItem, e *Image) { n.Edges.Image = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHomePage; query != nil {
		if err := _q.loadHomePage(ctx, query, nodes, nil,
			func(n *CarouselItem, e *HomePage) { n.Edges.HomePage = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CarouselItemQuery) loadLinkNode(ctx context.Context, query *NodeQuery, nodes []*CarouselItem, init func(*CarouselItem), assign func(*CarouselItem, *Node)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CarouselItem)
	for i := range nodes {
		fk := nodes[i].LinkNodeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(node.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "link_node_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CarouselItemQuery) loadLinkDocument(ctx context.Context, query *DocumentQuery, nodes []*CarouselItem, init func(*CarouselItem), assign func(*CarouselItem, *Document)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CarouselItem)
	for i := range nodes {
		fk := nodes[i].LinkDocumentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(document.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "link_document_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CarouselItemQuery) loadImage(ctx context.Context, query *ImageQuery, nodes []*CarouselItem, init func(*CarouselItem), assign func(*CarouselItem, *Image)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CarouselItem)
	for i := range nodes {
		fk := nodes[i].ImageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(image.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "image_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CarouselItemQuery) loadHomePage(ctx context.Context, query *HomePageQuery, nodes []*CarouselItem, init func(*CarouselItem), assign func(*CarouselItem, *HomePage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CarouselItem)
	for i := range nodes {
		fk := nodes[i].HomePageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(homepage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "home_page_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CarouselItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CarouselItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(carouselitem.Table, carouselitem.Columns, sqlgraph.NewFieldSpec(carouselitem.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, carouselitem.FieldID)
		for i := range fields {
			if fields[i] != carouselitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withLinkNode != nil {
			_spec.Node.AddColumnOnce(carouselitem.FieldLinkNodeID)
		}
		if _q.withLinkDocument != nil {
			_spec.Node.AddColumnOnce(carouselitem.FieldLinkDocumentID)
		}
		if _q.withImage != nil {
			_spec.Node.AddColumnOnce(carouselitem.FieldImageID)
		}
		if _q.withHomePage != nil {
			_spec.Node.AddColumnOnce(carouselitem.FieldHomePageID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *CarouselItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(carouselitem.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = carouselitem.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CarouselItemGroupBy is the group-by builder for CarouselItem entities.
type CarouselItemGroupBy struct {
	selector
	build *CarouselItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CarouselItemGroupBy) Aggregate(fns ...AggregateFunc) *CarouselItemGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CarouselItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CarouselItemQuery, *CarouselItemGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CarouselItemGroupBy) sqlScan(ctx context.Context, root *CarouselItemQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CarouselItemSelect is the builder for selecting fields of CarouselItem entities.
type CarouselItemSelect struct {
	*CarouselItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CarouselItemSelect) Aggregate(fns ...AggregateFunc) *CarouselItemSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CarouselItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CarouselItemQuery, *CarouselItemSelect](ctx, _s.CarouselItemQuery, _s, _s.inters, v)
}

func (_s *CarouselItemSelect) sqlScan(ctx context.Context, root *CarouselItemQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
