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
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
)

// RelatedLinkQuery is the builder for querying RelatedLink entities.
type RelatedLinkQuery struct {
	config
	ctx               *QueryContext
	order             []relatedlink.OrderOption
	inters            []Interceptor
	predicates        []predicate.RelatedLink
	withLinkNode      *NodeQuery
	withLinkDocument  *DocumentQuery
	withStandardPage  *StandardPageQuery
	withBlogIndexPage *BlogIndexPageQuery
	withBlogPage      *BlogPageQuery
	withPersonPage    *PersonPageQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RelatedLinkQuery builder.
func (_q *RelatedLinkQuery) Where(ps ...predicate.RelatedLink) *RelatedLinkQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RelatedLinkQuery) Limit(limit int) *RelatedLinkQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RelatedLinkQuery) Offset(offset int) *RelatedLinkQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RelatedLinkQuery) Unique(unique bool) *RelatedLinkQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RelatedLinkQuery) Order(o ...relatedlink.OrderOption) *RelatedLinkQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLinkNode chains the current query on the "link_node" edge.
func (_q *RelatedLinkQuery) QueryLinkNode() *NodeQuery {
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
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, selector),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, relatedlink.LinkNodeTable, relatedlink.LinkNodeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLinkDocument chains the current query on the "link_document" edge.
func (_q *RelatedLinkQuery) QueryLinkDocument() *DocumentQuery {
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
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, relatedlink.LinkDocumentTable, relatedlink.LinkDocumentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStandardPage chains the current query on the "standard_page" edge.
func (_q *RelatedLinkQuery) QueryStandardPage() *StandardPageQuery {
	query := (&StandardPageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, selector),
			sqlgraph.To(standardpage.Table, standardpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, relatedlink.StandardPageTable, relatedlink.StandardPageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBlogIndexPage chains the current query on the "blog_index_page" edge.
func (_q *RelatedLinkQuery) QueryBlogIndexPage() *BlogIndexPageQuery {
	query := (&BlogIndexPageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, selector),
			sqlgraph.To(blogindexpage.Table, blogindexpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, relatedlink.BlogIndexPageTable, relatedlink.BlogIndexPageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBlogPage chains the current query on the "blog_page" edge.
func (_q *RelatedLinkQuery) QueryBlogPage() *BlogPageQuery {
	query := (&BlogPageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, selector),
			sqlgraph.To(blogpage.Table, blogpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, relatedlink.BlogPageTable, relatedlink.BlogPageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPersonPage chains the current query on the "person_page" edge.
func (_q *RelatedLinkQuery) QueryPersonPage() *PersonPageQuery {
	query := (&PersonPageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, selector),
			sqlgraph.To(personpage.Table, personpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, relatedlink.PersonPageTable, relatedlink.PersonPageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RelatedLink entity from the query.
// Returns a *NotFoundError when no RelatedLink was found.
func (_q *RelatedLinkQuery) First(ctx context.Context) (*RelatedLink, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{relatedlink.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RelatedLinkQuery) FirstX(ctx context.Context) *RelatedLink {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RelatedLink ID from the query.
// Returns a *NotFoundError when no RelatedLink ID was found.
func (_q *RelatedLinkQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{relatedlink.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RelatedLinkQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RelatedLink entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RelatedLink entity is found.
// Returns a *NotFoundError when no RelatedLink entities are found.
func (_q *RelatedLinkQuery) Only(ctx context.Context) (*RelatedLink, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{relatedlink.Label}
	default:
		return nil, &NotSingularError{relatedlink.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RelatedLinkQuery) OnlyX(ctx context.Context) *RelatedLink {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RelatedLink ID in the query.
// Returns a *NotSingularError when more than one RelatedLink ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RelatedLinkQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{relatedlink.Label}
	default:
		err = &NotSingularError{relatedlink.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RelatedLinkQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RelatedLinks.
func (_q *RelatedLinkQuery) All(ctx context.Context) ([]*RelatedLink, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RelatedLink, *RelatedLinkQuery]()
	return withInterceptors[[]*RelatedLink](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RelatedLinkQuery) AllX(ctx context.Context) []*RelatedLink {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RelatedLink IDs.
func (_q *RelatedLinkQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(relatedlink.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RelatedLinkQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RelatedLinkQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RelatedLinkQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RelatedLinkQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RelatedLinkQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RelatedLinkQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RelatedLinkQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RelatedLinkQuery) Clone() *RelatedLinkQuery {
	if _q == nil {
		return nil
	}
	return &RelatedLinkQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]relatedlink.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.RelatedLink{}, _q.predicates...),
		withLinkNode:      _q.withLinkNode.Clone(),
		withLinkDocument:  _q.withLinkDocument.Clone(),
		withStandardPage:  _q.withStandardPage.Clone(),
		withBlogIndexPage: _q.withBlogIndexPage.Clone(),
		withBlogPage:      _q.withBlogPage.Clone(),
		withPersonPage:    _q.withPersonPage.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLinkNode tells the query-builder to eager-load the nodes that are connected to
// the "link_node" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RelatedLinkQuery) WithLinkNode(opts ...func(*NodeQuery)) *RelatedLinkQuery {
	query := (&NodeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLinkNode = query
	return _q
}

// WithLinkDocument tells the query-builder to eager-load the nodes that are connected to
// the "link_document" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RelatedLinkQuery) WithLinkDocument(opts ...func(*DocumentQuery)) *RelatedLinkQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLinkDocument = query
	return _q
}

// WithStandardPage tells the query-builder to eager-load the nodes that are connected to
// the "standard_page" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RelatedLinkQuery) WithStandardPage(opts ...func(*StandardPageQuery)) *RelatedLinkQuery {
	query := (&StandardPageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStandardPage = query
	return _q
}

// WithBlogIndexPage tells the query-builder to eager-load the nodes that are connected to
// the "blog_index_page" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RelatedLinkQuery) WithBlogIndexPage(opts ...func(*BlogIndexPageQuery)) *RelatedLinkQuery {
	query := (&BlogIndexPageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBlogIndexPage = query
	return _q
}

// WithBlogPage tells the query-builder to eager-load the nodes that are connected to
// the "blog_page" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RelatedLinkQuery) WithBlogPage(opts ...func(*BlogPageQuery)) *RelatedLinkQuery {
	query := (&BlogPageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBlogPage = query
	return _q
}

// WithPersonPage tells the query-builder to eager-load the nodes that are connected to
// the "person_page" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RelatedLinkQuery) WithPersonPage(opts ...func(*PersonPageQuery)) *RelatedLinkQuery {
	query := (&PersonPageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPersonPage = query
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
//	client.RelatedLink.Query().
//		GroupBy(relatedlink.FieldLinkExternal).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *RelatedLinkQuery) GroupBy(field string, fields ...string) *RelatedLinkGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RelatedLinkGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = relatedlink.Label
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
//	client.RelatedLink.Query().
//		Select(relatedlink.FieldLinkExternal).
//		Scan(ctx, &v)
func (_q *RelatedLinkQuery) Select(fields ...string) *RelatedLinkSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RelatedLinkSelect{RelatedLinkQuery: _q}
	sbuild.label = relatedlink.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RelatedLinkSelect configured with the given aggregations.
func (_q *RelatedLinkQuery) Aggregate(fns ...AggregateFunc) *RelatedLinkSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RelatedLinkQuery) prepareQuery(ctx context.Context) error {
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
		if !relatedlink.ValidColumn(f) {
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

func (_q *RelatedLinkQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RelatedLink, error) {
	var (
		nodes       = []*RelatedLink{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withLinkNode != nil,
			_q.withLinkDocument != nil,
			_q.withStandardPage != nil,
			_q.withBlogIndexPage != nil,
			_q.withBlogPage != nil,
			_q.withPersonPage != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RelatedLink).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RelatedLink{config: _q.config}
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
			func(n *RelatedLink, e *Node) { n.Edges.LinkNode = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLinkDocument; query != nil {
		if err := _q.loadLinkDocument(ctx, query, nodes, nil,
			func(n *RelatedLink, e *Document) { n.Edges.LinkDocument = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStandardPage; query != nil {
		if err := _q.loadStandardPage(ctx, query, nodes, nil,
			func(n *RelatedLink, e *StandardPage) { n.Edges.StandardPage = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBlogIndexPage; query != nil {
		if err := _q.loadBlogIndexPage(ctx, query, nodes, nil,
			func(n *RelatedLink, e *BlogIndexPage) { n.Edges.BlogIndexPage = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBlogPage; query != nil {
		if err := _q.loadBlogPage(ctx, query, nodes, nil,
			func(n *RelatedLink, e *BlogPage) { n.Edges.BlogPage = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPersonPage; query != nil {
		if err := _q.loadPersonPage(ctx, query, nodes, nil,
			func(n *RelatedLink, e *PersonPage) { n.Edges.PersonPage = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RelatedLinkQuery) loadLinkNode(ctx context.Context, query *NodeQuery, nodes []*RelatedLink, init func(*RelatedLink), assign func(*RelatedLink, *Node)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RelatedLink)
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
func (_q *RelatedLinkQuery) loadLinkDocument(ctx context.Context, query *DocumentQuery, nodes []*RelatedLink, init func(*RelatedLink), assign func(*RelatedLink, *Document)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RelatedLink)
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
func (_q *RelatedLinkQuery) loadStandardPage(ctx context.Context, query *StandardPageQuery, nodes []*RelatedLink, init func(*RelatedLink), assign func(*RelatedLink, *StandardPage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RelatedLink)
	for i := range nodes {
		fk := nodes[i].StandardPageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(standardpage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "standard_page_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RelatedLinkQuery) loadBlogIndexPage(ctx context.Context, query *BlogIndexPageQuery, nodes []*RelatedLink, init func(*RelatedLink), assign func(*RelatedLink, *BlogIndexPage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RelatedLink)
	for i := range nodes {
		fk := nodes[i].BlogIndexPageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(blogindexpage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "blog_index_page_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RelatedLinkQuery) loadBlogPage(ctx context.Context, query *BlogPageQuery, nodes []*RelatedLink, init func(*RelatedLink), assign func(*RelatedLink, *BlogPage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RelatedLink)
	for i := range nodes {
		fk := nodes[i].BlogPageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(blogpage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "blog_page_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RelatedLinkQuery) loadPersonPage(ctx context.Context, query *PersonPageQuery, nodes []*RelatedLink, init func(*RelatedLink), assign func(*RelatedLink, *PersonPage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RelatedLink)
	for i := range nodes {
		fk := nodes[i].PersonPageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(personpage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "person_page_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *RelatedLinkQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RelatedLinkQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(relatedlink.Table, relatedlink.Columns, sqlgraph.NewFieldSpec(relatedlink.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, relatedlink.FieldID)
		for i := range fields {
			if fields[i] != relatedlink.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withLinkNode != nil {
			_spec.Node.AddColumnOnce(relatedlink.FieldLinkNodeID)
		}
		if _q.withLinkDocument != nil {
			_spec.Node.AddColumnOnce(relatedlink.FieldLinkDocumentID)
		}
		if _q.withStandardPage != nil {
			_spec.Node.AddColumnOnce(relatedlink.FieldStandardPageID)
		}
		if _q.withBlogIndexPage != nil {
			_spec.Node.AddColumnOnce(relatedlink.FieldBlogIndexPageID)
		}
		if _q.withBlogPage != nil {
			_spec.Node.AddColumnOnce(relatedlink.FieldBlogPageID)
		}
		if _q.withPersonPage != nil {
			_spec.Node.AddColumnOnce(relatedlink.FieldPersonPageID)
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

func (_q *RelatedLinkQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(relatedlink.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = relatedlink.Columns
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

// RelatedLinkGroupBy is the group-by builder for RelatedLink entities.
type RelatedLinkGroupBy struct {
	selector
	build *RelatedLinkQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RelatedLinkGroupBy) Aggregate(fns ...AggregateFunc) *RelatedLinkGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RelatedLinkGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RelatedLinkQuery, *RelatedLinkGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RelatedLinkGroupBy) sqlScan(ctx context.Context, root *RelatedLinkQuery, v any) error {
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

// RelatedLinkSelect is the builder for selecting fields of RelatedLink entities.
type RelatedLinkSelect struct {
	*RelatedLinkQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RelatedLinkSelect) Aggregate(fns ...AggregateFunc) *RelatedLinkSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RelatedLinkSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RelatedLinkQuery, *RelatedLinkSelect](ctx, _s.RelatedLinkQuery, _s, _s.inters, v)
}

func (_s *RelatedLinkSelect) sqlScan(ctx context.Context, root *RelatedLinkQuery, v any) error {
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
