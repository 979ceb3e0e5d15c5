// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
)

// BlogIndexPageQuery is the builder for querying BlogIndexPage entities.
type BlogIndexPageQuery struct {
	config
	ctx              *QueryContext
	order            []blogindexpage.OrderOption
	inters           []Interceptor
	predicates       []predicate.BlogIndexPage
	withNode         *NodeQuery
	withRelatedLinks *RelatedLinkQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BlogIndexPageQuery builder.
func (_q *BlogIndexPageQuery) Where(ps ...predicate.BlogIndexPage) *BlogIndexPageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BlogIndexPageQuery) Limit(limit int) *BlogIndexPageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BlogIndexPageQuery) Offset(offset int) *BlogIndexPageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BlogIndexPageQuery) Unique(unique bool) *BlogIndexPageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BlogIndexPageQuery) Order(o ...blogindexpage.OrderOption) *BlogIndexPageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryNode chains the current query on the "node" edge.
func (_q *BlogIndexPageQuery) QueryNode() *NodeQuery {
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
			sqlgraph.From(blogindexpage.Table, blogindexpage.FieldID, selector),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, blogindexpage.NodeTable, blogindexpage.NodeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRelatedLinks chains the current query on the "related_links" edge.
func (_q *BlogIndexPageQuery) QueryRelatedLinks() *RelatedLinkQuery {
	query := (&RelatedLinkClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(blogindexpage.Table, blogindexpage.FieldID, selector),
			sqlgraph.To(relatedlink.Table, relatedlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blogindexpage.RelatedLinksTable, blogindexpage.RelatedLinksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BlogIndexPage entity from the query.
// Returns a *NotFoundError when no BlogIndexPage was found.
func (_q *BlogIndexPageQuery) First(ctx context.Context) (*BlogIndexPage, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{blogindexpage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BlogIndexPageQuery) FirstX(ctx context.Context) *BlogIndexPage {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BlogIndexPage ID from the query.
// Returns a *NotFoundError when no BlogIndexPage ID was found.
func (_q *BlogIndexPageQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{blogindexpage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BlogIndexPageQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BlogIndexPage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BlogIndexPage entity is found.
// Returns a *NotFoundError when no BlogIndexPage entities are found.
func (_q *BlogIndexPageQuery) Only(ctx context.Context) (*BlogIndexPage, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{blogindexpage.Label}
	default:
		return nil, &NotSingularError{blogindexpage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BlogIndexPageQuery) OnlyX(ctx context.Context) *BlogIndexPage {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BlogIndexPage ID in the query.
// Returns a *NotSingularError when more than one BlogIndexPage ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BlogIndexPageQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{blogindexpage.Label}
	default:
		err = &NotSingularError{blogindexpage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BlogIndexPageQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BlogIndexPages.
func (_q *BlogIndexPageQuery) All(ctx context.Context) ([]*BlogIndexPage, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BlogIndexPage, *BlogIndexPageQuery]()
	return withInterceptors[[]*BlogIndexPage](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BlogIndexPageQuery) AllX(ctx context.Context) []*BlogIndexPage {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BlogIndexPage IDs.
func (_q *BlogIndexPageQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(blogindexpage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BlogIndexPageQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BlogIndexPageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BlogIndexPageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BlogIndexPageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BlogIndexPageQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BlogIndexPageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BlogIndexPageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BlogIndexPageQuery) Clone() *BlogIndexPageQuery {
	if _q == nil {
		return nil
	}
	return &BlogIndexPageQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]blogindexpage.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.BlogIndexPage{}, _q.predicates...),
		withNode:         _q.withNode.Clone(),
		withRelatedLinks: _q.withRelatedLinks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithNode tells the query-builder to eager-load the nodes that are connected to
// the "node" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BlogIndexPageQuery) WithNode(opts ...func(*NodeQuery)) *BlogIndexPageQuery {
	query := (&NodeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNode = query
	return _q
}

// WithRelatedLinks tells the query-builder to eager-load the nodes that are connected to
// the "related_links" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BlogIndexPageQuery) WithRelatedLinks(opts ...func(*RelatedLinkQuery)) *BlogIndexPageQuery {
	query := (&RelatedLinkClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRelatedLinks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BlogIndexPage.Query().
//		GroupBy(blogindexpage.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *BlogIndexPageQuery) GroupBy(field string, fields ...string) *BlogIndexPageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BlogIndexPageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = blogindexpage.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.BlogIndexPage.Query().
//		Select(blogindexpage.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *BlogIndexPageQuery) Select(fields ...string) *BlogIndexPageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BlogIndexPageSelect{BlogIndexPageQuery: _q}
	sbuild.label = blogindexpage.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BlogIndexPageSelect configured with the given aggregations.
func (_q *BlogIndexPageQuery) Aggregate(fns ...AggregateFunc) *BlogIndexPageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BlogIndexPageQuery) prepareQuery(ctx context.Context) error {
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
		if !blogindexpage.ValidColumn(f) {
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

func (_q *BlogIndexPageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BlogIndexPage, error) {
	var (
		nodes       = []*BlogIndexPage{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withNode != nil,
			_q.withRelatedLinks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BlogIndexPage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BlogIndexPage{config: _q.config}
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
	if query := _q.withNode; query != nil {
		if err := _q.loadNode(ctx, query, nodes, nil,
			func(n *BlogIndexPage, e *Node) { n.Edges.Node = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRelatedLinks; query != nil {
		if err := _q.loadRelatedLinks(ctx, query, nodes,
			func(n *BlogIndexPage) { n.Edges.RelatedLinks = []*RelatedLink{} },
			func(n *BlogIndexPage, e *RelatedLink) { n.Edges.RelatedLinks = append(n.Edges.RelatedLinks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BlogIndexPageQuery) loadNode(ctx context.Context, query *NodeQuery, nodes []*BlogIndexPage, init func(*BlogIndexPage), assign func(*BlogIndexPage, *Node)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*BlogIndexPage)
	for i := range nodes {
		fk := nodes[i].NodeID
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
			return fmt.Errorf(`unexpected foreign-key "node_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BlogIndexPageQuery) loadRelatedLinks(ctx context.Context, query *RelatedLinkQuery, nodes []*BlogIndexPage, init func(*BlogIndexPage), assign func(*BlogIndexPage, *RelatedLink)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*BlogIndexPage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(relatedlink.FieldBlogIndexPageID)
	}
	query.Where(predicate.RelatedLink(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(blogindexpage.RelatedLinksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BlogIndexPageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "blog_index_page_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BlogIndexPageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BlogIndexPageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(blogindexpage.Table, blogindexpage.Columns, sqlgraph.NewFieldSpec(blogindexpage.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blogindexpage.FieldID)
		for i := range fields {
			if fields[i] != blogindexpage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withNode != nil {
			_spec.Node.AddColumnOnce(blogindexpage.FieldNodeID)
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

func (_q *BlogIndexPageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(blogindexpage.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = blogindexpage.Columns
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

// BlogIndexPageGroupBy is the group-by builder for BlogIndexPage entities.
type BlogIndexPageGroupBy struct {
	selector
	build *BlogIndexPageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BlogIndexPageGroupBy) Aggregate(fns ...AggregateFunc) *BlogIndexPageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BlogIndexPageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlogIndexPageQuery, *BlogIndexPageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BlogIndexPageGroupBy) sqlScan(ctx context.Context, root *BlogIndexPageQuery, v any) error {
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

// BlogIndexPageSelect is the builder for selecting fields of BlogIndexPage entities.
type BlogIndexPageSelect struct {
	*BlogIndexPageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BlogIndexPageSelect) Aggregate(fns ...AggregateFunc) *BlogIndexPageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BlogIndexPageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlogIndexPageQuery, *BlogIndexPageSelect](ctx, _s.BlogIndexPageQuery, _s, _s.inters, v)
}

func (_s *BlogIndexPageSelect) sqlScan(ctx context.Context, root *BlogIndexPageQuery, v any) error {
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
