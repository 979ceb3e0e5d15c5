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
	"github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// BlogAuthorshipQuery is the builder for querying BlogAuthorship entities.
type BlogAuthorshipQuery struct {
	config
	ctx          *QueryContext
	order        []blogauthorship.OrderOption
	inters       []Interceptor
	predicates   []predicate.BlogAuthorship
	withBlogPage *BlogPageQuery
	withAuthor   *PersonPageQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BlogAuthorshipQuery builder.
func (_q *BlogAuthorshipQuery) Where(ps ...predicate.BlogAuthorship) *BlogAuthorshipQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BlogAuthorshipQuery) Limit(limit int) *BlogAuthorshipQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BlogAuthorshipQuery) Offset(offset int) *BlogAuthorshipQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BlogAuthorshipQuery) Unique(unique bool) *BlogAuthorshipQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BlogAuthorshipQuery) Order(o ...blogauthorship.OrderOption) *BlogAuthorshipQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBlogPage chains the current query on the "blog_page" edge.
func (_q *BlogAuthorshipQuery) QueryBlogPage() *BlogPageQuery {
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
			sqlgraph.From(blogauthorship.Table, blogauthorship.FieldID, selector),
			sqlgraph.To(blogpage.Table, blogpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blogauthorship.BlogPageTable, blogauthorship.BlogPageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuthor chains the current query on the "author" edge.
func (_q *BlogAuthorshipQuery) QueryAuthor() *PersonPageQuery {
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
			sqlgraph.From(blogauthorship.Table, blogauthorship.FieldID, selector),
			sqlgraph.To(personpage.Table, personpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, blogauthorship.AuthorTable, blogauthorship.AuthorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BlogAuthorship entity from the query.
// Returns a *NotFoundError when no BlogAuthorship was found.
func (_q *BlogAuthorshipQuery) First(ctx context.Context) (*BlogAuthorship, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{blogauthorship.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BlogAuthorshipQuery) FirstX(ctx context.Context) *BlogAuthorship {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BlogAuthorship ID from the query.
// Returns a *NotFoundError when no BlogAuthorship ID was found.
func (_q *BlogAuthorshipQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{blogauthorship.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BlogAuthorshipQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BlogAuthorship entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BlogAuthorship entity is found.
// Returns a *NotFoundError when no BlogAuthorship entities are found.
func (_q *BlogAuthorshipQuery) Only(ctx context.Context) (*BlogAuthorship, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{blogauthorship.Label}
	default:
		return nil, &NotSingularError{blogauthorship.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BlogAuthorshipQuery) OnlyX(ctx context.Context) *BlogAuthorship {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BlogAuthorship ID in the query.
// Returns a *NotSingularError when more than one BlogAuthorship ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BlogAuthorshipQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{blogauthorship.Label}
	default:
		err = &NotSingularError{blogauthorship.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BlogAuthorshipQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BlogAuthorships.
func (_q *BlogAuthorshipQuery) All(ctx context.Context) ([]*BlogAuthorship, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BlogAuthorship, *BlogAuthorshipQuery]()
	return withInterceptors[[]*BlogAuthorship](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BlogAuthorshipQuery) AllX(ctx context.Context) []*BlogAuthorship {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BlogAuthorship IDs.
func (_q *BlogAuthorshipQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(blogauthorship.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BlogAuthorshipQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BlogAuthorshipQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BlogAuthorshipQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BlogAuthorshipQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BlogAuthorshipQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BlogAuthorshipQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BlogAuthorshipQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BlogAuthorshipQuery) Clone() *BlogAuthorshipQuery {
	if _q == nil {
		return nil
	}
	return &BlogAuthorshipQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]blogauthorship.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.BlogAuthorship{}, _q.predicates...),
		withBlogPage: _q.withBlogPage.Clone(),
		withAuthor:   _q.withAuthor.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBlogPage tells the query-builder to eager-load the nodes that are connected to
// the "blog_page" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BlogAuthorshipQuery) WithBlogPage(opts ...func(*BlogPageQuery)) *BlogAuthorshipQuery {
	query := (&BlogPageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBlogPage = query
	return _q
}

// WithAuthor tells the query-builder to eager-load the nodes that are connected to
// the "author" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BlogAuthorshipQuery) WithAuthor(opts ...func(*PersonPageQuery)) *BlogAuthorshipQuery {
	query := (&PersonPageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuthor = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SortOrder int `json:"sort_order,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BlogAuthorship.Query().
//		GroupBy(blogauthorship.FieldSortOrder).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *BlogAuthorshipQuery) GroupBy(field string, fields ...string) *BlogAuthorshipGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BlogAuthorshipGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = blogauthorship.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SortOrder int `json:"sort_order,omitempty"`
//	}
//
//	client.BlogAuthorship.Query().
//		Select(blogauthorship.FieldSortOrder).
//		Scan(ctx, &v)
func (_q *BlogAuthorshipQuery) Select(fields ...string) *BlogAuthorshipSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BlogAuthorshipSelect{BlogAuthorshipQuery: _q}
	sbuild.label = blogauthorship.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BlogAuthorshipSelect configured with the given aggregations.
func (_q *BlogAuthorshipQuery) Aggregate(fns ...AggregateFunc) *BlogAuthorshipSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BlogAuthorshipQuery) prepareQuery(ctx context.Context) error {
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
		if !blogauthorship.ValidColumn(f) {
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

func (_q *BlogAuthorshipQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BlogAuthorship, error) {
	var (
		nodes       = []*BlogAuthorship{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withBlogPage != nil,
			_q.withAuthor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BlogAuthorship).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BlogAuthorship{config: _q.config}
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
	if query := _q.withBlogPage; query != nil {
		if err := _q.loadBlogPage(ctx, query, nodes, nil,
			func(n *BlogAuthorship, e *BlogPage) { n.Edges.BlogPage = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAuthor; query != nil {
		if err := _q.loadAuthor(ctx, query, nodes, nil,
			func(n *BlogAuthorship, e *PersonPage) { n.Edges.Author = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BlogAuthorshipQuery) loadBlogPage(ctx context.Context, query *BlogPageQuery, nodes []*BlogAuthorship, init func(*BlogAuthorship), assign func(*BlogAuthorship, *BlogPage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*BlogAuthorship)
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
func (_q *BlogAuthorshipQuery) loadAuthor(ctx context.Context, query *PersonPageQuery, nodes []*BlogAuthorship, init func(*BlogAuthorship), assign func(*BlogAuthorship, *PersonPage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*BlogAuthorship)
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

func (_q *BlogAuthorshipQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BlogAuthorshipQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(blogauthorship.Table, blogauthorship.Columns, sqlgraph.NewFieldSpec(blogauthorship.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blogauthorship.FieldID)
		for i := range fields {
			if fields[i] != blogauthorship.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBlogPage != nil {
			_spec.Node.AddColumnOnce(blogauthorship.FieldBlogPageID)
		}
		if _q.withAuthor != nil {
			_spec.Node.AddColumnOnce(blogauthorship.FieldPersonPageID)
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

func (_q *BlogAuthorshipQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(blogauthorship.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = blogauthorship.Columns
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

// BlogAuthorshipGroupBy is the group-by builder for BlogAuthorship entities.
type BlogAuthorshipGroupBy struct {
	selector
	build *BlogAuthorshipQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BlogAuthorshipGroupBy) Aggregate(fns ...AggregateFunc) *BlogAuthorshipGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BlogAuthorshipGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlogAuthorshipQuery, *BlogAuthorshipGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BlogAuthorshipGroupBy) sqlScan(ctx context.Context, root *BlogAuthorshipQuery, v any) error {
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

// BlogAuthorshipSelect is the builder for selecting fields of BlogAuthorship entities.
type BlogAuthorshipSelect struct {
	*BlogAuthorshipQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BlogAuthorshipSelect) Aggregate(fns ...AggregateFunc) *BlogAuthorshipSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BlogAuthorshipSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlogAuthorshipQuery, *BlogAuthorshipSelect](ctx, _s.BlogAuthorshipQuery, _s, _s.inters, v)
}

func (_s *BlogAuthorshipSelect) sqlScan(ctx context.Context, root *BlogAuthorshipQuery, v any) error {
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
