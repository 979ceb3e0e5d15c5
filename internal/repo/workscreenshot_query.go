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
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
	"github.com/helenb/wagtail-torchbox/internal/repo/workpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workscreenshot"
)

// WorkScreenshotQuery is the builder for querying WorkScreenshot entities.
type WorkScreenshotQuery struct {
	config
	ctx          *QueryContext
	order        []workscreenshot.OrderOption
	inters       []Interceptor
	predicates   []predicate.WorkScreenshot
	withImage    *ImageQuery
	withWorkPage *WorkPageQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkScreenshotQuery builder.
func (_q *WorkScreenshotQuery) Where(ps ...predicate.WorkScreenshot) *WorkScreenshotQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *WorkScreenshotQuery) Limit(limit int) *WorkScreenshotQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *WorkScreenshotQuery) Offset(offset int) *WorkScreenshotQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *WorkScreenshotQuery) Unique(unique bool) *WorkScreenshotQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *WorkScreenshotQuery) Order(o ...workscreenshot.OrderOption) *WorkScreenshotQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryImage chains the current query on the "image" edge.
func (_q *WorkScreenshotQuery) QueryImage() *ImageQuery {
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
			sqlgraph.From(workscreenshot.Table, workscreenshot.FieldID, selector),
			sqlgraph.To(image.Table, image.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, workscreenshot.ImageTable, workscreenshot.ImageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWorkPage chains the current query on the "work_page" edge.
func (_q *WorkScreenshotQuery) QueryWorkPage() *WorkPageQuery {
	query := (&WorkPageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workscreenshot.Table, workscreenshot.FieldID, selector),
			sqlgraph.To(workpage.Table, workpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workscreenshot.WorkPageTable, workscreenshot.WorkPageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WorkScreenshot entity from the query.
// Returns a *NotFoundError when no WorkScreenshot was found.
func (_q *WorkScreenshotQuery) First(ctx context.Context) (*WorkScreenshot, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workscreenshot.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *WorkScreenshotQuery) FirstX(ctx context.Context) *WorkScreenshot {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WorkScreenshot ID from the query.
// Returns a *NotFoundError when no WorkScreenshot ID was found.
func (_q *WorkScreenshotQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workscreenshot.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *WorkScreenshotQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WorkScreenshot entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WorkScreenshot entity is found.
// Returns a *NotFoundError when no WorkScreenshot entities are found.
func (_q *WorkScreenshotQuery) Only(ctx context.Context) (*WorkScreenshot, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workscreenshot.Label}
	default:
		return nil, &NotSingularError{workscreenshot.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *WorkScreenshotQuery) OnlyX(ctx context.Context) *WorkScreenshot {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkScreenshot ID in the query.
// Returns a *NotSingularError when more than one WorkScreenshot ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *WorkScreenshotQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workscreenshot.Label}
	default:
		err = &NotSingularError{workscreenshot.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *WorkScreenshotQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkScreenshots.
func (_q *WorkScreenshotQuery) All(ctx context.Context) ([]*WorkScreenshot, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WorkScreenshot, *WorkScreenshotQuery]()
	return withInterceptors[[]*WorkScreenshot](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *WorkScreenshotQuery) AllX(ctx context.Context) []*WorkScreenshot {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkScreenshot IDs.
func (_q *WorkScreenshotQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(workscreenshot.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *WorkScreenshotQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *WorkScreenshotQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*WorkScreenshotQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *WorkScreenshotQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *WorkScreenshotQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *WorkScreenshotQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkScreenshotQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *WorkScreenshotQuery) Clone() *WorkScreenshotQuery {
	if _q == nil {
		return nil
	}
	return &WorkScreenshotQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]workscreenshot.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.WorkScreenshot{}, _q.predicates...),
		withImage:    _q.withImage.Clone(),
		withWorkPage: _q.withWorkPage.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithImage tells the query-builder to eager-load the nodes that are connected to
// the "image" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkScreenshotQuery) WithImage(opts ...func(*ImageQuery)) *WorkScreenshotQuery {
	query := (&ImageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withImage = query
	return _q
}

// WithWorkPage tells the query-builder to eager-load the nodes that are connected to
// the "work_page" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkScreenshotQuery) WithWorkPage(opts ...func(*WorkPageQuery)) *WorkScreenshotQuery {
	query := (&WorkPageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorkPage = query
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
//	client.WorkScreenshot.Query().
//		GroupBy(workscreenshot.FieldSortOrder).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *WorkScreenshotQuery) GroupBy(field string, fields ...string) *WorkScreenshotGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkScreenshotGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = workscreenshot.Label
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
//	client.WorkScreenshot.Query().
//		Select(workscreenshot.FieldSortOrder).
//		Scan(ctx, &v)
func (_q *WorkScreenshotQuery) Select(fields ...string) *WorkScreenshotSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &WorkScreenshotSelect{WorkScreenshotQuery: _q}
	sbuild.label = workscreenshot.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkScreenshotSelect configured with the given aggregations.
func (_q *WorkScreenshotQuery) Aggregate(fns ...AggregateFunc) *WorkScreenshotSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *WorkScreenshotQuery) prepareQuery(ctx context.Context) error {
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
		if !workscreenshot.ValidColumn(f) {
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

func (_q *WorkScreenshotQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WorkScreenshot, error) {
	var (
		nodes       = []*WorkScreenshot{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withImage != nil,
			_q.withWorkPage != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WorkScreenshot).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WorkScreenshot{config: _q.config}
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
	if query := _q.withImage; query != nil {
		if err := _q.loadImage(ctx, query, nodes, nil,
			func(n *WorkScreenshot, e *Image) { n.Edges.Image = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWorkPage; query != nil {
		if err := _q.loadWorkPage(ctx, query, nodes, nil,
			func(n *WorkScreenshot, e *WorkPage) { n.Edges.WorkPage = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *WorkScreenshotQuery) loadImage(ctx context.Context, query *ImageQuery, nodes []*WorkScreenshot, init func(*WorkScreenshot), assign func(*WorkScreenshot, *Image)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*WorkScreenshot)
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
func (_q *WorkScreenshotQuery) loadWorkPage(ctx context.Context, query *WorkPageQuery, nodes []*WorkScreenshot, init func(*WorkScreenshot), assign func(*WorkScreenshot, *WorkPage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*WorkScreenshot)
	for i := range nodes {
		fk := nodes[i].WorkPageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(workpage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "work_page_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *WorkScreenshotQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *WorkScreenshotQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workscreenshot.Table, workscreenshot.Columns, sqlgraph.NewFieldSpec(workscreenshot.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workscreenshot.FieldID)
		for i := range fields {
			if fields[i] != workscreenshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withImage != nil {
			_spec.Node.AddColumnOnce(workscreenshot.FieldImageID)
		}
		if _q.withWorkPage != nil {
			_spec.Node.AddColumnOnce(workscreenshot.FieldWorkPageID)
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

func (_q *WorkScreenshotQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(workscreenshot.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = workscreenshot.Columns
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

// WorkScreenshotGroupBy is the group-by builder for WorkScreenshot entities.
type WorkScreenshotGroupBy struct {
	selector
	build *WorkScreenshotQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *WorkScreenshotGroupBy) Aggregate(fns ...AggregateFunc) *WorkScreenshotGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *WorkScreenshotGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkScreenshotQuery, *WorkScreenshotGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *WorkScreenshotGroupBy) sqlScan(ctx context.Context, root *WorkScreenshotQuery, v any) error {
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

// WorkScreenshotSelect is the builder for selecting fields of WorkScreenshot entities.
type WorkScreenshotSelect struct {
	*WorkScreenshotQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *WorkScreenshotSelect) Aggregate(fns ...AggregateFunc) *WorkScreenshotSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *WorkScreenshotSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkScreenshotQuery, *WorkScreenshotSelect](ctx, _s.WorkScreenshotQuery, _s, _s.inters, v)
}

func (_s *WorkScreenshotSelect) sqlScan(ctx context.Context, root *WorkScreenshotQuery, v any) error {
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
