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
	"github.com/helenb/wagtail-torchbox/internal/repo/advert"
	"github.com/helenb/wagtail-torchbox/internal/repo/advertplacement"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// AdvertPlacementQuery is the builder for querying AdvertPlacement entities.
type AdvertPlacementQuery struct {
	config
	ctx        *QueryContext
	order      []advertplacement.OrderOption
	inters     []Interceptor
	predicates []predicate.AdvertPlacement
	withNode   *NodeQuery
	withAdvert *AdvertQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AdvertPlacementQuery builder.
func (_q *AdvertPlacementQuery) Where(ps ...predicate.AdvertPlacement) *AdvertPlacementQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AdvertPlacementQuery) Limit(limit int) *AdvertPlacementQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AdvertPlacementQuery) Offset(offset int) *AdvertPlacementQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AdvertPlacementQuery) Unique(unique bool) *AdvertPlacementQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AdvertPlacementQuery) Order(o ...advertplacement.OrderOption) *AdvertPlacementQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryNode chains the current query on the "node" edge.
func (_q *AdvertPlacementQuery) QueryNode() *NodeQuery {
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
			sqlgraph.From(advertplacement.Table, advertplacement.FieldID, selector),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, advertplacement.NodeTable, advertplacement.NodeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAdvert chains the current query on the "advert" edge.
func (_q *AdvertPlacementQuery) QueryAdvert() *AdvertQuery {
	query := (&AdvertClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(advertplacement.Table, advertplacement.FieldID, selector),
			sqlgraph.To(advert.Table, advert.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, advertplacement.AdvertTable, advertplacement.AdvertColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AdvertPlacement entity from the query.
// Returns a *NotFoundError when no AdvertPlacement was found.
func (_q *AdvertPlacementQuery) First(ctx context.Context) (*AdvertPlacement, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{advertplacement.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AdvertPlacementQuery) FirstX(ctx context.Context) *AdvertPlacement {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AdvertPlacement ID from the query.
// Returns a *NotFoundError when no AdvertPlacement ID was found.
func (_q *AdvertPlacementQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{advertplacement.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AdvertPlacementQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AdvertPlacement entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AdvertPlacement entity is found.
// Returns a *NotFoundError when no AdvertPlacement entities are found.
func (_q *AdvertPlacementQuery) Only(ctx context.Context) (*AdvertPlacement, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{advertplacement.Label}
	default:
		return nil, &NotSingularError{advertplacement.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AdvertPlacementQuery) OnlyX(ctx context.Context) *AdvertPlacement {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AdvertPlacement ID in the query.
// Returns a *NotSingularError when more than one AdvertPlacement ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AdvertPlacementQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{advertplacement.Label}
	default:
		err = &NotSingularError{advertplacement.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AdvertPlacementQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AdvertPlacements.
func (_q *AdvertPlacementQuery) All(ctx context.Context) ([]*AdvertPlacement, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AdvertPlacement, *AdvertPlacementQuery]()
	return withInterceptors[[]*AdvertPlacement](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AdvertPlacementQuery) AllX(ctx context.Context) []*AdvertPlacement {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AdvertPlacement IDs.
func (_q *AdvertPlacementQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(advertplacement.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AdvertPlacementQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AdvertPlacementQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AdvertPlacementQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AdvertPlacementQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AdvertPlacementQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AdvertPlacementQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AdvertPlacementQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AdvertPlacementQuery) Clone() *AdvertPlacementQuery {
	if _q == nil {
		return nil
	}
	return &AdvertPlacementQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]advertplacement.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.AdvertPlacement{}, _q.predicates...),
		withNode:   _q.withNode.Clone(),
		withAdvert: _q.withAdvert.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithNode tells the query-builder to eager-load the nodes that are connected to
// the "node" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AdvertPlacementQuery) WithNode(opts ...func(*NodeQuery)) *AdvertPlacementQuery {
	query := (&NodeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNode = query
	return _q
}

// WithAdvert tells the query-builder to eager-load the nodes that are connected to
// the "advert" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AdvertPlacementQuery) WithAdvert(opts ...func(*AdvertQuery)) *AdvertPlacementQuery {
	query := (&AdvertClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAdvert = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		NodeID uuid.UUID `json:"node_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AdvertPlacement.Query().
//		GroupBy(advertplacement.FieldNodeID).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *AdvertPlacementQuery) GroupBy(field string, fields ...string) *AdvertPlacementGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AdvertPlacementGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = advertplacement.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		NodeID uuid.UUID `json:"node_id,omitempty"`
//	}
//
//	client.AdvertPlacement.Query().
//		Select(advertplacement.FieldNodeID).
//		Scan(ctx, &v)
func (_q *AdvertPlacementQuery) Select(fields ...string) *AdvertPlacementSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AdvertPlacementSelect{AdvertPlacementQuery: _q}
	sbuild.label = advertplacement.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AdvertPlacementSelect configured with the given aggregations.
func (_q *AdvertPlacementQuery) Aggregate(fns ...AggregateFunc) *AdvertPlacementSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AdvertPlacementQuery) prepareQuery(ctx context.Context) error {
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
		if !advertplacement.ValidColumn(f) {
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

func (_q *AdvertPlacementQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AdvertPlacement, error) {
	var (
		nodes       = []*AdvertPlacement{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withNode != nil,
			_q.withAdvert != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AdvertPlacement).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AdvertPlacement{config: _q.config}
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
			func(n *AdvertPlacement, e *Node) { n.Edges.Node = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAdvert; query != nil {
		if err := _q.loadAdvert(ctx, query, nodes, nil,
			func(n *AdvertPlacement, e *Advert) { n.Edges.Advert = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AdvertPlacementQuery) loadNode(ctx context.Context, query *NodeQuery, nodes []*AdvertPlacement, init func(*AdvertPlacement), assign func(*AdvertPlacement, *Node)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*AdvertPlacement)
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
func (_q *AdvertPlacementQuery) loadAdvert(ctx context.Context, query *AdvertQuery, nodes []*AdvertPlacement, init func(*AdvertPlacement), assign func(*AdvertPlacement, *Advert)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*AdvertPlacement)
	for i := range nodes {
		fk := nodes[i].AdvertID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(advert.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "advert_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AdvertPlacementQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AdvertPlacementQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(advertplacement.Table, advertplacement.Columns, sqlgraph.NewFieldSpec(advertplacement.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, advertplacement.FieldID)
		for i := range fields {
			if fields[i] != advertplacement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withNode != nil {
			_spec.Node.AddColumnOnce(advertplacement.FieldNodeID)
		}
		if _q.withAdvert != nil {
			_spec.Node.AddColumnOnce(advertplacement.FieldAdvertID)
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

func (_q *AdvertPlacementQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(advertplacement.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = advertplacement.Columns
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

// AdvertPlacementGroupBy is the group-by builder for AdvertPlacement entities.
type AdvertPlacementGroupBy struct {
	selector
	build *AdvertPlacementQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AdvertPlacementGroupBy) Aggregate(fns ...AggregateFunc) *AdvertPlacementGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AdvertPlacementGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AdvertPlacementQuery, *AdvertPlacementGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AdvertPlacementGroupBy) sqlScan(ctx context.Context, root *AdvertPlacementQuery, v any) error {
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

// AdvertPlacementSelect is the builder for selecting fields of AdvertPlacement entities.
type AdvertPlacementSelect struct {
	*AdvertPlacementQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AdvertPlacementSelect) Aggregate(fns ...AggregateFunc) *AdvertPlacementSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AdvertPlacementSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AdvertPlacementQuery, *AdvertPlacementSelect](ctx, _s.AdvertPlacementQuery, _s, _s.inters, v)
}

func (_s *AdvertPlacementSelect) sqlScan(ctx context.Context, root *AdvertPlacementQuery, v any) error {
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
