// Code generated by ent, DO NOT EDIT.

package ent

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
	"github.com/prepsportshq/preps-extract/gen/ent/game"
	"github.com/prepsportshq/preps-extract/gen/ent/player"
	"github.com/prepsportshq/preps-extract/gen/ent/predicate"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
	"github.com/prepsportshq/preps-extract/gen/ent/schoolalias"
)

// SchoolQuery is the builder for querying School entities.
type SchoolQuery struct {
	config
	ctx         *QueryContext
	order       []school.OrderOption
	inters      []Interceptor
	predicates  []predicate.School
	withAliases *SchoolAliasQuery
	withPlayers *PlayerQuery
	withGames   *GameQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SchoolQuery builder.
func (_q *SchoolQuery) Where(ps ...predicate.School) *SchoolQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SchoolQuery) Limit(limit int) *SchoolQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SchoolQuery) Offset(offset int) *SchoolQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SchoolQuery) Unique(unique bool) *SchoolQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SchoolQuery) Order(o ...school.OrderOption) *SchoolQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAliases chains the current query on the "aliases" edge.
func (_q *SchoolQuery) QueryAliases() *SchoolAliasQuery {
	query := (&SchoolAliasClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(school.Table, school.FieldID, selector),
			sqlgraph.To(schoolalias.Table, schoolalias.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, school.AliasesTable, school.AliasesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPlayers chains the current query on the "players" edge.
func (_q *SchoolQuery) QueryPlayers() *PlayerQuery {
	query := (&PlayerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(school.Table, school.FieldID, selector),
			sqlgraph.To(player.Table, player.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, school.PlayersTable, school.PlayersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGames chains the current query on the "games" edge.
func (_q *SchoolQuery) QueryGames() *GameQuery {
	query := (&GameClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(school.Table, school.FieldID, selector),
			sqlgraph.To(game.Table, game.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, school.GamesTable, school.GamesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first School entity from the query.
// Returns a *NotFoundError when no School was found.
func (_q *SchoolQuery) First(ctx context.Context) (*School, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{school.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SchoolQuery) FirstX(ctx context.Context) *School {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first School ID from the query.
// Returns a *NotFoundError when no School ID was found.
func (_q *SchoolQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{school.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SchoolQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single School entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one School entity is found.
// Returns a *NotFoundError when no School entities are found.
func (_q *SchoolQuery) Only(ctx context.Context) (*School, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{school.Label}
	default:
		return nil, &NotSingularError{school.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SchoolQuery) OnlyX(ctx context.Context) *School {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only School ID in the query.
// Returns a *NotSingularError when more than one School ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SchoolQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{school.Label}
	default:
		err = &NotSingularError{school.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SchoolQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Schools.
func (_q *SchoolQuery) All(ctx context.Context) ([]*School, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*School, *SchoolQuery]()
	return withInterceptors[[]*School](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SchoolQuery) AllX(ctx context.Context) []*School {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of School IDs.
func (_q *SchoolQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(school.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SchoolQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SchoolQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SchoolQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SchoolQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SchoolQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SchoolQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SchoolQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SchoolQuery) Clone() *SchoolQuery {
	if _q == nil {
		return nil
	}
	return &SchoolQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]school.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.School{}, _q.predicates...),
		withAliases: _q.withAliases.Clone(),
		withPlayers: _q.withPlayers.Clone(),
		withGames:   _q.withGames.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAliases tells the query-builder to eager-load the nodes that are connected to
// the "aliases" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SchoolQuery) WithAliases(opts ...func(*SchoolAliasQuery)) *SchoolQuery {
	query := (&SchoolAliasClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAliases = query
	return _q
}

// WithPlayers tells the query-builder to eager-load the nodes that are connected to
// the "players" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SchoolQuery) WithPlayers(opts ...func(*PlayerQuery)) *SchoolQuery {
	query := (&PlayerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPlayers = query
	return _q
}

// WithGames tells the query-builder to eager-load the nodes that are connected to
// the "games" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SchoolQuery) WithGames(opts ...func(*GameQuery)) *SchoolQuery {
	query := (&GameClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGames = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Key string `json:"key,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.School.Query().
//		GroupBy(school.FieldKey).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SchoolQuery) GroupBy(field string, fields ...string) *SchoolGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SchoolGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = school.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Key string `json:"key,omitempty"`
//	}
//
//	client.School.Query().
//		Select(school.FieldKey).
//		Scan(ctx, &v)
func (_q *SchoolQuery) Select(fields ...string) *SchoolSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SchoolSelect{SchoolQuery: _q}
	sbuild.label = school.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SchoolSelect configured with the given aggregations.
func (_q *SchoolQuery) Aggregate(fns ...AggregateFunc) *SchoolSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SchoolQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !school.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
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

func (_q *SchoolQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*School, error) {
	var (
		nodes       = []*School{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withAliases != nil,
			_q.withPlayers != nil,
			_q.withGames != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*School).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &School{config: _q.config}
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
	if query := _q.withAliases; query != nil {
		if err := _q.loadAliases(ctx, query, nodes,
			func(n *School) { n.Edges.Aliases = []*SchoolAlias{} },
			func(n *School, e *SchoolAlias) { n.Edges.Aliases = append(n.Edges.Aliases, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPlayers; query != nil {
		if err := _q.loadPlayers(ctx, query, nodes,
			func(n *School) { n.Edges.Players = []*Player{} },
			func(n *School, e *Player) { n.Edges.Players = append(n.Edges.Players, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGames; query != nil {
		if err := _q.loadGames(ctx, query, nodes,
			func(n *School) { n.Edges.Games = []*Game{} },
			func(n *School, e *Game) { n.Edges.Games = append(n.Edges.Games, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SchoolQuery) loadAliases(ctx context.Context, query *SchoolAliasQuery, nodes []*School, init func(*School), assign func(*School, *SchoolAlias)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*School)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(schoolalias.FieldSchoolID)
	}
	query.Where(predicate.SchoolAlias(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(school.AliasesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SchoolID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "school_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SchoolQuery) loadPlayers(ctx context.Context, query *PlayerQuery, nodes []*School, init func(*School), assign func(*School, *Player)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*School)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(player.FieldSchoolID)
	}
	query.Where(predicate.Player(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(school.PlayersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SchoolID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "school_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SchoolQuery) loadGames(ctx context.Context, query *GameQuery, nodes []*School, init func(*School), assign func(*School, *Game)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*School)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(game.FieldSchoolID)
	}
	query.Where(predicate.Game(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(school.GamesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SchoolID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "school_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SchoolQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SchoolQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(school.Table, school.Columns, sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, school.FieldID)
		for i := range fields {
			if fields[i] != school.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *SchoolQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(school.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = school.Columns
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

// SchoolGroupBy is the group-by builder for School entities.
type SchoolGroupBy struct {
	selector
	build *SchoolQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SchoolGroupBy) Aggregate(fns ...AggregateFunc) *SchoolGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SchoolGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SchoolQuery, *SchoolGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SchoolGroupBy) sqlScan(ctx context.Context, root *SchoolQuery, v any) error {
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

// SchoolSelect is the builder for selecting fields of School entities.
type SchoolSelect struct {
	*SchoolQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SchoolSelect) Aggregate(fns ...AggregateFunc) *SchoolSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SchoolSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SchoolQuery, *SchoolSelect](ctx, _s.SchoolQuery, _s, _s.inters, v)
}

func (_s *SchoolSelect) sqlScan(ctx context.Context, root *SchoolQuery, v any) error {
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
