// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cadencehq/cadence/ent/domainevent"
	"github.com/cadencehq/cadence/ent/predicate"
)

// DomainEventQuery is the builder for querying DomainEvent entities.
type DomainEventQuery struct {
	config
	ctx        *QueryContext
	order      []domainevent.OrderOption
	inters     []Interceptor
	predicates []predicate.DomainEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DomainEventQuery builder.
func (deq *DomainEventQuery) Where(ps ...predicate.DomainEvent) *DomainEventQuery {
	deq.predicates = append(deq.predicates, ps...)
	return deq
}

// Limit the number of records to be returned by this query.
func (deq *DomainEventQuery) Limit(limit int) *DomainEventQuery {
	deq.ctx.Limit = &limit
	return deq
}

// Offset to start from.
func (deq *DomainEventQuery) Offset(offset int) *DomainEventQuery {
	deq.ctx.Offset = &offset
	return deq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (deq *DomainEventQuery) Unique(unique bool) *DomainEventQuery {
	deq.ctx.Unique = &unique
	return deq
}

// Order specifies how the records should be ordered.
func (deq *DomainEventQuery) Order(o ...domainevent.OrderOption) *DomainEventQuery {
	deq.order = append(deq.order, o...)
	return deq
}

// First returns the first DomainEvent entity from the query.
// Returns a *NotFoundError when no DomainEvent was found.
func (deq *DomainEventQuery) First(ctx context.Context) (*DomainEvent, error) {
	nodes, err := deq.Limit(1).All(setContextOp(ctx, deq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{domainevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (deq *DomainEventQuery) FirstX(ctx context.Context) *DomainEvent {
	node, err := deq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DomainEvent ID from the query.
// Returns a *NotFoundError when no DomainEvent ID was found.
func (deq *DomainEventQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = deq.Limit(1).IDs(setContextOp(ctx, deq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{domainevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (deq *DomainEventQuery) FirstIDX(ctx context.Context) string {
	id, err := deq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DomainEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DomainEvent entity is found.
// Returns a *NotFoundError when no DomainEvent entities are found.
func (deq *DomainEventQuery) Only(ctx context.Context) (*DomainEvent, error) {
	nodes, err := deq.Limit(2).All(setContextOp(ctx, deq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{domainevent.Label}
	default:
		return nil, &NotSingularError{domainevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (deq *DomainEventQuery) OnlyX(ctx context.Context) *DomainEvent {
	node, err := deq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DomainEvent ID in the query.
// Returns a *NotSingularError when more than one DomainEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (deq *DomainEventQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = deq.Limit(2).IDs(setContextOp(ctx, deq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{domainevent.Label}
	default:
		err = &NotSingularError{domainevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (deq *DomainEventQuery) OnlyIDX(ctx context.Context) string {
	id, err := deq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DomainEvents.
func (deq *DomainEventQuery) All(ctx context.Context) ([]*DomainEvent, error) {
	ctx = setContextOp(ctx, deq.ctx, ent.OpQueryAll)
	if err := deq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DomainEvent, *DomainEventQuery]()
	return withInterceptors[[]*DomainEvent](ctx, deq, qr, deq.inters)
}

// AllX is like All, but panics if an error occurs.
func (deq *DomainEventQuery) AllX(ctx context.Context) []*DomainEvent {
	nodes, err := deq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DomainEvent IDs.
func (deq *DomainEventQuery) IDs(ctx context.Context) (ids []string, err error) {
	if deq.ctx.Unique == nil && deq.path != nil {
		deq.Unique(true)
	}
	ctx = setContextOp(ctx, deq.ctx, ent.OpQueryIDs)
	if err = deq.Select(domainevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (deq *DomainEventQuery) IDsX(ctx context.Context) []string {
	ids, err := deq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (deq *DomainEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, deq.ctx, ent.OpQueryCount)
	if err := deq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, deq, querierCount[*DomainEventQuery](), deq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (deq *DomainEventQuery) CountX(ctx context.Context) int {
	count, err := deq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (deq *DomainEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, deq.ctx, ent.OpQueryExist)
	switch _, err := deq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (deq *DomainEventQuery) ExistX(ctx context.Context) bool {
	exist, err := deq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DomainEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (deq *DomainEventQuery) Clone() *DomainEventQuery {
	if deq == nil {
		return nil
	}
	return &DomainEventQuery{
		config:     deq.config,
		ctx:        deq.ctx.Clone(),
		order:      append([]domainevent.OrderOption{}, deq.order...),
		inters:     append([]Interceptor{}, deq.inters...),
		predicates: append([]predicate.DomainEvent{}, deq.predicates...),
		// clone intermediate query.
		sql:  deq.sql.Clone(),
		path: deq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DomainEvent.Query().
//		GroupBy(domainevent.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (deq *DomainEventQuery) GroupBy(field string, fields ...string) *DomainEventGroupBy {
	deq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DomainEventGroupBy{build: deq}
	grbuild.flds = &deq.ctx.Fields
	grbuild.label = domainevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//	}
//
//	client.DomainEvent.Query().
//		Select(domainevent.FieldTenantID).
//		Scan(ctx, &v)
func (deq *DomainEventQuery) Select(fields ...string) *DomainEventSelect {
	deq.ctx.Fields = append(deq.ctx.Fields, fields...)
	sbuild := &DomainEventSelect{DomainEventQuery: deq}
	sbuild.label = domainevent.Label
	sbuild.flds, sbuild.scan = &deq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DomainEventSelect configured with the given aggregations.
func (deq *DomainEventQuery) Aggregate(fns ...AggregateFunc) *DomainEventSelect {
	return deq.Select().Aggregate(fns...)
}

func (deq *DomainEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range deq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, deq); err != nil {
				return err
			}
		}
	}
	for _, f := range deq.ctx.Fields {
		if !domainevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if deq.path != nil {
		prev, err := deq.path(ctx)
		if err != nil {
			return err
		}
		deq.sql = prev
	}
	return nil
}

func (deq *DomainEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DomainEvent, error) {
	var (
		nodes = []*DomainEvent{}
		_spec = deq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DomainEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DomainEvent{config: deq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, deq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (deq *DomainEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := deq.querySpec()
	_spec.Node.Columns = deq.ctx.Fields
	if len(deq.ctx.Fields) > 0 {
		_spec.Unique = deq.ctx.Unique != nil && *deq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, deq.driver, _spec)
}

func (deq *DomainEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(domainevent.Table, domainevent.Columns, sqlgraph.NewFieldSpec(domainevent.FieldID, field.TypeString))
	_spec.From = deq.sql
	if unique := deq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if deq.path != nil {
		_spec.Unique = true
	}
	if fields := deq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domainevent.FieldID)
		for i := range fields {
			if fields[i] != domainevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := deq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := deq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := deq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := deq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (deq *DomainEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(deq.driver.Dialect())
	t1 := builder.Table(domainevent.Table)
	columns := deq.ctx.Fields
	if len(columns) == 0 {
		columns = domainevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if deq.sql != nil {
		selector = deq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if deq.ctx.Unique != nil && *deq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range deq.predicates {
		p(selector)
	}
	for _, p := range deq.order {
		p(selector)
	}
	if offset := deq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := deq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DomainEventGroupBy is the group-by builder for DomainEvent entities.
type DomainEventGroupBy struct {
	selector
	build *DomainEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (degb *DomainEventGroupBy) Aggregate(fns ...AggregateFunc) *DomainEventGroupBy {
	degb.fns = append(degb.fns, fns...)
	return degb
}

// Scan applies the selector query and scans the result into the given value.
func (degb *DomainEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, degb.build.ctx, ent.OpQueryGroupBy)
	if err := degb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DomainEventQuery, *DomainEventGroupBy](ctx, degb.build, degb, degb.build.inters, v)
}

func (degb *DomainEventGroupBy) sqlScan(ctx context.Context, root *DomainEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(degb.fns))
	for _, fn := range degb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*degb.flds)+len(degb.fns))
		for _, f := range *degb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*degb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := degb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DomainEventSelect is the builder for selecting fields of DomainEvent entities.
type DomainEventSelect struct {
	*DomainEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (des *DomainEventSelect) Aggregate(fns ...AggregateFunc) *DomainEventSelect {
	des.fns = append(des.fns, fns...)
	return des
}

// Scan applies the selector query and scans the result into the given value.
func (des *DomainEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, des.ctx, ent.OpQuerySelect)
	if err := des.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DomainEventQuery, *DomainEventSelect](ctx, des.DomainEventQuery, des, des.inters, v)
}

func (des *DomainEventSelect) sqlScan(ctx context.Context, root *DomainEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(des.fns))
	for _, fn := range des.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*des.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := des.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
