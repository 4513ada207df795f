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
	"github.com/cadencehq/cadence/ent/invoicesequence"
	"github.com/cadencehq/cadence/ent/predicate"
)

// InvoiceSequenceQuery is the builder for querying InvoiceSequence entities.
type InvoiceSequenceQuery struct {
	config
	ctx        *QueryContext
	order      []invoicesequence.OrderOption
	inters     []Interceptor
	predicates []predicate.InvoiceSequence
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InvoiceSequenceQuery builder.
func (isq *InvoiceSequenceQuery) Where(ps ...predicate.InvoiceSequence) *InvoiceSequenceQuery {
	isq.predicates = append(isq.predicates, ps...)
	return isq
}

// Limit the number of records to be returned by this query.
func (isq *InvoiceSequenceQuery) Limit(limit int) *InvoiceSequenceQuery {
	isq.ctx.Limit = &limit
	return isq
}

// Offset to start from.
func (isq *InvoiceSequenceQuery) Offset(offset int) *InvoiceSequenceQuery {
	isq.ctx.Offset = &offset
	return isq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (isq *InvoiceSequenceQuery) Unique(unique bool) *InvoiceSequenceQuery {
	isq.ctx.Unique = &unique
	return isq
}

// Order specifies how the records should be ordered.
func (isq *InvoiceSequenceQuery) Order(o ...invoicesequence.OrderOption) *InvoiceSequenceQuery {
	isq.order = append(isq.order, o...)
	return isq
}

// First returns the first InvoiceSequence entity from the query.
// Returns a *NotFoundError when no InvoiceSequence was found.
func (isq *InvoiceSequenceQuery) First(ctx context.Context) (*InvoiceSequence, error) {
	nodes, err := isq.Limit(1).All(setContextOp(ctx, isq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{invoicesequence.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (isq *InvoiceSequenceQuery) FirstX(ctx context.Context) *InvoiceSequence {
	node, err := isq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InvoiceSequence ID from the query.
// Returns a *NotFoundError when no InvoiceSequence ID was found.
func (isq *InvoiceSequenceQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = isq.Limit(1).IDs(setContextOp(ctx, isq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{invoicesequence.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (isq *InvoiceSequenceQuery) FirstIDX(ctx context.Context) int {
	id, err := isq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InvoiceSequence entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InvoiceSequence entity is found.
// Returns a *NotFoundError when no InvoiceSequence entities are found.
func (isq *InvoiceSequenceQuery) Only(ctx context.Context) (*InvoiceSequence, error) {
	nodes, err := isq.Limit(2).All(setContextOp(ctx, isq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{invoicesequence.Label}
	default:
		return nil, &NotSingularError{invoicesequence.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (isq *InvoiceSequenceQuery) OnlyX(ctx context.Context) *InvoiceSequence {
	node, err := isq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InvoiceSequence ID in the query.
// Returns a *NotSingularError when more than one InvoiceSequence ID is found.
// Returns a *NotFoundError when no entities are found.
func (isq *InvoiceSequenceQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = isq.Limit(2).IDs(setContextOp(ctx, isq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{invoicesequence.Label}
	default:
		err = &NotSingularError{invoicesequence.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (isq *InvoiceSequenceQuery) OnlyIDX(ctx context.Context) int {
	id, err := isq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InvoiceSequences.
func (isq *InvoiceSequenceQuery) All(ctx context.Context) ([]*InvoiceSequence, error) {
	ctx = setContextOp(ctx, isq.ctx, ent.OpQueryAll)
	if err := isq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InvoiceSequence, *InvoiceSequenceQuery]()
	return withInterceptors[[]*InvoiceSequence](ctx, isq, qr, isq.inters)
}

// AllX is like All, but panics if an error occurs.
func (isq *InvoiceSequenceQuery) AllX(ctx context.Context) []*InvoiceSequence {
	nodes, err := isq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InvoiceSequence IDs.
func (isq *InvoiceSequenceQuery) IDs(ctx context.Context) (ids []int, err error) {
	if isq.ctx.Unique == nil && isq.path != nil {
		isq.Unique(true)
	}
	ctx = setContextOp(ctx, isq.ctx, ent.OpQueryIDs)
	if err = isq.Select(invoicesequence.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (isq *InvoiceSequenceQuery) IDsX(ctx context.Context) []int {
	ids, err := isq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (isq *InvoiceSequenceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, isq.ctx, ent.OpQueryCount)
	if err := isq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, isq, querierCount[*InvoiceSequenceQuery](), isq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (isq *InvoiceSequenceQuery) CountX(ctx context.Context) int {
	count, err := isq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (isq *InvoiceSequenceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, isq.ctx, ent.OpQueryExist)
	switch _, err := isq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (isq *InvoiceSequenceQuery) ExistX(ctx context.Context) bool {
	exist, err := isq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InvoiceSequenceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (isq *InvoiceSequenceQuery) Clone() *InvoiceSequenceQuery {
	if isq == nil {
		return nil
	}
	return &InvoiceSequenceQuery{
		config:     isq.config,
		ctx:        isq.ctx.Clone(),
		order:      append([]invoicesequence.OrderOption{}, isq.order...),
		inters:     append([]Interceptor{}, isq.inters...),
		predicates: append([]predicate.InvoiceSequence{}, isq.predicates...),
		// clone intermediate query.
		sql:  isq.sql.Clone(),
		path: isq.path,
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
//	client.InvoiceSequence.Query().
//		GroupBy(invoicesequence.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (isq *InvoiceSequenceQuery) GroupBy(field string, fields ...string) *InvoiceSequenceGroupBy {
	isq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InvoiceSequenceGroupBy{build: isq}
	grbuild.flds = &isq.ctx.Fields
	grbuild.label = invoicesequence.Label
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
//	client.InvoiceSequence.Query().
//		Select(invoicesequence.FieldTenantID).
//		Scan(ctx, &v)
func (isq *InvoiceSequenceQuery) Select(fields ...string) *InvoiceSequenceSelect {
	isq.ctx.Fields = append(isq.ctx.Fields, fields...)
	sbuild := &InvoiceSequenceSelect{InvoiceSequenceQuery: isq}
	sbuild.label = invoicesequence.Label
	sbuild.flds, sbuild.scan = &isq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InvoiceSequenceSelect configured with the given aggregations.
func (isq *InvoiceSequenceQuery) Aggregate(fns ...AggregateFunc) *InvoiceSequenceSelect {
	return isq.Select().Aggregate(fns...)
}

func (isq *InvoiceSequenceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range isq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, isq); err != nil {
				return err
			}
		}
	}
	for _, f := range isq.ctx.Fields {
		if !invoicesequence.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if isq.path != nil {
		prev, err := isq.path(ctx)
		if err != nil {
			return err
		}
		isq.sql = prev
	}
	return nil
}

func (isq *InvoiceSequenceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InvoiceSequence, error) {
	var (
		nodes = []*InvoiceSequence{}
		_spec = isq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InvoiceSequence).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InvoiceSequence{config: isq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, isq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (isq *InvoiceSequenceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := isq.querySpec()
	_spec.Node.Columns = isq.ctx.Fields
	if len(isq.ctx.Fields) > 0 {
		_spec.Unique = isq.ctx.Unique != nil && *isq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, isq.driver, _spec)
}

func (isq *InvoiceSequenceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(invoicesequence.Table, invoicesequence.Columns, sqlgraph.NewFieldSpec(invoicesequence.FieldID, field.TypeInt))
	_spec.From = isq.sql
	if unique := isq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if isq.path != nil {
		_spec.Unique = true
	}
	if fields := isq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicesequence.FieldID)
		for i := range fields {
			if fields[i] != invoicesequence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := isq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := isq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := isq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := isq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (isq *InvoiceSequenceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(isq.driver.Dialect())
	t1 := builder.Table(invoicesequence.Table)
	columns := isq.ctx.Fields
	if len(columns) == 0 {
		columns = invoicesequence.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if isq.sql != nil {
		selector = isq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if isq.ctx.Unique != nil && *isq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range isq.predicates {
		p(selector)
	}
	for _, p := range isq.order {
		p(selector)
	}
	if offset := isq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := isq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// InvoiceSequenceGroupBy is the group-by builder for InvoiceSequence entities.
type InvoiceSequenceGroupBy struct {
	selector
	build *InvoiceSequenceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (isgb *InvoiceSequenceGroupBy) Aggregate(fns ...AggregateFunc) *InvoiceSequenceGroupBy {
	isgb.fns = append(isgb.fns, fns...)
	return isgb
}

// Scan applies the selector query and scans the result into the given value.
func (isgb *InvoiceSequenceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, isgb.build.ctx, ent.OpQueryGroupBy)
	if err := isgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InvoiceSequenceQuery, *InvoiceSequenceGroupBy](ctx, isgb.build, isgb, isgb.build.inters, v)
}

func (isgb *InvoiceSequenceGroupBy) sqlScan(ctx context.Context, root *InvoiceSequenceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(isgb.fns))
	for _, fn := range isgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*isgb.flds)+len(isgb.fns))
		for _, f := range *isgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*isgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := isgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InvoiceSequenceSelect is the builder for selecting fields of InvoiceSequence entities.
type InvoiceSequenceSelect struct {
	*InvoiceSequenceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (iss *InvoiceSequenceSelect) Aggregate(fns ...AggregateFunc) *InvoiceSequenceSelect {
	iss.fns = append(iss.fns, fns...)
	return iss
}

// Scan applies the selector query and scans the result into the given value.
func (iss *InvoiceSequenceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, iss.ctx, ent.OpQuerySelect)
	if err := iss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InvoiceSequenceQuery, *InvoiceSequenceSelect](ctx, iss.InvoiceSequenceQuery, iss, iss.inters, v)
}

func (iss *InvoiceSequenceSelect) sqlScan(ctx context.Context, root *InvoiceSequenceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(iss.fns))
	for _, fn := range iss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*iss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := iss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
