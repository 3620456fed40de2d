// Package engine executes parsed queries against the table store.
package engine

import (
	"fmt"

	"github.com/vegasq/csvsql/internal/query"
	"github.com/vegasq/csvsql/internal/table"
)

// Result is the outcome of a query: either projected rows or a single
// scalar count. Columns always carries the display header, in output
// order.
type Result struct {
	Columns []string
	Rows    []table.Row
	Scalar  bool
	Count   int64
}

// Execute runs q against the store. The store is never mutated; a query
// either fully succeeds or returns an error with no partial result.
func Execute(q *query.Query, store *table.Store) (*Result, error) {
	tbl, err := store.Lookup(q.Table)
	if err != nil {
		return nil, err
	}

	rows := tbl.Rows
	if q.Predicate != nil {
		// Validated against the table's column list up front so the
		// error is reported even for tables with zero rows.
		if !tbl.HasColumn(q.Predicate.Column) {
			return nil, &table.UnknownColumnError{Column: q.Predicate.Column}
		}
		rows, err = query.Filter(rows, q.Predicate)
		if err != nil {
			return nil, err
		}
	}

	switch q.Kind {
	case query.KindCountAll:
		return &Result{
			Columns: []string{"COUNT(*)"},
			Scalar:  true,
			Count:   int64(len(rows)),
		}, nil
	case query.KindCountColumn:
		return executeCountColumn(q, tbl, rows)
	default:
		return executeSelect(q, tbl, rows)
	}
}

// executeCountColumn counts rows with a present value in the named
// column: null cells and empty strings are skipped.
func executeCountColumn(q *query.Query, tbl *table.Table, rows []table.Row) (*Result, error) {
	if !tbl.HasColumn(q.CountColumn) {
		return nil, &table.UnknownColumnError{Column: q.CountColumn}
	}

	var count int64
	for _, row := range rows {
		cell := row[q.CountColumn]
		if cell.IsNull() {
			continue
		}
		if cell.Kind == table.KindString && cell.Text == "" {
			continue
		}
		count++
	}

	return &Result{
		Columns: []string{fmt.Sprintf("COUNT(%s)", q.CountColumn)},
		Scalar:  true,
		Count:   count,
	}, nil
}

// executeSelect projects the filtered rows onto the requested columns,
// preserving row order.
func executeSelect(q *query.Query, tbl *table.Table, rows []table.Row) (*Result, error) {
	var columns []string
	if q.Star {
		columns = append(columns, tbl.Columns...)
	} else {
		for _, col := range q.Columns {
			if !tbl.HasColumn(col) {
				return nil, &table.UnknownColumnError{Column: col}
			}
		}
		columns = q.Columns
	}

	projected := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out := make(table.Row, len(columns))
		for _, col := range columns {
			out[col] = row[col]
		}
		projected = append(projected, out)
	}

	return &Result{Columns: columns, Rows: projected}, nil
}
