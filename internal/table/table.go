package table

import "fmt"

// Row maps column names to cell values.
type Row map[string]Cell

// Table is a named collection of rows loaded from a file. Columns keeps
// the header order; Rows keeps insertion order. Tables are read-only
// once loaded: queries never mutate them.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// TableNotFoundError reports a query against a table that was never
// loaded into the store.
type TableNotFoundError struct {
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table %q not loaded, use .load <path> to load it", e.Name)
}

// UnknownColumnError reports a reference to a column the table does not
// have.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}
