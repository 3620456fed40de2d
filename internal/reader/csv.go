// Package reader loads CSV and Parquet files into in-memory tables.
//
// The table name is derived from the file name: directory and extension
// are stripped, so "data/users.csv" loads as table "users".
package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/csvsql/internal/table"
)

// MalformedRowError reports a CSV record whose field count does not
// match the header row.
type MalformedRowError struct {
	Path   string
	Line   int
	Fields int
	Want   int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s: line %d has %d fields, header has %d", e.Path, e.Line, e.Fields, e.Want)
}

// TableName derives the table name for a data file: the base name with
// its extension stripped.
func TableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads path into a table, dispatching on the file extension:
// .parquet files go through the parquet reader, everything else is
// treated as CSV.
func Load(path string) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return LoadParquet(path)
	}
	return LoadCSV(path)
}

// LoadCSV reads a CSV file into a table named after the file. The first
// record is the header; every following record becomes one row keyed by
// the header names. Empty fields load as null cells, numeric literals
// as numbers, everything else as strings.
func LoadCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	// Field counts are checked per record so mismatches can be reported
	// with their line number.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: empty file, expected a header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	tbl := &table.Table{Name: TableName(path), Columns: columns}

	line := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		line++
		if len(record) != len(columns) {
			return nil, &MalformedRowError{Path: path, Line: line, Fields: len(record), Want: len(columns)}
		}

		row := make(table.Row, len(columns))
		for i, field := range record {
			row[columns[i]] = table.Parse(field)
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}
