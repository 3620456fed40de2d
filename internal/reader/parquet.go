package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/csvsql/internal/table"
)

// parquetReader wraps both an OS file handle and a parquet file handle
// so resources can be released together.
type parquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

func openParquet(path string) (*parquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &parquetReader{file: file, pqFile: pqFile}, nil
}

func (r *parquetReader) close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// LoadParquet reads a parquet file into a table named after the file.
// Column order follows the file schema; leaf values are coerced into
// cells (numbers stay numeric, booleans and byte arrays become text,
// missing optional values become null).
func LoadParquet(path string) (*table.Table, error) {
	r, err := openParquet(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.close() }()

	schema := r.pqFile.Schema()
	fields := schema.Fields()
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, field.Name())
	}

	tbl := &table.Table{Name: TableName(path), Columns: columns}

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		raw := make(map[string]interface{})
		err := reader.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(table.Row, len(columns))
		for _, col := range columns {
			row[col] = cellFromValue(raw[col])
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// cellFromValue converts a decoded parquet value into a Cell.
func cellFromValue(v interface{}) table.Cell {
	switch val := v.(type) {
	case nil:
		return table.Null()
	case string:
		return table.String(val)
	case []byte:
		return table.String(string(val))
	case bool:
		if val {
			return table.String("true")
		}
		return table.String("false")
	case float64:
		return table.Number(val)
	case float32:
		return table.Number(float64(val))
	case int:
		return table.Number(float64(val))
	case int32:
		return table.Number(float64(val))
	case int64:
		return table.Number(float64(val))
	case uint32:
		return table.Number(float64(val))
	case uint64:
		return table.Number(float64(val))
	default:
		return table.String(fmt.Sprintf("%v", val))
	}
}
