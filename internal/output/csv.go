package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vegasq/csvsql/internal/engine"
	"github.com/vegasq/csvsql/internal/table"
)

// CSVFormatter outputs results as CSV with a header row
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the result as CSV
func (c *CSVFormatter) Format(res *engine.Result) error {
	csvWriter := csv.NewWriter(c.writer)
	defer csvWriter.Flush()

	if err := csvWriter.Write(res.Columns); err != nil {
		return err
	}

	if res.Scalar {
		if err := csvWriter.Write([]string{strconv.FormatInt(res.Count, 10)}); err != nil {
			return err
		}
		csvWriter.Flush()
		return csvWriter.Error()
	}

	for _, row := range res.Rows {
		record := make([]string, len(res.Columns))
		for i, col := range res.Columns {
			record[i] = formatCell(row[col])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// formatCell converts a cell to its CSV field. Null cells become empty
// fields.
func formatCell(c table.Cell) string {
	if c.IsNull() {
		return ""
	}
	return c.Text
}
