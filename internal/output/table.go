package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvsql/internal/engine"
)

// TableFormatter renders row results as an aligned text table with a
// header line, and scalar results as a bare integer.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the result as a rendered table
func (t *TableFormatter) Format(res *engine.Result) error {
	if res.Scalar {
		_, err := fmt.Fprintln(t.writer, res.Count)
		return err
	}

	tw := tablewriter.NewWriter(t.writer)
	tw.SetHeader(res.Columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	for _, row := range res.Rows {
		record := make([]string, len(res.Columns))
		for i, col := range res.Columns {
			record[i] = row[col].String()
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}
