package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/csvsql/internal/engine"
)

// JSONFormatter outputs results as JSON Lines: one object per row
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the result as JSON Lines. Scalar results become a
// single object keyed by the display column.
func (j *JSONFormatter) Format(res *engine.Result) error {
	encoder := json.NewEncoder(j.writer)

	if res.Scalar {
		return encoder.Encode(map[string]int64{res.Columns[0]: res.Count})
	}

	for _, row := range res.Rows {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
