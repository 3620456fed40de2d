// Package output renders query results for the terminal and for
// machine-readable export.
//
// Rendering is deterministic: the same result value always produces the
// same bytes. Row results carry their column order from the engine;
// scalar results render as a single integer.
package output

import (
	"io"

	"github.com/vegasq/csvsql/internal/engine"
)

// Formatter renders a query result to its writer.
type Formatter interface {
	// Format writes the result in the formatter's specific format
	Format(res *engine.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
