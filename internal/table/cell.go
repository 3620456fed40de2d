// Package table defines the in-memory data model: typed cells, tables
// with ordered columns, and the store that holds every table loaded
// during a session.
package table

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	KindNull CellKind = iota
	KindString
	KindNumber
)

// Cell is a single typed value stored in a row. Text preserves the raw
// input for both strings and numbers; Num is only meaningful when Kind
// is KindNumber.
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

// numericLiteral matches values that are stored as numbers: integers or
// decimals with an optional sign.
var numericLiteral = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

// Null returns the null cell.
func Null() Cell {
	return Cell{Kind: KindNull}
}

// String returns a string cell holding s verbatim.
func String(s string) Cell {
	return Cell{Kind: KindString, Text: s}
}

// Number returns a numeric cell.
func Number(f float64) Cell {
	return Cell{Kind: KindNumber, Num: f, Text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Parse converts a raw field into a Cell. Empty (or all-whitespace)
// fields become Null, numeric literals become Number with the original
// text preserved, and anything else is kept verbatim as String.
func Parse(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Null()
	}
	if numericLiteral.MatchString(trimmed) {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Cell{Kind: KindNumber, Num: f, Text: trimmed}
		}
	}
	return String(raw)
}

// IsNull reports whether the cell is null.
func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// Numeric returns the cell's value as a float64 when the cell is a
// number or a string that parses as a numeric literal.
func (c Cell) Numeric() (float64, bool) {
	switch c.Kind {
	case KindNumber:
		return c.Num, true
	case KindString:
		trimmed := strings.TrimSpace(c.Text)
		if numericLiteral.MatchString(trimmed) {
			if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// String renders the cell for display. Null cells render as NULL.
func (c Cell) String() string {
	if c.Kind == KindNull {
		return "NULL"
	}
	return c.Text
}

// MarshalJSON encodes the cell as a JSON null, number, or string.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindNumber:
		return json.Marshal(c.Num)
	default:
		return json.Marshal(c.Text)
	}
}
