package query

import (
	"github.com/vegasq/csvsql/internal/table"
)

// Matches reports whether row satisfies the predicate.
//
// Comparison is numeric when both the cell and the literal parse as
// numbers, and falls back to the raw text otherwise (lexicographic for
// the ordering operators). A null cell equals nothing: = is false,
// != is true, ordering operators are false.
func (p *Predicate) Matches(row table.Row) (bool, error) {
	cell, ok := row[p.Column]
	if !ok {
		return false, &table.UnknownColumnError{Column: p.Column}
	}

	if cell.IsNull() {
		return p.Operator == TokenNotEqual, nil
	}

	if leftNum, leftOK := cell.Numeric(); leftOK {
		if rightNum, rightOK := p.Value.Numeric(); rightOK {
			return compareNumbers(leftNum, p.Operator, rightNum), nil
		}
	}

	return compareStrings(cell.Text, p.Operator, p.Value.Text), nil
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator TokenType, right float64) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive)
func compareStrings(left string, operator TokenType, right string) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// Filter returns the rows matching pred, preserving input order. A nil
// predicate matches everything.
func Filter(rows []table.Row, pred *Predicate) ([]table.Row, error) {
	if pred == nil {
		return rows, nil
	}

	filtered := make([]table.Row, 0)
	for _, row := range rows {
		match, err := pred.Matches(row)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}
