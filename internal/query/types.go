// Package query provides SQL parsing and predicate evaluation for the
// engine's restricted grammar:
//
//	SELECT <cols> FROM <table> [WHERE <col> <op> <value>]
//	SELECT COUNT(*) FROM <table> [WHERE <col> <op> <value>]
//	SELECT COUNT(<col>) FROM <table> [WHERE <col> <op> <value>]
//
// The package includes a lexer for tokenization, a recursive-descent
// parser producing Query values, and the predicate evaluator used to
// filter rows.
//
// Example usage:
//
//	q, err := query.Parse("SELECT name FROM users WHERE age > 26")
//	if err != nil {
//	    log.Fatal(err)
//	}
package query

import (
	"fmt"

	"github.com/vegasq/csvsql/internal/table"
)

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenSelect TokenType = iota
	TokenFrom
	TokenWhere
	TokenCount

	// Operators
	TokenEqual        // =
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Literals
	TokenString
	TokenNumber
	TokenIdent

	// Delimiters
	TokenStar       // *
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )
	TokenSemicolon  // ;

	// Special
	TokenEOF
	TokenError
)

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// QueryKind discriminates the three statement forms.
type QueryKind int

const (
	KindSelect QueryKind = iota
	KindCountAll
	KindCountColumn
)

// Query is a parsed statement.
type Query struct {
	Kind        QueryKind
	Star        bool       // SELECT *
	Columns     []string   // projected columns when Star is false
	CountColumn string     // argument of COUNT(col)
	Table       string
	Predicate   *Predicate // optional WHERE condition
}

// Predicate is the single WHERE condition comparing one column to one
// literal.
type Predicate struct {
	Column   string
	Operator TokenType
	Value    table.Cell
}

// ParseError describes why a statement was rejected. A statement is
// atomic: any grammar violation fails the whole parse.
type ParseError struct {
	Reason string
	err    error
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.err
}

func parseErrorf(format string, args ...interface{}) error {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}
