package query

import (
	"errors"
	"fmt"
	"regexp"
)

// Validation limits to prevent resource exhaustion on hostile input
const (
	// MaxQueryLength is the maximum allowed query string length (1MB)
	MaxQueryLength = 1024 * 1024

	// MaxTokens is the maximum number of tokens in a query
	MaxTokens = 1000

	// MaxIdentifierLength is the maximum length for a column or table name
	MaxIdentifierLength = 256
)

var (
	// ErrQueryTooLong is returned when query exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("query too long")

	// ErrTooManyTokens is returned when query has too many tokens
	ErrTooManyTokens = errors.New("too many tokens in query")

	// ErrIdentifierTooLong is returned when an identifier is too long
	ErrIdentifierTooLong = errors.New("identifier too long")

	// ErrInvalidIdentifier is returned when a name does not match the
	// identifier grammar
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// identifierPattern is the grammar for column and table names.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateQuery performs length validation on query input
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidateTokens validates token count
func ValidateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return nil
}

// ValidateIdentifier validates a column or table name against the
// identifier grammar and the length cap.
func ValidateIdentifier(name string) error {
	if len(name) > MaxIdentifierLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrIdentifierTooLong, len(name), MaxIdentifierLength)
	}
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}
