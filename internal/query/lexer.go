package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes SQL query strings
type Lexer struct {
	input string
	pos   int // byte offset of the next unread character
	ch    rune
	eof   bool
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar decodes the next character. Input is UTF-8, so multi-byte
// runes are decoded whole; ch is 0 both at end of input and for an
// embedded NUL byte, distinguished by the eof flag.
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
		l.eof = true
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.pos += w
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a single-quoted string literal. The contents run
// from the opening quote to the matching closing quote, with no escape
// handling. Returns false when the closing quote is missing.
func (l *Lexer) readString() (string, bool) {
	var result strings.Builder
	l.readChar() // skip opening quote

	for l.ch != '\'' && l.ch != 0 {
		result.WriteRune(l.ch)
		l.readChar()
	}

	if l.ch != '\'' {
		return result.String(), false
	}
	l.readChar() // skip closing quote
	return result.String(), true
}

// readNumber reads a numeric literal: an optional leading minus sign
// followed by digits and at most a decimal point.
func (l *Lexer) readNumber() string {
	var result strings.Builder

	if l.ch == '-' {
		result.WriteRune(l.ch)
		l.readChar()
	}

	for unicode.IsDigit(l.ch) || l.ch == '.' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	var result strings.Builder
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	var tok Token

	switch l.ch {
	case 0:
		if !l.eof {
			// embedded NUL byte, not end of input
			tok = Token{Type: TokenError, Value: "\x00"}
			l.readChar()
			break
		}
		tok = Token{Type: TokenEOF, Value: ""}
	case '=':
		tok = Token{Type: TokenEqual, Value: "="}
		l.readChar()
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenNotEqual, Value: "!="}
			l.readChar()
		} else {
			tok = Token{Type: TokenError, Value: "!"}
			l.readChar()
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenLessEqual, Value: "<="}
			l.readChar()
		} else {
			tok = Token{Type: TokenLess, Value: "<"}
			l.readChar()
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenGreaterEqual, Value: ">="}
			l.readChar()
		} else {
			tok = Token{Type: TokenGreater, Value: ">"}
			l.readChar()
		}
	case '\'':
		value, terminated := l.readString()
		if !terminated {
			tok = Token{Type: TokenError, Value: "'" + value}
		} else {
			tok = Token{Type: TokenString, Value: value}
		}
	case '*':
		tok = Token{Type: TokenStar, Value: "*"}
		l.readChar()
	case ',':
		tok = Token{Type: TokenComma, Value: ","}
		l.readChar()
	case '(':
		tok = Token{Type: TokenLeftParen, Value: "("}
		l.readChar()
	case ')':
		tok = Token{Type: TokenRightParen, Value: ")"}
		l.readChar()
	case ';':
		tok = Token{Type: TokenSemicolon, Value: ";"}
		l.readChar()
	default:
		if unicode.IsDigit(l.ch) || l.ch == '-' {
			value := l.readNumber()
			// A standalone minus sign is not a number
			if value == "-" {
				tok = Token{Type: TokenError, Value: "-"}
			} else if unicode.IsLetter(l.ch) || l.ch == '_' {
				// digits running into identifier characters form a
				// single bare word, like 123abc
				tok = Token{Type: TokenIdent, Value: value + l.readIdentifier()}
			} else {
				tok = Token{Type: TokenNumber, Value: value}
			}
		} else if unicode.IsLetter(l.ch) || l.ch == '_' {
			value := l.readIdentifier()
			tok = Token{Type: identifierType(value), Value: value}
		} else {
			tok = Token{Type: TokenError, Value: string(l.ch)}
			l.readChar()
		}
	}

	return tok
}

// keywords maps lowercased lexemes to keyword token types. Keyword
// matching is case-insensitive; identifiers keep their case.
var keywords = map[string]TokenType{
	"select": TokenSelect,
	"from":   TokenFrom,
	"where":  TokenWhere,
	"count":  TokenCount,
}

// identifierType determines if an identifier is a keyword
func identifierType(ident string) TokenType {
	if tokType, ok := keywords[strings.ToLower(ident)]; ok {
		return tokType
	}
	return TokenIdent
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}

	return tokens
}
