package query

import (
	"strconv"

	"github.com/vegasq/csvsql/internal/table"
)

// Parser parses a token stream into a Query
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// Parse parses a single SQL statement, optionally terminated by a
// semicolon. Any input outside the grammar is rejected wholesale with a
// ParseError.
func Parse(input string) (*Query, error) {
	if err := ValidateQuery(input); err != nil {
		return nil, &ParseError{Reason: err.Error(), err: err}
	}

	tokens := Tokenize(input)

	if err := ValidateTokens(tokens); err != nil {
		return nil, &ParseError{Reason: err.Error(), err: err}
	}
	for _, tok := range tokens {
		if tok.Type == TokenError {
			return nil, parseErrorf("unrecognized token %q", tok.Value)
		}
	}

	parser := NewParser(tokens)
	return parser.parseQuery()
}

// parseQuery parses: SELECT <cols>|COUNT(...) FROM <table> [WHERE <predicate>] [;]
func (p *Parser) parseQuery() (*Query, error) {
	if p.current().Type != TokenSelect {
		return nil, parseErrorf("query must start with SELECT, got %q", p.current().Value)
	}
	p.advance()

	q := &Query{}

	if p.current().Type == TokenCount {
		if err := p.parseCount(q); err != nil {
			return nil, err
		}
	} else {
		if err := p.parseColumns(q); err != nil {
			return nil, err
		}
	}

	// FROM
	if p.current().Type != TokenFrom {
		return nil, parseErrorf("expected FROM, got %q", p.current().Value)
	}
	p.advance()

	// Table name
	tok := p.current()
	if tok.Type != TokenIdent {
		return nil, parseErrorf("expected table name after FROM, got %q", tok.Value)
	}
	if err := ValidateIdentifier(tok.Value); err != nil {
		return nil, &ParseError{Reason: "invalid table name: " + err.Error(), err: err}
	}
	q.Table = tok.Value
	p.advance()

	// WHERE clause (optional)
	if p.current().Type == TokenWhere {
		p.advance()
		pred, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		q.Predicate = pred
	}

	// Trailing semicolon (optional)
	if p.current().Type == TokenSemicolon {
		p.advance()
	}

	if p.current().Type != TokenEOF {
		return nil, parseErrorf("unexpected input after statement: %q", p.current().Value)
	}

	return q, nil
}

// parseColumns parses * or a comma-separated list of identifiers
func (p *Parser) parseColumns(q *Query) error {
	q.Kind = KindSelect

	if p.current().Type == TokenStar {
		q.Star = true
		p.advance()
		return nil
	}

	for {
		tok := p.current()
		if tok.Type != TokenIdent {
			return parseErrorf("expected column name, got %q", tok.Value)
		}
		if err := ValidateIdentifier(tok.Value); err != nil {
			return &ParseError{Reason: "invalid column name: " + err.Error(), err: err}
		}
		q.Columns = append(q.Columns, tok.Value)
		p.advance()

		if p.current().Type != TokenComma {
			return nil
		}
		p.advance()
	}
}

// parseCount parses COUNT(*) or COUNT(column)
func (p *Parser) parseCount(q *Query) error {
	p.advance() // COUNT

	if p.current().Type != TokenLeftParen {
		return parseErrorf("expected ( after COUNT, got %q", p.current().Value)
	}
	p.advance()

	switch tok := p.current(); tok.Type {
	case TokenStar:
		q.Kind = KindCountAll
		p.advance()
	case TokenIdent:
		if err := ValidateIdentifier(tok.Value); err != nil {
			return &ParseError{Reason: "invalid column name: " + err.Error(), err: err}
		}
		q.Kind = KindCountColumn
		q.CountColumn = tok.Value
		p.advance()
	default:
		return parseErrorf("COUNT argument must be * or a column name, got %q", tok.Value)
	}

	if p.current().Type != TokenRightParen {
		return parseErrorf("expected ) to close COUNT, got %q", p.current().Value)
	}
	p.advance()
	return nil
}

// parsePredicate parses: <column> <op> <value>
func (p *Parser) parsePredicate() (*Predicate, error) {
	tok := p.current()
	if tok.Type != TokenIdent {
		return nil, parseErrorf("expected column name in WHERE, got %q", tok.Value)
	}
	if err := ValidateIdentifier(tok.Value); err != nil {
		return nil, &ParseError{Reason: "invalid column in WHERE: " + err.Error(), err: err}
	}
	column := tok.Value
	p.advance()

	operator := p.current().Type
	switch operator {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		p.advance()
	default:
		return nil, parseErrorf("expected comparison operator, got %q", p.current().Value)
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &Predicate{
		Column:   column,
		Operator: operator,
		Value:    value,
	}, nil
}

// parseValue parses the literal side of a predicate. Quoted strings and
// numbers are taken as typed literals; a bare word is taken verbatim as
// a string literal.
func (p *Parser) parseValue() (table.Cell, error) {
	tok := p.current()
	switch tok.Type {
	case TokenString:
		p.advance()
		return table.String(tok.Value), nil
	case TokenNumber:
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return table.Cell{}, parseErrorf("invalid number: %s", tok.Value)
		}
		p.advance()
		return table.Cell{Kind: table.KindNumber, Num: f, Text: tok.Value}, nil
	case TokenIdent:
		p.advance()
		return table.String(tok.Value), nil
	default:
		return table.Cell{}, parseErrorf("expected value in WHERE, got %q", tok.Value)
	}
}
