package query

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// userHomeDir is swapped in tests to pin home directory expansion.
var userHomeDir = os.UserHomeDir

// Parser parses query strings into Statement ASTs.
type Parser struct {
	lexer *Lexer
	curr  Token
	peek  Token
}

// Parse parses a query string and returns a Statement AST.
func Parse(input string) (Statement, error) {
	p := &Parser{lexer: NewLexer(strings.TrimSpace(input))}
	p.advance()
	p.advance()
	return p.parseStatement()
}

func (p *Parser) advance() {
	p.curr = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) parseStatement() (Statement, error) {
	switch {
	case p.curr.Keyword("SELECT"):
		p.advance()
		return p.parseSelect(false)
	case p.curr.Keyword("WITH"):
		p.advance()
		if !p.curr.Keyword("RECURSIVE") {
			return nil, errf(CodeUnsupportedStatement, "expected RECURSIVE after WITH, got %q", p.curr.Value)
		}
		p.advance()
		if !p.curr.Keyword("SELECT") {
			return nil, errf(CodeUnsupportedStatement, "expected SELECT after WITH RECURSIVE, got %q", p.curr.Value)
		}
		p.advance()
		return p.parseSelect(true)
	case p.curr.Keyword("UPDATE"):
		p.advance()
		return p.parseUpdate()
	case p.curr.Type == TokenEOF:
		return nil, errf(CodeUnsupportedStatement, "empty statement")
	default:
		return nil, errf(CodeUnsupportedStatement, "expected SELECT, WITH RECURSIVE or UPDATE, got %q", p.curr.Value)
	}
}

// parseSelect parses the remainder of a SELECT statement, the SELECT
// keyword (and any WITH RECURSIVE prefix) already consumed.
func (p *Parser) parseSelect(recursive bool) (Statement, error) {
	attrs, err := p.parseProjection()
	if err != nil {
		return nil, err
	}

	if !p.curr.Keyword("FROM") {
		return nil, errf(CodeMissingClause, "missing FROM clause")
	}
	p.advance()

	path, err := p.parsePath("FROM")
	if err != nil {
		return nil, err
	}

	// Trailing marker form: SELECT * FROM path WITH RECURSIVE ...
	if p.curr.Keyword("WITH") {
		p.advance()
		if !p.curr.Keyword("RECURSIVE") {
			return nil, errf(CodeUnsupportedFeature, "expected RECURSIVE after WITH, got %q", p.curr.Value)
		}
		p.advance()
		recursive = true
	}

	where, err := p.parseWhere()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}

	return &Select{Path: path, Recursive: recursive, Attributes: attrs, Where: where}, nil
}

// parseProjection parses `*` or a comma-separated attribute list.
func (p *Parser) parseProjection() ([]Attribute, error) {
	if p.curr.Type == TokenStar {
		p.advance()
		return []Attribute{AttrAll}, nil
	}
	if p.curr.Keyword("FROM") {
		return nil, errf(CodeMissingClause, "missing projection before FROM")
	}

	var attrs []Attribute
	for {
		attr, err := p.parseAttributeName()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
		if p.curr.Type != TokenComma {
			return attrs, nil
		}
		p.advance()
	}
}

func (p *Parser) parseAttributeName() (Attribute, error) {
	if p.curr.Type != TokenIdent {
		return 0, errf(CodeInvalidAttribute, "expected attribute name, got %q", p.curr.Value)
	}
	attr, ok := ParseAttribute(p.curr.Value)
	if !ok || attr == AttrAll {
		return 0, errf(CodeInvalidAttribute, "unknown attribute %q", p.curr.Value)
	}
	p.advance()
	return attr, nil
}

// parsePath consumes a path token. Paths lex as single identifier atoms;
// quoted strings allow paths containing spaces.
func (p *Parser) parsePath(after string) (string, error) {
	switch p.curr.Type {
	case TokenIdent, TokenString, TokenNumber:
		path, err := expandHome(p.curr.Value)
		if err != nil {
			return "", err
		}
		p.advance()
		return path, nil
	default:
		return "", errf(CodeMissingClause, "missing path after %s", after)
	}
}

func (p *Parser) parseUpdate() (Statement, error) {
	path, err := p.parsePath("UPDATE")
	if err != nil {
		return nil, err
	}

	if !p.curr.Keyword("SET") {
		return nil, errf(CodeMissingClause, "missing SET clause")
	}
	p.advance()

	var updates []AttributeUpdate
	for {
		attr, err := p.parseAttributeName()
		if err != nil {
			return nil, err
		}
		if p.curr.Type != TokenEq {
			return nil, errf(CodeInvalidOperator, "expected = after %s, got %q", attr, p.curr.Value)
		}
		p.advance()
		switch p.curr.Type {
		case TokenString, TokenNumber, TokenIdent:
			updates = append(updates, AttributeUpdate{Attribute: attr, Value: p.curr.Value})
			p.advance()
		default:
			return nil, errf(CodeInvalidValue, "expected value for %s, got %q", attr, p.curr.Value)
		}
		if p.curr.Type != TokenComma {
			break
		}
		p.advance()
	}

	where, err := p.parseWhere()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}

	return &Update{Path: path, Updates: updates, Where: where}, nil
}

// parseWhere parses an optional WHERE clause and returns nil when absent.
func (p *Parser) parseWhere() (Condition, error) {
	if !p.curr.Keyword("WHERE") {
		return nil, nil
	}
	p.advance()
	return p.parseOr()
}

func (p *Parser) expectEnd() error {
	if p.curr.Type == TokenEOF {
		return nil
	}
	if p.curr.Type == TokenError {
		return errf(CodeUnsupportedFeature, "unrecognized input %q", p.curr.Value)
	}
	return errf(CodeUnsupportedFeature, "unexpected trailing input starting at %q", p.curr.Value)
}

// parseOr parses OR expressions, the lowest precedence level.
func (p *Parser) parseOr() (Condition, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curr.Keyword("OR") {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Condition, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curr.Keyword("AND") {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Condition, error) {
	if p.curr.Keyword("NOT") {
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Not{Inner: inner}, nil
	}
	if p.curr.Keyword("REGEXP") && p.peek.Type == TokenLParen {
		return p.parseRegexpCall()
	}
	if p.curr.Type == TokenLParen {
		p.advance()
		cond, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.curr.Type != TokenRParen {
			return nil, errf(CodeUnsupportedFeature, "missing closing parenthesis, got %q", p.curr.Value)
		}
		p.advance()
		return cond, nil
	}
	return p.parsePredicate()
}

// parseRegexpCall parses the function form REGEXP(attribute, 'pattern').
// The postfix form `attr REGEXP 'pattern'` is handled in parsePredicate.
func (p *Parser) parseRegexpCall() (Condition, error) {
	p.advance() // REGEXP
	p.advance() // (

	attr, err := p.parseAttributeName()
	if err != nil {
		return nil, err
	}
	if p.curr.Type != TokenComma {
		return nil, errf(CodeInvalidValue, "expected comma after %s in REGEXP, got %q", attr, p.curr.Value)
	}
	p.advance()
	if p.curr.Type != TokenString {
		return nil, errf(CodeInvalidValue, "REGEXP pattern must be a quoted string, got %q", p.curr.Value)
	}
	pattern := p.curr.Value
	p.advance()
	if p.curr.Type != TokenRParen {
		return nil, errf(CodeUnsupportedFeature, "missing closing parenthesis in REGEXP, got %q", p.curr.Value)
	}
	p.advance()
	return &Regexp{Attribute: attr, Pattern: pattern}, nil
}

// parsePredicate parses a single attribute test: a comparison, LIKE,
// NOT LIKE, BETWEEN or REGEXP clause.
func (p *Parser) parsePredicate() (Condition, error) {
	attr, err := p.parseAttributeName()
	if err != nil {
		return nil, err
	}

	switch {
	case p.curr.Keyword("LIKE"):
		p.advance()
		return p.parseLike(attr, false)
	case p.curr.Keyword("NOT") && p.peek.Keyword("LIKE"):
		p.advance()
		p.advance()
		like, err := p.parseLike(attr, false)
		if err != nil {
			return nil, err
		}
		return &Not{Inner: like}, nil
	case p.curr.Keyword("BETWEEN"):
		p.advance()
		return p.parseBetween(attr)
	case p.curr.Keyword("REGEXP"):
		p.advance()
		if p.curr.Type != TokenString {
			return nil, errf(CodeInvalidValue, "REGEXP pattern must be a quoted string, got %q", p.curr.Value)
		}
		pattern := p.curr.Value
		p.advance()
		return &Regexp{Attribute: attr, Pattern: pattern}, nil
	}

	op, ok := comparisonOp(p.curr.Type)
	if !ok {
		return nil, errf(CodeInvalidOperator, "expected operator after %s, got %q", attr, p.curr.Value)
	}
	p.advance()

	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &Compare{Attribute: attr, Op: op, Value: value}, nil
}

func (p *Parser) parseLike(attr Attribute, caseSensitive bool) (Condition, error) {
	if p.curr.Type != TokenString {
		return nil, errf(CodeInvalidValue, "LIKE pattern must be a quoted string, got %q", p.curr.Value)
	}
	pattern := p.curr.Value
	p.advance()
	return &Like{Attribute: attr, Pattern: pattern, CaseSensitive: caseSensitive}, nil
}

func (p *Parser) parseBetween(attr Attribute) (Condition, error) {
	lower, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	if !p.curr.Keyword("AND") {
		return nil, errf(CodeMissingClause, "missing AND in BETWEEN clause, got %q", p.curr.Value)
	}
	p.advance()
	upper, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &Between{Attribute: attr, Lower: lower, Upper: upper}, nil
}

// parseLiteral parses a literal value. Unquoted words such as txt or
// 2025-01-01 read as strings; TRUE, FALSE and NULL are reserved.
func (p *Parser) parseLiteral() (Value, error) {
	switch p.curr.Type {
	case TokenString:
		v := StringValue(p.curr.Value)
		p.advance()
		return v, nil
	case TokenNumber:
		n, err := strconv.ParseFloat(p.curr.Value, 64)
		if err != nil {
			return Null, errf(CodeInvalidValue, "invalid number %q", p.curr.Value)
		}
		p.advance()
		return NumberValue(n), nil
	case TokenIdent:
		var v Value
		switch {
		case p.curr.Keyword("TRUE"):
			v = BoolValue(true)
		case p.curr.Keyword("FALSE"):
			v = BoolValue(false)
		case p.curr.Keyword("NULL"):
			v = Null
		default:
			v = StringValue(p.curr.Value)
		}
		p.advance()
		return v, nil
	default:
		return Null, errf(CodeInvalidValue, "expected literal value, got %q", p.curr.Value)
	}
}

func comparisonOp(t TokenType) (CompareOp, bool) {
	switch t {
	case TokenEq:
		return OpEq, true
	case TokenNeq:
		return OpNeq, true
	case TokenLt:
		return OpLt, true
	case TokenLte:
		return OpLte, true
	case TokenGt:
		return OpGt, true
	case TokenGte:
		return OpGte, true
	default:
		return 0, false
	}
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", errf(CodeInvalidPath, "could not determine home directory: %v", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
