package query

import (
	"strings"
	"unicode"
)

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenEOF    TokenType = iota
	TokenIdent            // bare words and path-like atoms: name, ~/Documents, C:/Users
	TokenString           // quoted string literal
	TokenNumber           // bare numeric literal
	TokenComma            // ,
	TokenLParen           // (
	TokenRParen           // )
	TokenStar             // *
	TokenEq               // =
	TokenNeq              // !=
	TokenLt               // <
	TokenLte              // <=
	TokenGt               // >
	TokenGte              // >=
	TokenError            // unrecognized input
)

// Token represents a lexer token.
type Token struct {
	Type  TokenType
	Value string // for TokenString, the unquoted text
	Pos   int
}

// Keyword reports whether the token is a bare identifier equal to the given
// reserved word, ignoring case. A quoted token never matches: a path or file
// name that happens to spell a keyword keeps its identifier meaning.
func (t Token) Keyword(word string) bool {
	return t.Type == TokenIdent && strings.EqualFold(t.Value, word)
}

// Lexer tokenizes a query string. Identifiers admit filesystem path
// characters so that paths such as /var/log, ~/Documents and C:/Users
// lex as single atoms.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]

	switch ch {
	case ',':
		l.pos++
		return Token{Type: TokenComma, Value: ",", Pos: start}
	case '(':
		l.pos++
		return Token{Type: TokenLParen, Value: "(", Pos: start}
	case ')':
		l.pos++
		return Token{Type: TokenRParen, Value: ")", Pos: start}
	case '*':
		l.pos++
		return Token{Type: TokenStar, Value: "*", Pos: start}
	case '=':
		l.pos++
		return Token{Type: TokenEq, Value: "=", Pos: start}
	case '!':
		if l.peekAt(1) == '=' {
			l.pos += 2
			return Token{Type: TokenNeq, Value: "!=", Pos: start}
		}
		l.pos++
		return Token{Type: TokenError, Value: "!", Pos: start}
	case '<':
		if l.peekAt(1) == '=' {
			l.pos += 2
			return Token{Type: TokenLte, Value: "<=", Pos: start}
		}
		l.pos++
		return Token{Type: TokenLt, Value: "<", Pos: start}
	case '>':
		if l.peekAt(1) == '=' {
			l.pos += 2
			return Token{Type: TokenGte, Value: ">=", Pos: start}
		}
		l.pos++
		return Token{Type: TokenGt, Value: ">", Pos: start}
	case '\'', '"':
		return l.scanString(ch)
	default:
		if isIdentStart(ch) {
			return l.scanIdent()
		}
		l.pos++
		return Token{Type: TokenError, Value: string(ch), Pos: start}
	}
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset < len(l.input) {
		return l.input[l.pos+offset]
	}
	return 0
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
}

// scanIdent scans a bare word or path atom. A run consisting entirely of
// digits (with an optional fractional part) is reclassified as a number.
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.pos++
	}
	value := l.input[start:l.pos]
	if isNumeric(value) {
		return Token{Type: TokenNumber, Value: value, Pos: start}
	}
	return Token{Type: TokenIdent, Value: value, Pos: start}
}

// scanString scans a quoted literal. A doubled quote inside the literal
// escapes to a single quote character, SQL style.
func (l *Lexer) scanString(quote byte) Token {
	start := l.pos
	l.pos++ // opening quote

	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == quote {
			if l.peekAt(1) == quote {
				sb.WriteByte(quote)
				l.pos += 2
				continue
			}
			l.pos++
			return Token{Type: TokenString, Value: sb.String(), Pos: start}
		}
		sb.WriteByte(ch)
		l.pos++
	}

	// Unterminated string.
	return Token{Type: TokenError, Value: l.input[start:], Pos: start}
}

// isIdentStart accepts ordinary identifier characters plus the path
// characters ~ / . _ - so that paths lex as single tokens.
func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '~' || ch == '/' || ch == '.' || ch == '_' || ch == '-'
}

// isIdentPart additionally accepts \ and : so Windows paths (C:\Users,
// C:/Users) stay single tokens.
func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || ch == '\\' || ch == ':'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
		case s[i] == '.' && !dot && i > 0 && i < len(s)-1:
			dot = true
		default:
			return false
		}
	}
	return true
}
