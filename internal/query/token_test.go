package query

import (
	"testing"
)

func lexAll(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			return tokens
		}
	}
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tokens []Token
	}{
		{
			name:  "operators",
			input: "= != < <= > >=",
			tokens: []Token{
				{Type: TokenEq, Value: "=", Pos: 0},
				{Type: TokenNeq, Value: "!=", Pos: 2},
				{Type: TokenLt, Value: "<", Pos: 5},
				{Type: TokenLte, Value: "<=", Pos: 7},
				{Type: TokenGt, Value: ">", Pos: 10},
				{Type: TokenGte, Value: ">=", Pos: 12},
				{Type: TokenEOF, Pos: 14},
			},
		},
		{
			name:  "unix path as single token",
			input: "/var/log",
			tokens: []Token{
				{Type: TokenIdent, Value: "/var/log", Pos: 0},
				{Type: TokenEOF, Pos: 8},
			},
		},
		{
			name:  "home path as single token",
			input: "~/Documents/notes",
			tokens: []Token{
				{Type: TokenIdent, Value: "~/Documents/notes", Pos: 0},
				{Type: TokenEOF, Pos: 17},
			},
		},
		{
			name:  "windows path as single token",
			input: "C:\\Users\\me",
			tokens: []Token{
				{Type: TokenIdent, Value: "C:\\Users\\me", Pos: 0},
				{Type: TokenEOF, Pos: 11},
			},
		},
		{
			name:  "integer",
			input: "1000",
			tokens: []Token{
				{Type: TokenNumber, Value: "1000", Pos: 0},
				{Type: TokenEOF, Pos: 4},
			},
		},
		{
			name:  "float",
			input: "3.14",
			tokens: []Token{
				{Type: TokenNumber, Value: "3.14", Pos: 0},
				{Type: TokenEOF, Pos: 4},
			},
		},
		{
			name:  "dashed date stays identifier",
			input: "2025-01-01",
			tokens: []Token{
				{Type: TokenIdent, Value: "2025-01-01", Pos: 0},
				{Type: TokenEOF, Pos: 10},
			},
		},
		{
			name:  "quoted string",
			input: "'hello world'",
			tokens: []Token{
				{Type: TokenString, Value: "hello world", Pos: 0},
				{Type: TokenEOF, Pos: 13},
			},
		},
		{
			name:  "doubled quote escape",
			input: "'it''s'",
			tokens: []Token{
				{Type: TokenString, Value: "it's", Pos: 0},
				{Type: TokenEOF, Pos: 7},
			},
		},
		{
			name:  "star and parens",
			input: "* ( )",
			tokens: []Token{
				{Type: TokenStar, Value: "*", Pos: 0},
				{Type: TokenLParen, Value: "(", Pos: 2},
				{Type: TokenRParen, Value: ")", Pos: 4},
				{Type: TokenEOF, Pos: 5},
			},
		},
		{
			name:  "unterminated string",
			input: "'oops",
			tokens: []Token{
				{Type: TokenError, Value: "'oops", Pos: 0},
			},
		},
		{
			name:  "bare bang",
			input: "!",
			tokens: []Token{
				{Type: TokenError, Value: "!", Pos: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexAll(tt.input)
			if len(got) != len(tt.tokens) {
				t.Fatalf("got %d tokens, want %d: %+v", len(got), len(tt.tokens), got)
			}
			for i, want := range tt.tokens {
				if got[i] != want {
					t.Errorf("token %d: got %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}

func TestLexerFullStatement(t *testing.T) {
	got := lexAll("SELECT * FROM /tmp WHERE size > 100")
	types := []TokenType{
		TokenIdent, TokenStar, TokenIdent, TokenIdent,
		TokenIdent, TokenIdent, TokenGt, TokenNumber, TokenEOF,
	}
	if len(got) != len(types) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(types), got)
	}
	for i, want := range types {
		if got[i].Type != want {
			t.Errorf("token %d: got type %v (%q), want %v", i, got[i].Type, got[i].Value, want)
		}
	}
}

func TestTokenKeyword(t *testing.T) {
	if !(Token{Type: TokenIdent, Value: "select"}).Keyword("SELECT") {
		t.Error("lowercase ident should match SELECT keyword")
	}
	if (Token{Type: TokenString, Value: "select"}).Keyword("SELECT") {
		t.Error("quoted string must not match a keyword")
	}
}
