package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens := New("(){}[],;").ScanTokens()
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		LEFT_BRACKET, RIGHT_BRACKET, COMMA, SEMICOLON, EOF,
	}, tokenTypes(tokens))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	tokens := New("!= == <= >= = ! < >").ScanTokens()
	assert.Equal(t, []TokenType{
		BANG_EQUAL, EQUAL_EQUAL, LESS_EQUAL, GREATER_EQUAL,
		EQUAL, BANG, LESS, GREATER, EOF,
	}, tokenTypes(tokens))
}

// every reserved keyword lexes to exactly one non-EOF token of the matching kind.
func TestScanTokens_Keywords(t *testing.T) {
	for word, want := range keywords {
		tokens := New(word).ScanTokens()
		if assert.Len(t, tokens, 2, "keyword %q", word) {
			assert.Equal(t, want, tokens[0].Type)
			assert.Equal(t, EOF, tokens[1].Type)
		}
	}
}

func TestScanTokens_Identifiers(t *testing.T) {
	tokens := New("abc _a12 snake_case").ScanTokens()
	assert.Equal(t, []TokenType{IDENTIFIER, IDENTIFIER, IDENTIFIER, EOF}, tokenTypes(tokens))
	assert.Equal(t, "abc", tokens[0].Lexeme)
}

func TestScanTokens_Numbers(t *testing.T) {
	tokens := New("123 3.14 0").ScanTokens()
	assert.Equal(t, []TokenType{NUMBER, NUMBER, NUMBER, EOF}, tokenTypes(tokens))
	assert.Equal(t, "123", tokens[0].Literal)
	assert.Equal(t, "3.14", tokens[1].Literal)
}

func TestScanTokens_Strings(t *testing.T) {
	tokens := New(`"hello world"`).ScanTokens()
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_StringSpansLines(t *testing.T) {
	tokens := New("\"a\nb\"").ScanTokens()
	assert.Equal(t, "a\nb", tokens[0].Literal)
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens := New("1 // comment\n2").ScanTokens()
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_TrailingWhitespaceEquivalence(t *testing.T) {
	a := tokenTypes(New("let x = 1;").ScanTokens())
	b := tokenTypes(New("let x = 1;   \n\t").ScanTokens())
	assert.Equal(t, a, b)
}
