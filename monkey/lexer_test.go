package monkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expectedToken struct {
	typ     TokenType
	literal string
}

func collectTokens(input string) []expectedToken {
	toks := NewLexer(input).Tokens()
	out := make([]expectedToken, len(toks))
	for i, tok := range toks {
		out[i] = expectedToken{typ: tok.Type, literal: tok.Literal}
	}
	return out
}

func TestLexerSimpleLet(t *testing.T) {
	got := collectTokens("let five = 5;")
	want := []expectedToken{
		{tokenLet, "let"},
		{tokenIdent, "five"},
		{tokenAssign, "="},
		{tokenInt, "5"},
		{tokenSemicolon, ";"},
		{tokenEOF, ""},
	}
	assert.Equal(t, want, got)
}

func TestLexerFullProgram(t *testing.T) {
	input := `let five = 5;
let ten = 10;
let add = fn(x, y) {
  x + y;
};
let result = add(five, ten);
!-/*5;
5 < 10 > 5;
if (5 < 10) {
  return true;
} else {
  return false;
}
10 == 10;
10 != 9;
"foo bar"
[1, 2];
`
	want := []expectedToken{
		{tokenLet, "let"}, {tokenIdent, "five"}, {tokenAssign, "="}, {tokenInt, "5"}, {tokenSemicolon, ";"},
		{tokenLet, "let"}, {tokenIdent, "ten"}, {tokenAssign, "="}, {tokenInt, "10"}, {tokenSemicolon, ";"},
		{tokenLet, "let"}, {tokenIdent, "add"}, {tokenAssign, "="}, {tokenFunction, "fn"},
		{tokenLParen, "("}, {tokenIdent, "x"}, {tokenComma, ","}, {tokenIdent, "y"}, {tokenRParen, ")"},
		{tokenLBrace, "{"}, {tokenIdent, "x"}, {tokenPlus, "+"}, {tokenIdent, "y"}, {tokenSemicolon, ";"},
		{tokenRBrace, "}"}, {tokenSemicolon, ";"},
		{tokenLet, "let"}, {tokenIdent, "result"}, {tokenAssign, "="}, {tokenIdent, "add"},
		{tokenLParen, "("}, {tokenIdent, "five"}, {tokenComma, ","}, {tokenIdent, "ten"}, {tokenRParen, ")"},
		{tokenSemicolon, ";"},
		{tokenBang, "!"}, {tokenMinus, "-"}, {tokenSlash, "/"}, {tokenAsterisk, "*"}, {tokenInt, "5"},
		{tokenSemicolon, ";"},
		{tokenInt, "5"}, {tokenLT, "<"}, {tokenInt, "10"}, {tokenGT, ">"}, {tokenInt, "5"}, {tokenSemicolon, ";"},
		{tokenIf, "if"}, {tokenLParen, "("}, {tokenInt, "5"}, {tokenLT, "<"}, {tokenInt, "10"}, {tokenRParen, ")"},
		{tokenLBrace, "{"}, {tokenReturn, "return"}, {tokenTrue, "true"}, {tokenSemicolon, ";"}, {tokenRBrace, "}"},
		{tokenElse, "else"}, {tokenLBrace, "{"}, {tokenReturn, "return"}, {tokenFalse, "false"}, {tokenSemicolon, ";"},
		{tokenRBrace, "}"},
		{tokenInt, "10"}, {tokenEQ, "=="}, {tokenInt, "10"}, {tokenSemicolon, ";"},
		{tokenInt, "10"}, {tokenNotEQ, "!="}, {tokenInt, "9"}, {tokenSemicolon, ";"},
		{tokenString, "foo bar"},
		{tokenLBracket, "["}, {tokenInt, "1"}, {tokenComma, ","}, {tokenInt, "2"}, {tokenRBracket, "]"},
		{tokenSemicolon, ";"},
		{tokenEOF, ""},
	}
	assert.Equal(t, want, collectTokens(input))
}

func TestLexerPositions(t *testing.T) {
	toks := NewLexer("let x = 1;\n  x").Tokens()
	require.Len(t, toks, 7)
	assert.Equal(t, Position{Line: 1, Column: 1}, toks[0].Pos)
	assert.Equal(t, Position{Line: 1, Column: 5}, toks[1].Pos)
	assert.Equal(t, Position{Line: 1, Column: 9}, toks[3].Pos)
	assert.Equal(t, Position{Line: 2, Column: 3}, toks[5].Pos)
	assert.Equal(t, tokenEOF, toks[6].Type)
}

func TestLexerKeepsReturningEOF(t *testing.T) {
	l := NewLexer("x")
	assert.Equal(t, tokenIdent, l.NextToken().Type)
	for range 3 {
		assert.Equal(t, tokenEOF, l.NextToken().Type)
	}
}

func TestLexerIllegalInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
	}{
		{name: "unknown byte", input: "@", literal: "@"},
		{name: "unterminated string", input: `"abc`, literal: "unterminated string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			assert.Equal(t, tokenIllegal, tok.Type)
			assert.Equal(t, tt.literal, tok.Literal)
		})
	}
}

func TestLexerStringsAreRaw(t *testing.T) {
	tok := NewLexer(`"a\nb"`).NextToken()
	assert.Equal(t, tokenString, tok.Type)
	assert.Equal(t, `a\nb`, tok.Literal)
}

func TestLexerOversizedIntegerKeepsRawText(t *testing.T) {
	tok := NewLexer("99999999999999999999").NextToken()
	assert.Equal(t, tokenInt, tok.Type)
	assert.Equal(t, "99999999999999999999", tok.Literal)
}
