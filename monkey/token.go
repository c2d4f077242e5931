package monkey

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenInt    TokenType = "INT"
	tokenString TokenType = "STRING"

	tokenAssign   TokenType = "="
	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenBang     TokenType = "!"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenLT       TokenType = "<"
	tokenGT       TokenType = ">"
	tokenEQ       TokenType = "=="
	tokenNotEQ    TokenType = "!="

	tokenComma     TokenType = ","
	tokenSemicolon TokenType = ";"
	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"
	tokenLBracket  TokenType = "["
	tokenRBracket  TokenType = "]"

	tokenFunction TokenType = "FN"
	tokenLet      TokenType = "LET"
	tokenTrue     TokenType = "TRUE"
	tokenFalse    TokenType = "FALSE"
	tokenIf       TokenType = "IF"
	tokenElse     TokenType = "ELSE"
	tokenReturn   TokenType = "RETURN"
)

// Exported aliases for hosts that inspect token streams.
const (
	TokenIllegal = tokenIllegal
	TokenEOF     = tokenEOF
	TokenIdent   = tokenIdent
	TokenInt     = tokenInt
	TokenString  = tokenString
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a line and column in the source, both 1-based.
type Position struct {
	Line   int
	Column int
}

var keywords = map[string]TokenType{
	"fn":     tokenFunction,
	"let":    tokenLet,
	"true":   tokenTrue,
	"false":  tokenFalse,
	"if":     tokenIf,
	"else":   tokenElse,
	"return": tokenReturn,
}

func lookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return tokenIdent
}

// Keywords returns the reserved words of the language in a stable order.
func Keywords() []string {
	return []string{"fn", "let", "true", "false", "if", "else", "return"}
}
