package monkey

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser builds a Program from the tokens of a Lexer. It keeps exactly two
// tokens of lookahead and collects errors instead of stopping at the first
// one.
type Parser struct {
	l *Lexer

	curToken  Token
	peekToken Token

	errors []*ParseError
	depth  int

	prefixFns map[TokenType]prefixParseFn
	infixFns  map[TokenType]infixParseFn
}

// NewParser primes the lookahead by reading two tokens from l.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = make(map[TokenType]prefixParseFn)
	p.infixFns = make(map[TokenType]infixParseFn)

	p.registerPrefix(tokenIdent, p.parseIdentifier)
	p.registerPrefix(tokenInt, p.parseIntegerLiteral)
	p.registerPrefix(tokenString, p.parseStringLiteral)
	p.registerPrefix(tokenTrue, p.parseBooleanLiteral)
	p.registerPrefix(tokenFalse, p.parseBooleanLiteral)
	p.registerPrefix(tokenLParen, p.parseGroupedExpression)
	p.registerPrefix(tokenLBracket, p.parseArrayLiteral)
	p.registerPrefix(tokenBang, p.parsePrefixExpression)
	p.registerPrefix(tokenMinus, p.parsePrefixExpression)
	p.registerPrefix(tokenFunction, p.parseFunctionLiteral)
	p.registerPrefix(tokenIf, p.parseIfExpression)
	p.registerPrefix(tokenIllegal, p.parseIllegal)

	p.infixFns[tokenPlus] = p.parseInfixExpression
	p.infixFns[tokenMinus] = p.parseInfixExpression
	p.infixFns[tokenSlash] = p.parseInfixExpression
	p.infixFns[tokenAsterisk] = p.parseInfixExpression
	p.infixFns[tokenEQ] = p.parseInfixExpression
	p.infixFns[tokenNotEQ] = p.parseInfixExpression
	p.infixFns[tokenLT] = p.parseInfixExpression
	p.infixFns[tokenGT] = p.parseInfixExpression
	p.infixFns[tokenLParen] = p.parseCallExpression
	p.infixFns[tokenLBracket] = p.parseIndexExpression

	p.nextToken()
	p.nextToken()

	return p
}

// Parse is shorthand for NewParser(NewLexer(source)).ParseProgram().
func Parse(source string) (*Program, []*ParseError) {
	p := NewParser(NewLexer(source))
	program := p.ParseProgram()
	return program, p.Errors()
}

func (p *Parser) registerPrefix(tt TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseProgram consumes tokens until EOF. A statement that fails to parse is
// dropped and parsing resumes at the following token.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for p.curToken.Type != tokenEOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// Errors returns the parse errors collected so far, in source order.
func (p *Parser) Errors() []*ParseError {
	out := make([]*ParseError, len(p.errors))
	copy(out, p.errors)
	return out
}

func (p *Parser) curTokenIs(tt TokenType) bool {
	return p.curToken.Type == tt
}

func (p *Parser) peekTokenIs(tt TokenType) bool {
	return p.peekToken.Type == tt
}

// expectPeek advances when the next token has type tt. Otherwise it records
// an UnexpectedToken error and leaves the lookahead untouched.
func (p *Parser) expectPeek(tt TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.errorExpected(p.peekToken, tt)
	return false
}
