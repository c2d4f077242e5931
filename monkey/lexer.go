package monkey

// Lexer turns source text into tokens on demand. It works on raw bytes; any
// byte outside the language's alphabet becomes an ILLEGAL token.
type Lexer struct {
	input string

	offset     int
	readOffset int

	line   int
	column int

	ch byte
}

// NewLexer returns a lexer positioned at the first byte of input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readOffset >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readOffset]
	}
	l.offset = l.readOffset
	l.readOffset++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readOffset >= len(l.input) {
		return 0
	}
	return l.input[l.readOffset]
}

func (l *Lexer) atEOF() bool {
	return l.offset >= len(l.input)
}

// NextToken returns the next token and advances. Once the input is exhausted
// it keeps returning EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := Position{Line: l.line, Column: l.column}
	if l.atEOF() {
		return Token{Type: tokenEOF, Pos: pos}
	}

	var tok Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: tokenEQ, Literal: "=="}
		} else {
			tok = Token{Type: tokenAssign, Literal: "="}
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: tokenNotEQ, Literal: "!="}
		} else {
			tok = Token{Type: tokenBang, Literal: "!"}
		}
	case '+':
		tok = Token{Type: tokenPlus, Literal: "+"}
	case '-':
		tok = Token{Type: tokenMinus, Literal: "-"}
	case '/':
		tok = Token{Type: tokenSlash, Literal: "/"}
	case '*':
		tok = Token{Type: tokenAsterisk, Literal: "*"}
	case '<':
		tok = Token{Type: tokenLT, Literal: "<"}
	case '>':
		tok = Token{Type: tokenGT, Literal: ">"}
	case '(':
		tok = Token{Type: tokenLParen, Literal: "("}
	case ')':
		tok = Token{Type: tokenRParen, Literal: ")"}
	case '{':
		tok = Token{Type: tokenLBrace, Literal: "{"}
	case '}':
		tok = Token{Type: tokenRBrace, Literal: "}"}
	case '[':
		tok = Token{Type: tokenLBracket, Literal: "["}
	case ']':
		tok = Token{Type: tokenRBracket, Literal: "]"}
	case ',':
		tok = Token{Type: tokenComma, Literal: ","}
	case ';':
		tok = Token{Type: tokenSemicolon, Literal: ";"}
	case '"':
		tok = l.readString()
		tok.Pos = pos
		return tok
	default:
		switch {
		case isLetter(l.ch):
			literal := l.readRun(isLetter)
			return Token{Type: lookupIdent(literal), Literal: literal, Pos: pos}
		case isDigit(l.ch):
			literal := l.readRun(isDigit)
			return Token{Type: tokenInt, Literal: literal, Pos: pos}
		default:
			tok = Token{Type: tokenIllegal, Literal: string(l.ch)}
		}
	}

	l.readChar()
	tok.Pos = pos
	return tok
}

// Tokens drains the lexer, returning every token up to and including EOF.
func (l *Lexer) Tokens() []Token {
	var out []Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Type == tokenEOF {
			return out
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() {
		switch l.ch {
		case ' ', '\t', '\n', '\r':
			l.readChar()
		default:
			return
		}
	}
}

func (l *Lexer) readRun(match func(byte) bool) string {
	start := l.offset
	for !l.atEOF() && match(l.ch) {
		l.readChar()
	}
	return l.input[start:l.offset]
}

// readString consumes a double-quoted string. Backslashes have no special
// meaning.
func (l *Lexer) readString() Token {
	start := l.offset + 1
	for {
		l.readChar()
		if l.atEOF() {
			return Token{Type: tokenIllegal, Literal: "unterminated string"}
		}
		if l.ch == '"' {
			literal := l.input[start:l.offset]
			l.readChar()
			return Token{Type: tokenString, Literal: literal}
		}
	}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
