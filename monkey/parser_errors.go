package monkey

import (
	"fmt"
	"strings"
)

// ParseErrorKind classifies parse failures.
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	NoPrefixParse
	InvalidInteger
	IllegalToken
	NestingTooDeep
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case NoPrefixParse:
		return "no prefix parse"
	case InvalidInteger:
		return "invalid integer"
	case IllegalToken:
		return "illegal token"
	case NestingTooDeep:
		return "nesting too deep"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseError is one structured parse failure.
type ParseError struct {
	Kind   ParseErrorKind
	Msg    string
	Pos    Position
	source string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	if frame := formatCodeFrame(e.source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

// ParseErrors reports every error of a failed parse.
type ParseErrors []*ParseError

func (errs ParseErrors) Error() string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "\n")
}

func (p *Parser) errorExpected(tok Token, expected TokenType) {
	p.addParseError(UnexpectedToken, tok.Pos,
		fmt.Sprintf("expected next token to be %s, got %s instead", tokenLabel(expected), describeToken(tok)))
}

func (p *Parser) errorNoPrefix(tok Token) {
	p.addParseError(NoPrefixParse, tok.Pos, fmt.Sprintf("no prefix parse function for %s found", describeToken(tok)))
}

func (p *Parser) addParseError(kind ParseErrorKind, pos Position, msg string) {
	p.errors = append(p.errors, &ParseError{Kind: kind, Msg: msg, Pos: pos, source: p.l.input})
}

func describeToken(tok Token) string {
	switch tok.Type {
	case tokenIdent:
		return fmt.Sprintf("identifier %s", tok.Literal)
	case tokenInt:
		return fmt.Sprintf("integer %s", tok.Literal)
	case tokenIllegal:
		return fmt.Sprintf("invalid token %q", tok.Literal)
	default:
		return tokenLabel(tok.Type)
	}
}

func tokenLabel(tt TokenType) string {
	switch tt {
	case tokenIllegal:
		return "invalid token"
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return "identifier"
	case tokenInt:
		return "integer"
	case tokenString:
		return "string"
	case tokenFunction:
		return "'fn'"
	case tokenLet:
		return "'let'"
	case tokenTrue:
		return "'true'"
	case tokenFalse:
		return "'false'"
	case tokenIf:
		return "'if'"
	case tokenElse:
		return "'else'"
	case tokenReturn:
		return "'return'"
	default:
		return fmt.Sprintf("%q", string(tt))
	}
}
