package monkey

import (
	"fmt"
	"strconv"
)

// parseExpression is the Pratt loop: it consumes infix operators for as long
// as the next one binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) Expression {
	p.depth++
	defer func() {
		p.depth--
	}()
	if p.depth > maxExpressionNesting {
		p.addParseError(NestingTooDeep, p.curToken.Pos,
			fmt.Sprintf("expression nested deeper than %d levels", maxExpressionNesting))
		return nil
	}

	prefix := p.prefixFns[p.curToken.Type]
	if prefix == nil {
		p.errorNoPrefix(p.curToken)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(tokenSemicolon) && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos}
}

func (p *Parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addParseError(InvalidInteger, p.curToken.Pos,
			fmt.Sprintf("could not parse %s as a 64-bit integer", p.curToken.Literal))
		return nil
	}
	return &IntegerLiteral{Value: value, position: p.curToken.Pos}
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Value: p.curToken.Literal, position: p.curToken.Pos}
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BoolLiteral{Value: p.curTokenIs(tokenTrue), position: p.curToken.Pos}
}

func (p *Parser) parseIllegal() Expression {
	p.addParseError(IllegalToken, p.curToken.Pos, fmt.Sprintf("illegal token %q", p.curToken.Literal))
	return nil
}

func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken()
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLiteral() Expression {
	pos := p.curToken.Pos
	elements, ok := p.parseExpressionList(tokenRBracket)
	if !ok {
		return nil
	}
	return &ArrayLiteral{Elements: elements, position: pos}
}

func (p *Parser) parsePrefixExpression() Expression {
	pos := p.curToken.Pos
	operator := p.curToken.Type
	p.nextToken()
	right := p.parseExpression(precPrefix)
	if right == nil {
		return nil
	}
	return &UnaryExpr{Operator: operator, Right: right, position: pos}
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	pos := p.curToken.Pos
	operator := p.curToken.Type
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &BinaryExpr{Left: left, Operator: operator, Right: right, position: pos}
}

// parseIfExpression accepts `if cond { ... } else { ... }`; the usual
// parenthesised condition is just a grouped expression.
func (p *Parser) parseIfExpression() Expression {
	pos := p.curToken.Pos
	p.nextToken()
	condition := p.parseExpression(lowestPrec)
	if condition == nil {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	consequence := p.parseBlockStatement()
	if consequence == nil {
		return nil
	}

	expr := &IfExpr{Condition: condition, Consequence: consequence, position: pos}
	if p.peekTokenIs(tokenElse) {
		p.nextToken()
		if !p.expectPeek(tokenLBrace) {
			return nil
		}
		alternative := p.parseBlockStatement()
		if alternative == nil {
			return nil
		}
		expr.Alternative = alternative
	}
	return expr
}

func (p *Parser) parseFunctionLiteral() Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenLParen) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	body := p.parseBlockStatement()
	if body == nil {
		return nil
	}
	return &FunctionLiteral{Params: params, Body: body, position: pos}
}

func (p *Parser) parseFunctionParameters() ([]*Identifier, bool) {
	params := []*Identifier{}
	if p.peekTokenIs(tokenRParen) {
		p.nextToken()
		return params, true
	}

	if !p.expectPeek(tokenIdent) {
		return nil, false
	}
	params = append(params, &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos})

	for p.peekTokenIs(tokenComma) {
		p.nextToken()
		if !p.expectPeek(tokenIdent) {
			return nil, false
		}
		params = append(params, &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos})
	}

	if !p.expectPeek(tokenRParen) {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseCallExpression(callee Expression) Expression {
	args, ok := p.parseExpressionList(tokenRParen)
	if !ok {
		return nil
	}
	return &CallExpr{Callee: callee, Args: args, position: callee.Pos()}
}

func (p *Parser) parseIndexExpression(object Expression) Expression {
	pos := p.curToken.Pos
	p.nextToken()
	index := p.parseExpression(lowestPrec)
	if index == nil {
		return nil
	}
	if !p.expectPeek(tokenRBracket) {
		return nil
	}
	return &IndexExpr{Object: object, Index: index, position: pos}
}

// parseExpressionList parses comma separated expressions up to end. The
// current token is the opening delimiter.
func (p *Parser) parseExpressionList(end TokenType) ([]Expression, bool) {
	list := []Expression{}
	if p.peekTokenIs(end) {
		p.nextToken()
		return list, true
	}

	p.nextToken()
	first := p.parseExpression(lowestPrec)
	if first == nil {
		return nil, false
	}
	list = append(list, first)

	for p.peekTokenIs(tokenComma) {
		p.nextToken()
		p.nextToken()
		next := p.parseExpression(lowestPrec)
		if next == nil {
			return nil, false
		}
		list = append(list, next)
	}

	if !p.expectPeek(end) {
		return nil, false
	}
	return list, true
}
