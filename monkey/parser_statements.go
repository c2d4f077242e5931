package monkey

func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenLet:
		return p.parseLetStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	name := &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos}

	if !p.expectPeek(tokenAssign) {
		return nil
	}

	p.nextToken()
	value := p.parseExpression(lowestPrec)
	if value == nil {
		return nil
	}

	if p.peekTokenIs(tokenSemicolon) {
		p.nextToken()
	}
	return &LetStmt{Name: name, Value: value, position: pos}
}

func (p *Parser) parseReturnStatement() Statement {
	pos := p.curToken.Pos
	if p.peekTokenIs(tokenSemicolon) || p.peekTokenIs(tokenRBrace) || p.peekTokenIs(tokenEOF) {
		if p.peekTokenIs(tokenSemicolon) {
			p.nextToken()
		}
		return &ReturnStmt{position: pos}
	}

	p.nextToken()
	value := p.parseExpression(lowestPrec)
	if value == nil {
		return nil
	}

	if p.peekTokenIs(tokenSemicolon) {
		p.nextToken()
	}
	return &ReturnStmt{Value: value, position: pos}
}

func (p *Parser) parseExpressionStatement() Statement {
	pos := p.curToken.Pos
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}

	if p.peekTokenIs(tokenSemicolon) {
		p.nextToken()
	}
	return &ExprStmt{Expr: expr, position: pos}
}

// parseBlockStatement expects curToken to be '{' and leaves it on the
// matching '}'.
func (p *Parser) parseBlockStatement() *BlockStmt {
	block := &BlockStmt{Statements: []Statement{}, position: p.curToken.Pos}
	p.nextToken()

	for !p.curTokenIs(tokenRBrace) {
		if p.curTokenIs(tokenEOF) {
			p.errorExpected(p.curToken, tokenRBrace)
			return nil
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}
