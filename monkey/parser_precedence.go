package monkey

const (
	lowestPrec = iota
	precEquality
	precComparison
	precSum
	precProduct
	precPrefix
	precCall
)

// maxExpressionNesting bounds parser recursion for pathological input such
// as thousands of opening parentheses.
const maxExpressionNesting = 512

var precedences = map[TokenType]int{
	tokenEQ:       precEquality,
	tokenNotEQ:    precEquality,
	tokenLT:       precComparison,
	tokenGT:       precComparison,
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenSlash:    precProduct,
	tokenAsterisk: precProduct,
	tokenLParen:   precCall,
	tokenLBracket: precCall,
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowestPrec
}
