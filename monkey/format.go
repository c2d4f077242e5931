package monkey

import (
	"strconv"
	"strings"
)

const formatIndent = "  "

// Format parses source and prints it back in canonical layout: one statement
// per line terminated by a semicolon, two-space indented blocks and only the
// parentheses the grammar needs.
func Format(source string) (string, error) {
	program, errs := Parse(source)
	if len(errs) > 0 {
		return "", ParseErrors(errs)
	}
	return FormatProgram(program), nil
}

// FormatProgram prints program in canonical layout.
func FormatProgram(program *Program) string {
	f := &formatter{}
	for _, stmt := range program.Statements {
		f.statement(stmt)
		f.b.WriteString("\n")
	}
	return f.b.String()
}

type formatter struct {
	b     strings.Builder
	depth int
}

func (f *formatter) indent() {
	f.b.WriteString(strings.Repeat(formatIndent, f.depth))
}

func (f *formatter) statement(stmt Statement) {
	f.indent()
	switch s := stmt.(type) {
	case *LetStmt:
		f.b.WriteString("let ")
		f.b.WriteString(s.Name.Name)
		f.b.WriteString(" = ")
		f.expression(s.Value, lowestPrec, false)
		f.b.WriteString(";")
	case *ReturnStmt:
		if s.Value == nil {
			f.b.WriteString("return;")
			return
		}
		f.b.WriteString("return ")
		f.expression(s.Value, lowestPrec, false)
		f.b.WriteString(";")
	case *ExprStmt:
		f.expression(s.Expr, lowestPrec, false)
		f.b.WriteString(";")
	case *BlockStmt:
		f.block(s)
	}
}

func (f *formatter) block(block *BlockStmt) {
	if len(block.Statements) == 0 {
		f.b.WriteString("{}")
		return
	}
	f.b.WriteString("{\n")
	f.depth++
	for _, stmt := range block.Statements {
		f.statement(stmt)
		f.b.WriteString("\n")
	}
	f.depth--
	f.indent()
	f.b.WriteString("}")
}

// expression prints expr as an operand bound at parent precedence. rightSide
// marks the right operand of an infix operator, where equal precedence needs
// grouping because every operator associates to the left.
func (f *formatter) expression(expr Expression, parent int, rightSide bool) {
	own := expressionPrecedence(expr)
	wrap := own < parent || (rightSide && own == parent)
	if wrap {
		f.b.WriteString("(")
	}

	switch e := expr.(type) {
	case *Identifier:
		f.b.WriteString(e.Name)
	case *IntegerLiteral:
		f.b.WriteString(strconv.FormatInt(e.Value, 10))
	case *StringLiteral:
		f.b.WriteString(`"` + e.Value + `"`)
	case *BoolLiteral:
		f.b.WriteString(strconv.FormatBool(e.Value))
	case *ArrayLiteral:
		f.b.WriteString("[")
		f.list(e.Elements)
		f.b.WriteString("]")
	case *UnaryExpr:
		f.b.WriteString(string(e.Operator))
		f.expression(e.Right, precPrefix, false)
	case *BinaryExpr:
		prec := precedences[e.Operator]
		f.expression(e.Left, prec, false)
		f.b.WriteString(" " + string(e.Operator) + " ")
		f.expression(e.Right, prec, true)
	case *IfExpr:
		f.b.WriteString("if (")
		f.expression(e.Condition, lowestPrec, false)
		f.b.WriteString(") ")
		f.block(e.Consequence)
		if e.Alternative != nil {
			f.b.WriteString(" else ")
			f.block(e.Alternative)
		}
	case *FunctionLiteral:
		f.b.WriteString("fn(")
		f.b.WriteString(joinIdentifiers(e.Params, ", "))
		f.b.WriteString(") ")
		f.block(e.Body)
	case *CallExpr:
		f.expression(e.Callee, precCall, false)
		f.b.WriteString("(")
		f.list(e.Args)
		f.b.WriteString(")")
	case *IndexExpr:
		f.expression(e.Object, precCall, false)
		f.b.WriteString("[")
		f.expression(e.Index, lowestPrec, false)
		f.b.WriteString("]")
	}

	if wrap {
		f.b.WriteString(")")
	}
}

func (f *formatter) list(exprs []Expression) {
	for i, expr := range exprs {
		if i > 0 {
			f.b.WriteString(", ")
		}
		f.expression(expr, lowestPrec, false)
	}
}

func expressionPrecedence(expr Expression) int {
	switch e := expr.(type) {
	case *BinaryExpr:
		return precedences[e.Operator]
	case *UnaryExpr:
		return precPrefix
	default:
		return precCall + 1
	}
}
