package monkey

import (
	"strconv"
	"strings"
)

type Node interface {
	Pos() Position
	String() string
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

// Program is the root of every parse.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return p.Statements[0].Pos()
}

func (p *Program) String() string {
	parts := make([]string, len(p.Statements))
	for i, stmt := range p.Statements {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, "\n")
}

type LetStmt struct {
	Name     *Identifier
	Value    Expression
	position Position
}

func (s *LetStmt) stmtNode()     {}
func (s *LetStmt) Pos() Position { return s.position }
func (s *LetStmt) String() string {
	return "let " + s.Name.Name + " = " + nodeString(s.Value) + ";"
}

type ReturnStmt struct {
	Value    Expression
	position Position
}

func (s *ReturnStmt) stmtNode()     {}
func (s *ReturnStmt) Pos() Position { return s.position }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

type ExprStmt struct {
	Expr     Expression
	position Position
}

func (s *ExprStmt) stmtNode()      {}
func (s *ExprStmt) Pos() Position  { return s.position }
func (s *ExprStmt) String() string { return nodeString(s.Expr) }

// BlockStmt is the body of a function or an if branch. It evaluates to the
// value of its last statement.
type BlockStmt struct {
	Statements []Statement
	position   Position
}

func (s *BlockStmt) stmtNode()     {}
func (s *BlockStmt) Pos() Position { return s.position }
func (s *BlockStmt) String() string {
	if len(s.Statements) == 0 {
		return "{ }"
	}
	parts := make([]string, len(s.Statements))
	for i, stmt := range s.Statements {
		parts[i] = stmt.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) exprNode()      {}
func (e *Identifier) Pos() Position  { return e.position }
func (e *Identifier) String() string { return e.Name }

type IntegerLiteral struct {
	Value    int64
	position Position
}

func (e *IntegerLiteral) exprNode()      {}
func (e *IntegerLiteral) Pos() Position  { return e.position }
func (e *IntegerLiteral) String() string { return strconv.FormatInt(e.Value, 10) }

type StringLiteral struct {
	Value    string
	position Position
}

func (e *StringLiteral) exprNode()      {}
func (e *StringLiteral) Pos() Position  { return e.position }
func (e *StringLiteral) String() string { return `"` + e.Value + `"` }

type BoolLiteral struct {
	Value    bool
	position Position
}

func (e *BoolLiteral) exprNode()      {}
func (e *BoolLiteral) Pos() Position  { return e.position }
func (e *BoolLiteral) String() string { return strconv.FormatBool(e.Value) }

type UnaryExpr struct {
	Operator TokenType
	Right    Expression
	position Position
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.position }
func (e *UnaryExpr) String() string {
	return "(" + string(e.Operator) + nodeString(e.Right) + ")"
}

type BinaryExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }
func (e *BinaryExpr) String() string {
	return "(" + nodeString(e.Left) + " " + string(e.Operator) + " " + nodeString(e.Right) + ")"
}

type IfExpr struct {
	Condition   Expression
	Consequence *BlockStmt
	Alternative *BlockStmt
	position    Position
}

func (e *IfExpr) exprNode()     {}
func (e *IfExpr) Pos() Position { return e.position }
func (e *IfExpr) String() string {
	out := "if " + nodeString(e.Condition) + " " + e.Consequence.String()
	if e.Alternative != nil {
		out += " else " + e.Alternative.String()
	}
	return out
}

type FunctionLiteral struct {
	Params   []*Identifier
	Body     *BlockStmt
	position Position
}

func (e *FunctionLiteral) exprNode()     {}
func (e *FunctionLiteral) Pos() Position { return e.position }
func (e *FunctionLiteral) String() string {
	return "fn(" + joinIdentifiers(e.Params, ", ") + ") " + e.Body.String()
}

type CallExpr struct {
	Callee   Expression
	Args     []Expression
	position Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }
func (e *CallExpr) String() string {
	return nodeString(e.Callee) + "(" + joinExpressions(e.Args) + ")"
}

type ArrayLiteral struct {
	Elements []Expression
	position Position
}

func (e *ArrayLiteral) exprNode()      {}
func (e *ArrayLiteral) Pos() Position  { return e.position }
func (e *ArrayLiteral) String() string { return "[" + joinExpressions(e.Elements) + "]" }

type IndexExpr struct {
	Object   Expression
	Index    Expression
	position Position
}

func (e *IndexExpr) exprNode()     {}
func (e *IndexExpr) Pos() Position { return e.position }
func (e *IndexExpr) String() string {
	return "(" + nodeString(e.Object) + "[" + nodeString(e.Index) + "])"
}

func nodeString(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, expr := range exprs {
		parts[i] = nodeString(expr)
	}
	return strings.Join(parts, ", ")
}

func joinIdentifiers(idents []*Identifier, sep string) string {
	names := make([]string, len(idents))
	for i, ident := range idents {
		names[i] = ident.Name
	}
	return strings.Join(names, sep)
}
