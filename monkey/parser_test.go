package monkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) *Program {
	t.Helper()
	program, errs := Parse(source)
	require.Empty(t, errs, "unexpected parse errors: %v", ParseErrors(errs))
	return program
}

func singleExpression(t *testing.T, source string) Expression {
	t.Helper()
	program := mustParse(t, source)
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ExprStmt)
	require.True(t, ok, "expected expression statement, got %T", program.Statements[0])
	return stmt.Expr
}

func TestParseLetStatements(t *testing.T) {
	tests := []struct {
		input string
		name  string
		value string
	}{
		{input: "let x = 5;", name: "x", value: "5"},
		{input: "let y = 10;", name: "y", value: "10"},
		{input: "let foobar = 838383;", name: "foobar", value: "838383"},
		{input: "let z = x + y", name: "z", value: "(x + y)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := mustParse(t, tt.input)
			require.Len(t, program.Statements, 1)
			let, ok := program.Statements[0].(*LetStmt)
			require.True(t, ok, "expected let statement, got %T", program.Statements[0])
			assert.Equal(t, tt.name, let.Name.Name)
			assert.Equal(t, tt.value, let.Value.String())
		})
	}
}

func TestParseReturnStatements(t *testing.T) {
	program := mustParse(t, "return 5;")
	require.Len(t, program.Statements, 1)
	ret, ok := program.Statements[0].(*ReturnStmt)
	require.True(t, ok)
	assert.Equal(t, "5", ret.Value.String())

	program = mustParse(t, "return;")
	require.Len(t, program.Statements, 1)
	ret, ok = program.Statements[0].(*ReturnStmt)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestParseIdentifierAndIntegerStatements(t *testing.T) {
	ident, ok := singleExpression(t, "foobar;").(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "foobar", ident.Name)

	lit, ok := singleExpression(t, "5;").(*IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), lit.Value)
}

func TestParseLiterals(t *testing.T) {
	str, ok := singleExpression(t, `"hello world"`).(*StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello world", str.Value)

	b, ok := singleExpression(t, "false").(*BoolLiteral)
	require.True(t, ok)
	assert.False(t, b.Value)

	arr, ok := singleExpression(t, "[1, 2 * 2, 3 + 3]").(*ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, "(2 * 2)", arr.Elements[1].String())
}

func TestOperatorPrecedenceRendering(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)\n((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true == false", "(true == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.input).String())
		})
	}
}

func TestParseIfExpression(t *testing.T) {
	expr, ok := singleExpression(t, "if (x < y) { x } else { y }").(*IfExpr)
	require.True(t, ok)
	assert.Equal(t, "(x < y)", expr.Condition.String())
	require.Len(t, expr.Consequence.Statements, 1)
	require.NotNil(t, expr.Alternative)
	assert.Equal(t, "y", expr.Alternative.Statements[0].String())

	expr, ok = singleExpression(t, "if (x) { }").(*IfExpr)
	require.True(t, ok)
	assert.Empty(t, expr.Consequence.Statements)
	assert.Nil(t, expr.Alternative)
}

func TestParseFunctionLiteral(t *testing.T) {
	fn, ok := singleExpression(t, "fn(x, y) { x + y; }").(*FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "x", fn.Params[0].Name)
	assert.Equal(t, "y", fn.Params[1].Name)
	assert.Equal(t, "fn(x, y) { (x + y) }", fn.String())

	for input, want := range map[string][]string{
		"fn() {};":        {},
		"fn(x) {};":       {"x"},
		"fn(x, y, z) {};": {"x", "y", "z"},
	} {
		fn, ok := singleExpression(t, input).(*FunctionLiteral)
		require.True(t, ok)
		names := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			names[i] = p.Name
		}
		assert.Equal(t, want, names, input)
	}
}

func TestParseCallAndIndex(t *testing.T) {
	call, ok := singleExpression(t, "add(1, 2 * 3, 4 + 5);").(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "add", call.Callee.String())
	require.Len(t, call.Args, 3)
	assert.Equal(t, "(2 * 3)", call.Args[1].String())

	idx, ok := singleExpression(t, "myArray[1 + 1]").(*IndexExpr)
	require.True(t, ok)
	assert.Equal(t, "myArray", idx.Object.String())
	assert.Equal(t, "(1 + 1)", idx.Index.String())
}

func TestParseErrorsAreCollected(t *testing.T) {
	_, errs := Parse("let x 5;\nlet = 10;\nlet 838383;")
	require.Len(t, errs, 4)
	assert.Equal(t, UnexpectedToken, errs[0].Kind)
	assert.Equal(t, `expected next token to be "=", got integer 5 instead`, errs[0].Msg)
	assert.Equal(t, Position{Line: 1, Column: 7}, errs[0].Pos)
	assert.Equal(t, `expected next token to be identifier, got "=" instead`, errs[1].Msg)
	assert.Equal(t, NoPrefixParse, errs[2].Kind)
	assert.Equal(t, `no prefix parse function for "=" found`, errs[2].Msg)
	assert.Equal(t, "expected next token to be identifier, got integer 838383 instead", errs[3].Msg)
}

func TestParseErrorKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ParseErrorKind
	}{
		{input: "99999999999999999999", kind: InvalidInteger},
		{input: "@", kind: IllegalToken},
		{input: `"open`, kind: IllegalToken},
		{input: strings.Repeat("(", 600) + "1" + strings.Repeat(")", 600), kind: NestingTooDeep},
		{input: "fn(x { x }", kind: UnexpectedToken},
		{input: "if (x) { 1", kind: UnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			_, errs := Parse(tt.input)
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.kind, errs[0].Kind)
		})
	}
}

func TestParseErrorRendersCodeFrame(t *testing.T) {
	_, errs := Parse("let x = 1;\nlet y 2;")
	require.Len(t, errs, 1)
	want := `parse error at 2:7: expected next token to be "=", got integer 2 instead` + "\n" +
		" 2 | let y 2;\n" +
		"   |       ^"
	assert.Equal(t, want, errs[0].Error())
	assert.Equal(t, want, ParseErrors(errs).Error())
}

func TestParserRecoversAfterBadStatement(t *testing.T) {
	program, errs := Parse("let = 1; let ok = 2;")
	require.NotEmpty(t, errs)
	var names []string
	for _, stmt := range program.Statements {
		if let, ok := stmt.(*LetStmt); ok {
			names = append(names, let.Name.Name)
		}
	}
	assert.Equal(t, []string{"ok"}, names)
}
