package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mgomes/monkey/monkey"
	"github.com/spf13/cobra"
)

type lintWarning struct {
	Function string
	Pos      monkey.Position
	Message  string
}

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <script>",
		Short: "Report statements that can never run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("monkey analyze: script path required")
			}

			scriptPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve script path: %w", err)
			}
			input, err := os.ReadFile(scriptPath)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}

			program, errs := monkey.Parse(string(input))
			if len(errs) > 0 {
				return fmt.Errorf("analysis parse failed: %w", monkey.ParseErrors(errs))
			}

			out := cmd.OutOrStdout()
			warnings := analyzeProgramWarnings(program)
			if len(warnings) == 0 {
				fmt.Fprintln(out, "No issues found")
				return nil
			}

			for _, warning := range warnings {
				line := max(warning.Pos.Line, 1)
				column := max(warning.Pos.Column, 1)
				fmt.Fprintf(out, "%s:%d:%d: %s (%s)\n", scriptPath, line, column, warning.Message, warning.Function)
			}
			return fmt.Errorf("analysis found %d issue(s)", len(warnings))
		},
	}
}

func analyzeProgramWarnings(program *monkey.Program) []lintWarning {
	warnings := make([]lintWarning, 0)
	lintStatements("<script>", program.Statements, &warnings)

	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Pos.Line != warnings[j].Pos.Line {
			return warnings[i].Pos.Line < warnings[j].Pos.Line
		}
		if warnings[i].Pos.Column != warnings[j].Pos.Column {
			return warnings[i].Pos.Column < warnings[j].Pos.Column
		}
		return warnings[i].Function < warnings[j].Function
	})
	return warnings
}

// lintStatements reports statements that follow one which always returns, and
// reports whether the list itself always returns.
func lintStatements(function string, statements []monkey.Statement, warnings *[]lintWarning) bool {
	terminated := false
	for _, stmt := range statements {
		if terminated {
			*warnings = append(*warnings, lintWarning{
				Function: function,
				Pos:      stmt.Pos(),
				Message:  "unreachable statement",
			})
			continue
		}
		if statementTerminates(function, stmt, warnings) {
			terminated = true
		}
	}
	return terminated
}

func statementTerminates(function string, stmt monkey.Statement, warnings *[]lintWarning) bool {
	switch typed := stmt.(type) {
	case *monkey.ReturnStmt:
		if typed.Value != nil {
			lintExpression(function, typed.Value, warnings)
		}
		return true
	case *monkey.LetStmt:
		if fn, ok := typed.Value.(*monkey.FunctionLiteral); ok {
			lintStatements(typed.Name.Name, fn.Body.Statements, warnings)
			return false
		}
		lintExpression(function, typed.Value, warnings)
		return false
	case *monkey.ExprStmt:
		if ifExpr, ok := typed.Expr.(*monkey.IfExpr); ok {
			return ifTerminates(function, ifExpr, warnings)
		}
		lintExpression(function, typed.Expr, warnings)
		return false
	case *monkey.BlockStmt:
		return lintStatements(function, typed.Statements, warnings)
	default:
		return false
	}
}

func ifTerminates(function string, expr *monkey.IfExpr, warnings *[]lintWarning) bool {
	lintExpression(function, expr.Condition, warnings)
	consequentTerminated := lintStatements(function, expr.Consequence.Statements, warnings)
	if expr.Alternative == nil {
		return false
	}
	alternateTerminated := lintStatements(function, expr.Alternative.Statements, warnings)
	return consequentTerminated && alternateTerminated
}

// lintExpression descends into nested function bodies and if branches.
func lintExpression(function string, expr monkey.Expression, warnings *[]lintWarning) {
	switch typed := expr.(type) {
	case *monkey.FunctionLiteral:
		lintStatements("<anonymous>", typed.Body.Statements, warnings)
	case *monkey.IfExpr:
		ifTerminates(function, typed, warnings)
	case *monkey.UnaryExpr:
		lintExpression(function, typed.Right, warnings)
	case *monkey.BinaryExpr:
		lintExpression(function, typed.Left, warnings)
		lintExpression(function, typed.Right, warnings)
	case *monkey.CallExpr:
		lintExpression(function, typed.Callee, warnings)
		for _, arg := range typed.Args {
			lintExpression(function, arg, warnings)
		}
	case *monkey.IndexExpr:
		lintExpression(function, typed.Object, warnings)
		lintExpression(function, typed.Index, warnings)
	case *monkey.ArrayLiteral:
		for _, elem := range typed.Elements {
			lintExpression(function, elem, warnings)
		}
	}
}
