package main

import (
	"context"
	"slices"
	"strings"

	"github.com/mgomes/monkey/monkey"
)

// replSession evaluates one line at a time against an environment that lives
// as long as the session.
type replSession struct {
	engine *monkey.Engine
	env    *monkey.Env
}

// evalOutcome is what a line produced. No lines means nothing to print.
type evalOutcome struct {
	lines []string
	isErr bool
}

func newREPLSession(engine *monkey.Engine) *replSession {
	return &replSession{engine: engine, env: engine.NewEnv()}
}

// eval parses line and, when it parsed cleanly, evaluates it. Parse errors are
// all reported and the line is not evaluated. A line whose last statement is a
// let binding prints nothing unless it failed.
func (s *replSession) eval(ctx context.Context, line string) evalOutcome {
	program, errs := monkey.Parse(line)
	if len(errs) > 0 {
		lines := make([]string, len(errs))
		for i, err := range errs {
			lines[i] = err.Error()
		}
		return evalOutcome{lines: lines, isErr: true}
	}

	result := s.engine.Eval(ctx, program, s.env)
	if result.IsError() {
		return evalOutcome{lines: []string{result.String()}, isErr: true}
	}
	if silentProgram(program) {
		return evalOutcome{}
	}
	return evalOutcome{lines: []string{result.String()}}
}

func silentProgram(program *monkey.Program) bool {
	if len(program.Statements) == 0 {
		return true
	}
	_, isLet := program.Statements[len(program.Statements)-1].(*monkey.LetStmt)
	return isLet
}

func (s *replSession) reset() {
	s.env = s.engine.NewEnv()
}

type binding struct {
	name  string
	value monkey.Value
}

func (s *replSession) bindings() []binding {
	names := s.env.Names()
	out := make([]binding, 0, len(names))
	for _, name := range names {
		val, _ := s.env.Get(name)
		out = append(out, binding{name: name, value: val})
	}
	return out
}

// completions lists keywords, builtins and bound names starting with prefix.
func (s *replSession) completions(prefix string) []string {
	candidates := slices.Concat(monkey.Keywords(), s.engine.BuiltinNames(), s.env.Names())
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
