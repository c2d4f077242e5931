package monkey

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Execution holds the state of a single Eval call: step accounting, the call
// stack used for error traces, and the context that can cancel it.
type Execution struct {
	engine       *Engine
	ctx          context.Context
	quota        int
	recursionCap int
	steps        int
	callStack    []callFrame
	logger       *slog.Logger
	halted       bool
}

type callFrame struct {
	Function string
	Pos      Position
}

// Stdout is where builtins that print should write.
func (exec *Execution) Stdout() io.Writer {
	return exec.engine.config.Stdout
}

// Errorf builds an error value positioned at the innermost active call.
func (exec *Execution) Errorf(format string, args ...any) Value {
	pos := Position{}
	if n := len(exec.callStack); n > 0 {
		pos = exec.callStack[n-1].Pos
	}
	return exec.errorAt(pos, format, args...)
}

func (exec *Execution) errorAt(pos Position, format string, args ...any) Value {
	return Value{kind: KindError, data: errorData{
		message: fmt.Sprintf(format, args...),
		pos:     pos,
		frames:  exec.snapshotFrames(pos),
	}}
}

func (exec *Execution) snapshotFrames(pos Position) []StackFrame {
	if len(exec.callStack) == 0 {
		return []StackFrame{{Function: "<script>", Pos: pos}}
	}
	frames := make([]StackFrame, 0, len(exec.callStack)+1)
	current := exec.callStack[len(exec.callStack)-1]
	frames = append(frames, StackFrame{Function: current.Function, Pos: pos})
	for i := len(exec.callStack) - 1; i >= 0; i-- {
		frames = append(frames, StackFrame(exec.callStack[i]))
	}
	return frames
}

// step charges one unit of work and reports a limit or cancellation as an
// error value.
func (exec *Execution) step(pos Position) Value {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		exec.warnOnce("step quota exceeded", slog.Int("quota", exec.quota))
		return exec.errorAt(pos, "step quota exceeded (%d)", exec.quota)
	}
	select {
	case <-exec.ctx.Done():
		exec.warnOnce("evaluation cancelled", slog.Any("cause", exec.ctx.Err()))
		return exec.errorAt(pos, "evaluation cancelled: %v", exec.ctx.Err())
	default:
	}
	return Value{}
}

func (exec *Execution) warnOnce(msg string, attrs ...slog.Attr) {
	if exec.halted {
		return
	}
	exec.halted = true
	exec.logger.LogAttrs(exec.ctx, slog.LevelWarn, msg, attrs...)
}

// isControl reports whether v must stop the enclosing evaluation and be
// passed upward unchanged.
func isControl(v Value) bool {
	return v.kind == KindReturn || v.kind == KindError
}

func (exec *Execution) evalProgram(program *Program, env *Env) Value {
	result := NewNull()
	for _, stmt := range program.Statements {
		result = exec.evalStatement(stmt, env)
		switch result.kind {
		case KindReturn:
			return result.Unwrap()
		case KindError:
			return result
		}
	}
	return result
}

// evalBlock evaluates statements in order and yields the last value. Return
// and error values end the block early and are handed back still wrapped, so
// the function call that owns the block can unwrap them.
func (exec *Execution) evalBlock(block *BlockStmt, env *Env) Value {
	result := NewNull()
	for _, stmt := range block.Statements {
		result = exec.evalStatement(stmt, env)
		if isControl(result) {
			return result
		}
	}
	return result
}

func (exec *Execution) evalStatement(stmt Statement, env *Env) Value {
	if errVal := exec.step(stmt.Pos()); errVal.IsError() {
		return errVal
	}
	switch s := stmt.(type) {
	case *ExprStmt:
		return exec.evalExpression(s.Expr, env)
	case *LetStmt:
		val := exec.evalExpression(s.Value, env)
		if isControl(val) {
			return val
		}
		if fn := val.Function(); fn != nil && fn.Name == "" {
			fn.Name = s.Name.Name
		}
		env.Define(s.Name.Name, val)
		return NewNull()
	case *ReturnStmt:
		if s.Value == nil {
			return NewReturn(NewNull())
		}
		val := exec.evalExpression(s.Value, env)
		if isControl(val) {
			return val
		}
		return NewReturn(val)
	case *BlockStmt:
		return exec.evalBlock(s, env)
	default:
		return exec.errorAt(stmt.Pos(), "unsupported statement %T", stmt)
	}
}

func (exec *Execution) evalExpression(expr Expression, env *Env) Value {
	if errVal := exec.step(expr.Pos()); errVal.IsError() {
		return errVal
	}
	switch e := expr.(type) {
	case *Identifier:
		return exec.evalIdentifier(e, env)
	case *IntegerLiteral:
		return NewInt(e.Value)
	case *StringLiteral:
		return NewString(e.Value)
	case *BoolLiteral:
		return NewBool(e.Value)
	case *ArrayLiteral:
		elems, errVal := exec.evalExpressions(e.Elements, env)
		if isControl(errVal) {
			return errVal
		}
		return NewArray(elems)
	case *UnaryExpr:
		return exec.evalUnaryExpr(e, env)
	case *BinaryExpr:
		return exec.evalBinaryExpr(e, env)
	case *IfExpr:
		return exec.evalIfExpr(e, env)
	case *FunctionLiteral:
		return NewFunction(&Function{Params: e.Params, Body: e.Body, Env: env})
	case *CallExpr:
		return exec.evalCallExpr(e, env)
	case *IndexExpr:
		return exec.evalIndexExpr(e, env)
	default:
		return exec.errorAt(expr.Pos(), "unsupported expression %T", expr)
	}
}

func (exec *Execution) evalIdentifier(e *Identifier, env *Env) Value {
	if val, ok := env.Get(e.Name); ok {
		return val
	}
	if builtin, ok := exec.engine.builtins[e.Name]; ok {
		return builtin
	}
	return exec.errorAt(e.Pos(), "identifier not found: %s", e.Name)
}

// evalExpressions evaluates exprs left to right. The second result is a
// control value when one of them returned or failed, otherwise null.
func (exec *Execution) evalExpressions(exprs []Expression, env *Env) ([]Value, Value) {
	out := make([]Value, 0, len(exprs))
	for _, expr := range exprs {
		val := exec.evalExpression(expr, env)
		if isControl(val) {
			return nil, val
		}
		out = append(out, val)
	}
	return out, NewNull()
}

func (exec *Execution) evalIfExpr(e *IfExpr, env *Env) Value {
	cond := exec.evalExpression(e.Condition, env)
	if isControl(cond) {
		return cond
	}
	if cond.Kind() != KindBool {
		return exec.errorAt(e.Condition.Pos(), "non-boolean condition: %s", cond.Kind())
	}
	if cond.Bool() {
		return exec.evalBlock(e.Consequence, env)
	}
	if e.Alternative != nil {
		return exec.evalBlock(e.Alternative, env)
	}
	return NewNull()
}
