package monkey

import "log/slog"

func (exec *Execution) evalCallExpr(e *CallExpr, env *Env) Value {
	callee := exec.evalExpression(e.Callee, env)
	if isControl(callee) {
		return callee
	}
	args, ctrl := exec.evalExpressions(e.Args, env)
	if isControl(ctrl) {
		return ctrl
	}
	return exec.applyCallable(callee, args, e.Pos())
}

// applyCallable invokes a function or builtin. A return value raised inside a
// function body stops at this boundary; errors keep unwinding.
func (exec *Execution) applyCallable(callee Value, args []Value, pos Position) Value {
	switch callee.Kind() {
	case KindFunction:
		return exec.callFunction(callee.Function(), args, pos)
	case KindBuiltin:
		builtin := callee.Builtin()
		if errVal := exec.pushFrame(builtin.Name, pos); errVal.IsError() {
			return errVal
		}
		result := builtin.Fn(exec, args)
		exec.popFrame()
		return result
	default:
		return exec.errorAt(pos, "not a function: %s", callee.Kind())
	}
}

func (exec *Execution) callFunction(fn *Function, args []Value, pos Position) Value {
	if len(args) != len(fn.Params) {
		return exec.errorAt(pos, "wrong number of arguments: want=%d, got=%d", len(fn.Params), len(args))
	}
	if errVal := exec.pushFrame(fn.displayName(), pos); errVal.IsError() {
		return errVal
	}
	exec.logger.LogAttrs(exec.ctx, slog.LevelDebug, "call",
		slog.String("function", fn.displayName()),
		slog.Int("depth", len(exec.callStack)),
		slog.Int("params", len(fn.Params)),
	)

	callEnv := NewEnv(fn.Env)
	for i, param := range fn.Params {
		callEnv.Define(param.Name, args[i])
	}
	result := exec.evalBlock(fn.Body, callEnv)
	exec.popFrame()

	if result.Kind() == KindReturn {
		return result.Unwrap()
	}
	return result
}

func (exec *Execution) pushFrame(function string, pos Position) Value {
	if exec.recursionCap > 0 && len(exec.callStack) >= exec.recursionCap {
		exec.warnOnce("recursion limit reached", slog.Int("limit", exec.recursionCap))
		return exec.errorAt(pos, "recursion depth exceeded (limit %d)", exec.recursionCap)
	}
	exec.callStack = append(exec.callStack, callFrame{Function: function, Pos: pos})
	return Value{}
}

func (exec *Execution) popFrame() {
	if len(exec.callStack) == 0 {
		return
	}
	exec.callStack = exec.callStack[:len(exec.callStack)-1]
}

func (fn *Function) displayName() string {
	if fn.Name == "" {
		return "<anonymous>"
	}
	return fn.Name
}
