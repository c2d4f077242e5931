package monkey

func (exec *Execution) evalUnaryExpr(e *UnaryExpr, env *Env) Value {
	right := exec.evalExpression(e.Right, env)
	if isControl(right) {
		return right
	}
	switch e.Operator {
	case tokenBang:
		switch right.Kind() {
		case KindNull:
			return NewBool(true)
		case KindBool:
			return NewBool(!right.Bool())
		default:
			return NewBool(false)
		}
	case tokenMinus:
		if right.Kind() != KindInt {
			return exec.errorAt(e.Pos(), "unknown operator: -%s", right.Kind())
		}
		return NewInt(-right.Int())
	default:
		return exec.errorAt(e.Pos(), "unknown operator: %s%s", e.Operator, right.Kind())
	}
}

func (exec *Execution) evalBinaryExpr(e *BinaryExpr, env *Env) Value {
	left := exec.evalExpression(e.Left, env)
	if isControl(left) {
		return left
	}
	right := exec.evalExpression(e.Right, env)
	if isControl(right) {
		return right
	}

	switch {
	case left.Kind() == KindInt && right.Kind() == KindInt:
		return exec.evalIntegerInfix(e, left.Int(), right.Int())
	case left.Kind() == KindString && right.Kind() == KindString:
		return exec.evalStringInfix(e, left.Str(), right.Str())
	case e.Operator == tokenEQ:
		return NewBool(left.Equal(right))
	case e.Operator == tokenNotEQ:
		return NewBool(!left.Equal(right))
	case left.Kind() != right.Kind():
		return exec.errorAt(e.Pos(), "type mismatch: %s %s %s", left.Kind(), e.Operator, right.Kind())
	default:
		return exec.errorAt(e.Pos(), "unknown operator: %s %s %s", left.Kind(), e.Operator, right.Kind())
	}
}

// Integer arithmetic wraps on overflow like Go's int64.
func (exec *Execution) evalIntegerInfix(e *BinaryExpr, left, right int64) Value {
	switch e.Operator {
	case tokenPlus:
		return NewInt(left + right)
	case tokenMinus:
		return NewInt(left - right)
	case tokenAsterisk:
		return NewInt(left * right)
	case tokenSlash:
		if right == 0 {
			return exec.errorAt(e.Pos(), "division by zero")
		}
		return NewInt(left / right)
	case tokenLT:
		return NewBool(left < right)
	case tokenGT:
		return NewBool(left > right)
	case tokenEQ:
		return NewBool(left == right)
	case tokenNotEQ:
		return NewBool(left != right)
	default:
		return exec.errorAt(e.Pos(), "unknown operator: INTEGER %s INTEGER", e.Operator)
	}
}

func (exec *Execution) evalStringInfix(e *BinaryExpr, left, right string) Value {
	switch e.Operator {
	case tokenPlus:
		return NewString(left + right)
	case tokenEQ:
		return NewBool(left == right)
	case tokenNotEQ:
		return NewBool(left != right)
	default:
		return exec.errorAt(e.Pos(), "unknown operator: STRING %s STRING", e.Operator)
	}
}

func (exec *Execution) evalIndexExpr(e *IndexExpr, env *Env) Value {
	obj := exec.evalExpression(e.Object, env)
	if isControl(obj) {
		return obj
	}
	idx := exec.evalExpression(e.Index, env)
	if isControl(idx) {
		return idx
	}
	if obj.Kind() != KindArray {
		return exec.errorAt(e.Object.Pos(), "index operator not supported: %s", obj.Kind())
	}
	if idx.Kind() != KindInt {
		return exec.errorAt(e.Index.Pos(), "index operator not supported: %s[%s]", obj.Kind(), idx.Kind())
	}
	arr := obj.Array()
	i := idx.Int()
	if i < 0 || i >= int64(len(arr)) {
		return NewNull()
	}
	return arr[i]
}
