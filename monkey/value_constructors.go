package monkey

import "fmt"

func NewNull() Value           { return Value{kind: KindNull} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value     { return Value{kind: KindInt, data: i} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }
func NewArray(a []Value) Value { return Value{kind: KindArray, data: a} }
func NewFunction(fn *Function) Value {
	return Value{kind: KindFunction, data: fn}
}

func NewBuiltin(name string, fn BuiltinFunc) Value {
	return Value{kind: KindBuiltin, data: &Builtin{Name: name, Fn: fn}}
}

// NewReturn boxes v so enclosing blocks stop evaluating. A return value is
// never boxed twice.
func NewReturn(v Value) Value {
	if v.kind == KindReturn {
		return v
	}
	return Value{kind: KindReturn, data: v}
}

func NewError(format string, args ...any) Value {
	return Value{kind: KindError, data: errorData{message: fmt.Sprintf(format, args...)}}
}
