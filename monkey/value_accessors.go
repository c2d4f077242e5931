package monkey

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) IsError() bool { return v.kind == KindError }

func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return false
}

func (v Value) Int() int64 {
	if v.kind == KindInt {
		return v.data.(int64)
	}
	return 0
}

func (v Value) Str() string {
	if v.kind == KindString {
		return v.data.(string)
	}
	return ""
}

func (v Value) Array() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.data.([]Value)
}

func (v Value) Function() *Function {
	if v.kind != KindFunction {
		return nil
	}
	return v.data.(*Function)
}

func (v Value) Builtin() *Builtin {
	if v.kind != KindBuiltin {
		return nil
	}
	return v.data.(*Builtin)
}

// Unwrap returns the value carried by a return sentinel, or v itself.
func (v Value) Unwrap() Value {
	if v.kind == KindReturn {
		return v.data.(Value)
	}
	return v
}

// ErrorMessage returns the message of an error value.
func (v Value) ErrorMessage() string {
	if v.kind != KindError {
		return ""
	}
	return v.data.(errorData).message
}

// ErrorPos returns where an error value was raised, if known.
func (v Value) ErrorPos() Position {
	if v.kind != KindError {
		return Position{}
	}
	return v.data.(errorData).pos
}

// ErrorFrames returns the call stack captured when an error value was raised,
// innermost first.
func (v Value) ErrorFrames() []StackFrame {
	if v.kind != KindError {
		return nil
	}
	return v.data.(errorData).frames
}
