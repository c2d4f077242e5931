package monkey

import "fmt"

func builtinLen(exec *Execution, args []Value) Value {
	if len(args) != 1 {
		return exec.Errorf("wrong number of arguments: want=1, got=%d", len(args))
	}
	switch arg := args[0]; arg.Kind() {
	case KindString:
		return NewInt(int64(len(arg.Str())))
	case KindArray:
		return NewInt(int64(len(arg.Array())))
	default:
		return exec.Errorf("argument to `len` not supported, got %s", arg.Kind())
	}
}

func builtinFirst(exec *Execution, args []Value) Value {
	arr, errVal := arrayArg(exec, "first", args)
	if errVal.IsError() {
		return errVal
	}
	if len(arr) == 0 {
		return NewNull()
	}
	return arr[0]
}

func builtinLast(exec *Execution, args []Value) Value {
	arr, errVal := arrayArg(exec, "last", args)
	if errVal.IsError() {
		return errVal
	}
	if len(arr) == 0 {
		return NewNull()
	}
	return arr[len(arr)-1]
}

// builtinRest returns a new array without the first element, or null for an
// empty array.
func builtinRest(exec *Execution, args []Value) Value {
	arr, errVal := arrayArg(exec, "rest", args)
	if errVal.IsError() {
		return errVal
	}
	if len(arr) == 0 {
		return NewNull()
	}
	out := make([]Value, len(arr)-1)
	copy(out, arr[1:])
	return NewArray(out)
}

// builtinPush returns a copy of the array with the value appended. The
// argument array is left untouched.
func builtinPush(exec *Execution, args []Value) Value {
	if len(args) != 2 {
		return exec.Errorf("wrong number of arguments: want=2, got=%d", len(args))
	}
	if args[0].Kind() != KindArray {
		return exec.Errorf("argument to `push` must be ARRAY, got %s", args[0].Kind())
	}
	arr := args[0].Array()
	out := make([]Value, len(arr), len(arr)+1)
	copy(out, arr)
	return NewArray(append(out, args[1]))
}

func builtinPuts(exec *Execution, args []Value) Value {
	w := exec.Stdout()
	for _, arg := range args {
		if _, err := fmt.Fprintln(w, arg.String()); err != nil {
			return exec.Errorf("puts: %v", err)
		}
	}
	return NewNull()
}

func arrayArg(exec *Execution, name string, args []Value) ([]Value, Value) {
	if len(args) != 1 {
		return nil, exec.Errorf("wrong number of arguments: want=1, got=%d", len(args))
	}
	if args[0].Kind() != KindArray {
		return nil, exec.Errorf("argument to `%s` must be ARRAY, got %s", name, args[0].Kind())
	}
	return args[0].Array(), NewNull()
}
