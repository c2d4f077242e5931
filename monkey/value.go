package monkey

// ValueKind tags the runtime shape of a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindString
	KindArray
	KindFunction
	KindBuiltin
	KindReturn
	KindError
)

// Value is the result of evaluating any expression. KindReturn and KindError
// are control values: they only ever appear as the outermost result while
// evaluation unwinds and are never stored inside arrays or environments.
type Value struct {
	kind ValueKind
	data any
}

// Function is a closure: a function literal paired with the environment that
// was active where it was evaluated.
type Function struct {
	Name   string
	Params []*Identifier
	Body   *BlockStmt
	Env    *Env
}

// Builtin is a host function exposed to scripts.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

type BuiltinFunc func(exec *Execution, args []Value) Value

type errorData struct {
	message string
	pos     Position
	frames  []StackFrame
}
