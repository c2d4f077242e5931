package monkey

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
)

const (
	defaultStepQuota      = 1_000_000
	defaultRecursionLimit = 512
)

// Config controls evaluation limits and where the engine writes.
type Config struct {
	// StepQuota caps the number of evaluation steps per Eval call.
	StepQuota int
	// RecursionLimit caps the depth of nested function calls.
	RecursionLimit int
	// Stdout receives the output of the puts builtin.
	Stdout io.Writer
	// Logger receives debug traces of calls and warnings when a limit trips.
	Logger *slog.Logger
}

// Engine evaluates programs with a fixed set of builtins and limits. An
// Engine is not safe for concurrent Eval calls that share an Env.
type Engine struct {
	config   Config
	builtins map[string]Value
}

// NewEngine constructs an Engine, filling in defaults for zero fields.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.StepQuota < 0 {
		return nil, fmt.Errorf("monkey: step quota must not be negative (got %d)", cfg.StepQuota)
	}
	if cfg.RecursionLimit < 0 {
		return nil, fmt.Errorf("monkey: recursion limit must not be negative (got %d)", cfg.RecursionLimit)
	}
	if cfg.StepQuota == 0 {
		cfg.StepQuota = defaultStepQuota
	}
	if cfg.RecursionLimit == 0 {
		cfg.RecursionLimit = defaultRecursionLimit
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	engine := &Engine{
		config:   cfg,
		builtins: make(map[string]Value),
	}

	engine.RegisterBuiltin("len", builtinLen)
	engine.RegisterBuiltin("first", builtinFirst)
	engine.RegisterBuiltin("last", builtinLast)
	engine.RegisterBuiltin("rest", builtinRest)
	engine.RegisterBuiltin("push", builtinPush)
	engine.RegisterBuiltin("puts", builtinPuts)

	return engine, nil
}

// MustNewEngine constructs an Engine or panics if the config is invalid.
func MustNewEngine(cfg Config) *Engine {
	engine, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return engine
}

// RegisterBuiltin registers a callable global available to scripts. Builtins
// are consulted only after the environment chain has no binding for a name.
func (e *Engine) RegisterBuiltin(name string, fn BuiltinFunc) {
	e.builtins[name] = NewBuiltin(name, fn)
}

// Builtins returns a copy of the registered builtin map.
func (e *Engine) Builtins() map[string]Value {
	out := make(map[string]Value, len(e.builtins))
	maps.Copy(out, e.builtins)
	return out
}

// BuiltinNames lists registered builtins, sorted.
func (e *Engine) BuiltinNames() []string {
	return slices.Sorted(maps.Keys(e.builtins))
}

// NewEnv returns an empty top-level scope, typically kept for the lifetime
// of a REPL session.
func (e *Engine) NewEnv() *Env {
	return NewEnv(nil)
}

// Compile parses source and returns ParseErrors if anything failed to parse.
func (e *Engine) Compile(source string) (*Program, error) {
	program, errs := Parse(source)
	if len(errs) > 0 {
		return nil, ParseErrors(errs)
	}
	return program, nil
}

// Eval evaluates program in env and returns the value of the last statement.
// Runtime faults come back as an error Value, never as a panic. A nil env
// evaluates in a fresh root scope.
func (e *Engine) Eval(ctx context.Context, program *Program, env *Env) Value {
	if env == nil {
		env = e.NewEnv()
	}
	exec := e.newExecution(ctx)
	return exec.evalProgram(program, env)
}

// Run compiles and evaluates source. Parse failures return ParseErrors and a
// runtime fault is returned as *RuntimeError.
func (e *Engine) Run(ctx context.Context, source string, env *Env) (Value, error) {
	program, err := e.Compile(source)
	if err != nil {
		return NewNull(), err
	}
	return e.Execute(ctx, program, source, env)
}

// Execute evaluates a compiled program like Eval but reports a runtime fault
// as *RuntimeError. source is used only to render the code frame.
func (e *Engine) Execute(ctx context.Context, program *Program, source string, env *Env) (Value, error) {
	result := e.Eval(ctx, program, env)
	if result.IsError() {
		return NewNull(), newRuntimeError(result, source)
	}
	return result, nil
}

// ConfigSummary provides a human-readable description of the interpreter limits.
func (e *Engine) ConfigSummary() string {
	return fmt.Sprintf("steps=%d recursion=%d", e.config.StepQuota, e.config.RecursionLimit)
}

func (e *Engine) newExecution(ctx context.Context) *Execution {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Execution{
		engine:       e,
		ctx:          ctx,
		quota:        e.config.StepQuota,
		recursionCap: e.config.RecursionLimit,
		logger:       e.config.Logger,
	}
}
