package monkey

import (
	"maps"
	"slices"
)

// Env maps identifiers to values and chains to an enclosing scope. Closures
// hold on to the Env they were created in, so an Env lives as long as any
// function that captured it.
type Env struct {
	parent *Env
	values map[string]Value
}

// NewEnv returns an empty scope enclosed by parent, which may be nil.
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

// Get looks name up in this scope and then in each enclosing one.
func (e *Env) Get(name string) (Value, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if val, ok := scope.values[name]; ok {
			return val, true
		}
	}
	return Value{}, false
}

// Define binds name in this scope, shadowing any outer binding.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

func (e *Env) Parent() *Env { return e.parent }

// Names lists the identifiers bound directly in this scope, sorted.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.values))
}

// Len reports the number of bindings in this scope.
func (e *Env) Len() int { return len(e.values) }
