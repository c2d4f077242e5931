// Package monkey implements the Monkey language: a lexer, a Pratt parser and
// a tree-walking evaluator. The language supports:
//   - Bindings via `let name = expr;` and closures via `fn(a, b) { ... }`.
//   - Literals for integers, strings, booleans and arrays.
//   - Prefix operators (!, -) and infix arithmetic and comparison
//     (+, -, *, /, <, >, ==, !=) with parentheses for grouping.
//   - Conditionals via `if (cond) { ... } else { ... }` as expressions.
//   - Function calls, array indexing via `array[expr]` and early `return`.
//   - Built-ins `len`, `first`, `last`, `rest`, `push` and `puts`.
//
// Runtime faults are ordinary error values that propagate to the caller. The
// Engine enforces a step quota and a recursion limit and honours context
// cancellation.
package monkey
