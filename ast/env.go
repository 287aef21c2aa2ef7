// Package ast defines the Snowball abstract syntax tree and the code
// generator that lowers it to Go source. Each node type implements
// Generate, producing a fragment of Go text; Env carries the ambient
// state (direction, fresh-name and among-table counters, and the
// module/class/init emission buffers) that generation is threaded
// through.
package ast

import "fmt"

// Env is the code generation environment for one Compile call. It must
// not be shared between concurrent translations.
type Env struct {
	// Direction is +1 in forward mode, -1 in backward mode.
	Direction int

	// Debug marks that external entry points return the StringMachine and
	// the Program that ran, for inspection, rather than just the result
	// string.
	Debug bool

	// ModuleCode holds top-level declarations emitted outside the Program
	// type: grouping constants and package-level translation functions.
	ModuleCode []string

	// Fields holds one struct field declaration per declared
	// string/integer/boolean, emitted into the Program type.
	Fields []string

	// InitCode holds one entry per declared string/boolean whose zero
	// value isn't its Snowball default, emitted into Program's
	// constructor.
	InitCode []string

	// ClassCode holds one entry per compiled routine method.
	ClassCode []string

	// Err records the first generation-time failure (currently only a
	// `reverse` command, which the grammar accepts but code generation
	// does not support). Callers of Generate must check it afterward.
	Err error

	varIndex   int
	amongIndex int
}

// NewEnv returns an Env ready for a forward-mode translation.
func NewEnv() *Env {
	return &Env{Direction: 1}
}

// FreshVar returns a new, unique local variable name.
func (e *Env) FreshVar() string {
	name := fmt.Sprintf("v%d", e.varIndex)
	e.varIndex++
	return name
}

// ClaimAmongIndex returns a new, unique among-table index.
func (e *Env) ClaimAmongIndex() int {
	e.amongIndex++
	return e.amongIndex
}

// Backward runs fn with Direction flipped, restoring the previous
// direction on return (including on panic) — the RAII discipline
// BackwardsNode and BackwardModeNode rely on.
func (e *Env) Backward(fn func()) {
	e.Direction *= -1
	defer func() { e.Direction *= -1 }()
	fn()
}
