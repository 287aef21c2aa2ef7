package ast

import "fmt"

// Node is one construct in a parsed Snowball program. Generate lowers the
// node (and, transitively, its children) to Go source text; for identical
// AST and Env state, Generate must be deterministic.
type Node interface {
	Generate(env *Env) string
}

// pseudoCodeNode is embedded by node types whose Generate is "fill in a
// Template with this node's children's generated code". Direction-
// sensitive nodes set Backward to a distinct template; Generate picks it
// when env.Direction == -1.
type pseudoCodeNode struct {
	Forward  Template
	Backward *Template
	Children []Node
}

func (n pseudoCodeNode) generate(env *Env) string {
	tpl := n.Forward
	if env.Direction == -1 && n.Backward != nil {
		tpl = *n.Backward
	}
	children := make([]string, len(n.Children))
	for i, c := range n.Children {
		children[i] = c.Generate(env)
	}
	return tpl.Render(env, children...)
}

// IntegerLiteralNode is a bare integer literal, e.g. in `loop 3 ...`.
type IntegerLiteralNode struct {
	Value int
}

func (n IntegerLiteralNode) Generate(env *Env) string {
	return fmt.Sprintf("%d", n.Value)
}

// StringLiteralNode is a resolved (escapes already applied) character
// sequence.
type StringLiteralNode struct {
	Value string
}

func (n StringLiteralNode) Generate(env *Env) string {
	return fmt.Sprintf("[]rune(%q)", n.Value)
}

// StringReferenceNode refers to a declared string by name.
type StringReferenceNode struct{ Name string }

func (n StringReferenceNode) Generate(env *Env) string { return "p.s_" + n.Name }

// CharsReferenceNode refers to the raw rune buffer backing a declared
// string (used where a sequence of characters, not a string machine, is
// expected — e.g. as an argument to starts-with).
type CharsReferenceNode struct{ Name string }

func (n CharsReferenceNode) Generate(env *Env) string { return "p.s_" + n.Name + ".Chars" }

// IntegerReferenceNode refers to a declared integer by name.
type IntegerReferenceNode struct{ Name string }

func (n IntegerReferenceNode) Generate(env *Env) string { return "p.i_" + n.Name }

// BooleanReferenceNode refers to a declared boolean by name.
type BooleanReferenceNode struct{ Name string }

func (n BooleanReferenceNode) Generate(env *Env) string { return "p.b_" + n.Name }

// RoutineReferenceNode refers to a declared routine by name (its method
// name, for use as a routine-call operand).
type RoutineReferenceNode struct{ Name string }

func (n RoutineReferenceNode) Generate(env *Env) string { return "p.r_" + n.Name }

// GroupingReferenceNode refers to a declared grouping by name (its
// module-level CharSet constant).
type GroupingReferenceNode struct{ Name string }

func (n GroupingReferenceNode) Generate(env *Env) string { return "g_" + n.Name }
