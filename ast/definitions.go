package ast

import "fmt"

// RoutineDefinitionNode is `define name as C`: compiles to one method on
// the generated Program type.
type RoutineDefinitionNode struct {
	Name string
	Body Node
}

func (n RoutineDefinitionNode) Generate(env *Env) string {
	body := n.Body.Generate(env)
	method := fmt.Sprintf(
		"func (p *Program) r_%s(s *runtime.StringMachine) bool {\n\tr := true\n%s\n\treturn r\n}",
		n.Name, indentBlock(body, "\t"),
	)
	env.ClassCode = append(env.ClassCode, method)
	return ""
}

// CharSetNode is a literal character set, e.g. 'aeiou' in a grouping
// definition.
type CharSetNode struct{ Chars string }

func (n CharSetNode) Generate(env *Env) string {
	return fmt.Sprintf("runtime.NewCharSet(%q)", n.Chars)
}

// SetUnionNode is `g1 + g2` in a grouping definition.
type SetUnionNode struct{ pseudoCodeNode }

func NewSetUnion(left, right Node) SetUnionNode {
	return SetUnionNode{newStrCmd("<t0>.Union(<t1>)", left, right)}
}
func (n SetUnionNode) Generate(env *Env) string { return n.generate(env) }

// SetDifferenceNode is `g1 - g2` in a grouping definition.
type SetDifferenceNode struct{ pseudoCodeNode }

func NewSetDifference(left, right Node) SetDifferenceNode {
	return SetDifferenceNode{newStrCmd("<t0>.Difference(<t1>)", left, right)}
}
func (n SetDifferenceNode) Generate(env *Env) string { return n.generate(env) }

// GroupingDefinitionNode is `define name as g1 + g2 - g3`: compiles to a
// package-level CharSet variable.
type GroupingDefinitionNode struct {
	Name string
	Set  Node
}

func (n GroupingDefinitionNode) Generate(env *Env) string {
	env.ModuleCode = append(env.ModuleCode, fmt.Sprintf("var g_%s = %s", n.Name, n.Set.Generate(env)))
	return ""
}

// BackwardModeNode is `backwardmode ( ... )`: its declarations (typically
// routine definitions) are generated with the direction flipped, matching
// how those routines are meant to be called.
type BackwardModeNode struct{ Declarations []Node }

func (n BackwardModeNode) Generate(env *Env) string {
	env.Backward(func() {
		for _, d := range n.Declarations {
			d.Generate(env)
		}
	})
	return ""
}

// IntegerDeclarationNode is one name of `integers ( name ... )`. An integer's
// Snowball default (0) matches its Go zero value, so only a field
// declaration is needed.
type IntegerDeclarationNode struct{ Name string }

func (n IntegerDeclarationNode) Generate(env *Env) string {
	env.Fields = append(env.Fields, fmt.Sprintf("i_%s int", n.Name))
	return ""
}

// StringDeclarationNode is one name of `strings ( name ... )`.
type StringDeclarationNode struct{ Name string }

func (n StringDeclarationNode) Generate(env *Env) string {
	env.Fields = append(env.Fields, fmt.Sprintf("s_%s *runtime.StringMachine", n.Name))
	env.InitCode = append(env.InitCode, fmt.Sprintf(`p.s_%s = runtime.New("")`, n.Name))
	return ""
}

// BooleanDeclarationNode is one name of `booleans ( name ... )`. Snowball booleans
// default to true, unlike Go's zero value, so the constructor must set it
// explicitly.
type BooleanDeclarationNode struct{ Name string }

func (n BooleanDeclarationNode) Generate(env *Env) string {
	env.Fields = append(env.Fields, fmt.Sprintf("b_%s bool", n.Name))
	env.InitCode = append(env.InitCode, fmt.Sprintf("p.b_%s = true", n.Name))
	return ""
}

// ExternalDeclarationNode is `externals ( name ... )`: compiles to a
// package-level function that runs the named routine over a fresh Program
// and returns the transformed string (in debug mode, the StringMachine and
// the Program instead, for inspecting cursor, limit and declared variables
// afterward).
type ExternalDeclarationNode struct{ Name string }

func (n ExternalDeclarationNode) Generate(env *Env) string {
	var fn string
	if env.Debug {
		fn = fmt.Sprintf(`func %s(input string) (*runtime.StringMachine, *Program) {
	p := NewProgram()
	s := runtime.New(input)
	p.r_%s(s)
	return s, p
}`, n.Name, n.Name)
	} else {
		fn = fmt.Sprintf(`func %s(input string) string {
	p := NewProgram()
	s := runtime.New(input)
	p.r_%s(s)
	return s.String()
}`, n.Name, n.Name)
	}
	env.ModuleCode = append(env.ModuleCode, fn)
	return ""
}

// RoutineDeclarationNode is one name of `routines ( name ... )`: it only
// reserves the name for later reference resolution, and generates nothing
// by itself.
type RoutineDeclarationNode struct{ Name string }

func (RoutineDeclarationNode) Generate(env *Env) string { return "" }

// GroupingDeclarationNode is one name of `groupings ( name ... )`, the declaration
// counterpart to RoutineDeclarationNode.
type GroupingDeclarationNode struct{ Name string }

func (GroupingDeclarationNode) Generate(env *Env) string { return "" }
