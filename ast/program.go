package ast

import "strings"

// DeclarationGroupNode bundles the sibling declaration nodes produced by
// one `strings (...)`/`integers (...)`/`booleans (...)`/`routines (...)`/
// `groupings (...)`/`externals (...)` block. Its children are generated
// only for their side effects on env (Fields, InitCode, ModuleCode); the
// returned text is never used, since these never appear as a command
// operand.
type DeclarationGroupNode struct{ Declarations []Node }

func (n DeclarationGroupNode) Generate(env *Env) string {
	for _, d := range n.Declarations {
		d.Generate(env)
	}
	return ""
}

// ProgramNode is the root of a compiled Snowball program: its package
// name and the ordered list of top-level declarations (string/integer/
// boolean/grouping/routine/external declarations and definitions).
type ProgramNode struct {
	Package      string
	Declarations []Node
}

// Generate runs every declaration (each one appends to env's Fields,
// InitCode, ClassCode and ModuleCode as a side effect) and assembles the
// result into one Go source file.
func (n ProgramNode) Generate(env *Env) string {
	for _, d := range n.Declarations {
		d.Generate(env)
	}

	var b strings.Builder
	b.WriteString("// Code generated by snowballc. DO NOT EDIT.\n\n")
	b.WriteString("package " + n.Package + "\n\n")
	b.WriteString("import \"github.com/snowball-go/snowballc/runtime\"\n\n")

	if len(env.ModuleCode) > 0 {
		b.WriteString(strings.Join(env.ModuleCode, "\n\n"))
		b.WriteString("\n\n")
	}

	b.WriteString("type Program struct {\n\tleft int\n\tright int\n")
	for _, f := range env.Fields {
		b.WriteString("\t" + f + "\n")
	}
	b.WriteString("}\n\n")

	b.WriteString("func NewProgram() *Program {\n\tp := &Program{}\n")
	for _, init := range env.InitCode {
		b.WriteString("\t" + init + "\n")
	}
	b.WriteString("\treturn p\n}\n")

	if len(env.ClassCode) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(env.ClassCode, "\n\n"))
		b.WriteString("\n")
	}

	return b.String()
}
