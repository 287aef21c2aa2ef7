package ast

// newIntCmd builds a pseudo-code node over (target, expr) children using
// the given template. target is normally an IntegerReferenceNode.
func newIntCmd(tpl string, target, expr Node) pseudoCodeNode {
	return pseudoCodeNode{Forward: Template{Body: tpl}, Children: []Node{target, expr}}
}

// IntegerAssignNode is `$i = expr`. Per the resolved open question on
// integer command success (spec.md §9), assignments always set r = true.
type IntegerAssignNode struct{ pseudoCodeNode }

func NewIntegerAssign(target, expr Node) IntegerAssignNode {
	return IntegerAssignNode{newIntCmd("\n<t0> = <t1>\nr = true\n", target, expr)}
}
func (n IntegerAssignNode) Generate(env *Env) string { return n.generate(env) }

// IntegerIncrementByNode is `$i += expr`.
type IntegerIncrementByNode struct{ pseudoCodeNode }

func NewIntegerIncrementBy(target, expr Node) IntegerIncrementByNode {
	return IntegerIncrementByNode{newIntCmd("\n<t0> += <t1>\nr = true\n", target, expr)}
}
func (n IntegerIncrementByNode) Generate(env *Env) string { return n.generate(env) }

// IntegerDecrementByNode is `$i -= expr`.
type IntegerDecrementByNode struct{ pseudoCodeNode }

func NewIntegerDecrementBy(target, expr Node) IntegerDecrementByNode {
	return IntegerDecrementByNode{newIntCmd("\n<t0> -= <t1>\nr = true\n", target, expr)}
}
func (n IntegerDecrementByNode) Generate(env *Env) string { return n.generate(env) }

// IntegerMultiplyByNode is `$i *= expr`.
type IntegerMultiplyByNode struct{ pseudoCodeNode }

func NewIntegerMultiplyBy(target, expr Node) IntegerMultiplyByNode {
	return IntegerMultiplyByNode{newIntCmd("\n<t0> *= <t1>\nr = true\n", target, expr)}
}
func (n IntegerMultiplyByNode) Generate(env *Env) string { return n.generate(env) }

// IntegerDivideByNode is `$i /= expr`.
type IntegerDivideByNode struct{ pseudoCodeNode }

func NewIntegerDivideBy(target, expr Node) IntegerDivideByNode {
	return IntegerDivideByNode{newIntCmd("\n<t0> /= <t1>\nr = true\n", target, expr)}
}
func (n IntegerDivideByNode) Generate(env *Env) string { return n.generate(env) }

// IntegerEqualNode is `$i == expr`; comparisons set r to the outcome.
type IntegerEqualNode struct{ pseudoCodeNode }

func NewIntegerEqual(target, expr Node) IntegerEqualNode {
	return IntegerEqualNode{newIntCmd("\nr = <t0> == <t1>\n", target, expr)}
}
func (n IntegerEqualNode) Generate(env *Env) string { return n.generate(env) }

// IntegerUnequalNode is `$i != expr`.
type IntegerUnequalNode struct{ pseudoCodeNode }

func NewIntegerUnequal(target, expr Node) IntegerUnequalNode {
	return IntegerUnequalNode{newIntCmd("\nr = <t0> != <t1>\n", target, expr)}
}
func (n IntegerUnequalNode) Generate(env *Env) string { return n.generate(env) }

// IntegerGreaterNode is `$i > expr`.
type IntegerGreaterNode struct{ pseudoCodeNode }

func NewIntegerGreater(target, expr Node) IntegerGreaterNode {
	return IntegerGreaterNode{newIntCmd("\nr = <t0> > <t1>\n", target, expr)}
}
func (n IntegerGreaterNode) Generate(env *Env) string { return n.generate(env) }

// IntegerLessNode is `$i < expr`.
type IntegerLessNode struct{ pseudoCodeNode }

func NewIntegerLess(target, expr Node) IntegerLessNode {
	return IntegerLessNode{newIntCmd("\nr = <t0> < <t1>\n", target, expr)}
}
func (n IntegerLessNode) Generate(env *Env) string { return n.generate(env) }

// IntegerGreaterOrEqualNode is `$i >= expr`.
type IntegerGreaterOrEqualNode struct{ pseudoCodeNode }

func NewIntegerGreaterOrEqual(target, expr Node) IntegerGreaterOrEqualNode {
	return IntegerGreaterOrEqualNode{newIntCmd("\nr = <t0> >= <t1>\n", target, expr)}
}
func (n IntegerGreaterOrEqualNode) Generate(env *Env) string { return n.generate(env) }

// IntegerLessOrEqualNode is `$i <= expr`.
type IntegerLessOrEqualNode struct{ pseudoCodeNode }

func NewIntegerLessOrEqual(target, expr Node) IntegerLessOrEqualNode {
	return IntegerLessOrEqualNode{newIntCmd("\nr = <t0> <= <t1>\n", target, expr)}
}
func (n IntegerLessOrEqualNode) Generate(env *Env) string { return n.generate(env) }
