package ast

// newStrCmd builds a pseudo-code node with the given children, forward
// template only (no direction variance).
func newStrCmd(tpl string, children ...Node) pseudoCodeNode {
	return pseudoCodeNode{Forward: Template{Body: tpl}, Children: children}
}

// InsertNode is `insert C` / `<+ C`.
type InsertNode struct{ pseudoCodeNode }

func NewInsert(arg Node) InsertNode {
	return InsertNode{newStrCmd("\nr = s.Insert(<t0>)\n", arg)}
}
func (n InsertNode) Generate(env *Env) string { return n.generate(env) }

// AttachNode is `attach C`.
type AttachNode struct{ pseudoCodeNode }

func NewAttach(arg Node) AttachNode {
	return AttachNode{newStrCmd("\nr = s.Attach(<t0>)\n", arg)}
}
func (n AttachNode) Generate(env *Env) string { return n.generate(env) }

// ReplaceSliceNode is `<- C`: replaces the sliced region with C.
type ReplaceSliceNode struct{ pseudoCodeNode }

func NewReplaceSlice(arg Node) ReplaceSliceNode {
	return ReplaceSliceNode{newStrCmd("\nr = s.SetRange(p.left, p.right, <t0>)\n", arg)}
}
func (n ReplaceSliceNode) Generate(env *Env) string { return n.generate(env) }

// ExportSliceNode is `-> name`: copies the sliced region into a string.
type ExportSliceNode struct{ pseudoCodeNode }

func NewExportSlice(target Node) ExportSliceNode {
	return ExportSliceNode{newStrCmd("\nr = <t0>.SetChars(s.GetRange(p.left, p.right))\n", target)}
}
func (n ExportSliceNode) Generate(env *Env) string { return n.generate(env) }

// HopNode is `hop C`.
type HopNode struct{ pseudoCodeNode }

func NewHop(arg Node) HopNode {
	return HopNode{newStrCmd("\nr = s.Hop(<t0>)\n", arg)}
}
func (n HopNode) Generate(env *Env) string { return n.generate(env) }

// NextNode is `next`, equivalent to `hop 1`.
type NextNode struct{ pseudoCodeNode }

func NewNext() NextNode {
	return NextNode{newStrCmd("\nr = s.Hop(1)\n")}
}
func (n NextNode) Generate(env *Env) string { return n.generate(env) }

// SetLeftNode is `[`: anchors the left edge of the slice at the cursor.
type SetLeftNode struct{ pseudoCodeNode }

func NewSetLeft() SetLeftNode {
	return SetLeftNode{newStrCmd("\np.left = s.Cursor\nr = true\n")}
}
func (n SetLeftNode) Generate(env *Env) string { return n.generate(env) }

// SetRightNode is `]`: anchors the right edge of the slice at the cursor.
type SetRightNode struct{ pseudoCodeNode }

func NewSetRight() SetRightNode {
	return SetRightNode{newStrCmd("\np.right = s.Cursor\nr = true\n")}
}
func (n SetRightNode) Generate(env *Env) string { return n.generate(env) }

// SetMarkNode is `setmark name`: records the cursor into a declared
// integer.
type SetMarkNode struct{ pseudoCodeNode }

func NewSetMark(mark Node) SetMarkNode {
	return SetMarkNode{newStrCmd("\n<t0> = s.Cursor\nr = true\n", mark)}
}
func (n SetMarkNode) Generate(env *Env) string { return n.generate(env) }

// ToMarkNode is `tomark name`.
type ToMarkNode struct{ pseudoCodeNode }

func NewToMark(mark Node) ToMarkNode {
	return ToMarkNode{newStrCmd("\nr = s.ToMark(<t0>)\n", mark)}
}
func (n ToMarkNode) Generate(env *Env) string { return n.generate(env) }

// AtMarkNode is `atmark name`.
type AtMarkNode struct{ pseudoCodeNode }

func NewAtMark(mark Node) AtMarkNode {
	return AtMarkNode{newStrCmd("\nr = (s.Cursor == <t0>)\n", mark)}
}
func (n AtMarkNode) Generate(env *Env) string { return n.generate(env) }

// SetNode is `set name`: sets a declared boolean to true.
type SetNode struct{ pseudoCodeNode }

func NewSet(target Node) SetNode {
	return SetNode{newStrCmd("\n<t0> = true\nr = true\n", target)}
}
func (n SetNode) Generate(env *Env) string { return n.generate(env) }

// UnsetNode is `unset name`: sets a declared boolean to false.
type UnsetNode struct{ pseudoCodeNode }

func NewUnset(target Node) UnsetNode {
	return UnsetNode{newStrCmd("\n<t0> = false\nr = true\n", target)}
}
func (n UnsetNode) Generate(env *Env) string { return n.generate(env) }

// EmptyCommandNode is the empty command `()`: r keeps whatever value the
// surrounding check left it at.
type EmptyCommandNode struct{}

func (EmptyCommandNode) Generate(env *Env) string { return "" }

// GroupingNode is `grouping`: succeeds and advances the cursor past the
// next character if it belongs to the named grouping.
type GroupingNode struct{ pseudoCodeNode }

func NewGrouping(set Node) GroupingNode {
	backward := Template{Body: `
if s.Cursor == s.Limit {
	r = false
} else {
	r = <t0>.Contains(s.Chars[s.Cursor-1])
}
if r {
	s.Cursor--
}
`}
	return GroupingNode{pseudoCodeNode{
		Forward: Template{Body: `
if s.Cursor == s.Limit {
	r = false
} else {
	r = <t0>.Contains(s.Chars[s.Cursor])
}
if r {
	s.Cursor++
}
`},
		Backward: &backward,
		Children: []Node{set},
	}}
}
func (n GroupingNode) Generate(env *Env) string { return n.generate(env) }

// NonNode is `non`: the complement of GroupingNode.
type NonNode struct{ pseudoCodeNode }

func NewNon(set Node) NonNode {
	backward := Template{Body: `
if s.Cursor == s.Limit {
	r = false
} else {
	r = !<t0>.Contains(s.Chars[s.Cursor-1])
}
if r {
	s.Cursor--
}
`}
	return NonNode{pseudoCodeNode{
		Forward: Template{Body: `
if s.Cursor == s.Limit {
	r = false
} else {
	r = !<t0>.Contains(s.Chars[s.Cursor])
}
if r {
	s.Cursor++
}
`},
		Backward: &backward,
		Children: []Node{set},
	}}
}
func (n NonNode) Generate(env *Env) string { return n.generate(env) }

// DeleteNode is `delete`: removes the sliced region.
type DeleteNode struct{ pseudoCodeNode }

func NewDelete() DeleteNode {
	return DeleteNode{newStrCmd("\nr = s.SetRange(p.left, p.right, nil)\n")}
}
func (n DeleteNode) Generate(env *Env) string { return n.generate(env) }

// AtLimitNode is `atlimit`.
type AtLimitNode struct{ pseudoCodeNode }

func NewAtLimit() AtLimitNode {
	return AtLimitNode{newStrCmd("\nr = (s.Cursor == s.Limit)\n")}
}
func (n AtLimitNode) Generate(env *Env) string { return n.generate(env) }

// ToLimitNode is `tolimit`.
type ToLimitNode struct{ pseudoCodeNode }

func NewToLimit() ToLimitNode {
	return ToLimitNode{newStrCmd("\ns.Cursor = s.Limit\nr = true\n")}
}
func (n ToLimitNode) Generate(env *Env) string { return n.generate(env) }

// StartsWithNode is a string or character literal used as a command: it
// succeeds and consumes the match if the machine starts with it.
type StartsWithNode struct{ pseudoCodeNode }

func NewStartsWith(arg Node) StartsWithNode {
	return StartsWithNode{newStrCmd("\nr = s.StartsWith(<t0>)\n", arg)}
}
func (n StartsWithNode) Generate(env *Env) string { return n.generate(env) }

// RoutineCallNode invokes a declared or external routine.
type RoutineCallNode struct{ pseudoCodeNode }

func NewRoutineCall(routine Node) RoutineCallNode {
	return RoutineCallNode{newStrCmd("\nr = <t0>(s)\n", routine)}
}
func (n RoutineCallNode) Generate(env *Env) string { return n.generate(env) }

// TrueCommandNode is the literal `true` command.
type TrueCommandNode struct{ pseudoCodeNode }

func NewTrueCommand() TrueCommandNode {
	return TrueCommandNode{newStrCmd("\nr = true\n")}
}
func (n TrueCommandNode) Generate(env *Env) string { return n.generate(env) }

// FalseCommandNode is the literal `false` command.
type FalseCommandNode struct{ pseudoCodeNode }

func NewFalseCommand() FalseCommandNode {
	return FalseCommandNode{newStrCmd("\nr = false\n")}
}
func (n FalseCommandNode) Generate(env *Env) string { return n.generate(env) }

// BooleanCommandNode is a bare declared boolean used as a command: it
// succeeds exactly when the boolean is true.
type BooleanCommandNode struct{ pseudoCodeNode }

func NewBooleanCommand(ref Node) BooleanCommandNode {
	return BooleanCommandNode{newStrCmd("\nr = <t0>\n", ref)}
}
func (n BooleanCommandNode) Generate(env *Env) string { return n.generate(env) }
