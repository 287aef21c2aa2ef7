package ast

import (
	"fmt"
	"strings"
)

// NotNode is `not C`.
type NotNode struct{ pseudoCodeNode }

func NewNot(body Node) NotNode {
	return NotNode{pseudoCodeNode{Forward: Template{Body: `
<v> := s.Cursor
<t0>
if !r {
	s.Cursor = <v>
}
r = !r
`}, Children: []Node{body}}}
}
func (n NotNode) Generate(env *Env) string { return n.generate(env) }

// TestNode is `test C`: runs C, then always restores the cursor.
type TestNode struct{ pseudoCodeNode }

func NewTest(body Node) TestNode {
	return TestNode{pseudoCodeNode{Forward: Template{Body: `
<v> := s.Cursor
<t0>
s.Cursor = <v>
`}, Children: []Node{body}}}
}
func (n TestNode) Generate(env *Env) string { return n.generate(env) }

// TryNode is `try C`: runs C; on failure, restores the cursor and
// succeeds anyway.
type TryNode struct{ pseudoCodeNode }

func NewTry(body Node) TryNode {
	return TryNode{pseudoCodeNode{Forward: Template{Body: `
<v> := s.Cursor
<t0>
if !r {
	r = true
	s.Cursor = <v>
}
`}, Children: []Node{body}}}
}
func (n TryNode) Generate(env *Env) string { return n.generate(env) }

// DoNode is `do C`: runs C for effect, always restores the cursor and
// succeeds. Its backward-mode template measures the saved position from
// the end of the buffer, since s.Len()-s.Cursor stays invariant across a
// length-changing C that only touches one side of the cursor.
type DoNode struct{ pseudoCodeNode }

func NewDo(body Node) DoNode {
	backward := Template{Body: `
<v> := s.Len() - s.Cursor
<t0>
s.Cursor = s.Len() - <v>
r = true
`}
	return DoNode{pseudoCodeNode{
		Forward: Template{Body: `
<v> := s.Cursor
<t0>
s.Cursor = <v>
r = true
`},
		Backward: &backward,
		Children: []Node{body},
	}}
}
func (n DoNode) Generate(env *Env) string { return n.generate(env) }

// FailNode is `fail C`: runs C for effect, then always fails.
type FailNode struct{ pseudoCodeNode }

func NewFail(body Node) FailNode {
	return FailNode{pseudoCodeNode{Forward: Template{Body: `
<t0>
r = false
`}, Children: []Node{body}}}
}
func (n FailNode) Generate(env *Env) string { return n.generate(env) }

// GoToNode is `goto C`: advances the cursor one position at a time until
// C succeeds or the limit is reached, without consuming the match C made.
type GoToNode struct{ pseudoCodeNode }

func NewGoTo(body Node) GoToNode {
	backward := Template{Body: `
for {
	<v> := s.Cursor
	<t0>
	if r || s.Cursor == s.Limit {
		s.Cursor = <v>
		break
	}
	s.Cursor = <v> - 1
}
`}
	return GoToNode{pseudoCodeNode{
		Forward: Template{Body: `
for {
	<v> := s.Cursor
	<t0>
	if r || s.Cursor == s.Limit {
		s.Cursor = <v>
		break
	}
	s.Cursor = <v> + 1
}
`},
		Backward: &backward,
		Children: []Node{body},
	}}
}
func (n GoToNode) Generate(env *Env) string { return n.generate(env) }

// GoPastNode is `gopast C`: like goto, but leaves the cursor where C's own
// match left it (it does not restore the pre-match position each step).
type GoPastNode struct{ pseudoCodeNode }

func NewGoPast(body Node) GoPastNode {
	backward := Template{Body: `
for {
	<t0>
	if r || s.Cursor == s.Limit {
		break
	}
	s.Cursor--
}
`}
	return GoPastNode{pseudoCodeNode{
		Forward: Template{Body: `
for {
	<t0>
	if r || s.Cursor == s.Limit {
		break
	}
	s.Cursor++
}
`},
		Backward: &backward,
		Children: []Node{body},
	}}
}
func (n GoPastNode) Generate(env *Env) string { return n.generate(env) }

// RepeatNode is `repeat C`: runs C as many times as it keeps succeeding,
// and itself always succeeds.
type RepeatNode struct{ pseudoCodeNode }

func NewRepeat(body Node) RepeatNode {
	return RepeatNode{pseudoCodeNode{Forward: Template{Body: `
for {
	<v> := s.Cursor
	<t0>
	if !r {
		s.Cursor = <v>
		break
	}
}
r = true
`}, Children: []Node{body}}}
}
func (n RepeatNode) Generate(env *Env) string { return n.generate(env) }

// LoopNode is `loop N C`: runs C exactly N times, ignoring its result.
type LoopNode struct{ pseudoCodeNode }

func NewLoop(count, body Node) LoopNode {
	return LoopNode{pseudoCodeNode{Forward: Template{Body: `
for <v> := 0; <v> < <t0>; <v>++ {
	<t1>
}
`}, Children: []Node{count, body}}}
}
func (n LoopNode) Generate(env *Env) string { return n.generate(env) }

// AtLeastNode is `atleast N C`: runs C N times unconditionally, then keeps
// repeating it while it succeeds; always succeeds overall.
type AtLeastNode struct{ pseudoCodeNode }

func NewAtLeast(count, body Node) AtLeastNode {
	return AtLeastNode{pseudoCodeNode{Forward: Template{Body: `
for <v> := 0; <v> < <t0>; <v>++ {
	<t1>
}
for {
	<v> := s.Cursor
	<t1>
	if !r {
		s.Cursor = <v>
		break
	}
}
r = true
`}, Children: []Node{count, body}}}
}
func (n AtLeastNode) Generate(env *Env) string { return n.generate(env) }

// ReverseNode is `reverse C`. The grammar accepts it (the keyword is
// reserved, spec.md §4.1), but no code generation rule for it is defined:
// the Snowball dialect this compiler targets never settled on its
// semantics, so Generate records the failure on env instead of guessing.
type ReverseNode struct{ Body Node }

func (n ReverseNode) Generate(env *Env) string {
	if env.Err == nil {
		env.Err = fmt.Errorf("reverse is reserved but unsupported")
	}
	return ""
}

// BackwardsNode is `backwards C`: runs C with the machine's direction and
// cursor/limit swapped, restoring both afterward.
type BackwardsNode struct{ Body Node }

func (n BackwardsNode) Generate(env *Env) string {
	var inner string
	env.Backward(func() {
		inner = n.Body.Generate(env)
	})
	tpl := Template{Body: `
<v0> := s.Cursor
<v1> := s.Len() - s.Limit
s.Direction *= -1
s.Cursor, s.Limit = s.Limit, s.Cursor
<t0>
s.Direction *= -1
s.Cursor = <v0>
s.Limit = s.Len() - <v1>
`}
	return tpl.Render(env, inner)
}

// SetLimitNode is `setlimit C1 for C2`: runs C1, then runs C2 with the
// limit temporarily pulled in to wherever C1 left the cursor.
type SetLimitNode struct{ pseudoCodeNode }

func NewSetLimit(bound, body Node) SetLimitNode {
	return SetLimitNode{pseudoCodeNode{Forward: Template{Body: `
<v0> := s.Cursor
<v1> := s.Len() - s.Limit
<t0>
if r {
	s.Limit = s.Cursor
	s.Cursor = <v0>
	<t1>
	s.Limit = s.Len() - <v1>
}
`}, Children: []Node{bound, body}}}
}
func (n SetLimitNode) Generate(env *Env) string { return n.generate(env) }

// ConcatenationNode is a sequence of commands run one after another,
// short-circuiting (without restoring the cursor) as soon as one fails.
type ConcatenationNode struct{ Commands []Node }

func (n ConcatenationNode) Generate(env *Env) string {
	blocks := make([]string, len(n.Commands))
	for i, c := range n.Commands {
		blocks[i] = c.Generate(env)
	}
	return makeIfChain(blocks)
}

// AndNode is `C1 and C2 and ...`: tries each command in turn, restoring
// the cursor to its value before the whole expression between attempts,
// stopping at the first failure.
type AndNode struct{ Commands []Node }

func (n AndNode) Generate(env *Env) string { return generateIfChain(env, n.Commands, "r") }

// OrNode is `C1 or C2 or ...`: like AndNode, but stops at the first
// success instead of the first failure.
type OrNode struct{ Commands []Node }

func (n OrNode) Generate(env *Env) string { return generateIfChain(env, n.Commands, "!r") }

// generateIfChain implements the shared shape of AndNode/OrNode: save the
// cursor once, try the first command, then for each remaining command
// test cond (r for and, !r for or) and, if it holds, restore the cursor
// and try the next one, nesting one level deeper each time.
func generateIfChain(env *Env, commands []Node, cond string) string {
	v := env.FreshVar()
	var b strings.Builder
	fmt.Fprintf(&b, "%s := s.Cursor\n", v)
	b.WriteString(commands[0].Generate(env))
	prefix := ""
	for _, c := range commands[1:] {
		b.WriteString("\n" + prefix + "if " + cond + " {\n")
		prefix += "\t"
		b.WriteString(indentBlock(fmt.Sprintf("s.Cursor = %s\n%s", v, c.Generate(env)), prefix))
	}
	for range commands[1:] {
		prefix = prefix[:len(prefix)-1]
		b.WriteString("\n" + prefix + "}")
	}
	return b.String()
}

// makeIfChain nests blocks so that each one only runs if the previous one
// left r true: blocks[0]; if r { blocks[1]; if r { blocks[2]; ... } }.
func makeIfChain(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(blocks[0])
	prefix := ""
	for _, block := range blocks[1:] {
		b.WriteString("\n" + prefix + "if r {\n")
		prefix += "\t"
		b.WriteString(indentBlock(block, prefix))
	}
	for range blocks[1:] {
		prefix = prefix[:len(prefix)-1]
		b.WriteString("\n" + prefix + "}")
	}
	return b.String()
}

// indentBlock prefixes every non-empty line of s, including the first.
func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
