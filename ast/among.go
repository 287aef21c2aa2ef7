package ast

import (
	"fmt"
	"strings"
)

// AmongEntry is one candidate pattern of an among table: the literal
// text to match, an optional guard routine, and which arm to run on a
// match.
type AmongEntry struct {
	Pattern string
	Guard   Node // a RoutineReferenceNode, or nil
	Branch  int
}

// AmongTable holds one among construct's arm data: its pattern table
// (Entries, already sorted longest-pattern-first by the parser) and the
// per-arm commands to dispatch to (indexed by arm number, which is each
// entry's Branch; a nil entry runs no command). A SubstringNode and the AmongNode whose arms it matches
// share one AmongTable when the parser finds them in the same command
// sequence (spec §4.5 steps 4-5): whichever node is generated first
// claims the table index, emits it at module scope as `_a_k`, and emits
// the match step; the other emits only what's left (the AmongNode's
// dispatch, or nothing for the SubstringNode).
type AmongTable struct {
	Entries   []AmongEntry
	Commands  []Node
	CommonCmd Node // optional, run before dispatch if non-nil

	matched   bool
	branchVar string
}

// NewAmongTable builds the shared table for one among construct.
func NewAmongTable(entries []AmongEntry, commands []Node, commonCmd Node) *AmongTable {
	return &AmongTable{Entries: entries, Commands: commands, CommonCmd: commonCmd}
}

// emitLookup claims a fresh module-level table index, emits the pattern
// table as `var _a_k = runtime.AmongTable{...}` (spec §4.5 step 3), and
// returns the generated substring-walk step that consults it.
func (t *AmongTable) emitLookup(env *Env) string {
	name := fmt.Sprintf("_a_%d", env.ClaimAmongIndex())
	env.ModuleCode = append(env.ModuleCode, fmt.Sprintf("var %s = %s", name, t.tableLiteral(env)))

	vBranch := env.FreshVar()
	vMatched := env.FreshVar()
	t.matched = true
	t.branchVar = vBranch
	return fmt.Sprintf("%s, %s := %s.Lookup(s)\nr = %s\n", vBranch, vMatched, name, vMatched)
}

func (t *AmongTable) tableLiteral(env *Env) string {
	var b strings.Builder
	b.WriteString("runtime.AmongTable{\n")
	for _, e := range t.Entries {
		guard := "nil"
		if e.Guard != nil {
			guard = e.Guard.Generate(env)
		}
		fmt.Fprintf(&b, "\t{Pattern: []rune(%q), Guard: %s, Branch: %d},\n", e.Pattern, guard, e.Branch)
	}
	b.WriteString("}")
	return b.String()
}

func (t *AmongTable) generateDispatch(env *Env) string {
	var cases strings.Builder
	any := false
	for i, cmd := range t.Commands {
		if cmd == nil {
			continue
		}
		any = true
		fmt.Fprintf(&cases, "case %d:\n%s\n", i, indentBlock(cmd.Generate(env), "\t"))
	}
	if !any {
		return ""
	}
	return fmt.Sprintf("switch %s {\n%s}", t.branchVar, cases.String())
}

// SubstringNode is the `substring` command. Table is non-nil exactly
// when the parser found a matching `among` later in the same command
// sequence; the node then performs the lookup itself so the paired
// AmongNode emits only its dispatch. A nil Table means no `among`
// claimed this substring (the parser rejects that case before code
// generation is reached), so Generate has nothing to emit.
type SubstringNode struct{ Table *AmongTable }

func (n SubstringNode) Generate(env *Env) string {
	if n.Table == nil {
		return ""
	}
	return n.Table.emitLookup(env)
}

// AmongNode is `among ( ... )`: matches the longest candidate pattern at
// the cursor, subject to its guard if any, and runs the corresponding
// command — unless a preceding SubstringNode already performed the
// match, in which case it only dispatches.
type AmongNode struct{ Table *AmongTable }

func (n AmongNode) Generate(env *Env) string {
	var blocks []string
	if !n.Table.matched {
		blocks = append(blocks, n.Table.emitLookup(env))
	}
	if n.Table.CommonCmd != nil {
		blocks = append(blocks, n.Table.CommonCmd.Generate(env))
	}
	if dispatch := n.Table.generateDispatch(env); dispatch != "" {
		blocks = append(blocks, dispatch)
	}
	return makeIfChain(blocks)
}
