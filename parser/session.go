package parser

import "github.com/snowball-go/snowballc/lexer"

// table is one of the six ordered, append-only symbol tables a parse
// session maintains (spec §3). Declaration order is preserved because
// reference resolution tie-breaks on it.
type table struct {
	order []string
	seen  map[string]bool
}

func newTable() *table { return &table{seen: map[string]bool{}} }

func (t *table) declare(name string) {
	if t.seen[name] {
		return
	}
	t.seen[name] = true
	t.order = append(t.order, name)
}

func (t *table) has(name string) bool { return t.seen[name] }

func (t *table) names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Session is the parse-time state for one translation: the six symbol
// tables and the live string-escape state, created empty and discarded at
// the end of Parse. Two sessions never share a table, so two Parse calls
// may run concurrently on distinct goroutines (spec §5).
type Session struct {
	Strings   *table
	Integers  *table
	Booleans  *table
	Routines  *table
	Externals *table
	Groupings *table

	scanner *lexer.Scanner
}

// NewSession returns a Session with all six tables empty, scanning src.
func NewSession(src, file string) *Session {
	return &Session{
		Strings:   newTable(),
		Integers:  newTable(),
		Booleans:  newTable(),
		Routines:  newTable(),
		Externals: newTable(),
		Groupings: newTable(),
		scanner:   lexer.New(src, file),
	}
}

// declareExternal records name in both Externals and Routines: externals
// imply routine-hood (spec §3 invariant).
func (s *Session) declareExternal(name string) {
	s.Externals.declare(name)
	s.Routines.declare(name)
}
