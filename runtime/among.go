package runtime

// AmongEntry is one row of a compiled among table: a candidate pattern,
// an optional guard routine (nil if none), and the index of the arm to
// dispatch to on a match. Guard is a bound method value (e.g. p.r_check),
// not a name — among dispatch never looks up routines by string, so nothing
// here needs reflection.
type AmongEntry struct {
	Pattern []rune
	Guard   func(*StringMachine) bool
	Branch  int
}

// AmongTable is the ordered pattern table a `substring ... among(...)`
// construct compiles to. Entries are sorted by strictly decreasing
// pattern length at compile time, so the first matching entry is always
// the longest match.
type AmongTable []AmongEntry

// Lookup walks the table in order, testing each entry's pattern against
// the machine's current position via StartsWith, and — if present — its
// guard. It returns the branch index of the first entry whose pattern
// matches and whose guard (if any) accepts, and true, leaving the cursor
// advanced past the matched pattern (StartsWith's own effect); or (0,
// false) if nothing matched, with the cursor restored to where Lookup
// started.
func (t AmongTable) Lookup(s *StringMachine) (branch int, matched bool) {
	start := s.Cursor
	for _, entry := range t {
		s.Cursor = start
		if !s.StartsWith(entry.Pattern) {
			continue
		}
		if entry.Guard != nil && !entry.Guard(s) {
			continue
		}
		return entry.Branch, true
	}
	s.Cursor = start
	return 0, false
}
