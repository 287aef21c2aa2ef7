package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snowball-go/snowballc/runtime"
)

// These mirror, by hand, the shape of code the generator emits for each
// literal scenario: a routine method body operating on a *runtime.
// StringMachine (and, where slice anchors are involved, a local stand-in
// for the per-program left/right fields the generated Program type would
// carry). They exist to pin the runtime semantics the generated code
// actually calls into, independent of the generator itself.

// 1. define check as 'foo'
func checkStartsWith(s *runtime.StringMachine) bool {
	return s.StartsWith([]rune("foo"))
}

func TestScenarioStartsWith(t *testing.T) {
	for _, c := range []struct {
		input      string
		wantCursor int
		wantOK     bool
	}{
		{"foo", 3, true},
		{"fooo", 3, true},
		{"bar", 0, false},
	} {
		s := runtime.New(c.input)
		ok := checkStartsWith(s)
		assert.Equal(t, c.wantOK, ok, c.input)
		assert.Equal(t, c.wantCursor, s.Cursor, c.input)
	}
}

// 2. define check as ('foo' or 'Fo' or 'F')
func checkOr(s *runtime.StringMachine) bool {
	v := s.Cursor
	r := s.StartsWith([]rune("foo"))
	if !r {
		s.Cursor = v
		r = s.StartsWith([]rune("Fo"))
		if !r {
			s.Cursor = v
			r = s.StartsWith([]rune("F"))
		}
	}
	return r
}

func TestScenarioOr(t *testing.T) {
	for _, c := range []struct {
		input      string
		wantCursor int
		wantOK     bool
	}{
		{"Fo", 2, true},
		{"F", 1, true},
		{"bar", 0, false},
	} {
		s := runtime.New(c.input)
		ok := checkOr(s)
		assert.Equal(t, c.wantOK, ok, c.input)
		assert.Equal(t, c.wantCursor, s.Cursor, c.input)
	}
}

// prog stands in for the per-program left/right slice anchors the
// generator emits directly onto the compiled Program type (runtime has no
// concept of them: they are program-specific, not part of the machine).
type prog struct{ left, right int }

// 3. define check as (try 'f' [)
func checkTrySetLeft(p *prog, s *runtime.StringMachine) bool {
	v := s.Cursor
	r := s.StartsWith([]rune("f"))
	if !r {
		r = true
		s.Cursor = v
	}
	if r {
		p.left = s.Cursor
		r = true
	}
	return r
}

func TestScenarioTrySetLeft(t *testing.T) {
	for _, c := range []struct {
		input     string
		wantLeft  int
		wantInput string
	}{
		{"f", 1, "f"},
		{"g", 0, "g"},
	} {
		p := &prog{}
		s := runtime.New(c.input)
		ok := checkTrySetLeft(p, s)
		assert.True(t, ok, c.input)
		assert.Equal(t, c.wantLeft, p.left, c.input)
	}
}

// 4. define check as ('f' [try 'o'] <- 'u')
func checkReplaceSlice(p *prog, s *runtime.StringMachine) bool {
	r := s.StartsWith([]rune("f"))
	if r {
		p.left = s.Cursor
		r = true
		if r {
			v := s.Cursor
			r = s.StartsWith([]rune("o"))
			if !r {
				r = true
				s.Cursor = v
			}
			if r {
				p.right = s.Cursor
				r = true
				if r {
					r = s.SetRange(p.left, p.right, []rune("u"))
				}
			}
		}
	}
	return r
}

func TestScenarioReplaceSlice(t *testing.T) {
	for _, c := range []struct {
		input string
		want  string
	}{
		{"foo", "fuo"},
		{"faa", "fuaa"},
	} {
		p := &prog{}
		s := runtime.New(c.input)
		ok := checkReplaceSlice(p, s)
		assert.True(t, ok, c.input)
		assert.Equal(t, c.want, s.String(), c.input)
	}
}

// 5. define check as among('f' 'foo' 'fo')
func checkAmong(s *runtime.StringMachine) bool {
	table := runtime.AmongTable{
		{Pattern: []rune("foo"), Branch: 0},
		{Pattern: []rune("fo"), Branch: 1},
		{Pattern: []rune("f"), Branch: 2},
	}
	_, matched := table.Lookup(s)
	return matched
}

func TestScenarioAmong(t *testing.T) {
	for _, c := range []struct {
		input      string
		wantCursor int
		wantOK     bool
	}{
		{"foo", 3, true},
		{"fo", 2, true},
		{"x", 0, false},
	} {
		s := runtime.New(c.input)
		ok := checkAmong(s)
		assert.Equal(t, c.wantOK, ok, c.input)
		assert.Equal(t, c.wantCursor, s.Cursor, c.input)
	}
}

// 6. define check as (setlimit goto 'a' for (gopast 'b' <+ 'c'))
func checkSetLimit(s *runtime.StringMachine) bool {
	v0 := s.Cursor
	v1 := s.Len() - s.Limit

	var r bool
	for {
		v := s.Cursor
		r = s.StartsWith([]rune("a"))
		if r || s.Cursor == s.Limit {
			s.Cursor = v
			break
		}
		s.Cursor = v + 1
	}

	if r {
		s.Limit = s.Cursor
		s.Cursor = v0

		for {
			r = s.StartsWith([]rune("b"))
			if r || s.Cursor == s.Limit {
				break
			}
			s.Cursor++
		}
		if r {
			r = s.Insert([]rune("c"))
		}

		s.Limit = s.Len() - v1
	}
	return r
}

func TestScenarioSetLimit(t *testing.T) {
	for _, c := range []struct {
		input     string
		want      string
		wantLimit int
	}{
		{"ba", "bca", 3},
		{"ab", "ab", 2},
	} {
		s := runtime.New(c.input)
		checkSetLimit(s)
		assert.Equal(t, c.want, s.String(), c.input)
		assert.Equal(t, c.wantLimit, s.Limit, c.input)
	}
}

// 7. define check as backwards (hop 2 <+ 'x')
func checkBackwardsHopInsert(s *runtime.StringMachine) bool {
	v0 := s.Cursor
	v1 := s.Len() - s.Limit
	s.Direction *= -1
	s.Cursor, s.Limit = s.Limit, s.Cursor

	r := s.Hop(2)
	if r {
		r = s.Insert([]rune("x"))
	}

	s.Direction *= -1
	s.Cursor = v0
	s.Limit = s.Len() - v1
	return r
}

func TestScenarioBackwardsHopInsert(t *testing.T) {
	s := runtime.New("foo")
	ok := checkBackwardsHopInsert(s)
	assert.True(t, ok)
	assert.Equal(t, "fxoo", s.String())
}

// 8. groupings(x y z); define x as 'a'+'b'; define y as x+'d'-'b'; define
// z as y-x; define check as z
func TestScenarioGroupingArithmetic(t *testing.T) {
	x := runtime.NewCharSet("a").Union(runtime.NewCharSet("b"))
	y := x.Union(runtime.NewCharSet("d")).Difference(runtime.NewCharSet("b"))
	z := y.Difference(x)

	check := func(s *runtime.StringMachine) bool {
		var r bool
		if s.Cursor == s.Limit {
			r = false
		} else {
			r = z.Contains(s.Chars[s.Cursor])
		}
		if r {
			s.Cursor++
		}
		return r
	}

	for _, c := range []struct {
		input      string
		wantCursor int
		wantOK     bool
	}{
		{"d", 1, true},
		{"a", 0, false},
	} {
		s := runtime.New(c.input)
		ok := check(s)
		assert.Equal(t, c.wantOK, ok, c.input)
		assert.Equal(t, c.wantCursor, s.Cursor, c.input)
	}
}
