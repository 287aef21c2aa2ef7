package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snowball-go/snowballc/runtime"
)

func TestAmongTableLongestMatchWins(t *testing.T) {
	table := runtime.AmongTable{
		{Pattern: []rune("ational"), Branch: 0},
		{Pattern: []rune("ation"), Branch: 1},
		{Pattern: []rune("ate"), Branch: 2},
	}

	s := runtime.New("ational")
	branch, matched := table.Lookup(s)
	assert.True(t, matched)
	assert.Equal(t, 0, branch)
	assert.Equal(t, 7, s.Cursor)
}

func TestAmongTableGuardRejectsOtherwiseMatchingEntry(t *testing.T) {
	rejectAll := func(*runtime.StringMachine) bool { return false }
	table := runtime.AmongTable{
		{Pattern: []rune("foo"), Guard: rejectAll, Branch: 0},
		{Pattern: []rune("fo"), Branch: 1},
	}

	s := runtime.New("foo")
	branch, matched := table.Lookup(s)
	assert.True(t, matched)
	assert.Equal(t, 1, branch)
	assert.Equal(t, 2, s.Cursor)
}

func TestAmongTableNoMatchRestoresCursor(t *testing.T) {
	table := runtime.AmongTable{
		{Pattern: []rune("xyz"), Branch: 0},
	}
	s := runtime.New("abc")
	s.Cursor = 1
	_, matched := table.Lookup(s)
	assert.False(t, matched)
	assert.Equal(t, 1, s.Cursor)
}
