// Package sbltest provides fixtures for exercising a compiled routine's
// semantics directly against runtime.StringMachine, the way sqltest lets
// the teacher's tests exercise a batch against a live database without
// going through the CLI.
package sbltest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snowball-go/snowballc/runtime"
)

// Routine is the shape of every generated routine method: operate on s in
// place, report whether the routine succeeded.
type Routine func(s *runtime.StringMachine) bool

// Case is one input/expected-output pair for a routine run end-to-end
// against a fresh machine.
type Case struct {
	Name   string
	Input  string
	Want   string
	WantOK bool
}

// Run feeds each case through routine on a fresh forward-mode machine and
// asserts both the returned success flag and the resulting buffer
// contents.
func Run(t *testing.T, routine Routine, cases []Case) {
	t.Helper()
	for _, c := range cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			s := runtime.New(c.Input)
			ok := routine(s)
			assert.Equal(t, c.WantOK, ok, "success flag")
			assert.Equal(t, c.Want, s.String(), "resulting buffer")
		})
	}
}

// RunBackward is Run, but positions the machine in backward mode first
// (cursor at the end, limit at the start), for exercising routines meant
// to be called from within backwardmode.
func RunBackward(t *testing.T, routine Routine, cases []Case) {
	t.Helper()
	for _, c := range cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			s := runtime.New(c.Input)
			s.Direction = -1
			s.Cursor = s.Len()
			s.Limit = 0
			ok := routine(s)
			assert.Equal(t, c.WantOK, ok, "success flag")
			assert.Equal(t, c.Want, s.String(), "resulting buffer")
		})
	}
}
