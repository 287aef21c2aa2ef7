package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotNodeRestoresCursorAndInvertsResult(t *testing.T) {
	env := NewEnv()
	out := NewNot(NewTrueCommand()).Generate(env)
	assert.Equal(t, "v0 := s.Cursor\nr = true\nif !r {\n\ts.Cursor = v0\n}\nr = !r", out)
}

func TestTryNodeRecoversOnFailure(t *testing.T) {
	env := NewEnv()
	out := NewTry(NewFalseCommand()).Generate(env)
	assert.Equal(t, "v0 := s.Cursor\nr = false\nif !r {\n\tr = true\n\ts.Cursor = v0\n}", out)
}

func TestDoNodeForwardMeasuresFromCursor(t *testing.T) {
	env := NewEnv()
	out := NewDo(NewTrueCommand()).Generate(env)
	assert.Equal(t, "v0 := s.Cursor\nr = true\ns.Cursor = v0\nr = true", out)
}

func TestDoNodeBackwardMeasuresFromEnd(t *testing.T) {
	env := NewEnv()
	env.Direction = -1
	out := NewDo(NewTrueCommand()).Generate(env)
	assert.Equal(t, "v0 := s.Len() - s.Cursor\nr = true\ns.Cursor = s.Len() - v0\nr = true", out)
}

func TestFailNodeAlwaysFails(t *testing.T) {
	env := NewEnv()
	out := NewFail(NewTrueCommand()).Generate(env)
	assert.Equal(t, "r = true\nr = false", out)
}

func TestRepeatNodeAlwaysSucceeds(t *testing.T) {
	env := NewEnv()
	out := NewRepeat(NewTrueCommand()).Generate(env)
	assert.Contains(t, out, "for {")
	assert.Contains(t, out, "if !r {")
	assert.Contains(t, out, "r = true")
}

func TestAndNodeNestsOnSuccess(t *testing.T) {
	env := NewEnv()
	out := AndNode{Commands: []Node{NewTrueCommand(), NewFalseCommand()}}.Generate(env)
	assert.Equal(t, "v0 := s.Cursor\nr = true\nif r {\n\ts.Cursor = v0\n\tr = false\n}", out)
}

func TestOrNodeNestsOnFailure(t *testing.T) {
	env := NewEnv()
	out := OrNode{Commands: []Node{NewFalseCommand(), NewTrueCommand()}}.Generate(env)
	assert.Equal(t, "v0 := s.Cursor\nr = false\nif !r {\n\ts.Cursor = v0\n\tr = true\n}", out)
}

func TestConcatenationNodeChainsOnSuccess(t *testing.T) {
	env := NewEnv()
	out := ConcatenationNode{Commands: []Node{NewTrueCommand(), NewFalseCommand()}}.Generate(env)
	assert.Equal(t, "r = true\nif r {\n\tr = false\n}", out)
}

func TestConcatenationNodeThreeCommandsNestTwice(t *testing.T) {
	env := NewEnv()
	out := ConcatenationNode{Commands: []Node{NewTrueCommand(), NewTrueCommand(), NewFalseCommand()}}.Generate(env)
	assert.Equal(t, "r = true\nif r {\n\tr = true\n\tif r {\n\t\tr = false\n\t}\n}", out)
}

func TestBackwardsNodeSwapsDirectionAndRestoresIt(t *testing.T) {
	env := NewEnv()
	out := BackwardsNode{Body: NewTrueCommand()}.Generate(env)
	assert.Contains(t, out, "s.Direction *= -1")
	assert.Contains(t, out, "s.Cursor, s.Limit = s.Limit, s.Cursor")
	assert.Contains(t, out, "r = true")
	assert.Equal(t, 1, env.Direction, "direction must be restored after generation")
}

func TestReverseNodeRecordsGenerationError(t *testing.T) {
	env := NewEnv()
	out := ReverseNode{Body: NewTrueCommand()}.Generate(env)
	assert.Equal(t, "", out)
	assert.Error(t, env.Err)
}

func TestReverseNodeKeepsFirstError(t *testing.T) {
	env := NewEnv()
	env.Err = assertErrSentinel
	ReverseNode{}.Generate(env)
	assert.Equal(t, assertErrSentinel, env.Err)
}

var assertErrSentinel = errors.New("sentinel")
