package snowballc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trivialSource = `
strings ( out )
externals ( stem )

define stem as (
	[ 's'] delete
)
`

func TestCompileProducesRunnableSource(t *testing.T) {
	out, err := Compile(trivialSource, "trivial.sbl", Options{Package: "trivialstem"})
	require.NoError(t, err)
	assert.Contains(t, out, "package trivialstem")
	assert.Contains(t, out, "func stem(input string) string {")
	assert.Contains(t, out, "p.r_stem(s)")
}

func TestCompileDebugAddsProgramReturn(t *testing.T) {
	out, err := Compile(trivialSource, "trivial.sbl", Options{Package: "trivialstem", Debug: true})
	require.NoError(t, err)
	assert.Contains(t, out, "func stem(input string) (*runtime.StringMachine, *Program) {")
}

func TestCompileReportsSyntaxErrorWithPosition(t *testing.T) {
	_, err := Compile("routines ( broken )\ndefine broken as (", "broken.sbl", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.sbl")
}

func TestCompileDefaultsPackageName(t *testing.T) {
	out, err := Compile(trivialSource, "trivial.sbl", Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "package stemmer")
}
