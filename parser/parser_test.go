package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowball-go/snowballc/ast"
	"github.com/snowball-go/snowballc/parser"
)

func mustParse(t *testing.T, src string) ast.ProgramNode {
	t.Helper()
	prog, err := parser.Parse(src, "test.sbl", "stemmer")
	require.NoError(t, err)
	return prog
}

func generate(t *testing.T, prog ast.ProgramNode) string {
	t.Helper()
	env := ast.NewEnv()
	out := prog.Generate(env)
	require.NoError(t, env.Err)
	return out
}

func TestParseDeclaresStringsIntegersBooleansAsFields(t *testing.T) {
	src := `
strings ( out )
integers ( n )
booleans ( keep )
externals ( stem )

define stem as ( true )
`
	out := generate(t, mustParse(t, src))
	assert.Contains(t, out, "s_out *runtime.StringMachine")
	assert.Contains(t, out, "i_n int")
	assert.Contains(t, out, "b_keep bool")
	assert.Contains(t, out, "p.b_keep = true")
}

func TestParseAmongSortsArmsLongestPatternFirstRegardlessOfSourceOrder(t *testing.T) {
	src := `
routines ( r1 )
externals ( stem )

define r1 as (
    among ( 'a' 'abc' 'ab' )
)
define stem as r1
`
	out := generate(t, mustParse(t, src))
	abcIdx := indexOf(out, `[]rune("abc")`)
	abIdx := indexOf(out, `[]rune("ab")`)
	aIdx := indexOf(out, `[]rune("a")`)
	require.True(t, abcIdx >= 0 && abIdx >= 0 && aIdx >= 0)
	assert.Less(t, abcIdx, abIdx, "longer pattern must be tried first")
	assert.Less(t, abIdx, aIdx, "longer pattern must be tried first")
}

func TestParseAmongAttachesGuardRoutineToItsArm(t *testing.T) {
	src := `
routines ( vowel_before check )
externals ( stem )

define vowel_before as ( true )
define check as (
    among ( 'y' vowel_before (delete) 'y' )
)
define stem as check
`
	out := generate(t, mustParse(t, src))
	assert.Contains(t, out, "Guard: p.r_vowel_before")
}

func TestParseAmongRejectsEmptyArmList(t *testing.T) {
	src := `
routines ( check )
define check as ( among ( ) )
`
	_, err := parser.Parse(src, "test.sbl", "stemmer")
	require.Error(t, err)
	var semErr *parser.SemanticError
	assert.ErrorAs(t, err, &semErr)
}

func TestParseStringEscapesAllowsAQuoteCharacterInsideALiteral(t *testing.T) {
	src := `
routines ( check )
stringescapes '{}'
define check as ( '{'}' )
`
	out := generate(t, mustParse(t, src))
	assert.Contains(t, out, `[]rune("'")`)
}

func TestParseStringDefExpandsNamedCodepoint(t *testing.T) {
	src := `
routines ( check )
stringescapes '{}'
stringdef a_umlaut hex 'E4'
define check as ( '{a_umlaut}' )
`
	prog := mustParse(t, src)
	out := generate(t, prog)
	assert.Contains(t, out, `"ä"`)
}

func TestParseBackwardModeAcceptsNestedDeclarations(t *testing.T) {
	src := `
routines ( r1 )
backwardmode (
    backwardmode (
        define r1 as ( true )
    )
)
`
	prog := mustParse(t, src)
	require.Len(t, prog.Declarations, 1)
	outer, ok := prog.Declarations[0].(ast.BackwardModeNode)
	require.True(t, ok)
	require.Len(t, outer.Declarations, 1)
	_, ok = outer.Declarations[0].(ast.BackwardModeNode)
	assert.True(t, ok)
}

func TestParseBackwardModeRoutineGeneratesWithDirectionRestored(t *testing.T) {
	src := `
routines ( r1 )
groupings ( v )
define v as 'aeiou'
backwardmode (
    define r1 as ( v )
)
`
	env := ast.NewEnv()
	prog := mustParse(t, src)
	prog.Generate(env)
	require.NoError(t, env.Err)
	assert.Equal(t, 1, env.Direction, "direction must be restored to forward after a backwardmode block")
}

func TestParseReferenceErrorListsCandidates(t *testing.T) {
	src := `
routines ( known )
define known as ( unknown_thing )
`
	_, err := parser.Parse(src, "test.sbl", "stemmer")
	require.Error(t, err)
	var refErr *parser.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "unknown_thing", refErr.Name)
	assert.Contains(t, refErr.Candidates, "known")
}

func TestParseIntegerAssignmentAlwaysSucceedsButComparisonReflectsOutcome(t *testing.T) {
	src := `
integers ( n )
routines ( check )
define check as ( $n = 3 and $n == 3 )
`
	out := generate(t, mustParse(t, src))
	assert.Contains(t, out, "p.i_n = 3\n\tr = true")
	assert.Contains(t, out, "r = p.i_n == 3")
}

func TestParseIntegerCommandWithoutDollarSigilIsASyntaxError(t *testing.T) {
	src := `
integers ( n )
routines ( check )
define check as ( n = 3 )
`
	_, err := parser.Parse(src, "test.sbl", "stemmer")
	require.Error(t, err)
	var synErr *parser.SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestParseDeclaredStringNameAsStandaloneCommandIsStartsWithOnItsChars(t *testing.T) {
	src := `
strings ( suffix )
routines ( check )
define check as ( suffix )
`
	out := generate(t, mustParse(t, src))
	assert.Contains(t, out, "s.StartsWith(p.s_suffix.Chars)")
}

func TestParseReverseIsAcceptedButFailsAtGeneration(t *testing.T) {
	src := `
routines ( check )
define check as ( reverse true )
`
	prog := mustParse(t, src)
	env := ast.NewEnv()
	prog.Generate(env)
	assert.Error(t, env.Err)
}

func TestParseSubstringAmongPairSeparatedByInterveningCommandEmitsOneLookup(t *testing.T) {
	src := `
routines ( check )
booleans ( seen )
externals ( stem )

define check as (
    substring set seen among ( 'a' (true) 'ab' (true) )
)
define stem as check
`
	out := generate(t, mustParse(t, src))
	assert.Equal(t, 1, strings.Count(out, ".Lookup(s)"), "the pair must only emit one substring-walk step")
	lookupIdx := indexOf(out, ".Lookup(s)")
	setSeenIdx := indexOf(out, "p.b_seen = true")
	switchIdx := indexOf(out, "switch")
	require.True(t, lookupIdx >= 0 && setSeenIdx >= 0 && switchIdx >= 0)
	assert.Less(t, lookupIdx, setSeenIdx, "the lookup step runs at the substring's site, before the intervening command")
	assert.Less(t, setSeenIdx, switchIdx, "dispatch runs only after the intervening command")
}

func TestParseSubstringWithoutFollowingAmongIsASemanticError(t *testing.T) {
	src := `
routines ( check )
define check as ( substring true )
`
	_, err := parser.Parse(src, "test.sbl", "stemmer")
	require.Error(t, err)
	var semErr *parser.SemanticError
	assert.ErrorAs(t, err, &semErr)
}

func TestParseAmongWithNoPrecedingSubstringStillEmitsItsOwnLookup(t *testing.T) {
	src := `
routines ( check )
externals ( stem )

define check as ( among ( 'a' 'ab' ) )
define stem as check
`
	out := generate(t, mustParse(t, src))
	assert.Equal(t, 1, strings.Count(out, ".Lookup(s)"))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
