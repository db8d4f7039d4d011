package interpreter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koddsson/lox-interpreter/internal/parser"
	"github.com/koddsson/lox-interpreter/internal/scanner"
	"github.com/koddsson/lox-interpreter/internal/value"
)

// run scans, parses, and interprets src, returning what was printed to
// stdout and the final interpretation error (nil on success).
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks := scanner.New(src).ScanTokens()
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)

	var out strings.Builder
	in := New(&out)
	_, runErr := in.Interpret(stmts)
	return out.String(), runErr
}

func TestInterpret_EmptyProgram(t *testing.T) {
	out, err := run(t, "")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, err := run(t, `var a = "foo"; var b = "bar"; print a + b;`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_DivisionByZero(t *testing.T) {
	_, err := run(t, "print 10 / 0;")
	require.Error(t, err)
	assert.Same(t, ErrDivisionByZero, err)
	assert.Equal(t, "Tried dividing by zero!", err.Error())
}

func TestInterpret_StringPlusNumberIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "hi" + 1;`)
	require.Error(t, err)
	assert.Equal(t, "Runtime error in binary expression!", err.Error())
}

func TestInterpret_ForLoopDesugaring(t *testing.T) {
	out, err := run(t, `var i = 0; for (var x = 0; x < 3; x = x + 1) { i = i + 1; } print i;`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestInterpret_BlockScopeDoesNotLeak(t *testing.T) {
	_, err := run(t, `{ var x = 1; } print x;`)
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'x'.", err.Error())
}

func TestInterpret_AssignmentToUndeclaredVariableIsAnError(t *testing.T) {
	_, err := run(t, `x = 1;`)
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'x'.", err.Error())
}

func TestInterpret_UnaryMinusRequiresNumber(t *testing.T) {
	_, err := run(t, `print -"foo";`)
	require.Error(t, err)
	assert.Equal(t, "Operand must be a number.", err.Error())
}

func TestInterpret_DoubleNegationIsIdentity(t *testing.T) {
	out, err := run(t, `print -(-5);`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestInterpret_DoubleBangIsTruthiness(t *testing.T) {
	out, err := run(t, `print !!0;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out) // 0 is truthy: only nil/false are falsy
}

func TestInterpret_ShortCircuitOr(t *testing.T) {
	// If short-circuit didn't hold, the right side would also try to treat a
	// number as divisor and blow up; instead it must never be evaluated.
	out, err := run(t, `print true or (1/0 == 1);`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_ShortCircuitAnd(t *testing.T) {
	out, err := run(t, `print false and (1/0 == 1);`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestInterpret_EqualityIsCrossVariantFalse(t *testing.T) {
	out, err := run(t, `print 1 == "1";`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestInterpret_NilEqualsNil(t *testing.T) {
	out, err := run(t, `print nil == nil;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_BlockReexposesOuterBinding(t *testing.T) {
	out, err := run(t, `var x = "outer"; { print x; }`)
	require.NoError(t, err)
	assert.Equal(t, "outer\n", out)
}

func TestInterpret_BlockShadowsWithoutMutatingOuter(t *testing.T) {
	out, err := run(t, `var x = 1; { var x = 2; print x; } print x;`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestInterpret_VarStmtInitializerNotVisibleBeforeEvaluation(t *testing.T) {
	// The initializer expression can't see its own not-yet-bound name: a
	// fresh var named `a` shadowing an outer `a` must still read the outer
	// value while evaluating its own initializer.
	out, err := run(t, `var a = "outer"; { var a = a; print a; }`)
	require.NoError(t, err)
	assert.Equal(t, "outer\n", out)
}

func TestInterpret_PrintStatementProducesNilResult(t *testing.T) {
	toks := scanner.New(`print 1;`)
	tokens := toks.ScanTokens()
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)

	var out strings.Builder
	in := New(&out)
	results, err := in.Interpret(stmts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, value.Nil{}, results[0])
}
