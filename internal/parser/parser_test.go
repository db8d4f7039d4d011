package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koddsson/lox-interpreter/internal/ast"
	"github.com/koddsson/lox-interpreter/internal/scanner"
)

func TestParse_ArithmeticPrecedence(t *testing.T) {
	toks := scanner.New("1 + 2 * 3;").ScanTokens()
	stmts, err := Parse(toks)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)

	bin, ok := exprStmt.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.Lexeme)

	left, ok := bin.Left.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, float64(1), left.Value)

	right, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op.Lexeme)
}

func TestParse_VarDeclaration(t *testing.T) {
	toks := scanner.New(`var a = "foo";`).ScanTokens()
	stmts, err := Parse(toks)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name.Lexeme)

	lit, ok := v.Initializer.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "foo", lit.Value)
}

func TestParse_VarDeclarationMissingName(t *testing.T) {
	toks := scanner.New(`var = 1;`).ScanTokens()
	_, err := Parse(toks)
	require.Error(t, err)
	assert.Equal(t, "Expect variable name.", err.Error())
}

func TestParse_AssignmentRequiresVariableTarget(t *testing.T) {
	toks := scanner.New(`1 = 2;`).ScanTokens()
	_, err := Parse(toks)
	require.Error(t, err)
	assert.Equal(t, "Invalid assignment target.", err.Error())
}

func TestParse_BlockAndIfElse(t *testing.T) {
	toks := scanner.New(`{ if (a) print 1; else print 2; }`).ScanTokens()
	stmts, err := Parse(toks)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 1)

	ifStmt, ok := block.Statements[0].(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_WhileLoop(t *testing.T) {
	toks := scanner.New(`while (true) print 1;`).ScanTokens()
	stmts, err := Parse(toks)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	_, ok := stmts[0].(*ast.While)
	assert.True(t, ok)
}

// TestParse_ForDesugarsToBlockWhile checks the for-loop rewrite described in
// the for statement desugars to a Block/While pair: initializer and body end up wrapped as
// Block([init, While(cond, Block([body, increment]))]).
func TestParse_ForDesugarsToBlockWhile(t *testing.T) {
	toks := scanner.New(`for (var x = 0; x < 3; x = x + 1) print x;`).ScanTokens()
	stmts, err := Parse(toks)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*ast.VarStmt)
	assert.True(t, ok, "first statement should be the initializer")

	whileStmt, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok, "second statement should be the desugared while")

	whileBody, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, whileBody.Statements, 2)

	_, ok = whileBody.Statements[1].(*ast.ExpressionStmt)
	assert.True(t, ok, "increment should be appended as an expression statement")
}

func TestParse_ForWithoutConditionDefaultsToTrue(t *testing.T) {
	toks := scanner.New(`for (;;) print 1;`).ScanTokens()
	stmts, err := Parse(toks)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	whileStmt, ok := stmts[0].(*ast.While)
	require.True(t, ok)

	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_LogicalOperatorsAreDistinctFromBinary(t *testing.T) {
	toks := scanner.New(`true or false;`).ScanTokens()
	stmts, err := Parse(toks)
	require.NoError(t, err)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	_, ok := exprStmt.Expr.(*ast.Logical)
	assert.True(t, ok, "`or` must produce a Logical node, not a Binary node")
}

func TestParse_MissingSemicolonIsAParseError(t *testing.T) {
	toks := scanner.New(`print 1`).ScanTokens()
	_, err := Parse(toks)
	require.Error(t, err)
	assert.Equal(t, "Expect ';' after value.", err.Error())
}

func TestParse_UnclosedGroupingIsAParseError(t *testing.T) {
	toks := scanner.New(`(1 + 2;`).ScanTokens()
	_, err := Parse(toks)
	require.Error(t, err)
	assert.Equal(t, "Expect ')' after expression.", err.Error())
}
