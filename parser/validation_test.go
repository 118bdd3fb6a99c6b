package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
)

func hasDiag(list []diag.Diagnostic, id diag.ID) bool {
	for _, d := range list {
		if d.ID == id {
			return true
		}
	}
	return false
}

func TestVoidExpressionInAssignment(t *testing.T) {
	_, p := parseSrc(t, "x = return")
	assert.True(t, hasDiag(p.lex.Warnings.Items(), diag.VoidExpression))
}

func TestVoidExpressionThroughIfBranch(t *testing.T) {
	_, p := parseSrc(t, "x = if true\n  next\nend")
	assert.True(t, hasDiag(p.lex.Warnings.Items(), diag.VoidExpression))
}

func TestVoidExpressionNotFlaggedForOrdinaryValue(t *testing.T) {
	_, p := parseSrc(t, "x = if true\n  1\nend")
	assert.False(t, hasDiag(p.lex.Warnings.Items(), diag.VoidExpression))
}

func TestRangeConditionRetagsToFlipFlop(t *testing.T) {
	prog, p := parseSrc(t, "if a..b\n  1\nend")
	assert.Empty(t, p.errors.Items())

	ifNode, ok := soleStatement(t, prog).(*ast.IfNode)
	require.True(t, ok)
	_, ok = ifNode.Predicate.(*ast.FlipFlopNode)
	assert.True(t, ok)
}

func TestIntegerInFlipFlopWarns(t *testing.T) {
	_, p := parseSrc(t, "if 1..b\n  1\nend")
	assert.True(t, hasDiag(p.lex.Warnings.Items(), diag.IntegerInFlipFlop))
}

func TestRegexpConditionRetagsToMatchLastLine(t *testing.T) {
	prog, _ := parseSrc(t, "if /foo/\n  1\nend")
	ifNode, ok := soleStatement(t, prog).(*ast.IfNode)
	require.True(t, ok)
	_, ok = ifNode.Predicate.(*ast.MatchLastLineNode)
	assert.True(t, ok)
}

func TestAssignmentInConditionWarns(t *testing.T) {
	_, p := parseSrc(t, "if x = 1\n  1\nend")
	assert.True(t, hasDiag(p.lex.Warnings.Items(), diag.AssignmentInCondition))
}

func TestLiteralInConditionWarns(t *testing.T) {
	_, p := parseSrc(t, "if 1\n  2\nend")
	assert.True(t, hasDiag(p.lex.Warnings.Items(), diag.LiteralInCondition))
}

func TestDuplicatedHashKeyWarns(t *testing.T) {
	_, p := parseSrc(t, "{a: 1, a: 2}")
	assert.True(t, hasDiag(p.lex.Warnings.Items(), diag.DuplicatedHashKey))
}

func TestDuplicatedWhenClauseWarns(t *testing.T) {
	_, p := parseSrc(t, "case x\nwhen 1\n  :a\nwhen 1\n  :b\nend")
	assert.True(t, hasDiag(p.lex.Warnings.Items(), diag.DuplicatedWhenClause))
}

func TestReturnOutsideMethodErrors(t *testing.T) {
	_, p := parseSrc(t, "class Foo\n  return\nend")
	assert.True(t, hasDiag(p.errors.Items(), diag.ReturnOutsideMethod))
}

func TestReturnInsideMethodInsideClassIsFine(t *testing.T) {
	_, p := parseSrc(t, "class Foo\n  def bar\n    return 1\n  end\nend")
	assert.False(t, hasDiag(p.errors.Items(), diag.ReturnOutsideMethod))
}

func TestTopLevelReturnIsFine(t *testing.T) {
	_, p := parseSrc(t, "return 1")
	assert.False(t, hasDiag(p.errors.Items(), diag.ReturnOutsideMethod))
}

func TestClassInsideMethodErrors(t *testing.T) {
	_, p := parseSrc(t, "def foo\n  class Bar\n  end\nend")
	assert.True(t, hasDiag(p.errors.Items(), diag.ClassOrModuleInMethod))
}

func TestModuleInsideMethodErrors(t *testing.T) {
	_, p := parseSrc(t, "def foo\n  module Bar\n  end\nend")
	assert.True(t, hasDiag(p.errors.Items(), diag.ClassOrModuleInMethod))
}

func TestNumberedParameterRegistersLocal(t *testing.T) {
	prog, p := parseSrc(t, "proc { _1 + _2 }")
	require.NotNil(t, prog)
	block := findBlockNode(t, prog)
	names := make(map[string]bool, len(block.Locals))
	for _, id := range block.Locals {
		names[p.pool.String(id)] = true
	}
	assert.True(t, names["_1"])
	assert.True(t, names["_2"])
}

func TestItParameterRegistersLocal(t *testing.T) {
	prog, p := parseSrc(t, "proc { it.upcase }")
	block := findBlockNode(t, prog)
	names := make(map[string]bool, len(block.Locals))
	for _, id := range block.Locals {
		names[p.pool.String(id)] = true
	}
	assert.True(t, names[ast.ImplicitItName])
}

func TestNumberedParameterAndItConflict(t *testing.T) {
	_, p := parseSrc(t, "proc { _1 + it }")
	assert.True(t, hasDiag(p.errors.Items(), diag.NumberedParamAndIt))
}

func findBlockNode(t *testing.T, prog *ast.ProgramNode) *ast.BlockNode {
	t.Helper()
	call, ok := soleStatement(t, prog).(*ast.CallNode)
	require.True(t, ok)
	block, ok := call.Block.(*ast.BlockNode)
	require.True(t, ok)
	return block
}

func hasDiagFiltered(list []diag.Diagnostic, id diag.ID) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range list {
		if d.ID == id {
			out = append(out, d)
		}
	}
	return out
}
