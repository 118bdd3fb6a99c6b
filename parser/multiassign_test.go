package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
)

func parseSrc(t *testing.T, src string) (*ast.ProgramNode, *Parser) {
	t.Helper()
	p := New([]byte(src))
	prog := p.parseProgram()
	return prog, p
}

func soleStatement(t *testing.T, prog *ast.ProgramNode) ast.Node {
	t.Helper()
	require.Len(t, prog.Statements.Body, 1)
	return prog.Statements.Body[0]
}

// TestMultiWriteSplatInMiddle covers spec scenario 1: `a, *b, c = 1, 2, 3, 4`
// splits the target list around the single splat and registers all three
// names as locals of the enclosing scope.
func TestMultiWriteSplatInMiddle(t *testing.T) {
	prog, p := parseSrc(t, "a, *b, c = 1, 2, 3, 4")
	assert.Empty(t, p.errors.Items())

	write, ok := soleStatement(t, prog).(*ast.MultiWriteNode)
	require.True(t, ok)

	require.Len(t, write.Target.Lefts, 1)
	left, ok := write.Target.Lefts[0].(*ast.LocalVariableTargetNode)
	require.True(t, ok)
	assert.Equal(t, "a", p.pool.String(left.Name))

	splat, ok := write.Target.Rest.(*ast.SplatNode)
	require.True(t, ok)
	rest, ok := splat.Expression.(*ast.LocalVariableTargetNode)
	require.True(t, ok)
	assert.Equal(t, "b", p.pool.String(rest.Name))

	require.Len(t, write.Target.Rights, 1)
	right, ok := write.Target.Rights[0].(*ast.LocalVariableTargetNode)
	require.True(t, ok)
	assert.Equal(t, "c", p.pool.String(right.Name))

	value, ok := write.Value.(*ast.ArrayNode)
	require.True(t, ok)
	assert.Len(t, value.Elements, 4)

	locals := p.scopes.Current().Locals()
	names := make(map[string]bool, len(locals))
	for _, id := range locals {
		names[p.pool.String(id)] = true
	}
	assert.True(t, names["a"])
	assert.True(t, names["b"])
	assert.True(t, names["c"])
}

// TestMultiAssignSecondSplatErrors covers review item (e): a second splat
// target is kept in the tree (appended to Rights) but flagged as an error
// rather than silently accepted.
func TestMultiAssignSecondSplatErrors(t *testing.T) {
	prog, p := parseSrc(t, "a, *b, *c = 1, 2, 3")
	write, ok := soleStatement(t, prog).(*ast.MultiWriteNode)
	require.True(t, ok)

	require.NotEmpty(t, write.Target.Rights)
	_, ok = write.Target.Rights[len(write.Target.Rights)-1].(*ast.SplatNode)
	assert.True(t, ok, "the second splat is still appended to Rights")

	errs := p.errors.Items()
	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if e.ID == diag.MultipleSplatsInMultiAssign {
			found = true
		}
	}
	assert.True(t, found, "expected a MultipleSplatsInMultiAssign diagnostic")
}
