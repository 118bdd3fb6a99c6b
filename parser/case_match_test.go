package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubyparse/rubyparse/ast"
)

// TestCaseMatchArrayPatternAroundBareSplat covers spec scenario 4:
// `case x; in [1, *, 3]; :ok; end` produces a CaseMatch with a single In
// whose pattern is an ArrayPattern split around the bare splat into
// requireds/rest/posts.
func TestCaseMatchArrayPatternAroundBareSplat(t *testing.T) {
	prog, p := parseSrc(t, "x = nil\ncase x\nin [1, *, 3]\n  :ok\nend")
	assert.Empty(t, p.errors.Items())
	require.Len(t, prog.Statements.Body, 2)

	cm, ok := prog.Statements.Body[1].(*ast.CaseMatchNode)
	require.True(t, ok)
	require.Len(t, cm.Ins, 1)

	pattern, ok := cm.Ins[0].Pattern.(*ast.ArrayPatternNode)
	require.True(t, ok)

	require.Len(t, pattern.Requireds, 1)
	one, ok := pattern.Requireds[0].(*ast.IntegerNode)
	require.True(t, ok)
	assert.Equal(t, "1", one.Value)

	splat, ok := pattern.Rest.(*ast.SplatNode)
	require.True(t, ok)
	assert.Nil(t, splat.Expression)

	require.Len(t, pattern.Posts, 1)
	three, ok := pattern.Posts[0].(*ast.IntegerNode)
	require.True(t, ok)
	assert.Equal(t, "3", three.Value)
}
