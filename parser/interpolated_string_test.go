package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubyparse/rubyparse/ast"
)

// TestInterpolatedStringSplitsPartsAroundEmbeddedCall covers spec scenario
// 2: a `#{name}` interpolation where `name` is not a known local parses as a
// variable call with an implicit self receiver, flanked by the literal
// string parts on either side.
func TestInterpolatedStringSplitsPartsAroundEmbeddedCall(t *testing.T) {
	prog, p := parseSrc(t, `"hello #{name} world"`)
	assert.Empty(t, p.errors.Items())

	str, ok := soleStatement(t, prog).(*ast.InterpolatedStringNode)
	require.True(t, ok)
	require.Len(t, str.Parts, 3)

	first, ok := str.Parts[0].(*ast.StringNode)
	require.True(t, ok)
	assert.Equal(t, "hello ", string(first.Unescaped))

	embedded, ok := str.Parts[1].(*ast.EmbeddedStatementsNode)
	require.True(t, ok)
	require.Len(t, embedded.Statements.Body, 1)
	call, ok := embedded.Statements.Body[0].(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "name", p.pool.String(call.Name))
	assert.Nil(t, call.Receiver)
	assert.True(t, call.HasFlags(ast.FlagCallVariableCall))

	last, ok := str.Parts[2].(*ast.StringNode)
	require.True(t, ok)
	assert.Equal(t, " world", string(last.Unescaped))
}

// TestInterpolatedStringResolvesKnownLocal covers the companion case: once
// `name` has been assigned earlier in the same scope, the same `#{name}`
// interpolation resolves to a local-variable read rather than a call.
func TestInterpolatedStringResolvesKnownLocal(t *testing.T) {
	prog, p := parseSrc(t, "name = 1\n\"hello #{name} world\"")
	assert.Empty(t, p.errors.Items())
	require.Len(t, prog.Statements.Body, 2)

	str, ok := prog.Statements.Body[1].(*ast.InterpolatedStringNode)
	require.True(t, ok)
	require.Len(t, str.Parts, 3)

	embedded, ok := str.Parts[1].(*ast.EmbeddedStatementsNode)
	require.True(t, ok)
	require.Len(t, embedded.Statements.Body, 1)
	read, ok := embedded.Statements.Body[0].(*ast.LocalVariableReadNode)
	require.True(t, ok)
	assert.Equal(t, "name", p.pool.String(read.Name))
}
