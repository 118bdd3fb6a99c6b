package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubyparse/rubyparse/ast"
)

// TestMatchWriteNamedCapture covers spec scenario 5: `"foo" =~ /(?<x>.)/`
// rewrites the `=~` call into a MatchWrite carrying one LocalVariableTarget
// per distinct named capture, and registers that name as a scope local.
func TestMatchWriteNamedCapture(t *testing.T) {
	prog, p := parseSrc(t, `"foo" =~ /(?<x>.)/`)
	assert.Empty(t, p.errors.Items())

	mw, ok := soleStatement(t, prog).(*ast.MatchWriteNode)
	require.True(t, ok)
	require.Len(t, mw.Targets, 1)
	assert.Equal(t, "x", p.pool.String(mw.Targets[0].Name))
	assert.Equal(t, "=~", p.pool.String(mw.Call.Name))

	locals := p.scopes.Current().Locals()
	found := false
	for _, id := range locals {
		if p.pool.String(id) == "x" {
			found = true
		}
	}
	assert.True(t, found, "named capture must be registered as a local")
}

// TestMatchWriteDuplicateCaptureFilteredSilently covers spec scenario 5's
// duplicate-capture edge case: `/(?<x>.)(?<x>.)/` yields exactly one target
// for `x`, and the duplicate is filtered without emitting a diagnostic.
func TestMatchWriteDuplicateCaptureFilteredSilently(t *testing.T) {
	prog, p := parseSrc(t, `"foo" =~ /(?<x>.)(?<x>.)/`)
	assert.Empty(t, p.lex.Warnings.Items())
	assert.Empty(t, p.errors.Items())

	mw, ok := soleStatement(t, prog).(*ast.MatchWriteNode)
	require.True(t, ok)
	require.Len(t, mw.Targets, 1)
	assert.Equal(t, "x", p.pool.String(mw.Targets[0].Name))
}

// TestMatchWriteNoCapturesStaysPlainCall covers the non-triggering case: a
// regexp with no named captures leaves the `=~` call untouched.
func TestMatchWriteNoCapturesStaysPlainCall(t *testing.T) {
	prog, p := parseSrc(t, `"foo" =~ /bar/`)
	assert.Empty(t, p.errors.Items())

	call, ok := soleStatement(t, prog).(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "=~", p.pool.String(call.Name))
}
