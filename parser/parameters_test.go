package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
)

// TestDefParametersAllShapes covers spec scenario 6:
// `def foo(a, b=1, *c, d, e:, f: 2, **g, &h); end` must produce a
// Parameters node with every shape in the fixed requireds/optionals/
// rest/posts/keywords/keyword_rest/block order, and all eight names
// registered as locals of the method's scope.
func TestDefParametersAllShapes(t *testing.T) {
	prog, p := parseSrc(t, "def foo(a, b=1, *c, d, e:, f: 2, **g, &h); end")
	assert.Empty(t, p.errors.Items())

	def, ok := soleStatement(t, prog).(*ast.DefNode)
	require.True(t, ok)
	params := def.Parameters
	require.NotNil(t, params)

	require.Len(t, params.Requireds, 1)
	assert.Equal(t, "a", p.pool.String(params.Requireds[0].Name))

	require.Len(t, params.Optionals, 1)
	assert.Equal(t, "b", p.pool.String(params.Optionals[0].Name))
	optVal, ok := params.Optionals[0].Value.(*ast.IntegerNode)
	require.True(t, ok)
	assert.Equal(t, "1", optVal.Value)

	require.NotNil(t, params.Rest)
	assert.Equal(t, "c", p.pool.String(params.Rest.Name))

	require.Len(t, params.Posts, 1)
	assert.Equal(t, "d", p.pool.String(params.Posts[0].Name))

	require.Len(t, params.Keywords, 2)
	reqKw, ok := params.Keywords[0].(*ast.RequiredKeywordParameterNode)
	require.True(t, ok)
	assert.Equal(t, "e", p.pool.String(reqKw.Name))
	optKw, ok := params.Keywords[1].(*ast.OptionalKeywordParameterNode)
	require.True(t, ok)
	assert.Equal(t, "f", p.pool.String(optKw.Name))
	fVal, ok := optKw.Value.(*ast.IntegerNode)
	require.True(t, ok)
	assert.Equal(t, "2", fVal.Value)

	kwRest, ok := params.KeywordRest.(*ast.KeywordRestParameterNode)
	require.True(t, ok)
	assert.Equal(t, "g", p.pool.String(kwRest.Name))

	require.NotNil(t, params.Block)
	assert.Equal(t, "h", p.pool.String(params.Block.Name))

	names := make(map[string]bool, len(def.Locals))
	for _, id := range def.Locals {
		names[p.pool.String(id)] = true
	}
	for _, want := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		assert.True(t, names[want], "expected %q among def locals", want)
	}
}

// TestDuplicateParameterNameIsDiagnosed covers review item (d): a repeated
// parameter name in the same list is still added to the tree but flagged.
func TestDuplicateParameterNameIsDiagnosed(t *testing.T) {
	_, p := parseSrc(t, "def foo(a, a); end")
	errs := p.errors.Items()
	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if e.ID == diag.DuplicateParameterName {
			found = true
		}
	}
	assert.True(t, found)
}

// TestRequiredAfterOptionalParameterIsDiagnosed covers review item (d):
// `def f(a=1, b)` — a required parameter after an optional, with no rest
// to absorb it, is a ParameterOrderError.
func TestRequiredAfterOptionalParameterIsDiagnosed(t *testing.T) {
	_, p := parseSrc(t, "def f(a=1, b); end")
	errs := p.errors.Items()
	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if e.ID == diag.ParameterOrderError {
			found = true
		}
	}
	assert.True(t, found)
}

// TestRequiredAfterOptionalThenRestIsFine ensures the order check doesn't
// false-positive once a rest parameter is present to absorb the required
// parameter into Posts instead of Requireds.
func TestRequiredAfterOptionalThenRestIsFine(t *testing.T) {
	_, p := parseSrc(t, "def f(a=1, *rest, b); end")
	for _, e := range p.errors.Items() {
		assert.NotEqual(t, diag.ParameterOrderError, e.ID)
	}
}
