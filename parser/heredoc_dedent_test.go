package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubyparse/rubyparse/ast"
)

func strPart(s string) *ast.StringNode {
	return ast.NewString(ast.Location{}, []byte(s), []byte(s))
}

func unescapedOf(n ast.Node) string {
	return string(n.(*ast.StringNode).Unescaped)
}

func TestDedentHeredocPartsStripsCommonIndent(t *testing.T) {
	// The lexer emits one StringNode part per body line; dedent applies
	// independently to each line-leading part.
	parts := []ast.Node{strPart("    foo\n"), strPart("    bar\n")}
	out := dedentHeredocParts(parts, 4)
	assert.Len(t, out, 2)
	assert.Equal(t, "foo\n", unescapedOf(out[0]))
	assert.Equal(t, "bar\n", unescapedOf(out[1]))
}

func TestDedentHeredocPartsDropsEmptyPart(t *testing.T) {
	// A part with no trailing newline (e.g. the whitespace run immediately
	// before a `#{...}` interpolation marker) that is entirely consumed by
	// the dedent width is dropped rather than kept as an empty StringNode.
	parts := []ast.Node{strPart("    ")}
	out := dedentHeredocParts(parts, 4)
	assert.Empty(t, out)
}

func TestDedentHeredocPartsOnlyAtLineStart(t *testing.T) {
	// A non-string part (e.g. interpolation) resets line-start tracking so
	// the text immediately after it is NOT treated as line-leading — it
	// continues the same body line the interpolation appeared on.
	interp := ast.NewEmbeddedVariable(ast.Location{}, nil)
	parts := []ast.Node{
		strPart("  foo"),
		interp,
		strPart(" rest of line\n"),
		strPart("  next line\n"),
	}
	out := dedentHeredocParts(parts, 2)
	assert.Len(t, out, 4)
	assert.Equal(t, "foo", unescapedOf(out[0]))
	assert.Equal(t, " rest of line\n", unescapedOf(out[2]))
	assert.Equal(t, "next line\n", unescapedOf(out[3]))
}

func TestStripLeadingColumnsTabStop(t *testing.T) {
	// A tab expands to the next multiple of 8; stripping width=4 columns
	// must leave a tab that would overshoot untouched.
	got := stripLeadingColumns([]byte("\tfoo"), 4)
	assert.Equal(t, "\tfoo", string(got))

	got = stripLeadingColumns([]byte("\tfoo"), 8)
	assert.Equal(t, "foo", string(got))
}

func TestStripLeadingColumnsStopsAtNonWhitespace(t *testing.T) {
	got := stripLeadingColumns([]byte("  foo"), 4)
	assert.Equal(t, "foo", string(got))
}

func TestDedentHeredocPartsZeroWidthNoop(t *testing.T) {
	parts := []ast.Node{strPart("    foo\n")}
	out := dedentHeredocParts(parts, 0)
	assert.Equal(t, "    foo\n", unescapedOf(out[0]))
}
