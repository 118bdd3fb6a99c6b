package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubyparse/rubyparse/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New([]byte(src), Options{})
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestHeredocTokenStream(t *testing.T) {
	src := "x = <<~A\n  hi\nA\n"
	toks := tokenize(t, src)
	assert.Contains(t, kinds(toks), token.HEREDOC_BEGIN)
	assert.Contains(t, kinds(toks), token.HEREDOC_END)
}

func TestTrackCommonWhitespaceTabStop8(t *testing.T) {
	// A body line beginning with one tab has column width 8, not 1.
	l := New([]byte("dummy"), Options{})
	l.modes.Push(Mode{Kind: ModeHeredoc, Indent: HeredocIndentTilde, CommonWhitespace: -1})
	l.trackCommonWhitespace([]byte("\tfoo\n"))
	assert.Equal(t, 8, l.modes.Current().CommonWhitespace)
}

func TestTrackCommonWhitespaceIgnoresBlankLines(t *testing.T) {
	l := New([]byte("dummy"), Options{})
	l.modes.Push(Mode{Kind: ModeHeredoc, Indent: HeredocIndentTilde, CommonWhitespace: -1})
	l.trackCommonWhitespace([]byte("   \n")) // whitespace-only line, excluded
	assert.Equal(t, -1, l.modes.Current().CommonWhitespace)

	l.trackCommonWhitespace([]byte("  foo\n"))
	assert.Equal(t, 2, l.modes.Current().CommonWhitespace)
}

func TestTrackCommonWhitespaceKeepsMinimum(t *testing.T) {
	l := New([]byte("dummy"), Options{})
	l.modes.Push(Mode{Kind: ModeHeredoc, Indent: HeredocIndentTilde, CommonWhitespace: -1})
	l.trackCommonWhitespace([]byte("    foo\n"))
	l.trackCommonWhitespace([]byte("  bar\n"))
	assert.Equal(t, 2, l.modes.Current().CommonWhitespace)
}

func TestLastHeredocDedentResetsForNonTildeHeredoc(t *testing.T) {
	src := "x = <<-A\n  hi\n  A\n"
	l := New([]byte(src), Options{})
	for {
		tok := l.Next()
		if tok.Kind == token.HEREDOC_END {
			break
		}
		if tok.Kind == token.EOF {
			t.Fatal("never saw HEREDOC_END")
		}
	}
	assert.Equal(t, -1, l.LastHeredocDedent())
}
