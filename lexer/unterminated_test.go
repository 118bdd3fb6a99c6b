package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/token"
)

func drainErrors(src string) []diag.Diagnostic {
	l := New([]byte(src), Options{})
	for {
		tok := l.Next()
		if tok.Kind == token.EOF {
			break
		}
	}
	return l.Errors.Items()
}

func hasDiagID(list []diag.Diagnostic, id diag.ID) bool {
	for _, d := range list {
		if d.ID == id {
			return true
		}
	}
	return false
}

// TestUnterminatedStringRecovers covers lexer-recovery: a double-quoted
// string that runs to end of file reports UnterminatedString and still
// produces a synthesized closing token instead of looping forever.
func TestUnterminatedStringRecovers(t *testing.T) {
	assert.True(t, hasDiagID(drainErrors(`x = "abc`), diag.UnterminatedString))
}

// TestUnterminatedRegexpRecovers mirrors TestUnterminatedStringRecovers for
// a `/.../` regexp literal left unclosed at end of file.
func TestUnterminatedRegexpRecovers(t *testing.T) {
	assert.True(t, hasDiagID(drainErrors(`x = /abc`), diag.UnterminatedRegexp))
}

// TestUnterminatedHeredocRecovers covers a heredoc whose terminator line
// never appears before end of file.
func TestUnterminatedHeredocRecovers(t *testing.T) {
	assert.True(t, hasDiagID(drainErrors("x = <<~EOS\nfoo\nbar\n"), diag.UnterminatedHeredoc))
}
