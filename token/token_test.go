package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStringKnown(t *testing.T) {
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "INTEGER", INTEGER.String())
	assert.Equal(t, "HEREDOC_END", HEREDOC_END.String())
}

func TestKindStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Kind(-1)", Kind(-1).String())
	assert.Equal(t, "Kind(999999)", Kind(999999).String())
}

func TestTokenText(t *testing.T) {
	src := []byte("hello world")
	tok := Token{Kind: INVALID, Start: 6, End: 11}
	assert.Equal(t, "world", string(tok.Text(src)))
}
