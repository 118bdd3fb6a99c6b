package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubyparse/rubyparse/internal/lines"
)

func TestListSorted(t *testing.T) {
	l := NewList()
	l.Add(Diagnostic{ID: UnexpectedToken, Start: 10, Message: "later"})
	l.Add(Diagnostic{ID: UnexpectedToken, Start: 2, Message: "earlier"})

	assert.Equal(t, 2, l.Len())
	sorted := l.Sorted()
	assert.Equal(t, "earlier", sorted[0].Message)
	assert.Equal(t, "later", sorted[1].Message)

	// Sorted is a copy; it must not disturb emission order in Items().
	assert.Equal(t, "later", l.Items()[0].Message)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
}

func TestSuggest(t *testing.T) {
	known := []string{"utf-8", "shift_jis", "ascii-8bit"}
	assert.Equal(t, "utf-8", Suggest("utf8", known))
	assert.Equal(t, "", Suggest("zzzzzzzz", known))
}

func TestFormatIncludesPositionAndSuggestion(t *testing.T) {
	nl := lines.New(8)
	nl.Append(3) // "abc\ndef"
	d := Diagnostic{
		ID:         InvalidEncoding,
		Severity:   SeverityError,
		Start:      4,
		Message:    "unknown encoding",
		Suggestion: "utf-8",
	}
	out := Format(d, []byte("abc\ndef"), nl)
	assert.Contains(t, out, "unknown encoding")
	assert.Contains(t, out, "line 2")
	assert.Contains(t, out, `did you mean "utf-8"?`)
}
