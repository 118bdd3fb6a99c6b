// Package diag implements the append-only error/warning diagnostic lists
// (spec component D): records keyed by source location and a stable
// diagnostic id, with optional "did you mean" suggestions.
package diag

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/rubyparse/rubyparse/internal/lines"
)

// Severity distinguishes the error list from the warning list.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ID is the flat diagnostic-id enumeration from spec.md §7. New ids are
// always appended; never renumber, so encoded test fixtures stay stable.
type ID int

const (
	_ ID = iota

	// Lexing errors
	InvalidEscape
	UnterminatedString
	UnterminatedRegexp
	UnterminatedHeredoc
	InvalidEncoding
	InvalidMultibyteChar
	InvalidNumericLiteral

	// Grammar errors
	ExpectedTokenAfter
	UnexpectedToken
	InvalidWriteTarget
	MultipleSplatsInMultiAssign
	ParameterOrderError
	DuplicateParameterName
	MisplacedRescueEnsure

	// Semantic errors
	VoidExpression
	ReturnOutsideMethod
	ClassOrModuleInMethod
	SingletonForLiteral
	NumberedParameterReserved
	NumberedParamAndOrdinaryParam
	NumberedParamAndIt

	// Warnings
	LiteralInCondition
	AssignmentInCondition
	KeywordAtEOL
	AmbiguousPrefix
	IntegerInFlipFlop
	FloatOutOfRange
	DuplicatedHashKey
	DuplicatedWhenClause
	EndInMethod
	TrailingRangeAtEOL
	DuplicateNamedCaptureIgnored
)

// Diagnostic is a single error or warning record, shaped after the teacher's
// parser.ParseError (runtime/parser/tree.go) with a severity and stable id
// added.
type Diagnostic struct {
	ID       ID
	Severity Severity
	Start    int
	End      int
	Message  string

	// Context is the human name of what was being parsed ("parameter list",
	// "class body") — used the way the teacher's Context field is.
	Context string

	// Suggestion is an optional actionable fix, filled in by Suggest below
	// when the offending text fuzzy-matches a known-good alternative.
	Suggestion string
}

func (d Diagnostic) Error() string { return d.Message }

// Location renders Start into a human position using the supplied newline
// table; used by formatters, never by the parser itself (which only ever
// stores byte offsets per spec invariant 1).
func (d Diagnostic) Location(nl *lines.List) lines.Position {
	return nl.Position(d.Start)
}

// List is the append-only diagnostic list; the parser keeps one for errors
// and one for warnings per spec.md §7.
type List struct {
	items []Diagnostic
}

// NewList allocates a List with a small initial capacity; most parses emit
// zero to a handful of diagnostics.
func NewList() *List {
	return &List{items: make([]Diagnostic, 0, 4)}
}

// Add appends a diagnostic.
func (l *List) Add(d Diagnostic) {
	l.items = append(l.items, d)
}

// Items returns the recorded diagnostics in emission order.
func (l *List) Items() []Diagnostic { return l.items }

// Len reports how many diagnostics have been recorded.
func (l *List) Len() int { return len(l.items) }

// Sorted returns a copy of the diagnostics ordered by start offset, the
// shape the spec's §6 error-formatter collaborator consumes ("a sorted
// iterator over {line, col_start, col_end, message}").
func (l *List) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(l.items))
	copy(out, l.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Suggest ranks candidate against known against a fuzzy matcher and returns
// the closest match, or "" if nothing scores. Used for magic-comment keys,
// Emacs-style variable names, and encoding names, where a typo is common and
// a short known-good vocabulary exists.
func Suggest(candidate string, known []string) string {
	ranks := fuzzy.RankFindFold(candidate, known)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// Format renders a diagnostic as a single header line (severity, message,
// id, 1-indexed line and 0-indexed column), followed by a "did you mean"
// line when a suggestion is set. It is the minimal built-in the CLI
// front-end uses directly; it does not print the source line, a caret span,
// or any preceding lines, and src is currently unused.
func Format(d Diagnostic, src []byte, nl *lines.List) string {
	pos := d.Location(nl)
	header := fmt.Sprintf("%s: %s (%s) at line %d, column %d", d.Severity, d.Message, idName(d.ID), pos.Line, pos.Column)
	if d.Suggestion != "" {
		header += fmt.Sprintf("\n  did you mean %q?", d.Suggestion)
	}
	return header
}

func idName(id ID) string {
	return fmt.Sprintf("D%03d", int(id))
}
