// Package lines maintains the append-only newline-offset table used to turn
// a byte offset into a (line, column) pair after (or during) a parse.
package lines

import "sort"

// Position is a 1-indexed line and 0-indexed column, the pair a diagnostic or
// a token location is ultimately reported as.
type Position struct {
	Line   int
	Column int
}

// List is a strictly increasing, append-only list of newline byte offsets.
// Offset i in the list is the byte position of the i-th '\n' in the source.
type List struct {
	offsets []int
}

// New allocates a List sized for a source of the given byte length, mirroring
// the teacher's ~byte_length/22 heuristic for its own line tables.
func New(byteLen int) *List {
	cap := byteLen / 22
	if cap < 8 {
		cap = 8
	}
	return &List{offsets: make([]int, 0, cap)}
}

// Append records a newline at the given byte offset. Callers must call this
// in increasing offset order; the order is not checked here, for hot-path
// speed. IsStrictlyIncreasing can verify it afterwards.
func (l *List) Append(offset int) {
	l.offsets = append(l.offsets, offset)
}

// Len returns the number of recorded newlines.
func (l *List) Len() int { return len(l.offsets) }

// Offsets exposes the raw backing slice (read-only use expected).
func (l *List) Offsets() []int { return l.offsets }

// Position maps a byte offset to a 1-indexed line and 0-indexed column by
// binary-searching the newline table. O(log n).
func (l *List) Position(offset int) Position {
	// idx is the number of newlines strictly before offset.
	idx := sort.Search(len(l.offsets), func(i int) bool {
		return l.offsets[i] >= offset
	})
	line := idx + 1
	col := offset
	if idx > 0 {
		col = offset - l.offsets[idx-1] - 1
	}
	if col < 0 {
		col = 0
	}
	return Position{Line: line, Column: col}
}

// IsStrictlyIncreasing reports whether the recorded offsets are sorted with
// no duplicates; used by tests to check the universal invariant from the
// spec's testable-properties section.
func (l *List) IsStrictlyIncreasing() bool {
	for i := 1; i < len(l.offsets); i++ {
		if l.offsets[i] <= l.offsets[i-1] {
			return false
		}
	}
	return true
}
