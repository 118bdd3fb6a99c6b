package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	// "ab\ncd\ne" -> newlines at offsets 2 and 5
	l := New(8)
	l.Append(2)
	l.Append(5)

	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{"first line start", 0, Position{Line: 1, Column: 0}},
		{"first line end", 1, Position{Line: 1, Column: 1}},
		{"first newline itself", 2, Position{Line: 1, Column: 2}},
		{"second line start", 3, Position{Line: 2, Column: 0}},
		{"second line end", 4, Position{Line: 2, Column: 1}},
		{"third line start", 6, Position{Line: 3, Column: 0}},
		{"third line end", 7, Position{Line: 3, Column: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Position(tt.offset))
		})
	}
}

func TestPositionEmpty(t *testing.T) {
	l := New(0)
	assert.Equal(t, Position{Line: 1, Column: 0}, l.Position(0))
	assert.Equal(t, Position{Line: 1, Column: 5}, l.Position(5))
}

func TestIsStrictlyIncreasing(t *testing.T) {
	l := New(8)
	assert.True(t, l.IsStrictlyIncreasing())

	l.Append(2)
	l.Append(5)
	assert.True(t, l.IsStrictlyIncreasing())

	l.Append(5)
	assert.False(t, l.IsStrictlyIncreasing())
}

func TestLenAndOffsets(t *testing.T) {
	l := New(8)
	l.Append(1)
	l.Append(9)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []int{1, 9}, l.Offsets())
}
