package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternDeduplicates(t *testing.T) {
	p := New(95)
	a := p.Intern([]byte("foo"))
	b := p.Intern([]byte("foo"))
	c := p.Intern([]byte("bar"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "foo", p.String(a))
	assert.Equal(t, "bar", p.String(c))
}

func TestInternOwnedDeduplicatesAgainstIntern(t *testing.T) {
	p := New(95)
	a := p.Intern([]byte("foo="))
	b := p.InternOwned("foo=")
	assert.Equal(t, a, b)
}

func TestInternStaticIsInternOwned(t *testing.T) {
	p := New(95)
	a := p.InternStatic("0it")
	b := p.InternOwned("0it")
	assert.Equal(t, a, b)
}

func TestAbsentIsReservedZero(t *testing.T) {
	p := New(95)
	assert.Equal(t, Absent, ID(0))
	assert.Nil(t, p.Bytes(Absent))
	assert.Equal(t, "", p.String(Absent))
}

func TestLen(t *testing.T) {
	p := New(95)
	assert.Equal(t, 0, p.Len())
	p.Intern([]byte("a"))
	p.Intern([]byte("b"))
	p.Intern([]byte("a"))
	assert.Equal(t, 2, p.Len())
}

func TestBytesOutOfRange(t *testing.T) {
	p := New(95)
	assert.Nil(t, p.Bytes(ID(999)))
}
