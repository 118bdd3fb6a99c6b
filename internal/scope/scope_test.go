package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubyparse/rubyparse/internal/pool"
)

func TestDepthFindsLocalAtCurrentScope(t *testing.T) {
	p := pool.New(95)
	s := New()
	s.Push(true)
	id := p.Intern([]byte("x"))
	s.Add(id)
	assert.Equal(t, 0, s.Depth(id))
	assert.True(t, s.Contains(id))
}

func TestDepthCrossesTransparentScopesOnly(t *testing.T) {
	p := pool.New(95)
	s := New()
	s.Push(true) // method body
	id := p.Intern([]byte("x"))
	s.Add(id)
	s.Push(false) // begin/rescue body, transparent
	assert.Equal(t, 0, s.Depth(id), "transparent scope doesn't add a depth boundary")
}

func TestDepthCountsClosedBoundaries(t *testing.T) {
	p := pool.New(95)
	s := New()
	s.Push(true) // outer method
	id := p.Intern([]byte("x"))
	s.Add(id)
	s.Push(true) // block
	assert.Equal(t, 1, s.Depth(id))
}

func TestDepthNotFound(t *testing.T) {
	p := pool.New(95)
	s := New()
	s.Push(true)
	assert.Equal(t, -1, s.Depth(p.Intern([]byte("missing"))))
}

func TestAddWritesToOwnerScopeNotTransparentChild(t *testing.T) {
	p := pool.New(95)
	s := New()
	s.Push(true)
	s.Push(false) // transparent
	id := p.Intern([]byte("x"))
	s.Add(id)
	// Added while "inside" the transparent scope, but it must land in the
	// owning closed scope so Pop()ing the transparent frame doesn't lose it.
	assert.Equal(t, []pool.ID{id}, s.Current().parent.Locals())
}

func TestPopTransfersLocals(t *testing.T) {
	p := pool.New(95)
	s := New()
	s.Push(true)
	id := p.Intern([]byte("x"))
	s.Add(id)
	sc := s.Pop()
	assert.Equal(t, []pool.ID{id}, sc.Locals())
	assert.Nil(t, s.Current())
}

func TestPushPrePopulatedDisallowsNumbered(t *testing.T) {
	p := pool.New(95)
	s := New()
	id := p.Intern([]byte("x"))
	s.PushPrePopulated([]pool.ID{id})
	assert.True(t, s.Contains(id))
	assert.False(t, s.AllowsNumbered())
}

func TestAllowsNumberedFalseAfterOrdinaryParam(t *testing.T) {
	s := New()
	sc := s.Push(true)
	sc.NoteOrdinary()
	assert.False(t, s.AllowsNumbered())
}

func TestMutuallyExclusive(t *testing.T) {
	sc := &Scope{}
	assert.True(t, sc.MutuallyExclusive())
	sc.NoteOrdinary()
	assert.True(t, sc.MutuallyExclusive())
	sc.NoteIt()
	assert.False(t, sc.MutuallyExclusive())
}
