// Package scope implements the local-variable scope stack (spec component
// G): closed scopes (methods, classes, modules, lambdas, `do`/`{` blocks)
// bound local lookup; non-closed scopes (begin/rescue/ensure bodies inside
// a method) transparently inherit from their parent.
package scope

import "github.com/rubyparse/rubyparse/internal/pool"

// ParameterKind is a bitset over the parameter categories a scope may
// contain, mutually constrained per spec invariant 7.
type ParameterKind uint8

const (
	Ordinary ParameterKind = 1 << iota
	It
	Numbered
	ForwardingPositionals
	ForwardingKeywords
	ForwardingBlock
	ForwardingAll
)

// NumberedDisallowed marks a scope (typically one pre-populated from
// external outer-scope input) where numbered parameters/`it` can never be
// introduced.
const NumberedDisallowed int8 = -1

// Scope holds one lexical scope's local-name set and parameter bookkeeping.
type Scope struct {
	locals     map[pool.ID]struct{}
	order      []pool.ID // insertion order, transferred to the emitted node
	parameters ParameterKind
	numbered   int8 // -1 disallowed, 0 none, 1..9 max seen
	closed     bool
	parent     *Scope
}

// Stack is the parser's living scope stack; Push/Pop bracket method, class,
// module, lambda, and block bodies, while non-closed (transparent) scopes
// are used for begin/rescue/ensure bodies that share their enclosing
// method's locals.
type Stack struct {
	top *Scope
}

// New returns an empty stack.
func New() *Stack { return &Stack{} }

// Push opens a new scope. closed scopes bound local lookup at this frame;
// transparent ones forward lookups/writes to the parent.
func (s *Stack) Push(closed bool) *Scope {
	sc := &Scope{
		locals: make(map[pool.ID]struct{}),
		closed: closed,
		parent: s.top,
	}
	s.top = sc
	return sc
}

// PushPrePopulated opens a closed scope whose locals are pre-seeded (the
// "outer lexical scopes" parse option, spec.md §6) and which can never use
// numbered parameters or `it` (spec.md §3 lifecycle note).
func (s *Stack) PushPrePopulated(names []pool.ID) *Scope {
	sc := s.Push(true)
	sc.numbered = NumberedDisallowed
	for _, id := range names {
		sc.locals[id] = struct{}{}
		sc.order = append(sc.order, id)
	}
	return sc
}

// Pop closes and removes the top scope, transferring ownership of its local
// list to the caller (spec invariant 3: "scope-pop transfers ownership of
// the local list into the emitted node").
func (s *Stack) Pop() *Scope {
	sc := s.top
	if sc != nil {
		s.top = sc.parent
	}
	return sc
}

// Current returns the innermost scope.
func (s *Stack) Current() *Scope { return s.top }

// Add inserts name as a local in the innermost closed scope reachable from
// the top (transparent scopes forward the add to their parent, since their
// locals are really the enclosing method's).
func (s *Stack) Add(id pool.ID) {
	sc := s.ownerScope(s.top)
	if sc == nil {
		return
	}
	if _, ok := sc.locals[id]; !ok {
		sc.locals[id] = struct{}{}
		sc.order = append(sc.order, id)
	}
}

// Depth returns the number of closed-scope boundaries outward to the
// innermost scope containing name, or -1 if not found (spec.md §4.3).
func (s *Stack) Depth(id pool.ID) int {
	depth := 0
	sc := s.top
	for sc != nil {
		if _, ok := sc.locals[id]; ok {
			return depth
		}
		if sc.closed {
			depth++
		}
		sc = sc.parent
	}
	return -1
}

// Contains reports whether name resolves anywhere in the visible chain.
func (s *Stack) Contains(id pool.ID) bool { return s.Depth(id) >= 0 }

// ownerScope walks outward from sc to the nearest scope that owns writes at
// this position: the transparent chain up to (and including) the first
// closed scope. Ruby locals declared inside a bare `begin...end` still
// belong to the enclosing method.
func (s *Stack) ownerScope(sc *Scope) *Scope {
	for sc != nil {
		if sc.closed || sc.parent == nil {
			return sc
		}
		sc = sc.parent
	}
	return nil
}

// AllowsNumbered reports whether the current position may introduce
// numbered parameters or `it`: false when the innermost scope is
// pre-populated (NumberedDisallowed) or already has ordinary parameters.
// Only the innermost scope is examined; use of numbered parameters or
// `it` by an enclosing scope is not checked.
func (s *Stack) AllowsNumbered() bool {
	sc := s.top
	if sc == nil {
		return false
	}
	if sc.numbered == NumberedDisallowed {
		return false
	}
	if sc.parameters&Ordinary != 0 {
		return false
	}
	return true
}

// NoteNumbered records that numbered parameter _k was referenced, setting
// the Numbered bit and raising numbered to max(numbered, k).
func (sc *Scope) NoteNumbered(k int8) {
	sc.parameters |= Numbered
	if int8(sc.numbered) < k {
		sc.numbered = k
	}
}

// NoteIt records that `it` was referenced as an implicit parameter.
func (sc *Scope) NoteIt() { sc.parameters |= It }

// NoteOrdinary records that an ordinary parameter was declared.
func (sc *Scope) NoteOrdinary() { sc.parameters |= Ordinary }

// Closed reports whether sc bounds local lookup.
func (sc *Scope) Closed() bool { return sc.closed }

// Numbered reports the maximum numbered-parameter index seen, or the
// NumberedDisallowed sentinel.
func (sc *Scope) Numbered() int8 { return sc.numbered }

// Parameters reports the parameter-kind bitset accumulated so far.
func (sc *Scope) Parameters() ParameterKind { return sc.parameters }

// Locals returns the local-id list in declaration order, to be moved onto
// the emitted scope-owning AST node on Pop.
func (sc *Scope) Locals() []pool.ID { return sc.order }

// MutuallyExclusive checks spec invariant 7/§8's universal property: at
// most one of (Ordinary, It, Numbered) is set on a closed scope.
func (sc *Scope) MutuallyExclusive() bool {
	n := 0
	if sc.parameters&Ordinary != 0 {
		n++
	}
	if sc.parameters&It != 0 {
		n++
	}
	if sc.parameters&Numbered != 0 {
		n++
	}
	return n <= 1
}
