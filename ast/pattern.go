package ast

// ArrayPatternNode / FindPatternNode are the two shapes a bracketed or
// bare pattern-list can take (spec §4.4): ArrayPattern when at most the
// first or last element is a splat, FindPattern when both are.
type ArrayPatternNode struct {
	Base
	Constant  Node // optional leading `Constant[...]`/`Constant(...)`
	Requireds []Node
	Rest      Node // *SplatNode | *ImplicitRestNode | nil
	Posts     []Node
}

func NewArrayPattern(loc Location, constant Node, requireds []Node, rest Node, posts []Node) *ArrayPatternNode {
	return &ArrayPatternNode{Base: newBase(KindArrayPatternNode, loc), Constant: constant, Requireds: requireds, Rest: rest, Posts: posts}
}

type FindPatternNode struct {
	Base
	Constant Node
	Left     Node // leading *splat
	Requireds []Node
	Right    Node // trailing *splat
}

func NewFindPattern(loc Location, constant, left Node, requireds []Node, right Node) *FindPatternNode {
	return &FindPatternNode{Base: newBase(KindFindPatternNode, loc), Constant: constant, Left: left, Requireds: requireds, Right: right}
}

// HashPatternNode matches `{key: pattern, **rest}` / `{key:}` (value
// omitted: wrapped in ImplicitNode around a synthesized target).
type HashPatternNode struct {
	Base
	Constant Node
	Elements []*AssocNode // value may be wrapped in *ImplicitNode
	Rest     Node         // *AssocSplatNode | *NoKeywordsParameterNode | nil
}

func NewHashPattern(loc Location, constant Node, elements []*AssocNode, rest Node) *HashPatternNode {
	return &HashPatternNode{Base: newBase(KindHashPatternNode, loc), Constant: constant, Elements: elements, Rest: rest}
}

// AlternationPatternNode is `pattern1 | pattern2`.
type AlternationPatternNode struct {
	Base
	Left, Right Node
}

func NewAlternationPattern(loc Location, left, right Node) *AlternationPatternNode {
	return &AlternationPatternNode{Base: newBase(KindAlternationPatternNode, loc), Left: left, Right: right}
}

// CapturePatternNode is `pattern => name` binding the matched value.
type CapturePatternNode struct {
	Base
	Value  Node
	Target *LocalVariableTargetNode
}

func NewCapturePattern(loc Location, value Node, target *LocalVariableTargetNode) *CapturePatternNode {
	return &CapturePatternNode{Base: newBase(KindCapturePatternNode, loc), Value: value, Target: target}
}

// PinnedVariableNode is `^var` (local/ivar/cvar/gvar/nth-ref/back-ref).
type PinnedVariableNode struct {
	Base
	Variable Node
}

func NewPinnedVariable(loc Location, variable Node) *PinnedVariableNode {
	return &PinnedVariableNode{Base: newBase(KindPinnedVariableNode, loc), Variable: variable}
}

// PinnedExpressionNode is `^(expr)`.
type PinnedExpressionNode struct {
	Base
	Expression Node
}

func NewPinnedExpression(loc Location, expr Node) *PinnedExpressionNode {
	return &PinnedExpressionNode{Base: newBase(KindPinnedExpressionNode, loc), Expression: expr}
}
