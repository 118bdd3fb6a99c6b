package ast

import "github.com/rubyparse/rubyparse/internal/pool"

// ParametersNode groups a method/block/lambda's full parameter list, in the
// fixed order spec.md §8 scenario 6 names: requireds, optionals, rest,
// posts (required params after a rest), keywords, keyword_rest, block.
type ParametersNode struct {
	Base
	Requireds    []*RequiredParameterNode
	Optionals    []*OptionalParameterNode
	Rest         *RestParameterNode // nil if absent
	Posts        []*RequiredParameterNode
	Keywords     []Node // *RequiredKeywordParameterNode | *OptionalKeywordParameterNode
	KeywordRest  Node   // *KeywordRestParameterNode | *NoKeywordsParameterNode | *ForwardingParameterNode, nil
	Block        *BlockParameterNode // nil if absent
}

func NewParameters(loc Location) *ParametersNode {
	return &ParametersNode{Base: newBase(KindParametersNode, loc)}
}

type RequiredParameterNode struct {
	Base
	Name pool.ID
}

func NewRequiredParameter(loc Location, name pool.ID) *RequiredParameterNode {
	return &RequiredParameterNode{Base: newBase(KindRequiredParameterNode, loc), Name: name}
}

type OptionalParameterNode struct {
	Base
	Name  pool.ID
	Value Node
}

func NewOptionalParameter(loc Location, name pool.ID, value Node) *OptionalParameterNode {
	return &OptionalParameterNode{Base: newBase(KindOptionalParameterNode, loc), Name: name, Value: value}
}

// RestParameterNode is `*name` / bare `*`.
type RestParameterNode struct {
	Base
	Name pool.ID // pool.Absent for the anonymous `*`
}

func NewRestParameter(loc Location, name pool.ID) *RestParameterNode {
	return &RestParameterNode{Base: newBase(KindRestParameterNode, loc), Name: name}
}

// RequiredKeywordParameterNode is `name:` with no default.
type RequiredKeywordParameterNode struct {
	Base
	Name pool.ID
}

func NewRequiredKeywordParameter(loc Location, name pool.ID) *RequiredKeywordParameterNode {
	return &RequiredKeywordParameterNode{Base: newBase(KindRequiredKeywordParameterNode, loc), Name: name}
}

// OptionalKeywordParameterNode is `name: default`.
type OptionalKeywordParameterNode struct {
	Base
	Name  pool.ID
	Value Node
}

func NewOptionalKeywordParameter(loc Location, name pool.ID, value Node) *OptionalKeywordParameterNode {
	return &OptionalKeywordParameterNode{Base: newBase(KindOptionalKeywordParameterNode, loc), Name: name, Value: value}
}

// KeywordRestParameterNode is `**name` / bare `**`.
type KeywordRestParameterNode struct {
	Base
	Name pool.ID
}

func NewKeywordRestParameter(loc Location, name pool.ID) *KeywordRestParameterNode {
	return &KeywordRestParameterNode{Base: newBase(KindKeywordRestParameterNode, loc), Name: name}
}

// NoKeywordsParameterNode is the explicit `**nil` "accepts no keywords" marker.
type NoKeywordsParameterNode struct{ Base }

func NewNoKeywordsParameter(loc Location) *NoKeywordsParameterNode {
	return &NoKeywordsParameterNode{Base: newBase(KindNoKeywordsParameterNode, loc)}
}

// BlockParameterNode is `&name` / bare `&`.
type BlockParameterNode struct {
	Base
	Name pool.ID
}

func NewBlockParameter(loc Location, name pool.ID) *BlockParameterNode {
	return &BlockParameterNode{Base: newBase(KindBlockParameterNode, loc), Name: name}
}

// ForwardingParameterNode is `...`, setting the scope's forwarding bits for
// positionals+keywords+block all at once.
type ForwardingParameterNode struct{ Base }

func NewForwardingParameter(loc Location) *ForwardingParameterNode {
	return &ForwardingParameterNode{Base: newBase(KindForwardingParameterNode, loc)}
}

// ImplicitNode wraps a hash-pattern value that was omitted (`{x:}`),
// marking the synthesized LocalVariableTargetNode it contains as implicit.
type ImplicitNode struct {
	Base
	Value Node
}

func NewImplicit(loc Location, value Node) *ImplicitNode {
	return &ImplicitNode{Base: newBase(KindImplicitNode, loc), Value: value}
}

// ImplicitRestNode is a trailing bare comma in a multi-assignment /
// array-pattern target list (`a, b, = value`), an implicit rest with no name.
type ImplicitRestNode struct{ Base }

func NewImplicitRest(loc Location) *ImplicitRestNode {
	return &ImplicitRestNode{Base: newBase(KindImplicitRestNode, loc)}
}

// MultiTargetNode groups the comma-separated targets of a multi-assignment
// left-hand side (spec.md §4.3): Lefts before the (at most one) Rest splat,
// Rights after it. Extra splats beyond the first are errors but are still
// appended to Rights per spec invariant 8.
type MultiTargetNode struct {
	Base
	Lefts []Node
	Rest  Node // *SplatNode | *ImplicitRestNode | nil
	Rights []Node
}

func NewMultiTarget(loc Location, lefts []Node, rest Node, rights []Node) *MultiTargetNode {
	return &MultiTargetNode{Base: newBase(KindMultiTargetNode, loc), Lefts: lefts, Rest: rest, Rights: rights}
}

// MultiWriteNode wraps a MultiTargetNode with its `=` value.
type MultiWriteNode struct {
	Base
	Target *MultiTargetNode
	Value  Node
}

func NewMultiWrite(loc Location, target *MultiTargetNode, value Node) *MultiWriteNode {
	return &MultiWriteNode{Base: newBase(KindMultiWriteNode, loc), Target: target, Value: value}
}
