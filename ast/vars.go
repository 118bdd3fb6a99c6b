package ast

import "github.com/rubyparse/rubyparse/internal/pool"

// LocalVariableReadNode resolves a bare identifier to a local at Depth
// closed-scope boundaries outward (spec.md §4.3).
type LocalVariableReadNode struct {
	Base
	Name  pool.ID
	Depth int
}

func NewLocalVariableRead(loc Location, name pool.ID, depth int) *LocalVariableReadNode {
	return &LocalVariableReadNode{Base: newBase(KindLocalVariableReadNode, loc), Name: name, Depth: depth}
}

// LocalVariableWriteNode is `name = value` (and the retagged form of a
// variable-call Call node rewritten by the target converter, spec.md §4.3).
type LocalVariableWriteNode struct {
	Base
	Name  pool.ID
	Depth int
	Value Node
}

func NewLocalVariableWrite(loc Location, name pool.ID, depth int, value Node) *LocalVariableWriteNode {
	return &LocalVariableWriteNode{Base: newBase(KindLocalVariableWriteNode, loc), Name: name, Depth: depth, Value: value}
}

// LocalVariableTargetNode is a local appearing as a multi-assignment /
// pattern / block-parameter target, with no value attached directly.
type LocalVariableTargetNode struct {
	Base
	Name  pool.ID
	Depth int
}

func NewLocalVariableTarget(loc Location, name pool.ID, depth int) *LocalVariableTargetNode {
	return &LocalVariableTargetNode{Base: newBase(KindLocalVariableTargetNode, loc), Name: name, Depth: depth}
}

// InstanceVariable (@foo)
type InstanceVariableReadNode struct {
	Base
	Name pool.ID
}
type InstanceVariableWriteNode struct {
	Base
	Name  pool.ID
	Value Node
}
type InstanceVariableTargetNode struct {
	Base
	Name pool.ID
}

func NewInstanceVariableRead(loc Location, name pool.ID) *InstanceVariableReadNode {
	return &InstanceVariableReadNode{Base: newBase(KindInstanceVariableReadNode, loc), Name: name}
}
func NewInstanceVariableWrite(loc Location, name pool.ID, value Node) *InstanceVariableWriteNode {
	return &InstanceVariableWriteNode{Base: newBase(KindInstanceVariableWriteNode, loc), Name: name, Value: value}
}
func NewInstanceVariableTarget(loc Location, name pool.ID) *InstanceVariableTargetNode {
	return &InstanceVariableTargetNode{Base: newBase(KindInstanceVariableTargetNode, loc), Name: name}
}

// ClassVariable (@@foo)
type ClassVariableReadNode struct {
	Base
	Name pool.ID
}
type ClassVariableWriteNode struct {
	Base
	Name  pool.ID
	Value Node
}
type ClassVariableTargetNode struct {
	Base
	Name pool.ID
}

func NewClassVariableRead(loc Location, name pool.ID) *ClassVariableReadNode {
	return &ClassVariableReadNode{Base: newBase(KindClassVariableReadNode, loc), Name: name}
}
func NewClassVariableWrite(loc Location, name pool.ID, value Node) *ClassVariableWriteNode {
	return &ClassVariableWriteNode{Base: newBase(KindClassVariableWriteNode, loc), Name: name, Value: value}
}
func NewClassVariableTarget(loc Location, name pool.ID) *ClassVariableTargetNode {
	return &ClassVariableTargetNode{Base: newBase(KindClassVariableTargetNode, loc), Name: name}
}

// GlobalVariable ($foo)
type GlobalVariableReadNode struct {
	Base
	Name pool.ID
}
type GlobalVariableWriteNode struct {
	Base
	Name  pool.ID
	Value Node
}
type GlobalVariableTargetNode struct {
	Base
	Name pool.ID
}

func NewGlobalVariableRead(loc Location, name pool.ID) *GlobalVariableReadNode {
	return &GlobalVariableReadNode{Base: newBase(KindGlobalVariableReadNode, loc), Name: name}
}
func NewGlobalVariableWrite(loc Location, name pool.ID, value Node) *GlobalVariableWriteNode {
	return &GlobalVariableWriteNode{Base: newBase(KindGlobalVariableWriteNode, loc), Name: name, Value: value}
}
func NewGlobalVariableTarget(loc Location, name pool.ID) *GlobalVariableTargetNode {
	return &GlobalVariableTargetNode{Base: newBase(KindGlobalVariableTargetNode, loc), Name: name}
}

// NthReferenceReadNode is `$1`, `$2`, ... (regexp capture group reference).
type NthReferenceReadNode struct {
	Base
	Number int
}

func NewNthReferenceRead(loc Location, n int) *NthReferenceReadNode {
	return &NthReferenceReadNode{Base: newBase(KindNthReferenceReadNode, loc), Number: n}
}

// BackReferenceReadNode is `$&`, `$~`, `` $` ``, `$'`.
type BackReferenceReadNode struct {
	Base
	Char byte
}

func NewBackReferenceRead(loc Location, ch byte) *BackReferenceReadNode {
	return &BackReferenceReadNode{Base: newBase(KindBackReferenceReadNode, loc), Char: ch}
}

// ConstantReadNode is a bare `Foo` reference.
type ConstantReadNode struct {
	Base
	Name pool.ID
}

func NewConstantRead(loc Location, name pool.ID) *ConstantReadNode {
	return &ConstantReadNode{Base: newBase(KindConstantReadNode, loc), Name: name}
}

type ConstantWriteNode struct {
	Base
	Name  pool.ID
	Value Node
}

func NewConstantWrite(loc Location, name pool.ID, value Node) *ConstantWriteNode {
	return &ConstantWriteNode{Base: newBase(KindConstantWriteNode, loc), Name: name, Value: value}
}

type ConstantTargetNode struct {
	Base
	Name pool.ID
}

func NewConstantTarget(loc Location, name pool.ID) *ConstantTargetNode {
	return &ConstantTargetNode{Base: newBase(KindConstantTargetNode, loc), Name: name}
}

// ConstantPathNode is `A::B::C`, optionally with a leading `::` (top-level,
// tracked via FlagCallSafeNavigation reuse would be wrong; use a bool).
type ConstantPathNode struct {
	Base
	Parent      Node // nil for `::Foo` at the head
	Name        pool.ID
	TopLevel    bool
}

func NewConstantPath(loc Location, parent Node, name pool.ID, topLevel bool) *ConstantPathNode {
	return &ConstantPathNode{Base: newBase(KindConstantPathNode, loc), Parent: parent, Name: name, TopLevel: topLevel}
}

type ConstantPathWriteNode struct {
	Base
	Target *ConstantPathNode
	Value  Node
}

func NewConstantPathWrite(loc Location, target *ConstantPathNode, value Node) *ConstantPathWriteNode {
	return &ConstantPathWriteNode{Base: newBase(KindConstantPathWriteNode, loc), Target: target, Value: value}
}

type ConstantPathTargetNode struct {
	Base
	Target *ConstantPathNode
}

func NewConstantPathTarget(loc Location, target *ConstantPathNode) *ConstantPathTargetNode {
	return &ConstantPathTargetNode{Base: newBase(KindConstantPathTargetNode, loc), Target: target}
}

// NumberedParameterReadNode is an implicit `_1`..`_9` reference.
type NumberedParameterReadNode struct {
	Base
	Number int8
}

func NewNumberedParameterRead(loc Location, n int8) *NumberedParameterReadNode {
	return &NumberedParameterReadNode{Base: newBase(KindNumberedParameterReadNode, loc), Number: n}
}

// ItParameterReadNode is an implicit `it` reference (spec.md §4.3: backed
// by a synthesized local named "0it", unrepresentable in source).
type ItParameterReadNode struct{ Base }

func NewItParameterRead(loc Location) *ItParameterReadNode {
	return &ItParameterReadNode{Base: newBase(KindItParameterReadNode, loc)}
}

// ImplicitItName is the pool name used for the synthesized `it` local, matching
// spec.md §4.3's "0it" (a name no Ruby identifier can ever spell).
const ImplicitItName = "0it"
