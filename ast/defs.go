package ast

import "github.com/rubyparse/rubyparse/internal/pool"

// DefNode is a method definition: `def name(params) ... end`, `def
// recv.name(params) = endless_body`, and singleton (`def self.name`) forms.
type DefNode struct {
	Base
	Name       pool.ID
	Receiver   Node // non-nil for `def self.foo` / `def recv.foo`
	Parameters *ParametersNode
	Body       Node // *StatementsNode | *BeginNode (rescue/ensure present) | expression (endless)
	IsEndless  bool
	Locals     []pool.ID
}

func NewDef(loc Location, name pool.ID, receiver Node, params *ParametersNode, body Node, locals []pool.ID) *DefNode {
	return &DefNode{Base: newBase(KindDefNode, loc), Name: name, Receiver: receiver, Parameters: params, Body: body, Locals: locals}
}

// ClassNode is `class Name < Superclass ... end`.
type ClassNode struct {
	Base
	ConstantPath Node // *ConstantReadNode | *ConstantPathNode
	Superclass   Node
	Body         *StatementsNode
	Locals       []pool.ID
}

func NewClass(loc Location, path, superclass Node, body *StatementsNode, locals []pool.ID) *ClassNode {
	return &ClassNode{Base: newBase(KindClassNode, loc), ConstantPath: path, Superclass: superclass, Body: body, Locals: locals}
}

// SClassNode is `class << self ... end` (singleton class reopen).
type SClassNode struct {
	Base
	Expression Node
	Body       *StatementsNode
	Locals     []pool.ID
}

func NewSClass(loc Location, expr Node, body *StatementsNode, locals []pool.ID) *SClassNode {
	return &SClassNode{Base: newBase(KindSClassNode, loc), Expression: expr, Body: body, Locals: locals}
}

// ModuleNode is `module Name ... end`.
type ModuleNode struct {
	Base
	ConstantPath Node
	Body         *StatementsNode
	Locals       []pool.ID
}

func NewModule(loc Location, path Node, body *StatementsNode, locals []pool.ID) *ModuleNode {
	return &ModuleNode{Base: newBase(KindModuleNode, loc), ConstantPath: path, Body: body, Locals: locals}
}

// LambdaNode is `-> (params) { body }` / `lambda { |params| body }`
// (the latter parses as a CallNode with a block; only `->` produces this
// node directly, matching how the teacher's own language keeps the literal
// arrow form distinct from a regular block-taking call).
type LambdaNode struct {
	Base
	Parameters *BlockParametersNode
	Body       *StatementsNode
	Locals     []pool.ID
}

func NewLambda(loc Location, params *BlockParametersNode, body *StatementsNode, locals []pool.ID) *LambdaNode {
	return &LambdaNode{Base: newBase(KindLambdaNode, loc), Parameters: params, Body: body, Locals: locals}
}
