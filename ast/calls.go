package ast

import "github.com/rubyparse/rubyparse/internal/pool"

// CallNode covers every method-call shape: `foo`, `foo()`, `recv.foo`,
// `recv&.foo(args) { block }`, `recv.foo=`, binary/unary operator calls
// (`a + b` is CallNode{Name: "+"}), and `[]`/`[]=` index calls before the
// target rewriter retags them. Spec.md §4.3/§9 "call-node destructive
// rewrites": here the rewrite mutates CallNode's own fields in place
// (LocalVariableWriteNode etc. are separate node kinds produced alongside
// it, never by freeing-and-reallocating).
type CallNode struct {
	Base
	Receiver       Node // nil for an implicit-self / bare call
	Name           pool.ID
	Arguments      *ArgumentsNode // nil if no parenthesized/command args
	Block          Node           // *BlockNode or *BlockArgumentNode, nil if none
	OperatorLoc    Location       // location of `.`/`&.`, zero if none
}

func NewCall(loc Location, receiver Node, name pool.ID, args *ArgumentsNode, block Node) *CallNode {
	return &CallNode{Base: newBase(KindCallNode, loc), Receiver: receiver, Name: name, Arguments: args, Block: block}
}

// CallAndWriteNode is `recv.foo &&= value` / `foo &&= value` (foo a local
// or attribute). CallOperatorWriteNode/CallOrWriteNode are the `op=`/`||=`
// siblings.
type CallAndWriteNode struct {
	Base
	Receiver Node
	Name     pool.ID
	Value    Node
}
type CallOrWriteNode struct {
	Base
	Receiver Node
	Name     pool.ID
	Value    Node
}
type CallOperatorWriteNode struct {
	Base
	Receiver Node
	Name     pool.ID
	Operator pool.ID // "+" in `foo.bar += 1`
	Value    Node
}

func NewCallAndWrite(loc Location, recv Node, name pool.ID, value Node) *CallAndWriteNode {
	return &CallAndWriteNode{Base: newBase(KindCallAndWriteNode, loc), Receiver: recv, Name: name, Value: value}
}
func NewCallOrWrite(loc Location, recv Node, name pool.ID, value Node) *CallOrWriteNode {
	return &CallOrWriteNode{Base: newBase(KindCallOrWriteNode, loc), Receiver: recv, Name: name, Value: value}
}
func NewCallOperatorWrite(loc Location, recv Node, name, op pool.ID, value Node) *CallOperatorWriteNode {
	return &CallOperatorWriteNode{Base: newBase(KindCallOperatorWriteNode, loc), Receiver: recv, Name: name, Operator: op, Value: value}
}

// IndexTargetNode is `recv[args]` rewritten into a multi-assignment target.
type IndexTargetNode struct {
	Base
	Receiver  Node
	Arguments *ArgumentsNode
}

func NewIndexTarget(loc Location, recv Node, args *ArgumentsNode) *IndexTargetNode {
	return &IndexTargetNode{Base: newBase(KindIndexTargetNode, loc), Receiver: recv, Arguments: args}
}

type IndexAndWriteNode struct {
	Base
	Receiver  Node
	Arguments *ArgumentsNode
	Value     Node
}
type IndexOrWriteNode struct {
	Base
	Receiver  Node
	Arguments *ArgumentsNode
	Value     Node
}
type IndexOperatorWriteNode struct {
	Base
	Receiver  Node
	Arguments *ArgumentsNode
	Operator  pool.ID
	Value     Node
}

func NewIndexAndWrite(loc Location, recv Node, args *ArgumentsNode, value Node) *IndexAndWriteNode {
	return &IndexAndWriteNode{Base: newBase(KindIndexAndWriteNode, loc), Receiver: recv, Arguments: args, Value: value}
}
func NewIndexOrWrite(loc Location, recv Node, args *ArgumentsNode, value Node) *IndexOrWriteNode {
	return &IndexOrWriteNode{Base: newBase(KindIndexOrWriteNode, loc), Receiver: recv, Arguments: args, Value: value}
}
func NewIndexOperatorWrite(loc Location, recv Node, args *ArgumentsNode, op pool.ID, value Node) *IndexOperatorWriteNode {
	return &IndexOperatorWriteNode{Base: newBase(KindIndexOperatorWriteNode, loc), Receiver: recv, Arguments: args, Operator: op, Value: value}
}

// YieldNode is `yield` / `yield(args)`.
type YieldNode struct {
	Base
	Arguments *ArgumentsNode
}

func NewYield(loc Location, args *ArgumentsNode) *YieldNode {
	return &YieldNode{Base: newBase(KindYieldNode, loc), Arguments: args}
}

// SuperNode is `super(args) { block }`; ForwardingSuperNode is bare `super`
// (forwards the enclosing method's arguments implicitly).
type SuperNode struct {
	Base
	Arguments *ArgumentsNode
	Block     Node
}
type ForwardingSuperNode struct {
	Base
	Block Node
}

func NewSuper(loc Location, args *ArgumentsNode, block Node) *SuperNode {
	return &SuperNode{Base: newBase(KindSuperNode, loc), Arguments: args, Block: block}
}
func NewForwardingSuper(loc Location, block Node) *ForwardingSuperNode {
	return &ForwardingSuperNode{Base: newBase(KindForwardingSuperNode, loc), Block: block}
}

// BlockNode is `{ |params| body }` / `do |params| body end`.
type BlockNode struct {
	Base
	Parameters *BlockParametersNode
	Body       *StatementsNode
	Locals     []pool.ID // transferred from the block's Scope on pop
}

func NewBlock(loc Location, params *BlockParametersNode, body *StatementsNode, locals []pool.ID) *BlockNode {
	return &BlockNode{Base: newBase(KindBlockNode, loc), Parameters: params, Body: body, Locals: locals}
}

// BlockParametersNode wraps a ParametersNode plus `;`-separated block-local
// variables (`|x; y, z|`).
type BlockParametersNode struct {
	Base
	Parameters *ParametersNode
	Locals     []*BlockLocalVariableNode
}

func NewBlockParameters(loc Location, params *ParametersNode, locals []*BlockLocalVariableNode) *BlockParametersNode {
	return &BlockParametersNode{Base: newBase(KindBlockParametersNode, loc), Parameters: params, Locals: locals}
}

type BlockLocalVariableNode struct {
	Base
	Name pool.ID
}

func NewBlockLocalVariable(loc Location, name pool.ID) *BlockLocalVariableNode {
	return &BlockLocalVariableNode{Base: newBase(KindBlockLocalVariableNode, loc), Name: name}
}

// BlockArgumentNode is `&block` passed as the last call argument.
type BlockArgumentNode struct {
	Base
	Expression Node // nil for bare `&` (anonymous block forwarding)
}

func NewBlockArgument(loc Location, expr Node) *BlockArgumentNode {
	return &BlockArgumentNode{Base: newBase(KindBlockArgumentNode, loc), Expression: expr}
}

// ArgumentsNode is the parsed argument list of a call/yield/super, tracked
// separately from CallNode during parsing per spec.md §3's "Arguments
// record" (opening/closing locations + forwarding flag folded in here once
// parsing of that call completes).
type ArgumentsNode struct {
	Base
	Arguments      []Node
	HasForwarding  bool
}

func NewArguments(loc Location, args []Node, hasForwarding bool) *ArgumentsNode {
	return &ArgumentsNode{Base: newBase(KindArgumentsNode, loc), Arguments: args, HasForwarding: hasForwarding}
}

// SplatNode is `*expr` in an array literal, call argument, or
// multi-assignment target list. DoubleSplatNode is `**expr`.
type SplatNode struct {
	Base
	Expression Node // nil for bare `*`
}
type DoubleSplatNode struct {
	Base
	Expression Node
}

func NewSplat(loc Location, expr Node) *SplatNode {
	return &SplatNode{Base: newBase(KindSplatNode, loc), Expression: expr}
}
func NewDoubleSplat(loc Location, expr Node) *DoubleSplatNode {
	return &DoubleSplatNode{Base: newBase(KindDoubleSplatNode, loc), Expression: expr}
}

// ForwardingArgumentsNode is `...` used as a call's entire argument list,
// forwarding the enclosing method's `...` parameter.
type ForwardingArgumentsNode struct{ Base }

func NewForwardingArguments(loc Location) *ForwardingArgumentsNode {
	return &ForwardingArgumentsNode{Base: newBase(KindForwardingArgumentsNode, loc)}
}
