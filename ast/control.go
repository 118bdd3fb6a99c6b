package ast

// IfNode / UnlessNode cover both the keyword-block and modifier forms
// (`if cond ... end`, `expr if cond`, ternary lowers to IfNode as well).
type IfNode struct {
	Base
	Predicate   Node
	Statements  *StatementsNode
	Consequent  Node // *ElseNode | *IfNode (elsif) | nil
	IsTernary   bool
	IsModifier  bool
}

func NewIf(loc Location, pred Node, stmts *StatementsNode, consequent Node) *IfNode {
	return &IfNode{Base: newBase(KindIfNode, loc), Predicate: pred, Statements: stmts, Consequent: consequent}
}

type UnlessNode struct {
	Base
	Predicate  Node
	Statements *StatementsNode
	Consequent *ElseNode
	IsModifier bool
}

func NewUnless(loc Location, pred Node, stmts *StatementsNode, els *ElseNode) *UnlessNode {
	return &UnlessNode{Base: newBase(KindUnlessNode, loc), Predicate: pred, Statements: stmts, Consequent: els}
}

type ElseNode struct {
	Base
	Statements *StatementsNode
}

func NewElse(loc Location, stmts *StatementsNode) *ElseNode {
	return &ElseNode{Base: newBase(KindElseNode, loc), Statements: stmts}
}

type WhileNode struct {
	Base
	Predicate  Node
	Statements *StatementsNode
	IsModifier bool
	BeginLess  bool // `begin ... end while cond` runs the body at least once
}

func NewWhile(loc Location, pred Node, stmts *StatementsNode) *WhileNode {
	return &WhileNode{Base: newBase(KindWhileNode, loc), Predicate: pred, Statements: stmts}
}

type UntilNode struct {
	Base
	Predicate  Node
	Statements *StatementsNode
	IsModifier bool
	BeginLess  bool
}

func NewUntil(loc Location, pred Node, stmts *StatementsNode) *UntilNode {
	return &UntilNode{Base: newBase(KindUntilNode, loc), Predicate: pred, Statements: stmts}
}

// ForNode is `for x in collection ... end`; Index is the (possibly
// multi-target) loop variable.
type ForNode struct {
	Base
	Index      Node
	Collection Node
	Statements *StatementsNode
}

func NewFor(loc Location, index, collection Node, stmts *StatementsNode) *ForNode {
	return &ForNode{Base: newBase(KindForNode, loc), Index: index, Collection: collection, Statements: stmts}
}

// CaseNode is `case expr; when ...; else ...; end`.
type CaseNode struct {
	Base
	Predicate Node // nil for a bare `case; when ...`
	Whens     []*WhenNode
	Consequent *ElseNode
}

func NewCase(loc Location, pred Node, whens []*WhenNode, els *ElseNode) *CaseNode {
	return &CaseNode{Base: newBase(KindCaseNode, loc), Predicate: pred, Whens: whens, Consequent: els}
}

type WhenNode struct {
	Base
	Conditions []Node
	Statements *StatementsNode
}

func NewWhen(loc Location, conditions []Node, stmts *StatementsNode) *WhenNode {
	return &WhenNode{Base: newBase(KindWhenNode, loc), Conditions: conditions, Statements: stmts}
}

// CaseMatchNode is `case expr; in pattern ...; else ...; end`.
type CaseMatchNode struct {
	Base
	Predicate  Node
	Ins        []*InNode
	Consequent *ElseNode
}

func NewCaseMatch(loc Location, pred Node, ins []*InNode, els *ElseNode) *CaseMatchNode {
	return &CaseMatchNode{Base: newBase(KindCaseMatchNode, loc), Predicate: pred, Ins: ins, Consequent: els}
}

type InNode struct {
	Base
	Pattern    Node
	Guard      Node // `if cond` / `unless cond` guard, nil if absent
	GuardIsUnless bool
	Statements *StatementsNode
}

func NewIn(loc Location, pattern, guard Node, stmts *StatementsNode) *InNode {
	return &InNode{Base: newBase(KindInNode, loc), Pattern: pattern, Guard: guard, Statements: stmts}
}

// FlipFlopNode retags a Range literal used as a flip-flop condition
// (spec.md §4.2 "Range predicates become FlipFlop nodes").
type FlipFlopNode struct {
	Base
	Left      Node
	Right     Node
	Exclusive bool
}

func NewFlipFlop(loc Location, left, right Node, exclusive bool) *FlipFlopNode {
	return &FlipFlopNode{Base: newBase(KindFlipFlopNode, loc), Left: left, Right: right, Exclusive: exclusive}
}

// MatchLastLineNode retags a Regexp literal used as a bare condition
// (`if /foo/` means `if /foo/ =~ $_`).
type MatchLastLineNode struct {
	Base
	Unescaped []byte
	Options   RegexpOptions
}

func NewMatchLastLine(loc Location, unescaped []byte, opts RegexpOptions) *MatchLastLineNode {
	return &MatchLastLineNode{Base: newBase(KindMatchLastLineNode, loc), Unescaped: unescaped, Options: opts}
}

// MatchWriteNode wraps a `str =~ /regexp/` CallNode once named-capture
// hoisting (spec component 4.6) finds at least one valid distinct name.
type MatchWriteNode struct {
	Base
	Call    *CallNode
	Targets []*LocalVariableTargetNode
}

func NewMatchWrite(loc Location, call *CallNode, targets []*LocalVariableTargetNode) *MatchWriteNode {
	return &MatchWriteNode{Base: newBase(KindMatchWriteNode, loc), Call: call, Targets: targets}
}

// MatchRequiredNode is `expr => pattern` (raises if no match).
type MatchRequiredNode struct {
	Base
	Value   Node
	Pattern Node
}

func NewMatchRequired(loc Location, value, pattern Node) *MatchRequiredNode {
	return &MatchRequiredNode{Base: newBase(KindMatchRequiredNode, loc), Value: value, Pattern: pattern}
}

// MatchPredicateNode is `expr in pattern` (boolean, never raises).
type MatchPredicateNode struct {
	Base
	Value   Node
	Pattern Node
}

func NewMatchPredicate(loc Location, value, pattern Node) *MatchPredicateNode {
	return &MatchPredicateNode{Base: newBase(KindMatchPredicateNode, loc), Value: value, Pattern: pattern}
}

// BeginNode is `begin ... rescue ... else ... ensure ... end`, and also the
// implicit body wrapper for a `def`'s rescue/ensure clauses.
type BeginNode struct {
	Base
	Statements *StatementsNode
	Rescue     *RescueNode
	ElseClause *ElseNode
	Ensure     *EnsureNode
}

func NewBegin(loc Location, stmts *StatementsNode, rescue *RescueNode, els *ElseNode, ensure *EnsureNode) *BeginNode {
	return &BeginNode{Base: newBase(KindBeginNode, loc), Statements: stmts, Rescue: rescue, ElseClause: els, Ensure: ensure}
}

// RescueNode is one `rescue ExcClass => var; body` clause, chained via
// Consequent to the next `rescue` clause.
type RescueNode struct {
	Base
	Exceptions []Node
	Reference  Node // target node for `=> var`, nil if absent
	Statements *StatementsNode
	Consequent *RescueNode
}

func NewRescue(loc Location, exceptions []Node, reference Node, stmts *StatementsNode, next *RescueNode) *RescueNode {
	return &RescueNode{Base: newBase(KindRescueNode, loc), Exceptions: exceptions, Reference: reference, Statements: stmts, Consequent: next}
}

// RescueModifierNode is the `expr rescue fallback` postfix form.
type RescueModifierNode struct {
	Base
	Expression Node
	Rescue     Node
}

func NewRescueModifier(loc Location, expr, rescue Node) *RescueModifierNode {
	return &RescueModifierNode{Base: newBase(KindRescueModifierNode, loc), Expression: expr, Rescue: rescue}
}

type EnsureNode struct {
	Base
	Statements *StatementsNode
}

func NewEnsure(loc Location, stmts *StatementsNode) *EnsureNode {
	return &EnsureNode{Base: newBase(KindEnsureNode, loc), Statements: stmts}
}

type BreakNode struct {
	Base
	Arguments *ArgumentsNode
}
type NextNode struct {
	Base
	Arguments *ArgumentsNode
}
type RedoNode struct{ Base }
type RetryNode struct{ Base }
type ReturnNode struct {
	Base
	Arguments *ArgumentsNode
}

func NewBreak(loc Location, args *ArgumentsNode) *BreakNode   { return &BreakNode{Base: newBase(KindBreakNode, loc), Arguments: args} }
func NewNext(loc Location, args *ArgumentsNode) *NextNode     { return &NextNode{Base: newBase(KindNextNode, loc), Arguments: args} }
func NewRedo(loc Location) *RedoNode                          { return &RedoNode{Base: newBase(KindRedoNode, loc)} }
func NewRetry(loc Location) *RetryNode                        { return &RetryNode{Base: newBase(KindRetryNode, loc)} }
func NewReturn(loc Location, args *ArgumentsNode) *ReturnNode { return &ReturnNode{Base: newBase(KindReturnNode, loc), Arguments: args} }

// DefinedNode is `defined?(expr)`.
type DefinedNode struct {
	Base
	Value Node
}

func NewDefined(loc Location, value Node) *DefinedNode {
	return &DefinedNode{Base: newBase(KindDefinedNode, loc), Value: value}
}

type NotNode struct {
	Base
	Value Node
}

func NewNot(loc Location, value Node) *NotNode { return &NotNode{Base: newBase(KindNotNode, loc), Value: value} }

type AndNode struct {
	Base
	Left, Right Node
}
type OrNode struct {
	Base
	Left, Right Node
}

func NewAnd(loc Location, l, r Node) *AndNode { return &AndNode{Base: newBase(KindAndNode, loc), Left: l, Right: r} }
func NewOr(loc Location, l, r Node) *OrNode   { return &OrNode{Base: newBase(KindOrNode, loc), Left: l, Right: r} }

// PreExecutionNode / PostExecutionNode are `BEGIN { ... }` / `END { ... }`.
type PreExecutionNode struct {
	Base
	Statements *StatementsNode
}
type PostExecutionNode struct {
	Base
	Statements *StatementsNode
}

func NewPreExecution(loc Location, stmts *StatementsNode) *PreExecutionNode {
	return &PreExecutionNode{Base: newBase(KindPreExecutionNode, loc), Statements: stmts}
}
func NewPostExecution(loc Location, stmts *StatementsNode) *PostExecutionNode {
	return &PostExecutionNode{Base: newBase(KindPostExecutionNode, loc), Statements: stmts}
}

// AliasMethodNode is `alias new_name old_name`; AliasGlobalVariableNode is
// `alias $new $old`.
type AliasMethodNode struct {
	Base
	NewName Node
	OldName Node
}
type AliasGlobalVariableNode struct {
	Base
	NewName *GlobalVariableReadNode
	OldName *GlobalVariableReadNode
}

func NewAliasMethod(loc Location, newName, oldName Node) *AliasMethodNode {
	return &AliasMethodNode{Base: newBase(KindAliasMethodNode, loc), NewName: newName, OldName: oldName}
}
func NewAliasGlobalVariable(loc Location, newName, oldName *GlobalVariableReadNode) *AliasGlobalVariableNode {
	return &AliasGlobalVariableNode{Base: newBase(KindAliasGlobalVariableNode, loc), NewName: newName, OldName: oldName}
}

// UndefNode is `undef name1, name2`.
type UndefNode struct {
	Base
	Names []Node
}

func NewUndef(loc Location, names []Node) *UndefNode {
	return &UndefNode{Base: newBase(KindUndefNode, loc), Names: names}
}
