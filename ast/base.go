// Package ast defines the Ruby AST node model (spec component H): roughly
// 150 tagged node kinds, each carrying a location span and a flags
// bitfield, per spec.md §3's "Node" entity.
//
// Every concrete node type embeds Base, which supplies the Kind/Loc/Flags
// trio via promoted methods — the Go analogue of the spec's tagged union,
// without 150 hand-written accessor methods.
package ast

import "fmt"

// Location is a half-open byte span into the source buffer. Spec invariant
// 1: Start <= End, both inside [source_start, source_end].
type Location struct {
	Start int
	End   int
}

// Union returns the smallest Location spanning both a and b.
func (a Location) Union(b Location) Location {
	loc := a
	if b.Start < loc.Start {
		loc.Start = b.Start
	}
	if b.End > loc.End {
		loc.End = b.End
	}
	return loc
}

// Flags is the per-node options bitfield (spec.md §3: "every node carries
// flags: u16"). Bit meaning is per-kind; see the comment next to each
// constant for which node kinds use it.
type Flags uint16

const (
	// FlagNewline: this node is the first expression on its source line
	// (all expression-statement nodes).
	FlagNewline Flags = 1 << iota
	// FlagStaticLiteral: composite literals (Array/Hash/Range) — true iff
	// every child is itself FlagStaticLiteral and no child is itself a
	// composite literal (spec invariant 6).
	FlagStaticLiteral
	// FlagStringForcedUTF8 / FlagStringForcedBinary / FlagStringForcedUSASCII:
	// String/Symbol/Regexp nodes, set when a \u escape or explicit
	// encoding pragma forced a non-default encoding.
	FlagStringForcedUTF8
	FlagStringForcedBinary
	FlagStringForcedUSASCII
	// FlagStringFrozen: String literal under a frozen_string_literal pragma.
	FlagStringFrozen
	// Regexp option bits (i,m,x,o,e,n,s,u) packed as single flags; a
	// RegexpNode additionally carries a separate Options byte (see
	// literals.go) since 8 independent booleans don't fit Flags alongside
	// the other bits a Regexp might need, but the two most
	// parser-meaningful ones get Flags bits too so the static-literal walk
	// never needs to touch the byte.
	FlagRegexpOnce // /o
	FlagRegexpExtended
	// FlagCallAttributeWrite: Call rewritten into an attribute-write
	// ("foo.bar = 1" / "foo.bar += 1").
	FlagCallAttributeWrite
	// FlagCallSafeNavigation: &. receiver.
	FlagCallSafeNavigation
	// FlagCallVariableCall: a bare identifier that did not resolve to a
	// local, parsed as a method call with an implicit self receiver.
	FlagCallVariableCall
	// FlagCallIgnoreVisibility: synthesized calls (rewritten
	// local-variable reads) that must bypass private/protected checks.
	FlagCallIgnoreVisibility
	// FlagRangeExclusive: "..." vs "..".
	FlagRangeExclusive
	// FlagParameterRepeated: a parameter name reused in the same list
	// (still added to the tree per spec.md §4.2, diagnostic also emitted
	// unless the name starts with '_').
	FlagParameterRepeated
	// FlagArrayContainsSplat: an Array literal has at least one splat
	// element (affects static-literal eligibility transitively).
	FlagArrayContainsSplat
	// FlagHashSymbolKeys: every key in a Hash/KeywordHash is a bare symbol
	// label (affects codegen-adjacent checks outside this module's scope,
	// kept for parity with the spec's node model).
	FlagHashSymbolKeys
)

// IntegerBase tags INTEGER literal nodes (spec.md §3 flags: "integer base
// (bin/oct/dec/hex)"). Kept as its own small type rather than packed into
// Flags bits because it is a 4-way enum, not an independent boolean.
type IntegerBase uint8

const (
	Decimal IntegerBase = iota
	Binary
	Octal
	Hex
)

// NodeKind tags every concrete AST node. New kinds are always appended.
type NodeKind uint32

const (
	KindInvalid NodeKind = iota

	KindProgram
	KindStatements
	KindMissing
	KindParentheses

	// Literals
	KindIntegerNode
	KindFloatNode
	KindRationalNode
	KindImaginaryNode
	KindCharLiteralNode
	KindNilNode
	KindTrueNode
	KindFalseNode
	KindSelfNode
	KindFileNode
	KindLineNode
	KindEncodingNode
	KindStringNode
	KindXStringNode
	KindInterpolatedStringNode
	KindInterpolatedXStringNode
	KindEmbeddedStatementsNode
	KindEmbeddedVariableNode
	KindSymbolNode
	KindInterpolatedSymbolNode
	KindRegexpNode
	KindInterpolatedRegexpNode
	KindArrayNode
	KindHashNode
	KindAssocNode
	KindAssocSplatNode
	KindKeywordHashNode
	KindRangeNode

	// Variables
	KindLocalVariableReadNode
	KindLocalVariableWriteNode
	KindLocalVariableTargetNode
	KindInstanceVariableReadNode
	KindInstanceVariableWriteNode
	KindInstanceVariableTargetNode
	KindClassVariableReadNode
	KindClassVariableWriteNode
	KindClassVariableTargetNode
	KindGlobalVariableReadNode
	KindGlobalVariableWriteNode
	KindGlobalVariableTargetNode
	KindNthReferenceReadNode
	KindBackReferenceReadNode
	KindConstantReadNode
	KindConstantWriteNode
	KindConstantTargetNode
	KindConstantPathNode
	KindConstantPathWriteNode
	KindConstantPathTargetNode
	KindNumberedParameterReadNode
	KindItParameterReadNode

	// Calls
	KindCallNode
	KindCallAndWriteNode
	KindCallOperatorWriteNode
	KindCallOrWriteNode
	KindIndexTargetNode
	KindIndexAndWriteNode
	KindIndexOperatorWriteNode
	KindIndexOrWriteNode
	KindYieldNode
	KindSuperNode
	KindForwardingSuperNode
	KindBlockNode
	KindBlockParametersNode
	KindBlockLocalVariableNode
	KindBlockArgumentNode
	KindArgumentsNode
	KindSplatNode
	KindDoubleSplatNode
	KindForwardingArgumentsNode

	// Parameters
	KindParametersNode
	KindRequiredParameterNode
	KindOptionalParameterNode
	KindRestParameterNode
	KindPostParameterNode
	KindRequiredKeywordParameterNode
	KindOptionalKeywordParameterNode
	KindKeywordRestParameterNode
	KindNoKeywordsParameterNode
	KindBlockParameterNode
	KindForwardingParameterNode
	KindImplicitNode
	KindImplicitRestNode
	KindMultiTargetNode
	KindMultiWriteNode

	// Control flow
	KindIfNode
	KindUnlessNode
	KindWhileNode
	KindUntilNode
	KindForNode
	KindCaseNode
	KindWhenNode
	KindCaseMatchNode
	KindInNode
	KindFlipFlopNode
	KindMatchLastLineNode
	KindMatchWriteNode
	KindMatchRequiredNode
	KindMatchPredicateNode
	KindBeginNode
	KindRescueNode
	KindRescueModifierNode
	KindEnsureNode
	KindElseNode
	KindBreakNode
	KindNextNode
	KindRedoNode
	KindRetryNode
	KindReturnNode
	KindDefinedNode
	KindNotNode
	KindAndNode
	KindOrNode
	KindPreExecutionNode
	KindPostExecutionNode

	// Definitions
	KindDefNode
	KindClassNode
	KindSClassNode
	KindModuleNode
	KindLambdaNode
	KindAliasMethodNode
	KindAliasGlobalVariableNode
	KindUndefNode

	// Patterns
	KindArrayPatternNode
	KindFindPatternNode
	KindHashPatternNode
	KindAlternationPatternNode
	KindCapturePatternNode
	KindPinnedVariableNode
	KindPinnedExpressionNode
)

// Node is the common interface every concrete AST node satisfies via the
// embedded Base.
type Node interface {
	Kind() NodeKind
	Loc() Location
	GetFlags() Flags
	SetFlags(Flags)
}

// Base supplies Kind/Loc/Flags to every concrete node type via embedding.
type Base struct {
	NKind    NodeKind
	NLoc     Location
	NFlags   Flags
}

func (b *Base) Kind() NodeKind    { return b.NKind }
func (b *Base) Loc() Location     { return b.NLoc }
func (b *Base) GetFlags() Flags   { return b.NFlags }
func (b *Base) SetFlags(f Flags)  { b.NFlags = f }
func (b *Base) AddFlags(f Flags)  { b.NFlags |= f }
func (b *Base) HasFlags(f Flags) bool { return b.NFlags&f != 0 }

func newBase(kind NodeKind, loc Location) Base {
	return Base{NKind: kind, NLoc: loc}
}

// String renders a NodeKind's constant name, used by debug dumps; never
// part of node identity.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var nodeKindNames = [...]string{
	KindInvalid: "KindInvalid",
	KindProgram: "KindProgram",
	KindStatements: "KindStatements",
	KindMissing: "KindMissing",
	KindParentheses: "KindParentheses",
	KindIntegerNode: "KindIntegerNode",
	KindFloatNode: "KindFloatNode",
	KindRationalNode: "KindRationalNode",
	KindImaginaryNode: "KindImaginaryNode",
	KindCharLiteralNode: "KindCharLiteralNode",
	KindNilNode: "KindNilNode",
	KindTrueNode: "KindTrueNode",
	KindFalseNode: "KindFalseNode",
	KindSelfNode: "KindSelfNode",
	KindFileNode: "KindFileNode",
	KindLineNode: "KindLineNode",
	KindEncodingNode: "KindEncodingNode",
	KindStringNode: "KindStringNode",
	KindXStringNode: "KindXStringNode",
	KindInterpolatedStringNode: "KindInterpolatedStringNode",
	KindInterpolatedXStringNode: "KindInterpolatedXStringNode",
	KindEmbeddedStatementsNode: "KindEmbeddedStatementsNode",
	KindEmbeddedVariableNode: "KindEmbeddedVariableNode",
	KindSymbolNode: "KindSymbolNode",
	KindInterpolatedSymbolNode: "KindInterpolatedSymbolNode",
	KindRegexpNode: "KindRegexpNode",
	KindInterpolatedRegexpNode: "KindInterpolatedRegexpNode",
	KindArrayNode: "KindArrayNode",
	KindHashNode: "KindHashNode",
	KindAssocNode: "KindAssocNode",
	KindAssocSplatNode: "KindAssocSplatNode",
	KindKeywordHashNode: "KindKeywordHashNode",
	KindRangeNode: "KindRangeNode",
	KindLocalVariableReadNode: "KindLocalVariableReadNode",
	KindLocalVariableWriteNode: "KindLocalVariableWriteNode",
	KindLocalVariableTargetNode: "KindLocalVariableTargetNode",
	KindInstanceVariableReadNode: "KindInstanceVariableReadNode",
	KindInstanceVariableWriteNode: "KindInstanceVariableWriteNode",
	KindInstanceVariableTargetNode: "KindInstanceVariableTargetNode",
	KindClassVariableReadNode: "KindClassVariableReadNode",
	KindClassVariableWriteNode: "KindClassVariableWriteNode",
	KindClassVariableTargetNode: "KindClassVariableTargetNode",
	KindGlobalVariableReadNode: "KindGlobalVariableReadNode",
	KindGlobalVariableWriteNode: "KindGlobalVariableWriteNode",
	KindGlobalVariableTargetNode: "KindGlobalVariableTargetNode",
	KindNthReferenceReadNode: "KindNthReferenceReadNode",
	KindBackReferenceReadNode: "KindBackReferenceReadNode",
	KindConstantReadNode: "KindConstantReadNode",
	KindConstantWriteNode: "KindConstantWriteNode",
	KindConstantTargetNode: "KindConstantTargetNode",
	KindConstantPathNode: "KindConstantPathNode",
	KindConstantPathWriteNode: "KindConstantPathWriteNode",
	KindConstantPathTargetNode: "KindConstantPathTargetNode",
	KindNumberedParameterReadNode: "KindNumberedParameterReadNode",
	KindItParameterReadNode: "KindItParameterReadNode",
	KindCallNode: "KindCallNode",
	KindCallAndWriteNode: "KindCallAndWriteNode",
	KindCallOperatorWriteNode: "KindCallOperatorWriteNode",
	KindCallOrWriteNode: "KindCallOrWriteNode",
	KindIndexTargetNode: "KindIndexTargetNode",
	KindIndexAndWriteNode: "KindIndexAndWriteNode",
	KindIndexOperatorWriteNode: "KindIndexOperatorWriteNode",
	KindIndexOrWriteNode: "KindIndexOrWriteNode",
	KindYieldNode: "KindYieldNode",
	KindSuperNode: "KindSuperNode",
	KindForwardingSuperNode: "KindForwardingSuperNode",
	KindBlockNode: "KindBlockNode",
	KindBlockParametersNode: "KindBlockParametersNode",
	KindBlockLocalVariableNode: "KindBlockLocalVariableNode",
	KindBlockArgumentNode: "KindBlockArgumentNode",
	KindArgumentsNode: "KindArgumentsNode",
	KindSplatNode: "KindSplatNode",
	KindDoubleSplatNode: "KindDoubleSplatNode",
	KindForwardingArgumentsNode: "KindForwardingArgumentsNode",
	KindParametersNode: "KindParametersNode",
	KindRequiredParameterNode: "KindRequiredParameterNode",
	KindOptionalParameterNode: "KindOptionalParameterNode",
	KindRestParameterNode: "KindRestParameterNode",
	KindPostParameterNode: "KindPostParameterNode",
	KindRequiredKeywordParameterNode: "KindRequiredKeywordParameterNode",
	KindOptionalKeywordParameterNode: "KindOptionalKeywordParameterNode",
	KindKeywordRestParameterNode: "KindKeywordRestParameterNode",
	KindNoKeywordsParameterNode: "KindNoKeywordsParameterNode",
	KindBlockParameterNode: "KindBlockParameterNode",
	KindForwardingParameterNode: "KindForwardingParameterNode",
	KindImplicitNode: "KindImplicitNode",
	KindImplicitRestNode: "KindImplicitRestNode",
	KindMultiTargetNode: "KindMultiTargetNode",
	KindMultiWriteNode: "KindMultiWriteNode",
	KindIfNode: "KindIfNode",
	KindUnlessNode: "KindUnlessNode",
	KindWhileNode: "KindWhileNode",
	KindUntilNode: "KindUntilNode",
	KindForNode: "KindForNode",
	KindCaseNode: "KindCaseNode",
	KindWhenNode: "KindWhenNode",
	KindCaseMatchNode: "KindCaseMatchNode",
	KindInNode: "KindInNode",
	KindFlipFlopNode: "KindFlipFlopNode",
	KindMatchLastLineNode: "KindMatchLastLineNode",
	KindMatchWriteNode: "KindMatchWriteNode",
	KindMatchRequiredNode: "KindMatchRequiredNode",
	KindMatchPredicateNode: "KindMatchPredicateNode",
	KindBeginNode: "KindBeginNode",
	KindRescueNode: "KindRescueNode",
	KindRescueModifierNode: "KindRescueModifierNode",
	KindEnsureNode: "KindEnsureNode",
	KindElseNode: "KindElseNode",
	KindBreakNode: "KindBreakNode",
	KindNextNode: "KindNextNode",
	KindRedoNode: "KindRedoNode",
	KindRetryNode: "KindRetryNode",
	KindReturnNode: "KindReturnNode",
	KindDefinedNode: "KindDefinedNode",
	KindNotNode: "KindNotNode",
	KindAndNode: "KindAndNode",
	KindOrNode: "KindOrNode",
	KindPreExecutionNode: "KindPreExecutionNode",
	KindPostExecutionNode: "KindPostExecutionNode",
	KindDefNode: "KindDefNode",
	KindClassNode: "KindClassNode",
	KindSClassNode: "KindSClassNode",
	KindModuleNode: "KindModuleNode",
	KindLambdaNode: "KindLambdaNode",
	KindAliasMethodNode: "KindAliasMethodNode",
	KindAliasGlobalVariableNode: "KindAliasGlobalVariableNode",
	KindUndefNode: "KindUndefNode",
	KindArrayPatternNode: "KindArrayPatternNode",
	KindFindPatternNode: "KindFindPatternNode",
	KindHashPatternNode: "KindHashPatternNode",
	KindAlternationPatternNode: "KindAlternationPatternNode",
	KindCapturePatternNode: "KindCapturePatternNode",
	KindPinnedVariableNode: "KindPinnedVariableNode",
	KindPinnedExpressionNode: "KindPinnedExpressionNode",
}
