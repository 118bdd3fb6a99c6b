package ast

import "github.com/rubyparse/rubyparse/internal/pool"

// ProgramNode is the parse root (spec.md §6: output is "a Program node").
type ProgramNode struct {
	Base
	Locals     []pool.ID
	Statements *StatementsNode
}

func NewProgram(loc Location, stmts *StatementsNode) *ProgramNode {
	return &ProgramNode{Base: newBase(KindProgram, loc), Statements: stmts}
}

// StatementsNode groups a sequence of expressions (a body).
type StatementsNode struct {
	Base
	Body []Node
}

func NewStatements(loc Location, body []Node) *StatementsNode {
	return &StatementsNode{Base: newBase(KindStatements, loc), Body: body}
}

// MissingNode stands in for a syntax position the parser could not fill
// after an error, so the tree stays complete (spec.md §4.2 error recovery).
type MissingNode struct{ Base }

func NewMissing(loc Location) *MissingNode {
	return &MissingNode{Base: newBase(KindMissing, loc)}
}

// ParenthesesNode wraps `(expr)` / `()`.
type ParenthesesNode struct {
	Base
	Body Node // nil for `()`
}

func NewParentheses(loc Location, body Node) *ParenthesesNode {
	return &ParenthesesNode{Base: newBase(KindParentheses, loc), Body: body}
}

// IntegerNode is an integer literal; IntBase carries its base (dec/bin/oct/hex).
type IntegerNode struct {
	Base
	IntBase IntegerBase
	Value   string // raw digits, underscores stripped, sign-normalized
}

func NewInteger(loc Location, value string, base IntegerBase) *IntegerNode {
	n := &IntegerNode{Base: newBase(KindIntegerNode, loc), Value: value, IntBase: base}
	n.AddFlags(FlagStaticLiteral)
	return n
}

// FloatNode is a float literal.
type FloatNode struct {
	Base
	Value string
}

func NewFloat(loc Location, value string) *FloatNode {
	n := &FloatNode{Base: newBase(KindFloatNode, loc), Value: value}
	n.AddFlags(FlagStaticLiteral)
	return n
}

// RationalNode is `123r` / `1.5r`.
type RationalNode struct {
	Base
	Value string
}

func NewRational(loc Location, value string) *RationalNode {
	n := &RationalNode{Base: newBase(KindRationalNode, loc), Value: value}
	n.AddFlags(FlagStaticLiteral)
	return n
}

// ImaginaryNode is `1i` / `1.5ri`; Numeric wraps the inner numeric node.
type ImaginaryNode struct {
	Base
	Numeric Node
}

func NewImaginary(loc Location, numeric Node) *ImaginaryNode {
	n := &ImaginaryNode{Base: newBase(KindImaginaryNode, loc), Numeric: numeric}
	n.AddFlags(FlagStaticLiteral)
	return n
}

// CharLiteralNode is `?a` / `?\n`.
type CharLiteralNode struct {
	Base
	Value []byte
}

func NewCharLiteral(loc Location, value []byte) *CharLiteralNode {
	n := &CharLiteralNode{Base: newBase(KindCharLiteralNode, loc), Value: value}
	n.AddFlags(FlagStaticLiteral)
	return n
}

type NilNode struct{ Base }
type TrueNode struct{ Base }
type FalseNode struct{ Base }
type SelfNode struct{ Base }
type FileNode struct {
	Base
	Filepath string
}
type LineNode struct{ Base }
type EncodingNode struct{ Base }

func NewNil(loc Location) *NilNode {
	n := &NilNode{Base: newBase(KindNilNode, loc)}
	n.AddFlags(FlagStaticLiteral)
	return n
}
func NewTrue(loc Location) *TrueNode {
	n := &TrueNode{Base: newBase(KindTrueNode, loc)}
	n.AddFlags(FlagStaticLiteral)
	return n
}
func NewFalse(loc Location) *FalseNode {
	n := &FalseNode{Base: newBase(KindFalseNode, loc)}
	n.AddFlags(FlagStaticLiteral)
	return n
}
func NewSelf(loc Location) *SelfNode { return &SelfNode{Base: newBase(KindSelfNode, loc)} }
func NewFile(loc Location, path string) *FileNode {
	n := &FileNode{Base: newBase(KindFileNode, loc), Filepath: path}
	n.AddFlags(FlagStaticLiteral)
	return n
}
func NewLine(loc Location) *LineNode {
	n := &LineNode{Base: newBase(KindLineNode, loc)}
	n.AddFlags(FlagStaticLiteral)
	return n
}
func NewEncoding(loc Location) *EncodingNode {
	n := &EncodingNode{Base: newBase(KindEncodingNode, loc)}
	n.AddFlags(FlagStaticLiteral)
	return n
}

// StringNode is a non-interpolated (or fully-folded single-part) string
// literal. Unescaped holds the escape-processed bytes, possibly mutated
// in place by the heredoc dedent post-processor (spec component L).
type StringNode struct {
	Base
	Unescaped []byte
	Raw       []byte // original source slice, for round-trip checks
}

func NewString(loc Location, unescaped, raw []byte) *StringNode {
	n := &StringNode{Base: newBase(KindStringNode, loc), Unescaped: unescaped, Raw: raw}
	n.AddFlags(FlagStaticLiteral)
	return n
}

// XStringNode is a backtick/%x command literal (never static; it shells out).
type XStringNode struct {
	Base
	Unescaped []byte
}

func NewXString(loc Location, unescaped []byte) *XStringNode {
	return &XStringNode{Base: newBase(KindXStringNode, loc), Unescaped: unescaped}
}

// InterpolatedStringNode / InterpolatedXStringNode hold a part list mixing
// StringNode literals with EmbeddedStatementsNode/EmbeddedVariableNode.
type InterpolatedStringNode struct {
	Base
	Parts []Node
}

func NewInterpolatedString(loc Location, parts []Node) *InterpolatedStringNode {
	n := &InterpolatedStringNode{Base: newBase(KindInterpolatedStringNode, loc), Parts: parts}
	if allStaticStringParts(parts) {
		n.AddFlags(FlagStaticLiteral)
	}
	return n
}

type InterpolatedXStringNode struct {
	Base
	Parts []Node
}

func NewInterpolatedXString(loc Location, parts []Node) *InterpolatedXStringNode {
	return &InterpolatedXStringNode{Base: newBase(KindInterpolatedXStringNode, loc), Parts: parts}
}

func allStaticStringParts(parts []Node) bool {
	for _, p := range parts {
		if p.Kind() != KindStringNode {
			return false
		}
	}
	return true
}

// EmbeddedStatementsNode is `#{ ... }` inside a string/regexp/symbol.
type EmbeddedStatementsNode struct {
	Base
	Statements *StatementsNode
}

func NewEmbeddedStatements(loc Location, stmts *StatementsNode) *EmbeddedStatementsNode {
	return &EmbeddedStatementsNode{Base: newBase(KindEmbeddedStatementsNode, loc), Statements: stmts}
}

// EmbeddedVariableNode is `#@ivar` / `#@@cvar` / `#$gvar`.
type EmbeddedVariableNode struct {
	Base
	Variable Node
}

func NewEmbeddedVariable(loc Location, variable Node) *EmbeddedVariableNode {
	return &EmbeddedVariableNode{Base: newBase(KindEmbeddedVariableNode, loc), Variable: variable}
}

// SymbolNode is `:foo` / `:"foo"` with no interpolation.
type SymbolNode struct {
	Base
	Unescaped []byte
}

func NewSymbol(loc Location, unescaped []byte) *SymbolNode {
	n := &SymbolNode{Base: newBase(KindSymbolNode, loc), Unescaped: unescaped}
	n.AddFlags(FlagStaticLiteral)
	return n
}

// InterpolatedSymbolNode is `:"...#{...}..."`.
type InterpolatedSymbolNode struct {
	Base
	Parts []Node
}

func NewInterpolatedSymbol(loc Location, parts []Node) *InterpolatedSymbolNode {
	return &InterpolatedSymbolNode{Base: newBase(KindInterpolatedSymbolNode, loc), Parts: parts}
}

// RegexpOptions packs the eight independent option booleans spec.md §3
// lists (i,m,x,o,e,n,s,u) plus the forced-encoding tag.
type RegexpOptions struct {
	IgnoreCase bool
	Multiline  bool
	Extended   bool
	Once       bool
	EUCJP      bool
	ASCII8BIT  bool
	Windows31J bool
	UTF8       bool
}

// RegexpNode is a non-interpolated regexp literal.
type RegexpNode struct {
	Base
	Unescaped []byte
	Options   RegexpOptions
}

func NewRegexp(loc Location, unescaped []byte, opts RegexpOptions) *RegexpNode {
	n := &RegexpNode{Base: newBase(KindRegexpNode, loc), Unescaped: unescaped, Options: opts}
	n.AddFlags(FlagStaticLiteral)
	return n
}

// InterpolatedRegexpNode is `/.../` with interpolated parts.
type InterpolatedRegexpNode struct {
	Base
	Parts   []Node
	Options RegexpOptions
}

func NewInterpolatedRegexp(loc Location, parts []Node, opts RegexpOptions) *InterpolatedRegexpNode {
	n := &InterpolatedRegexpNode{Base: newBase(KindInterpolatedRegexpNode, loc), Parts: parts, Options: opts}
	if allStaticStringParts(parts) {
		n.AddFlags(FlagStaticLiteral)
	}
	return n
}

// ArrayNode is `[a, b, *c]`.
type ArrayNode struct {
	Base
	Elements []Node
}

func NewArray(loc Location, elements []Node) *ArrayNode {
	n := &ArrayNode{Base: newBase(KindArrayNode, loc), Elements: elements}
	static := true
	hasSplat := false
	for _, e := range elements {
		if e.Kind() == KindSplatNode {
			hasSplat = true
		}
		if !isPutObjectable(e) {
			static = false
		}
	}
	if hasSplat {
		n.AddFlags(FlagArrayContainsSplat)
		static = false
	}
	if static {
		n.AddFlags(FlagStaticLiteral)
	}
	return n
}

// isPutObjectable implements spec invariant 6: a composite literal's
// static-literal flag is true iff every child is static AND no child is
// itself a composite (array/hash/range) literal.
func isPutObjectable(n Node) bool {
	switch n.Kind() {
	case KindArrayNode, KindHashNode, KindRangeNode:
		return false
	default:
		return n.HasFlags(FlagStaticLiteral)
	}
}

// HashNode is `{k => v, **rest}`.
type HashNode struct {
	Base
	Elements []Node // AssocNode | AssocSplatNode
}

func NewHash(loc Location, elements []Node) *HashNode {
	n := &HashNode{Base: newBase(KindHashNode, loc), Elements: elements}
	static := true
	symbolKeys := true
	for _, e := range elements {
		if a, ok := e.(*AssocNode); ok {
			if !isPutObjectable(a.Key) || !isPutObjectable(a.Value) {
				static = false
			}
			if a.Key.Kind() != KindSymbolNode {
				symbolKeys = false
			}
		} else {
			static = false
			symbolKeys = false
		}
	}
	if static {
		n.AddFlags(FlagStaticLiteral)
	}
	if symbolKeys && len(elements) > 0 {
		n.AddFlags(FlagHashSymbolKeys)
	}
	return n
}

// AssocNode is `k => v` or the shorthand `key:` label form.
type AssocNode struct {
	Base
	Key       Node
	Value     Node
	Operator  bool // true if parsed with `=>`, false for `label:`
}

func NewAssoc(loc Location, key, value Node, operator bool) *AssocNode {
	return &AssocNode{Base: newBase(KindAssocNode, loc), Key: key, Value: value, Operator: operator}
}

// AssocSplatNode is `**expr` inside a Hash/KeywordHash.
type AssocSplatNode struct {
	Base
	Value Node // nil for bare `**` forwarding
}

func NewAssocSplat(loc Location, value Node) *AssocSplatNode {
	return &AssocSplatNode{Base: newBase(KindAssocSplatNode, loc), Value: value}
}

// KeywordHashNode is the implicit trailing-keyword-arguments hash in a call
// (`foo(a: 1, b: 2)` without braces).
type KeywordHashNode struct {
	Base
	Elements []Node
}

func NewKeywordHash(loc Location, elements []Node) *KeywordHashNode {
	n := &KeywordHashNode{Base: newBase(KindKeywordHashNode, loc), Elements: elements}
	symbolKeys := true
	for _, e := range elements {
		if a, ok := e.(*AssocNode); ok {
			if a.Key.Kind() != KindSymbolNode {
				symbolKeys = false
			}
		} else {
			symbolKeys = false
		}
	}
	if symbolKeys && len(elements) > 0 {
		n.AddFlags(FlagHashSymbolKeys)
	}
	return n
}

// RangeNode is `a..b` / `a...b`, including endless/beginless forms.
type RangeNode struct {
	Base
	Left  Node // nil for beginless
	Right Node // nil for endless
}

func NewRange(loc Location, left, right Node, exclusive bool) *RangeNode {
	n := &RangeNode{Base: newBase(KindRangeNode, loc), Left: left, Right: right}
	if exclusive {
		n.AddFlags(FlagRangeExclusive)
	}
	static := (left == nil || isPutObjectable(left)) && (right == nil || isPutObjectable(right))
	if static {
		n.AddFlags(FlagStaticLiteral)
	}
	return n
}
