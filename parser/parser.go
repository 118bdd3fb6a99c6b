// Package parser implements the Pratt/precedence-climbing recursive-descent
// parser (spec component I) that turns the lexer's token stream into the
// ast.Node tree, plus the target/write rewriter (component J) and the
// pattern sub-parser (component K). Grounded on the teacher's
// runtime/parser/parser.go: a binding-power table driving prefix/infix
// dispatch over a small token lookahead window.
package parser

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/config"
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/internal/invariant"
	"github.com/rubyparse/rubyparse/internal/lines"
	"github.com/rubyparse/rubyparse/internal/pool"
	"github.com/rubyparse/rubyparse/internal/scope"
	"github.com/rubyparse/rubyparse/lexer"
	"github.com/rubyparse/rubyparse/token"
)

// Precedence is the binding power of an infix/postfix operator. Higher
// binds tighter. Mirrors the teacher's bindingPower table, reshaped for
// Ruby's operator set (spec.md §4.2).
type Precedence int

const (
	PrecLowest Precedence = iota
	PrecModifier // if/unless/while/until/rescue modifiers, and/or keyword
	PrecAssignment
	PrecTernary
	PrecRange
	PrecOrOr
	PrecAndAnd
	PrecNot // `not` keyword
	PrecDefined
	PrecEquality
	PrecComparison
	PrecBitOr
	PrecBitAnd
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecUnaryMinus
	PrecPower
	PrecUnaryBang
	PrecIndexDot
)

var infixPrecedence = map[token.Kind]Precedence{
	token.KOR:         PrecModifier,
	token.KAND:        PrecModifier,
	token.ASSIGN:      PrecAssignment,
	token.PLUS_EQ:     PrecAssignment,
	token.MINUS_EQ:    PrecAssignment,
	token.STAR_EQ:     PrecAssignment,
	token.SLASH_EQ:    PrecAssignment,
	token.PERCENT_EQ:  PrecAssignment,
	token.POW_EQ:      PrecAssignment,
	token.AMP_EQ:      PrecAssignment,
	token.PIPE_EQ:     PrecAssignment,
	token.CARET_EQ:    PrecAssignment,
	token.LSHIFT_EQ:   PrecAssignment,
	token.RSHIFT_EQ:   PrecAssignment,
	token.ANDAND_EQ:   PrecAssignment,
	token.OROR_EQ:     PrecAssignment,
	token.QUESTION:    PrecTernary,
	token.DOT2:        PrecRange,
	token.DOT3:        PrecRange,
	token.UDOT2:       PrecRange,
	token.UDOT3:       PrecRange,
	token.PIPE2:       PrecOrOr,
	token.AMP2:        PrecAndAnd,
	token.EQ:          PrecEquality,
	token.NEQ:         PrecEquality,
	token.EQQ:         PrecEquality,
	token.EQTILDE:     PrecEquality,
	token.NMATCH:      PrecEquality,
	token.LT:          PrecComparison,
	token.LEQ:         PrecComparison,
	token.GT:          PrecComparison,
	token.GEQ:         PrecComparison,
	token.CMP:         PrecComparison,
	token.PIPE:        PrecBitOr,
	token.CARET:       PrecBitOr,
	token.AMP:         PrecBitAnd,
	token.LSHIFT:      PrecShift,
	token.RSHIFT:      PrecShift,
	token.PLUS:        PrecAdditive,
	token.MINUS:       PrecAdditive,
	token.STAR:        PrecMultiplicative,
	token.SLASH:       PrecMultiplicative,
	token.PERCENT:     PrecMultiplicative,
	token.POW:         PrecPower,
	token.DOT:         PrecIndexDot,
	token.AMPDOT:      PrecIndexDot,
	token.COLON2:      PrecIndexDot,
	token.LBRACKET:    PrecIndexDot,
	token.LBRACKET_ARG: PrecIndexDot,
}

// Parser drives the lexer and builds ast.Node trees.
type Parser struct {
	lex    *lexer.Lexer
	src    []byte
	opts   config.Options

	prev, cur, peek token.Token

	pool   *pool.Pool
	scopes *scope.Stack
	errors *diag.List

	contextStack []string
	doLoopDepth  int
	blockAllowed []bool

	// defDepth/classModuleDepth track method and class/module body nesting,
	// independent of the scope stack (blocks nest scopes without nesting a
	// method body), used by checkReturnPlacement/checkClassOrModuleInMethod.
	defDepth         int
	classModuleDepth int

	// pendingNamedCaptures holds the capture names found in the regexp
	// literal most recently parsed by parseRegexpLiteral, consumed by the
	// =~ match-write rewrite in parseBinaryOperator (spec component 4.6).
	pendingNamedCaptures []string

	logger *slog.Logger
}

// New constructs a Parser over src with the given options.
func New(src []byte, opts ...config.Option) *Parser {
	o := config.Apply(opts...)
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	lx := lexer.New(src, lexer.Options{
		EncodingHint: o.EncodingHint,
		FrozenString: o.FrozenStringLiteral,
		Flags:        lexer.CommandLineFlags(o.CommandLineFlags),
		Logger:       logger,
	})

	p := &Parser{
		lex:    lx,
		src:    src,
		opts:   o,
		pool:   lx.Pool,
		scopes: scope.New(),
		errors: lx.Errors,
		logger: logger,
	}
	p.scopes.Push(true)
	for _, frame := range o.OuterScopeIDs(p.pool) {
		p.scopes.PushPrePopulated(frame)
	}
	p.advance()
	p.advance()
	return p
}

// Result is everything Parse returns: the tree plus the error/warning
// diagnostic lists spec.md §7 specifies as always-populated, never-panic
// outputs.
type Result struct {
	Program  *ast.ProgramNode
	Errors   []diag.Diagnostic
	Warnings []diag.Diagnostic
	Comments []lexer.Comment

	// Lines backs human line/column rendering of diagnostic offsets
	// (diag.Diagnostic.Location); never consulted by the parser itself.
	Lines *lines.List
}

// Parse runs the full parse and returns a Result; it never panics on
// malformed source (invariant violations inside this module's own state
// machines still panic via internal/invariant, which is a bug in the
// parser itself, not a user-facing outcome).
func Parse(src []byte, opts ...config.Option) Result {
	p := New(src, opts...)
	prog := p.parseProgram()
	return Result{
		Program:  prog,
		Errors:   p.errors.Items(),
		Warnings: p.lex.Warnings.Items(),
		Comments: p.lex.Comments,
		Lines:    p.lex.Lines,
	}
}

func (p *Parser) advance() {
	p.prev = p.cur
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) at(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekAt(k token.Kind) bool { return p.peek.Kind == k }

func (p *Parser) text(t token.Token) []byte { return t.Text(p.src) }

func (p *Parser) loc(start, end int) ast.Location { return ast.Location{Start: start, End: end} }

func (p *Parser) pushContext(name string) {
	p.contextStack = append(p.contextStack, name)
	p.logger.Debug("parser context push", "name", name, "depth", len(p.contextStack))
}
func (p *Parser) popContext() {
	invariant.Precondition(len(p.contextStack) > 0, "context stack underflow")
	p.contextStack = p.contextStack[:len(p.contextStack)-1]
	p.logger.Debug("parser context pop", "depth", len(p.contextStack))
}
func (p *Parser) currentContext() string {
	if len(p.contextStack) == 0 {
		return "top-level"
	}
	return p.contextStack[len(p.contextStack)-1]
}

// expect consumes cur if it matches k, else records a diagnostic and
// synthesizes a MissingNode-backing location so the caller can keep going
// (spec.md §4.2's error-recovery contract: never abort the whole parse).
func (p *Parser) expect(k token.Kind, what string) token.Token {
	if p.cur.Kind == k {
		t := p.cur
		p.advance()
		return t
	}
	p.errorf(diag.ExpectedTokenAfter, p.cur.Start, p.cur.End, "expected %s, got %q", what, string(p.text(p.cur)))
	return token.Token{Kind: token.INVALID, Start: p.cur.Start, End: p.cur.Start}
}

func (p *Parser) errorf(id diag.ID, start, end int, format string, args ...interface{}) {
	p.errors.Add(diag.Diagnostic{
		ID: id, Severity: diag.SeverityError, Start: start, End: end,
		Message: fmt.Sprintf(format, args...), Context: p.currentContext(),
	})
}

func (p *Parser) warnf(id diag.ID, start, end int, format string, args ...interface{}) {
	p.lex.Warnings.Add(diag.Diagnostic{
		ID: id, Severity: diag.SeverityWarning, Start: start, End: end,
		Message: fmt.Sprintf(format, args...), Context: p.currentContext(),
	})
}

func (p *Parser) internName(t token.Token) pool.ID {
	return p.pool.Intern(p.text(t))
}

// parseProgram is the parse entry point (spec.md §4.2: "Program ::=
// Statements").
func (p *Parser) parseProgram() *ast.ProgramNode {
	start := p.cur.Start
	stmts := p.parseStatements(isProgramEnd)
	end := p.prev.End
	locals := p.scopes.Current().Locals()
	prog := ast.NewProgram(p.loc(start, end), stmts)
	prog.Locals = locals
	p.scopes.Pop()
	return prog
}

func isProgramEnd(k token.Kind) bool { return k == token.EOF }
