package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/token"
)

// parseStatements parses a `;`/newline-separated sequence of expressions
// until stop(cur.Kind) is true, without consuming the terminating token.
func (p *Parser) parseStatements(stop func(token.Kind) bool) *ast.StatementsNode {
	start := p.cur.Start
	var body []ast.Node
	p.skipTerminators()
	for !stop(p.cur.Kind) && p.cur.Kind != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			stmt.AddFlags(ast.FlagNewline)
			body = append(body, stmt)
		}
		if !p.skipTerminators() && !stop(p.cur.Kind) && p.cur.Kind != token.EOF {
			// No separator between two statements: recover by treating the
			// next token as a new statement anyway (spec.md §4.2 recovery).
			p.errorf(diag.UnexpectedToken, p.cur.Start, p.cur.End, "unexpected %q", string(p.text(p.cur)))
		}
	}
	end := p.prev.End
	if len(body) == 0 {
		end = start
	}
	return ast.NewStatements(p.loc(start, end), body)
}

// skipTerminators consumes one or more NEWLINE/SEMICOLON tokens, reporting
// whether at least one was consumed.
func (p *Parser) skipTerminators() bool {
	any := false
	for p.cur.Kind == token.NEWLINE || p.cur.Kind == token.SEMICOLON {
		p.advance()
		any = true
	}
	return any
}

// parseStatement parses one top-level statement: a full expression,
// optionally followed by a modifier (`if`/`unless`/`while`/`until`/`rescue`).
func (p *Parser) parseStatement() ast.Node {
	expr := p.parseExpressionStatement()
	for {
		switch p.cur.Kind {
		case token.KIF_MOD:
			p.advance()
			cond := p.checkConditionPredicate(p.parseExpression(PrecModifier))
			expr = ast.NewIf(expr.Loc().Union(cond.Loc()), cond, ast.NewStatements(expr.Loc(), []ast.Node{expr}), nil)
			expr.(*ast.IfNode).IsModifier = true
		case token.KUNLESS_MOD:
			p.advance()
			cond := p.checkConditionPredicate(p.parseExpression(PrecModifier))
			expr = ast.NewUnless(expr.Loc().Union(cond.Loc()), cond, ast.NewStatements(expr.Loc(), []ast.Node{expr}), nil)
			expr.(*ast.UnlessNode).IsModifier = true
		case token.KWHILE_MOD:
			p.advance()
			cond := p.checkConditionPredicate(p.parseExpression(PrecModifier))
			n := ast.NewWhile(expr.Loc().Union(cond.Loc()), cond, ast.NewStatements(expr.Loc(), []ast.Node{expr}))
			n.IsModifier = true
			n.BeginLess = expr.Kind() == ast.KindBeginNode
			expr = n
		case token.KUNTIL_MOD:
			p.advance()
			cond := p.checkConditionPredicate(p.parseExpression(PrecModifier))
			n := ast.NewUntil(expr.Loc().Union(cond.Loc()), cond, ast.NewStatements(expr.Loc(), []ast.Node{expr}))
			n.IsModifier = true
			n.BeginLess = expr.Kind() == ast.KindBeginNode
			expr = n
		case token.KRESCUE_MOD:
			p.advance()
			fallback := p.parseExpression(PrecModifier)
			expr = ast.NewRescueModifier(expr.Loc().Union(fallback.Loc()), expr, fallback)
		default:
			return expr
		}
	}
}

// parseExpressionStatement parses a full expression, the statement
// grammar's topmost production (spec.md §4.2). A COMMA following a
// would-be assignment target (rather than an operator expression) switches
// into multi-assignment parsing: the comma itself never binds as an infix
// operator, so the first parseExpression call already stops at exactly the
// right point for this to work without backtracking.
func (p *Parser) parseExpressionStatement() ast.Node {
	first := p.parseExpression(PrecLowest)
	if p.cur.Kind == token.COMMA && isAssignableTarget(first) {
		return p.parseMultiAssignmentFrom(first)
	}
	return first
}
