package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/token"
)

// isAssignableTarget reports whether a just-parsed expression is a shape
// toTarget can rewrite, the gate parseExpressionStatement uses to decide a
// bare COMMA after the first expression starts a multi-assignment rather
// than, say, a syntax error.
func isAssignableTarget(n ast.Node) bool {
	switch n.(type) {
	case *ast.LocalVariableReadNode, *ast.InstanceVariableReadNode, *ast.ClassVariableReadNode,
		*ast.GlobalVariableReadNode, *ast.ConstantReadNode, *ast.ConstantPathNode,
		*ast.SplatNode, *ast.CallNode:
		return true
	}
	return false
}

// parseMultiAssignmentFrom continues parsing a multi-assignment
// (`a, b, *c = value...`) whose first target expression has already been
// parsed as first and the parser is sitting on the separating COMMA
// (spec.md §4.3's MultiTarget grammar, invariant 8: extra splats beyond the
// first still get appended to Rights rather than aborting the parse).
func (p *Parser) parseMultiAssignmentFrom(first ast.Node) ast.Node {
	start := first.Loc().Start
	lefts := []ast.Node{p.toTarget(first)}
	var rest ast.Node
	var rights []ast.Node

	for p.cur.Kind == token.COMMA {
		p.advance()
		if p.cur.Kind == token.ASSIGN {
			rest = ast.NewImplicitRest(p.loc(p.prev.End, p.prev.End))
			break
		}
		item := p.parseMultiAssignTargetItem()
		if splat, ok := item.(*ast.SplatNode); ok {
			if rest == nil {
				rest = item
				continue
			}
			// spec invariant 8: only one splat target is valid per
			// multi-assignment; later ones are still kept in the tree (in
			// rights) but flagged as an error.
			p.errorf(diag.MultipleSplatsInMultiAssign, splat.Loc().Start, splat.Loc().End,
				"multiple splat targets in multi-assignment")
		}
		if rest != nil {
			rights = append(rights, item)
		} else {
			lefts = append(lefts, item)
		}
	}

	p.expect(token.ASSIGN, "'='")
	p.skipTerminators()
	value := p.parseMultiAssignValue()
	loc := p.loc(start, p.prev.End)
	target := ast.NewMultiTarget(loc, lefts, rest, rights)
	return ast.NewMultiWrite(loc, target, value)
}

func (p *Parser) parseMultiAssignTargetItem() ast.Node {
	if p.cur.Kind == token.USTAR {
		start := p.cur.Start
		p.advance()
		if p.cur.Kind == token.COMMA || p.cur.Kind == token.ASSIGN {
			return ast.NewSplat(p.loc(start, p.prev.End), nil)
		}
		inner := p.parseExpression(PrecAssignment)
		return ast.NewSplat(p.loc(start, p.prev.End), p.toTarget(inner))
	}
	item := p.parseExpression(PrecAssignment)
	return p.toTarget(item)
}

func (p *Parser) parseMultiAssignValue() ast.Node {
	start := p.cur.Start
	first := p.parseMultiAssignValueItem()
	if p.cur.Kind != token.COMMA {
		return first
	}
	elements := []ast.Node{first}
	for p.cur.Kind == token.COMMA {
		p.advance()
		p.skipTerminators()
		elements = append(elements, p.parseMultiAssignValueItem())
	}
	return ast.NewArray(p.loc(start, p.prev.End), elements)
}

func (p *Parser) parseMultiAssignValueItem() ast.Node {
	if p.cur.Kind == token.USTAR {
		start := p.cur.Start
		p.advance()
		expr := p.parseExpression(PrecModifier)
		return ast.NewSplat(p.loc(start, p.prev.End), expr)
	}
	return p.parseExpression(PrecModifier)
}
