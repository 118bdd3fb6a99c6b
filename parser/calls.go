package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/token"
)

// parsePostfixCall handles `.`/`&.`/`::` method calls and constant-path
// navigation (spec.md §4.2's highest-precedence infix group).
func (p *Parser) parsePostfixCall(left ast.Node) ast.Node {
	opTok := p.cur
	safeNav := opTok.Kind == token.AMPDOT
	p.advance()

	if opTok.Kind == token.COLON2 && p.cur.Kind == token.CONSTANT && !(p.peek.Kind == token.LPAREN && !p.peek.SpaceBefore) {
		nameTok := p.cur
		p.advance()
		return ast.NewConstantPath(left.Loc().Union(p.loc(nameTok.Start, nameTok.End)), left, p.internName(nameTok), false)
	}

	var nameTok token.Token
	switch p.cur.Kind {
	case token.IDENT, token.CONSTANT, token.FID:
		nameTok = p.cur
		p.advance()
	case token.KCLASS:
		nameTok = p.cur
		p.advance()
	default:
		nameTok = p.expect(token.IDENT, "method name")
	}
	name := p.internName(nameTok)

	var args *ast.ArgumentsNode
	var block ast.Node
	if p.cur.Kind == token.LPAREN && !p.cur.SpaceBefore {
		args, block = p.parseParenArgumentsAndBlock()
	} else if p.commandArgumentFollows() {
		args = p.parseBareArgumentList()
	}
	if block == nil && p.blockFollows() {
		block = p.parseBlock()
	}

	call := ast.NewCall(left.Loc().Union(p.prevLoc()), left, name, args, block)
	call.OperatorLoc = p.loc(opTok.Start, opTok.End)
	if safeNav {
		call.AddFlags(ast.FlagCallSafeNavigation)
	}
	return call
}

// parseIndexCall handles `recv[args]`, built as a CallNode named "[]" so
// the rewrite helpers (isIndexCallName) can retarget it uniformly with
// method-based attribute writes.
func (p *Parser) parseIndexCall(left ast.Node) ast.Node {
	start := p.cur.Start
	p.advance() // '[' / LBRACKET_ARG
	var elements []ast.Node
	for p.cur.Kind != token.RBRACKET && p.cur.Kind != token.EOF {
		elements = append(elements, p.parseArgument())
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
		p.skipTerminators()
	}
	p.expect(token.RBRACKET, "']'")
	args := ast.NewArguments(p.loc(start, p.prev.End), elements, false)

	var block ast.Node
	if p.blockFollows() {
		block = p.parseBlock()
	}
	return ast.NewCall(left.Loc().Union(p.prevLoc()), left, p.pool.InternOwned("[]"), args, block)
}

// parseParenArgumentsAndBlock parses a parenthesized call argument list
// (possibly empty, possibly ending in a trailing `&block`/`...`/`**`) plus
// an optional trailing `{ }`/`do...end` block.
func (p *Parser) parseParenArgumentsAndBlock() (*ast.ArgumentsNode, ast.Node) {
	start := p.cur.Start
	p.advance() // '(' / LPAREN_ARG
	p.skipTerminators()
	var elements []ast.Node
	forwarding := false
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		if p.cur.Kind == token.DOT3 {
			elements = append(elements, ast.NewForwardingArguments(p.loc(p.cur.Start, p.cur.End)))
			forwarding = true
			p.advance()
		} else {
			elements = append(elements, p.parseArgument())
		}
		p.skipTerminators()
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
		p.skipTerminators()
	}
	p.expect(token.RPAREN, "')'")
	args := ast.NewArguments(p.loc(start, p.prev.End), elements, forwarding)

	var block ast.Node
	if p.blockFollows() {
		block = p.parseBlock()
	}
	return args, block
}

// parseBlock parses `{ |params| body }` / `do |params| body end` attached
// to the call just parsed.
func (p *Parser) parseBlock() ast.Node {
	start := p.cur.Start
	brace := p.cur.Kind == token.LBRACE
	p.advance() // '{' or 'do'

	p.scopes.Push(true)
	var params *ast.BlockParametersNode
	if p.cur.Kind == token.PIPE {
		params = p.parseBlockParameters()
	}
	stop := func(k token.Kind) bool {
		if brace {
			return k == token.RBRACE
		}
		return k == token.KEND
	}
	body := p.parseStatements(stop)
	locals := p.scopes.Current().Locals()
	p.scopes.Pop()

	if brace {
		p.expect(token.RBRACE, "'}'")
	} else {
		p.expect(token.KEND, "'end'")
	}
	return ast.NewBlock(p.loc(start, p.prev.End), params, body, locals)
}

// parseBlockParameters parses `|a, b = 1, *c, d:, **e, &f; x, y|`.
func (p *Parser) parseBlockParameters() *ast.BlockParametersNode {
	start := p.cur.Start
	p.advance() // leading '|'
	params := p.parseParameterList(func(k token.Kind) bool { return k == token.PIPE })
	var locals []*ast.BlockLocalVariableNode
	if p.cur.Kind == token.SEMICOLON {
		p.advance()
		for {
			nameTok := p.expect(token.IDENT, "block-local variable name")
			id := p.internName(nameTok)
			p.scopes.Add(id)
			locals = append(locals, ast.NewBlockLocalVariable(p.loc(nameTok.Start, nameTok.End), id))
			if p.cur.Kind != token.COMMA {
				break
			}
			p.advance()
		}
	}
	p.expect(token.PIPE, "'|'")
	return ast.NewBlockParameters(p.loc(start, p.prev.End), params, locals)
}
