package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/token"
)

// parseLambda parses `-> (params) { body }` / `-> params do body end`.
func (p *Parser) parseLambda() ast.Node {
	start := p.cur.Start
	p.advance() // '->'

	p.scopes.Push(true)
	var params *ast.BlockParametersNode
	if p.cur.Kind == token.LPAREN || p.cur.Kind == token.LPAREN_ARG {
		pstart := p.cur.Start
		p.advance()
		plist := p.parseParameterList(func(k token.Kind) bool { return k == token.RPAREN })
		p.expect(token.RPAREN, "')'")
		params = ast.NewBlockParameters(p.loc(pstart, p.prev.End), plist, nil)
	} else if p.cur.Kind == token.IDENT {
		pstart := p.cur.Start
		plist := p.parseParameterList(func(k token.Kind) bool { return k == token.LBRACE || k == token.KDO })
		params = ast.NewBlockParameters(p.loc(pstart, p.prev.End), plist, nil)
	}

	brace := p.cur.Kind == token.LBRACE
	if brace {
		p.advance()
	} else {
		p.expect(token.KDO, "'do'")
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
	return ast.NewLambda(p.loc(start, p.prev.End), params, body, locals)
}

// parseDefined parses `defined?(expr)` / `defined? expr`.
func (p *Parser) parseDefined() ast.Node {
	start := p.cur.Start
	p.advance() // 'defined?'
	hasParen := p.cur.Kind == token.LPAREN && !p.cur.SpaceBefore
	if hasParen {
		p.advance()
		p.skipTerminators()
	}
	value := p.parseExpression(PrecDefined)
	if hasParen {
		p.skipTerminators()
		p.expect(token.RPAREN, "')'")
	}
	return ast.NewDefined(p.loc(start, p.prev.End), value)
}

// parseYield parses `yield`, `yield(args)`, `yield args`.
func (p *Parser) parseYield() ast.Node {
	start := p.cur.Start
	p.advance() // 'yield'
	var args *ast.ArgumentsNode
	if p.cur.Kind == token.LPAREN && !p.cur.SpaceBefore {
		astart := p.cur.Start
		p.advance()
		p.skipTerminators()
		var elements []ast.Node
		for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
			elements = append(elements, p.parseArgument())
			p.skipTerminators()
			if p.cur.Kind != token.COMMA {
				break
			}
			p.advance()
			p.skipTerminators()
		}
		p.expect(token.RPAREN, "')'")
		args = ast.NewArguments(p.loc(astart, p.prev.End), elements, false)
	} else if p.commandArgumentFollows() {
		args = p.parseBareArgumentList()
	}
	return ast.NewYield(p.loc(start, p.prev.End), args)
}

// parseSuper parses `super`, `super(args)`, `super args`, each optionally
// followed by a block; bare `super` with no parens/args forwards the
// enclosing method's own arguments (ForwardingSuperNode).
func (p *Parser) parseSuper() ast.Node {
	start := p.cur.Start
	p.advance() // 'super'

	if p.cur.Kind == token.LPAREN && !p.cur.SpaceBefore {
		args, block := p.parseParenArgumentsAndBlock()
		return ast.NewSuper(p.loc(start, p.prev.End), args, block)
	}
	if p.commandArgumentFollows() {
		args := p.parseBareArgumentList()
		var block ast.Node
		if p.blockFollows() {
			block = p.parseBlock()
		}
		return ast.NewSuper(p.loc(start, p.prev.End), args, block)
	}
	var block ast.Node
	if p.blockFollows() {
		block = p.parseBlock()
	}
	return ast.NewForwardingSuper(p.loc(start, p.prev.End), block)
}

func (p *Parser) parsePreExecution() ast.Node {
	start := p.cur.Start
	p.advance() // 'BEGIN'
	p.expect(token.LBRACE, "'{'")
	body := p.parseStatements(func(k token.Kind) bool { return k == token.RBRACE })
	p.expect(token.RBRACE, "'}'")
	return ast.NewPreExecution(p.loc(start, p.prev.End), body)
}

func (p *Parser) parsePostExecution() ast.Node {
	start := p.cur.Start
	p.advance() // 'END'
	p.expect(token.LBRACE, "'{'")
	body := p.parseStatements(func(k token.Kind) bool { return k == token.RBRACE })
	p.expect(token.RBRACE, "'}'")
	return ast.NewPostExecution(p.loc(start, p.prev.End), body)
}

// parseAlias parses `alias new_name old_name` / `alias $new $old`.
func (p *Parser) parseAlias() ast.Node {
	start := p.cur.Start
	p.advance() // 'alias'

	if p.cur.Kind == token.GVAR {
		newTok := p.cur
		p.advance()
		newNode := ast.NewGlobalVariableRead(p.loc(newTok.Start, newTok.End), p.internName(newTok))
		oldTok := p.expect(token.GVAR, "global variable")
		oldNode := ast.NewGlobalVariableRead(p.loc(oldTok.Start, oldTok.End), p.internName(oldTok))
		return ast.NewAliasGlobalVariable(p.loc(start, p.prev.End), newNode, oldNode)
	}

	newName := p.parseAliasNameOrSymbol()
	oldName := p.parseAliasNameOrSymbol()
	return ast.NewAliasMethod(p.loc(start, p.prev.End), newName, oldName)
}

// parseUndef parses `undef name1, name2, ...`.
func (p *Parser) parseUndef() ast.Node {
	start := p.cur.Start
	p.advance() // 'undef'
	names := []ast.Node{p.parseAliasNameOrSymbol()}
	for p.cur.Kind == token.COMMA {
		p.advance()
		p.skipTerminators()
		names = append(names, p.parseAliasNameOrSymbol())
	}
	return ast.NewUndef(p.loc(start, p.prev.End), names)
}
