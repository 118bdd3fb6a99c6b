package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/internal/pool"
	"github.com/rubyparse/rubyparse/token"
)

// consumeThenSeparator eats the optional `then` keyword, else falls back to
// the statement separator Ruby allows in its place (spec.md §4.2); a `:`
// separator is not accepted.
func (p *Parser) consumeThenSeparator() {
	if p.cur.Kind == token.KTHEN {
		p.advance()
		return
	}
	p.skipTerminators()
}

func (p *Parser) consumeDoSeparator() {
	if p.cur.Kind == token.KDO {
		p.advance()
		return
	}
	p.skipTerminators()
}

func isIfStop(k token.Kind) bool { return k == token.KELSIF || k == token.KELSE || k == token.KEND }
func isWhenStop(k token.Kind) bool {
	return k == token.KWHEN || k == token.KELSE || k == token.KEND
}
func isInStop(k token.Kind) bool   { return k == token.KIN || k == token.KELSE || k == token.KEND }
func isLoopEnd(k token.Kind) bool  { return k == token.KEND }
func isBeginStop(k token.Kind) bool {
	return k == token.KRESCUE || k == token.KELSE || k == token.KENSURE || k == token.KEND
}
func isRescueStop(k token.Kind) bool {
	return k == token.KRESCUE || k == token.KELSE || k == token.KENSURE || k == token.KEND
}
func isDefStop(k token.Kind) bool {
	return k == token.KRESCUE || k == token.KELSE || k == token.KENSURE || k == token.KEND
}

// parseIf parses `if cond then body (elsif cond then body)* (else body)? end`.
func (p *Parser) parseIf() ast.Node {
	start := p.cur.Start
	p.advance() // 'if'
	cond := p.checkConditionPredicate(p.parseExpression(PrecLowest))
	p.consumeThenSeparator()
	body := p.parseStatements(isIfStop)
	var consequent ast.Node
	switch p.cur.Kind {
	case token.KELSIF:
		consequent = p.parseElsif()
	case token.KELSE:
		consequent = p.parseElseClause()
	}
	p.expect(token.KEND, "'end'")
	return ast.NewIf(p.loc(start, p.prev.End), cond, body, consequent)
}

// parseElsif parses one `elsif` link of the chain; the outer `parseIf` call
// consumes the final `end`, so this never does.
func (p *Parser) parseElsif() ast.Node {
	start := p.cur.Start
	p.advance() // 'elsif'
	cond := p.checkConditionPredicate(p.parseExpression(PrecLowest))
	p.consumeThenSeparator()
	body := p.parseStatements(isIfStop)
	var consequent ast.Node
	switch p.cur.Kind {
	case token.KELSIF:
		consequent = p.parseElsif()
	case token.KELSE:
		consequent = p.parseElseClause()
	}
	return ast.NewIf(p.loc(start, p.prev.End), cond, body, consequent)
}

func (p *Parser) parseElseClause() *ast.ElseNode {
	start := p.cur.Start
	p.advance() // 'else'
	body := p.parseStatements(func(k token.Kind) bool { return k == token.KEND })
	return ast.NewElse(p.loc(start, p.prev.End), body)
}

func (p *Parser) parseUnless() ast.Node {
	start := p.cur.Start
	p.advance() // 'unless'
	cond := p.checkConditionPredicate(p.parseExpression(PrecLowest))
	p.consumeThenSeparator()
	body := p.parseStatements(func(k token.Kind) bool { return k == token.KELSE || k == token.KEND })
	var els *ast.ElseNode
	if p.cur.Kind == token.KELSE {
		els = p.parseElseClause()
	}
	p.expect(token.KEND, "'end'")
	return ast.NewUnless(p.loc(start, p.prev.End), cond, body, els)
}

func (p *Parser) parseWhile() ast.Node {
	start := p.cur.Start
	p.advance() // 'while'
	cond := p.checkConditionPredicate(p.parseExpression(PrecLowest))
	p.consumeDoSeparator()
	body := p.parseStatements(isLoopEnd)
	p.expect(token.KEND, "'end'")
	return ast.NewWhile(p.loc(start, p.prev.End), cond, body)
}

func (p *Parser) parseUntil() ast.Node {
	start := p.cur.Start
	p.advance() // 'until'
	cond := p.checkConditionPredicate(p.parseExpression(PrecLowest))
	p.consumeDoSeparator()
	body := p.parseStatements(isLoopEnd)
	p.expect(token.KEND, "'end'")
	return ast.NewUntil(p.loc(start, p.prev.End), cond, body)
}

func (p *Parser) parseFor() ast.Node {
	start := p.cur.Start
	p.advance() // 'for'
	index := p.parseForIndex()
	p.expect(token.KIN, "'in'")
	collection := p.parseExpression(PrecLowest)
	p.consumeDoSeparator()
	body := p.parseStatements(isLoopEnd)
	p.expect(token.KEND, "'end'")
	return ast.NewFor(p.loc(start, p.prev.End), index, collection, body)
}

// parseForIndex parses the comma-separated loop variable(s) of `for x, y in
// ...`, folding more than one into a MultiTargetNode.
func (p *Parser) parseForIndex() ast.Node {
	start := p.cur.Start
	first := p.toTarget(p.parseMultiAssignTargetItem())
	if p.cur.Kind != token.COMMA {
		return first
	}
	lefts := []ast.Node{first}
	for p.cur.Kind == token.COMMA {
		p.advance()
		lefts = append(lefts, p.parseMultiAssignTargetItem())
	}
	return ast.NewMultiTarget(p.loc(start, p.prev.End), lefts, nil, nil)
}

func (p *Parser) parseCase() ast.Node {
	start := p.cur.Start
	p.advance() // 'case'
	var pred ast.Node
	if p.cur.Kind != token.NEWLINE && p.cur.Kind != token.SEMICOLON &&
		p.cur.Kind != token.KWHEN && p.cur.Kind != token.KIN {
		pred = p.parseExpression(PrecLowest)
	}
	p.skipTerminators()
	if p.cur.Kind == token.KIN {
		return p.parseCaseMatch(start, pred)
	}
	var whens []*ast.WhenNode
	for p.cur.Kind == token.KWHEN {
		whens = append(whens, p.parseWhen())
	}
	p.checkDuplicateWhenClauses(whens)
	var els *ast.ElseNode
	if p.cur.Kind == token.KELSE {
		els = p.parseElseClause()
	}
	p.expect(token.KEND, "'end'")
	return ast.NewCase(p.loc(start, p.prev.End), pred, whens, els)
}

func (p *Parser) parseWhen() *ast.WhenNode {
	start := p.cur.Start
	p.advance() // 'when'
	conds := []ast.Node{p.parseArgument()}
	for p.cur.Kind == token.COMMA {
		p.advance()
		p.skipTerminators()
		conds = append(conds, p.parseArgument())
	}
	p.consumeThenSeparator()
	body := p.parseStatements(isWhenStop)
	return ast.NewWhen(p.loc(start, p.prev.End), conds, body)
}

func (p *Parser) parseCaseMatch(start int, pred ast.Node) ast.Node {
	var ins []*ast.InNode
	for p.cur.Kind == token.KIN {
		ins = append(ins, p.parseIn())
	}
	var els *ast.ElseNode
	if p.cur.Kind == token.KELSE {
		els = p.parseElseClause()
	}
	p.expect(token.KEND, "'end'")
	return ast.NewCaseMatch(p.loc(start, p.prev.End), pred, ins, els)
}

func (p *Parser) parseIn() *ast.InNode {
	start := p.cur.Start
	p.advance() // 'in'
	pattern := p.parsePattern()
	var guard ast.Node
	guardIsUnless := false
	switch p.cur.Kind {
	case token.KIF:
		p.advance()
		guard = p.parseExpression(PrecLowest)
	case token.KUNLESS:
		p.advance()
		guard = p.parseExpression(PrecLowest)
		guardIsUnless = true
	}
	p.consumeThenSeparator()
	body := p.parseStatements(isInStop)
	n := ast.NewIn(p.loc(start, p.prev.End), pattern, guard, body)
	n.GuardIsUnless = guardIsUnless
	return n
}

func (p *Parser) parseBegin() ast.Node {
	start := p.cur.Start
	p.advance() // 'begin'
	body := p.parseStatements(isBeginStop)
	var rescue *ast.RescueNode
	if p.cur.Kind == token.KRESCUE {
		rescue = p.parseRescueChain()
	}
	var els *ast.ElseNode
	if p.cur.Kind == token.KELSE {
		els = p.parseElseClause()
	}
	var ensure *ast.EnsureNode
	if p.cur.Kind == token.KENSURE {
		ensure = p.parseEnsure()
	}
	p.expect(token.KEND, "'end'")
	return ast.NewBegin(p.loc(start, p.prev.End), body, rescue, els, ensure)
}

// parseRescueChain parses one `rescue Exc1, Exc2 => var; body` clause and
// recurses into any further `rescue` clauses via Consequent.
func (p *Parser) parseRescueChain() *ast.RescueNode {
	start := p.cur.Start
	p.advance() // 'rescue'
	var excs []ast.Node
	if p.cur.Kind != token.ARROW && p.cur.Kind != token.NEWLINE &&
		p.cur.Kind != token.SEMICOLON && p.cur.Kind != token.KTHEN {
		excs = append(excs, p.parseExpression(PrecBitOr))
		for p.cur.Kind == token.COMMA {
			p.advance()
			p.skipTerminators()
			excs = append(excs, p.parseExpression(PrecBitOr))
		}
	}
	var ref ast.Node
	if p.cur.Kind == token.ARROW {
		p.advance()
		target := p.parseExpression(PrecLowest)
		ref = p.toTarget(target)
	}
	p.consumeThenSeparator()
	body := p.parseStatements(isRescueStop)
	var next *ast.RescueNode
	if p.cur.Kind == token.KRESCUE {
		next = p.parseRescueChain()
	}
	return ast.NewRescue(p.loc(start, p.prev.End), excs, ref, body, next)
}

func (p *Parser) parseEnsure() *ast.EnsureNode {
	start := p.cur.Start
	p.advance() // 'ensure'
	body := p.parseStatements(func(k token.Kind) bool { return k == token.KEND })
	return ast.NewEnsure(p.loc(start, p.prev.End), body)
}

// parseMethodNameID consumes the name position of a `def` (an ordinary
// identifier, a setter `name=`, `[]`/`[]=`, or one of the operator-method
// spellings) and interns it.
func (p *Parser) parseMethodNameID() pool.ID {
	switch p.cur.Kind {
	case token.IDENT, token.CONSTANT, token.FID, token.KCLASS:
		tok := p.cur
		p.advance()
		name := string(p.text(tok))
		if p.cur.Kind == token.ASSIGN && !p.cur.SpaceBefore {
			p.advance()
			name += "="
		}
		return p.pool.InternOwned(name)
	case token.LBRACKET, token.LBRACKET_ARG:
		p.advance()
		p.expect(token.RBRACKET, "']'")
		name := "[]"
		if p.cur.Kind == token.ASSIGN && !p.cur.SpaceBefore {
			p.advance()
			name = "[]="
		}
		return p.pool.InternOwned(name)
	default:
		if name, ok := operatorMethodName[p.cur.Kind]; ok {
			p.advance()
			return p.pool.InternOwned(name)
		}
		switch p.cur.Kind {
		case token.UMINUS, token.UMINUS_NUM:
			p.advance()
			if p.cur.Kind == token.AT {
				p.advance()
			}
			return p.pool.InternOwned("-@")
		case token.UPLUS:
			p.advance()
			if p.cur.Kind == token.AT {
				p.advance()
			}
			return p.pool.InternOwned("+@")
		case token.TILDE:
			p.advance()
			return p.pool.InternOwned("~")
		case token.BANG:
			p.advance()
			return p.pool.InternOwned("!")
		}
		p.errorf(diag.ExpectedTokenAfter, p.cur.Start, p.cur.End, "expected a method name, got %q", string(p.text(p.cur)))
		tok := p.cur
		p.advance()
		return p.pool.InternOwned(string(p.text(tok)))
	}
}

// parseAliasNameOrSymbol consumes `alias`/`undef`'s name position: a bare
// method name (same grammar as a def name) or an explicit `:symbol`,
// normalized to a SymbolNode either way.
func (p *Parser) parseAliasNameOrSymbol() ast.Node {
	if p.cur.Kind == token.SYMBOL {
		tok := p.cur
		p.advance()
		return ast.NewSymbol(p.loc(tok.Start, tok.End), p.text(tok)[1:])
	}
	if p.cur.Kind == token.SYMBOL_BEGIN || p.cur.Kind == token.DSYMBOL_BEGIN {
		return p.parseQuotedSymbol()
	}
	start := p.cur.Start
	name := p.parseMethodNameID()
	return ast.NewSymbol(p.loc(start, p.prev.End), []byte(p.pool.String(name)))
}

func (p *Parser) parseDef() ast.Node {
	start := p.cur.Start
	p.advance() // 'def'

	var receiver ast.Node
	if p.cur.Kind == token.KSELF && p.peek.Kind == token.DOT {
		recvTok := p.cur
		p.advance()
		receiver = ast.NewSelf(p.loc(recvTok.Start, p.prev.End))
		p.advance() // '.'
	} else if (p.cur.Kind == token.IDENT || p.cur.Kind == token.CONSTANT) && p.peek.Kind == token.DOT {
		tok := p.cur
		p.advance()
		if tok.Kind == token.CONSTANT {
			receiver = ast.NewConstantRead(p.loc(tok.Start, tok.End), p.internName(tok))
		} else {
			receiver = p.resolveBareIdentifier(tok, string(p.text(tok)))
		}
		p.advance() // '.'
	}

	name := p.parseMethodNameID()

	p.scopes.Push(true)
	p.defDepth++
	var params *ast.ParametersNode
	if p.cur.Kind == token.LPAREN {
		p.advance()
		params = p.parseParameterList(func(k token.Kind) bool { return k == token.RPAREN })
		p.expect(token.RPAREN, "')'")
	} else if p.cur.Kind != token.NEWLINE && p.cur.Kind != token.SEMICOLON && p.cur.Kind != token.ASSIGN {
		params = p.parseParameterList(func(k token.Kind) bool { return k == token.NEWLINE || k == token.SEMICOLON })
	}

	var body ast.Node
	isEndless := false
	if p.cur.Kind == token.ASSIGN {
		p.advance()
		p.skipTerminators()
		expr := p.parseExpression(PrecModifier)
		body = ast.NewStatements(expr.Loc(), []ast.Node{expr})
		isEndless = true
	} else {
		stmts := p.parseStatements(isDefStop)
		if p.cur.Kind == token.KRESCUE || p.cur.Kind == token.KENSURE || p.cur.Kind == token.KELSE {
			var rescue *ast.RescueNode
			if p.cur.Kind == token.KRESCUE {
				rescue = p.parseRescueChain()
			}
			var els *ast.ElseNode
			if p.cur.Kind == token.KELSE {
				els = p.parseElseClause()
			}
			var ensure *ast.EnsureNode
			if p.cur.Kind == token.KENSURE {
				ensure = p.parseEnsure()
			}
			body = ast.NewBegin(stmts.Loc(), stmts, rescue, els, ensure)
		} else {
			body = stmts
		}
		p.expect(token.KEND, "'end'")
	}

	locals := p.scopes.Current().Locals()
	p.scopes.Pop()
	p.defDepth--
	def := ast.NewDef(p.loc(start, p.prev.End), name, receiver, params, body, locals)
	def.IsEndless = isEndless
	return def
}

func (p *Parser) parseClass() ast.Node {
	start := p.cur.Start
	p.checkClassOrModuleInMethod(start, start+len("class"))
	p.advance() // 'class'

	if p.cur.Kind == token.LSHIFT {
		p.advance()
		expr := p.parseExpression(PrecLowest)
		p.skipTerminators()
		p.scopes.Push(true)
		p.classModuleDepth++
		body := p.parseStatements(func(k token.Kind) bool { return k == token.KEND })
		locals := p.scopes.Current().Locals()
		p.scopes.Pop()
		p.classModuleDepth--
		p.expect(token.KEND, "'end'")
		return ast.NewSClass(p.loc(start, p.prev.End), expr, body, locals)
	}

	path := p.parseConstantPathForDefinition()
	var superclass ast.Node
	if p.cur.Kind == token.LT {
		p.advance()
		superclass = p.parseExpression(PrecLowest)
	}
	p.skipTerminators()
	p.scopes.Push(true)
	p.classModuleDepth++
	body := p.parseStatements(func(k token.Kind) bool { return k == token.KEND })
	locals := p.scopes.Current().Locals()
	p.scopes.Pop()
	p.classModuleDepth--
	p.expect(token.KEND, "'end'")
	return ast.NewClass(p.loc(start, p.prev.End), path, superclass, body, locals)
}

func (p *Parser) parseModule() ast.Node {
	start := p.cur.Start
	p.checkClassOrModuleInMethod(start, start+len("module"))
	p.advance() // 'module'
	path := p.parseConstantPathForDefinition()
	p.skipTerminators()
	p.scopes.Push(true)
	p.classModuleDepth++
	body := p.parseStatements(func(k token.Kind) bool { return k == token.KEND })
	locals := p.scopes.Current().Locals()
	p.scopes.Pop()
	p.classModuleDepth--
	p.expect(token.KEND, "'end'")
	return ast.NewModule(p.loc(start, p.prev.End), path, body, locals)
}

// parseConstantPathForDefinition parses the `class`/`module` name position:
// `Foo`, `::Foo`, `Foo::Bar::Baz`.
func (p *Parser) parseConstantPathForDefinition() ast.Node {
	start := p.cur.Start
	var path ast.Node
	if p.cur.Kind == token.COLON2 {
		p.advance()
		tok := p.expect(token.CONSTANT, "constant name")
		path = ast.NewConstantPath(p.loc(start, p.prev.End), nil, p.internName(tok), true)
	} else {
		tok := p.expect(token.CONSTANT, "constant name")
		path = ast.NewConstantRead(p.loc(tok.Start, tok.End), p.internName(tok))
	}
	for p.cur.Kind == token.COLON2 {
		p.advance()
		tok := p.expect(token.CONSTANT, "constant name")
		path = ast.NewConstantPath(path.Loc().Union(p.loc(tok.Start, tok.End)), path, p.internName(tok), false)
	}
	return path
}
