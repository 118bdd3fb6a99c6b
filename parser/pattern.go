package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/token"
)

// parsePattern is the `case/in` and one-line (`=>`/`in`) pattern grammar's
// entry point (spec component K): a bare, comma-separated pattern list
// becomes an implicit ArrayPatternNode the same way a bare comma list on a
// multi-assignment's left side becomes a MultiTargetNode.
func (p *Parser) parsePattern() ast.Node {
	first := p.parseStandalonePattern()
	if p.cur.Kind != token.COMMA {
		return first
	}
	start := first.Loc().Start
	var requireds, posts []ast.Node
	var rest ast.Node
	seenRest := false
	add := func(item ast.Node) {
		if sp, ok := item.(*ast.SplatNode); ok && !seenRest {
			rest = sp
			seenRest = true
			return
		}
		if seenRest {
			posts = append(posts, item)
		} else {
			requireds = append(requireds, item)
		}
	}
	add(first)
	for p.cur.Kind == token.COMMA {
		p.advance()
		p.skipTerminators()
		add(p.parsePatternElement())
	}
	return ast.NewArrayPattern(p.loc(start, p.prev.End), nil, requireds, rest, posts)
}

// parseStandalonePattern parses one pattern with its optional trailing
// `=> name` capture and `|` alternation, but not a bare top-level comma list
// (that's parsePattern's job, so array-pattern elements can reuse this
// without it swallowing the list's own commas).
func (p *Parser) parseStandalonePattern() ast.Node {
	pat := p.parseAlternationPattern()
	if p.cur.Kind == token.ARROW {
		p.advance()
		nameTok := p.expect(token.IDENT, "pattern variable name")
		id := p.internName(nameTok)
		p.scopes.Add(id)
		target := ast.NewLocalVariableTarget(p.loc(nameTok.Start, nameTok.End), id, 0)
		return ast.NewCapturePattern(pat.Loc().Union(target.Loc()), pat, target)
	}
	return pat
}

func (p *Parser) parseAlternationPattern() ast.Node {
	left := p.parsePatternPrimary()
	for p.cur.Kind == token.PIPE {
		p.advance()
		p.skipTerminators()
		right := p.parsePatternPrimary()
		left = ast.NewAlternationPattern(left.Loc().Union(right.Loc()), left, right)
	}
	return left
}

// parsePatternElement parses one array/find-pattern list entry: a splat
// (`*name` / bare `*`) or an ordinary standalone pattern.
func (p *Parser) parsePatternElement() ast.Node {
	if p.cur.Kind == token.USTAR {
		start := p.cur.Start
		p.advance()
		if p.cur.Kind == token.IDENT {
			tok := p.cur
			p.advance()
			id := p.internName(tok)
			p.scopes.Add(id)
			return ast.NewSplat(p.loc(start, p.prev.End), ast.NewLocalVariableTarget(p.loc(tok.Start, tok.End), id, 0))
		}
		return ast.NewSplat(p.loc(start, p.prev.End), nil)
	}
	return p.parseStandalonePattern()
}

func (p *Parser) parsePatternPrimary() ast.Node {
	start := p.cur.Start
	switch p.cur.Kind {
	case token.CARET:
		p.advance()
		if p.cur.Kind == token.LPAREN {
			p.advance()
			expr := p.parseExpression(PrecLowest)
			p.expect(token.RPAREN, "')'")
			return ast.NewPinnedExpression(p.loc(start, p.prev.End), expr)
		}
		variable := p.parsePrimary()
		return ast.NewPinnedVariable(p.loc(start, p.prev.End), variable)

	case token.LBRACKET, token.LBRACKET_ARG:
		return p.parseArrayPattern(nil)

	case token.LBRACE, token.LBRACE_ARG:
		return p.parseHashPattern(nil)

	case token.IDENT:
		tok := p.cur
		p.advance()
		id := p.internName(tok)
		p.scopes.Add(id)
		return ast.NewLocalVariableTarget(p.loc(tok.Start, tok.End), id, 0)

	case token.CONSTANT:
		constant := p.parseConstantPathForPattern()
		return p.parseConstantPatternTail(constant)

	case token.COLON2:
		constant := p.parseConstantPathForPattern()
		return p.parseConstantPatternTail(constant)

	case token.KNIL:
		p.advance()
		return ast.NewNil(p.loc(start, p.prev.End))
	case token.KTRUE:
		p.advance()
		return ast.NewTrue(p.loc(start, p.prev.End))
	case token.KFALSE:
		p.advance()
		return ast.NewFalse(p.loc(start, p.prev.End))

	default:
		return p.parseExpression(PrecBitOr)
	}
	return p.parseExpression(PrecBitOr)
}

// parseConstantPathForPattern parses the `Foo::Bar` constant path a pattern
// may lead with, reusing the same grammar class/module names use.
func (p *Parser) parseConstantPathForPattern() ast.Node {
	return p.parseConstantPathForDefinition()
}

// parseConstantPatternTail handles what may follow a leading constant in a
// pattern: `Point(x, y)` / `Point[x, y]` (array-shaped), `Point(x:, y:)`
// (hash-shaped), or a bare constant used as a value pattern.
func (p *Parser) parseConstantPatternTail(constant ast.Node) ast.Node {
	switch p.cur.Kind {
	case token.LBRACKET:
		return p.parseArrayPattern(constant)
	case token.LPAREN:
		p.advance()
		p.skipTerminators()
		if p.cur.Kind == token.LABEL || p.cur.Kind == token.STAR2 || p.cur.Kind == token.USTAR2 {
			return p.parseHashPatternBody(constant, constant.Loc().Start, token.RPAREN)
		}
		return p.parseArrayPatternBody(constant, constant.Loc().Start, token.RPAREN)
	default:
		return constant
	}
}

func (p *Parser) parseArrayPattern(constant ast.Node) ast.Node {
	start := p.cur.Start
	if constant != nil {
		start = constant.Loc().Start
	}
	p.advance() // '[' / LBRACKET_ARG
	return p.parseArrayPatternBody(constant, start, token.RBRACKET)
}

func (p *Parser) parseArrayPatternBody(constant ast.Node, start int, closeKind token.Kind) ast.Node {
	p.skipTerminators()
	var elements []ast.Node
	for p.cur.Kind != closeKind && p.cur.Kind != token.EOF {
		elements = append(elements, p.parsePatternElement())
		p.skipTerminators()
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
		p.skipTerminators()
	}
	p.expect(closeKind, "closing delimiter")
	loc := p.loc(start, p.prev.End)

	splatPositions := 0
	firstIsSplat := len(elements) > 0
	if firstIsSplat {
		_, firstIsSplat = elements[0].(*ast.SplatNode)
	}
	lastIsSplat := len(elements) > 0
	if lastIsSplat {
		_, lastIsSplat = elements[len(elements)-1].(*ast.SplatNode)
	}
	for _, e := range elements {
		if _, ok := e.(*ast.SplatNode); ok {
			splatPositions++
		}
	}
	if len(elements) >= 2 && splatPositions == 2 && firstIsSplat && lastIsSplat {
		left := elements[0]
		right := elements[len(elements)-1]
		mid := elements[1 : len(elements)-1]
		return ast.NewFindPattern(loc, constant, left, mid, right)
	}

	var requireds, posts []ast.Node
	var rest ast.Node
	seenRest := false
	for _, e := range elements {
		if sp, ok := e.(*ast.SplatNode); ok && !seenRest {
			rest = sp
			seenRest = true
			continue
		}
		if seenRest {
			posts = append(posts, e)
		} else {
			requireds = append(requireds, e)
		}
	}
	return ast.NewArrayPattern(loc, constant, requireds, rest, posts)
}

func (p *Parser) parseHashPattern(constant ast.Node) ast.Node {
	start := p.cur.Start
	if constant != nil {
		start = constant.Loc().Start
	}
	p.advance() // '{' / LBRACE_ARG
	return p.parseHashPatternBody(constant, start, token.RBRACE)
}

func (p *Parser) parseHashPatternBody(constant ast.Node, start int, closeKind token.Kind) ast.Node {
	p.skipTerminators()
	var elements []*ast.AssocNode
	var rest ast.Node
	for p.cur.Kind != closeKind && p.cur.Kind != token.EOF {
		switch {
		case p.cur.Kind == token.STAR2 || p.cur.Kind == token.USTAR2:
			p.advance()
			if p.cur.Kind == token.KNIL {
				p.advance()
				rest = ast.NewNoKeywordsParameter(p.prevLoc())
			} else if p.cur.Kind == token.IDENT {
				tok := p.cur
				p.advance()
				id := p.internName(tok)
				p.scopes.Add(id)
				rest = ast.NewKeywordRestParameter(p.loc(tok.Start, tok.End), id)
			}
		default:
			labelTok := p.expect(token.LABEL, "label")
			raw := p.text(labelTok)
			keyBytes := raw[:len(raw)-1]
			name := p.pool.InternOwned(string(keyBytes))
			key := ast.NewSymbol(p.loc(labelTok.Start, labelTok.End-1), keyBytes)
			if p.cur.Kind == closeKind || p.cur.Kind == token.COMMA || p.cur.Kind == token.NEWLINE {
				p.scopes.Add(name)
				target := ast.NewLocalVariableTarget(p.loc(labelTok.Start, labelTok.End), name, 0)
				implicit := ast.NewImplicit(target.Loc(), target)
				elements = append(elements, ast.NewAssoc(key.Loc().Union(implicit.Loc()), key, implicit, false))
			} else {
				val := p.parseStandalonePattern()
				elements = append(elements, ast.NewAssoc(key.Loc().Union(val.Loc()), key, val, false))
			}
		}
		p.skipTerminators()
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
		p.skipTerminators()
	}
	p.expect(closeKind, "closing delimiter")
	return ast.NewHashPattern(p.loc(start, p.prev.End), constant, elements, rest)
}
