package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/internal/pool"
	"github.com/rubyparse/rubyparse/token"
)

// parseParameterList parses the shared parameter grammar (spec.md §8
// scenario 6's fixed order: requireds, optionals, rest, posts, keywords,
// keyword_rest, block) used by block/lambda `|...|` lists, def's
// parenthesized and bare-newline-terminated lists alike. stop reports the
// list's closing token without consuming it.
func (p *Parser) parseParameterList(stop func(token.Kind) bool) *ast.ParametersNode {
	start := p.cur.Start
	params := ast.NewParameters(p.loc(start, start))
	seenRest := false
	seenOptional := false
	seen := make(map[pool.ID]token.Token)

	// noteName records name's declaration site, registering it as a scope
	// local (already done by each case below) and flagging a second
	// occurrence of the same name in this list as spec.md §4.2's
	// DuplicateParameterName error.
	noteName := func(tok token.Token, name pool.ID) {
		if _, ok := seen[name]; ok {
			p.errorf(diag.DuplicateParameterName, tok.Start, tok.End,
				"duplicate parameter name %q", string(p.text(tok)))
			return
		}
		seen[name] = tok
	}

	for !stop(p.cur.Kind) && p.cur.Kind != token.EOF && p.cur.Kind != token.NEWLINE && p.cur.Kind != token.SEMICOLON {
		p.scopes.Current().NoteOrdinary()
		switch p.cur.Kind {
		case token.STAR, token.USTAR:
			pstart := p.cur.Start
			p.advance()
			name := pool.Absent
			if p.cur.Kind == token.IDENT {
				nameTok := p.cur
				p.advance()
				name = p.internName(nameTok)
				noteName(nameTok, name)
				p.scopes.Add(name)
			}
			params.Rest = ast.NewRestParameter(p.loc(pstart, p.prev.End), name)
			seenRest = true

		case token.STAR2, token.USTAR2:
			pstart := p.cur.Start
			p.advance()
			if p.cur.Kind == token.KNIL {
				p.advance()
				params.KeywordRest = ast.NewNoKeywordsParameter(p.loc(pstart, p.prev.End))
			} else {
				name := pool.Absent
				if p.cur.Kind == token.IDENT {
					nameTok := p.cur
					p.advance()
					name = p.internName(nameTok)
					noteName(nameTok, name)
					p.scopes.Add(name)
				}
				params.KeywordRest = ast.NewKeywordRestParameter(p.loc(pstart, p.prev.End), name)
			}

		case token.AMP, token.UAMP:
			pstart := p.cur.Start
			p.advance()
			name := pool.Absent
			if p.cur.Kind == token.IDENT {
				nameTok := p.cur
				p.advance()
				name = p.internName(nameTok)
				noteName(nameTok, name)
				p.scopes.Add(name)
			}
			params.Block = ast.NewBlockParameter(p.loc(pstart, p.prev.End), name)

		case token.DOT3:
			pstart := p.cur.Start
			p.advance()
			params.KeywordRest = ast.NewForwardingParameter(p.loc(pstart, p.prev.End))
			p.scopes.Add(p.pool.InternOwned("..."))

		case token.LABEL:
			labelTok := p.cur
			p.advance()
			raw := p.text(labelTok)
			name := p.pool.InternOwned(string(raw[:len(raw)-1]))
			noteName(labelTok, name)
			p.scopes.Add(name)
			if stop(p.cur.Kind) || p.cur.Kind == token.COMMA || p.cur.Kind == token.NEWLINE || p.cur.Kind == token.SEMICOLON {
				params.Keywords = append(params.Keywords, ast.NewRequiredKeywordParameter(p.loc(labelTok.Start, labelTok.End), name))
			} else {
				val := p.parseExpression(PrecModifier)
				params.Keywords = append(params.Keywords, ast.NewOptionalKeywordParameter(p.loc(labelTok.Start, p.prev.End), name, val))
			}

		case token.IDENT:
			nameTok := p.cur
			p.advance()
			name := p.internName(nameTok)
			noteName(nameTok, name)
			p.scopes.Add(name)
			if p.cur.Kind == token.ASSIGN {
				p.advance()
				val := p.parseExpression(PrecModifier)
				seenOptional = true
				params.Optionals = append(params.Optionals, ast.NewOptionalParameter(p.loc(nameTok.Start, p.prev.End), name, val))
			} else {
				req := ast.NewRequiredParameter(p.loc(nameTok.Start, nameTok.End), name)
				if seenRest {
					params.Posts = append(params.Posts, req)
				} else {
					if seenOptional {
						// spec.md §4.2 ParameterOrderError: a required
						// parameter cannot follow an optional one before rest
						// absorbs the rest of the list (`def f(a = 1, b)`).
						p.errorf(diag.ParameterOrderError, nameTok.Start, nameTok.End,
							"required parameter %q follows an optional parameter", string(p.text(nameTok)))
					}
					params.Requireds = append(params.Requireds, req)
				}
			}

		case token.LPAREN:
			// Nested destructuring parameters (`def f((a, b)) end`) are out of
			// scope for this grammar; skip the group so the rest of the list
			// still parses.
			p.advance()
			for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
				p.advance()
			}
			p.expect(token.RPAREN, "')'")

		default:
			p.errorf(diag.UnexpectedToken, p.cur.Start, p.cur.End, "unexpected %q in parameter list", string(p.text(p.cur)))
			p.advance()
		}

		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
		p.skipTerminators()
	}

	params.NLoc = p.loc(start, p.prev.End)
	return params
}
