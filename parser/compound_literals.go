package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/token"
)

// parseParentheses parses `(expr; expr; ...)` / `()`, keeping the full
// statement sequence rather than unwrapping a lone expression (spec.md §4.2:
// parentheses are themselves a node, not a parse-time no-op).
func (p *Parser) parseParentheses() ast.Node {
	start := p.cur.Start
	p.advance() // '(' / LPAREN_ARG
	p.skipTerminators()
	if p.cur.Kind == token.RPAREN {
		p.advance()
		return ast.NewParentheses(p.loc(start, p.prev.End), nil)
	}
	body := p.parseStatements(func(k token.Kind) bool { return k == token.RPAREN })
	p.expect(token.RPAREN, "')'")
	return ast.NewParentheses(p.loc(start, p.prev.End), body)
}

func (p *Parser) parseArrayLiteral() ast.Node {
	start := p.cur.Start
	p.advance() // '[' / LBRACKET_ARG
	p.skipTerminators()
	var elements []ast.Node
	for p.cur.Kind != token.RBRACKET && p.cur.Kind != token.EOF {
		elements = append(elements, p.parseArgument())
		p.skipTerminators()
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
		p.skipTerminators()
	}
	p.expect(token.RBRACKET, "']'")
	return ast.NewArray(p.loc(start, p.prev.End), elements)
}

func (p *Parser) parseHashLiteral() ast.Node {
	start := p.cur.Start
	p.advance() // '{' / LBRACE_ARG
	p.skipTerminators()
	var elements []ast.Node
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		elements = append(elements, p.parseHashElement())
		p.skipTerminators()
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
		p.skipTerminators()
	}
	p.expect(token.RBRACE, "'}'")
	p.checkDuplicateHashKeys(elements)
	return ast.NewHash(p.loc(start, p.prev.End), elements)
}

// checkDuplicateHashKeys implements spec.md §2's duplicate hash-key warning
// for statically-known keys (symbols/strings/integers) — the only shapes a
// parse-time check can compare without evaluation.
func (p *Parser) checkDuplicateHashKeys(elements []ast.Node) {
	seen := make(map[string]bool, len(elements))
	for _, e := range elements {
		assoc, ok := e.(*ast.AssocNode)
		if !ok {
			continue
		}
		key, ok := staticHashKeyText(assoc.Key)
		if !ok {
			continue
		}
		if seen[key] {
			p.warnf(diag.DuplicatedHashKey, assoc.Key.Loc().Start, assoc.Key.Loc().End, "duplicated key %s in hash literal", key)
			continue
		}
		seen[key] = true
	}
}

func staticHashKeyText(n ast.Node) (string, bool) {
	switch v := n.(type) {
	case *ast.SymbolNode:
		return "symbol:" + string(v.Unescaped), true
	case *ast.StringNode:
		return "string:" + string(v.Unescaped), true
	case *ast.IntegerNode:
		return "integer:" + v.Value, true
	}
	return "", false
}

// parseHashElement parses one `{...}` entry: `label:`, `label: value`,
// `key => value`, or `**rest`.
func (p *Parser) parseHashElement() ast.Node {
	if p.cur.Kind == token.LABEL {
		return p.parseKeywordArgument()
	}
	if p.cur.Kind == token.STAR2 || p.cur.Kind == token.USTAR2 {
		start := p.cur.Start
		p.advance()
		val := p.parseExpression(PrecModifier)
		return ast.NewAssocSplat(p.loc(start, p.prev.End), val)
	}
	key := p.parseExpression(PrecTernary)
	p.expect(token.ARROW, "'=>'")
	val := p.parseExpression(PrecModifier)
	return ast.NewAssoc(key.Loc().Union(val.Loc()), key, val, true)
}

// parseHeredoc builds a string node from the STRING_CONTENT/EMBEXPR run
// between HEREDOC_BEGIN and HEREDOC_END. The lexer tracks the `<<~` common
// leading whitespace while scanning the body; once HEREDOC_END is reached
// this applies the dedent (spec component L) across the collected parts.
func (p *Parser) parseHeredoc() ast.Node {
	start := p.cur.Start
	p.advance() // HEREDOC_BEGIN
	var parts []ast.Node
	for p.cur.Kind != token.HEREDOC_END && p.cur.Kind != token.EOF {
		parts = append(parts, p.parseStringPart())
	}
	end := p.cur.End
	dedent := p.lex.LastHeredocDedent()
	if p.cur.Kind == token.HEREDOC_END {
		p.advance()
	}
	if dedent > 0 {
		parts = dedentHeredocParts(parts, dedent)
	}
	if len(parts) == 0 {
		return ast.NewString(p.loc(start, end), nil, nil)
	}
	if len(parts) == 1 {
		if s, ok := parts[0].(*ast.StringNode); ok {
			s.NLoc = p.loc(start, end)
			return s
		}
	}
	return ast.NewInterpolatedString(p.loc(start, end), parts)
}
