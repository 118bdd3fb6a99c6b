package parser

import (
	"strings"

	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/internal/names"
	"github.com/rubyparse/rubyparse/internal/scope"
	"github.com/rubyparse/rubyparse/token"
)

func (p *Parser) parsePrimary() ast.Node {
	start := p.cur.Start
	switch p.cur.Kind {
	case token.INTEGER:
		return p.parseIntegerLiteral()
	case token.FLOAT:
		t := p.cur
		p.advance()
		return ast.NewFloat(p.loc(start, t.End), cleanNumeric(p.text(t)))
	case token.RATIONAL:
		t := p.cur
		p.advance()
		return ast.NewRational(p.loc(start, t.End), cleanNumeric(p.text(t)))
	case token.IMAGINARY:
		t := p.cur
		p.advance()
		inner := ast.NewInteger(p.loc(start, t.End), cleanNumeric(p.text(t)), ast.Decimal)
		return ast.NewImaginary(p.loc(start, t.End), inner)
	case token.CHAR_LITERAL:
		t := p.cur
		p.advance()
		return ast.NewCharLiteral(p.loc(start, t.End), append([]byte(nil), p.lex.CurrentString()...))
	case token.KNIL:
		p.advance()
		return ast.NewNil(p.loc(start, p.prev.End))
	case token.KTRUE:
		p.advance()
		return ast.NewTrue(p.loc(start, p.prev.End))
	case token.KFALSE:
		p.advance()
		return ast.NewFalse(p.loc(start, p.prev.End))
	case token.KSELF:
		p.advance()
		return ast.NewSelf(p.loc(start, p.prev.End))
	case token.K__FILE__:
		p.advance()
		return ast.NewFile(p.loc(start, p.prev.End), p.opts.Filepath)
	case token.K__LINE__:
		p.advance()
		return ast.NewLine(p.loc(start, p.prev.End))
	case token.K__ENCODING__:
		p.advance()
		return ast.NewEncoding(p.loc(start, p.prev.End))
	case token.STRING_BEGIN:
		return p.parseStringLiteral()
	case token.SYMBOL_BEGIN, token.DSYMBOL_BEGIN:
		return p.parseQuotedSymbol()
	case token.SYMBOL:
		t := p.cur
		p.advance()
		return ast.NewSymbol(p.loc(start, t.End), p.text(t)[1:])
	case token.REGEXP_BEGIN:
		return p.parseRegexpLiteral()
	case token.HEREDOC_BEGIN:
		return p.parseHeredoc()
	case token.IVAR:
		t := p.cur
		p.advance()
		return ast.NewInstanceVariableRead(p.loc(start, t.End), p.internName(t))
	case token.CVAR:
		t := p.cur
		p.advance()
		return ast.NewClassVariableRead(p.loc(start, t.End), p.internName(t))
	case token.GVAR:
		t := p.cur
		p.advance()
		return ast.NewGlobalVariableRead(p.loc(start, t.End), p.internName(t))
	case token.NTH_REF:
		t := p.cur
		p.advance()
		n := 0
		for _, c := range p.text(t)[1:] {
			n = n*10 + int(c-'0')
		}
		return ast.NewNthReferenceRead(p.loc(start, t.End), n)
	case token.BACK_REF:
		t := p.cur
		p.advance()
		return ast.NewBackReferenceRead(p.loc(start, t.End), p.text(t)[1])
	case token.CONSTANT:
		return p.parseConstantOrConstantCall()
	case token.IDENT, token.FID:
		return p.parseIdentifierExpression()
	case token.LPAREN, token.LPAREN_ARG:
		return p.parseParentheses()
	case token.LBRACKET, token.LBRACKET_ARG:
		return p.parseArrayLiteral()
	case token.LBRACE, token.LBRACE_ARG:
		return p.parseHashLiteral()
	case token.COLON2:
		p.advance()
		nameTok := p.expect(token.CONSTANT, "constant name")
		return ast.NewConstantPath(p.loc(start, p.prev.End), nil, p.internName(nameTok), true)
	case token.KIF:
		return p.parseIf()
	case token.KUNLESS:
		return p.parseUnless()
	case token.KWHILE:
		return p.parseWhile()
	case token.KUNTIL:
		return p.parseUntil()
	case token.KFOR:
		return p.parseFor()
	case token.KCASE:
		return p.parseCase()
	case token.KDEF:
		return p.parseDef()
	case token.KCLASS:
		return p.parseClass()
	case token.KMODULE:
		return p.parseModule()
	case token.KBEGIN:
		return p.parseBegin()
	case token.USTAR: // splat used as a bare expression, e.g. multi-assign RHS
		p.advance()
		operand := p.parseExpression(PrecUnaryMinus)
		return ast.NewSplat(p.loc(start, p.prev.End), operand)
	default:
		p.errorf(diag.UnexpectedToken, p.cur.Start, p.cur.End, "unexpected %q, expected an expression", string(p.text(p.cur)))
		tok := p.cur
		p.advance()
		return ast.NewMissing(p.loc(tok.Start, tok.End))
	}
}

func cleanNumeric(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for _, c := range raw {
		if c == '_' {
			continue
		}
		if c == 'r' || c == 'i' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func (p *Parser) parseIntegerLiteral() ast.Node {
	start := p.cur.Start
	t := p.cur
	p.advance()
	raw := p.text(t)
	base := ast.Decimal
	digits := raw
	switch {
	case len(raw) > 1 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X'):
		base = ast.Hex
		digits = raw[2:]
	case len(raw) > 1 && raw[0] == '0' && (raw[1] == 'b' || raw[1] == 'B'):
		base = ast.Binary
		digits = raw[2:]
	case len(raw) > 1 && raw[0] == '0' && (raw[1] == 'o' || raw[1] == 'O'):
		base = ast.Octal
		digits = raw[2:]
	case len(raw) > 1 && raw[0] == '0' && raw[1] >= '0' && raw[1] <= '7':
		base = ast.Octal
		digits = raw[1:]
	}
	return ast.NewInteger(p.loc(start, t.End), cleanNumeric(digits), base)
}

// parseConstantOrConstantCall handles `Foo`, `Foo()`, `Foo::Bar`, and a
// capitalized bare call with command arguments (`Foo arg`).
func (p *Parser) parseConstantOrConstantCall() ast.Node {
	start := p.cur.Start
	t := p.cur
	p.advance()
	name := p.internName(t)
	var node ast.Node = ast.NewConstantRead(p.loc(start, t.End), name)
	if p.cur.Kind == token.LPAREN && !p.cur.SpaceBefore {
		args, block := p.parseParenArgumentsAndBlock()
		call := ast.NewCall(p.loc(start, p.prev.End), nil, name, args, block)
		call.AddFlags(ast.FlagCallVariableCall)
		return call
	}
	return node
}

// parseIdentifierExpression handles a bare lower-case identifier: a local
// variable read if the scope already knows it, else a variable-call
// (implicit-self method call), optionally with parenthesized or
// command-style arguments and a trailing block.
func (p *Parser) parseIdentifierExpression() ast.Node {
	start := p.cur.Start
	t := p.cur
	p.advance()
	name := string(p.text(t))

	if p.cur.Kind == token.LPAREN && !p.cur.SpaceBefore {
		args, block := p.parseParenArgumentsAndBlock()
		call := ast.NewCall(p.loc(start, p.prev.End), nil, p.pool.InternOwned(name), args, block)
		call.AddFlags(ast.FlagCallVariableCall)
		return call
	}

	if p.commandArgumentFollows() {
		args := p.parseBareArgumentList()
		var block ast.Node
		if p.blockFollows() {
			block = p.parseBlock()
		}
		call := ast.NewCall(p.loc(start, p.prev.End), nil, p.pool.InternOwned(name), args, block)
		call.AddFlags(ast.FlagCallVariableCall)
		return call
	}

	node := p.resolveBareIdentifier(t, name)
	if p.blockFollows() {
		if lvr, ok := node.(*ast.LocalVariableReadNode); ok {
			_ = lvr
			return node
		}
		block := p.parseBlock()
		call := ast.NewCall(p.loc(start, p.prev.End), nil, p.pool.InternOwned(name), nil, block)
		call.AddFlags(ast.FlagCallVariableCall)
		return call
	}
	return node
}

// resolveBareIdentifier implements spec.md §4.3: a bare identifier is a
// LocalVariableRead if the name resolves in the visible scope chain, a
// numbered-parameter/`it` reference for the reserved forms, else an
// implicit-self variable-call.
func (p *Parser) resolveBareIdentifier(t token.Token, name string) ast.Node {
	start, end := t.Start, t.End
	id := p.pool.InternOwned(name)
	if depth := p.scopes.Depth(id); depth >= 0 {
		return ast.NewLocalVariableRead(p.loc(start, end), id, depth)
	}
	if name == "it" {
		if p.scopes.AllowsNumbered() {
			sc := p.scopes.Current()
			sc.NoteIt()
			p.scopes.Add(p.pool.InternOwned(ast.ImplicitItName))
			if !sc.MutuallyExclusive() {
				p.errorf(diag.NumberedParamAndIt, start, end,
					"`it` cannot be used in a scope that already uses numbered parameters")
			}
			return ast.NewItParameterRead(p.loc(start, end))
		}
		p.reportNumberedConflict(start, end, "it")
	}
	if len(name) == 2 && name[0] == '_' && name[1] >= '1' && name[1] <= '9' {
		if p.scopes.AllowsNumbered() {
			k := int8(name[1] - '0')
			sc := p.scopes.Current()
			sc.NoteNumbered(k)
			// spec.md §4.3: referencing _k implicitly declares _1..._k, since a
			// block using only _2 still receives an implicit first parameter.
			for i := int8(1); i <= k; i++ {
				p.scopes.Add(p.pool.InternOwned("_" + string(rune('0'+i))))
			}
			if !sc.MutuallyExclusive() {
				p.errorf(diag.NumberedParamAndIt, start, end,
					"numbered parameter %q cannot be used in a scope that already uses `it`", name)
			}
			return ast.NewNumberedParameterRead(p.loc(start, end), k)
		}
		p.reportNumberedConflict(start, end, name)
	}
	call := ast.NewCall(p.loc(start, end), nil, id, nil, nil)
	call.AddFlags(ast.FlagCallVariableCall)
	return call
}

// reportNumberedConflict explains why a non-closed position refused to treat
// `it`/`_k` as an implicit parameter: a scope with NumberedDisallowed set
// (outer lexical scopes fed in from a parse option) is not a conflict, just
// an ordinary variable-call site, but a scope that already declared an
// ordinary parameter is spec invariant 7's NumberedParamAndOrdinaryParam
// case.
func (p *Parser) reportNumberedConflict(start, end int, name string) {
	sc := p.scopes.Current()
	if sc == nil || sc.Numbered() == scope.NumberedDisallowed {
		return
	}
	if sc.Parameters()&scope.Ordinary != 0 {
		p.errorf(diag.NumberedParamAndOrdinaryParam, start, end,
			"%q cannot be used in a scope that already has ordinary parameters", name)
	}
}

func (p *Parser) commandArgumentFollows() bool {
	if !p.cur.SpaceBefore {
		return false
	}
	switch p.cur.Kind {
	case token.NEWLINE, token.SEMICOLON, token.EOF, token.DOT, token.AMPDOT, token.COLON2,
		token.COMMA, token.RPAREN, token.RBRACKET, token.RBRACE, token.KDO, token.KTHEN,
		token.KEND, token.ASSIGN, token.QUESTION, token.COLON, token.LBRACE:
		return false
	}
	if _, ok := infixPrecedence[p.cur.Kind]; ok {
		// An operator here is binary unless it's one of the unary-prefix
		// kinds the lexer already distinguished (USTAR/UMINUS/UAMP/...),
		// which don't appear in infixPrecedence.
		return false
	}
	return true
}

func (p *Parser) blockFollows() bool {
	return p.cur.Kind == token.LBRACE || p.cur.Kind == token.KDO
}

// parseStringLiteral builds a StringNode or InterpolatedStringNode from the
// STRING_BEGIN/STRING_CONTENT/EMBEXPR/STRING_END token run the lexer
// produces for ModeString.
func (p *Parser) parseStringLiteral() ast.Node {
	start := p.cur.Start
	p.advance() // STRING_BEGIN
	var parts []ast.Node
	for p.cur.Kind != token.STRING_END && p.cur.Kind != token.EOF {
		parts = append(parts, p.parseStringPart())
	}
	end := p.cur.End
	if p.cur.Kind == token.STRING_END {
		p.advance()
	}
	// Adjacent string literals concatenate implicitly in Ruby
	// (`"a" "b"`); out of scope for this simplified grammar (see DESIGN.md).
	if len(parts) == 1 {
		if s, ok := parts[0].(*ast.StringNode); ok {
			s.NLoc = p.loc(start, end)
			if p.lex.FrozenStringLiteral() {
				s.AddFlags(ast.FlagStringFrozen)
			}
			return s
		}
	}
	if len(parts) == 0 {
		return ast.NewString(p.loc(start, end), nil, nil)
	}
	return ast.NewInterpolatedString(p.loc(start, end), parts)
}

func (p *Parser) parseStringPart() ast.Node {
	switch p.cur.Kind {
	case token.STRING_CONTENT:
		t := p.cur
		unescaped := append([]byte(nil), p.lex.CurrentString()...)
		p.advance()
		return ast.NewString(p.loc(t.Start, t.End), unescaped, p.text(t))
	case token.EMBEXPR_BEGIN:
		start := p.cur.Start
		p.advance()
		p.scopes.Push(false)
		stmts := p.parseStatements(func(k token.Kind) bool { return k == token.EMBEXPR_END })
		p.scopes.Pop()
		if p.cur.Kind == token.EMBEXPR_END {
			p.advance()
		}
		return ast.NewEmbeddedStatements(p.loc(start, p.prev.End), stmts)
	case token.EMBVAR:
		start := p.cur.Start
		p.advance()
		var v ast.Node
		switch p.cur.Kind {
		case token.IVAR:
			t := p.cur
			p.advance()
			v = ast.NewInstanceVariableRead(p.loc(t.Start, t.End), p.internName(t))
		case token.CVAR:
			t := p.cur
			p.advance()
			v = ast.NewClassVariableRead(p.loc(t.Start, t.End), p.internName(t))
		case token.GVAR:
			t := p.cur
			p.advance()
			v = ast.NewGlobalVariableRead(p.loc(t.Start, t.End), p.internName(t))
		}
		return ast.NewEmbeddedVariable(p.loc(start, p.prev.End), v)
	default:
		t := p.cur
		p.advance()
		return ast.NewMissing(p.loc(t.Start, t.End))
	}
}

func (p *Parser) parseQuotedSymbol() ast.Node {
	start := p.cur.Start
	interpolating := p.cur.Kind == token.DSYMBOL_BEGIN
	p.advance()
	var parts []ast.Node
	for p.cur.Kind != token.STRING_END && p.cur.Kind != token.EOF {
		parts = append(parts, p.parseStringPart())
	}
	end := p.cur.End
	if p.cur.Kind == token.STRING_END {
		p.advance()
	}
	if !interpolating || (len(parts) == 1 && parts[0].Kind() == ast.KindStringNode) {
		if len(parts) == 0 {
			return ast.NewSymbol(p.loc(start, end), nil)
		}
		return ast.NewSymbol(p.loc(start, end), parts[0].(*ast.StringNode).Unescaped)
	}
	return ast.NewInterpolatedSymbol(p.loc(start, end), parts)
}

func (p *Parser) parseRegexpLiteral() ast.Node {
	start := p.cur.Start
	p.advance()
	var parts []ast.Node
	var raw strings.Builder
	for p.cur.Kind != token.REGEXP_END && p.cur.Kind != token.REGEXP_OPTIONS && p.cur.Kind != token.EOF {
		part := p.parseStringPart()
		parts = append(parts, part)
		if s, ok := part.(*ast.StringNode); ok {
			raw.Write(s.Unescaped)
		}
	}
	optsText := ""
	if p.cur.Kind == token.REGEXP_END || p.cur.Kind == token.REGEXP_OPTIONS {
		optsText = string(p.text(p.cur))
		p.advance()
	}
	opts := parseRegexpOptions(optsText)
	loc := p.loc(start, p.prev.End)

	pattern := raw.String()
	captures := names.Dedupe(names.Scan([]byte(pattern)))

	var node ast.Node
	if len(parts) == 1 && parts[0].Kind() == ast.KindStringNode {
		node = ast.NewRegexp(loc, parts[0].(*ast.StringNode).Unescaped, opts)
	} else if len(parts) == 0 {
		node = ast.NewRegexp(loc, nil, opts)
	} else {
		node = ast.NewInterpolatedRegexp(loc, parts, opts)
	}
	p.pendingNamedCaptures = captures
	return node
}

func parseRegexpOptions(text string) ast.RegexpOptions {
	var o ast.RegexpOptions
	for _, c := range text {
		switch c {
		case 'i':
			o.IgnoreCase = true
		case 'm':
			o.Multiline = true
		case 'x':
			o.Extended = true
		case 'o':
			o.Once = true
		case 'e':
			o.EUCJP = true
		case 's':
			o.Windows31J = true
		case 'n':
			o.ASCII8BIT = true
		case 'u':
			o.UTF8 = true
		}
	}
	return o
}
