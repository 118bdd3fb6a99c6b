package lexer

import "github.com/rubyparse/rubyparse/token"

// lexSlash disambiguates `/` as division/slash-equals vs the start of a
// regexp literal, the classic Ruby ambiguity spec.md §4.1 calls out.
func (l *Lexer) lexSlash(start int, newlineBefore bool) token.Token {
	regexpAllowed := l.state.Has(token.StateBEG) || l.state.Has(token.StateMID) ||
		(l.state.Has(token.StateARG) && l.spaceSeen && !l.nextIsSpace(1))
	if regexpAllowed {
		l.pos++
		l.PushMode(Mode{Kind: ModeRegexp, Interpolation: true, Terminator: '/'})
		l.state = token.StateBEG
		return l.tok(token.REGEXP_BEGIN, start, l.pos, newlineBefore)
	}
	l.pos++
	if l.cur() == '=' {
		l.pos++
		l.state = token.StateBEG
		return l.tok(token.SLASH_EQ, start, l.pos, newlineBefore)
	}
	l.state = token.StateBEG
	return l.tok(token.SLASH, start, l.pos, newlineBefore)
}

func (l *Lexer) nextIsSpace(offset int) bool {
	c := l.byteAt(offset)
	return c == ' ' || c == '\t' || c == '\n' || c == 0
}

// lexPercent handles `%`, `%=`, and the `%w %i %q %Q %r %s %x`/bare-`%(`
// general-delimited literal family.
func (l *Lexer) lexPercent(start int, newlineBefore bool) token.Token {
	beg := l.state.Has(token.StateBEG) || l.state.Has(token.StateMID) ||
		(l.state.Has(token.StateARG) && l.spaceSeen && !l.nextIsSpace(1))
	if beg && isPercentLiteralStart(l.byteAt(1)) {
		return l.lexPercentLiteral(start, newlineBefore)
	}
	l.pos++
	if l.cur() == '=' {
		l.pos++
		l.state = token.StateBEG
		return l.tok(token.PERCENT_EQ, start, l.pos, newlineBefore)
	}
	l.state = token.StateBEG
	return l.tok(token.PERCENT, start, l.pos, newlineBefore)
}

func isPercentLiteralStart(c byte) bool {
	switch c {
	case 'w', 'i', 'q', 'Q', 'r', 's', 'x', 'W', 'I':
		return true
	}
	return !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') && c != 0 && c != ' ' && c != '\t' && c != '\n'
}

func (l *Lexer) lexPercentLiteral(start int, newlineBefore bool) token.Token {
	l.pos++ // '%'
	kind := byte('Q')
	if isLetterByte(l.cur()) {
		kind = l.cur()
		l.pos++
	}
	if l.eof() {
		return l.tok(token.INVALID, start, l.pos, newlineBefore)
	}
	delim := l.cur()
	l.pos++
	term := delim
	incrementor := incrementorFor(closerFor(delim))
	if incrementor != 0 {
		term = closerFor(delim)
	}

	switch kind {
	case 'w', 'W', 'i', 'I':
		l.PushMode(Mode{Kind: ModeList, Interpolation: kind == 'W' || kind == 'I', Terminator: term, Incrementor: incrementor, Nesting: 0})
		l.state = token.StateBEG
		return l.tok(token.STRING_BEGIN, start, l.pos, newlineBefore)
	case 'r':
		l.PushMode(Mode{Kind: ModeRegexp, Interpolation: true, Terminator: term, Incrementor: incrementor})
		l.state = token.StateBEG
		return l.tok(token.REGEXP_BEGIN, start, l.pos, newlineBefore)
	case 's':
		l.PushMode(Mode{Kind: ModeString, Interpolation: false, Terminator: term, Incrementor: incrementor})
		l.state = token.StateFNAME
		return l.tok(token.SYMBOL_BEGIN, start, l.pos, newlineBefore)
	case 'q':
		l.PushMode(Mode{Kind: ModeString, Interpolation: false, Terminator: term, Incrementor: incrementor})
		l.state = token.StateEND
		return l.tok(token.STRING_BEGIN, start, l.pos, newlineBefore)
	default: // 'Q', 'x'
		l.PushMode(Mode{Kind: ModeString, Interpolation: true, Terminator: term, Incrementor: incrementor})
		l.state = token.StateEND
		return l.tok(token.STRING_BEGIN, start, l.pos, newlineBefore)
	}
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func closerFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	default:
		return open
	}
}

// lexLess handles `<`, `<=`, `<<`, `<=>`, `<<=`, and heredoc declarations
// (`<<IDENT`, `<<~IDENT`, `<<-IDENT`, `<<"IDENT"`, `<<'IDENT'`).
func (l *Lexer) lexLess(start int, newlineBefore bool) token.Token {
	if l.heredocFollows() {
		return l.lexHeredocBegin(start, newlineBefore)
	}
	l.pos++
	switch {
	case l.cur() == '=' && l.byteAt(1) == '>':
		l.pos += 2
		l.state = token.StateARG
		return l.tok(token.CMP, start, l.pos, newlineBefore)
	case l.cur() == '=':
		l.pos++
		l.state = token.StateBEG
		return l.tok(token.LEQ, start, l.pos, newlineBefore)
	case l.cur() == '<':
		l.pos++
		if l.cur() == '=' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.LSHIFT_EQ, start, l.pos, newlineBefore)
		}
		l.state = token.StateBEG
		return l.tok(token.LSHIFT, start, l.pos, newlineBefore)
	default:
		l.state = token.StateBEG
		return l.tok(token.LT, start, l.pos, newlineBefore)
	}
}

func (l *Lexer) heredocFollows() bool {
	if l.byteAt(1) != '<' {
		return false
	}
	p := 2
	if l.byteAt(p) == '~' || l.byteAt(p) == '-' {
		p++
	}
	c := l.byteAt(p)
	if c == '"' || c == '\'' || c == '`' {
		return true
	}
	if c == '_' || (c >= 'A' && c <= 'Z') {
		return true
	}
	// lowercase only valid when not in an expression-continuing state
	// (distinguishes `x << y` from `x <<y` heredoc, which Ruby resolves by
	// requiring the BEG-ish state or no space before `<<`).
	return (c >= 'a' && c <= 'z') && (l.state.Has(token.StateBEG) || l.state.Has(token.StateMID) || !l.spaceSeen)
}

// lexOperator handles every remaining single/multi-byte operator and
// bracket/paren punctuation, including the unary-vs-binary `+`/`-`/`*`/`**`/
// `&` disambiguation spec.md §4.1 describes.
func (l *Lexer) lexOperator(start int, newlineBefore bool) token.Token {
	c := l.advance()
	argBeginish := l.state.Has(token.StateBEG) || l.state.Has(token.StateMID) || l.state.Has(token.StateFNAME)

	switch c {
	case '(':
		l.state = token.StateBEG
		if newlineBefore || l.spaceSeen {
			return l.tok(token.LPAREN_ARG, start, l.pos, newlineBefore)
		}
		return l.tok(token.LPAREN, start, l.pos, newlineBefore)
	case ')':
		l.state = token.StateEND
		return l.tok(token.RPAREN, start, l.pos, newlineBefore)
	case '[':
		l.state = token.StateBEG
		if argBeginish || l.spaceSeen {
			return l.tok(token.LBRACKET_ARG, start, l.pos, newlineBefore)
		}
		return l.tok(token.LBRACKET, start, l.pos, newlineBefore)
	case ']':
		l.state = token.StateEND
		return l.tok(token.RBRACKET, start, l.pos, newlineBefore)
	case '{':
		l.state = token.StateBEG
		return l.tok(token.LBRACE, start, l.pos, newlineBefore)
	case '}':
		l.state = token.StateEND
		if l.modes.Current().Kind == ModeEmbexpr {
			l.PopMode()
			return l.tok(token.EMBEXPR_END, start, l.pos, newlineBefore)
		}
		return l.tok(token.RBRACE, start, l.pos, newlineBefore)
	case '.':
		if l.cur() == '.' {
			l.pos++
			if l.cur() == '.' {
				l.pos++
				l.state = token.StateBEG
				if argBeginish {
					return l.tok(token.UDOT3, start, l.pos, newlineBefore)
				}
				return l.tok(token.DOT3, start, l.pos, newlineBefore)
			}
			l.state = token.StateBEG
			if argBeginish {
				return l.tok(token.UDOT2, start, l.pos, newlineBefore)
			}
			return l.tok(token.DOT2, start, l.pos, newlineBefore)
		}
		l.state = token.StateDOT | token.StateFNAME
		return l.tok(token.DOT, start, l.pos, newlineBefore)
	case '+':
		return l.lexSign(start, newlineBefore, argBeginish, token.UPLUS, token.PLUS, token.PLUS_EQ)
	case '-':
		if l.cur() == '>' {
			l.pos++
			l.state = token.StateARG
			return l.tok(token.LAMBDA_ARROW, start, l.pos, newlineBefore)
		}
		if argBeginish && isDecDigit(l.cur()) {
			l.state = token.StateEND
			return l.tok(token.UMINUS_NUM, start, l.pos, newlineBefore)
		}
		return l.lexSign(start, newlineBefore, argBeginish, token.UMINUS, token.MINUS, token.MINUS_EQ)
	case '*':
		if l.cur() == '*' {
			l.pos++
			if l.cur() == '=' {
				l.pos++
				l.state = token.StateBEG
				return l.tok(token.POW_EQ, start, l.pos, newlineBefore)
			}
			l.state = token.StateARG
			if argBeginish || l.spaceSeen {
				return l.tok(token.USTAR2, start, l.pos, newlineBefore)
			}
			return l.tok(token.POW, start, l.pos, newlineBefore)
		}
		if l.cur() == '=' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.STAR_EQ, start, l.pos, newlineBefore)
		}
		l.state = token.StateARG
		if argBeginish || (l.spaceSeen && !l.nextIsSpace(0)) {
			return l.tok(token.USTAR, start, l.pos, newlineBefore)
		}
		return l.tok(token.STAR, start, l.pos, newlineBefore)
	case '&':
		if l.cur() == '&' {
			l.pos++
			if l.cur() == '=' {
				l.pos++
				l.state = token.StateBEG
				return l.tok(token.ANDAND_EQ, start, l.pos, newlineBefore)
			}
			l.state = token.StateBEG
			return l.tok(token.AMP2, start, l.pos, newlineBefore)
		}
		if l.cur() == '.' {
			l.pos++
			l.state = token.StateDOT | token.StateFNAME
			return l.tok(token.AMPDOT, start, l.pos, newlineBefore)
		}
		if l.cur() == '=' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.AMP_EQ, start, l.pos, newlineBefore)
		}
		l.state = token.StateARG
		if argBeginish || (l.spaceSeen && !l.nextIsSpace(0)) {
			return l.tok(token.UAMP, start, l.pos, newlineBefore)
		}
		return l.tok(token.AMP, start, l.pos, newlineBefore)
	case '|':
		if l.cur() == '|' {
			l.pos++
			if l.cur() == '=' {
				l.pos++
				l.state = token.StateBEG
				return l.tok(token.OROR_EQ, start, l.pos, newlineBefore)
			}
			l.state = token.StateBEG
			return l.tok(token.PIPE2, start, l.pos, newlineBefore)
		}
		if l.cur() == '=' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.PIPE_EQ, start, l.pos, newlineBefore)
		}
		l.state = token.StateARG
		return l.tok(token.PIPE, start, l.pos, newlineBefore)
	case '^':
		if l.cur() == '=' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.CARET_EQ, start, l.pos, newlineBefore)
		}
		l.state = token.StateARG
		return l.tok(token.CARET, start, l.pos, newlineBefore)
	case '~':
		l.state = token.StateARG
		return l.tok(token.TILDE, start, l.pos, newlineBefore)
	case '!':
		if l.cur() == '=' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.NEQ, start, l.pos, newlineBefore)
		}
		if l.cur() == '~' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.NMATCH, start, l.pos, newlineBefore)
		}
		l.state = token.StateBEG
		return l.tok(token.BANG, start, l.pos, newlineBefore)
	case '=':
		if l.hasPrefix("==") {
			l.pos += 2
			l.state = token.StateBEG
			return l.tok(token.EQQ, start, l.pos, newlineBefore)
		}
		if l.cur() == '=' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.EQ, start, l.pos, newlineBefore)
		}
		if l.cur() == '~' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.EQTILDE, start, l.pos, newlineBefore)
		}
		if l.cur() == '>' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.ARROW, start, l.pos, newlineBefore)
		}
		l.state = token.StateBEG
		return l.tok(token.ASSIGN, start, l.pos, newlineBefore)
	case '>':
		if l.cur() == '=' {
			l.pos++
			l.state = token.StateBEG
			return l.tok(token.GEQ, start, l.pos, newlineBefore)
		}
		if l.cur() == '>' {
			l.pos++
			if l.cur() == '=' {
				l.pos++
				l.state = token.StateBEG
				return l.tok(token.RSHIFT_EQ, start, l.pos, newlineBefore)
			}
			l.state = token.StateARG
			return l.tok(token.RSHIFT, start, l.pos, newlineBefore)
		}
		l.state = token.StateBEG
		return l.tok(token.GT, start, l.pos, newlineBefore)
	case '@':
		l.state = token.StateARG
		return l.tok(token.AT, start, l.pos, newlineBefore)
	default:
		l.state = token.StateBEG
		return l.tok(token.INVALID, start, l.pos, newlineBefore)
	}
}

func (l *Lexer) lexSign(start int, newlineBefore bool, argBeginish bool, uKind, binKind, eqKind token.Kind) token.Token {
	if l.cur() == '=' {
		l.pos++
		l.state = token.StateBEG
		return l.tok(eqKind, start, l.pos, newlineBefore)
	}
	l.state = token.StateARG
	if argBeginish || (l.spaceSeen && !l.nextIsSpace(0)) {
		return l.tok(uKind, start, l.pos, newlineBefore)
	}
	return l.tok(binKind, start, l.pos, newlineBefore)
}
