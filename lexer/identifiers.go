package lexer

import (
	"github.com/rubyparse/rubyparse/token"
)

func isIdentContinueByte(l *Lexer, c byte) bool {
	if c < 0x80 {
		return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	}
	return l.table.IdentContinue(l.src[l.pos:])
}

// lexIdentifierOrKeyword scans [ivar/cvar/gvar-less] identifiers, folds
// keyword lookups, and classifies IDENT vs CONSTANT vs FID (spec.md §4.1).
func (l *Lexer) lexIdentifierOrKeyword(start int, newlineBefore bool) token.Token {
	for !l.eof() && isIdentContinueByte(l, l.cur()) {
		l.pos++
	}
	// A trailing `?` or `!` (not followed by `=`, except `!=`) is part of
	// the method-name identifier.
	if !l.eof() && (l.cur() == '?' || l.cur() == '!') {
		if !(l.byteAt(1) == '=' && l.byteAt(2) != '=') {
			l.pos++
		}
	}

	text := l.src[start:l.pos]
	name := string(text)

	if info, ok := token.LookupKeyword(name); ok {
		// `end`/`then`/etc. used as a modifier still yield the same Kind;
		// the parser distinguishes position, not the lexer.
		prevState := l.state
		l.state = info.EntersState
		_ = prevState
		return l.tok(info.Kind, start, l.pos, newlineBefore)
	}

	kind := token.IDENT
	if first := text[0]; first >= 'A' && first <= 'Z' {
		kind = token.CONSTANT
	}
	if text[len(text)-1] == '?' || text[len(text)-1] == '!' {
		kind = token.FID
	}

	// Label form: `ident:` in a BEG or LABELED state (after `(`, `,`, `{`,
	// a previous label, ...) or a label-allowing mode, when it isn't `::`
	// or part of a ternary colon-colon ambiguity.
	if l.state.Has(token.StateBEG|token.StateLABELED) || l.modes.Current().LabelAllowed {
		if l.cur() == ':' && l.byteAt(1) != ':' {
			l.pos++
			l.state = token.StateBEG | token.StateLABELED
			return l.tok(token.LABEL, start, l.pos, newlineBefore)
		}
	}

	if kind == token.CONSTANT {
		l.state = token.StateEND
	} else if l.state.Has(token.StateFNAME) {
		l.state = token.StateENDFN
	} else {
		l.state = token.StateEND
	}
	return l.tok(kind, start, l.pos, newlineBefore)
}

func (l *Lexer) lexAtVariable(start int, newlineBefore bool) token.Token {
	l.pos++ // '@'
	kind := token.IVAR
	if !l.eof() && l.cur() == '@' {
		l.pos++
		kind = token.CVAR
	}
	for !l.eof() && isIdentContinueByte(l, l.cur()) {
		l.pos++
	}
	l.state = token.StateEND
	return l.tok(kind, start, l.pos, newlineBefore)
}

func (l *Lexer) lexGlobalVariable(start int, newlineBefore bool) token.Token {
	l.pos++ // '$'
	if !l.eof() && l.cur() >= '1' && l.cur() <= '9' {
		for !l.eof() && l.cur() >= '0' && l.cur() <= '9' {
			l.pos++
		}
		l.state = token.StateEND
		return l.tok(token.NTH_REF, start, l.pos, newlineBefore)
	}
	if !l.eof() && isBackRefChar(l.cur()) {
		l.pos++
		l.state = token.StateEND
		return l.tok(token.BACK_REF, start, l.pos, newlineBefore)
	}
	if !l.eof() && isSpecialGlobal(l.cur()) {
		l.pos++
		l.state = token.StateEND
		return l.tok(token.GVAR, start, l.pos, newlineBefore)
	}
	for !l.eof() && isIdentContinueByte(l, l.cur()) {
		l.pos++
	}
	l.state = token.StateEND
	return l.tok(token.GVAR, start, l.pos, newlineBefore)
}

func isBackRefChar(c byte) bool {
	switch c {
	case '&', '`', '\'', '+':
		return true
	}
	return false
}

func isSpecialGlobal(c byte) bool {
	switch c {
	case '~', '*', '$', '?', '!', '@', '/', '\\', ';', ',', '.', '=', ':', '<', '>', '"', '0':
		return true
	}
	return false
}
