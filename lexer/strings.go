package lexer

import (
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/token"
)

// lexStringBegin handles a plain quote-delimited string/xstring open: `"`,
// `'`, `` ` ``. Pushes a ModeString and returns STRING_BEGIN; the content is
// scanned by nextStringContent on the following calls to Next.
func (l *Lexer) lexStringBegin(start int, newlineBefore bool, quote byte, interpolation bool) token.Token {
	l.pos++ // opening quote
	l.PushMode(Mode{Kind: ModeString, Interpolation: interpolation, Terminator: quote})
	l.state = token.StateEND
	return l.tok(token.STRING_BEGIN, start, l.pos, newlineBefore)
}

// nextStringContent scans inside ModeString up to (not including) the next
// `#{`, `#@`, `#$`, the terminator, or EOF, filling currentString with the
// escape-processed bytes (spec.md §4.1's current_string buffer).
func (l *Lexer) nextStringContent() token.Token {
	m := l.modes.Current()
	start := l.pos

	if !l.eof() && l.cur() == m.Terminator && m.Nesting == 0 {
		l.pos++
		l.PopMode()
		l.state = token.StateEND
		return l.tok(token.STRING_END, start, l.pos, false)
	}
	if m.Interpolation && !l.eof() && l.cur() == '#' && l.interpolationFollows() {
		return l.lexInterpolationMarker(start)
	}
	// The buffer is cleared only once a new content run begins: the parser
	// reads CurrentString for a STRING_CONTENT after it has already lexed
	// the following token, which is STRING_END or an interpolation marker.
	l.currentString = l.currentString[:0]

	terminated := false
	for !l.eof() {
		c := l.cur()
		if c == m.Terminator {
			if m.Incrementor != 0 && m.Nesting > 0 {
				m.Nesting--
				l.currentString = append(l.currentString, c)
				l.pos++
				continue
			}
			terminated = true
			break
		}
		if m.Incrementor != 0 && c == m.Incrementor {
			m.Nesting++
			l.currentString = append(l.currentString, c)
			l.pos++
			continue
		}
		if m.Interpolation && c == '\\' {
			l.appendEscape(m.Terminator)
			continue
		}
		if m.Interpolation && c == '#' && l.interpolationFollows() {
			terminated = true // interpolation marker, not EOF: the mode lives on
			break
		}
		if c == '\n' {
			l.advance()
			l.currentString = append(l.currentString, '\n')
			continue
		}
		l.currentString = append(l.currentString, c)
		l.pos++
	}

	if !terminated && l.eof() {
		// Ran off the end of the source without finding the closing
		// delimiter (spec.md §4.8's lexer-recovery diagnostics): report it
		// once and synthesize STRING_END so the parser can keep going.
		l.Errors.Add(diag.Diagnostic{ID: diag.UnterminatedString, Severity: diag.SeverityError, Start: start, End: l.pos, Message: "unterminated string meets end of file", Context: "string literal"})
		l.PopMode()
		l.state = token.StateEND
		return l.tok(token.STRING_END, start, l.pos, false)
	}

	if l.pos == start {
		// Interpolation marker sits immediately at start: emit it directly.
		return l.lexInterpolationMarker(start)
	}
	return l.tok(token.STRING_CONTENT, start, l.pos, false)
}

// interpolationFollows reports whether cur()=='#' begins `#{`, `#@`, `#@@`,
// or `#$`.
func (l *Lexer) interpolationFollows() bool {
	switch l.byteAt(1) {
	case '{', '@', '$':
		return true
	}
	return false
}

func (l *Lexer) lexInterpolationMarker(start int) token.Token {
	switch l.byteAt(1) {
	case '{':
		l.pos += 2
		l.PushMode(Mode{Kind: ModeEmbexpr})
		l.state = token.StateBEG
		return l.tok(token.EMBEXPR_BEGIN, start, l.pos, false)
	default: // '@' or '$'
		l.pos++ // '#'
		l.PushMode(Mode{Kind: ModeEmbvar})
		l.state = token.StateBEG
		return l.tok(token.EMBVAR, start, l.pos, false)
	}
}

// appendEscape processes one backslash escape sequence into currentString
// per spec.md §4.1 (octal, hex, unicode, control/meta combos, and the
// common single-character escapes); any other escaped character is passed
// through literally, with no diagnostic.
func (l *Lexer) appendEscape(terminator byte) {
	startPos := l.pos
	l.pos++ // backslash
	if l.eof() {
		return
	}
	c := l.advance()
	switch c {
	case 'n':
		l.currentString = append(l.currentString, '\n')
	case 't':
		l.currentString = append(l.currentString, '\t')
	case 'r':
		l.currentString = append(l.currentString, '\r')
	case 's':
		l.currentString = append(l.currentString, ' ')
	case 'a':
		l.currentString = append(l.currentString, 7)
	case 'b':
		l.currentString = append(l.currentString, 8)
	case 'e':
		l.currentString = append(l.currentString, 27)
	case 'f':
		l.currentString = append(l.currentString, 12)
	case 'v':
		l.currentString = append(l.currentString, 11)
	case '\n':
		// line continuation inside a string: no byte emitted.
	case 'x':
		l.appendHexEscape(2)
	case 'u':
		l.appendUnicodeEscape()
	default:
		if c >= '0' && c <= '7' {
			l.pos--
			l.appendOctalEscape()
		} else if c == terminator || c == '\\' || c == '#' {
			l.currentString = append(l.currentString, c)
		} else {
			l.currentString = append(l.currentString, c)
		}
	}
	_ = startPos
}

func (l *Lexer) appendHexEscape(maxDigits int) {
	var v int
	n := 0
	for n < maxDigits && !l.eof() && isHexDigit(l.cur()) {
		v = v*16 + hexVal(l.cur())
		l.pos++
		n++
	}
	if n == 0 {
		l.Errors.Add(diag.Diagnostic{ID: diag.InvalidEscape, Severity: diag.SeverityError, Start: l.pos, End: l.pos, Message: "invalid hex escape", Context: "string literal"})
		return
	}
	l.appendRune(rune(v))
}

func (l *Lexer) appendOctalEscape() {
	var v int
	n := 0
	for n < 3 && !l.eof() && isOctDigit(l.cur()) {
		v = v*8 + int(l.cur()-'0')
		l.pos++
		n++
	}
	l.currentString = append(l.currentString, byte(v))
}

func (l *Lexer) appendUnicodeEscape() {
	if !l.eof() && l.cur() == '{' {
		l.pos++
		for {
			for !l.eof() && l.cur() == ' ' {
				l.pos++
			}
			if l.eof() || l.cur() == '}' {
				break
			}
			var v int
			n := 0
			for !l.eof() && isHexDigit(l.cur()) {
				v = v*16 + hexVal(l.cur())
				l.pos++
				n++
			}
			if n == 0 {
				break
			}
			l.appendRune(rune(v))
		}
		if !l.eof() && l.cur() == '}' {
			l.pos++
		}
		return
	}
	l.appendHexEscape(4)
}

func (l *Lexer) appendRune(r rune) {
	var buf [4]byte
	n := encodeRuneUTF8(buf[:], r)
	l.currentString = append(l.currentString, buf[:n]...)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

func encodeRuneUTF8(buf []byte, r rune) int {
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		buf[0] = byte(0xC0 | r>>6)
		buf[1] = byte(0x80 | r&0x3F)
		return 2
	case r < 0x10000:
		buf[0] = byte(0xE0 | r>>12)
		buf[1] = byte(0x80 | (r>>6)&0x3F)
		buf[2] = byte(0x80 | r&0x3F)
		return 3
	default:
		buf[0] = byte(0xF0 | r>>18)
		buf[1] = byte(0x80 | (r>>12)&0x3F)
		buf[2] = byte(0x80 | (r>>6)&0x3F)
		buf[3] = byte(0x80 | r&0x3F)
		return 4
	}
}

func (l *Lexer) lexColon(start int, newlineBefore bool) token.Token {
	if l.byteAt(1) == ':' {
		l.pos += 2
		l.state = token.StateDOT
		return l.tok(token.COLON2, start, l.pos, newlineBefore)
	}
	// `:identifier` / `:"..."` symbol, only in a BEG-ish state or when not
	// immediately followed by whitespace (disambiguates ternary colon).
	if l.state.Has(token.StateEND) && l.spaceSeen && !isSymbolStartByte(l) {
		l.pos++
		l.state = token.StateBEG
		return l.tok(token.COLON, start, l.pos, newlineBefore)
	}
	if l.byteAt(1) == '"' {
		l.pos += 2
		l.PushMode(Mode{Kind: ModeString, Interpolation: true, Terminator: '"'})
		l.state = token.StateFNAME
		return l.tok(token.DSYMBOL_BEGIN, start, l.pos, newlineBefore)
	}
	if l.byteAt(1) == '\'' {
		l.pos += 2
		l.PushMode(Mode{Kind: ModeString, Interpolation: false, Terminator: '\''})
		l.state = token.StateFNAME
		return l.tok(token.SYMBOL_BEGIN, start, l.pos, newlineBefore)
	}
	if isSymbolStartByte(l) {
		l.pos++
		symStart := l.pos
		for !l.eof() && isIdentContinueByte(l, l.cur()) {
			l.pos++
		}
		if !l.eof() && (l.cur() == '?' || l.cur() == '!' || l.cur() == '=') {
			l.pos++
		}
		_ = symStart
		l.state = token.StateEND
		return l.tok(token.SYMBOL, start, l.pos, newlineBefore)
	}
	if isSymbolOperatorStart(l.byteAt(1)) {
		l.pos++
		opStart := l.pos
		l.scanOperatorSymbol()
		_ = opStart
		l.state = token.StateEND
		return l.tok(token.SYMBOL, start, l.pos, newlineBefore)
	}
	l.pos++
	l.state = token.StateBEG
	return l.tok(token.COLON, start, l.pos, newlineBefore)
}

func isSymbolStartByte(l *Lexer) bool {
	c := l.byteAt(1)
	if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	return c >= 0x80 && l.table.IdentStart(l.src[l.pos+1:])
}

func isSymbolOperatorStart(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '~', '&', '|', '^', '[':
		return true
	}
	return false
}

// scanOperatorSymbol consumes one of Ruby's operator-method names
// (`:+`, `:<<`, `:[]=`, `:<=>`, ...), longest-match first.
func (l *Lexer) scanOperatorSymbol() {
	three := []string{"<=>", "===", "[]="}
	two := []string{"**", "==", "!=", ">=", "<=", "<<", ">>", "&&", "||", "=~", "!~", "[]"}
	for _, s := range three {
		if l.hasPrefix(s) {
			l.pos += len(s)
			return
		}
	}
	for _, s := range two {
		if l.hasPrefix(s) {
			l.pos += len(s)
			return
		}
	}
	l.pos++
}

func (l *Lexer) lexQuestion(start int, newlineBefore bool) token.Token {
	// `?a` char literal: single character (or one escape) not followed by
	// an identifier-continue byte, only valid from a BEG-ish state.
	if l.charLiteralFollows() {
		l.pos++
		litStart := l.pos
		if l.cur() == '\\' {
			l.currentString = l.currentString[:0]
			l.appendEscape(0)
		} else {
			l.pos++
		}
		_ = litStart
		l.state = token.StateEND
		return l.tok(token.CHAR_LITERAL, start, l.pos, newlineBefore)
	}
	l.pos++
	if l.state.Has(token.StateEND) || l.state.Has(token.StateARG) {
		l.state = token.StateBEG
	}
	return l.tok(token.QUESTION, start, l.pos, newlineBefore)
}

func (l *Lexer) charLiteralFollows() bool {
	if !(l.state.Has(token.StateBEG) || l.state.Has(token.StateMID)) {
		return false
	}
	c := l.byteAt(1)
	if c == 0 {
		return false
	}
	if c == ' ' || c == '\t' || c == '\n' {
		return false
	}
	next := l.byteAt(2)
	if isIdentContinueByte(l, next) && c != '\\' {
		return false
	}
	return true
}
