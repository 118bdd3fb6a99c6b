package lexer

import (
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/token"
)

// nextListContent scans inside ModeList (`%w`/`%i`/`%W`/`%I` word lists):
// runs of non-whitespace become STRING_CONTENT (escape-processed when the
// uppercase, interpolating variant is active), whitespace runs become
// WORDS_SEP, and the terminator closes the mode.
func (l *Lexer) nextListContent() token.Token {
	m := l.modes.Current()
	start := l.pos

	if l.eof() {
		return l.tok(token.STRING_END, start, start, false)
	}
	if l.cur() == m.Terminator && m.Nesting == 0 {
		l.pos++
		l.PopMode()
		l.state = token.StateEND
		return l.tok(token.STRING_END, start, l.pos, false)
	}
	if isSpaceByte(l.cur()) {
		for !l.eof() && isSpaceByte(l.cur()) {
			l.pos++
		}
		return l.tok(token.WORDS_SEP, start, l.pos, false)
	}

	l.currentString = l.currentString[:0]
	for !l.eof() && !isSpaceByte(l.cur()) {
		c := l.cur()
		if c == m.Terminator && m.Nesting == 0 {
			break
		}
		if m.Incrementor != 0 && c == m.Incrementor {
			m.Nesting++
			l.currentString = append(l.currentString, c)
			l.pos++
			continue
		}
		if m.Incrementor != 0 && c == m.Terminator && m.Nesting > 0 {
			m.Nesting--
			l.currentString = append(l.currentString, c)
			l.pos++
			continue
		}
		if m.Interpolation && c == '\\' {
			l.appendEscape(0)
			continue
		}
		if m.Interpolation && c == '#' && l.interpolationFollows() {
			break
		}
		l.currentString = append(l.currentString, c)
		l.pos++
	}
	if l.pos == start {
		return l.lexInterpolationMarker(start)
	}
	return l.tok(token.STRING_CONTENT, start, l.pos, false)
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\v' || c == '\r'
}

// nextRegexpContent scans inside ModeRegexp: content up to an unescaped
// terminator, then one closing token: REGEXP_END when no option letters
// follow, or REGEXP_OPTIONS spanning the terminator and the option letters.
// Backslash sequences are copied verbatim (not
// escape-processed) since the regexp engine, not this parser, owns escape
// semantics (spec.md §4.1/§4.6).
func (l *Lexer) nextRegexpContent() token.Token {
	m := l.modes.Current()
	start := l.pos

	if !l.eof() && l.cur() == m.Terminator && m.Nesting == 0 {
		l.pos++
		l.PopMode()
		return l.lexRegexpOptions(start)
	}

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
		if c == '\\' && !l.eofAt(1) {
			l.currentString = append(l.currentString, c, l.byteAt(1))
			l.pos += 2
			continue
		}
		if c == '#' && l.interpolationFollows() {
			terminated = true
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
		l.Errors.Add(diag.Diagnostic{ID: diag.UnterminatedRegexp, Severity: diag.SeverityError, Start: start, End: l.pos, Message: "unterminated regexp meets end of file", Context: "regexp literal"})
		l.PopMode()
		l.state = token.StateEND
		return l.tok(token.REGEXP_END, start, l.pos, false)
	}
	if l.pos == start {
		return l.lexInterpolationMarker(start)
	}
	return l.tok(token.STRING_CONTENT, start, l.pos, false)
}

func (l *Lexer) eofAt(offset int) bool { return l.pos+offset >= len(l.src) }

func (l *Lexer) lexRegexpOptions(start int) token.Token {
	optStart := l.pos
	for !l.eof() && isLetterByte(l.cur()) {
		l.pos++
	}
	l.state = token.StateEND
	if l.pos == optStart {
		return l.tok(token.REGEXP_END, start, l.pos, false)
	}
	return l.tok(token.REGEXP_OPTIONS, start, l.pos, false)
}
