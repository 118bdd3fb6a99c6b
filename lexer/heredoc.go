package lexer

import (
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/token"
)

// lexHeredocBegin scans a `<<~IDENT` / `<<-IDENT` / `<<IDENT` / `<<"IDENT"`
// declaration. Per spec.md §4.7, the body is NOT scanned here: the
// remainder of the declaring line is lexed first (in ModeDefault), and the
// heredoc body begins only once that line's NEWLINE is produced. This
// lexer tracks the single most-recently-declared heredoc directly on the
// pushed Mode and queues any additional ones declared on the same line in
// heredocPending so `<<~A, <<~B` resolves both against their respective
// declaring positions.
func (l *Lexer) lexHeredocBegin(start int, newlineBefore bool) token.Token {
	l.pos += 2 // '<<'
	indent := HeredocIndentNone
	if l.cur() == '~' {
		indent = HeredocIndentTilde
		l.pos++
	} else if l.cur() == '-' {
		indent = HeredocIndentDash
		l.pos++
	}

	quote := HeredocQuoteNone
	interpolation := true
	var identStart, identEnd int
	switch l.cur() {
	case '"':
		quote = HeredocQuoteDouble
		l.pos++
		identStart = l.pos
		for !l.eof() && l.cur() != '"' {
			l.pos++
		}
		identEnd = l.pos
		if !l.eof() {
			l.pos++
		}
	case '\'':
		quote = HeredocQuoteSingle
		interpolation = false
		l.pos++
		identStart = l.pos
		for !l.eof() && l.cur() != '\'' {
			l.pos++
		}
		identEnd = l.pos
		if !l.eof() {
			l.pos++
		}
	case '`':
		quote = HeredocQuoteBacktick
		l.pos++
		identStart = l.pos
		for !l.eof() && l.cur() != '`' {
			l.pos++
		}
		identEnd = l.pos
		if !l.eof() {
			l.pos++
		}
	default:
		identStart = l.pos
		for !l.eof() && isIdentContinueByte(l, l.cur()) {
			l.pos++
		}
		identEnd = l.pos
	}

	m := Mode{
		Kind:          ModeHeredoc,
		Interpolation: interpolation,
		Quote:         quote,
		Indent:        indent,
		IdentStart:    identStart,
		IdentEnd:      identEnd,
		NextStart:     -1,
		CommonWhitespace: -1,
	}
	l.heredocPending = append(l.heredocPending, m)
	l.state = token.StateEND
	return l.tok(token.HEREDOC_BEGIN, start, l.pos, newlineBefore)
}

// activateNextHeredoc is called once the declaring line's NEWLINE has been
// produced: it pushes the first pending heredoc's mode so Next() begins
// reading its body.
func (l *Lexer) activateNextHeredoc() {
	if len(l.heredocPending) == 0 {
		return
	}
	m := l.heredocPending[0]
	l.heredocPending = l.heredocPending[1:]
	m.NextStart = l.pos
	l.PushMode(m)
}

func (l *Lexer) heredocIdent() []byte {
	m := l.modes.Current()
	return l.src[m.IdentStart:m.IdentEnd]
}

// nextHeredocBody scans one line of heredoc body content per call,
// returning STRING_CONTENT for the line (escape-processed into
// currentString when the heredoc is interpolated/double-quoted-ish) and
// HEREDOC_END when the terminator line is reached.
func (l *Lexer) nextHeredocBody() token.Token {
	m := l.modes.Current()
	start := l.pos

	if l.eof() {
		// Source ran out before the terminator line appeared.
		l.Errors.Add(diag.Diagnostic{ID: diag.UnterminatedHeredoc, Severity: diag.SeverityError, Start: start, End: start, Message: "unterminated heredoc meets end of file", Context: "heredoc"})
		l.PopMode()
		if m.NextStart >= 0 {
			l.nextStart = m.NextStart
		}
		l.state = token.StateEND
		return l.tok(token.HEREDOC_END, start, start, false)
	}

	if l.isHeredocTerminatorLine(m) {
		lineStart := l.pos
		for !l.eof() && l.cur() != '\n' {
			l.pos++
		}
		end := l.pos
		if !l.eof() {
			l.advance()
		}
		if m.Indent == HeredocIndentTilde {
			l.lastHeredocDedent = m.CommonWhitespace
		} else {
			l.lastHeredocDedent = -1
		}
		l.PopMode()
		if m.NextStart >= 0 {
			l.nextStart = m.NextStart
		}
		l.state = token.StateEND
		_ = lineStart
		return l.tok(token.HEREDOC_END, start, end, false)
	}

	l.currentString = l.currentString[:0]
	for !l.eof() {
		c := l.cur()
		if c == '\n' {
			l.advance()
			l.currentString = append(l.currentString, '\n')
			break
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
	if m.Indent == HeredocIndentTilde {
		l.trackCommonWhitespace(l.src[start:l.pos])
	}
	return l.tok(token.STRING_CONTENT, start, l.pos, false)
}

func (l *Lexer) isHeredocTerminatorLine(m *Mode) bool {
	p := l.pos
	if p > 0 && l.src[p-1] != '\n' && p != 0 {
		return false
	}
	q := p
	if m.Indent != HeredocIndentNone {
		for q < len(l.src) && (l.src[q] == ' ' || l.src[q] == '\t') {
			q++
		}
	}
	ident := l.heredocIdent()
	end := q + len(ident)
	if end > len(l.src) {
		return false
	}
	if string(l.src[q:end]) != string(ident) {
		return false
	}
	if end < len(l.src) && l.src[end] != '\n' && l.src[end] != '\r' {
		return false
	}
	return true
}

// trackCommonWhitespace maintains the running minimum leading-whitespace
// count across all body lines, for `<<~` dedent (spec.md §4.7 / component
// L). The actual dedent rewrite of already-produced STRING_CONTENT tokens
// happens in the post-processing pass (heredoc_dedent.go) since it needs
// every line's common-whitespace count before it can rewrite the first one.
func (l *Lexer) trackCommonWhitespace(line []byte) {
	n := 0
	col := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		if line[n] == '\t' {
			col = (col/8 + 1) * 8
		} else {
			col++
		}
		n++
	}
	if n == len(line) || line[n] == '\n' {
		return // blank line, excluded from the minimum
	}
	m := l.modes.Current()
	if m.CommonWhitespace < 0 || col < m.CommonWhitespace {
		m.CommonWhitespace = col
	}
}
