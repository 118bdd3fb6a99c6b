package lexer

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/token"
)

// lexNumber scans integer/float/rational/imaginary literals, including
// the `0x`/`0o`/`0b`/leading-zero-octal bases and `_` digit separators
// (spec.md §4.1 numeric literal rules).
func (l *Lexer) lexNumber(start int, newlineBefore bool) token.Token {
	base := ast.Decimal
	if l.cur() == '0' {
		switch l.byteAt(1) {
		case 'x', 'X':
			base = ast.Hex
			l.pos += 2
			l.scanDigits(isHexDigit)
		case 'b', 'B':
			base = ast.Binary
			l.pos += 2
			l.scanDigits(isBinDigit)
		case 'o', 'O':
			base = ast.Octal
			l.pos += 2
			l.scanDigits(isOctDigit)
		case 'd', 'D':
			l.pos += 2
			l.scanDigits(isDecDigit)
		default:
			if isOctDigit(l.byteAt(1)) {
				base = ast.Octal
				l.pos++
				l.scanDigits(isOctDigit)
			} else {
				l.scanDigits(isDecDigit)
			}
		}
	} else {
		l.scanDigits(isDecDigit)
	}

	isFloat := false
	if base == ast.Decimal && l.cur() == '.' && isDecDigit(l.byteAt(1)) {
		isFloat = true
		l.pos++
		l.scanDigits(isDecDigit)
	}
	if base == ast.Decimal && (l.cur() == 'e' || l.cur() == 'E') {
		p := l.pos + 1
		if p < len(l.src) && (l.src[p] == '+' || l.src[p] == '-') {
			p++
		}
		if p < len(l.src) && isDecDigit(l.src[p]) {
			isFloat = true
			l.pos = p
			l.scanDigits(isDecDigit)
		}
	}

	isRational := false
	if l.cur() == 'r' {
		isRational = true
		l.pos++
	}
	isImaginary := false
	if l.cur() == 'i' {
		isImaginary = true
		l.pos++
	}

	l.state = token.StateEND
	raw := l.src[start:l.pos]
	_ = raw

	kind := token.INTEGER
	switch {
	case isImaginary:
		kind = token.IMAGINARY
	case isRational:
		kind = token.RATIONAL
	case isFloat:
		kind = token.FLOAT
	}
	return l.tok(kind, start, l.pos, newlineBefore)
}

func (l *Lexer) scanDigits(pred func(byte) bool) {
	for !l.eof() {
		c := l.cur()
		if pred(c) {
			l.pos++
			continue
		}
		if c == '_' && pred(l.byteAt(1)) {
			l.pos++
			continue
		}
		break
	}
}

func isDecDigit(c byte) bool { return c >= '0' && c <= '9' }
func isOctDigit(c byte) bool { return c >= '0' && c <= '7' }
func isBinDigit(c byte) bool { return c == '0' || c == '1' }
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
