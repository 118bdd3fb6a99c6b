package parser

import "github.com/rubyparse/rubyparse/ast"

// dedentHeredocParts implements spec.md §4.5's squiggly-heredoc dedent: each
// StringNode immediately following a newline (or at index 0) has its
// unescaped bytes shifted left by up to width columns, tabs expanding to
// the next multiple of 8 and stopping at the first non-whitespace byte or
// once width columns are consumed. Parts that dedent to zero length are
// dropped and the list is compacted.
func dedentHeredocParts(parts []ast.Node, width int) []ast.Node {
	if width <= 0 {
		return parts
	}
	out := parts[:0]
	atLineStart := true
	for _, part := range parts {
		s, isString := part.(*ast.StringNode)
		if isString && atLineStart {
			s.Unescaped = stripLeadingColumns(s.Unescaped, width)
			if len(s.Unescaped) == 0 {
				continue
			}
		}
		if isString {
			atLineStart = s.Unescaped[len(s.Unescaped)-1] == '\n'
		} else {
			atLineStart = false
		}
		out = append(out, part)
	}
	return out
}

// stripLeadingColumns removes up to width columns of leading space/tab
// bytes from b, expanding tabs to the next multiple of 8; a tab that would
// overshoot width is left untouched rather than partially consumed.
func stripLeadingColumns(b []byte, width int) []byte {
	col := 0
	i := 0
	for i < len(b) && col < width {
		switch b[i] {
		case ' ':
			col++
			i++
		case '\t':
			next := (col/8 + 1) * 8
			if next > width {
				return b[i:]
			}
			col = next
			i++
		default:
			return b[i:]
		}
	}
	return b[i:]
}
