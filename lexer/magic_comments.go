package lexer

import (
	"bytes"

	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/internal/encoding"
	"github.com/rubyparse/rubyparse/token"
)

// scanMagicComments runs once, at construction: it skips a leading `#!`
// shebang line if present, then scans at most the next two lines, stopping
// at the first one that is not a comment, looking for `# key: value` / Emacs
// `-*- key: value; key2: value2 -*-` pragmas (spec.md §4.1). It must run
// before the main scan because an `encoding:`/`coding:` pragma changes how
// every subsequent multi-byte identifier is classified.
func (l *Lexer) scanMagicComments() {
	pos := l.pos
	if bytes.HasPrefix(l.src[pos:], []byte("#!")) {
		for pos < len(l.src) && l.src[pos] != '\n' {
			pos++
		}
		if pos < len(l.src) {
			pos++
		}
	}
	for i := 0; i < 2 && pos < len(l.src); i++ {
		lineEnd := pos
		for lineEnd < len(l.src) && l.src[lineEnd] != '\n' {
			lineEnd++
		}
		line := l.src[pos:lineEnd]
		if len(line) == 0 || line[0] != '#' {
			break
		}
		l.parseMagicCommentLine(pos, line)
		pos = lineEnd
		if pos < len(l.src) {
			pos++
		}
	}
}

func (l *Lexer) parseMagicCommentLine(lineStart int, line []byte) {
	body := bytes.TrimSpace(line[1:])
	body = bytes.TrimPrefix(body, []byte("-*-"))
	body = bytes.TrimSuffix(body, []byte("-*-"))
	for _, pair := range bytes.Split(body, []byte(";")) {
		pair = bytes.TrimSpace(pair)
		idx := bytes.IndexByte(pair, ':')
		if idx < 0 {
			continue
		}
		key := string(bytes.TrimSpace(pair[:idx]))
		value := string(bytes.TrimSpace(pair[idx+1:]))
		if key == "" || value == "" {
			continue
		}
		l.applyMagicComment(lineStart, key, value)
	}
}

func (l *Lexer) applyMagicComment(lineStart int, key, value string) {
	switch key {
	case "coding", "encoding":
		if t, ok := encoding.Find(value); ok {
			l.table = t
			l.explicitEncoding = true
		} else {
			l.Warnings.Add(diag.Diagnostic{
				ID: diag.InvalidEncoding, Severity: diag.SeverityWarning,
				Start: lineStart, End: lineStart, Message: "unknown encoding name " + value,
				Context: "magic comment",
			})
		}
	case "frozen_string_literal":
		l.frozenString = value == "true"
	case "warn_indent", "shareable_constant_value":
		// recognized but not acted on by this module; parity field only.
	default:
		if sugg := diag.Suggest(key, token.KnownMagicCommentKeys); sugg != "" {
			l.Warnings.Add(diag.Diagnostic{
				ID: diag.InvalidEncoding, Severity: diag.SeverityWarning,
				Start: lineStart, End: lineStart, Message: "unknown magic comment key " + key,
				Suggestion: sugg, Context: "magic comment",
			})
		}
	}
}
