// Package lexer implements the context-sensitive Ruby lexer (spec
// component F): a state machine over a stack of lex modes driven by a
// bitset of lex states, producing the token stream the Pratt parser
// consumes token-by-token through its two-token window.
package lexer

import (
	"log/slog"
	"io"

	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/internal/encoding"
	"github.com/rubyparse/rubyparse/internal/invariant"
	"github.com/rubyparse/rubyparse/internal/lines"
	"github.com/rubyparse/rubyparse/internal/pool"
	"github.com/rubyparse/rubyparse/token"
)

// CommandLineFlags packs the `-a -e -l -n -p` flags spec.md §6 lists as
// input metadata. The lexer stores them (Options.Flags); neither the lexer
// nor the parser reads them, so they do not change how source is
// tokenized or parsed.
type CommandLineFlags uint8

const (
	FlagAutosplit CommandLineFlags = 1 << iota // -a
	FlagScript                                  // -e
	FlagLineEnding                              // -l
	FlagLoop                                    // -n
	FlagPrint                                   // -p
)

// Comment is a `#...` or `=begin`/`=end` embedded-doc comment.
type Comment struct {
	Start, End int
	EmbeddedDoc bool
}

// MagicComment is a parsed `# key: value` (or `-*- key: value -*-`) pragma.
type MagicComment struct {
	KeyStart, KeyEnd     int
	ValueStart, ValueEnd int
}

// Lexer is the context-sensitive state machine of spec component F. It
// owns the lex-mode stack, lex-state bitset, newline list, comment list,
// magic-comment list, encoding, and escape-processing buffer, exactly the
// side-effect surface spec.md §4.1 assigns to next_token.
type Lexer struct {
	src []byte
	pos int

	modes *Stack
	state token.LexState

	Lines    *lines.List
	Pool     *pool.Pool
	Errors   *diag.List
	Warnings *diag.List

	Comments      []Comment
	MagicComments []MagicComment

	table            encoding.Table
	explicitEncoding bool
	frozenString     bool
	flags            CommandLineFlags

	spaceSeen     bool
	newlineSeen   bool
	parenNesting  int // unmatched ( [ { depth, used to decide IGNORED_NEWLINE etc.
	cmdArgStack   []bool

	// currentString holds the escape-processed bytes of the most recent
	// string-like token (spec.md §4.1's "current_string buffer").
	currentString []byte

	// heredocPending queues <<IDENT declarations seen on the current
	// logical line, processed in order once the newline is reached.
	heredocPending []Mode
	nextStart      int // resume position after a heredoc body, -1 if none

	// DataSection records the byte offset of `__END__`'s data, or -1.
	DataSection int

	// lastHeredocDedent carries the just-closed `<<~` heredoc's
	// common_whitespace column count to the parser's post-processing pass
	// (spec.md §4.5); -1 when the heredoc wasn't tilde-indented or had no
	// non-blank body lines to measure.
	lastHeredocDedent int

	logger *slog.Logger
}

// Options configures a new Lexer; all fields are optional.
type Options struct {
	EncodingHint string
	FrozenString bool
	Flags        CommandLineFlags
	Logger       *slog.Logger
}

// New constructs a Lexer over src starting at byte offset 0. Per spec.md
// §6, a UTF-8 BOM at offset 0 is skipped before anything else.
func New(src []byte, opts Options) *Lexer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	l := &Lexer{
		src:          src,
		modes:        NewStack(),
		state:        token.StateBEG,
		Lines:        lines.New(len(src)),
		Pool:         pool.New(len(src)),
		Errors:       diag.NewList(),
		Warnings:     diag.NewList(),
		table:        encoding.Default(),
		frozenString: opts.FrozenString,
		flags:        opts.Flags,
		nextStart:    -1,
		DataSection:  -1,
		logger:       logger,
	}
	if opts.EncodingHint != "" {
		if t, ok := encoding.Find(opts.EncodingHint); ok {
			l.table = t
			l.explicitEncoding = true
		}
	}
	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		l.pos = 3
	}
	l.scanMagicComments()
	return l
}

// Encoding returns the encoding table in effect.
func (l *Lexer) Encoding() encoding.Table { return l.table }

// ExplicitEncoding reports whether a magic comment or option forced a
// non-default encoding (spec.md §4.1's escape-processing note).
func (l *Lexer) ExplicitEncoding() bool { return l.explicitEncoding }

// FrozenStringLiteral reports the effective frozen_string_literal pragma.
func (l *Lexer) FrozenStringLiteral() bool { return l.frozenString }

// CurrentString returns the escape-processed bytes of the most recently
// produced string-like token.
func (l *Lexer) CurrentString() []byte { return l.currentString }

// LastHeredocDedent returns the common_whitespace column count recorded
// when the most recently closed `<<~` heredoc's HEREDOC_END was produced,
// or -1 if the last-closed heredoc wasn't tilde-indented (or had no
// non-blank body lines).
func (l *Lexer) LastHeredocDedent() int { return l.lastHeredocDedent }

// State/SetState expose the lex-state bitset to the parser, which drives
// transitions the way spec.md §4.1 describes ("after an identifier that
// could be a method name, the state becomes ARG|LABELED if followed by
// ...").
func (l *Lexer) State() token.LexState      { return l.state }
func (l *Lexer) SetState(s token.LexState)  { l.state = s }

// PushMode / PopMode let the parser drive mode transitions it is uniquely
// positioned to know about (e.g. entering a `def` parameter list), and are
// the lexer's own internal funnel for every mode-stack mutation so
// RUBYPARSE_DEBUG trace logging (spec.md §B.1) has one place to hook.
func (l *Lexer) PushMode(m Mode) {
	l.logger.Debug("lex mode push", "kind", m.Kind, "depth", l.modes.Depth()+1)
	l.modes.Push(m)
}
func (l *Lexer) PopMode() {
	l.modes.Pop()
	l.logger.Debug("lex mode pop", "depth", l.modes.Depth())
}
func (l *Lexer) ModeDepth() int { return l.modes.Depth() }

// Pos reports the current scan offset, for diagnostics and the parser's
// Missing-node synthesis.
func (l *Lexer) Pos() int { return l.pos }

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) byteAt(offset int) byte {
	p := l.pos + offset
	if p < 0 || p >= len(l.src) {
		return 0
	}
	return l.src[p]
}

func (l *Lexer) cur() byte { return l.byteAt(0) }

func (l *Lexer) advance() byte {
	invariant.Precondition(!l.eof(), "advance called at EOF")
	b := l.src[l.pos]
	if b == '\n' {
		l.Lines.Append(l.pos)
	}
	l.pos++
	return b
}

func (l *Lexer) match(b byte) bool {
	if l.cur() == b {
		l.pos++
		return true
	}
	return false
}

// Next produces the next token, advancing all lexer side state (spec.md
// §4.1's contract). The active lex mode determines dispatch.
func (l *Lexer) Next() token.Token {
	if len(l.heredocPending) == 0 && l.nextStart >= 0 {
		l.pos = l.nextStart
		l.nextStart = -1
	}

	switch l.modes.Current().Kind {
	case ModeHeredoc:
		return l.nextHeredocBody()
	case ModeList:
		return l.nextListContent()
	case ModeRegexp:
		return l.nextRegexpContent()
	case ModeString:
		return l.nextStringContent()
	default:
		return l.nextDefault()
	}
}

// nextDefault handles ModeDefault and ModeEmbexpr/ModeEmbvar (the latter
// two behave like Default but know how to close back to the enclosing
// string mode on `}` / after one variable reference, per spec.md §9).
func (l *Lexer) nextDefault() token.Token {
	l.spaceSeen = false
	l.skipWhitespaceAndComments()

	start := l.pos
	newlineBefore := l.newlineSeen
	l.newlineSeen = false

	if l.eof() {
		return l.tok(token.EOF, start, start, newlineBefore)
	}

	c := l.cur()

	if l.modes.Current().Kind == ModeEmbvar {
		// A single variable reference terminates embvar mode (spec.md
		// §4.1: "#@foo" / "#@@foo" / "#$foo" — one token, then pop).
		defer l.PopMode()
	}

	switch {
	case c == '\n':
		l.advance()
		return l.lexNewline(start, newlineBefore)
	case c == ';':
		l.advance()
		return l.tok(token.SEMICOLON, start, l.pos, newlineBefore)
	case c == ',':
		l.advance()
		l.state = token.StateBEG
		return l.tok(token.COMMA, start, l.pos, newlineBefore)
	case c >= '0' && c <= '9':
		return l.lexNumber(start, newlineBefore)
	case c == '"':
		return l.lexStringBegin(start, newlineBefore, '"', true)
	case c == '\'':
		return l.lexStringBegin(start, newlineBefore, '\'', false)
	case c == '`':
		return l.lexStringBegin(start, newlineBefore, '`', true)
	case c == ':':
		return l.lexColon(start, newlineBefore)
	case c == '@':
		return l.lexAtVariable(start, newlineBefore)
	case c == '$':
		return l.lexGlobalVariable(start, newlineBefore)
	case c == '/':
		return l.lexSlash(start, newlineBefore)
	case c == '%':
		return l.lexPercent(start, newlineBefore)
	case c == '?':
		return l.lexQuestion(start, newlineBefore)
	case c == '<':
		return l.lexLess(start, newlineBefore)
	case isIdentStartByte(l, c):
		return l.lexIdentifierOrKeyword(start, newlineBefore)
	default:
		return l.lexOperator(start, newlineBefore)
	}
}

func isIdentStartByte(l *Lexer, c byte) bool {
	if c < 0x80 {
		return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	return l.table.IdentStart(l.src[l.pos:])
}

func (l *Lexer) tok(kind token.Kind, start, end int, newlineBefore bool) token.Token {
	t := token.Token{Kind: kind, Start: start, End: end, SpaceBefore: l.spaceSeen, NewlineBefore: newlineBefore}
	return t
}

// skipWhitespaceAndComments eats spaces/tabs/form-feeds/vertical-tabs and
// `#...` comments, setting spaceSeen, and also handles backslash-newline
// line continuations (spec.md §4.1).
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.eof() {
		c := l.cur()
		switch {
		case c == ' ' || c == '\t' || c == '\f' || c == '\v' || c == '\r':
			l.pos++
			l.spaceSeen = true
		case c == '\\' && l.byteAt(1) == '\n':
			l.pos += 2
			l.Lines.Append(l.pos - 1)
			l.spaceSeen = true
		case c == '\\' && l.byteAt(1) == '\r' && l.byteAt(2) == '\n':
			l.pos += 3
			l.Lines.Append(l.pos - 1)
			l.spaceSeen = true
		case c == '#':
			l.lexLineComment()
		case c == '=' && l.atLineStart() && l.hasPrefix("=begin"):
			l.lexEmbeddedDoc()
		case c == '_' && l.atLineStart() && l.hasPrefix("__END__") && l.followedByEOLOrEOF(7):
			l.DataSection = l.pos + 7
			if l.DataSection < len(l.src) && l.src[l.DataSection] == '\n' {
				l.DataSection++
			}
			l.pos = len(l.src)
			return
		default:
			return
		}
	}
}

func (l *Lexer) atLineStart() bool {
	return l.pos == 0 || l.src[l.pos-1] == '\n'
}

func (l *Lexer) hasPrefix(s string) bool {
	end := l.pos + len(s)
	if end > len(l.src) {
		return false
	}
	return string(l.src[l.pos:end]) == s
}

func (l *Lexer) followedByEOLOrEOF(n int) bool {
	p := l.pos + n
	if p >= len(l.src) {
		return true
	}
	return l.src[p] == '\n' || l.src[p] == '\r'
}

func (l *Lexer) lexLineComment() {
	start := l.pos
	for !l.eof() && l.cur() != '\n' {
		l.pos++
	}
	l.Comments = append(l.Comments, Comment{Start: start, End: l.pos})
}

func (l *Lexer) lexEmbeddedDoc() {
	start := l.pos
	for !l.eof() {
		if l.atLineStart() && l.hasPrefix("=end") {
			for !l.eof() && l.cur() != '\n' {
				l.pos++
			}
			break
		}
		l.advance()
	}
	l.Comments = append(l.Comments, Comment{Start: start, End: l.pos, EmbeddedDoc: true})
}

// lexNewline decides whether a logical newline is significant or should be
// merged away (IGNORED_NEWLINE, spec.md §4.1).
func (l *Lexer) lexNewline(start int, newlineBefore bool) token.Token {
	if l.ignoredNewlineState() {
		return l.nextDefault()
	}
	// A newline followed (across comments/whitespace) by '.'/'&.' is also
	// ignored, with the call operator becoming the next token.
	save := l.pos
	l.skipWhitespaceAndComments()
	for !l.eof() && l.cur() == '\n' {
		l.advance()
		l.skipWhitespaceAndComments()
	}
	if !l.eof() && (l.cur() == '.' && l.byteAt(1) != '.') {
		return l.nextDefault()
	}
	if !l.eof() && l.cur() == '&' && l.byteAt(1) == '.' {
		return l.nextDefault()
	}
	l.pos = save
	l.state = token.StateBEG
	if len(l.heredocPending) > 0 {
		l.activateNextHeredoc()
	}
	l.newlineSeen = true
	return l.tok(token.NEWLINE, start, start+1, newlineBefore)
}

func (l *Lexer) ignoredNewlineState() bool {
	s := l.state
	if (s.Has(token.StateBEG) || s.Has(token.StateCLASS) || s.Has(token.StateFNAME) || s.Has(token.StateDOT)) && !s.Has(token.StateLABELED) {
		return true
	}
	if s.Has(token.StateARG) && s.Has(token.StateLABELED) {
		return true
	}
	return false
}
