// Package encoding implements the "encoding table" collaborator interface
// spec.md §6 summarizes: byte classification (alpha/alnum/upper) and
// code-point width measurement, pluggable per source encoding. The common
// case (UTF-8, US-ASCII, ASCII-8BIT/binary) is a hand-rolled fast path; the
// less common magic-comment encodings Ruby source can declare (Shift_JIS,
// EUC-JP, Windows-1252, ...) are backed by golang.org/x/text.
package encoding

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Table is the pluggable collaborator interface the lexer consumes for
// identifier classification and code-point width.
type Table interface {
	// Name is the canonical encoding name, as it would appear in a magic
	// comment ("UTF-8", "Shift_JIS", "US-ASCII", "ASCII-8BIT").
	Name() string

	// Width returns the byte width of the code point starting at b[0],
	// or 1 if b is malformed (the lexer advances one byte and may emit a
	// diagnostic, per spec.md §4.8).
	Width(b []byte) int

	// IdentStart/IdentContinue classify the code point starting at b[0]
	// per this encoding's notion of "letter".
	IdentStart(b []byte) bool
	IdentContinue(b []byte) bool

	// Upper reports whether the code point starting at b[0] is uppercase
	// (used to distinguish CONSTANT from lower-case identifiers).
	Upper(b []byte) bool
}

// utf8Table is the default and overwhelmingly common case.
type utf8Table struct{}

func (utf8Table) Name() string { return "UTF-8" }

func (utf8Table) Width(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	if b[0] < 0x80 {
		return 1
	}
	_, size := utf8.DecodeRune(b)
	if size == 0 {
		return 1
	}
	return size
}

func (utf8Table) IdentStart(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if b[0] < 0x80 {
		return asciiIdentStart[b[0]]
	}
	r, _ := utf8.DecodeRune(b)
	return unicode.IsLetter(r) || r == '_'
}

func (utf8Table) IdentContinue(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if b[0] < 0x80 {
		return asciiIdentContinue[b[0]]
	}
	r, _ := utf8.DecodeRune(b)
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (utf8Table) Upper(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if b[0] < 0x80 {
		return b[0] >= 'A' && b[0] <= 'Z'
	}
	r, _ := utf8.DecodeRune(b)
	return unicode.IsUpper(r)
}

// asciiTable backs both US-ASCII and ASCII-8BIT (binary): every byte is
// width 1 and only the ASCII range classifies as identifier-like.
type asciiTable struct{ name string }

func (t asciiTable) Name() string { return t.name }
func (asciiTable) Width([]byte) int { return 1 }
func (asciiTable) IdentStart(b []byte) bool {
	return len(b) > 0 && b[0] < 0x80 && asciiIdentStart[b[0]]
}
func (asciiTable) IdentContinue(b []byte) bool {
	return len(b) > 0 && b[0] < 0x80 && asciiIdentContinue[b[0]]
}
func (asciiTable) Upper(b []byte) bool {
	return len(b) > 0 && b[0] >= 'A' && b[0] <= 'Z'
}

// xtextTable adapts a golang.org/x/text encoding.Encoding (a transcoder, not
// a byte classifier) into Table by decoding one rune at a time through its
// decoder and classifying the decoded rune with unicode.
type xtextTable struct {
	name string
	enc  *encoding.Encoding
}

func (t xtextTable) Name() string { return t.name }

func (t xtextTable) decode(b []byte) (rune, int) {
	dec := t.enc.NewDecoder()
	dst := make([]byte, 4)
	n, nSrc, err := dec.Transform(dst, b, false)
	if err != nil || n == 0 || nSrc == 0 {
		return utf8.RuneError, 1
	}
	r, _ := utf8.DecodeRune(dst[:n])
	return r, nSrc
}

func (t xtextTable) Width(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	_, n := t.decode(b)
	return n
}

func (t xtextTable) IdentStart(b []byte) bool {
	r, _ := t.decode(b)
	return unicode.IsLetter(r) || r == '_'
}

func (t xtextTable) IdentContinue(b []byte) bool {
	r, _ := t.decode(b)
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (t xtextTable) Upper(b []byte) bool {
	r, _ := t.decode(b)
	return unicode.IsUpper(r)
}

var (
	tUTF8    Table = utf8Table{}
	tASCII   Table = asciiTable{name: "US-ASCII"}
	tBinary  Table = asciiTable{name: "ASCII-8BIT"}
	tSJIS    Table = xtextTable{name: "Shift_JIS", enc: &japanese.ShiftJIS}
	tEUCJP   Table = xtextTable{name: "EUC-JP", enc: &japanese.EUCJP}
	tCP1252  Table = xtextTable{name: "Windows-1252", enc: &charmap.Windows1252}
	tISO8859 Table = xtextTable{name: "ISO-8859-1", enc: &charmap.ISO8859_1}
)

// Find looks up an encoding by the name a magic comment or CLI option would
// use, case-insensitively and tolerant of '-' vs '_' (spec.md §6's
// find(name_start,name_end) collaborator method).
func Find(name string) (Table, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	switch key {
	case "utf8":
		return tUTF8, true
	case "usascii", "ascii":
		return tASCII, true
	case "ascii8bit", "binary":
		return tBinary, true
	case "shiftjis", "sjis", "windows31j", "cp932":
		return tSJIS, true
	case "eucjp":
		return tEUCJP, true
	case "windows1252", "cp1252":
		return tCP1252, true
	case "iso88591", "latin1":
		return tISO8859, true
	default:
		return nil, false
	}
}

// Default is the UTF-8 table used when no magic comment or encoding hint is
// supplied, per Ruby's own default source encoding.
func Default() Table { return tUTF8 }

var asciiIdentStart, asciiIdentContinue [128]bool

func init() {
	for c := 0; c < 128; c++ {
		b := byte(c)
		letter := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
		digit := b >= '0' && b <= '9'
		asciiIdentStart[c] = letter
		asciiIdentContinue[c] = letter || digit
	}
}
