// Package names implements the regexp named-capture scanner spec.md §1
// names as an external collaborator interface: given a regexp literal's
// unescaped source, return the ordered, de-duplicated list of valid
// capture-group names so `str =~ /regexp/` can be rewritten into a
// MatchWrite node that pre-declares local variables for each name.
package names

// Capture is one `(?<name>...)` / `(?'name'...)` group found in a regexp
// literal, in left-to-right source order.
type Capture struct {
	Name       string
	Start, End int // byte span of the name itself, for diagnostics
}

// Scan walks src (the regexp's raw, unescaped pattern text) and returns
// every named-capture group found. A name is only valid if it matches
// Ruby's capture-name grammar (starts with a letter or underscore,
// continues with word characters); malformed names are skipped rather
// than erroring, since the regexp engine itself (out of scope) owns their
// validation — the parser only needs which legal names to hoist.
func Scan(src []byte) []Capture {
	var out []Capture
	i := 0
	for i < len(src) {
		if src[i] == '\\' {
			i += 2
			continue
		}
		if src[i] == '(' && i+2 < len(src) && src[i+1] == '?' && isCaptureOpener(src[i+2]) {
			open := src[i+2]
			closer := byte('>')
			nameStart := i + 3
			if open == '\'' {
				closer = '\''
				nameStart = i + 3
			} else if open == '<' {
				nameStart = i + 3
			}
			j := nameStart
			for j < len(src) && src[j] != closer {
				j++
			}
			if j < len(src) && isValidCaptureName(src[nameStart:j]) {
				out = append(out, Capture{Name: string(src[nameStart:j]), Start: nameStart, End: j})
			}
			i = j + 1
			continue
		}
		i++
	}
	return out
}

func isCaptureOpener(c byte) bool {
	return c == '<' || c == '\''
}

func isValidCaptureName(name []byte) bool {
	if len(name) == 0 {
		return false
	}
	// `(?<=...)` / `(?<!...)` lookbehind assertions share the `(?<` prefix
	// with named captures; a name may not start with `=` or `!`.
	if name[0] == '=' || name[0] == '!' {
		return false
	}
	first := name[0]
	if !(first == '_' || (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return false
	}
	for _, c := range name[1:] {
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// Dedupe returns names in first-occurrence order with duplicates removed,
// since spec.md's MatchWrite targets must not declare the same local twice
// (only the first occurrence of a duplicated name is kept; the duplicate is
// dropped silently, and no diagnostic is reported for it).
func Dedupe(caps []Capture) []string {
	seen := make(map[string]bool, len(caps))
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		out = append(out, c.Name)
	}
	return out
}
