package main

import (
	"regexp"

	"github.com/rubyparse/rubyparse/internal/secretscrub"
)

// secretLikeLiteral matches a Ruby assignment/hash-value whose left-hand
// name suggests a credential (password/secret/token/key/...) followed by a
// single- or double-quoted string literal, the shape RUBYPARSE_DEBUG's
// lex-mode/token trace would otherwise echo verbatim into stderr.
var secretLikeLiteral = regexp.MustCompile(`(?i)(?:password|secret|token|api_?key|credential)\s*(?:=>|:|=)\s*(['"])((?:\\.|[^\\])*?)(['"])`)

// registerLikelySecrets scans src for secret-shaped string literals and
// registers each one's value with scrubber, so any later trace-log line
// that reproduces the literal's bytes comes out redacted instead.
func registerLikelySecrets(scrubber *secretscrub.Scrubber, src []byte) {
	for _, m := range secretLikeLiteral.FindAllSubmatch(src, -1) {
		scrubber.RegisterSecret(m[2])
	}
}
