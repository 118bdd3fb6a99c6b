// Package secretscrub redacts secret-shaped Ruby string literals before they
// reach the RUBYPARSE_DEBUG trace log (SPEC_FULL.md §B.1's side channel),
// adapted from the teacher's runtime/scrubber keyed-fingerprint design.
// Debug logging still must never affect parse results: this package only
// wraps the io.Writer the trace logger writes to, never the lexer/parser
// themselves.
package secretscrub

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/rubyparse/rubyparse/internal/invariant"
)

// Scrubber wraps an io.Writer, replacing every registered secret value with
// a stable placeholder derived from a per-run keyed BLAKE2b-256 fingerprint
// (the key prevents correlating a placeholder across separate invocations).
// Unlike the teacher's streamscrub/scrubber.go, this does not register
// hex/base64/URL/reversed/separator-tolerant encodings of each secret: Ruby
// source literals are redacted as the exact bytes the lexer read, not as an
// obfuscated shell-output byte stream, so those variants have no home here.
type Scrubber struct {
	mu      sync.Mutex
	out     io.Writer
	runKey  []byte
	secrets []secretEntry
}

type secretEntry struct {
	value       []byte
	placeholder []byte
}

// New creates a Scrubber writing to w, generating a fresh per-run key.
func New(w io.Writer) *Scrubber {
	invariant.NotNil(w, "writer")

	runKey := make([]byte, 32)
	if _, err := rand.Read(runKey); err != nil {
		panic(fmt.Sprintf("secretscrub: failed to generate run key: %v", err))
	}
	return &Scrubber{out: w, runKey: runKey}
}

// Fingerprint computes this run's keyed BLAKE2b-256 digest of value, used to
// derive a placeholder that is stable across repeated occurrences of the
// same secret within one run but not comparable across runs.
func (s *Scrubber) Fingerprint(value []byte) string {
	h, err := blake2b.New256(s.runKey)
	if err != nil {
		panic(fmt.Sprintf("secretscrub: failed to create BLAKE2b hash: %v", err))
	}
	h.Write(value)
	return hex.EncodeToString(h.Sum(nil))
}

// RegisterSecret marks value for redaction; every subsequent Write replaces
// it with a `[REDACTED:xxxxxxxx]` placeholder derived from its fingerprint.
// Registering the same value twice is a no-op.
func (s *Scrubber) RegisterSecret(value []byte) {
	if len(value) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.secrets {
		if bytes.Equal(e.value, value) {
			return
		}
	}
	placeholder := []byte(fmt.Sprintf("[REDACTED:%s]", s.Fingerprint(value)[:8]))
	s.secrets = append(s.secrets, secretEntry{value: value, placeholder: placeholder})
	sort.Slice(s.secrets, func(i, j int) bool { return len(s.secrets[i].value) > len(s.secrets[j].value) })
}

// Write redacts every registered secret from p (longest first, so one
// secret that is a substring of another is never redacted out from under
// it) before forwarding to the wrapped writer.
func (s *Scrubber) Write(p []byte) (int, error) {
	s.mu.Lock()
	redacted := p
	for _, e := range s.secrets {
		redacted = bytes.ReplaceAll(redacted, e.value, e.placeholder)
	}
	s.mu.Unlock()

	if _, err := s.out.Write(redacted); err != nil {
		return 0, err
	}
	return len(p), nil
}
