package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubyparse/rubyparse/internal/config"
	"github.com/rubyparse/rubyparse/internal/secretscrub"
)

// commonFlags is shared between parse and tokens: the parse-options surface
// plus the two front-end-only knobs (watch, dump-cbor) spec.md §1 keeps
// outside core scope.
type commonFlags struct {
	encoding     string
	frozenString bool
	version      string
	startLine    int
	watch        bool
	dumpCBOR     string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "encoding hint (e.g. UTF-8, Shift_JIS)")
	cmd.Flags().BoolVar(&f.frozenString, "frozen-string-literal", false, "parse as though # frozen_string_literal: true were set")
	cmd.Flags().StringVar(&f.version, "version", "latest", `target Ruby version ("latest" or e.g. "cruby-3.3.0")`)
	cmd.Flags().IntVar(&f.startLine, "start-line", 1, "line number of the first byte of input")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "re-run on every save to the input file")
	cmd.Flags().StringVar(&f.dumpCBOR, "dump-cbor", "", "write a CBOR-encoded diagnostic/node-shape snapshot to this path")
}

// parseOptions builds the config.Option slice for this invocation. Per
// spec.md §1/SPEC_FULL.md §B.1, RUBYPARSE_DEBUG is read only here, never by
// the library itself — it raises the injected logger to Debug level for
// lex-mode/lex-state/parser-context trace output, a side channel that must
// never affect the parse result. src is scanned for secret-shaped literals
// (password/token/key/... assignments) so the trace log's writer can redact
// them before anything reaches stderr.
func (f *commonFlags) parseOptions(src []byte) []config.Option {
	level := slog.LevelInfo
	if os.Getenv("RUBYPARSE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	scrubber := secretscrub.New(os.Stderr)
	registerLikelySecrets(scrubber, src)
	logger := slog.New(slog.NewTextHandler(scrubber, &slog.HandlerOptions{Level: level}))

	return []config.Option{
		config.WithEncodingHint(f.encoding),
		config.WithFrozenStringLiteral(f.frozenString),
		config.WithVersion(f.version),
		config.WithStartLine(f.startLine),
		config.WithLogger(logger),
	}
}
