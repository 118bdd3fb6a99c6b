// Package config implements the parser's functional-options surface (spec
// component "parse options") plus a LoadOptions front-end for front-ends
// that receive options as a serialized JSON or YAML blob, adapted from the
// teacher's ParserOpt/options.go pattern.
package config

import (
	"log/slog"

	"github.com/rubyparse/rubyparse/internal/pool"
)

// Options bundles every input field spec.md §6 lists as parse metadata.
type Options struct {
	Filepath            string
	StartLine           int
	StartOffset         int
	EncodingHint        string
	FrozenStringLiteral bool
	CommandLineFlags    uint8
	Version             string // "latest" or e.g. "cruby-3.3.0"
	OuterScopes         [][]string

	// Logger receives lex-mode/lex-state/parser-context trace output when
	// set at Debug level; nil means the disabled default. Debug logging
	// must never affect parse results — it is a side channel only.
	Logger *slog.Logger
}

// Option mutates an in-progress Options value; rubyparse.Parse takes
// ...Option the way the teacher's Parse takes ...ParserOpt.
type Option func(*Options)

// Default returns the zero-value-safe defaults: line 1, offset 0, UTF-8,
// frozen_string_literal off, latest version.
func Default() Options {
	return Options{StartLine: 1, Version: "latest"}
}

func WithFilepath(path string) Option { return func(o *Options) { o.Filepath = path } }
func WithStartLine(line int) Option   { return func(o *Options) { o.StartLine = line } }
func WithStartOffset(off int) Option  { return func(o *Options) { o.StartOffset = off } }
func WithEncodingHint(name string) Option {
	return func(o *Options) { o.EncodingHint = name }
}
func WithFrozenStringLiteral(v bool) Option {
	return func(o *Options) { o.FrozenStringLiteral = v }
}
func WithCommandLineFlags(flags uint8) Option {
	return func(o *Options) { o.CommandLineFlags = flags }
}
func WithVersion(v string) Option { return func(o *Options) { o.Version = v } }
func WithOuterScopes(scopes [][]string) Option {
	return func(o *Options) { o.OuterScopes = scopes }
}
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// Apply folds a variadic Option slice onto Default(), the way every
// constructor in this module accepting ...Option does internally.
func Apply(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// OuterScopeIDs interns every name in OuterScopes and returns one id list
// per frame, in the same order; the parser seeds its outer (inherited)
// scope frames from the result when parsing a string `eval`'d inside a
// known set of enclosing local-variable scopes (spec.md §6's "outer
// scopes" input).
func (o Options) OuterScopeIDs(p *pool.Pool) [][]pool.ID {
	out := make([][]pool.ID, len(o.OuterScopes))
	for i, frame := range o.OuterScopes {
		ids := make([]pool.ID, len(frame))
		for j, name := range frame {
			ids[j] = p.InternOwned(name)
		}
		out[i] = ids
	}
	return out
}
