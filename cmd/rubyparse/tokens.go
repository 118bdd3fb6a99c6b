package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubyparse/rubyparse/internal/secretscrub"
	"github.com/rubyparse/rubyparse/lexer"
	"github.com/rubyparse/rubyparse/token"
)

func newTokensCommand() *cobra.Command {
	flags := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream the lexer produces for a Ruby file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			run := func() error { return runTokens(path, flags) }
			if flags.watch {
				return watchFile(path, run)
			}
			return run()
		},
	}
	flags.register(cmd)
	return cmd
}

func runTokens(path string, flags *commonFlags) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("rubyparse: %w", err)
	}

	scrubber := secretscrub.New(os.Stderr)
	registerLikelySecrets(scrubber, src)

	lx := lexer.New(src, lexer.Options{
		EncodingHint: flags.encoding,
		FrozenString: flags.frozenString,
		Logger:       slog.New(slog.NewTextHandler(scrubber, nil)),
	})

	for {
		tok := lx.Next()
		fmt.Printf("%-20s %6d %6d  %q\n", tok.Kind, tok.Start, tok.End, tok.Text(src))
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}
