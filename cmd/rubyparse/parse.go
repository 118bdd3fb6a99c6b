package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/parser"
)

func newParseCommand() *cobra.Command {
	flags := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Ruby file and print its diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			run := func() error { return runParse(path, flags) }
			if flags.watch {
				return watchFile(path, run)
			}
			return run()
		},
	}
	flags.register(cmd)
	return cmd
}

func runParse(path string, flags *commonFlags) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("rubyparse: %w", err)
	}

	res := parser.Parse(src, flags.parseOptions(src)...)

	hadError := false
	for _, d := range res.Errors {
		fmt.Println(diag.Format(d, src, res.Lines))
		hadError = true
	}
	for _, d := range res.Warnings {
		fmt.Println(diag.Format(d, src, res.Lines))
	}
	if len(res.Errors) == 0 && len(res.Warnings) == 0 {
		fmt.Printf("%s: parsed OK (%d top-level statements)\n", path, topLevelCount(res))
	}

	if flags.dumpCBOR != "" {
		if err := writeCBORSnapshot(flags.dumpCBOR, res); err != nil {
			return fmt.Errorf("rubyparse: --dump-cbor: %w", err)
		}
	}

	if hadError {
		return fmt.Errorf("rubyparse: %d error(s)", len(res.Errors))
	}
	return nil
}

func topLevelCount(res parser.Result) int {
	if res.Program == nil || res.Program.Statements == nil {
		return 0
	}
	return len(res.Program.Statements.Body)
}
