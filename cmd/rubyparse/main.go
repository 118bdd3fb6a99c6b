// Command rubyparse is a thin external front-end over the rubyparse module
// (spec.md §1 keeps CLI front-ends out of core scope): a parse subcommand
// that prints diagnostics, a tokens subcommand that dumps the lex stream,
// --watch to re-run on file save, and a --dump-cbor debug flag for
// snapshot tests and bug reports. Grounded on the teacher's cmd/devcmd and
// runtime/cli/harness.go cobra wiring.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rubyparse",
		Short:         "Parse Ruby source and report its AST, diagnostics, or token stream",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCommand())
	root.AddCommand(newTokensCommand())
	return root
}
