// Command javaparse exposes the javalang library as a CLI: parse a source
// file to its AST, dump its token stream, or run the package as a
// diagnostics-only Language Server.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// cliLog is the commonlog sink every subcommand logs parse failures
// through; the core library itself never logs (parsing is a pure function
// of its input).
var cliLog commonlog.Logger

// verbosity is the shared commonlog verbosity level, set by the root
// command's persistent flag and reused by the lsp subcommand.
var verbosity int

func main() {
	rootCmd := &cobra.Command{
		Use:   "javaparse",
		Short: "Tokenize and parse Java SE 8-era source",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
			cliLog = commonlog.GetLogger("javaparse")
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase commonlog verbosity")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readSource reads the named file, or stdin when filename is "-".
func readSource(filename string) ([]byte, error) {
	if filename == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}
