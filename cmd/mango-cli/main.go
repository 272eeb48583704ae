// Command mango-cli recognises chapter numbers from the command line and
// runs one-shot library scans.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var jsonOutput bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mango-cli",
		Short:         "mango-cli recognises chapter numbers in manga chapter titles.",
		Long:          "mango-cli recognises chapter numbers in manga chapter titles, orders chapter lists and scans a manga library.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON only")

	root.AddCommand(newParseCmd(), newSortCmd(), newScanCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
