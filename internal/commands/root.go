// Package commands wires the archidoc CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GitSmart86/archidoc/internal/output"
)

// Version is the CLI version, overridable at link time.
var Version = "0.3.0"

var verbose bool

// RootCmd is the root command for archidoc.
var RootCmd = &cobra.Command{
	Use:   "archidoc",
	Short: "archidoc - architecture documentation compiler",
	Long: `Archidoc compiles module annotations into architecture documentation:
a narrative document, C4 diagrams, and machine-readable context files.
Annotations live in module doc comments; the generated artifacts are
deterministic, so stale docs are caught by byte comparison.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed progress information")

	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("archidoc v%s\n", Version)
		},
	})
}
