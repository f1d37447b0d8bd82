package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GitSmart86/archidoc/pkg/suggest"
)

var (
	suggestLang string
	suggestRoot bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <dir>",
	Short: "Generate an annotation template for a directory",
	Long: `Scans a directory for source files, infers the C4 level from its
depth, and prints a ready-to-paste annotation block with TODO
placeholders. With --root, prints the project-level template for the
entry file instead.

Example:
  archidoc suggest internal/api
  archidoc suggest --root --lang go .`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		style, ok := suggest.DetectStyle(dir)
		if suggestLang != "" {
			style, ok = suggest.ParseStyle(suggestLang)
			if !ok {
				return fmt.Errorf("unknown language %q", suggestLang)
			}
		} else if !ok {
			style = suggest.StyleGo
		}

		if suggestRoot {
			fmt.Print(suggest.RootTemplate(style))
			return nil
		}
		fmt.Print(suggest.Annotation(dir, style))
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVar(&suggestLang, "lang", "", "Comment style: go, rust, or typescript (default autodetect)")
	suggestCmd.Flags().BoolVar(&suggestRoot, "root", false, "Emit the project-level template instead")

	RootCmd.AddCommand(suggestCmd)
}
