package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/GitSmart86/archidoc/internal/output"
	"github.com/GitSmart86/archidoc/pkg/config"
	"github.com/GitSmart86/archidoc/pkg/render"
)

var (
	generateOut      string
	generateFromIR   string
	generateHTML     bool
	generateNoVerify bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate architecture documentation",
	Long: `Scans a source tree for module annotations and writes the full
artifact set: ARCHITECTURE.md, AI_CONTEXT.md, C4 diagrams, and
draw.io CSV exports.

Example:
  archidoc generate
  archidoc generate ../myproject --out docs/architecture
  archidoc generate --from-ir build/ir.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output directory (default from archidoc.yml)")
	generateCmd.Flags().StringVar(&generateFromIR, "from-ir", "", "Build from a serialized IR file instead of scanning sources")
	generateCmd.Flags().BoolVar(&generateHTML, "html", false, "Also write an HTML rendering of the document")
	generateCmd.Flags().BoolVar(&generateNoVerify, "no-verify", false, "Skip pattern verification")

	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	outDir := generateOut
	if outDir == "" {
		outDir = resolveOut(root, cfg.Output.Dir)
	}

	records, discovered, err := loadRecords(cfg, root, generateFromIR)
	if err != nil {
		return err
	}
	output.Info(fmt.Sprintf("Found %d annotated module(s)", len(records)))

	if !generateNoVerify && generateFromIR == "" {
		if promoted := verifyPatterns(cfg, records); promoted > 0 {
			output.Info(fmt.Sprintf("Verified %d pattern claim(s)", promoted))
		}
	}

	t, err := buildTree(records, discovered)
	if err != nil {
		return err
	}

	artifacts := render.All(t)
	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writeArtifact(outDir, name, artifacts[name]); err != nil {
			return err
		}
		output.Step(name)
	}

	if generateHTML || cfg.Output.HTML {
		html, err := render.HTMLDocument(artifacts[render.DocumentName])
		if err != nil {
			return fmt.Errorf("rendering HTML: %w", err)
		}
		if err := writeArtifact(outDir, "ARCHITECTURE.html", html); err != nil {
			return err
		}
		output.Step("ARCHITECTURE.html")
	}

	output.Success(fmt.Sprintf("Documentation written to %s", outDir))
	return nil
}
