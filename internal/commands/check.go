package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GitSmart86/archidoc/internal/output"
	"github.com/GitSmart86/archidoc/pkg/config"
	"github.com/GitSmart86/archidoc/pkg/drift"
)

var (
	checkFromIR string
	checkDiff   bool
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check generated documentation for drift",
	Long: `Regenerates every artifact in memory and byte-compares against what
is on disk. Exits non-zero when anything is stale or missing, which
makes it suitable as a CI gate.

Example:
  archidoc check
  archidoc check --diff`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFromIR, "from-ir", "", "Build from a serialized IR file instead of scanning sources")
	checkCmd.Flags().BoolVar(&checkDiff, "diff", false, "Show a unified diff for each drifted file")

	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	records, discovered, err := loadRecords(cfg, root, checkFromIR)
	if err != nil {
		return err
	}
	if checkFromIR == "" {
		verifyPatterns(cfg, records)
	}

	t, err := buildTree(records, discovered)
	if err != nil {
		return err
	}

	report := drift.Check(t, resolveOut(root, cfg.Output.Dir))
	fmt.Print(drift.Format(report))

	if !report.HasDrift() {
		return nil
	}

	if checkDiff {
		for _, f := range report.Drifted {
			fmt.Print(drift.Diff(f))
		}
	}

	output.Error("Documentation is stale")
	return fmt.Errorf("drift detected in %d file(s)", len(report.Drifted)+len(report.Missing))
}
