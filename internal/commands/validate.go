package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GitSmart86/archidoc/internal/output"
	"github.com/GitSmart86/archidoc/pkg/config"
	"github.com/GitSmart86/archidoc/pkg/patterns"
	"github.com/GitSmart86/archidoc/pkg/validate"
)

var (
	validateFromIR  string
	validateFitness []string
	validateStrict  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate annotations against the source tree",
	Long: `Checks module file tables against the filesystem: ghost entries
(cataloged but missing) and orphan files (on disk but uncataloged).
Fitness functions can additionally assert that pattern claims hold
structurally.

Example:
  archidoc validate
  archidoc validate --strict
  archidoc validate --fitness all_strategy_modules_define_a_contract`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFromIR, "from-ir", "", "Build from a serialized IR file instead of scanning sources")
	validateCmd.Flags().StringSliceVar(&validateFitness, "fitness", nil,
		fmt.Sprintf("Fitness function(s) to run (available: %v)", patterns.FitnessNames()))
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit non-zero on any ghost or orphan finding")

	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	records, discovered, err := loadRecords(cfg, root, validateFromIR)
	if err != nil {
		return err
	}

	t, err := buildTree(records, discovered)
	if err != nil {
		return err
	}

	report := validate.FileTables(t, validate.Options{
		EntryPoints: cfg.Validate.EntryPoints,
		SourceExts:  cfg.Source.Extensions,
	})
	fmt.Print(validate.Format(report))

	failed := false
	if !report.Clean() && validateStrict {
		failed = true
	}

	if len(validateFitness) > 0 {
		v := patterns.NewVerifier()
		v.SourceExts = cfg.Source.Extensions
		for _, name := range validateFitness {
			result, ok := v.RunFitness(name, records)
			if !ok {
				return fmt.Errorf("unknown fitness function %q (available: %v)", name, patterns.FitnessNames())
			}
			fmt.Print(patterns.FormatFitness(name, result))
			if !result.Passed {
				failed = true
			}
		}
	}

	if failed {
		output.Error("Validation failed")
		return fmt.Errorf("validation failed")
	}
	output.Success("Validation passed")
	return nil
}
