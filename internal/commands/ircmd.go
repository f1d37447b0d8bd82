package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GitSmart86/archidoc/internal/output"
	"github.com/GitSmart86/archidoc/pkg/config"
	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/merge"
)

var (
	irEmitOut  string
	irMergeOut string
)

var irCmd = &cobra.Command{
	Use:   "ir",
	Short: "Work with the intermediate representation",
	Long: `The IR is the language-neutral contract between source adapters and
the documentation engine: a JSON array of module records. Emitting it
lets polyglot projects merge per-language scans before generating.`,
}

var irEmitCmd = &cobra.Command{
	Use:   "emit [path]",
	Short: "Scan a source tree and emit its IR",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}

		records, _, err := loadRecords(cfg, root, "")
		if err != nil {
			return err
		}

		data, err := ir.Serialize(records)
		if err != nil {
			return err
		}

		if irEmitOut == "" || irEmitOut == "-" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(irEmitOut, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", irEmitOut, err)
		}
		output.Success(fmt.Sprintf("Wrote %d record(s) to %s", len(records), irEmitOut))
		return nil
	},
}

var irValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an IR file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading IR file: %w", err)
		}
		if err := ir.ValidateJSON(data); err != nil {
			return err
		}
		output.Success(fmt.Sprintf("%s is valid", args[0]))
		return nil
	},
}

var irMergeCmd = &cobra.Command{
	Use:   "merge <file>...",
	Short: "Merge IR files from multiple adapters",
	Long: `Merges per-language IR files into one record set. A module path
appearing in more than one input is a hard error: adapters own
disjoint slices of the tree.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets := make([][]ir.ModuleRecord, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading IR file: %w", err)
			}
			records, err := ir.Deserialize(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			sets = append(sets, records)
		}

		merged, err := merge.Records(sets...)
		if err != nil {
			return err
		}

		data, err := ir.Serialize(merged)
		if err != nil {
			return err
		}

		if irMergeOut == "" || irMergeOut == "-" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(irMergeOut, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", irMergeOut, err)
		}
		output.Success(fmt.Sprintf("Merged %d record(s) into %s", len(merged), irMergeOut))
		return nil
	},
}

func init() {
	irEmitCmd.Flags().StringVarP(&irEmitOut, "out", "o", "", "Output file (default stdout)")
	irMergeCmd.Flags().StringVarP(&irMergeOut, "out", "o", "", "Output file (default stdout)")

	irCmd.AddCommand(irEmitCmd, irValidateCmd, irMergeCmd)
	RootCmd.AddCommand(irCmd)
}
