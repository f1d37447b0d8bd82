package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GitSmart86/archidoc/pkg/config"
	"github.com/GitSmart86/archidoc/pkg/health"
)

var healthFromIR string

var healthCmd = &cobra.Command{
	Use:   "health [path]",
	Short: "Report file maturity and pattern confidence",
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

		records, discovered, err := loadRecords(cfg, root, healthFromIR)
		if err != nil {
			return err
		}

		t, err := buildTree(records, discovered)
		if err != nil {
			return err
		}

		fmt.Print(health.Format(health.Aggregate(t)))
		return nil
	},
}

func init() {
	healthCmd.Flags().StringVar(&healthFromIR, "from-ir", "", "Build from a serialized IR file instead of scanning sources")

	RootCmd.AddCommand(healthCmd)
}
