package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GitSmart86/archidoc/internal/output"
	"github.com/GitSmart86/archidoc/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default archidoc.yml",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		path := filepath.Join(dir, config.FileName)

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg := config.Default()
		cfg.Project.Name = filepath.Base(absOrSelf(dir))

		if err := config.Save(path, cfg); err != nil {
			return err
		}
		output.Success(fmt.Sprintf("Created %s", path))
		output.Info("Next steps:")
		output.Step("annotate a module doc comment (try: archidoc suggest <dir>)")
		output.Step("archidoc generate")
		return nil
	},
}

func absOrSelf(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")

	RootCmd.AddCommand(initCmd)
}
