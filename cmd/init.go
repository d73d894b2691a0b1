package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cssmith/internal/config"
	"cssmith/internal/processor"
	"cssmith/internal/ui"
)

func newInitCmd() *cobra.Command {
	var dir string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a cssmith.yaml with default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current directory: %w", err)
				}
				dir = wd
			}

			if config.Exists(dir) && !force {
				return fmt.Errorf("config already exists in %s (use --force to overwrite)", dir)
			}

			data, err := config.Default().Marshal()
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			path := filepath.Join(dir, config.YAMLFile)
			if err := processor.WriteFile(path, data); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			ui.PrintSuccess("Created %s", path)
			ui.PrintInfo("Run 'cssmith build' to process your stylesheets")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", "", "Project directory (default: current directory)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")
	return cmd
}
