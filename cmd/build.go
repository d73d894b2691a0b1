package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cssmith/internal/config"
	"cssmith/internal/processor"
	"cssmith/internal/ui"
)

type buildOptions struct {
	dir    string
	mode   string
	engine string
	quiet  bool
}

func addBuildFlags(cmd *cobra.Command, opts *buildOptions) {
	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "Project directory (default: current directory)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Override the configured mode: minify or format")
	cmd.Flags().StringVarP(&opts.engine, "engine", "e", "", "Override the configured engine: lexical, reference, or aggressive")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only print the summary")
}

// loadProject resolves the project directory and its config, applying
// command-line overrides.
func loadProject(opts *buildOptions) (string, *config.Config, error) {
	dir := opts.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = wd
	}

	if !config.Exists(dir) {
		return "", nil, fmt.Errorf("%w in %s (run 'cssmith init' to create one)", config.ErrNotFound, dir)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return "", nil, err
	}

	if err := cfg.Override(opts.mode, opts.engine); err != nil {
		return "", nil, err
	}
	return dir, cfg, nil
}

func newBuildCmd(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Process every stylesheet selected by cssmith.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := loadProject(opts)
			if err != nil {
				return err
			}

			if !opts.quiet {
				ui.PrintHeader(Version)
				printProject(cfg)
			}

			p := processor.New(dir, cfg)
			p.Quiet = opts.quiet
			p.Logger = root.logger(cmd)

			summary, err := p.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}
			printSummary(summary)
			return nil
		},
	}

	addBuildFlags(cmd, opts)
	return cmd
}

func printProject(cfg *config.Config) {
	ui.PrintKeyValue("Config", " "+cfg.Path)
	ui.PrintKeyValue("Mode", "   "+string(cfg.Mode))
	ui.PrintKeyValue("Engine", " "+string(cfg.Engine))
	fmt.Fprintln(ui.Out)
}

func printSummary(s processor.Summary) {
	ui.PrintSuccess("%d file(s) processed, %d written, %s → %s (%.1f%%)",
		s.Files, s.Changed, ui.Size(s.BytesBefore), ui.Size(s.BytesAfter), s.Ratio()*100)
}
