package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"cssmith/internal/processor"
	"cssmith/internal/ui"
	"cssmith/internal/watch"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build, then rebuild stylesheets as they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := loadProject(opts)
			if err != nil {
				return err
			}
			ui.PrintHeader(Version)
			printProject(cfg)

			logger := root.logger(cmd)
			p := processor.New(dir, cfg)
			p.Quiet = opts.quiet
			p.Logger = logger

			summary, err := p.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}
			printSummary(summary)

			w := &watch.Watcher{
				Dirs:     []string{dir},
				Debounce: debounce,
				Logger:   logger,
				Match: func(path string) bool {
					rel, err := filepath.Rel(dir, path)
					return err == nil && p.Matches(rel)
				},
				OnChange: func(paths []string) {
					rels := make([]string, 0, len(paths))
					for _, path := range paths {
						if rel, err := filepath.Rel(dir, path); err == nil {
							rels = append(rels, filepath.ToSlash(rel))
						}
					}
					ui.PrintInfo("Changes detected in %d file(s)", len(rels))
					summary, err := p.RunFiles(cmd.Context(), rels)
					if err != nil {
						ui.PrintError("Rebuild failed: %v", err)
						return
					}
					printSummary(summary)
				},
				OnReady: func() {
					ui.PrintInfo("Watching %s for changes (Ctrl+C to stop)", dir)
				},
			}
			return w.Run(cmd.Context())
		},
	}

	addBuildFlags(cmd, opts)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before rebuilding")
	return cmd
}
