package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cssmith/internal/logging"
	"cssmith/internal/ui"
)

// Version is set by ldflags during build
var Version = "dev"

type rootOptions struct {
	debug bool
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), o.debug)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "cssmith",
		Short:         "Minify and format CSS",
		Long:          ui.Divider() + "\n" + ui.Banner() + "\n" + ui.VersionLine(Version) + "\n\n" + ui.Divider() + "\n\n  Minify and pretty-print stylesheets from files, stdin, or a project config",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.Out = cmd.ErrOrStderr()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log per-file diagnostics to stderr")

	cmd.AddCommand(
		newMinifyCmd(opts),
		newFormatCmd(opts),
		newBuildCmd(opts),
		newWatchCmd(opts),
		newInitCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cssmith %s\n", Version)
		},
	}
}
