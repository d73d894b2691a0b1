package cmd

import (
	"github.com/spf13/cobra"

	"cssmith/internal/stylesheet"
)

func newFormatCmd(root *rootOptions) *cobra.Command {
	opts := &transformOptions{}

	cmd := &cobra.Command{
		Use:     "format [files...]",
		Aliases: []string{"fmt", "beautify"},
		Short:   "Re-indent CSS, one declaration per line",
		Long:    "Format CSS from the given files, or from stdin when no files are given.\nNesting is indented four spaces per level.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, root, stylesheet.ModeFormat, opts, args)
		},
	}

	addTransformFlags(cmd, opts)
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List files whose formatting differs and exit 1 if any")
	cmd.MarkFlagsMutuallyExclusive("list", "write")
	cmd.MarkFlagsMutuallyExclusive("list", "output")
	return cmd
}
