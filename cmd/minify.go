package cmd

import (
	"github.com/spf13/cobra"

	"cssmith/internal/stylesheet"
)

func newMinifyCmd(root *rootOptions) *cobra.Command {
	opts := &transformOptions{}

	cmd := &cobra.Command{
		Use:   "minify [files...]",
		Short: "Strip comments and collapse whitespace",
		Long:  "Minify CSS from the given files, or from stdin when no files are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, root, stylesheet.ModeMinify, opts, args)
		},
	}

	addTransformFlags(cmd, opts)
	cmd.Flags().BoolVar(&opts.aggressive, "aggressive", false, "Use the parsing minifier, which also shortens values")
	cmd.MarkFlagsMutuallyExclusive("reference", "aggressive")
	return cmd
}
