package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cssmith/internal/config"
	"cssmith/internal/processor"
	"cssmith/internal/stylesheet"
	"cssmith/internal/ui"
)

var errNoInput = errors.New("no input: pass files or pipe CSS on stdin")

type transformOptions struct {
	output     string
	write      bool
	reference  bool
	aggressive bool
	stats      bool
	list       bool
}

func (o *transformOptions) engine() stylesheet.Engine {
	switch {
	case o.reference:
		return stylesheet.EngineReference
	case o.aggressive:
		return stylesheet.EngineAggressive
	}
	return stylesheet.EngineLexical
}

func addTransformFlags(cmd *cobra.Command, opts *transformOptions) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite each input file in place")
	cmd.Flags().BoolVar(&opts.reference, "reference", false, "Elide only one semicolon before each }, matching reference output exactly")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print input and output sizes to stderr")
	cmd.MarkFlagsMutuallyExclusive("output", "write")
}

func runTransform(cmd *cobra.Command, root *rootOptions, mode stylesheet.Mode, opts *transformOptions, args []string) error {
	cfg := &config.Config{Mode: mode, Engine: opts.engine()}
	if err := cfg.Validate(); err != nil {
		return err
	}
	p := processor.New(".", cfg)
	p.Logger = root.logger(cmd)

	if opts.output != "" && len(args) > 1 {
		return fmt.Errorf("--output takes a single input, got %d", len(args))
	}

	if len(args) == 0 {
		if opts.write || opts.list {
			return errors.New("--write and --list need file arguments")
		}
		source, err := readStdin(cmd.InOrStdin())
		if err != nil {
			return err
		}
		result := p.Transform("<stdin>", source)
		printStats(opts, "<stdin>", len(source), len(result))
		return emit(cmd, opts, withNewline(result))
	}

	var unformatted int
	var summary processor.Summary
	for _, name := range args {
		content, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		source := string(content)
		result := p.Transform(name, source)
		out := withNewline(result)
		printStats(opts, name, len(source), len(result))
		summary.Add(processor.Result{Source: name, Before: int64(len(source)), After: int64(len(result)), Changed: out != source})

		switch {
		case opts.list:
			if out != source {
				unformatted++
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		case opts.write:
			if out == source {
				continue
			}
			if err := processor.WriteFile(name, []byte(out)); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}
			p.Logger.Debug("rewrote", "file", name)
		default:
			if err := emit(cmd, opts, out); err != nil {
				return err
			}
		}
	}

	if opts.stats && len(args) > 1 {
		ui.PrintKeyValue("Total", fmt.Sprintf("%s → %s (%.1f%%)", ui.Size(summary.BytesBefore), ui.Size(summary.BytesAfter), summary.Ratio()*100))
	}
	if unformatted > 0 {
		return fmt.Errorf("%d file(s) not formatted", unformatted)
	}
	return nil
}

// readStdin refuses to block on an interactive terminal.
func readStdin(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// withNewline terminates non-empty output so files and terminals end
// cleanly. Sizes reported by --stats exclude this newline.
func withNewline(out string) string {
	if out == "" {
		return out
	}
	return out + "\n"
}

func emit(cmd *cobra.Command, opts *transformOptions, out string) error {
	if opts.output != "" {
		if err := processor.WriteFile(opts.output, []byte(out)); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.output, err)
		}
		return nil
	}
	_, err := io.WriteString(cmd.OutOrStdout(), out)
	return err
}

func printStats(opts *transformOptions, name string, before, after int) {
	if !opts.stats {
		return
	}
	ui.PrintKeyValue(name, fmt.Sprintf("%s → %s", ui.Size(int64(before)), ui.Size(int64(after))))
}
