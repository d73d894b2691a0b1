// Package processor applies the configured stylesheet transform to every
// file a project selects.
package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cssmith/internal/config"
	"cssmith/internal/files"
	"cssmith/internal/logging"
	"cssmith/internal/stylesheet"
	"cssmith/internal/ui"
)

// Result describes one processed stylesheet.
type Result struct {
	Source  string
	Target  string
	Before  int64
	After   int64
	Changed bool
}

// Summary aggregates the results of a Run.
type Summary struct {
	Files       int
	Changed     int
	BytesBefore int64
	BytesAfter  int64
}

// Add folds r into the summary.
func (s *Summary) Add(r Result) {
	s.Files++
	if r.Changed {
		s.Changed++
	}
	s.BytesBefore += r.Before
	s.BytesAfter += r.After
}

// Saved is the number of bytes removed across all files. Formatting
// usually grows files, which shows up as a negative value.
func (s Summary) Saved() int64 {
	return s.BytesBefore - s.BytesAfter
}

// Ratio is output size over input size; 1 when there was no input.
func (s Summary) Ratio() float64 {
	if s.BytesBefore == 0 {
		return 1
	}
	return float64(s.BytesAfter) / float64(s.BytesBefore)
}

// Processor runs a Config against a base directory.
type Processor struct {
	BaseDir string
	Config  *config.Config
	Quiet   bool
	Logger  *slog.Logger
}

// New creates a Processor for baseDir.
func New(baseDir string, cfg *config.Config) *Processor {
	return &Processor{
		BaseDir: baseDir,
		Config:  cfg,
		Logger:  logging.NewNop(),
	}
}

// TargetPath returns the slash-separated path, relative to BaseDir, that
// the output for rel is written to.
func (p *Processor) TargetPath(rel string) string {
	rel = filepath.ToSlash(rel)
	if p.Config.InPlace {
		return rel
	}
	name := strings.TrimSuffix(rel, path.Ext(rel)) + p.Config.Suffix
	if p.Config.Output != "" {
		return path.Join(filepath.ToSlash(p.Config.Output), name)
	}
	return name
}

// Excludes returns the configured excludes plus patterns covering files
// this processor writes, so outputs are never fed back in as sources.
func (p *Processor) Excludes() []string {
	excludes := append([]string(nil), p.Config.Exclude...)
	if p.Config.InPlace {
		return excludes
	}
	if p.Config.Output != "" {
		return append(excludes, filepath.ToSlash(p.Config.Output))
	}
	return append(excludes, "*"+p.Config.Suffix)
}

// Matches reports whether rel is a source this processor would pick up.
func (p *Processor) Matches(rel string) bool {
	return files.Match(rel, p.Config.Include, p.Excludes())
}

// Transform applies the configured mode and engine to source. When the
// aggressive engine rejects the input the lexical result is used instead.
func (p *Processor) Transform(name, source string) string {
	out, err := stylesheet.Transform(p.Config.Mode, p.Config.Engine, source)
	if err == nil {
		return out
	}
	p.Logger.Warn("transform failed, using lexical engine", "file", name, "error", err)
	if !p.Quiet {
		ui.PrintWarning("%s: %v; falling back to lexical %s", name, err, p.Config.Mode)
	}
	fallback, _ := stylesheet.Transform(p.Config.Mode, stylesheet.EngineLexical, source)
	return fallback
}

// ProcessFile transforms one source file. The target is only written when
// its content would change.
func (p *Processor) ProcessFile(ctx context.Context, rel string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	target := p.TargetPath(rel)
	result := Result{Source: rel, Target: target}

	srcPath := filepath.Join(p.BaseDir, filepath.FromSlash(rel))
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", rel, err)
	}

	out := []byte(p.Transform(rel, string(content)))
	result.Before = int64(len(content))
	result.After = int64(len(out))

	dstPath := filepath.Join(p.BaseDir, filepath.FromSlash(target))
	existing, err := os.ReadFile(dstPath)
	if err == nil && bytes.Equal(existing, out) {
		p.Logger.Debug("unchanged", "file", rel, "target", target)
		return result, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return result, fmt.Errorf("failed to read %s: %w", target, err)
	}

	if err := WriteFile(dstPath, out); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", target, err)
	}
	result.Changed = true
	p.Logger.Debug("wrote", "file", rel, "target", target, "before", result.Before, "after", result.After)
	return result, nil
}

// Run processes every selected file. The first error stops the run.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	sources, err := files.ExpandIncludes(p.BaseDir, p.Config.Include, p.Excludes())
	if err != nil {
		return Summary{}, fmt.Errorf("failed to expand include patterns: %w", err)
	}
	if len(sources) == 0 && !p.Quiet {
		ui.PrintWarning("No stylesheets matched %s", strings.Join(p.Config.Include, ", "))
	}
	return p.RunFiles(ctx, sources)
}

// RunFiles processes the given sources, relative to BaseDir.
func (p *Processor) RunFiles(ctx context.Context, sources []string) (Summary, error) {
	var summary Summary
	for _, rel := range sources {
		r, err := p.ProcessFile(ctx, rel)
		if err != nil {
			return summary, err
		}
		summary.Add(r)
		if r.Changed && !p.Quiet {
			ui.PrintInfo("%s → %s (%s → %s)", r.Source, r.Target, ui.Size(r.Before), ui.Size(r.After))
		}
	}
	return summary, nil
}

// WriteFile writes data to name, creating parent directories.
func WriteFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0644)
}
