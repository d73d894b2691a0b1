// Package watch reports batches of changed files under a set of directories.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"cssmith/internal/logging"
)

const DefaultDebounce = 300 * time.Millisecond

// Watcher watches Dirs recursively and calls OnChange with every changed
// file accepted by Match once Debounce has passed without further events.
type Watcher struct {
	Dirs     []string
	Debounce time.Duration
	Match    func(path string) bool
	OnChange func(paths []string)
	// OnReady, if set, is called once every directory is being watched.
	OnReady func()
	Logger  *slog.Logger
}

// Run blocks until ctx is cancelled. It returns an error only if the
// watcher cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	pending := make(map[string]bool)
	for _, dir := range w.Dirs {
		if err := w.addTree(fw, dir, nil); err != nil {
			return err
		}
	}
	if w.OnReady != nil {
		w.OnReady()
	}

	var flush <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			logger.Debug("fs event", "op", ev.Op.String(), "path", ev.Name)
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
				// Files written before the new directory was added would
				// otherwise be missed.
				if err := w.addTree(fw, ev.Name, pending); err != nil {
					logger.Warn("failed to watch directory", "path", ev.Name, "error", err)
				}
			} else if w.accept(ev.Name) {
				pending[ev.Name] = true
			}

			if len(pending) > 0 {
				flush = time.After(debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case <-flush:
			flush = nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			pending = make(map[string]bool)
			if len(paths) > 0 && w.OnChange != nil {
				w.OnChange(paths)
			}
		}
	}
}

func (w *Watcher) accept(path string) bool {
	return w.Match == nil || w.Match(path)
}

// addTree watches root and every non-hidden directory below it. When
// pending is non-nil, accepted files found on the way are recorded.
func (w *Watcher) addTree(fw *fsnotify.Watcher, root string, pending map[string]bool) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if err := fw.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			return nil
		}
		if pending != nil && w.accept(path) {
			pending[path] = true
		}
		return nil
	})
}
