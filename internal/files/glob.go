// Package files resolves include/exclude glob patterns to stylesheet paths.
package files

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandGlob returns the regular files under baseDir matching pattern, as
// slash-separated paths relative to baseDir. A pattern naming a directory
// selects every .css file below it.
func ExpandGlob(baseDir, pattern string) ([]string, error) {
	pattern = normalize(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	if !containsGlobChars(pattern) {
		info, err := os.Stat(filepath.Join(baseDir, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, nil
		}
		if !info.IsDir() {
			return []string{pattern}, nil
		}
		pattern = path.Join(pattern, "**", "*.css")
	}

	matches, err := doublestar.Glob(os.DirFS(baseDir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
	}
	return matches, nil
}

// IsExcluded reports whether path matches any exclude pattern, either as a
// whole, by base name, or as a file inside an excluded directory.
func IsExcluded(p string, excludes []string) bool {
	p = filepath.ToSlash(p)
	for _, pattern := range excludes {
		if matchPattern(p, normalize(pattern)) {
			return true
		}
	}
	return false
}

func matchPattern(p, pattern string) bool {
	if ok, _ := doublestar.Match(pattern, p); ok {
		return true
	}
	if ok, _ := doublestar.Match(pattern, path.Base(p)); ok {
		return true
	}
	ok, _ := doublestar.Match(pattern+"/**", p)
	return ok
}

// ExpandIncludes expands every include pattern, drops excluded paths, and
// returns the unique results in lexical order.
func ExpandIncludes(baseDir string, includes []string, excludes []string) ([]string, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(normalize(pattern)) {
			return nil, fmt.Errorf("invalid exclude %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	seen := make(map[string]bool)
	var results []string

	for _, pattern := range includes {
		expanded, err := ExpandGlob(baseDir, pattern)
		if err != nil {
			return nil, err
		}

		for _, p := range expanded {
			if seen[p] || IsExcluded(p, excludes) {
				continue
			}
			seen[p] = true
			results = append(results, p)
		}
	}

	sort.Strings(results)
	return results, nil
}

func normalize(pattern string) string {
	pattern = filepath.ToSlash(strings.TrimSpace(pattern))
	if pattern == "" {
		return pattern
	}
	return strings.TrimPrefix(path.Clean(pattern), "/")
}

func containsGlobChars(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// Match reports whether a slash-separated relative path would be selected
// by ExpandIncludes, without touching the filesystem.
func Match(p string, includes []string, excludes []string) bool {
	p = filepath.ToSlash(p)
	if IsExcluded(p, excludes) {
		return false
	}
	for _, pattern := range includes {
		pattern = normalize(pattern)
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
		if !containsGlobChars(pattern) {
			if ok, _ := doublestar.Match(path.Join(pattern, "**", "*.css"), p); ok {
				return true
			}
		}
	}
	return false
}
