package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Properties is a flat key/value view of a cssmith.properties file.
type Properties map[string]string

// ParseProperties reads a properties file from disk.
func ParseProperties(path string) (Properties, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	props, err := ReadProperties(file)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return props, nil
}

// ReadProperties parses key=value and key: value lines. Blank lines and
// lines starting with # or ! are skipped.
func ReadProperties(r io.Reader) (Properties, error) {
	props := make(Properties)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		idx := strings.IndexAny(line, "=:")
		if idx == -1 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		props[key] = strings.TrimSpace(line[idx+1:])
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return props, nil
}

// Get returns the value for a key, or empty string if not found
func (p Properties) Get(key string) string {
	return p[key]
}

// GetBool returns true unless the value is empty, "false", "no", or "0"
func (p Properties) GetBool(key string) bool {
	switch strings.ToLower(p[key]) {
	case "", "false", "no", "0", "off":
		return false
	}
	return true
}

// GetList splits a comma-separated value, dropping empty items
func (p Properties) GetList(key string) []string {
	var result []string
	for _, item := range strings.Split(p[key], ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
