package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssmith/internal/stylesheet"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, stylesheet.ModeMinify, cfg.Mode)
	assert.Equal(t, stylesheet.EngineLexical, cfg.Engine)
	assert.Equal(t, []string{"**/*.css"}, cfg.Include)
	assert.Equal(t, ".min.css", cfg.Suffix)
	assert.False(t, cfg.InPlace)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, `
mode: format
engine: reference
include:
  - styles/**/*.css
exclude:
  - vendor/**
output: dist
`)

	require.True(t, Exists(dir))
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, stylesheet.ModeFormat, cfg.Mode)
	assert.Equal(t, stylesheet.EngineReference, cfg.Engine)
	assert.Equal(t, []string{"styles/**/*.css"}, cfg.Include)
	assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)
	assert.Equal(t, "dist", cfg.Output)
	assert.Equal(t, ".fmt.css", cfg.Suffix)
	assert.Equal(t, filepath.Join(dir, YAMLFile), cfg.Path)
}

func TestLoadYAMLRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, "mode: minify\nindent: 2\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent")
}

func TestLoadEmptyYAMLUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, "\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, stylesheet.ModeMinify, cfg.Mode)
	assert.Equal(t, []string{"**/*.css"}, cfg.Include)
}

func TestLoadProperties(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PropertiesFile, "mode=minify\nengine=aggressive\ninclude=css/*.css\nin-place=yes\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, stylesheet.EngineAggressive, cfg.Engine)
	assert.Equal(t, []string{"css/*.css"}, cfg.Include)
	assert.True(t, cfg.InPlace)
	assert.Equal(t, filepath.Join(dir, PropertiesFile), cfg.Path)
}

func TestLoadPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, "mode: format\n")
	writeFile(t, dir, PropertiesFile, "mode=minify\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, stylesheet.ModeFormat, cfg.Mode)
}

func TestLoadNotFound(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Exists(dir))

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"unknown mode", Config{Mode: "squash"}, stylesheet.ErrUnknownMode},
		{"unknown engine", Config{Engine: "yui"}, stylesheet.ErrUnknownEngine},
		{"aggressive format", Config{Mode: "format", Engine: "aggressive"}, nil},
		{"bad suffix", Config{Suffix: "min.css"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Exclude = []string{"vendor/**"}

	data, err := cfg.Marshal()
	require.NoError(t, err)

	parsed, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestOverride(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Override("format", ""))
	assert.Equal(t, stylesheet.ModeFormat, cfg.Mode)
	assert.Equal(t, ".fmt.css", cfg.Suffix)

	cfg = &Config{Suffix: ".out.css"}
	require.NoError(t, cfg.Validate())
	require.NoError(t, cfg.Override("format", "reference"))
	assert.Equal(t, ".out.css", cfg.Suffix)
	assert.Equal(t, stylesheet.EngineReference, cfg.Engine)

	cfg = Default()
	assert.ErrorIs(t, cfg.Override("", "closure"), stylesheet.ErrUnknownEngine)
}
