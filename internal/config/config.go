// Package config loads the cssmith project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cssmith/internal/stylesheet"
)

const (
	YAMLFile       = "cssmith.yaml"
	PropertiesFile = "cssmith.properties"
)

var ErrNotFound = errors.New("no cssmith.yaml or cssmith.properties found")

// Config describes which stylesheets to process and where results go.
type Config struct {
	Mode    stylesheet.Mode   `yaml:"mode"`
	Engine  stylesheet.Engine `yaml:"engine"`
	Include []string          `yaml:"include"`
	Exclude []string          `yaml:"exclude,omitempty"`
	Output  string            `yaml:"output,omitempty"`
	Suffix  string            `yaml:"suffix,omitempty"`
	InPlace bool              `yaml:"in-place,omitempty"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `yaml:"-"`
}

// Default returns a config that minifies every .css file beside itself.
func Default() *Config {
	cfg := &Config{
		Mode:    stylesheet.ModeMinify,
		Engine:  stylesheet.EngineLexical,
		Include: []string{"**/*.css"},
	}
	cfg.applyDefaults()
	return cfg
}

// Exists reports whether dir holds a cssmith config file.
func Exists(dir string) bool {
	for _, name := range []string{YAMLFile, PropertiesFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// Load reads cssmith.yaml from dir, falling back to cssmith.properties.
func Load(dir string) (*Config, error) {
	yamlPath := filepath.Join(dir, YAMLFile)
	if data, err := os.ReadFile(yamlPath); err == nil {
		cfg, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", yamlPath, err)
		}
		cfg.Path = yamlPath
		return cfg, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", yamlPath, err)
	}

	propsPath := filepath.Join(dir, PropertiesFile)
	if _, err := os.Stat(propsPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w in %s", ErrNotFound, dir)
	}
	props, err := ParseProperties(propsPath)
	if err != nil {
		return nil, err
	}
	cfg, err := FromProperties(props)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", propsPath, err)
	}
	cfg.Path = propsPath
	return cfg, nil
}

// ParseYAML decodes a cssmith.yaml document. Unknown keys are rejected.
func ParseYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromProperties builds a config from a parsed properties file.
func FromProperties(props Properties) (*Config, error) {
	cfg := &Config{
		Mode:    stylesheet.Mode(props.Get("mode")),
		Engine:  stylesheet.Engine(props.Get("engine")),
		Include: props.GetList("include"),
		Exclude: props.GetList("exclude"),
		Output:  props.Get("output"),
		Suffix:  props.Get("suffix"),
		InPlace: props.GetBool("in-place"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes mode and engine names and fills in defaults.
func (c *Config) Validate() error {
	if c.Mode == "" {
		c.Mode = stylesheet.ModeMinify
	}
	mode, err := stylesheet.ParseMode(string(c.Mode))
	if err != nil {
		return err
	}
	c.Mode = mode

	engine, err := stylesheet.ParseEngine(string(c.Engine))
	if err != nil {
		return err
	}
	if engine == stylesheet.EngineAggressive && mode == stylesheet.ModeFormat {
		return fmt.Errorf("engine %q only supports mode %q", engine, stylesheet.ModeMinify)
	}
	c.Engine = engine

	if !c.InPlace && c.Suffix != "" && !strings.HasPrefix(c.Suffix, ".") {
		return fmt.Errorf("suffix %q must start with a dot", c.Suffix)
	}

	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if len(c.Include) == 0 {
		c.Include = []string{"**/*.css"}
	}
	if c.Suffix == "" {
		c.Suffix = defaultSuffix(c.Mode)
	}
}

func defaultSuffix(mode stylesheet.Mode) string {
	if mode == stylesheet.ModeFormat {
		return ".fmt.css"
	}
	return ".min.css"
}

// Override replaces mode and engine when non-empty and re-validates. A
// suffix left at the old mode's default follows the new mode.
func (c *Config) Override(mode, engine string) error {
	if mode != "" {
		if c.Suffix == defaultSuffix(c.Mode) {
			c.Suffix = ""
		}
		c.Mode = stylesheet.Mode(mode)
	}
	if engine != "" {
		c.Engine = stylesheet.Engine(engine)
	}
	return c.Validate()
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
