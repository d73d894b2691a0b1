package stylesheet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMode   = errors.New("unknown mode")
	ErrUnknownEngine = errors.New("unknown engine")
)

// Mode selects which transform to run.
type Mode string

const (
	ModeMinify Mode = "minify"
	ModeFormat Mode = "format"
)

// Engine selects the implementation behind a Mode.
type Engine string

const (
	EngineLexical    Engine = "lexical"
	EngineReference  Engine = "reference"
	EngineAggressive Engine = "aggressive"
)

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMinify, "min":
		return ModeMinify, nil
	case ModeFormat, "fmt", "beautify":
		return ModeFormat, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ParseEngine parses an engine name. An empty name selects EngineLexical.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(s))) {
	case "", EngineLexical:
		return EngineLexical, nil
	case EngineReference:
		return EngineReference, nil
	case EngineAggressive:
		return EngineAggressive, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEngine, s)
}

// Pipeline returns the lexical pipeline backing e. The aggressive engine
// formats with the Default pipeline.
func (e Engine) Pipeline() *Pipeline {
	if e == EngineReference {
		return Reference
	}
	return Default
}

// Transform applies mode using engine. Only the aggressive minifier can
// return an error; formatting is always lexical.
func Transform(mode Mode, engine Engine, source string) (string, error) {
	switch mode {
	case ModeMinify:
		if engine == EngineAggressive {
			return MinifyAggressive(source)
		}
		return engine.Pipeline().Minify(source), nil
	case ModeFormat:
		return engine.Pipeline().Format(source), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}
