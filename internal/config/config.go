// Package config loads the front end's run-time options from a YAML
// file: verbosity, emit-on-success, and the REPL's history path.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures one compilation or REPL session.
type Options struct {
	Verbose     bool   `yaml:"verbose"`
	Emit        bool   `yaml:"emit"`
	HistoryFile string `yaml:"history_file"`
}

// Defaults returns the options used when no config file is given.
func Defaults() Options {
	return Options{
		Verbose:     false,
		Emit:        false,
		HistoryFile: ".tscfront_history",
	}
}

// Load reads path and unmarshals it over Defaults(), so a config file
// need only mention the fields it overrides. A missing file is not an
// error — it yields the defaults, so callers can pass an optional
// --config flag unconditionally.
func Load(path string) (Options, error) {
	opts := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return opts, nil
}
