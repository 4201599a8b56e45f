// Package config loads the optional YAML configuration of the asset generator.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/brandassets/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration at path. When path does not exist and
// required is false the defaults are returned. ${VAR} references are expanded
// from the environment before parsing, and relative paths are anchored to the
// file's directory.
func Load(path string, required bool) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return Default(), nil
	}
	if err != nil {
		return nil, ferrors.ConfigError("failed to read config file").
			WithContext("path", path).
			WithCause(err).
			Build()
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, ferrors.ConfigError("invalid configuration").
			WithContext("path", path).
			WithCause(err).
			Build()
	}
	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, ferrors.ConfigError("cannot resolve config directory").
			WithContext("path", path).
			WithCause(err).
			Build()
	}
	cfg.ResolvePaths(base)
	return cfg, nil
}

// ResolvePaths makes every relative path in cfg relative to base, the
// directory of the file it was loaded from.
func (cfg *Config) ResolvePaths(base string) {
	for _, p := range []*string{
		&cfg.Output.Directory,
		&cfg.Inputs.ScriptDir,
		&cfg.Inputs.AssetsDir,
		&cfg.Inputs.Thumbnail,
		&cfg.Inputs.Light,
		&cfg.Inputs.Dark,
		&cfg.Manifest.Path,
		&cfg.Metrics.Textfile,
	} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

// Parse decodes, defaults and validates configuration bytes.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}
