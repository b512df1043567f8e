package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = "config.yml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = fmt.Errorf("%w: configuration file not found", ErrInvalidConfig)

// LoadConfigFile loads a Config from a YAML file.
// Keys absent from the file keep their defaults. Relative paths are resolved
// against the directory holding the file, so a run does not depend on the
// working directory.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.ConfigFilePath = path
	cfg.resolvePaths(filepath.Dir(path))

	return cfg, nil
}

// Parse decodes YAML configuration content on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// resolvePaths makes relative paths relative to base.
func (c *Config) resolvePaths(base string) {
	for i, f := range c.SourceFiles {
		c.SourceFiles[i] = resolve(base, f)
	}
	c.TagFile = resolve(base, c.TagFile)
	c.CompiledDirectory = resolve(base, c.CompiledDirectory)
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for config.yml in the current directory
// 3. Look for config.yml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
