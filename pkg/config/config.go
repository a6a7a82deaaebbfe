// Package config loads strmatch defaults from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/praetorian-inc/strmatch/pkg/selector"
	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Command-line flags override every field.
type Config struct {
	Strategy string `yaml:"strategy"`  // score, heuristic or all
	Format   string `yaml:"format"`    // human, json or table
	Color    string `yaml:"color"`     // auto, always or never
	Workers  int    `yaml:"workers"`   // suite worker pool size (0 = NumCPU)
	Parallel bool   `yaml:"parallel"`  // run engines concurrently when all run
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Strategy: selector.DefaultStrategy,
		Format:   "human",
		Color:    "auto",
		Workers:  0,
		Parallel: false,
		LogLevel: "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/strmatch/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "strmatch", "config.yaml")
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	return LoadFromFile(DefaultPath())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if _, err := selector.ByName(c.Strategy); err != nil {
		return err
	}
	if !isValidFormat(c.Format) {
		return fmt.Errorf("format must be human, json, or table (got: %s)", c.Format)
	}
	if !isValidColor(c.Color) {
		return fmt.Errorf("color must be auto, always, or never (got: %s)", c.Color)
	}
	if c.Workers < 0 {
		return errors.New("workers must be >= 0")
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("log_level must be debug, info, warn, or error (got: %s)", c.LogLevel)
	}
	return nil
}

// ApplyEnvOverrides applies STRMATCH_* environment variables. Invalid
// values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("STRMATCH_STRATEGY"); v != "" {
		if _, err := selector.ByName(v); err == nil {
			c.Strategy = v
		}
	}
	if v := os.Getenv("STRMATCH_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.LogLevel = v
		}
	}
	if v := os.Getenv("STRMATCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Workers = n
		}
	}
}

func isValidFormat(format string) bool {
	switch format {
	case "human", "json", "table":
		return true
	default:
		return false
	}
}

func isValidColor(mode string) bool {
	switch mode {
	case "auto", "always", "never":
		return true
	default:
		return false
	}
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
