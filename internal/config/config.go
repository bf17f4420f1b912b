// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/darktheme/internal/system"
)

// Default configuration values.
const (
	DefaultOutputFormat  = "plain"
	DefaultSystemTimeout = "2s"
)

// Config represents the darktheme configuration.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	System SystemConfig `toml:"system"`
	Output OutputConfig `toml:"output"`
	TUI    TUIConfig    `toml:"tui"`
}

// StoreConfig holds preference storage settings.
type StoreConfig struct {
	Path string `toml:"path"` // Empty = $XDG_DATA_HOME/darktheme/state.json
}

// SystemConfig holds system preference detection settings.
type SystemConfig struct {
	Detectors []string `toml:"detectors"` // Queried in order: env, portal, gsettings, terminal
	Timeout   string   `toml:"timeout"`   // Per-detector timeout
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	Format string `toml:"format"` // plain, json, yaml
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowHelp bool `toml:"show_help"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "",
		},
		System: SystemConfig{
			Detectors: append([]string(nil), system.DefaultDetectorNames...),
			Timeout:   DefaultSystemTimeout,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		TUI: TUIConfig{
			ShowHelp: true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "darktheme", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	if _, err := c.SystemTimeout(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "", "plain", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q (want plain, json or yaml)", c.Output.Format)
	}
	for _, name := range c.System.Detectors {
		if _, err := system.NewDetector(name, nil); err != nil {
			return err
		}
	}
	return nil
}

// SystemTimeout returns the parsed per-detector timeout.
func (c *Config) SystemTimeout() (time.Duration, error) {
	if c.System.Timeout == "" {
		return system.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.System.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid system timeout %q: %w", c.System.Timeout, err)
	}
	return d, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
