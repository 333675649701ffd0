// Package config loads plugman configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// PathsConfig holds path configuration.
type PathsConfig struct {
	PluginsDir string `toml:"plugins_dir"`
	LogsDir    string `toml:"logs_dir"`
}

// DefaultsConfig holds default values.
type DefaultsConfig struct {
	// Marketplace is the marketplace assumed when an install reference
	// omits the "@marketplace" suffix.
	Marketplace string `toml:"marketplace"`

	// Target is the harness used when skill commands omit --target.
	Target string `toml:"target"`
}

// CacheConfig holds marketplace cache settings.
type CacheConfig struct {
	// TTL is how long a cached marketplace clone counts as fresh.
	TTL time.Duration `toml:"ttl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
	File   string    `toml:"file"`
}

// Config is the main configuration struct for plugman.
type Config struct {
	Version  string         `toml:"version"`
	Paths    PathsConfig    `toml:"paths"`
	Defaults DefaultsConfig `toml:"defaults"`
	Cache    CacheConfig    `toml:"cache"`
	Logging  LoggingConfig  `toml:"logging"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Version: "1",
		Paths: PathsConfig{
			PluginsDir: ".plugman/plugins",
			LogsDir:    ".plugman/logs",
		},
		Defaults: DefaultsConfig{
			Marketplace: "",
			Target:      "claude",
		},
		Cache: CacheConfig{
			TTL: time.Hour,
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
			File:   "",
		},
	}
}

// Load loads configuration from file, merging with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from the standard locations in a directory.
// Applies in order: defaults -> ~/.plugman/config.toml -> .plugman/config.toml
// Later configs override earlier ones (project-level takes precedence).
func LoadFromDir(dir string) (*Config, error) {
	cfg := Default()

	// Load global config first (if exists)
	home, err := os.UserHomeDir()
	if err == nil {
		globalConfig := filepath.Join(home, ".plugman", "config.toml")
		if data, err := os.ReadFile(globalConfig); err == nil {
			if _, err := toml.Decode(string(data), cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		}
	}

	// Load project config (overrides global)
	projectConfig := filepath.Join(dir, ".plugman", "config.toml")
	if data, err := os.ReadFile(projectConfig); err == nil {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing project config: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("config version is required")
	}
	if c.Paths.PluginsDir == "" {
		return fmt.Errorf("plugins_dir is required")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive")
	}
	return nil
}

// PluginsDir returns the absolute plugins directory path.
func (c *Config) PluginsDir(baseDir string) string {
	if filepath.IsAbs(c.Paths.PluginsDir) {
		return c.Paths.PluginsDir
	}
	return filepath.Join(baseDir, c.Paths.PluginsDir)
}

// LogsDir returns the absolute logs directory path.
func (c *Config) LogsDir(baseDir string) string {
	if filepath.IsAbs(c.Paths.LogsDir) {
		return c.Paths.LogsDir
	}
	return filepath.Join(baseDir, c.Paths.LogsDir)
}

// LogFile returns the absolute log file path, or "" if file logging is off.
func (c *Config) LogFile(baseDir string) string {
	if c.Logging.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Logging.File) {
		return c.Logging.File
	}
	return filepath.Join(c.LogsDir(baseDir), c.Logging.File)
}
