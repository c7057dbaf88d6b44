// Package config loads platformprobe configuration from YAML.
//
// Configuration only affects the probing subcommands; the bare invocation
// that reports the C library version consumes no configuration at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CacheConfig controls the probe result cache.
type CacheConfig struct {
	// Enabled turns the cache on for probing subcommands.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database location.
	Path string `yaml:"path"`

	// TTL is how long a cached probe result stays valid.
	TTL time.Duration `yaml:"ttl"`
}

// Config represents platformprobe configuration options.
type Config struct {
	// LogLevel sets diagnostic verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Format is the default report output format (text, json, yaml, markdown).
	Format string `yaml:"format"`

	// Cache contains probe cache configuration.
	Cache CacheConfig `yaml:"cache"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Format:   "text",
		Cache: CacheConfig{
			Enabled: true,
			Path:    defaultCachePath(),
			TTL:     24 * time.Hour,
		},
	}
}

// defaultCachePath places the probe database under the user cache
// directory, falling back to a dotted directory in cwd when the OS gives
// us nothing.
func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".platformprobe", "probe.db")
	}
	return filepath.Join(dir, "platformprobe", "probe.db")
}

// DefaultPaths returns the config search order: the working directory
// first, then the user config directory.
func DefaultPaths() []string {
	paths := []string{".platformprobe.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "platformprobe", "config.yaml"))
	}
	return paths
}

// Load finds and loads configuration from the default search paths.
// With no config file anywhere, defaults are returned without error.
func Load() (*Config, error) {
	for _, path := range DefaultPaths() {
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}
	}
	return DefaultConfig(), nil
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// TTL comes in as a duration string ("24h", "30m"), so parse through a
	// shadow struct before merging.
	type yamlCacheConfig struct {
		Enabled *bool  `yaml:"enabled"`
		Path    string `yaml:"path"`
		TTL     string `yaml:"ttl"`
	}
	type yamlConfig struct {
		LogLevel string          `yaml:"log_level"`
		Format   string          `yaml:"format"`
		Cache    yamlCacheConfig `yaml:"cache"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}
	if yamlCfg.Cache.Enabled != nil {
		cfg.Cache.Enabled = *yamlCfg.Cache.Enabled
	}
	if yamlCfg.Cache.Path != "" {
		cfg.Cache.Path = yamlCfg.Cache.Path
	}
	if yamlCfg.Cache.TTL != "" {
		ttl, err := time.ParseDuration(yamlCfg.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("invalid cache ttl %q: %w", yamlCfg.Cache.TTL, err)
		}
		cfg.Cache.TTL = ttl
	}

	return cfg, nil
}
