// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ProjectFile is the per-directory config layered over the user config
const ProjectFile = ".dnet.yaml"

// Config holds all dnet configuration.
type Config struct {
	Docker Docker `yaml:"docker"`
	UI     UI     `yaml:"ui"`
	Log    Log    `yaml:"log"`
}

// Docker holds CLI execution settings.
type Docker struct {
	Binary  string        `yaml:"binary"`
	Timeout time.Duration `yaml:"timeout"` // deadline for one user action
}

// UI holds view settings.
type UI struct {
	DetailPrefetch  int           `yaml:"detail_prefetch"`  // rows inspected after each refresh
	RefreshInterval time.Duration `yaml:"refresh_interval"` // 0 disables auto-refresh
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Docker: Docker{
			Binary:  "docker",
			Timeout: 30 * time.Second,
		},
		UI: UI{
			DetailPrefetch: 20,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Docker.Binary == "" {
		return errors.New("config: docker.binary cannot be empty")
	}
	if c.Docker.Timeout <= 0 {
		return fmt.Errorf("config: docker.timeout must be positive, got %v", c.Docker.Timeout)
	}
	if c.UI.DetailPrefetch < 0 {
		return fmt.Errorf("config: ui.detail_prefetch must be non-negative, got %d", c.UI.DetailPrefetch)
	}
	if c.UI.RefreshInterval < 0 {
		return fmt.Errorf("config: ui.refresh_interval must be non-negative, got %v", c.UI.RefreshInterval)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: DNET_DOCKER_BINARY, DNET_TIMEOUT, DNET_DETAIL_PREFETCH, DNET_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DNET_DOCKER_BINARY"); v != "" {
		c.Docker.Binary = v
	}
	if v := os.Getenv("DNET_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid DNET_TIMEOUT %q: %w", v, err)
		}
		c.Docker.Timeout = d
	}
	if v := os.Getenv("DNET_DETAIL_PREFETCH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid DNET_DETAIL_PREFETCH %q: %w", v, err)
		}
		c.UI.DetailPrefetch = n
	}
	if v := os.Getenv("DNET_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// GetConfigDir returns the configuration directory path
// Priority: DNET_CONFIG_PATH > $HOME/.config/dnet > $HOME/.dnet
func GetConfigDir() (string, error) {
	// Check environment variable first
	if configPath := os.Getenv("DNET_CONFIG_PATH"); configPath != "" {
		return configPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Try XDG config directory first
	configDir := filepath.Join(home, ".config", "dnet")
	if _, err := os.Stat(configDir); err == nil {
		return configDir, nil
	}

	// Check if legacy directory exists
	legacyDir := filepath.Join(home, ".dnet")
	if _, err := os.Stat(legacyDir); err == nil {
		return legacyDir, nil
	}

	return configDir, nil
}

// GetConfigFilePath returns the full path to the user config file
func GetConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.yaml"), nil
}
