package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the user config and the project config, in that order,
// then applies environment overrides and validates the result.
func Load() (*Config, error) {
	userPath, err := GetConfigFilePath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(userPath, ProjectFile)
}

// LoadFrom is Load with explicit layer paths
func LoadFrom(paths ...string) (*Config, error) {
	cfg, err := LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// SaveConfig writes cfg to path as YAML using an atomic rename.
// An existing file is kept as path.bak.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to temporary file first
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp config file: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		// Best effort; the rename below still replaces the file
		_ = os.Rename(path, path+".bak")
	}

	if err := os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("failed to rename temp config file: %w", err)
	}

	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Docker *rawDocker `yaml:"docker"`
	UI     *rawUI     `yaml:"ui"`
	Log    *rawLog    `yaml:"log"`
}

type rawDocker struct {
	Binary  *string        `yaml:"binary"`
	Timeout *time.Duration `yaml:"timeout"`
}

type rawUI struct {
	DetailPrefetch  *int           `yaml:"detail_prefetch"`
	RefreshInterval *time.Duration `yaml:"refresh_interval"`
}

type rawLog struct {
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Docker != nil {
		if layer.Docker.Binary != nil {
			c.Docker.Binary = *layer.Docker.Binary
		}
		if layer.Docker.Timeout != nil {
			c.Docker.Timeout = *layer.Docker.Timeout
		}
	}
	if layer.UI != nil {
		if layer.UI.DetailPrefetch != nil {
			c.UI.DetailPrefetch = *layer.UI.DetailPrefetch
		}
		if layer.UI.RefreshInterval != nil {
			c.UI.RefreshInterval = *layer.UI.RefreshInterval
		}
	}
	if layer.Log != nil && layer.Log.Level != nil {
		c.Log.Level = *layer.Log.Level
	}
}
