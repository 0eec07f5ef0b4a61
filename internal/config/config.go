// Package config loads the omegactl configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config holds all omegactl configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Input   InputConfig   `yaml:"input"`
	Render  RenderConfig  `yaml:"render"`
}

// InputConfig configures how HOA input is read.
type InputConfig struct {
	// DeterministicOnly skips automata that are not deterministic.
	DeterministicOnly bool `yaml:"deterministic_only"`
}

// RenderConfig configures graph output.
type RenderConfig struct {
	Format    string `yaml:"format"`    // dot, mermaid
	Direction string `yaml:"direction"` // LR, RL, TB, BT
}

// ValidFormats lists the supported render formats.
var ValidFormats = []string{"dot", "mermaid"}

// ValidDirections lists the supported layout directions.
var ValidDirections = []string{"LR", "RL", "TB", "BT"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "warn",
		},
		Render: RenderConfig{
			Format:    "dot",
			Direction: "LR",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("OMEGA_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	if !slices.Contains(ValidFormats, c.Render.Format) {
		return fmt.Errorf("invalid render format: %s (valid: %v)", c.Render.Format, ValidFormats)
	}
	if !slices.Contains(ValidDirections, c.Render.Direction) {
		return fmt.Errorf("invalid render direction: %s (valid: %v)", c.Render.Direction, ValidDirections)
	}
	return nil
}
