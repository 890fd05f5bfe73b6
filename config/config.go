// Package config loads and persists the trendyrepo configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration. The GitHub token is never
// stored here; it is read from the environment only.
type Config struct {
	DefaultFormat   string `yaml:"default_format,omitempty"`   // table, json
	DefaultWindow   string `yaml:"default_window,omitempty"`   // daily, weekly, monthly
	DefaultLanguage string `yaml:"default_language,omitempty"` // e.g. go, rust; empty = all
}

// DefaultConfigDir returns the directory where the config file is stored
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".trendyrepo"
	}
	return filepath.Join(configDir, "trendyrepo")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".trendyrepo.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config from the user config directory, then
// merges any local .trendyrepo.yaml on top (local values take precedence).
func Load() (*Config, error) {
	// Start with defaults
	cfg := &Config{
		DefaultFormat: "table",
		DefaultWindow: "weekly",
	}

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}

		var local Config
		if err := yaml.Unmarshal(data, &local); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}
		cfg.merge(&local)
	}

	return cfg, nil
}

// merge overlays non-empty values from other onto c.
func (c *Config) merge(other *Config) {
	if other.DefaultFormat != "" {
		c.DefaultFormat = other.DefaultFormat
	}
	if other.DefaultWindow != "" {
		c.DefaultWindow = other.DefaultWindow
	}
	if other.DefaultLanguage != "" {
		c.DefaultLanguage = other.DefaultLanguage
	}
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configDir := DefaultConfigDir()

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetGitHubToken returns the GitHub token from the GITHUB_TOKEN environment
// variable. Following 12-factor practice, tokens are only read from the
// environment, never from config files.
func (c *Config) GetGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// SetDefaultFormat sets the default output format and saves
func (c *Config) SetDefaultFormat(format string) error {
	c.DefaultFormat = format
	return c.Save()
}

// SetDefaultWindow sets the default time window and saves
func (c *Config) SetDefaultWindow(window string) error {
	c.DefaultWindow = window
	return c.Save()
}

// SetDefaultLanguage sets the default language filter and saves
func (c *Config) SetDefaultLanguage(language string) error {
	c.DefaultLanguage = language
	return c.Save()
}

// ToYAML renders the configuration as YAML for display.
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
