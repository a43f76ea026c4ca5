// Package config holds phonereport configuration: where the directory
// service lives, which categories to report on, and how to write the output.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all phonereport configuration.
type Config struct {
	Directory DirectoryConfig `yaml:"directory"`
	Report    ReportConfig    `yaml:"report"`
}

// DirectoryConfig configures the directory service connection. The token is
// a pre-issued bearer credential; phonereport does not perform any
// authentication flow itself.
type DirectoryConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

// ReportConfig configures report content and output.
type ReportConfig struct {
	Format           string `yaml:"format"`
	Output           string `yaml:"output"`
	Users            bool   `yaml:"users"`
	MeetingRooms     bool   `yaml:"meeting_rooms"`
	ResourceAccounts bool   `yaml:"resource_accounts"`
}

// DefaultConfig returns the default configuration: all categories enabled,
// console table output.
func DefaultConfig() *Config {
	return &Config{
		Directory: DirectoryConfig{
			BaseURL: "https://directory.local/v1.0",
		},
		Report: ReportConfig{
			Format:           "table",
			Users:            true,
			MeetingRooms:     true,
			ResourceAccounts: true,
		},
	}
}

// Load reads configuration from path, falling back to defaults when the file
// does not exist. Environment variables override file values either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PHONEREPORT_BASE_URL"); v != "" {
		c.Directory.BaseURL = v
	}
	if v := os.Getenv("PHONEREPORT_TOKEN"); v != "" {
		c.Directory.Token = v
	}
}
