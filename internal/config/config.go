// Package config provides configuration management for forhonor.
//
// Values are resolved in this order, later sources winning:
//  1. built-in defaults
//  2. the config file
//  3. FORHONOR_* environment variables
//  4. command line flags (applied by cmd/forhonor)
//
// Config file locations (priority order, see SearchPaths):
//  1. $FORHONOR_CONFIG
//  2. ./forhonor.yaml
//  3. $XDG_CONFIG_HOME/forhonor/config.yaml
//  4. ~/.config/forhonor/config.yaml
//  5. /etc/forhonor/config.yaml
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDatabasePath is relative to the working directory
	DefaultDatabasePath = "data/honor.db"
	DefaultFormat       = "table"
	DefaultSummaryWidth = 50
)

var validFormats = []string{"table", "json", "yaml"}

// Load finds and loads the config file, or returns defaults if none found.
// Environment overrides are applied in both cases.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		if err := cfg.applyEnv(); err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Database: DatabaseConfig{Path: DefaultDatabasePath},
		Output: OutputConfig{
			Format:       DefaultFormat,
			SummaryWidth: DefaultSummaryWidth,
		},
	}
}

func (c *Config) applyEnv() error {
	if err := ParseEnv(c); err != nil {
		return err
	}
	c.applyDefaults()
	return nil
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		c.Database.Path = DefaultDatabasePath
	}
	c.Output.Format = NormalizeFormat(c.Output.Format)
	if c.Output.SummaryWidth <= 0 {
		c.Output.SummaryWidth = DefaultSummaryWidth
	}
}

// NormalizeFormat lowercases a format name, maps "yml" to "yaml" and
// defaults an empty name to the table format
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		return DefaultFormat
	case "yml":
		return "yaml"
	}
	return format
}

// Validate reports settings that cannot be used
func (c *Config) Validate() error {
	valid := false
	for _, f := range validFormats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("output.format %q is not one of %s", c.Output.Format, strings.Join(validFormats, ", "))
	}
	if c.Output.SummaryWidth < 4 {
		return fmt.Errorf("output.summary_width must be at least 4, got %d", c.Output.SummaryWidth)
	}
	return nil
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Database: %s\n", c.Database.Path)
	if c.Database.SeedFile != "" {
		summary += fmt.Sprintf("Seed file: %s\n", c.Database.SeedFile)
	}
	summary += fmt.Sprintf("Output: %s (summary width %d), Debug: %v",
		c.Output.Format, c.Output.SummaryWidth, c.Log.Debug)
	return summary
}
