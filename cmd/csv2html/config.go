package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure. Every value acts as a
// default and is overridden by the corresponding command-line flag.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
}

// DefaultsConfig contains conversion defaults
type DefaultsConfig struct {
	Title     string `yaml:"title,omitempty"`     // HTML page title
	Theme     string `yaml:"theme,omitempty"`     // light or dark
	Delimiter string `yaml:"delimiter,omitempty"` // bypasses detection when set
	Limit     int    `yaml:"limit,omitempty"`     // max rows in HTML output
	Hash      bool   `yaml:"hash,omitempty"`      // embed source checksum
}

// LoadConfig loads configuration from a YAML file. An empty path returns an
// empty config so running without a config file just works.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(filename string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateSampleConfig creates a sample configuration
func CreateSampleConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Title: "Data Table",
			Theme: "light",
			Limit: 0,
			Hash:  false,
		},
	}
}
