package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServeConfig is the csv2htmlserve configuration
type ServeConfig struct {
	Server  ServerSection  `yaml:"server"`
	Sources []SourceConfig `yaml:"sources"`
}

// ServerSection holds the HTTP server parameters
type ServerSection struct {
	Name string `yaml:"name"` // title shown in the UI
	Port int    `yaml:"port"` // HTTP port, defaults to 8080
}

// SourceConfig describes one delimited text file served by the UI.
// The delimiter is detected per file unless set explicitly.
type SourceConfig struct {
	Name      string `yaml:"name"`
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter,omitempty"` // ',' ';' 'tab' 'pipe'
	Title     string `yaml:"title,omitempty"`
}

// loadConfig reads and validates the YAML config
func loadConfig(path string) (*ServeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var cfg ServeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("no sources configured")
	}

	seen := make(map[string]bool, len(cfg.Sources))
	for i, src := range cfg.Sources {
		if src.Name == "" {
			return nil, fmt.Errorf("source[%d]: name is required", i)
		}
		if src.Path == "" {
			return nil, fmt.Errorf("source %q: path is required", src.Name)
		}
		if seen[src.Name] {
			return nil, fmt.Errorf("source %q: duplicate name", src.Name)
		}
		seen[src.Name] = true
		if src.Delimiter != "" {
			if _, err := parseDelimiter(src.Delimiter); err != nil {
				return nil, fmt.Errorf("source %q: %w", src.Name, err)
			}
		}
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Name == "" {
		cfg.Server.Name = "csv2html serve"
	}

	return &cfg, nil
}

// parseDelimiter maps a delimiter spelling from the config to its rune.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case ",", "comma":
		return ',', nil
	case ";", "semicolon":
		return ';', nil
	case "\t", "tab", "\\t":
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	}
	return 0, fmt.Errorf("unknown delimiter %q (use ',' ';' 'tab' or 'pipe')", s)
}
