package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/pdfoutline/outline"
)

// DefaultConfigFile is the configuration file name looked up in the current directory
const DefaultConfigFile = "pdfoutline.yaml"

// xdgConfigFile is the configuration file name in the XDG config directory
const xdgConfigFile = "config.yaml"

// File is the content of a configuration file
type File struct {
	Source      string         `yaml:"source"`
	Destination string         `yaml:"destination"`
	Workers     int            `yaml:"workers"`
	Formats     []string       `yaml:"formats"`
	Database    string         `yaml:"database"`
	Heuristics  outline.Config `yaml:"heuristics"`
}

// LoadConfigFile loads a configuration file. Heuristics missing from the
// file keep their default values. If the file does not exist, it returns
// ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cf := File{Heuristics: outline.DefaultConfig()}
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for pdfoutline.yaml in the current directory
// 3. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), xdgConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// Load resolves the configuration: defaults overlaid with the configuration
// file, if one is found. An explicit configPath that does not exist is an
// error. It returns the path of the file used, or "" when none was found.
func Load(configPath string) (*Config, string, error) {
	cfg := NewConfig()

	path := FindConfigFile(configPath)
	if path == "" {
		if configPath != "" {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return cfg, "", nil
	}

	file, err := LoadConfigFile(path)
	if err != nil {
		return nil, "", err
	}
	if err := cfg.Apply(file); err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	return cfg, path, nil
}
