// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the application configuration from YAML, with
// defaults applied for everything a config file leaves unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format              string   `yaml:"format"`
		ConfidenceLevels    string   `yaml:"confidence_levels"`
		Checks              string   `yaml:"checks"`
		PatternsDir         string   `yaml:"patterns_dir"`
		Verbose             bool     `yaml:"verbose"`
		Debug               bool     `yaml:"debug"`
		NoColor             bool     `yaml:"no_color"`
		Recursive           bool     `yaml:"recursive"`
		EnablePreprocessors bool     `yaml:"enable_preprocessors"`
		ExcludePatterns     []string `yaml:"exclude_patterns"`
	} `yaml:"defaults"`

	// Profiles for different scanning scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a scanning profile with specific settings
type Profile struct {
	Format              string   `yaml:"format"`
	ConfidenceLevels    string   `yaml:"confidence_levels"`
	Checks              string   `yaml:"checks"`
	PatternsDir         string   `yaml:"patterns_dir"`
	Verbose             bool     `yaml:"verbose"`
	Debug               bool     `yaml:"debug"`
	NoColor             bool     `yaml:"no_color"`
	Recursive           bool     `yaml:"recursive"`
	EnablePreprocessors bool     `yaml:"enable_preprocessors"`
	ExcludePatterns     []string `yaml:"exclude_patterns"`
	Description         string   `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.ConfidenceLevels = "all"
	config.Defaults.Checks = "all"
	config.Defaults.PatternsDir = "patterns"
	config.Defaults.EnablePreprocessors = true

	// Default pre-commit profile: terse output, high-signal namespaces only.
	config.Profiles["precommit"] = Profile{
		Format:              "text",
		ConfidenceLevels:    "high,medium",
		Checks:              "financial,secrets,national_id_asia,national_id_europe",
		NoColor:             true,
		EnablePreprocessors: true,
		Description:         "Optimized for pre-commit hooks with concise output and essential checks",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Preserve defaults that YAML unmarshaling would zero out when the field
	// is absent from the file.
	defaultEnablePreprocessors := config.Defaults.EnablePreprocessors
	defaultPatternsDir := config.Defaults.PatternsDir

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if !containsField(data, "defaults", "enable_preprocessors") {
		config.Defaults.EnablePreprocessors = defaultEnablePreprocessors
	}
	if config.Defaults.PatternsDir == "" {
		config.Defaults.PatternsDir = defaultPatternsDir
	}
	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}
	if config.Defaults.ConfidenceLevels == "" {
		config.Defaults.ConfidenceLevels = "all"
	}
	if config.Defaults.Checks == "" {
		config.Defaults.Checks = "all"
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Project-local configs take precedence
	for _, name := range []string{
		"config.yaml",
		".pattern-scan.yaml",
		".pattern-scan.yml",
	} {
		if fileExists(name) {
			return name
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(xdgConfig, "pattern-scan", name)
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard
// locations when configFile is empty). If loading fails, it returns a default
// configuration rather than an error.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			_, exists := current[key]
			return exists
		}
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return false
		}
		current = next
	}
	return false
}
