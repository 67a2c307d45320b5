// Package config provides configuration loading and management for specimen-bands.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBandWidth is the band width used when none is configured.
const DefaultBandWidth = 10

// ReportSuffix is appended to the input path to name the CSV report.
const ReportSuffix = "_analysis.csv"

// Config represents the application configuration loaded from YAML
type Config struct {
	Input struct {
		// Path is the image to analyze
		Path string `yaml:"path"`
	} `yaml:"input"`

	Analysis struct {
		// BandWidth is the distance increment in pixels between band boundaries
		BandWidth int `yaml:"bandWidth"`
	} `yaml:"analysis"`

	Output struct {
		// ReportPath overrides the default <input>_analysis.csv
		ReportPath string `yaml:"reportPath"`

		// AnnotatedPath, when set, receives the painted image as PNG
		AnnotatedPath string `yaml:"annotatedPath"`

		// Show opens the original and annotated images in the system viewer
		Show bool `yaml:"show"`

		// PresentDir writes presented images to a directory instead of a viewer
		PresentDir string `yaml:"presentDir"`

		// Verbose logs per-band detail
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Analysis.BandWidth = DefaultBandWidth
	cfg.Output.Show = true
	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}

// Validate reports the first configuration problem, if any.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return errors.New("input path is required")
	}
	if c.Analysis.BandWidth <= 0 {
		return fmt.Errorf("band width must be positive, got %d", c.Analysis.BandWidth)
	}
	return nil
}

// ReportPath returns where the CSV report is written.
func (c *Config) ReportPath() string {
	if c.Output.ReportPath != "" {
		return c.Output.ReportPath
	}
	return c.Input.Path + ReportSuffix
}
