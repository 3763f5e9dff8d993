// Package config holds the runtime configuration of the egfrchart CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is filled from flags, with chart presentation defaults optionally
// merged from a YAML file.
type Config struct {
	// Patient measurement.
	Creatinine float64
	Age        float64
	Sex        string
	Race       string

	// Output.
	Out    string
	Format string // "png" or "svg"; empty infers from the out extension
	Width  int
	Height int
	Show   bool

	LogFormat string // "text" or "json"
	LogLevel  string
}

// yamlConfig is the on-disk YAML structure; only presentation defaults are
// file-configurable.
type yamlConfig struct {
	Out       string `yaml:"out"`
	Format    string `yaml:"format"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

// LoadFromFile reads a YAML config file and merges its non-zero values into
// fields the flags left unset.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.Out == "" {
		c.Out = yc.Out
	}
	if c.Format == "" {
		c.Format = yc.Format
	}
	if c.Width == 0 {
		c.Width = yc.Width
	}
	if c.Height == 0 {
		c.Height = yc.Height
	}
	if c.LogFormat == "" {
		c.LogFormat = yc.LogFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = yc.LogLevel
	}
	return nil
}

// Validate checks the CLI-boundary constraints. The core calculation stays
// permissive; only the flag surface insists on a plausible measurement.
func (c *Config) Validate() error {
	if c.Creatinine <= 0 {
		return fmt.Errorf("creatinine must be a positive value in mg/dL, got %g", c.Creatinine)
	}
	if c.Age < 0 {
		return fmt.Errorf("age must be non-negative, got %g", c.Age)
	}
	if c.Sex == "" {
		return fmt.Errorf("sex is required ('male' or 'female')")
	}
	switch c.Format {
	case "", "png", "svg":
	default:
		return fmt.Errorf("format must be png or svg, got %q", c.Format)
	}
	return nil
}
