// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultOutputDir is where packages are written and read when nothing else is configured.
const DefaultOutputDir = "applications"

// Config holds defaults for the prepare and submit commands, loaded from a
// JSON or YAML file. All fields are optional; CLI flags always win.
type Config struct {
	// Paths
	Resume   string `json:"resume,omitempty" yaml:"resume,omitempty"`     // Path to resume (text, PDF or DOCX)
	Jobs     string `json:"jobs,omitempty" yaml:"jobs,omitempty"`         // Path to jobs CSV
	Template string `json:"template,omitempty" yaml:"template,omitempty"` // Path to cover letter template
	Out      string `json:"out,omitempty" yaml:"out,omitempty"`           // Output directory

	// Candidate Info
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty" yaml:"portfolio,omitempty"`

	// Behavior
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn warning error"`
}

// LoadConfig loads configuration from a JSON or YAML file. The format is
// chosen by extension: .yaml and .yml are YAML, anything else is JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	files := []struct {
		key  string
		path string
	}{
		{"resume", c.Resume},
		{"jobs", c.Jobs},
		{"template", c.Template},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", f.key, f.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fill := func(field *string, fallback string) {
		if *field == "" {
			*field = fallback
		}
	}

	fill(&result.Resume, defaults.Resume)
	fill(&result.Jobs, defaults.Jobs)
	fill(&result.Template, defaults.Template)
	fill(&result.Out, defaults.Out)
	fill(&result.Name, defaults.Name)
	fill(&result.Email, defaults.Email)
	fill(&result.Phone, defaults.Phone)
	fill(&result.Location, defaults.Location)
	fill(&result.LinkedIn, defaults.LinkedIn)
	fill(&result.Portfolio, defaults.Portfolio)
	fill(&result.LogLevel, defaults.LogLevel)

	if result.Out == "" {
		result.Out = DefaultOutputDir
	}

	return result
}
