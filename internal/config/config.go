// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bigocheck/internal/lang"
)

// Config represents the configuration for bigocheck
type Config struct {
	Version string `yaml:"version" json:"version"`

	// Analysis settings
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Input limits
	Limits LimitsConfig `yaml:"limits" json:"limits"`
}

type AnalysisConfig struct {
	// Language assumed when none is given on the command line. "auto"
	// resolves to the engine's documented default profile.
	DefaultLanguage string `yaml:"default_language" json:"default_language"`

	// Try the tree-sitter structural path before the lexical one
	Structural bool `yaml:"structural" json:"structural"`
}

type OutputConfig struct {
	// Default output format
	Format string `yaml:"format" json:"format"`

	// Colorized output
	Colors bool `yaml:"colors" json:"colors"`

	// Verbosity level
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Show the rationale trail under the estimate
	ShowRationale bool `yaml:"show_rationale" json:"show_rationale"`

	// Output file path (optional)
	OutputFile string `yaml:"output_file,omitempty" json:"output_file,omitempty"`
}

type LimitsConfig struct {
	// Max snippet size in KB; larger inputs are rejected at the CLI
	MaxSnippetSize int `yaml:"max_snippet_size" json:"max_snippet_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Analysis: AnalysisConfig{
			DefaultLanguage: "auto",
			Structural:      true,
		},
		Output: OutputConfig{
			Format:        "console",
			Colors:        true,
			Verbose:       false,
			ShowRationale: true,
		},
		Limits: LimitsConfig{
			MaxSnippetSize: 256, // KB
		},
	}
}

// LoadConfig loads configuration from file or returns default
func LoadConfig(configPath string) (*Config, error) {
	// If no config path provided, look for default config files
	if configPath == "" {
		configPath = findConfigFile()
	}

	// If still no config found, return default
	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := DefaultConfig() // Start with defaults

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findConfigFile looks for config files in common locations
func findConfigFile() string {
	possiblePaths := []string{
		".bigocheck.yml",
		".bigocheck.yaml",
		"bigocheck.yml",
		"bigocheck.yaml",
		".config/bigocheck.yml",
		".config/bigocheck.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := []string{"console", "json"}
	formatValid := false
	for _, format := range validFormats {
		if c.Output.Format == format {
			formatValid = true
			break
		}
	}
	if !formatValid {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, validFormats)
	}

	tagValid := false
	for _, tag := range lang.Tags() {
		if c.Analysis.DefaultLanguage == tag {
			tagValid = true
			break
		}
	}
	if !tagValid {
		return fmt.Errorf("unsupported default_language: %s (valid: %v)", c.Analysis.DefaultLanguage, lang.Tags())
	}

	if c.Limits.MaxSnippetSize < 1 {
		return fmt.Errorf("max_snippet_size must be at least 1 KB")
	}

	return nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateConfig creates a sample configuration file
func GenerateConfig(configPath string) error {
	config := DefaultConfig()
	return config.SaveConfig(configPath)
}
