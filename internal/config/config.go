// Package config provides configuration management for the cleaning pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputPath    = errors.New("pipeline.input is required")
	ErrMissingOutputPath   = errors.New("pipeline.output is required")
	ErrInvalidHoursPerWeek = errors.New("salary.hours_per_week must be at least 1")
	ErrInvalidWeeksPerYear = errors.New("salary.weeks_per_year must be at least 1")
	ErrInvalidMinPlausible = errors.New("salary.min_plausible must be non-negative")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Salary   SalaryConfig   `yaml:"salary"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig contains input and output file paths.
type PipelineConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// SalaryConfig contains the annualization multipliers and the plausibility
// threshold applied after standardization.
type SalaryConfig struct {
	HoursPerWeek float64 `yaml:"hours_per_week"`
	WeeksPerYear float64 `yaml:"weeks_per_year"`
	MinPlausible float64 `yaml:"min_plausible"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Salary: SalaryConfig{
			HoursPerWeek: 40,
			WeeksPerYear: 52,
			MinPlausible: 100,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables (optionally loaded from a .env file
// in the working directory) onto the configuration.
func (c *Config) ApplyEnv() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	if v := os.Getenv("SURVEY_INPUT"); v != "" {
		c.Pipeline.Input = v
	}

	if v := os.Getenv("SURVEY_OUTPUT"); v != "" {
		c.Pipeline.Output = v
	}

	if v := os.Getenv("SURVEY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv("SURVEY_MIN_PLAUSIBLE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Salary.MinPlausible = f
		}
	}
}

// Validate validates the configuration. Paths are checked separately via
// ValidatePaths, since command-line flags may still override them.
func (c *Config) Validate() error {
	if c.Salary.HoursPerWeek < 1 {
		return ErrInvalidHoursPerWeek
	}

	if c.Salary.WeeksPerYear < 1 {
		return ErrInvalidWeeksPerYear
	}

	if c.Salary.MinPlausible < 0 {
		return ErrInvalidMinPlausible
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// ValidatePaths checks that both file paths are set, after flag overrides.
func (c *Config) ValidatePaths() error {
	if c.Pipeline.Input == "" {
		return ErrMissingInputPath
	}

	if c.Pipeline.Output == "" {
		return ErrMissingOutputPath
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, MinPlausible: %.0f}",
		c.Pipeline.Input,
		c.Pipeline.Output,
		c.Salary.MinPlausible,
	)
}
