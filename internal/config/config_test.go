package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a minimal valid configuration.
const validConfigYAML = `
pipeline:
  input: "./data/blizzard_salary.csv"
  output: "./output/clean.csv"
salary:
  hours_per_week: 40
  weeks_per_year: 52
  min_plausible: 100
logging:
  level: "info"
`

func TestLoadConfig_Valid(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned unexpected error: %v", err)
	}

	if cfg.Pipeline.Input != "./data/blizzard_salary.csv" {
		t.Errorf("Input = %s, want ./data/blizzard_salary.csv", cfg.Pipeline.Input)
	}

	if cfg.Salary.MinPlausible != 100 {
		t.Errorf("MinPlausible = %v, want 100", cfg.Salary.MinPlausible)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("LoadConfig of missing file should error")
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := createTempConfigFile(t, "pipeline:\n  input: \"raw.csv\"\n  output: \"clean.csv\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned unexpected error: %v", err)
	}

	if cfg.Salary.HoursPerWeek != 40 || cfg.Salary.WeeksPerYear != 52 {
		t.Errorf("multipliers = %v/%v, want defaults 40/52",
			cfg.Salary.HoursPerWeek, cfg.Salary.WeeksPerYear)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %s, want default info", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: nil,
		},
		{
			name:    "zero hours per week",
			mutate:  func(c *Config) { c.Salary.HoursPerWeek = 0 },
			wantErr: ErrInvalidHoursPerWeek,
		},
		{
			name:    "zero weeks per year",
			mutate:  func(c *Config) { c.Salary.WeeksPerYear = 0 },
			wantErr: ErrInvalidWeeksPerYear,
		},
		{
			name:    "negative plausibility threshold",
			mutate:  func(c *Config) { c.Salary.MinPlausible = -1 },
			wantErr: ErrInvalidMinPlausible,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidatePaths(t *testing.T) {
	cfg := Default()

	if err := cfg.ValidatePaths(); !errors.Is(err, ErrMissingInputPath) {
		t.Errorf("ValidatePaths() = %v, want ErrMissingInputPath", err)
	}

	cfg.Pipeline.Input = "raw.csv"
	if err := cfg.ValidatePaths(); !errors.Is(err, ErrMissingOutputPath) {
		t.Errorf("ValidatePaths() = %v, want ErrMissingOutputPath", err)
	}

	cfg.Pipeline.Output = "clean.csv"
	if err := cfg.ValidatePaths(); err != nil {
		t.Errorf("ValidatePaths() = %v, want nil", err)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("SURVEY_INPUT", "env-raw.csv")
	t.Setenv("SURVEY_MIN_PLAUSIBLE", "250")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Pipeline.Input != "env-raw.csv" {
		t.Errorf("Input = %s, want env-raw.csv", cfg.Pipeline.Input)
	}

	if cfg.Salary.MinPlausible != 250 {
		t.Errorf("MinPlausible = %v, want 250", cfg.Salary.MinPlausible)
	}
}
