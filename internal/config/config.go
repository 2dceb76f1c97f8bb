package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"slim/internal/engine"
)

// Config represents the application configuration.
type Config struct {
	// TimeZone is the IANA name of the single reference zone every
	// computation buckets days in. Never the caller's local zone.
	TimeZone string `json:"time_zone"`

	WeekStart             string `json:"week_start"`
	StreakRule            string `json:"streak_rule"`
	ProjectionHorizonDays int    `json:"projection_horizon_days"`
}

// ErrNoConfig is returned when the config file doesn't exist.
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TimeZone:              "UTC",
		WeekStart:             "monday",
		StreakRule:            "food_and_exercise",
		ProjectionHorizonDays: 28,
	}
}

// Load reads the configuration from ~/.slim/config.json. A missing file
// yields ErrNoConfig; callers typically fall back to DefaultConfig.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.TimeZone == "" {
		cfg.TimeZone = defaults.TimeZone
	}
	if cfg.WeekStart == "" {
		cfg.WeekStart = defaults.WeekStart
	}
	if cfg.StreakRule == "" {
		cfg.StreakRule = defaults.StreakRule
	}
	if cfg.ProjectionHorizonDays == 0 {
		cfg.ProjectionHorizonDays = defaults.ProjectionHorizonDays
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.slim/config.json.
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates a default config file if none exists.
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks that every configured value is usable.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("time_zone %q is not a valid IANA zone name", c.TimeZone)
	}
	if _, err := engine.ParseWeekStart(c.WeekStart); err != nil {
		return fmt.Errorf("week_start: %w", err)
	}
	if _, err := engine.QualifyRule(c.StreakRule); err != nil {
		return fmt.Errorf("streak_rule: %w", err)
	}
	if c.ProjectionHorizonDays < 0 || c.ProjectionHorizonDays > 365 {
		return fmt.Errorf("projection_horizon_days must be between 0 and 365, got %d", c.ProjectionHorizonDays)
	}
	return nil
}

// Location resolves the configured reference time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".slim", "config.json"), nil
}
