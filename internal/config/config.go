package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/shift-rota/pkg/core/allocator/criteria"
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// DatabaseURLEnv overrides store.postgresURL when set
const DatabaseURLEnv = "DATABASE_URL"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	LeaveSourceXLSX   = "xlsx"
	LeaveSourceSheets = "sheets"
)

// StoreConfig selects the record store
type StoreConfig struct {
	Driver      string `yaml:"driver" validate:"required,oneof=sqlite postgres"`
	SQLitePath  string `yaml:"sqlitePath,omitempty" validate:"required_if=Driver sqlite"`
	PostgresURL string `yaml:"postgresURL,omitempty" validate:"required_if=Driver postgres"`
}

// LeaveTableConfig locates the per-day absence table
type LeaveTableConfig struct {
	Source        string `yaml:"source" validate:"required,oneof=xlsx sheets"`
	Path          string `yaml:"path,omitempty" validate:"required_if=Source xlsx"`
	Sheet         string `yaml:"sheet,omitempty"`
	SpreadsheetID string `yaml:"spreadsheetID,omitempty" validate:"required_if=Source sheets"`
	Tab           string `yaml:"tab,omitempty" validate:"required_if=Source sheets"`
}

// PublishConfig is the Google Sheets target for published schedules
type PublishConfig struct {
	SpreadsheetID string `yaml:"spreadsheetID,omitempty"`
}

// RulesConfig tunes the fatigue/rotation rules. Omitted values use the defaults;
// a limit of 0 disables its rule.
type RulesConfig struct {
	MaxConsecutiveDays         *int  `yaml:"maxConsecutiveDays,omitempty" validate:"omitempty,min=0"`
	MaxShiftsPerWeek           *int  `yaml:"maxShiftsPerWeek,omitempty" validate:"omitempty,min=0,max=14"`
	ForbidAfternoonThenMorning *bool `yaml:"forbidAfternoonThenMorning,omitempty"`
}

// QuotaConfig is the quota applied to people created without one
type QuotaConfig struct {
	Min float64 `yaml:"min" validate:"min=0,max=100,ltefield=Max"`
	Max float64 `yaml:"max" validate:"min=0,max=100"`
}

// FixedRule pins a person to a shift on every date matching an RFC 5545 recurrence rule
type FixedRule struct {
	RRule  string `yaml:"rrule" validate:"required"`
	Shift  string `yaml:"shift" validate:"required,oneof=Morning Afternoon"`
	Person string `yaml:"person" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	Store        StoreConfig      `yaml:"store" validate:"required"`
	LeaveTable   LeaveTableConfig `yaml:"leaveTable" validate:"required"`
	Publish      PublishConfig    `yaml:"publish,omitempty"`
	Rules        RulesConfig      `yaml:"rules,omitempty"`
	DefaultQuota *QuotaConfig     `yaml:"defaultQuota,omitempty"`
	FixedRules   []FixedRule      `yaml:"fixedRules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for an environment.
// For example, env="dev" looks for "shift_rota_config.dev.yaml" and ".env.dev".
func LoadWithEnv(env string) (*Config, error) {
	if err := loadDotEnv(env); err != nil {
		return nil, err
	}

	configPath, err := findFile(configFileName(env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if url := os.Getenv(DatabaseURLEnv); url != "" {
		cfg.Store.PostgresURL = url
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.FixedRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in fixedRules[%d]: %w", i, err)
		}
	}

	return nil
}

// CriteriaRules resolves the configured rules against the defaults
func (c *Config) CriteriaRules() criteria.Rules {
	rules := criteria.DefaultRules()
	if c.Rules.MaxConsecutiveDays != nil {
		rules.MaxConsecutiveDays = *c.Rules.MaxConsecutiveDays
	}
	if c.Rules.MaxShiftsPerWeek != nil {
		rules.MaxShiftsPerWeek = *c.Rules.MaxShiftsPerWeek
	}
	if c.Rules.ForbidAfternoonThenMorning != nil {
		rules.ForbidAfternoonThenMorning = *c.Rules.ForbidAfternoonThenMorning
	}
	return rules
}

// Quota returns the default quota for new people
func (c *Config) Quota() QuotaConfig {
	if c.DefaultQuota == nil {
		return QuotaConfig{Min: model.DefaultQuotaMin, Max: model.DefaultQuotaMax}
	}
	return *c.DefaultQuota
}

func configFileName(env string) string {
	if env == "" {
		return "shift_rota_config.yaml"
	}
	return "shift_rota_config." + env + ".yaml"
}

// loadDotEnv loads .env.<env> and .env from the current directory if present.
// Variables already set in the environment take precedence.
func loadDotEnv(env string) error {
	candidates := []string{".env"}
	if env != "" {
		candidates = []string{".env." + env, ".env"}
	}

	for _, name := range candidates {
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// findFile searches for name in the current directory and then the user's home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
