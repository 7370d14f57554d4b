// Package config loads and saves the CLI configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"tradelog/market"
)

// Config represents the complete CLI configuration
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Report   ReportConfig   `json:"report" yaml:"report"`
}

// AccountConfig contains the account parameters position sizing works from
type AccountConfig struct {
	Equity   float64 `json:"equity" yaml:"equity"`
	Currency string  `json:"currency" yaml:"currency"`
}

// DefaultsConfig contains the per-trade defaults commands start from.
// RiskPercent is a percent number: 1 means 1% of equity.
type DefaultsConfig struct {
	Market      string  `json:"market" yaml:"market"`
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"`
}

// ReportConfig contains output parameters
type ReportConfig struct {
	Org      bool   `json:"org" yaml:"org"`
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Equity <= 0 {
		return fmt.Errorf("account.equity must be positive")
	}
	if c.Defaults.Market == "" {
		return fmt.Errorf("defaults.market is required")
	}
	if _, ok := market.Lookup(c.Defaults.Market); !ok {
		return fmt.Errorf("unknown market: %s", c.Defaults.Market)
	}
	if c.Defaults.RiskPercent <= 0 || c.Defaults.RiskPercent > 100 {
		return fmt.Errorf("defaults.risk_percent must be between 0 and 100")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("report.timezone: %w", err)
	}
	return nil
}

// Location resolves the report timezone. Empty means UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Report.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Report.Timezone)
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Equity:   25000,
			Currency: "USD",
		},
		Defaults: DefaultsConfig{
			Market:      "ES",
			RiskPercent: 1,
		},
		Report: ReportConfig{
			Org:      false,
			Timezone: "UTC",
		},
	}
}
