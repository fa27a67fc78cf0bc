package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/portfolio/gen"
)

// Config represents the complete pipeline configuration
type Config struct {
	Generator gen.Params   `json:"generator" yaml:"generator"`
	Store     StoreConfig  `json:"store" yaml:"store"`
	Output    OutputConfig `json:"output" yaml:"output"`
	Reports   ReportConfig `json:"reports" yaml:"reports"`
}

// StoreConfig contains database parameters
type StoreConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
	// Replace removes an existing database file before a fresh run.
	Replace bool `json:"replace" yaml:"replace"`
}

// OutputConfig contains export parameters
type OutputConfig struct {
	Dir    string `json:"dir" yaml:"dir"`
	Charts bool   `json:"charts" yaml:"charts"`
}

// ReportConfig contains report shaping parameters
type ReportConfig struct {
	TopPolicies int `json:"top_policies" yaml:"top_policies"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
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
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if c.Store.DBPath == "" {
		return fmt.Errorf("store.db_path is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Reports.TopPolicies <= 0 {
		return fmt.Errorf("reports.top_policies must be positive")
	}
	return nil
}

// Default returns a configuration with the standard 1000-policy book
func Default() *Config {
	return &Config{
		Generator: gen.Default(),
		Store: StoreConfig{
			DBPath:  "./data/insurance_portfolio.db",
			Replace: true,
		},
		Output: OutputConfig{
			Dir:    "./data",
			Charts: true,
		},
		Reports: ReportConfig{
			TopPolicies: 10,
		},
	}
}
