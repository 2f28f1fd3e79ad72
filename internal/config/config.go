package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file name.
const FileName = "payoutbook.yaml"

// Config represents the top-level payoutbook.yaml configuration.
type Config struct {
	Ledger LedgerConfig `yaml:"ledger"`
	Export ExportConfig `yaml:"export"`
}

// LedgerConfig locates the persisted ledger inside the workspace.
type LedgerConfig struct {
	File string `yaml:"file"` // relative to the workspace directory
}

// ExportConfig controls journal serialization.
type ExportConfig struct {
	Delimiter string `yaml:"delimiter"`
	Encoding  string `yaml:"encoding"` // "shift_jis" or "utf8"
}

// Default returns the configuration for a new workspace.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{File: "RawDB.csv"},
		Export: ExportConfig{
			Delimiter: ",",
			Encoding:  "shift_jis",
		},
	}
}

// Load reads a payoutbook.yaml file from disk. Fields left empty in the
// file fall back to their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Ledger.File == "" {
		cfg.Ledger.File = "RawDB.csv"
	}
	if cfg.Export.Delimiter == "" {
		cfg.Export.Delimiter = ","
	}
	if cfg.Export.Encoding == "" {
		cfg.Export.Encoding = "shift_jis"
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
