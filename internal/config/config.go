package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level beanport.yaml configuration.
type Config struct {
	LedgerFile    string           `yaml:"ledger_file"`
	MappingFile   string           `yaml:"mapping_file"`
	ImportLogFile string           `yaml:"import_log_file,omitempty"`
	Currency      string           `yaml:"currency"`
	Importers     []ImporterConfig `yaml:"importers,omitempty"`
	Git           GitConfig        `yaml:"git"`
}

// ImporterConfig binds an importer kind to a known account and currency.
type ImporterConfig struct {
	Kind     string `yaml:"kind"`
	Account  string `yaml:"account"`
	Currency string `yaml:"currency,omitempty"`
}

// GitConfig controls auto-committing the ledger after imports.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a beanport.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		LedgerFile:    "ledger.beancount",
		MappingFile:   "mappings.yaml",
		ImportLogFile: "import-log.csv",
		Currency:      "CAD",
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "beanport",
			AuthorEmail: "import@beanport.dev",
		},
	}
}

// ImporterAccount returns the configured account name for an importer kind.
func (c *Config) ImporterAccount(kind string) (string, bool) {
	for _, imp := range c.Importers {
		if imp.Kind == kind {
			return imp.Account, true
		}
	}
	return "", false
}

// ImporterCurrency returns the configured currency for an importer kind.
func (c *Config) ImporterCurrency(kind string) (string, bool) {
	for _, imp := range c.Importers {
		if imp.Kind == kind && imp.Currency != "" {
			return imp.Currency, true
		}
	}
	return "", false
}
