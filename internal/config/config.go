// Package config provides configuration management for the article tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. ARTICLES_REPORT_TOP_WORDS.
const EnvPrefix = "articles"

// Defaults.
const (
	DefaultIntroLength = 80
	DefaultTopWords    = 5
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Configuration validation errors.
var (
	ErrMissingCataloguePath   = errors.New("catalogue.path is required")
	ErrInvalidCatalogueFormat = errors.New("catalogue.format must be empty, 'yaml' or 'json'")
	ErrInvalidFirstID         = errors.New("catalogue.first_id must be non-negative")
	ErrInvalidIntroLength     = errors.New("report.intro_length must be at least 1")
	ErrInvalidTopWords        = errors.New("report.top_words must be at least 1")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat       = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete tool configuration. Environment keys are
// derived from the field path, e.g. Report.TopWords is ARTICLES_REPORT_TOP_WORDS.
// Fields carry no envconfig tag: a tag makes envconfig fall
// back to the bare name (PATH, FORMAT) when the prefixed key is unset.
type Config struct {
	Catalogue CatalogueConfig `yaml:"catalogue"`
	Report    ReportConfig    `yaml:"report"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CatalogueConfig describes the input file of article entries.
type CatalogueConfig struct {
	Path    string `yaml:"path"`
	Format  string `yaml:"format"`
	// FirstID is nil when unset, meaning the process-wide sequence numbers articles.
	FirstID *int   `yaml:"first_id,omitempty" split_words:"true"`
}

// ReportConfig controls the rendered markdown report.
type ReportConfig struct {
	Path        string `yaml:"path"`
	IntroLength int    `yaml:"intro_length" split_words:"true"`
	TopWords    int    `yaml:"top_words"    split_words:"true"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a configuration with every optional value filled in.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			IntroLength: DefaultIntroLength,
			TopWords:    DefaultTopWords,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults,
// then applies environment overrides. An empty path skips the file.
// The result is not validated; callers apply flag overrides first.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from ARTICLES_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	return nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Catalogue.Path == "" {
		return ErrMissingCataloguePath
	}

	switch strings.ToLower(c.Catalogue.Format) {
	case "", "yaml", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCatalogueFormat, c.Catalogue.Format)
	}

	if c.Catalogue.FirstID != nil && *c.Catalogue.FirstID < 0 {
		return ErrInvalidFirstID
	}

	if c.Report.IntroLength < 1 {
		return ErrInvalidIntroLength
	}

	if c.Report.TopWords < 1 {
		return ErrInvalidTopWords
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	if f := strings.ToLower(c.Logging.Format); f != "text" && f != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// GetReportPath returns the report path, defaulting to report.md next to the catalogue.
func (c *Config) GetReportPath() string {
	if c.Report.Path != "" {
		return c.Report.Path
	}

	return filepath.Join(filepath.Dir(c.Catalogue.Path), "report.md")
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Catalogue: %s, Report: %s, IntroLength: %d, TopWords: %d}",
		c.Catalogue.Path,
		c.GetReportPath(),
		c.Report.IntroLength,
		c.Report.TopWords,
	)
}
