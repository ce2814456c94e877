package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the radscan tool.
type Config struct {
	Scan       ScanConfig       `yaml:"scan"`
	Match      MatchConfig      `yaml:"match"`
	Impression ImpressionConfig `yaml:"impression"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ScanConfig holds corpus scanning configuration.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Workers  int      `yaml:"workers"`
	Cache    bool     `yaml:"cache"`
}

// MatchConfig holds term matching configuration.
type MatchConfig struct {
	Terms           []string `yaml:"terms"`
	Mode            string   `yaml:"mode"` // "sentence_scoped" or "whole_document"
	NegationPhrases []string `yaml:"negation_phrases"`
}

// ImpressionConfig holds impression section extraction configuration.
type ImpressionConfig struct {
	StopKeywords []string `yaml:"stop_keywords"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Includes: []string{"**/*.pdf", "**/*.txt"},
			Excludes: []string{"**/.radscan/**", "**/.*/**"},
			Workers:  runtime.NumCPU(),
			Cache:    true,
		},
		Match: MatchConfig{
			Mode: "sentence_scoped",
			NegationPhrases: []string{
				"no evidence", "not seen", "negative for", "ruled out", "unlikely",
				"absent", "without signs of", "is unremarkable", "no definite",
				"no significant", "no obvious", "no acute", "normal appendix",
				"appendix is normal", "no features of", "no sign of",
				"scan negative for", "no suspicion of", "scan does not show",
				"no imaging findings of", "no ct evidence of",
			},
		},
		Impression: ImpressionConfig{
			StopKeywords: []string{
				"dr.", "md", "dnb", "consultant radiologist", "provisional report",
				"advice:", "note:", "correlation:", "follow-up:", "follow up:",
				"*** end of report ***", "electronically signed", "page 1 of", "page 2 of",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for radscan.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "radscan.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".radscan", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDBPath returns the path to the extraction cache database.
func CacheDBPath(dir string) string {
	return filepath.Join(dir, ".radscan", "cache.db")
}

// EnsureRadscanDir ensures the .radscan directory exists.
func EnsureRadscanDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".radscan"), 0755)
}
