package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Match.Mode != "sentence_scoped" {
		t.Errorf("expected Mode=sentence_scoped, got %s", cfg.Match.Mode)
	}
	if len(cfg.Match.NegationPhrases) == 0 {
		t.Error("expected a default negation vocabulary")
	}
	if len(cfg.Scan.Includes) == 0 {
		t.Error("expected default include patterns")
	}
	if cfg.Scan.Workers < 1 {
		t.Errorf("expected Workers >= 1, got %d", cfg.Scan.Workers)
	}
	if !cfg.Scan.Cache {
		t.Error("expected cache enabled by default")
	}
	if len(cfg.Impression.StopKeywords) == 0 {
		t.Error("expected default impression stop keywords")
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "radscan.yaml")

	content := `
match:
  mode: whole_document
  terms:
    - acute appendicitis
    - pancreatitis
scan:
  workers: 2
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Match.Mode != "whole_document" {
		t.Errorf("expected Mode=whole_document, got %s", cfg.Match.Mode)
	}
	if len(cfg.Match.Terms) != 2 {
		t.Errorf("expected 2 terms, got %d", len(cfg.Match.Terms))
	}
	if cfg.Scan.Workers != 2 {
		t.Errorf("expected Workers=2, got %d", cfg.Scan.Workers)
	}
	// Untouched sections keep their defaults.
	if len(cfg.Match.NegationPhrases) == 0 {
		t.Error("expected default negation phrases to survive")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "radscan.yaml")

	content := `
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level=debug, got %s", cfg.Logging.Level)
	}
}

func TestCacheDBPath(t *testing.T) {
	path := CacheDBPath("/home/user/reports")
	expected := filepath.Join("/home/user/reports", ".radscan", "cache.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
