package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Fatalf("expected default format yaml, got %q", cfg.Output.Format)
	}
	if cfg.Logging.Enabled {
		t.Fatalf("logging must default to disabled")
	}
}

func TestLoadFromPathOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "output:\n  format: json\nlogging:\n  enabled: true\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected format json, got %q", cfg.Output.Format)
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" {
		t.Fatalf("logging overlay not applied: %+v", cfg.Logging)
	}
	// Unset fields keep their defaults.
	if cfg.Logging.MaxSizeMB != 10 {
		t.Fatalf("expected default max_size_mb 10, got %d", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadFromPathRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for bad format")
	}
}
