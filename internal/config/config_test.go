package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Report.Format != "table" {
		t.Errorf("expected Format=table, got %s", cfg.Report.Format)
	}
	if !cfg.Report.Users || !cfg.Report.MeetingRooms || !cfg.Report.ResourceAccounts {
		t.Errorf("expected all categories enabled by default: %+v", cfg.Report)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("PHONEREPORT_BASE_URL", "")
	t.Setenv("PHONEREPORT_TOKEN", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Directory.BaseURL = "https://dir.example.com/v1.0"
	cfg.Report.Format = "csv"
	cfg.Report.MeetingRooms = false

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Directory.BaseURL != "https://dir.example.com/v1.0" {
		t.Errorf("expected BaseURL roundtrip, got %s", loaded.Directory.BaseURL)
	}
	if loaded.Report.Format != "csv" {
		t.Errorf("expected Format=csv, got %s", loaded.Report.Format)
	}
	if loaded.Report.MeetingRooms {
		t.Errorf("expected MeetingRooms=false after load")
	}
}

func TestConfig_LoadMissingFile(t *testing.T) {
	t.Setenv("PHONEREPORT_BASE_URL", "")
	t.Setenv("PHONEREPORT_TOKEN", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file should fall back to defaults, got %v", err)
	}
	if cfg.Report.Format != "table" {
		t.Errorf("expected default Format=table, got %s", cfg.Report.Format)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PHONEREPORT_BASE_URL", "https://override.example.com")
	t.Setenv("PHONEREPORT_TOKEN", "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Directory.BaseURL != "https://override.example.com" {
		t.Errorf("expected env BaseURL override, got %s", cfg.Directory.BaseURL)
	}
	if cfg.Directory.Token != "env-token" {
		t.Errorf("expected env Token override, got %s", cfg.Directory.Token)
	}
}
