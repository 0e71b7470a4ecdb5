package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if cfg.Tracker.TickInterval != time.Second {
		t.Errorf("expected Tracker.TickInterval = 1s, got %v", cfg.Tracker.TickInterval)
	}
	if cfg.Tracker.FavoritesLimit != 5 {
		t.Errorf("expected Tracker.FavoritesLimit = 5, got %d", cfg.Tracker.FavoritesLimit)
	}
	if cfg.Tracker.RecentsLimit != 5 {
		t.Errorf("expected Tracker.RecentsLimit = 5, got %d", cfg.Tracker.RecentsLimit)
	}
	if cfg.UI.RefreshInterval != time.Second {
		t.Errorf("expected UI.RefreshInterval = 1s, got %v", cfg.UI.RefreshInterval)
	}
	if !strings.Contains(cfg.Storage.DBPath, AppName) {
		t.Errorf("expected Storage.DBPath to contain %q, got %q", AppName, cfg.Storage.DBPath)
	}
	if cfg.Storage.ExportDir == "" {
		t.Error("expected Storage.ExportDir to be set")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected config.toml, got %q", path)
	}
	if !strings.Contains(path, AppName) {
		t.Errorf("expected path to contain %q, got %q", AppName, path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tracker.TickInterval != time.Second {
		t.Errorf("expected default tick interval, got %v", cfg.Tracker.TickInterval)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[storage]
db-path = "/tmp/ctt-db"
export-dir = "/tmp/backups"

[tracker]
tick-interval = "500ms"
favorites-limit = 3

[ui]
refresh-interval = "250ms"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/ctt-db" {
		t.Errorf("expected db path from file, got %q", cfg.Storage.DBPath)
	}
	if cfg.Storage.ExportDir != "/tmp/backups" {
		t.Errorf("expected export dir from file, got %q", cfg.Storage.ExportDir)
	}
	if cfg.Tracker.TickInterval != 500*time.Millisecond {
		t.Errorf("expected tick interval 500ms, got %v", cfg.Tracker.TickInterval)
	}
	if cfg.Tracker.FavoritesLimit != 3 {
		t.Errorf("expected favorites limit 3, got %d", cfg.Tracker.FavoritesLimit)
	}
	if cfg.Tracker.RecentsLimit != 5 {
		t.Errorf("expected untouched recents limit 5, got %d", cfg.Tracker.RecentsLimit)
	}
	if cfg.UI.RefreshInterval != 250*time.Millisecond {
		t.Errorf("expected refresh interval 250ms, got %v", cfg.UI.RefreshInterval)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("bad_syntax", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		if err := os.WriteFile(path, []byte("[storage\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("unknown_key", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.toml")
		if err := os.WriteFile(path, []byte("[storage]\ncolour = \"red\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "unknown key") {
			t.Errorf("expected unknown key error, got %v", err)
		}
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CTT_DATABASE", ":memory:")
	t.Setenv("CTT_EXPORT_DIR", "/tmp/exports")
	t.Setenv("CTT_TICK_INTERVAL", "2s")
	t.Setenv("CTT_FAVORITES_LIMIT", "7")
	t.Setenv("CTT_RECENTS_LIMIT", "bogus")
	t.Setenv("CTT_REFRESH_INTERVAL", "-1s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.InMemory() {
		t.Error("expected in-memory database")
	}
	if cfg.Storage.ExportDir != "/tmp/exports" {
		t.Errorf("expected export dir override, got %q", cfg.Storage.ExportDir)
	}
	if cfg.Tracker.TickInterval != 2*time.Second {
		t.Errorf("expected tick interval 2s, got %v", cfg.Tracker.TickInterval)
	}
	if cfg.Tracker.FavoritesLimit != 7 {
		t.Errorf("expected favorites limit 7, got %d", cfg.Tracker.FavoritesLimit)
	}
	if cfg.Tracker.RecentsLimit != 5 {
		t.Errorf("invalid value should be ignored, got %d", cfg.Tracker.RecentsLimit)
	}
	if cfg.UI.RefreshInterval != time.Second {
		t.Errorf("negative duration should be ignored, got %v", cfg.UI.RefreshInterval)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\ndb-path = \"/from/file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CTT_DATABASE", "/from/env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.DBPath != "/from/env" {
		t.Errorf("expected env to win, got %q", cfg.Storage.DBPath)
	}
}
