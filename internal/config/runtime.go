// Package config provides centralized configuration for ctt runtime values.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// AppName is the application name used for data and config directories.
const AppName = "ctt"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Storage configuration
	Storage StorageConfig

	// Tracker configuration
	Tracker TrackerConfig

	// UI configuration
	UI UIConfig
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// DBPath is the badger directory. ":memory:" keeps everything in memory.
	// Default: $XDG_DATA_HOME/ctt/db
	DBPath string

	// ExportDir is where backups are written.
	// Default: the XDG download directory
	ExportDir string
}

// TrackerConfig holds tick and view configuration.
type TrackerConfig struct {
	// TickInterval is how often the active company accrues one second.
	// Default: 1s
	TickInterval time.Duration

	// FavoritesLimit caps the favorites view.
	// Default: 5
	FavoritesLimit int

	// RecentsLimit caps the recents view.
	// Default: 5
	RecentsLimit int
}

// UIConfig holds TUI configuration.
type UIConfig struct {
	// RefreshInterval is how often the TUI redraws.
	// Default: 1s
	RefreshInterval time.Duration

	// MessageTimeout is how long transient status messages stay visible.
	// Default: 3s
	MessageTimeout time.Duration
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Storage: StorageConfig{
			DBPath:    DefaultDBPath(),
			ExportDir: DefaultExportDir(),
		},
		Tracker: TrackerConfig{
			TickInterval:   time.Second,
			FavoritesLimit: 5,
			RecentsLimit:   5,
		},
		UI: UIConfig{
			RefreshInterval: time.Second,
			MessageTimeout:  3 * time.Second,
		},
	}
}

// DefaultDBPath returns the default database path following the XDG spec.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// DefaultConfigPath returns the default config file path following the XDG spec.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// DefaultExportDir returns the user's download directory, falling back to
// the current directory when none is known.
func DefaultExportDir() string {
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	return "."
}

// Load builds the runtime configuration from defaults, the TOML file at path
// (if present) and environment overrides, in that order.
func Load(path string) (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	file, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	file.apply(cfg)

	cfg.loadFromEnv()
	return cfg, nil
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("CTT_DATABASE"); v != "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("CTT_EXPORT_DIR"); v != "" {
		c.Storage.ExportDir = v
	}

	if v := os.Getenv("CTT_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Tracker.TickInterval = d
		}
	}
	if v := os.Getenv("CTT_FAVORITES_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Tracker.FavoritesLimit = n
		}
	}
	if v := os.Getenv("CTT_RECENTS_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Tracker.RecentsLimit = n
		}
	}

	if v := os.Getenv("CTT_REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.UI.RefreshInterval = d
		}
	}
}

// InMemory reports whether the database should not touch disk.
func (c *RuntimeConfig) InMemory() bool {
	return c.Storage.DBPath == ":memory:" || c.Storage.DBPath == ""
}
