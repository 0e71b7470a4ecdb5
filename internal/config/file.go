package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// File represents the config.toml file. Every key is optional.
type File struct {
	Storage struct {
		DBPath    string `toml:"db-path"`
		ExportDir string `toml:"export-dir"`
	} `toml:"storage"`

	Tracker struct {
		TickInterval   string `toml:"tick-interval"`
		FavoritesLimit int    `toml:"favorites-limit"`
		RecentsLimit   int    `toml:"recents-limit"`
	} `toml:"tracker"`

	UI struct {
		RefreshInterval string `toml:"refresh-interval"`
	} `toml:"ui"`

	meta toml.MetaData
}

// LoadFile reads the config file at path. A missing file yields an empty File.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var f File
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	f.meta = meta

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config file %s: unknown key %q", path, undecoded[0].String())
	}

	return &f, nil
}

// apply copies every key that was defined in the file onto cfg.
func (f *File) apply(cfg *RuntimeConfig) {
	if f.meta.IsDefined("storage", "db-path") && f.Storage.DBPath != "" {
		cfg.Storage.DBPath = f.Storage.DBPath
	}
	if f.meta.IsDefined("storage", "export-dir") && f.Storage.ExportDir != "" {
		cfg.Storage.ExportDir = f.Storage.ExportDir
	}

	if f.meta.IsDefined("tracker", "tick-interval") {
		if d, err := time.ParseDuration(f.Tracker.TickInterval); err == nil && d > 0 {
			cfg.Tracker.TickInterval = d
		}
	}
	if f.meta.IsDefined("tracker", "favorites-limit") && f.Tracker.FavoritesLimit > 0 {
		cfg.Tracker.FavoritesLimit = f.Tracker.FavoritesLimit
	}
	if f.meta.IsDefined("tracker", "recents-limit") && f.Tracker.RecentsLimit > 0 {
		cfg.Tracker.RecentsLimit = f.Tracker.RecentsLimit
	}

	if f.meta.IsDefined("ui", "refresh-interval") {
		if d, err := time.ParseDuration(f.UI.RefreshInterval); err == nil && d > 0 {
			cfg.UI.RefreshInterval = d
		}
	}
}
