// Package runtime provides the application runtime context for ctt.
package runtime

import (
	"context"
	"fmt"
	"io"

	"github.com/manav03panchal/ctt/internal/config"
	"github.com/manav03panchal/ctt/internal/errors"
	"github.com/manav03panchal/ctt/internal/logging"
	"github.com/manav03panchal/ctt/internal/model"
	"github.com/manav03panchal/ctt/internal/output"
	"github.com/manav03panchal/ctt/internal/storage"
	"github.com/manav03panchal/ctt/internal/timer"
	"github.com/manav03panchal/ctt/internal/tracker"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	DB        *storage.DB
	Repo      *storage.SnapshotRepo
	Tracker   *tracker.Tracker
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	// ConfigPath is the TOML config file. Empty uses the XDG default.
	ConfigPath string
	// DBPath overrides the configured database path when set.
	DBPath    string
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool

	// Writer receives command output. Default: stdout.
	Writer io.Writer
	// Scheduler arms the tick task. Default: a real ticker.
	Scheduler timer.Scheduler
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		ConfigPath: config.DefaultConfigPath(),
		Format:     output.FormatCLI,
		ColorMode:  output.ColorAuto,
	}
}

// New loads configuration, opens the database and restores the tracker.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.DBPath != "" {
		cfg.Storage.DBPath = opts.DBPath
	}

	db, err := storage.Open(storage.Options{
		Path:     cfg.Storage.DBPath,
		InMemory: cfg.InMemory(),
	})
	if err != nil {
		return nil, err
	}
	repo := storage.NewSnapshotRepo(db)

	t := tracker.New(tracker.Options{
		Store:          repo,
		Scheduler:      opts.Scheduler,
		TickInterval:   cfg.Tracker.TickInterval,
		FavoritesLimit: cfg.Tracker.FavoritesLimit,
		RecentsLimit:   cfg.Tracker.RecentsLimit,
	})
	t.Load(logging.NewRequestContext())

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode
	if opts.Writer != nil {
		formatter.Writer = opts.Writer
	}

	logging.DebugLog("runtime ready", logging.KeyPath, db.Path())

	return &Context{
		Config:    cfg,
		DB:        db,
		Repo:      repo,
		Tracker:   t,
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Close stops the tracker and closes the database.
func (c *Context) Close() error {
	if c.Tracker != nil {
		c.Tracker.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Context returns a request-scoped context for one command invocation.
func (c *Context) Context() context.Context {
	return logging.NewRequestContext()
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// CompanyNames maps company ids to names for note listings.
func (c *Context) CompanyNames() map[int64]string {
	companies := c.Tracker.Companies()
	names := make(map[int64]string, len(companies))
	for _, co := range companies {
		names[co.ID] = co.Name
	}
	return names
}

// DiskWarning returns a low-space warning for the database directory, if any.
func (c *Context) DiskWarning() string {
	if c.DB == nil || c.DB.Path() == "" {
		return ""
	}
	return storage.CheckDiskSpaceWarning(c.DB.Path())
}

// Debugf prints debug output if debug mode is enabled. JSON output is left
// untouched.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug && !c.IsJSON() {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}

// Company looks up a company by id.
func (c *Context) Company(id int64) (model.Company, error) {
	co, ok := c.Tracker.Company(id)
	if !ok {
		return model.Company{}, fmt.Errorf("%w: %d", errors.ErrCompanyNotFound, id)
	}
	return co, nil
}

var _ tracker.Store = (*storage.SnapshotRepo)(nil)
