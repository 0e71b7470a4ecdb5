// Package storage provides the persistence bridge for ctt: a badger key-value
// store holding the tracker snapshot, plus atomic file writes for exports.
package storage

import (
	"fmt"
	"strings"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/ctt/internal/errors"
)

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// Open opens or creates a database at the given path.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options
	path := opts.Path

	if opts.InMemory || path == "" || path == ":memory:" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
		path = ""
	} else {
		if err := EnsureDirectory(path); err != nil {
			return nil, err
		}
		badgerOpts = badger.DefaultOptions(path)
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			return nil, fmt.Errorf("%w: %s", errors.ErrDatabaseLocked, path)
		}
		return nil, err
	}

	return &DB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database directory, empty for an in-memory database.
func (d *DB) Path() string {
	return d.path
}
