package storage

import (
	"context"

	"github.com/manav03panchal/ctt/internal/errors"
	"github.com/manav03panchal/ctt/internal/logging"
	"github.com/manav03panchal/ctt/internal/model"
)

// SnapshotRepo reads and writes the tracker snapshot.
type SnapshotRepo struct {
	db *DB
}

// NewSnapshotRepo creates a new snapshot repository.
func NewSnapshotRepo(db *DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Load returns the stored snapshot. It returns ErrKeyNotFound when nothing
// has been saved yet and a StorageError for anything else, including a stored
// document that is not a valid snapshot.
func (r *SnapshotRepo) Load(ctx context.Context) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStorageError("load", err)
	}

	data, err := r.db.GetBytes(model.KeySnapshot)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil, ErrKeyNotFound
		}
		return nil, errors.NewStorageError("load", err)
	}

	snap, err := model.ParseSnapshot(data)
	if err != nil {
		return nil, errors.NewStorageError("load", err)
	}

	logging.FromContext(ctx).Debug("snapshot loaded",
		logging.KeyCount, len(snap.Companies),
		logging.KeyPath, r.db.Path())
	return snap, nil
}

// Save writes snap under the snapshot key.
func (r *SnapshotRepo) Save(ctx context.Context, snap *model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("save", err)
	}

	stored := snap.Clone()
	stored.SetKey(model.KeySnapshot)
	if err := r.db.Set(stored); err != nil {
		return errors.NewStorageError("save", err)
	}
	return nil
}

// Exists reports whether a snapshot has been saved.
func (r *SnapshotRepo) Exists() (bool, error) {
	return r.db.Exists(model.KeySnapshot)
}
