package tracker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/manav03panchal/ctt/internal/logging"
	"github.com/manav03panchal/ctt/internal/model"
	"github.com/manav03panchal/ctt/internal/storage"
)

// Messages shown after an import attempt.
const (
	ImportSucceeded = "Database restored successfully!"
	ImportFailed    = "Failed to restore database. Please select a valid backup file."
)

// BackupFileName returns the export file name for the UTC date of now.
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("company-time-tracker-backup-%s.json", now.UTC().Format("2006-01-02"))
}

// Export renders the current state as an indented JSON snapshot.
func (t *Tracker) Export() ([]byte, error) {
	return t.Snapshot().Encode()
}

// ExportToDir writes the snapshot into dir under BackupFileName and returns
// the file path.
func (t *Tracker) ExportToDir(dir string) (string, error) {
	data, err := t.Export()
	if err != nil {
		return "", err
	}

	if err := storage.EnsureDirectory(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, BackupFileName(t.clock()))
	if err := storage.SafeWrite(path, data, 0o644); err != nil {
		return "", err
	}

	logging.FromContext(t.ctx).Info("snapshot exported",
		logging.KeyOperation, "export",
		logging.KeyPath, path)
	return path, nil
}

// Import replaces all state with the snapshot in data and clears the
// selection. An invalid document returns a FormatError and changes nothing.
func (t *Tracker) Import(data []byte) error {
	snap, err := model.ParseSnapshot(data)
	if err != nil {
		logging.FromContext(t.ctx).Warn("import rejected",
			logging.KeyOperation, "import",
			logging.KeyError, err)
		return err
	}

	t.mu.Lock()
	t.replace(snap)
	t.mu.Unlock()

	t.changed("import", logging.KeyCount, len(snap.Companies))
	return nil
}

// ImportFile reads path and imports it.
func (t *Tracker) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}
	return t.Import(data)
}
