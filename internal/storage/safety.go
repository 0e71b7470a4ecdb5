package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manav03panchal/ctt/internal/errors"
)

const (
	// MinFreeSpace is the minimum free space required for write operations (10MB).
	MinFreeSpace = 10 * 1024 * 1024
	// MinFreeSpaceWarning is the threshold for warning about low disk space (50MB).
	MinFreeSpaceWarning = 50 * 1024 * 1024
)

// DiskSpaceInfo contains information about available disk space.
type DiskSpaceInfo struct {
	Path       string
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}

// CheckDiskSpace returns an error if free space at path is below MinFreeSpace.
// A path whose free space cannot be determined passes.
func CheckDiskSpace(path string) error {
	info, err := GetDiskSpace(path)
	if err != nil {
		return nil
	}

	if info.FreeBytes < MinFreeSpace {
		return errors.NewSystemError(
			fmt.Sprintf("insufficient disk space: %d MB free, need at least %d MB",
				info.FreeBytes/(1024*1024),
				MinFreeSpace/(1024*1024)),
			errors.ErrDiskFull,
		)
	}

	return nil
}

// CheckDiskSpaceWarning returns a warning message if disk space is low.
// Returns empty string if disk space is adequate.
func CheckDiskSpaceWarning(path string) string {
	info, err := GetDiskSpace(path)
	if err != nil {
		return ""
	}

	if info.FreeBytes < MinFreeSpaceWarning {
		return fmt.Sprintf("Warning: Low disk space (%d MB free)", info.FreeBytes/(1024*1024))
	}

	return ""
}

// existingAncestor walks up from path until it finds something that exists.
func existingAncestor(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}

// SafeWrite writes data to path atomically: temp file in the same directory,
// fsync, then rename over the target.
func SafeWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := CheckDiskSpace(dir); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".ctt-*.tmp")
	if err != nil {
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("create temp file", "disk full", errors.ErrDiskFull)
		}
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("write", "disk full", errors.ErrDiskFull)
		}
		return fmt.Errorf("failed to write data: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("sync", "disk full", errors.ErrDiskFull)
		}
		return fmt.Errorf("failed to sync data: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// EnsureDirectory creates a directory with safe permissions if it doesn't exist.
func EnsureDirectory(path string) error {
	if err := CheckDiskSpace(filepath.Dir(path)); err != nil {
		return err
	}

	if err := os.MkdirAll(path, 0700); err != nil {
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("mkdir", "disk full", errors.ErrDiskFull)
		}
		if os.IsPermission(err) {
			return errors.NewSystemErrorWithOp("mkdir", path, errors.ErrPermissionDenied)
		}
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}
