package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MaxFileSize caps how large a single transcript file may be (10 MiB). Sizes
// are checked before any content is read so one oversized file cannot blow up
// peak memory.
const MaxFileSize int64 = 10 * 1024 * 1024

// FileTooLargeError reports a file that exceeds MaxFileSize.
type FileTooLargeError struct {
	Path string
	Size int64
	Max  int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %s (%d bytes exceeds maximum of %d bytes)", e.Path, e.Size, e.Max)
}

// CheckFileSize stats path and fails when it exceeds the size cap.
func CheckFileSize(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return &FileTooLargeError{Path: path, Size: info.Size(), Max: MaxFileSize}
	}
	return nil
}

// AtomicWriteFile writes content to path by staging it in a uniquely named
// temp file inside the destination directory, syncing, and renaming into
// place. The temp file lives on the same volume as the destination so the
// rename is atomic; a crash never leaves a partially written destination.
func AtomicWriteFile(path string, content []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// CanonicalPath resolves path to an absolute, symlink-free form for identity
// comparisons. Paths that cannot be resolved (typically files that do not
// exist yet) fall back to the cleaned absolute form, and finally to the
// literal input.
func CanonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
