package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"persondocs/internal/common"
)

// Layout maps a (person unique id, stored filename) pair to an absolute
// path under the upload root and owns directory creation. Both path
// segments are sanitized so user-supplied names can never traverse out of
// the root.
type Layout struct {
	root   string
	logger *slog.Logger
}

func NewLayout(root string, logger *slog.Logger) *Layout {
	if logger == nil {
		logger = slog.Default()
	}
	return &Layout{root: root, logger: logger}
}

func (l *Layout) Root() string { return l.root }

// Path computes the deterministic location for a stored file:
// <root>/<personUID>/<diskName>.
func (l *Layout) Path(personUID, diskName string) string {
	return filepath.Join(l.root, common.SanitizeFilename(personUID), common.SanitizeFilename(diskName))
}

// Save writes the file contents, creating the person directory first.
// It returns the absolute path written and the byte count.
func (l *Layout) Save(personUID, diskName string, r io.Reader) (string, int64, error) {
	path := l.Path(personUID, diskName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		l.logger.Error("failed to create person directory", "person_uid", personUID, "error", err)
		return "", 0, fmt.Errorf("create person directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create file: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		l.logger.Error("failed to write upload", "path", path, "error", err)
		return "", 0, fmt.Errorf("write file: %w", err)
	}

	l.logger.Info("upload stored", "person_uid", personUID, "filename", diskName, "bytes", n)
	return path, n, nil
}

// Open returns the stored file for reading. A row that no longer resolves
// to a file yields common.ErrFileMissing so callers can report an orphaned
// document distinctly from an unknown one.
func (l *Layout) Open(personUID, diskName string) (*os.File, error) {
	f, err := os.Open(l.Path(personUID, diskName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrFileMissing
		}
		return nil, err
	}
	return f, nil
}

// Remove deletes the stored file. An already-absent file is reported via
// missing=true with a nil error; any other failure is returned as-is.
func (l *Layout) Remove(personUID, diskName string) (missing bool, err error) {
	path := l.Path(personUID, diskName)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("file already missing on delete", "path", path)
			return true, nil
		}
		return false, err
	}
	return false, nil
}
