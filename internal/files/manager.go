package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions = 0o755

	// SoundFileName is the alert sound looked up under the base directory.
	// The file is optional; reminders degrade to notification-only.
	SoundFileName = "notify.wav"

	exportDirName = "exports"
)

// Manager centralizes where belajar keeps its assets and where weekly PDF
// exports land on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If
// basePath is empty, it falls back to ~/.belajar (or another location
// determined by ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing assets and exports.
func (m *Manager) BasePath() string {
	return m.basePath
}

// SoundPath resolves the alert sound asset. The file may not exist.
func (m *Manager) SoundPath() string {
	return filepath.Join(m.basePath, SoundFileName)
}

// ExportPath resolves the default destination for a weekly PDF export
// stamped with the given time's date.
func (m *Manager) ExportPath(t time.Time) string {
	name := fmt.Sprintf("Weekly_Timetable_%04d-%02d-%02d.pdf", t.Year(), t.Month(), t.Day())
	return filepath.Join(m.basePath, exportDirName, name)
}

// EnsureExportDir guarantees the export directory tree exists and returns
// its absolute path.
func (m *Manager) EnsureExportDir() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	dir := filepath.Join(m.basePath, exportDirName)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	return dir, nil
}
