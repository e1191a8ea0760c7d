// Package backup copies the hosts file to timestamped files and restores them.
//
// Backups are named hosts.bak.<unix seconds> and written to the user's desktop
// directory unless a directory is configured.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/adrg/xdg"

	apperrors "github.com/hostsctl/hostsctl/src/internal/errors"
	"github.com/hostsctl/hostsctl/src/internal/log"
	"github.com/hostsctl/hostsctl/src/internal/utils"
)

const filePrefix = "hosts.bak."

var nameRegexp = regexp.MustCompile(`^hosts\.bak\.(\d+)$`)

// Info describes one backup file.
type Info struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// ManagerConfig contains configuration for Manager.
type ManagerConfig struct {
	// HostsPath is the file that is backed up and restored.
	HostsPath string
	// Dir overrides the desktop directory (optional).
	Dir string
	// DesktopDir resolves the desktop directory (default: XDG user dirs).
	DesktopDir func() string
	// Now is the clock used for backup names (default: time.Now).
	Now func() time.Time
}

// Manager creates, lists and restores hosts backups. It holds no state
// besides its configuration.
type Manager struct {
	hostsPath  string
	dir        string
	desktopDir func() string
	now        func() time.Time
}

// NewManager creates a new backup manager.
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.DesktopDir == nil {
		cfg.DesktopDir = func() string { return xdg.UserDirs.Desktop }
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Manager{
		hostsPath:  cfg.HostsPath,
		dir:        cfg.Dir,
		desktopDir: cfg.DesktopDir,
		now:        cfg.Now,
	}
}

// FileName returns the backup file name for t.
func FileName(t time.Time) string {
	return filePrefix + strconv.FormatInt(t.Unix(), 10)
}

// Dir returns the destination directory. It must exist.
func (m *Manager) Dir() (string, error) {
	dir := m.dir
	if dir == "" {
		dir = m.desktopDir()
	}
	if dir == "" {
		return "", apperrors.NewNoDesktopDirError("could not determine the desktop directory", nil)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", apperrors.NewNoDesktopDirError(fmt.Sprintf("backup directory %s is unavailable", dir), err)
	}
	if !info.IsDir() {
		return "", apperrors.NewNoDesktopDirError(fmt.Sprintf("backup destination %s is not a directory", dir), nil)
	}
	return dir, nil
}

// Backup copies the hosts file to <dir>/hosts.bak.<unix seconds> and
// returns the destination path.
func (m *Manager) Backup() (string, error) {
	dir, err := m.Dir()
	if err != nil {
		return "", err
	}

	dst := filepath.Join(dir, FileName(m.now()))
	if err := utils.CopyFile(m.hostsPath, dst); err != nil {
		return "", apperrors.NewIOError(fmt.Sprintf("failed to copy %s to %s", m.hostsPath, dst), err)
	}

	log.Infof("Backed up %s to %s", m.hostsPath, dst)
	return dst, nil
}

// List returns the backups in the destination directory, newest first.
func (m *Manager) List() ([]Info, error) {
	dir, err := m.Dir()
	if err != nil {
		if errors.Is(err, apperrors.ErrNoDesktopDir) {
			return []Info{}, nil
		}
		return nil, err
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.NewIOError(fmt.Sprintf("failed to read %s", dir), err)
	}

	backups := []Info{}
	for _, file := range files {
		ts, ok := parseName(file.Name())
		if !ok || file.IsDir() {
			continue
		}
		info, err := file.Info()
		if err != nil {
			log.Debugf("Skipping backup %s: %v", file.Name(), err)
			continue
		}
		backups = append(backups, Info{
			Name:      file.Name(),
			Path:      filepath.Join(dir, file.Name()),
			Size:      info.Size(),
			CreatedAt: ts,
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})

	return backups, nil
}

// Restore replaces the hosts file with the named backup. An existing hosts
// file is backed up first and the path of that safety backup is returned.
func (m *Manager) Restore(name string) (string, error) {
	if _, ok := parseName(name); !ok {
		return "", apperrors.NewValidationError(fmt.Sprintf("invalid backup name %q, expected hosts.bak.<digits>", name), nil)
	}

	dir, err := m.Dir()
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return "", apperrors.NewNotFoundError(fmt.Sprintf("backup %s not found", name))
	}
	if err != nil {
		return "", apperrors.NewIOError(fmt.Sprintf("failed to read backup %s", name), err)
	}

	var safety string
	if _, err := os.Stat(m.hostsPath); err == nil {
		if safety, err = m.Backup(); err != nil {
			return "", err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", apperrors.NewIOError(fmt.Sprintf("failed to stat %s", m.hostsPath), err)
	}

	if err := utils.WriteFileAtomic(m.hostsPath, content); err != nil {
		return safety, apperrors.NewIOError(fmt.Sprintf("failed to restore %s", m.hostsPath), err)
	}

	log.Infof("Restored %s from %s", m.hostsPath, name)
	return safety, nil
}

func parseName(name string) (time.Time, bool) {
	m := nameRegexp.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	secs, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(secs, 0), true
}
