package backup

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	apperrors "github.com/hostsctl/hostsctl/src/internal/errors"
)

func newTestManager(t *testing.T, content string, now time.Time) (*Manager, string, string) {
	t.Helper()

	tmpDir := t.TempDir()
	hostsPath := filepath.Join(tmpDir, "hosts")
	desktop := filepath.Join(tmpDir, "Desktop")

	if err := os.Mkdir(desktop, 0755); err != nil {
		t.Fatalf("Failed to create desktop: %v", err)
	}
	if err := os.WriteFile(hostsPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write hosts: %v", err)
	}

	m := NewManager(ManagerConfig{
		HostsPath:  hostsPath,
		DesktopDir: func() string { return desktop },
		Now:        func() time.Time { return now },
	})
	return m, hostsPath, desktop
}

func TestBackup(t *testing.T) {
	content := "127.0.0.1 localhost\n# 10.0.0.1 old.local\n"
	m, _, desktop := newTestManager(t, content, time.Unix(1700000000, 0))

	dst, err := m.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}

	if filepath.Dir(dst) != desktop {
		t.Errorf("Expected backup in %s, got %s", desktop, dst)
	}
	if !regexp.MustCompile(`^hosts\.bak\.\d+$`).MatchString(filepath.Base(dst)) {
		t.Errorf("Unexpected backup name %s", filepath.Base(dst))
	}
	if filepath.Base(dst) != "hosts.bak.1700000000" {
		t.Errorf("Expected epoch seconds suffix, got %s", filepath.Base(dst))
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read backup: %v", err)
	}
	if string(got) != content {
		t.Errorf("Expected backup content %q, got %q", content, got)
	}
}

func TestBackup_NoDesktopDir(t *testing.T) {
	tests := []struct {
		name    string
		desktop func(t *testing.T) string
	}{
		{"empty", func(t *testing.T) string { return "" }},
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") }},
		{"file", func(t *testing.T) string {
			p := filepath.Join(t.TempDir(), "file")
			os.WriteFile(p, nil, 0644)
			return p
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desktop := tt.desktop(t)
			m := NewManager(ManagerConfig{
				HostsPath:  filepath.Join(t.TempDir(), "hosts"),
				DesktopDir: func() string { return desktop },
			})

			_, err := m.Backup()
			if !errors.Is(err, apperrors.ErrNoDesktopDir) {
				t.Errorf("Expected NoDesktopDir, got %v", err)
			}
		})
	}
}

func TestBackup_MissingHostsFile(t *testing.T) {
	m, hostsPath, desktop := newTestManager(t, "", time.Unix(1, 0))
	os.Remove(hostsPath)

	_, err := m.Backup()
	if !errors.Is(err, apperrors.ErrIO) {
		t.Errorf("Expected IO error, got %v", err)
	}

	files, _ := os.ReadDir(desktop)
	if len(files) != 0 {
		t.Errorf("Expected no backup file to be created, got %d", len(files))
	}
}

func TestBackup_ConfiguredDirWins(t *testing.T) {
	m, hostsPath, _ := newTestManager(t, "x", time.Unix(5, 0))
	custom := t.TempDir()

	m = NewManager(ManagerConfig{
		HostsPath:  hostsPath,
		Dir:        custom,
		DesktopDir: func() string { return "" },
		Now:        func() time.Time { return time.Unix(5, 0) },
	})

	dst, err := m.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if dst != filepath.Join(custom, "hosts.bak.5") {
		t.Errorf("Unexpected destination %s", dst)
	}
}

func TestList(t *testing.T) {
	now := time.Unix(100, 0)
	m, _, desktop := newTestManager(t, "x", now)

	for _, name := range []string{"hosts.bak.10", "hosts.bak.300", "hosts.bak.20", "hosts.bak.x", "notes.txt"} {
		os.WriteFile(filepath.Join(desktop, name), []byte(name), 0644)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var names []string
	for _, b := range backups {
		names = append(names, b.Name)
	}
	want := []string{"hosts.bak.300", "hosts.bak.20", "hosts.bak.10"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, names)
		}
	}
	if backups[0].Size != int64(len("hosts.bak.300")) || !backups[0].CreatedAt.Equal(time.Unix(300, 0)) {
		t.Errorf("Unexpected info %+v", backups[0])
	}
}

func TestList_NoDesktopDir(t *testing.T) {
	m := NewManager(ManagerConfig{DesktopDir: func() string { return "" }})

	backups, err := m.List()
	if err != nil || len(backups) != 0 {
		t.Errorf("Expected empty list without error, got %v, %v", backups, err)
	}
}

func TestRestore(t *testing.T) {
	m, hostsPath, desktop := newTestManager(t, "current\n", time.Unix(2000, 0))
	os.WriteFile(filepath.Join(desktop, "hosts.bak.1000"), []byte("old\n"), 0644)

	safety, err := m.Restore("hosts.bak.1000")
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, _ := os.ReadFile(hostsPath)
	if string(got) != "old\n" {
		t.Errorf("Expected restored content, got %q", got)
	}

	saved, _ := os.ReadFile(safety)
	if string(saved) != "current\n" {
		t.Errorf("Expected safety backup of current content, got %q", saved)
	}
}

func TestRestore_SameSecondAsBackup(t *testing.T) {
	m, hostsPath, desktop := newTestManager(t, "current\n", time.Unix(1000, 0))
	os.WriteFile(filepath.Join(desktop, "hosts.bak.1000"), []byte("old\n"), 0644)

	if _, err := m.Restore("hosts.bak.1000"); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, _ := os.ReadFile(hostsPath)
	if string(got) != "old\n" {
		t.Errorf("Expected backup content to be read before the safety copy, got %q", got)
	}
}

func TestRestore_Errors(t *testing.T) {
	m, _, _ := newTestManager(t, "x", time.Unix(1, 0))

	if _, err := m.Restore("../etc/passwd"); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if _, err := m.Restore("hosts.bak.42"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Expected not found error, got %v", err)
	}
}
