package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src")
	dst := filepath.Join(tmpDir, "dst")

	content := []byte("127.0.0.1 localhost\n\x00binary\xff")
	if err := os.WriteFile(src, content, 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}
	if err := os.WriteFile(dst, []byte("previous longer content that must be truncated"), 0644); err != nil {
		t.Fatalf("Failed to write destination: %v", err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("Expected %q, got %q", content, got)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	tmpDir := t.TempDir()
	if err := CopyFile(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dst")); err == nil {
		t.Error("Expected error for missing source")
	}
}

func TestWriteFileAtomic_New(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts")

	if err := WriteFileAtomic(path, []byte("a")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "a" {
		t.Errorf("Expected 'a', got %q", got)
	}
}

func TestWriteFileAtomic_ReplacesAndKeepsMode(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "hosts")

	if err := os.WriteFile(path, []byte("old content"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := WriteFileAtomic(path, []byte("new")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("Expected 'new', got %q", got)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
		}
	}

	entries, _ := os.ReadDir(tmpDir)
	if len(entries) != 1 {
		t.Errorf("Expected no temporary files left, got %d entries", len(entries))
	}
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "hosts")
	if err := WriteFileAtomic(path, []byte("x")); err == nil {
		t.Error("Expected error when parent directory does not exist")
	}
}

func TestCopyFile_FailedCopyLeavesNoDestination(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("opening a directory for reading fails earlier on windows")
	}

	tmpDir := t.TempDir()
	// Reading a directory fails after both files are open.
	src := filepath.Join(tmpDir, "srcdir")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(tmpDir, "hosts.bak.1")

	if err := CopyFile(src, dst); err == nil {
		t.Fatal("Expected error copying a directory")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("Expected %s to be removed, stat returned %v", dst, err)
	}
}

func TestWriteFileAtomic_KeepsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real-hosts")
	link := filepath.Join(tmpDir, "hosts")
	if err := os.WriteFile(target, []byte("old"), 0640); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(link, []byte("new")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("Expected %s to remain a symlink, mode %v", link, info.Mode())
	}
	got, _ := os.ReadFile(target)
	if string(got) != "new" {
		t.Errorf("Expected target to hold 'new', got %q", got)
	}
	if info, _ := os.Stat(target); info.Mode().Perm() != 0640 {
		t.Errorf("Expected mode 0640, got %v", info.Mode().Perm())
	}
}
