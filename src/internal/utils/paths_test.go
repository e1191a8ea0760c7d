package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetAbsolutePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("paths below use unix separators")
	}

	tests := []struct {
		name    string
		path    string
		baseDir string
		want    string
	}{
		{"already absolute", "/test/file.txt", "/base/dir", "/test/file.txt"},
		{"relative", "relative/file.txt", "/base/dir", "/base/dir/relative/file.txt"},
		{"dot", "./file.txt", "/base/dir", "/base/dir/file.txt"},
		{"double dot", "../file.txt", "/base/dir", "/base/file.txt"},
		{"empty path", "", "/base/dir", "/base/dir"},
		{"empty base", "file.txt", "", "file.txt"},
		{"cleaning", "a//b/../c/file.txt", "/base//dir", "/base/dir/a/c/file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetAbsolutePath(tt.path, tt.baseDir); got != tt.want {
				t.Errorf("GetAbsolutePath(%q, %q) = %q, want %q", tt.path, tt.baseDir, got, tt.want)
			}
		})
	}
}

func TestGetAbsolutePath_HomeExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got, want := GetAbsolutePath("~/Backups", "/base"), filepath.Join(home, "Backups"); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	if got := GetAbsolutePath("~", "/base"); got != home {
		t.Errorf("Expected %s, got %s", home, got)
	}
}
