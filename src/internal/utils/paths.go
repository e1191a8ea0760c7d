package utils

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// GetAbsolutePath returns path if it is absolute, expands a leading "~" to
// the home directory, and otherwise joins it with baseDir.
func GetAbsolutePath(path, baseDir string) string {
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Clean(filepath.Join(baseDir, path))
}
