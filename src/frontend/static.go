// Package frontend serves the static files of the desktop web UI.
package frontend

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// uiDir serves files below root and refuses paths that resolve outside of it.
type uiDir struct {
	root string
}

func (d uiDir) Open(name string) (http.File, error) {
	// http.FileSystem names are slash-separated and rooted.
	rel := filepath.FromSlash(strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+name)), "/"))

	absRoot, err := filepath.Abs(d.root)
	if err != nil {
		return nil, err
	}
	full := filepath.Join(absRoot, rel)

	within, err := filepath.Rel(absRoot, full)
	if err != nil || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return nil, os.ErrNotExist
	}

	return os.Open(full)
}

// NewFileSystem returns an http.FileSystem for the UI files installed in dir,
// or nil when dir is empty.
func NewFileSystem(dir string) http.FileSystem {
	if dir == "" {
		return nil
	}
	return uiDir{root: dir}
}
