// Package store implements the hosts entry operations on top of the file system.
//
// The file is the single source of truth: every call re-reads it and nothing
// is cached between calls, so edits made outside hostsctl are picked up on
// the next operation.
package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	apperrors "github.com/hostsctl/hostsctl/src/internal/errors"
	"github.com/hostsctl/hostsctl/src/internal/hosts"
	"github.com/hostsctl/hostsctl/src/internal/log"
	"github.com/hostsctl/hostsctl/src/internal/utils"
)

// Store reads and writes entries of one hosts file.
type Store struct {
	path   string
	banner string
}

// New creates a store for the hosts file at path. An empty banner uses the default one.
func New(path, banner string) *Store {
	if banner == "" {
		banner = hosts.DefaultBanner()
	}
	return &Store{path: path, banner: banner}
}

// Path returns the hosts file path.
func (s *Store) Path() string {
	return s.path
}

// Read parses the hosts file, returning diagnostics for skipped lines.
func (s *Store) Read() (hosts.ParseResult, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return hosts.ParseResult{Entries: []hosts.Entry{}}, apperrors.NewIOError(fmt.Sprintf("failed to read %s", s.path), err)
	}
	return hosts.Parse(string(content)), nil
}

// LoadAll returns every entry of the hosts file. Read failures are logged and
// yield an empty slice so callers can always render a table.
func (s *Store) LoadAll() []hosts.Entry {
	result, err := s.Read()
	if err != nil {
		log.Warnf("Failed to load hosts file: %v", err)
		return []hosts.Entry{}
	}

	for _, skipped := range result.Skipped {
		log.Debugf("Skipped line %d (%s): %q", skipped.Line, skipped.Reason, skipped.Text)
	}
	log.Debugf("Loaded %d entries from %s", len(result.Entries), s.path)

	return result.Entries
}

// AddEntry appends an enabled ip → hostname mapping. It fails with a
// DUPLICATE_MAPPING error when the exact pair already exists, enabled or not.
func (s *Store) AddEntry(ip, hostname string) error {
	entry := hosts.Entry{IP: ip, Hostname: hostname, Enabled: true}
	if err := entry.Validate(); err != nil {
		return apperrors.NewValidationError("invalid mapping", err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperrors.NewIOError(fmt.Sprintf("failed to read %s", s.path), err)
	}

	if hosts.Contains(hosts.ParseEntries(string(content)), ip, hostname) {
		return apperrors.NewDuplicateMappingError(ip, hostname)
	}

	initialize := strings.TrimSpace(string(content)) == ""
	var text string
	if !initialize && !strings.HasSuffix(string(content), "\n") {
		text = "\n"
	}
	text += hosts.SerializeIncremental([]hosts.Entry{entry}, s.banner, initialize)

	if err := s.appendText(text, initialize); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("failed to append to %s", s.path), err)
	}

	log.Infof("Added %s to %s", entry, s.path)
	return nil
}

// appendText appends to the file, or replaces a blank file when initializing.
func (s *Store) appendText(text string, initialize bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if initialize {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(s.path, flags, utils.DefaultFileMode)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SaveAll replaces the hosts file with the banner followed by entries.
// Lines that are not mappings are dropped. The write goes through a
// temporary file renamed into place.
func (s *Store) SaveAll(entries []hosts.Entry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return apperrors.NewValidationError("refusing to save invalid entry", err)
		}
	}

	if err := utils.WriteFileAtomic(s.path, []byte(hosts.Serialize(entries, s.banner))); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("failed to write %s", s.path), err)
	}

	log.Infof("Saved %d entries to %s", len(entries), s.path)
	return nil
}

// SetEnabled toggles the exact (ip, hostname) mapping and rewrites the file.
func (s *Store) SetEnabled(ip, hostname string, enabled bool) error {
	entries, err := s.loadStrict()
	if err != nil {
		return err
	}

	updated, found := hosts.SetEnabled(entries, ip, hostname, enabled)
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("mapping %s %s not found", ip, hostname))
	}
	return s.SaveAll(updated)
}

// Remove deletes the exact (ip, hostname) mapping and rewrites the file.
func (s *Store) Remove(ip, hostname string) error {
	entries, err := s.loadStrict()
	if err != nil {
		return err
	}

	updated, found := hosts.Remove(entries, ip, hostname)
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("mapping %s %s not found", ip, hostname))
	}
	return s.SaveAll(updated)
}

// loadStrict is LoadAll without the empty fallback: a rewrite based on an
// unreadable file would wipe it.
func (s *Store) loadStrict() ([]hosts.Entry, error) {
	result, err := s.Read()
	if err != nil {
		return nil, err
	}
	return result.Entries, nil
}
