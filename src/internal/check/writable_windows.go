//go:build windows

package check

import "os"

// Windows has no access(2); opening for write without truncating is the
// closest equivalent.
func writable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	return f.Close()
}
