// Package editor opens the hosts file in an external text editor.
package editor

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/hostsctl/hostsctl/src/internal/log"
)

// Command returns the argv used to open path. A non-empty custom command is
// split on whitespace and path is appended to it.
func Command(goos, custom, path string) []string {
	if fields := strings.Fields(custom); len(fields) > 0 {
		return append(fields, path)
	}

	switch goos {
	case "windows":
		return []string{"notepad", path}
	case "darwin":
		return []string{"open", "-e", path}
	default:
		return []string{"xdg-open", path}
	}
}

// Launcher spawns the editor without waiting for it to exit.
type Launcher struct {
	custom string
	start  func(argv []string) error
}

// NewLauncher creates a launcher. custom overrides the OS default editor.
func NewLauncher(custom string) *Launcher {
	return &Launcher{custom: custom, start: startDetached}
}

// Open starts the editor on path. Only failures to start are reported.
func (l *Launcher) Open(path string) error {
	argv := Command(runtime.GOOS, l.custom, path)
	log.Debugf("Starting editor: %v", argv)

	if err := l.start(argv); err != nil {
		return fmt.Errorf("failed to start editor %q: %w", argv[0], err)
	}
	return nil
}

func startDetached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the child so it does not linger as a zombie.
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debugf("Editor %s exited: %v", argv[0], err)
		}
	}()
	return nil
}
