package hosts

import (
	"os"
	"runtime"
	"strings"
)

const (
	unixHostsPath      = "/etc/hosts"
	defaultWindowsRoot = `C:\Windows`
)

// ResolvePath returns the absolute path of the system hosts file.
// The file is not required to exist.
func ResolvePath() string {
	return resolvePath(runtime.GOOS, os.Getenv)
}

func resolvePath(goos string, getenv func(string) string) string {
	if goos != "windows" {
		return unixHostsPath
	}

	root := getenv("SystemRoot")
	if root == "" {
		root = defaultWindowsRoot
	}
	return strings.TrimRight(root, `\/`) + `\System32\drivers\etc\hosts`
}
