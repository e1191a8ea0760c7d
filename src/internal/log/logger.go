package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var (
	mu          sync.Mutex
	verbose     = false
	disableLogs = false
	colored     = true
	stdout      io.Writer = os.Stdout
	stderr      io.Writer = os.Stderr

	coloredPrefixes = map[level]string{
		levelDebug: "\033[37m[DBG]\033[0m",
		levelInfo:  "\033[36m[INF]\033[0m",
		levelWarn:  "\033[33m[WRN]\033[0m",
		levelError: "\033[31m[ERR]\033[0m",
	}
	plainPrefixes = map[level]string{
		levelDebug: "[DBG]",
		levelInfo:  "[INF]",
		levelWarn:  "[WRN]",
		levelError: "[ERR]",
	}
)

// SetVerbose enables or disables debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether debug output is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// DisableLogs silences every level.
func DisableLogs() {
	mu.Lock()
	defer mu.Unlock()
	disableLogs = true
}

// SetColored toggles ANSI colors in level prefixes.
func SetColored(c bool) {
	mu.Lock()
	defer mu.Unlock()
	colored = c
}

// SetOutput redirects logging. Errors go to errW, everything else to outW.
// Passing nil keeps the current writer.
func SetOutput(outW, errW io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if outW != nil {
		stdout = outW
	}
	if errW != nil {
		stderr = errW
	}
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	logMessage(levelDebug, format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(levelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(levelWarn, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
	os.Exit(1)
}

func logMessage(lvl level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if disableLogs || (lvl == levelDebug && !verbose) {
		return
	}

	prefix := plainPrefixes[lvl]
	if colored {
		prefix = coloredPrefixes[lvl]
	}
	output := prefix + " " + fmt.Sprintf(format, args...) + "\n"

	if lvl == levelError {
		_, _ = io.WriteString(stderr, output)
	} else {
		_, _ = io.WriteString(stdout, output)
	}
}
