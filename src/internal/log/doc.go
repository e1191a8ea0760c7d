// Package log provides simple leveled logging for hostsctl.
//
// Four levels are supported: DEBUG (only with -verbose), INFO, WARN and ERROR.
// Errors are written to stderr, everything else to stdout. Both streams can be
// redirected with SetOutput, which tests use to assert on log lines.
//
//	log.Infof("Loaded %d entries from %s", len(entries), path)
//	log.Warnf("Failed to read hosts file: %v", err)
//
// The package keeps global state guarded by a mutex so handlers of the HTTP
// API can log concurrently.
package log
