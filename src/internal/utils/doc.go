// Package utils provides small filesystem helpers shared by hostsctl packages.
//
//   - GetAbsolutePath resolves configuration-relative paths.
//   - CopyFile copies bytes between files (backups, restores).
//   - WriteFileAtomic replaces a file through a temporary sibling and a
//     rename, so readers never observe a half-written hosts file.
//   - CloseOrWarn closes a resource and logs a failure instead of returning it.
package utils
