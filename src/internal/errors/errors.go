// Package errors provides the error kinds surfaced by hostsctl operations.
//
// Every operation-level failure is an *Error carrying a Code. Callers match
// kinds with the standard library:
//
//	if errors.Is(err, apperrors.ErrDuplicateMapping) { ... }
//
// Parsing never produces an error; only filesystem, validation and lookup
// failures do.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeIO indicates an open, read, write, copy or rename failure.
	ErrCodeIO ErrorCode = "IO_ERROR"

	// ErrCodeDuplicateMapping indicates an attempt to add an (ip, hostname) pair that already exists.
	ErrCodeDuplicateMapping ErrorCode = "DUPLICATE_MAPPING"

	// ErrCodeNoDesktopDir indicates the backup destination directory cannot be determined.
	ErrCodeNoDesktopDir ErrorCode = "NO_DESKTOP_DIR"

	// ErrCodeValidation indicates a malformed ip, hostname or backup name.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeNotFound indicates an unknown mapping or backup.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
)

// Sentinels for errors.Is matching. Only the code is compared.
var (
	ErrIO               = New(ErrCodeIO, "i/o failure")
	ErrDuplicateMapping = New(ErrCodeDuplicateMapping, "mapping already exists")
	ErrNoDesktopDir     = New(ErrCodeNoDesktopDir, "desktop directory is unavailable")
	ErrValidation       = New(ErrCodeValidation, "validation failed")
	ErrNotFound         = New(ErrCodeNotFound, "not found")
	ErrConfig           = New(ErrCodeConfig, "configuration error")
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// NewIOError wraps a filesystem failure.
func NewIOError(message string, cause error) *Error {
	return Wrap(ErrCodeIO, message, cause)
}

// NewDuplicateMappingError reports an already present (ip, hostname) pair.
func NewDuplicateMappingError(ip, hostname string) *Error {
	return New(ErrCodeDuplicateMapping, fmt.Sprintf("mapping %s %s already exists", ip, hostname))
}

// NewNoDesktopDirError reports that no backup destination could be resolved.
func NewNoDesktopDirError(message string, cause error) *Error {
	return Wrap(ErrCodeNoDesktopDir, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewNotFoundError creates a new lookup error.
func NewNotFoundError(message string) *Error {
	return New(ErrCodeNotFound, message)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}
