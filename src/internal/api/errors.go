package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/hostsctl/hostsctl/src/internal/errors"
	"github.com/hostsctl/hostsctl/src/internal/log"
)

// ErrorCode represents standard API error codes.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid request data.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeDuplicateMapping indicates the (ip, hostname) pair already exists.
	ErrCodeDuplicateMapping ErrorCode = "duplicate_mapping"

	// ErrCodeNoDesktopDir indicates no backup destination is available.
	ErrCodeNoDesktopDir ErrorCode = "no_desktop_dir"

	// ErrCodeIOError indicates the hosts file or a backup could not be read or written.
	ErrCodeIOError ErrorCode = "io_error"

	// ErrCodeForbidden indicates the client is not allowed to use the API.
	ErrCodeForbidden ErrorCode = "forbidden"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "internal_error"
)

// APIError represents a structured API error response.
type APIError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError for JSON responses.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code ErrorCode, message string) APIError {
	return APIError{Code: code, Message: message}
}

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, err APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err})
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, message))
}

// WriteForbidden writes a 403 Forbidden error.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// WriteDomainError maps an operation error onto a status code and API error code.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeValidation:
		WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, err.Error()))
	case apperrors.ErrCodeDuplicateMapping:
		WriteError(w, http.StatusConflict, NewAPIError(ErrCodeDuplicateMapping, err.Error()))
	case apperrors.ErrCodeNoDesktopDir:
		WriteError(w, http.StatusConflict, NewAPIError(ErrCodeNoDesktopDir, err.Error()))
	case apperrors.ErrCodeNotFound:
		WriteError(w, http.StatusNotFound, NewAPIError(ErrCodeNotFound, err.Error()))
	case apperrors.ErrCodeIO:
		WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeIOError, err.Error()))
	default:
		log.Errorf("Unexpected error: %v", err)
		WriteInternalError(w, err.Error())
	}
}
