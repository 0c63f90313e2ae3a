package errs

import (
	"errors"
	"strings"
)

var (
	// ErrBackendUnavailable means the active backend lacks the configuration
	// (credentials, connection) it needs for metadata operations.
	ErrBackendUnavailable = errors.New("storage backend not configured")

	// ErrStorageUnconfigured means no object store is bound.
	ErrStorageUnconfigured = errors.New("object storage not configured")

	// ErrBucketNotFound means the configured container is missing on the remote side.
	ErrBucketNotFound = errors.New("storage bucket not found")

	// ErrNotImplemented is terminal; the caller should pick an upload-capable backend.
	ErrNotImplemented = errors.New("operation not implemented by this backend")

	ErrPayloadTooLarge      = errors.New("file too large")
	ErrNotFound             = errors.New("photo not found")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingFile          = errors.New("no file provided")
	ErrUsernameTaken        = errors.New("username already exists")
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field violation found in a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsStorageConfig reports whether err stems from object-store configuration.
func IsStorageConfig(err error) bool {
	return errors.Is(err, ErrStorageUnconfigured) || errors.Is(err, ErrBucketNotFound)
}
