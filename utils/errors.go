package utils

import (
	"errors"
	"net/http"
)

// Error kinds surfaced by the crawler and blog services.
const (
	KindValidation    = "validation"
	KindNotFound      = "not_found"
	KindFrameNotFound = "frame_not_found"
	KindEnvironment   = "environment"
)

// CustomError carries an HTTP status code and an error kind alongside the
// user-facing message.
type CustomError struct {
	StatusCode int    `json:"-"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError is the generic constructor; prefer the kind-specific helpers.
func NewCustomError(statusCode int, kind string, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Kind: kind, Message: message}
}

// NewValidationError marks malformed or empty caller input.
func NewValidationError(message string) *CustomError {
	return NewCustomError(http.StatusBadRequest, KindValidation, message)
}

// NewNotFoundError marks input that parsed fine but matched nothing.
func NewNotFoundError(message string) *CustomError {
	return NewCustomError(http.StatusNotFound, KindNotFound, message)
}

// NewFrameNotFoundError marks a crawl where the place panel iframe never
// appeared on the remote page.
func NewFrameNotFoundError(message string) *CustomError {
	return NewCustomError(http.StatusBadGateway, KindFrameNotFound, message)
}

// NewEnvironmentError marks a host that cannot launch the browser at all.
func NewEnvironmentError(message string) *CustomError {
	return NewCustomError(http.StatusInternalServerError, KindEnvironment, message)
}

// IsKind reports whether err is a CustomError of the given kind.
func IsKind(err error, kind string) bool {
	var customErr *CustomError
	return errors.As(err, &customErr) && customErr.Kind == kind
}
