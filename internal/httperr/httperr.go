// Package httperr defines the error taxonomy for the API. Handlers return
// these errors instead of writing responses themselves; the server's boundary
// error handler maps each kind to an HTTP status and a JSON payload.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API error.
type Kind int

const (
	// KindInternal is the default for unclassified failures.
	KindInternal Kind = iota
	// KindValidation marks bad or missing user input.
	KindValidation
	// KindNotFound marks a missing referenced record.
	KindNotFound
	// KindPayloadTooLarge marks an upload exceeding the size limit.
	KindPayloadTooLarge
	// KindUnsupportedMedia marks an upload with a disallowed content type.
	KindUnsupportedMedia
	// KindUpstream marks a failure in an external collaborator (mail transport).
	KindUpstream
)

// Error is a classified API error with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, not exposed to the client
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error kind.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Validation creates a bad-input error.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a missing-record error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// PayloadTooLarge creates an upload-size error.
func PayloadTooLarge(format string, args ...interface{}) *Error {
	return &Error{Kind: KindPayloadTooLarge, Message: fmt.Sprintf(format, args...)}
}

// UnsupportedMedia creates a content-type error.
func UnsupportedMedia(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnsupportedMedia, Message: fmt.Sprintf(format, args...)}
}

// Upstream wraps an external collaborator failure.
func Upstream(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Err: err}
}

// Internal wraps an unclassified failure.
func Internal(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// FromError extracts an *Error, or wraps err as internal.
func FromError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Kind: KindInternal, Message: "Something went wrong!", Err: err}
}
