// Package apperror defines the classified application error carried from the
// service layer to the HTTP envelope. Errors with a 4xx status code are
// client faults ("fail"), everything else is a server fault ("error").
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error with an HTTP status code attached.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the envelope classification for the error.
func (e *Error) Status() string {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return "fail"
	}
	return "error"
}

// New creates a classified error with an explicit status code.
func New(message string, statusCode int) *Error {
	return &Error{Message: message, StatusCode: statusCode}
}

// Newf creates a classified error with a formatted message.
func Newf(statusCode int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), StatusCode: statusCode}
}

// Wrap converts an arbitrary failure into a 500 error carrying the original
// message. An error that is already classified is returned unchanged so a
// deliberate 4xx raised inside a service is never overwritten.
func Wrap(err error, message string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{
		Message:    fmt.Sprintf("%s: %v", message, err),
		StatusCode: http.StatusInternalServerError,
	}
}

// From extracts the classified error from err, or classifies it as an
// internal server error.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Message: err.Error(), StatusCode: http.StatusInternalServerError}
}
