package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the requested record does not exist
var ErrNotFound = errors.New("not found")

// Error carries a non-2xx API response: the HTTP status and the
// user-facing message from the response body, when the server sent one.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

// Is lets a 404 response match ErrNotFound through errors.Is while still
// carrying the server message.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// UserMessage returns the server-provided message, or the given fallback
// when the response carried none.
func (e *Error) UserMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// IsNotFound reports whether err represents a missing record
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// FailureMessage extracts a user-facing message from any client error,
// preferring the server-provided one.
func FailureMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage(fallback)
	}
	return fallback
}
