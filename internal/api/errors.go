package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned for any 401. The session token has already
// been cleared when the caller sees it.
var ErrUnauthorized = errors.New("unauthorized")

// ErrValidationRejected is the sentinel behind every ValidationError.
var ErrValidationRejected = errors.New("validation rejected")

const defaultFailureMessage = "Request failed"

type RequestFailedError struct {
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	return e.Message
}

// ValidationError is raised locally, before anything is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationRejected
}
