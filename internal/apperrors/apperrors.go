package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds the API distinguishes. Handlers match
// on these with errors.Is to pick a status code.
var (
	ErrNotFound     = errors.New("not found")
	ErrReference    = errors.New("bad reference")
	ErrConflict     = errors.New("conflict")
	ErrPrecondition = errors.New("precondition failed")
	ErrValidation   = errors.New("validation failed")
)

// AppError carries a failure kind plus a human-readable message.
type AppError struct {
	Err     error  // one of the sentinel errors above
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that the entity addressed by id does not exist.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s with id %s doesn't exist", resource, id),
	}
}

// Reference reports a foreign key in a payload that resolves to nothing.
func Reference(field, id string) *AppError {
	return &AppError{
		Err:     ErrReference,
		Message: fmt.Sprintf("%s %s doesn't reference an existing entity", field, id),
		Field:   field,
	}
}

// Conflict reports a uniqueness violation, e.g. a second profile for one user.
func Conflict(resource, detail string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s conflict: %s", resource, detail),
	}
}

// Precondition reports a state-dependent rule violation, e.g. unsubscribing
// from a user who was never subscribed to.
func Precondition(message string) *AppError {
	return &AppError{
		Err:     ErrPrecondition,
		Message: message,
	}
}

// ValidationFailed reports a malformed field in a request payload.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
