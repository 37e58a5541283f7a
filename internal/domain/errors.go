package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every *Error carries exactly one of these, so callers can
// branch with errors.Is without knowing the concrete message.
var (
	// ErrNotFound is returned when a referenced account, recipe or email is absent.
	ErrNotFound = errors.New("NOT_FOUND")

	// ErrInvalidCredential is returned when a password does not match the stored hash.
	ErrInvalidCredential = errors.New("INVALID_CREDENTIAL")

	// ErrInvalidRequest is returned for structurally invalid input,
	// e.g. a new password that differs from its confirmation.
	ErrInvalidRequest = errors.New("INVALID_REQUEST")

	// ErrConflict is returned when storage reports a unique constraint violation.
	ErrConflict = errors.New("CONFLICT")

	// ErrUnauthenticated is returned when a request carries no usable identity.
	ErrUnauthenticated = errors.New("UNAUTHENTICATED")

	// ErrDeleteFailed is returned when the cascading account delete fails
	// after it started. The surrounding transaction is always rolled back.
	ErrDeleteFailed = errors.New("DELETE_FAILED")

	// ErrValidationFailed is returned when field-level validation fails.
	ErrValidationFailed = errors.New("VALIDATION_FAILED")
)

// defaultStatus maps each kind to its HTTP status.
var defaultStatus = map[error]int{
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidCredential: http.StatusBadRequest,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrConflict:          http.StatusConflict,
	ErrUnauthenticated:   http.StatusUnauthorized,
	ErrDeleteFailed:      http.StatusInternalServerError,
	ErrValidationFailed:  http.StatusBadRequest,
}

// Error is a domain error with an explicit HTTP status and a message that is
// safe to show to clients. The wrapped cause is for logs only.
type Error struct {
	Kind    error
	Status  int
	Message string
	Fields  map[string]string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// WithStatus returns a copy of e that reports status instead of the kind's default.
func (e *Error) WithStatus(status int) *Error {
	c := *e
	c.Status = status
	return &c
}

// StatusCode returns the HTTP status for e.
func (e *Error) StatusCode() int {
	if e.Status != 0 {
		return e.Status
	}
	if s, ok := defaultStatus[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// NewError builds a domain error of the given kind.
func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// NotFound reports that the named entity does not exist.
func NotFound(entity string) *Error {
	return &Error{Kind: ErrNotFound, Message: entity + " not found"}
}

// InvalidCredential reports a password mismatch.
func InvalidCredential(message string) *Error {
	return &Error{Kind: ErrInvalidCredential, Message: message}
}

// InvalidRequest reports structurally invalid input.
func InvalidRequest(message string) *Error {
	return &Error{Kind: ErrInvalidRequest, Message: message}
}

// Conflict reports a uniqueness violation.
func Conflict(message string, cause error) *Error {
	return &Error{Kind: ErrConflict, Message: message, Err: cause}
}

// DeleteFailed wraps the storage error that aborted an account deletion.
func DeleteFailed(cause error) *Error {
	return &Error{Kind: ErrDeleteFailed, Message: "failed to delete account", Err: cause}
}

// ValidationFailed reports field-level validation errors keyed by field name.
func ValidationFailed(fields map[string]string) *Error {
	return &Error{Kind: ErrValidationFailed, Message: "validation failed", Fields: fields}
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var derr *Error
	if errors.As(err, &derr) {
		return derr, true
	}
	return nil, false
}
