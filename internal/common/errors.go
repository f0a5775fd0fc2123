package common

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"viztube/internal/domain"
)

// ErrorKind classifies a failure for the HTTP layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidIdentifier
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Status maps the kind to its HTTP status code.
func (k ErrorKind) Status() int {
	switch k {
	case KindInvalidIdentifier, KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "invalid_identifier"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError is the error every service returns to its handler.
type AppError struct {
	Kind    ErrorKind
	Message string
	Errors  []string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.cause }

// Stack renders the stack trace of the cause when it carries one.
func (e *AppError) Stack() string {
	if e.cause == nil {
		return fmt.Sprintf("%+v", errors.New(e.Message))
	}
	return fmt.Sprintf("%+v", e.cause)
}

// WithCause attaches a stack-carrying cause.
func (e *AppError) WithCause(err error) *AppError {
	e.cause = errors.WithStack(err)
	return e
}

func newAppError(kind ErrorKind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg, Errors: []string{}}
}

func InvalidIdentifier(msg string) *AppError { return newAppError(KindInvalidIdentifier, msg) }
func Unauthorized(msg string) *AppError      { return newAppError(KindUnauthorized, msg) }
func Forbidden(msg string) *AppError         { return newAppError(KindForbidden, msg) }
func NotFound(msg string) *AppError          { return newAppError(KindNotFound, msg) }
func Conflict(msg string) *AppError          { return newAppError(KindConflict, msg) }

// Validation builds a 400 with optional per-field messages.
func Validation(msg string, details ...string) *AppError {
	e := newAppError(KindValidation, msg)
	if len(details) > 0 {
		e.Errors = details
	}
	return e
}

// Internal wraps an unexpected error. The cause is never shown to clients.
func Internal(err error) *AppError {
	e := newAppError(KindInternal, "Internal server error")
	if err != nil {
		e.cause = errors.WithStack(err)
	}
	return e
}

// AsAppError normalizes any error into an AppError. Store sentinels that
// escape a service unhandled still map to their natural kinds.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	switch {
	case stderrors.Is(err, domain.ErrNotFound):
		return NotFound("Resource not found").WithCause(err)
	case stderrors.Is(err, domain.ErrDuplicate):
		return Conflict("Resource already exists").WithCause(err)
	}
	return Internal(err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Kind == kind
}
