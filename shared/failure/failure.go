package failure

import (
	"errors"
	"net/http"
)

// Kind names a failure class independently of the transport that reports it.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindTransient       Kind = "transient"
	KindInternal        Kind = "internal"
)

var kindCodes = map[Kind]int{
	KindInvalidArgument: http.StatusBadRequest,
	KindUnauthorized:    http.StatusUnauthorized,
	KindForbidden:       http.StatusForbidden,
	KindNotFound:        http.StatusNotFound,
	KindConflict:        http.StatusConflict,
	KindTransient:       http.StatusServiceUnavailable,
	KindInternal:        http.StatusInternalServerError,
}

// Failure is an error safe to show to the caller, with its HTTP status.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = newFailure(KindForbidden, "You don't have the required permissions")
var ResourceRestrictedError = newFailure(KindForbidden, "You don't have permission to access this resource")

func newFailure(kind Kind, msg string) *Failure {
	return &Failure{Kind: kind, Code: kindCodes[kind], Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// Is matches another Failure of the same kind, so errors.Is(err, ForbiddenError)
// holds for any forbidden failure.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Kind == other.Kind
}

// BadRequest wraps a validation error. A nil error yields nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(KindInvalidArgument, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(KindInvalidArgument, msg)
}

func Unauthorized(msg string) error {
	return newFailure(KindUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(KindForbidden, msg)
}

// NotFound takes the entity name as its message.
func NotFound(entityName string) error {
	return newFailure(KindNotFound, entityName)
}

// Conflict reports a write that lost against current state, such as
// insufficient capacity or an overlapping price window.
func Conflict(msg string) error {
	return newFailure(KindConflict, msg)
}

// Transient reports a failure the caller may retry as a whole, such as a
// serialization conflict or an unreachable collaborator.
func Transient(msg string) error {
	return newFailure(KindTransient, msg)
}

// KindOf returns the kind carried by err, KindInternal for plain errors.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// MessageOf returns the caller-facing message of err without the context
// prefixes added while it was wrapped.
func MessageOf(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}

// IsCode reports whether err carries the given HTTP status.
func IsCode(err error, code int) bool {
	return GetCode(err) == code && err != nil
}

// Retryable reports whether err is a transient failure.
func Retryable(err error) bool {
	return KindOf(err) == KindTransient
}

// GetCode returns the HTTP status for err, 500 for plain errors.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
