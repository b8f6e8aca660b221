package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	Err        error // wrapped storage/collaborator error, may be nil
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func (e *ErrorWithStatusCode) Unwrap() error {
	return e.Err
}

// NewValidation marks a business-rule rejection (bad input, unknown course,
// persistence constraint violation).
func NewValidation(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// WrapValidation keeps the underlying error reachable via errors.Unwrap
// without leaking storage error types across the service boundary.
func WrapValidation(message string, err error) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest, Err: err}
}

// NewNotFound marks a missing referenced entity (identity, topic, reply parent).
func NewNotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// NewConflict marks a duplicate (title, message) pair so callers can render
// "already exists" instead of "bad input".
func NewConflict(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict}
}

func NewUnauthorized(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

func hasStatus(err error, code int) bool {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode == code
	}
	return false
}

func IsValidation(err error) bool   { return hasStatus(err, http.StatusBadRequest) }
func IsNotFound(err error) bool     { return hasStatus(err, http.StatusNotFound) }
func IsConflict(err error) bool     { return hasStatus(err, http.StatusConflict) }
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }
