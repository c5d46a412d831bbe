// Package apperr defines the dashboard's error taxonomy and the classifier
// that turns arbitrary failures into it.
package apperr

import "errors"

// ErrUnavailable marks failures where the API could not be reached at all.
var ErrUnavailable = errors.New("service unavailable")

// Error is a classified failure. Message is safe to show to an operator;
// Status is the HTTP status when one was received, zero otherwise.
type Error struct {
	Message string
	Code    Code
	Status  int

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds an Error around cause so that errors.Is keeps matching it.
func Wrap(cause error, code Code, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, cause: cause}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf reports the Code carried by err, or CodeUnknown.
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.Code
	}
	return CodeUnknown
}

// StatusOf reports the HTTP status carried by err, or zero.
func StatusOf(err error) int {
	if e, ok := As(err); ok {
		return e.Status
	}
	return 0
}
