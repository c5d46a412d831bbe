package apperr

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
)

const (
	msgUnexpected = "An unexpected error occurred"
	msgAuthFailed = "Authentication failed. Please login again."
)

// networkHints are matched case-insensitively. "fetch" is left out: the
// services' fallback phrases ("Failed to fetch admins") would match it.
var networkHints = []string{"network", "connection refused", "no such host"}

// Classify maps any value into an *Error.
//
// An *Error already in the chain is returned as is. Other errors keep their
// message and are tagged CodeNetwork when they look like a transport
// failure, CodeUnknown otherwise. Nil and non-error values become a generic
// unknown error.
func Classify(v any) *Error {
	err, ok := v.(error)
	if !ok || err == nil {
		return New(CodeUnknown, msgUnexpected)
	}

	if e, ok := As(err); ok {
		return e
	}

	code := CodeUnknown
	if isNetwork(err) {
		code = CodeNetwork
	}
	return &Error{Code: code, Message: err.Error(), cause: err}
}

// ClassifyAuth narrows 401/403 failures into a single re-login error and
// otherwise behaves like Classify.
func ClassifyAuth(v any) *Error {
	e := Classify(v)
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return &Error{Code: CodeAuth, Status: e.Status, Message: msgAuthFailed, cause: e}
	}
	return e
}

// UserMessage returns operator-facing text for e.
func UserMessage(e *Error) string {
	if e == nil {
		return "Something went wrong. Please try again."
	}

	switch e.Code {
	case CodeNetwork:
		return "Unable to connect to server. Please check your internet connection."
	case CodeAuth:
		return "Session expired. Please login again."
	case CodeValidation:
		return "Please check your input and try again."
	case CodeServer:
		return "Server error. Please try again later."
	}

	if e.Message != "" {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

func isNetwork(err error) bool {
	if errors.Is(err, ErrUnavailable) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, hint := range networkHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}
