package api

import (
	"errors"

	"github.com/dmitrijs2005/denidash/internal/client/apperr"
)

var (
	// ErrUnauthorized is matched by every 401 response, whatever the verb.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is matched by every 403 response.
	ErrForbidden = errors.New("forbidden")
	// ErrUnavailable is matched when no response was received.
	ErrUnavailable = apperr.ErrUnavailable
	// ErrRejected is matched by a 2xx response whose envelope is not a success.
	ErrRejected = errors.New("request rejected")
)

// RejectedError is a well-formed response that reported failure.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
