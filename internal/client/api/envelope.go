package api

import "encoding/json"

// StatusSuccess is the envelope status of a successful call.
const StatusSuccess = "success"

// Envelope is the JSON wrapper every endpoint responds with.
type Envelope[T any] struct {
	Status  string `json:"status"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Empty is used for endpoints whose data is ignored.
type Empty = json.RawMessage

func (e *Envelope[T]) Success() bool {
	return e != nil && e.Status == StatusSuccess
}

// Failure describes why the envelope is not usable, preferring the server's
// message, then its error text, then fallback.
func (e *Envelope[T]) Failure(fallback string) error {
	msg := fallback
	if e != nil {
		switch {
		case e.Message != "":
			msg = e.Message
		case e.Error != "":
			msg = e.Error
		}
	}
	return &RejectedError{Message: msg}
}

// Result returns the payload of a successful envelope that carries data.
func (e *Envelope[T]) Result(fallback string) (T, error) {
	var zero T
	if !e.Success() || e.Data == nil {
		return zero, e.Failure(fallback)
	}
	return *e.Data, nil
}

// Check is Result for calls that do not need the payload.
func (e *Envelope[T]) Check(fallback string) error {
	if !e.Success() {
		return e.Failure(fallback)
	}
	return nil
}
