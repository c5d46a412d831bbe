package apperr

import "net/http"

// Code is the coarse category of a client-side failure.
type Code string

const (
	CodeNetwork    Code = "network"
	CodeAuth       Code = "auth"
	CodeValidation Code = "validation"
	CodeServer     Code = "server"
	CodeUnknown    Code = "unknown"
)

// CodeForStatus maps an HTTP status to a Code.
func CodeForStatus(status int) Code {
	switch {
	case status == http.StatusBadRequest:
		return CodeValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return CodeAuth
	case status >= http.StatusInternalServerError:
		return CodeServer
	default:
		return CodeUnknown
	}
}
