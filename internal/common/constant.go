// Package common contains constants and helpers shared by the client layers.
package common

const (
	// AuthorizationHeader carries the bearer access token on API requests.
	AuthorizationHeader = "Authorization"
	// BearerPrefix precedes the token in AuthorizationHeader.
	BearerPrefix = "Bearer "
	// RequestIDHeader correlates a client request with server-side logs.
	RequestIDHeader = "X-Request-ID"
)
