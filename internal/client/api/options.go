package api

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/denidash/internal/logging"
)

// TokenSource yields the bearer token for the next request. An empty token
// means the request is sent without Authorization.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// UnauthorizedHandler is notified of every 401 before the error is returned.
type UnauthorizedHandler func(ctx context.Context) error

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func OnUnauthorized(h UnauthorizedHandler) Option {
	return func(c *Client) { c.onUnauthorized = append(c.onUnauthorized, h) }
}
