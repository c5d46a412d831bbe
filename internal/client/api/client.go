// Package api is the dashboard's REST client: it attaches the session token,
// speaks the JSON envelope protocol, and turns failed responses into
// classified errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/common"
	"github.com/dmitrijs2005/denidash/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

// DefaultBaseURL is used when no API URL is configured.
const DefaultBaseURL = "http://localhost:3000/api"

// Requester performs one API call and decodes the 2xx body into out.
type Requester interface {
	Do(ctx context.Context, method, endpoint string, body, out any) error
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	log            logging.Logger
	timeout        time.Duration
	onUnauthorized []UnauthorizedHandler
}

// NewClient returns a client for baseURL. The underlying http.Client gets a
// cookie jar unless one is supplied through WithHTTPClient.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.http = &http.Client{Jar: jar}
	}
	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.newRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	requestID := req.Header.Get(common.RequestIDHeader)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, endpoint, ctxErr)
		}
		c.log.Debug(ctx, "api request failed", "method", method, "path", endpoint,
			"request_id", requestID, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request", "method", method, "path", endpoint,
		"status", resp.StatusCode, "duration", time.Since(start), "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return c.statusError(ctx, method, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(err, apperr.CodeUnknown, resp.StatusCode,
			fmt.Sprintf("Invalid response from server: %v", err))
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "token lookup failed, sending request without credentials", "error", err)
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}
	return req, nil
}

func (c *Client) statusError(ctx context.Context, method string, status int) error {
	switch status {
	case http.StatusUnauthorized:
		c.notifyUnauthorized(ctx)
		msg := "Authentication required"
		if method == http.MethodPost {
			msg = "Invalid credentials"
		}
		return apperr.Wrap(ErrUnauthorized, apperr.CodeAuth, status, msg)

	case http.StatusForbidden:
		msg := httpStatusMessage(status)
		if method != http.MethodGet {
			msg = "Access forbidden"
		}
		return apperr.Wrap(ErrForbidden, apperr.CodeAuth, status, msg)
	}
	return apperr.Wrap(nil, apperr.CodeForStatus(status), status, httpStatusMessage(status))
}

func (c *Client) notifyUnauthorized(ctx context.Context) {
	for _, h := range c.onUnauthorized {
		if err := h(ctx); err != nil {
			c.log.Warn(ctx, "unauthorized handler failed", "error", err)
		}
	}
}

func httpStatusMessage(status int) string {
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}

// IsUnauthorized reports whether err came from a 401 response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
