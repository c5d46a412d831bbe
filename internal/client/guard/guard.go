// Package guard keeps protected screens from loading without a session and
// turns authentication failures during a load into a trip to the login page.
package guard

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/nav"
	"github.com/dmitrijs2005/denidash/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Session is the part of session.Store the guard needs.
type Session interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	Destroy(ctx context.Context) error
}

// ErrNotAuthenticated is returned by Load when no session exists.
var ErrNotAuthenticated = errors.New("not authenticated")

type Guard struct {
	session Session
	nav     nav.Navigator
	log     logging.Logger
}

func New(s Session, n nav.Navigator, log logging.Logger) *Guard {
	if log == nil {
		log = logging.Nop()
	}
	return &Guard{session: s, nav: n, log: log}
}

// Require reports whether a session exists and redirects to the login page
// when it does not. A store that cannot be read counts as no session.
func (g *Guard) Require(ctx context.Context) bool {
	ok, err := g.session.IsAuthenticated(ctx)
	if err != nil {
		g.log.Warn(ctx, "session check failed", "error", err)
	}
	if ok && err == nil {
		return true
	}
	g.nav.Navigate(ctx, nav.RouteLogin)
	return false
}

// Check inspects an error from a protected call. Authentication failures
// destroy the session and redirect; Check then returns true.
func (g *Guard) Check(ctx context.Context, err error) bool {
	if !errors.Is(err, api.ErrUnauthorized) {
		return false
	}
	if derr := g.session.Destroy(ctx); derr != nil {
		g.log.Warn(ctx, "failed to clear session after 401", "error", derr)
	}
	g.nav.Navigate(ctx, nav.RouteLogin)
	return true
}

// Load runs fns concurrently once a session is confirmed. Every fn runs to
// completion. An authentication failure from any of them wins over other
// errors and goes through Check; otherwise the first error is returned.
func (g *Guard) Load(ctx context.Context, fns ...func(ctx context.Context) error) error {
	if !g.Require(ctx) {
		return ErrNotAuthenticated
	}

	var (
		eg       errgroup.Group
		mu       sync.Mutex
		authFail error
	)
	for _, fn := range fns {
		eg.Go(func() error {
			err := fn(ctx)
			if errors.Is(err, api.ErrUnauthorized) {
				mu.Lock()
				if authFail == nil {
					authFail = err
				}
				mu.Unlock()
			}
			return err
		})
	}

	err := eg.Wait()
	if authFail != nil {
		g.Check(ctx, authFail)
		return authFail
	}
	return err
}
