package hooks

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/denidash/internal/client/nav"
	"github.com/dmitrijs2005/denidash/internal/client/services"
)

// Logout ends the session. The remote call is best effort; the local
// session is always destroyed and the navigator sent to the login page.
type Logout struct {
	base
	auth    services.AuthService
	session Sessions
	nav     nav.Navigator
	loading atomic.Bool
}

func NewLogout(auth services.AuthService, s Sessions, n nav.Navigator, d Deps) *Logout {
	return &Logout{base: newBase(d), auth: auth, session: s, nav: n}
}

func (l *Logout) IsLoading() bool {
	return l.loading.Load()
}

// Run never fails from the caller's point of view; problems are logged.
func (l *Logout) Run(ctx context.Context) {
	l.loading.Store(true)
	defer l.loading.Store(false)

	refresh, err := l.session.RefreshToken(ctx)
	switch {
	case err != nil:
		l.log.Warn(ctx, "failed to read refresh token, skipping api logout", "error", err)
	case refresh == "":
		l.log.Warn(ctx, "no refresh token found, skipping api logout")
	default:
		if err := l.auth.Logout(ctx, refresh); err != nil {
			l.log.Warn(ctx, "logout api failed", "error", err)
		}
	}

	if err := l.session.Destroy(ctx); err != nil {
		l.log.Error(ctx, "failed to clear session", "error", err)
	}
	l.notify.Info("Signed out")
	l.nav.Navigate(ctx, nav.RouteLogin)
}
