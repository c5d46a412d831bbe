package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/config"
	"github.com/dmitrijs2005/denidash/internal/client/guard"
	"github.com/dmitrijs2005/denidash/internal/client/hooks"
	"github.com/dmitrijs2005/denidash/internal/client/nav"
	"github.com/dmitrijs2005/denidash/internal/client/notify"
	"github.com/dmitrijs2005/denidash/internal/client/services"
	"github.com/dmitrijs2005/denidash/internal/client/session"
	"github.com/dmitrijs2005/denidash/internal/client/storage"
	"github.com/dmitrijs2005/denidash/internal/logging"
)

// App is the interactive dashboard. It is also the Navigator handed to the
// session layer: a requested route is remembered and followed by the REPL
// before the next prompt.
type App struct {
	config *config.Config
	log    logging.Logger
	out    io.Writer
	reader *bufio.Reader

	deps   hooks.Deps
	store  *session.Store
	guard  *guard.Guard
	auth   services.AuthService
	logout *hooks.Logout

	admins     *hooks.Admins
	profile    *hooks.AdminProfile
	users      *hooks.Users
	usersCount *hooks.UsersCount
	summary    *hooks.UserAnalytics
	countries  *hooks.CountryAnalytics
	currencies *hooks.CurrencyAnalytics
	reports    *hooks.Reports

	mu       sync.Mutex
	route    string
	redirect string
}

// NewApp wires the session store on db, the API client from c, and every
// data hook. Notifications and command output go to out.
func NewApp(c *config.Config, db *sql.DB, in io.Reader, out io.Writer, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	store := session.NewStore(storage.NewSQLiteRepository(db), log)

	client, err := api.NewClient(c.APIURL,
		api.WithTokenSource(store),
		api.WithLogger(log),
		api.WithTimeout(c.RequestTimeout),
		api.OnUnauthorized(store.HandleUnauthorized),
	)
	if err != nil {
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		out:    out,
		reader: bufio.NewReader(in),
		store:  store,
		deps:   hooks.Deps{Notifier: notify.New(out, log), Logger: log},
	}

	a.guard = guard.New(store, a, log)
	a.auth = services.NewAuthService(client)
	a.logout = hooks.NewLogout(a.auth, store, a, a.deps)

	adminSvc := services.NewAdminService(client)
	userSvc := services.NewUserService(client)
	analyticsSvc := services.NewAnalyticsService(client)

	a.admins = hooks.NewAdmins(adminSvc, a.deps)
	a.profile = hooks.NewAdminProfile(adminSvc, store, a.deps)
	a.users = hooks.NewUsers(userSvc, a.deps)
	a.usersCount = hooks.NewUsersCount(userSvc, a.deps)
	a.summary = hooks.NewUserAnalytics(analyticsSvc, a.deps)
	a.countries = hooks.NewCountryAnalytics(analyticsSvc, a.deps)
	a.currencies = hooks.NewCurrencyAnalytics(analyticsSvc, a.deps)
	a.reports = hooks.NewReports(services.NewReportService(client), a.deps)

	return a, nil
}

// Navigate records route as current and schedules it for the REPL.
func (a *App) Navigate(ctx context.Context, route string) {
	a.mu.Lock()
	a.route = route
	a.redirect = route
	a.mu.Unlock()
	a.log.Debug(ctx, "navigate", "route", route)
}

// Redirect returns and clears the pending route.
func (a *App) Redirect() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	r := a.redirect
	a.redirect = ""
	return r
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	ok, err := a.store.IsAuthenticated(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to read session", "error", err)
		return false
	}
	return ok
}

func (a *App) status(ctx context.Context) string {
	a.mu.Lock()
	route := a.route
	a.mu.Unlock()

	s := route
	if p, err := a.store.Profile(ctx); err == nil && p != nil {
		s = p.Email + " " + route
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run blocks in the REPL until the user exits or input ends. A stored
// session opens the dashboard, otherwise the login prompt comes first.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Deni dashboard CLI (type 'help' for commands)")

	if a.guard.Require(ctx) {
		a.Navigate(ctx, nav.RouteDashboard)
	}

	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}
