package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/guard"
)

// topLimit is how many countries and currencies the dashboard shows.
const topLimit = 5

// Dashboard loads the user totals and breakdowns in parallel and prints
// whatever arrived. Only a missing or rejected session aborts the screen.
func (a *App) Dashboard(ctx context.Context, _ []string) error {
	err := a.guard.Load(ctx,
		a.usersCount.Fetch,
		a.summary.Fetch,
		func(ctx context.Context) error { return a.countries.Fetch(ctx, topLimit) },
		func(ctx context.Context) error { return a.currencies.Fetch(ctx, topLimit) },
	)
	if errors.Is(err, guard.ErrNotAuthenticated) || errors.Is(err, api.ErrUnauthorized) {
		return err
	}

	renderDashboard(a.out, dashboardView{
		Count:      a.usersCount.State(),
		Summary:    a.summary.State(),
		Countries:  a.countries.State(),
		Currencies: a.currencies.State(),
	})
	return err
}
