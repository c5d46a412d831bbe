package hooks

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/services"
)

type UserAnalytics struct {
	base
	svc services.AnalyticsService
	st  state[*models.UserAnalytics]
}

func NewUserAnalytics(svc services.AnalyticsService, d Deps) *UserAnalytics {
	return &UserAnalytics{base: newBase(d), svc: svc}
}

func (h *UserAnalytics) State() State[*models.UserAnalytics] { return h.st.snapshot() }

func (h *UserAnalytics) Fetch(ctx context.Context) error {
	h.st.begin()
	defer h.st.end()

	res, err := h.svc.Summary(ctx)
	if err != nil {
		h.st.fail(err)
		return h.failed(ctx, "fetch user analytics", err)
	}
	h.st.set(&res)
	return nil
}

func (h *UserAnalytics) Refresh(ctx context.Context) error {
	return h.Fetch(ctx)
}

// ranked is shared by the country and currency breakdowns; only the service
// call and the element type differ.
type ranked[T any] struct {
	base
	op    string
	load  func(ctx context.Context, limit int) ([]T, error)
	st    state[[]T]
	mu    sync.Mutex
	limit int
}

func (h *ranked[T]) State() State[[]T] { return h.st.snapshot() }

// Fetch loads the top entries. A non-positive limit uses the server default.
func (h *ranked[T]) Fetch(ctx context.Context, limit int) error {
	h.mu.Lock()
	h.limit = limit
	h.mu.Unlock()

	h.st.begin()
	defer h.st.end()

	res, err := h.load(ctx, limit)
	if err != nil {
		h.st.fail(err)
		return h.failed(ctx, h.op, err)
	}
	h.st.set(res)
	return nil
}

// Refresh repeats the last Fetch with the same limit.
func (h *ranked[T]) Refresh(ctx context.Context) error {
	h.mu.Lock()
	limit := h.limit
	h.mu.Unlock()
	return h.Fetch(ctx, limit)
}

type CountryAnalytics struct {
	ranked[models.CountryCount]
}

func NewCountryAnalytics(svc services.AnalyticsService, d Deps) *CountryAnalytics {
	return &CountryAnalytics{ranked[models.CountryCount]{
		base: newBase(d),
		op:   "fetch country analytics",
		load: svc.Countries,
	}}
}

type CurrencyAnalytics struct {
	ranked[models.CurrencyCount]
}

func NewCurrencyAnalytics(svc services.AnalyticsService, d Deps) *CurrencyAnalytics {
	return &CurrencyAnalytics{ranked[models.CurrencyCount]{
		base: newBase(d),
		op:   "fetch currency analytics",
		load: svc.Currencies,
	}}
}
