package hooks

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/services"
)

type Users struct {
	base
	svc services.UserService
	st  state[models.UsersPage]

	mu    sync.Mutex
	page  int
	limit int
}

func NewUsers(svc services.UserService, d Deps) *Users {
	return &Users{base: newBase(d), svc: svc}
}

func (h *Users) State() State[models.UsersPage] { return h.st.snapshot() }

func (h *Users) ClearError() { h.st.clearError() }

// Fetch loads one page. Zero page or limit uses the server default.
func (h *Users) Fetch(ctx context.Context, page, limit int) error {
	h.mu.Lock()
	h.page, h.limit = page, limit
	h.mu.Unlock()

	h.st.begin()
	defer h.st.end()

	res, err := h.svc.List(ctx, page, limit)
	if err != nil {
		h.st.fail(err)
		return h.failed(ctx, "fetch users", err)
	}
	h.st.set(res)
	return nil
}

// Refresh repeats the last Fetch.
func (h *Users) Refresh(ctx context.Context) error {
	h.mu.Lock()
	page, limit := h.page, h.limit
	h.mu.Unlock()
	return h.Fetch(ctx, page, limit)
}

// Get loads a single user without touching the list state.
func (h *Users) Get(ctx context.Context, id string) (models.User, error) {
	u, err := h.svc.Get(ctx, id)
	if err != nil {
		return models.User{}, h.failed(ctx, "fetch user", err)
	}
	return u, nil
}

type UsersCount struct {
	base
	svc services.UserService
	st  state[int]
}

func NewUsersCount(svc services.UserService, d Deps) *UsersCount {
	return &UsersCount{base: newBase(d), svc: svc}
}

func (h *UsersCount) State() State[int] { return h.st.snapshot() }

func (h *UsersCount) Fetch(ctx context.Context) error {
	h.st.begin()
	defer h.st.end()

	res, err := h.svc.Count(ctx)
	if err != nil {
		h.st.fail(err)
		return h.failed(ctx, "fetch users count", err)
	}
	h.st.set(res.TotalUsers)
	return nil
}

func (h *UsersCount) Refresh(ctx context.Context) error {
	return h.Fetch(ctx)
}
