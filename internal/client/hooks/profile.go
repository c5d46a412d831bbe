package hooks

import (
	"context"

	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/services"
)

// ProfileCache receives the profile after a successful update so the stored
// session reflects the new name.
type ProfileCache interface {
	SaveProfile(ctx context.Context, admin models.Admin) error
}

// AdminProfile backs the signed-in administrator's profile screen.
type AdminProfile struct {
	base
	svc   services.AdminService
	cache ProfileCache
	st    state[*models.Admin]
}

// NewAdminProfile builds the hook. cache may be nil.
func NewAdminProfile(svc services.AdminService, cache ProfileCache, d Deps) *AdminProfile {
	return &AdminProfile{base: newBase(d), svc: svc, cache: cache}
}

func (h *AdminProfile) State() State[*models.Admin] { return h.st.snapshot() }

func (h *AdminProfile) ClearError() { h.st.clearError() }

func (h *AdminProfile) Fetch(ctx context.Context) error {
	h.st.begin()
	defer h.st.end()

	admin, err := h.svc.Profile(ctx)
	if err != nil {
		h.st.fail(err)
		return h.failed(ctx, "fetch profile", err)
	}
	h.st.set(&admin)
	return nil
}

func (h *AdminProfile) Refresh(ctx context.Context) error {
	return h.Fetch(ctx)
}

func (h *AdminProfile) Update(ctx context.Context, req models.UpdateProfileRequest) (models.Admin, error) {
	h.st.begin()
	defer h.st.end()

	admin, err := h.svc.UpdateProfile(ctx, req)
	if err != nil {
		h.st.fail(err)
		return models.Admin{}, h.failed(ctx, "update profile", err)
	}
	h.st.set(&admin)

	if h.cache != nil {
		if err := h.cache.SaveProfile(ctx, admin); err != nil {
			h.log.Warn(ctx, "failed to cache updated profile", "error", err)
		}
	}
	h.notify.Success("Profile updated successfully")
	return admin, nil
}
