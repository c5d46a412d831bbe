package hooks

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/notify"
	"github.com/dmitrijs2005/denidash/internal/client/services"
	"github.com/dmitrijs2005/denidash/internal/client/validate"
)

// Admins backs the administrator management screen.
type Admins struct {
	base
	svc services.AdminService
	st  state[[]models.Admin]
}

func NewAdmins(svc services.AdminService, d Deps) *Admins {
	return &Admins{base: newBase(d), svc: svc}
}

func (h *Admins) State() State[[]models.Admin] { return h.st.snapshot() }

func (h *Admins) ClearError() { h.st.clearError() }

func (h *Admins) Fetch(ctx context.Context) error {
	h.st.begin()
	defer h.st.end()

	admins, err := h.svc.List(ctx)
	if err != nil {
		h.st.fail(err)
		return h.failed(ctx, "fetch admins", err)
	}
	h.st.set(admins)
	return nil
}

func (h *Admins) Refresh(ctx context.Context) error {
	return h.Fetch(ctx)
}

// Create validates the form, creates the account and refreshes the list.
// A failed refresh is reported through the state but does not fail Create.
func (h *Admins) Create(ctx context.Context, req models.CreateAdminRequest) (models.Admin, error) {
	if err := h.checkNew(req); err != nil {
		return models.Admin{}, err
	}

	h.st.begin()
	defer h.st.end()

	admin, err := h.svc.Create(ctx, req)
	if err != nil {
		h.st.fail(err)
		return models.Admin{}, h.failed(ctx, "create admin", err)
	}
	h.notify.Success("Admin created successfully",
		notify.WithDescription(fmt.Sprintf("%s can now sign in", admin.Email)))

	_ = h.Fetch(ctx)
	return admin, nil
}

func (h *Admins) Update(ctx context.Context, id string, req models.UpdateAdminRequest) (models.Admin, error) {
	h.st.begin()
	defer h.st.end()

	admin, err := h.svc.Update(ctx, id, req)
	if err != nil {
		h.st.fail(err)
		return models.Admin{}, h.failed(ctx, "update admin", err)
	}
	h.notify.Success("Admin updated successfully")

	_ = h.Fetch(ctx)
	return admin, nil
}

func (h *Admins) Delete(ctx context.Context, id string) error {
	h.st.begin()
	defer h.st.end()

	if err := h.svc.Delete(ctx, id); err != nil {
		h.st.fail(err)
		return h.failed(ctx, "delete admin", err)
	}
	h.notify.Success("Admin deleted successfully")

	_ = h.Fetch(ctx)
	return nil
}

// checkNew applies the add-admin form rules, warning about the first one broken.
func (h *Admins) checkNew(req models.CreateAdminRequest) error {
	checks := []struct {
		err   error
		title string
		hint  string
	}{
		{validate.Required(req.Name, "Name"), "Name required", "Please enter the administrator's full name"},
		{validate.Required(req.Email, "Email"), "Email required", "Please enter a valid email address"},
		{validate.Email(strings.TrimSpace(req.Email)), "Invalid email", "Please enter a valid email address"},
		{validate.Required(req.Password, "Password"), "Password required", "Please enter a secure password for the admin account"},
		{validate.Password(req.Password), "Password too short",
			fmt.Sprintf("Password must be at least %d characters long", validate.MinPasswordLength)},
	}

	for _, c := range checks {
		if c.err != nil {
			h.notify.NotifyWarning(c.title, c.hint)
			return c.err
		}
	}
	if req.Role != "" && !req.Role.Valid() {
		msg := fmt.Sprintf("Unknown role %q", req.Role)
		h.notify.NotifyWarning("Invalid role", msg)
		return apperr.New(apperr.CodeValidation, msg)
	}
	return nil
}
