package hooks

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/services"
)

// Reports backs the user-report triage screen.
type Reports struct {
	base
	svc services.ReportService
	st  state[[]models.Report]
}

func NewReports(svc services.ReportService, d Deps) *Reports {
	return &Reports{base: newBase(d), svc: svc}
}

func (h *Reports) State() State[[]models.Report] { return h.st.snapshot() }

func (h *Reports) ClearError() { h.st.clearError() }

func (h *Reports) Fetch(ctx context.Context) error {
	h.st.begin()
	defer h.st.end()

	reports, err := h.svc.List(ctx)
	if err != nil {
		h.st.fail(err)
		return h.failed(ctx, "fetch reports", err)
	}
	h.st.set(reports)
	return nil
}

// Respond answers a report and refreshes the list. The updated report
// replaces the old one in the state even if the refresh fails.
func (h *Reports) Respond(ctx context.Context, id string, status models.ReportStatus, response string) (models.Report, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		h.notify.NotifyWarning("Response required", "Please enter a response before submitting")
		return models.Report{}, apperr.New(apperr.CodeValidation, "Response is required")
	}

	h.st.begin()
	defer h.st.end()

	updated, err := h.svc.Respond(ctx, id, status, response)
	if err != nil {
		h.st.fail(err)
		return models.Report{}, h.failed(ctx, "respond to report", err)
	}

	h.st.update(func(list []models.Report) []models.Report {
		out := make([]models.Report, len(list))
		for i, r := range list {
			if r.ID == updated.ID {
				r = updated
			}
			out[i] = r
		}
		return out
	})

	if status == models.ReportResolved {
		h.notify.Success("Report resolved")
	} else {
		h.notify.Success("Report rejected")
	}

	_ = h.Fetch(ctx)
	return updated, nil
}

// Filter applies f to the loaded reports.
func (h *Reports) Filter(f ReportFilter) []models.Report {
	return FilterReports(h.st.snapshot().Data, f)
}

func (h *Reports) Stats() ReportStats {
	return Summarize(h.st.snapshot().Data)
}
