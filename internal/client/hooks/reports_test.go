package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReports() []models.Report {
	return []models.Report{
		{ID: "r1", UserName: "John Doe", Subject: "App crashes on login", Description: "Crash after update",
			Type: models.ReportBug, Status: models.ReportPending},
		{ID: "r2", UserName: "Jane Smith", Subject: "Dark mode", Description: "Please add a dark theme",
			Type: models.ReportSuggestion, Status: models.ReportInProgress},
		{ID: "r3", UserName: "Mike Ross", Subject: "Abusive user", Description: "Spam messages",
			Type: models.ReportAbuse, Status: models.ReportResolved},
		{ID: "r4", UserName: "Ann Lee", Subject: "Refund", Description: "Charged twice",
			Type: models.ReportComplaint, Status: models.ReportRejected},
	}
}

func ids(reports []models.Report) []string {
	out := make([]string, 0, len(reports))
	for _, r := range reports {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterReports(t *testing.T) {
	all := sampleReports()

	assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, ids(FilterReports(all, ReportFilter{})))
	assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, ids(FilterReports(all, ReportFilter{Status: FilterAll, Type: FilterAll})))
	assert.Equal(t, []string{"r2"}, ids(FilterReports(all, ReportFilter{Status: "in_progress"})))
	assert.Equal(t, []string{"r3"}, ids(FilterReports(all, ReportFilter{Type: "abuse"})))
	assert.Equal(t, []string{"r1"}, ids(FilterReports(all, ReportFilter{Search: "CRASH"})))
	assert.Equal(t, []string{"r2"}, ids(FilterReports(all, ReportFilter{Search: "jane"})))
	assert.Equal(t, []string{"r4"}, ids(FilterReports(all, ReportFilter{Search: "twice"})))
	assert.Empty(t, FilterReports(all, ReportFilter{Status: "pending", Search: "dark"}))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, ReportStats{Total: 4, Pending: 1, InProgress: 1, Resolved: 1}, Summarize(sampleReports()))
	assert.Equal(t, ReportStats{}, Summarize(nil))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("John Doe"))
	assert.Equal(t, "MA", Initials("mary ann smith"))
	assert.Equal(t, "Z", Initials("  zed "))
	assert.Equal(t, "ÉL", Initials("élodie lagarde"))
	assert.Empty(t, Initials(""))
}

func TestReports_FetchFilterStats(t *testing.T) {
	deps, _, _ := testDeps()
	svc := &fakeReportService{ListFn: func(context.Context) ([]models.Report, error) { return sampleReports(), nil }}
	h := NewReports(svc, deps)

	require.NoError(t, h.Fetch(context.Background()))
	assert.Equal(t, 4, h.Stats().Total)
	assert.Equal(t, []string{"r1"}, ids(h.Filter(ReportFilter{Status: "pending"})))
}

func TestReports_Respond(t *testing.T) {
	deps, n, _ := testDeps()
	listCalls := 0
	svc := &fakeReportService{
		ListFn: func(context.Context) ([]models.Report, error) {
			listCalls++
			if listCalls > 1 {
				return nil, errors.New("list down")
			}
			return sampleReports(), nil
		},
		RespondFn: func(_ context.Context, id string, status models.ReportStatus, response string) (models.Report, error) {
			return models.Report{ID: id, Status: status, AdminResponse: response}, nil
		},
	}
	h := NewReports(svc, deps)
	ctx := context.Background()
	require.NoError(t, h.Fetch(ctx))

	got, err := h.Respond(ctx, "r1", models.ReportResolved, "  Fixed in 2.1 ")
	require.NoError(t, err)
	assert.Equal(t, "Fixed in 2.1", got.AdminResponse)

	data := h.State().Data
	require.Len(t, data, 4)
	assert.Equal(t, models.ReportResolved, data[0].Status)
	assert.Equal(t, 2, h.Stats().Resolved)
	assert.Equal(t, 2, listCalls)

	hist := n.History()
	require.Len(t, hist, 2)
	assert.Equal(t, notify.KindSuccess, hist[0].Kind)
	assert.Equal(t, "Report resolved", hist[0].Message)
	assert.Equal(t, notify.KindError, hist[1].Kind)
}

func TestReports_RespondRequiresText(t *testing.T) {
	deps, n, _ := testDeps()
	h := NewReports(&fakeReportService{}, deps)

	_, err := h.Respond(context.Background(), "r1", models.ReportRejected, "   ")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	assert.Equal(t, []notify.Kind{notify.KindWarning}, kinds(n))
}

func TestReports_RespondFailure(t *testing.T) {
	deps, _, _ := testDeps()
	svc := &fakeReportService{RespondFn: func(context.Context, string, models.ReportStatus, string) (models.Report, error) {
		return models.Report{}, errors.New("Failed to respond to report")
	}}
	h := NewReports(svc, deps)

	_, err := h.Respond(context.Background(), "r1", models.ReportRejected, "Duplicate")
	require.Error(t, err)
	assert.Equal(t, "Failed to respond to report", h.State().ErrorMessage())
}
