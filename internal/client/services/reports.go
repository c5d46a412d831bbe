package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/client/models"
)

type ReportService interface {
	List(ctx context.Context) ([]models.Report, error)
	// Respond closes a report with status resolved or rejected.
	Respond(ctx context.Context, id string, status models.ReportStatus, response string) (models.Report, error)
}

type reportService struct {
	api api.Requester
}

func NewReportService(r api.Requester) ReportService {
	return &reportService{api: r}
}

func (s *reportService) List(ctx context.Context) ([]models.Report, error) {
	env, err := api.Get[[]models.Report](ctx, s.api, EndpointReports)
	if err != nil {
		return nil, err
	}
	return env.Result("Failed to fetch reports")
}

func (s *reportService) Respond(ctx context.Context, id string, status models.ReportStatus, response string) (models.Report, error) {
	if !status.Closing() {
		return models.Report{}, apperr.New(apperr.CodeValidation,
			fmt.Sprintf("Reports can only be resolved or rejected, not %q", status))
	}

	req := models.RespondReportRequest{Status: status, AdminResponse: response}
	env, err := api.Put[models.Report](ctx, s.api, reportEndpoint(id), req)
	if err != nil {
		return models.Report{}, err
	}
	return env.Result("Failed to respond to report")
}
