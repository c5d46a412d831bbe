package services

import (
	"context"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/models"
)

type AnalyticsService interface {
	Summary(ctx context.Context) (models.UserAnalytics, error)
	Countries(ctx context.Context, limit int) ([]models.CountryCount, error)
	Currencies(ctx context.Context, limit int) ([]models.CurrencyCount, error)
}

type analyticsService struct {
	api api.Requester
}

func NewAnalyticsService(r api.Requester) AnalyticsService {
	return &analyticsService{api: r}
}

func (s *analyticsService) Summary(ctx context.Context) (models.UserAnalytics, error) {
	env, err := api.Get[models.UserAnalytics](ctx, s.api, EndpointAnalytics)
	if err != nil {
		return models.UserAnalytics{}, err
	}
	return env.Result("Failed to fetch user analytics")
}

func (s *analyticsService) Countries(ctx context.Context, limit int) ([]models.CountryCount, error) {
	env, err := api.Get[[]models.CountryCount](ctx, s.api, limitQuery(EndpointCountryCodes, limit))
	if err != nil {
		return nil, err
	}
	return env.Result("Failed to fetch country analytics")
}

func (s *analyticsService) Currencies(ctx context.Context, limit int) ([]models.CurrencyCount, error) {
	env, err := api.Get[[]models.CurrencyCount](ctx, s.api, limitQuery(EndpointCurrencyCodes, limit))
	if err != nil {
		return nil, err
	}
	return env.Result("Failed to fetch currency analytics")
}
