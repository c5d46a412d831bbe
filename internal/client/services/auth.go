package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/models"
)

// AuthService wraps the administrator authentication endpoints.
//
// Login trims both credentials before sending them. Logout and Refresh take
// the refresh token explicitly; none of the methods touch the session.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error)
}

type authService struct {
	api api.Requester
}

func NewAuthService(r api.Requester) AuthService {
	return &authService{api: r}
}

func (s *authService) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	req := models.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	}

	env, err := api.Post[models.LoginResponse](ctx, s.api, EndpointLogin, req)
	if err != nil {
		return models.LoginResponse{}, err
	}
	return env.Result("Login failed")
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	env, err := api.Post[api.Empty](ctx, s.api, EndpointLogout, models.LogoutRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}
	return env.Check("Logout failed")
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error) {
	env, err := api.Post[models.RefreshResponse](ctx, s.api, EndpointRefresh, models.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return models.RefreshResponse{}, err
	}
	return env.Result("Token refresh failed")
}
