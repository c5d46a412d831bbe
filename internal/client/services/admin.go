package services

import (
	"context"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/models"
)

// AdminService manages administrator accounts and the caller's own profile.
type AdminService interface {
	List(ctx context.Context) ([]models.Admin, error)
	Create(ctx context.Context, req models.CreateAdminRequest) (models.Admin, error)
	Update(ctx context.Context, id string, req models.UpdateAdminRequest) (models.Admin, error)
	Delete(ctx context.Context, id string) error
	Profile(ctx context.Context) (models.Admin, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Admin, error)
}

type adminService struct {
	api api.Requester
}

func NewAdminService(r api.Requester) AdminService {
	return &adminService{api: r}
}

func (s *adminService) List(ctx context.Context) ([]models.Admin, error) {
	env, err := api.Get[[]models.Admin](ctx, s.api, EndpointAdmins)
	if err != nil {
		return nil, err
	}
	return env.Result("Failed to fetch admins")
}

func (s *adminService) Create(ctx context.Context, req models.CreateAdminRequest) (models.Admin, error) {
	env, err := api.Post[models.Admin](ctx, s.api, EndpointAdmins, req)
	if err != nil {
		return models.Admin{}, err
	}
	return env.Result("Failed to create admin")
}

func (s *adminService) Update(ctx context.Context, id string, req models.UpdateAdminRequest) (models.Admin, error) {
	env, err := api.Put[models.Admin](ctx, s.api, adminEndpoint(id), req)
	if err != nil {
		return models.Admin{}, err
	}
	return env.Result("Failed to update admin")
}

func (s *adminService) Delete(ctx context.Context, id string) error {
	env, err := api.Delete[api.Empty](ctx, s.api, adminEndpoint(id))
	if err != nil {
		return err
	}
	return env.Check("Failed to delete admin")
}

func (s *adminService) Profile(ctx context.Context) (models.Admin, error) {
	env, err := api.Get[models.Admin](ctx, s.api, EndpointAdminProfile)
	if err != nil {
		return models.Admin{}, err
	}
	return env.Result("Failed to fetch profile")
}

func (s *adminService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Admin, error) {
	env, err := api.Put[models.Admin](ctx, s.api, EndpointAdminProfile, req)
	if err != nil {
		return models.Admin{}, err
	}
	return env.Result("Failed to update profile")
}
