package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/models"
)

type UserService interface {
	// List fetches a page of users. Non-positive page or limit leaves the
	// parameter to the server's default.
	List(ctx context.Context, page, limit int) (models.UsersPage, error)
	Get(ctx context.Context, id string) (models.User, error)
	Count(ctx context.Context) (models.UsersCount, error)
}

type userService struct {
	api api.Requester
}

func NewUserService(r api.Requester) UserService {
	return &userService{api: r}
}

func (s *userService) List(ctx context.Context, page, limit int) (models.UsersPage, error) {
	endpoint := api.WithQuery(EndpointUsers, url.Values{
		"page":  {positive(page)},
		"limit": {positive(limit)},
	})

	env, err := api.Get[models.UsersPage](ctx, s.api, endpoint)
	if err != nil {
		return models.UsersPage{}, err
	}
	return env.Result("Failed to fetch users")
}

func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	env, err := api.Get[models.User](ctx, s.api, userEndpoint(id))
	if err != nil {
		return models.User{}, err
	}
	return env.Result("Failed to fetch user")
}

func (s *userService) Count(ctx context.Context) (models.UsersCount, error) {
	env, err := api.Get[models.UsersCount](ctx, s.api, EndpointUsersCount)
	if err != nil {
		return models.UsersCount{}, err
	}
	return env.Result("Failed to fetch users count")
}
