package hooks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_FetchAndRefreshReuseParams(t *testing.T) {
	deps, _, _ := testDeps()
	var seen [][2]int
	svc := &fakeUserService{ListFn: func(_ context.Context, page, limit int) (models.UsersPage, error) {
		seen = append(seen, [2]int{page, limit})
		return models.UsersPage{Data: []models.User{{ID: "u1"}}, Count: 41}, nil
	}}
	h := NewUsers(svc, deps)
	ctx := context.Background()

	require.NoError(t, h.Fetch(ctx, 3, 20))
	require.NoError(t, h.Refresh(ctx))
	assert.Equal(t, [][2]int{{3, 20}, {3, 20}}, seen)
	assert.Equal(t, 41, h.State().Data.Total())
}

func TestUsers_Get(t *testing.T) {
	deps, n, _ := testDeps()
	svc := &fakeUserService{GetFn: func(_ context.Context, id string) (models.User, error) {
		if id == "missing" {
			return models.User{}, errors.New("User not found")
		}
		return models.User{ID: id}, nil
	}}
	h := NewUsers(svc, deps)
	ctx := context.Background()

	u, err := h.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = h.Get(ctx, "missing")
	require.EqualError(t, err, "User not found")
	assert.NoError(t, h.State().Error)
	assert.Len(t, n.History(), 1)
}

func TestUsersCount(t *testing.T) {
	deps, _, _ := testDeps()
	svc := &fakeUserService{CountFn: func(context.Context) (models.UsersCount, error) {
		return models.UsersCount{TotalUsers: 1234}, nil
	}}
	h := NewUsersCount(svc, deps)
	require.NoError(t, h.Refresh(context.Background()))
	assert.Equal(t, 1234, h.State().Data)
}

func TestUserAnalytics(t *testing.T) {
	deps, _, _ := testDeps()
	svc := &fakeAnalyticsService{SummaryFn: func(context.Context) (models.UserAnalytics, error) {
		return models.UserAnalytics{TotalUsers: 5}, nil
	}}
	h := NewUserAnalytics(svc, deps)
	require.NoError(t, h.Refresh(context.Background()))
	require.NotNil(t, h.State().Data)
	assert.Equal(t, 5, h.State().Data.TotalUsers)
}

func TestCountryAndCurrencyAnalytics_RefreshKeepsLimit(t *testing.T) {
	deps, n, _ := testDeps()
	var limits []int
	svc := &fakeAnalyticsService{
		CountriesFn: func(_ context.Context, limit int) ([]models.CountryCount, error) {
			limits = append(limits, limit)
			return []models.CountryCount{{CountryCode: "NG", Count: 9}}, nil
		},
		CurrenciesFn: func(context.Context, int) ([]models.CurrencyCount, error) {
			return nil, errors.New("Failed to fetch currency analytics")
		},
	}
	ctx := context.Background()

	countries := NewCountryAnalytics(svc, deps)
	require.NoError(t, countries.Fetch(ctx, 5))
	require.NoError(t, countries.Refresh(ctx))
	assert.Equal(t, []int{5, 5}, limits)
	assert.Equal(t, "NG", countries.State().Data[0].CountryCode)

	currencies := NewCurrencyAnalytics(svc, deps)
	require.Error(t, currencies.Fetch(ctx, 3))
	assert.Equal(t, "Failed to fetch currency analytics", currencies.State().ErrorMessage())
	assert.Len(t, n.History(), 1)
}

func TestState_ConcurrentFetchesAreRaceFree(t *testing.T) {
	deps, _, _ := testDeps()
	svc := &fakeUserService{CountFn: func(context.Context) (models.UsersCount, error) {
		return models.UsersCount{TotalUsers: 1}, nil
	}}
	h := NewUsersCount(svc, deps)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.Fetch(context.Background())
			_ = h.State()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, h.State().Data)
	assert.False(t, h.State().IsLoading)
}
