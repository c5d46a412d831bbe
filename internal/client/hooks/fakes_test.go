package hooks

import (
	"bytes"
	"context"

	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/notify"
)

func testDeps() (Deps, *notify.Notifier, *bytes.Buffer) {
	var buf bytes.Buffer
	n := notify.New(&buf, nil)
	return Deps{Notifier: n}, n, &buf
}

func kinds(n *notify.Notifier) []notify.Kind {
	var out []notify.Kind
	for _, item := range n.History() {
		out = append(out, item.Kind)
	}
	return out
}

type fakeAdminService struct {
	ListFn          func(ctx context.Context) ([]models.Admin, error)
	CreateFn        func(ctx context.Context, req models.CreateAdminRequest) (models.Admin, error)
	UpdateFn        func(ctx context.Context, id string, req models.UpdateAdminRequest) (models.Admin, error)
	DeleteFn        func(ctx context.Context, id string) error
	ProfileFn       func(ctx context.Context) (models.Admin, error)
	UpdateProfileFn func(ctx context.Context, req models.UpdateProfileRequest) (models.Admin, error)

	listCalls   int
	createCalls int
}

func (f *fakeAdminService) List(ctx context.Context) ([]models.Admin, error) {
	f.listCalls++
	return f.ListFn(ctx)
}

func (f *fakeAdminService) Create(ctx context.Context, req models.CreateAdminRequest) (models.Admin, error) {
	f.createCalls++
	return f.CreateFn(ctx, req)
}

func (f *fakeAdminService) Update(ctx context.Context, id string, req models.UpdateAdminRequest) (models.Admin, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeAdminService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func (f *fakeAdminService) Profile(ctx context.Context) (models.Admin, error) {
	return f.ProfileFn(ctx)
}

func (f *fakeAdminService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Admin, error) {
	return f.UpdateProfileFn(ctx, req)
}

type fakeUserService struct {
	ListFn  func(ctx context.Context, page, limit int) (models.UsersPage, error)
	GetFn   func(ctx context.Context, id string) (models.User, error)
	CountFn func(ctx context.Context) (models.UsersCount, error)
}

func (f *fakeUserService) List(ctx context.Context, page, limit int) (models.UsersPage, error) {
	return f.ListFn(ctx, page, limit)
}

func (f *fakeUserService) Get(ctx context.Context, id string) (models.User, error) {
	return f.GetFn(ctx, id)
}

func (f *fakeUserService) Count(ctx context.Context) (models.UsersCount, error) {
	return f.CountFn(ctx)
}

type fakeAnalyticsService struct {
	SummaryFn    func(ctx context.Context) (models.UserAnalytics, error)
	CountriesFn  func(ctx context.Context, limit int) ([]models.CountryCount, error)
	CurrenciesFn func(ctx context.Context, limit int) ([]models.CurrencyCount, error)
}

func (f *fakeAnalyticsService) Summary(ctx context.Context) (models.UserAnalytics, error) {
	return f.SummaryFn(ctx)
}

func (f *fakeAnalyticsService) Countries(ctx context.Context, limit int) ([]models.CountryCount, error) {
	return f.CountriesFn(ctx, limit)
}

func (f *fakeAnalyticsService) Currencies(ctx context.Context, limit int) ([]models.CurrencyCount, error) {
	return f.CurrenciesFn(ctx, limit)
}

type fakeReportService struct {
	ListFn    func(ctx context.Context) ([]models.Report, error)
	RespondFn func(ctx context.Context, id string, status models.ReportStatus, response string) (models.Report, error)
}

func (f *fakeReportService) List(ctx context.Context) ([]models.Report, error) {
	return f.ListFn(ctx)
}

func (f *fakeReportService) Respond(ctx context.Context, id string, status models.ReportStatus, response string) (models.Report, error) {
	return f.RespondFn(ctx, id, status, response)
}

type fakeAuthService struct {
	LoginFn   func(ctx context.Context, email, password string) (models.LoginResponse, error)
	LogoutFn  func(ctx context.Context, refreshToken string) error
	RefreshFn func(ctx context.Context, refreshToken string) (models.RefreshResponse, error)

	loginCalls  int
	logoutCalls int
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	f.loginCalls++
	return f.LoginFn(ctx, email, password)
}

func (f *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	f.logoutCalls++
	if f.LogoutFn == nil {
		return nil
	}
	return f.LogoutFn(ctx, refreshToken)
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error) {
	return f.RefreshFn(ctx, refreshToken)
}
