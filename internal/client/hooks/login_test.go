package hooks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/nav"
	"github.com/dmitrijs2005/denidash/internal/client/notify"
	"github.com/dmitrijs2005/denidash/internal/client/session"
	"github.com/dmitrijs2005/denidash/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*session.Store, storage.Repository) {
	t.Helper()
	db, err := storage.OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := storage.NewSQLiteRepository(db)
	return session.NewStore(repo, nil), repo
}

func okLogin(context.Context, string, string) (models.LoginResponse, error) {
	return models.LoginResponse{
		Admin:        models.Admin{ID: "a1", Email: "a@b.co", Name: "Ada", Role: models.RoleSuperAdmin},
		AccessToken:  "tok1",
		RefreshToken: "ref1",
	}, nil
}

func TestLogin_ValidationNeverHitsNetwork(t *testing.T) {
	tests := []struct {
		email, password, want string
	}{
		{"", "secret1", "Email is required"},
		{"   ", "secret1", "Email is required"},
		{"a@b.co", "", "Password is required"},
		{"", "", "Email is required"},
		{"not-an-email", "secret1", "Please enter a valid email address"},
		{"a@b", "secret1", "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%q", tt.email, tt.password), func(t *testing.T) {
			store, repo := newStore(t)
			deps, _, _ := testDeps()
			auth := &fakeAuthService{LoginFn: okLogin}
			var rec nav.Recorder

			f := NewLoginForm(context.Background(), auth, store, &rec, deps)
			f.SetEmail(tt.email)
			f.SetPassword([]byte(tt.password))

			err := f.Submit(context.Background())
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
			assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
			assert.Equal(t, err, f.Error())
			assert.Zero(t, auth.loginCalls)
			assert.Empty(t, rec.Routes)

			m, _ := repo.List(context.Background())
			assert.Empty(t, m)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	store, repo := newStore(t)
	deps, n, _ := testDeps()
	var gotEmail, gotPassword string
	auth := &fakeAuthService{LoginFn: func(ctx context.Context, email, password string) (models.LoginResponse, error) {
		gotEmail, gotPassword = email, password
		return okLogin(ctx, email, password)
	}}
	var rec nav.Recorder
	ctx := context.Background()

	f := NewLoginForm(ctx, auth, store, &rec, deps)
	f.SetEmail("  a@b.co ")
	pw := []byte("secret1")
	f.SetPassword(pw)
	f.SetRememberMe(true)

	require.NoError(t, f.Submit(ctx))
	assert.Equal(t, "a@b.co", gotEmail)
	assert.Equal(t, "secret1", gotPassword)
	assert.Equal(t, []byte("secret1"), pw, "caller's slice is not touched")

	tok, _ := repo.Get(ctx, session.KeyToken)
	ref, _ := repo.Get(ctx, session.KeyRefreshToken)
	assert.Equal(t, "tok1", string(tok))
	assert.Equal(t, "ref1", string(ref))

	profile, err := store.Profile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "a1", profile.ID)

	ok, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	email, err := store.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", email)

	assert.Equal(t, []string{nav.RouteDashboard}, rec.Routes)
	assert.Equal(t, []notify.Kind{notify.KindSuccess}, kinds(n))
	assert.Equal(t, "Welcome back, Ada", n.History()[0].Message)
	assert.False(t, f.IsLoading())
	assert.NoError(t, f.Error())
}

func TestLogin_WithoutRememberMeForgets(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetRememberMe(ctx, "old@b.co"))

	deps, _, _ := testDeps()
	f := NewLoginForm(ctx, &fakeAuthService{LoginFn: okLogin}, store, &nav.Recorder{}, deps)
	assert.Equal(t, "old@b.co", f.Email())
	assert.True(t, f.RememberMe())

	f.SetRememberMe(false)
	f.SetPassword([]byte("secret1"))
	require.NoError(t, f.Submit(ctx))

	email, err := store.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestLogin_FailureMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"network", fmt.Errorf("%w: dial tcp: connection refused", api.ErrUnavailable),
			"Unable to connect to server. Please check your connection."},
		{"unauthorized", apperr.Wrap(api.ErrUnauthorized, apperr.CodeAuth, 401, "Invalid credentials"),
			"Invalid email or password. Please try again."},
		{"bad request", apperr.Wrap(nil, apperr.CodeValidation, 400, "HTTP 400: Bad Request"),
			"Please check your login credentials."},
		{"forbidden", apperr.Wrap(api.ErrForbidden, apperr.CodeAuth, 403, "Access forbidden"),
			"Access forbidden. This account cannot sign in."},
		{"server", apperr.Wrap(nil, apperr.CodeServer, 502, "HTTP 502: Bad Gateway"),
			"Server error. Please try again later."},
		{"rejected envelope", (&api.Envelope[models.LoginResponse]{Status: "error", Message: "Account locked"}).Failure("Login failed"),
			"Account locked"},
		{"empty message", errors.New(""), "Login failed. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := newStore(t)
			deps, n, _ := testDeps()
			auth := &fakeAuthService{LoginFn: func(context.Context, string, string) (models.LoginResponse, error) {
				return models.LoginResponse{}, tt.err
			}}
			var rec nav.Recorder

			f := NewLoginForm(context.Background(), auth, store, &rec, deps)
			f.SetEmail("a@b.co")
			f.SetPassword([]byte("secret1"))

			err := f.Submit(context.Background())
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.want, f.Error().Error())
			assert.Equal(t, 1, auth.loginCalls)
			assert.Empty(t, rec.Routes)
			assert.Equal(t, "a@b.co", f.Email(), "form stays editable")

			m, _ := repo.List(context.Background())
			assert.Empty(t, m)
			assert.Equal(t, []notify.Kind{notify.KindError}, kinds(n))
		})
	}
}

func TestLoginFailure_NilError(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred. Please try again.", loginFailure(nil).Message)
}

func TestLogin_RejectsOverlappingSubmit(t *testing.T) {
	store, _ := newStore(t)
	deps, _, _ := testDeps()

	started := make(chan struct{})
	release := make(chan struct{})
	auth := &fakeAuthService{LoginFn: func(ctx context.Context, email, password string) (models.LoginResponse, error) {
		close(started)
		<-release
		return okLogin(ctx, email, password)
	}}
	f := NewLoginForm(context.Background(), auth, store, &nav.Recorder{}, deps)
	f.SetEmail("a@b.co")
	f.SetPassword([]byte("secret1"))

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("login did not start")
	}
	assert.True(t, f.IsLoading())
	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, auth.loginCalls)
}

type failingSaveSessions struct {
	*session.Store
}

func (failingSaveSessions) Save(context.Context, models.LoginResponse) error {
	return errors.New("disk full")
}

func TestLogin_PersistFailure(t *testing.T) {
	store, _ := newStore(t)
	deps, _, _ := testDeps()
	var rec nav.Recorder

	f := NewLoginForm(context.Background(), &fakeAuthService{LoginFn: okLogin}, failingSaveSessions{store}, &rec, deps)
	f.SetEmail("a@b.co")
	f.SetPassword([]byte("secret1"))

	err := f.Submit(context.Background())
	require.EqualError(t, err, "Login failed. Please try again.")
	assert.Empty(t, rec.Routes)
}
