// Package session persists the signed-in administrator's credentials and
// profile in the local store, and answers whether a usable session exists.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/storage"
	"github.com/dmitrijs2005/denidash/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Storage keys.
const (
	KeyToken        = "authToken"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
	KeyRememberMe   = "rememberMe"
	KeyLastEmail    = "lastEmail"
)

// Keys lists every key owned by the session.
var Keys = []string{KeyToken, KeyRefreshToken, KeyUser, KeyRememberMe, KeyLastEmail}

// ErrNoExpiry is returned by TokenExpiry when the token carries no readable exp claim.
var ErrNoExpiry = errors.New("token expiry unknown")

type Store struct {
	repo storage.Repository
	log  logging.Logger
}

func NewStore(repo storage.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{repo: repo, log: log}
}

func (s *Store) getString(ctx context.Context, key string) (string, error) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, KeyToken, []byte(token))
}

// Token returns the access token, or "" when none is stored. It satisfies
// api.TokenSource.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyToken)
}

// RemoveToken deletes the access token. Removing an absent token is a no-op.
func (s *Store) RemoveToken(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyToken)
}

func (s *Store) SetRefreshToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, KeyRefreshToken, []byte(token))
}

func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyRefreshToken)
}

func (s *Store) SaveProfile(ctx context.Context, admin models.Admin) error {
	b, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.repo.Set(ctx, KeyUser, b)
}

// Profile returns the cached profile, or nil when none is stored.
func (s *Store) Profile(ctx context.Context) (*models.Admin, error) {
	b, err := s.repo.Get(ctx, KeyUser)
	if err != nil || len(b) == 0 {
		return nil, err
	}

	var admin models.Admin
	if err := json.Unmarshal(b, &admin); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &admin, nil
}

// Save persists everything a successful login hands back. An empty refresh
// token leaves the stored one untouched.
func (s *Store) Save(ctx context.Context, login models.LoginResponse) error {
	if err := s.SetToken(ctx, login.AccessToken); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if login.RefreshToken != "" {
		if err := s.SetRefreshToken(ctx, login.RefreshToken); err != nil {
			return fmt.Errorf("save refresh token: %w", err)
		}
	}
	if err := s.SaveProfile(ctx, login.Admin); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether both a token and a profile are stored.
//
// A profile that is not a JSON object is corrupted: token and profile are
// both removed and the session reads as absent.
func (s *Store) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	raw, err := s.repo.Get(ctx, KeyUser)
	if err != nil {
		return false, err
	}
	if token == "" || len(raw) == 0 {
		return false, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		s.log.Warn(ctx, "stored profile is corrupted, clearing session")
		if err := s.repo.Delete(ctx, KeyToken, KeyUser); err != nil {
			return false, fmt.Errorf("clear corrupted session: %w", err)
		}
		return false, nil
	}
	return true, nil
}

// SetRememberMe records that the next login form should be pre-filled with email.
func (s *Store) SetRememberMe(ctx context.Context, email string) error {
	if err := s.repo.Set(ctx, KeyRememberMe, []byte("true")); err != nil {
		return err
	}
	return s.repo.Set(ctx, KeyLastEmail, []byte(email))
}

func (s *Store) ForgetRememberMe(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyRememberMe, KeyLastEmail)
}

// RememberedEmail returns the last email when remember-me is on, "" otherwise.
func (s *Store) RememberedEmail(ctx context.Context) (string, error) {
	flag, err := s.getString(ctx, KeyRememberMe)
	if err != nil || flag != "true" {
		return "", err
	}
	return s.getString(ctx, KeyLastEmail)
}

// Destroy removes every session key, remember-me included.
func (s *Store) Destroy(ctx context.Context) error {
	return s.repo.Delete(ctx, Keys...)
}

// HandleUnauthorized drops the access token after the API rejected it.
func (s *Store) HandleUnauthorized(ctx context.Context) error {
	s.log.Info(ctx, "api rejected credentials, removing token")
	return s.RemoveToken(ctx)
}

// TokenExpiry reads the exp claim of the stored access token without
// verifying its signature. It is informational only.
func (s *Store) TokenExpiry(ctx context.Context) (time.Time, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if strings.Count(token, ".") != 2 {
		return time.Time{}, ErrNoExpiry
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrNoExpiry, err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
