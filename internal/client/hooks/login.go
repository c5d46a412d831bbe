package hooks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/client/models"
	"github.com/dmitrijs2005/denidash/internal/client/nav"
	"github.com/dmitrijs2005/denidash/internal/client/services"
	"github.com/dmitrijs2005/denidash/internal/client/validate"
	"github.com/dmitrijs2005/denidash/internal/common"
)

// ErrSubmitInProgress is returned when Submit is called while a previous
// submission of the same form is still pending.
var ErrSubmitInProgress = errors.New("login already in progress")

// Sessions is what the login and logout flows need from session.Store.
type Sessions interface {
	Save(ctx context.Context, login models.LoginResponse) error
	SetRememberMe(ctx context.Context, email string) error
	ForgetRememberMe(ctx context.Context) error
	RememberedEmail(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	Destroy(ctx context.Context) error
}

// LoginForm is the sign-in flow: it validates the credentials, performs one
// login request per submission, persists the session and redirects.
type LoginForm struct {
	base
	auth    services.AuthService
	session Sessions
	nav     nav.Navigator

	mu         sync.Mutex
	email      string
	password   []byte
	rememberMe bool
	err        error

	submitting atomic.Bool
}

// NewLoginForm builds the form, pre-filled with the remembered email if any.
func NewLoginForm(ctx context.Context, auth services.AuthService, s Sessions, n nav.Navigator, d Deps) *LoginForm {
	f := &LoginForm{base: newBase(d), auth: auth, session: s, nav: n}

	email, err := s.RememberedEmail(ctx)
	if err != nil {
		f.log.Warn(ctx, "failed to read remembered email", "error", err)
	}
	if email != "" {
		f.email = email
		f.rememberMe = true
	}
	return f
}

func (f *LoginForm) SetEmail(email string) {
	f.mu.Lock()
	f.email = email
	f.mu.Unlock()
}

func (f *LoginForm) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// SetPassword copies p into the form; the caller may wipe p afterwards.
func (f *LoginForm) SetPassword(p []byte) {
	f.mu.Lock()
	common.WipeByteArray(f.password)
	f.password = append([]byte(nil), p...)
	f.mu.Unlock()
}

func (f *LoginForm) SetRememberMe(v bool) {
	f.mu.Lock()
	f.rememberMe = v
	f.mu.Unlock()
}

func (f *LoginForm) RememberMe() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rememberMe
}

func (f *LoginForm) IsLoading() bool {
	return f.submitting.Load()
}

func (f *LoginForm) Error() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *LoginForm) ClearError() {
	f.setErr(nil)
}

func (f *LoginForm) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

// Submit signs in with the current form values. Validation failures never
// reach the network. On success the session is stored, the remember-me
// choice applied, and the navigator sent to the dashboard; on failure no
// session is written and the form keeps its values.
func (f *LoginForm) Submit(ctx context.Context) error {
	if !f.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer f.submitting.Store(false)

	f.mu.Lock()
	f.err = nil
	email := strings.TrimSpace(f.email)
	password := string(f.password)
	remember := f.rememberMe
	f.mu.Unlock()

	if err := checkCredentials(email, password); err != nil {
		f.setErr(err)
		return err
	}

	res, err := f.auth.Login(ctx, email, password)
	if err != nil {
		e := loginFailure(err)
		f.setErr(e)
		f.log.Warn(ctx, "login failed", "email", email, "status", e.Status, "error", err)
		f.notify.Error(e.Message)
		return e
	}

	if err := f.session.Save(ctx, res); err != nil {
		e := apperr.Wrap(err, apperr.CodeUnknown, 0, "Login failed. Please try again.")
		f.setErr(e)
		f.log.Error(ctx, "failed to persist session", "error", err)
		f.notify.Error(e.Message)
		return e
	}

	if remember {
		err = f.session.SetRememberMe(ctx, email)
	} else {
		err = f.session.ForgetRememberMe(ctx)
	}
	if err != nil {
		f.log.Warn(ctx, "failed to apply remember-me", "error", err)
	}

	f.mu.Lock()
	common.WipeByteArray(f.password)
	f.password = nil
	f.mu.Unlock()

	f.log.Info(ctx, "signed in", "admin_id", res.Admin.ID, "role", string(res.Admin.Role))
	f.notify.Success(welcome(res.Admin))
	f.nav.Navigate(ctx, nav.RouteDashboard)
	return nil
}

func checkCredentials(email, password string) error {
	if err := validate.Required(email, "Email"); err != nil {
		return err
	}
	if err := validate.Required(password, "Password"); err != nil {
		return err
	}
	return validate.Email(email)
}

// loginFailure maps a failed login to the message shown on the form.
func loginFailure(err error) *apperr.Error {
	if err == nil {
		return apperr.New(apperr.CodeUnknown, "An unexpected error occurred. Please try again.")
	}

	e := apperr.Classify(err)
	msg := e.Message
	switch {
	case e.Code == apperr.CodeNetwork:
		msg = "Unable to connect to server. Please check your connection."
	case e.Status == http.StatusUnauthorized:
		msg = "Invalid email or password. Please try again."
	case e.Status == http.StatusBadRequest:
		msg = "Please check your login credentials."
	case e.Status == http.StatusForbidden:
		msg = "Access forbidden. This account cannot sign in."
	case e.Status >= http.StatusInternalServerError:
		msg = "Server error. Please try again later."
	case msg == "":
		msg = "Login failed. Please try again."
	}

	code := e.Code
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		code = apperr.CodeAuth
	}
	return apperr.Wrap(err, code, e.Status, msg)
}

func welcome(a models.Admin) string {
	if a.Name == "" {
		return "Signed in"
	}
	return fmt.Sprintf("Welcome back, %s", a.Name)
}
