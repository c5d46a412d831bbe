package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/client/hooks"
	"github.com/dmitrijs2005/denidash/internal/client/session"
	"github.com/dmitrijs2005/denidash/internal/common"
)

// Login prompts for credentials and submits the login form. The remembered
// email, if any, is offered as the default and remember-me starts checked.
//
// Validation problems are printed inline; API failures are already reported
// through the notifier. The password is wiped before returning.
func (a *App) Login(ctx context.Context, _ []string) error {
	form := hooks.NewLoginForm(ctx, a.auth, a.store, a, a.deps)

	email, err := GetTextWithDefault(a.reader, "Enter email", form.Email(), a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := GetConfirmation(a.reader, "Remember me?", form.RememberMe(), a.out)
	if err != nil {
		return err
	}

	form.SetEmail(email)
	form.SetPassword(password)
	form.SetRememberMe(remember)

	if err := form.Submit(ctx); err != nil {
		if apperr.CodeOf(err) == apperr.CodeValidation {
			fmt.Fprintln(a.out, err.Error())
		}
		return err
	}
	return nil
}

// Logout signs out. It never fails.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.logout.Run(ctx)
	return nil
}

// Whoami prints the cached profile and the access token's expiry time, or
// "unknown" when the token does not carry one.
func (a *App) Whoami(ctx context.Context, _ []string) error {
	p, err := a.store.Profile(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	renderAdmin(a.out, *p)

	exp, err := a.store.TokenExpiry(ctx)
	switch {
	case errors.Is(err, session.ErrNoExpiry):
		fmt.Fprintln(a.out, "Token expires: unknown")
	case err != nil:
		return err
	default:
		fmt.Fprintf(a.out, "Token expires: %s\n", exp.Local().Format(time.DateTime))
	}
	return nil
}
