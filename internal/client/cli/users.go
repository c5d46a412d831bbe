package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/denidash/internal/client/models"
)

// Users lists one page of users. Usage: users [page] [limit]. Missing or
// malformed numbers fall back to the server defaults.
func (a *App) Users(ctx context.Context, args []string) error {
	page, limit := intArg(args, 0), intArg(args, 1)

	if err := a.guard.Load(ctx, func(ctx context.Context) error {
		return a.users.Fetch(ctx, page, limit)
	}); err != nil {
		return err
	}
	renderUsers(a.out, a.users.State().Data)
	return nil
}

func (a *App) User(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: user <id>")
		return nil
	}

	var u models.User
	if err := a.guard.Load(ctx, func(ctx context.Context) (err error) {
		u, err = a.users.Get(ctx, args[0])
		return err
	}); err != nil {
		return err
	}
	renderUser(a.out, u)
	return nil
}

func intArg(args []string, i int) int {
	if i >= len(args) {
		return 0
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
