package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/denidash/internal/client/nav"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// maxRedirects bounds how many navigations are followed between two prompts.
const maxRedirects = 3

type command func(ctx context.Context, args []string) error

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Redirect() string

	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Whoami(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error
	Admins(ctx context.Context, args []string) error
	AddAdmin(ctx context.Context, args []string) error
	EditAdmin(ctx context.Context, args []string) error
	DeleteAdmin(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	EditProfile(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	User(ctx context.Context, args []string) error
	Reports(ctx context.Context, args []string) error
	Respond(ctx context.Context, args []string) error
}

func commands(a execIface) map[string]command {
	return map[string]command{
		"login":       a.Login,
		"logout":      a.Logout,
		"whoami":      a.Whoami,
		"dashboard":   a.Dashboard,
		"d":           a.Dashboard,
		"admins":      a.Admins,
		"addadmin":    a.AddAdmin,
		"editadmin":   a.EditAdmin,
		"deladmin":    a.DeleteAdmin,
		"profile":     a.Profile,
		"editprofile": a.EditProfile,
		"users":       a.Users,
		"user":        a.User,
		"reports":     a.Reports,
		"respond":     a.Respond,
	}
}

// followRedirects runs the screen for every route the session layer asked
// for: the login prompt for /login and the dashboard for /dashboard.
func followRedirects(ctx context.Context, a execIface) {
	for range maxRedirects {
		var err error
		switch a.Redirect() {
		case nav.RouteLogin:
			printlnFn("Please sign in.")
			err = a.Login(ctx, nil)
		case nav.RouteDashboard:
			err = a.Dashboard(ctx, nil)
		default:
			return
		}
		if errors.Is(err, io.EOF) {
			return
		}
	}
}

// runREPL starts a simple read–eval–print loop for the dashboard CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit". Before every prompt, pending navigations are followed.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                     show available commands
//	  - login                    authenticate
//	  - exit | quit              leave the program
//
//	Logged in:
//	  - dashboard | d            user totals and top countries/currencies
//	  - admins                   list administrators
//	  - addadmin                 create an administrator
//	  - editadmin <id>           change name, role or active flag
//	  - deladmin <id>            delete an administrator
//	  - profile                  show the signed-in administrator
//	  - editprofile              change own name or password
//	  - users [page] [limit]     list users
//	  - user <id>                show a single user
//	  - reports [status=] [type=] [text]   list and filter reports
//	  - respond <id>             resolve or reject a report
//	  - whoami                   cached profile and token expiry
//	  - logout                   sign out
//
// Command errors are not fatal; the handlers and the notifier report them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	cmds := commands(a)

	for {
		followRedirects(ctx, a)

		printlnFn(fmt.Sprintf("deni %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (d)ashboard, admins, addadmin, editadmin, deladmin, profile, editprofile, users, user, reports, respond, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		run, ok := cmds[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		_ = run(ctx, args)
	}
}
