package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/shelterdesk/portal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend.
// The password byte slice is wiped before returning. On failure the session
// is left exactly as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrUnavailable):
			printlnFn("Server unreachable, try again later")
		case errors.Is(err, common.ErrUnauthorized):
			printlnFn("Sign-in failed: wrong email or password")
		default:
			printlnFn("Sign-in failed:", err.Error())
		}
		return err
	}

	printlnFn("Signed in")
	return nil
}

// Logout clears the session. The local session goes away even when the
// backend call fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Signed out locally (backend call failed)")
		return nil
	}
	printlnFn("Signed out")
	return nil
}

// WhoAmI prints the signed-in user's profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn("User:", user.UserName, "<"+user.Email+">")
	if len(user.Roles) > 0 {
		printlnFn("Roles:", strings.Join(user.Roles, ", "))
	}
	if user.Volunteer != nil && len(user.Volunteer.Skills) > 0 {
		printlnFn("Skills:", strings.Join(user.Volunteer.Skills, ", "))
	}
	return nil
}
