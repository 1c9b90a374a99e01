// Package services contains the application services of the portal: the
// auth/session lifecycle, the shared paginated-list controller, and thin
// typed wrappers over the backend's domain endpoints.
package services

import (
	"context"

	"github.com/shelterdesk/portal/internal/api"
	"github.com/shelterdesk/portal/internal/logging"
	"github.com/shelterdesk/portal/internal/session"
)

// AuthService owns the session lifecycle. It is the only writer of the
// session store.
//
// Contract:
//   - Login: authenticate with credentials; the store changes only on success.
//   - Refresh: mint a new token from the refresh cookie; a failed refresh
//     leaves the prior session untouched.
//   - Logout: best-effort backend call; the local session is always cleared.
//
// All operations are fire-once: no automatic retry, no backoff. The caller
// decides whether to retry manually.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

type authService struct {
	client *api.Client
	store  *session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client *api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	result, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.store.Set(result.AccessToken, result.User)
	a.log.Info(ctx, "signed in", "user", result.User.UserName)
	return nil
}

func (a *authService) Refresh(ctx context.Context) error {
	result, err := a.client.Refresh(ctx)
	if err != nil {
		// Prior session state stays as it was; a stale token fails on the
		// next authenticated call and the user re-authenticates then.
		return err
	}
	a.store.Set(result.AccessToken, result.User)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	// Local logout must always succeed, whatever the backend says.
	defer a.store.Clear()

	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "backend logout failed", "error", err)
		return err
	}
	return nil
}
