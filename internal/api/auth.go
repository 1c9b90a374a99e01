package api

import (
	"context"

	"github.com/shelterdesk/portal/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for an access token and profile. A successful
// response also sets the HTTP-only refresh cookie in the client's jar.
func (c *Client) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	return Post[models.AuthResult](ctx, c, "/api/account/login", loginRequest{Email: email, Password: password})
}

// Refresh mints a new access token using the refresh cookie alone; the
// request body is empty and no bearer token is attached.
func (c *Client) Refresh(ctx context.Context) (models.AuthResult, error) {
	return Post[models.AuthResult](WithoutAuth(ctx), c, "/api/account/refresh", nil)
}

// Logout revokes the refresh credential server-side.
func (c *Client) Logout(ctx context.Context) error {
	_, err := Post[bool](ctx, c, "/api/account/logout", nil)
	return err
}
