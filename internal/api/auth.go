package api

import (
	"context"
	"errors"
	"net/http"

	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/transport"
	"kitchenfab_admin/pkg/utils"
)

// AuthClient talks to the authentication endpoints. It is not a CRUD
// resource; it feeds the session manager and satisfies session.Refresher.
type AuthClient struct {
	t *transport.Client
}

// NewAuthClient creates the auth client.
func NewAuthClient(t *transport.Client) *AuthClient {
	return &AuthClient{t: t}
}

// Login exchanges staff credentials for a token pair.
func (c *AuthClient) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	req := models.LoginRequest{Username: username, Password: password}
	var out models.TokenPair
	if err := c.t.DoJSON(ctx, http.MethodPost, "/auth/login/", nil, req, &out); err != nil {
		return nil, c.wrapErr(err)
	}
	return &out, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	req := models.RefreshRequest{RefreshToken: refreshToken}
	var out models.TokenPair
	if err := c.t.DoJSON(ctx, http.MethodPost, "/auth/refresh/", nil, req, &out); err != nil {
		return nil, c.wrapErr(err)
	}
	return &out, nil
}

// Logout invalidates the refresh token server-side. A failed logout is not
// fatal; the caller clears the local session either way.
func (c *AuthClient) Logout(ctx context.Context, refreshToken string) error {
	req := models.RefreshRequest{RefreshToken: refreshToken}
	if err := c.t.DoJSON(ctx, http.MethodPost, "/auth/logout/", nil, req, nil); err != nil {
		return c.wrapErr(err)
	}
	return nil
}

func (c *AuthClient) wrapErr(err error) error {
	var reqErr *transport.RequestError
	if errors.As(err, &reqErr) {
		return utils.NormalizeAPIError("Session", reqErr.StatusCode, reqErr.Body)
	}
	return err
}
