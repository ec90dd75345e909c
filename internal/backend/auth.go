package backend

import (
	"context"
	"net/http"

	"ledgerdesk/internal/domain"
)

// Login exchanges credentials for a user and token pair.
func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthPayload, error) {
	const op = "Login"
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	return sendJSON[domain.AuthPayload](ctx, c, op, http.MethodPost, "/auth/login", nil, body)
}

// Register creates an account; the response shape matches Login.
func (c *Client) Register(
	ctx context.Context,
	reg domain.Registration,
) (domain.AuthPayload, error) {
	const op = "Register"
	return sendJSON[domain.AuthPayload](ctx, c, op, http.MethodPost, "/auth/register", nil, reg)
}

// Logout tells the backend the session ended. The caller treats failures as
// advisory; local state is torn down regardless.
func (c *Client) Logout(ctx context.Context) error {
	const op = "Logout"
	resp, err := c.do(ctx, op, http.MethodPost, "/auth/logout", nil, nil)
	if err != nil {
		return err
	}
	return decodeDiscard(op, resp)
}

// CurrentUser fetches the profile behind the persisted token.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	const op = "CurrentUser"
	payload, err := getJSON[domain.UserPayload](ctx, c, op, "/auth/me", nil)
	if err != nil {
		return domain.User{}, err
	}
	return payload.User, nil
}

// UpdateProfile applies a partial profile update and returns the merged user.
func (c *Client) UpdateProfile(
	ctx context.Context,
	update domain.ProfileUpdate,
) (domain.User, error) {
	const op = "UpdateProfile"
	payload, err := sendJSON[domain.UserPayload](
		ctx, c, op, http.MethodPut, "/auth/me", nil, update,
	)
	if err != nil {
		return domain.User{}, err
	}
	return payload.User, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, change domain.PasswordChange) error {
	const op = "ChangePassword"
	resp, err := c.do(ctx, op, http.MethodPost, "/auth/change-password", nil, change)
	if err != nil {
		return err
	}
	return decodeDiscard(op, resp)
}

// RefreshToken mints a new access token from the stored refresh token.
func (c *Client) RefreshToken(
	ctx context.Context,
	refreshToken string,
) (domain.TokenPair, error) {
	const op = "RefreshToken"
	body := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refreshToken}
	payload, err := sendJSON[domain.TokenPayload](
		ctx, c, op, http.MethodPost, "/auth/refresh", nil, body,
	)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return payload.Token, nil
}
