package client

import (
	"context"
	"fmt"

	"github.com/smartshop/shopdeck/pkg/domain"
)

// RegisterRequest is the input for account registration. ShopName and
// BusinessLicense apply to shop owners only; AdminCode applies to admins
// only. Fields outside the requested user type are never sent.
type RegisterRequest struct {
	Username        string
	Email           string
	Password        string
	Password2       string
	FirstName       string
	LastName        string
	UserType        domain.Role
	Phone           string
	ShopName        string
	BusinessLicense string
	AdminCode       string
}

// registerPayload is the wire shape for /auth/register/.
type registerPayload struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Password2       string `json:"password2"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	UserType        string `json:"user_type"`
	Phone           string `json:"phone,omitempty"`
	ShopName        string `json:"shop_name,omitempty"`
	BusinessLicense string `json:"business_license,omitempty"`
	AdminCode       string `json:"admin_code,omitempty"`
}

// authResponse is the body returned by the credential endpoints.
type authResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh,omitempty"`
	User    userPayload `json:"user"`
}

// Login exchanges credentials for a session. The returned user carries
// the access token; persisting it is the caller's concern.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/auth/login/", body, &resp); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	if resp.Access == "" {
		return nil, fmt.Errorf("client.Login: %w", ErrNoAccessToken)
	}
	return normalizeUser(resp.User, resp.Access), nil
}

// Register creates a new account. Shop and admin fields are attached to
// the payload only when the requested user type calls for them.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	payload := registerPayload{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserType:  string(req.UserType),
		Phone:     req.Phone,
	}
	switch req.UserType {
	case domain.RoleShopOwner:
		payload.ShopName = req.ShopName
		payload.BusinessLicense = req.BusinessLicense
	case domain.RoleAdmin:
		payload.AdminCode = req.AdminCode
	}

	var resp authResponse
	if err := c.post(ctx, "/auth/register/", payload, &resp); err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	if resp.Access == "" {
		return nil, fmt.Errorf("client.Register: %w", ErrNoAccessToken)
	}
	if resp.User.Role == "" {
		// Backend omitted the role; the requested type is the best guess.
		resp.User.Role = string(req.UserType)
	}
	return normalizeUser(resp.User, resp.Access), nil
}

// CurrentUser fetches the authoritative profile for the configured
// bearer token. The returned user carries that same token.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var payload userPayload
	if err := c.get(ctx, "/auth/user/", &payload); err != nil {
		return nil, fmt.Errorf("client.CurrentUser: %w", err)
	}
	return normalizeUser(payload, c.token), nil
}

// Logout notifies the backend that the session is over.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.post(ctx, "/auth/logout/", nil, nil); err != nil {
		return fmt.Errorf("client.Logout: %w", err)
	}
	return nil
}
