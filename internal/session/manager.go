package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartshop/shopdeck/internal/tokenstore"
	"github.com/smartshop/shopdeck/pkg/client"
	"github.com/smartshop/shopdeck/pkg/domain"
	"github.com/smartshop/shopdeck/pkg/token"
)

// ErrInvalid reports a session that cannot be rebuilt because local
// storage is unreadable. The stored token is removed when this happens.
var ErrInvalid = errors.New("invalid session")

// FieldError is a client-side validation failure scoped to one form field.
type FieldError struct {
	Field  string
	Detail string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Detail
}

// Manager owns the credential flows and session restore, and is the only
// writer of the session store.
type Manager struct {
	api    *client.Client
	tokens *tokenstore.Store
	store  *Store
}

// NewManager wires the flows to an API client, a token store, and the
// session store they write into.
func NewManager(api *client.Client, tokens *tokenstore.Store, store *Store) *Manager {
	return &Manager{api: api, tokens: tokens, store: store}
}

// Store returns the session store the manager writes into.
func (m *Manager) Store() *Store {
	return m.store
}

// Restore rebuilds the session from the stored token. A missing token is
// not an error; an unreadable or expired one silently clears the session.
// When the token is locally fresh but the profile fetch fails, the user
// is built from the decoded claims instead so a backend hiccup does not
// force a re-login.
func (m *Manager) Restore(ctx context.Context) error {
	m.store.Begin()

	tok, err := m.tokens.Get()
	if err != nil {
		m.tokens.Remove() //nolint:errcheck // already abandoning the session
		m.store.Fail("session is no longer valid, please log in again")
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if tok == "" {
		m.store.Reset()
		return nil
	}

	claims, err := token.Decode(tok)
	if err != nil || claims.Expired() {
		m.tokens.Remove() //nolint:errcheck
		m.store.Reset()
		return nil
	}

	m.api.SetToken(tok)
	u, err := m.api.CurrentUser(ctx)
	if err != nil {
		u = userFromClaims(claims, tok)
	} else {
		u.Token = tok
	}
	m.store.Succeed(u)
	if u.Shop != nil {
		m.store.SetShop(u.Shop)
	}
	return nil
}

// Login signs in with credentials, persists the returned token, and
// installs the user in the store.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.User, error) {
	m.store.Begin()

	u, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.store.Fail(flowErrorMessage(err, "login failed"))
		return nil, err
	}
	if err := m.tokens.Save(u.Token); err != nil {
		m.store.Fail("could not save the session token")
		return nil, err
	}
	m.api.SetToken(u.Token)
	m.store.Succeed(u)
	if u.Shop != nil {
		m.store.SetShop(u.Shop)
	}
	return u, nil
}

// Register creates an account and signs the new user in. Mismatched
// passwords fail locally with a field error before any network call.
func (m *Manager) Register(ctx context.Context, req client.RegisterRequest) (*domain.User, error) {
	m.store.Begin()

	if req.Password != req.Password2 {
		err := &FieldError{Field: "password2", Detail: "passwords don't match"}
		m.store.Fail(err.Detail)
		return nil, err
	}

	u, err := m.api.Register(ctx, req)
	if err != nil {
		m.store.Fail(flowErrorMessage(err, "registration failed"))
		return nil, err
	}
	if err := m.tokens.Save(u.Token); err != nil {
		m.store.Fail("could not save the session token")
		return nil, err
	}
	m.api.SetToken(u.Token)
	m.store.Succeed(u)
	if u.Shop != nil {
		m.store.SetShop(u.Shop)
	}
	return u, nil
}

// Logout notifies the backend best-effort, then unconditionally clears
// the stored token, the in-memory bearer, and the session store. Calling
// it twice is harmless.
func (m *Manager) Logout(ctx context.Context) {
	m.api.Logout(ctx) //nolint:errcheck // best-effort; local cleanup matters more
	m.tokens.Remove() //nolint:errcheck
	m.api.ClearToken()
	m.store.Reset()
}

// userFromClaims builds a session user from decoded token claims alone.
// This trusts an unverified payload, but only ever as a display fallback
// while the backend is unreachable; the backend still authorizes every
// subsequent request by the token itself.
func userFromClaims(c *token.Claims, tok string) *domain.User {
	return &domain.User{
		ID:        c.UserID,
		Email:     c.Email,
		Username:  c.Username,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Role:      domain.RoleOrDefault(c.Role),
		Token:     tok,
	}
}

// flowErrorMessage turns a flow error into the message stored for the UI.
// Backend rejections surface their detail; anything else is assumed to be
// a transient network problem.
func flowErrorMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if errors.Is(err, client.ErrNoAccessToken) {
		return fallback
	}
	return "network error, please try again"
}
