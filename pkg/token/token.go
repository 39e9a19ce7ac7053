// Package token decodes platform JWTs client-side. Decoding never
// verifies the signature; claims are used for expiry checks and as a
// display fallback, not for trust establishment.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed reports a token that is not a decodable JWT.
var ErrMalformed = errors.New("malformed token")

// Claims is the identity payload embedded in a platform access token.
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

// Decode extracts the claims from a raw token without verifying its
// signature. Anything that is not three base64url segments with a JSON
// payload fails with ErrMalformed.
func Decode(raw string) (*Claims, error) {
	var claims Claims
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &claims, nil
}

// Expired reports whether the exp claim is in the past. A token without
// an exp claim never expires locally.
func (c *Claims) Expired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(c.ExpiresAt.Time)
}
