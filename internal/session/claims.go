package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read off its own bearer token for
// display. The token is never validated here: it is opaque proof of
// identity and only the backend holds the signing secret.
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// Describe decodes the claims of a JWT without verifying its signature.
func Describe(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.New("token is not a JWT")
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
