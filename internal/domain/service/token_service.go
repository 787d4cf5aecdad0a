package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
// Tokens are issued elsewhere; this service only verifies them.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"` // "access" for API tokens.
	jwt.RegisteredClaims
}

// HasAnyRole reports whether the claims carry at least one of roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	for _, have := range c.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}

	return false
}

// TokenVerifier validates bearer tokens presented to the API.
type TokenVerifier interface {
	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
