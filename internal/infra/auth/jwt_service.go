// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"deliveryzone/config"
	"deliveryzone/internal/domain/service"
	"deliveryzone/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenType = "access"

// ErrWrongTokenType is returned when a refresh or other non-access token is presented.
var ErrWrongTokenType = errors.New("token is not an access token")

// jwtVerifier is a concrete implementation of the TokenVerifier interface using the JWT standard.
type jwtVerifier struct {
	accessSecret []byte // Secret key access tokens are signed with.
	parser       *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks the signature, expiry and type of an access token.
func (s *jwtVerifier) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if claims.Type != accessTokenType {
		return nil, errors.WithStack(ErrWrongTokenType)
	}

	return claims, nil
}
