package auth

import (
	"testing"
	"time"

	"deliveryzone/config"
	"deliveryzone/internal/domain/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, verifier)
}

func TestJWTVerifier_ValidAccessToken(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"type":  "access",
		"roles": []string{constants.RoleVendor},
	})

	claims, err := verifier.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, []string{constants.RoleVendor}, claims.Roles)
	assert.True(t, claims.HasAnyRole(constants.RoleAdmin, constants.RoleVendor))
	assert.False(t, claims.HasAnyRole(constants.RoleAdmin))
}

func TestJWTVerifier_RejectsInvalidTokens(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(newTestConfig(testSecret))
	require.NoError(t, err)

	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub":  uuid.NewString(),
			"exp":  time.Now().Add(time.Minute).Unix(),
			"type": "access",
		}
	}

	expired := valid()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	refresh := valid()
	refresh["type"] = "refresh"

	noExpiry := valid()
	delete(noExpiry, "exp")

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.jwt"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), valid())},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{name: "refresh token", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), refresh)},
		{name: "missing expiry", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{name: "other hmac size", token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), valid())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := verifier.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
