package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestGenerateLeadID(t *testing.T) {
	pattern := regexp.MustCompile(`^L-[a-z0-9]{9}$`)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := GenerateLeadID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestJWTManager_ValidateAccessToken(t *testing.T) {
	m := NewJWTManager("secret", "auth.example.com")

	token := signToken(t, "secret", &JWTClaims{
		Email: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "auth.example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestJWTManager_RejectsInvalidTokens(t *testing.T) {
	m := NewJWTManager("secret", "auth.example.com")
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", signToken(t, "other", &JWTClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", Issuer: "auth.example.com", ExpiresAt: future}})},
		{"wrong issuer", signToken(t, "secret", &JWTClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", Issuer: "evil", ExpiresAt: future}})},
		{"expired", signToken(t, "secret", &JWTClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", Issuer: "auth.example.com", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}})},
		{"no subject", signToken(t, "secret", &JWTClaims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "auth.example.com", ExpiresAt: future}})},
		{"garbage", "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValidateAccessToken(tt.token)
			assert.Error(t, err)
		})
	}
}
