// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/epocha/admin-backend/internal/config"
	"github.com/epocha/admin-backend/internal/utils"
)

func TestVerifyCredentialsPlainPassword(t *testing.T) {
	svc := NewAuthService(&config.AuthConfig{
		Login:    "admin",
		Password: "secret",
	}, utils.NewTokenManager("test-secret", 24))

	assert.True(t, svc.VerifyCredentials("admin", "secret"))
	assert.False(t, svc.VerifyCredentials("admin", "wrong"))
	assert.False(t, svc.VerifyCredentials("other", "secret"))
}

func TestVerifyCredentialsBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(&config.AuthConfig{
		Login:        "admin",
		Password:     "ignored-when-hash-set",
		PasswordHash: string(hash),
	}, utils.NewTokenManager("test-secret", 24))

	assert.True(t, svc.VerifyCredentials("admin", "secret"))
	assert.False(t, svc.VerifyCredentials("admin", "ignored-when-hash-set"))
}

func TestIssueSessionRoundTrip(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", 24)
	svc := NewAuthService(&config.AuthConfig{Login: "admin", Password: "secret"}, tokens)

	token, ttl, err := svc.IssueSession("admin")
	require.NoError(t, err)
	assert.Equal(t, tokens.TTL(), ttl)

	subject, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}
