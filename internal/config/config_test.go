// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("LOGIN", "admin")
	t.Setenv("PASSWORD", "secret")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_URL", "https://example.com")
	t.Setenv("STATIC_FOLDER", "/var/www/static")
	t.Setenv("SESSION_TTL_HOURS", "12")
	t.Setenv("RATE_LIMIT_PER_SECOND", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "admin", cfg.Auth.Login)
	assert.Equal(t, "https://example.com", cfg.Storage.BaseURL)
	assert.Equal(t, "/var/www/static", cfg.Storage.StaticRoot)
	assert.Equal(t, 12, cfg.Auth.SessionTTLHours)
	assert.Equal(t, 50, cfg.Server.RateLimitPerSecond)
	assert.Equal(t, 5, cfg.Server.LoginAttemptsPerMinute, "login budget keeps its default")
}

func TestValidateRequiresCredentials(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Auth.Login = "admin"
	assert.Error(t, cfg.Validate(), "a login without any password is not enough")

	cfg.Auth.Password = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	cfg := &Config{
		Environment: "production",
		Auth: AuthConfig{
			Login:     "admin",
			Password:  "secret",
			SecretKey: "change-me-in-production",
		},
	}
	assert.Error(t, cfg.Validate())
}
