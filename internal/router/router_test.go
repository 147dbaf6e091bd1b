// internal/router/router_test.go
package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epocha/admin-backend/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Environment: "test",
		Server: config.ServerConfig{
			RateLimitPerSecond:     20,
			LoginAttemptsPerMinute: 5,
		},
		Auth: config.AuthConfig{
			Login:           "admin",
			Password:        "secret",
			SecretKey:       "test-secret",
			SessionTTLHours: 24,
		},
		Storage: config.StorageConfig{
			BaseURL:    "http://localhost:8000",
			StaticRoot: t.TempDir(),
		},
	}
}

// Templates are loaded relative to the module root.
func chdirModuleRoot(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir("../.."))
	t.Cleanup(func() {
		os.Chdir(wd)
	})
}

func TestInitializeServesHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	chdirModuleRoot(t)

	r, err := Initialize(nil, testConfig(t))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
