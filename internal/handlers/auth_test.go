// internal/handlers/auth_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epocha/admin-backend/internal/config"
	"github.com/epocha/admin-backend/internal/middleware"
	"github.com/epocha/admin-backend/internal/services"
	"github.com/epocha/admin-backend/internal/utils"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *utils.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := utils.NewTokenManager("test-secret", 24)
	authService := services.NewAuthService(&config.AuthConfig{
		Login:    "admin",
		Password: "secret",
	}, tokens)
	handler := NewAuthHandler(authService)

	r := gin.New()
	r.POST("/auth/login", handler.Login)
	r.GET("/admin", middleware.SessionRequired(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, "admin")
	})
	return r, tokens
}

func postLogin(r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, _ := http.NewRequest("POST", "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSetsCookieAndRedirects(t *testing.T) {
	r, tokens := setupAuthRouter(t)

	w := postLogin(r, "admin", "secret")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the session cookie")
	assert.True(t, session.HttpOnly)

	subject, err := tokens.Validate(session.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postLogin(r, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postLogin(r, "intruder", "secret")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRequiresBothFields(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postLogin(r, "", "secret")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postLogin(r, "admin", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminGateRequiresSession(t *testing.T) {
	r, tokens := setupAuthRouter(t)

	req, _ := http.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, _ = http.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := tokens.Generate("admin")
	require.NoError(t, err)

	req, _ = http.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
