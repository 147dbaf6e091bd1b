// internal/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epocha/admin-backend/internal/middleware"
	"github.com/epocha/admin-backend/internal/services"
	"github.com/epocha/admin-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/login
// The admin UI submits the standard OAuth2 password form fields, so
// the login arrives as form-encoded "username"/"password" rather
// than JSON. A successful login sets the session cookie and bounces
// the browser to the admin page.
func (h *AuthHandler) Login(c *gin.Context) {
	login := c.PostForm("username")
	password := c.PostForm("password")

	if login == "" || password == "" {
		utils.BadRequestResponse(c, "Login and password are required")
		return
	}

	if !h.authService.VerifyCredentials(login, password) {
		utils.UnauthorizedResponse(c, "Invalid login or password")
		return
	}

	token, ttl, err := h.authService.IssueSession(login)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}
