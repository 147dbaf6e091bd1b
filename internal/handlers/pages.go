// internal/handlers/pages.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epocha/admin-backend/internal/middleware"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// GET /
// The landing page doubles as the login page; a browser that already
// carries the session cookie is shown the admin page directly.
func (h *PageHandler) Index(c *gin.Context) {
	if _, err := c.Cookie(middleware.SessionCookie); err != nil {
		c.HTML(http.StatusOK, "index.html", nil)
		return
	}
	c.HTML(http.StatusOK, "admin.html", nil)
}

// GET /admin
func (h *PageHandler) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", nil)
}
