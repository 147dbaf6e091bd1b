// internal/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows any origin. The admin UI may be served from a different
// host than the API during development.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS", "DELETE", "PATCH", "PUT"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	})
}
