// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func setupLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doPing(r *gin.Engine, addr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = addr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterThrottlesPerIP(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Minute), 2)
	r := setupLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1:51000"))
	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1:51000"))
	assert.Equal(t, http.StatusTooManyRequests, doPing(r, "10.0.0.1:51000"))

	// A different client gets its own bucket.
	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.2:51000"))
}

func TestNewRateLimiterInstancesAreIndependent(t *testing.T) {
	strict := NewRateLimiter(rate.Every(time.Minute), 1)
	loose := NewRateLimiter(rate.Every(time.Minute), 3)

	strictRouter := setupLimitedRouter(strict)
	looseRouter := setupLimitedRouter(loose)

	assert.Equal(t, http.StatusOK, doPing(strictRouter, "10.0.0.3:51000"))
	assert.Equal(t, http.StatusTooManyRequests, doPing(strictRouter, "10.0.0.3:51000"))

	// Exhausting one limiter leaves the other untouched.
	assert.Equal(t, http.StatusOK, doPing(looseRouter, "10.0.0.3:51000"))
}
