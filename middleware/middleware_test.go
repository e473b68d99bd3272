// File: /middleware/middleware_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimitedRouter(requestsPerMinute, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimit(requestsPerMinute, burst))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func pingFrom(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	r := setupLimitedRouter(60, 2)

	for i := 0; i < 2; i++ {
		w := pingFrom(r, "10.0.0.1:1111")
		require.Equal(t, http.StatusOK, w.Code, "request %d within burst", i+1)
	}

	w := pingFrom(r, "10.0.0.1:1111")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

// Exhausting one client's budget must not throttle another client.
func TestRateLimitIsPerClient(t *testing.T) {
	r := setupLimitedRouter(60, 1)

	require.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.1:1111").Code)
	require.Equal(t, http.StatusTooManyRequests, pingFrom(r, "10.0.0.1:1111").Code)

	assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.2:2222").Code)
}

func TestRequestLoggerPassesRequestThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"message": "pong"})
	})

	w := pingFrom(r, "10.0.0.1:1111")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}
