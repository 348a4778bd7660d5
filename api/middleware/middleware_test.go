package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	pkglog "stickfight/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGenerated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var fromCtx string
	r.GET("/", func(c *gin.Context) {
		fromCtx = pkglog.RequestID(c.Request.Context())
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 26)
	assert.Equal(t, id, w.Body.String())
	assert.Equal(t, id, fromCtx)
}

func TestRequestIDPropagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "client-id", w.Body.String())
	assert.Equal(t, "client-id", w.Header().Get(RequestIDHeader))
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "unknown", GetRequestID(c))
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2, pkglog.Discard())
	r := gin.New()
	r.POST("/generate", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(1, 1, pkglog.Discard())
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }
	limiter.lastSweep = clock

	first := limiter.GetLimiterFrom("10.0.0.1")
	limiter.GetLimiterFrom("10.0.0.2")
	assert.Equal(t, 2, limiter.Len())

	// 同一 IP 在有效期内复用同一个令牌桶
	clock = clock.Add(DefaultIdleTTL / 2)
	assert.Same(t, first, limiter.GetLimiterFrom("10.0.0.1"))

	// 10.0.0.2 闲置超时被回收，10.0.0.1 最近访问过仍保留
	clock = clock.Add(DefaultIdleTTL / 2)
	limiter.GetLimiterFrom("10.0.0.3")
	assert.Equal(t, 2, limiter.Len())
	assert.Same(t, first, limiter.GetLimiterFrom("10.0.0.1"))

	clock = clock.Add(2 * DefaultIdleTTL)
	limiter.GetLimiterFrom("10.0.0.4")
	assert.Equal(t, 1, limiter.Len())
}

func TestRateLimiterDisabled(t *testing.T) {
	limiter := NewRateLimiter(0, 0, pkglog.Discard())
	r := gin.New()
	r.POST("/generate", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestLoggerMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(pkglog.Discard()))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
