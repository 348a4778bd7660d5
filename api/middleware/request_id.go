package middleware

import (
	"crypto/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	pkglog "stickfight/pkg/log"
)

// RequestIDHeader 请求 ID 的 HTTP 头
const RequestIDHeader = "X-Request-ID"

// NewULIDFromTimestamp 生成按时间排序的 ULID
func NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// RequestID 为每个请求分配 ID，客户端已提供时沿用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID, _ = NewULIDFromTimestamp(time.Now())
		}

		c.Set(pkglog.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(pkglog.ContextWithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}

// GetRequestID 获取当前请求的 ID
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(pkglog.RequestIDKey); id != "" {
		return id
	}
	return "unknown"
}
