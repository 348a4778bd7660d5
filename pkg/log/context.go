package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type requestIDKey struct{}

// ContextWithRequestID 把请求 ID 放入上下文
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID 从上下文取出请求 ID，没有时返回 "unknown"
func RequestID(ctx context.Context) string {
	if ctx != nil {
		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
			return id
		}
	}
	return "unknown"
}

// WithRequestID 带请求 ID 字段的日志条目
func WithRequestID(ctx context.Context, logger logrus.FieldLogger) *logrus.Entry {
	return logger.WithField(RequestIDKey, RequestID(ctx))
}
