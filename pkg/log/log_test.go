package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "warn", Out: &buf})
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.WithField(RequestIDKey, "abc").Warn("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "abc")
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger := NewLogger(Options{Level: "nonsense", Out: &bytes.Buffer{}})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}

func TestRequestIDContext(t *testing.T) {
	assert.Equal(t, "unknown", RequestID(context.Background()))

	ctx := ContextWithRequestID(context.Background(), "01HXYZ")
	assert.Equal(t, "01HXYZ", RequestID(ctx))

	entry := WithRequestID(ctx, Discard())
	assert.Equal(t, "01HXYZ", entry.Data[RequestIDKey])
}
