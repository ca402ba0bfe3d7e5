package notifier

import (
	"context"
	"testing"

	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier_SendVerification(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	n := NewLogNotifier("http://localhost:8080", logger.NewFromZap(zap.New(obsCore), coreport.LogLevelInfo))

	ctx := coreport.ContextWithRequestID(context.Background(), "req-1")
	require.NoError(t, n.SendVerification(ctx, "alice@example.com", "alice", "ab+cd"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "http://localhost:8080/api/auth/verify-email?token=ab%2Bcd", fields["link"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "notifier", fields["component"])
}
