package logger

import (
	"testing"

	"github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level core.LogLevel) (core.Logger, *observer.ObservedLogs) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(obsCore), level), logs
}

func TestZapLogger_LevelGate(t *testing.T) {
	log, logs := newObserved(core.LogLevelWarn)

	log.Debug("debug", nil)
	log.Info("info", nil)
	log.Warn("warn", map[string]any{"k": "v"})
	log.Error("error", nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "warn", logs.All()[0].Message)
	assert.Equal(t, "v", logs.All()[0].ContextMap()["k"])
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
}

func TestZapLogger_SetLevelIsSharedWithChildren(t *testing.T) {
	log, logs := newObserved(core.LogLevelError)
	child := log.With(map[string]any{"component": "kyc"})

	child.Info("hidden", nil)
	log.SetLevel(core.LogLevelDebug)
	child.Debug("shown", map[string]any{"id": 7})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, "kyc", entry.ContextMap()["component"])
	assert.Equal(t, int64(7), entry.ContextMap()["id"])
}

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger(Options{Level: "debug", Format: "json", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())

	_, err = NewZapLogger(Options{Level: "info", OutputPaths: []string{"/nonexistent-dir/x/y.log"}})
	assert.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}
