package zaplog

import (
	"context"
	"errors"
	"testing"

	"github.com/JailtonJunior94/delegates-kit/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := New(zap.New(core)).With(observability.String("component", "DocumentWriter"))
	ctx := context.Background()

	log.Debug(ctx, "debug")
	log.Info(ctx, "action invoked", observability.Int("order", 2))
	log.Warn(ctx, "warn")
	log.Error(ctx, "write failed", observability.Error(errors.New("disk full")))

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	ctxMap := entries[1].ContextMap()
	assert.Equal(t, "DocumentWriter", ctxMap["component"])
	assert.EqualValues(t, 2, ctxMap["order"])

	assert.Equal(t, "disk full", entries[3].ContextMap()["error"])
}

func TestToZapLevel(t *testing.T) {
	tests := map[observability.LogLevel]zapcore.Level{
		observability.LogLevelDebug: zapcore.DebugLevel,
		observability.LogLevelInfo:  zapcore.InfoLevel,
		observability.LogLevelWarn:  zapcore.WarnLevel,
		observability.LogLevelError: zapcore.ErrorLevel,
		"bogus":                     zapcore.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, toZapLevel(in), "level %q", in)
	}
}

func TestNewConsole(t *testing.T) {
	log, z, err := NewConsole(observability.LogLevelWarn)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.False(t, z.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, z.Core().Enabled(zapcore.WarnLevel))
}
