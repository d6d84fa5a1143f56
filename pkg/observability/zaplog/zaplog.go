// Package zaplog adapts a zap logger to observability.Logger.
package zaplog

import (
	"context"
	"fmt"

	"github.com/JailtonJunior94/delegates-kit/pkg/observability"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logger struct {
	zap *zap.Logger
}

// New wraps an existing zap logger.
func New(z *zap.Logger) observability.Logger {
	return &logger{zap: z}
}

// NewConsole builds a human-readable zap logger writing to stderr at the given level.
func NewConsole(level observability.LogLevel) (observability.Logger, *zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(level))
	cfg.DisableStacktrace = true

	z, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("zaplog: build console logger: %w", err)
	}
	return New(z), z, nil
}

func (l *logger) Debug(_ context.Context, msg string, fields ...observability.Field) {
	l.zap.Debug(msg, toZapFields(fields)...)
}

func (l *logger) Info(_ context.Context, msg string, fields ...observability.Field) {
	l.zap.Info(msg, toZapFields(fields)...)
}

func (l *logger) Warn(_ context.Context, msg string, fields ...observability.Field) {
	l.zap.Warn(msg, toZapFields(fields)...)
}

func (l *logger) Error(_ context.Context, msg string, fields ...observability.Field) {
	l.zap.Error(msg, toZapFields(fields)...)
}

func (l *logger) With(fields ...observability.Field) observability.Logger {
	return &logger{zap: l.zap.With(toZapFields(fields)...)}
}

func toZapFields(fields []observability.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, zap.NamedError(f.Key, err))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

func toZapLevel(level observability.LogLevel) zapcore.Level {
	switch level {
	case observability.LogLevelDebug:
		return zapcore.DebugLevel
	case observability.LogLevelWarn:
		return zapcore.WarnLevel
	case observability.LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
