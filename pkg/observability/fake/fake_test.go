package fake_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JailtonJunior94/delegates-kit/pkg/observability"
	"github.com/JailtonJunior94/delegates-kit/pkg/observability/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeTracer(t *testing.T) {
	provider := fake.NewProvider()
	boom := errors.New("boom")

	_, span := provider.Tracer().Start(context.Background(), "write", observability.String("path", "out.txt"))
	span.SetAttributes(observability.Int("actions", 2))
	span.AddEvent("Header")
	span.RecordError(boom)
	span.SetStatus(observability.StatusCodeError, "failed")
	span.End()

	spans := provider.Spans()
	require.Len(t, spans, 1)

	got := spans[0]
	assert.Equal(t, "write", got.Name)
	assert.True(t, got.Ended)
	assert.Equal(t, []string{"Header"}, got.Events)
	assert.Equal(t, observability.StatusCodeError, got.Status)
	assert.Equal(t, "failed", got.StatusDesc)
	assert.ErrorIs(t, got.RecordedErr, boom)

	path, ok := got.Attribute("path")
	assert.True(t, ok)
	assert.Equal(t, "out.txt", path)

	_, ok = got.Attribute("missing")
	assert.False(t, ok)
}

func TestFakeLogger(t *testing.T) {
	provider := fake.NewProvider()
	ctx := context.Background()

	base := provider.Logger()
	child := base.With(observability.String("component", "DocumentWriter"))

	base.Debug(ctx, "debug")
	child.Info(ctx, "info", observability.Int("n", 1))
	child.Warn(ctx, "warn")
	base.Error(ctx, "error")

	entries := provider.Entries()
	require.Len(t, entries, 4)

	assert.Equal(t, observability.LogLevelDebug, entries[0].Level)
	assert.Empty(t, entries[0].Fields)

	assert.Equal(t, observability.LogLevelInfo, entries[1].Level)
	assert.Equal(t, []observability.Field{
		observability.String("component", "DocumentWriter"),
		observability.Int("n", 1),
	}, entries[1].Fields)

	assert.Equal(t, observability.LogLevelWarn, entries[2].Level)
	assert.Equal(t, observability.LogLevelError, entries[3].Level)
	assert.Equal(t, "error", entries[3].Message)
}

func TestFakeMetrics(t *testing.T) {
	provider := fake.NewProvider()
	ctx := context.Background()

	assert.Nil(t, provider.Counter("actions"))

	counter := provider.Metrics().Counter("actions", "actions invoked", "1")
	counter.Increment(ctx)
	provider.Metrics().Counter("actions", "actions invoked", "1").Add(ctx, 4)

	require.NotNil(t, provider.Counter("actions"))
	assert.Equal(t, int64(5), provider.Counter("actions").Total())

	provider.Metrics().Histogram("duration", "", "ms").Record(ctx, 1.5)
	provider.Metrics().Histogram("duration", "", "ms").Record(ctx, 2.5)
	assert.Equal(t, []float64{1.5, 2.5}, provider.Histogram("duration").Values())
}
