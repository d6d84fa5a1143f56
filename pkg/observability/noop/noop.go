// Package noop provides an observability implementation that discards everything.
package noop

import (
	"context"

	"github.com/JailtonJunior94/delegates-kit/pkg/observability"
)

// Provider discards spans, log entries and measurements.
type Provider struct{}

// NewProvider creates a no-op provider.
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Tracer() observability.Tracer {
	return noopTracer{}
}

func (p *Provider) Logger() observability.Logger {
	return noopLogger{}
}

func (p *Provider) Metrics() observability.Metrics {
	return noopMetrics{}
}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string, _ ...observability.Field) (context.Context, observability.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                                       {}
func (noopSpan) SetAttributes(...observability.Field)       {}
func (noopSpan) SetStatus(observability.StatusCode, string) {}
func (noopSpan) RecordError(error, ...observability.Field)  {}
func (noopSpan) AddEvent(string, ...observability.Field)    {}

type noopLogger struct{}

func (noopLogger) Debug(context.Context, string, ...observability.Field) {}
func (noopLogger) Info(context.Context, string, ...observability.Field)  {}
func (noopLogger) Warn(context.Context, string, ...observability.Field)  {}
func (noopLogger) Error(context.Context, string, ...observability.Field) {}

func (l noopLogger) With(...observability.Field) observability.Logger {
	return l
}

type noopMetrics struct{}

func (noopMetrics) Counter(string, string, string) observability.Counter {
	return noopCounter{}
}

func (noopMetrics) Histogram(string, string, string) observability.Histogram {
	return noopHistogram{}
}

type noopCounter struct{}

func (noopCounter) Add(context.Context, int64, ...observability.Field) {}
func (noopCounter) Increment(context.Context, ...observability.Field)  {}

type noopHistogram struct{}

func (noopHistogram) Record(context.Context, float64, ...observability.Field) {}
