package otel

import (
	"github.com/JailtonJunior94/delegates-kit/pkg/observability"
	"github.com/JailtonJunior94/delegates-kit/pkg/observability/noop"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultInstrumentationName names the tracer and meter when none is configured.
const DefaultInstrumentationName = "github.com/JailtonJunior94/delegates-kit"

// Option configures a Provider.
type Option func(*Provider)

// WithTracerProvider sets the OpenTelemetry tracer provider. Defaults to the global one.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(p *Provider) {
		p.tracerProvider = tp
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider. Defaults to the global one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(p *Provider) {
		p.meterProvider = mp
	}
}

// WithLogger sets the logger returned by Logger. Defaults to a no-op logger.
func WithLogger(logger observability.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithInstrumentationName overrides the tracer and meter name.
func WithInstrumentationName(name string) Option {
	return func(p *Provider) {
		if name != "" {
			p.name = name
		}
	}
}

// Provider implements observability.Observability on top of OpenTelemetry
// tracer and meter providers. Exporter setup belongs to the caller.
type Provider struct {
	name           string
	tracerProvider oteltrace.TracerProvider
	meterProvider  metric.MeterProvider
	logger         observability.Logger

	tracer  *otelTracer
	metrics *otelMetrics
}

// NewProvider builds a Provider from the given options.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{name: DefaultInstrumentationName}
	for _, opt := range opts {
		opt(p)
	}

	if p.tracerProvider == nil {
		p.tracerProvider = otel.GetTracerProvider()
	}
	if p.meterProvider == nil {
		p.meterProvider = otel.GetMeterProvider()
	}
	if p.logger == nil {
		p.logger = noop.NewProvider().Logger()
	}

	p.tracer = newOtelTracer(p.tracerProvider.Tracer(p.name))
	p.metrics = newOtelMetrics(p.meterProvider.Meter(p.name))
	return p
}

func (p *Provider) Tracer() observability.Tracer {
	return p.tracer
}

func (p *Provider) Logger() observability.Logger {
	return p.logger
}

func (p *Provider) Metrics() observability.Metrics {
	return p.metrics
}
