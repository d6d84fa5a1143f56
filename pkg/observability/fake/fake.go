// Package fake records observability calls in memory so tests can assert on them.
package fake

import (
	"context"
	"sync"

	"github.com/JailtonJunior94/delegates-kit/pkg/observability"
)

// Provider captures spans, log entries and measurements.
type Provider struct {
	tracer  *Tracer
	logger  *Logger
	metrics *Metrics
}

// NewProvider creates an empty recording provider.
func NewProvider() *Provider {
	return &Provider{
		tracer:  &Tracer{},
		logger:  NewLogger(),
		metrics: &Metrics{counters: map[string]*Counter{}, histograms: map[string]*Histogram{}},
	}
}

func (p *Provider) Tracer() observability.Tracer   { return p.tracer }
func (p *Provider) Logger() observability.Logger   { return p.logger }
func (p *Provider) Metrics() observability.Metrics { return p.metrics }

// Spans returns the spans started so far.
func (p *Provider) Spans() []*Span { return p.tracer.Spans() }

// Entries returns the captured log entries.
func (p *Provider) Entries() []LogEntry { return p.logger.Entries() }

// Counter returns the named counter, or nil if it was never created.
func (p *Provider) Counter(name string) *Counter {
	p.metrics.mu.Lock()
	defer p.metrics.mu.Unlock()
	return p.metrics.counters[name]
}

// Histogram returns the named histogram, or nil if it was never created.
func (p *Provider) Histogram(name string) *Histogram {
	p.metrics.mu.Lock()
	defer p.metrics.mu.Unlock()
	return p.metrics.histograms[name]
}

// Tracer records every span it starts.
type Tracer struct {
	mu    sync.Mutex
	spans []*Span
}

func (t *Tracer) Start(ctx context.Context, spanName string, fields ...observability.Field) (context.Context, observability.Span) {
	span := &Span{Name: spanName, Attributes: append([]observability.Field(nil), fields...)}

	t.mu.Lock()
	t.spans = append(t.spans, span)
	t.mu.Unlock()

	return ctx, span
}

// Spans returns a copy of the recorded spans.
func (t *Tracer) Spans() []*Span {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Span(nil), t.spans...)
}

// Span is a recorded span.
type Span struct {
	mu          sync.Mutex
	Name        string
	Ended       bool
	Attributes  []observability.Field
	Events      []string
	Status      observability.StatusCode
	StatusDesc  string
	RecordedErr error
}

func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ended = true
}

func (s *Span) SetAttributes(fields ...observability.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Attributes = append(s.Attributes, fields...)
}

func (s *Span) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = code
	s.StatusDesc = description
}

func (s *Span) RecordError(err error, fields ...observability.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RecordedErr = err
	s.Attributes = append(s.Attributes, fields...)
}

func (s *Span) AddEvent(name string, _ ...observability.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, name)
}

// Attribute returns the value of the first attribute named key.
func (s *Span) Attribute(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.Attributes {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// LogEntry is a captured log call.
type LogEntry struct {
	Level   observability.LogLevel
	Message string
	Fields  []observability.Field
}

// Logger captures log calls. Children created by With share the parent's buffer.
type Logger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	fields  []observability.Field
}

// NewLogger creates an empty recording logger.
func NewLogger() *Logger {
	return &Logger{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

func (l *Logger) Debug(_ context.Context, msg string, fields ...observability.Field) {
	l.record(observability.LogLevelDebug, msg, fields)
}

func (l *Logger) Info(_ context.Context, msg string, fields ...observability.Field) {
	l.record(observability.LogLevelInfo, msg, fields)
}

func (l *Logger) Warn(_ context.Context, msg string, fields ...observability.Field) {
	l.record(observability.LogLevelWarn, msg, fields)
}

func (l *Logger) Error(_ context.Context, msg string, fields ...observability.Field) {
	l.record(observability.LogLevelError, msg, fields)
}

func (l *Logger) With(fields ...observability.Field) observability.Logger {
	merged := make([]observability.Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &Logger{mu: l.mu, entries: l.entries, fields: merged}
}

// Entries returns a copy of the captured entries.
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), *l.entries...)
}

func (l *Logger) record(level observability.LogLevel, msg string, fields []observability.Field) {
	all := make([]observability.Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)

	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, LogEntry{Level: level, Message: msg, Fields: all})
}

// Metrics creates recording instruments, reusing them by name.
type Metrics struct {
	mu         sync.Mutex
	counters   map[string]*Counter
	histograms map[string]*Histogram
}

func (m *Metrics) Counter(name, _, _ string) observability.Counter {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.counters[name]; ok {
		return c
	}
	c := &Counter{}
	m.counters[name] = c
	return c
}

func (m *Metrics) Histogram(name, _, _ string) observability.Histogram {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.histograms[name]; ok {
		return h
	}
	h := &Histogram{}
	m.histograms[name] = h
	return h
}

// Counter sums everything added to it.
type Counter struct {
	mu    sync.Mutex
	total int64
}

func (c *Counter) Add(_ context.Context, value int64, _ ...observability.Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total += value
}

func (c *Counter) Increment(ctx context.Context, fields ...observability.Field) {
	c.Add(ctx, 1, fields...)
}

// Total returns the accumulated value.
func (c *Counter) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Histogram keeps every recorded value.
type Histogram struct {
	mu     sync.Mutex
	values []float64
}

func (h *Histogram) Record(_ context.Context, value float64, _ ...observability.Field) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.values = append(h.values, value)
}

// Values returns a copy of the recorded values.
func (h *Histogram) Values() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]float64(nil), h.values...)
}
