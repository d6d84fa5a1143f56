package observability

import "context"

// Tracer starts spans.
type Tracer interface {
	// Start creates a span and returns a context carrying it. Callers must End the span.
	Start(ctx context.Context, spanName string, fields ...Field) (context.Context, Span)
}

// Span is an in-flight trace span.
type Span interface {
	End()
	SetAttributes(fields ...Field)
	SetStatus(code StatusCode, description string)
	RecordError(err error, fields ...Field)
	AddEvent(name string, fields ...Field)
}

// StatusCode is the outcome recorded on a span.
type StatusCode int

const (
	StatusCodeUnset StatusCode = iota
	StatusCodeOK
	StatusCodeError
)
