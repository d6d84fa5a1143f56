package docwriter

import "github.com/JailtonJunior94/delegates-kit/pkg/observability"

// Option configures a Writer.
type Option func(*Writer)

// WithObservability reports spans, metrics and diagnostic logs for each write pass.
func WithObservability(o11y observability.Observability) Option {
	return func(w *Writer) {
		if o11y != nil {
			w.o11y = o11y
		}
	}
}

// WithComponentName changes the module column used in log lines.
func WithComponentName(name string) Option {
	return func(w *Writer) {
		if name != "" {
			w.component = name
		}
	}
}
