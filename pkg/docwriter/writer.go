// Package docwriter builds a text document by running a list of ranked
// callbacks against a single output file.
//
// A Writer is created per document, collects actions with AddAction and is
// then written once. Each pass truncates the target, runs the actions sorted
// by rank and records progress through the injected file logger. Failures are
// logged with their original message and reported as ErrWriteFailed.
package docwriter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/JailtonJunior94/delegates-kit/pkg/filelog"
	"github.com/JailtonJunior94/delegates-kit/pkg/linq"
	"github.com/JailtonJunior94/delegates-kit/pkg/observability"
	"github.com/JailtonJunior94/delegates-kit/pkg/observability/noop"
	"github.com/oklog/ulid/v2"
)

// ComponentName is the default module column for log lines written by a Writer.
const ComponentName = "DocumentWriter"

const (
	spanName            = "docwriter.write"
	metricActions       = "docwriter.actions_invoked"
	metricFailures      = "docwriter.write_failures"
	metricWriteDuration = "docwriter.write_duration"
)

// Writer runs ordered actions against one output file.
type Writer struct {
	logger    filelog.Logger
	path      string
	component string
	actions   []ActionDefinition
	o11y      observability.Observability
}

// New creates a writer for path. The logger is shared, not owned.
func New(logger filelog.Logger, path string, opts ...Option) *Writer {
	w := &Writer{
		logger:    logger,
		path:      path,
		component: ComponentName,
		o11y:      noop.NewProvider(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddAction registers def. Duplicates and repeated ranks are allowed.
func (w *Writer) AddAction(def ActionDefinition) {
	w.actions = append(w.actions, def)
}

// Actions returns a copy of the registered definitions in registration order.
func (w *Writer) Actions() []ActionDefinition {
	return append([]ActionDefinition(nil), w.actions...)
}

// Len returns the number of registered actions.
func (w *Writer) Len() int {
	return len(w.actions)
}

// Path returns the target file.
func (w *Writer) Path() string {
	return w.path
}

// WriteAscending is Write in the default, ascending direction.
func (w *Writer) WriteAscending(ctx context.Context) error {
	return w.Write(ctx, true)
}

// Write truncates the target file and runs every action in rank order,
// ascending or descending. Equal ranks keep their registration order.
//
// A "Start" and an "End" line are always logged around the pass, plus one
// line per completed action. If opening the file, an action, a log call or
// the final flush fails, the original message is logged at Error and a
// *WriteError matching ErrWriteFailed is returned.
func (w *Writer) Write(ctx context.Context, ascending bool) (err error) {
	runID := ulid.Make().String()
	started := time.Now()

	ctx, span := w.o11y.Tracer().Start(ctx, spanName,
		observability.String("path", w.path),
		observability.Bool("ascending", ascending),
		observability.String("run_id", runID),
	)
	defer span.End()

	diag := w.o11y.Logger().With(
		observability.String("component", w.component),
		observability.String("run_id", runID),
	)

	if err := w.logger.Log(w.component+" Start", w.component, filelog.Info); err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusCodeError, err.Error())
		return fmt.Errorf("docwriter: log start: %w", err)
	}

	defer func() {
		if endErr := w.logger.Log(w.component+" End", w.component, filelog.Info); endErr != nil && err == nil {
			err = fmt.Errorf("docwriter: log end: %w", endErr)
		}

		elapsed := float64(time.Since(started).Microseconds()) / 1000
		w.o11y.Metrics().Histogram(metricWriteDuration, "Duration of a write pass", "ms").
			Record(ctx, elapsed, observability.Bool("ascending", ascending))
	}()

	diag.Debug(ctx, "write pass started",
		observability.String("path", w.path),
		observability.Int("actions", len(w.actions)),
		observability.Bool("ascending", ascending),
	)

	invoked, cause := w.run(ctx, span, ascending)
	span.SetAttributes(observability.Int("actions_invoked", invoked))
	if cause == nil {
		span.SetStatus(observability.StatusCodeOK, "")
		diag.Debug(ctx, "write pass finished", observability.Int("actions_invoked", invoked))
		return nil
	}

	if logErr := w.logger.Log(cause.Error(), w.component, filelog.Error); logErr != nil {
		cause = errors.Join(cause, logErr)
	}

	span.RecordError(cause)
	span.SetStatus(observability.StatusCodeError, ErrWriteFailed.Error())
	w.o11y.Metrics().Counter(metricFailures, "Write passes that failed", "1").Increment(ctx)
	diag.Error(ctx, "write pass failed", observability.Error(cause), observability.Int("actions_invoked", invoked))

	return &WriteError{Path: w.path, Err: cause}
}

// run opens the target and invokes the sorted actions. It returns how many
// actions completed and the first failure, if any.
func (w *Writer) run(ctx context.Context, span observability.Span, ascending bool) (invoked int, err error) {
	f, err := os.Create(w.path)
	if err != nil {
		return 0, err
	}

	out := newStream(f)
	defer func() {
		flushErr := out.close()
		closeErr := f.Close()
		if err == nil {
			err = errors.Join(flushErr, closeErr)
		}
	}()

	counter := w.o11y.Metrics().Counter(metricActions, "Actions invoked by document writers", "1")
	for _, def := range w.sorted(ascending) {
		if err := invoke(def, out); err != nil {
			return invoked, fmt.Errorf("action %q: %w", def.Description, err)
		}
		if err := w.logger.Log(def.Description, w.component, filelog.Info); err != nil {
			return invoked, err
		}

		invoked++
		span.AddEvent(def.Description, observability.Int("order", def.Order))
		counter.Increment(ctx)
	}
	return invoked, nil
}

func (w *Writer) sorted(ascending bool) []ActionDefinition {
	byOrder := func(def ActionDefinition) int { return def.Order }
	if ascending {
		return linq.OrderBy(w.actions, byOrder)
	}
	return linq.OrderByDescending(w.actions, byOrder)
}

func invoke(def ActionDefinition, out *stream) (err error) {
	if def.Action == nil {
		return ErrNilAction
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrActionPanicked, r)
		}
	}()

	return def.Action.Apply(out)
}
