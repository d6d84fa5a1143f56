package docwriter

import "errors"

var (
	// ErrWriteFailed is what every failed write pass reports. Details go to the log.
	ErrWriteFailed = errors.New("an error occurred, check logs")

	// ErrNilAction is returned when a definition has no callback.
	ErrNilAction = errors.New("action has no callback")

	// ErrActionPanicked wraps a panic raised inside an action.
	ErrActionPanicked = errors.New("action panicked")

	// ErrStreamClosed is returned when an action writes to a stream it kept past its call.
	ErrStreamClosed = errors.New("write to a stream after its write pass ended")
)

// WriteError is returned by Write. Its message is always the generic
// ErrWriteFailed text; the original failure stays reachable through errors.Is
// and errors.As.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return ErrWriteFailed.Error()
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}
