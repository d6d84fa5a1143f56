package docwriter

import (
	"fmt"
	"io"
)

// Action writes its part of a document to the stream it is given. The stream
// is only valid for the duration of the call.
type Action interface {
	Apply(w io.Writer) error
}

// ActionFunc adapts a plain function to Action.
type ActionFunc func(w io.Writer) error

// Apply calls f(w).
func (f ActionFunc) Apply(w io.Writer) error {
	return f(w)
}

// Line returns an action that writes text followed by a newline.
func Line(text string) ActionFunc {
	return func(w io.Writer) error {
		_, err := fmt.Fprintln(w, text)
		return err
	}
}

// ActionDefinition groups a callback with the description logged after it
// runs and the rank used to order it. Ranks need not be unique.
type ActionDefinition struct {
	Action      Action
	Description string
	Order       int
}
