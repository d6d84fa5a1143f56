package docwriter

import (
	"bufio"
	"io"
)

// stream is the handle passed to actions. It stops accepting writes once the
// pass that created it has finished.
type stream struct {
	buf    *bufio.Writer
	closed bool
}

func newStream(w io.Writer) *stream {
	return &stream{buf: bufio.NewWriter(w)}
}

func (s *stream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	return s.buf.Write(p)
}

func (s *stream) WriteString(str string) (int, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	return s.buf.WriteString(str)
}

// close flushes buffered output and invalidates the handle.
func (s *stream) close() error {
	s.closed = true
	return s.buf.Flush()
}
