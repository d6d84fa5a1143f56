package filelog

import "errors"

var (
	// ErrInvalidLevel is returned when a level name or value is not Error, Warning or Info.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrMissingLocation is returned when no base directory is configured.
	ErrMissingLocation = errors.New("log location cannot be empty")

	// ErrMissingFileName is returned when the file name has no usable stem.
	ErrMissingFileName = errors.New("log file name cannot be empty")
)
