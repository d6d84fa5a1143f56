package filelog

import "fmt"

// LogLevel is the severity of a log line. Lower values are more severe.
type LogLevel int

const (
	Error LogLevel = iota
	Warning
	Info
)

var levelNames = [...]string{
	Error:   "Error",
	Warning: "Warning",
	Info:    "Info",
}

// String returns the level name written to log files.
func (l LogLevel) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// Valid reports whether l is one of Error, Warning or Info.
func (l LogLevel) Valid() bool {
	return l >= Error && l <= Info
}

// ParseLogLevel parses an exact, case-sensitive level name.
func ParseLogLevel(name string) (LogLevel, error) {
	for i, n := range levelNames {
		if n == name {
			return LogLevel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (expected Error, Warning or Info)", ErrInvalidLevel, name)
}

// MarshalText implements encoding.TextMarshaler.
func (l LogLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LogLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
