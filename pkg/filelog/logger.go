// Package filelog writes severity-filtered, tab-separated log lines to one
// file per day, grouped in one directory per month:
//
//	<location>/<YYYYMM>/<stem><YYYYMMDD>.txt
//
// Every call opens the day's file in append mode, writes a single line and
// closes it again, so no handle is held between calls.
package filelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// TimestampLayout formats the first column of every line, in local time.
	TimestampLayout = "2006-01-02 15:04:05"

	monthLayout = "200601"
	dayLayout   = "20060102"
	fileExt     = ".txt"
)

// Logger is the dependency consumers receive. It is injected, never global.
type Logger interface {
	Log(message, module string, level LogLevel) error
}

// Option customizes a FileLogger.
type Option func(*FileLogger)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *FileLogger) {
		if now != nil {
			l.now = now
		}
	}
}

// FileLogger is immutable after construction and safe to share.
type FileLogger struct {
	level    LogLevel
	location string
	stem     string
	now      func() time.Time
}

// New creates a logger writing lines at or above the given severity.
func New(level LogLevel, location, fileName string, opts ...Option) *FileLogger {
	l := &FileLogger{
		level:    level,
		location: location,
		stem:     stem(fileName),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewFromConfig validates cfg and builds a logger from it.
func NewFromConfig(cfg Config, opts ...Option) (*FileLogger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("filelog: invalid config: %w", err)
	}
	return New(cfg.Level, cfg.Location, cfg.FileName, opts...), nil
}

// Level returns the configured threshold.
func (l *FileLogger) Level() LogLevel {
	return l.level
}

// Enabled reports whether a line at level would be written.
func (l *FileLogger) Enabled(level LogLevel) bool {
	return level <= l.level
}

// PathFor returns the file a line logged at t is appended to.
func (l *FileLogger) PathFor(t time.Time) string {
	t = t.Local()
	return filepath.Join(l.location, t.Format(monthLayout), l.stem+t.Format(dayLayout)+fileExt)
}

// Log appends one line to the current day's file. Lines less severe than the
// threshold are dropped. I/O errors are returned to the caller.
func (l *FileLogger) Log(message, module string, level LogLevel) error {
	if !l.Enabled(level) {
		return nil
	}

	now := l.now().Local()
	path := l.PathFor(now)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("filelog: create month directory: %w", err)
	}

	line := fmt.Sprintf("%s\t%s\t%s\t%s\n", now.Format(TimestampLayout), level, module, message)
	return appendLine(path, line)
}

func appendLine(path, line string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("filelog: open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("filelog: close %s: %w", path, cerr)
		}
	}()

	if _, err = f.WriteString(line); err != nil {
		return fmt.Errorf("filelog: write %s: %w", path, err)
	}
	return nil
}

// stem drops any directory and extension from name.
func stem(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
