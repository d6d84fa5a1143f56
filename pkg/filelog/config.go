package filelog

import (
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultFileName is the base file name; its extension is dropped and the date appended.
	DefaultFileName = "logDB.txt"

	// DefaultLocation is used when LOG_LOCATION is unset.
	DefaultLocation = "logs"

	// EnvLevel and EnvLocation are the two settings read from the environment.
	EnvLevel    = "LOG_LEVEL"
	EnvLocation = "LOG_LOCATION"
)

// Config holds the settings a Logger is built from.
type Config struct {
	// Level is the most verbose level that gets written.
	Level LogLevel

	// Location is the base directory holding the YYYYMM folders.
	Location string

	// FileName is the base file name, e.g. "logDB.txt".
	FileName string
}

// DefaultConfig returns a config logging everything under ./logs.
func DefaultConfig() Config {
	return Config{
		Level:    Info,
		Location: DefaultLocation,
		FileName: DefaultFileName,
	}
}

// ConfigFromEnv reads LOG_LEVEL and LOG_LOCATION. A malformed level name is an error.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.Location = getEnv(EnvLocation, DefaultLocation)

	level, err := ParseLogLevel(getEnv(EnvLevel, Info.String()))
	if err != nil {
		return Config{}, fmt.Errorf("filelog: %s: %w", EnvLevel, err)
	}
	cfg.Level = level

	return cfg, cfg.Validate()
}

// Validate checks the config and returns the first problem found.
func (c Config) Validate() error {
	if !c.Level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(c.Level))
	}

	if strings.TrimSpace(c.Location) == "" {
		return ErrMissingLocation
	}

	if stem(c.FileName) == "" {
		return fmt.Errorf("%w: %q", ErrMissingFileName, c.FileName)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
