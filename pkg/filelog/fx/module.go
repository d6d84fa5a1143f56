package filelogfx

import (
	"github.com/JailtonJunior94/delegates-kit/pkg/filelog"
	"go.uber.org/fx"
)

// ConfigModule provides filelog.Config from the environment.
// Environment variables:
//   - LOG_LEVEL: Error, Warning or Info, case-sensitive (default: "Info")
//   - LOG_LOCATION: base directory for the month folders (default: "logs")
var ConfigModule = fx.Provide(filelog.ConfigFromEnv)

// LoggerModule builds the shared logger from a filelog.Config supplied elsewhere.
var LoggerModule = fx.Provide(NewLogger)

// Module wires config and logger together.
var Module = fx.Options(ConfigModule, LoggerModule)

// NewLogger exposes the file logger both as its concrete type and as filelog.Logger.
func NewLogger(cfg filelog.Config) (*filelog.FileLogger, filelog.Logger, error) {
	logger, err := filelog.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return logger, logger, nil
}
