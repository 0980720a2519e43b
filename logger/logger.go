// Package logger provides leveled logging for the storefront, backed by
// op/go-logging with a single console backend.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var logger *logging.Logger

func init() {
	InitLogger(logging.INFO)
}

// InitLogger sets up the console backend at the given level. LOG_LEVEL from
// the environment overrides the argument when it names a valid level.
func InitLogger(level logging.Level) {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := logging.LogLevel(env); err == nil {
			level = parsed
		}
	}

	newLogger := logging.MustGetLogger("storefront")
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:2006/01/02 15:04:05} %{level} - %{message}`)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "storefront")
	newLogger.SetBackend(leveled)
	logger = newLogger
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
