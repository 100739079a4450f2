// Process wide structured logger.

package logging

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// L returns the process logger. It is a no-op logger until Setup is called.
func L() *zap.Logger {
	return logger
}

// Setup replaces the process logger with a console logger writing to stderr at the given level.
// Verbose forces the debug level.
func Setup(level string, verbose bool) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose
	cfg.EncoderConfig.TimeKey = ""

	l, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	logger = l
	return nil
}

// Sync flushes buffered log entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = logger.Sync()
}

func parseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel, errors.Errorf("invalid log level `%s`", level)
	}
	return lvl, nil
}
