package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	base  *zap.Logger
	sugar *zap.SugaredLogger
)

func init() {
	base, _ = zap.NewProduction(zap.AddCallerSkip(1))
	if base == nil {
		base = zap.NewNop()
	}
	sugar = base.Sugar()
}

// Init rebuilds the package logger for the given level and environment.
// Development environments get the console encoder and debug output.
func Init(level, environment string) error {
	config := zap.NewProductionConfig()
	if environment == "development" {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level, environment))

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	base = l
	sugar = l.Sugar()
	return nil
}

// SetLogger swaps the underlying logger, mostly for tests.
func SetLogger(l *zap.Logger) {
	base = l.WithOptions(zap.AddCallerSkip(1))
	sugar = base.Sugar()
}

// L returns the structured logger for call sites that want typed fields.
func L() *zap.Logger {
	return base.WithOptions(zap.AddCallerSkip(-1))
}

func Info(format string, v ...interface{}) {
	sugar.Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	sugar.Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	sugar.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	sugar.Warnf(format, v...)
}

func Sync() {
	_ = base.Sync()
}

// LogExternalError records a failed call to a collaborator (database, AI, competitor site).
// These are never retried; the log line is the only trace.
func LogExternalError(source, action string, err error) {
	base.Warn("external call failed",
		zap.String("source", source),
		zap.String("action", action),
		zap.Error(err),
	)
}

func parseLevel(level, environment string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	if environment == "development" {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
