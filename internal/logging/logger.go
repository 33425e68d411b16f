package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance
	Logger *SafeLogger
)

// SafeLogger wraps a zap logger so that calls on an uninitialized logger are no-ops.
// Services receive a *SafeLogger so tests can pass NewNop() or even nil.
type SafeLogger struct {
	logger *zap.Logger
}

// NewSafeLogger wraps an existing zap logger
func NewSafeLogger(l *zap.Logger) *SafeLogger {
	return &SafeLogger{logger: l}
}

// NewNop returns a logger that discards everything
func NewNop() *SafeLogger {
	return &SafeLogger{logger: zap.NewNop()}
}

// InitLogger initializes the global logger
func InitLogger() error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Set log level from environment
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(logLevel)); err == nil {
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	zl, err := config.Build(
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "app-solicitudes"),
			zap.String("version", "v1"),
		),
	)
	if err != nil {
		return err
	}

	Logger = &SafeLogger{logger: zl}
	zap.ReplaceGlobals(zl)
	return nil
}

func (l *SafeLogger) Info(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info(msg, fields...)
}

func (l *SafeLogger) Warn(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Warn(msg, fields...)
}

func (l *SafeLogger) Debug(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug(msg, fields...)
}

func (l *SafeLogger) Error(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Error(msg, fields...)
}

// Fatal logs and exits. Without an underlying logger it still exits.
func (l *SafeLogger) Fatal(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		os.Exit(1)
	}
	l.logger.Fatal(msg, fields...)
}

// With returns a child logger carrying the given fields
func (l *SafeLogger) With(fields ...zap.Field) *SafeLogger {
	if l == nil || l.logger == nil {
		return l
	}
	return &SafeLogger{logger: l.logger.With(fields...)}
}

// Named returns a child logger with the given name segment
func (l *SafeLogger) Named(name string) *SafeLogger {
	if l == nil || l.logger == nil {
		return l
	}
	return &SafeLogger{logger: l.logger.Named(name)}
}

// Zap exposes the underlying logger, falling back to a no-op logger
func (l *SafeLogger) Zap() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}

func (l *SafeLogger) Sync() error {
	if l == nil || l.logger == nil {
		return nil
	}
	return l.logger.Sync()
}
