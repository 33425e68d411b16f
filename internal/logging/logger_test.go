package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	err := InitLogger()
	require.NoError(t, err)
	require.NotNil(t, Logger)
	assert.NotNil(t, Logger.logger)
}

func TestInitLogger_LogLevels(t *testing.T) {
	for _, level := range []string{"debug", "warn", "invalid"} {
		t.Run(level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", level)
			require.NoError(t, InitLogger())
			assert.NotNil(t, Logger)
		})
	}
}

func TestSafeLogger_WritesThrough(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewSafeLogger(zap.New(core))

	logger.Debug("debug message")
	logger.Info("info message", zap.String("cuil", "20*******91"))
	logger.Warn("warn message")
	logger.Error("error message", zap.Int("attempt", 2))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, "info message", entries[1].Message)
	assert.Equal(t, "20*******91", entries[1].ContextMap()["cuil"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestSafeLogger_WithAndNamed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewSafeLogger(zap.New(core)).Named("guard").With(zap.String("check", "recency"))

	logger.Info("checked")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "guard", entries[0].LoggerName)
	assert.Equal(t, "recency", entries[0].ContextMap()["check"])
}

func TestSafeLogger_NilLogger(t *testing.T) {
	loggers := []*SafeLogger{{logger: nil}, nil}

	for _, logger := range loggers {
		logger.Info("test")
		logger.Warn("test")
		logger.Debug("test")
		logger.Error("test")
		assert.NotNil(t, logger.Zap())
		assert.NoError(t, logger.Sync())
		assert.Equal(t, logger, logger.With(zap.String("k", "v")))
		assert.Equal(t, logger, logger.Named("x"))
	}
}
