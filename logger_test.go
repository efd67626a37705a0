package jwtgate

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func TestZapLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("debug message", "method", "GET")
	assert.Equal(t, 0, recorded.Len(), "Debug message should not be recorded at Info level")

	logger.Info("info message", "method", "GET")
	logger.Warn("warn message", "method", "GET")
	logger.Error("error message", "method", "GET")

	entries := recorded.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "info message", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "GET", entries[2].ContextMap()["method"])
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Debug("debug message", "path", "/users")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", "outcome", "fault")

	output := buf.String()
	assert.Contains(t, output, `"message":"debug message"`)
	assert.Contains(t, output, `"path":"/users"`)
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, `"outcome":"fault"`)
}

func TestLogrusLogger(t *testing.T) {
	var buf bytes.Buffer

	logrusLogger := logrus.New()
	logrusLogger.Out = &buf
	logrusLogger.Level = logrus.InfoLevel

	logger := NewLogrusLogger(logrusLogger)

	logger.Debug("debug message")
	logger.Info("info message", "method", "GET")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message", "Debug messages should not be logged at Info level")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "method=GET")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")

	buf.Reset()
	logrusLogger.Level = logrus.DebugLevel
	logger.Debug("debug message")
	assert.Contains(t, buf.String(), "debug message", "Debug messages should be logged at Debug level")
}

func TestArgsToFields(t *testing.T) {
	assert.Equal(t, map[string]any{}, argsToFields(nil))
	assert.Equal(t, map[string]any{"a": 1, "b": "two"}, argsToFields([]any{"a", 1, "b", "two"}))
	assert.Equal(t, map[string]any{"a": 1, "!BADKEY": "dangling"}, argsToFields([]any{"a", 1, "dangling"}))
	assert.Equal(t, map[string]any{"42": true}, argsToFields([]any{42, true}))
}
