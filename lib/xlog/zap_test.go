package xlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlist/lib/infra"
)

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LogLevelDebug.String())
	require.Equal(t, "INFO", LogLevelInfo.String())
	require.Equal(t, "WARN", LogLevelWarn.String())
	require.Equal(t, "ERROR", LogLevelError.String())
	require.Equal(t, zapcore.DebugLevel, LogLevelDebug.zapLevel())
	require.Equal(t, zapcore.InfoLevel, LogLevelInfo.zapLevel())
	require.Equal(t, zapcore.WarnLevel, LogLevelWarn.zapLevel())
	require.Equal(t, zapcore.ErrorLevel, LogLevelError.zapLevel())
}

func TestParseLogLevelAndEncoder(t *testing.T) {
	require.Equal(t, LogLevelInfo, ParseLogLevel(" info "))
	require.Equal(t, LogLevelError, ParseLogLevel("Error"))
	require.Equal(t, LogLevelDebug, ParseLogLevel(""))
	require.Equal(t, LogLevelDebug, ParseLogLevel("verbose"))

	require.Equal(t, PlainText, ParseLogEncoder("PLAIN"))
	require.Equal(t, JSON, ParseLogEncoder("json"))
	require.Equal(t, JSON, ParseLogEncoder("xml"))
}

func newMemLogger(t *testing.T, lvl LogLevel) (XLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithXLoggerLevel(lvl),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriteSyncer(zapcore.AddSync(buf)),
		WithXLoggerConsoleCore(),
		WithXLoggerTimeEncoder(zapcore.ISO8601TimeEncoder),
		WithXLoggerLevelEncoder(zapcore.CapitalLevelEncoder),
	)
	require.NotNil(t, logger)
	return logger, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	res := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		res = append(res, m)
	}
	return res
}

func TestXLogger_LevelsAndFields(t *testing.T) {
	logger, buf := newMemLogger(t, LogLevelDebug)
	require.Equal(t, "DEBUG", logger.Level())

	logger.Debug("push", zap.Int("item", 3))
	logger.Info("pop", zap.Int64("len", 0))
	logger.Warn("empty")
	logger.Error(errors.New("broken"), "failed")
	require.NoError(t, logger.Sync())

	lines := decodeLines(t, buf)
	require.Len(t, lines, 4)
	require.Equal(t, "DEBUG", lines[0]["lvl"])
	require.Equal(t, "push", lines[0]["msg"])
	require.Equal(t, float64(3), lines[0]["item"])
	require.Contains(t, lines[0]["callAt"], "zap_test.go")
	require.Equal(t, "INFO", lines[1]["lvl"])
	require.Equal(t, "WARN", lines[2]["lvl"])
	require.Equal(t, "broken", lines[3]["error"])
}

func TestXLogger_IncreaseLogLevel(t *testing.T) {
	logger, buf := newMemLogger(t, LogLevelDebug)
	logger.IncreaseLogLevel(zapcore.WarnLevel)
	require.Equal(t, "WARN", logger.Level())
	logger.Info("dropped")
	logger.Warn("kept")

	// Decrease is ignored.
	logger.IncreaseLogLevel(zapcore.DebugLevel)
	require.Equal(t, "WARN", logger.Level())
	logger.Debug("dropped too")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "kept", lines[0]["msg"])
}

func TestXLogger_ErrorStack(t *testing.T) {
	logger, buf := newMemLogger(t, LogLevelDebug)
	logger.ErrorStack(infra.NewErrorStack("[list] broken link"), "check failed")
	logger.ErrorStack(errors.New("plain"), "plain failed")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	require.Equal(t, "[list] broken link", lines[0]["error"])
	frames, ok := lines[0]["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0], "TestXLogger_ErrorStack")
	require.Equal(t, "plain", lines[1]["error"])
	require.NotContains(t, lines[1], "errorStack")
}

func TestXLogger_InvalidOptions(t *testing.T) {
	require.Panics(t, func() {
		NewXLogger(WithXLoggerEncoder(_encMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriter(_writerMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriteSyncer(nil))
	})
}
