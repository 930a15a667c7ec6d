package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taafi-health-tools/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestNewLogger_Levels(t *testing.T) {
	l := NewLogger(config.LogConfig{Level: "debug", Format: "console"}, "health-tools")
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l = NewLogger(config.LogConfig{Level: "warn", Format: "json"}, "")
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(config.LogConfig{Level: "info", Format: "json"}, "health-tools", zapcore.AddSync(&buf))

	l.Info("tool call rejected", zap.String("tool", "calculate_bmi"))
	require.NoError(t, l.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "tool call rejected", entry["msg"])
	assert.Equal(t, "health-tools", entry["service"])
	assert.Equal(t, "calculate_bmi", entry["tool"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewLogger_ConsoleSkipsBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(config.LogConfig{Level: "error", Format: "console"}, "", zapcore.AddSync(&buf))

	l.Warn("dropped")
	l.Error("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.True(t, strings.Contains(out, "kept"), out)
	assert.NotContains(t, out, `"service"`)
}
