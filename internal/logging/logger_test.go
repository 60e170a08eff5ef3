package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.WarnLevel},
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	level, err := NewLevel("warn")
	require.NoError(t, err)
	logger := New(&buf, level)

	logger.Debug("hidden")
	logger.Warn("shown", zap.String("path", "projects.json"))
	_ = logger.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "projects.json")
}

func TestNew_LevelChangeTakesEffect(t *testing.T) {
	var buf bytes.Buffer
	level, err := NewLevel("")
	require.NoError(t, err)
	logger := New(&buf, level)

	logger.Debug("before")
	level.SetLevel(zapcore.DebugLevel)
	logger.Debug("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
}

func TestNewLevel_Invalid(t *testing.T) {
	_, err := NewLevel("verbose")
	assert.Error(t, err)
}
