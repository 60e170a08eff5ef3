// Package logging builds the zap logger taskmanager uses for diagnostics.
// Diagnostics go to stderr so they never mix with command output.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps normal runs quiet.
const DefaultLevel = "warn"

// ParseLevel converts a level name (debug, info, warn, error) to a zap level.
// The empty string selects DefaultLevel.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// NewLevel returns an adjustable level handle initialised from name.
func NewLevel(name string) (zap.AtomicLevel, error) {
	lvl, err := ParseLevel(name)
	if err != nil {
		return zap.NewAtomicLevel(), err
	}
	return zap.NewAtomicLevelAt(lvl), nil
}

// New returns a console-encoded logger writing to w. Changing level later
// takes effect immediately.
func New(w io.Writer, level zap.AtomicLevel) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
