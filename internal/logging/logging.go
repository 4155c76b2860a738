// Package logging provides the structured logger the compile driver
// emits debug/warn events through. The core never requires a specific
// logger implementation (per the external-interfaces contract); this
// package is the CLI's own choice, built on go.uber.org/zap, gated by
// the MILLC_LOG_LEVEL environment variable.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel is the environment variable the CLI reads to pick a log
// level; unset or unrecognized values fall back to "warn".
const EnvLevel = "MILLC_LOG_LEVEL"

// New builds a zap.Logger leveled from the environment, writing
// human-readable console output to standard error. MILLC_LOG_LEVEL=off
// silences logging entirely via a no-op core. verbose forces at least
// debug-level output (the CLI's --verbose flag), unless the environment
// explicitly turns logging off.
func New(verbose bool) *zap.Logger {
	if strings.ToLower(os.Getenv(EnvLevel)) == "off" {
		return zap.NewNop()
	}

	level := levelFromEnv()
	if verbose && level > zapcore.DebugLevel {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(cfg)
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

func levelFromEnv() zapcore.Level {
	switch strings.ToLower(os.Getenv(EnvLevel)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
