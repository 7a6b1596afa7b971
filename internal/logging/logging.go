package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelAliases maps harness log level names onto zap levels.
var levelAliases = map[string]zapcore.Level{
	"debug":    zapcore.DebugLevel,
	"info":     zapcore.InfoLevel,
	"warn":     zapcore.WarnLevel,
	"warning":  zapcore.WarnLevel,
	"error":    zapcore.ErrorLevel,
	"critical": zapcore.DPanicLevel,
	"fatal":    zapcore.DPanicLevel,
	"notset":   zapcore.DebugLevel,
}

// ParseLevel converts a LOG_LEVEL value such as "DEBUG" or "WARNING" into a zap
// level. Unknown names resolve to info and report false.
func ParseLevel(name string) (zapcore.Level, bool) {
	level, ok := levelAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return zapcore.InfoLevel, false
	}
	return level, true
}

// New creates a structured JSON logger emitting entries at or above level.
// An unknown level falls back to info.
func New(level string) (*zap.Logger, error) {
	lvl, _ := ParseLevel(level)

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
