// Package logging builds the zap logger used by the command-line clients,
// with optional file rotation.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string // Log level: debug, info, warn, error
	FilePath   string // Path to log file (empty = stderr only)
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Max number of old log files to retain
	MaxAgeDays int    // Max age in days to retain old log files
	Compress   bool   // Whether to compress rotated files
}

// DefaultConfig returns sensible defaults for logging.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

// New builds a console-encoded zap logger. Entries go to stderr, or to a
// rotated file when cfg.FilePath is set; stdout is never written to.
// The returned cleanup flushes the logger and closes the file sink.
func New(cfg Config, stderr io.Writer) (*zap.Logger, func() error, error) {
	var (
		sink    zapcore.WriteSyncer
		closeFn = func() error { return nil }
	)

	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, nil, err
		}

		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		sink = zapcore.AddSync(lj)
		closeFn = lj.Close
	} else {
		sink = zapcore.Lock(zapcore.AddSync(stderr))
	}

	logger := NewWithSink(cfg.Level, sink)
	cleanup := func() error {
		_ = logger.Sync()
		return closeFn()
	}

	return logger, cleanup, nil
}

// NewWithSink builds the logger on an arbitrary sink.
func NewWithSink(level string, sink zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, ParseLevel(level))
	return zap.New(core)
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
