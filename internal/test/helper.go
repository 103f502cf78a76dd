// Package test provides loggers and an in-memory Resembla server for tests.
package test

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func DummyLogger(w io.Writer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "message",
	})

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel))
}
