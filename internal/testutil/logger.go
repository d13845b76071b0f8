package testutil

import (
	"io"
	"log/slog"

	"github.com/mytasks/mytasks-server/internal/logger"
)

// MakeNoopLogger returns a Logger that discards all output.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
