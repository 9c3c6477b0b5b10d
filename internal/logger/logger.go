package logger

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger configures the text logger used for CLI output.
// Debug output goes to the same writer as the article echo so a debug run reads top to bottom.
func SetupLogger(w io.Writer, debug bool, level string) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug || strings.EqualFold(level, "debug") {
		logLevel = slog.LevelDebug
	}
	if strings.EqualFold(level, "warn") && !debug {
		logLevel = slog.LevelWarn
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}
