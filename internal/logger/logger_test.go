package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_Levels(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		name  string
		debug bool
		level string
		want  slog.Level
	}{
		{name: "default info", level: "info", want: slog.LevelInfo},
		{name: "debug flag", debug: true, level: "info", want: slog.LevelDebug},
		{name: "debug env", level: "DEBUG", want: slog.LevelDebug},
		{name: "warn env", level: "warn", want: slog.LevelWarn},
		{name: "debug flag beats warn", debug: true, level: "warn", want: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := SetupLogger(&buf, tt.debug, tt.level)

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tt.want))
			assert.False(t, logger.Enabled(ctx, tt.want-1))
			assert.Same(t, logger, slog.Default())
		})
	}
}
