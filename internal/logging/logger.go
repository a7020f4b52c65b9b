package logging

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup initializes the global slog logger with JSON output to stdout. When
// logFile is non-empty the same records also go to a size-rotated file.
func Setup(logFile string) {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if logFile == "" {
		slog.SetDefault(slog.New(stdout))
		return
	}

	rotated := slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}, &slog.HandlerOptions{Level: slog.LevelInfo})

	slog.SetDefault(slog.New(NewMultiHandler(stdout, rotated)))
}
