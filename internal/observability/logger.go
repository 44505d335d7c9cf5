package observability

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	slog *slog.Logger
}

// NewLogger создаёт логгер: stderr + файл с ротацией (lumberjack)
func NewLogger(logPath, logLevel string, maxSizeMB, maxBackups, maxAgeDays int) *Logger {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		// Если директорию создать не удалось, пишем только в stderr
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(logLevel)})
		l := slog.New(handler)
		l.Warn("failed to create log directory, logging to stderr only", "path", logPath, "error", err.Error())
		return &Logger{slog: l}
	}

	rotated := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stderr, rotated), &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	})

	return &Logger{slog: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Info(msg string, fields ...any) {
	l.slog.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...any) {
	l.slog.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...any) {
	l.slog.Error(msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...any) {
	l.slog.Debug(msg, fields...)
}
