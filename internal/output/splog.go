package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Splog is the diagnostics logger. It never writes to stdout or stderr:
// stdout carries the prompt and stderr would corrupt the shell line.
type Splog struct {
	logger    *slog.Logger
	logWriter io.WriteCloser // lumberjack logger when file logging is on
}

// NewSplog creates a logger that discards everything
func NewSplog() *Splog {
	return &Splog{logger: slog.New(slog.DiscardHandler)}
}

// NewSplogWithFile creates a logger writing to a rotated log file at logFilePath.
// An empty path yields the discarding logger.
func NewSplogWithFile(logFilePath string) (*Splog, error) {
	if logFilePath == "" {
		return NewSplog(), nil
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := newLumberjackLogger(logFilePath)
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
			}
			return a
		},
	})

	return &Splog{
		logger:    slog.New(handler).With("pid", os.Getpid()),
		logWriter: writer,
	}, nil
}

// newLumberjackLogger keeps the log small: a prompt tool logs on every render
func newLumberjackLogger(logFilePath string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}
}

func (s *Splog) log(level slog.Level, format string, args ...interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg)
}

// Debug writes a debug message
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, format, args...)
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, format, args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, format, args...)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, format, args...)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
