package infrastructure

import (
	"context"
	"log/slog"

	"floodaware.app/internal/ports"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter wraps logger; nil uses slog.Default at call time
func NewSlogLoggerAdapter(logger *slog.Logger) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: logger}
}

func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.log(slog.LevelDebug, msg, fields)
}

func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.log(slog.LevelWarn, msg, fields)
}

func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.log(slog.LevelError, msg, fields)
}

func (l *SlogLoggerAdapter) log(level slog.Level, msg string, fields []ports.Field) {
	logger := l.logger
	if logger == nil {
		logger = slog.Default()
	}

	attrs := make([]slog.Attr, 0, len(fields))
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			attrs = append(attrs, slog.String(field.Key, err.Error()))
			continue
		}
		attrs = append(attrs, slog.Any(field.Key, field.Value))
	}
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// FanoutLogger forwards every entry to each wrapped logger in order
type FanoutLogger struct {
	loggers []ports.Logger
}

func NewFanoutLogger(loggers ...ports.Logger) *FanoutLogger {
	kept := make([]ports.Logger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			kept = append(kept, l)
		}
	}
	return &FanoutLogger{loggers: kept}
}

func (f *FanoutLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range f.loggers {
		l.Debug(msg, fields...)
	}
}

func (f *FanoutLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range f.loggers {
		l.Info(msg, fields...)
	}
}

func (f *FanoutLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range f.loggers {
		l.Warn(msg, fields...)
	}
}

func (f *FanoutLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range f.loggers {
		l.Error(msg, fields...)
	}
}
