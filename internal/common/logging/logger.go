package logging

import (
	"context"
	"fmt"
	"os"
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalLogger Logger
)

// GetGlobalLogger returns the process logger, building a stdout logger from
// the environment on first use.
func GetGlobalLogger() Logger {
	globalMu.RLock()
	logger := globalLogger
	globalMu.RUnlock()
	if logger != nil {
		return logger
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewLogger(DefaultLogConfig())
	}
	return globalLogger
}

// SetGlobalLogger replaces the process logger
func SetGlobalLogger(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// InitGlobalLogger builds the process logger from LOG_LEVEL, LOG_FORMAT and
// LOG_FILE. Without LOG_FILE the logger writes to stdout.
func InitGlobalLogger() error {
	config := DefaultLogConfig()

	logFile := os.Getenv("LOG_FILE")
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", logFile, err)
		}
		config.Output = file
	}

	logger, err := NewZapLogger(config)
	if err != nil {
		return err
	}
	SetGlobalLogger(logger)

	logger.Debug("Logger initialized",
		String("level", config.Level.String()),
		String("format", string(config.Format)),
		String("log_file", logFile),
	)
	return nil
}

// MustSync flushes buffered entries; call before exit
func MustSync() {
	if syncer, ok := GetGlobalLogger().(interface{ Sync() error }); ok {
		_ = syncer.Sync()
	}
}

func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(msg string, err error, fields ...Field) {
	GetGlobalLogger().Error(msg, err, fields...)
}

// WithContext returns the global logger carrying ctx's request values
func WithContext(ctx context.Context) Logger {
	return GetGlobalLogger().WithContext(ctx)
}

// WithFields returns the global logger with fields attached
func WithFields(fields ...Field) Logger {
	return GetGlobalLogger().WithFields(fields...)
}

// contextFields extracts the request-scoped values set by the HTTP middleware
func contextFields(ctx context.Context) []Field {
	var fields []Field
	for _, key := range []ContextKey{RequestIDKey, UserIDKey} {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			fields = append(fields, String(string(key), v))
		}
	}
	return fields
}
