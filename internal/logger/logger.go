package logger

import (
	"strings"
	"sync"
)

// Log levels accepted in config.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger. Only the first call's level is honored.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = New(level)
	})
	return globalLogger
}

// New builds a standalone logger writing to stderr.
func New(level string) *Logger {
	return newZapLogger(strings.ToLower(strings.TrimSpace(level)))
}
