package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel defines the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is a simple, concurrency-safe leveled logger.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  LogLevel
	prefix string
	color  *Colorizer
}

// NewLogger creates a new Logger instance.
func NewLogger(out io.Writer, level LogLevel, prefix string, colorize bool) *Logger {
	return &Logger{
		out:    out,
		level:  level,
		prefix: prefix,
		color:  NewColorizer(colorize),
	}
}

// SetLevel sets the current logging level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetColorEnabled enables or disables colored output.
func (l *Logger) SetColorEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color.Enabled = enabled
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s %s: %s", time.Now().Format("15:04:05"), levelName(level), l.prefix, msg)

	switch level {
	case LevelDebug:
		line = l.color.Dim(line)
	case LevelWarn:
		line = l.color.Yellow(line)
	case LevelError:
		line = l.color.Red(line)
	}

	_, _ = fmt.Fprintln(l.out, line)
}

func levelName(level LogLevel) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Global logger instance; colors only when stdout is a terminal, unless the
// CLI flags say otherwise via SetColorEnabled.
var defaultLogger = NewLogger(os.Stderr, LevelInfo, "peergroup", false)

func SetLogLevel(level LogLevel) {
	defaultLogger.SetLevel(level)
}

func SetColorEnabled(enabled bool) {
	defaultLogger.SetColorEnabled(enabled)
}

func Debug(format string, args ...interface{}) {
	defaultLogger.Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	defaultLogger.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	defaultLogger.Warn(format, args...)
}

// Fatal logs an error message and exits with a non-zero status.
func Fatal(format string, args ...interface{}) {
	defaultLogger.Error(format, args...)
	os.Exit(1)
}
