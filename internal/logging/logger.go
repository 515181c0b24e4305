// Package logging provides the diagnostic logger used by vigenere commands.
//
// Logs go to stderr so they never mix with command output on stdout.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed structured logging field.
type Field = zap.Field

// Logger wraps a zap logger with a runtime-adjustable level.
type Logger struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

// New creates a console logger writing to w. Debug output is enabled only
// when verbose is set; otherwise only warnings and errors are written.
func New(w io.Writer, verbose bool) *Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)

	return &Logger{logger: zap.New(core), atomicLevel: level}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zap.NewNop(), atomicLevel: zap.NewAtomicLevelAt(zapcore.FatalLevel)}
}

func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}

// Named returns a child logger scoped to a command or component.
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{logger: l.must().Named(name), atomicLevel: l.atomicLevel}
}

// Debug logs a message with debug severity.
func (l *Logger) Debug(message string, fields ...Field) {
	l.must().Debug(message, fields...)
}

// Warn logs a message with warn severity.
func (l *Logger) Warn(message string, fields ...Field) {
	l.must().Warn(message, fields...)
}

// Error logs a message with error severity.
func (l *Logger) Error(message string, fields ...Field) {
	l.must().Error(message, fields...)
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level zapcore.Level) bool {
	return l.must().Core().Enabled(level)
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.must().Sync()
}

// String creates a string field.
func String(key, value string) Field {
	return zap.String(key, value)
}

// Int creates an int field.
func Int(key string, value int) Field {
	return zap.Int(key, value)
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return zap.Float64(key, value)
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return zap.Bool(key, value)
}

// ErrorField creates an error field.
func ErrorField(err error) Field {
	return zap.Error(err)
}
