// Package log is the structured logging surface shared by the UDP server
// and the sample dnsd binary: a package-level global logger, backed by
// zap, that every worker and handler logs through instead of fmt.Println
// or the stdlib log package.
package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface this module needs: Info/Warn for server
// lifecycle events, Debug for per-datagram tracing, Error for the
// send/receive failure that ends a worker, and Fatal for startup
// failures the process cannot recover from. There is no Panic level:
// the wire codec never panics on adversarial input, and nothing in this
// tree has a legitimate reason to log at that severity.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
	Fatal(msg string, fields map[string]any)

	// With returns a Logger that attaches fields to every entry it
	// emits. The server hands each worker a logger pre-scoped with its
	// worker ID this way, so per-datagram call sites carry only what
	// varies per datagram (client address, parse error).
	With(fields map[string]any) Logger
}

var global Logger = newZapLogger(false, zapcore.InfoLevel) // default to prod/info

// SetLogger replaces the global logger instance. Useful for testing or
// overriding behavior.
func SetLogger(l Logger) {
	global = l
}

// GetLogger returns the current global logger instance.
func GetLogger() Logger {
	return global
}

// Configure rebuilds the global logger for the given environment ("dev" or
// anything else, treated as prod) and minimum level.
func Configure(env, level string) error {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	global = newZapLogger(env == "dev", lvl)
	return nil
}

// Debug logs per-datagram tracing (dropped packets, answered queries).
func Debug(msg string, fields map[string]any) {
	global.Debug(msg, fields)
}

// Info logs a server lifecycle event (bind, listen, shutdown).
func Info(msg string, fields map[string]any) {
	global.Info(msg, fields)
}

// Warn logs a recoverable but noteworthy condition.
func Warn(msg string, fields map[string]any) {
	global.Warn(msg, fields)
}

// Error logs a worker-level send or receive failure.
func Error(msg string, fields map[string]any) {
	global.Error(msg, fields)
}

// Fatal logs an unrecoverable startup failure and terminates the process.
func Fatal(msg string, fields map[string]any) {
	global.Fatal(msg, fields)
}

// zapLogger implements Logger using Uber's zap.
type zapLogger struct {
	base *zap.Logger
}

// newZapLogger assembles a zap core writing to stderr at the given
// minimum level. Dev mode gets a human-readable console encoder with
// colorized levels for watching a local server drop and answer
// datagrams; prod mode gets single-line JSON.
func newZapLogger(dev bool, level zapcore.Level) Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "msg",
		EncodeTime:  zapcore.ISO8601TimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}

	var enc zapcore.Encoder
	if dev {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	return &zapLogger{base: zap.New(core)}
}

func (l *zapLogger) Debug(msg string, fields map[string]any) {
	l.base.Debug(msg, toZapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]any) {
	l.base.Info(msg, toZapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]any) {
	l.base.Warn(msg, toZapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]any) {
	l.base.Error(msg, toZapFields(fields)...)
}

func (l *zapLogger) Fatal(msg string, fields map[string]any) {
	l.base.Fatal(msg, toZapFields(fields)...)
}

func (l *zapLogger) With(fields map[string]any) Logger {
	return &zapLogger{base: l.base.With(toZapFields(fields)...)}
}

// toZapFields converts a call site's loosely-typed field map (worker IDs,
// client addresses, query IDs, wrapped errors) into zap's structured
// field type.
func toZapFields(m map[string]any) []zap.Field {
	fields := make([]zap.Field, 0, len(m))
	for k, v := range m {
		fields = append(fields, zap.Any(k, v))
	}
	return fields
}

// noopLogger is a Logger implementation that discards all log messages.
type noopLogger struct{}

func (n *noopLogger) Debug(string, map[string]any) {}
func (n *noopLogger) Info(string, map[string]any)  {}
func (n *noopLogger) Warn(string, map[string]any)  {}
func (n *noopLogger) Error(string, map[string]any) {}
func (n *noopLogger) Fatal(string, map[string]any) {}

func (n *noopLogger) With(map[string]any) Logger { return n }

// NewNoopLogger returns a Logger that discards all log messages. Useful in
// tests that exercise a worker's error paths without writing to stderr.
func NewNoopLogger() Logger {
	return &noopLogger{}
}
