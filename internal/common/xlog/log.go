// Package xlog is the structured logger used across the service.
// It keeps a single process-wide zap logger and enriches every entry with
// request scoped data (correlation id) carried by the context.
package xlog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

type options struct {
	level      zapcore.Level
	env        string
	output     string
	caller     bool
	callerSkip int
}

type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithEnv(env string) Option {
	return func(o *options) {
		o.env = strings.ToLower(env)
	}
}

// WithOutput sets the sink, "stdout" (default), "stderr" or a file path.
func WithOutput(output string) Option {
	return func(o *options) {
		if output != "" {
			o.output = output
		}
	}
}

func WithCaller(enabled bool) Option {
	return func(o *options) {
		o.caller = enabled
	}
}

func AddCallerSkip(skip int) Option {
	return func(o *options) {
		o.callerSkip = skip
	}
}

func Init(appName string, opts ...Option) error {
	o := &options{
		level:  zapcore.InfoLevel,
		output: "stdout",
	}
	for _, opt := range opts {
		opt(o)
	}

	cfg := zap.NewProductionConfig()
	if o.env == "local" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(o.level)
	cfg.OutputPaths = []string{o.output}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = !o.caller
	cfg.InitialFields = map[string]interface{}{"app": appName}

	l, err := cfg.Build(zap.AddCallerSkip(o.callerSkip))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	global.Store(l)
	return nil
}

// InitForTest swaps the global logger with one that only prints errors to stderr.
func InitForTest() {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zapcore.ErrorLevel,
	)
	global.Store(zap.New(core))
}

// Logger exposes the underlying zap logger, for integrations such as nrzap.
func Logger() *zap.Logger {
	return global.Load()
}

func Sync() error {
	return global.Load().Sync()
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	global.Load().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	global.Load().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	global.Load().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	global.Load().Error(msg, withContext(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	global.Load().Panic(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	global.Load().Fatal(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func String(key, val string) Field                 { return zap.String(key, val) }
func Int(key string, val int) Field                { return zap.Int(key, val) }
func Int64(key string, val int64) Field            { return zap.Int64(key, val) }
func Bool(key string, val bool) Field              { return zap.Bool(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
func Time(key string, val time.Time) Field         { return zap.Time(key, val) }
func Any(key string, val interface{}) Field        { return zap.Any(key, val) }
func Err(err error) Field                          { return zap.Error(err) }
