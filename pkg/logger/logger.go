// Package logger provides structured logging for fakes
package logger

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	once         sync.Once

	fallback     *zap.Logger
	fallbackOnce sync.Once
)

// contextKey is the type for context keys
type contextKey string

const (
	// RunIDKey is the context key for the generation run ID
	RunIDKey contextKey = "run_id"
	// LocaleKey is the context key for the selected locale
	LocaleKey contextKey = "locale"
)

// Config represents logger configuration
type Config struct {
	Level       string
	Development bool
	Encoding    string // json or console
	OutputPaths []string
}

// Init initializes the global logger
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		globalLogger, err = New(cfg)
	})
	return err
}

// New builds a zap logger from cfg. Output defaults to stderr so that
// generated data on stdout stays clean.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if cfg.Development {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = []string{"stderr"}
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Development,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.Development {
		logger = logger.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return logger, nil
}

// Get returns the global logger. Before Init it returns a warn-level
// console logger without consuming Init.
func Get() *zap.Logger {
	if globalLogger != nil {
		return globalLogger
	}
	fallbackOnce.Do(func() {
		l, err := New(Config{Level: "warn", Encoding: "console"})
		if err != nil {
			l = zap.NewNop()
		}
		fallback = l
	})
	return fallback
}

// NewRunID returns a fresh identifier for one generation run.
func NewRunID() string {
	return uuid.NewString()
}

// ContextWithRun attaches a run ID and locale to ctx for WithContext.
func ContextWithRun(ctx context.Context, runID, locale string) context.Context {
	ctx = context.WithValue(ctx, RunIDKey, runID)
	return context.WithValue(ctx, LocaleKey, locale)
}

// WithContext returns base, or the global logger when base is nil, with the
// run ID and locale stored by ContextWithRun.
func WithContext(ctx context.Context, base *zap.Logger) *zap.Logger {
	logger := base
	if logger == nil {
		logger = Get()
	}

	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		logger = logger.With(zap.String("run_id", runID))
	}

	if locale, ok := ctx.Value(LocaleKey).(string); ok {
		logger = logger.With(zap.String("locale", locale))
	}

	return logger
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}
