// Package logging provides structured logging with zap.
//
// The terminal belongs to the UI, so logs only ever go to a file. Without
// an output path every logger is a no-op.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	globalLevel  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	OutputPath string // file path; empty disables logging
}

// New builds a logger for cfg. Unknown levels fall back to info.
func New(cfg Config) (*zap.Logger, error) {
	logger, _, err := build(cfg)
	return logger, err
}

func build(cfg Config) (*zap.Logger, zap.AtomicLevel, error) {
	atomicLevel := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.OutputPath == "" {
		return zap.NewNop(), atomicLevel, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var config zap.Config
	if cfg.Format == "console" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	atomicLevel.SetLevel(level)
	config.Level = atomicLevel
	config.OutputPaths = []string{cfg.OutputPath}
	config.ErrorOutputPaths = []string{cfg.OutputPath}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, atomicLevel, err
}

// Init initializes the global logger.
func Init(cfg Config) error {
	logger, level, err := build(cfg)
	if err != nil {
		return err
	}
	globalLogger = logger
	globalLevel = level
	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// SetLevel changes the global log level at runtime.
func SetLevel(level string) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return
	}
	globalLevel.SetLevel(l)
}

// L returns the global logger, a no-op logger before Init.
func L() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}
