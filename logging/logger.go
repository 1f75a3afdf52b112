// Package logging wraps zap with the small configuration surface the
// engine needs: a level, a format, and an env-driven constructor for
// the entry points.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	// Level is the log level (debug, info, warn, error).
	Level string
	// Format is the log format (json or console).
	Format string
	// Development enables development mode.
	Development bool
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json"}
}

// New creates a logger from the given configuration.
func New(config Config) (*zap.Logger, error) {
	var encoderConfig zapcore.EncoderConfig
	if config.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(config.Level)),
		Development:      config.Development,
		DisableCaller:    true,
		Encoding:         config.Format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapConfig.Build()
}

// NewFromEnv creates a logger from LOG_LEVEL, LOG_FORMAT, and LOG_DEV.
func NewFromEnv() (*zap.Logger, error) {
	config := DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = format
	}
	if os.Getenv("LOG_DEV") == "true" {
		config.Development = true
		config.Format = "console"
	}
	return New(config)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
