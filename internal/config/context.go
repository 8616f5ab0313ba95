package config

import (
	"context"
	"log/slog"
)

type configKey struct{}
type loggerKey struct{}

// WithConfig returns a context carrying cfg, retrievable with FromContext.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig, or a defaulted
// Config if none was stored.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// WithLogger returns a context carrying logger, retrievable with LoggerFromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext retrieves the logger stored by WithLogger, or a
// discarding logger if none was stored.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
