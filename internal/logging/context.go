package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent derives a logger tagged with component=name.
func WithComponent(ctx context.Context, name string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str("component", name).Logger())
}
