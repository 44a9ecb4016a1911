package component

import (
	"time"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/infrastructure/config"
)

// Options tunes the address bar's timing and initial state.
type Options struct {
	InitialTheme        entity.ThemeName
	ShowToolbar         bool
	ShowPasswordManager bool
	// FocusDelay defers focusing the field after a typed (not pasted) entry.
	// Zero means the next loop tick.
	FocusDelay time.Duration

	TransitionDuration time.Duration
	TabCountDuration   time.Duration
	TabCountDamping    float64
	TabCountVelocity   float64
}

// DefaultOptions mirrors config.DefaultConfig.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

// OptionsFromConfig maps the config file onto address bar options.
// Disabled animations get zero durations, which animators complete at once.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		InitialTheme:        entity.ThemeName(cfg.AddressBar.DefaultTheme),
		ShowToolbar:         cfg.AddressBar.ShowToolbar,
		ShowPasswordManager: cfg.AddressBar.ShowPasswordManager,
		FocusDelay:          time.Duration(cfg.AddressBar.FocusDelayMs) * time.Millisecond,
		TabCountDamping:     cfg.Animation.TabCountDamping,
		TabCountVelocity:    cfg.Animation.TabCountVelocity,
	}
	if opts.InitialTheme == "" {
		opts.InitialTheme = entity.ThemeNormal
	}
	if cfg.Animation.Enabled {
		opts.TransitionDuration = time.Duration(cfg.Animation.TransitionDurationMs) * time.Millisecond
		opts.TabCountDuration = time.Duration(cfg.Animation.TabCountDurationMs) * time.Millisecond
	}
	return opts
}

func (o Options) transitionAnimation() port.AnimationOptions {
	return port.AnimationOptions{Duration: o.TransitionDuration}
}

func (o Options) tabCountAnimation() port.AnimationOptions {
	return port.AnimationOptions{
		Duration:        o.TabCountDuration,
		Damping:         o.TabCountDamping,
		InitialVelocity: o.TabCountVelocity,
	}
}
