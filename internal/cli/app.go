// Package cli provides the urlbar command line: cobra commands and the
// bubbletea preview host.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/urlbar/internal/cli/styles"
	"github.com/bnema/urlbar/internal/domain/build"
	"github.com/bnema/urlbar/internal/infrastructure/config"
	"github.com/bnema/urlbar/internal/logging"
	"github.com/bnema/urlbar/internal/ui/theme"
)

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme

	BuildInfo build.Info

	// Live registries; the preview swaps them when the config file changes.
	BarThemes   *theme.Live
	FieldThemes *theme.Live

	ctx    context.Context
	logger zerolog.Logger
}

// NewApp loads the configuration from configDir (empty means the XDG
// directory) and builds the theme registries and CLI styles from it.
func NewApp(configDir string) (*App, error) {
	mgr, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("URLBAR_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(logLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	ctx := logging.WithContext(context.Background(), logger)

	bar, field, err := BuildRegistries(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("config_file", mgr.ConfigFilePath()).Msg("cli app initialized")

	return &App{
		Config:      cfg,
		Manager:     mgr,
		Theme:       styles.NewTheme(bar.Registry(), cfg.AddressBar.DefaultTheme),
		BarThemes:   bar,
		FieldThemes: field,
		ctx:         ctx,
		logger:      logger,
	}, nil
}

// BuildRegistries creates the bar and field theme registries for cfg.
func BuildRegistries(cfg *config.Config) (bar, field *theme.Live, err error) {
	barReg, err := theme.NewBarRegistry(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build bar themes: %w", err)
	}
	fieldReg, err := theme.NewFieldRegistry(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build field themes: %w", err)
	}
	return theme.NewLive(barReg), theme.NewLive(fieldReg), nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() zerolog.Logger {
	return a.logger
}
