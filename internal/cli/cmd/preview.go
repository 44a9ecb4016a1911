package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/urlbar/internal/application/usecase"
	"github.com/bnema/urlbar/internal/cli"
	"github.com/bnema/urlbar/internal/cli/model"
	"github.com/bnema/urlbar/internal/infrastructure/config"
	"github.com/bnema/urlbar/internal/logging"
	"github.com/bnema/urlbar/internal/ui/mainloop"
)

var (
	previewPrivate bool
	previewHome    string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Drive a live address bar in the terminal",
	Long: `Open an interactive address bar backed by a simulated browser.

Type to search, open and close tabs, switch to private browsing and watch the
tab count badge flip. Mouse clicks are delivered as touches through the window
so tapping outside the bar while editing cancels the search. Edits to the
config file are applied live.

Press ? for the key bindings.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVarP(&previewPrivate, "private", "p", false, "start in private browsing")
	previewCmd.Flags().StringVar(&previewHome, "home", "", "URL of the first tab")
}

// newIDGenerator returns short sequential tab IDs: a0, b0, ... z0, a1, ...
func newIDGenerator() usecase.IDGenerator {
	const idAlphabetSize = 26
	idCounter := uint64(0)
	return func() string {
		id := fmt.Sprintf("%c%d", 'a'+rune(idCounter%idAlphabetSize), idCounter/idAlphabetSize)
		idCounter++
		return id
	}
}

// previewLogger returns the logger for the preview. The terminal belongs to
// the TUI, so logs go to a session file or nowhere.
func previewLogger(app *cli.App) (zerolog.Logger, func()) {
	cfg := app.Config
	if !cfg.Logging.EnableFileLog {
		return zerolog.Nop(), func() {}
	}

	dir, err := config.GetLogDir(cfg)
	if err == nil {
		var sl *logging.SessionLog
		sl, err = logging.OpenSessionLog(logging.SessionLogOptions{
			Dir:        dir,
			Level:      app.Logger().GetLevel(),
			Format:     "json",
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		})
		if err == nil {
			return sl.Logger, func() { _ = sl.Close() }
		}
	}

	log := app.Logger()
	log.Warn().Err(err).Msg("session log unavailable, preview logs are discarded")
	return zerolog.Nop(), func() {}
}

func runPreview(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logger, closeLog := previewLogger(app)
	defer closeLog()
	logger.Info().Str("config_file", app.Manager.ConfigFilePath()).Msg("preview starting")

	ctx, cancel := context.WithCancel(logging.WithContext(cmd.Context(), logger))
	defer cancel()

	loop := mainloop.New()
	tabs := usecase.NewManageTabsUseCase(newIDGenerator(), nil)
	tabs.SetPrivate(previewPrivate)

	session, err := model.NewSession(ctx, model.SessionConfig{
		Config:      app.Config,
		Loop:        loop,
		Tabs:        tabs,
		BarThemes:   app.BarThemes,
		FieldThemes: app.FieldThemes,
		HomeURL:     previewHome,
	})
	if err != nil {
		return fmt.Errorf("start preview: %w", err)
	}

	defer app.Manager.OnConfigChange(session.ApplyConfig)()
	if err := app.Manager.Watch(logging.WithComponent(ctx, "config")); err != nil {
		logger.Warn().Err(err).Msg("config watch unavailable")
	}

	g, gctx := errgroup.WithContext(ctx)
	program := tea.NewProgram(
		model.NewPreviewModel(logging.WithComponent(ctx, "tui"), app.Theme, session),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(gctx),
	)

	g.Go(func() error {
		defer logging.LogPanic(&logger)
		if err := loop.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("ui loop: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		session.Close()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("preview: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info().Err(err).Msg("preview stopped")
	return err
}
