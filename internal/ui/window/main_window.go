// Package window provides the host window that routes touch events through
// the filter broadcaster.
package window

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/logging"
)

// MainWindow is the top-level window. Every event the host delivers goes
// through SendEvent.
type MainWindow struct {
	*Broadcaster

	ContextMenu *ContextMenuSuppressor
	NewTab      *NewTabInterceptor

	logger zerolog.Logger
}

// Config configures a MainWindow.
type Config struct {
	Root       port.EventHandler
	TopContext port.TopContextProvider
	// OnLongPress runs when the context-menu hook detects a long press.
	OnLongPress func(point entity.TouchPoint)
}

// New creates a main window with its two fixed hooks installed.
func New(ctx context.Context, cfg Config) *MainWindow {
	log := logging.FromContext(ctx)
	logger := log.With().Str("component", "main-window").Logger()

	mw := &MainWindow{
		ContextMenu: NewContextMenuSuppressor(DefaultLongPressDuration, cfg.OnLongPress),
		NewTab:      &NewTabInterceptor{},
		logger:      logger,
	}
	mw.Broadcaster = NewBroadcaster(logger, BroadcasterConfig{
		ContextMenuHook: mw.ContextMenu,
		NewTabHook:      mw.NewTab,
		TopContext:      cfg.TopContext,
		Next:            cfg.Root,
	})

	logger.Debug().Msg("main window created")
	return mw
}

// SendEvent is the host entry point for input events.
func (mw *MainWindow) SendEvent(ctx context.Context, ev entity.TouchEvent) Outcome {
	return mw.Dispatch(ctx, ev)
}
