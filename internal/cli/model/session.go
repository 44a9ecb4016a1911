package model

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/application/usecase"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/domain/url"
	"github.com/bnema/urlbar/internal/infrastructure/config"
	"github.com/bnema/urlbar/internal/logging"
	"github.com/bnema/urlbar/internal/ui/anim"
	"github.com/bnema/urlbar/internal/ui/component"
	"github.com/bnema/urlbar/internal/ui/mainloop"
	"github.com/bnema/urlbar/internal/ui/theme"
	"github.com/bnema/urlbar/internal/ui/window"
)

const (
	maxEvents   = 6
	loadStep    = 250 * time.Millisecond
	badgeWidth  = 6
	reloadKey   = "config-reload"
	defaultHome = "about:home"

	animationFrameInterval = 33 * time.Millisecond
)

var knownSites = []string{
	"duckduckgo.com",
	"github.com",
	"go.dev",
	"pkg.go.dev",
	"news.ycombinator.com",
}

var _ port.AddressBarDelegate = (*Session)(nil)

// Frame is what the preview draws: the bar and the state around it.
// Motion is how far the bar's running animations have got, 1 once settled.
type Frame struct {
	Bar     component.AddressBarState
	Tabs    int
	Private bool
	Events  []string
	Motion  float64
}

// SessionConfig wires a preview session.
type SessionConfig struct {
	Config      *config.Config
	Loop        *mainloop.Loop
	Tabs        *usecase.ManageTabsUseCase
	BarThemes   *theme.Live
	FieldThemes *theme.Live
	HomeURL     string
}

// Session hosts an address bar on a UI loop and plays the browser screen
// around it: it is the bar's delegate, owns the window that routes touches
// and publishes a Frame after every loop task. Methods other than the
// delegate callbacks may be called from any goroutine.
type Session struct {
	ctx    context.Context
	logger zerolog.Logger

	loop   *mainloop.Loop
	sched  publishingScheduler
	reload *mainloop.Coalescer
	frames chan Frame

	tabs        *usecase.ManageTabsUseCase
	barThemes   *theme.Live
	fieldThemes *theme.Live
	bar         *component.AddressBar
	window      *window.MainWindow
	unregister  func()
	timed       *anim.Timed

	// overlay is set while a modal covers the browser screen.
	overlay atomic.Bool

	// Loop-owned state.
	searchURL   string
	history     []string
	historyPos  int
	loadGen     uint64
	longPressed bool
	animFrame   bool
	events      []string
}

type publishingScheduler struct {
	loop    *mainloop.Loop
	publish func()
}

func (p publishingScheduler) Post(fn func()) {
	p.loop.Post(func() {
		fn()
		p.publish()
	})
}

func (p publishingScheduler) PostDelayed(d time.Duration, fn func()) {
	p.loop.PostDelayed(d, func() {
		fn()
		p.publish()
	})
}

// NewSession builds the bar and its window. It must be called before the
// loop starts running.
func NewSession(ctx context.Context, cfg SessionConfig) (*Session, error) {
	if cfg.Config == nil || cfg.Loop == nil || cfg.Tabs == nil {
		return nil, fmt.Errorf("session: config, loop and tabs are required")
	}
	log := logging.FromContext(ctx)
	logger := log.With().Str("component", "preview-session").Logger()
	ctx = logging.WithContext(ctx, logger)

	s := &Session{
		ctx:         ctx,
		logger:      logger,
		loop:        cfg.Loop,
		frames:      make(chan Frame, 1),
		tabs:        cfg.Tabs,
		barThemes:   cfg.BarThemes,
		fieldThemes: cfg.FieldThemes,
		searchURL:   cfg.Config.AddressBar.SearchURL,
	}
	s.sched = publishingScheduler{loop: cfg.Loop, publish: s.publish}
	s.reload = mainloop.NewCoalescer(s.sched.Post)

	home := cfg.HomeURL
	if home == "" {
		home = defaultHome
	}
	if s.tabs.TabCount() == 0 {
		s.tabs.Open(ctx, home)
	}

	var animator port.Animator = anim.Immediate{}
	if cfg.Config.Animation.Enabled {
		s.timed = anim.NewTimed(s.sched)
		animator = s.timed
	}

	opts := component.OptionsFromConfig(cfg.Config)
	if s.tabs.Private() {
		opts.InitialTheme = entity.ThemePrivate
	}
	bar, err := component.NewAddressBar(ctx, component.AddressBarConfig{
		Delegate:    s,
		Tabs:        s.tabs,
		BarThemes:   cfg.BarThemes,
		FieldThemes: cfg.FieldThemes,
		Animator:    animator,
		Scheduler:   s.sched,
		Options:     opts,
	})
	if err != nil {
		return nil, fmt.Errorf("create address bar: %w", err)
	}
	s.bar = bar

	s.window = window.New(ctx, window.Config{
		Root:        port.EventHandlerFunc(s.handleEvent),
		TopContext:  port.TopContextFunc(func() bool { return !s.overlay.Load() }),
		OnLongPress: s.handleLongPress,
	})
	s.unregister = window.Register(s.window.Broadcaster, s.bar)

	s.visit(s.tabs.ActiveURL())
	s.bar.SetURL(ctx, s.tabs.ActiveURL())
	s.bar.SetReaderModeState(entity.ReaderModeUnavailable)
	s.publish()

	logger.Debug().Int("tabs", s.tabs.TabCount()).Msg("preview session ready")
	return s, nil
}

// Frames delivers the latest frame; older undelivered frames are dropped.
func (s *Session) Frames() <-chan Frame {
	return s.frames
}

// publish runs on the loop only, so draining and resending cannot race.
func (s *Session) publish() {
	f := Frame{
		Bar:     s.bar.Snapshot(),
		Tabs:    s.tabs.TabCount(),
		Private: s.tabs.Private(),
		Events:  append([]string(nil), s.events...),
		Motion:  1,
	}
	if s.timed != nil {
		f.Motion = s.timed.Progress()
		if s.timed.InFlight() > 0 {
			s.scheduleAnimationFrame()
		}
	}
	select {
	case s.frames <- f:
	default:
		select {
		case <-s.frames:
		default:
		}
		s.frames <- f
	}
}

// scheduleAnimationFrame republishes while animations run so the preview
// can draw them part way. At most one frame is pending.
func (s *Session) scheduleAnimationFrame() {
	if s.animFrame {
		return
	}
	s.animFrame = true
	s.loop.PostDelayed(animationFrameInterval, func() {
		s.animFrame = false
		s.publish()
	})
}

func (s *Session) event(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.events = append(s.events, msg)
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
	s.logger.Debug().Str("event", msg).Msg("preview event")
}

func (s *Session) do(fn func(ctx context.Context)) {
	s.sched.Post(func() { fn(s.ctx) })
}

// SetOverlay marks the browser screen as covered; touch filters are then
// bypassed.
func (s *Session) SetOverlay(covered bool) {
	s.overlay.Store(covered)
}

// SetBounds places the bar at row top, width columns wide, two rows high.
func (s *Session) SetBounds(top, width int) {
	s.do(func(context.Context) {
		s.bar.SetBounds(component.Rect{Y: float64(top), Width: float64(width), Height: 2})
	})
}

// SendTouch delivers a touch event through the window.
func (s *Session) SendTouch(ev entity.TouchEvent) {
	s.do(func(ctx context.Context) {
		if outcome := s.window.SendEvent(ctx, ev); outcome == window.Suppressed {
			s.event("touch claimed by filter")
		}
	})
}

func (s *Session) handleEvent(ctx context.Context, ev entity.TouchEvent) {
	point, ok := ev.SingleTouch()
	if !ok {
		return
	}
	switch point.Phase {
	case entity.TouchBegan:
		s.longPressed = false
		return
	case entity.TouchEnded:
	default:
		return
	}
	if s.longPressed {
		return
	}

	bounds := s.bar.Bounds()
	if !bounds.Contains(point.X, point.Y) {
		s.event("page tapped at %.0f,%.0f", point.X, point.Y)
		return
	}
	if s.bar.InSearchMode() {
		return
	}
	if point.X >= bounds.X+bounds.Width-badgeWidth {
		s.bar.TapTabs()
		return
	}
	s.bar.TapLocation(ctx)
}

func (s *Session) handleLongPress(point entity.TouchPoint) {
	s.longPressed = true
	if s.bar.Bounds().Contains(point.X, point.Y) {
		s.bar.LongPressLocation()
		return
	}
	if s.window.ContextMenu.Suppressing() {
		s.event("link menu at %.0f,%.0f, native menu suppressed", point.X, point.Y)
	}
}

// FocusLocation enters search mode with the current location.
func (s *Session) FocusLocation() {
	s.do(s.bar.TapLocation)
}

// Cancel leaves search mode as a cancellation.
func (s *Session) Cancel() {
	s.do(s.bar.TapCancel)
}

// Submit sends the field's text.
func (s *Session) Submit() {
	s.do(s.bar.Submit)
}

// EditField replaces the field text with edit(current).
func (s *Session) EditField(edit func(text string) string) {
	s.do(func(ctx context.Context) {
		snap := s.bar.Snapshot()
		if !snap.FieldPresent {
			return
		}
		s.bar.TypeText(ctx, edit(snap.FieldText))
	})
}

// AcceptCompletion makes the inline completion part of the typed text.
func (s *Session) AcceptCompletion() {
	s.do(func(ctx context.Context) {
		snap := s.bar.Snapshot()
		if snap.FieldAutocompletion == "" {
			return
		}
		s.bar.TypeText(ctx, snap.FieldText+snap.FieldAutocompletion)
	})
}

// Paste enters search mode with pasted text, or appends it while searching.
func (s *Session) Paste(text string) {
	s.do(func(ctx context.Context) {
		if s.bar.InSearchMode() {
			s.bar.TypeText(ctx, s.bar.Snapshot().FieldText+text)
			return
		}
		s.bar.EnterSearch(ctx, text, true)
	})
}

// OpenTab opens a blank tab.
func (s *Session) OpenTab() {
	s.do(func(ctx context.Context) {
		s.openTab(ctx, defaultHome)
	})
}

func (s *Session) openTab(ctx context.Context, target string) {
	tab := s.tabs.Open(ctx, target)
	s.history, s.historyPos = nil, 0
	s.visit(tab.URL)
	s.bar.SetURL(ctx, tab.URL)
	s.bar.UpdateTabCount(ctx, s.tabs.TabCount(), true)

	// the new tab grows out of the touch that asked for it
	if origin, ok := s.window.NewTab.Take(); ok {
		s.event("tab opened from %.0f,%.0f", origin.X, origin.Y)
		return
	}
	s.event("tab opened")
}

// CloseTab closes the active tab.
func (s *Session) CloseTab() {
	s.do(func(ctx context.Context) {
		if !s.tabs.CloseActive(ctx) {
			s.event("no tab to close")
			return
		}
		s.bar.SetURL(ctx, s.tabs.ActiveURL())
		s.bar.UpdateTabCount(ctx, s.tabs.TabCount(), true)
		s.event("tab closed")
	})
}

// TogglePrivate switches browsing mode and the bar's theme with it.
func (s *Session) TogglePrivate() {
	s.do(func(ctx context.Context) {
		private := !s.tabs.Private()
		name := entity.ThemeNormal
		if private {
			name = entity.ThemePrivate
		}
		if err := s.bar.ApplyTheme(ctx, name); err != nil {
			s.event("theme %s unavailable", name)
			return
		}
		s.tabs.SetPrivate(private)
		if s.tabs.TabCount() == 0 {
			s.tabs.Open(ctx, defaultHome)
		}
		s.bar.SetURL(ctx, s.tabs.ActiveURL())
		s.bar.UpdateTabCount(ctx, s.tabs.TabCount(), true)
		s.event("%s browsing", name)
	})
}

// ToggleToolbar shows or hides the secondary toolbar.
func (s *Session) ToggleToolbar() {
	s.do(func(context.Context) {
		show := !s.bar.Snapshot().ShowToolbar
		s.bar.SetShowToolbar(show)
		s.event("bottom toolbar %s", onOff(show))
	})
}

// ToggleLoading taps the stop/reload button.
func (s *Session) ToggleLoading() {
	s.do(func(context.Context) {
		s.bar.TapStopReload()
	})
}

// ToggleReaderMode taps the reader mode button, making it available first
// when the page has none.
func (s *Session) ToggleReaderMode() {
	s.do(func(context.Context) {
		if s.bar.Snapshot().ReaderMode == entity.ReaderModeUnavailable {
			s.bar.SetReaderModeState(entity.ReaderModeAvailable)
			s.event("reader mode available")
			return
		}
		s.bar.TapReaderMode()
	})
}

// Back taps the back button, on the bottom toolbar when it is shown.
func (s *Session) Back() {
	s.do(func(ctx context.Context) {
		s.tapNavigation(ctx, port.ToolbarActionBack)
	})
}

// Forward taps the forward button, on the bottom toolbar when it is shown.
func (s *Session) Forward() {
	s.do(func(ctx context.Context) {
		s.tapNavigation(ctx, port.ToolbarActionForward)
	})
}

func (s *Session) tapNavigation(ctx context.Context, action port.ToolbarAction) {
	if s.bar.Snapshot().ShowToolbar {
		s.goHistory(ctx, action)
		return
	}
	s.bar.TapAction(action)
}

// ScrollToTop taps the status area.
func (s *Session) ScrollToTop() {
	s.do(func(context.Context) {
		s.bar.TapScrollToTop()
	})
}

// ApplyConfig rebuilds the theme registries and bar options from cfg.
// Bursts of calls collapse into one reload on the loop.
func (s *Session) ApplyConfig(cfg *config.Config) {
	s.reload.Post(reloadKey, func() {
		ctx := s.ctx
		bar, err := theme.NewBarRegistry(cfg)
		if err != nil {
			s.logger.Warn().Err(err).Msg("config reload rejected")
			s.event("config reload rejected")
			return
		}
		field, err := theme.NewFieldRegistry(cfg)
		if err != nil {
			s.logger.Warn().Err(err).Msg("config reload rejected")
			s.event("config reload rejected")
			return
		}
		s.barThemes.Swap(bar)
		s.fieldThemes.Swap(field)
		s.searchURL = cfg.AddressBar.SearchURL
		s.bar.SetOptions(component.OptionsFromConfig(cfg))

		s.reapplyTheme(ctx)
		s.event("config reloaded")
	})
	s.logger.Debug().Int("merged", s.reload.Merged(reloadKey)).Msg("config change queued")
}

// reapplyTheme re-reads the current theme from swapped registries, falling
// back to the normal theme when the current one is gone.
func (s *Session) reapplyTheme(ctx context.Context) {
	current := s.bar.ThemeName()
	err := s.bar.ApplyTheme(ctx, current)
	if err == nil {
		return
	}
	s.logger.Debug().Err(err).Str("theme", string(current)).Msg("theme dropped by reload")
	if err := s.bar.ApplyTheme(ctx, entity.ThemeNormal); err != nil {
		s.logger.Warn().Err(err).Msg("no theme applies after config reload")
		s.event("theme unavailable after reload")
	}
}

// Close detaches the bar from the window.
func (s *Session) Close() {
	s.loop.Post(func() {
		s.unregister()
		s.reload.Destroy()
		s.bar.Close()
	})
}

func (s *Session) visit(target string) {
	if s.historyPos < len(s.history) {
		s.history = s.history[:s.historyPos]
	}
	s.history = append(s.history, target)
	s.historyPos = len(s.history)
	s.updateNavigation()
}

func (s *Session) updateNavigation() {
	s.bar.UpdateNavigationState(s.historyPos > 1, s.historyPos < len(s.history))
}

func (s *Session) navigate(ctx context.Context, target string) {
	if s.tabs.Navigate(ctx, target) == nil {
		s.tabs.Open(ctx, target)
		s.bar.UpdateTabCount(ctx, s.tabs.TabCount(), true)
	}
	s.bar.SetURL(ctx, target)
	s.startLoad()
}

func (s *Session) goHistory(ctx context.Context, action port.ToolbarAction) {
	step := -1
	if action == port.ToolbarActionForward {
		step = 1
	}
	pos := s.historyPos + step
	if pos < 1 || pos > len(s.history) {
		return
	}
	s.historyPos = pos
	s.updateNavigation()
	s.navigate(ctx, s.history[pos-1])
	s.event("%s pressed", action)
}

func (s *Session) startLoad() {
	s.loadGen++
	gen := s.loadGen
	s.bar.SetLoading(true)
	s.bar.SetProgress(0.1)

	for i, p := range []float64{0.45, 0.8, 1} {
		s.sched.PostDelayed(time.Duration(i+1)*loadStep, func() {
			if gen != s.loadGen {
				return
			}
			s.bar.SetProgress(p)
			if p >= 1 {
				s.bar.SetLoading(false)
			}
		})
	}
}

func (s *Session) stopLoad() {
	s.loadGen++
	s.bar.SetLoading(false)
	s.bar.SetProgress(1)
}

// DidPressTabs implements port.AddressBarDelegate.
func (s *Session) DidPressTabs() {
	s.event("tab tray requested (%d tabs)", s.tabs.TabCount())
}

// DidPressReaderMode implements port.AddressBarDelegate.
func (s *Session) DidPressReaderMode() {
	next := entity.ReaderModeActive
	if s.bar.Snapshot().ReaderMode == entity.ReaderModeActive {
		next = entity.ReaderModeAvailable
	}
	s.bar.SetReaderModeState(next)
	s.event("reader mode %s", next)
}

// DidLongPressReaderMode implements port.AddressBarDelegate.
func (s *Session) DidLongPressReaderMode() bool {
	s.event("reading list add requested")
	return true
}

// DidPressStop implements port.AddressBarDelegate.
func (s *Session) DidPressStop() {
	s.stopLoad()
	s.event("stopped")
}

// DidPressReload implements port.AddressBarDelegate.
func (s *Session) DidPressReload() {
	s.startLoad()
	s.event("reloading")
}

// DidPressAction implements port.AddressBarDelegate.
func (s *Session) DidPressAction(action port.ToolbarAction) {
	switch action {
	case port.ToolbarActionBack, port.ToolbarActionForward:
		s.goHistory(s.ctx, action)
		return
	case port.ToolbarActionAddTab:
		s.openTab(s.ctx, defaultHome)
		return
	}
	s.event("%s pressed", action)
}

// DidEnterSearchMode implements port.AddressBarDelegate.
func (s *Session) DidEnterSearchMode() {
	s.event("search mode entered")
}

// DidLeaveSearchMode implements port.AddressBarDelegate.
func (s *Session) DidLeaveSearchMode(cancelled bool) {
	if cancelled {
		s.event("search cancelled")
		return
	}
	s.event("search mode left")
}

// DidLongPressLocation implements port.AddressBarDelegate.
func (s *Session) DidLongPressLocation() {
	actions := s.bar.AccessibilityActions()
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, a.Name)
	}
	s.event("location menu: %s", strings.Join(names, ", "))
}

// DidPressScrollToTop implements port.AddressBarDelegate.
func (s *Session) DidPressScrollToTop() {
	s.event("scrolled to top")
}

// DidEnterText implements port.AddressBarDelegate.
func (s *Session) DidEnterText(text string) {
	s.bar.SetAutocompleteSuggestion(s.suggest(text))
}

func (s *Session) suggest(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	candidates := make([]string, 0, len(s.history)+len(knownSites))
	for i := len(s.history) - 1; i >= 0; i-- {
		candidates = append(candidates, url.DisplayText(s.history[i]))
	}
	candidates = append(candidates, knownSites...)
	for _, c := range candidates {
		if len(c) > len(text) && strings.HasPrefix(strings.ToLower(c), lower) {
			return c
		}
	}
	return ""
}

// DidSubmitText implements port.AddressBarDelegate.
func (s *Session) DidSubmitText(text string) {
	target := url.BuildSearchURL(text, s.searchURL)
	if target == "" {
		return
	}

	s.visit(target)
	s.navigate(s.ctx, target)
	s.event("navigated to %s", url.ExtractDomain(target))
	s.sched.Post(func() {
		s.bar.LeaveSearch(s.ctx, false)
	})
}

// DisplayText implements port.AddressBarDelegate.
func (*Session) DisplayText(rawURL string) string {
	return url.DisplayText(rawURL)
}

// AccessibilityActions implements port.AddressBarDelegate.
func (s *Session) AccessibilityActions() []entity.AccessibilityAction {
	return []entity.AccessibilityAction{
		{Name: "Copy Address", Handler: func() bool {
			s.event("copied %s", s.bar.URL())
			return true
		}},
		{Name: "Paste & Go", Handler: func() bool { return false }},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
