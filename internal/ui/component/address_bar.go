package component

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/logging"
	"github.com/bnema/urlbar/internal/ui/mainloop"
	"github.com/bnema/urlbar/internal/ui/theme"
)

// Flip angles for the tab count badge, in degrees.
const (
	flipInAngle  = -90.0
	flipOutAngle = 90.0
)

const reconcileViewsKey = "address-bar-views"

// AddressBarConfig wires the address bar's collaborators.
type AddressBarConfig struct {
	Delegate    port.AddressBarDelegate
	Tabs        port.TabCountProvider
	BarThemes   port.ThemeProvider
	FieldThemes port.ThemeProvider
	Animator    port.Animator
	Scheduler   port.Scheduler
	Options     Options
}

// AddressBar is the toolbar's address bar: a location view with a tab
// badge and action buttons in display mode, an editable field with a cancel
// button in search mode. Every method must be called on the UI loop.
type AddressBar struct {
	delegate    port.AddressBarDelegate
	tabs        port.TabCountProvider
	barThemes   port.ThemeProvider
	fieldThemes port.ThemeProvider
	animator    port.Animator
	scheduler   port.Scheduler
	coalescer   *mainloop.Coalescer
	opts        Options
	logger      zerolog.Logger

	mode     entity.AddressBarMode
	url      string
	expanded bool
	loading  bool
	bounds   Rect

	location *LocationView
	field    *LocationTextField
	badge    *TabCountBadge
	clone    *TabCountBadge
	progress *ProgressBar

	cancel          *Button
	stopReload      *Button
	tabsButton      *Button
	back            *Button
	forward         *Button
	share           *Button
	passwordManager *Button
	addTab          *Button

	// transitionGen increments on every mode change; completions from an
	// older transition are discarded.
	transitionGen uint64
	flipping      bool
	// pendingTabCount records counts requested while a flip runs.
	pendingTabCount int
	hasPendingCount bool

	themeName  entity.ThemeName
	barTheme   entity.Theme
	fieldTheme entity.Theme
}

// NewAddressBar creates an address bar in display mode with the initial theme
// applied and the badge showing the provider's current count.
func NewAddressBar(ctx context.Context, cfg AddressBarConfig) (*AddressBar, error) {
	if cfg.Delegate == nil || cfg.Tabs == nil || cfg.Animator == nil || cfg.Scheduler == nil {
		return nil, errors.New("address bar: delegate, tabs, animator and scheduler are required")
	}
	if cfg.BarThemes == nil || cfg.FieldThemes == nil {
		return nil, errors.New("address bar: theme registries are required")
	}

	log := logging.FromContext(ctx)

	a := &AddressBar{
		delegate:    cfg.Delegate,
		tabs:        cfg.Tabs,
		barThemes:   cfg.BarThemes,
		fieldThemes: cfg.FieldThemes,
		animator:    cfg.Animator,
		scheduler:   cfg.Scheduler,
		coalescer:   mainloop.NewCoalescer(cfg.Scheduler.Post),
		opts:        cfg.Options,
		logger:      log.With().Str("component", "address-bar").Logger(),

		mode:     entity.ModeDisplay,
		location: NewLocationView(),
		badge:    NewTabCountBadge(cfg.Tabs.TabCount()),
		progress: NewProgressBar(cfg.Scheduler),

		cancel:          newButton("cancel"),
		stopReload:      newButton("reload"),
		tabsButton:      newButton("tabs"),
		back:            newButton(port.ToolbarActionBack),
		forward:         newButton(port.ToolbarActionForward),
		share:           newButton(port.ToolbarActionShare),
		passwordManager: newButton(port.ToolbarActionPasswordManager),
		addTab:          newButton(port.ToolbarActionAddTab),
	}
	a.cancel.Hidden = true
	a.cancel.Alpha = 0
	a.back.Enabled = false
	a.forward.Enabled = false

	name := a.opts.InitialTheme
	if name == "" {
		name = entity.ThemeNormal
	}
	if err := a.ApplyTheme(ctx, name); err != nil {
		return nil, err
	}
	a.updateViewsForSearchModeAndToolbarChanges()

	return a, nil
}

// Mode returns the current mode.
func (a *AddressBar) Mode() entity.AddressBarMode {
	return a.mode
}

// InSearchMode reports whether the editable field is showing.
func (a *AddressBar) InSearchMode() bool {
	return a.mode == entity.ModeSearch
}

// SetURL shows url in the location view, formatted by the delegate.
func (a *AddressBar) SetURL(ctx context.Context, url string) {
	a.url = url
	a.location.SetText(a.delegate.DisplayText(url))
	logging.FromContext(ctx).Trace().Str("url", url).Msg("address bar url set")
}

// URL returns the raw location.
func (a *AddressBar) URL() string {
	return a.url
}

// TapLocation enters search mode with the current location as typed text.
func (a *AddressBar) TapLocation(ctx context.Context) {
	a.EnterSearch(ctx, a.url, false)
}

// TapCancel leaves search mode as a cancellation.
func (a *AddressBar) TapCancel(ctx context.Context) {
	a.LeaveSearch(ctx, true)
}

// EnterSearch switches to search mode showing text. Pasted text is set one
// loop tick after focus so the host does not select it all. Calling it while
// already searching does nothing.
func (a *AddressBar) EnterSearch(ctx context.Context, text string, pasted bool) {
	log := logging.FromContext(ctx)
	if a.mode == entity.ModeSearch {
		log.Debug().Msg("enter search ignored: already in search mode")
		return
	}

	a.mode = entity.ModeSearch
	a.transitionGen++
	gen := a.transitionGen

	a.delegate.DidEnterSearchMode()

	if a.field == nil {
		a.field = NewLocationTextField()
		a.field.ApplyTheme(a.fieldTheme)
	}
	field := a.field

	if pasted {
		field.SetText("")
		field.Focus()
		a.scheduler.Post(func() {
			if a.field == field {
				field.SetText(text)
			}
		})
	} else {
		field.SetText(text)
		focus := func() {
			if a.field == field && a.mode == entity.ModeSearch {
				field.Focus()
			}
		}
		if a.opts.FocusDelay > 0 {
			a.scheduler.PostDelayed(a.opts.FocusDelay, focus)
		} else {
			a.scheduler.Post(focus)
		}
	}

	log.Debug().Bool("pasted", pasted).Uint64("transition", gen).Msg("entering search mode")
	a.animateTransition(gen, true)
}

// LeaveSearch switches back to display mode. The field is removed as soon as
// the transition starts. Calling it in display mode does nothing.
func (a *AddressBar) LeaveSearch(ctx context.Context, cancelled bool) {
	log := logging.FromContext(ctx)
	if a.mode == entity.ModeDisplay {
		log.Debug().Msg("leave search ignored: already in display mode")
		return
	}

	a.mode = entity.ModeDisplay
	a.transitionGen++
	gen := a.transitionGen

	if a.field != nil {
		a.field.Blur()
	}

	log.Debug().Bool("cancelled", cancelled).Uint64("transition", gen).Msg("leaving search mode")
	a.animateTransition(gen, false)
	a.delegate.DidLeaveSearchMode(cancelled)
}

func (a *AddressBar) animateTransition(gen uint64, search bool) {
	if search {
		a.cancel.Hidden = false
		a.cancel.Alpha = 0
	}

	a.animator.Animate(a.opts.transitionAnimation(), func() {
		if !search {
			a.field = nil
		}
		a.applySearchModeLayout(search)
	}, func(finished bool) {
		if gen != a.transitionGen {
			a.logger.Trace().Uint64("transition", gen).Msg("stale transition completion dropped")
			return
		}
		a.coalescer.Post(reconcileViewsKey, a.updateViewsForSearchModeAndToolbarChanges)
	})
}

// applySearchModeLayout sets the animated attributes for the target mode.
func (a *AddressBar) applySearchModeLayout(search bool) {
	a.expanded = search
	if search {
		a.cancel.Alpha = 1
	} else {
		a.cancel.Alpha = 0
	}
	a.setActionButtonsHidden(a.actionButtonsHidden(search))
	a.location.Hidden = search
	a.tabsButton.Hidden = search
	a.stopReload.Hidden = search
}

func (a *AddressBar) actionButtonsHidden(search bool) bool {
	return search || a.opts.ShowToolbar
}

func (a *AddressBar) actionButtons() []*Button {
	return []*Button{a.back, a.forward, a.share, a.passwordManager, a.addTab}
}

func (a *AddressBar) setActionButtonsHidden(hidden bool) {
	for _, b := range a.actionButtons() {
		b.Hidden = hidden
	}
	if !a.opts.ShowPasswordManager {
		a.passwordManager.Hidden = true
	}
}

// updateViewsForSearchModeAndToolbarChanges makes every view's visibility
// match the current mode and toolbar state.
func (a *AddressBar) updateViewsForSearchModeAndToolbarChanges() {
	search := a.mode == entity.ModeSearch
	a.applySearchModeLayout(search)
	a.cancel.Hidden = !search
	if !search {
		a.field = nil
	}
}

// SetShowToolbar records whether the secondary toolbar is visible and moves
// the action buttons accordingly.
func (a *AddressBar) SetShowToolbar(show bool) {
	a.opts.ShowToolbar = show
	a.updateViewsForSearchModeAndToolbarChanges()
}

// SetOptions replaces timing options, keeping the toolbar state.
func (a *AddressBar) SetOptions(opts Options) {
	opts.ShowToolbar = a.opts.ShowToolbar
	a.opts = opts
	a.updateViewsForSearchModeAndToolbarChanges()
}

// UpdateTabCount shows count on the badge with a flip animation when
// animated. The displayed value is always reconciled against the tab
// provider once the flip completes. Counts requested during a flip are left
// to that reconciliation.
func (a *AddressBar) UpdateTabCount(ctx context.Context, count int, animated bool) {
	log := logging.FromContext(ctx)
	text := entity.TabCountText(count)
	if text == a.badge.Text() {
		return
	}
	if a.flipping {
		a.pendingTabCount, a.hasPendingCount = count, true
		log.Trace().Int("count", count).Msg("tab count deferred to running flip")
		return
	}

	a.flipping = true
	a.clone = a.badge.Clone(count)
	a.clone.Rotation = flipInAngle

	completion := func(bool) {
		a.clone = nil
		a.badge.resetTransform()
		a.flipping = false

		actual := a.tabs.TabCount()
		if a.hasPendingCount {
			a.logger.Trace().
				Int("requested", a.pendingTabCount).
				Int("actual", actual).
				Msg("tab count reconciled after flip")
			a.hasPendingCount = false
		}
		a.badge.SetCount(actual)
	}

	if !animated {
		completion(true)
		return
	}

	clone := a.clone
	a.animator.Animate(a.opts.tabCountAnimation(), func() {
		clone.Rotation = 0
		a.badge.Rotation = flipOutAngle
		a.badge.Alpha = 0
	}, completion)
}

// TabCountText returns the displayed tab count.
func (a *AddressBar) TabCountText() string {
	return a.badge.Text()
}

// ApplyTheme applies the named theme to the bar, the location view, the
// field and the tab badge. Unknown names change nothing and return an error
// wrapping theme.ErrUnknownTheme.
func (a *AddressBar) ApplyTheme(ctx context.Context, name entity.ThemeName) error {
	log := logging.FromContext(ctx)

	bar, ok := a.barThemes.Theme(name)
	if !ok {
		err := fmt.Errorf("address bar theme %q: %w", name, theme.ErrUnknownTheme)
		log.Warn().Err(err).Msg("theme not applied")
		return err
	}
	field, ok := a.fieldThemes.Theme(name)
	if !ok {
		err := fmt.Errorf("location field theme %q: %w", name, theme.ErrUnknownTheme)
		log.Warn().Err(err).Msg("theme not applied")
		return err
	}

	a.themeName = name
	a.barTheme = bar
	a.fieldTheme = field

	a.location.ApplyTheme(bar)
	a.badge.ApplyTheme(bar)
	if a.clone != nil {
		a.clone.ApplyTheme(bar)
	}
	if a.field != nil {
		a.field.ApplyTheme(field)
	}
	for _, b := range append(a.actionButtons(), a.cancel, a.stopReload, a.tabsButton) {
		b.ApplyTheme(bar)
	}

	log.Debug().Str("theme", string(name)).Msg("theme applied")
	return nil
}

// ThemeName returns the applied theme's name.
func (a *AddressBar) ThemeName() entity.ThemeName {
	return a.themeName
}

// SetLoading switches the stop/reload button.
func (a *AddressBar) SetLoading(loading bool) {
	a.loading = loading
	if loading {
		a.stopReload.Action = "stop"
	} else {
		a.stopReload.Action = "reload"
	}
}

// TapStopReload stops a loading page or reloads a loaded one.
func (a *AddressBar) TapStopReload() {
	if a.loading {
		a.delegate.DidPressStop()
		return
	}
	a.delegate.DidPressReload()
}

// SetProgress updates the page-load progress bar.
func (a *AddressBar) SetProgress(progress float64) {
	a.progress.SetProgress(progress)
}

// SetReaderModeState updates the reader mode button.
func (a *AddressBar) SetReaderModeState(state entity.ReaderModeState) {
	a.location.SetReaderModeState(state)
}

// TapReaderMode forwards a reader mode tap when the button is available.
func (a *AddressBar) TapReaderMode() {
	if a.location.ReaderModeState() == entity.ReaderModeUnavailable {
		return
	}
	a.delegate.DidPressReaderMode()
}

// LongPressReaderMode returns whether the delegate consumed the long press.
func (a *AddressBar) LongPressReaderMode() bool {
	if a.location.ReaderModeState() == entity.ReaderModeUnavailable {
		return false
	}
	return a.delegate.DidLongPressReaderMode()
}

// UpdateNavigationState enables the back and forward buttons.
func (a *AddressBar) UpdateNavigationState(canGoBack, canGoForward bool) {
	a.back.Enabled = canGoBack
	a.forward.Enabled = canGoForward
}

// TapAction forwards a tap on a visible, enabled action button.
func (a *AddressBar) TapAction(action port.ToolbarAction) {
	for _, b := range a.actionButtons() {
		if b.Action != action {
			continue
		}
		if b.Hidden || !b.Enabled {
			return
		}
		a.delegate.DidPressAction(action)
		return
	}
}

// TapTabs forwards a tap on the tabs button.
func (a *AddressBar) TapTabs() {
	a.delegate.DidPressTabs()
}

// LongPressLocation forwards a long press on the read-only location.
func (a *AddressBar) LongPressLocation() {
	if a.mode != entity.ModeDisplay {
		return
	}
	a.delegate.DidLongPressLocation()
}

// TapScrollToTop forwards a tap on the bar's status area.
func (a *AddressBar) TapScrollToTop() {
	a.delegate.DidPressScrollToTop()
}

// TypeText replaces the field's text and notifies the delegate. Ignored
// outside search mode.
func (a *AddressBar) TypeText(ctx context.Context, text string) {
	if a.field == nil {
		return
	}
	a.field.SetText(text)
	a.delegate.DidEnterText(text)
	logging.FromContext(ctx).Trace().Int("len", len(text)).Msg("location text changed")
}

// SetAutocompleteSuggestion offers an inline completion for the typed text.
func (a *AddressBar) SetAutocompleteSuggestion(suggestion string) {
	if a.field == nil {
		return
	}
	a.field.SetAutocompleteSuggestion(suggestion)
}

// Submit sends the field's text, completion included, to the delegate.
func (a *AddressBar) Submit(ctx context.Context) {
	if a.field == nil {
		return
	}
	text := a.field.FullText()
	logging.FromContext(ctx).Debug().Int("len", len(text)).Msg("location submitted")
	a.delegate.DidSubmitText(text)
}

// AccessibilityActions returns the delegate's actions for the location.
func (a *AddressBar) AccessibilityActions() []entity.AccessibilityAction {
	return a.delegate.AccessibilityActions()
}

// Snapshot captures the visible state.
func (a *AddressBar) Snapshot() AddressBarState {
	s := AddressBarState{
		Mode:                 a.mode,
		URL:                  a.url,
		LocationText:         a.location.Text(),
		ReaderMode:           a.location.ReaderModeState(),
		LocationExpanded:     a.expanded,
		TabCountText:         a.badge.Text(),
		Flipping:             a.flipping,
		CancelVisible:        a.cancel.Visible(),
		ActionButtonsVisible: !a.back.Hidden,
		PasswordManagerShown: !a.passwordManager.Hidden,
		CanGoBack:            a.back.Enabled,
		CanGoForward:         a.forward.Enabled,
		Loading:              a.loading,
		ShowToolbar:          a.opts.ShowToolbar,
		Progress:             a.progress.Value(),
		ProgressVisible:      !a.progress.Hidden,
		Theme:                a.themeName,
		TintColor:            a.barTheme.TintColor,
		TextColor:            a.barTheme.TextColor,
		ButtonTintColor:      a.barTheme.ButtonTintColor,
		BackgroundColor:      a.barTheme.BackgroundColor,
	}
	if a.clone != nil {
		s.CloneText = a.clone.Text()
	}
	if a.field != nil {
		s.FieldPresent = true
		s.FieldText = a.field.Text()
		s.FieldAutocompletion = a.field.Autocompletion()
		s.FieldFocused = a.field.Focused()
		s.FieldTheme = a.field.Theme().Name
	}
	return s
}

// Close drops pending view reconciliation.
func (a *AddressBar) Close() {
	a.coalescer.Destroy()
}
