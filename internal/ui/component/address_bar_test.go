package component

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/application/port/mocks"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/ui/anim"
	"github.com/bnema/urlbar/internal/ui/theme"
)

// fakeScheduler queues work until the test runs a tick.
type fakeScheduler struct {
	queue  []func()
	delays []time.Duration
}

func (s *fakeScheduler) Post(fn func()) {
	s.queue = append(s.queue, fn)
}

func (s *fakeScheduler) PostDelayed(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.queue = append(s.queue, fn)
}

// tick runs the work queued before the call.
func (s *fakeScheduler) tick() int {
	batch := s.queue
	s.queue = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

func (s *fakeScheduler) flush() {
	for len(s.queue) > 0 {
		s.tick()
	}
}

// heldAnimator applies animations at once and keeps completions until the
// test releases them.
type heldAnimator struct {
	opts        []port.AnimationOptions
	completions []func(bool)
}

func (h *heldAnimator) Animate(opts port.AnimationOptions, animations func(), completion func(bool)) {
	h.opts = append(h.opts, opts)
	if animations != nil {
		animations()
	}
	h.completions = append(h.completions, completion)
}

func (h *heldAnimator) complete(i int) {
	h.completions[i](true)
}

type testBar struct {
	bar      *AddressBar
	delegate *mocks.MockAddressBarDelegate
	sched    *fakeScheduler
	tabs     *int
}

func newTestBar(t *testing.T, animator port.Animator, opts Options) *testBar {
	t.Helper()

	barThemes, err := theme.NewRegistry("bar", theme.DefaultBarThemes())
	require.NoError(t, err)
	fieldThemes, err := theme.NewRegistry("field", theme.DefaultFieldThemes())
	require.NoError(t, err)

	tabs := 3
	delegate := mocks.NewMockAddressBarDelegate(t)
	sched := &fakeScheduler{}
	if animator == nil {
		animator = anim.Immediate{}
	}

	bar, err := NewAddressBar(context.Background(), AddressBarConfig{
		Delegate:    delegate,
		Tabs:        port.TabCountFunc(func() int { return tabs }),
		BarThemes:   barThemes,
		FieldThemes: fieldThemes,
		Animator:    animator,
		Scheduler:   sched,
		Options:     opts,
	})
	require.NoError(t, err)
	t.Cleanup(bar.Close)

	return &testBar{bar: bar, delegate: delegate, sched: sched, tabs: &tabs}
}

func TestNewAddressBar_InitialState(t *testing.T) {
	tb := newTestBar(t, nil, DefaultOptions())
	s := tb.bar.Snapshot()

	assert.Equal(t, entity.ModeDisplay, s.Mode)
	assert.False(t, s.FieldPresent)
	assert.False(t, s.CancelVisible)
	assert.Equal(t, "3", s.TabCountText)
	assert.Equal(t, entity.ThemeNormal, s.Theme)
	assert.Equal(t, "#f9f9fb", s.BackgroundColor)
}

func TestNewAddressBar_RequiresCollaborators(t *testing.T) {
	_, err := NewAddressBar(context.Background(), AddressBarConfig{})
	assert.Error(t, err)
}

func TestNewAddressBar_UnknownInitialTheme(t *testing.T) {
	barThemes, err := theme.NewRegistry("bar", theme.DefaultBarThemes())
	require.NoError(t, err)

	_, err = NewAddressBar(context.Background(), AddressBarConfig{
		Delegate:    mocks.NewMockAddressBarDelegate(t),
		Tabs:        port.TabCountFunc(func() int { return 1 }),
		BarThemes:   barThemes,
		FieldThemes: barThemes,
		Animator:    anim.Immediate{},
		Scheduler:   &fakeScheduler{},
		Options:     Options{InitialTheme: "bogus"},
	})
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
}

func TestEnterSearch_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()

	tb.bar.EnterSearch(ctx, "first", false)
	field := tb.bar.field
	tb.bar.EnterSearch(ctx, "second", true)
	tb.sched.flush()

	assert.Same(t, field, tb.bar.field)
	assert.Equal(t, "first", tb.bar.Snapshot().FieldText)
}

func TestLeaveSearch_InDisplayModeIsNoop(t *testing.T) {
	tb := newTestBar(t, nil, DefaultOptions())
	before := tb.bar.Snapshot()

	tb.bar.LeaveSearch(context.Background(), true)
	tb.bar.TapCancel(context.Background())

	assert.Equal(t, before, tb.bar.Snapshot())
}

func TestEnterSearch_PastedTextArrivesAfterFocus(t *testing.T) {
	ctx := context.Background()
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()

	tb.bar.EnterSearch(ctx, "http://x", true)

	s := tb.bar.Snapshot()
	assert.Equal(t, entity.ModeSearch, s.Mode)
	assert.True(t, s.FieldPresent)
	assert.Equal(t, "", s.FieldText)
	assert.True(t, s.FieldFocused)

	tb.sched.tick()

	s = tb.bar.Snapshot()
	assert.Equal(t, "http://x", s.FieldText)
	assert.True(t, s.FieldFocused)
}

func TestEnterSearch_TypedTextFocusesLater(t *testing.T) {
	ctx := context.Background()
	opts := DefaultOptions()
	opts.FocusDelay = 50 * time.Millisecond
	tb := newTestBar(t, nil, opts)
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()

	tb.bar.EnterSearch(ctx, "query", false)

	s := tb.bar.Snapshot()
	assert.Equal(t, "query", s.FieldText)
	assert.False(t, s.FieldFocused)
	assert.Equal(t, []time.Duration{50 * time.Millisecond}, tb.sched.delays)

	tb.sched.flush()
	assert.True(t, tb.bar.Snapshot().FieldFocused)
}

func TestEnterSearch_DelegateNotifiedBeforeAnimation(t *testing.T) {
	var order []string
	rec := &recordingAnimator{order: &order}
	tb := newTestBar(t, rec, DefaultOptions())
	tb.delegate.EXPECT().DidEnterSearchMode().Run(func() {
		order = append(order, "delegate")
	}).Return().Once()

	tb.bar.EnterSearch(context.Background(), "", false)

	assert.Equal(t, []string{"delegate", "animate"}, order)
}

type recordingAnimator struct {
	order *[]string
}

func (r *recordingAnimator) Animate(_ port.AnimationOptions, animations func(), completion func(bool)) {
	*r.order = append(*r.order, "animate")
	animations()
	completion(true)
}

func TestEnterSearch_ShowsCancelAndHidesActions(t *testing.T) {
	ctx := context.Background()
	opts := DefaultOptions()
	opts.ShowToolbar = false
	tb := newTestBar(t, nil, opts)
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()

	require.True(t, tb.bar.Snapshot().ActionButtonsVisible)

	tb.bar.TapLocation(ctx)
	tb.sched.flush()

	s := tb.bar.Snapshot()
	assert.True(t, s.CancelVisible)
	assert.False(t, s.ActionButtonsVisible)
	assert.True(t, s.LocationExpanded)
}

func TestLeaveSearch_RemovesFieldWhenAnimationStarts(t *testing.T) {
	ctx := context.Background()
	held := &heldAnimator{}
	opts := DefaultOptions()
	opts.ShowToolbar = false
	tb := newTestBar(t, held, opts)
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()
	tb.delegate.EXPECT().DidLeaveSearchMode(true).Return().Once()

	tb.bar.EnterSearch(ctx, "abc", false)
	held.complete(0)
	tb.sched.flush()

	tb.bar.TapCancel(ctx)

	s := tb.bar.Snapshot()
	assert.Equal(t, entity.ModeDisplay, s.Mode)
	assert.False(t, s.FieldPresent, "field is removed before the transition completes")

	held.complete(1)
	tb.sched.flush()

	s = tb.bar.Snapshot()
	assert.False(t, s.CancelVisible)
	assert.True(t, s.ActionButtonsVisible)
	assert.False(t, s.LocationExpanded)
}

func TestTransition_StaleCompletionIsDropped(t *testing.T) {
	ctx := context.Background()
	held := &heldAnimator{}
	tb := newTestBar(t, held, DefaultOptions())
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Times(2)
	tb.delegate.EXPECT().DidLeaveSearchMode(false).Return().Once()

	tb.bar.EnterSearch(ctx, "a", true)
	tb.bar.LeaveSearch(ctx, false)
	tb.bar.EnterSearch(ctx, "b", true)
	tb.sched.flush()

	held.complete(0)
	held.complete(1)
	assert.False(t, tb.bar.coalescer.Pending(reconcileViewsKey))

	held.complete(2)
	assert.True(t, tb.bar.coalescer.Pending(reconcileViewsKey))
	tb.sched.flush()

	s := tb.bar.Snapshot()
	assert.Equal(t, entity.ModeSearch, s.Mode)
	assert.True(t, s.FieldPresent)
	assert.Equal(t, "b", s.FieldText)
	assert.True(t, s.CancelVisible)
}

func TestEnterThenLeaveBeforeTick_DropsDeferredText(t *testing.T) {
	ctx := context.Background()
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()
	tb.delegate.EXPECT().DidLeaveSearchMode(false).Return().Once()

	tb.bar.EnterSearch(ctx, "http://x", true)
	tb.bar.LeaveSearch(ctx, false)
	tb.sched.flush()

	assert.False(t, tb.bar.Snapshot().FieldPresent)
}

func TestUpdateTabCount_SameTextIsNoop(t *testing.T) {
	ctx := context.Background()
	held := &heldAnimator{}
	tb := newTestBar(t, held, DefaultOptions())

	tb.bar.UpdateTabCount(ctx, 3, true)
	assert.Empty(t, held.opts)
	assert.Equal(t, "3", tb.bar.TabCountText())

	*tb.tabs = 150
	tb.bar.UpdateTabCount(ctx, 150, false)
	require.Equal(t, entity.InfinityTabCount, tb.bar.TabCountText())

	tb.bar.UpdateTabCount(ctx, 200, true)
	assert.Empty(t, held.opts)
	assert.False(t, tb.bar.Snapshot().Flipping)
}

func TestUpdateTabCount_ReconcilesWithProviderOnCompletion(t *testing.T) {
	ctx := context.Background()
	held := &heldAnimator{}
	opts := DefaultOptions()
	tb := newTestBar(t, held, opts)

	tb.bar.UpdateTabCount(ctx, 5, true)

	s := tb.bar.Snapshot()
	assert.True(t, s.Flipping)
	assert.Equal(t, "3", s.TabCountText)
	assert.Equal(t, "5", s.CloneText)
	require.Len(t, held.opts, 1)
	assert.Equal(t, opts.TabCountDuration, held.opts[0].Duration)
	assert.Equal(t, opts.TabCountDamping, held.opts[0].Damping)
	assert.Equal(t, flipOutAngle, tb.bar.badge.Rotation)

	*tb.tabs = 7
	held.complete(0)

	s = tb.bar.Snapshot()
	assert.False(t, s.Flipping)
	assert.Empty(t, s.CloneText)
	assert.Equal(t, "7", s.TabCountText)
	assert.Zero(t, tb.bar.badge.Rotation)
	assert.Equal(t, 1.0, tb.bar.badge.Alpha)
}

func TestUpdateTabCount_OverlappingRequestsWaitForReconcile(t *testing.T) {
	ctx := context.Background()
	held := &heldAnimator{}
	tb := newTestBar(t, held, DefaultOptions())

	tb.bar.UpdateTabCount(ctx, 4, true)
	tb.bar.UpdateTabCount(ctx, 5, true)
	tb.bar.UpdateTabCount(ctx, 6, false)

	require.Len(t, held.opts, 1)
	assert.Equal(t, "4", tb.bar.Snapshot().CloneText)

	*tb.tabs = 6
	held.complete(0)

	assert.Equal(t, "6", tb.bar.TabCountText())
	assert.False(t, tb.bar.Snapshot().Flipping)
}

func TestUpdateTabCount_ProviderReadOnlyWhenFlipCompletes(t *testing.T) {
	ctx := context.Background()
	barThemes, err := theme.NewRegistry("bar", theme.DefaultBarThemes())
	require.NoError(t, err)
	fieldThemes, err := theme.NewRegistry("field", theme.DefaultFieldThemes())
	require.NoError(t, err)

	provider := mocks.NewMockTabCountProvider(t)
	provider.EXPECT().TabCount().Return(2).Once()
	held := &heldAnimator{}

	bar, err := NewAddressBar(ctx, AddressBarConfig{
		Delegate:    mocks.NewMockAddressBarDelegate(t),
		Tabs:        provider,
		BarThemes:   barThemes,
		FieldThemes: fieldThemes,
		Animator:    held,
		Scheduler:   &fakeScheduler{},
		Options:     DefaultOptions(),
	})
	require.NoError(t, err)
	t.Cleanup(bar.Close)
	require.Equal(t, "2", bar.TabCountText())

	bar.UpdateTabCount(ctx, 4, true)
	bar.UpdateTabCount(ctx, 5, true)
	require.Len(t, held.opts, 1)

	provider.EXPECT().TabCount().Return(9).Once()
	held.complete(0)

	assert.Equal(t, "9", bar.TabCountText())
	assert.False(t, bar.Snapshot().Flipping)
}

func TestUpdateTabCount_NotAnimatedReadsProvider(t *testing.T) {
	held := &heldAnimator{}
	tb := newTestBar(t, held, DefaultOptions())
	*tb.tabs = 8

	tb.bar.UpdateTabCount(context.Background(), 4, false)

	assert.Empty(t, held.opts)
	assert.Equal(t, "8", tb.bar.TabCountText())
}

func TestApplyTheme_UnknownNameChangesNothing(t *testing.T) {
	ctx := context.Background()
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()
	tb.bar.EnterSearch(ctx, "x", false)
	tb.sched.flush()
	before := tb.bar.Snapshot()

	err := tb.bar.ApplyTheme(ctx, "bogus")

	require.ErrorIs(t, err, theme.ErrUnknownTheme)
	assert.Equal(t, before, tb.bar.Snapshot())
	assert.Equal(t, entity.ThemeNormal, tb.bar.location.Theme().Name)
	assert.Equal(t, entity.ThemeNormal, tb.bar.badge.Theme().Name)
}

func TestApplyTheme_UpdatesEverySubview(t *testing.T) {
	ctx := context.Background()
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()
	tb.bar.EnterSearch(ctx, "x", false)

	require.NoError(t, tb.bar.ApplyTheme(ctx, entity.ThemePrivate))

	s := tb.bar.Snapshot()
	assert.Equal(t, entity.ThemePrivate, s.Theme)
	assert.Equal(t, "#fbfbfe", s.TextColor)
	assert.Equal(t, "#fbfbfe", s.ButtonTintColor)
	assert.Equal(t, "#20123a", s.BackgroundColor)
	assert.Equal(t, entity.ThemePrivate, s.FieldTheme)
	assert.Equal(t, "#42414d", tb.bar.field.Theme().BackgroundColor)
	assert.Equal(t, entity.ThemePrivate, tb.bar.location.Theme().Name)
	assert.Equal(t, entity.ThemePrivate, tb.bar.badge.Theme().Name)
	assert.Equal(t, "#fbfbfe", tb.bar.cancel.Tint)
}

func TestApplyTheme_NewFieldUsesCurrentTheme(t *testing.T) {
	ctx := context.Background()
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()

	require.NoError(t, tb.bar.ApplyTheme(ctx, entity.ThemePrivate))
	tb.bar.EnterSearch(ctx, "", false)

	assert.Equal(t, entity.ThemePrivate, tb.bar.Snapshot().FieldTheme)
}

func TestSetURL_UsesDelegateFormatting(t *testing.T) {
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DisplayText("https://example.com/a").Return("example.com").Once()

	tb.bar.SetURL(context.Background(), "https://example.com/a")

	s := tb.bar.Snapshot()
	assert.Equal(t, "example.com", s.LocationText)
	assert.Equal(t, "https://example.com/a", s.URL)
}

func TestTapLocation_EditsRawURL(t *testing.T) {
	ctx := context.Background()
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DisplayText("https://example.com/a").Return("example.com")
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()

	tb.bar.SetURL(ctx, "https://example.com/a")
	tb.bar.TapLocation(ctx)

	assert.Equal(t, "https://example.com/a", tb.bar.Snapshot().FieldText)
}

func TestStopReload(t *testing.T) {
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DidPressReload().Return().Once()
	tb.delegate.EXPECT().DidPressStop().Return().Once()

	tb.bar.TapStopReload()
	tb.bar.SetLoading(true)
	tb.bar.TapStopReload()

	assert.True(t, tb.bar.Snapshot().Loading)
}

func TestReaderMode(t *testing.T) {
	tb := newTestBar(t, nil, DefaultOptions())

	tb.bar.TapReaderMode()
	assert.False(t, tb.bar.LongPressReaderMode())

	tb.delegate.EXPECT().DidPressReaderMode().Return().Once()
	tb.delegate.EXPECT().DidLongPressReaderMode().Return(true).Once()

	tb.bar.SetReaderModeState(entity.ReaderModeActive)
	tb.bar.TapReaderMode()
	assert.True(t, tb.bar.LongPressReaderMode())
	assert.Equal(t, entity.ReaderModeActive, tb.bar.Snapshot().ReaderMode)
	assert.True(t, tb.bar.location.reader.Selected)
}

func TestTapAction_RespectsVisibilityAndNavigationState(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowToolbar = true
	tb := newTestBar(t, nil, opts)

	// buttons live in the bottom toolbar
	tb.bar.TapAction(port.ToolbarActionShare)

	tb.bar.SetShowToolbar(false)
	assert.True(t, tb.bar.Snapshot().ActionButtonsVisible)

	tb.bar.TapAction(port.ToolbarActionBack)

	tb.delegate.EXPECT().DidPressAction(port.ToolbarActionBack).Return().Once()
	tb.delegate.EXPECT().DidPressAction(port.ToolbarActionShare).Return().Once()
	tb.bar.UpdateNavigationState(true, false)
	tb.bar.TapAction(port.ToolbarActionBack)
	tb.bar.TapAction(port.ToolbarActionForward)
	tb.bar.TapAction(port.ToolbarActionShare)

	s := tb.bar.Snapshot()
	assert.True(t, s.CanGoBack)
	assert.False(t, s.CanGoForward)
}

func TestPasswordManagerButtonCanBeDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowToolbar = false
	opts.ShowPasswordManager = false
	tb := newTestBar(t, nil, opts)

	s := tb.bar.Snapshot()
	assert.True(t, s.ActionButtonsVisible)
	assert.False(t, s.PasswordManagerShown)
	tb.bar.TapAction(port.ToolbarActionPasswordManager)
}

func TestTypingAutocompleteAndSubmit(t *testing.T) {
	ctx := context.Background()
	tb := newTestBar(t, nil, DefaultOptions())

	// ignored in display mode
	tb.bar.TypeText(ctx, "ignored")
	tb.bar.Submit(ctx)

	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()
	tb.delegate.EXPECT().DidEnterText("git").Return().Once()
	tb.delegate.EXPECT().DidSubmitText("github.com").Return().Once()

	tb.bar.EnterSearch(ctx, "", false)
	tb.bar.TypeText(ctx, "git")
	tb.bar.SetAutocompleteSuggestion("GitHub.com")

	s := tb.bar.Snapshot()
	assert.Equal(t, "git", s.FieldText)
	assert.Equal(t, "Hub.com", s.FieldAutocompletion)

	tb.bar.SetAutocompleteSuggestion("gitlab.com")
	tb.bar.SetAutocompleteSuggestion("github.com")
	tb.bar.Submit(ctx)
}

func TestDelegateForwarding(t *testing.T) {
	tb := newTestBar(t, nil, DefaultOptions())
	actions := []entity.AccessibilityAction{{Name: "Copy Address", Handler: func() bool { return true }}}
	tb.delegate.EXPECT().DidPressTabs().Return().Once()
	tb.delegate.EXPECT().DidLongPressLocation().Return().Once()
	tb.delegate.EXPECT().DidPressScrollToTop().Return().Once()
	tb.delegate.EXPECT().AccessibilityActions().Return(actions).Once()

	tb.bar.TapTabs()
	tb.bar.LongPressLocation()
	tb.bar.TapScrollToTop()

	got := tb.bar.AccessibilityActions()
	require.Len(t, got, 1)
	assert.Equal(t, "Copy Address", got[0].Name)
}

func TestLongPressLocation_IgnoredWhileSearching(t *testing.T) {
	tb := newTestBar(t, nil, DefaultOptions())
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()

	tb.bar.EnterSearch(context.Background(), "", false)
	tb.bar.LongPressLocation()
}

func TestSetProgress(t *testing.T) {
	tb := newTestBar(t, nil, DefaultOptions())

	tb.bar.SetProgress(0.5)
	s := tb.bar.Snapshot()
	assert.True(t, s.ProgressVisible)
	assert.Equal(t, 0.5, s.Progress)

	tb.bar.SetProgress(1)
	s = tb.bar.Snapshot()
	assert.False(t, s.ProgressVisible)
	assert.Zero(t, s.Progress)
}
