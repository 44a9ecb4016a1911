package window

import (
	"context"
	"sync"
	"weak"

	"github.com/rs/zerolog"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
)

// Outcome reports what happened to a dispatched event.
type Outcome int

const (
	// Delivered means the event went through normal downstream dispatch.
	Delivered Outcome = iota
	// Suppressed means a touch filter claimed the event.
	Suppressed
)

func (o Outcome) String() string {
	if o == Suppressed {
		return "suppressed"
	}
	return "delivered"
}

// filterEntry holds a weak reference to a registered touch filter.
// id is the weak.Pointer itself: equal for equal referents.
type filterEntry struct {
	id      any
	resolve func() port.TouchFilter
}

// Broadcaster offers single-touch events to every registered filter before
// normal dispatch. Filters are held weakly and never need to unregister on
// teardown.
type Broadcaster struct {
	mu      sync.Mutex
	entries []filterEntry

	contextMenuHook port.EventHook
	newTabHook      port.EventHook
	topContext      port.TopContextProvider
	next            port.EventHandler

	logger zerolog.Logger
}

// BroadcasterConfig wires the broadcaster's collaborators.
type BroadcasterConfig struct {
	// ContextMenuHook and NewTabHook run first on every event, in that order.
	ContextMenuHook port.EventHook
	NewTabHook      port.EventHook
	// TopContext gates filtering; nil means never filter.
	TopContext port.TopContextProvider
	// Next receives events nobody claimed.
	Next port.EventHandler
}

// NewBroadcaster creates a broadcaster with an empty filter set.
func NewBroadcaster(logger zerolog.Logger, cfg BroadcasterConfig) *Broadcaster {
	return &Broadcaster{
		contextMenuHook: cfg.ContextMenuHook,
		newTabHook:      cfg.NewTabHook,
		topContext:      cfg.TopContext,
		next:            cfg.Next,
		logger:          logger.With().Str("component", "touch-broadcaster").Logger(),
	}
}

// Register adds observer to the broadcast set unless it is already present.
// Dead entries are pruned first. The returned func unregisters observer and
// may be ignored: a collected observer is dropped automatically.
func Register[T any, P interface {
	*T
	port.TouchFilter
}](b *Broadcaster, observer P) (unregister func()) {
	if observer == nil {
		return func() {}
	}

	wp := weak.Make((*T)(observer))
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked()
	for _, e := range b.entries {
		if e.id == any(wp) {
			return func() { b.remove(wp) }
		}
	}

	b.entries = append(b.entries, filterEntry{
		id: wp,
		resolve: func() port.TouchFilter {
			if p := wp.Value(); p != nil {
				return P(p)
			}
			return nil
		},
	})
	b.logger.Debug().Int("filters", len(b.entries)).Msg("touch filter registered")

	return func() { b.remove(wp) }
}

// Unregister removes observer from the broadcast set. Absent observers are
// ignored.
func Unregister[T any, P interface {
	*T
	port.TouchFilter
}](b *Broadcaster, observer P) {
	if observer == nil {
		return
	}
	b.remove(weak.Make((*T)(observer)))
}

func (b *Broadcaster) remove(id any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked()
	for i, e := range b.entries {
		if e.id == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// pruneLocked drops entries whose referent was collected.
func (b *Broadcaster) pruneLocked() {
	live := b.entries[:0]
	for _, e := range b.entries {
		if e.resolve() != nil {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(b.entries); i++ {
		b.entries[i] = filterEntry{}
	}
	b.entries = live
}

// Observers returns the live filters in registration order.
func (b *Broadcaster) Observers() []port.TouchFilter {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]port.TouchFilter, 0, len(b.entries))
	for _, e := range b.entries {
		if f := e.resolve(); f != nil {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the number of stored entries, including collected ones that
// have not been pruned yet.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Dispatch routes one event. The fixed hooks always run first. A single-touch
// event in the active top context is then offered to every live filter in
// registration order; if any claims it, downstream dispatch is skipped.
func (b *Broadcaster) Dispatch(ctx context.Context, ev entity.TouchEvent) Outcome {
	if b.contextMenuHook != nil {
		b.contextMenuHook.ObserveEvent(ctx, ev)
	}
	if b.newTabHook != nil {
		b.newTabHook.ObserveEvent(ctx, ev)
	}

	if point, ok := ev.SingleTouch(); ok && b.topContextActive() {
		handled := false
		// snapshot: filters may register or unregister while running
		for _, f := range b.Observers() {
			if f.FilterTouch(point) {
				handled = true
			}
		}
		if handled {
			b.logger.Trace().
				Int("touch_id", point.ID).
				Str("phase", point.Phase.String()).
				Msg("touch claimed by filter")
			return Suppressed
		}
	}

	if b.next != nil {
		b.next.HandleEvent(ctx, ev)
	}
	return Delivered
}

func (b *Broadcaster) topContextActive() bool {
	return b.topContext != nil && b.topContext.TopContextActive()
}
