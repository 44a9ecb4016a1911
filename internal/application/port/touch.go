package port

import (
	"context"

	"github.com/bnema/urlbar/internal/domain/entity"
)

// TouchFilter is implemented by collaborators that want to see single-touch
// events before normal dispatch. Returning true claims the event and
// suppresses downstream dispatch; other filters are still invoked.
type TouchFilter interface {
	FilterTouch(point entity.TouchPoint) bool
}

// EventHook observes every event before filtering. Hooks cannot suppress
// dispatch.
type EventHook interface {
	ObserveEvent(ctx context.Context, ev entity.TouchEvent)
}

// EventHandler performs normal downstream dispatch into the view hierarchy.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev entity.TouchEvent)
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, ev entity.TouchEvent)

// HandleEvent calls f(ctx, ev).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, ev entity.TouchEvent) {
	f(ctx, ev)
}

// TopContextProvider reports whether the designated top-level UI context
// (the browser screen) is the one currently frontmost.
type TopContextProvider interface {
	TopContextActive() bool
}

// TopContextFunc adapts a function to TopContextProvider.
type TopContextFunc func() bool

// TopContextActive calls f().
func (f TopContextFunc) TopContextActive() bool {
	return f()
}
