package window

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/bnema/urlbar/internal/domain/entity"
)

const (
	// DefaultLongPressDuration is how long a contact must rest before the
	// native context menu is suppressed.
	DefaultLongPressDuration = 500 * time.Millisecond
	// longPressSlop is the movement, in points, tolerated during a long press.
	longPressSlop = 10.0
)

// ContextMenuSuppressor watches touches and reports when the native context
// menu should be suppressed because a long press is in progress. It never
// claims events.
type ContextMenuSuppressor struct {
	mu          sync.Mutex
	threshold   time.Duration
	start       entity.TouchPoint
	tracking    bool
	suppressing bool
	onLongPress func(point entity.TouchPoint)
}

// NewContextMenuSuppressor creates a suppressor. onLongPress, when set, runs
// once per long press.
func NewContextMenuSuppressor(threshold time.Duration, onLongPress func(point entity.TouchPoint)) *ContextMenuSuppressor {
	if threshold <= 0 {
		threshold = DefaultLongPressDuration
	}
	return &ContextMenuSuppressor{threshold: threshold, onLongPress: onLongPress}
}

// ObserveEvent implements port.EventHook.
func (s *ContextMenuSuppressor) ObserveEvent(_ context.Context, ev entity.TouchEvent) {
	point, single := ev.SingleTouch()

	s.mu.Lock()
	if !single {
		s.tracking, s.suppressing = false, false
		s.mu.Unlock()
		return
	}

	var fire bool
	switch point.Phase {
	case entity.TouchBegan:
		s.start, s.tracking, s.suppressing = point, true, false
	case entity.TouchMoved, entity.TouchStationary:
		if !s.tracking {
			break
		}
		if math.Hypot(point.X-s.start.X, point.Y-s.start.Y) > longPressSlop {
			s.tracking = false
			break
		}
		if !s.suppressing && point.Timestamp.Sub(s.start.Timestamp) >= s.threshold {
			s.suppressing, fire = true, true
		}
	case entity.TouchEnded, entity.TouchCancelled:
		s.tracking, s.suppressing = false, false
	}
	cb := s.onLongPress
	s.mu.Unlock()

	if fire && cb != nil {
		cb(point)
	}
}

// Suppressing reports whether a long press is in progress.
func (s *ContextMenuSuppressor) Suppressing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suppressing
}

// NewTabInterceptor remembers where the last single touch landed so an
// "open in new tab" action can originate from it.
type NewTabInterceptor struct {
	mu   sync.Mutex
	last entity.TouchPoint
	ok   bool
}

// ObserveEvent implements port.EventHook.
func (i *NewTabInterceptor) ObserveEvent(_ context.Context, ev entity.TouchEvent) {
	point, single := ev.SingleTouch()
	if !single {
		return
	}
	i.mu.Lock()
	i.last, i.ok = point, true
	i.mu.Unlock()
}

// Take returns the last touch and forgets it, so one touch seeds at most
// one new tab.
func (i *NewTabInterceptor) Take() (entity.TouchPoint, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	p, ok := i.last, i.ok
	i.last, i.ok = entity.TouchPoint{}, false
	return p, ok
}
