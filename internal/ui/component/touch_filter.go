package component

import (
	"context"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/logging"
)

var _ port.TouchFilter = (*AddressBar)(nil)

// Rect is a frame in window coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// SetBounds records where the host laid out the bar.
func (a *AddressBar) SetBounds(r Rect) {
	a.bounds = r
}

// Bounds returns the bar's frame.
func (a *AddressBar) Bounds() Rect {
	return a.bounds
}

// FilterTouch claims touches that land outside the bar while searching; a
// touch starting there leaves search mode as a cancellation on the next
// loop tick.
func (a *AddressBar) FilterTouch(point entity.TouchPoint) bool {
	if a.mode != entity.ModeSearch || a.bounds.Contains(point.X, point.Y) {
		return false
	}

	if point.Phase == entity.TouchBegan {
		ctx := logging.WithContext(context.Background(), a.logger)
		a.scheduler.Post(func() {
			a.LeaveSearch(ctx, true)
		})
	}
	return true
}
