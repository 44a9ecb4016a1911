package entity

import "time"

// TouchPhase is the lifecycle phase of a single contact.
type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchEnded
	TouchCancelled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "began"
	case TouchMoved:
		return "moved"
	case TouchStationary:
		return "stationary"
	case TouchEnded:
		return "ended"
	case TouchCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TouchPoint is one active contact on the screen, in window coordinates.
type TouchPoint struct {
	ID        int
	X, Y      float64
	Phase     TouchPhase
	TapCount  int
	Timestamp time.Time
}

// TouchEvent is a discrete input event delivered by the host window.
// Touches holds every contact active at the time of the event.
type TouchEvent struct {
	Touches   []TouchPoint
	Timestamp time.Time
}

// SingleTouch returns the only active contact when exactly one is present.
func (e TouchEvent) SingleTouch() (TouchPoint, bool) {
	if len(e.Touches) != 1 {
		return TouchPoint{}, false
	}
	return e.Touches[0], true
}
