package component

import (
	"time"

	"github.com/bnema/urlbar/internal/application/port"
)

const (
	// Animation step size - how much to increment per frame
	progressStep = 0.02
	// Animation interval
	progressInterval = 16 * time.Millisecond // ~60fps
)

// ProgressBar is the slim page-load indicator along the bottom of the bar.
// It animates towards the target value in small steps on the UI loop.
type ProgressBar struct {
	View

	scheduler    port.Scheduler
	currentValue float64
	targetValue  float64
	animating    bool
	// generation invalidates scheduled steps after Hide.
	generation uint64
}

// NewProgressBar creates a hidden progress bar. A nil scheduler jumps
// straight to the target.
func NewProgressBar(scheduler port.Scheduler) *ProgressBar {
	v := newView()
	v.Hidden = true
	return &ProgressBar{View: v, scheduler: scheduler}
}

// SetProgress sets the target value in [0,1]. Large jumps and completion
// apply immediately; completion also hides the bar.
func (pb *ProgressBar) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	if progress >= 1 {
		pb.Hide()
		return
	}

	pb.Hidden = false
	pb.targetValue = progress

	diff := progress - pb.currentValue
	if diff > 0.3 || diff < 0 || pb.scheduler == nil {
		pb.currentValue = progress
		return
	}

	if !pb.animating {
		pb.animating = true
		pb.scheduleStep(pb.generation)
	}
}

func (pb *ProgressBar) scheduleStep(gen uint64) {
	pb.scheduler.PostDelayed(progressInterval, func() {
		if gen != pb.generation {
			return
		}
		if pb.currentValue >= pb.targetValue {
			pb.animating = false
			return
		}

		pb.currentValue += progressStep
		if pb.currentValue > pb.targetValue {
			pb.currentValue = pb.targetValue
		}

		if pb.currentValue < pb.targetValue {
			pb.scheduleStep(gen)
			return
		}
		pb.animating = false
	})
}

// Hide hides the bar and resets its values.
func (pb *ProgressBar) Hide() {
	pb.Hidden = true
	pb.generation++
	pb.animating = false
	pb.currentValue = 0
	pb.targetValue = 0
}

// Value returns the displayed fraction.
func (pb *ProgressBar) Value() float64 {
	return pb.currentValue
}
