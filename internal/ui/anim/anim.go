// Package anim provides port.Animator implementations for hosts that do not
// have a native animation facility.
package anim

import (
	"sync"
	"time"

	"github.com/bnema/urlbar/internal/application/port"
)

// Normal holds state for an animation between two states that
// is not invertible.
type Normal struct {
	time.Duration
	StartTime time.Time
}

// Start marks the beginning of the animation.
func (n *Normal) Start(now time.Time) {
	n.StartTime = now
}

// Progress returns the progress through the animation in [0,1].
func (n *Normal) Progress(now time.Time) float64 {
	if n.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(n.StartTime)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= n.Duration {
		return 1
	}
	return float64(elapsed) / float64(n.Duration)
}

// Immediate applies animations and completes synchronously.
// Used when motion is reduced and in tests.
type Immediate struct{}

// Animate runs animations then completion(true) before returning.
func (Immediate) Animate(_ port.AnimationOptions, animations func(), completion func(bool)) {
	if animations != nil {
		animations()
	}
	if completion != nil {
		completion(true)
	}
}

// Timed applies the final state right away and runs completion on the
// scheduler once the delay and duration have elapsed. Hosts poll InFlight
// and Progress to draw the animation part way.
type Timed struct {
	scheduler port.Scheduler
	now       func() time.Time

	mu     sync.Mutex
	active map[uint64]*Normal
	nextID uint64
}

// NewTimed creates a timed animator posting completions to scheduler.
func NewTimed(scheduler port.Scheduler) *Timed {
	return &Timed{
		scheduler: scheduler,
		now:       time.Now,
		active:    make(map[uint64]*Normal),
	}
}

// Animate implements port.Animator.
func (t *Timed) Animate(opts port.AnimationOptions, animations func(), completion func(bool)) {
	total := opts.Delay + opts.Duration
	if total <= 0 {
		Immediate{}.Animate(opts, animations, completion)
		return
	}

	t.mu.Lock()
	t.nextID++
	id := t.nextID
	n := &Normal{Duration: opts.Duration}
	n.Start(t.now().Add(opts.Delay))
	t.active[id] = n
	t.mu.Unlock()

	if animations != nil {
		animations()
	}

	t.scheduler.PostDelayed(total, func() {
		t.mu.Lock()
		delete(t.active, id)
		t.mu.Unlock()
		if completion != nil {
			completion(true)
		}
	})
}

// InFlight returns the number of animations not yet completed.
func (t *Timed) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

// Progress returns the least advanced in-flight animation's progress,
// or 1 when nothing is animating.
func (t *Timed) Progress() float64 {
	now := t.now()
	t.mu.Lock()
	defer t.mu.Unlock()

	p := 1.0
	for _, n := range t.active {
		if v := n.Progress(now); v < p {
			p = v
		}
	}
	return p
}
