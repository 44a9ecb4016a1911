package port

import "time"

// AnimationOptions describes a time-based animation.
type AnimationOptions struct {
	Duration time.Duration
	Delay    time.Duration
	// Damping is the spring damping ratio in (0,1]; zero means no spring.
	Damping float64
	// InitialVelocity is the spring's initial velocity.
	InitialVelocity float64
}

// Animator schedules animations on the host's animation facility.
// The animations block applies the final state; completion always runs on the
// UI loop, with finished=false when the animation was interrupted.
// Animate never blocks.
type Animator interface {
	Animate(opts AnimationOptions, animations func(), completion func(finished bool))
}

// Scheduler re-enters the UI loop later. Both methods return immediately.
type Scheduler interface {
	// Post runs fn on the next loop tick.
	Post(fn func())
	// PostDelayed runs fn on the loop after at least d.
	PostDelayed(d time.Duration, fn func())
}
