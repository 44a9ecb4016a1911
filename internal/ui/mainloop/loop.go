// Package mainloop provides the single UI loop every toolbar operation runs on.
package mainloop

import (
	"context"
	"sync"
	"time"
)

// Loop is a FIFO task queue drained by one goroutine.
// Post is safe from any goroutine; tasks always run on the draining goroutine.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	closed bool
}

// New creates an empty loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues fn for the next tick.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// PostDelayed queues fn once d has elapsed. Non-positive delays behave like Post.
func (l *Loop) PostDelayed(d time.Duration, fn func()) {
	if d <= 0 {
		l.Post(fn)
		return
	}
	time.AfterFunc(d, func() { l.Post(fn) })
}

// RunOnce runs the tasks queued before the call and returns how many ran.
// Tasks posted while running wait for the next tick.
func (l *Loop) RunOnce() int {
	l.mu.Lock()
	tasks := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}

// Drain runs ticks until the queue is empty and returns the number of tasks run.
func (l *Loop) Drain() int {
	total := 0
	for {
		n := l.RunOnce()
		if n == 0 {
			return total
		}
		total += n
	}
}

// Len returns the number of queued tasks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Run drains the loop until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Drain()
		select {
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Close drops queued work and rejects further posts.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.queue = nil
	l.mu.Unlock()
}
