package mainloop

import "sync"

// burst is the work recorded for one key between a Post and its tick.
type burst struct {
	fn     func()
	merged int
}

// Coalescer collapses repeated posts under the same key into a single loop
// task that runs the most recent callback.
type Coalescer struct {
	mu      sync.Mutex
	post    func(func())
	bursts  map[string]*burst
	stopped bool
}

// NewCoalescer returns a coalescer scheduling through post, usually Loop.Post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: nil post")
	}
	return &Coalescer{post: post, bursts: make(map[string]*burst)}
}

// Post replaces the callback recorded for key. Only the first post of a
// burst schedules a task.
func (c *Coalescer) Post(key string, fn func()) {
	if key == "" || fn == nil {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	if b, ok := c.bursts[key]; ok {
		b.fn = fn
		b.merged++
		c.mu.Unlock()
		return
	}
	c.bursts[key] = &burst{fn: fn}
	c.mu.Unlock()

	c.post(func() { c.flush(key) })
}

func (c *Coalescer) flush(key string) {
	c.mu.Lock()
	b, ok := c.bursts[key]
	if c.stopped || !ok {
		c.mu.Unlock()
		return
	}
	delete(c.bursts, key)
	c.mu.Unlock()

	b.fn()
}

// Pending reports whether a task for key is waiting for its tick.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.bursts[key]
	return ok
}

// Merged returns how many posts for key were folded into the pending task.
func (c *Coalescer) Merged(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.bursts[key]; ok {
		return b.merged
	}
	return 0
}

// Destroy discards pending work. Posts after Destroy are dropped.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.stopped = true
	clear(c.bursts)
	c.mu.Unlock()
}
