package editor

import "sync"

// Coalescer is a single-slot buffer where newer values replace older ones.
// Producers Submit as often as they like; the consumer Takes at most one
// value per frame. It is safe for concurrent use.
type Coalescer[T any] struct {
	mu      sync.Mutex
	pending T
	ok      bool
}

// Submit stores v, replacing any pending value.
func (c *Coalescer[T]) Submit(v T) {
	c.mu.Lock()
	c.pending, c.ok = v, true
	c.mu.Unlock()
}

// Take removes and returns the pending value, if any.
func (c *Coalescer[T]) Take() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.pending, c.ok
	var zero T
	c.pending, c.ok = zero, false
	return v, ok
}

// Pending reports whether a value is waiting.
func (c *Coalescer[T]) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ok
}

// Cancel drops the pending value without delivering it.
func (c *Coalescer[T]) Cancel() {
	c.Take()
}
