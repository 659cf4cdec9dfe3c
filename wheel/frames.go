package wheel

import (
	"context"
	"sync"
)

// Frames is the animation frame source. Wait blocks until the next frame or
// until ctx is done.
type Frames interface {
	Wait(ctx context.Context) error
}

// Clock is a Frames driven by the UI loop: every Tick releases all goroutines
// currently waiting.
type Clock struct {
	mu   sync.Mutex
	next chan struct{}
}

// NewClock creates a clock with no pending frame.
func NewClock() *Clock {
	return &Clock{next: make(chan struct{})}
}

// Tick signals a new frame.
func (c *Clock) Tick() {
	c.mu.Lock()
	close(c.next)
	c.next = make(chan struct{})
	c.mu.Unlock()
}

func (c *Clock) Wait(ctx context.Context) error {
	c.mu.Lock()
	next := c.next
	c.mu.Unlock()
	select {
	case <-next:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Immediate never waits. Animations run to completion without yielding.
type Immediate struct{}

func (Immediate) Wait(ctx context.Context) error {
	return ctx.Err()
}
