package tempo

import (
	"sync"
	"time"
)

// Throttler limits invocation of a function to at most once per interval,
// leading edge: the first call of a window executes immediately and
// synchronously, and every later call inside the window is dropped, never
// queued. Safe for concurrent use.
type Throttler[T any] struct {
	fn       func(T)
	interval time.Duration
	clock    Clock

	mu   sync.Mutex
	last time.Time
}

// NewThrottler creates a Throttler around fn. The window defaults to
// DefaultThrottleInterval and is set with WithInterval.
func NewThrottler[T any](fn func(T), opts ...Option) *Throttler[T] {
	cfg := config{
		interval: DefaultThrottleInterval,
		clock:    defaultClock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Throttler[T]{
		fn:       fn,
		interval: cfg.interval,
		clock:    cfg.clock,
	}
}

// Call executes fn(v) synchronously if at least one interval has elapsed
// since the last allowed call, or if no call has ever been allowed.
// Otherwise it returns immediately without executing fn. Elapsed time is
// measured from the last allowed call, not the last attempted one. Panics
// from fn propagate to the caller.
func (t *Throttler[T]) Call(v T) {
	t.mu.Lock()
	now := t.clock.Now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		t.mu.Unlock()
		return
	}
	t.last = now
	t.mu.Unlock()

	t.fn(v)
}

// Throttle wraps fn so it executes at most once per interval. Each wrapper
// returned holds its own independent state.
func Throttle[T any](fn func(T), opts ...Option) func(T) {
	return NewThrottler(fn, opts...).Call
}
