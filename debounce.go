package tempo

import (
	"sync"
	"time"
)

// Debouncer suppresses repeated invocation of a function until calls stop
// arriving for a quiet period. Each Call supersedes the previous one: only
// the last call of a burst executes, with its argument, one quiet period
// after it. Safe for concurrent use.
type Debouncer[T any] struct {
	fn    func(T)
	delay time.Duration
	clock Clock

	mu    sync.Mutex
	timer Timer
}

// NewDebouncer creates a Debouncer around fn. The quiet period defaults to
// DefaultDebounceDelay and is set with WithDelay.
func NewDebouncer[T any](fn func(T), opts ...Option) *Debouncer[T] {
	cfg := config{
		delay: DefaultDebounceDelay,
		clock: defaultClock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Debouncer[T]{
		fn:    fn,
		delay: cfg.delay,
		clock: cfg.clock,
	}
}

// Call cancels any pending invocation and schedules fn(v) to run one quiet
// period from now. It returns immediately; the invocation is fire-and-forget
// and at most one is pending per Debouncer at any time.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.fn(v)
	})
}

// Stop cancels the pending invocation, if any. Call it when discarding the
// Debouncer so the scheduled callback does not outlive it.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Debounce wraps fn so it is only invoked after calls stop arriving for the
// quiet period. Each wrapper returned holds its own independent state.
func Debounce[T any](fn func(T), opts ...Option) func(T) {
	return NewDebouncer(fn, opts...).Call
}
