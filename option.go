package tempo

import "time"

// Default values applied at construction time.
const (
	// DefaultDebounceDelay is the quiet period used by Debounce when
	// WithDelay is not given.
	DefaultDebounceDelay = 300 * time.Millisecond

	// DefaultThrottleInterval is the window used by Throttle when
	// WithInterval is not given.
	DefaultThrottleInterval = 300 * time.Millisecond

	// DefaultRetryDelay is the pause between attempts used by Retry when
	// WithDelay is not given.
	DefaultRetryDelay = time.Second
)

// config holds the configuration for all operators. Each constructor seeds
// its own defaults and reads only the fields it understands; options that an
// operator has no use for are ignored by it.
type config struct {
	delay    time.Duration
	interval time.Duration
	clock    Clock

	condition   Condition
	onRetry     OnRetryFunc
	onSuccess   OnSuccessFunc
	onExhausted OnExhaustedFunc
}

// Option configures an operator.
type Option func(*config)

// WithDelay sets the debounce quiet period or the retry inter-attempt delay,
// depending on which operator the option is given to.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithInterval sets the throttle window.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// If sets the condition that determines whether a failure should be retried.
// If the condition returns false, the retry loop stops immediately and the
// failure is surfaced as-is.
func If(cond Condition) Option {
	return func(c *config) {
		c.condition = cond
	}
}

// IfNot sets a condition where matching failures are NOT retried.
// This is equivalent to If(Not(cond)).
func IfNot(cond Condition) Option {
	return If(Not(cond))
}

// Not inverts a condition.
func Not(cond Condition) Condition {
	return func(err error) bool {
		return !cond(err)
	}
}

// OnRetry sets a hook that is called before each retry sleep.
func OnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// OnSuccess sets a hook that is called when the function succeeds.
func OnSuccess(fn OnSuccessFunc) Option {
	return func(c *config) {
		c.onSuccess = fn
	}
}

// OnExhausted sets a hook that is called when the retry budget is exhausted.
func OnExhausted(fn OnExhaustedFunc) Option {
	return func(c *config) {
		c.onExhausted = fn
	}
}
