package tempo

import (
	"context"
	"errors"
	"time"
)

// Condition determines whether a failure should be retried.
type Condition func(error) bool

// OnRetryFunc is called before each retry sleep. attempt is 1-based.
type OnRetryFunc func(ctx context.Context, attempt int, err error, delay time.Duration)

// OnSuccessFunc is called when the function succeeds. attempts is the total
// number of invocations, including the successful one.
type OnSuccessFunc func(ctx context.Context, attempts int)

// OnExhaustedFunc is called when the retry budget is exhausted.
type OnExhaustedFunc func(ctx context.Context, attempts int, err error)

// ErrNoOutcome is returned if the retry loop exits without producing a
// success or a failure. It cannot happen with the loop as written and exists
// as a safety net.
var ErrNoOutcome = errors.New("tempo: retry loop exited without an outcome")

// package-level defaults to avoid allocation
var (
	defaultClock     = realClock{}
	defaultCondition = func(error) bool { return true }
)

// Retry invokes fn until it succeeds, waiting a fixed delay between
// attempts. retries is the number of RE-tries: the total number of
// invocations is retries+1, so Retry with retries = 0 invokes fn exactly
// once. Negative values are treated as 0.
//
// On success the value is returned immediately with no further attempts and
// no delay. On failure the error is surfaced unwrapped, either when the
// budget is exhausted or when the configured condition rejects it; the
// budget check takes precedence and the condition is never evaluated once
// the budget is spent.
//
// The delay between attempts defaults to DefaultRetryDelay and is set with
// WithDelay. If the context is cancelled during the delay, the most recent
// failure is returned.
func Retry[T any](ctx context.Context, retries int, fn func(context.Context) (T, error), opts ...Option) (T, error) {
	cfg := config{
		delay:     DefaultRetryDelay,
		clock:     defaultClock,
		condition: defaultCondition,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if retries < 0 {
		retries = 0
	}

	var zero T
	for attempt := 0; attempt <= retries; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			if cfg.onSuccess != nil {
				cfg.onSuccess(ctx, attempt+1)
			}
			return v, nil
		}

		// Check for terminal error
		var stopped *stopError
		if errors.As(err, &stopped) {
			return zero, stopped.Unwrap()
		}

		if attempt == retries {
			if cfg.onExhausted != nil {
				cfg.onExhausted(ctx, attempt+1, err)
			}
			return zero, err
		}

		if cfg.condition != nil && !cfg.condition(err) {
			return zero, err
		}

		if cfg.onRetry != nil {
			cfg.onRetry(ctx, attempt+1, err, cfg.delay)
		}

		if serr := cfg.clock.Sleep(ctx, cfg.delay); serr != nil {
			return zero, err
		}
	}

	return zero, ErrNoOutcome
}

// Do is the error-only form of Retry, for operations that produce no value.
func Do(ctx context.Context, retries int, fn func(context.Context) error, opts ...Option) error {
	_, err := Retry(ctx, retries, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, opts...)
	return err
}
