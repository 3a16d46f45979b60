// Package tempo provides timing-control primitives for shaping asynchronous calls.
//
// tempo is a call-shaping package that provides:
//
//   - Debounce: Suppress repeated invocation until a quiet period elapses
//   - Throttle: Limit invocation to at most once per interval, leading edge
//   - Wait: A context-aware delay primitive
//   - Retry: Re-attempt a failing operation with a fixed delay and a
//     predicate-driven stop condition
//   - Injectable Clock: Control time in tests without real sleeps
//   - Zero Dependencies: Only the Go standard library
//
// The four operators are independent; nothing is shared between them beyond
// the Clock abstraction. Each wrapper produced by Debounce or Throttle owns
// its own state, and two wrappers never interfere with each other.
//
// # Debounce
//
// Debounce coalesces bursts of calls into one. Only the last call of a burst
// executes, one quiet period after it, with its argument:
//
//	save := tempo.Debounce(func(doc Document) {
//	    index.Flush(doc)
//	}, tempo.WithDelay(500*time.Millisecond))
//
//	save(doc1)
//	save(doc2) // supersedes doc1; only doc2 is flushed, 500ms from now
//
// Each new call cancels the pending invocation, so at most one is
// outstanding per wrapper at any time. The scheduled invocation is
// fire-and-forget; Debounce neither observes its result nor recovers its
// panics. Use NewDebouncer when the pending invocation must be released on
// teardown:
//
//	d := tempo.NewDebouncer(flush)
//	defer d.Stop()
//
// # Throttle
//
// Throttle drops calls that arrive too soon after the last allowed one. The
// first call always executes, immediately and synchronously in the caller;
// later calls inside the interval are dropped, never queued:
//
//	notify := tempo.Throttle(func(e Event) {
//	    metrics.Emit(e)
//	}, tempo.WithInterval(time.Second))
//
// The window is measured from the last allowed call. Because the accepted
// branch runs synchronously, panics from the wrapped function surface in the
// caller of the wrapper.
//
// # Wait
//
// Wait is a context-aware sleep:
//
//	if err := tempo.Wait(ctx, 250*time.Millisecond); err != nil {
//	    return err // context cancelled
//	}
//
// Wait(ctx, 0) resumes on the next timer tick. Wait never fails on its own.
//
// # Retry
//
// Retry invokes an operation until it succeeds, pausing a fixed delay
// between attempts. The retries argument is the number of RE-tries, so
// retries = 0 means exactly one attempt:
//
//	user, err := tempo.Retry(ctx, 3, func(ctx context.Context) (*User, error) {
//	    return client.Fetch(ctx, id)
//	}, tempo.WithDelay(100*time.Millisecond))
//
// On failure the error is surfaced unwrapped, either when the budget is
// exhausted or when the condition rejects it, preserving caller diagnostics:
//
//	err := tempo.Do(ctx, 5, ping, tempo.If(isTransient))
//
// The condition is only consulted while budget remains; once the budget is
// spent the failure is terminal regardless of the condition. The delay is
// applied after deciding to retry and before the next attempt — never before
// the first attempt and never after the final failure.
//
// # Terminal Errors
//
// Use Stop to end the loop from inside the operation, regardless of budget:
//
//	tempo.Retry(ctx, 5, func(ctx context.Context) (*User, error) {
//	    user, err := db.Get(ctx, id)
//	    if errors.Is(err, sql.ErrNoRows) {
//	        return nil, tempo.Stop(ErrNotFound) // don't retry "not found"
//	    }
//	    return user, err
//	})
//
// # Lifecycle Hooks
//
// Hooks provide observability without coupling to a specific logger or
// metrics system:
//
//	err := tempo.Do(ctx, 5, fn,
//	    tempo.OnRetry(func(ctx context.Context, attempt int, err error, delay time.Duration) {
//	        logger.Warn("retrying", "attempt", attempt, "delay", delay)
//	    }),
//	    tempo.OnExhausted(func(ctx context.Context, attempts int, err error) {
//	        logger.Error("gave up", "attempts", attempts, "error", err)
//	    }),
//	)
//
// # Defaults
//
// Defaults are applied at construction time: a 300ms quiet period for
// Debounce, a 300ms window for Throttle, and a 1s inter-attempt delay for
// Retry. All are overridden with WithDelay or WithInterval.
//
// # Testing
//
// Inject a fake clock to control time in tests:
//
//	type fakeClock struct {
//	    now    time.Time
//	    sleeps []time.Duration
//	}
//
//	func (c *fakeClock) Now() time.Time { return c.now }
//	func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
//	    c.sleeps = append(c.sleeps, d)
//	    c.now = c.now.Add(d)
//	    return ctx.Err()
//	}
//
//	_, _ = tempo.Retry(ctx, 3, fn, tempo.WithClock(clock))
//	assert.Len(t, clock.sleeps, 3) // 3 sleeps between 4 attempts
//
// For Debounce, a fake clock's AfterFunc can record scheduled callbacks and
// fire them when the test advances time.
package tempo
