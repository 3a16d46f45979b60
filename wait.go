package tempo

import (
	"context"
	"time"
)

// Wait blocks until at least d has elapsed, then returns nil. A zero or
// negative d resumes on the next timer tick rather than synchronously. Wait
// never fails on its own; the only non-nil return is ctx.Err() when the
// context is cancelled before the delay elapses.
func Wait(ctx context.Context, d time.Duration) error {
	if d < 0 {
		d = 0
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
