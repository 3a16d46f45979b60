package tempo

import (
	"context"
	"time"
)

// Clock abstracts time operations for testing.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled callback. Stop cancels the callback if it
// has not fired yet and reports whether it did.
type Timer interface {
	Stop() bool
}

// realClock implements Clock using the standard time package.
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	return Wait(ctx, d)
}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	return time.AfterFunc(d, fn)
}
