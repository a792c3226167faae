package clip

import (
	"log/slog"
	"time"
)

// Retry is a fixed-delay retry policy.
type Retry struct {
	Attempts int
	Delay    time.Duration

	// Sleep replaces time.Sleep, for tests.
	Sleep func(time.Duration)
}

// DefaultRetry covers other processes briefly holding the clipboard while
// they copy: 10 attempts, 100ms apart.
var DefaultRetry = Retry{Attempts: 10, Delay: 100 * time.Millisecond}

// Do calls fn until it succeeds or the attempts are used up, sleeping only
// between failures. It returns the last error.
func (r Retry) Do(fn func() error) error {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var err error
	for i := 1; ; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i >= attempts {
			return err
		}
		slog.Debug("clipboard busy, retrying", "attempt", i, "of", attempts, "err", err)
		sleep(r.Delay)
	}
}
