package omdb

import (
	"context"
	"time"
)

const (
	// DefaultMaxAttempts bounds detail lookups, counting the first request.
	DefaultMaxAttempts = 3
	// DefaultTimeout applies to each HTTP request when no client is injected.
	DefaultTimeout = 10 * time.Second
)

// sleepWithContext blocks for the given duration, returning early if the
// context is cancelled.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
