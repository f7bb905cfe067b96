package services

import (
	"context"
	"time"
)

// Locker provides short-lived mutual exclusion across service instances.
type Locker interface {
	// Acquire tries once to take key for ttl. When acquired is false another holder owns the key.
	// The returned release func must be called by the holder once done.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, acquired bool, err error)
}
