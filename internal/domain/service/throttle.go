package service

import "context"

// Throttle paces calls to rate-limited upstream APIs.
type Throttle interface {
	// Wait blocks until the next call may proceed or ctx is done.
	Wait(ctx context.Context) error
}
