// Package throttle paces outbound calls to rate-limited providers with a
// token bucket instead of fixed sleeps.
package throttle

import (
	"context"
	"time"

	"routeopt/internal/domain/service"
	"routeopt/internal/errors"

	"golang.org/x/time/rate"
)

// Clock abstracts time so waits can be tested without wall-clock delays.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

// RealClock returns a Clock backed by the system time.
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "throttle wait cancelled")
	case <-timer.C:
		return nil
	}
}

// rateThrottle allows one call immediately and spaces later calls by interval.
type rateThrottle struct {
	limiter *rate.Limiter
	clock   Clock
}

// New returns a Throttle that admits one call per interval. A non-positive
// interval disables throttling. A nil clock uses the system time.
func New(interval time.Duration, clock Clock) service.Throttle {
	if interval <= 0 {
		return Noop()
	}
	if clock == nil {
		clock = RealClock()
	}

	return &rateThrottle{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		clock:   clock,
	}
}

// Wait reserves the next slot and sleeps until it is due.
func (t *rateThrottle) Wait(ctx context.Context) error {
	now := t.clock.Now()
	reservation := t.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return errors.New("throttle reservation exceeds burst")
	}

	delay := reservation.DelayFrom(now)
	if delay <= 0 {
		return nil
	}

	if err := t.clock.Sleep(ctx, delay); err != nil {
		reservation.CancelAt(t.clock.Now())

		return err
	}

	return nil
}

type noopThrottle struct{}

// Noop returns a Throttle that never waits.
func Noop() service.Throttle {
	return noopThrottle{}
}

func (noopThrottle) Wait(ctx context.Context) error {
	return errors.WithStack(ctx.Err())
}
