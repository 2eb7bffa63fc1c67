package throttle

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances its time by the requested duration on every Sleep.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)

	return nil
}

func TestRateThrottle_SpacesCalls(t *testing.T) {
	clock := newFakeClock()
	th := New(200*time.Millisecond, clock)
	ctx := context.Background()

	for range 4 {
		require.NoError(t, th.Wait(ctx))
	}

	// First call passes immediately, the other three wait one interval each
	require.Len(t, clock.sleeps, 3)
	for _, d := range clock.sleeps {
		assert.InDelta(t, float64(200*time.Millisecond), float64(d), float64(time.Millisecond))
	}
}

func TestRateThrottle_NoWaitAfterIdle(t *testing.T) {
	clock := newFakeClock()
	th := New(100*time.Millisecond, clock)
	ctx := context.Background()

	require.NoError(t, th.Wait(ctx))

	clock.mu.Lock()
	clock.now = clock.now.Add(time.Second)
	clock.mu.Unlock()

	require.NoError(t, th.Wait(ctx))
	assert.Empty(t, clock.sleeps)
}

func TestRateThrottle_CancelledContext(t *testing.T) {
	clock := newFakeClock()
	th := New(time.Second, clock)

	require.NoError(t, th.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, th.Wait(ctx))
}

func TestNew_NonPositiveIntervalIsNoop(t *testing.T) {
	th := New(0, nil)
	_, ok := th.(noopThrottle)
	assert.True(t, ok)
	assert.NoError(t, th.Wait(context.Background()))
}

func TestRealClock_SleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RealClock().Sleep(ctx, time.Hour)
	assert.Error(t, err)
}
