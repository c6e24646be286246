package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDelays(t *testing.T) {
	d := FixedDelays{Cycle: time.Minute, Location: 10 * time.Second}
	assert.Equal(t, time.Minute, d.CycleDelay())
	assert.Equal(t, 10*time.Second, d.LocationDelay())
}

func TestSleepZeroReturnsImmediately(t *testing.T) {
	require.NoError(t, Sleep(context.Background(), 0))
}

func TestSleepHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)

	// A cancelled context short-circuits even a zero sleep.
	assert.ErrorIs(t, Sleep(ctx, 0), context.Canceled)
}

func TestSleepElapses(t *testing.T) {
	start := time.Now()
	require.NoError(t, Sleep(context.Background(), 5*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}
