package booking

import (
	"context"
	"log/slog"
	"time"
)

// RetryPolicy supplies the pacing delays for the retry loop. It exists as
// an interface so tests can run the control flow with zero delays.
type RetryPolicy interface {
	// CycleDelay is the pause between full attempt cycles.
	CycleDelay() time.Duration
	// LocationDelay is the pause after each location during a sweep. It
	// rate-limits requests against the remote system, nothing more.
	LocationDelay() time.Duration
}

// FixedDelays retries on constant intervals. The appointment pool changes
// slowly, so there is no backoff escalation and no attempt cap.
type FixedDelays struct {
	Cycle    time.Duration
	Location time.Duration
}

func (d FixedDelays) CycleDelay() time.Duration    { return d.Cycle }
func (d FixedDelays) LocationDelay() time.Duration { return d.Location }

// Sleep blocks for d or until ctx is cancelled.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func logOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
