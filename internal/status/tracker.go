// Package status exposes a read-only view of the retry loop over HTTP.
package status

import (
	"sync"
	"time"

	"github.com/example/usvsched/internal/booking"
)

// Tracker collects state transitions and cycle results from the
// orchestrator. Safe for concurrent use: the orchestrator writes while the
// status server reads.
type Tracker struct {
	mu      sync.Mutex
	started time.Time
	state   booking.State
	cycles  int
	last    *booking.CycleRecord
	booked  *booking.CycleRecord
}

func NewTracker() *Tracker {
	return &Tracker{started: time.Now()}
}

func (t *Tracker) SetState(s booking.State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
}

func (t *Tracker) CycleFinished(rec booking.CycleRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cycles++
	t.last = &rec
	if rec.Outcome == booking.OutcomeBooked {
		t.booked = &rec
	}
}

type Snapshot struct {
	State         string      `json:"state"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	Cycles        int         `json:"cycles"`
	LastOutcome   string      `json:"last_outcome,omitempty"`
	LastError     string      `json:"last_error,omitempty"`
	Booked        *BookedSlot `json:"booked,omitempty"`
}

type BookedSlot struct {
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		State:         t.state.String(),
		UptimeSeconds: int64(time.Since(t.started).Seconds()),
		Cycles:        t.cycles,
	}
	if t.last != nil {
		s.LastOutcome = t.last.Outcome.String()
		s.LastError = t.last.Err
	}
	if t.booked != nil {
		s.Booked = &BookedSlot{
			Location: t.booked.Location.Label,
			Date:     t.booked.Slot.Date,
			Time:     t.booked.Slot.Time,
		}
	}
	return s
}
