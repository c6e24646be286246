package booking

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// AttemptLog receives each finished cycle. Implemented by the Postgres
// attempt store; nil disables recording.
type AttemptLog interface {
	RecordCycle(ctx context.Context, rec CycleRecord) error
}

// Tracker observes state transitions and cycle results, for the status
// server. nil disables tracking.
type Tracker interface {
	SetState(s State)
	CycleFinished(rec CycleRecord)
}

// Orchestrator owns the retry loop: it acquires a fresh session each cycle,
// drives sign-in, navigation and the location sweep, and decides whether to
// stop or go around again after the fixed delay.
type Orchestrator struct {
	Sessions SessionFactory
	Auth     Authenticator
	Nav      Navigator
	Sweeper  LocationSweeper
	Policy   RetryPolicy

	Username string
	Password string

	Attempts AttemptLog
	Tracker  Tracker
	Log      *slog.Logger
}

// Run retries cycles until one books a slot or ctx is cancelled. There is
// no attempt cap: every transient failure (sign-in timeout, navigation
// error, empty sweep) waits the same fixed delay and starts over.
func (o *Orchestrator) Run(ctx context.Context) (CycleRecord, error) {
	for {
		rec := o.RunCycle(ctx)
		if rec.Outcome == OutcomeBooked {
			o.tracker().SetState(StateBooked)
			return rec, nil
		}
		if err := ctx.Err(); err != nil {
			return rec, err
		}

		o.tracker().SetState(StateRetrying)
		o.logger().Info("cycle finished without booking, retrying",
			"cycle", rec.CycleID, "outcome", rec.Outcome.String(), "delay", o.Policy.CycleDelay().String())
		if err := Sleep(ctx, o.Policy.CycleDelay()); err != nil {
			return rec, err
		}
	}
}

// RunCycle performs exactly one cycle and reports it to the attempt log and
// tracker.
func (o *Orchestrator) RunCycle(ctx context.Context) CycleRecord {
	rec := o.cycle(ctx)
	if o.Attempts != nil {
		if err := o.Attempts.RecordCycle(ctx, rec); err != nil {
			o.logger().Warn("recording cycle attempt", "cycle", rec.CycleID, "err", err)
		}
	}
	o.tracker().CycleFinished(rec)
	return rec
}

func (o *Orchestrator) cycle(ctx context.Context) CycleRecord {
	rec := CycleRecord{CycleID: uuid.NewString()}
	log := o.logger().With("cycle", rec.CycleID)
	log.Info("starting cycle")

	sess, err := o.Sessions.NewSession(ctx)
	if err != nil {
		log.Error("creating session", "err", err)
		rec.Outcome = OutcomeError
		rec.Err = err.Error()
		return rec
	}
	// Released exactly once per cycle, on every exit path.
	defer sess.Close()

	o.tracker().SetState(StateAuthenticating)
	if err := o.Auth.SignIn(sess, o.Username, o.Password); err != nil {
		log.Error("sign-in failed", "err", err)
		rec.Outcome = OutcomeError
		rec.Err = err.Error()
		return rec
	}

	o.tracker().SetState(StateNavigating)
	if err := o.Nav.ToAppointment(sess); err != nil {
		log.Error("navigation failed", "err", err)
		rec.Outcome = OutcomeError
		rec.Err = err.Error()
		return rec
	}

	o.tracker().SetState(StateSweeping)
	res := o.Sweeper.Sweep(ctx, sess)
	rec.ClaimResult = res
	switch res.Outcome {
	case OutcomeBooked:
		log.Info("appointment booked",
			"location", res.Location.Label, "date", res.Slot.Date, "time", res.Slot.Time)
	case OutcomeNoAvailability:
		log.Info("no availability at any location")
	case OutcomeError:
		log.Error("sweep failed", "err", res.Err)
	}
	return rec
}

func (o *Orchestrator) logger() *slog.Logger { return logOrDefault(o.Log) }

func (o *Orchestrator) tracker() Tracker {
	if o.Tracker == nil {
		return nopTracker{}
	}
	return o.Tracker
}

type nopTracker struct{}

func (nopTracker) SetState(State)            {}
func (nopTracker) CycleFinished(CycleRecord) {}
