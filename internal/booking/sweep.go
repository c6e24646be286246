package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// LocationSweeper iterates every location the facility selector offers, in
// form order, and claims the first resolvable slot.
type LocationSweeper struct {
	Scanner AvailabilityScanner
	Policy  RetryPolicy
	Timeout time.Duration
	Log     *slog.Logger
}

// Sweep visits each location once. The first claimed slot wins and ends the
// sweep immediately; locations are never compared against each other.
//
// The facility option set is re-read on every call; a previous cycle's set
// is never reused.
func (s LocationSweeper) Sweep(ctx context.Context, p Page) ClaimResult {
	log := logOrDefault(s.Log)

	options, err := p.QueryAll(facilityOptionSelector)
	if err != nil {
		log.Error("listing facility options", "err", err)
		return ClaimResult{Outcome: OutcomeError, Err: err.Error()}
	}
	// Snapshot value/label pairs up front: selecting a facility re-renders
	// the form and invalidates the option handles.
	locations := make([]Location, 0, len(options))
	for _, opt := range options {
		value, err := opt.GetAttribute("value")
		if err != nil {
			log.Error("reading facility option", "err", err)
			return ClaimResult{Outcome: OutcomeError, Err: err.Error()}
		}
		if value == "" {
			continue
		}
		label, err := opt.InnerText()
		if err != nil || label == "" {
			label = value
		}
		locations = append(locations, Location{Value: value, Label: label})
	}

	for _, loc := range locations {
		slot, booked, err := s.visit(p, loc)
		if err != nil {
			// The page is in an unknown state; results for the remaining
			// locations would be unreliable, so the whole sweep aborts.
			log.Error("sweep aborted", "location", loc.Label, "err", err)
			return ClaimResult{Outcome: OutcomeError, Location: loc, Err: err.Error()}
		}
		if booked {
			return ClaimResult{Outcome: OutcomeBooked, Location: loc, Slot: slot}
		}
		log.Info("no appointments available", "location", loc.Label)
		if err := Sleep(ctx, s.Policy.LocationDelay()); err != nil {
			return ClaimResult{Outcome: OutcomeError, Err: err.Error()}
		}
	}
	return ClaimResult{Outcome: OutcomeNoAvailability}
}

// visit selects loc on the facility control and tries to claim a slot
// there. booked=false with a nil error means this location simply had
// nothing to offer and the sweep should move on.
func (s LocationSweeper) visit(p Page, loc Location) (Slot, bool, error) {
	log := logOrDefault(s.Log).With("location", loc.Label)
	log.Info("checking location")

	if err := p.SelectOption(facilitySelectSelector, loc.Value); err != nil {
		return Slot{}, false, fmt.Errorf("selecting facility: %w", err)
	}
	if err := p.WaitForSelector(submitButtonSelector, s.Timeout); err != nil {
		if errors.Is(err, ErrTimeout) {
			// No submit control for this location at all.
			log.Info("submit control never appeared")
			return Slot{}, false, nil
		}
		return Slot{}, false, fmt.Errorf("waiting for submit control: %w", err)
	}

	submit, err := p.Query(submitButtonSelector)
	if err != nil || submit == nil {
		if err != nil {
			log.Warn("querying submit control", "err", err)
		}
		return Slot{}, false, nil
	}
	if disabled, err := submit.IsDisabled(); err != nil || disabled {
		if err != nil {
			log.Warn("reading submit control state", "err", err)
		}
		return Slot{}, false, nil
	}

	slot, ok := s.Scanner.Scan(p)
	if !ok {
		return Slot{}, false, nil
	}

	if err := p.ClickConfirming(submitButtonSelector, ConfirmAccept); err != nil {
		log.Warn("claim submit failed", "err", err)
		return Slot{}, false, nil
	}
	log.Info("claimed slot", "date", slot.Date, "time", slot.Time)
	return slot, true, nil
}
