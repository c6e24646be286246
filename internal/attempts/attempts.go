// Package attempts records cycle outcomes to Postgres. It is purely an
// audit log: nothing reads it back to resume a run.
package attempts

import (
	"context"
	"time"

	"github.com/example/usvsched/internal/booking"
	"github.com/example/usvsched/internal/db"
)

type Repo struct {
	db *db.DB
}

func NewRepo(d *db.DB) *Repo { return &Repo{db: d} }

func (r *Repo) RecordCycle(ctx context.Context, rec booking.CycleRecord) error {
	var errText *string
	if rec.Err != "" {
		errText = &rec.Err
	}
	return r.db.Exec(ctx, `
INSERT INTO cycle_attempts(cycle_id, outcome, location_value, location_label, slot_date, slot_time, error)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.CycleID, rec.Outcome.String(), rec.Location.Value, rec.Location.Label,
		rec.Slot.Date, rec.Slot.Time, errText)
}

type Attempt struct {
	CycleID   string
	Outcome   string
	Location  string
	SlotDate  string
	SlotTime  string
	Error     *string
	CreatedAt time.Time
}

func (r *Repo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := r.db.Query(ctx, `
SELECT cycle_id, outcome, location_label, slot_date, slot_time, error, created_at
FROM cycle_attempts
ORDER BY created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.CycleID, &a.Outcome, &a.Location, &a.SlotDate, &a.SlotTime, &a.Error, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
