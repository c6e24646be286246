package booking

import "log/slog"

// AvailabilityScanner resolves one claimable slot on the scheduling form for
// the currently selected location.
type AvailabilityScanner struct {
	Log *slog.Logger
}

// Scan returns the earliest offered slot, or false when the location has
// nothing. "Earliest" means the first non-empty time option in document
// order; the form's own ordering is trusted as chronological and no time
// values are compared.
//
// Scan never fails: interaction errors degrade to "no slot" with a warning,
// so one broken location cannot end the sweep.
func (s AvailabilityScanner) Scan(p Page) (Slot, bool) {
	log := logOrDefault(s.Log)

	if busy, err := p.Query(busyIndicatorSelector); err == nil && busy != nil {
		if visible, verr := busy.IsVisible(); verr == nil && visible {
			log.Info("system busy, no date or time available")
			return Slot{}, false
		}
	}

	if err := p.Click(dateFieldSelector); err != nil {
		log.Warn("opening date picker", "err", err)
		return Slot{}, false
	}
	dateField, err := p.Query(dateFieldSelector)
	if err != nil || dateField == nil {
		log.Warn("date field missing after click", "err", err)
		return Slot{}, false
	}
	date, err := dateField.GetAttribute("value")
	if err != nil {
		log.Warn("reading date value", "err", err)
		return Slot{}, false
	}
	if date == "" {
		log.Info("no available date offered")
		return Slot{}, false
	}

	timeSelect, err := p.Query(timeSelectSelector)
	if err != nil || timeSelect == nil {
		log.Warn("time dropdown missing", "err", err)
		return Slot{}, false
	}
	options, err := p.QueryAll(timeOptionSelector)
	if err != nil {
		log.Warn("listing time options", "err", err)
		return Slot{}, false
	}
	for _, opt := range options {
		value, err := opt.GetAttribute("value")
		if err != nil {
			log.Warn("reading time option", "err", err)
			return Slot{}, false
		}
		if value == "" {
			continue
		}
		if err := timeSelect.SelectOption(value); err != nil {
			log.Warn("selecting time option", "time", value, "err", err)
			return Slot{}, false
		}
		log.Info("slot resolved", "date", date, "time", value)
		return Slot{Date: date, Time: value}, true
	}

	log.Info("no available times offered")
	return Slot{}, false
}
