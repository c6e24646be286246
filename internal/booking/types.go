package booking

// Location is one facility option competing for the same slot pool. The set
// of locations is re-read from the form every cycle, never cached.
type Location struct {
	Value string // stable option value token
	Label string // human-readable facility name
}

// Slot is a concrete booking target. It is actionable only when both fields
// resolved to non-empty values.
type Slot struct {
	Date string
	Time string
}

func (s Slot) Actionable() bool { return s.Date != "" && s.Time != "" }

// CycleOutcome is the result of one full authenticate/navigate/sweep cycle.
type CycleOutcome int

const (
	OutcomeBooked CycleOutcome = iota
	OutcomeNoAvailability
	OutcomeError
)

func (o CycleOutcome) String() string {
	switch o {
	case OutcomeBooked:
		return "booked"
	case OutcomeNoAvailability:
		return "no_availability"
	default:
		return "error"
	}
}

// ClaimResult is what a sweep reports back: where and what was booked, or
// why nothing was.
type ClaimResult struct {
	Outcome  CycleOutcome
	Location Location
	Slot     Slot
	Err      string
}

// CycleRecord is one cycle's result, tagged for logs and the attempt store.
type CycleRecord struct {
	CycleID string
	ClaimResult
}

// State is the orchestrator's current position in a cycle, published to the
// status tracker.
type State int

const (
	StateIdle State = iota
	StateAuthenticating
	StateNavigating
	StateSweeping
	StateRetrying
	StateBooked
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateNavigating:
		return "navigating"
	case StateSweeping:
		return "sweeping"
	case StateRetrying:
		return "retrying"
	case StateBooked:
		return "booked"
	default:
		return "idle"
	}
}
