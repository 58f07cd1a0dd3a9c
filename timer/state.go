package timer

// State is the countdown machine state
type State int

const (
	StateIdle State = iota
	StateRunning
	StateOpened
	StateEnded
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOpened:
		return "opened"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Snapshot is the controller view handed to the presentation layer
type Snapshot struct {
	RemainingMs int64
	DurationMs  int64
	State       State
}

// Started reports whether any countdown time has been consumed since the last select
func (s Snapshot) Started() bool {
	return s.State == StateRunning || s.State == StateEnded || s.RemainingMs < s.DurationMs
}

// Observer receives terminal events from the controller
type Observer interface {
	// Ding fires once per Running -> Ended transition
	Ding()
	// DoorOpened fires on every Open call with the frozen or current snapshot
	DoorOpened(Snapshot)
}
