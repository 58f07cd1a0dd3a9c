// Package timer implements the microwave countdown state machine and its display format.
//
// The controller never reads a clock. Callers pass a millisecond timestamp into Start, Open and
// Sample; timestamps must be non-decreasing across calls. The controller is not safe for
// concurrent use and expects a single owner, typically the host frame loop.
package timer

// Controller owns the countdown for one session
type Controller struct {
	observer Observer

	durationMs  int64
	remainingMs int64
	state       State

	// Valid only while running
	startedAtMs int64
	baseMs      int64 // remaining time when the current run started

	dinged bool // terminal event already emitted for this cycle
}

// New creates an idle controller armed with durationMs
// A nil observer is allowed. Negative durations are clamped to zero
func New(durationMs int64, observer Observer) *Controller {
	if durationMs < 0 {
		durationMs = 0
	}
	return &Controller{
		observer:    observer,
		durationMs:  durationMs,
		remainingMs: durationMs,
		state:       StateIdle,
	}
}

// SetObserver replaces the terminal event receiver
func (c *Controller) SetObserver(o Observer) {
	c.observer = o
}

// Select configures a new countdown length and resets to Idle
// Rejected while running so an in-flight countdown is never altered
func (c *Controller) Select(durationMs int64) error {
	if c.state == StateRunning {
		return &InvalidTransitionError{Op: "select", From: c.state}
	}
	if durationMs < 0 {
		return ErrNegativeDuration
	}

	c.durationMs = durationMs
	c.remainingMs = durationMs
	c.state = StateIdle
	c.dinged = false
	return nil
}

// Start begins or resumes the countdown from the current remaining time
// Calling Start while running is a no-op. An ended countdown needs Select first
func (c *Controller) Start(nowMs int64) error {
	switch c.state {
	case StateRunning:
		return nil
	case StateEnded:
		return &InvalidTransitionError{Op: "start", From: c.state}
	}

	c.startedAtMs = nowMs
	c.baseMs = c.remainingMs
	c.state = StateRunning
	c.dinged = false
	return nil
}

// Open freezes a running countdown and reports the remaining time to the observer
// In any other state the door is only inspected and the state is left untouched
func (c *Controller) Open(nowMs int64) Snapshot {
	if c.state == StateRunning {
		c.remainingMs = max(0, c.baseMs-(nowMs-c.startedAtMs))
		c.startedAtMs = 0
		c.baseMs = 0
		c.state = StateOpened
	}

	snap := c.Snapshot()
	if c.observer != nil {
		c.observer.DoorOpened(snap)
	}
	return snap
}

// Close shuts an opened door and returns to Idle without resuming
// Returns false when there was nothing to close
func (c *Controller) Close() bool {
	if c.state != StateOpened {
		return false
	}
	c.state = StateIdle
	return true
}

// Sample advances a running countdown to nowMs and returns the current view
// Reaching zero ends the countdown and fires Ding once for the cycle
func (c *Controller) Sample(nowMs int64) Snapshot {
	if c.state != StateRunning {
		return c.Snapshot()
	}

	remaining := c.baseMs - (nowMs - c.startedAtMs)
	if remaining > 0 {
		c.remainingMs = remaining
		return c.Snapshot()
	}

	c.remainingMs = 0
	c.startedAtMs = 0
	c.baseMs = 0
	c.state = StateEnded
	if !c.dinged {
		c.dinged = true
		if c.observer != nil {
			c.observer.Ding()
		}
	}
	return c.Snapshot()
}

// Snapshot returns the current view without advancing time
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		RemainingMs: c.remainingMs,
		DurationMs:  c.durationMs,
		State:       c.state,
	}
}

// State returns the current machine state
func (c *Controller) State() State {
	return c.state
}

// DurationMs returns the configured countdown length
func (c *Controller) DurationMs() int64 {
	return c.durationMs
}

// StartedAt returns the run start timestamp, ok is false unless running
func (c *Controller) StartedAt() (int64, bool) {
	if c.state != StateRunning {
		return 0, false
	}
	return c.startedAtMs, true
}
