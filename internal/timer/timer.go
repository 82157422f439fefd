// Package timer tracks elapsed wall-clock time for an in-progress entry.
// State is per-session and never persisted; elapsed time is computed on
// demand so callers choose their own refresh cadence.
package timer

import "time"

// State is the timer's lifecycle position.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Timer is a start/stop/reset stopwatch owned by a single session.
// It is not safe for concurrent use.
type Timer struct {
	state       State
	startedAt   time.Time
	accumulated time.Duration

	now func() time.Time
}

// New returns an idle Timer using the wall clock.
func New() *Timer {
	return &Timer{now: time.Now}
}

// NewWithClock returns an idle Timer using a caller-supplied clock.
func NewWithClock(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// State returns the current lifecycle state.
func (t *Timer) State() State {
	return t.state
}

// Start begins timing from Idle or Stopped. Starting a running timer is
// a no-op and must not disturb the recorded start instant.
func (t *Timer) Start() {
	if t.state == Running {
		return
	}
	t.startedAt = t.now()
	t.state = Running
}

// Stop freezes the elapsed time. Stopping is only meaningful while
// Running; otherwise it is a no-op.
func (t *Timer) Stop() {
	if t.state != Running {
		return
	}
	t.accumulated = t.now().Sub(t.startedAt)
	t.startedAt = time.Time{}
	t.state = Stopped
}

// Reset returns the timer to Idle with zero accumulated time. Valid from
// any state.
func (t *Timer) Reset() {
	t.state = Idle
	t.startedAt = time.Time{}
	t.accumulated = 0
}

// Elapsed returns the time tracked so far: live while Running, the
// frozen amount while Stopped, zero while Idle.
func (t *Timer) Elapsed() time.Duration {
	switch t.state {
	case Running:
		return t.now().Sub(t.startedAt)
	case Stopped:
		return t.accumulated
	default:
		return 0
	}
}
