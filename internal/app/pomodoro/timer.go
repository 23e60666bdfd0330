// Package pomodoro implements the focus timer as an explicit state
// machine. The timer is pure: callers feed it elapsed time through Tick
// and own the real clock, which keeps every transition testable.
package pomodoro

import (
	"time"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// State is the timer's lifecycle phase.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// DefaultSession is the classic pomodoro work interval.
const DefaultSession = 25 * time.Minute

// Timer is a single-session focus timer.
//
// Transitions: idle → running (Start), running → paused (Pause),
// paused → running (Resume), running → completed (Tick reaching zero),
// any → idle (Abort). No other transition exists.
type Timer struct {
	state     State
	session   time.Duration
	remaining time.Duration
}

// New creates an idle timer. A non-positive session falls back to the
// default interval.
func New(session time.Duration) *Timer {
	if session <= 0 {
		session = DefaultSession
	}
	return &Timer{state: StateIdle, session: session, remaining: session}
}

// State returns the current lifecycle phase.
func (t *Timer) State() State { return t.state }

// Remaining returns the time left in the session.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Session returns the configured session length.
func (t *Timer) Session() time.Duration { return t.session }

// Start begins a session from idle or completed. Starting a running or
// paused timer is an error, never a silent restart.
func (t *Timer) Start() error {
	switch t.state {
	case StateRunning, StatePaused:
		return domain.ErrTimerAlreadyRunning
	}
	t.state = StateRunning
	t.remaining = t.session
	return nil
}

// Pause freezes a running session.
func (t *Timer) Pause() error {
	if t.state != StateRunning {
		return domain.ErrTimerNotRunning
	}
	t.state = StatePaused
	return nil
}

// Resume continues a paused session.
func (t *Timer) Resume() error {
	if t.state != StatePaused {
		return domain.ErrTimerNotPaused
	}
	t.state = StateRunning
	return nil
}

// Tick advances a running timer by elapsed time and reports whether the
// session completed on this call. Ticks in any other state are ignored,
// so a stray tick after pause or completion cannot corrupt the phase.
func (t *Timer) Tick(elapsed time.Duration) bool {
	if t.state != StateRunning || elapsed <= 0 {
		return false
	}
	t.remaining -= elapsed
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.state = StateCompleted
	return true
}

// Abort cancels the session and returns to idle. An aborted session
// finalizes no minutes.
func (t *Timer) Abort() {
	t.state = StateIdle
	t.remaining = t.session
}

// FinalizedMinutes returns the whole study minutes a completed session
// contributes. Only a completed session counts; anything else is zero.
func (t *Timer) FinalizedMinutes() int {
	if t.state != StateCompleted {
		return 0
	}
	return int(t.session / time.Minute)
}
