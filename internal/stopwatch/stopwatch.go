// Package stopwatch implements the elapsed-time accounting for the app:
// a small state machine over Stopped, Running and Paused that tracks time
// across run segments. Elapsed time is always derived from timestamps, so
// display refresh rate has no effect on accuracy.
package stopwatch

import "time"

// State is the lifecycle state of a Stopwatch.
type State int

const (
	Stopped State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Stopwatch accumulates elapsed time across run segments. The zero value is
// not usable; construct with New. All operations are total: calls that do
// not apply in the current state are no-ops rather than errors.
//
// Invariant: Elapsed() == accumulated + (now - segmentStart) while Running,
// and exactly accumulated otherwise. Non-negative, non-decreasing while
// Running, constant while Paused or Stopped.
type Stopwatch struct {
	state        State
	accumulated  time.Duration
	segmentStart time.Time
	now          func() time.Time
	onChange     func()
}

// New returns a stopped Stopwatch with zero elapsed time.
func New() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// NewWithClock returns a Stopwatch that reads time from the given clock.
// Used by tests to make elapsed-time arithmetic deterministic.
func NewWithClock(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// OnChange registers a callback fired after every state transition.
// No-op calls (e.g. Start while Running) do not fire it.
func (s *Stopwatch) OnChange(fn func()) {
	s.onChange = fn
}

// Start begins a new run segment from Stopped or Paused. Calling Start
// while already Running is a strict no-op: the current segment start is
// preserved, so no accrued time is lost.
func (s *Stopwatch) Start() {
	if s.state == Running {
		return
	}
	s.segmentStart = s.now()
	s.state = Running
	s.notify()
}

// Pause ends the current run segment, folding it into the accumulated
// total. No-op unless Running.
func (s *Stopwatch) Pause() {
	if s.state != Running {
		return
	}
	s.accumulated += s.now().Sub(s.segmentStart)
	s.state = Paused
	s.notify()
}

// Toggle pauses if Running, otherwise starts.
func (s *Stopwatch) Toggle() {
	if s.state == Running {
		s.Pause()
	} else {
		s.Start()
	}
}

// Reset zeroes the accumulated time and returns to Stopped, from any state.
func (s *Stopwatch) Reset() {
	wasStopped := s.state == Stopped && s.accumulated == 0
	s.accumulated = 0
	s.segmentStart = time.Time{}
	s.state = Stopped
	if !wasStopped {
		s.notify()
	}
}

// Elapsed returns the total time spent Running since the last Reset.
// Pure query; never mutates state.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.state == Running {
		return s.accumulated + s.now().Sub(s.segmentStart)
	}
	return s.accumulated
}

// State returns the current lifecycle state.
func (s *Stopwatch) State() State {
	return s.state
}

// IsRunning reports whether a run segment is in progress.
func (s *Stopwatch) IsRunning() bool {
	return s.state == Running
}

func (s *Stopwatch) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
