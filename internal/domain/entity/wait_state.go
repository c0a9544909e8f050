package entity

import (
	"math"
	"time"
)

// WaitPhase is the state of a wait loop
type WaitPhase int

const (
	// WaitRunning means elapsed is still below the total
	WaitRunning WaitPhase = iota
	// WaitDone means elapsed has reached or passed the total
	WaitDone
)

// String returns the phase name
func (p WaitPhase) String() string {
	if p == WaitDone {
		return "done"
	}
	return "running"
}

// WaitState tracks progress of a single wait.
//
// Elapsed advances in whole refresh intervals, so once the wait is done it
// may exceed Total by less than one interval. That overshoot is the accepted
// cost of discrete stepping and is not corrected.
type WaitState struct {
	Total      time.Duration
	Interval   time.Duration
	Elapsed    time.Duration
	Iterations int
}

// NewWaitState creates a state with nothing elapsed
func NewWaitState(total, interval time.Duration) *WaitState {
	return &WaitState{
		Total:    total,
		Interval: interval,
	}
}

// Phase reports whether the wait is still running
func (s *WaitState) Phase() WaitPhase {
	if s.Elapsed >= s.Total {
		return WaitDone
	}
	return WaitRunning
}

// Advance records one completed interval. Elapsed saturates at the largest
// representable duration instead of wrapping.
func (s *WaitState) Advance() {
	if s.Interval > 0 && s.Elapsed > math.MaxInt64-s.Interval {
		s.Elapsed = math.MaxInt64
	} else {
		s.Elapsed += s.Interval
	}
	s.Iterations++
}

// Remaining returns the time left before the wait is done, never negative
func (s *WaitState) Remaining() time.Duration {
	if s.Elapsed >= s.Total {
		return 0
	}
	return s.Total - s.Elapsed
}
