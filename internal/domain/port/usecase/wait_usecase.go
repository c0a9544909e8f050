package usecase

import (
	"time"

	"github.com/amirhossein-jamali/waitbar/internal/domain/entity"
)

// TickFunc receives the elapsed time before each refresh interval
type TickFunc func(elapsed, total time.Duration)

// Waiter blocks until a total duration has been counted off
type Waiter interface {
	// Wait calls onTick once per refresh interval while elapsed < total,
	// sleeping one interval after every call. It returns the final state.
	Wait(total time.Duration, onTick TickFunc) entity.WaitState

	// Interval returns the refresh interval used between ticks
	Interval() time.Duration
}

// ProgressReporter renders wait progress for the user
type ProgressReporter interface {
	// Start prepares the display for a wait of total
	Start(total time.Duration)
	// Update shows the elapsed time
	Update(elapsed, total time.Duration)
	// Finish releases the display once the wait is over
	Finish()
}
