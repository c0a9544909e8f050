package wait

import (
	"time"

	"github.com/amirhossein-jamali/waitbar/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/waitbar/internal/domain/port/core"
	"github.com/amirhossein-jamali/waitbar/internal/domain/port/usecase"
)

// DefaultRefreshInterval is the sleep between two progress updates
const DefaultRefreshInterval = 500 * time.Millisecond

// Loop counts off a duration in fixed refresh intervals
type Loop struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	interval     time.Duration
}

// NewLoop creates a wait loop. A non-positive interval falls back to
// DefaultRefreshInterval.
func NewLoop(
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	interval time.Duration,
) usecase.Waiter {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Loop{
		timeProvider: timeProvider,
		logger:       logger,
		interval:     interval,
	}
}

// Interval returns the refresh interval
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Wait reports progress and sleeps one interval at a time until the counted
// time reaches total. The last tick reports the elapsed value before the final
// sleep, so the display never gets an exact 100% update from here.
//
// Elapsed is counted, not measured: time spent in onTick is not subtracted.
func (l *Loop) Wait(total time.Duration, onTick usecase.TickFunc) entity.WaitState {
	state := entity.NewWaitState(total, l.interval)

	l.logger.Info("Wait started", map[string]any{
		"total":    total.String(),
		"interval": l.interval.String(),
	})

	for state.Phase() == entity.WaitRunning {
		if onTick != nil {
			onTick(state.Elapsed, total)
		}
		l.logger.Debug("Tick", map[string]any{
			"elapsed":   state.Elapsed.String(),
			"iteration": state.Iterations,
		})

		l.timeProvider.Sleep(l.interval)
		state.Advance()
	}

	l.logger.Info("Wait finished", map[string]any{
		"elapsed":    state.Elapsed.String(),
		"iterations": state.Iterations,
	})

	return *state
}
