package core

import "time"

// TimeProvider abstracts the clock so waits can run against a fake in tests
type TimeProvider interface {
	// Sleep blocks the calling goroutine for d
	Sleep(d time.Duration)
}
