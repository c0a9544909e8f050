package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/amirhossein-jamali/waitbar/internal/domain/port/usecase"
)

// LineReporter prints one plain line each time elapsed crosses a whole second.
// It is meant for output that is not a terminal, such as a CI log.
type LineReporter struct {
	out  io.Writer
	last time.Duration
}

// NewLineReporter creates a line reporter writing to out
func NewLineReporter(out io.Writer) usecase.ProgressReporter {
	return &LineReporter{out: out, last: -1}
}

// Start resets the reporter
func (r *LineReporter) Start(time.Duration) {
	r.last = -1
}

// Update prints elapsed/total when the whole second changed
func (r *LineReporter) Update(elapsed, total time.Duration) {
	sec := elapsed.Truncate(time.Second)
	if sec == r.last {
		return
	}
	r.last = sec
	fmt.Fprintf(r.out, "%s / %s\n", sec, total)
}

// Finish does nothing, every line is already terminated
func (r *LineReporter) Finish() {}
