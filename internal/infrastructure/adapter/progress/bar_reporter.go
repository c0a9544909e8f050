package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/amirhossein-jamali/waitbar/internal/domain/port/usecase"
)

// barTemplate draws a spinner, the elapsed wall time, the bar and a percentage
const barTemplate = `{{ cycle . "⠋" "⠙" "⠹" "⠸" "⠼" "⠴" "⠦" "⠧" "⠇" "⠏" | green }} [{{ etime . }}] {{ bar . "[" "#" ">" "-" "]" | cyan }} {{ percent . }}`

// BarReporter renders progress as a terminal bar whose ticks are whole seconds.
//
// The bar runs in static mode: it is redrawn only from Update, so no
// background goroutine is started.
type BarReporter struct {
	out     io.Writer
	bar     *pb.ProgressBar
	written bool
}

// NewBarReporter creates a bar reporter writing to out
func NewBarReporter(out io.Writer) usecase.ProgressReporter {
	return &BarReporter{out: out}
}

// Start creates the bar for a wait of total
func (r *BarReporter) Start(total time.Duration) {
	r.bar = pb.New64(seconds(total)).
		SetTemplateString(barTemplate).
		SetWriter(r.out).
		Set(pb.Static, true)
	r.bar.Start()
	r.written = false
}

// Update moves the bar to elapsed and redraws it
func (r *BarReporter) Update(elapsed, _ time.Duration) {
	if r.bar == nil {
		return
	}
	r.bar.SetCurrent(seconds(elapsed))
	r.bar.Write()
	r.written = true
}

// Finish stops the bar and ends its line
func (r *BarReporter) Finish() {
	if r.bar == nil {
		return
	}
	r.bar.Finish()
	if r.written {
		fmt.Fprintln(r.out)
	}
	r.bar = nil
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
