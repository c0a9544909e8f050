package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	errs "github.com/amirhossein-jamali/waitbar/internal/domain/error"
	"github.com/amirhossein-jamali/waitbar/internal/domain/port/usecase"
)

// Reporter styles
const (
	StyleAuto = "auto"
	StyleBar  = "bar"
	StyleLine = "line"
)

// NewReporter picks a reporter for style. Auto draws a bar when out is a
// terminal and falls back to plain lines otherwise.
func NewReporter(style string, out io.Writer) (usecase.ProgressReporter, error) {
	switch style {
	case StyleBar:
		return NewBarReporter(out), nil
	case StyleLine:
		return NewLineReporter(out), nil
	case StyleAuto, "":
		if IsTerminal(out) {
			return NewBarReporter(out), nil
		}
		return NewLineReporter(out), nil
	default:
		return nil, errs.NewConfigError("progress.style", style,
			fmt.Sprintf("must be one of %s, %s, %s", StyleAuto, StyleBar, StyleLine))
	}
}

// IsTerminal reports whether w is a terminal file
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
