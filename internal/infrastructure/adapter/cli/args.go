package cli

import (
	"errors"
	"fmt"
	"io"

	arg "github.com/alexflint/go-arg"

	errs "github.com/amirhossein-jamali/waitbar/internal/domain/error"
)

// Version is reported by --version
var Version = "0.1.0"

// Args holds the command line of a waitbar run
type Args struct {
	Duration string `arg:"positional,required" help:"time to wait, e.g. 5m, 12s or 1h30m"`
}

// Description is shown at the top of --help
func (Args) Description() string {
	return "waitbar blocks for the given duration while drawing a progress bar"
}

// Epilogue is shown at the bottom of --help
func (Args) Epilogue() string {
	return "Durations are digits followed by s, m or h, concatenated without spaces."
}

// Version is shown by --version
func (Args) Version() string {
	return "waitbar " + Version
}

// Outcome tells the caller what to do after parsing the command line
type Outcome int

const (
	// Proceed means a duration argument was supplied
	Proceed Outcome = iota
	// Exit means help or version was printed and the process should exit 0
	Exit
)

// Parse reads the command line, without the program name. Usage errors print
// the usage text to stdout and return an error wrapping ErrInvalidArguments.
func Parse(program string, argv []string, stdout io.Writer) (Args, Outcome, error) {
	var a Args
	p, err := arg.NewParser(arg.Config{Program: program}, &a)
	if err != nil {
		return Args{}, Exit, fmt.Errorf("building argument parser: %w", err)
	}

	err = p.Parse(argv)
	switch {
	case err == nil:
		return a, Proceed, nil
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stdout)
		return Args{}, Exit, nil
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stdout, a.Version())
		return Args{}, Exit, nil
	default:
		p.WriteUsage(stdout)
		fmt.Fprintf(stdout, "  time to wait can be 5m for 5 minutes, 12s for 12 seconds, etc.\n")
		return Args{}, Exit, fmt.Errorf("%w: %s", errs.ErrInvalidArguments, err.Error())
	}
}
