package main

import (
	"fmt"
	"io"
	"os"

	errs "github.com/amirhossein-jamali/waitbar/internal/domain/error"
	"github.com/amirhossein-jamali/waitbar/internal/domain/port/core"
	"github.com/amirhossein-jamali/waitbar/internal/domain/usecase/parser"
	"github.com/amirhossein-jamali/waitbar/internal/domain/usecase/wait"
	"github.com/amirhossein-jamali/waitbar/internal/infrastructure/adapter/cli"
	"github.com/amirhossein-jamali/waitbar/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/waitbar/internal/infrastructure/adapter/progress"
	timeProvider "github.com/amirhossein-jamali/waitbar/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/waitbar/internal/infrastructure/config"
)

const programName = "waitbar"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, timeProvider.NewRealTimeProvider()))
}

// run executes one waitbar invocation and returns the process exit code
func run(argv []string, stdout, stderr io.Writer, tp core.TimeProvider) int {
	// Parse the command line
	args, outcome, err := cli.Parse(programName, argv, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return errs.ExitCode(err)
	}
	if outcome == cli.Exit {
		return errs.CodeSuccess
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to load configuration: %v\n", programName, err)
		return errs.CodeInvalidConfig
	}

	// Create logger
	appLogger := newLogger(cfg)
	defer appLogger.Flush()

	// Parse the duration before anything is drawn
	durationParser := parser.NewDurationParser(appLogger)
	total, err := durationParser.Parse(args.Duration)
	if err != nil {
		fmt.Fprintf(stderr, "%s: there was a problem parsing: %v\n", programName, err)
		return errs.ExitCode(err)
	}

	fmt.Fprintf(stdout, "Waiting %s\n", total)

	reporter, err := progress.NewReporter(cfg.Progress.Style, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return errs.ExitCode(err)
	}

	loop := wait.NewLoop(tp, appLogger, cfg.Wait.RefreshInterval)

	reporter.Start(total)
	loop.Wait(total, reporter.Update)
	reporter.Finish()

	return errs.CodeSuccess
}

// newLogger builds the zap logger described by cfg
func newLogger(cfg *config.Config) core.Logger {
	level, err := core.ParseLogLevel(cfg.Logger.Level)
	if err != nil {
		return logger.NewDefaultLogger()
	}

	l, err := logger.NewZapLogger(logger.Options{
		JSON:  cfg.JSONLogs(),
		Level: level,
	})
	if err != nil {
		return logger.NewDefaultLogger()
	}
	return l
}
