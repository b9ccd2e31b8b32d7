// Package config defines the application configuration and its resolution
// from command-line flags and environment variables.
//
// Resolution order (highest priority first):
//  1. CLI flags (-trials, -workers, ...)
//  2. Environment variables (COINFLIP_TRIALS, ...)
//  3. Built-in defaults
//
// Environment overrides only apply when the corresponding flag was not set
// explicitly on the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	apperrors "github.com/agbru/coinflip/internal/errors"
)

// Defaults for the simulation parameters.
const (
	// DefaultTrials is the total number of coin flips per run.
	DefaultTrials = 1_000_000
	// DefaultTimeout bounds a whole run; generous because the job is a
	// bounded batch, not a service.
	DefaultTimeout = 10 * time.Minute
	// DefaultOutputName is the results file created under the user's home
	// directory when -o is not given.
	DefaultOutputName = "probability_data.csv"
)

// AppConfig holds the resolved configuration for one invocation.
type AppConfig struct {
	// OutputFile is the destination CSV path. Must not already exist.
	OutputFile string
	// Trials is the total number of coin flips to perform.
	Trials int
	// Workers is the number of concurrent trial workers.
	Workers int
	// Seed drives deterministic runs; 0 selects random seeding.
	Seed int64
	// Timeout bounds the whole simulation.
	Timeout time.Duration
	// Quiet suppresses all non-essential output.
	Quiet bool
	// Verbose adds memory and system statistics to the summary.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// TUI launches the interactive dashboard instead of the plain CLI.
	TUI bool
	// MetricsListen is the address for the optional Prometheus endpoint
	// (empty disables it).
	MetricsListen string
}

// DefaultOutputPath returns the default results destination:
// $HOME/probability_data.csv, falling back to the working directory when the
// home directory cannot be resolved.
func DefaultOutputPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultOutputName
	}
	return filepath.Join(home, DefaultOutputName)
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags the user did not set, and validates the
// result.
//
// Parameters:
//   - programName: argv[0], used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: Destination for usage and parse errors.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp if -h was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var cfg AppConfig
	fs.StringVar(&cfg.OutputFile, "o", DefaultOutputPath(), "destination CSV file (must not exist)")
	fs.StringVar(&cfg.OutputFile, "output", DefaultOutputPath(), "destination CSV file (must not exist)")
	fs.IntVar(&cfg.Trials, "trials", DefaultTrials, "total number of coin flips to perform")
	fs.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "number of concurrent workers")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for reproducible runs (0 = random)")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run duration")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress all non-essential output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "include memory and system statistics in the summary")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.TUI, "tui", false, "run the interactive dashboard")
	fs.StringVar(&cfg.MetricsListen, "metrics-listen", "", "address for the Prometheus /metrics endpoint (empty = disabled)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errWriter, "Flip a fair coin many times in parallel and record how often runs of\n")
		fmt.Fprintf(errWriter, "consecutive heads of each length were extended or broken.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument: %q", fs.Arg(0))
	}

	cfg = applyEnvOverrides(cfg, fs)

	if err := Validate(cfg); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the semantic constraints on a configuration.
func Validate(cfg AppConfig) error {
	if cfg.Trials < 0 {
		return apperrors.ValidationError{Field: "trials", Message: "must not be negative"}
	}
	if cfg.Workers < 1 {
		return apperrors.ValidationError{Field: "workers", Message: "must be at least 1"}
	}
	if cfg.OutputFile == "" {
		return apperrors.ValidationError{Field: "output", Message: "must not be empty"}
	}
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	return nil
}
