// Package app wires configuration, orchestration, and presentation into the
// coinflip application entry points.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/coinflip/internal/config"
	apperrors "github.com/agbru/coinflip/internal/errors"
	"github.com/agbru/coinflip/internal/logging"
	"github.com/agbru/coinflip/internal/tui"
	"github.com/agbru/coinflip/internal/ui"
)

// Application represents the coinflip application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Log       logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Log = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Log == nil {
		app.Log = logging.NewDefaultLogger()
	}

	programName := "coinflip"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.Config.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runSimulate(ctx, out)
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, interruptSignals...)
	defer stopSignals()

	return tui.Run(ctx, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForStartup maps an error from New to the process exit code:
// configuration and validation failures use the config code, anything else
// the generic failure code.
func ExitCodeForStartup(err error) int {
	var cfgErr apperrors.ConfigError
	var valErr apperrors.ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}

// interruptSignals lists the signals that cancel a running simulation.
var interruptSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
