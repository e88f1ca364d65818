// Package shell wires windows, response hooks and lifecycle callbacks into a
// Wails application and runs its event loop.
package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"sync/atomic"
	"time"

	apperrors "maislice/internal/infrastructure/errors"
	"maislice/internal/infrastructure/logging"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
)

// Runner starts the host event loop and blocks until it exits
type Runner func(appOptions *options.App) error

// SetupFunc builds the application's windows before the event loop starts.
// Returning an error aborts startup; no window is shown.
type SetupFunc func(s *Shell) error

// State is the lifecycle position of a Builder
type State int32

const (
	Starting State = iota
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Builder collects the setup callback and host options, then runs the shell
type Builder struct {
	runner   Runner
	setup    SetupFunc
	assets   fs.FS
	logger   logging.Logger
	logLevel string
	debug    bool

	state atomic.Int32
	mu    sync.Mutex
	err   error
}

// Default returns a builder that runs on the Wails event loop
func Default() *Builder {
	return NewBuilder(wails.Run)
}

// NewBuilder returns a builder that hands the final options to runner
func NewBuilder(runner Runner) *Builder {
	if runner == nil {
		runner = wails.Run
	}
	return &Builder{
		runner:   runner,
		logger:   logging.NewDefaultLogger(),
		logLevel: "info",
	}
}

// WithAssets sets the bundled asset root that window sources resolve against
func (b *Builder) WithAssets(assets fs.FS) *Builder {
	b.assets = assets
	return b
}

func (b *Builder) WithLogger(logger logging.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithLogLevel sets the level the host runtime logs at
func (b *Builder) WithLogLevel(level string) *Builder {
	b.logLevel = level
	return b
}

// WithDebug opens the web inspector when the window starts
func (b *Builder) WithDebug(openInspector bool) *Builder {
	b.debug = openInspector
	return b
}

// Setup registers the setup callback. A later call replaces an earlier one.
func (b *Builder) Setup(fn SetupFunc) *Builder {
	b.setup = fn
	return b
}

// State reports where the builder is in its lifecycle
func (b *Builder) State() State {
	return State(b.state.Load())
}

// Err returns the error that terminated the last run, if any
func (b *Builder) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Run executes the setup callback and, if it succeeded, blocks in the host
// event loop. Setup failures never reach the runner.
func (b *Builder) Run() error {
	b.setState(Starting, nil)

	start := time.Now()
	s := newShell(b.assets)

	if b.setup != nil {
		if err := b.setup(s); err != nil {
			return b.terminate(asSetupError(err), "setup")
		}
	}

	w := s.primary()
	if w == nil {
		err := apperrors.NewSetupError("setup", errors.New("setup did not build a window"), apperrors.ErrCodeValidation)
		return b.terminate(err, "setup")
	}

	logging.LogOperation(b.logger, "setup", time.Since(start), map[string]interface{}{
		"window": w.ID,
		"title":  w.Title,
		"source": w.Source,
	})

	appOptions := b.appOptions(w)

	b.setState(Running, nil)
	b.logger.Info("Starting event loop", "window", w.ID)

	if err := b.runner(appOptions); err != nil {
		runErr := apperrors.NewRunError("run", err).WithContext("window", w.ID)
		return b.terminate(runErr, "run")
	}

	b.setState(Terminated, nil)
	b.logger.Info("Event loop exited", "window", w.ID)
	return nil
}

func (b *Builder) setState(state State, err error) {
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()
	b.state.Store(int32(state))
}

func (b *Builder) terminate(err error, operation string) error {
	logging.LogError(b.logger, err, operation, nil)
	b.setState(Terminated, err)
	return err
}

// asSetupError keeps classified setup errors as they are and wraps anything else
func asSetupError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Kind == apperrors.KindSetup {
		return err
	}
	return apperrors.NewSetupError("setup", err, apperrors.CodeOf(err))
}
