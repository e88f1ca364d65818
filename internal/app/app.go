package app

import (
	"context"
	"sync"

	"maislice/internal/config"
	"maislice/internal/headers"
	"maislice/internal/infrastructure/logging"
	"maislice/internal/shell"
)

// FatalMessage prefixes the message printed when the application cannot run
const FatalMessage = "error while running maislice application"

// FatalFunc terminates the process. log.Fatalf satisfies it.
type FatalFunc func(format string, v ...interface{})

// App struct represents the main application
type App struct {
	mu     sync.Mutex
	ctx    context.Context
	config *config.Config
	logger logging.Logger
}

// NewApp creates a new App for the given configuration
func NewApp(cfg *config.Config, logger logging.Logger) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewLogger(cfg.LogLevel)
	}
	return &App{
		config: cfg,
		logger: logger,
	}
}

// Setup builds the main window. It is registered as the shell's setup callback.
func (a *App) Setup(s *shell.Shell) error {
	win := a.config.Window

	_, err := s.NewWindow(win.ID, win.Source).
		Title(win.Title).
		Size(win.Width, win.Height).
		MinSize(win.MinWidth, win.MinHeight).
		OnWebResourceRequest(headers.CrossOriginIsolation().Intercept).
		Lifecycle(a).
		Build()
	if err != nil {
		return err
	}

	a.logger.Debug("Window built", "window", win.ID, "source", win.Source, "title", win.Title)
	return nil
}

// Builder returns a shell builder configured for this application
func (a *App) Builder(b *shell.Builder) *shell.Builder {
	return b.
		WithLogger(a.logger).
		WithLogLevel(a.config.LogLevel).
		WithDebug(a.config.Debug.OpenInspectorOnStartup).
		Setup(a.Setup)
}

// Startup is called at application startup
func (a *App) Startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	a.logger.Info("Application started", "environment", a.config.Environment)
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
	a.logger.Debug("Front-end loaded", "window", a.config.Window.ID)
}

// BeforeClose is called when the application is about to quit
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("Application shutdown completed")
}

// Context returns the host context captured at startup, or nil before startup
func (a *App) Context() context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ctx
}

// Main runs b and calls fatal once if it fails. Nothing runs after fatal.
func Main(b *shell.Builder, fatal FatalFunc) {
	if err := b.Run(); err != nil {
		fatal("%s: %v", FatalMessage, err)
	}
}
