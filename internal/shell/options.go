package shell

import (
	"context"

	"maislice/internal/infrastructure/logging"

	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

// appOptions translates a built window into the Wails application options
func (b *Builder) appOptions(w *Window) *options.App {
	level := logging.WailsLogLevel(b.logLevel)
	lifecycle := w.lifecycle

	return &options.App{
		Title:     w.Title,
		Width:     w.Width,
		Height:    w.Height,
		MinWidth:  w.MinWidth,
		MinHeight: w.MinHeight,
		AssetServer: &assetserver.Options{
			Assets:     w.root,
			Middleware: hookMiddleware(w.hooks),
		},
		Logger:             logging.NewWailsLoggerAdapter(b.logger),
		LogLevel:           level,
		LogLevelProduction: level,
		OnStartup: func(ctx context.Context) {
			b.logger.Info("Window started", "window", w.ID)
			if lifecycle != nil {
				lifecycle.Startup(ctx)
			}
		},
		OnDomReady: func(ctx context.Context) {
			if lifecycle != nil {
				lifecycle.DomReady(ctx)
			}
		},
		OnBeforeClose: func(ctx context.Context) bool {
			if lifecycle != nil {
				return lifecycle.BeforeClose(ctx)
			}
			return false
		},
		OnShutdown: func(ctx context.Context) {
			if lifecycle != nil {
				lifecycle.Shutdown(ctx)
			}
			b.logger.Info("Window closed", "window", w.ID)
		},
		Debug: options.Debug{
			OpenInspectorOnStartup: b.debug,
		},
	}
}
