package shell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"

	apperrors "maislice/internal/infrastructure/errors"
)

// indexFile is the entry document the Wails asset server serves for "/"
const indexFile = "index.html"

// ResponseHook mutates the headers of a resource response before delivery.
// It may run more than once for the same response and must be idempotent.
type ResponseHook func(r *http.Request, h http.Header)

// LifecycleHooks receives the host's window lifecycle callbacks
type LifecycleHooks interface {
	Startup(ctx context.Context)
	DomReady(ctx context.Context)
	BeforeClose(ctx context.Context) (prevent bool)
	Shutdown(ctx context.Context)
}

// Window is a built window description
type Window struct {
	ID        string
	Source    string
	Title     string
	Width     int
	Height    int
	MinWidth  int
	MinHeight int

	root      fs.FS
	hooks     []ResponseHook
	lifecycle LifecycleHooks
}

// Hooks returns the registered response hooks in registration order
func (w *Window) Hooks() []ResponseHook {
	return append([]ResponseHook(nil), w.hooks...)
}

// Shell is handed to the setup callback and owns the built windows
type Shell struct {
	assets  fs.FS
	windows map[string]*Window
	order   []string
}

func newShell(assets fs.FS) *Shell {
	return &Shell{
		assets:  assets,
		windows: make(map[string]*Window),
	}
}

// Assets returns the bundled asset root
func (s *Shell) Assets() fs.FS {
	return s.assets
}

// Window looks up a built window by identifier
func (s *Shell) Window(id string) (*Window, bool) {
	w, ok := s.windows[id]
	return w, ok
}

func (s *Shell) primary() *Window {
	if len(s.order) == 0 {
		return nil
	}
	return s.windows[s.order[0]]
}

// NewWindow starts building a window whose content is source, a path relative
// to the asset root
func (s *Shell) NewWindow(id, source string) *WindowBuilder {
	return &WindowBuilder{
		shell:  s,
		window: Window{ID: id, Source: source},
	}
}

// WindowBuilder configures a window before Build registers it
type WindowBuilder struct {
	shell  *Shell
	window Window
}

func (wb *WindowBuilder) Title(title string) *WindowBuilder {
	wb.window.Title = title
	return wb
}

// Size sets the initial size. Zero keeps the host default.
func (wb *WindowBuilder) Size(width, height int) *WindowBuilder {
	wb.window.Width = width
	wb.window.Height = height
	return wb
}

func (wb *WindowBuilder) MinSize(width, height int) *WindowBuilder {
	wb.window.MinWidth = width
	wb.window.MinHeight = height
	return wb
}

// OnWebResourceRequest registers a hook run for every resource response
// delivered to the window
func (wb *WindowBuilder) OnWebResourceRequest(hook ResponseHook) *WindowBuilder {
	if hook != nil {
		wb.window.hooks = append(wb.window.hooks, hook)
	}
	return wb
}

// Lifecycle registers the window's lifecycle callbacks
func (wb *WindowBuilder) Lifecycle(hooks LifecycleHooks) *WindowBuilder {
	wb.window.lifecycle = hooks
	return wb
}

// Build validates the window and registers it with the shell
func (wb *WindowBuilder) Build() (*Window, error) {
	s := wb.shell
	w := wb.window
	errCtx := map[string]string{"window": w.ID, "source": w.Source}

	if w.ID == "" {
		return nil, apperrors.NewAppErrorWithContext("build_window", apperrors.KindSetup,
			errors.New("window identifier cannot be empty"), apperrors.ErrCodeValidation, errCtx)
	}

	if _, exists := s.windows[w.ID]; exists {
		return nil, apperrors.NewAppErrorWithContext("build_window", apperrors.KindSetup,
			fmt.Errorf("a window with identifier %q already exists", w.ID), apperrors.ErrCodeDuplicate, errCtx)
	}

	// The Wails v2 host drives exactly one window
	if len(s.windows) > 0 {
		return nil, apperrors.NewAppErrorWithContext("build_window", apperrors.KindSetup,
			fmt.Errorf("cannot build window %q: window %q is already open and the host supports a single window", w.ID, s.order[0]),
			apperrors.ErrCodeUnsupported, errCtx)
	}

	root, err := resolveSource(s.assets, w.Source)
	if err != nil {
		return nil, apperrors.NewAppErrorWithContext("resolve_asset", apperrors.KindSetup,
			err, apperrors.ErrCodeAssetResolution, errCtx)
	}
	w.root = root

	built := &w
	s.windows[w.ID] = built
	s.order = append(s.order, w.ID)
	return built, nil
}

// resolveSource checks that source names an index.html inside assets and
// returns the directory it should be served from
func resolveSource(assets fs.FS, source string) (fs.FS, error) {
	if assets == nil {
		return nil, errors.New("no asset bundle configured")
	}

	if source == "" || !fs.ValidPath(source) {
		return nil, fmt.Errorf("invalid content source %q", source)
	}

	if path.Base(source) != indexFile {
		return nil, fmt.Errorf("content source %q must be an %s entry point", source, indexFile)
	}

	info, err := fs.Stat(assets, source)
	if err != nil {
		return nil, fmt.Errorf("content source %q: %w", source, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("content source %q is a directory", source)
	}

	dir := path.Dir(source)
	if dir == "." {
		return assets, nil
	}

	root, err := fs.Sub(assets, dir)
	if err != nil {
		return nil, fmt.Errorf("content source %q: %w", source, err)
	}
	return root, nil
}
