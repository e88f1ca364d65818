package shell

import (
	"net/http"

	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

// hookMiddleware runs hooks against every asset response. Hooks run before
// the handler and again when the status line is committed, so handlers
// cannot drop injected headers.
func hookMiddleware(hooks []ResponseHook) assetserver.Middleware {
	return func(next http.Handler) http.Handler {
		if len(hooks) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			iw := &interceptWriter{ResponseWriter: w, req: r, hooks: hooks}
			iw.apply()
			next.ServeHTTP(iw, r)
		})
	}
}

type interceptWriter struct {
	http.ResponseWriter
	req         *http.Request
	hooks       []ResponseHook
	wroteHeader bool
}

func (w *interceptWriter) apply() {
	h := w.ResponseWriter.Header()
	for _, hook := range w.hooks {
		hook(w.req, h)
	}
}

func (w *interceptWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.apply()
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *interceptWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *interceptWriter) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if !ok {
		return
	}
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	flusher.Flush()
}

// Unwrap lets http.ResponseController reach the host's writer
func (w *interceptWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
