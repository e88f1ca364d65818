package shell

import (
	"net/http"
	"testing"
	"testing/fstest"

	apperrors "maislice/internal/infrastructure/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowBuilder_Build(t *testing.T) {
	s := newShell(testAssets())

	w, err := s.NewWindow("main", "index.html").Title("maislice").Build()
	require.NoError(t, err)

	assert.Equal(t, "main", w.ID)
	assert.Equal(t, "maislice", w.Title)

	found, ok := s.Window("main")
	require.True(t, ok)
	assert.Same(t, w, found)
	assert.Same(t, w, s.primary())
}

func TestWindowBuilder_BuildErrors(t *testing.T) {
	tests := []struct {
		name      string
		assets    fstest.MapFS
		id        string
		source    string
		checkFunc func(error) bool
	}{
		{"empty identifier", testAssets(), "", "index.html", apperrors.IsValidation},
		{"missing asset", testAssets(), "main", "missing/index.html", apperrors.IsAssetResolution},
		{"empty source", testAssets(), "main", "", apperrors.IsAssetResolution},
		{"escaping source", testAssets(), "main", "../index.html", apperrors.IsAssetResolution},
		{"absolute source", testAssets(), "main", "/index.html", apperrors.IsAssetResolution},
		{"non-index entry", testAssets(), "main", "ffmpeg/ffmpeg-core.wasm", apperrors.IsAssetResolution},
		{"directory source", fstest.MapFS{"index.html/x": {Data: []byte("x")}}, "main", "index.html", apperrors.IsAssetResolution},
		{"no bundle", nil, "main", "index.html", apperrors.IsAssetResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s *Shell
			if tt.assets == nil {
				s = newShell(nil)
			} else {
				s = newShell(tt.assets)
			}

			w, err := s.NewWindow(tt.id, tt.source).Build()
			require.Error(t, err)
			assert.Nil(t, w)
			assert.True(t, tt.checkFunc(err), "unexpected classification: %v", err)
			assert.True(t, apperrors.IsSetup(err))
			assert.Nil(t, s.primary(), "failed builds must not register a window")
		})
	}
}

func TestWindowBuilder_DuplicateIdentifier(t *testing.T) {
	s := newShell(testAssets())

	_, err := s.NewWindow("main", "index.html").Build()
	require.NoError(t, err)

	_, err = s.NewWindow("main", "index.html").Build()
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicate(err))
}

func TestWindowBuilder_SecondWindowUnsupported(t *testing.T) {
	s := newShell(testAssets())

	_, err := s.NewWindow("main", "index.html").Build()
	require.NoError(t, err)

	_, err = s.NewWindow("settings", "index.html").Build()
	require.Error(t, err)
	assert.True(t, apperrors.IsUnsupported(err))

	_, ok := s.Window("settings")
	assert.False(t, ok)
}

func TestWindowBuilder_Hooks(t *testing.T) {
	s := newShell(testAssets())
	noop := func(*http.Request, http.Header) {}

	w, err := s.NewWindow("main", "index.html").
		OnWebResourceRequest(noop).
		OnWebResourceRequest(nil).
		OnWebResourceRequest(noop).
		Build()
	require.NoError(t, err)

	assert.Len(t, w.Hooks(), 2)
}

func TestShell_Assets(t *testing.T) {
	assets := testAssets()
	s := newShell(assets)
	assert.NotNil(t, s.Assets())
}
