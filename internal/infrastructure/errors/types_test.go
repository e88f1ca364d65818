package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeValidation, "VALIDATION"},
		{ErrCodeDuplicate, "DUPLICATE"},
		{ErrCodeAssetResolution, "ASSET_RESOLUTION"},
		{ErrCodeUnsupported, "UNSUPPORTED"},
		{ErrCodeEventLoop, "EVENT_LOOP"},
		{ErrCodeConfiguration, "CONFIGURATION"},
		{ErrCodeUnknown, "UNKNOWN"},
		{ErrorCode(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.code.String(); got != tt.expected {
				t.Errorf("ErrorCode.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name: "setup error",
			err: &AppError{
				Op:   "build_window",
				Kind: KindSetup,
				Err:  errors.New("window already exists"),
				Code: ErrCodeDuplicate,
			},
			contains: []string{"window already exists", "op=build_window", "kind=setup", "code=DUPLICATE"},
		},
		{
			name: "error with context",
			err: &AppError{
				Op:   "resolve_asset",
				Kind: KindSetup,
				Err:  errors.New("file does not exist"),
				Code: ErrCodeAssetResolution,
				Context: map[string]string{
					"window": "main",
					"source": "index.html",
				},
			},
			contains: []string{"file does not exist", "code=ASSET_RESOLUTION", "source=index.html", "window=main"},
		},
		{
			name:     "no underlying error",
			err:      &AppError{Kind: KindRun, Code: ErrCodeEventLoop},
			contains: []string{"application error", "kind=run", "code=EVENT_LOOP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, contain := range tt.contains {
				if !strings.Contains(errStr, contain) {
					t.Errorf("AppError.Error() = %v, should contain %v", errStr, contain)
				}
			}
		})
	}
}

func TestAppError_ErrorDeterministicContext(t *testing.T) {
	err := &AppError{
		Err:     errors.New("boom"),
		Context: map[string]string{"b": "2", "a": "1", "c": "3"},
	}

	want := "boom [a=1 b=2 c=3]"
	for i := 0; i < 10; i++ {
		if got := err.Error(); got != want {
			t.Fatalf("AppError.Error() = %q, want %q", got, want)
		}
	}
}

func TestAppError_NilReceiver(t *testing.T) {
	var err *AppError

	if err.Error() != "application error" {
		t.Errorf("nil AppError.Error() = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("nil AppError.Unwrap() should be nil")
	}
	if err.GetCode() != "UNKNOWN" {
		t.Errorf("nil AppError.GetCode() = %q", err.GetCode())
	}
	if len(err.GetContext()) != 0 {
		t.Error("nil AppError.GetContext() should be empty")
	}
	if !err.GetTimestamp().IsZero() {
		t.Error("nil AppError.GetTimestamp() should be zero")
	}
}

func TestAppError_Is(t *testing.T) {
	err1 := &AppError{Code: ErrCodeDuplicate}
	err2 := &AppError{Code: ErrCodeDuplicate}
	err3 := &AppError{Code: ErrCodeAssetResolution}
	otherErr := errors.New("other error")

	if !errors.Is(err1, err2) {
		t.Error("Expected errors with same code to match")
	}

	if errors.Is(err1, err3) {
		t.Error("Expected errors with different codes not to match")
	}

	if errors.Is(err1, otherErr) {
		t.Error("Expected application error not to match unrelated error")
	}

	wrappedErr := errors.New("wrapped error")
	withWrapped := &AppError{Code: ErrCodeEventLoop, Err: wrappedErr}

	if !errors.Is(withWrapped, wrappedErr) {
		t.Error("Expected application error to match its wrapped error")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := &AppError{Err: originalErr}

	if unwrapped := appErr.Unwrap(); unwrapped != originalErr {
		t.Errorf("Expected unwrapped error to be %v, got %v", originalErr, unwrapped)
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{}
	err = err.WithContext("window", "main").WithContext("source", "index.html")

	if err.Context["window"] != "main" {
		t.Errorf("Expected context window to be 'main', got %v", err.Context["window"])
	}
	if err.Context["source"] != "index.html" {
		t.Errorf("Expected context source to be 'index.html', got %v", err.Context["source"])
	}
}

func TestNewAppErrorWithContext_ClonesContext(t *testing.T) {
	ctx := map[string]string{"key": "value"}
	appErr := NewAppErrorWithContext("op", KindSetup, nil, ErrCodeValidation, ctx)

	ctx["key"] = "mutated"
	if appErr.Context["key"] != "value" {
		t.Errorf("Expected cloned context, got %v", appErr.Context["key"])
	}
	if appErr.Timestamp.IsZero() {
		t.Error("Expected Timestamp to be set")
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	setupErr := NewSetupError("build_window", cause, ErrCodeValidation)
	if setupErr.Kind != KindSetup || setupErr.Code != ErrCodeValidation {
		t.Errorf("NewSetupError() = kind %v code %v", setupErr.Kind, setupErr.Code)
	}

	runErr := NewRunError("run", cause)
	if runErr.Kind != KindRun || runErr.Code != ErrCodeEventLoop {
		t.Errorf("NewRunError() = kind %v code %v", runErr.Kind, runErr.Code)
	}

	configErr := NewConfigError("load_config", cause)
	if configErr.Kind != KindSetup || configErr.Code != ErrCodeConfiguration {
		t.Errorf("NewConfigError() = kind %v code %v", configErr.Kind, configErr.Code)
	}
}

func TestErrorClassificationFunctions(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		testFunc func(error) bool
		expected bool
	}{
		{"IsSetup with setup error", NewSetupError("op", nil, ErrCodeValidation), IsSetup, true},
		{"IsSetup with run error", NewRunError("op", nil), IsSetup, false},
		{"IsRun with run error", NewRunError("op", nil), IsRun, true},
		{"IsRun with other error", errors.New("other"), IsRun, false},
		{"IsValidation", NewSetupError("op", nil, ErrCodeValidation), IsValidation, true},
		{"IsDuplicate", NewSetupError("op", nil, ErrCodeDuplicate), IsDuplicate, true},
		{"IsAssetResolution", NewSetupError("op", nil, ErrCodeAssetResolution), IsAssetResolution, true},
		{"IsUnsupported", NewSetupError("op", nil, ErrCodeUnsupported), IsUnsupported, true},
		{"IsConfiguration", NewConfigError("op", nil), IsConfiguration, true},
		{"IsDuplicate with other code", NewSetupError("op", nil, ErrCodeValidation), IsDuplicate, false},
		{"IsSetup through fmt wrap", fmt.Errorf("outer: %w", NewSetupError("op", nil, ErrCodeDuplicate)), IsSetup, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.testFunc(tt.err); got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != ErrCodeUnknown {
		t.Errorf("CodeOf(plain) = %v, want UNKNOWN", got)
	}

	wrapped := fmt.Errorf("outer: %w", NewSetupError("op", nil, ErrCodeAssetResolution))
	if got := CodeOf(wrapped); got != ErrCodeAssetResolution {
		t.Errorf("CodeOf(wrapped) = %v, want ASSET_RESOLUTION", got)
	}
}
