package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode classifies startup failures
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeValidation
	ErrCodeDuplicate
	ErrCodeAssetResolution
	ErrCodeUnsupported
	ErrCodeEventLoop
	ErrCodeConfiguration
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeValidation:
		return "VALIDATION"
	case ErrCodeDuplicate:
		return "DUPLICATE"
	case ErrCodeAssetResolution:
		return "ASSET_RESOLUTION"
	case ErrCodeUnsupported:
		return "UNSUPPORTED"
	case ErrCodeEventLoop:
		return "EVENT_LOOP"
	case ErrCodeConfiguration:
		return "CONFIGURATION"
	default:
		return "UNKNOWN"
	}
}

// ErrorKind tells whether a failure happened while building windows or
// while the host event loop was running.
type ErrorKind string

const (
	// KindSetup errors are returned from the setup callback; the shell aborts
	// before any window is shown.
	KindSetup ErrorKind = "setup"
	// KindRun errors come from the event loop and are fatal.
	KindRun ErrorKind = "run"
)

// AppError is a classified startup error with context
type AppError struct {
	Op        string            // operation name
	Kind      ErrorKind         // setup or run
	Code      ErrorCode         // error classification
	Err       error             // underlying error
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *AppError) Error() string {
	if e == nil {
		return "application error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Kind != "" {
		parts = append(parts, fmt.Sprintf("kind=%s", e.Kind))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	// Context keys are sorted so the message is deterministic
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "application error" + contextStr
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *AppError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *AppError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetKind returns the error kind as a string (for logging interface compatibility)
func (e *AppError) GetKind() string {
	if e == nil {
		return ""
	}
	return string(e.Kind)
}

// GetContext returns the error context (for logging interface compatibility)
func (e *AppError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *AppError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe to call once the error has been shared between goroutines.
func (e *AppError) WithContext(key, value string) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error with the given parameters
func NewAppError(op string, kind ErrorKind, err error, code ErrorCode) *AppError {
	return &AppError{
		Op:        op,
		Kind:      kind,
		Code:      code,
		Err:       err,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewAppErrorWithContext creates a new application error with additional context
func NewAppErrorWithContext(op string, kind ErrorKind, err error, code ErrorCode, context map[string]string) *AppError {
	appErr := NewAppError(op, kind, err, code)
	if context != nil {
		appErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			appErr.Context[k] = v
		}
	}
	return appErr
}

// NewSetupError creates an error raised while building windows
func NewSetupError(op string, err error, code ErrorCode) *AppError {
	return NewAppError(op, KindSetup, err, code)
}

// NewRunError creates an error raised by the host event loop
func NewRunError(op string, err error) *AppError {
	return NewAppError(op, KindRun, err, ErrCodeEventLoop)
}

// NewConfigError creates a setup error for invalid configuration
func NewConfigError(op string, err error) *AppError {
	return NewAppError(op, KindSetup, err, ErrCodeConfiguration)
}

// CodeOf returns the code of the first AppError in err's chain
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeUnknown
}

// Error classification functions

// IsSetup checks if the error happened during window setup
func IsSetup(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == KindSetup
	}
	return false
}

// IsRun checks if the error came from the event loop
func IsRun(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == KindRun
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidation
}

// IsDuplicate checks if the error is a duplicate window error
func IsDuplicate(err error) bool {
	return CodeOf(err) == ErrCodeDuplicate
}

// IsAssetResolution checks if a content source could not be resolved
func IsAssetResolution(err error) bool {
	return CodeOf(err) == ErrCodeAssetResolution
}

// IsUnsupported checks if the host cannot serve the request
func IsUnsupported(err error) bool {
	return CodeOf(err) == ErrCodeUnsupported
}

// IsConfiguration checks if the error is a configuration error
func IsConfiguration(err error) bool {
	return CodeOf(err) == ErrCodeConfiguration
}
