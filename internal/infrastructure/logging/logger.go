package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger interface for application components
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// defaultOutput is where loggers built without an explicit writer go
var defaultOutput io.Writer = os.Stderr

// DefaultLogger writes one JSON object per line through logrus
type DefaultLogger struct {
	log *logrus.Logger
}

// NewDefaultLogger creates a logger at info level
func NewDefaultLogger() Logger {
	return NewLogger("info")
}

// NewLogger creates a logger at the given level. Unknown levels fall back to info.
func NewLogger(level string) Logger {
	return NewLoggerWithOutput(defaultOutput, level)
}

// NewLoggerWithOutput creates a logger that writes to w
func NewLoggerWithOutput(w io.Writer, level string) *DefaultLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(ParseLevel(level))
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		DataKey:         "fields",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	return &DefaultLogger{log: l}
}

// ParseLevel maps a config level name to a logrus level
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// fieldsToMap converts the variadic fields slice to a map
// Expected format: key1, value1, key2, value2, ...
func fieldsToMap(fields []interface{}) logrus.Fields {
	result := make(logrus.Fields)

	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			if key, ok := fields[i].(string); ok {
				result[key] = fields[i+1]
			} else {
				// Non-string keys are kept under index-based names
				result[fmt.Sprintf("field_%d", i/2)] = fields[i]
				result[fmt.Sprintf("field_%d_value", i/2)] = fields[i+1]
			}
		} else {
			result[fmt.Sprintf("field_%d", i/2)] = fields[i]
		}
	}

	return result
}

func (l *DefaultLogger) Debug(msg string, fields ...interface{}) {
	l.log.WithFields(fieldsToMap(fields)).Debug(msg)
}

func (l *DefaultLogger) Info(msg string, fields ...interface{}) {
	l.log.WithFields(fieldsToMap(fields)).Info(msg)
}

func (l *DefaultLogger) Warn(msg string, fields ...interface{}) {
	l.log.WithFields(fieldsToMap(fields)).Warn(msg)
}

func (l *DefaultLogger) Error(msg string, fields ...interface{}) {
	l.log.WithFields(fieldsToMap(fields)).Error(msg)
}

// ClassifiedError is the shape of errors from the errors package (kept as an
// interface to avoid an import cycle)
type ClassifiedError interface {
	Error() string
	GetCode() string
	GetKind() string
	GetContext() map[string]string
	GetTimestamp() time.Time
}

// LogError logs an error with its classification and the given context
func LogError(logger Logger, err error, operation string, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	var appErr ClassifiedError
	if errors.As(err, &appErr) {
		fields := []interface{}{
			"operation", operation,
			"error_code", appErr.GetCode(),
			"error_kind", appErr.GetKind(),
			"timestamp", appErr.GetTimestamp(),
		}

		for k, v := range appErr.GetContext() {
			fields = append(fields, k, v)
		}

		for k, v := range context {
			fields = append(fields, k, v)
		}

		logger.Error(fmt.Sprintf("Application error: %s", err.Error()), fields...)
		return
	}

	fields := []interface{}{
		"operation", operation,
		"error_type", fmt.Sprintf("%T", err),
	}

	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Error(fmt.Sprintf("Unexpected error: %s", err.Error()), fields...)
}

// LogOperation logs a completed operation with its duration
func LogOperation(logger Logger, operation string, duration time.Duration, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	fields := []interface{}{
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	}

	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Info(fmt.Sprintf("Operation completed: %s", operation), fields...)
}
