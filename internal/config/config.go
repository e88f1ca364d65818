package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names read by LoadFromEnvironment
const (
	EnvEnvironment   = "MAISLICE_ENVIRONMENT"
	EnvLogLevel      = "MAISLICE_LOG_LEVEL"
	EnvWindowWidth   = "MAISLICE_WINDOW_WIDTH"
	EnvWindowHeight  = "MAISLICE_WINDOW_HEIGHT"
	EnvOpenInspector = "MAISLICE_OPEN_INSPECTOR"
)

const (
	defaultWindowID  = "main"
	defaultSource    = "index.html"
	defaultTitle     = "maislice"
	defaultWidth     = 800
	defaultHeight    = 600
	defaultMinWidth  = 400
	defaultMinHeight = 300

	environmentProd = "production"
	environmentDev  = "development"
	environmentTest = "test"

	defaultLogLevel  = "info"
	developmentLevel = "debug"
	testLogLevel     = "error"
)

// parseBoolEnv reads an environment variable and parses it as a boolean.
// The second result reports whether the variable held a recognised value.
func parseBoolEnv(key string) (bool, bool) {
	value := os.Getenv(key)
	if value == "" {
		return false, false
	}

	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed, true
	}

	switch strings.ToLower(value) {
	case "yes", "y", "on":
		return true, true
	case "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// WindowConfig describes the single application window
type WindowConfig struct {
	ID        string `json:"id" yaml:"id"`               // Window identifier, unique within the application
	Source    string `json:"source" yaml:"source"`       // Entry asset, relative to the bundled asset root
	Title     string `json:"title" yaml:"title"`         // Window title
	Width     int    `json:"width" yaml:"width"`         // Initial width in pixels
	Height    int    `json:"height" yaml:"height"`       // Initial height in pixels
	MinWidth  int    `json:"minWidth" yaml:"minWidth"`   // Minimum width in pixels
	MinHeight int    `json:"minHeight" yaml:"minHeight"` // Minimum height in pixels
}

// DebugConfig holds developer tooling switches
type DebugConfig struct {
	OpenInspectorOnStartup bool `json:"openInspectorOnStartup" yaml:"openInspectorOnStartup"`
}

// Config holds all application configuration
type Config struct {
	Environment string       `json:"environment" yaml:"environment"` // development, production, test
	LogLevel    string       `json:"logLevel" yaml:"logLevel"`       // debug, info, warn, error
	Window      WindowConfig `json:"window" yaml:"window"`
	Debug       DebugConfig  `json:"debug" yaml:"debug"`
}

// DefaultConfig returns the production configuration
func DefaultConfig() *Config {
	return &Config{
		Environment: environmentProd,
		LogLevel:    defaultLogLevel,
		Window: WindowConfig{
			ID:        defaultWindowID,
			Source:    defaultSource,
			Title:     defaultTitle,
			Width:     defaultWidth,
			Height:    defaultHeight,
			MinWidth:  defaultMinWidth,
			MinHeight: defaultMinHeight,
		},
	}
}

// DevelopmentConfig returns a configuration for local development
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.Environment = environmentDev
	config.LogLevel = developmentLevel
	config.Debug.OpenInspectorOnStartup = true
	return config
}

// TestConfig returns a configuration for tests
func TestConfig() *Config {
	config := DefaultConfig()
	config.Environment = environmentTest
	config.LogLevel = testLogLevel
	return config
}

// ConfigForEnvironment returns the configuration for the given environment
func ConfigForEnvironment(env string) *Config {
	switch env {
	case environmentDev:
		return DevelopmentConfig()
	case environmentTest:
		return TestConfig()
	default:
		return DefaultConfig()
	}
}

// LoadFromEnvironment applies environment overrides.
// A window size that is not a positive integer is rejected. An overridden size
// smaller than the minimum size lowers the minimum to match.
// The window identity (id, source, title) is fixed and has no override.
func (c *Config) LoadFromEnvironment() error {
	if environment := os.Getenv(EnvEnvironment); environment != "" {
		c.Environment = environment
	}

	if logLevel := os.Getenv(EnvLogLevel); logLevel != "" {
		c.LogLevel = strings.ToLower(logLevel)
	}

	if width := os.Getenv(EnvWindowWidth); width != "" {
		val, err := parseDimension(EnvWindowWidth, width)
		if err != nil {
			return err
		}
		c.Window.Width = val
		c.Window.MinWidth = min(c.Window.MinWidth, val)
	}

	if height := os.Getenv(EnvWindowHeight); height != "" {
		val, err := parseDimension(EnvWindowHeight, height)
		if err != nil {
			return err
		}
		c.Window.Height = val
		c.Window.MinHeight = min(c.Window.MinHeight, val)
	}

	if inspector, present := parseBoolEnv(EnvOpenInspector); present {
		c.Debug.OpenInspectorOnStartup = inspector
	}

	return nil
}

func parseDimension(key, value string) (int, error) {
	val, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	if val <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, val)
	}
	return val, nil
}

// Validate validates the configuration parameters
func (c *Config) Validate() error {
	if c.Window.ID == "" {
		return fmt.Errorf("window id cannot be empty")
	}

	if c.Window.Source == "" {
		return fmt.Errorf("window source cannot be empty")
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Window.MinWidth < 0 || c.Window.MinHeight < 0 {
		return fmt.Errorf("window minimum size cannot be negative, got %dx%d", c.Window.MinWidth, c.Window.MinHeight)
	}

	if c.Window.MinWidth > c.Window.Width || c.Window.MinHeight > c.Window.Height {
		return fmt.Errorf("window minimum size %dx%d exceeds size %dx%d",
			c.Window.MinWidth, c.Window.MinHeight, c.Window.Width, c.Window.Height)
	}

	validEnvironments := map[string]bool{
		environmentDev:  true,
		environmentTest: true,
		environmentProd: true,
	}
	if !validEnvironments[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	validLogLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid logLevel: %s", c.LogLevel)
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == environmentDev
}

// IsTest returns true if the environment is set to test
func (c *Config) IsTest() bool {
	return c.Environment == environmentTest
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == environmentProd
}
