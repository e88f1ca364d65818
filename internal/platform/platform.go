// Package platform holds the few OS-specific calls the application needs.
package platform

// FatalTitle is the caption used for fatal startup reports
const FatalTitle = "maislice"
