//go:build !windows

package platform

// ReportFatal is a no-op; the fatal log line on stderr is the report
func ReportFatal(title, message string) {}
