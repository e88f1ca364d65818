//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// ReportFatal shows a blocking error dialog. Release builds use the GUI
// subsystem and have no console, so the fatal log line is otherwise lost.
func ReportFatal(title, message string) {
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	_, _ = windows.MessageBox(0, text, caption, windows.MB_OK|windows.MB_ICONERROR|windows.MB_SETFOREGROUND)
}
