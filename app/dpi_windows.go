//go:build windows

package app

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

// setDPIAware stops Windows from bitmap-scaling the window, so pointer
// coordinates reported by Tk match image pixels one to one.
func setDPIAware(logger *slog.Logger) {
	user32 := windows.NewLazySystemDLL("user32.dll")
	proc := user32.NewProc("SetProcessDPIAware")
	if err := proc.Find(); err != nil {
		if logger != nil {
			logger.Warn("SetProcessDPIAware unavailable", "error", err)
		}
		return
	}
	if r1, _, err := proc.Call(); r1 == 0 && logger != nil {
		logger.Warn("SetProcessDPIAware failed", "error", err)
	}
}
