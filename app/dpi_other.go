//go:build !windows

package app

import "log/slog"

func setDPIAware(*slog.Logger) {}
