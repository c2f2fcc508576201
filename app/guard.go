package app

import (
	"log/slog"

	"github.com/soocke/box-annotator/ui/view"
)

// guard wraps every handler so a panic inside a Tk callback is logged instead
// of tearing down the event loop.
func guard(logger *slog.Logger, h view.Handlers) view.Handlers {
	wrap := func(name string, fn func()) func() {
		if fn == nil {
			return nil
		}
		return func() {
			defer recoverLog(logger, name+" handler panic")
			fn()
		}
	}
	wrapXY := func(name string, fn func(x, y int)) func(x, y int) {
		if fn == nil {
			return nil
		}
		return func(x, y int) {
			defer recoverLog(logger, name+" handler panic")
			fn(x, y)
		}
	}
	out := view.Handlers{
		LoadImage:  wrap("load", h.LoadImage),
		Capture:    wrap("capture", h.Capture),
		ToggleDraw: wrap("draw toggle", h.ToggleDraw),
		ToggleEdit: wrap("edit toggle", h.ToggleEdit),
		Delete:     wrap("delete", h.Delete),
		Save:       wrap("save", h.Save),
		Exit:       h.Exit,
		Press:      wrapXY("press", h.Press),
		Motion:     wrapXY("motion", h.Motion),
		Release:    wrapXY("release", h.Release),
	}
	if h.FieldEdited != nil {
		out.FieldEdited = func(field, value string) {
			defer recoverLog(logger, "field edit handler panic")
			h.FieldEdited(field, value)
		}
	}
	if h.Apply != nil {
		out.Apply = func(x, y, width, height string) {
			defer recoverLog(logger, "apply handler panic")
			h.Apply(x, y, width, height)
		}
	}
	return out
}
