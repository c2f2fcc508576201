package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// ErrEmptySelection is returned when a capture rectangle has no area.
var ErrEmptySelection = errors.New("capture: empty selection")

// Grab captures the full primary screen.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return img, nil
}

// RegionGrab returns a GrabFunc capturing sel, or the full screen when sel is empty.
func RegionGrab(sel image.Rectangle) GrabFunc {
	if sel.Empty() {
		return Grab
	}
	return func() (*image.RGBA, error) { return GrabSelection(sel) }
}

// GrabSelection captures sel clipped to the screen bounds.
func GrabSelection(sel image.Rectangle) (*image.RGBA, error) {
	if sel.Empty() {
		return nil, ErrEmptySelection
	}
	screen, err := screenshot.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("capture screen rect: %w", err)
	}
	r := sel.Intersect(screen)
	if r.Empty() {
		return nil, fmt.Errorf("%w: %v outside %v", ErrEmptySelection, sel, screen)
	}
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, fmt.Errorf("capture rect %v: %w", r, err)
	}
	return img, nil
}
