package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/box-annotator/domain/annotate"
	"github.com/soocke/box-annotator/ui/images"
)

// ImageSource provides the image currently loaded.
type ImageSource interface{ Image() image.Image }

// CanvasView displays the rendered image. Origin is the offset of the image's
// top-left pixel inside the widget receiving pointer events.
type CanvasView interface {
	ShowImage(img image.Image)
	Origin() image.Point
}

// CanvasPresenter forwards pointer events to the machine in image coordinates
// and renders snapshots. Snapshots are coalesced and drawn on the next Tick so
// a burst of motion events costs one render.
type CanvasPresenter struct {
	input      annotate.PointerInput
	source     ImageSource
	view       CanvasView
	handleSize int
	logger     *slog.Logger

	pending *annotate.RenderState
	renders int
}

func NewCanvasPresenter(input annotate.PointerInput, source ImageSource, view CanvasView, handleSize int, logger *slog.Logger) *CanvasPresenter {
	return &CanvasPresenter{input: input, source: source, view: view, handleSize: handleSize, logger: logger}
}

func (p *CanvasPresenter) toImage(x, y int) image.Point {
	return image.Pt(x, y).Sub(p.view.Origin())
}

// Press handles a button press at widget coordinates (x, y).
func (p *CanvasPresenter) Press(x, y int) {
	if p == nil || p.input == nil || p.view == nil {
		return
	}
	p.input.OnPress(p.toImage(x, y))
}

// Motion handles a drag with the button held.
func (p *CanvasPresenter) Motion(x, y int) {
	if p == nil || p.input == nil || p.view == nil {
		return
	}
	p.input.OnMove(p.toImage(x, y))
}

// Release handles the button release.
func (p *CanvasPresenter) Release(x, y int) {
	if p == nil || p.input == nil || p.view == nil {
		return
	}
	p.input.OnRelease(p.toImage(x, y))
}

// OnRender queues a snapshot for the next Tick.
func (p *CanvasPresenter) OnRender(rs annotate.RenderState) {
	if p == nil {
		return
	}
	p.pending = &rs
}

// Tick draws the latest queued snapshot, if any.
func (p *CanvasPresenter) Tick() {
	if p == nil || p.pending == nil || p.view == nil || p.source == nil {
		return
	}
	rs := *p.pending
	p.pending = nil
	base := p.source.Image()
	if base == nil {
		return
	}
	p.view.ShowImage(images.RenderOverlay(base, rs, p.handleSize))
	p.renders++
	if p.logger != nil && p.renders%500 == 0 {
		p.logger.Debug("canvas renders", "count", p.renders)
	}
}
