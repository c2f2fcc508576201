package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/box-annotator/domain/annotate"
	"github.com/soocke/box-annotator/domain/export"
	"github.com/soocke/box-annotator/domain/geometry"
)

// Overlay colours.
var (
	BoxColor        = color.NRGBA{R: 255, A: 255}
	SelectedColor   = color.NRGBA{G: 255, A: 255}
	SelectedFill    = color.NRGBA{G: 255, A: 30}
	InProgressColor = color.NRGBA{R: 255, A: 128}
	InProgressFill  = color.NRGBA{R: 255, A: 30}
	HandleFill      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	HandleBand      = color.NRGBA{R: 255, G: 255, B: 255, A: 60}
	HandleBorder    = color.NRGBA{A: 255}
)

const strokeWidth = 2

// RenderOverlay draws the boxes of rs on a copy of base. Boxes are labelled with
// their export names; the selected box gets a translucent fill, its edge grab
// bands and solid corner grips.
func RenderOverlay(base image.Image, rs annotate.RenderState, handleSize int) *image.NRGBA {
	if base == nil {
		return nil
	}
	if handleSize <= 0 {
		handleSize = geometry.DefaultHandleSize
	}
	dst := imaging.Clone(base)
	for i, r := range rs.Boxes {
		if i == rs.Selected {
			continue
		}
		strokeRect(dst, r.Rectangle(), BoxColor, strokeWidth)
		drawLabel(dst, r, export.ObjectName(i), BoxColor)
	}
	if r, ok := rs.SelectedRect(); ok {
		zones := HandleRects(r, handleSize)
		fillRect(dst, r.Rectangle(), SelectedFill)
		for i := 1; i < len(zones); i += 2 {
			fillRect(dst, zones[i], HandleBand)
		}
		strokeRect(dst, r.Rectangle(), SelectedColor, strokeWidth)
		for i := 0; i < len(zones); i += 2 {
			fillRect(dst, zones[i], HandleFill)
			strokeRect(dst, zones[i], HandleBorder, 1)
		}
		drawLabel(dst, r, export.ObjectName(rs.Selected), SelectedColor)
	}
	if rs.InProgress != nil {
		r := rs.InProgress.Rectangle()
		fillRect(dst, r, InProgressFill)
		strokeRect(dst, r, InProgressColor, strokeWidth)
	}
	return dst
}

// HandleRects returns the pixel zones of r that a press classifies as each
// resize handle, in the order tl, t, tr, r, br, b, bl, l. Zones lie inside the
// box and are handleSize pixels deep; on boxes narrower than 2*handleSize they
// overlap and are clipped to the box.
func HandleRects(r geometry.Rect, handleSize int) []image.Rectangle {
	hs := max(handleSize, 1)
	box := r.Rectangle()
	x0, y0 := box.Min.X, box.Min.Y
	x1, y1 := box.Max.X, box.Max.Y
	zones := []image.Rectangle{
		image.Rect(x0, y0, x0+hs, y0+hs),
		image.Rect(x0+hs, y0, x1-hs, y0+hs),
		image.Rect(x1-hs, y0, x1, y0+hs),
		image.Rect(x1-hs, y0+hs, x1, y1-hs),
		image.Rect(x1-hs, y1-hs, x1, y1),
		image.Rect(x0+hs, y1-hs, x1-hs, y1),
		image.Rect(x0, y1-hs, x0+hs, y1),
		image.Rect(x0, y0+hs, x0+hs, y1-hs),
	}
	for i, z := range zones {
		zones[i] = z.Intersect(box)
	}
	return zones
}

func fillRect(dst xdraw.Image, r image.Rectangle, c color.Color) {
	xdraw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, xdraw.Over)
}

// strokeRect draws an outline of the given thickness inside r.
func strokeRect(dst xdraw.Image, r image.Rectangle, c color.Color, thick int) {
	if r.Empty() {
		return
	}
	thick = min(thick, r.Dx(), r.Dy())
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y+thick, r.Min.X+thick, r.Max.Y-thick), c)
	fillRect(dst, image.Rect(r.Max.X-thick, r.Min.Y+thick, r.Max.X, r.Max.Y-thick), c)
}

// drawLabel writes text just above r, or inside it when r touches the top edge.
func drawLabel(dst xdraw.Image, r geometry.Rect, text string, c color.Color) {
	face := basicfont.Face7x13
	y := r.YMin - 3
	if y-face.Ascent < dst.Bounds().Min.Y {
		y = r.YMin + face.Ascent + strokeWidth
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(r.XMin+strokeWidth, y),
	}
	d.DrawString(text)
}
