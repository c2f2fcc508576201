package view

import (
	"image"

	"github.com/soocke/box-annotator/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// canvasBorder is the label border in pixels; the image starts right inside it.
const canvasBorder = 1

// ImageCanvas shows the annotated image in a label and reports pointer events
// in widget coordinates.
type ImageCanvas struct {
	label *LabelWidget
	photo *Img // current Tk photo, deleted before replacement
}

// NewImageCanvas creates the canvas label with a blank placeholder of w x h.
func NewImageCanvas(parent *FrameWidget, w, h int) *ImageCanvas {
	placeholder := image.NewRGBA(image.Rect(0, 0, w, h))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	lbl := Label(Image(photo), Borderwidth(canvasBorder), Relief("sunken"), Anchor("nw"), Padx(0), Pady(0))
	Grid(lbl, In(parent), Row(0), Column(0), Sticky("nw"))
	return &ImageCanvas{label: lbl, photo: photo}
}

// BindPointer routes primary button press, drag and release to the handlers.
func (c *ImageCanvas) BindPointer(press, motion, release func(x, y int)) {
	if c == nil || c.label == nil {
		return
	}
	Bind(c.label, "<ButtonPress-1>", Command(func(e *Event) { press(eventXY(e)) }))
	Bind(c.label, "<B1-Motion>", Command(func(e *Event) { motion(eventXY(e)) }))
	Bind(c.label, "<ButtonRelease-1>", Command(func(e *Event) { release(eventXY(e)) }))
}

// ShowImage replaces the displayed image.
func (c *ImageCanvas) ShowImage(img image.Image) {
	if c == nil || c.label == nil || img == nil {
		return
	}
	png := images.EncodePNG(img)
	if len(png) == 0 {
		return
	}
	if c.photo != nil {
		c.photo.Delete()
	}
	c.photo = NewPhoto(Data(png))
	c.label.Configure(Image(c.photo))
}

// Origin is the offset of image pixel (0,0) inside the label.
func (c *ImageCanvas) Origin() image.Point { return image.Pt(canvasBorder, canvasBorder) }
