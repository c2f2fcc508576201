package geometry

import "image"

// DefaultHandleSize is the grab distance in pixels around box edges and corners.
const DefaultHandleSize = 6

// Box is a rectangle stored as the two raw corners of the drag that produced it.
// P0 is the drag-start corner and P1 the opposite one; neither is guaranteed to be
// the minimum. Use Rect for the normalized form.
type Box struct {
	P0, P1 image.Point
}

// NewBox returns a box spanning the two corners.
func NewBox(p0, p1 image.Point) Box { return Box{P0: p0, P1: p1} }

// BoxFromXYWH returns a box with P0 at (x, y) and P1 at (x+w, y+h).
func BoxFromXYWH(x, y, w, h int) Box {
	return Box{P0: image.Pt(x, y), P1: image.Pt(x+w, y+h)}
}

// Rect is the canonical, min/max normalized form of a Box. Max coordinates are
// inclusive pixel positions as written to annotation files.
type Rect struct {
	XMin, YMin, XMax, YMax int
}

// Width returns XMax-XMin.
func (r Rect) Width() int { return r.XMax - r.XMin }

// Height returns YMax-YMin.
func (r Rect) Height() int { return r.YMax - r.YMin }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.XMax <= r.XMin || r.YMax <= r.YMin }

// Rectangle returns the half-open image.Rectangle covering every pixel of r,
// so column XMax and row YMax are included.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.XMin, r.YMin, r.XMax+1, r.YMax+1)
}

// CanonicalRect derives the normalized rectangle of b.
func CanonicalRect(b Box) Rect {
	return Rect{
		XMin: min(b.P0.X, b.P1.X),
		YMin: min(b.P0.Y, b.P1.Y),
		XMax: max(b.P0.X, b.P1.X),
		YMax: max(b.P0.Y, b.P1.Y),
	}
}

// Rect is shorthand for CanonicalRect(b).
func (b Box) Rect() Rect { return CanonicalRect(b) }

// Valid reports whether b has a positive width and height.
func (b Box) Valid() bool { return !CanonicalRect(b).Empty() }

// Contains reports whether p lies inside the canonical rect of b, boundary included.
func Contains(b Box, p image.Point) bool {
	r := CanonicalRect(b)
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// Translate shifts both corners by delta.
func Translate(b Box, delta image.Point) Box {
	return Box{P0: b.P0.Add(delta), P1: b.P1.Add(delta)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
