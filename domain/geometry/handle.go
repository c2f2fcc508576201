package geometry

import "image"

// Handle identifies a resize zone on a box.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
	HandleTop
	HandleBottom
	HandleLeft
	HandleRight
)

func (h Handle) String() string {
	switch h {
	case HandleTopLeft:
		return "top-left"
	case HandleTopRight:
		return "top-right"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleBottomRight:
		return "bottom-right"
	case HandleTop:
		return "top"
	case HandleBottom:
		return "bottom"
	case HandleLeft:
		return "left"
	case HandleRight:
		return "right"
	default:
		return "none"
	}
}

// Top reports whether the handle moves the top edge.
func (h Handle) Top() bool { return h == HandleTop || h == HandleTopLeft || h == HandleTopRight }

// Bottom reports whether the handle moves the bottom edge.
func (h Handle) Bottom() bool {
	return h == HandleBottom || h == HandleBottomLeft || h == HandleBottomRight
}

// Left reports whether the handle moves the left edge.
func (h Handle) Left() bool { return h == HandleLeft || h == HandleTopLeft || h == HandleBottomLeft }

// Right reports whether the handle moves the right edge.
func (h Handle) Right() bool {
	return h == HandleRight || h == HandleTopRight || h == HandleBottomRight
}

// ClassifyHandle returns the handle of b under p, or HandleNone.
//
// Axes are tested independently: a corner needs p within handleSize of both the
// matching vertical and horizontal edge, an edge handle needs p within handleSize of
// that edge and strictly between the two opposite bounds. Left is tested before
// right and corners before edges, so on boxes narrower than 2*handleSize the
// corner zones win.
func ClassifyHandle(b Box, p image.Point, handleSize int) Handle {
	r := CanonicalRect(b)
	nearTop := abs(p.Y-r.YMin) < handleSize
	nearBottom := abs(p.Y-r.YMax) < handleSize
	betweenY := r.YMin < p.Y && p.Y < r.YMax

	switch {
	case abs(p.X-r.XMin) < handleSize:
		switch {
		case nearTop:
			return HandleTopLeft
		case nearBottom:
			return HandleBottomLeft
		case betweenY:
			return HandleLeft
		}
	case abs(p.X-r.XMax) < handleSize:
		switch {
		case nearTop:
			return HandleTopRight
		case nearBottom:
			return HandleBottomRight
		case betweenY:
			return HandleRight
		}
	case r.XMin < p.X && p.X < r.XMax:
		switch {
		case nearTop:
			return HandleTop
		case nearBottom:
			return HandleBottom
		}
	}
	return HandleNone
}

// corner selects one of the raw corners of a Box.
type corner int

const (
	cornerNone corner = iota
	cornerP0
	cornerP1
)

// Grip is a handle bound to the raw corners it moves. It is resolved once when a
// drag starts so the same literal coordinates keep moving even after the box
// inverts mid-drag.
type Grip struct {
	Handle Handle
	xc, yc corner
}

// ResolveGrip binds h to the raw corners of b that currently form the dragged edges.
// On a tie P0 serves as top/left and P1 as bottom/right.
func ResolveGrip(b Box, h Handle) Grip {
	g := Grip{Handle: h}
	switch {
	case h.Top():
		g.yc = pick(b.P0.Y <= b.P1.Y)
	case h.Bottom():
		g.yc = pick(b.P0.Y > b.P1.Y)
	}
	switch {
	case h.Left():
		g.xc = pick(b.P0.X <= b.P1.X)
	case h.Right():
		g.xc = pick(b.P0.X > b.P1.X)
	}
	return g
}

func pick(p0 bool) corner {
	if p0 {
		return cornerP0
	}
	return cornerP1
}

// Apply moves the gripped coordinates of b to p.
func (g Grip) Apply(b Box, p image.Point) Box {
	switch g.yc {
	case cornerP0:
		b.P0.Y = p.Y
	case cornerP1:
		b.P1.Y = p.Y
	}
	switch g.xc {
	case cornerP0:
		b.P0.X = p.X
	case cornerP1:
		b.P1.X = p.X
	}
	return b
}

// ApplyHandleDrag resolves h against b and moves the matching edges to p.
// Callers dragging across several pointer events should keep the Grip from
// ResolveGrip instead.
func ApplyHandleDrag(b Box, h Handle, p image.Point) Box {
	return ResolveGrip(b, h).Apply(b, p)
}
