package annotate

import (
	"image"
	"strings"

	"github.com/soocke/box-annotator/domain/geometry"
)

// State enumerates the interaction states of the annotation canvas.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateSelectedIdle
	StateResizing
	StateMoving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateSelectedIdle:
		return "selected"
	case StateResizing:
		return "resizing"
	case StateMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// NoSelection is the selection index when no box is selected.
const NoSelection = -1

// Field names one numeric input of the edit form.
type Field int

const (
	FieldX Field = iota
	FieldY
	FieldWidth
	FieldHeight
)

func (f Field) String() string {
	switch f {
	case FieldX:
		return "x"
	case FieldY:
		return "y"
	case FieldWidth:
		return "width"
	case FieldHeight:
		return "height"
	default:
		return "unknown"
	}
}

// ParseField maps a form field id ("x", "y", "width", "height") to a Field.
func ParseField(s string) (Field, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return FieldX, true
	case "y":
		return FieldY, true
	case "width", "w":
		return FieldWidth, true
	case "height", "h":
		return FieldHeight, true
	}
	return 0, false
}

// RenderState is the snapshot handed to the presentation layer after every
// mutation. It is a value copy and stays valid after the machine moves on.
type RenderState struct {
	Boxes       []geometry.Rect
	Selected    int             // NoSelection when nothing is selected
	InProgress  *geometry.Rect  // drag preview while drawing
	State       State
	DrawEnabled bool
	EditEnabled bool
	ImageLoaded bool
}

// HasSelection reports whether Selected addresses one of Boxes.
func (r RenderState) HasSelection() bool { return r.Selected >= 0 && r.Selected < len(r.Boxes) }

// SelectedRect returns the canonical rect of the selected box.
func (r RenderState) SelectedRect() (geometry.Rect, bool) {
	if !r.HasSelection() {
		return geometry.Rect{}, false
	}
	return r.Boxes[r.Selected], true
}

// Session is a read-only copy of everything needed to export one image.
type Session struct {
	ImagePath   string
	ImageWidth  int
	ImageHeight int
	Boxes       []geometry.Box
}

// RenderListener receives a snapshot after every mutation.
type RenderListener func(RenderState)

// StateListener is called on each state transition.
type StateListener func(prev, next State)

// Interface slices for consumers (presenters).
type PointerInput interface {
	OnPress(p image.Point)
	OnMove(p image.Point)
	OnRelease(p image.Point)
}
type ModeControl interface {
	OnToggleDrawMode(on bool)
	OnToggleEditMode(on bool)
	DrawEnabled() bool
	EditEnabled() bool
}
type SelectionEditor interface {
	OnDeleteSelected() bool
	OnFieldEdit(f Field, value string)
	ApplyFields(x, y, width, height string)
}
type SessionSource interface {
	LoadImage(path string, width, height int)
	Session() Session
	Snapshot() RenderState
}

// MachineContract aggregate for DI.
type MachineContract interface {
	PointerInput
	ModeControl
	SelectionEditor
	SessionSource
	Current() State
	AddRenderListener(RenderListener)
	AddStateListener(StateListener)
}
