package annotate

import (
	"image"
	"log/slog"
	"runtime/debug"

	"github.com/soocke/box-annotator/domain/boxes"
	"github.com/soocke/box-annotator/domain/geometry"
)

// Machine owns the annotation session and turns pointer, mode and form events
// into box collection mutations. All methods run synchronously on the caller's
// goroutine (the UI thread); the machine is not safe for concurrent use.
type Machine struct {
	logger     *slog.Logger
	handleSize int

	imagePath     string
	width, height int
	boxes         *boxes.Collection

	state       State
	drawEnabled bool
	editEnabled bool
	selected    int

	// Drawing.
	start, end image.Point
	// Resizing / moving.
	grip      geometry.Grip
	dragStart geometry.Box
	anchor    image.Point

	dispatching    bool
	listeners      []RenderListener
	stateListeners []StateListener
}

// NewMachine constructs an idle machine over col. A nil col gets a fresh
// collection; handleSize <= 0 falls back to geometry.DefaultHandleSize.
func NewMachine(col *boxes.Collection, logger *slog.Logger, handleSize int) *Machine {
	if col == nil {
		col = boxes.NewCollection()
	}
	if handleSize <= 0 {
		handleSize = geometry.DefaultHandleSize
	}
	return &Machine{logger: logger, handleSize: handleSize, boxes: col, state: StateIdle, selected: NoSelection}
}

// dispatch runs fn as one event. Nested calls from listeners are dropped, and a
// snapshot is emitted when fn reports a change.
func (m *Machine) dispatch(name string, fn func() bool) {
	if m.dispatching {
		if m.logger != nil {
			m.logger.Error("re-entrant annotate event dropped", "event", name)
		}
		return
	}
	m.dispatching = true
	defer func() { m.dispatching = false }()
	if fn() {
		m.emit()
	}
}

func (m *Machine) emit() {
	if len(m.listeners) == 0 {
		return
	}
	snap := m.snapshot()
	for _, l := range m.listeners {
		callListener(m.logger, func() { l(snap) })
	}
}

func (m *Machine) transition(next State) {
	prev := m.state
	if prev == next {
		return
	}
	m.state = next
	if m.logger != nil {
		m.logger.Debug("annotate state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range m.stateListeners {
		callListener(m.logger, func() { l(prev, next) })
	}
}

// restState is where the machine rests when no pointer operation is active.
func (m *Machine) restState() State {
	if m.editEnabled {
		return StateSelectedIdle
	}
	return StateIdle
}

// validSelection drops a selection that no longer addresses a box, for example
// after the collection was shortened behind the machine's back.
func (m *Machine) validSelection() bool {
	if m.selected == NoSelection {
		return false
	}
	if m.boxes.InRange(m.selected) {
		return true
	}
	if m.logger != nil {
		m.logger.Warn("stale selection cleared", "index", m.selected, "len", m.boxes.Len())
	}
	m.selected = NoSelection
	if m.state == StateResizing || m.state == StateMoving {
		m.transition(m.restState())
	}
	return false
}

// cancelOperation abandons a draw or drag in progress, restoring a dragged box.
func (m *Machine) cancelOperation() {
	switch m.state {
	case StateResizing, StateMoving:
		if m.validSelection() {
			_ = m.boxes.Replace(m.selected, m.dragStart)
		}
	}
	m.grip = geometry.Grip{}
	m.anchor = image.Point{}
}

// LoadImage starts a new session for the image at path, discarding all boxes.
func (m *Machine) LoadImage(path string, width, height int) {
	m.dispatch("load", func() bool {
		m.cancelOperation()
		m.imagePath, m.width, m.height = path, width, height
		m.boxes.Clear()
		m.selected = NoSelection
		m.transition(m.restState())
		if m.logger != nil {
			m.logger.Info("image loaded", "path", path, "width", width, "height", height)
		}
		return true
	})
}

// OnPress handles a primary button press at p in image coordinates.
func (m *Machine) OnPress(p image.Point) {
	m.dispatch("press", func() bool {
		if m.imagePath == "" {
			return false
		}
		switch {
		case m.drawEnabled:
			m.start, m.end = p, p
			m.transition(StateDrawing)
			return true
		case m.editEnabled:
			if m.state == StateResizing || m.state == StateMoving {
				m.finishDrag()
			}
			m.pressEdit(p)
			return true
		}
		return false
	})
}

func (m *Machine) pressEdit(p image.Point) {
	m.selected = NoSelection
	for i, b := range m.boxes.Backward() {
		if geometry.Contains(b, p) {
			m.selected = i
			break
		}
	}
	if m.selected == NoSelection {
		m.transition(StateSelectedIdle)
		return
	}
	b, _ := m.boxes.Get(m.selected)
	m.dragStart = b
	if h := geometry.ClassifyHandle(b, p, m.handleSize); h != geometry.HandleNone {
		m.grip = geometry.ResolveGrip(b, h)
		m.transition(StateResizing)
		return
	}
	m.anchor = p
	m.transition(StateMoving)
}

// OnMove handles pointer motion at p.
func (m *Machine) OnMove(p image.Point) {
	m.dispatch("move", func() bool {
		switch m.state {
		case StateDrawing:
			if m.end == p {
				return false
			}
			m.end = p
			return true
		case StateResizing:
			if !m.validSelection() {
				return true
			}
			b, _ := m.boxes.Get(m.selected)
			next := m.grip.Apply(b, p)
			if next == b {
				return false
			}
			_ = m.boxes.Replace(m.selected, next)
			return true
		case StateMoving:
			if !m.validSelection() {
				return true
			}
			delta := p.Sub(m.anchor)
			if delta == (image.Point{}) {
				return false
			}
			b, _ := m.boxes.Get(m.selected)
			_ = m.boxes.Replace(m.selected, geometry.Translate(b, delta))
			m.anchor = p
			return true
		}
		return false
	})
}

// OnRelease handles the primary button release at p.
func (m *Machine) OnRelease(p image.Point) {
	m.dispatch("release", func() bool {
		switch m.state {
		case StateDrawing:
			m.end = p
			b := geometry.NewBox(m.start, m.end)
			if b.Valid() {
				idx := m.boxes.Append(b)
				if m.logger != nil {
					m.logger.Debug("box committed", "index", idx, "rect", b.Rect())
				}
			}
			m.transition(StateIdle)
			return true
		case StateResizing, StateMoving:
			m.finishDrag()
			return true
		}
		return false
	})
}

// finishDrag ends a resize or move. A resize that collapsed the box to zero area
// is rolled back to the box at drag start.
func (m *Machine) finishDrag() {
	if m.state == StateResizing && m.validSelection() {
		if b, _ := m.boxes.Get(m.selected); !b.Valid() {
			_ = m.boxes.Replace(m.selected, m.dragStart)
			if m.logger != nil {
				m.logger.Debug("degenerate resize reverted", "index", m.selected)
			}
		}
	}
	m.grip = geometry.Grip{}
	m.anchor = image.Point{}
	m.transition(StateSelectedIdle)
}

// OnDeleteSelected removes the selected box. It reports whether a box was removed.
func (m *Machine) OnDeleteSelected() bool {
	removed := false
	m.dispatch("delete", func() bool {
		if !m.validSelection() {
			return false
		}
		if err := m.boxes.RemoveAt(m.selected); err != nil {
			return false
		}
		if m.logger != nil {
			m.logger.Debug("box deleted", "index", m.selected)
		}
		m.selected = NoSelection
		m.grip = geometry.Grip{}
		m.transition(m.restState())
		removed = true
		return true
	})
	return removed
}

// OnFieldEdit replaces one coordinate of the selected box. Non-integer values and
// a zero width or height are ignored; negative sizes store an inverted box.
func (m *Machine) OnFieldEdit(f Field, value string) {
	m.dispatch("field", func() bool {
		if !m.validSelection() {
			return false
		}
		v, err := ParseFieldValue(value)
		if err != nil {
			return false
		}
		b, _ := m.boxes.Get(m.selected)
		next, err := withField(b.Rect(), f, v)
		if err != nil || next == b {
			return false
		}
		_ = m.boxes.Replace(m.selected, next)
		return true
	})
}

// ApplyFields replaces the selected box from all four form values at once. Any
// invalid value leaves the box unchanged.
func (m *Machine) ApplyFields(x, y, width, height string) {
	m.dispatch("apply", func() bool {
		if !m.validSelection() {
			return false
		}
		var vals [4]int
		for i, s := range [4]string{x, y, width, height} {
			v, err := ParseFieldValue(s)
			if err != nil {
				return false
			}
			vals[i] = v
		}
		next, err := boxFromFields(vals[0], vals[1], vals[2], vals[3])
		if err != nil {
			return false
		}
		_ = m.boxes.Replace(m.selected, next)
		return true
	})
}

// OnToggleDrawMode arms or disarms drawing. Arming disables edit mode. Either way
// any operation in progress is cancelled and the selection cleared.
func (m *Machine) OnToggleDrawMode(on bool) {
	m.dispatch("toggle-draw", func() bool {
		m.cancelOperation()
		m.drawEnabled = on
		if on {
			m.editEnabled = false
		}
		m.selected = NoSelection
		m.transition(m.restState())
		return true
	})
}

// OnToggleEditMode enables or disables editing. Enabling disables draw mode.
func (m *Machine) OnToggleEditMode(on bool) {
	m.dispatch("toggle-edit", func() bool {
		m.cancelOperation()
		m.editEnabled = on
		if on {
			m.drawEnabled = false
		}
		m.selected = NoSelection
		m.transition(m.restState())
		return true
	})
}

// Current returns the current interaction state.
func (m *Machine) Current() State { return m.state }

// DrawEnabled reports whether draw mode is armed.
func (m *Machine) DrawEnabled() bool { return m.drawEnabled }

// EditEnabled reports whether edit mode is active.
func (m *Machine) EditEnabled() bool { return m.editEnabled }

// Selected returns the selected index, if any.
func (m *Machine) Selected() (int, bool) {
	if !m.boxes.InRange(m.selected) {
		return NoSelection, false
	}
	return m.selected, true
}

// Snapshot returns the current render state.
func (m *Machine) Snapshot() RenderState { return m.snapshot() }

func (m *Machine) snapshot() RenderState {
	rs := RenderState{
		Boxes:       make([]geometry.Rect, 0, m.boxes.Len()),
		Selected:    NoSelection,
		State:       m.state,
		DrawEnabled: m.drawEnabled,
		EditEnabled: m.editEnabled,
		ImageLoaded: m.imagePath != "",
	}
	for _, b := range m.boxes.All() {
		rs.Boxes = append(rs.Boxes, b.Rect())
	}
	if m.boxes.InRange(m.selected) {
		rs.Selected = m.selected
	}
	if m.state == StateDrawing {
		r := geometry.NewBox(m.start, m.end).Rect()
		rs.InProgress = &r
	}
	return rs
}

// Session returns a copy of the session data for export.
func (m *Machine) Session() Session {
	return Session{ImagePath: m.imagePath, ImageWidth: m.width, ImageHeight: m.height, Boxes: m.boxes.Boxes()}
}

// AddRenderListener registers l for snapshots after every mutation.
func (m *Machine) AddRenderListener(l RenderListener) { m.listeners = append(m.listeners, l) }

// AddStateListener registers l for state transitions.
func (m *Machine) AddStateListener(l StateListener) { m.stateListeners = append(m.stateListeners, l) }

func callListener(logger *slog.Logger, fn func()) {
	defer func() {
		if r := recover(); r != nil && logger != nil {
			logger.Error("annotate listener panic", "error", r, "stack", string(debug.Stack()))
		}
	}()
	fn()
}

// Ensure contract satisfaction
var _ MachineContract = (*Machine)(nil)
