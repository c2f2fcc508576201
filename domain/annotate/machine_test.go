package annotate

import (
	"image"
	"log/slog"
	"testing"

	"github.com/soocke/box-annotator/domain/boxes"
	"github.com/soocke/box-annotator/domain/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// newTestMachine returns a machine with an image loaded.
func newTestMachine() *Machine {
	m := NewMachine(nil, discardLogger, geometry.DefaultHandleSize)
	m.LoadImage("/tmp/cat.png", 300, 200)
	return m
}

func drawBox(m *Machine, from, to image.Point) {
	m.OnPress(from)
	m.OnMove(to)
	m.OnRelease(to)
}

func rectOf(t *testing.T, m *Machine, i int) geometry.Rect {
	t.Helper()
	snap := m.Snapshot()
	if i >= len(snap.Boxes) {
		t.Fatalf("no box at %d (have %d)", i, len(snap.Boxes))
	}
	return snap.Boxes[i]
}

func TestMachine_DrawCommitsNonDegenerateBox(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)

	drawBox(m, image.Pt(10, 10), image.Pt(10, 10))
	if n := len(m.Snapshot().Boxes); n != 0 {
		t.Fatalf("zero-area drag committed %d boxes", n)
	}

	drawBox(m, image.Pt(10, 10), image.Pt(50, 40))
	snap := m.Snapshot()
	if len(snap.Boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(snap.Boxes))
	}
	if snap.Boxes[0] != (geometry.Rect{XMin: 10, YMin: 10, XMax: 50, YMax: 40}) {
		t.Fatalf("unexpected rect %+v", snap.Boxes[0])
	}
	if m.Current() != StateIdle || !m.DrawEnabled() {
		t.Fatalf("draw tool should stay armed in idle, got state=%v draw=%v", m.Current(), m.DrawEnabled())
	}
}

func TestMachine_DrawingReportsInProgress(t *testing.T) {
	m := newTestMachine()
	var last RenderState
	m.AddRenderListener(func(rs RenderState) { last = rs })
	m.OnToggleDrawMode(true)
	m.OnPress(image.Pt(40, 40))
	m.OnMove(image.Pt(20, 60))
	if m.Current() != StateDrawing {
		t.Fatalf("expected drawing, got %v", m.Current())
	}
	if last.InProgress == nil || *last.InProgress != (geometry.Rect{XMin: 20, YMin: 40, XMax: 40, YMax: 60}) {
		t.Fatalf("unexpected in-progress rect %+v", last.InProgress)
	}
	if len(last.Boxes) != 0 {
		t.Fatalf("move must not commit")
	}
	m.OnRelease(image.Pt(20, 60))
	if last.InProgress != nil || len(last.Boxes) != 1 {
		t.Fatalf("release should clear preview and commit, got %+v", last)
	}
}

func TestMachine_IgnoresPointerWithoutImage(t *testing.T) {
	m := NewMachine(nil, discardLogger, 0)
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(0, 0), image.Pt(20, 20))
	if len(m.Snapshot().Boxes) != 0 || m.Current() != StateIdle {
		t.Fatalf("pointer events without an image must be ignored")
	}
}

func TestMachine_EditSelectsTopmost(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(0, 0), image.Pt(100, 100))
	drawBox(m, image.Pt(40, 40), image.Pt(80, 80))
	m.OnToggleEditMode(true)

	m.OnPress(image.Pt(60, 60))
	if idx, ok := m.Selected(); !ok || idx != 1 {
		t.Fatalf("expected most recent box selected, got %d ok=%v", idx, ok)
	}
	if m.Current() != StateMoving {
		t.Fatalf("interior press should start moving, got %v", m.Current())
	}
	m.OnRelease(image.Pt(60, 60))
	if m.Current() != StateSelectedIdle {
		t.Fatalf("expected selected idle after release, got %v", m.Current())
	}

	m.OnPress(image.Pt(20, 20))
	if idx, ok := m.Selected(); !ok || idx != 0 {
		t.Fatalf("expected bottom box selected, got %d ok=%v", idx, ok)
	}
	m.OnRelease(image.Pt(20, 20))

	m.OnPress(image.Pt(250, 150))
	if _, ok := m.Selected(); ok {
		t.Fatalf("press on empty area must clear selection")
	}
	if m.Current() != StateSelectedIdle {
		t.Fatalf("expected selected idle with no selection, got %v", m.Current())
	}
}

func TestMachine_MoveUsesIncrementalDeltas(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(10, 10), image.Pt(50, 50))
	m.OnToggleEditMode(true)

	m.OnPress(image.Pt(30, 30))
	m.OnMove(image.Pt(35, 30))
	m.OnMove(image.Pt(40, 32))
	m.OnRelease(image.Pt(40, 32))

	if r := rectOf(t, m, 0); r != (geometry.Rect{XMin: 20, YMin: 12, XMax: 60, YMax: 52}) {
		t.Fatalf("unexpected moved rect %+v", r)
	}
}

func TestMachine_ResizeInversionStaysCanonical(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(10, 10), image.Pt(50, 50))
	m.OnToggleEditMode(true)

	m.OnPress(image.Pt(50, 50))
	if m.Current() != StateResizing {
		t.Fatalf("press on corner should resize, got %v", m.Current())
	}
	m.OnMove(image.Pt(0, 0))
	m.OnRelease(image.Pt(0, 0))

	r := rectOf(t, m, 0)
	if r.XMin >= r.XMax || r.YMin >= r.YMax {
		t.Fatalf("inverted rect not canonical: %+v", r)
	}
	if r != (geometry.Rect{XMin: 0, YMin: 0, XMax: 10, YMax: 10}) {
		t.Fatalf("unexpected rect %+v", r)
	}
	if m.Current() != StateSelectedIdle {
		t.Fatalf("expected selected idle, got %v", m.Current())
	}
}

func TestMachine_ResizeToZeroAreaReverts(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(10, 10), image.Pt(50, 50))
	m.OnToggleEditMode(true)

	m.OnPress(image.Pt(50, 30)) // right edge
	m.OnMove(image.Pt(10, 30))
	m.OnRelease(image.Pt(10, 30))
	if r := rectOf(t, m, 0); r != (geometry.Rect{XMin: 10, YMin: 10, XMax: 50, YMax: 50}) {
		t.Fatalf("degenerate resize should revert, got %+v", r)
	}
}

func TestMachine_DeleteSelected(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(0, 0), image.Pt(10, 10))
	drawBox(m, image.Pt(20, 20), image.Pt(30, 30))
	drawBox(m, image.Pt(40, 40), image.Pt(50, 50))
	m.OnToggleEditMode(true)

	if m.OnDeleteSelected() {
		t.Fatalf("delete without selection must be a no-op")
	}
	m.OnPress(image.Pt(25, 25))
	m.OnRelease(image.Pt(25, 25))
	if !m.OnDeleteSelected() {
		t.Fatalf("expected delete to remove the selected box")
	}
	snap := m.Snapshot()
	if len(snap.Boxes) != 2 || snap.Boxes[1] != (geometry.Rect{XMin: 40, YMin: 40, XMax: 50, YMax: 50}) {
		t.Fatalf("unexpected boxes after delete %+v", snap.Boxes)
	}
	if snap.HasSelection() || m.Current() != StateSelectedIdle {
		t.Fatalf("selection should be cleared, state=%v", m.Current())
	}
}

func TestMachine_FieldEdits(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(50, 40), image.Pt(10, 10))
	m.OnToggleEditMode(true)
	m.OnPress(image.Pt(20, 20))
	m.OnRelease(image.Pt(20, 20))

	m.OnFieldEdit(FieldWidth, "100")
	if r := rectOf(t, m, 0); r != (geometry.Rect{XMin: 10, YMin: 10, XMax: 110, YMax: 40}) {
		t.Fatalf("unexpected rect after width edit %+v", r)
	}
	m.OnFieldEdit(FieldX, "abc")
	m.OnFieldEdit(FieldHeight, "0")
	if r := rectOf(t, m, 0); r != (geometry.Rect{XMin: 10, YMin: 10, XMax: 110, YMax: 40}) {
		t.Fatalf("invalid input must be ignored, got %+v", r)
	}
	m.ApplyFields("1", "2", "3", "4")
	if r := rectOf(t, m, 0); r != (geometry.Rect{XMin: 1, YMin: 2, XMax: 4, YMax: 6}) {
		t.Fatalf("unexpected rect after apply %+v", r)
	}
	m.ApplyFields("1", "2", "x", "4")
	if r := rectOf(t, m, 0); r != (geometry.Rect{XMin: 1, YMin: 2, XMax: 4, YMax: 6}) {
		t.Fatalf("apply with invalid input must be ignored, got %+v", r)
	}
}

func TestMachine_FieldEditNegativeWidthInverts(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(50, 60), image.Pt(10, 20))
	m.OnToggleEditMode(true)
	m.OnPress(image.Pt(30, 40))
	m.OnRelease(image.Pt(30, 40))

	m.OnFieldEdit(FieldX, "+7")
	b, _ := m.boxes.Get(0)
	if b != geometry.NewBox(image.Pt(7, 20), image.Pt(47, 60)) {
		t.Fatalf("unexpected box after x edit %+v", b)
	}
	m.OnFieldEdit(FieldWidth, "-5")
	b, _ = m.boxes.Get(0)
	if b != geometry.NewBox(image.Pt(7, 20), image.Pt(2, 60)) {
		t.Fatalf("negative width must invert the box, got %+v", b)
	}
	if r := rectOf(t, m, 0); r != (geometry.Rect{XMin: 2, YMin: 20, XMax: 7, YMax: 60}) {
		t.Fatalf("canonical rect not normalized %+v", r)
	}
	m.ApplyFields("1", "2", "-3", "-4")
	if r := rectOf(t, m, 0); r != (geometry.Rect{XMin: -2, YMin: -2, XMax: 1, YMax: 2}) {
		t.Fatalf("apply with negative sizes %+v", r)
	}
	m.ApplyFields("1", "2", "0", "4")
	if r := rectOf(t, m, 0); r != (geometry.Rect{XMin: -2, YMin: -2, XMax: 1, YMax: 2}) {
		t.Fatalf("zero width must be ignored, got %+v", r)
	}
}

func TestMachine_ToggleDrawClearsEditAndSelection(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(10, 10), image.Pt(50, 50))
	m.OnToggleEditMode(true)
	if m.DrawEnabled() {
		t.Fatalf("edit mode must disarm drawing")
	}
	m.OnPress(image.Pt(30, 30))
	m.OnRelease(image.Pt(30, 30))
	if _, ok := m.Selected(); !ok {
		t.Fatalf("expected a selection before toggling")
	}

	m.OnToggleDrawMode(true)
	if m.EditEnabled() {
		t.Fatalf("draw mode must disable edit mode")
	}
	if _, ok := m.Selected(); ok {
		t.Fatalf("toggling mode must clear the selection")
	}
	if m.Current() != StateIdle {
		t.Fatalf("expected idle, got %v", m.Current())
	}
}

func TestMachine_StaleSelectionIsCleared(t *testing.T) {
	col := boxes.NewCollection()
	m := NewMachine(col, discardLogger, 0)
	m.LoadImage("a.png", 100, 100)
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(10, 10), image.Pt(50, 50))
	m.OnToggleEditMode(true)
	m.OnPress(image.Pt(30, 30))
	if m.Current() != StateMoving {
		t.Fatalf("expected moving, got %v", m.Current())
	}

	// Shrink the collection behind the machine's back.
	if err := col.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	m.OnMove(image.Pt(35, 35))
	if _, ok := m.Selected(); ok {
		t.Fatalf("stale selection should be cleared")
	}
	if m.Current() != StateSelectedIdle {
		t.Fatalf("expected selected idle after stale drag, got %v", m.Current())
	}
	if m.OnDeleteSelected() {
		t.Fatalf("delete on stale selection must not remove anything")
	}
}

func TestMachine_LoadImageResetsSession(t *testing.T) {
	m := newTestMachine()
	m.OnToggleDrawMode(true)
	drawBox(m, image.Pt(10, 10), image.Pt(50, 50))
	m.LoadImage("/tmp/dog.png", 640, 480)
	s := m.Session()
	if s.ImagePath != "/tmp/dog.png" || s.ImageWidth != 640 || s.ImageHeight != 480 || len(s.Boxes) != 0 {
		t.Fatalf("unexpected session after reload %+v", s)
	}
	if !m.DrawEnabled() {
		t.Fatalf("mode should survive an image reload")
	}
}

func TestMachine_StateListenerAndReentrancy(t *testing.T) {
	m := newTestMachine()
	var seq []State
	m.AddStateListener(func(prev, next State) { seq = append(seq, next) })
	m.AddRenderListener(func(RenderState) {
		// Calling back into the machine from a listener is dropped.
		m.OnToggleEditMode(true)
	})
	m.OnToggleDrawMode(true)
	m.OnPress(image.Pt(1, 1))
	m.OnRelease(image.Pt(5, 5))
	if m.EditEnabled() {
		t.Fatalf("re-entrant call must not take effect")
	}
	if len(seq) != 2 || seq[0] != StateDrawing || seq[1] != StateIdle {
		t.Fatalf("unexpected transitions %v", seq)
	}
}
