package model

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/soocke/box-annotator/domain/geometry"
)

// StatusModel tracks what the status line shows: the number of boxes, whether
// they changed since the last save and where they were saved. The zero value is
// ready to use.
type StatusModel struct {
	image     string
	boxes     []geometry.Rect
	dirty     bool
	savedPath string
	savedAt   time.Time
}

func NewStatusModel() *StatusModel { return &StatusModel{} }

// OnLoad starts tracking a freshly loaded image.
func (m *StatusModel) OnLoad(imagePath string) {
	if m == nil {
		return
	}
	*m = StatusModel{image: imagePath}
}

// OnBoxes records the current boxes. Any difference from the previous set marks
// the model dirty.
func (m *StatusModel) OnBoxes(boxes []geometry.Rect) {
	if m == nil {
		return
	}
	if slices.Equal(m.boxes, boxes) {
		return
	}
	m.boxes = slices.Clone(boxes)
	m.dirty = true
}

// OnSaved clears the dirty flag after a successful save.
func (m *StatusModel) OnSaved(path string, now time.Time) {
	if m == nil {
		return
	}
	m.dirty = false
	m.savedPath = path
	m.savedAt = now
}

// Count returns the number of boxes.
func (m *StatusModel) Count() int {
	if m == nil {
		return 0
	}
	return len(m.boxes)
}

// Dirty reports unsaved changes.
func (m *StatusModel) Dirty() bool { return m != nil && m.dirty }

// Text renders the status line.
func (m *StatusModel) Text() string {
	if m == nil || m.image == "" {
		return "No image loaded"
	}
	noun := "boxes"
	if len(m.boxes) == 1 {
		noun = "box"
	}
	s := fmt.Sprintf("%s: %d %s", filepath.Base(m.image), len(m.boxes), noun)
	switch {
	case m.dirty:
		s += " (unsaved changes)"
	case m.savedPath != "":
		s += fmt.Sprintf(" (saved %s to %s)", m.savedAt.Format("15:04:05"), filepath.Base(m.savedPath))
	}
	return s
}
