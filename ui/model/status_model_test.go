package model

import (
	"testing"
	"time"

	"github.com/soocke/box-annotator/domain/geometry"
)

func TestStatusModel_Lifecycle(t *testing.T) {
	m := NewStatusModel()
	if got := m.Text(); got != "No image loaded" {
		t.Fatalf("unexpected initial text %q", got)
	}

	m.OnLoad("/photos/cat.png")
	if m.Dirty() || m.Count() != 0 {
		t.Fatalf("fresh image must be clean and empty")
	}
	if got := m.Text(); got != "cat.png: 0 boxes" {
		t.Fatalf("unexpected text %q", got)
	}

	// Snapshot without box changes (mode toggle) keeps the model clean.
	m.OnBoxes(nil)
	if m.Dirty() {
		t.Fatalf("unchanged boxes must not mark dirty")
	}

	boxes := []geometry.Rect{{XMin: 1, YMin: 1, XMax: 5, YMax: 5}}
	m.OnBoxes(boxes)
	if !m.Dirty() || m.Count() != 1 {
		t.Fatalf("expected dirty with 1 box")
	}
	if got := m.Text(); got != "cat.png: 1 box (unsaved changes)" {
		t.Fatalf("unexpected text %q", got)
	}

	at := time.Date(2024, 1, 2, 13, 14, 15, 0, time.UTC)
	m.OnSaved("/photos/cat.xml", at)
	if m.Dirty() || m.savedPath != "/photos/cat.xml" {
		t.Fatalf("save should clear dirty flag")
	}
	if got := m.Text(); got != "cat.png: 1 box (saved 13:14:15 to cat.xml)" {
		t.Fatalf("unexpected text %q", got)
	}

	m.OnLoad("/photos/dog.png")
	if m.savedPath != "" || m.Count() != 0 {
		t.Fatalf("load must reset save state")
	}
}

func TestModels_NilSafe(t *testing.T) {
	var s *StatusModel
	s.OnLoad("x")
	s.OnBoxes(nil)
	s.OnSaved("y", time.Time{})
	if s.Dirty() || s.Count() != 0 || s.Text() != "No image loaded" {
		t.Fatalf("nil status model should behave as empty")
	}
	var im *ImageModel
	im.Set("a.png", nil)
	if im.Image() != nil || im.Dir() != "" {
		t.Fatalf("nil image model should behave as empty")
	}
}
