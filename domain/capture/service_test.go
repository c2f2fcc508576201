package capture

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func fakeGrab(w, h int) GrabFunc {
	return func() (*image.RGBA, error) {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		img.Set(1, 1, color.RGBA{R: 255, A: 255})
		return img, nil
	}
}

func TestService_CaptureWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "caps")
	s := NewService(dir, fakeGrab(40, 30), nil)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	res, err := s.Capture()
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if res.Width != 40 || res.Height != 30 {
		t.Fatalf("unexpected size %dx%d", res.Width, res.Height)
	}
	if filepath.Base(res.Path) != "capture-20240501-120000-001.png" {
		t.Fatalf("unexpected name %s", res.Path)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Fatalf("capture not written: %v", err)
	}
	if s.Captures() != 1 {
		t.Fatalf("expected 1 capture, got %d", s.Captures())
	}
}

func TestService_GrabErrorWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "caps")
	boom := errors.New("no display")
	s := NewService(dir, func() (*image.RGBA, error) { return nil, boom }, nil)
	if _, err := s.Capture(); !errors.Is(err, boom) {
		t.Fatalf("expected grab error, got %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("capture dir should not be created on failure")
	}
	if s.Captures() != 0 {
		t.Fatalf("failed capture counted")
	}
}

func TestGrabSelection_Empty(t *testing.T) {
	if _, err := GrabSelection(image.Rectangle{}); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestRegionGrab_EmptyUsesFullScreen(t *testing.T) {
	if got := RegionGrab(image.Rectangle{}); reflect.ValueOf(got).Pointer() != reflect.ValueOf(GrabFunc(Grab)).Pointer() {
		t.Fatalf("empty region must fall back to Grab")
	}
	if got := RegionGrab(image.Rect(0, 0, 10, 10)); got == nil {
		t.Fatalf("expected region grab func")
	}
}
