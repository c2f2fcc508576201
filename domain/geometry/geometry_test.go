package geometry

import (
	"image"
	"testing"
)

func TestCanonicalRect_AnyCornerOrder(t *testing.T) {
	boxes := []Box{
		NewBox(image.Pt(10, 10), image.Pt(50, 40)),
		NewBox(image.Pt(50, 40), image.Pt(10, 10)),
		NewBox(image.Pt(50, 10), image.Pt(10, 40)),
		NewBox(image.Pt(10, 40), image.Pt(50, 10)),
	}
	want := Rect{XMin: 10, YMin: 10, XMax: 50, YMax: 40}
	for _, b := range boxes {
		r := CanonicalRect(b)
		if r != want {
			t.Fatalf("canonical rect of %v: got %+v want %+v", b, r, want)
		}
		if r.XMin > r.XMax || r.YMin > r.YMax {
			t.Fatalf("rect not normalized: %+v", r)
		}
	}
}

func TestBox_Valid(t *testing.T) {
	if NewBox(image.Pt(10, 10), image.Pt(10, 10)).Valid() {
		t.Fatalf("zero area box reported valid")
	}
	if NewBox(image.Pt(10, 10), image.Pt(10, 40)).Valid() {
		t.Fatalf("zero width box reported valid")
	}
	if !NewBox(image.Pt(50, 40), image.Pt(10, 10)).Valid() {
		t.Fatalf("inverted box should be valid")
	}
}

func TestContains_BoundaryInclusive(t *testing.T) {
	b := NewBox(image.Pt(100, 100), image.Pt(0, 0))
	for _, p := range []image.Point{{0, 0}, {100, 100}, {0, 50}, {50, 100}, {50, 50}} {
		if !Contains(b, p) {
			t.Fatalf("expected %v inside %v", p, b)
		}
	}
	for _, p := range []image.Point{{-1, 0}, {101, 50}, {50, 101}} {
		if Contains(b, p) {
			t.Fatalf("expected %v outside %v", p, b)
		}
	}
}

func TestTranslate(t *testing.T) {
	b := Translate(NewBox(image.Pt(40, 30), image.Pt(10, 10)), image.Pt(5, -3))
	if b.P0 != image.Pt(45, 27) || b.P1 != image.Pt(15, 7) {
		t.Fatalf("unexpected translated box %v", b)
	}
}

func TestBoxFromXYWH(t *testing.T) {
	r := BoxFromXYWH(5, 6, 10, 20).Rect()
	if r != (Rect{XMin: 5, YMin: 6, XMax: 15, YMax: 26}) {
		t.Fatalf("unexpected rect %+v", r)
	}
	if r.Width() != 10 || r.Height() != 20 {
		t.Fatalf("unexpected size %dx%d", r.Width(), r.Height())
	}
}
