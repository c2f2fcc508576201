package commands

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/soocke/box-annotator/domain/annotate"
	"github.com/soocke/box-annotator/domain/export"
	"github.com/soocke/box-annotator/domain/geometry"
)

func writeFixture(t *testing.T) (imgPath, xmlPath string) {
	t.Helper()
	dir := t.TempDir()
	imgPath = filepath.Join(dir, "cat.png")
	if err := imaging.Save(imaging.New(120, 80, color.White), imgPath); err != nil {
		t.Fatal(err)
	}
	s := annotate.Session{
		ImagePath: imgPath, ImageWidth: 120, ImageHeight: 80,
		Boxes: []geometry.Box{geometry.NewBox(image.Pt(10, 20), image.Pt(50, 60))},
	}
	xmlPath, err := export.NewExporter("", nil, nil).Save(s)
	if err != nil {
		t.Fatal(err)
	}
	return imgPath, xmlPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "cfg.json")))
	err := root.Execute()
	return out.String(), err
}

func TestInspect_PrintsBoxes(t *testing.T) {
	_, xmlPath := writeFixture(t)
	out, err := run(t, "inspect", xmlPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out, "cat.png 120x80, 1 object(s)") {
		t.Fatalf("missing header: %s", out)
	}
	if !strings.Contains(out, "object_1: xmin=10 ymin=20 xmax=50 ymax=60 (40x40)") {
		t.Fatalf("missing box line: %s", out)
	}
}

func TestInspect_Render(t *testing.T) {
	imgPath, xmlPath := writeFixture(t)
	dst := filepath.Join(t.TempDir(), "render.png")
	if _, err := run(t, "inspect", xmlPath, "--image", imgPath, "--render", dst); err != nil {
		t.Fatalf("inspect render: %v", err)
	}
	img, err := imaging.Open(dst)
	if err != nil {
		t.Fatalf("render not written: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("unexpected render size %v", b)
	}
	if _, err := run(t, "inspect", xmlPath, "--render", dst); err == nil {
		t.Fatalf("expected error without --image")
	}
}

func TestConvert_DefaultsNextToInput(t *testing.T) {
	_, xmlPath := writeFixture(t)
	out, err := run(t, "convert", xmlPath, "--to", "kitti")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := strings.TrimSuffix(xmlPath, ".xml") + ".txt"
	if strings.TrimSpace(out) != want {
		t.Fatalf("expected %s, got %s", want, out)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "object_1 0.0 0 0.0 10.00 20.00 50.00 60.00") {
		t.Fatalf("unexpected kitti line %q", data)
	}
}

func TestConvert_Errors(t *testing.T) {
	_, xmlPath := writeFixture(t)
	if _, err := run(t, "convert", xmlPath, "--to", "yolo"); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if _, err := run(t, "convert", xmlPath, "--to", "voc"); err == nil {
		t.Fatalf("expected refusal to overwrite the input")
	}
	if _, err := run(t, "convert", filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Fatalf("expected error for missing input")
	}
}

func TestParseLevel(t *testing.T) {
	if l, _ := ParseLevel("", false); l != slog.LevelInfo {
		t.Fatalf("default should be info, got %v", l)
	}
	if l, _ := ParseLevel("", true); l != slog.LevelDebug {
		t.Fatalf("debug config should select debug, got %v", l)
	}
	if l, _ := ParseLevel("WARN", false); l != slog.LevelWarn {
		t.Fatalf("expected warn, got %v", l)
	}
	if _, err := ParseLevel("loud", false); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
