package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HandleSize != 6 || cfg.WindowWidth != 1100 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.LastImageDir = "/photos"
	cfg.ExtraFormats = []string{"KITTI", "via", "coco", "via"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LastImageDir != "/photos" {
		t.Fatalf("last dir not persisted: %+v", got)
	}
	if len(got.ExtraFormats) != 2 || got.ExtraFormats[0] != "kitti" || got.ExtraFormats[1] != "via" {
		t.Fatalf("unexpected formats %v", got.ExtraFormats)
	}
}

func TestValidate_Clamps(t *testing.T) {
	cfg := &Config{HandleSize: -1, WindowWidth: 10, WindowHeight: 10}
	_ = cfg.Validate()
	if cfg.HandleSize != 6 || cfg.WindowWidth != MinWindowWidth || cfg.WindowHeight != MinWindowHeight {
		t.Fatalf("validate did not clamp: %+v", cfg)
	}
}

func TestValidate_CaptureRegion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaptureRegion = Region{X: 5, Y: 5, Width: -10, Height: 20}
	_ = cfg.Validate()
	if cfg.CaptureRegion != (Region{}) {
		t.Fatalf("region without area must reset, got %+v", cfg.CaptureRegion)
	}
	cfg.CaptureRegion = Region{X: 5, Y: 6, Width: 100, Height: 50}
	_ = cfg.Validate()
	if cfg.CaptureRegion.Empty() || cfg.CaptureRegion.Width != 100 {
		t.Fatalf("valid region changed: %+v", cfg.CaptureRegion)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.HandleSize != 6 {
		t.Fatalf("expected defaults alongside error")
	}
}
