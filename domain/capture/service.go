package capture

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/disintegration/imaging"
)

// GrabFunc captures one frame.
type GrabFunc func() (*image.RGBA, error)

// Result describes a saved capture.
type Result struct {
	Path       string
	Width      int
	Height     int
	CapturedAt time.Time
}

// Service grabs the screen and stores each frame as a PNG so it can be
// annotated like any other image file.
type Service struct {
	dir      string
	grab     GrabFunc
	logger   *slog.Logger
	now      func() time.Time
	captures atomic.Uint64
}

// NewService constructs a capture service writing into dir (os.TempDir when
// empty). A nil grab uses the full-screen Grab.
func NewService(dir string, grab GrabFunc, logger *slog.Logger) *Service {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "box-annotator")
	}
	if grab == nil {
		grab = Grab
	}
	return &Service{dir: dir, grab: grab, logger: logger, now: time.Now}
}

// Dir returns the directory captures are written to.
func (s *Service) Dir() string { return s.dir }

// Captures returns the number of successful captures.
func (s *Service) Captures() uint64 { return s.captures.Load() }

// Capture grabs a frame and writes it to a timestamped PNG.
func (s *Service) Capture() (Result, error) {
	start := s.now()
	img, err := s.grab()
	if err != nil {
		return Result{}, err
	}
	if img == nil || img.Bounds().Empty() {
		return Result{}, fmt.Errorf("capture: no frame")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create capture dir: %w", err)
	}
	seq := s.captures.Add(1)
	name := fmt.Sprintf("capture-%s-%03d.png", start.Format("20060102-150405"), seq)
	path := filepath.Join(s.dir, name)
	if err := imaging.Save(img, path); err != nil {
		s.captures.Add(^uint64(0))
		return Result{}, fmt.Errorf("save capture: %w", err)
	}
	b := img.Bounds()
	if s.logger != nil {
		s.logger.Info("screen captured", "path", path, "width", b.Dx(), "height", b.Dy(), "elapsed", s.now().Sub(start))
	}
	return Result{Path: path, Width: b.Dx(), Height: b.Dy(), CapturedAt: start}, nil
}
