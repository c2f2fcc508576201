package images

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for files whose extension is not an image type
// the annotator can open.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Extensions lists the file extensions offered by the open dialog.
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}

// Supported reports whether path has one of Extensions.
func Supported(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// Load decodes the image at path, applying EXIF orientation so that pixel
// coordinates match what the user sees.
func Load(path string) (image.Image, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		if img, werr := decodeWebP(path); werr == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("load image %s: %w", path, err)
}

// decodeWebP covers lossless/alpha variants the x/image decoder rejects.
func decodeWebP(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return webp.Decode(f)
}

// Size returns the pixel dimensions of img.
func Size(img image.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
