package annotate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/soocke/box-annotator/domain/geometry"
)

// ErrInvalidFieldInput marks a form value that is not an integer or would collapse
// the box to zero width or height. The machine swallows it and keeps the previous box.
var ErrInvalidFieldInput = errors.New("invalid field input")

// ParseFieldValue parses one integer form value.
func ParseFieldValue(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFieldInput, s)
	}
	return v, nil
}

// withField returns the box described by r with field f replaced by value.
// The result always has P0 at (x, y) and P1 at (x+width, y+height).
func withField(r geometry.Rect, f Field, value int) (geometry.Box, error) {
	x, y, w, h := r.XMin, r.YMin, r.Width(), r.Height()
	switch f {
	case FieldX:
		x = value
	case FieldY:
		y = value
	case FieldWidth:
		w = value
	case FieldHeight:
		h = value
	default:
		return geometry.Box{}, fmt.Errorf("%w: unknown field %v", ErrInvalidFieldInput, f)
	}
	return boxFromFields(x, y, w, h)
}

// boxFromFields builds the box from form values. A negative width or height
// yields an inverted box; zero collapses it and is rejected.
func boxFromFields(x, y, w, h int) (geometry.Box, error) {
	if w == 0 || h == 0 {
		return geometry.Box{}, fmt.Errorf("%w: size %dx%d", ErrInvalidFieldInput, w, h)
	}
	return geometry.BoxFromXYWH(x, y, w, h), nil
}
