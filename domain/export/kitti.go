package export

// KITTI label text.

import (
	"bytes"
	"fmt"
)

// EncodeKITTI writes one KITTI label line per object. Only the type and 2D bbox
// columns carry data; truncation, occlusion, alpha and the 3D columns are zero.
func EncodeKITTI(doc VOCAnnotation) ([]byte, error) {
	var buf bytes.Buffer
	for _, o := range doc.Objects {
		b := o.BndBox
		_, err := fmt.Fprintf(&buf,
			"%s 0.0 0 0.0 %.2f %.2f %.2f %.2f 0.0 0.0 0.0 0.0 0.0 0.0 0.0\n",
			o.Name, float64(b.XMin), float64(b.YMin), float64(b.XMax), float64(b.YMax))
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
