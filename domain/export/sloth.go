package export

// Sloth label JSON.

import (
	"encoding/json"
	"fmt"
)

// SlothAnnotation is a single rect in a Sloth file.
type SlothAnnotation struct {
	Class  string  `json:"class,omitempty"`
	Type   string  `json:"type,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SlothFile holds the annotations of one image.
type SlothFile struct {
	Annotations []SlothAnnotation `json:"annotations"`
	Class       string            `json:"class,omitempty"`
	Filename    string            `json:"filename,omitempty"`
}

// ToSloth converts doc into a one element Sloth list.
func ToSloth(doc VOCAnnotation) []SlothFile {
	f := SlothFile{
		Annotations: make([]SlothAnnotation, len(doc.Objects)),
		Class:       "image",
		Filename:    doc.Filename,
	}
	for i, o := range doc.Objects {
		b := o.BndBox
		f.Annotations[i] = SlothAnnotation{
			Class:  o.Name,
			Type:   "rect",
			X:      float64(b.XMin),
			Y:      float64(b.YMin),
			Width:  float64(b.XMax - b.XMin),
			Height: float64(b.YMax - b.YMin),
		}
	}
	return []SlothFile{f}
}

// EncodeSloth serializes doc as indented Sloth JSON.
func EncodeSloth(doc VOCAnnotation) ([]byte, error) {
	enc, err := json.MarshalIndent(ToSloth(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sloth: %w", err)
	}
	return enc, nil
}
