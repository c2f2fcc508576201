package export

// VGG Image Annotator (VIA) project JSON.

import (
	"encoding/json"
	"fmt"
)

// VIAShape describes the shape of a region.
type VIAShape struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// VIARegion is a single region of one image.
type VIARegion struct {
	Attributes map[string]string `json:"region_attributes"`
	Shape      VIAShape          `json:"shape_attributes"`
}

// VIAFile holds the regions of one image.
type VIAFile struct {
	Regions    []VIARegion       `json:"regions"`
	Attributes map[string]string `json:"file_attributes"`
	Filename   string            `json:"filename"`
	Size       int64             `json:"size"`
}

// VIAOptionsAttribute declares a radio attribute and its options.
type VIAOptionsAttribute struct {
	Type           string            `json:"type"`
	Description    string            `json:"description"`
	Options        map[string]string `json:"options"`
	DefaultOptions map[string]bool   `json:"default_options"`
}

// VIAAttributes is the attribute metadata block.
type VIAAttributes struct {
	Region map[string]VIAOptionsAttribute `json:"region"`
	File   map[string]VIAOptionsAttribute `json:"file"`
}

// VIAProject is the top level VIA project document.
type VIAProject struct {
	Attributes    VIAAttributes      `json:"_via_attributes"`
	ImageMetadata map[string]VIAFile `json:"_via_img_metadata"`
	// VIA refuses projects without a settings object.
	Settings struct{} `json:"_via_settings"`
}

const viaLabelAttribute = "Label"

// ToVIA converts doc into a single image VIA project.
func ToVIA(doc VOCAnnotation) VIAProject {
	label := VIAOptionsAttribute{
		Type:           "radio",
		Options:        make(map[string]string, len(doc.Objects)),
		DefaultOptions: map[string]bool{},
	}
	file := VIAFile{
		Regions:    make([]VIARegion, 0, len(doc.Objects)),
		Attributes: map[string]string{}, // must not encode as null
		Filename:   doc.Filename,
	}
	for _, o := range doc.Objects {
		b := o.BndBox
		file.Regions = append(file.Regions, VIARegion{
			Attributes: map[string]string{viaLabelAttribute: o.Name},
			Shape: VIAShape{
				Name:   "rect",
				X:      b.XMin,
				Y:      b.YMin,
				Width:  b.XMax - b.XMin,
				Height: b.YMax - b.YMin,
			},
		})
		label.Options[o.Name] = ""
	}
	return VIAProject{
		Attributes: VIAAttributes{
			Region: map[string]VIAOptionsAttribute{viaLabelAttribute: label},
			File:   map[string]VIAOptionsAttribute{},
		},
		ImageMetadata: map[string]VIAFile{doc.Filename: file},
	}
}

// EncodeVIA serializes doc as an indented VIA project.
func EncodeVIA(doc VOCAnnotation) ([]byte, error) {
	enc, err := json.MarshalIndent(ToVIA(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal via: %w", err)
	}
	return enc, nil
}
