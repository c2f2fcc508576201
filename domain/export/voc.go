package export

// Pascal-VOC style XML annotations.

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/soocke/box-annotator/domain/annotate"
	"github.com/soocke/box-annotator/domain/geometry"
)

var (
	ErrNoImageLoaded = errors.New("no image loaded")
	ErrNoAnnotations = errors.New("no annotations to save")
)

// VOCAnnotation is the document root of one VOC annotation file.
type VOCAnnotation struct {
	XMLName  xml.Name    `xml:"annotation"`
	Filename string      `xml:"filename"`
	Size     VOCSize     `xml:"size"`
	Objects  []VOCObject `xml:"object"`
}

// VOCSize holds the image dimensions in pixels.
type VOCSize struct {
	Width  int `xml:"width"`
	Height int `xml:"height"`
}

// VOCObject is a single labelled box.
type VOCObject struct {
	Name   string    `xml:"name"`
	BndBox VOCBndBox `xml:"bndbox"`
}

// VOCBndBox is a canonical rectangle. Field order is the element order on disk.
type VOCBndBox struct {
	XMin int `xml:"xmin"`
	YMin int `xml:"ymin"`
	XMax int `xml:"xmax"`
	YMax int `xml:"ymax"`
}

// Rect converts the bounding box back into a geometry.Rect.
func (b VOCBndBox) Rect() geometry.Rect {
	return geometry.Rect{XMin: b.XMin, YMin: b.YMin, XMax: b.XMax, YMax: b.YMax}
}

// ObjectName is the generated label of the box at zero-based index i.
func ObjectName(i int) string { return fmt.Sprintf("object_%d", i+1) }

// FromSession converts a session into the VOC document model. Boxes keep their
// collection order and are written as canonical rects.
func FromSession(s annotate.Session) (VOCAnnotation, error) {
	if s.ImagePath == "" {
		return VOCAnnotation{}, ErrNoImageLoaded
	}
	if len(s.Boxes) == 0 {
		return VOCAnnotation{}, ErrNoAnnotations
	}
	doc := VOCAnnotation{
		Filename: filepath.Base(s.ImagePath),
		Size:     VOCSize{Width: s.ImageWidth, Height: s.ImageHeight},
		Objects:  make([]VOCObject, len(s.Boxes)),
	}
	for i, b := range s.Boxes {
		r := b.Rect()
		doc.Objects[i] = VOCObject{
			Name:   ObjectName(i),
			BndBox: VOCBndBox{XMin: r.XMin, YMin: r.YMin, XMax: r.XMax, YMax: r.YMax},
		}
	}
	return doc, nil
}

// Export serializes the session as VOC XML.
func Export(s annotate.Session) ([]byte, error) {
	doc, err := FromSession(s)
	if err != nil {
		return nil, err
	}
	return MarshalVOC(doc)
}

// MarshalVOC encodes doc with two-space indentation and no XML header.
func MarshalVOC(doc VOCAnnotation) ([]byte, error) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal voc: %w", err)
	}
	return append(out, '\n'), nil
}

// ParseVOC decodes a VOC annotation document from r.
func ParseVOC(r io.Reader) (VOCAnnotation, error) {
	var doc VOCAnnotation
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return VOCAnnotation{}, fmt.Errorf("parse voc: %w", err)
	}
	return doc, nil
}

// Rects returns the bounding boxes of doc in document order.
func (a VOCAnnotation) Rects() []geometry.Rect {
	out := make([]geometry.Rect, len(a.Objects))
	for i, o := range a.Objects {
		out[i] = o.BndBox.Rect()
	}
	return out
}

// OutputPath returns the annotation path for imagePath: the image base name with
// ext replacing its extension, in outDir or next to the image when outDir is empty.
func OutputPath(imagePath, outDir, ext string) string {
	base := filepath.Base(imagePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(imagePath)
	}
	return filepath.Join(dir, base+ext)
}
