package model

import (
	"image"
	"path/filepath"
)

// ImageModel holds the image currently shown on the canvas. The zero value has no
// image and is usable. Only touched from the UI thread.
type ImageModel struct {
	path string
	img  image.Image
}

func NewImageModel() *ImageModel { return &ImageModel{} }

// Set replaces the current image. A nil img clears the model.
func (m *ImageModel) Set(path string, img image.Image) {
	if m == nil {
		return
	}
	if img == nil {
		m.path, m.img = "", nil
		return
	}
	m.path, m.img = path, img
}

// Image returns the current image or nil.
func (m *ImageModel) Image() image.Image {
	if m == nil {
		return nil
	}
	return m.img
}

// Dir returns the directory of the current image, or "" when none is loaded.
func (m *ImageModel) Dir() string {
	if m == nil || m.path == "" {
		return ""
	}
	return filepath.Dir(m.path)
}
