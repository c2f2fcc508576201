package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown annotation format")

// Format names an on-disk annotation format.
type Format string

const (
	FormatVOC   Format = "voc"
	FormatKITTI Format = "kitti"
	FormatVIA   Format = "via"
	FormatSloth Format = "sloth"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatVOC, FormatKITTI, FormatVIA, FormatSloth:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Suffix is appended to the image base name to build the output file name.
func (f Format) Suffix() string {
	switch f {
	case FormatVOC:
		return ".xml"
	case FormatKITTI:
		return ".txt"
	case FormatVIA:
		return "_via.json"
	case FormatSloth:
		return "_sloth.json"
	}
	return ""
}

// Encode serializes doc in format f.
func Encode(f Format, doc VOCAnnotation) ([]byte, error) {
	switch f {
	case FormatVOC:
		return MarshalVOC(doc)
	case FormatKITTI:
		return EncodeKITTI(doc)
	case FormatVIA:
		return EncodeVIA(doc)
	case FormatSloth:
		return EncodeSloth(doc)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
