package export

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/box-annotator/domain/annotate"
)

// Exporter writes the annotations of a session to disk.
type Exporter struct {
	// OutputDir overrides the directory of the image when non-empty.
	OutputDir string
	// Extra formats written next to the VOC file.
	Extra  []Format
	Logger *slog.Logger
}

// NewExporter returns an exporter writing beside the image unless outDir is set.
func NewExporter(outDir string, extra []Format, logger *slog.Logger) *Exporter {
	return &Exporter{OutputDir: outDir, Extra: extra, Logger: logger}
}

// Save writes the VOC XML for s and returns its path. Nothing is written when
// the session cannot be exported. Failures of extra formats are logged only.
func (e *Exporter) Save(s annotate.Session) (string, error) {
	doc, err := FromSession(s)
	if err != nil {
		return "", err
	}
	if e == nil {
		e = &Exporter{}
	}
	outDir := e.OutputDir
	path := OutputPath(s.ImagePath, outDir, FormatVOC.Suffix())
	if err := e.write(FormatVOC, doc, path); err != nil {
		return "", err
	}
	if e.Logger != nil {
		e.Logger.Info("annotations saved", "path", path, "objects", len(doc.Objects))
	}
	for _, f := range e.Extra {
		if f == FormatVOC {
			continue
		}
		extraPath := OutputPath(s.ImagePath, outDir, f.Suffix())
		if err := e.write(f, doc, extraPath); err != nil {
			if e.Logger != nil {
				e.Logger.Error("extra format write failed", "format", string(f), "error", err)
			}
			continue
		}
		if e.Logger != nil {
			e.Logger.Debug("extra format written", "format", string(f), "path", extraPath)
		}
	}
	return path, nil
}

func (e *Exporter) write(f Format, doc VOCAnnotation, path string) error {
	data, err := Encode(f, doc)
	if err != nil {
		return err
	}
	if e.OutputDir != "" {
		if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
