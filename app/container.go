package app

import (
	"image"
	"log/slog"

	"github.com/soocke/box-annotator/config"
	"github.com/soocke/box-annotator/domain/annotate"
	"github.com/soocke/box-annotator/domain/boxes"
	"github.com/soocke/box-annotator/domain/capture"
	"github.com/soocke/box-annotator/domain/export"
	"github.com/soocke/box-annotator/ui/images"
	"github.com/soocke/box-annotator/ui/model"
	"github.com/soocke/box-annotator/ui/presenter"
	"github.com/soocke/box-annotator/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Images     *model.ImageModel
	Status     *model.StatusModel
	Boxes      *boxes.Collection
	Machine    annotate.MachineContract
	Exporter   *export.Exporter
	CaptureSvc *capture.Service
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	Canvas  *presenter.CanvasPresenter
	State   *presenter.StatePresenter
	Mode    *presenter.ModePresenter
	Form    *presenter.FormPresenter
	Session *presenter.SessionPresenter
	Loop    *presenter.Loop
}

// BuildContainer constructs all components and registers the machine
// listeners. No widgets are created; call RootView.Build for that.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Images = model.NewImageModel()
	c.Status = model.NewStatusModel()
	c.Boxes = boxes.NewCollection()
	c.Machine = annotate.NewMachine(c.Boxes, logger, cfg.HandleSize)
	c.Exporter = export.NewExporter(cfg.OutputDir, extraFormats(cfg.ExtraFormats, logger), logger)
	c.CaptureSvc = capture.NewService(cfg.CaptureDir, capture.RegionGrab(captureRect(cfg.CaptureRegion)), logger)

	c.RootView = view.NewRootView(logger)
	c.UI = c.RootView

	c.Canvas = presenter.NewCanvasPresenter(c.Machine, c.Images, c.UI, cfg.HandleSize, logger)
	c.State = presenter.NewStatePresenter(c.UI)
	c.Mode = presenter.NewModePresenter(c.Machine, c.UI)
	c.Form = presenter.NewFormPresenter(c.Machine, c.UI)
	c.Session = presenter.NewSessionPresenter(c.Machine, images.Load, c.Exporter, c.CaptureSvc,
		c.Images, c.Status, c.UI, logger)
	c.Session.OnImageDir = func(dir string) { cfg.LastImageDir = dir }

	c.Machine.AddRenderListener(func(rs annotate.RenderState) {
		c.Canvas.OnRender(rs)
		c.Mode.OnRender(rs)
		c.Form.OnRender(rs)
		c.Session.OnRender(rs)
	})
	c.Machine.AddStateListener(c.State.OnState)
	return c
}

// Handlers maps view actions onto presenters. pickImage returns the chosen
// path or "" when the dialog was cancelled.
func (c *AppContainer) Handlers(pickImage func(dir string) string, exit func()) view.Handlers {
	return view.Handlers{
		LoadImage: func() {
			if path := pickImage(c.Config.LastImageDir); path != "" {
				c.Session.Load(path)
			}
		},
		Capture:     func() { c.Session.Capture() },
		ToggleDraw:  c.Mode.ToggleDraw,
		ToggleEdit:  c.Mode.ToggleEdit,
		Delete:      func() { c.Form.Delete() },
		Save:        func() { _, _ = c.Session.Save() },
		Exit:        exit,
		Press:       c.Canvas.Press,
		Motion:      c.Canvas.Motion,
		Release:     c.Canvas.Release,
		FieldEdited: c.Form.FieldEdited,
		Apply:       c.Form.Apply,
	}
}

func captureRect(r config.Region) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func extraFormats(names []string, logger *slog.Logger) []export.Format {
	var out []export.Format
	for _, n := range names {
		f, err := export.ParseFormat(n)
		if err != nil {
			if logger != nil {
				logger.Warn("ignoring extra format", "format", n, "error", err)
			}
			continue
		}
		out = append(out, f)
	}
	return out
}
